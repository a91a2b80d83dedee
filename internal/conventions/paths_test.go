package conventions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slok/zentao/internal/conventions"
)

func TestPaths(t *testing.T) {
	assert.Equal(t, "/home/alice/.zentao/config.yaml", conventions.ConfigPath("/home/alice"))
	assert.Equal(t, "/home/alice/.zentao/diagnostics", conventions.DiagnosticsRootPath("/home/alice"))
}
