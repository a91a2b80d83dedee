package zentao_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	intzentao "github.com/slok/zentao/test/integration/zentao"
)

// listItem matches the common fields of `zentao tasks|bugs --format json`.
type listItem struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// checkItem matches the JSON output of `zentao doctor --format json`.
type checkItem struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// newTestDir returns a directory without a preferences file. The config flag
// points to an existing empty file so no user preferences are loaded.
func newTestDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{}\n"), 0o600))
	return dir
}

func TestIntegrationLists(t *testing.T) {
	tests := map[string]struct {
		args []string
	}{
		"Listing my tasks should return valid JSON.": {args: []string{"tasks", "--format", "json"}},
		"Listing my bugs should return valid JSON.":  {args: []string{"bugs", "--format", "json"}},
		"Sorting my tasks should return valid JSON.": {args: []string{"tasks", "--sort", "date-asc", "--format", "json"}},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			config := intzentao.NewConfig(t)
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			res, err := intzentao.RunZentaoCmd(ctx, config, newTestDir(t), test.args...)
			require.NoError(err, "stderr: %s", res.Stderr)

			var items []listItem
			require.NoError(json.Unmarshal(res.Stdout, &items))
			for _, item := range items {
				assert.NotEmpty(t, item.ID)
			}
		})
	}
}

func TestIntegrationDoctor(t *testing.T) {
	require := require.New(t)
	config := intzentao.NewConfig(t)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	res, err := intzentao.RunZentaoCmd(ctx, config, newTestDir(t), "doctor", "--format", "json")
	require.NoError(err, "stderr: %s", res.Stderr)

	var checks []checkItem
	require.NoError(json.Unmarshal(res.Stdout, &checks))

	got := map[string]string{}
	for _, c := range checks {
		got[c.ID] = c.Status
	}
	assert.Equal(t, "ok", got["server"])
	assert.Equal(t, "ok", got["session"])
}

func TestIntegrationExpiredSession(t *testing.T) {
	assert := assert.New(t)
	config := intzentao.NewConfig(t)
	config.SessionID = "expired-session-id"
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	dir := newTestDir(t)
	res, err := intzentao.RunZentaoCmd(ctx, config, dir, "tasks", "--format", "json")

	assert.Error(err)
	assert.Contains(string(res.Stderr), "session expired")

	// The raw login redirect is kept for diagnostics.
	_, err = os.Stat(filepath.Join(dir, "diagnostics", "my-task.html"))
	assert.NoError(err)
}
