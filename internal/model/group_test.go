package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slok/zentao/internal/model"
)

func TestGroupCounts(t *testing.T) {
	got := model.GroupCounts([]string{"Portal", "", "Docs", "Portal"})

	exp := []model.Group{
		{Name: "Docs", Count: 1},
		{Name: "Portal", Count: 2},
	}
	assert.Equal(t, exp, got)
	assert.Empty(t, model.GroupCounts(nil))
}
