package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slok/zentao/internal/model"
)

func TestSummarizeChecks(t *testing.T) {
	tests := map[string]struct {
		results    []model.CheckResult
		expSummary model.CheckSummary
		expPassed  bool
		expErrors  bool
	}{
		"No results should pass.": {
			expPassed: true,
		},

		"Only ok results should pass.": {
			results: []model.CheckResult{
				{ID: "credentials", Status: model.CheckStatusOK},
				{ID: "session", Status: model.CheckStatusOK},
			},
			expSummary: model.CheckSummary{OK: 2},
			expPassed:  true,
		},

		"A warning should not pass but it's not an error.": {
			results: []model.CheckResult{
				{ID: "credentials", Status: model.CheckStatusOK},
				{ID: "password", Status: model.CheckStatusWarning},
			},
			expSummary: model.CheckSummary{OK: 1, Warnings: 1},
		},

		"Errors should be counted and unknown statuses ignored.": {
			results: []model.CheckResult{
				{ID: "server", Status: model.CheckStatusError},
				{ID: "session", Status: model.CheckStatusError},
				{ID: "other", Status: "skipped"},
			},
			expSummary: model.CheckSummary{Errors: 2},
			expErrors:  true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			s := model.SummarizeChecks(test.results)

			assert.Equal(test.expSummary, s)
			assert.Equal(test.expPassed, s.Passed())
			assert.Equal(test.expErrors, model.HasErrors(test.results))
		})
	}
}
