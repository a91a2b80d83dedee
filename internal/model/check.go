package model

// CheckStatus is the outcome of a doctor check.
type CheckStatus string

const (
	CheckStatusOK      CheckStatus = "ok"
	CheckStatusWarning CheckStatus = "warning"
	CheckStatusError   CheckStatus = "error"
)

// CheckResult is the outcome of a doctor check over the user preferences or the
// Zentao session.
type CheckResult struct {
	// ID names the check, like `session`.
	ID      string
	Message string
	Status  CheckStatus
}

// CheckSummary counts the check results by status.
type CheckSummary struct {
	OK       int
	Warnings int
	Errors   int
}

// Passed is true when nothing failed or warned.
func (s CheckSummary) Passed() bool { return s.Warnings == 0 && s.Errors == 0 }

// SummarizeChecks counts the results by status, unknown statuses are ignored.
func SummarizeChecks(results []CheckResult) CheckSummary {
	var s CheckSummary
	for _, r := range results {
		switch r.Status {
		case CheckStatusOK:
			s.OK++
		case CheckStatusWarning:
			s.Warnings++
		case CheckStatusError:
			s.Errors++
		}
	}
	return s
}

// HasErrors is true when any check failed.
func HasErrors(results []CheckResult) bool {
	return SummarizeChecks(results).Errors > 0
}
