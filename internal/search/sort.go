package search

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/slok/zentao/internal/model"
)

// SortOrder is the order applied to the lists.
type SortOrder string

const (
	SortNone         SortOrder = "none"
	SortDateAsc      SortOrder = "date-asc"
	SortDateDesc     SortOrder = "date-desc"
	SortPriorityAsc  SortOrder = "priority-asc"
	SortPriorityDesc SortOrder = "priority-desc"
	SortStatusAsc    SortOrder = "status-asc"
	SortStatusDesc   SortOrder = "status-desc"
	// Severity sort orders only apply to bugs.
	SortSeverityAsc  SortOrder = "severity-asc"
	SortSeverityDesc SortOrder = "severity-desc"
)

// TaskSortOrders are the sort orders supported by task lists.
var TaskSortOrders = []SortOrder{SortNone, SortDateAsc, SortDateDesc, SortPriorityAsc, SortPriorityDesc, SortStatusAsc, SortStatusDesc}

// BugSortOrders are the sort orders supported by bug lists.
var BugSortOrders = append(slices.Clone(TaskSortOrders), SortSeverityAsc, SortSeverityDesc)

// ParseSortOrder parses a sort order, empty means no sorting.
func ParseSortOrder(s string) (SortOrder, error) {
	o := SortOrder(strings.ToLower(strings.TrimSpace(s)))
	if o == "" {
		return SortNone, nil
	}
	if !slices.Contains(BugSortOrders, o) {
		return "", fmt.Errorf("unknown sort order %q: %w", s, model.ErrNotValid)
	}
	return o, nil
}

var deadlineLayouts = []string{"2006-01-02", "2006-01-02 15:04", "2006-01-02 15:04:05", "2006/01/02"}

// parseDeadline parses the free text deadlines Zentao shows.
func parseDeadline(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, l := range deadlineLayouts {
		t, err := time.Parse(l, s)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// compareDeadline compares two deadlines, invalid ones go last regardless of the direction.
func compareDeadline(a, b string, desc bool) int {
	ta, oka := parseDeadline(a)
	tb, okb := parseDeadline(b)
	switch {
	case !oka && !okb:
		return 0
	case !oka:
		return 1
	case !okb:
		return -1
	case desc:
		return tb.Compare(ta)
	default:
		return ta.Compare(tb)
	}
}

func compareInt(a, b int, desc bool) int {
	if desc {
		return b - a
	}
	return a - b
}

// SortTasks returns a sorted copy of the tasks, the sort is stable.
func SortTasks(tasks []model.Task, order SortOrder) []model.Task {
	res := slices.Clone(tasks)
	if order == SortNone || order == "" {
		return res
	}

	slices.SortStableFunc(res, func(a, b model.Task) int {
		switch order {
		case SortDateAsc, SortDateDesc:
			return compareDeadline(a.Deadline, b.Deadline, order == SortDateDesc)
		case SortPriorityAsc, SortPriorityDesc:
			return compareInt(a.Priority.Rank(), b.Priority.Rank(), order == SortPriorityDesc)
		case SortStatusAsc, SortStatusDesc:
			return compareInt(a.Status.Order(), b.Status.Order(), order == SortStatusDesc)
		}
		return 0
	})

	return res
}

// SortBugs returns a sorted copy of the bugs, the sort is stable.
// Ascending severity lists the most severe bugs first.
func SortBugs(bugs []model.Bug, order SortOrder) []model.Bug {
	res := slices.Clone(bugs)
	if order == SortNone || order == "" {
		return res
	}

	slices.SortStableFunc(res, func(a, b model.Bug) int {
		switch order {
		case SortDateAsc, SortDateDesc:
			return compareDeadline(a.Deadline, b.Deadline, order == SortDateDesc)
		case SortPriorityAsc, SortPriorityDesc:
			return compareInt(a.Priority.Rank(), b.Priority.Rank(), order == SortPriorityDesc)
		case SortStatusAsc, SortStatusDesc:
			return compareInt(a.Status.Order(), b.Status.Order(), order == SortStatusDesc)
		case SortSeverityAsc, SortSeverityDesc:
			return compareInt(a.Severity.Rank(), b.Severity.Rank(), order == SortSeverityDesc)
		}
		return 0
	})

	return res
}
