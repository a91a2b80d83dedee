package model

import (
	"strconv"
	"strings"
)

// Priority is the priority shared by tasks and bugs, 1 is the highest.
type Priority string

const (
	// PriorityCritical is the highest priority.
	PriorityCritical Priority = "1"
	// PriorityHigh is the high priority.
	PriorityHigh Priority = "2"
	// PriorityMedium is the medium priority.
	PriorityMedium Priority = "3"
	// PriorityLow is the lowest priority.
	PriorityLow Priority = "4"
	// PriorityUnknown is used when the priority could not be recognized.
	PriorityUnknown Priority = "unknown"
)

// ParsePriority maps a Zentao priority code ("1".."4") to a priority.
func ParsePriority(code string) Priority {
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil {
		return PriorityUnknown
	}

	switch n {
	case 1:
		return PriorityCritical
	case 2:
		return PriorityHigh
	case 3:
		return PriorityMedium
	case 4:
		return PriorityLow
	default:
		return PriorityUnknown
	}
}

// Rank returns the numeric value of the priority, unknown priorities rank last.
func (p Priority) Rank() int {
	n, err := strconv.Atoi(string(p))
	if err != nil {
		return 999
	}
	return n
}
