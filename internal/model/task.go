package model

import "strings"

// TaskStatus represents the status of a Zentao task.
type TaskStatus string

const (
	// TaskStatusWait indicates the task has not started.
	TaskStatusWait TaskStatus = "wait"
	// TaskStatusDoing indicates the task is in progress.
	TaskStatusDoing TaskStatus = "doing"
	// TaskStatusDone indicates the task is done.
	TaskStatusDone TaskStatus = "done"
	// TaskStatusPause indicates the task is paused.
	TaskStatusPause TaskStatus = "pause"
	// TaskStatusCancel indicates the task was cancelled.
	TaskStatusCancel TaskStatus = "cancel"
	// TaskStatusClosed indicates the task is closed.
	TaskStatusClosed TaskStatus = "closed"
	// TaskStatusUnknown is used when the status could not be recognized.
	TaskStatusUnknown TaskStatus = "unknown"
)

// ParseTaskStatusCode maps the status code Zentao uses in markup
// (e.g. the `status-doing` class) to a task status.
func ParseTaskStatusCode(code string) TaskStatus {
	switch TaskStatus(strings.ToLower(strings.TrimSpace(code))) {
	case TaskStatusWait:
		return TaskStatusWait
	case TaskStatusDoing:
		return TaskStatusDoing
	case TaskStatusDone:
		return TaskStatusDone
	case TaskStatusPause:
		return TaskStatusPause
	case TaskStatusCancel:
		return TaskStatusCancel
	case TaskStatusClosed:
		return TaskStatusClosed
	default:
		return TaskStatusUnknown
	}
}

// Order returns the logical workflow position of the status, unknown statuses go last.
func (s TaskStatus) Order() int {
	switch s {
	case TaskStatusWait:
		return 1
	case TaskStatusDoing:
		return 2
	case TaskStatusPause:
		return 3
	case TaskStatusDone:
		return 4
	case TaskStatusCancel:
		return 5
	case TaskStatusClosed:
		return 6
	default:
		return 999
	}
}

// Task is a task assigned to the user.
//
// EstimatedStart and ActualStart are only filled by the detail fetch.
type Task struct {
	ID         string
	Title      string
	Status     TaskStatus
	Project    string
	AssignedTo string
	// Deadline is the free text date shown by Zentao, it can be empty or invalid.
	Deadline string
	Priority Priority
	// Hour quantities as shown by Zentao.
	Estimate string
	Consumed string
	Left     string

	EstimatedStart string
	ActualStart    string
}
