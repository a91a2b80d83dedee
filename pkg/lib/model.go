package lib

import (
	"github.com/slok/zentao/internal/model"
	"github.com/slok/zentao/internal/search"
	"github.com/slok/zentao/internal/session"
)

// Credentials are the values used to talk with Zentao as the user.
//
// BaseURL, SessionID and Username are required. Password is only required to
// log in again when the session expires.
type Credentials = model.Credentials

// Task is a task assigned to the user.
type Task = model.Task

// TaskStatus is the status of a task.
type TaskStatus = model.TaskStatus

const (
	TaskStatusWait    = model.TaskStatusWait
	TaskStatusDoing   = model.TaskStatusDoing
	TaskStatusDone    = model.TaskStatusDone
	TaskStatusPause   = model.TaskStatusPause
	TaskStatusCancel  = model.TaskStatusCancel
	TaskStatusClosed  = model.TaskStatusClosed
	TaskStatusUnknown = model.TaskStatusUnknown
)

// Bug is a bug assigned to the user.
type Bug = model.Bug

// BugDetail is a bug with its steps, result and expected result.
type BugDetail = model.BugDetail

// NarrativeSection is one of the steps, result or expected sections of a bug.
// Image URLs are already materialized as data URIs.
type NarrativeSection = model.NarrativeSection

// BugStatus is the status of a bug.
type BugStatus = model.BugStatus

const (
	BugStatusActive   = model.BugStatusActive
	BugStatusResolved = model.BugStatusResolved
	BugStatusClosed   = model.BugStatusClosed
	BugStatusUnknown  = model.BugStatusUnknown
)

// BugSeverity is the severity of a bug, 4 is the most severe.
type BugSeverity = model.BugSeverity

// Priority is the priority of a task or bug, 1 is the highest.
type Priority = model.Priority

// TaskForm are the values of the task finish form.
type TaskForm = model.TaskForm

// TeamMember is a member the task can be assigned to when finishing it.
type TeamMember = model.TeamMember

// FinishTaskRequest are the values submitted to finish a task.
type FinishTaskRequest = model.FinishTaskRequest

// Group is a project or product with the number of items in it.
type Group = model.Group

// SessionState is the state of the user session as seen by the client.
type SessionState = session.State

const (
	// SessionStateValid means no request found an expired session.
	SessionStateValid = session.StateValid
	// SessionStateExpired means Zentao redirected a request to the login page.
	SessionStateExpired = session.StateExpired
	// SessionStateReloginFailed means the session expired and logging in again failed.
	SessionStateReloginFailed = session.StateReloginFailed
)

// SortOrder is the order of a task or bug list.
type SortOrder = search.SortOrder

const (
	SortNone         = search.SortNone
	SortDateAsc      = search.SortDateAsc
	SortDateDesc     = search.SortDateDesc
	SortPriorityAsc  = search.SortPriorityAsc
	SortPriorityDesc = search.SortPriorityDesc
	SortStatusAsc    = search.SortStatusAsc
	SortStatusDesc   = search.SortStatusDesc
	// Severity orders are only valid for bugs.
	SortSeverityAsc  = search.SortSeverityAsc
	SortSeverityDesc = search.SortSeverityDesc
)

// ListOpts filters and sorts task and bug lists. A nil ListOpts returns the
// list as Zentao sends it.
type ListOpts struct {
	// Group only keeps the items of this project (tasks) or product (bugs).
	Group string
	// Query is a fuzzy search, pinyin and pinyin initials match Chinese text.
	Query string
	Sort  SortOrder
}

// FinishTaskOpts are the optional values to finish a task, empty values are calculated.
type FinishTaskOpts struct {
	// CurrentConsumed are the hours spent in this work.
	CurrentConsumed string
	// AssignTo is the account, name or title of the team member.
	AssignTo string
	// RealStarted and FinishedDate use the `YYYY-MM-DD HH:mm` format.
	RealStarted  string
	FinishedDate string
	Comment      string
}

var (
	// ErrSessionExpired is returned when Zentao redirected the request to the login page.
	ErrSessionExpired = model.ErrSessionExpired
	// ErrNotValid is returned for invalid input or credentials.
	ErrNotValid = model.ErrNotValid
	// ErrDocumentUnrecognized is returned when a page is not the expected one.
	ErrDocumentUnrecognized = model.ErrDocumentUnrecognized
)

// TransportError is returned when Zentao answered with a non 2xx status.
type TransportError = model.TransportError

// LoginFailedError is returned when Zentao rejected the login.
type LoginFailedError = model.LoginFailedError

// LoginResponseParseError is returned when the login answer is not the expected one.
type LoginResponseParseError = model.LoginResponseParseError

// SessionRefreshError is returned when logging in again failed for any other reason.
type SessionRefreshError = model.SessionRefreshError

// SubmissionFailedError is returned when Zentao rejected the task finish form.
type SubmissionFailedError = model.SubmissionFailedError
