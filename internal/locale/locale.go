// Package locale isolates every source language literal the scrapers depend on.
//
// Zentao renders statuses, categories and field labels in the user language, so the
// scrapers can only classify them by text. Supporting a Zentao instance rendered in
// another language means adding a new Locale value here.
package locale

import (
	"strings"

	"github.com/slok/zentao/internal/model"
)

// Section is a narrative section of a bug.
type Section int

const (
	SectionNone Section = iota
	SectionSteps
	SectionResult
	SectionExpected
)

func (s Section) String() string {
	switch s {
	case SectionSteps:
		return "steps"
	case SectionResult:
		return "result"
	case SectionExpected:
		return "expected"
	default:
		return "none"
	}
}

// SectionKeywords are the keywords that identify narrative section titles.
type SectionKeywords struct {
	Steps    string
	Result   string
	Expected string
}

// Labels are the field labels of the detail page info tables.
type Labels struct {
	Product        []string
	Project        []string
	Module         []string
	Plan           []string
	Case           []string
	Type           []string
	Severity       []string
	Priority       []string
	Status         []string
	ActivatedCount []string
	Confirmed      []string
	AssignedTo     []string
	Deadline       []string
	FeedbackBy     []string
	NotifyEmail    []string
	OS             []string
	Browser        []string
	Keywords       []string
	CC             []string
	OpenedBy       []string
	ResolvedBy     []string
	ResolvedDate   []string
	Resolution     []string
	ClosedBy       []string
	ClosedDate     []string
	LastEdited     []string
	EstimatedStart []string
	ActualStart    []string
	Estimate       []string
	Consumed       []string
	Left           []string
}

// Locale has the literals of a Zentao language.
type Locale struct {
	TaskStatuses   map[string]model.TaskStatus
	BugStatuses    map[string]model.BugStatus
	BugTypes       map[string]model.BugType
	BugResolutions map[string]model.BugResolution

	// UnconfirmedMarker is the text shown for bugs that are not confirmed.
	UnconfirmedMarker string
	// AtMarker separates the user and the date in "user at date" cells.
	AtMarker        string
	SectionKeywords SectionKeywords
	Labels          Labels

	ImagePlaceholder   string
	UnknownReason      string
	SubmissionRejected string
}

// TaskStatus maps a task status text to a task status.
func (l Locale) TaskStatus(text string) model.TaskStatus {
	if s, ok := l.TaskStatuses[strings.TrimSpace(text)]; ok {
		return s
	}
	return model.TaskStatusUnknown
}

// BugStatus maps a bug status text to a bug status.
func (l Locale) BugStatus(text string) model.BugStatus {
	if s, ok := l.BugStatuses[strings.TrimSpace(text)]; ok {
		return s
	}
	return model.BugStatusUnknown
}

// BugType maps a bug type text to a bug type, unknown texts are others.
func (l Locale) BugType(text string) model.BugType {
	if t, ok := l.BugTypes[strings.TrimSpace(text)]; ok {
		return t
	}
	return model.BugTypeOthers
}

// BugResolution maps a resolution text to a resolution, unknown texts are unresolved.
func (l Locale) BugResolution(text string) model.BugResolution {
	if r, ok := l.BugResolutions[strings.TrimSpace(text)]; ok {
		return r
	}
	return model.BugResolutionNone
}

// IsUnconfirmed returns true if the text has the unconfirmed marker.
func (l Locale) IsUnconfirmed(text string) bool {
	return l.UnconfirmedMarker != "" && strings.Contains(text, l.UnconfirmedMarker)
}

// Section classifies a narrative section title by keyword containment.
func (l Locale) Section(title string) Section {
	switch {
	case l.SectionKeywords.Steps != "" && strings.Contains(title, l.SectionKeywords.Steps):
		return SectionSteps
	// "期望结果" holds both keywords, expected wins.
	case l.SectionKeywords.Expected != "" && strings.Contains(title, l.SectionKeywords.Expected):
		return SectionExpected
	case l.SectionKeywords.Result != "" && strings.Contains(title, l.SectionKeywords.Result):
		return SectionResult
	default:
		return SectionNone
	}
}

// SplitAt splits a "user at date" cell into the user and the date.
func (l Locale) SplitAt(text string) (who, when string) {
	text = strings.TrimSpace(text)
	if l.AtMarker == "" {
		return text, ""
	}

	who, when, ok := strings.Cut(text, l.AtMarker)
	if !ok {
		return text, ""
	}
	return strings.TrimSpace(who), strings.TrimSpace(when)
}
