package model

import (
	"strings"
)

// BugStatus represents the status of a bug.
type BugStatus string

const (
	BugStatusActive   BugStatus = "active"
	BugStatusResolved BugStatus = "resolved"
	BugStatusClosed   BugStatus = "closed"
	BugStatusUnknown  BugStatus = "unknown"
)

// Order returns the logical workflow position of the status, unknown statuses go last.
func (s BugStatus) Order() int {
	switch s {
	case BugStatusActive:
		return 1
	case BugStatusResolved:
		return 2
	case BugStatusClosed:
		return 3
	default:
		return 999
	}
}

// BugSeverity represents how severe a bug is, 4 is the most severe.
type BugSeverity string

const (
	BugSeverityCritical BugSeverity = "4"
	BugSeverityMajor    BugSeverity = "3"
	BugSeverityNormal   BugSeverity = "2"
	BugSeverityMinor    BugSeverity = "1"
	BugSeverityUnknown  BugSeverity = "unknown"
)

// ParseBugSeverity maps the Zentao `data-severity` code to a severity.
func ParseBugSeverity(code string) BugSeverity {
	switch strings.TrimSpace(code) {
	case "4":
		return BugSeverityCritical
	case "3":
		return BugSeverityMajor
	case "2":
		return BugSeverityNormal
	case "1":
		return BugSeverityMinor
	default:
		return BugSeverityUnknown
	}
}

// Rank returns the position of the severity, critical ranks 1 and unknown last.
func (s BugSeverity) Rank() int {
	switch s {
	case BugSeverityCritical:
		return 1
	case BugSeverityMajor:
		return 2
	case BugSeverityNormal:
		return 3
	case BugSeverityMinor:
		return 4
	default:
		return 999
	}
}

// BugType is the category of a bug.
type BugType string

const (
	BugTypeCodeError    BugType = "codeerror"
	BugTypeInterface    BugType = "interface"
	BugTypeConfig       BugType = "config"
	BugTypeInstall      BugType = "install"
	BugTypeSecurity     BugType = "security"
	BugTypePerformance  BugType = "performance"
	BugTypeStandard     BugType = "standard"
	BugTypeAutomation   BugType = "automation"
	BugTypeDesignDefect BugType = "designdefect"
	BugTypeOthers       BugType = "others"
)

// BugResolution is how a bug was resolved.
type BugResolution string

const (
	// BugResolutionNone means the bug is unresolved.
	BugResolutionNone       BugResolution = ""
	BugResolutionFixed      BugResolution = "fixed"
	BugResolutionWontFix    BugResolution = "wontfix"
	BugResolutionExternal   BugResolution = "external"
	BugResolutionDuplicate  BugResolution = "duplicate"
	BugResolutionNotRepro   BugResolution = "notrepro"
	BugResolutionPostponed  BugResolution = "postponed"
	BugResolutionByDesign   BugResolution = "bydesign"
	BugResolutionWillNotFix BugResolution = "willnotfix"
	BugResolutionToStory    BugResolution = "tostory"
)

// Bug is a bug as listed in the "my bugs" page.
type Bug struct {
	ID         string
	Title      string
	Status     BugStatus
	Severity   BugSeverity
	Priority   Priority
	Type       BugType
	Product    string
	OpenedBy   string
	AssignedTo string
	Confirmed  bool
	Deadline   string
	ResolvedBy string
	Resolution BugResolution
}

// NarrativeSection is one of the steps/result/expected blocks of a bug,
// images are kept in document order.
type NarrativeSection struct {
	Text   string
	Images []string
}

// HasContent returns true when the section has text or images.
func (n NarrativeSection) HasContent() bool {
	return n.Text != "" || len(n.Images) > 0
}

// BugDetail is the full bug information from the bug view page.
type BugDetail struct {
	Bug

	Module         string
	Case           string
	Plan           string
	ActivatedCount int
	OpenedDate     string
	ResolvedDate   string
	ClosedDate     string
	LastEditedDate string
	AssignedInfo   string
	FeedbackBy     string
	NotifyEmail    string
	OS             string
	Browser        string
	Keywords       string
	CC             []string

	Steps    NarrativeSection
	Result   NarrativeSection
	Expected NarrativeSection
}

// HasImages returns true if any narrative section has images.
func (b BugDetail) HasImages() bool {
	return len(b.Steps.Images) > 0 || len(b.Result.Images) > 0 || len(b.Expected.Images) > 0
}
