package printer

import (
	"encoding/json"
	"io"

	"github.com/slok/zentao/internal/model"
)

// JSONPrinter prints Zentao information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

type taskOutput struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Status         string `json:"status"`
	Project        string `json:"project"`
	AssignedTo     string `json:"assigned_to"`
	Deadline       string `json:"deadline"`
	Priority       string `json:"priority"`
	Estimate       string `json:"estimate"`
	Consumed       string `json:"consumed"`
	Left           string `json:"left"`
	EstimatedStart string `json:"estimated_start,omitempty"`
	ActualStart    string `json:"actual_start,omitempty"`
}

func mapTask(t model.Task) taskOutput {
	return taskOutput{
		ID:             t.ID,
		Title:          t.Title,
		Status:         string(t.Status),
		Project:        t.Project,
		AssignedTo:     t.AssignedTo,
		Deadline:       t.Deadline,
		Priority:       string(t.Priority),
		Estimate:       t.Estimate,
		Consumed:       t.Consumed,
		Left:           t.Left,
		EstimatedStart: t.EstimatedStart,
		ActualStart:    t.ActualStart,
	}
}

type bugOutput struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	Severity   string `json:"severity"`
	Priority   string `json:"priority"`
	Type       string `json:"type"`
	Product    string `json:"product"`
	OpenedBy   string `json:"opened_by"`
	AssignedTo string `json:"assigned_to"`
	Confirmed  bool   `json:"confirmed"`
	Deadline   string `json:"deadline"`
	ResolvedBy string `json:"resolved_by"`
	Resolution string `json:"resolution"`
}

func mapBug(b model.Bug) bugOutput {
	return bugOutput{
		ID:         b.ID,
		Title:      b.Title,
		Status:     string(b.Status),
		Severity:   string(b.Severity),
		Priority:   string(b.Priority),
		Type:       string(b.Type),
		Product:    b.Product,
		OpenedBy:   b.OpenedBy,
		AssignedTo: b.AssignedTo,
		Confirmed:  b.Confirmed,
		Deadline:   b.Deadline,
		ResolvedBy: b.ResolvedBy,
		Resolution: string(b.Resolution),
	}
}

type narrativeOutput struct {
	Text   string   `json:"text"`
	Images []string `json:"images"`
}

func mapNarrative(n model.NarrativeSection) narrativeOutput {
	images := n.Images
	if images == nil {
		images = []string{}
	}
	return narrativeOutput{Text: n.Text, Images: images}
}

type bugDetailOutput struct {
	bugOutput
	Module         string          `json:"module"`
	Case           string          `json:"case"`
	Plan           string          `json:"plan"`
	ActivatedCount int             `json:"activated_count"`
	OpenedDate     string          `json:"opened_date"`
	ResolvedDate   string          `json:"resolved_date"`
	ClosedDate     string          `json:"closed_date"`
	LastEditedDate string          `json:"last_edited_date"`
	AssignedInfo   string          `json:"assigned_info"`
	FeedbackBy     string          `json:"feedback_by"`
	NotifyEmail    string          `json:"notify_email"`
	OS             string          `json:"os"`
	Browser        string          `json:"browser"`
	Keywords       string          `json:"keywords"`
	CC             []string        `json:"cc"`
	Steps          narrativeOutput `json:"steps"`
	Result         narrativeOutput `json:"result"`
	Expected       narrativeOutput `json:"expected"`
}

type memberOutput struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Title    string `json:"title"`
	Selected bool   `json:"selected"`
}

type taskFormOutput struct {
	Members         []memberOutput `json:"members"`
	CurrentConsumed string         `json:"current_consumed"`
	TotalConsumed   string         `json:"total_consumed"`
	AssignedTo      string         `json:"assigned_to"`
	RealStarted     string         `json:"real_started"`
	FinishedDate    string         `json:"finished_date"`
	UID             string         `json:"uid"`
}

type finishOutput struct {
	TaskID          string `json:"task_id"`
	CurrentConsumed string `json:"current_consumed"`
	Consumed        string `json:"consumed"`
	AssignedTo      string `json:"assigned_to"`
	RealStarted     string `json:"real_started"`
	FinishedDate    string `json:"finished_date"`
	Status          string `json:"status"`
	Comment         string `json:"comment"`
}

type checkOutput struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// messageOutput represents a simple message output.
type messageOutput struct {
	Message string `json:"message"`
}

func (j *JSONPrinter) encode(v any) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintTaskList prints tasks in JSON format.
func (j *JSONPrinter) PrintTaskList(tasks []model.Task) error {
	items := make([]taskOutput, len(tasks))
	for i, t := range tasks {
		items[i] = mapTask(t)
	}
	return j.encode(items)
}

// PrintTask prints the task details in JSON format.
func (j *JSONPrinter) PrintTask(task model.Task) error {
	return j.encode(mapTask(task))
}

// PrintBugList prints bugs in JSON format.
func (j *JSONPrinter) PrintBugList(bugs []model.Bug) error {
	items := make([]bugOutput, len(bugs))
	for i, b := range bugs {
		items[i] = mapBug(b)
	}
	return j.encode(items)
}

// PrintBug prints the bug details in JSON format, images included.
func (j *JSONPrinter) PrintBug(bug model.BugDetail) error {
	cc := bug.CC
	if cc == nil {
		cc = []string{}
	}

	return j.encode(bugDetailOutput{
		bugOutput:      mapBug(bug.Bug),
		Module:         bug.Module,
		Case:           bug.Case,
		Plan:           bug.Plan,
		ActivatedCount: bug.ActivatedCount,
		OpenedDate:     bug.OpenedDate,
		ResolvedDate:   bug.ResolvedDate,
		ClosedDate:     bug.ClosedDate,
		LastEditedDate: bug.LastEditedDate,
		AssignedInfo:   bug.AssignedInfo,
		FeedbackBy:     bug.FeedbackBy,
		NotifyEmail:    bug.NotifyEmail,
		OS:             bug.OS,
		Browser:        bug.Browser,
		Keywords:       bug.Keywords,
		CC:             cc,
		Steps:          mapNarrative(bug.Steps),
		Result:         mapNarrative(bug.Result),
		Expected:       mapNarrative(bug.Expected),
	})
}

// PrintTaskForm prints the task finish form details in JSON format.
func (j *JSONPrinter) PrintTaskForm(form model.TaskForm) error {
	members := make([]memberOutput, len(form.Members))
	for i, m := range form.Members {
		members[i] = memberOutput{Value: m.Value, Label: m.Label, Title: m.Title, Selected: m.Selected}
	}

	return j.encode(taskFormOutput{
		Members:         members,
		CurrentConsumed: form.CurrentConsumed,
		TotalConsumed:   form.TotalConsumed,
		AssignedTo:      form.AssignedTo,
		RealStarted:     form.RealStarted,
		FinishedDate:    form.FinishedDate,
		UID:             form.UID,
	})
}

// PrintFinish prints the submitted finish values in JSON format.
func (j *JSONPrinter) PrintFinish(r model.FinishTaskRequest) error {
	return j.encode(finishOutput{
		TaskID:          r.TaskID,
		CurrentConsumed: r.CurrentConsumed,
		Consumed:        r.Consumed,
		AssignedTo:      r.AssignedTo,
		RealStarted:     r.RealStarted,
		FinishedDate:    r.FinishedDate,
		Status:          r.Status,
		Comment:         r.Comment,
	})
}

// PrintChecks prints the check results in JSON format.
func (j *JSONPrinter) PrintChecks(results []model.CheckResult) error {
	items := make([]checkOutput, len(results))
	for i, r := range results {
		items[i] = checkOutput{ID: r.ID, Status: string(r.Status), Message: r.Message}
	}
	return j.encode(items)
}

// PrintMessage prints a simple message in JSON format.
func (j *JSONPrinter) PrintMessage(msg string) error {
	return j.encode(messageOutput{Message: msg})
}
