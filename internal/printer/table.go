package printer

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/slok/zentao/internal/model"
)

// TablePrinter prints Zentao information in a table format.
type TablePrinter struct {
	writer  io.Writer
	noColor bool
	timeNow func() time.Time
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer, noColor bool) *TablePrinter {
	return &TablePrinter{writer: w, noColor: noColor, timeNow: time.Now}
}

func (t *TablePrinter) paint(attr color.Attribute, s string) string {
	c := color.New(attr)
	if t.noColor {
		c.DisableColor()
	}
	return c.Sprint(s)
}

func taskStatusColor(s model.TaskStatus) color.Attribute {
	switch s {
	case model.TaskStatusWait:
		return color.FgCyan
	case model.TaskStatusDoing:
		return color.FgYellow
	case model.TaskStatusPause:
		return color.FgMagenta
	case model.TaskStatusDone:
		return color.FgGreen
	case model.TaskStatusCancel, model.TaskStatusClosed:
		return color.FgHiBlack
	default:
		return color.FgWhite
	}
}

func bugStatusColor(s model.BugStatus) color.Attribute {
	switch s {
	case model.BugStatusActive:
		return color.FgRed
	case model.BugStatusResolved:
		return color.FgGreen
	case model.BugStatusClosed:
		return color.FgHiBlack
	default:
		return color.FgWhite
	}
}

// rankColor colors priorities and severities, 1 is the most important.
func rankColor(rank int) color.Attribute {
	switch rank {
	case 1:
		return color.FgRed
	case 2:
		return color.FgYellow
	case 3:
		return color.FgBlue
	default:
		return color.FgWhite
	}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// PrintTaskList prints tasks in a table format.
func (t *TablePrinter) PrintTaskList(tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "ID\tPRI\tSTATUS\tPROJECT\tTITLE\tDEADLINE\tCONSUMED/ESTIMATE")

	now := t.timeNow()
	for _, task := range tasks {
		deadline := orDash(task.Deadline)
		if in := DeadlineIn(task.Deadline, now); in != "" {
			deadline = fmt.Sprintf("%s (%s)", task.Deadline, in)
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s/%sh\n",
			task.ID,
			t.paint(rankColor(task.Priority.Rank()), string(task.Priority)),
			t.paint(taskStatusColor(task.Status), string(task.Status)),
			orDash(task.Project),
			task.Title,
			deadline,
			orDash(task.Consumed),
			orDash(task.Estimate),
		)
	}

	return nil
}

// PrintTask prints the task details.
func (t *TablePrinter) PrintTask(task model.Task) error {
	fmt.Fprintf(t.writer, "ID:              %s\n", task.ID)
	fmt.Fprintf(t.writer, "Title:           %s\n", task.Title)
	fmt.Fprintf(t.writer, "Status:          %s\n", t.paint(taskStatusColor(task.Status), string(task.Status)))
	fmt.Fprintf(t.writer, "Priority:        %s\n", t.paint(rankColor(task.Priority.Rank()), string(task.Priority)))
	fmt.Fprintf(t.writer, "Project:         %s\n", orDash(task.Project))
	fmt.Fprintf(t.writer, "Assigned to:     %s\n", orDash(task.AssignedTo))
	fmt.Fprintf(t.writer, "Deadline:        %s\n", orDash(task.Deadline))
	fmt.Fprintf(t.writer, "Estimate:        %sh\n", orDash(task.Estimate))
	fmt.Fprintf(t.writer, "Consumed:        %sh\n", orDash(task.Consumed))
	fmt.Fprintf(t.writer, "Left:            %sh\n", orDash(task.Left))

	if task.EstimatedStart != "" {
		fmt.Fprintf(t.writer, "Estimated start: %s\n", task.EstimatedStart)
	}
	if task.ActualStart != "" {
		fmt.Fprintf(t.writer, "Actual start:    %s\n", task.ActualStart)
	}

	return nil
}

// PrintBugList prints bugs in a table format.
func (t *TablePrinter) PrintBugList(bugs []model.Bug) error {
	if len(bugs) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "ID\tSEV\tPRI\tSTATUS\tTYPE\tPRODUCT\tTITLE\tOPENED BY\tCONFIRMED")

	for _, b := range bugs {
		confirmed := "no"
		if b.Confirmed {
			confirmed = "yes"
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			b.ID,
			t.paint(rankColor(b.Severity.Rank()), string(b.Severity)),
			t.paint(rankColor(b.Priority.Rank()), string(b.Priority)),
			t.paint(bugStatusColor(b.Status), string(b.Status)),
			b.Type,
			orDash(b.Product),
			b.Title,
			orDash(b.OpenedBy),
			confirmed,
		)
	}

	return nil
}

// PrintBug prints the bug details, embedded images are summarized.
func (t *TablePrinter) PrintBug(bug model.BugDetail) error {
	fmt.Fprintf(t.writer, "ID:          %s\n", bug.ID)
	fmt.Fprintf(t.writer, "Title:       %s\n", bug.Title)
	fmt.Fprintf(t.writer, "Status:      %s\n", t.paint(bugStatusColor(bug.Status), string(bug.Status)))
	fmt.Fprintf(t.writer, "Severity:    %s\n", t.paint(rankColor(bug.Severity.Rank()), string(bug.Severity)))
	fmt.Fprintf(t.writer, "Priority:    %s\n", t.paint(rankColor(bug.Priority.Rank()), string(bug.Priority)))
	fmt.Fprintf(t.writer, "Type:        %s\n", bug.Type)
	fmt.Fprintf(t.writer, "Product:     %s\n", orDash(bug.Product))
	fmt.Fprintf(t.writer, "Module:      %s\n", orDash(bug.Module))
	fmt.Fprintf(t.writer, "Opened by:   %s\n", orDash(bug.OpenedBy))
	fmt.Fprintf(t.writer, "Assigned to: %s\n", orDash(bug.AssignedTo))
	if bug.Resolution != model.BugResolutionNone {
		fmt.Fprintf(t.writer, "Resolution:  %s (%s)\n", bug.Resolution, orDash(bug.ResolvedBy))
	}

	sections := []struct {
		name    string
		section model.NarrativeSection
	}{
		{"Steps", bug.Steps},
		{"Result", bug.Result},
		{"Expected", bug.Expected},
	}
	for _, s := range sections {
		if !s.section.HasContent() {
			continue
		}

		fmt.Fprintf(t.writer, "\n%s:\n", s.name)
		if s.section.Text != "" {
			for _, line := range strings.Split(s.section.Text, "\n") {
				fmt.Fprintf(t.writer, "  %s\n", line)
			}
		}
		for i, img := range s.section.Images {
			fmt.Fprintf(t.writer, "  [image %d: %s]\n", i+1, describeImage(img))
		}
	}

	return nil
}

// PrintTaskForm prints the finish form values and the team members.
func (t *TablePrinter) PrintTaskForm(form model.TaskForm) error {
	fmt.Fprintf(t.writer, "UID:              %s\n", orDash(form.UID))
	fmt.Fprintf(t.writer, "Total consumed:   %sh\n", orDash(form.TotalConsumed))
	fmt.Fprintf(t.writer, "Assigned to:      %s\n", orDash(form.AssignedTo))
	fmt.Fprintf(t.writer, "Real started:     %s\n", orDash(form.RealStarted))
	fmt.Fprintf(t.writer, "Finished date:    %s\n", orDash(form.FinishedDate))

	if len(form.Members) == 0 {
		return nil
	}

	fmt.Fprintln(t.writer)
	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "VALUE\tNAME\tSELECTED")
	for _, m := range form.Members {
		selected := ""
		if m.Selected {
			selected = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Value, m.Title, selected)
	}

	return nil
}

// PrintFinish prints the submitted finish values.
func (t *TablePrinter) PrintFinish(r model.FinishTaskRequest) error {
	fmt.Fprintf(t.writer, "Task %s finished.\n", r.TaskID)
	fmt.Fprintf(t.writer, "  Consumed:      %sh (total %sh)\n", r.CurrentConsumed, r.Consumed)
	fmt.Fprintf(t.writer, "  Real started:  %s\n", r.RealStarted)
	fmt.Fprintf(t.writer, "  Finished date: %s\n", r.FinishedDate)
	fmt.Fprintf(t.writer, "  Assigned to:   %s\n", orDash(r.AssignedTo))
	return nil
}

// PrintChecks prints the check results with a summary.
func (t *TablePrinter) PrintChecks(results []model.CheckResult) error {
	for _, r := range results {
		fmt.Fprintf(t.writer, "  %s %-12s %s\n", t.checkIcon(r.Status), r.ID, r.Message)
	}

	fmt.Fprintln(t.writer)
	s := model.SummarizeChecks(results)
	if s.Passed() {
		fmt.Fprintf(t.writer, "All %d checks passed!\n", s.OK)
		return nil
	}

	var summary []string
	if s.Errors > 0 {
		summary = append(summary, fmt.Sprintf("%d error(s)", s.Errors))
	}
	if s.Warnings > 0 {
		summary = append(summary, fmt.Sprintf("%d warning(s)", s.Warnings))
	}
	fmt.Fprintln(t.writer, strings.Join(summary, ", "))

	return nil
}

func (t *TablePrinter) checkIcon(status model.CheckStatus) string {
	switch status {
	case model.CheckStatusOK:
		return t.paint(color.FgGreen, "OK")
	case model.CheckStatusWarning:
		return t.paint(color.FgYellow, "!!")
	case model.CheckStatusError:
		return t.paint(color.FgRed, "XX")
	default:
		return "??"
	}
}

// PrintMessage prints a simple text message.
func (t *TablePrinter) PrintMessage(msg string) error {
	fmt.Fprintln(t.writer, msg)
	return nil
}
