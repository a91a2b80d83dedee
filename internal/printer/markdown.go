package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/slok/zentao/internal/model"
)

// MarkdownPrinter prints the bug and task details as markdown, rendered for
// the terminal unless raw is set. The rest is printed as a table.
type MarkdownPrinter struct {
	*TablePrinter
	writer  io.Writer
	raw     bool
	noColor bool
}

// NewMarkdownPrinter creates a new markdown printer.
func NewMarkdownPrinter(w io.Writer, raw, noColor bool) *MarkdownPrinter {
	return &MarkdownPrinter{
		TablePrinter: NewTablePrinter(w, noColor),
		writer:       w,
		raw:          raw,
		noColor:      noColor,
	}
}

// BugMarkdown returns the bug details as a markdown document. When embedImages
// is false embedded `data:` images are replaced by a short description.
func BugMarkdown(bug model.BugDetail, embedImages bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Bug #%s: %s\n\n", bug.ID, bug.Title)

	fmt.Fprintf(&b, "| Field | Value |\n|---|---|\n")
	rows := [][2]string{
		{"Status", string(bug.Status)},
		{"Severity", string(bug.Severity)},
		{"Priority", string(bug.Priority)},
		{"Type", string(bug.Type)},
		{"Product", bug.Product},
		{"Module", bug.Module},
		{"Opened by", bug.OpenedBy},
		{"Opened date", bug.OpenedDate},
		{"Assigned to", bug.AssignedTo},
		{"Resolution", string(bug.Resolution)},
		{"Keywords", bug.Keywords},
	}
	for _, r := range rows {
		if r[1] == "" {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s |\n", r[0], escapeTableCell(r[1]))
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

		fmt.Fprintf(&b, "\n## %s\n\n", s.name)
		if s.section.Text != "" {
			// Markdown needs two trailing spaces to keep single line breaks.
			b.WriteString(strings.ReplaceAll(s.section.Text, "\n", "  \n"))
			b.WriteString("\n")
		}
		for i, img := range s.section.Images {
			b.WriteString("\n")
			b.WriteString(imageMarkdown(i+1, img, embedImages))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// imageMarkdown returns the markdown of an image. Images that could not be
// fetched are already a markdown link placeholder.
func imageMarkdown(n int, img string, embed bool) string {
	if strings.HasPrefix(img, "[") {
		return img
	}
	if !embed && strings.HasPrefix(img, "data:") {
		return fmt.Sprintf("*[image %d: %s]*", n, describeImage(img))
	}
	return fmt.Sprintf("![image %d](%s)", n, img)
}

func escapeTableCell(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "|", `\|`), "\n", " ")
}

// TaskMarkdown returns the task details as a markdown document.
func TaskMarkdown(task model.Task) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Task #%s: %s\n\n", task.ID, task.Title)
	fmt.Fprintf(&b, "| Field | Value |\n|---|---|\n")
	rows := [][2]string{
		{"Status", string(task.Status)},
		{"Priority", string(task.Priority)},
		{"Project", task.Project},
		{"Assigned to", task.AssignedTo},
		{"Deadline", task.Deadline},
		{"Estimate", task.Estimate},
		{"Consumed", task.Consumed},
		{"Left", task.Left},
		{"Estimated start", task.EstimatedStart},
		{"Actual start", task.ActualStart},
	}
	for _, r := range rows {
		if r[1] == "" {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s |\n", r[0], escapeTableCell(r[1]))
	}

	return b.String()
}

func (m *MarkdownPrinter) print(md string) error {
	if m.raw {
		_, err := io.WriteString(m.writer, md)
		return err
	}

	style := glamour.WithAutoStyle()
	if m.noColor {
		style = glamour.WithStandardStyle("notty")
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		return fmt.Errorf("could not create markdown renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("could not render markdown: %w", err)
	}

	_, err = io.WriteString(m.writer, out)
	return err
}

// PrintBug prints the bug details as markdown. Raw markdown keeps the embedded
// images so it can be pasted somewhere else.
func (m *MarkdownPrinter) PrintBug(bug model.BugDetail) error {
	return m.print(BugMarkdown(bug, m.raw))
}

// PrintTask prints the task details as markdown.
func (m *MarkdownPrinter) PrintTask(task model.Task) error {
	return m.print(TaskMarkdown(task))
}
