package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/slok/zentao/internal/model"
)

// ParseTaskList parses the "my tasks" list page. It never fails, rows without
// an id are skipped and unparseable documents return what was parsed so far.
func (p *Parser) ParseTaskList(html string) (tasks []model.Task) {
	tasks = []model.Task{}
	defer func() {
		if r := recover(); r != nil {
			p.logger.Errorf("task list parsing aborted after %d tasks: %v", len(tasks), r)
		}
	}()

	doc, err := loadDocument(html)
	if err != nil {
		p.logger.Errorf("could not parse task list: %s", err)
		return tasks
	}

	rows, selector := firstMatch(doc.Selection, taskRowSelectors)
	p.logger.Debugf("found %d task rows using selector %q", rows.Length(), selector)

	skipped := 0
	rows.Each(func(_ int, row *goquery.Selection) {
		task, ok := p.parseTaskRow(row)
		if !ok {
			skipped++
			return
		}
		tasks = append(tasks, task)
	})

	p.logger.Debugf("parsed %d tasks, skipped %d rows without id", len(tasks), skipped)
	return tasks
}

func (p *Parser) parseTaskRow(row *goquery.Selection) (model.Task, bool) {
	id := strings.TrimSpace(row.AttrOr("data-id", ""))
	if id == "" {
		id = strings.TrimSpace(row.Find("input[name='taskIDList[]']").AttrOr("value", ""))
	}
	if id == "" {
		return model.Task{}, false
	}

	hours := row.Find(".c-hours")

	return model.Task{
		ID:         id,
		Title:      firstText(row, ".c-name a", ".c-name"),
		Status:     p.taskStatus(row.Find(".c-status .status-task, .c-status span").First()),
		Project:    firstText(row, ".c-project a", ".c-project"),
		AssignedTo: firstText(row, ".c-user", ".c-assignedTo"),
		Deadline:   firstText(row, "td.text-center span", ".c-deadline"),
		Priority:   priority(row.Find(".c-pri span, .label-pri").First()),
		Estimate:   cleanText(hours.Eq(0).Text()),
		Consumed:   cleanText(hours.Eq(1).Text()),
		Left:       cleanText(hours.Eq(2).Text()),
	}, true
}

// taskStatus maps the status text, falling back to the `status-<code>` class.
func (p *Parser) taskStatus(s *goquery.Selection) model.TaskStatus {
	if status := p.locale.TaskStatus(cleanText(s.Text())); status != model.TaskStatusUnknown {
		return status
	}

	for _, class := range strings.Fields(s.AttrOr("class", "")) {
		code, ok := strings.CutPrefix(class, "status-")
		if !ok || code == "task" {
			continue
		}
		if status := model.ParseTaskStatusCode(code); status != model.TaskStatusUnknown {
			return status
		}
	}

	return model.TaskStatusUnknown
}

// priority reads the priority from the `title` attribute or the text of a label.
func priority(s *goquery.Selection) model.Priority {
	if pri := model.ParsePriority(s.AttrOr("title", "")); pri != model.PriorityUnknown {
		return pri
	}
	return model.ParsePriority(cleanText(s.Text()))
}
