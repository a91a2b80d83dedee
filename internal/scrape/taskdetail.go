package scrape

import (
	"fmt"

	"github.com/slok/zentao/internal/model"
)

// ParseTaskDetail parses the task view page. It only fails when the page
// has no recognizable title, every other field degrades to empty.
func (p *Parser) ParseTaskDetail(html, id string) (model.Task, error) {
	doc, err := loadDocument(html)
	if err != nil {
		return model.Task{}, err
	}

	title, ok := p.pageTitle(doc, id)
	if !ok {
		return model.Task{}, fmt.Errorf("task %s page has no title: %w", id, model.ErrDocumentUnrecognized)
	}

	info := newInfoTable(doc)
	labels := p.locale.Labels
	assignedTo, _ := p.locale.SplitAt(info.text(labels.AssignedTo))

	project := cleanText(info.cell(labels.Project).Find("a").First().Text())
	if project == "" {
		project = info.text(labels.Project)
	}

	statusCell := info.cell(labels.Status)
	statusEl := statusCell.Find(".status-task").First()
	if statusEl.Length() == 0 {
		statusEl = statusCell
	}

	priorityEl := info.cell(labels.Priority).Find(".label-pri").First()
	if priorityEl.Length() == 0 {
		priorityEl = info.cell(labels.Priority)
	}

	task := model.Task{
		ID:             id,
		Title:          title,
		Status:         p.taskStatus(statusEl),
		Project:        project,
		AssignedTo:     assignedTo,
		Deadline:       info.text(labels.Deadline),
		Priority:       priority(priorityEl),
		Estimate:       info.text(labels.Estimate),
		Consumed:       info.text(labels.Consumed),
		Left:           info.text(labels.Left),
		EstimatedStart: info.text(labels.EstimatedStart),
		ActualStart:    info.text(labels.ActualStart),
	}

	p.logger.Debugf("parsed task %s detail", id)
	return task, nil
}
