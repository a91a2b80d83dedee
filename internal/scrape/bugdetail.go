package scrape

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/slok/zentao/internal/model"
)

// ParseBugDetail parses the bug view page. It only fails when the page
// has no recognizable title, every other field degrades to empty or zero.
//
// Image urls are resolved against the base url but not fetched.
func (p *Parser) ParseBugDetail(html, id string) (model.BugDetail, error) {
	doc, err := loadDocument(html)
	if err != nil {
		return model.BugDetail{}, err
	}

	title, ok := p.pageTitle(doc, id)
	if !ok {
		return model.BugDetail{}, fmt.Errorf("bug %s page has no title: %w", id, model.ErrDocumentUnrecognized)
	}

	info := newInfoTable(doc)
	labels := p.locale.Labels

	severityCell := info.cell(labels.Severity)
	severity := model.ParseBugSeverity(severityCell.Find("[data-severity]").AttrOr("data-severity", ""))
	if severity == model.BugSeverityUnknown {
		severity = model.ParseBugSeverity(cleanText(severityCell.Text()))
	}

	priorityEl := info.cell(labels.Priority).Find(".label-pri").First()
	if priorityEl.Length() == 0 {
		priorityEl = info.cell(labels.Priority)
	}

	// Resolutions may carry extra info, e.g. "重复Bug #12".
	resolution := model.BugResolutionNone
	if fields := strings.Fields(info.text(labels.Resolution)); len(fields) > 0 {
		resolution = p.locale.BugResolution(fields[0])
	}

	assignedInfo := info.text(labels.AssignedTo)
	assignedTo, _ := p.locale.SplitAt(assignedInfo)
	openedBy, openedDate := p.locale.SplitAt(info.text(labels.OpenedBy))
	resolvedBy, resolvedDate := p.locale.SplitAt(info.text(labels.ResolvedBy))
	if d := info.text(labels.ResolvedDate); d != "" {
		resolvedDate = d
	}
	_, closedDate := p.locale.SplitAt(info.text(labels.ClosedBy))
	if d := info.text(labels.ClosedDate); d != "" {
		closedDate = d
	}
	_, lastEditedDate := p.locale.SplitAt(info.text(labels.LastEdited))

	activatedCount := 0
	if raw := info.text(labels.ActivatedCount); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			p.logger.Warningf("invalid activated count %q on bug %s", raw, id)
		} else {
			activatedCount = n
		}
	}

	steps, result, expected := p.parseNarrative(doc)

	detail := model.BugDetail{
		Bug: model.Bug{
			ID:         id,
			Title:      title,
			Status:     p.bugStatus(info.text(labels.Status), resolution),
			Severity:   severity,
			Priority:   priority(priorityEl),
			Type:       p.locale.BugType(info.text(labels.Type)),
			Product:    info.text(labels.Product),
			OpenedBy:   openedBy,
			AssignedTo: assignedTo,
			Confirmed:  !p.locale.IsUnconfirmed(info.text(labels.Confirmed)),
			Deadline:   info.text(labels.Deadline),
			ResolvedBy: resolvedBy,
			Resolution: resolution,
		},
		Module:         info.text(labels.Module),
		Case:           info.text(labels.Case),
		Plan:           info.text(labels.Plan),
		ActivatedCount: activatedCount,
		OpenedDate:     openedDate,
		ResolvedDate:   resolvedDate,
		ClosedDate:     closedDate,
		LastEditedDate: lastEditedDate,
		AssignedInfo:   assignedInfo,
		FeedbackBy:     info.text(labels.FeedbackBy),
		NotifyEmail:    info.text(labels.NotifyEmail),
		OS:             info.text(labels.OS),
		Browser:        info.text(labels.Browser),
		Keywords:       info.text(labels.Keywords),
		CC:             splitList(info.text(labels.CC)),
		Steps:          steps,
		Result:         result,
		Expected:       expected,
	}

	p.logger.Debugf("parsed bug %s detail with %d/%d/%d images", id, len(steps.Images), len(result.Images), len(expected.Images))
	return detail, nil
}

// splitList splits user lists separated by commas or spaces.
func splitList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '，' || r == ' ' || r == ';'
	})
	if len(fields) == 0 {
		return nil
	}
	return fields
}
