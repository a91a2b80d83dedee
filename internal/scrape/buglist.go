package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/slok/zentao/internal/model"
)

// ParseBugList parses the "my bugs" list page. It never fails, rows without
// an id are skipped and unparseable documents return what was parsed so far.
func (p *Parser) ParseBugList(html string) (bugs []model.Bug) {
	bugs = []model.Bug{}
	defer func() {
		if r := recover(); r != nil {
			p.logger.Errorf("bug list parsing aborted after %d bugs: %v", len(bugs), r)
		}
	}()

	doc, err := loadDocument(html)
	if err != nil {
		p.logger.Errorf("could not parse bug list: %s", err)
		return bugs
	}

	rows, selector := firstMatch(doc.Selection, bugRowSelectors)
	p.logger.Debugf("found %d bug rows using selector %q", rows.Length(), selector)

	skipped := 0
	rows.Each(func(_ int, row *goquery.Selection) {
		bug, ok := p.parseBugRow(row)
		if !ok {
			skipped++
			return
		}
		bugs = append(bugs, bug)
	})

	p.logger.Debugf("parsed %d bugs, skipped %d rows without id", len(bugs), skipped)
	return bugs
}

func (p *Parser) parseBugRow(row *goquery.Selection) (model.Bug, bool) {
	id := strings.TrimSpace(row.Find("input[name='bugIDList[]']").AttrOr("value", ""))
	if id == "" {
		id = strings.TrimSpace(row.AttrOr("data-id", ""))
	}
	if id == "" {
		return model.Bug{}, false
	}

	users := row.Find(".c-user")
	openedBy := cleanText(users.Eq(0).Text())
	resolution := p.locale.BugResolution(cleanText(row.Find(".c-resolution").Text()))

	assignedTo := firstText(row, ".c-assignedTo")
	if assignedTo == "" {
		assignedTo = openedBy
	}

	return model.Bug{
		ID:         id,
		Title:      firstText(row, ".text-left.nobr a", ".c-title a", ".c-title"),
		Status:     p.bugStatus(cleanText(row.Find(".c-status").Text()), resolution),
		Severity:   model.ParseBugSeverity(row.Find(".c-severity .label-severity").AttrOr("data-severity", "")),
		Priority:   priority(row.Find(".label-pri").First()),
		Type:       p.locale.BugType(cleanText(row.Find(".c-type").Text())),
		Product:    firstText(row, ".c-product a", ".c-product"),
		OpenedBy:   openedBy,
		AssignedTo: assignedTo,
		Confirmed:  !p.locale.IsUnconfirmed(row.Find(".c-confirm").Text()),
		Deadline:   firstText(row, ".c-date.text-center"),
		ResolvedBy: cleanText(users.Eq(1).Text()),
		Resolution: resolution,
	}, true
}

// bugStatus maps the status text when present, otherwise a bug with a
// resolution is resolved and any other bug is active.
func (p *Parser) bugStatus(text string, resolution model.BugResolution) model.BugStatus {
	if status := p.locale.BugStatus(text); status != model.BugStatusUnknown {
		return status
	}
	if resolution != model.BugResolutionNone {
		return model.BugStatusResolved
	}
	return model.BugStatusActive
}
