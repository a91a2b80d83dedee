package scrape

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// infoTable indexes the label/value rows (`<th>label</th><td>value</td>`)
// of a detail page by label.
type infoTable struct {
	cells map[string]*goquery.Selection
	empty *goquery.Selection
}

func newInfoTable(doc *goquery.Document) infoTable {
	t := infoTable{
		cells: map[string]*goquery.Selection{},
		empty: doc.FindNodes(),
	}

	doc.Find(detailRowSelector).Each(func(_ int, row *goquery.Selection) {
		row.Find("th").Each(func(_ int, th *goquery.Selection) {
			label := normalizeLabel(th.Text())
			td := th.NextFiltered("td")
			if label == "" || td.Length() == 0 {
				return
			}
			// First occurrence wins, the main info block comes first in the page.
			if _, ok := t.cells[label]; !ok {
				t.cells[label] = td
			}
		})
	})

	return t
}

func normalizeLabel(s string) string {
	s = cleanText(s)
	s = strings.TrimRight(s, ":：")
	return strings.TrimSpace(s)
}

// cell returns the value cell of the first label present, or an empty selection.
func (t infoTable) cell(labels []string) *goquery.Selection {
	for _, l := range labels {
		if c, ok := t.cells[l]; ok {
			return c
		}
	}
	return t.empty
}

func (t infoTable) text(labels []string) string {
	return cleanText(t.cell(labels).Text())
}

// Page titles look like "BUG #123 Login fails / Product - Zentao".
var titleTagRegexp = regexp.MustCompile(`#(\d+)\s+(.+?)(?:\s+-\s+[^-]+)?$`)

// pageTitle returns the entity title using the title chain, falling back to the
// `<title>` element. Returns false if the document has no recognizable title.
func (p *Parser) pageTitle(doc *goquery.Document, id string) (string, bool) {
	found, _ := firstMatch(doc.Selection, titleSelectors)
	if found.Length() > 0 {
		el := found.First()
		if title := cleanText(el.AttrOr("title", "")); title != "" {
			return title, true
		}
		if title := cleanText(el.Text()); title != "" {
			return title, true
		}
	}

	m := titleTagRegexp.FindStringSubmatch(cleanText(doc.Find("title").First().Text()))
	if m == nil {
		return "", false
	}
	if id != "" && m[1] != id {
		p.logger.Warningf("page title id %q doesn't match requested id %q", m[1], id)
	}
	return m[2], true
}
