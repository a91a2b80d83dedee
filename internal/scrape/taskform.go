package scrape

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/slok/zentao/internal/model"
)

// Older Zentao versions only expose the form uid in a script: var kuid = '...';
var kuidRegexp = regexp.MustCompile(`kuid\s*=\s*['"]([^'"]+)['"]`)

// ParseTaskForm parses the task finish form fragment. It fails only when the
// fragment has neither the team member dropdown nor the form uid.
func (p *Parser) ParseTaskForm(html string) (model.TaskForm, error) {
	doc, err := loadDocument(html)
	if err != nil {
		return model.TaskForm{}, err
	}

	options, selector := firstMatch(doc.Selection, memberSelectors)
	p.logger.Debugf("found %d team member options using selector %q", options.Length(), selector)

	members := []model.TeamMember{}
	assignedTo := ""
	options.Each(func(_ int, opt *goquery.Selection) {
		value := strings.TrimSpace(opt.AttrOr("value", ""))
		label := cleanText(opt.Text())
		if value == "" && label == "" {
			return
		}

		_, selected := opt.Attr("selected")
		if selected && assignedTo == "" {
			assignedTo = value
		}

		title := cleanText(opt.AttrOr("title", ""))
		if title == "" {
			title = label
		}

		members = append(members, model.TeamMember{
			Value:    value,
			Label:    label,
			Title:    title,
			Selected: selected,
		})
	})

	uid := strings.TrimSpace(doc.Find("input[name='uid']").AttrOr("value", ""))
	if uid == "" {
		if m := kuidRegexp.FindStringSubmatch(html); m != nil {
			uid = m[1]
		}
	}

	if len(members) == 0 && uid == "" {
		return model.TaskForm{}, fmt.Errorf("task finish form not found: %w", model.ErrDocumentUnrecognized)
	}

	totalConsumed := inputValue(doc, "#consumed")
	if totalConsumed == "" {
		totalConsumed = cleanText(doc.Find("#consumedSpan").Text())
	}

	return model.TaskForm{
		Members:         members,
		CurrentConsumed: inputValue(doc, "#currentConsumed"),
		TotalConsumed:   totalConsumed,
		AssignedTo:      assignedTo,
		RealStarted:     inputValue(doc, "#realStarted"),
		FinishedDate:    inputValue(doc, "#finishedDate"),
		UID:             uid,
	}, nil
}

func inputValue(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().AttrOr("value", ""))
}
