package scrape

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/slok/zentao/internal/locale"
	"github.com/slok/zentao/internal/model"
)

// Longest text accepted as a section title, longer bracketed paragraphs are content.
const maxSectionTitleRunes = 20

// narrativeBuilder accumulates the open section while scanning the flat
// sequence of title, paragraph and image nodes.
type narrativeBuilder struct {
	current locale.Section
	text    []string
	images  []string

	sections map[locale.Section]model.NarrativeSection
}

func newNarrativeBuilder() *narrativeBuilder {
	return &narrativeBuilder{
		// Content before any title belongs to the steps.
		current:  locale.SectionSteps,
		sections: map[locale.Section]model.NarrativeSection{},
	}
}

func (b *narrativeBuilder) addText(t string) {
	if t = strings.TrimSpace(t); t != "" {
		b.text = append(b.text, t)
	}
}

func (b *narrativeBuilder) addImage(src string) {
	if src != "" {
		b.images = append(b.images, src)
	}
}

// flush stores the open section. A title repeated later in the document
// appends to the content already stored.
func (b *narrativeBuilder) flush() {
	if len(b.text) == 0 && len(b.images) == 0 {
		return
	}

	sec := b.sections[b.current]
	text := strings.Join(b.text, "\n")
	if sec.Text != "" && text != "" {
		sec.Text += "\n" + text
	} else if text != "" {
		sec.Text = text
	}
	sec.Images = append(sec.Images, b.images...)
	b.sections[b.current] = sec

	b.text = nil
	b.images = nil
}

func (b *narrativeBuilder) start(s locale.Section) {
	b.flush()
	b.current = s
}

// parseNarrative splits the steps block of a bug into steps, result and expected.
func (p *Parser) parseNarrative(doc *goquery.Document) (steps, result, expected model.NarrativeSection) {
	container, selector := firstMatch(doc.Selection, narrativeContainerSelectors)
	if container.Length() == 0 {
		p.logger.Debugf("bug page has no narrative block")
		return steps, result, expected
	}
	p.logger.Debugf("narrative block found using selector %q", selector)

	root := container.First()
	// Editors sometimes wrap the whole content in a single block.
	for {
		children := root.Children()
		if children.Length() != 1 || !children.Is("div, section") || strings.TrimSpace(root.Contents().Not("div, section").Text()) != "" {
			break
		}
		root = children
	}

	b := newNarrativeBuilder()
	root.Contents().Each(func(_ int, s *goquery.Selection) {
		p.scanNarrativeNode(b, s)
	})
	b.flush()

	return b.sections[locale.SectionSteps], b.sections[locale.SectionResult], b.sections[locale.SectionExpected]
}

func (p *Parser) scanNarrativeNode(b *narrativeBuilder, s *goquery.Selection) {
	n := s.Get(0)
	switch n.Type {
	case html.TextNode:
		b.addText(cleanText(n.Data))
		return
	case html.ElementNode:
	default:
		return
	}

	switch n.DataAtom {
	case atom.Script, atom.Style:
		return
	case atom.Img:
		b.addImage(p.imageSource(s))
		return
	}

	text := nodeText(n)
	if p.isSectionTitle(s, text) {
		if section := p.locale.Section(text); section != locale.SectionNone {
			b.start(section)
			return
		}
	}

	// A title can share its paragraph with the content, split by a line break.
	if first, rest, ok := strings.Cut(text, "\n"); ok && isBracketed(first) {
		if section := p.locale.Section(first); section != locale.SectionNone {
			b.start(section)
			text = rest
		}
	}

	b.addText(text)
	s.Find("img").Each(func(_ int, img *goquery.Selection) {
		b.addImage(p.imageSource(img))
	})
}

func (p *Parser) isSectionTitle(s *goquery.Selection, text string) bool {
	if s.HasClass("stepTitle") {
		return true
	}
	return isBracketed(text)
}

func isBracketed(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || utf8.RuneCountInString(text) > maxSectionTitleRunes {
		return false
	}

	opened := strings.HasPrefix(text, "[") || strings.HasPrefix(text, "【")
	closed := strings.HasSuffix(text, "]") || strings.HasSuffix(text, "】")
	return opened && closed
}

func (p *Parser) imageSource(img *goquery.Selection) string {
	src := img.AttrOr("src", "")
	if strings.TrimSpace(src) == "" {
		src = img.AttrOr("data-src", "")
	}
	return p.resolveURL(src)
}
