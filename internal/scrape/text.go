package scrape

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// cleanText collapses whitespace runs into a single space.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// nodeText returns the text of a node keeping `<br>` and block boundaries
// as line breaks, empty lines are dropped.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style:
				return
			case atom.Br:
				b.WriteString("\n")
				return
			case atom.P, atom.Div, atom.Li, atom.Tr:
				defer b.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	lines := strings.Split(b.String(), "\n")
	kept := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = cleanText(l); l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n")
}
