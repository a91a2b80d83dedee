package scrape

import "github.com/PuerkitoBio/goquery"

// Selector chains are evaluated in order and the first one matching
// at least one element wins. New markup variants are added here.
var (
	taskRowSelectors = []string{
		"tr[data-id]",
		"#taskTable tbody tr",
		"tbody tr",
		".table tr",
	}

	bugRowSelectors = []string{
		"tr[data-id]",
		"#bugList tbody tr",
		".table-bug tbody tr",
		"#myBugForm table tbody tr",
	}

	titleSelectors = []string{
		"#mainMenu .page-title .text",
		".page-title .text",
		".main-header h2",
	}

	narrativeContainerSelectors = []string{
		"#mainContent .main-col .detail .detail-content.article-content",
		".detail .detail-content.article-content",
		".article-content",
		"#steps",
	}

	memberSelectors = []string{
		"select#assignedTo option",
		"select[name='assignedTo'] option",
	}

	detailRowSelector = "table tr"
)

// firstMatch returns the elements of the first selector in the chain that
// matches anything, an empty selection is returned when nothing matches.
func firstMatch(s *goquery.Selection, chain []string) (*goquery.Selection, string) {
	for _, selector := range chain {
		found := s.Find(selector)
		if found.Length() > 0 {
			return found, selector
		}
	}
	return s.FindNodes(), ""
}

// firstText returns the first non empty text of the selectors scoped to s.
func firstText(s *goquery.Selection, selectors ...string) string {
	for _, selector := range selectors {
		if t := cleanText(s.Find(selector).First().Text()); t != "" {
			return t
		}
	}
	return ""
}
