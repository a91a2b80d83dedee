package printer

import (
	"fmt"
	"strings"
	"time"
)

// DeadlineIn returns a human-readable distance to a deadline date.
// Examples: "today", "tomorrow", "in 3 days", "2 days late".
// Dates Zentao leaves empty or zeroed return an empty string.
func DeadlineIn(deadline string, now time.Time) string {
	d, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(deadline), now.Location())
	if err != nil {
		return ""
	}

	y, m, day := now.Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, now.Location())
	days := int(d.Sub(today).Hours() / 24)

	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "1 day late"
	case days < 0:
		return fmt.Sprintf("%d days late", -days)
	default:
		return fmt.Sprintf("in %d days", days)
	}
}
