// Package worktime calculates task dates using the office work schedule.
package worktime

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// Layout is the date time format the Zentao forms use.
	Layout = "2006-01-02 15:04"
	// DateLayout is the date only format.
	DateLayout = "2006-01-02"

	// StartHour is the hour the workday starts.
	StartHour = 9
	// EndHour is the hour the workday ends.
	EndHour = 18
	// HoursPerDay are the work hours of a day.
	HoursPerDay = 8
)

// FinishTime returns when a task started at start is finished after the
// consumed work hours, counting 8 hours per workday:
//
//   - 4h ends the same day at 13:00.
//   - 8h ends the same day at 18:00.
//   - 12h ends the next day at 13:00.
//   - 16h ends the next day at 18:00.
//
// Non positive hours return start unchanged.
func FinishTime(start time.Time, hours float64) time.Time {
	if hours <= 0 {
		return start
	}

	days := int(math.Ceil(hours / HoursPerDay))
	remaining := math.Mod(hours, HoursPerDay)

	day := start.AddDate(0, 0, days-1)
	y, m, d := day.Date()
	if remaining == 0 {
		return time.Date(y, m, d, EndHour, 0, 0, 0, start.Location())
	}

	begin := time.Date(y, m, d, StartHour, 0, 0, 0, start.Location())
	return begin.Add(time.Duration(remaining * float64(time.Hour))).Truncate(time.Minute)
}

// DefaultStart returns the default real start of a task: the estimated start
// date at the start of the workday, or today when there is no valid estimation.
func DefaultStart(estimatedStart string, now time.Time) time.Time {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(estimatedStart), now.Location())
	if err != nil {
		d = now
	}

	y, m, day := d.Date()
	return time.Date(y, m, day, StartHour, 0, 0, 0, now.Location())
}

// ParseHours parses an hours quantity, invalid quantities are 0.
func ParseHours(s string) float64 {
	h, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	return h
}

// FormatHours formats an hours quantity without trailing zeros.
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// AddHours returns the sum of two hour quantities, used to get the total
// consumed hours from the previous and the current ones.
func AddHours(previous, current string) string {
	return FormatHours(ParseHours(previous) + ParseHours(current))
}
