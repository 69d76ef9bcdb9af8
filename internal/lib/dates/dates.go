package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Layouts tried before the DD-MM-YYYY fallback. Order matters: the most
// specific layouts go first so "2024-01-02 10:00:00" is not truncated.
var standardLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

var displayPattern = regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{4})(?: (\d{2}):(\d{2}))?$`)

// Parse reads a date-like string. Standard layouts are tried first; if
// none match, the dashboard display format DD-MM-YYYY HH:mm is parsed by
// hand and re-validated so calendar rollover (31-02-2024 becoming March)
// is rejected instead of silently accepted.
func Parse(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range standardLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	m := displayPattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	hour, minute := 0, 0
	if m[4] != "" {
		hour, _ = strconv.Atoi(m[4])
		minute, _ = strconv.Atoi(m[5])
	}
	if hour > 23 || minute > 59 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, false
	}

	return t, true
}

// FormatDisplay renders a date as DD-MM-YYYY HH:mm.
func FormatDisplay(t time.Time) string {
	return t.Format("02-01-2006 15:04")
}

// FormatDateInput renders a date as YYYY-MM-DD for date inputs.
func FormatDateInput(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDateTimeInput renders a date for datetime-local inputs.
func FormatDateTimeInput(t time.Time) string {
	return t.Format("2006-01-02T15:04")
}

// FormatISO renders a full ISO 8601 timestamp for the table store.
func FormatISO(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Day truncates a parsed date to its calendar day key (YYYY-MM-DD).
func Day(t time.Time) string {
	return FormatDateInput(t)
}

// DaysAgo returns the YYYY-MM-DD string N days before now, for range
// queries.
func DaysAgo(n int) string {
	return FormatDateInput(time.Now().AddDate(0, 0, -n))
}

// SameOrAfterDay reports whether a falls on the same calendar day as b or
// later. Range filtering is inclusive at day granularity.
func SameOrAfterDay(a, b time.Time) bool {
	return !dayStart(a).Before(dayStart(b))
}

// SameOrBeforeDay reports whether a falls on the same calendar day as b or
// earlier.
func SameOrBeforeDay(a, b time.Time) bool {
	return !dayStart(a).After(dayStart(b))
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MustParse is a test helper that panics on unparseable input.
func MustParse(s string) time.Time {
	t, ok := Parse(s)
	if !ok {
		panic(fmt.Sprintf("unparseable date %q", s))
	}
	return t
}
