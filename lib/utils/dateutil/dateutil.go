package dateutil

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// parseLayouts covers the shapes the front end and older exports have been seen
// sending, tried in order.
var parseLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
}

func IsISODate(s string) bool {
	return isoDateRe.MatchString(s)
}

func ParseFlexible(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Sanitize normalizes one date to YYYY-MM-DD. Unparseable input falls back to
// today's date, matching the submit contract.
func Sanitize(s string, now time.Time) string {
	if IsISODate(s) {
		return s
	}
	if t, ok := ParseFlexible(s); ok {
		return t.Format("2006-01-02")
	}
	return now.Format("2006-01-02")
}

// FormatDisplay renders one date as "January 02, 2006"; unparseable input comes
// back as the literal error text shown on the printed form.
func FormatDisplay(s string) string {
	if s == "" {
		return ""
	}
	t, ok := ParseFlexible(s)
	if !ok {
		return "Date format error"
	}
	return t.Format("January 02, 2006")
}

func FormatDisplayList(dates []string) string {
	if len(dates) == 0 {
		return ""
	}
	formatted := make([]string, 0, len(dates))
	for _, d := range dates {
		formatted = append(formatted, FormatDisplay(d))
	}
	return strings.Join(formatted, ", ")
}

// FormatTime12h converts 24-hour "HH:MM" to "3:04 PM". Anything that does not
// look like a time is returned unchanged.
func FormatTime12h(s string) string {
	if s == "" {
		return ""
	}
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return s
	}
	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return s
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return s
	}
	t := time.Date(0, 1, 1, hours, minutes, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}
