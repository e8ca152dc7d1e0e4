package series

import (
	"strings"
	"time"
)

var calendarLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// parseDate tries year-month-day first and falls back to day-month-year when the
// string has three hyphen separated parts.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range calendarLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if !strings.Contains(s, "-") {
		return time.Time{}, false
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-1-2", parts[2]+"-"+parts[1]+"-"+parts[0])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
