// utils/timeutil.go
package utils

import (
	"strings"
	"time"
)

// Wire formats the mobile clients have historically sent. Dates are
// normalized to one canonical time.Time at the repository boundary;
// only formatting for display happens after that.
var entryDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseEntryDate parses a client-supplied date string. An empty input
// means "now" (the capture moment); an unparseable input returns ok=false
// so callers can render "Invalid date" instead of crashing.
func ParseEntryDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Now(), true
	}
	for _, layout := range entryDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatEntryDate renders an entry date the way the journal list shows
// it: "Today", "Yesterday", or a localized date.
func FormatEntryDate(t time.Time, now time.Time) string {
	if t.IsZero() {
		return "Invalid date"
	}
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	y3, m3, d3 := now.AddDate(0, 0, -1).Date()
	if y1 == y3 && m1 == m3 && d1 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

func NowUnixSeconds() int64 { return time.Now().Unix() }

// StartOfDay truncates t to midnight in its own location. Daily activity
// logs are keyed by this value, one row per user per day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
