package jobs

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Today is returned by DaysAgo for postings at most one day old.
const Today = "Today"

const hoursPerDay = 24

// dateLayouts lists the posted_date formats seen from the API, most specific first.
//
//nolint:gochecknoglobals // read-only lookup table
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseDate parses an ISO-ish date. Date-only values are taken as UTC and
// zone-less timestamps as local time.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		loc := time.Local
		if layout == time.DateOnly {
			loc = time.UTC
		}
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DaysAgo renders the age of date relative to now: "Today" when the rounded-up
// day difference is at most one, otherwise "<n> days ago". The difference is
// absolute, so future dates count the same way. Unparseable input yields "".
func DaysAgo(date string, now time.Time) string {
	t, ok := ParseDate(date)
	if !ok {
		return ""
	}
	diff := now.Sub(t)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / hoursPerDay))
	if days <= 1 {
		return Today
	}
	return strconv.Itoa(days) + " days ago"
}

// absoluteDateLayout is used by PostedLabel when relative dates are off.
const absoluteDateLayout = "2 Jan 2006"

// PostedLabel renders date either relative to now (see DaysAgo) or as a
// calendar date. Unparseable input yields "".
func PostedLabel(date string, now time.Time, absolute bool) string {
	if !absolute {
		return DaysAgo(date, now)
	}
	t, ok := ParseDate(date)
	if !ok {
		return ""
	}
	return t.Format(absoluteDateLayout)
}
