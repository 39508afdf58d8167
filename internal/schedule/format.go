// Package schedule implements the reservation scheduling core: clock
// formatting, time-slot partitioning, table availability and the mapping
// between reservations and editable form fields.  Everything in this package
// is a pure data transformation; callers fetch fresh input from the backend
// and recompute derived views per request.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are the accepted shapes of a reservation's date field, tried
// in order.  The backend normally emits RFC3339 but older records exist
// with the seconds-precision and date-only variants.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a reservation date string.  The boolean is false when no
// accepted layout matches; callers treat such records as malformed and drop
// them rather than erroring out.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatClock renders t as a 12-hour lowercase clock with no space before
// the am/pm marker and no leading zero on the hour: "2:30pm", "9:05am",
// "12:00am" for midnight and "12:00pm" for noon.
func FormatClock(t time.Time) string {
	h := t.Hour()
	marker := "am"
	if h >= 12 {
		marker = "pm"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d%s", h12, t.Minute(), marker)
}

// HourOf returns the hour of day (0–23) in t's own location.  No timezone
// normalization happens here: whatever location the timestamp carries
// decides the partition bucket.
func HourOf(t time.Time) int {
	return t.Hour()
}

// ParseClock is the inverse of FormatClock.  It accepts "h:mma" strings
// such as "2:30pm" (case-insensitive, optional space before the marker) and
// returns the 24-hour clock components.
func ParseClock(s string) (hour, minute int, err error) {
	v := strings.ToLower(strings.TrimSpace(s))
	marker := ""
	switch {
	case strings.HasSuffix(v, "am"):
		marker = "am"
	case strings.HasSuffix(v, "pm"):
		marker = "pm"
	default:
		return 0, 0, fmt.Errorf("clock %q: missing am/pm marker", s)
	}
	v = strings.TrimSpace(strings.TrimSuffix(v, marker))
	hh, mm, ok := strings.Cut(v, ":")
	if !ok {
		return 0, 0, fmt.Errorf("clock %q: missing minutes", s)
	}
	hour, err = strconv.Atoi(hh)
	if err != nil || hour < 1 || hour > 12 {
		return 0, 0, fmt.Errorf("clock %q: bad hour", s)
	}
	minute, err = strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("clock %q: bad minute", s)
	}
	if marker == "pm" && hour != 12 {
		hour += 12
	}
	if marker == "am" && hour == 12 {
		hour = 0
	}
	return hour, minute, nil
}

// clockRank orders a formatted clock string by its minute of day.  Unparsable
// strings rank first so a defect stays visible instead of panicking a sort.
func clockRank(clock string) int {
	h, m, err := ParseClock(clock)
	if err != nil {
		return -1
	}
	return h*60 + m
}

// SameDay reports whether a and b fall on the same calendar date, each in
// its own location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
