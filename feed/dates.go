package feed

import (
	"strconv"
	"strings"
	"time"
)

// TBA is shown when an event has no usable date.
const TBA = "TBA"

// datetime layouts tried, in order, for strings that carry a time component.
var offsetLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02T15:04:05Z0700",
}

var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// nowFunc is replaced in tests.
var nowFunc = time.Now

// ParseEventDate turns a heterogeneous date string into a time in loc.
//
// Strings with a time component honour their offset (converted to loc) or,
// without one, are read as wall-clock time in loc. Date-only strings become
// midnight in loc with the exact year, month and day given, whatever loc's
// offset from UTC. Missing or unparseable input yields now and false.
func ParseEventDate(raw string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nowFunc().In(loc), false
	}

	if strings.ContainsAny(raw, "Tt") {
		// ISO 8601 letters are case-insensitive; the layouts expect upper case
		raw = strings.ToUpper(raw)
		for _, layout := range offsetLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t.In(loc), true
			}
		}
		for _, layout := range localLayouts {
			if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
				return t, true
			}
		}
		return nowFunc().In(loc), false
	}

	if t, ok := parseDateOnly(raw, loc); ok {
		return t, true
	}
	return nowFunc().In(loc), false
}

func parseDateOnly(raw string, loc *time.Location) (time.Time, bool) {
	// tolerate "2025-01-30 22:00" style suffixes by ignoring them
	if i := strings.IndexByte(raw, ' '); i > 0 {
		raw = raw[:i]
	}
	parts := strings.Split(raw, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) != 4 {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Day() != day {
		// Feb 30 and friends
		return time.Time{}, false
	}
	return t, true
}

// FormatEventDate renders a card label such as "Fri, Jan 30", or TBA.
func FormatEventDate(raw string, loc *time.Location) string {
	t, ok := ParseEventDate(raw, loc)
	if !ok {
		return TBA
	}
	return t.Format("Mon, Jan 2")
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	a, b = a.In(loc), b.In(loc)
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// startOfDay returns local midnight of t's calendar day.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
