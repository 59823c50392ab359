package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var zones = []*time.Location{
	time.UTC,
	time.FixedZone("PST", -8*3600),
	time.FixedZone("HST", -10*3600),
	time.FixedZone("WAT", 1*3600),
	time.FixedZone("LINT", 14*3600),
}

func TestParseEventDate_DateOnlyKeepsCalendarDay(t *testing.T) {
	for _, loc := range zones {
		t.Run(loc.String(), func(t *testing.T) {
			got, ok := ParseEventDate("2025-01-30", loc)

			assert.True(t, ok)
			y, m, d := got.Date()
			assert.Equal(t, 2025, y)
			assert.Equal(t, time.January, m)
			assert.Equal(t, 30, d)
			assert.Equal(t, 0, got.Hour())
			assert.Equal(t, loc, got.Location())
		})
	}
}

func TestParseEventDate_Datetime(t *testing.T) {
	wat := time.FixedZone("WAT", 1*3600)

	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"utc offset converted", "2025-01-30T23:30:00Z", time.Date(2025, 1, 31, 0, 30, 0, 0, wat)},
		{"explicit offset", "2025-01-30T22:00:00-05:00", time.Date(2025, 1, 31, 4, 0, 0, 0, wat)},
		{"fractional seconds", "2025-01-30T20:00:00.000Z", time.Date(2025, 1, 30, 21, 0, 0, 0, wat)},
		{"no offset is local", "2025-01-30T22:00:00", time.Date(2025, 1, 30, 22, 0, 0, 0, wat)},
		{"minutes only", "2025-01-30T09:30", time.Date(2025, 1, 30, 9, 30, 0, 0, wat)},
		{"lowercase separator", "2025-01-30t22:00", time.Date(2025, 1, 30, 22, 0, 0, 0, wat)},
		{"lowercase zulu", "2025-01-30t23:30:00z", time.Date(2025, 1, 31, 0, 30, 0, 0, wat)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := ParseEventDate(test.raw, wat)

			assert.True(t, ok)
			assert.True(t, test.want.Equal(got), "want %v, got %v", test.want, got)
		})
	}
}

func TestParseEventDate_FallsBackToNow(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return fixed }
	defer func() { nowFunc = time.Now }()

	for _, raw := range []string{"", "   ", "Tonight", "soon", "2025-02-30", "25-01-30", "2025-13-01"} {
		got, ok := ParseEventDate(raw, time.UTC)

		assert.False(t, ok, raw)
		assert.True(t, fixed.Equal(got), raw)
	}
}

func TestFormatEventDate(t *testing.T) {
	loc := time.FixedZone("PST", -8*3600)

	assert.Equal(t, "Thu, Jan 30", FormatEventDate("2025-01-30", loc))
	assert.Equal(t, "Fri, Jan 31", FormatEventDate("2025-01-31T20:00:00", loc))
	assert.Equal(t, TBA, FormatEventDate("", loc))
	assert.Equal(t, TBA, FormatEventDate("next friday", loc))
}

func TestSameDay(t *testing.T) {
	loc := time.FixedZone("WAT", 1*3600)
	a := time.Date(2025, 1, 30, 23, 30, 0, 0, time.UTC) // Jan 31 00:30 WAT
	b := time.Date(2025, 1, 31, 10, 0, 0, 0, loc)

	assert.True(t, SameDay(a, b, loc))
	assert.False(t, SameDay(a, b, time.UTC))
}
