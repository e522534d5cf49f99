package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"haven/pkg/utils"
)

func TestParseEntryDateAcceptedLayouts(t *testing.T) {
	cases := []string{
		"2026-08-15T09:30:00.123456789Z",
		"2026-08-15T09:30:00Z",
		"2026-08-15T09:30:00",
		"2026-08-15",
	}
	for _, raw := range cases {
		parsed, ok := utils.ParseEntryDate(raw)
		assert.True(t, ok, "expected %q to parse", raw)
		assert.Equal(t, 2026, parsed.Year())
		assert.Equal(t, time.August, parsed.Month())
		assert.Equal(t, 15, parsed.Day())
	}
}

func TestParseEntryDateEmptyMeansNow(t *testing.T) {
	before := time.Now()
	parsed, ok := utils.ParseEntryDate("  ")
	assert.True(t, ok)
	assert.False(t, parsed.Before(before))
}

func TestParseEntryDateGarbage(t *testing.T) {
	_, ok := utils.ParseEntryDate("not a date")
	assert.False(t, ok)
}

func TestFormatEntryDate(t *testing.T) {
	now := time.Date(2026, 8, 31, 18, 0, 0, 0, time.UTC)

	assert.Equal(t, "Today", utils.FormatEntryDate(time.Date(2026, 8, 31, 2, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "Yesterday", utils.FormatEntryDate(time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "Aug 15, 2026", utils.FormatEntryDate(time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "Invalid date", utils.FormatEntryDate(time.Time{}, now))
}

func TestStartOfDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)

	in := time.Date(2026, 8, 31, 18, 45, 12, 999, loc)
	out := utils.StartOfDay(in)

	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, loc), out)
	assert.Equal(t, loc, out.Location())
}
