package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDisplayRoundTrip(t *testing.T) {
	inputs := []string{
		"01-01-2024 10:00",
		"31-12-2023 23:59",
		"29-02-2024 08:30",
		"15-06-2025 00:00",
	}

	for _, in := range inputs {
		parsed, ok := Parse(in)
		require.True(t, ok, "parse %q", in)
		assert.Equal(t, in, FormatDisplay(parsed))
	}
}

func TestParseRejectsInvalidCalendarDates(t *testing.T) {
	inputs := []string{
		"31-02-2024 10:00",
		"29-02-2023 10:00",
		"31-04-2024 00:00",
		"00-01-2024 10:00",
		"01-13-2024 10:00",
		"01-01-2024 24:00",
		"01-01-2024 10:60",
	}

	for _, in := range inputs {
		_, ok := Parse(in)
		assert.False(t, ok, "expected %q to be rejected", in)
	}
}

func TestParseStandardLayouts(t *testing.T) {
	cases := map[string]time.Time{
		"2024-01-02T10:30:00Z":  time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC),
		"2024-01-02 10:30:00":   time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC),
		"2024-01-02":            time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		"02-01-2024":            time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		"2024-01-02T10:30":      time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC),
		"2024-01-02T10:30:00.5Z": time.Date(2024, 1, 2, 10, 30, 0, 500000000, time.UTC),
	}

	for in, want := range cases {
		got, ok := Parse(in)
		require.True(t, ok, "parse %q", in)
		assert.True(t, want.Equal(got), "parse %q: got %v", in, got)
	}
}

func TestParseGarbage(t *testing.T) {
	for _, in := range []string{"", "yesterday", "1-1-2024", "32-01-2024 10:00"} {
		_, ok := Parse(in)
		assert.False(t, ok, "expected %q to be rejected", in)
	}
}

func TestFormatters(t *testing.T) {
	ts := time.Date(2024, 3, 7, 9, 5, 0, 0, time.UTC)

	assert.Equal(t, "07-03-2024 09:05", FormatDisplay(ts))
	assert.Equal(t, "2024-03-07", FormatDateInput(ts))
	assert.Equal(t, "2024-03-07T09:05", FormatDateTimeInput(ts))
	assert.Equal(t, "2024-03-07T09:05:00Z", FormatISO(ts))
}

func TestDaysAgo(t *testing.T) {
	want := FormatDateInput(time.Now().AddDate(0, 0, -7))
	assert.Equal(t, want, DaysAgo(7))
}

func TestDayBoundaries(t *testing.T) {
	morning := time.Date(2024, 3, 7, 0, 1, 0, 0, time.UTC)
	night := time.Date(2024, 3, 7, 23, 59, 0, 0, time.UTC)

	assert.True(t, SameOrAfterDay(morning, night))
	assert.True(t, SameOrBeforeDay(night, morning))
	assert.False(t, SameOrAfterDay(morning, night.AddDate(0, 0, 1)))
}
