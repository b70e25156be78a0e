package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDurationDays(t *testing.T) {
	start := date(2024, time.March, 1)
	assert.Equal(t, int64(1), DurationDays(start, start))
	assert.Equal(t, int64(7), DurationDays(start, start.AddDate(0, 0, 6)))
	assert.Equal(t, int64(7), DurationDays(start.AddDate(0, 0, 6), start))
	assert.Equal(t, int64(31), DurationDays(start, date(2024, time.March, 31)))
	// times within a day do not change the count
	assert.Equal(t, int64(2), DurationDays(start.Add(23*time.Hour), start.AddDate(0, 0, 1).Add(time.Hour)))
}

func TestDefaultSchedule(t *testing.T) {
	s := DefaultSchedule(time.Date(2024, time.May, 10, 15, 30, 0, 0, time.UTC))
	assert.Equal(t, date(2024, time.May, 10), s.Start)
	assert.Equal(t, date(2024, time.May, 16), s.End)
	assert.Equal(t, int64(7), s.DurationDays())
}

func TestSchedulePresets(t *testing.T) {
	tests := []struct {
		preset Preset
		days   int64
	}{
		{Preset7Days, 7},
		{Preset14Days, 14},
		{Preset30Days, 30},
		{PresetOngoing, 90},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			for _, start := range []time.Time{date(2024, time.January, 1), date(2024, time.February, 25), date(2023, time.December, 30)} {
				s, err := Schedule{Start: start, End: start}.ApplyPreset(tt.preset)
				require.NoError(t, err)
				assert.Equal(t, start.AddDate(0, 0, int(tt.days)-1), s.End)
				assert.Equal(t, tt.days, s.DurationDays())
				assert.Equal(t, tt.preset, s.Preset)
			}
		})
	}

	_, err := Schedule{}.ApplyPreset("60days")
	assert.ErrorIs(t, err, ErrInvalidPreset)
}

func TestSchedulePickDate(t *testing.T) {
	s := DefaultSchedule(date(2024, time.June, 1))

	// first click starts a range with a provisional week
	s = s.PickDate(date(2024, time.June, 10))
	assert.Equal(t, date(2024, time.June, 10), s.Start)
	assert.Equal(t, date(2024, time.June, 16), s.End)
	assert.True(t, s.RangeOpen)
	assert.Equal(t, PresetCustom, s.Preset)

	// a click before the start restarts the range
	s = s.PickDate(date(2024, time.June, 5))
	assert.Equal(t, date(2024, time.June, 5), s.Start)
	assert.Equal(t, date(2024, time.June, 11), s.End)
	assert.True(t, s.RangeOpen)

	// a click on or after the start closes it
	s = s.PickDate(date(2024, time.June, 20))
	assert.Equal(t, date(2024, time.June, 5), s.Start)
	assert.Equal(t, date(2024, time.June, 20), s.End)
	assert.False(t, s.RangeOpen)
	assert.Equal(t, int64(16), s.DurationDays())

	// the next click starts over
	s = s.PickDate(date(2024, time.July, 1))
	assert.Equal(t, date(2024, time.July, 1), s.Start)
	assert.True(t, s.RangeOpen)

	// single day range
	s = s.PickDate(date(2024, time.July, 1))
	assert.Equal(t, int64(1), s.DurationDays())
}

func TestScheduleSetRange(t *testing.T) {
	s, err := Schedule{}.SetRange(date(2024, time.June, 1), date(2024, time.June, 3))
	require.NoError(t, err)
	assert.Equal(t, int64(3), s.DurationDays())

	_, err = s.SetRange(date(2024, time.June, 3), date(2024, time.June, 1))
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}
