package domain

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// Preset is a quick duration choice. PresetCustom means the range was
// picked on the calendar.
type Preset string

const (
	PresetCustom  Preset = ""
	Preset7Days   Preset = "7days"
	Preset14Days  Preset = "14days"
	Preset30Days  Preset = "30days"
	PresetOngoing Preset = "ongoing"
)

// Days returns the inclusive length of the preset. Ongoing campaigns are
// booked for 90 days.
func (p Preset) Days() (int, error) {
	switch p {
	case Preset7Days:
		return 7, nil
	case Preset14Days:
		return 14, nil
	case Preset30Days:
		return 30, nil
	case PresetOngoing:
		return 90, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPreset, p)
}

// Schedule is the campaign run. Start and End are calendar days (UTC
// midnight) and both are included. RangeOpen is set while a calendar
// range is being picked and the next pick sets the end date.
type Schedule struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Preset    Preset    `json:"preset,omitempty"`
	RangeOpen bool      `json:"range_open,omitempty"`
}

// Date truncates t to its calendar day in UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DefaultSchedule is a seven day run starting today.
func DefaultSchedule(today time.Time) Schedule {
	start := Date(today)
	return Schedule{Start: start, End: start.AddDate(0, 0, 6), Preset: Preset7Days}
}

// ApplyPreset keeps the start date and sets End to Start + (N-1) days.
func (s Schedule) ApplyPreset(p Preset) (Schedule, error) {
	n, err := p.Days()
	if err != nil {
		return s, err
	}
	s.End = s.Start.AddDate(0, 0, n-1)
	s.Preset = p
	s.RangeOpen = false
	return s, nil
}

// PickDate handles a calendar click. The first click starts a range with a
// provisional seven day end; a second click on or after the start closes
// it; a click before the start restarts the range there.
func (s Schedule) PickDate(d time.Time) Schedule {
	d = Date(d)
	s.Preset = PresetCustom
	if s.RangeOpen && !d.Before(s.Start) {
		s.End = d
		s.RangeOpen = false
		return s
	}
	s.Start = d
	s.End = d.AddDate(0, 0, 6)
	s.RangeOpen = true
	return s
}

// SetRange assigns both dates at once.
func (s Schedule) SetRange(start, end time.Time) (Schedule, error) {
	start, end = Date(start), Date(end)
	if end.Before(start) {
		return s, ErrInvalidSchedule
	}
	return Schedule{Start: start, End: end}, nil
}

// DurationDays is the inclusive number of days between Start and End,
// at least 1.
func (s Schedule) DurationDays() int64 {
	return DurationDays(s.Start, s.End)
}

// DurationDays counts the calendar days from start through end, both
// included. The order of the arguments does not matter.
func DurationDays(start, end time.Time) int64 {
	diff := Date(end).Sub(Date(start))
	if diff < 0 {
		diff = -diff
	}
	return int64((diff+day-1)/day) + 1
}
