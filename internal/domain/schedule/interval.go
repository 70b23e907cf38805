// Package schedule implements the overlap test and conflict scanner shared by
// venue reservations and item borrowings. Dates and times of day are kept as
// plain strings in the store's wire format ("2006-01-02" and "15:04"), which
// compare lexicographically the same way they compare chronologically, so the
// whole package works without time zones.
package schedule

import (
	"errors"
	"time"
)

var (
	ErrBadDate           = errors.New("schedule: malformed date, want YYYY-MM-DD")
	ErrBadClock          = errors.New("schedule: malformed time of day, want HH:mm")
	ErrDateRangeInverted = errors.New("schedule: start date is after end date")
	ErrTimeRangeEmpty    = errors.New("schedule: start time must be before end time")
	ErrNoResources       = errors.New("schedule: booking occupies no resources")
)

// Date is a calendar day in YYYY-MM-DD form.
type Date string

func (d Date) Validate() error {
	if _, err := time.Parse("2006-01-02", string(d)); err != nil {
		return ErrBadDate
	}
	return nil
}

// Clock is a time of day in 24h HH:mm form.
type Clock string

func (c Clock) Validate() error {
	if _, err := time.Parse("15:04", string(c)); err != nil {
		return ErrBadClock
	}
	return nil
}

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	Start Date
	End   Date
}

// SingleDay builds the one-day range used by item borrowings.
func SingleDay(d Date) DateRange {
	return DateRange{Start: d, End: d}
}

func (r DateRange) Validate() error {
	if err := r.Start.Validate(); err != nil {
		return err
	}
	if err := r.End.Validate(); err != nil {
		return err
	}
	if r.Start > r.End {
		return ErrDateRangeInverted
	}
	return nil
}

// TimeRange is a half-open span of time within a day: a booking ending at
// 11:00 leaves 11:00 free for the next one.
type TimeRange struct {
	Start Clock
	End   Clock
}

func (r TimeRange) Validate() error {
	if err := r.Start.Validate(); err != nil {
		return err
	}
	if err := r.End.Validate(); err != nil {
		return err
	}
	if r.Start >= r.End {
		return ErrTimeRangeEmpty
	}
	return nil
}

// Interval is the slot a booking occupies: a date range with a time window
// that applies to every day in the range. A multi-day reservation for
// 09:00-17:00 means 09:00-17:00 on each of its days, which is why Overlaps
// can test dates and times independently.
type Interval struct {
	Dates DateRange
	Times TimeRange
}

func (iv Interval) Validate() error {
	if err := iv.Dates.Validate(); err != nil {
		return err
	}
	return iv.Times.Validate()
}

// Overlaps reports whether two intervals intersect. Date ranges are inclusive
// on both ends; time ranges are half-open, so touching time boundaries do not
// collide. Inputs are assumed valid; the result is undefined otherwise.
func (iv Interval) Overlaps(other Interval) bool {
	if iv.Dates.End < other.Dates.Start || other.Dates.End < iv.Dates.Start {
		return false
	}
	return iv.Times.Start < other.Times.End && other.Times.Start < iv.Times.End
}
