package standup

import "time"

// Clock supplies the current time so "today" can be fixed in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in local time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().In(time.Local) }

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// Today returns the current date at midnight according to clock.
func Today(clock Clock) time.Time {
	if clock == nil {
		clock = SystemClock{}
	}
	return truncateDate(clock.Now())
}

// PreviousMonth returns the first day of the month before date.
func PreviousMonth(date time.Time) time.Time {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	return first.AddDate(0, -1, 0)
}
