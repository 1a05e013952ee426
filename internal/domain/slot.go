package domain

import (
	"fmt"
	"time"
)

// Service hours, inclusive on both ends.
const (
	OpeningTime TimeOfDay = 9 * 60
	ClosingTime TimeOfDay = 22 * 60
)

// PastGrace tolerates clock skew so booking for the current minute stays usable.
const PastGrace = time.Minute

// TimeOfDay is a wall-clock time expressed as minutes from midnight.
type TimeOfDay int

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid time %q, expected HH:MM", ErrValidation, s)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t/60, t%60)
}

// Clock renders the value the way Postgres TIME columns expect it.
func (t TimeOfDay) Clock() string {
	return fmt.Sprintf("%02d:%02d:00", t/60, t%60)
}

// CombineDateTime resolves a date plus a time of day to an absolute instant in loc.
func CombineDateTime(date time.Time, t TimeOfDay, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), int(t)/60, int(t)%60, 0, 0, loc)
}

// ValidateSlot checks a requested date and time against the past-date rule
// and the service hours. Pure: the current instant comes in as an argument.
func ValidateSlot(date time.Time, t TimeOfDay, now time.Time, loc *time.Location) error {
	if CombineDateTime(date, t, loc).Before(now.Add(-PastGrace)) {
		return ErrSlotInPast
	}
	if t < OpeningTime || t > ClosingTime {
		return ErrOutsideServiceHours
	}
	return nil
}

// Window computes the symmetric conflict window around t, clamped to the day.
func Window(t TimeOfDay, buffer time.Duration) (from, to TimeOfDay) {
	b := TimeOfDay(buffer / time.Minute)
	from, to = t-b, t+b
	if from < 0 {
		from = 0
	}
	if max := TimeOfDay(24*60 - 1); to > max {
		to = max
	}
	return from, to
}
