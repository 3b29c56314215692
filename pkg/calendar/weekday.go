package calendar

import (
	"fmt"
	"time"
)

// ValidWeekday returns an ErrInvalidArgument error unless wd is between
// Sunday (0) and Saturday (6).
func ValidWeekday(wd time.Weekday) error {
	if wd < time.Sunday || wd > time.Saturday {
		return fmt.Errorf("%w: illegal day number %d, expecting a day between 0 and 6", ErrInvalidArgument, int(wd))
	}
	return nil
}

// LastWeekday returns the weekday closing a week that starts on first.
// For Monday (1) this is Sunday (0).
func LastWeekday(first time.Weekday) (time.Weekday, error) {
	if err := ValidWeekday(first); err != nil {
		return 0, err
	}
	return (first + 6) % 7, nil
}

// ForwardToWeekday returns the nearest date on or after d that falls on wd.
func ForwardToWeekday(d Date, wd time.Weekday) (Date, error) {
	return moveToWeekday(d, wd, 1)
}

// ReverseToWeekday returns the nearest date on or before d that falls on wd.
func ReverseToWeekday(d Date, wd time.Weekday) (Date, error) {
	return moveToWeekday(d, wd, -1)
}

func moveToWeekday(d Date, wd time.Weekday, step int) (Date, error) {
	if err := ValidWeekday(wd); err != nil {
		return Date{}, err
	}
	for d.Weekday() != wd {
		d.Roll(step)
	}
	return d, nil
}
