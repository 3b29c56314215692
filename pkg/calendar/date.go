// Package calendar implements the date arithmetic behind the month grid:
// day and month rolling, weekday search, inclusive date ranges and the
// construction of whole-week month grids.
package calendar

import (
	"cmp"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidArgument is wrapped by every error caused by a caller passing a
// value outside of an operation's contract, such as a weekday outside 0-6
// or a range whose start is after its end.
var ErrInvalidArgument = errors.New("invalid argument")

// DateLayout is the canonical text form of a Date.
const DateLayout = "2006-01-02"

// Date is a calendar day without time of day or location. Values built
// with NewDate or DateOf are normalized, so == is day-level equality.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the normalized date for year, month and day. Out of range
// values carry over the way time.Date does, e.g. February 30 is March 1 or 2.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's location. The time of day is
// dropped.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current local date.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a date in DateLayout.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return d.In(time.UTC)
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Weekday returns the day of the week, Sunday being 0.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns d moved by days, which may be negative.
func (d Date) AddDays(days int) Date {
	return NewDate(d.Year, d.Month, d.Day+days)
}

// Roll moves d in place by days and returns the new value.
func (d *Date) Roll(days int) Date {
	*d = d.AddDays(days)
	return *d
}

// YearMonth returns the month d belongs to.
func (d Date) YearMonth() YearMonth {
	return NewYearMonth(d.Year, d.Month)
}

// SameYearMonth reports whether d and o fall in the same month of the same year.
func (d Date) SameYearMonth(o Date) bool {
	return d.YearMonth() == o.YearMonth()
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after o.
func (d Date) Compare(o Date) int {
	if c := cmp.Compare(d.Year, o.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.Month, o.Month); c != 0 {
		return c
	}
	return cmp.Compare(d.Day, o.Day)
}

// Before reports whether d is earlier than o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// After reports whether d is later than o.
func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// DaysUntil returns the number of days from d to o, negative when o is
// earlier than d.
func (d Date) DaysUntil(o Date) int {
	return int((o.Time().Unix() - d.Time().Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(data []byte) error {
	parsed, err := ParseDate(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// EqualDate is day-level equality of two dates.
func EqualDate(a, b Date) bool {
	return a.Compare(b) == 0
}

// EqualDateWithoutTime reports whether a and b fall on the same calendar
// day, ignoring the time of day. Each value is read in its own location.
func EqualDateWithoutTime(a, b time.Time) bool {
	return DateOf(a) == DateOf(b)
}

// EqualYearMonth reports whether a and b fall in the same month of the same
// year.
func EqualYearMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
