package calendar

import (
	"cmp"
	"fmt"
	"time"
)

// YearMonthLayout is the canonical text form of a YearMonth.
const YearMonthLayout = "2006-01"

// YearMonth identifies a month of a specific year. Values returned by this
// package always have Month in January..December.
type YearMonth struct {
	Year  int
	Month time.Month
}

// NewYearMonth returns the normalized month, carrying month overflow into
// the year: NewYearMonth(2023, 13) is January 2024.
func NewYearMonth(year int, month time.Month) YearMonth {
	m := int(month) - 1
	year += m / 12
	m %= 12
	if m < 0 {
		m += 12
		year--
	}
	return YearMonth{Year: year, Month: time.Month(m + 1)}
}

// CurrentYearMonth returns the local current month.
func CurrentYearMonth() YearMonth {
	return Today().YearMonth()
}

// ParseYearMonth parses a month in YearMonthLayout.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse(YearMonthLayout, s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("parse year-month %q: %w", s, err)
	}
	return NewYearMonth(t.Year(), t.Month()), nil
}

// Add returns ym moved by diff months, which may be negative or span years.
func (ym YearMonth) Add(diff int) YearMonth {
	return NewYearMonth(ym.Year, ym.Month+time.Month(diff))
}

// Roll moves ym in place by diff months and returns the new value.
func (ym *YearMonth) Roll(diff int) YearMonth {
	*ym = ym.Add(diff)
	return *ym
}

// Next returns the following month.
func (ym YearMonth) Next() YearMonth {
	return ym.Add(1)
}

// Previous returns the preceding month.
func (ym YearMonth) Previous() YearMonth {
	return ym.Add(-1)
}

// First returns the first day of the month.
func (ym YearMonth) First() Date {
	return NewDate(ym.Year, ym.Month, 1)
}

// Last returns the last day of the month.
func (ym YearMonth) Last() Date {
	return ym.Next().First().AddDays(-1)
}

// Days returns the number of days in the month.
func (ym YearMonth) Days() int {
	return ym.Last().Day
}

// Contains reports whether d falls within the month.
func (ym YearMonth) Contains(d Date) bool {
	return d.YearMonth() == ym.normalized()
}

// Compare orders months chronologically.
func (ym YearMonth) Compare(o YearMonth) int {
	a, b := ym.normalized(), o.normalized()
	if c := cmp.Compare(a.Year, b.Year); c != 0 {
		return c
	}
	return cmp.Compare(a.Month, b.Month)
}

func (ym YearMonth) normalized() YearMonth {
	return NewYearMonth(ym.Year, ym.Month)
}

func (ym YearMonth) String() string {
	return ym.First().Time().Format(YearMonthLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (ym YearMonth) MarshalText() ([]byte, error) {
	return []byte(ym.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ym *YearMonth) UnmarshalText(data []byte) error {
	parsed, err := ParseYearMonth(string(data))
	if err != nil {
		return err
	}
	*ym = parsed
	return nil
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	return NewYearMonth(year, month).Days()
}
