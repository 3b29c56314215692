package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/datepick/pkg/calendar"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

var monthLayouts = []string{
	calendar.YearMonthLayout,
	"2006-1",
	"January 2006",
	"Jan 2006",
}

// ParseDate resolves a date argument relative to today. Accepted forms are
// "2024-02-29", "2024-2-9", "2/9" (in today's year), "today", "yesterday",
// "tomorrow" and signed offsets such as "+2w" or "-1m".
func ParseDate(input string, today calendar.Date) (calendar.Date, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	switch trimmed {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDays(-1), nil
	case "tomorrow":
		return today.AddDays(1), nil
	}
	if isOffset(trimmed) {
		off, err := ParseOffset(trimmed)
		if err != nil {
			return calendar.Date{}, err
		}
		return off.Apply(today), nil
	}
	if t, err := time.Parse(layoutISO, trimmed); err == nil {
		return calendar.DateOf(t), nil
	}
	if t, err := time.Parse(layoutISOShort, trimmed); err == nil {
		return calendar.NewDate(today.Year, t.Month(), t.Day()), nil
	}
	return calendar.Date{}, fmt.Errorf("cannot parse date %q, expected YYYY-MM-DD, M/D, today or an offset like +1w", input)
}

// ParseDates resolves every input with ParseDate.
func ParseDates(inputs []string, today calendar.Date) ([]calendar.Date, error) {
	out := make([]calendar.Date, 0, len(inputs))
	for _, in := range inputs {
		if strings.TrimSpace(in) == "" {
			continue
		}
		d, err := ParseDate(in, today)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// ParseYearMonth resolves a month argument relative to the month of today.
// Accepted forms are "2024-02", "2024-2", "February 2024", "Feb 2024",
// "this", "next", "last" and offsets such as "+3m".
func ParseYearMonth(input string, today calendar.Date) (calendar.YearMonth, error) {
	current := today.YearMonth()
	trimmed := strings.TrimSpace(input)
	switch strings.ToLower(trimmed) {
	case "", "this", "current":
		return current, nil
	case "next":
		return current.Next(), nil
	case "last", "prev", "previous":
		return current.Previous(), nil
	}
	if isOffset(strings.ToLower(trimmed)) {
		off, err := ParseOffset(trimmed)
		if err != nil {
			return calendar.YearMonth{}, err
		}
		return off.ApplyMonth(current), nil
	}
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return calendar.NewYearMonth(t.Year(), t.Month()), nil
		}
	}
	return calendar.YearMonth{}, fmt.Errorf("cannot parse month %q, expected YYYY-MM, next, last or an offset like +1m", input)
}

// ParseWeekday accepts a day number between 0 (Sunday) and 6 (Saturday) or
// an English weekday name or prefix of at least two letters.
func ParseWeekday(input string) (time.Weekday, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if n, err := strconv.Atoi(trimmed); err == nil {
		wd := time.Weekday(n)
		if err := calendar.ValidWeekday(wd); err != nil {
			return 0, err
		}
		return wd, nil
	}
	if len(trimmed) >= 2 {
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			if strings.HasPrefix(strings.ToLower(wd.String()), trimmed) {
				return wd, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: unknown weekday %q", calendar.ErrInvalidArgument, input)
}

func isOffset(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		return true
	}
	// "3d", "2w" without a sign; plain numbers and dates contain no letters.
	return offsetPattern.MatchString(s) && !strings.ContainsAny(s, "/-")
}
