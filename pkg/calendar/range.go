package calendar

import (
	"fmt"
	"iter"
)

// DateRange returns every date from start to end inclusive in ascending
// order. It fails with ErrInvalidArgument when start is after end.
func DateRange(start, end Date) ([]Date, error) {
	if start.After(end) {
		return nil, fmt.Errorf("%w: start %s after end %s", ErrInvalidArgument, start, end)
	}
	dates := make([]Date, 0, start.DaysUntil(end)+1)
	for d := range Days(start, end) {
		dates = append(dates, d)
	}
	return dates, nil
}

// Days yields the dates from start to end inclusive. Nothing is yielded
// when start is after end.
func Days(start, end Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := start; !d.After(end); d.Roll(1) {
			if !yield(d) {
				return
			}
		}
	}
}
