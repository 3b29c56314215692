package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestDateRange(t *testing.T) {
	tests := []struct {
		start, end Date
	}{
		{NewDate(2024, time.March, 15), NewDate(2024, time.March, 15)},
		{NewDate(2024, time.February, 27), NewDate(2024, time.March, 2)},
		{NewDate(2023, time.December, 20), NewDate(2024, time.January, 10)},
		{NewDate(2020, time.January, 1), NewDate(2024, time.December, 31)},
	}
	for _, tc := range tests {
		dates, err := DateRange(tc.start, tc.end)
		if err != nil {
			t.Fatalf("DateRange(%v, %v): %v", tc.start, tc.end, err)
		}
		if want := tc.start.DaysUntil(tc.end) + 1; len(dates) != want {
			t.Fatalf("DateRange(%v, %v): want %d dates, got %d", tc.start, tc.end, want, len(dates))
		}
		if dates[0] != tc.start || dates[len(dates)-1] != tc.end {
			t.Fatalf("DateRange(%v, %v): bounds %v..%v", tc.start, tc.end, dates[0], dates[len(dates)-1])
		}
		for i := 1; i < len(dates); i++ {
			if dates[i-1].DaysUntil(dates[i]) != 1 {
				t.Fatalf("DateRange(%v, %v): not consecutive at %d: %v %v", tc.start, tc.end, i, dates[i-1], dates[i])
			}
		}
	}
}

func TestDateRangeStartAfterEnd(t *testing.T) {
	_, err := DateRange(NewDate(2024, time.March, 2), NewDate(2024, time.March, 1))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestDaysStopsEarly(t *testing.T) {
	var seen []Date
	for d := range Days(NewDate(2024, time.January, 1), NewDate(2024, time.January, 31)) {
		seen = append(seen, d)
		if len(seen) == 3 {
			break
		}
	}
	if len(seen) != 3 || seen[2] != NewDate(2024, time.January, 3) {
		t.Fatalf("unexpected dates %v", seen)
	}
}

func TestDaysEmptyWhenReversed(t *testing.T) {
	for d := range Days(NewDate(2024, time.January, 2), NewDate(2024, time.January, 1)) {
		t.Fatalf("unexpected date %v", d)
	}
}
