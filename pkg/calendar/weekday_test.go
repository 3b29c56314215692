package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestForwardAndReverseToWeekday(t *testing.T) {
	start := NewDate(2023, time.December, 1)
	for d := range Days(start, start.AddDays(60)) {
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			fwd, err := ForwardToWeekday(d, wd)
			if err != nil {
				t.Fatalf("ForwardToWeekday(%v, %v): %v", d, wd, err)
			}
			if fwd.Weekday() != wd {
				t.Fatalf("ForwardToWeekday(%v, %v) landed on %v", d, wd, fwd.Weekday())
			}
			if n := d.DaysUntil(fwd); n < 0 || n > 6 {
				t.Fatalf("ForwardToWeekday(%v, %v) moved %d days", d, wd, n)
			}

			rev, err := ReverseToWeekday(d, wd)
			if err != nil {
				t.Fatalf("ReverseToWeekday(%v, %v): %v", d, wd, err)
			}
			if rev.Weekday() != wd {
				t.Fatalf("ReverseToWeekday(%v, %v) landed on %v", d, wd, rev.Weekday())
			}
			if n := rev.DaysUntil(d); n < 0 || n > 6 {
				t.Fatalf("ReverseToWeekday(%v, %v) moved %d days", d, wd, n)
			}
		}
	}
}

func TestForwardToWeekdayKeepsInput(t *testing.T) {
	d := NewDate(2024, time.February, 1)
	if _, err := ForwardToWeekday(d, time.Sunday); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != NewDate(2024, time.February, 1) {
		t.Fatalf("input date was modified: %v", d)
	}
}

func TestInvalidWeekday(t *testing.T) {
	d := NewDate(2024, time.February, 1)
	for _, wd := range []time.Weekday{-1, 7, 42} {
		if _, err := ForwardToWeekday(d, wd); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("ForwardToWeekday(%d): expected ErrInvalidArgument, got %v", wd, err)
		}
		if _, err := ReverseToWeekday(d, wd); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("ReverseToWeekday(%d): expected ErrInvalidArgument, got %v", wd, err)
		}
		if _, err := LastWeekday(wd); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("LastWeekday(%d): expected ErrInvalidArgument, got %v", wd, err)
		}
	}
}

func TestLastWeekday(t *testing.T) {
	tests := map[time.Weekday]time.Weekday{
		time.Sunday:   time.Saturday,
		time.Monday:   time.Sunday,
		time.Saturday: time.Friday,
	}
	for first, want := range tests {
		got, err := LastWeekday(first)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("LastWeekday(%v): want %v, got %v", first, want, got)
		}
	}
}
