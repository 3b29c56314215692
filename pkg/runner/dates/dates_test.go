package dates

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/datepick/pkg/calendar"
)

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestRangeJSON(t *testing.T) {
	var buf bytes.Buffer
	r := Range{
		Start: calendar.NewDate(2023, time.December, 30),
		End:   calendar.NewDate(2024, time.January, 2),
		JSON:  true,
		Out:   &buf,
	}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	var got []calendar.Date
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not a date list: %v", err)
	}
	if len(got) != 4 || got[0] != r.Start || got[3] != r.End {
		t.Fatalf("unexpected dates %v", got)
	}
}

func TestRangeRejectsReversed(t *testing.T) {
	r := Range{
		Start: calendar.NewDate(2024, time.January, 2),
		End:   calendar.NewDate(2024, time.January, 1),
		Out:   &bytes.Buffer{},
	}
	if err := r.Do(context.Background()); !errors.Is(err, calendar.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestRangeTable(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	r := Range{Start: calendar.NewDate(2024, time.March, 15), End: calendar.NewDate(2024, time.March, 15), Out: &buf}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if !strings.Contains(buf.String(), "2024-03-15") || !strings.Contains(buf.String(), "Friday") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestRoll(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	r := Roll{From: calendar.YearMonth{Year: 2023, Month: time.December}, Diff: 1, Out: &buf}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if got := buf.String(); got != "January 2024 (2024-01)\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRollJSON(t *testing.T) {
	var buf bytes.Buffer
	r := Roll{From: calendar.YearMonth{Year: 2024, Month: time.March}, Diff: -13, JSON: true, Out: &buf}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	var got struct {
		YearMonth calendar.YearMonth `json:"yearMonth"`
		Days      int                `json:"days"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.YearMonth != (calendar.YearMonth{Year: 2023, Month: time.February}) || got.Days != 28 {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestWeekdayJSON(t *testing.T) {
	tests := []struct {
		reverse bool
		want    calendar.Date
		days    int
	}{
		{reverse: false, want: calendar.NewDate(2024, time.March, 17), days: 2},
		{reverse: true, want: calendar.NewDate(2024, time.March, 10), days: -5},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		w := Weekday{From: calendar.NewDate(2024, time.March, 15), Day: time.Sunday, Reverse: tt.reverse, JSON: true, Out: &buf}
		if err := w.Do(context.Background()); err != nil {
			t.Fatalf("Do failed: %v", err)
		}
		var got struct {
			Date calendar.Date `json:"date"`
			Days int           `json:"days"`
		}
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if got.Date != tt.want || got.Days != tt.days {
			t.Fatalf("reverse=%v: want %v (%d days), got %+v", tt.reverse, tt.want, tt.days, got)
		}
	}
}

func TestWeekdayRejectsInvalidDay(t *testing.T) {
	w := Weekday{From: calendar.NewDate(2024, time.March, 15), Day: 7, Out: &bytes.Buffer{}}
	if err := w.Do(context.Background()); !errors.Is(err, calendar.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
