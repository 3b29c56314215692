package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvConfigPath, t.TempDir())
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	cmd := New()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestRangeCommandJSON(t *testing.T) {
	out, err := run(t, "range", "2024-02-28", "2024-03-01", "--json")
	if err != nil {
		t.Fatalf("range failed: %v", err)
	}
	var got []calendar.Date
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("unexpected output %q: %v", out, err)
	}
	if len(got) != 3 {
		t.Fatalf("expected three dates, got %v", got)
	}
}

func TestMonthCommand(t *testing.T) {
	out, err := run(t, "month", "2024-02", "--first-day", "sunday")
	if err != nil {
		t.Fatalf("month failed: %v", err)
	}
	lines := strings.Split(out, "\n")
	if lines[1] != "Su Mo Tu We Th Fr Sa" || lines[2] != "28 29 30 31  1  2  3" {
		t.Fatalf("unexpected grid:\n%s", out)
	}
}

func TestMonthCommandRejectsBadWeekday(t *testing.T) {
	if _, err := run(t, "month", "2024-02", "--first-day", "7"); err == nil {
		t.Fatalf("expected an error for weekday 7")
	}
}

func TestRollCommand(t *testing.T) {
	out, err := run(t, "roll", "2023-12", "1")
	if err != nil {
		t.Fatalf("roll failed: %v", err)
	}
	if out != "January 2024 (2024-01)\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if _, err := run(t, "roll", "2023-12", "soon"); err == nil {
		t.Fatalf("expected an error for a non-numeric diff")
	}
}

func TestWeekdayCommand(t *testing.T) {
	out, err := run(t, "weekday", "2024-03-15", "mon", "--reverse", "--json")
	if err != nil {
		t.Fatalf("weekday failed: %v", err)
	}
	if !strings.Contains(out, `"date": "2024-03-11"`) {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestWeekdayCompletions(t *testing.T) {
	if got, want := weekdayCompletions("T"), []string{"tuesday", "thursday"}; !reflect.DeepEqual(want, got) {
		t.Fatalf("want %v, got %v", want, got)
	}
	if got := weekdayCompletions(""); len(got) != 7 {
		t.Fatalf("expected all weekdays, got %v", got)
	}
}
