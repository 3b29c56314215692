package printers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/tui/components/datepicker"
)

func newPrinter(t *testing.T) (*PrettyPrint, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
	buf := &bytes.Buffer{}
	return &PrettyPrint{Out: buf}, buf
}

func TestMonthPrintsGrid(t *testing.T) {
	pp, buf := newPrinter(t)
	g, err := calendar.GetMonth(2024, time.February, time.Monday, nil)
	if err != nil {
		t.Fatalf("GetMonth failed: %v", err)
	}
	pp.Month(g)

	want := strings.Join([]string{
		"   February 2024    ",
		"Mo Tu We Th Fr Sa Su",
		"29 30 31  1  2  3  4",
		" 5  6  7  8  9 10 11",
		"12 13 14 15 16 17 18",
		"19 20 21 22 23 24 25",
		"26 27 28 29  1  2  3",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("unexpected month:\n%q\nwant:\n%q", got, want)
	}
}

func TestMonthUsesLabelsAndGridFirstDay(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.Labels = datepicker.DefaultOptions()
	pp.Labels.DayNames = []string{"Su", "Ma", "Ti", "Ke", "To", "Pe", "La"}
	pp.Labels.MonthNames[5] = "Kesäkuu"

	g, err := calendar.GetMonth(2024, time.June, time.Sunday, nil)
	if err != nil {
		t.Fatalf("GetMonth failed: %v", err)
	}
	pp.Month(g)

	lines := strings.Split(buf.String(), "\n")
	if strings.TrimSpace(lines[0]) != "Kesäkuu 2024" {
		t.Fatalf("unexpected title %q", lines[0])
	}
	if lines[1] != "Su Ma Ti Ke To Pe La" {
		t.Fatalf("unexpected header %q", lines[1])
	}
}

func TestMonthsSeparatesGrids(t *testing.T) {
	pp, buf := newPrinter(t)
	var grids []calendar.Grid
	for _, m := range []time.Month{time.January, time.February} {
		g, err := calendar.GetMonth(2024, m, time.Monday, nil)
		if err != nil {
			t.Fatalf("GetMonth failed: %v", err)
		}
		grids = append(grids, g)
	}
	pp.Months(grids...)
	if strings.Count(buf.String(), "\n\n") != 1 {
		t.Fatalf("expected one blank line between grids:\n%s", buf.String())
	}
}

func TestDatesTable(t *testing.T) {
	pp, buf := newPrinter(t)
	dates, err := calendar.DateRange(calendar.NewDate(2024, time.February, 28), calendar.NewDate(2024, time.March, 1))
	if err != nil {
		t.Fatalf("DateRange failed: %v", err)
	}
	pp.Dates(dates...)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and three rows, got:\n%s", buf.String())
	}
	want := [][]string{
		{"#", "Date", "Weekday"},
		{"1", "2024-02-28", "Wednesday"},
		{"2", "2024-02-29", "Thursday"},
		{"3", "2024-03-01", "Friday"},
	}
	for i, fields := range want {
		if got := strings.Fields(lines[i]); strings.Join(got, ",") != strings.Join(fields, ",") {
			t.Fatalf("line %d: want %v, got %v", i, fields, got)
		}
	}
}

func TestDatesEmpty(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.Dates()
	if strings.TrimSpace(buf.String()) != "none" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestYearMonth(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.YearMonth(calendar.YearMonth{Year: 2024, Month: time.January})
	if got := buf.String(); got != "January 2024 (2024-01)\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestJSON(t *testing.T) {
	g, err := calendar.GetMonth(2024, time.February, time.Monday, []calendar.Date{calendar.NewDate(2024, time.February, 14)})
	if err != nil {
		t.Fatalf("GetMonth failed: %v", err)
	}
	buf := &bytes.Buffer{}
	if err := JSON(buf, g); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	var decoded calendar.Grid
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got := decoded.Selected(); len(got) != 1 || got[0] != calendar.NewDate(2024, time.February, 14) {
		t.Fatalf("selection lost in JSON: %v", got)
	}
	if !strings.Contains(buf.String(), `"date": "2024-02-14"`) {
		t.Fatalf("expected ISO dates in output:\n%s", buf.String())
	}
}
