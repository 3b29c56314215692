package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/tui/components/datepicker"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvConfigPath, dir)
	return dir
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ".datepick.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	isolate(t)
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.File != "" {
		t.Fatalf("expected no config file, got %q", c.File)
	}
	if c.FirstDayOfWeek != time.Monday {
		t.Fatalf("expected Monday, got %v", c.FirstDayOfWeek)
	}
	if !reflect.DeepEqual(datepicker.DefaultDayNames, c.DayNames) {
		t.Fatalf("unexpected day names %v", c.DayNames)
	}
	if !reflect.DeepEqual(datepicker.DefaultMonthNames, c.MonthNames) {
		t.Fatalf("unexpected month names %v", c.MonthNames)
	}
}

func TestLoadFromConfigPath(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `first_day_of_week: sunday
day_names: [Su, Ma, Ti, Ke, To, Pe, La]
month_names: [Tammikuu, Helmikuu, Maaliskuu, Huhtikuu, Toukokuu, Kesäkuu, Heinäkuu, Elokuu, Syyskuu, Lokakuu, Marraskuu, Joulukuu]
`)
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.File != path {
		t.Fatalf("expected %q to be used, got %q", path, c.File)
	}
	opts := c.Options()
	if opts.FirstDayOfWeek != time.Sunday {
		t.Fatalf("expected Sunday, got %v", opts.FirstDayOfWeek)
	}
	if got := opts.Title(calendar.YearMonth{Year: 2024, Month: time.June}); got != "Kesäkuu 2024" {
		t.Fatalf("unexpected title %q", got)
	}
	if opts.DayNames[1] != "Ma" {
		t.Fatalf("unexpected day names %v", opts.DayNames)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "picker.yaml")
	if err := os.WriteFile(path, []byte("first_day_of_week: 6\n"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.FirstDayOfWeek != time.Saturday {
		t.Fatalf("expected Saturday, got %v", c.FirstDayOfWeek)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "first_day_of_week: 0\n")
	t.Setenv("DATEPICK_FIRST_DAY_OF_WEEK", "wed")
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.FirstDayOfWeek != time.Wednesday {
		t.Fatalf("expected Wednesday, got %v", c.FirstDayOfWeek)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"weekday out of range": "first_day_of_week: 7\n",
		"unknown weekday":      "first_day_of_week: someday\n",
		"six day names":        "day_names: [a, b, c, d, e, f]\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			dir := isolate(t)
			writeConfig(t, dir, body)
			if _, err := Load(""); !errors.Is(err, calendar.ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "first_day_of_week: [\n")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected a parse error")
	}
}
