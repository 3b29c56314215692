// Package datepicker implements a Bubble Tea month-grid date picker. The
// model owns the displayed month and a cursor, reads and toggles a caller
// owned Selection, and recomputes the calendar grid on every change.
package datepicker

import (
	"fmt"
	"time"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/tui/theme"
)

// DefaultDayNames are the English two letter weekday labels, Sunday first.
var DefaultDayNames = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// DefaultMonthNames are the English month names, January first.
var DefaultMonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Options configures a Model. Construct it with DefaultOptions and override
// fields as needed.
type Options struct {
	// FirstDayOfWeek starts every row. Defaults to Monday.
	FirstDayOfWeek time.Weekday
	// DayNames holds seven labels starting with Sunday regardless of
	// FirstDayOfWeek; they are rotated when rendered.
	DayNames []string
	// MonthNames holds twelve labels starting with January.
	MonthNames []string
	// OnSelect is called after a date is added to the selection.
	OnSelect func(calendar.Date)
	// OnUnselect is called after a date is removed from the selection.
	OnUnselect func(calendar.Date)
	// Theme styles the grid, frame and footer.
	Theme theme.Theme
	// ShowHelp renders the key help below the grid.
	ShowHelp bool
}

// DefaultOptions returns Monday-first English options with the default
// theme and no callbacks.
func DefaultOptions() Options {
	return Options{
		FirstDayOfWeek: time.Monday,
		DayNames:       append([]string(nil), DefaultDayNames...),
		MonthNames:     append([]string(nil), DefaultMonthNames...),
		Theme:          theme.Default(),
		ShowHelp:       true,
	}
}

// Validate reports options the picker cannot render.
func (o Options) Validate() error {
	if err := calendar.ValidWeekday(o.FirstDayOfWeek); err != nil {
		return fmt.Errorf("first day of week: %w", err)
	}
	if len(o.DayNames) != 7 {
		return fmt.Errorf("%w: expected 7 day names, got %d", calendar.ErrInvalidArgument, len(o.DayNames))
	}
	if len(o.MonthNames) != 12 {
		return fmt.Errorf("%w: expected 12 month names, got %d", calendar.ErrInvalidArgument, len(o.MonthNames))
	}
	return nil
}

// OrderedDayNames returns DayNames rotated to start at FirstDayOfWeek.
func (o Options) OrderedDayNames() []string {
	n := len(o.DayNames)
	if n == 0 {
		return nil
	}
	first := int(o.FirstDayOfWeek) % n
	out := make([]string, 0, n)
	out = append(out, o.DayNames[first:]...)
	return append(out, o.DayNames[:first]...)
}

// MonthName returns the configured label for m.
func (o Options) MonthName(m time.Month) string {
	i := int(m) - 1
	if i < 0 || i >= len(o.MonthNames) {
		return m.String()
	}
	return o.MonthNames[i]
}

// Title renders the month heading, e.g. "February 2024".
func (o Options) Title(ym calendar.YearMonth) string {
	return fmt.Sprintf("%s %d", o.MonthName(ym.Month), ym.Year)
}
