// Package printers renders grids and dates for the command line.
package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/tui/components/datepicker"
)

// PrettyPrint writes colored output. The zero value writes to color.Output
// with the default English labels; Labels that do not validate fall back to
// the defaults as well.
type PrettyPrint struct {
	Out io.Writer
	// Labels supplies day and month names; FirstDayOfWeek is taken from
	// the grid being printed.
	Labels datepicker.Options
	// Today is underlined when it appears in a grid.
	Today calendar.Date
}

// Writer returns the destination of the printer.
func (pp *PrettyPrint) Writer() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) labels() datepicker.Options {
	if pp.Labels.Validate() != nil {
		return datepicker.DefaultOptions()
	}
	return pp.Labels
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.Writer(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.Writer(), title)
}

// YearMonth prints ym as its title followed by the ISO form.
func (pp *PrettyPrint) YearMonth(ym calendar.YearMonth) {
	f := color.New(color.Faint)
	_, _ = fmt.Fprint(pp.Writer(), pp.labels().Title(ym))
	_, _ = f.Fprintf(pp.Writer(), " (%s)\n", ym)
}

// Dates prints one row per date with its weekday.
func (pp *PrettyPrint) Dates(dates ...calendar.Date) {
	if len(dates) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.Writer(), " none\n")
		return
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("Date"), bold.Sprint("Weekday"))
	for i, d := range dates {
		tbl.AddRow(i+1, d.String(), d.Weekday().String())
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.Writer(), tbl)
}

// Selected prints the selection summary used after an interactive pick.
func (pp *PrettyPrint) Selected(dates ...calendar.Date) {
	c := color.New(color.Faint)
	switch len(dates) {
	case 1:
		_, _ = c.Fprintln(pp.Writer(), "1 date selected")
	default:
		_, _ = c.Fprintf(pp.Writer(), "%d dates selected\n", len(dates))
	}
	if len(dates) > 0 {
		pp.Dates(dates...)
	}
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
