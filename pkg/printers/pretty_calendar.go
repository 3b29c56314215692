package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/datepick/pkg/calendar"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a grid with a centered title and a weekday header. Days of
// adjacent months are faint, selected days are reversed and today is
// underlined.
func (pp *PrettyPrint) Month(g calendar.Grid) {
	labels := pp.labels()
	labels.FirstDayOfWeek = g.FirstDayOfWeek

	tf := color.New(color.FgWhite, color.Italic)
	hf := color.New(color.Bold)
	out := pp.Writer()

	_, _ = tf.Fprintln(out, centeredVisible(labels.Title(g.YearMonth), width))

	header := make([]string, 0, calendar.DaysPerWeek)
	for _, name := range labels.OrderedDayNames() {
		header = append(header, fmt.Sprintf("%2s", name))
	}
	_, _ = hf.Fprintln(out, strings.Join(header, " "))

	for _, week := range g.Weeks {
		for i, c := range week {
			if i > 0 {
				_, _ = fmt.Fprint(out, " ")
			}
			_, _ = pp.dayColor(c).Fprintf(out, "%2d", c.Date.Day)
		}
		_, _ = fmt.Fprint(out, "\n")
	}
}

// Months prints grids separated by blank lines.
func (pp *PrettyPrint) Months(grids ...calendar.Grid) {
	for i, g := range grids {
		if i > 0 {
			pp.NewLine()
		}
		pp.Month(g)
	}
}

func (pp *PrettyPrint) dayColor(c calendar.Cell) *color.Color {
	attrs := []color.Attribute{}
	if c.OutOfMonth {
		attrs = append(attrs, color.Faint)
	}
	if c.Selected {
		attrs = append(attrs, color.Bold, color.ReverseVideo)
	}
	if calendar.EqualDate(c.Date, pp.Today) {
		attrs = append(attrs, color.Underline)
	}
	return color.New(attrs...)
}

// centeredVisible centers s by printable width so that localized month
// names with multi-byte runes line up with the grid.
func centeredVisible(s string, width int) string {
	w := ansi.PrintableRuneWidth(s)
	if w >= width {
		return s
	}
	mid := (width - w) / 2
	return strings.Repeat(" ", mid) + s + strings.Repeat(" ", width-mid-w)
}
