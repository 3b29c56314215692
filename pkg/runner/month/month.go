// Package month prints month grids.
package month

import (
	"context"
	"io"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/printers"
	"tableflip.dev/datepick/pkg/tui/components/datepicker"
)

// Month prints Count consecutive grids starting at Start.
type Month struct {
	Options  datepicker.Options
	Start    calendar.YearMonth
	Count    int
	Selected []calendar.Date
	Today    calendar.Date
	JSON     bool
	Out      io.Writer
}

// Grids builds the grids without printing them.
func (m *Month) Grids(ctx context.Context) ([]calendar.Grid, error) {
	count := max(m.Count, 1)
	grids := make([]calendar.Grid, 0, count)
	ym := m.Start
	for range count {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g, err := calendar.GetMonth(ym.Year, ym.Month, m.Options.FirstDayOfWeek, m.Selected)
		if err != nil {
			return nil, err
		}
		grids = append(grids, g)
		ym.Roll(1)
	}
	return grids, nil
}

func (m *Month) Do(ctx context.Context) error {
	grids, err := m.Grids(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: m.Out, Labels: m.Options, Today: m.Today}
	if m.JSON {
		if len(grids) == 1 {
			return printers.JSON(pp.Writer(), grids[0])
		}
		return printers.JSON(pp.Writer(), grids)
	}
	pp.Months(grids...)
	return nil
}
