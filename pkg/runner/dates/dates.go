// Package dates implements the range, roll and weekday commands.
package dates

import (
	"context"
	"io"
	"time"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/printers"
	"tableflip.dev/datepick/pkg/tui/components/datepicker"
)

// Range lists every date from Start to End inclusive.
type Range struct {
	Start calendar.Date
	End   calendar.Date
	JSON  bool
	Out   io.Writer
}

func (r *Range) Do(_ context.Context) error {
	dates, err := calendar.DateRange(r.Start, r.End)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: r.Out}
	if r.JSON {
		return printers.JSON(pp.Writer(), dates)
	}
	pp.Dates(dates...)
	return nil
}

// Roll prints From moved by Diff months.
type Roll struct {
	From   calendar.YearMonth
	Diff   int
	Labels datepicker.Options
	JSON   bool
	Out    io.Writer
}

func (r *Roll) Do(_ context.Context) error {
	ym := r.From
	ym.Roll(r.Diff)
	pp := printers.PrettyPrint{Out: r.Out, Labels: r.Labels}
	if r.JSON {
		return printers.JSON(pp.Writer(), map[string]any{
			"from":      r.From,
			"diff":      r.Diff,
			"yearMonth": ym,
			"days":      ym.Days(),
		})
	}
	pp.YearMonth(ym)
	return nil
}

// Weekday prints the nearest date on Day, forward from From or backward
// when Reverse is set.
type Weekday struct {
	From    calendar.Date
	Day     time.Weekday
	Reverse bool
	JSON    bool
	Out     io.Writer
}

func (w *Weekday) Do(_ context.Context) error {
	move := calendar.ForwardToWeekday
	if w.Reverse {
		move = calendar.ReverseToWeekday
	}
	d, err := move(w.From, w.Day)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: w.Out}
	if w.JSON {
		return printers.JSON(pp.Writer(), map[string]any{
			"from":    w.From,
			"date":    d,
			"weekday": d.Weekday().String(),
			"days":    w.From.DaysUntil(d),
		})
	}
	pp.Dates(d)
	return nil
}
