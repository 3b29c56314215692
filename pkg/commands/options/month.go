package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/config"
	"tableflip.dev/datepick/pkg/timeutil"
	"tableflip.dev/datepick/pkg/tui/components/datepicker"
)

// MonthOptions
type MonthOptions struct {
	FirstDay Weekday
	Selected []string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().Var(&o.FirstDay, "first-day",
		`Weekday starting each row, 0-6 or a name, example: --first-day=sunday.`)
	cmd.Flags().StringSliceVarP(&o.Selected, "select", "s", nil,
		`Dates to mark as selected, example: --select=2024-02-14,today,+1w.`)
}

// Options returns picker options from cfg with the flag overrides applied.
func (o *MonthOptions) Options(cfg config.Config) datepicker.Options {
	opts := cfg.Options()
	opts.FirstDayOfWeek = o.FirstDay.Or(opts.FirstDayOfWeek)
	return opts
}

// SelectedDates resolves --select relative to today.
func (o *MonthOptions) SelectedDates(today calendar.Date) ([]calendar.Date, error) {
	return timeutil.ParseDates(o.Selected, today)
}

// YearMonthArg resolves an optional month argument, defaulting to the month
// of today.
func YearMonthArg(args []string, today calendar.Date) (calendar.YearMonth, error) {
	if len(args) == 0 {
		return today.YearMonth(), nil
	}
	return timeutil.ParseYearMonth(args[0], today)
}
