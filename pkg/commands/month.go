package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/runner/month"
)

func addMonth(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	count := 1

	cmd := &cobra.Command{
		Use:   "month [yyyy-mm]",
		Short: "print the calendar grid of a month",
		Example: `
datepick month
datepick month 2024-02 --first-day sunday
datepick month next --select today,+1w --json
datepick month "January 2024" --count 3
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newMonth(mo, args)
			if err != nil {
				return output.HandleError(err)
			}
			if count < 1 {
				return output.HandleError(fmt.Errorf("count must be at least 1, got %d", count))
			}
			m.Count = count
			m.Out = cmd.OutOrStdout()
			return output.HandleError(m.Do(cmd.Context()))
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddOutputArg(cmd, output)
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of consecutive months to print.")

	topLevel.AddCommand(cmd)
}

// newMonth resolves the shared month flags and argument.
func newMonth(mo *options.MonthOptions, args []string) (*month.Month, error) {
	c, err := cfg.Load()
	if err != nil {
		return nil, err
	}
	today := calendar.Today()
	ym, err := options.YearMonthArg(args, today)
	if err != nil {
		return nil, err
	}
	selected, err := mo.SelectedDates(today)
	if err != nil {
		return nil, err
	}
	return &month.Month{
		Options:  mo.Options(c),
		Start:    ym,
		Selected: selected,
		Today:    today,
		JSON:     output.JSON,
	}, nil
}
