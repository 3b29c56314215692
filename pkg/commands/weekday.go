package commands

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/runner/dates"
	"tableflip.dev/datepick/pkg/timeutil"
)

func addWeekday(topLevel *cobra.Command) {
	reverse := false

	cmd := &cobra.Command{
		Use:   "weekday <date> <weekday>",
		Short: "find the nearest date falling on a weekday",
		Long: `Find the nearest date on or after <date> falling on <weekday>, or on or
before it with --reverse. The weekday is a number from 0 (Sunday) to 6 or
a name.`,
		Example: `
datepick weekday today friday
datepick weekday 2024-03-01 1 --reverse
`,
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 1 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return weekdayCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := timeutil.ParseDate(args[0], calendar.Today())
			if err != nil {
				return output.HandleError(err)
			}
			day, err := timeutil.ParseWeekday(args[1])
			if err != nil {
				return output.HandleError(err)
			}
			w := dates.Weekday{
				From:    from,
				Day:     day,
				Reverse: reverse,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(w.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "Search backward instead of forward.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func weekdayCompletions(toComplete string) []string {
	var out []string
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := strings.ToLower(wd.String())
		if strings.HasPrefix(name, strings.ToLower(toComplete)) {
			out = append(out, name)
		}
	}
	return out
}
