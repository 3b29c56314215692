package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/runner/dates"
	"tableflip.dev/datepick/pkg/timeutil"
)

func addRoll(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "roll <yyyy-mm> <diff>",
		Short: "move a month forward or backward",
		Example: `
datepick roll 2023-12 1
datepick roll this -- -18
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cfg.Load()
			if err != nil {
				return output.HandleError(err)
			}
			from, err := timeutil.ParseYearMonth(args[0], calendar.Today())
			if err != nil {
				return output.HandleError(err)
			}
			diff, err := strconv.Atoi(args[1])
			if err != nil {
				return output.HandleError(fmt.Errorf("diff must be a number of months: %w", err))
			}
			r := dates.Roll{
				From:   from,
				Diff:   diff,
				Labels: c.Options(),
				JSON:   output.JSON,
				Out:    cmd.OutOrStdout(),
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
