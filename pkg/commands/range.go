package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/runner/dates"
	"tableflip.dev/datepick/pkg/timeutil"
)

func addRange(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "range <start> <end>",
		Short: "list every date between two dates, both included",
		Example: `
datepick range 2024-02-26 2024-03-03
datepick range today +2w
datepick range 12/24 12/31 --json
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			today := calendar.Today()
			start, err := timeutil.ParseDate(args[0], today)
			if err != nil {
				return output.HandleError(err)
			}
			end, err := timeutil.ParseDate(args[1], today)
			if err != nil {
				return output.HandleError(err)
			}
			r := dates.Range{
				Start: start,
				End:   end,
				JSON:  output.JSON,
				Out:   cmd.OutOrStdout(),
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
