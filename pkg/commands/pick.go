package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/runner/pick"
)

func addPick(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	lo := &options.LogOptions{}

	cmd := &cobra.Command{
		Use:   "pick [yyyy-mm]",
		Short: "pick dates from an interactive month grid",
		Long: `Open an interactive month grid. Move with the arrow keys or hjkl, change
month with n/p, toggle the highlighted day with space and quit with q. The
selected dates are printed on exit.

When stdout is not a terminal the grid is printed as with "datepick month".`,
		Example: `
datepick pick
datepick pick 2024-02 --select 2024-02-14
datepick pick --json --log /tmp/datepick.log
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newMonth(mo, args)
			if err != nil {
				return output.HandleError(err)
			}
			m.Out = cmd.OutOrStdout()

			if !isTerminal(os.Stdout.Fd()) || !isTerminal(os.Stdin.Fd()) {
				return output.HandleError(m.Do(cmd.Context()))
			}

			p := pick.Pick{
				Options:   m.Options,
				Start:     m.Start,
				Selection: m.Selected,
				LogFile:   lo.File,
				JSON:      output.JSON,
				Out:       cmd.OutOrStdout(),
			}
			return output.HandleError(p.Do(cmd.Context()))
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddLogArgs(cmd, lo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
