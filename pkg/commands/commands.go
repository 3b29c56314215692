package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
	cfg    = &options.ConfigOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "datepick",
		Short: options.Wrap80("Month grids and an interactive date picker on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddConfigArg(cmd, cfg)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addMonth(topLevel)
	addPick(topLevel)
	addRange(topLevel)
	addRoll(topLevel)
	addWeekday(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
