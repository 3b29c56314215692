package options

import (
	"github.com/spf13/cobra"
)

// LogOptions
type LogOptions struct {
	File string
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.Flags().StringVar(&o.File, "log", "",
		"Append selection changes to this file.")
}
