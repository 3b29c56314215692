package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/config"
)

// ConfigOptions
type ConfigOptions struct {
	File string
}

func AddConfigArg(cmd *cobra.Command, o *ConfigOptions) {
	cmd.PersistentFlags().StringVar(&o.File, "config", "",
		"Config file to read instead of searching for .datepick.yaml.")
}

// Load reads the configuration selected by the flags.
func (o *ConfigOptions) Load() (config.Config, error) {
	return config.Load(o.File)
}
