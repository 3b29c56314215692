// Package config loads picker settings from .datepick.yaml and DATEPICK_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/datepick/pkg/timeutil"
	"tableflip.dev/datepick/pkg/tui/components/datepicker"
)

const (
	KeyFirstDayOfWeek = "first_day_of_week"
	KeyDayNames       = "day_names"
	KeyMonthNames     = "month_names"

	// EnvConfigPath names a directory searched before the defaults.
	EnvConfigPath = "DATEPICK_CONFIG_PATH"
)

// Config is the resolved picker configuration.
type Config struct {
	FirstDayOfWeek time.Weekday `json:"firstDayOfWeek"`
	DayNames       []string     `json:"dayNames"`
	MonthNames     []string     `json:"monthNames"`
	// File is the config file that was read, empty when none was found.
	File string `json:"file,omitempty"`
}

// Default returns the configuration used when nothing is configured.
func Default() Config {
	opts := datepicker.DefaultOptions()
	return Config{
		FirstDayOfWeek: opts.FirstDayOfWeek,
		DayNames:       opts.DayNames,
		MonthNames:     opts.MonthNames,
	}
}

// New returns a viper instance with defaults, env binding and the search
// path set up. When file is not empty only that file is read.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	def := Default()
	v.SetDefault(KeyFirstDayOfWeek, int(def.FirstDayOfWeek))
	v.SetDefault(KeyDayNames, def.DayNames)
	v.SetDefault(KeyMonthNames, def.MonthNames)

	v.SetEnvPrefix("DATEPICK")
	v.AutomaticEnv()

	if file != "" {
		expanded, err := homedir.Expand(file)
		if err != nil {
			return nil, fmt.Errorf("expanding config file %q: %w", file, err)
		}
		v.SetConfigFile(expanded)
		return v, nil
	}

	v.SetConfigName(".datepick") // .yaml is implicit
	if override := os.Getenv(EnvConfigPath); override != "" {
		expanded, err := homedir.Expand(override)
		if err != nil {
			return nil, fmt.Errorf("expanding %s: %w", EnvConfigPath, err)
		}
		v.AddConfigPath(expanded)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	return v, nil
}

// Load reads the configuration. A missing config file is not an error; a
// file that cannot be parsed or holds invalid values is.
func Load(file string) (Config, error) {
	v, err := New(file)
	if err != nil {
		return Config{}, err
	}
	return Read(v)
}

// Read reads the config file registered with v, if any, and decodes the
// result.
func Read(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

func decode(v *viper.Viper) (Config, error) {
	first, err := timeutil.ParseWeekday(v.GetString(KeyFirstDayOfWeek))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyFirstDayOfWeek, err)
	}
	c := Config{
		FirstDayOfWeek: first,
		DayNames:       v.GetStringSlice(KeyDayNames),
		MonthNames:     v.GetStringSlice(KeyMonthNames),
		File:           v.ConfigFileUsed(),
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the values against what the picker can render.
func (c Config) Validate() error {
	return c.Options().Validate()
}

// Options returns picker options carrying this configuration over the
// defaults.
func (c Config) Options() datepicker.Options {
	opts := datepicker.DefaultOptions()
	opts.FirstDayOfWeek = c.FirstDayOfWeek
	opts.DayNames = c.DayNames
	opts.MonthNames = c.MonthNames
	return opts
}
