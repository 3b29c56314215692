package options

import (
	"time"

	"github.com/spf13/pflag"

	"tableflip.dev/datepick/pkg/timeutil"
)

var _ pflag.Value = (*Weekday)(nil)

// Weekday is a pflag.Value accepting 0-6 or weekday names.
type Weekday struct {
	Day   time.Weekday
	Given bool
}

func (w *Weekday) String() string {
	if !w.Given {
		return ""
	}
	return w.Day.String()
}

func (w *Weekday) Set(s string) error {
	wd, err := timeutil.ParseWeekday(s)
	if err != nil {
		return err
	}
	w.Day, w.Given = wd, true
	return nil
}

func (w *Weekday) Type() string {
	return "weekday"
}

// Or returns the parsed weekday, or def when the flag was not given.
func (w *Weekday) Or(def time.Weekday) time.Weekday {
	if !w.Given {
		return def
	}
	return w.Day
}
