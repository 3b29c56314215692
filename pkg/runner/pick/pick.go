// Package pick runs the interactive date picker.
package pick

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/printers"
	"tableflip.dev/datepick/pkg/tui/components/datepicker"
)

// Pick opens the picker on Start and prints the selection once it quits.
type Pick struct {
	Options   datepicker.Options
	Start     calendar.YearMonth
	Selection datepicker.Selection
	// LogFile receives a line per selection change. The terminal is in the
	// alternate screen while the picker runs, so nothing is logged there.
	LogFile string
	JSON    bool
	Out     io.Writer
}

func (p *Pick) Do(ctx context.Context) error {
	opts := p.Options
	if p.LogFile != "" {
		f, err := os.OpenFile(p.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		opts = WithLogger(opts, log.New(f, "datepick: ", log.LstdFlags))
	}

	sel := slices.Clone(p.Selection)
	m, err := datepicker.New(p.Start, &sel, opts)
	if err != nil {
		return err
	}

	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("running picker: %w", err)
	}

	dates := m.Selection()
	pp := printers.PrettyPrint{Out: p.Out, Labels: opts}
	if p.JSON {
		return printers.JSON(pp.Writer(), dates)
	}
	pp.Selected(dates...)
	return nil
}

// WithLogger chains select and unselect hooks that report to l after the
// ones already set on opts.
func WithLogger(opts datepicker.Options, l *log.Logger) datepicker.Options {
	onSelect, onUnselect := opts.OnSelect, opts.OnUnselect
	opts.OnSelect = func(d calendar.Date) {
		if onSelect != nil {
			onSelect(d)
		}
		l.Printf("selected %s", d)
	}
	opts.OnUnselect = func(d calendar.Date) {
		if onUnselect != nil {
			onUnselect(d)
		}
		l.Printf("unselected %s", d)
	}
	return opts
}
