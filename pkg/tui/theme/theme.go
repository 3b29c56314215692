package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer   FooterTheme
	Panel    PanelTheme
	Calendar CalendarTheme
}

// FooterTheme groups styles used below the picker.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// CalendarTheme styles the month grid. Today, Selected and Cursor are
// layered onto Day or OutOfMonth with Inherit, in that order.
type CalendarTheme struct {
	Header     lipgloss.Style
	Day        lipgloss.Style
	OutOfMonth lipgloss.Style
	Today      lipgloss.Style
	Selected   lipgloss.Style
	Cursor     lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
		Calendar: CalendarTheme{
			Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Day:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			OutOfMonth: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			Today:      lipgloss.NewStyle().Underline(true),
			Selected:   lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
			Cursor:     lipgloss.NewStyle().Reverse(true),
		},
	}
}

// Plain returns a theme without colors or borders, used when rendering to
// something other than a terminal and in tests.
func Plain() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Footer: FooterTheme{Help: plain, Status: plain, Error: plain},
		Panel:  PanelTheme{Frame: plain, Title: plain, Body: plain},
		Calendar: CalendarTheme{
			Header:     plain,
			Day:        plain,
			OutOfMonth: plain,
			Today:      plain,
			Selected:   plain,
			Cursor:     plain,
		},
	}
}
