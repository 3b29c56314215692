package datepicker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/tui/components/panel"
)

const cellWidth = 2

// gridWidth is seven cells separated by single spaces.
const gridWidth = calendar.DaysPerWeek*(cellWidth+1) - 1

// View renders the title, weekday header, grid and optional help.
func (m *Model) View() string {
	t := m.opts.Theme
	if m.err != nil {
		return t.Footer.Error.Render("error: " + m.err.Error())
	}

	lines := []string{t.Calendar.Header.Render(m.headerLine())}
	for _, week := range m.grid.Weeks {
		cells := make([]string, 0, len(week))
		for _, c := range week {
			cells = append(cells, m.renderCell(c))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	p := panel.New(t.Panel)
	p.SetWidth(gridWidth)
	p.SetContent(m.opts.Title(m.month), lines)
	body, _ := p.View()

	footer := []string{t.Footer.Status.Render(m.status())}
	if m.opts.ShowHelp {
		footer = append(footer, t.Footer.Help.Render(m.help.View(m.keys)))
	}
	view := lipgloss.JoinVertical(lipgloss.Left, body, strings.Join(footer, "\n"))
	if m.width > 0 {
		view = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, view)
	}
	return view
}

func (m *Model) headerLine() string {
	names := m.opts.OrderedDayNames()
	cells := make([]string, 0, len(names))
	for _, name := range names {
		cells = append(cells, padLeft(name, cellWidth))
	}
	return strings.Join(cells, " ")
}

func (m *Model) renderCell(c calendar.Cell) string {
	t := m.opts.Theme.Calendar
	style := t.Day
	if c.OutOfMonth {
		style = t.OutOfMonth
	}
	if calendar.EqualDate(c.Date, m.today) {
		style = t.Today.Inherit(style)
	}
	if c.Selected {
		style = t.Selected.Inherit(style)
	}
	if calendar.EqualDate(c.Date, m.cursor) {
		style = t.Cursor.Inherit(style)
	}
	return style.Render(fmt.Sprintf("%*d", cellWidth, c.Date.Day))
}

func (m *Model) status() string {
	n := len(*m.selection)
	switch n {
	case 0:
		return m.cursor.String()
	case 1:
		return fmt.Sprintf("%s · 1 date selected", m.cursor)
	default:
		return fmt.Sprintf("%s · %d dates selected", m.cursor, n)
	}
}

func padLeft(s string, width int) string {
	w := ansi.PrintableRuneWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}
