// Package panel renders a framed block of lines under a centered heading.
package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/datepick/pkg/tui/theme"
)

// Model holds the panel content and styles.
type Model struct {
	title string
	lines []string
	width int

	frameStyle lipgloss.Style
	titleStyle lipgloss.Style
	bodyStyle  lipgloss.Style
}

// New returns an empty panel styled by th.
func New(th theme.PanelTheme) Model {
	return Model{
		frameStyle: th.Frame,
		titleStyle: th.Title,
		bodyStyle:  th.Body,
	}
}

// SetContent updates the panel title and body lines.
func (m *Model) SetContent(title string, lines []string) {
	m.title = title
	m.lines = lines
}

// SetWidth sets the inner width the title is centered in. Zero centers it
// over the widest body line.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// View returns the rendered panel string and its total height in lines.
func (m Model) View() (string, int) {
	width := m.width
	if width == 0 {
		for _, line := range m.lines {
			width = max(width, ansi.PrintableRuneWidth(line))
		}
	}

	var content []string
	if m.title != "" {
		content = append(content, m.titleStyle.Render(Center(m.title, width)))
	}
	for _, line := range m.lines {
		content = append(content, m.bodyStyle.Render(line))
	}
	view := m.frameStyle.Render(strings.Join(content, "\n"))
	height := strings.Count(view, "\n") + 1
	return view, height
}

// Center pads s with spaces to width, measuring printable runes only. The
// extra space of an odd remainder goes to the right.
func Center(s string, width int) string {
	w := ansi.PrintableRuneWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
