package datepicker

import (
	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/datepick/pkg/calendar"
)

// ToggledMsg is emitted after a date was selected or unselected.
type ToggledMsg struct {
	Date     calendar.Date
	Selected bool
	Version  int
}

// MonthChangedMsg is emitted when the displayed month changes.
type MonthChangedMsg struct {
	YearMonth calendar.YearMonth
}

// Model is the date picker component.
type Model struct {
	opts Options
	keys KeyMap
	help help.Model

	month     calendar.YearMonth
	cursor    calendar.Date
	today     calendar.Date
	selection *Selection

	grid    calendar.Grid
	err     error
	version int
	width   int
}

// New creates a picker showing month. selection is read on every refresh
// and toggled in place; a nil selection starts empty.
func New(month calendar.YearMonth, selection *Selection, opts Options) (*Model, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if selection == nil {
		selection = &Selection{}
	}
	month = calendar.NewYearMonth(month.Year, month.Month)
	today := calendar.Today()
	cursor := month.First()
	if month.Contains(today) {
		cursor = today
	}
	m := &Model{
		opts:      opts,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		month:     month,
		cursor:    cursor,
		today:     today,
		selection: selection,
	}
	m.Refresh()
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles navigation, toggling and window sizing.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Left):
		return m.MoveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		return m.MoveCursor(1)
	case key.Matches(msg, m.keys.Up):
		return m.MoveCursor(-calendar.DaysPerWeek)
	case key.Matches(msg, m.keys.Down):
		return m.MoveCursor(calendar.DaysPerWeek)
	case key.Matches(msg, m.keys.PrevMonth):
		return m.RollMonth(-1)
	case key.Matches(msg, m.keys.NextMonth):
		return m.RollMonth(1)
	case key.Matches(msg, m.keys.Today):
		return m.GoTo(m.today)
	case key.Matches(msg, m.keys.Toggle):
		return m.Toggle(m.cursor)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

// Refresh recomputes the grid from the month, first day of week and
// selection.
func (m *Model) Refresh() {
	m.grid, m.err = calendar.GetMonth(m.month.Year, m.month.Month, m.opts.FirstDayOfWeek, *m.selection)
}

// Toggle flips the selection state of d, runs the matching callback and
// refreshes the grid.
func (m *Model) Toggle(d calendar.Date) tea.Cmd {
	selected := m.selection.Toggle(d)
	if selected {
		if m.opts.OnSelect != nil {
			m.opts.OnSelect(d)
		}
	} else if m.opts.OnUnselect != nil {
		m.opts.OnUnselect(d)
	}
	m.version++
	m.Refresh()

	msg := ToggledMsg{Date: d, Selected: selected, Version: m.version}
	return func() tea.Msg { return msg }
}

// MoveCursor moves the cursor by days. Leaving the displayed grid switches
// to the cursor's month; days of adjacent months shown in the grid can be
// reached without changing the month.
func (m *Model) MoveCursor(days int) tea.Cmd {
	next := m.cursor.AddDays(days)
	m.cursor = next
	if _, _, ok := m.grid.Find(next); ok {
		return nil
	}
	return m.setMonth(next.YearMonth())
}

// RollMonth moves the displayed month by diff, keeping the cursor on the
// same day of month where possible.
func (m *Model) RollMonth(diff int) tea.Cmd {
	target := m.month.Add(diff)
	m.cursor = calendar.NewDate(target.Year, target.Month, min(m.cursor.Day, target.Days()))
	return m.setMonth(target)
}

// GoTo shows the month of d with the cursor on d.
func (m *Model) GoTo(d calendar.Date) tea.Cmd {
	m.cursor = d
	return m.setMonth(d.YearMonth())
}

// SetYearMonth changes the displayed month. The cursor moves to the first
// of the month unless it is already visible.
func (m *Model) SetYearMonth(ym calendar.YearMonth) {
	_ = m.setMonth(calendar.NewYearMonth(ym.Year, ym.Month))
	if _, _, ok := m.grid.Find(m.cursor); !ok {
		m.cursor = m.month.First()
	}
}

// SetToday overrides the date highlighted as today.
func (m *Model) SetToday(d calendar.Date) {
	m.today = d
}

func (m *Model) setMonth(ym calendar.YearMonth) tea.Cmd {
	if ym == m.month {
		return nil
	}
	m.month = ym
	m.Refresh()
	return func() tea.Msg { return MonthChangedMsg{YearMonth: ym} }
}

// YearMonth returns the displayed month.
func (m *Model) YearMonth() calendar.YearMonth { return m.month }

// Cursor returns the highlighted date.
func (m *Model) Cursor() calendar.Date { return m.cursor }

// Grid returns the most recently computed grid.
func (m *Model) Grid() calendar.Grid { return m.grid }

// Selection returns the selected dates in ascending order.
func (m *Model) Selection() []calendar.Date { return m.selection.Sorted() }

// Version counts selection changes since the model was created.
func (m *Model) Version() int { return m.version }

// Err returns the error of the last refresh, if any.
func (m *Model) Err() error { return m.err }
