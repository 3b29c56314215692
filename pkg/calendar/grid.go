package calendar

import (
	"time"

	"tableflip.dev/datepick/pkg/collection"
)

// DaysPerWeek is the number of cells in a Week.
const DaysPerWeek = 7

// Cell is a single day of a Grid.
type Cell struct {
	Date       Date `json:"date"`
	Selected   bool `json:"selected"`
	OutOfMonth bool `json:"outOfMonth"`
}

// Week is a row of DaysPerWeek consecutive cells.
type Week []Cell

// Grid is the set of whole weeks covering a month. Weeks are in calendar
// order and start on FirstDayOfWeek.
type Grid struct {
	YearMonth      YearMonth    `json:"yearMonth"`
	FirstDayOfWeek time.Weekday `json:"firstDayOfWeek"`
	Weeks          []Week       `json:"weeks"`
}

// GetMonth builds the grid for month of year. Leading and trailing days
// from the adjacent months complete the first and last week and are flagged
// OutOfMonth; days contained in selected are flagged Selected. Each call
// returns a fresh grid and selected is only read.
func GetMonth(year int, month time.Month, firstDayOfWeek time.Weekday, selected []Date) (Grid, error) {
	lastDayOfWeek, err := LastWeekday(firstDayOfWeek)
	if err != nil {
		return Grid{}, err
	}

	ym := NewYearMonth(year, month)
	first, err := ReverseToWeekday(ym.First(), firstDayOfWeek)
	if err != nil {
		return Grid{}, err
	}
	last, err := ForwardToWeekday(ym.Last(), lastDayOfWeek)
	if err != nil {
		return Grid{}, err
	}
	dates, err := DateRange(first, last)
	if err != nil {
		return Grid{}, err
	}

	cells := collection.Map(dates, func(d Date) Cell { return Cell{Date: d} })
	collection.ForEach(cells, func(c *Cell) {
		c.Selected = collection.Contains(selected, c.Date, EqualDate)
		c.OutOfMonth = !ym.Contains(c.Date)
	})

	return Grid{
		YearMonth:      ym,
		FirstDayOfWeek: firstDayOfWeek,
		Weeks:          collection.Chunk(Week(cells), DaysPerWeek),
	}, nil
}

// Cells returns all cells of the grid in calendar order.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, len(g.Weeks)*DaysPerWeek)
	for _, w := range g.Weeks {
		cells = append(cells, w...)
	}
	return cells
}

// Find returns the position of d in the grid.
func (g Grid) Find(d Date) (week, day int, ok bool) {
	for wi, w := range g.Weeks {
		for di, c := range w {
			if EqualDate(c.Date, d) {
				return wi, di, true
			}
		}
	}
	return 0, 0, false
}

// Selected returns the selected dates shown in the grid, including those
// outside the month.
func (g Grid) Selected() []Date {
	selected := collection.Filter(g.Cells(), func(c Cell) bool { return c.Selected })
	return collection.Map(selected, func(c Cell) Date { return c.Date })
}

// First returns the first date shown in the grid.
func (g Grid) First() Date {
	if len(g.Weeks) == 0 || len(g.Weeks[0]) == 0 {
		return Date{}
	}
	return g.Weeks[0][0].Date
}

// Last returns the last date shown in the grid.
func (g Grid) Last() Date {
	if len(g.Weeks) == 0 {
		return Date{}
	}
	w := g.Weeks[len(g.Weeks)-1]
	if len(w) == 0 {
		return Date{}
	}
	return w[len(w)-1].Date
}
