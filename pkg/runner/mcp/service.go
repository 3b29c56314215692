// Package mcp provides the Model Context Protocol server integration for datepick.
package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/collection"
	"tableflip.dev/datepick/pkg/config"
	"tableflip.dev/datepick/pkg/timeutil"
)

// Service implements the calendar operations shared by the MCP tools and
// resources. It only reads its configuration and is safe for concurrent use.
type Service struct {
	Config config.Config
	// Now returns the current time; relative expressions resolve against it.
	Now func() time.Time
}

// MonthDTO is a grid together with the labels needed to render it.
type MonthDTO struct {
	calendar.Grid
	Title    string   `json:"title"`
	DayNames []string `json:"dayNames"`
}

// RangeDTO lists every date between two dates inclusive.
type RangeDTO struct {
	Start calendar.Date              `json:"start"`
	End   calendar.Date              `json:"end"`
	Count int                        `json:"count"`
	Dates []map[string]calendar.Date `json:"dates"`
}

// YearMonthDTO describes a month.
type YearMonthDTO struct {
	YearMonth calendar.YearMonth `json:"yearMonth"`
	Title     string             `json:"title"`
	First     calendar.Date      `json:"first"`
	Last      calendar.Date      `json:"last"`
	Days      int                `json:"days"`
}

// DateDTO is a date with its weekday.
type DateDTO struct {
	Date    calendar.Date `json:"date"`
	Weekday string        `json:"weekday"`
}

// EqualityDTO compares two points in time.
type EqualityDTO struct {
	A             string `json:"a"`
	B             string `json:"b"`
	SameDate      bool   `json:"sameDate"`
	SameYearMonth bool   `json:"sameYearMonth"`
}

// NewService builds a service for cfg using the wall clock.
func NewService(cfg config.Config) *Service {
	return &Service{Config: cfg, Now: time.Now}
}

func (s *Service) today() calendar.Date {
	if s.Now == nil {
		return calendar.Today()
	}
	return calendar.DateOf(s.Now())
}

// Today returns the current date.
func (s *Service) Today(_ context.Context) DateDTO {
	return dateDTO(s.today())
}

// GetMonth builds the grid for yearMonth. An empty firstDayOfWeek uses the
// configured one; selected holds date expressions.
func (s *Service) GetMonth(_ context.Context, yearMonth, firstDayOfWeek string, selected []string) (MonthDTO, error) {
	today := s.today()
	ym, err := s.yearMonth(yearMonth, today)
	if err != nil {
		return MonthDTO{}, err
	}

	opts := s.Config.Options()
	if strings.TrimSpace(firstDayOfWeek) != "" {
		if opts.FirstDayOfWeek, err = timeutil.ParseWeekday(firstDayOfWeek); err != nil {
			return MonthDTO{}, err
		}
	}

	dates, err := timeutil.ParseDates(selected, today)
	if err != nil {
		return MonthDTO{}, fmt.Errorf("selected: %w", err)
	}

	grid, err := calendar.GetMonth(ym.Year, ym.Month, opts.FirstDayOfWeek, dates)
	if err != nil {
		return MonthDTO{}, err
	}
	return MonthDTO{
		Grid:     grid,
		Title:    opts.Title(ym),
		DayNames: opts.OrderedDayNames(),
	}, nil
}

// DateRange lists the dates from start to end inclusive.
func (s *Service) DateRange(_ context.Context, start, end string) (RangeDTO, error) {
	today := s.today()
	from, err := timeutil.ParseDate(start, today)
	if err != nil {
		return RangeDTO{}, fmt.Errorf("start: %w", err)
	}
	to, err := timeutil.ParseDate(end, today)
	if err != nil {
		return RangeDTO{}, fmt.Errorf("end: %w", err)
	}
	dates, err := calendar.DateRange(from, to)
	if err != nil {
		return RangeDTO{}, err
	}
	return RangeDTO{
		Start: from,
		End:   to,
		Count: len(dates),
		Dates: collection.ToObjects(dates, "date"),
	}, nil
}

// RollYearMonth moves yearMonth by diff months.
func (s *Service) RollYearMonth(_ context.Context, yearMonth string, diff int) (YearMonthDTO, error) {
	ym, err := s.yearMonth(yearMonth, s.today())
	if err != nil {
		return YearMonthDTO{}, err
	}
	ym.Roll(diff)
	return YearMonthDTO{
		YearMonth: ym,
		Title:     s.Config.Options().Title(ym),
		First:     ym.First(),
		Last:      ym.Last(),
		Days:      ym.Days(),
	}, nil
}

// MoveToWeekday returns the nearest date on weekday, searching forward from
// date or backward when reverse is set. date itself matches.
func (s *Service) MoveToWeekday(_ context.Context, date, weekday string, reverse bool) (DateDTO, error) {
	d, err := timeutil.ParseDate(date, s.today())
	if err != nil {
		return DateDTO{}, err
	}
	wd, err := timeutil.ParseWeekday(weekday)
	if err != nil {
		return DateDTO{}, err
	}
	move := calendar.ForwardToWeekday
	if reverse {
		move = calendar.ReverseToWeekday
	}
	out, err := move(d, wd)
	if err != nil {
		return DateDTO{}, err
	}
	return dateDTO(out), nil
}

// EqualDate compares a and b ignoring the time of day. Both accept RFC 3339
// timestamps as well as date expressions.
func (s *Service) EqualDate(_ context.Context, a, b string) (EqualityDTO, error) {
	today := s.today()
	ta, err := parseInstant(a, today)
	if err != nil {
		return EqualityDTO{}, fmt.Errorf("a: %w", err)
	}
	tb, err := parseInstant(b, today)
	if err != nil {
		return EqualityDTO{}, fmt.Errorf("b: %w", err)
	}
	return EqualityDTO{
		A:             ta.Format(time.RFC3339),
		B:             tb.Format(time.RFC3339),
		SameDate:      calendar.EqualDateWithoutTime(ta, tb),
		SameYearMonth: calendar.EqualYearMonth(ta, tb),
	}, nil
}

func (s *Service) yearMonth(input string, today calendar.Date) (calendar.YearMonth, error) {
	if strings.TrimSpace(input) == "" {
		return today.YearMonth(), nil
	}
	return timeutil.ParseYearMonth(input, today)
}

func parseInstant(input string, today calendar.Date) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(input)); err == nil {
		return t, nil
	}
	d, err := timeutil.ParseDate(input, today)
	if err != nil {
		return time.Time{}, err
	}
	return d.Time(), nil
}

func dateDTO(d calendar.Date) DateDTO {
	return DateDTO{Date: d, Weekday: d.Weekday().String()}
}
