// Package timeutil parses the human-friendly date arguments accepted on the
// command line.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/datepick/pkg/calendar"
)

var (
	offsetPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap       = map[string]Offset{
		"d":      {Days: 1},
		"day":    {Days: 1},
		"days":   {Days: 1},
		"w":      {Days: 7},
		"wk":     {Days: 7},
		"wks":    {Days: 7},
		"week":   {Days: 7},
		"weeks":  {Days: 7},
		"m":      {Months: 1},
		"mo":     {Months: 1},
		"month":  {Months: 1},
		"months": {Months: 1},
		"y":      {Years: 1},
		"yr":     {Years: 1},
		"yrs":    {Years: 1},
		"year":   {Years: 1},
		"years":  {Years: 1},
	}
)

// Offset is a calendar displacement. Month overflow carries into the next
// month the way time.AddDate does: "+1m" from January 31 is March 2 or 3.
type Offset struct {
	Years  int
	Months int
	Days   int
}

// ParseOffset parses a signed offset such as "+1w2d", "-3m" or "2y". A
// missing sign means forward.
func ParseOffset(input string) (Offset, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	sign := 1
	switch {
	case strings.HasPrefix(trimmed, "+"):
		trimmed = trimmed[1:]
	case strings.HasPrefix(trimmed, "-"):
		sign = -1
		trimmed = trimmed[1:]
	}
	if strings.TrimSpace(trimmed) == "" {
		return Offset{}, fmt.Errorf("empty offset %q", input)
	}

	var total Offset
	remaining := trimmed
	for len(remaining) > 0 {
		matches := offsetPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return Offset{}, fmt.Errorf("invalid offset segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return Offset{}, fmt.Errorf("invalid offset value %q: %w", matches[1], err)
		}
		unit, ok := unitMap[matches[2]]
		if !ok {
			return Offset{}, fmt.Errorf("unsupported offset unit %q", matches[2])
		}
		total.Years += value * unit.Years
		total.Months += value * unit.Months
		total.Days += value * unit.Days

		remaining = strings.TrimSpace(remaining[len(matches[0]):])
	}

	total.Years *= sign
	total.Months *= sign
	total.Days *= sign
	return total, nil
}

// Apply moves d by the offset.
func (o Offset) Apply(d calendar.Date) calendar.Date {
	return calendar.NewDate(d.Year+o.Years, d.Month+time.Month(o.Months), d.Day+o.Days)
}

// ApplyMonth moves ym by the year and month parts of the offset; days are
// ignored.
func (o Offset) ApplyMonth(ym calendar.YearMonth) calendar.YearMonth {
	return ym.Add(o.Years*12 + o.Months)
}

// String renders the offset using y/m/d tokens, e.g. "+1y2m3d".
func (o Offset) String() string {
	if o == (Offset{}) {
		return "+0d"
	}
	var b strings.Builder
	sign := "+"
	if o.Years < 0 || o.Months < 0 || o.Days < 0 {
		sign = "-"
	}
	b.WriteString(sign)
	for _, part := range []struct {
		value int
		label string
	}{
		{o.Years, "y"},
		{o.Months, "m"},
		{o.Days, "d"},
	} {
		if part.value == 0 {
			continue
		}
		v := part.value
		if v < 0 {
			v = -v
		}
		fmt.Fprintf(&b, "%d%s", v, part.label)
	}
	return b.String()
}
