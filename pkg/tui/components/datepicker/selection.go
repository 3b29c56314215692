package datepicker

import (
	"slices"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/collection"
)

// Selection is the set of picked dates. It is owned by the caller and
// mutated by the Model; duplicates are never added by Toggle.
type Selection []calendar.Date

// Contains reports whether d is selected.
func (s Selection) Contains(d calendar.Date) bool {
	return collection.Contains(s, d, calendar.EqualDate)
}

// Toggle removes d when it is selected and adds it otherwise. It reports
// whether d is selected afterwards.
func (s *Selection) Toggle(d calendar.Date) bool {
	if s.Contains(d) {
		*s, _ = collection.Remove(*s, d, calendar.EqualDate)
		return false
	}
	*s = append(*s, d)
	return true
}

// Sorted returns a sorted copy of the selection.
func (s Selection) Sorted() []calendar.Date {
	out := slices.Clone([]calendar.Date(s))
	slices.SortFunc(out, calendar.Date.Compare)
	return out
}
