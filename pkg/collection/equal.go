package collection

// Contains reports whether any element of values equals item under eq.
func Contains[E any](values []E, item E, eq func(a, b E) bool) bool {
	for i := len(values) - 1; i >= 0; i-- {
		if eq(values[i], item) {
			return true
		}
	}
	return false
}

// Remove deletes every element equal to item under eq. It returns the
// shortened slice and whether anything was removed. The backing array of
// values is reused.
func Remove[S ~[]E, E any](values S, item E, eq func(a, b E) bool) (S, bool) {
	out := values[:0]
	removed := false
	for _, v := range values {
		if eq(v, item) {
			removed = true
			continue
		}
		out = append(out, v)
	}
	clear(values[len(out):])
	return out, removed
}
