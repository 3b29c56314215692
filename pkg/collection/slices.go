// Package collection provides small generic slice helpers used by the
// calendar engine and the date picker.
package collection

// Filter returns the elements of values for which accept reports true.
func Filter[S ~[]E, E any](values S, accept func(E) bool) S {
	var out S
	for _, v := range values {
		if accept(v) {
			out = append(out, v)
		}
	}
	return out
}

// Map converts every element of values with fn.
func Map[E, V any](values []E, fn func(E) V) []V {
	out := make([]V, len(values))
	for i, v := range values {
		out[i] = fn(v)
	}
	return out
}

// ForEach calls fn with a pointer to every element so callers can update
// elements in place.
func ForEach[S ~[]E, E any](values S, fn func(*E)) {
	for i := range values {
		fn(&values[i])
	}
}

// Chunk splits values into consecutive sub-slices of size elements. The
// last chunk may be shorter. Chunks are copies and do not alias values.
func Chunk[S ~[]E, E any](values S, size int) []S {
	if size <= 0 {
		return nil
	}
	chunks := make([]S, 0, (len(values)+size-1)/size)
	for len(values) > 0 {
		n := min(size, len(values))
		chunk := make(S, n)
		copy(chunk, values[:n])
		chunks = append(chunks, chunk)
		values = values[n:]
	}
	return chunks
}

// ToObjects wraps every value into a single-key object, {key: value}.
func ToObjects[E any](values []E, key string) []map[string]E {
	return Map(values, func(v E) map[string]E {
		return map[string]E{key: v}
	})
}
