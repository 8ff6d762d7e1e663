package types

// Set is an unordered collection of distinct comparable values.
type Set[T comparable] map[T]struct{}

// NewSet returns a Set holding values.
func NewSet[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	s.Add(values...)
	return s
}

// Add inserts values into s.
func (s Set[T]) Add(values ...T) {
	for _, v := range values {
		s[v] = struct{}{}
	}
}

// Has reports whether v belongs to s.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of values in s.
func (s Set[T]) Len() int {
	return len(s)
}

// Equal reports whether s and other hold the same values.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}

	for v := range s {
		if !other.Has(v) {
			return false
		}
	}

	return true
}
