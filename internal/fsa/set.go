package fsa

// Set is an unordered collection of comparable elements.
type Set[E comparable] map[E]struct{}

// NewSet builds a set from the given elements.
func NewSet[E comparable](elems ...E) Set[E] {
	s := make(Set[E], len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

func (s Set[E]) Add(e E)      { s[e] = struct{}{} }
func (s Set[E]) Remove(e E)   { delete(s, e) }
func (s Set[E]) Len() int     { return len(s) }
func (s Set[E]) Has(e E) bool { _, ok := s[e]; return ok }

// AddAll inserts every element of other into s.
func (s Set[E]) AddAll(other Set[E]) {
	for e := range other {
		s[e] = struct{}{}
	}
}

// Clone returns an independent copy.
func (s Set[E]) Clone() Set[E] {
	out := make(Set[E], len(s))
	for e := range s {
		out[e] = struct{}{}
	}
	return out
}

// Intersects reports whether s and other share at least one element.
func (s Set[E]) Intersects(other Set[E]) bool {
	small, big := s, other
	if len(big) < len(small) {
		small, big = big, small
	}
	for e := range small {
		if _, ok := big[e]; ok {
			return true
		}
	}
	return false
}

// Equal reports whether s and other hold exactly the same elements.
func (s Set[E]) Equal(other Set[E]) bool {
	if len(s) != len(other) {
		return false
	}
	for e := range s {
		if _, ok := other[e]; !ok {
			return false
		}
	}
	return true
}
