package nfa

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Set is a set of state indices.
type Set map[int]struct{}

// NewSet returns a set holding the given indices.
func NewSet(indices ...int) Set {
	s := make(Set, len(indices))
	for _, i := range indices {
		s[i] = struct{}{}
	}
	return s
}

// Contains reports whether i is in the set.
func (s Set) Contains(i int) bool {
	_, ok := s[i]
	return ok
}

// Insert adds i to the set.
func (s Set) Insert(i int) {
	s[i] = struct{}{}
}

// Len returns the number of indices in the set.
func (s Set) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	if s == nil {
		return Set{}
	}
	return maps.Clone(s)
}

// Equal reports whether both sets hold the same indices.
func (s Set) Equal(other Set) bool {
	return maps.Equal(s, other)
}

// Sorted returns the indices in ascending order.
func (s Set) Sorted() []int {
	keys := maps.Keys(s)
	slices.Sort(keys)
	return keys
}
