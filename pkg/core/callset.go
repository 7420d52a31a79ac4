package core

import "sort"

// CallSet is a set of uppercase station identifiers.
type CallSet map[string]struct{}

// NewCallSet returns an empty set.
func NewCallSet() CallSet {
	return make(CallSet)
}

// Add inserts call into the set.
func (s CallSet) Add(call string) {
	s[call] = struct{}{}
}

// Has reports whether call is in the set.
func (s CallSet) Has(call string) bool {
	_, ok := s[call]
	return ok
}

// Len returns the number of distinct identifiers.
func (s CallSet) Len() int {
	return len(s)
}

// Sorted returns the identifiers in ascending order.
func (s CallSet) Sorted() []string {
	calls := make([]string, 0, len(s))
	for c := range s {
		calls = append(calls, c)
	}
	sort.Strings(calls)
	return calls
}
