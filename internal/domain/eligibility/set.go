package eligibility

import "sort"

// Set is a set of equipment keys
type Set map[string]struct{}

// NewSet creates a set holding keys
func NewSet(keys ...string) Set {
	s := make(Set, len(keys))
	s.Add(keys...)
	return s
}

// Add inserts keys into the set
func (s Set) Add(keys ...string) {
	for _, k := range keys {
		s[k] = struct{}{}
	}
}

// Has reports whether key is in the set
func (s Set) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of keys
func (s Set) Len() int {
	return len(s)
}

// Keys returns the keys sorted
func (s Set) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
