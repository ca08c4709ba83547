package fragile

import (
	"iter"
	"maps"
	"slices"
)

// Set is a set of fragile functions. For every member it keeps the index of
// the first cluster that matched it.
type Set struct {
	members map[Function]int
}

// NewSet is [Set] constructor.
func NewSet() *Set {
	return &Set{members: map[Function]int{}}
}

func (s *Set) add(fn Function, cluster int) {
	if prev, ok := s.members[fn]; ok && prev <= cluster {
		return
	}
	s.members[fn] = cluster
}

// Has checks if fn is fragile.
func (s *Set) Has(fn Function) bool {
	_, ok := s.members[fn]
	return ok
}

// Len returns the number of fragile functions.
func (s *Set) Len() int {
	return len(s.members)
}

// ClusterOf returns the index of the first cluster fn was matched against.
func (s *Set) ClusterOf(fn Function) (int, bool) {
	v, ok := s.members[fn]
	return v, ok
}

// All iterates over fragile functions and their cluster indices in no
// particular order.
func (s *Set) All() iter.Seq2[Function, int] {
	return maps.All(s.members)
}

// Functions returns members in no particular order.
func (s *Set) Functions() []Function {
	return slices.Collect(maps.Keys(s.members))
}

// Union adds all members of other into s.
func (s *Set) Union(other *Set) {
	for fn, c := range other.members {
		s.add(fn, c)
	}
}

// Equal checks both sets have the same members.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for fn := range s.members {
		if !other.Has(fn) {
			return false
		}
	}

	return true
}
