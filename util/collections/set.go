package collections

import "sort"

type Set[V comparable] map[V]struct{}

// NewSet returns a Set holding the given values, duplicates collapsed
func NewSet[V comparable](values ...V) Set[V] {
	set := make(Set[V], len(values))
	for _, value := range values {
		set.Add(value)
	}
	return set
}

// Add an element to the set
func (set Set[V]) Add(value V) {
	set[value] = struct{}{}
}

// Remove an element from the set (or no-op if element not present)
func (set Set[V]) Remove(value V) {
	delete(set, value)
}

// Contains returns whether the element exists within the set
func (set Set[V]) Contains(value V) bool {
	_, contains := set[value]
	return contains
}

// Union returns a new Set containing the elements of both sets
func (set Set[V]) Union(other Set[V]) Set[V] {
	union := make(Set[V], len(set)+len(other))
	for value := range set {
		union.Add(value)
	}
	for value := range other {
		union.Add(value)
	}
	return union
}

// Difference returns a new Set containing all elements from the calling set
// not present in the other set
func (set Set[V]) Difference(other Set[V]) Set[V] {
	difference := make(Set[V])
	for value := range set {
		if !other.Contains(value) {
			difference.Add(value)
		}
	}
	return difference
}

// Sorted returns the elements as a slice ordered by less. Map iteration order
// is random, so callers needing reproducible draws go through here.
func (set Set[V]) Sorted(less func(a, b V) bool) []V {
	values := make([]V, 0, len(set))
	for value := range set {
		values = append(values, value)
	}
	sort.Slice(values, func(i, j int) bool {
		return less(values[i], values[j])
	})
	return values
}
