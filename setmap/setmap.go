// Package setmap implements ordered maps whose keys are the elements
// of a set.Set, called the domain of the map. The value for the key
// with index n in the domain is the n'th value of the map.
package setmap

import (
	"iter"

	"github.com/alglib/indexed/set"
)

// Map is a mapping from the elements of a domain set to values.
type Map[K comparable, V any] interface {
	// Domain returns the set of keys of the map.
	Domain() set.Set[K]

	// GetIndex returns the value for the key with index n
	// in the domain. It reports false if n is out of range.
	GetIndex(n int) (V, bool)
}

// Getter is implemented by maps that can look up a key without
// consulting the domain's IndexOf.
type Getter[K comparable, V any] interface {
	Get(k K) (V, bool)
}

// Ranger is implemented by maps that can enumerate their entries
// more cheaply than by calling GetIndex for every index.
type Ranger[K comparable, V any] interface {
	All() iter.Seq2[K, V]
}

// Get returns the value for key k in m. It reports false if k
// is not in the domain of m.
func Get[K comparable, V any](m Map[K, V], k K) (V, bool) {
	if m, ok := m.(Getter[K, V]); ok {
		return m.Get(k)
	}
	n, ok := set.IndexOf(m.Domain(), k)
	if !ok {
		return *new(V), false
	}
	return m.GetIndex(n)
}

// Len returns the number of entries in m, which is the size
// of its domain.
func Len[K comparable, V any](m Map[K, V]) int {
	return set.Len(m.Domain())
}

// All returns an iterator over the key-value pairs of m
// in domain order.
func All[K comparable, V any](m Map[K, V]) iter.Seq2[K, V] {
	if m, ok := m.(Ranger[K, V]); ok {
		return m.All()
	}
	return func(yield func(K, V) bool) {
		for n, k := range set.Enumerate(m.Domain()) {
			v, ok := m.GetIndex(n)
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}
