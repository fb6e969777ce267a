package setmap

import (
	"iter"

	"github.com/alglib/indexed/set"
)

// FnMap is a read-only Map that computes each value on demand.
// The value for the domain element k with index n is f(n, k).
type FnMap[K comparable, V any] struct {
	domain set.Set[K]
	f      func(n int, k K) V
}

// NewFnMap returns the map over domain defined by f.
// f should be free of side effects.
func NewFnMap[K comparable, V any](domain set.Set[K], f func(n int, k K) V) *FnMap[K, V] {
	return &FnMap[K, V]{
		domain: domain,
		f:      f,
	}
}

// Domain implements Map.Domain.
func (m *FnMap[K, V]) Domain() set.Set[K] {
	return m.domain
}

// Get implements Getter.
func (m *FnMap[K, V]) Get(k K) (V, bool) {
	n, ok := set.IndexOf(m.domain, k)
	if !ok {
		return *new(V), false
	}
	return m.f(n, k), true
}

// GetIndex implements Map.GetIndex.
func (m *FnMap[K, V]) GetIndex(n int) (V, bool) {
	k, ok := set.Index(m.domain, n)
	if !ok {
		return *new(V), false
	}
	return m.f(n, k), true
}

// All implements Ranger. It walks the domain once, so it is
// linear even when the domain has no Indexer.
func (m *FnMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n, k := range set.Enumerate(m.domain) {
			if !yield(k, m.f(n, k)) {
				return
			}
		}
	}
}
