package set

import (
	"golang.org/x/exp/constraints"

	"github.com/alglib/indexed/checked"
	"github.com/alglib/indexed/rangeiter"
)

// IntRange is the set of integers {0, 1, ..., n-1}. Each element
// is its own index.
//
// The zero value is an empty range.
type IntRange[T constraints.Integer] struct {
	n T
}

// NewIntRange returns the set {0, ..., n-1}. It panics if n
// is negative or too large to be used as an index.
func NewIntRange[T constraints.Integer](n T) IntRange[T] {
	checked.MustIndex(n, "set.NewIntRange")
	return IntRange[T]{n: n}
}

// Bound returns n, the exclusive upper bound of the range.
func (r IntRange[T]) Bound() T {
	return r.n
}

// Iter implements Set.Iter. The returned iterator
// is a *rangeiter.Iter[T].
func (r IntRange[T]) Iter() Iterator[T] {
	return rangeiter.New(0, r.n)
}

// Index implements Indexer.
func (r IntRange[T]) Index(i int) (T, bool) {
	if i < 0 || i >= r.Len() {
		return 0, false
	}
	return checked.FromIndex[T](i)
}

// IndexOf implements Locator.
func (r IntRange[T]) IndexOf(x T) (int, bool) {
	if x < 0 || x >= r.n {
		return 0, false
	}
	return int(x), true
}

// Len implements Lener.
func (r IntRange[T]) Len() int {
	return int(r.n)
}

// Contains implements Container.
func (r IntRange[T]) Contains(x T) bool {
	return 0 <= x && x < r.n
}
