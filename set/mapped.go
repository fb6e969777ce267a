package set

import (
	"fmt"

	"github.com/alglib/indexed/rangeiter"
)

// MappedIter is a double-ended iterator that produces f(0), f(1), ..., f(n-1).
// It is the iterator used by sets that compute their elements on demand.
//
// f must report true for every index below n; MappedIter panics
// when it reaches an index for which f reports false.
type MappedIter[E any] struct {
	n       int
	indexes *rangeiter.Iter[int]
	f       func(int) (E, bool)
}

// NewMappedIter returns an iterator over f(i) for i in [0, n).
func NewMappedIter[E any](n int, f func(int) (E, bool)) *MappedIter[E] {
	return &MappedIter[E]{
		n:       n,
		indexes: rangeiter.New(0, n),
		f:       f,
	}
}

// Values returns an iterator over the elements of xs.
func Values[E any](xs []E) *MappedIter[E] {
	return NewMappedIter(len(xs), func(i int) (E, bool) {
		return xs[i], true
	})
}

func (it *MappedIter[E]) apply(i int, ok bool) (E, bool) {
	if !ok {
		return *new(E), false
	}
	x, ok := it.f(i)
	if !ok {
		panic(fmt.Sprintf("set: iterator has length %d but no element is defined at index %d", it.n, i))
	}
	return x, true
}

// Next implements Iterator.Next.
func (it *MappedIter[E]) Next() (E, bool) {
	return it.apply(it.indexes.Next())
}

// Nth implements Iterator.Nth.
func (it *MappedIter[E]) Nth(n int) (E, bool) {
	return it.apply(it.indexes.Nth(n))
}

// NextBack implements DoubleEndedIterator.NextBack.
func (it *MappedIter[E]) NextBack() (E, bool) {
	return it.apply(it.indexes.NextBack())
}

// NthBack implements DoubleEndedIterator.NthBack.
func (it *MappedIter[E]) NthBack(n int) (E, bool) {
	return it.apply(it.indexes.NthBack(n))
}

// Len implements Iterator.Len.
func (it *MappedIter[E]) Len() int {
	return it.indexes.Len()
}
