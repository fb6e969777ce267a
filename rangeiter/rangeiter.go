// Package rangeiter implements a double-ended iterator over a half-open
// interval of integers.
package rangeiter

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/alglib/indexed/checked"
)

// Iter iterates over the integers in [start, end). Elements can be
// consumed from both ends; the two cursors converge until the
// iterator is exhausted, at which point start == end.
//
// The length of the remaining interval is always representable
// as an int.
type Iter[T constraints.Integer] struct {
	start, end T
}

// New returns an iterator over [start, end). It panics if end < start
// or if end-start cannot be represented as an int.
func New[T constraints.Integer](start, end T) *Iter[T] {
	d, ok := checked.Sub(end, start)
	if !ok || d < 0 {
		panic(fmt.Sprintf("rangeiter.New: invalid interval [%v, %v)", start, end))
	}
	if _, ok := checked.ToIndex(d); !ok {
		panic(fmt.Sprintf("rangeiter.New: length of [%v, %v) does not fit in an int", start, end))
	}
	return &Iter[T]{
		start: start,
		end:   end,
	}
}

// Start returns the current front cursor (inclusive).
func (it *Iter[T]) Start() T {
	return it.start
}

// End returns the current back cursor (exclusive).
func (it *Iter[T]) End() T {
	return it.end
}

// Len returns the number of elements remaining.
func (it *Iter[T]) Len() int {
	// The length never grows, so the check made by New still holds.
	return int(it.end - it.start)
}

// Next returns the element at the front of the iterator and
// advances past it. It reports false if the iterator is exhausted.
func (it *Iter[T]) Next() (T, bool) {
	if it.start >= it.end {
		return 0, false
	}
	x := it.start
	it.start++
	return x, true
}

// NextBack returns the element at the back of the iterator and
// retreats past it. It reports false if the iterator is exhausted.
func (it *Iter[T]) NextBack() (T, bool) {
	if it.start >= it.end {
		return 0, false
	}
	it.end--
	return it.end, true
}

// Nth skips n elements from the front and returns the one after
// them, so Nth(0) is equivalent to Next.
//
// If fewer than n+1 elements remain, the iterator is exhausted
// entirely and Nth reports false.
// Nth panics if n is negative.
func (it *Iter[T]) Nth(n int) (T, bool) {
	if n < 0 {
		panic("rangeiter: Nth called with negative count")
	}
	if d, ok := checked.FromIndex[T](n); ok {
		if x, ok := checked.Add(it.start, d); ok && x < it.end {
			it.start = x + 1
			return x, true
		}
	}
	it.start = it.end
	return 0, false
}

// NthBack is the mirror image of Nth: it skips n elements from the
// back and returns the one before them. On overshoot the iterator
// is exhausted entirely.
// NthBack panics if n is negative.
func (it *Iter[T]) NthBack(n int) (T, bool) {
	if n < 0 {
		panic("rangeiter: NthBack called with negative count")
	}
	if d, ok := checked.FromIndex[T](n); ok {
		if x, ok := checked.Sub(it.end, d); ok && it.start < x {
			it.end = x - 1
			return it.end, true
		}
	}
	it.end = it.start
	return 0, false
}

// Clone returns an independent copy of the iterator.
func (it *Iter[T]) Clone() *Iter[T] {
	it1 := *it
	return &it1
}

// All returns an iterator that consumes the remaining elements
// from front to back.
func (it *Iter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			x, ok := it.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// Backward returns an iterator that consumes the remaining elements
// from back to front.
func (it *Iter[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			x, ok := it.NextBack()
			if !ok || !yield(x) {
				return
			}
		}
	}
}
