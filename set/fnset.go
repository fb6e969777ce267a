package set

import (
	"fmt"
	"math"
)

// FnSet is a set that stores no elements. Instead it holds a
// bijection between the indexes [0, n) and its elements, given as a
// pair of functions:
//
//	forward(i) returns the element with index i
//	reverse(e) returns the index of element e
//
// The functions must be inverses of each other: if forward(i)
// yields e then reverse(e) must yield i, and if reverse(e) yields i
// then forward(i) must yield e. FnSet cannot verify this;
// behavior is unspecified if it does not hold.
//
// Both functions must be free of side effects.
type FnSet[E comparable] struct {
	n       int
	forward func(int) (E, bool)
	reverse func(E) (int, bool)
}

// NewFnSet returns the set defined by the given forward and reverse
// functions. Its size is the smallest n for which forward(n)
// reports false; finding it calls forward n+1 times.
//
// NewFnSet panics if forward never reports false.
func NewFnSet[E comparable](forward func(int) (E, bool), reverse func(E) (int, bool)) *FnSet[E] {
	n := 0
	for {
		if _, ok := forward(n); !ok {
			break
		}
		if n == math.MaxInt {
			panic("set.NewFnSet: forward is defined for every index")
		}
		n++
	}
	return NewFnSetLen(n, forward, reverse)
}

// NewFnSetLen is like NewFnSet except that the caller supplies
// the size n, so no scan is needed. In addition to the requirements
// of NewFnSet, forward(i) must report true exactly when i < n.
//
// NewFnSetLen panics if n is negative or forward(n) reports true.
func NewFnSetLen[E comparable](n int, forward func(int) (E, bool), reverse func(E) (int, bool)) *FnSet[E] {
	if n < 0 {
		panic(fmt.Sprintf("set.NewFnSetLen: negative length %d", n))
	}
	if _, ok := forward(n); ok {
		panic(fmt.Sprintf("set.NewFnSetLen: forward(%d) yields an element, but %d is the declared length", n, n))
	}
	return &FnSet[E]{
		n:       n,
		forward: forward,
		reverse: reverse,
	}
}

// Forward returns the index-to-element function of s.
func (s *FnSet[E]) Forward() func(int) (E, bool) {
	return s.forward
}

// Reverse returns the element-to-index function of s.
func (s *FnSet[E]) Reverse() func(E) (int, bool) {
	return s.reverse
}

// Iter implements Set.Iter. The returned iterator is a *MappedIter[E].
func (s *FnSet[E]) Iter() Iterator[E] {
	return NewMappedIter(s.n, s.forward)
}

// Index implements Indexer.
func (s *FnSet[E]) Index(i int) (E, bool) {
	if i < 0 || i >= s.n {
		return *new(E), false
	}
	return s.forward(i)
}

// IndexOf implements Locator by calling the reverse function.
func (s *FnSet[E]) IndexOf(e E) (int, bool) {
	return s.reverse(e)
}

// Len implements Lener.
func (s *FnSet[E]) Len() int {
	return s.n
}

// Contains implements Container.
func (s *FnSet[E]) Contains(e E) bool {
	_, ok := s.reverse(e)
	return ok
}
