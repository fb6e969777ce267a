// Package set defines finite, ordered sets whose elements are in
// one-to-one correspondence with the indexes 0, 1, ..., n-1, and some
// implementations of them.
//
// The only method a set must provide is Iter. Every other operation
// has a default definition in terms of the iterator; an implementation
// that can do better implements the corresponding optional interface
// (Indexer, Locator, Lener, Container) and the package-level
// functions (Index, IndexOf, Len, Contains) will use it, in the
// same way that io.Copy uses io.WriterTo.
//
// An override must be observationally equivalent to its default:
// for every index i < Len(s), Index(s, i) yields e if and only if
// IndexOf(s, e) yields i. The settest package checks this.
package set

import "iter"

// Iterator enumerates a finite sequence whose remaining length
// is always known exactly.
type Iterator[E any] interface {
	// Next returns the next element, or reports false if there are none left.
	Next() (E, bool)

	// Nth skips n elements and returns the one after them.
	// If the iterator holds fewer than n+1 elements, it is
	// exhausted and Nth reports false.
	Nth(n int) (E, bool)

	// Len returns the number of elements remaining.
	Len() int
}

// DoubleEndedIterator is an Iterator that can also be consumed
// from the back.
type DoubleEndedIterator[E any] interface {
	Iterator[E]
	NextBack() (E, bool)
	NthBack(n int) (E, bool)
}

// Set is a finite set of elements ordered by index.
type Set[E comparable] interface {
	// Iter returns a new iterator that produces the elements of
	// the set in ascending index order. Calling Iter does not
	// affect any previously returned iterator.
	Iter() Iterator[E]
}

// Indexer is implemented by sets that can find the element
// at a given index without iterating.
type Indexer[E comparable] interface {
	Index(i int) (E, bool)
}

// Locator is implemented by sets that can find the index
// of an element without iterating.
type Locator[E comparable] interface {
	IndexOf(e E) (int, bool)
}

// Lener is implemented by sets that know their size.
type Lener interface {
	Len() int
}

// Container is implemented by sets that have a fast membership test.
type Container[E comparable] interface {
	Contains(e E) bool
}

// Index returns the element at index i of s. It reports false if
// i is out of range.
func Index[E comparable](s Set[E], i int) (E, bool) {
	if i < 0 {
		return *new(E), false
	}
	if s, ok := s.(Indexer[E]); ok {
		return s.Index(i)
	}
	return s.Iter().Nth(i)
}

// IndexOf returns the index of e in s. It reports false if
// s does not contain e.
func IndexOf[E comparable](s Set[E], e E) (int, bool) {
	if s, ok := s.(Locator[E]); ok {
		return s.IndexOf(e)
	}
	return DefaultIndexOf(s, e)
}

// Len returns the number of elements in s.
func Len[E comparable](s Set[E]) int {
	if s, ok := s.(Lener); ok {
		return s.Len()
	}
	return s.Iter().Len()
}

// Contains reports whether e is a member of s.
func Contains[E comparable](s Set[E], e E) bool {
	if s, ok := s.(Container[E]); ok {
		return s.Contains(e)
	}
	_, ok := IndexOf(s, e)
	return ok
}

// IsEmpty reports whether s has no elements.
func IsEmpty[E comparable](s Set[E]) bool {
	return Len(s) == 0
}

// DefaultIndex is the definition of Index in terms of s.Iter alone.
func DefaultIndex[E comparable](s Set[E], i int) (E, bool) {
	if i < 0 {
		return *new(E), false
	}
	return s.Iter().Nth(i)
}

// DefaultIndexOf is the definition of IndexOf in terms of s.Iter alone:
// a linear scan for the first element equal to e.
func DefaultIndexOf[E comparable](s Set[E], e E) (int, bool) {
	it := s.Iter()
	for i := 0; ; i++ {
		x, ok := it.Next()
		if !ok {
			return 0, false
		}
		if x == e {
			return i, true
		}
	}
}

// DefaultLen is the definition of Len in terms of s.Iter alone.
func DefaultLen[E comparable](s Set[E]) int {
	return s.Iter().Len()
}

// DefaultContains is the definition of Contains in terms of s.Iter alone.
func DefaultContains[E comparable](s Set[E], e E) bool {
	_, ok := DefaultIndexOf(s, e)
	return ok
}

// All returns an iterator over the elements of s in index order.
func All[E comparable](s Set[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		it := s.Iter()
		for {
			x, ok := it.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// Enumerate returns an iterator over the index-element
// pairs of s in index order.
func Enumerate[E comparable](s Set[E]) iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		it := s.Iter()
		for i := 0; ; i++ {
			x, ok := it.Next()
			if !ok || !yield(i, x) {
				return
			}
		}
	}
}

// Collect returns the elements of s as a slice in index order.
func Collect[E comparable](s Set[E]) []E {
	it := s.Iter()
	xs := make([]E, 0, it.Len())
	for {
		x, ok := it.Next()
		if !ok {
			return xs
		}
		xs = append(xs, x)
	}
}
