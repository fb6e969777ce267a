package set

// Slice is a set whose elements are held in a slice, indexed by
// their position. The elements should be distinct; if they are not,
// IndexOf finds the first occurrence.
//
// Slice does not implement Locator: lookup by element is a linear scan.
type Slice[E comparable] []E

// Iter implements Set.Iter.
func (s Slice[E]) Iter() Iterator[E] {
	return Values(s)
}

// Index implements Indexer.
func (s Slice[E]) Index(i int) (E, bool) {
	if i < 0 || i >= len(s) {
		return *new(E), false
	}
	return s[i], true
}

// Len implements Lener.
func (s Slice[E]) Len() int {
	return len(s)
}
