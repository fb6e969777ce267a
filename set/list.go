package set

import (
	"fmt"

	"github.com/emirpasic/gods/lists"
)

// List adapts a gods list to a Set. The list must hold only values
// of dynamic type E and must not be modified while the adaptor
// is in use.
//
// Lookup by index calls the list's Get method, so iteration is only
// efficient for random-access lists such as arraylist.List.
type List[E comparable] struct {
	l lists.List
}

// FromList returns l as a Set.
func FromList[E comparable](l lists.List) *List[E] {
	return &List[E]{l: l}
}

// Iter implements Set.Iter.
func (s *List[E]) Iter() Iterator[E] {
	return NewMappedIter(s.l.Size(), s.Index)
}

// Index implements Indexer.
func (s *List[E]) Index(i int) (E, bool) {
	v, ok := s.l.Get(i)
	if !ok {
		return *new(E), false
	}
	return s.elem(v), true
}

// IndexOf implements Locator.
func (s *List[E]) IndexOf(e E) (int, bool) {
	for i, v := range s.l.Values() {
		if s.elem(v) == e {
			return i, true
		}
	}
	return 0, false
}

// Len implements Lener.
func (s *List[E]) Len() int {
	return s.l.Size()
}

// Contains implements Container. It does not use the list's own
// Contains method: arraylist.List searches its spare capacity too,
// which can hold stale values after Remove.
func (s *List[E]) Contains(e E) bool {
	_, ok := s.IndexOf(e)
	return ok
}

func (s *List[E]) elem(v interface{}) E {
	e, ok := v.(E)
	if !ok {
		panic(fmt.Sprintf("set: list element %#v has type %T, not %T", v, v, e))
	}
	return e
}
