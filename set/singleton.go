package set

// Singleton is a set with exactly one element.
type Singleton[E comparable] struct {
	elem E
}

// NewSingleton returns the set {e}.
func NewSingleton[E comparable](e E) Singleton[E] {
	return Singleton[E]{elem: e}
}

// Elem returns the only element of the set.
func (s Singleton[E]) Elem() E {
	return s.elem
}

func (s Singleton[E]) Iter() Iterator[E] {
	return NewMappedIter(1, s.Index)
}

func (s Singleton[E]) Index(i int) (E, bool) {
	if i != 0 {
		return *new(E), false
	}
	return s.elem, true
}

func (s Singleton[E]) IndexOf(e E) (int, bool) {
	if e != s.elem {
		return 0, false
	}
	return 0, true
}

func (s Singleton[E]) Len() int {
	return 1
}

func (s Singleton[E]) Contains(e E) bool {
	return e == s.elem
}
