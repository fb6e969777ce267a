package setmap

import "github.com/alglib/indexed/set"

// Slice is a Map from the indexes of a slice to its elements.
type Slice[V any] []V

// Domain implements Map.Domain. It returns a set.IntRange[int].
func (s Slice[V]) Domain() set.Set[int] {
	return set.NewIntRange(len(s))
}

// GetIndex implements Map.GetIndex.
func (s Slice[V]) GetIndex(n int) (V, bool) {
	if n < 0 || n >= len(s) {
		return *new(V), false
	}
	return s[n], true
}
