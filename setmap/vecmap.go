package setmap

import (
	"fmt"

	"github.com/alglib/indexed/set"
)

// VecMap is a Map that holds its values in a slice aligned with the
// index order of its domain. Unlike the other types in this module,
// its values can be changed after construction; the domain cannot.
//
// VecMap is not safe for concurrent mutation.
type VecMap[K comparable, V any] struct {
	domain set.Set[K]
	image  []V
}

// NewVecMap returns a map from the elements of domain to the
// corresponding elements of image. It panics if the size of
// domain differs from len(image).
//
// The map takes ownership of image.
func NewVecMap[K comparable, V any](domain set.Set[K], image []V) *VecMap[K, V] {
	if n := set.Len(domain); n != len(image) {
		panic(fmt.Sprintf("setmap.NewVecMap: domain has %d elements but image has %d", n, len(image)))
	}
	return &VecMap[K, V]{
		domain: domain,
		image:  image,
	}
}

// NewVecMapZero returns a map from the elements of domain
// to the zero value of V.
func NewVecMapZero[K comparable, V any](domain set.Set[K]) *VecMap[K, V] {
	return NewVecMap(domain, make([]V, set.Len(domain)))
}

// Domain implements Map.Domain.
func (m *VecMap[K, V]) Domain() set.Set[K] {
	return m.domain
}

// Len returns the number of entries in the map.
func (m *VecMap[K, V]) Len() int {
	return len(m.image)
}

// Get implements Getter.
func (m *VecMap[K, V]) Get(k K) (V, bool) {
	if p := m.Ptr(k); p != nil {
		return *p, true
	}
	return *new(V), false
}

// GetIndex implements Map.GetIndex.
func (m *VecMap[K, V]) GetIndex(n int) (V, bool) {
	if p := m.PtrIndex(n); p != nil {
		return *p, true
	}
	return *new(V), false
}

// At returns the value for k. It panics if k is not
// in the domain.
func (m *VecMap[K, V]) At(k K) V {
	p := m.Ptr(k)
	if p == nil {
		panic(fmt.Sprintf("setmap: key %v not in domain", k))
	}
	return *p
}

// Ptr returns a pointer to the value for k, or nil if k is not
// in the domain. The pointer remains valid for the life of the map.
func (m *VecMap[K, V]) Ptr(k K) *V {
	n, ok := set.IndexOf(m.domain, k)
	if !ok {
		return nil
	}
	return m.PtrIndex(n)
}

// PtrIndex returns a pointer to the n'th value, or nil if n
// is out of range.
func (m *VecMap[K, V]) PtrIndex(n int) *V {
	if n < 0 || n >= len(m.image) {
		return nil
	}
	return &m.image[n]
}

// Set sets the value for k to v. It reports false, leaving the
// map unchanged, if k is not in the domain.
func (m *VecMap[K, V]) Set(k K, v V) bool {
	p := m.Ptr(k)
	if p == nil {
		return false
	}
	*p = v
	return true
}

// SetIndex sets the n'th value to v. It reports false if n
// is out of range.
func (m *VecMap[K, V]) SetIndex(n int, v V) bool {
	p := m.PtrIndex(n)
	if p == nil {
		return false
	}
	*p = v
	return true
}

// Fill sets every value in the map to v.
func (m *VecMap[K, V]) Fill(v V) {
	for i := range m.image {
		m.image[i] = v
	}
}

// Values returns the values of the map in domain order.
// The caller should not append to the returned slice;
// writes to its elements change the map.
func (m *VecMap[K, V]) Values() []V {
	return m.image
}
