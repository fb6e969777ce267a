package set_test

import (
	"slices"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/alglib/indexed/set"
	"github.com/alglib/indexed/settest"
)

type cell struct {
	i, j int
}

// gridSet returns the 9x9 grid of cells in row-major order.
func gridSet() *set.FnSet[cell] {
	return set.NewFnSet(
		func(n int) (cell, bool) {
			if n < 0 || n >= 81 {
				return cell{}, false
			}
			return cell{n / 9, n % 9}, true
		},
		func(c cell) (int, bool) {
			if c.i < 0 || c.i >= 9 || c.j < 0 || c.j >= 9 {
				return 0, false
			}
			return c.i*9 + c.j, true
		},
	)
}

func TestFnSetUnit(t *testing.T) {
	s := set.NewFnSet(
		func(i int) (struct{}, bool) {
			return struct{}{}, i == 0
		},
		func(struct{}) (int, bool) {
			return 0, true
		},
	)
	qt.Assert(t, qt.Equals(s.Len(), 1))
	i, ok := s.IndexOf(struct{}{})
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(i, 0))
	qt.Assert(t, qt.DeepEquals(set.Collect[struct{}](s), []struct{}{{}}))
	settest.Check[struct{}](t, s)
}

func TestFnSetStrings(t *testing.T) {
	domain := []string{"zero", "one", "two", "three"}
	s := set.NewFnSet(
		func(i int) (string, bool) {
			if i < 0 || i >= len(domain) {
				return "", false
			}
			return domain[i], true
		},
		func(x string) (int, bool) {
			i := slices.Index(domain, x)
			return i, i >= 0
		},
	)
	qt.Assert(t, qt.Equals(s.Len(), 4))
	i, ok := s.IndexOf("two")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(i, 2))
	_, ok = s.IndexOf("four")
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.DeepEquals(set.Collect[string](s), domain))
	settest.Check[string](t, s, "four", "")
}

func TestFnSetGrid(t *testing.T) {
	s := gridSet()
	qt.Assert(t, qt.Equals(s.Len(), 81))
	settest.Check[cell](t, s, cell{-1, 0}, cell{9, 0}, cell{0, 9})

	// Inverse law, both ways.
	for i := range s.Len() {
		c, ok := s.Forward()(i)
		qt.Assert(t, qt.IsTrue(ok))
		j, ok := s.Reverse()(c)
		qt.Assert(t, qt.IsTrue(ok))
		qt.Assert(t, qt.Equals(j, i))
	}
	for a := -2; a < 11; a++ {
		for b := -2; b < 11; b++ {
			i, ok := s.Reverse()(cell{a, b})
			if !ok {
				continue
			}
			c, ok := s.Forward()(i)
			qt.Assert(t, qt.IsTrue(ok))
			qt.Assert(t, qt.Equals(c, cell{a, b}))
		}
	}
}

func TestFnSetLen(t *testing.T) {
	forward := func(i int) (int, bool) {
		return i * i, i >= 0 && i < 5
	}
	reverse := func(x int) (int, bool) {
		for i := range 5 {
			if i*i == x {
				return i, true
			}
		}
		return 0, false
	}
	s := set.NewFnSetLen(5, forward, reverse)
	qt.Assert(t, qt.DeepEquals(set.Collect[int](s), []int{0, 1, 4, 9, 16}))
	settest.Check[int](t, s, 2, 3, 25)

	qt.Assert(t, qt.PanicMatches(func() {
		set.NewFnSetLen(4, forward, reverse)
	}, `set.NewFnSetLen: forward\(4\) yields an element, but 4 is the declared length`))
	qt.Assert(t, qt.PanicMatches(func() {
		set.NewFnSetLen(-1, forward, reverse)
	}, `set.NewFnSetLen: negative length -1`))
}

func TestFnSetIterPanicsOnShortForward(t *testing.T) {
	// forward has a hole at index 2, which NewFnSetLen cannot see.
	s := set.NewFnSetLen(4,
		func(i int) (int, bool) {
			return i, i >= 0 && i < 4 && i != 2
		},
		func(x int) (int, bool) {
			return x, x >= 0 && x < 4 && x != 2
		},
	)
	it := s.Iter()
	it.Next()
	it.Next()
	qt.Assert(t, qt.PanicMatches(func() {
		it.Next()
	}, `set: iterator has length 4 but no element is defined at index 2`))
}
