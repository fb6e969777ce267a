// Package settest implements support for testing implementations
// of set.Set.
package settest

import (
	"slices"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/alglib/indexed/set"
)

// Check checks that s behaves as a set should. It compares every
// optional method that s implements against the default definition
// computed from s.Iter alone, checks that Index and IndexOf are
// inverses of each other, and checks that the iterators returned by
// s.Iter report their length correctly. Elements in outside must not
// be members of s.
//
// Failures are reported with t.Error; Check carries on after
// a failure so all discrepancies are shown.
func Check[E comparable](t testing.TB, s set.Set[E], outside ...E) {
	t.Helper()
	elems := set.Collect(s)
	n := set.DefaultLen(s)
	qt.Check(t, qt.HasLen(elems, n), qt.Commentf("iterator produced a different number of elements than its Len"))
	qt.Check(t, qt.Equals(set.Len(s), n), qt.Commentf("Len disagrees with iterator"))
	qt.Check(t, qt.Equals(set.IsEmpty(s), n == 0))

	for i := -1; i <= n+1; i++ {
		want, wantOK := set.DefaultIndex(s, i)
		got, gotOK := set.Index(s, i)
		qt.Check(t, qt.Equals(gotOK, wantOK), qt.Commentf("Index(%d)", i))
		if gotOK && wantOK {
			qt.Check(t, qt.Equals(got, want), qt.Commentf("Index(%d)", i))
		}
	}

	for i, e := range elems {
		j, ok := set.IndexOf(s, e)
		qt.Check(t, qt.IsTrue(ok), qt.Commentf("IndexOf(%v) found nothing; element %d", e, i))
		qt.Check(t, qt.Equals(j, i), qt.Commentf("IndexOf(%v)", e))
		j, ok = set.DefaultIndexOf(s, e)
		qt.Check(t, qt.IsTrue(ok))
		qt.Check(t, qt.Equals(j, i), qt.Commentf("element %v appears more than once", e))
		qt.Check(t, qt.IsTrue(set.Contains(s, e)), qt.Commentf("Contains(%v)", e))

		x, ok := set.Index(s, j)
		qt.Check(t, qt.IsTrue(ok))
		qt.Check(t, qt.Equals(x, e), qt.Commentf("Index(IndexOf(%v))", e))
	}

	for _, e := range outside {
		_, ok := set.IndexOf(s, e)
		qt.Check(t, qt.IsFalse(ok), qt.Commentf("IndexOf(%v) on non-member", e))
		qt.Check(t, qt.IsFalse(set.DefaultContains(s, e)), qt.Commentf("%v is an element of the set", e))
		qt.Check(t, qt.IsFalse(set.Contains(s, e)), qt.Commentf("Contains(%v) on non-member", e))
	}

	it := s.Iter()
	for i := range n {
		qt.Check(t, qt.Equals(it.Len(), n-i))
		x, ok := it.Next()
		qt.Check(t, qt.IsTrue(ok))
		qt.Check(t, qt.Equals(x, elems[i]), qt.Commentf("element %d", i))
	}
	qt.Check(t, qt.Equals(it.Len(), 0))
	_, ok := it.Next()
	qt.Check(t, qt.IsFalse(ok), qt.Commentf("iterator not exhausted after Len elements"))

	for i := range n + 1 {
		want, wantOK := s.Iter().Nth(i)
		qt.Check(t, qt.Equals(wantOK, i < n), qt.Commentf("Nth(%d)", i))
		if i < n {
			qt.Check(t, qt.Equals(want, elems[i]), qt.Commentf("Nth(%d)", i))
		}
	}

	if _, ok := s.Iter().(set.DoubleEndedIterator[E]); !ok {
		return
	}
	back := s.Iter().(set.DoubleEndedIterator[E])
	var rev []E
	for {
		x, ok := back.NextBack()
		if !ok {
			break
		}
		rev = append(rev, x)
	}
	slices.Reverse(rev)
	if n == 0 {
		qt.Check(t, qt.HasLen(rev, 0))
		return
	}
	qt.Check(t, qt.DeepEquals(rev, elems), qt.Commentf("backward iteration"))
}
