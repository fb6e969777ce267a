// Package checked provides overflow-checked arithmetic and index
// conversion for arbitrary integer types.
//
// Every type in this module that is generic over an integer type
// routes its bound checks through this package, so the rules about
// what counts as a valid index live in one place: an index is a
// non-negative int.
package checked

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Add returns a+b. It reports false if the sum overflows T.
func Add[T constraints.Integer](a, b T) (T, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

// Sub returns a-b. It reports false if the difference overflows
// or underflows T.
func Sub[T constraints.Integer](a, b T) (T, bool) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return 0, false
	}
	return d, true
}

// ToIndex converts x to an index. It reports false if x is
// negative or too large to be held in an int.
func ToIndex[T constraints.Integer](x T) (int, bool) {
	if x < 0 {
		return 0, false
	}
	i := int(x)
	if i < 0 || T(i) != x {
		return 0, false
	}
	return i, true
}

// FromIndex converts the index i to a T. It reports false if i is
// negative or cannot be represented exactly by T.
func FromIndex[T constraints.Integer](i int) (T, bool) {
	if i < 0 {
		return 0, false
	}
	x := T(i)
	if x < 0 || int(x) != i {
		return 0, false
	}
	return x, true
}

// MustIndex is like ToIndex but panics if x is not a valid index.
// The what argument names the value in the panic message.
func MustIndex[T constraints.Integer](x T, what string) int {
	i, ok := ToIndex(x)
	if !ok {
		panic(fmt.Sprintf("%s: %v cannot be represented as an index", what, x))
	}
	return i
}
