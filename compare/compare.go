// Package compare provides comparison functions to order the payloads held by
// the containers of this module.
package compare

import "golang.org/x/exp/constraints"

// Function is a comparison function for ordered types.
func Function[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Pointers compares the values that a and b point to. It is the comparison
// function typically passed to the containers, which hold pointers to values
// owned by the program.
//
// Both pointers must be non-nil.
func Pointers[T constraints.Ordered](a, b *T) int {
	return Function(*a, *b)
}

// Reverse returns a comparison function ordering values in the opposite order
// of cmp.
func Reverse[T any](cmp func(T, T) int) func(T, T) int {
	return func(a, b T) int { return cmp(b, a) }
}
