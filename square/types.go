// SPDX-License-Identifier: MIT

// Package square defines the size classes that select a construction method.
package square

// SizeClass is the structural class of an order N. It is derived from N and
// never stored alongside a square.
type SizeClass int

const (
	// Odd covers N odd, N ≥ 1 (Siamese method).
	Odd SizeClass = iota
	// DoublyEven covers N divisible by 4 (complement pattern).
	DoublyEven
	// SinglyEven covers N even with N mod 4 == 2 (Strachey method).
	SinglyEven
)

// String returns the snake_case name of the class.
func (c SizeClass) String() string {
	switch c {
	case Odd:
		return "odd"
	case DoublyEven:
		return "doubly_even"
	case SinglyEven:
		return "singly_even"
	default:
		return "unknown"
	}
}

// ClassOf returns the size class of n.
// Returns ErrInvalidSize when n is outside [MinOrder, MaxOrder]. ClassOf does not reject n == 2:
// it is singly-even by definition, it just has no magic square.
// Complexity: O(1).
func ClassOf(n int) (SizeClass, error) {
	if err := validateRange("ClassOf", n, MinOrder); err != nil {
		return 0, err
	}
	switch {
	case n%2 == 1:
		return Odd, nil
	case n%4 == 0:
		return DoublyEven, nil
	default:
		return SinglyEven, nil
	}
}
