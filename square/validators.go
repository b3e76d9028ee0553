// SPDX-License-Identifier: MIT

// Package square provides validation helpers that enforce each generator's
// precondition before anything is allocated.
//
// Each function returns ErrInvalidSize wrapped via squareErrorf when its
// precondition is violated.
package square

// validateRange ensures min ≤ n ≤ MaxOrder.
// Complexity: O(1).
func validateRange(method string, n, min int) error {
	if n < min {
		return squareErrorf(method, ErrInvalidSize, "order must be ≥ %d, got %d", min, n)
	}
	if n > MaxOrder {
		return squareErrorf(method, ErrInvalidSize, "order must be ≤ %d, got %d", MaxOrder, n)
	}

	return nil
}

// validateOdd ensures MinOrder ≤ n ≤ MaxOrder and n is odd.
// Complexity: O(1).
func validateOdd(method string, n int) error {
	if err := validateRange(method, n, MinOrder); err != nil {
		return err
	}
	if n%2 == 0 {
		return squareErrorf(method, ErrInvalidSize, "order must be odd, got %d", n)
	}

	return nil
}

// validateDoublyEven ensures blockSize ≤ n ≤ MaxOrder and n mod 4 == 0.
// Complexity: O(1).
func validateDoublyEven(method string, n int) error {
	if err := validateRange(method, n, blockSize); err != nil {
		return err
	}
	if n%blockSize != 0 {
		return squareErrorf(method, ErrInvalidSize, "order must be divisible by 4, got %d", n)
	}

	return nil
}

// validateSinglyEven ensures MinSinglyEvenOrder ≤ n ≤ MaxOrder and n mod 4 == 2.
// Order 2 is checked for class first so the message names the real reason.
// Complexity: O(1).
func validateSinglyEven(method string, n int) error {
	if n > MaxOrder {
		return validateRange(method, n, MinOrder)
	}
	if n < MinOrder || n%4 != 2 {
		return squareErrorf(method, ErrInvalidSize, "order must be ≡ 2 (mod 4), got %d", n)
	}
	if n < MinSinglyEvenOrder {
		return squareErrorf(method, ErrInvalidSize, "no magic square of order %d exists", n)
	}

	return nil
}
