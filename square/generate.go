// SPDX-License-Identifier: MIT

package square

// Generate builds the magic square of order n.
//
// Implementation:
//   - Stage 1: check MinOrder ≤ n ≤ MaxOrder, then classify n.
//   - Stage 2: route to exactly one generator, which validates its own
//     class-specific precondition (order 2 fails here).
//   - Stage 3: return the generator's square unmodified.
//
// Errors:
//   - ErrInvalidSize for n < 1, n == 2 and n > MaxOrder.
//
// Determinism:
//   - Pure function of n; no state survives between calls.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Generate(n int) (*Square, error) {
	if err := validateRange(MethodGenerate, n, MinOrder); err != nil {
		return nil, err
	}

	class, _ := ClassOf(n)
	switch class {
	case Odd:
		return GenerateOdd(n)
	case DoublyEven:
		return GenerateDoublyEven(n)
	default:
		return GenerateSinglyEven(n)
	}
}

// MagicConstant returns n·(n²+1)/2, the common line sum of an order-n magic
// square. The product n·(n²+1) is always even, so the division is exact.
// Exact for 0 ≤ n ≤ MaxOrder; above that the product overflows int and the
// result is meaningless, the same bound Generate enforces.
// Complexity: O(1).
func MagicConstant(n int) int {
	return n * (n*n + 1) / 2
}
