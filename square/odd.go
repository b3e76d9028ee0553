// SPDX-License-Identifier: MIT

package square

// GenerateOdd builds an odd-order magic square with the Siamese method.
// It is also the odd-only entry point: even orders fail instead of being
// dispatched elsewhere.
//
// Algorithm:
//  1. Cursor starts at (0, n/2).
//  2. For v = 1..n²: place v at the cursor, then look at the cell one row up
//     and one column right, both wrapping modulo n.
//  3. If that cell is taken, move one row down from the current cell
//     (column unchanged); otherwise move to it.
//
// For n = 3 the result is
//
//	8 1 6
//	3 5 7
//	4 9 2
//
// Errors:
//   - ErrInvalidSize when n < 1 or n is even.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func GenerateOdd(n int) (*Square, error) {
	if err := validateOdd(MethodOdd, n); err != nil {
		return nil, err
	}

	return siamese(n), nil
}

// siamese fills a fresh order-n square; n must be odd and ≥ 1.
// Separated from GenerateOdd so the Strachey path can reuse it without
// re-validating an order it already knows to be odd.
func siamese(n int) *Square {
	sq := newSquare(n)
	row, col := 0, n/2
	total := n * n
	for v := 1; v <= total; v++ {
		sq.set(row, col, v)
		up, right := (row-1+n)%n, (col+1)%n // +n keeps the modulo non-negative
		if sq.at(up, right) != 0 {
			row = (row + 1) % n
		} else {
			row, col = up, right
		}
	}

	return sq
}
