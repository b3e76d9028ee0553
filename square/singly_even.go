// SPDX-License-Identifier: MIT

package square

// GenerateSinglyEven builds a magic square for n ≡ 2 (mod 4), n ≥ 6, with
// the Strachey method.
//
// Algorithm:
//  1. q = n/2 is odd; build the Siamese square S of order q directly (no
//     re-dispatch through Generate).
//  2. Lay out four offset copies of S, one per quadrant, so that the four
//     value ranges partition 1..n²:
//
//     ┌──────────┬──────────┐
//     │ S        │ S + 2q²  │
//     ├──────────┼──────────┤
//     │ S + 3q²  │ S + q²   │
//     └──────────┴──────────┘
//
//  3. Correct with k = (q-1)/2, exchanging cells (i, j) ↔ (i+q, j) for every
//     i < q over:
//     - the leftmost k columns, except on the middle row i = k where the
//     window shifts right by one to columns 1..k;
//     - the rightmost k-1 columns, n-k+1..n-1.
//
// Column sums are already M(n) after step 2 and column-wise exchanges keep
// them there; the exchanges fix the rows. The middle-row shift is what puts
// both diagonals at M(n): without it rows and columns still come out right
// and only the diagonals are off.
//
// For n = 6 the result is
//
//	35  1  6 26 19 24
//	 3 32  7 21 23 25
//	31  9  2 22 27 20
//	 8 28 33 17 10 15
//	30  5 34 12 14 16
//	 4 36 29 13 18 11
//
// Errors:
//   - ErrInvalidSize when n mod 4 != 2 or n == 2.
//
// Complexity:
//   - Time O(n²), Space O(n²) plus O(q²) for the transient odd square.
func GenerateSinglyEven(n int) (*Square, error) {
	if err := validateSinglyEven(MethodSinglyEven, n); err != nil {
		return nil, err
	}

	q := n / 2
	sub := siamese(q)
	sq := newSquare(n)
	assembleQuadrants(sq, sub)
	stracheyExchange(sq, q)

	return sq, nil
}

// quadrantOffsets holds the multiple of q² added to each quadrant, indexed
// [top/bottom][left/right].
var quadrantOffsets = [2][2]int{
	{0, 2},
	{3, 1},
}

// assembleQuadrants writes the four offset copies of sub into sq.
// sq must have order 2*sub.Order().
func assembleQuadrants(sq, sub *Square) {
	q := sub.n
	area := q * q
	for qi := 0; qi < 2; qi++ {
		for qj := 0; qj < 2; qj++ {
			offset := quadrantOffsets[qi][qj] * area
			for i := 0; i < q; i++ {
				for j := 0; j < q; j++ {
					sq.set(qi*q+i, qj*q+j, sub.at(i, j)+offset)
				}
			}
		}
	}
}

// stracheyExchange applies the column-exchange correction to an assembled
// square of order 2q.
func stracheyExchange(sq *Square, q int) {
	n := 2 * q
	k := (q - 1) / 2
	for i := 0; i < q; i++ {
		lo := 0
		if i == k {
			lo = 1 // middle row: skip column 0, take column k instead
		}
		for j := lo; j < lo+k; j++ {
			sq.swap(i, j, i+q, j)
		}
		for j := n - k + 1; j < n; j++ {
			sq.swap(i, j, i+q, j)
		}
	}
}
