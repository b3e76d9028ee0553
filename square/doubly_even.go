// SPDX-License-Identifier: MIT

package square

// GenerateDoublyEven builds a magic square for n divisible by 4 with the
// complement-pattern method.
//
// Algorithm:
//   - Number the cells 1..n² in row-major order: seq(i,j) = i*n + j + 1.
//   - A cell is kept when (i mod 4 == j mod 4) or (i mod 4 + j mod 4 == 3),
//     i.e. it lies on one of the two diagonals of its 4×4 block.
//   - Kept cells hold seq(i,j); all others hold n²+1 − seq(i,j).
//
// For n = 4 the result is
//
//	 1 15 14  4
//	12  6  7  9
//	 8 10 11  5
//	13  3  2 16
//
// Errors:
//   - ErrInvalidSize when n < 4 or n mod 4 != 0.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func GenerateDoublyEven(n int) (*Square, error) {
	if err := validateDoublyEven(MethodDoublyEven, n); err != nil {
		return nil, err
	}

	sq := newSquare(n)
	complement := n*n + 1
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			seq := i*n + j + 1
			if keep(i, j) {
				sq.set(i, j, seq)
			} else {
				sq.set(i, j, complement-seq)
			}
		}
	}

	return sq, nil
}

// keep reports whether cell (i, j) keeps its sequential value.
func keep(i, j int) bool {
	bi, bj := i%blockSize, j%blockSize

	return bi == bj || bi+bj == blockSize-1
}
