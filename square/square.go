// SPDX-License-Identifier: MIT

// Package square - Square storage (row-major) & safe accessors.
//
// Purpose:
//   - Hold an N×N grid of ints in one flat buffer with offset i*N + j.
//   - Keep the public surface read-only: At, Rows and Clone never expose the
//     backing buffer, so a returned square cannot be changed behind the
//     engine's back.
//   - Give generators cheap unchecked writes (set, swap) on a buffer they own.
//
// Complexity quicksheet:
//   - newSquare: O(N²) zero-init; At/set/swap: O(1); Rows/Clone: O(N²); line sums: O(N).

package square

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Square is an N×N magic square.
//   - n is the order.
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
type Square struct {
	n    int   // order (>= MinOrder)
	data []int // contiguous row-major storage (len == n*n)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Square)(nil)

// newSquare allocates a zero-filled n×n square.
// Callers validate n before calling; zero cells mean "not yet placed".
// Complexity: Time O(n²), Space O(n²).
func newSquare(n int) *Square {
	return &Square{n: n, data: make([]int, n*n)}
}

// Order returns N. Complexity: O(1).
func (s *Square) Order() int { return s.n }

// Size returns the number of cells, N². Complexity: O(1).
func (s *Square) Size() int { return len(s.data) }

// indexOf bounds-checks (row, col) and returns the flat offset.
// Returns ErrOutOfRange wrapped with coordinates when the index is invalid.
// Complexity: O(1).
func (s *Square) indexOf(row, col int) (int, error) {
	if row < 0 || row >= s.n || col < 0 || col >= s.n {
		return 0, squareErrorf(MethodAt, ErrOutOfRange, "(%d,%d) outside %dx%d", row, col, s.n, s.n)
	}

	return row*s.n + col, nil
}

// At returns the value at (row, col).
// Errors: ErrOutOfRange for indices outside [0, N).
// Complexity: O(1).
func (s *Square) At(row, col int) (int, error) {
	idx, err := s.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return s.data[idx], nil
}

// at is the unchecked read used on hot paths inside the package.
func (s *Square) at(row, col int) int { return s.data[row*s.n+col] }

// set is the unchecked write used by generators on their own buffer.
func (s *Square) set(row, col, v int) { s.data[row*s.n+col] = v }

// swap exchanges two cells. Generators own their buffer for the whole call,
// so the exchange needs no synchronisation.
func (s *Square) swap(r1, c1, r2, c2 int) {
	a, b := r1*s.n+c1, r2*s.n+c2
	s.data[a], s.data[b] = s.data[b], s.data[a]
}

// Rows returns a deep copy of the grid as a slice of rows.
// Complexity: O(N²) time and memory.
func (s *Square) Rows() [][]int {
	out := make([][]int, s.n)
	for i := 0; i < s.n; i++ {
		row := make([]int, s.n)
		copy(row, s.data[i*s.n:(i+1)*s.n]) // one row-sized copy per row
		out[i] = row
	}

	return out
}

// Clone returns a deep copy that shares no storage with s.
// Complexity: O(N²).
func (s *Square) Clone() *Square {
	buf := make([]int, len(s.data))
	copy(buf, s.data)

	return &Square{n: s.n, data: buf}
}

// RowSum returns the sum of row i, or 0 when i is out of range.
// Complexity: O(N).
func (s *Square) RowSum(i int) int {
	if i < 0 || i >= s.n {
		return 0
	}
	sum := 0
	for j := 0; j < s.n; j++ {
		sum += s.at(i, j)
	}

	return sum
}

// ColSum returns the sum of column j, or 0 when j is out of range.
// Complexity: O(N).
func (s *Square) ColSum(j int) int {
	if j < 0 || j >= s.n {
		return 0
	}
	sum := 0
	for i := 0; i < s.n; i++ {
		sum += s.at(i, j)
	}

	return sum
}

// Diagonals returns the sums of the main (top-left to bottom-right) and
// anti (top-right to bottom-left) diagonals.
// Complexity: O(N).
func (s *Square) Diagonals() (main, anti int) {
	for i := 0; i < s.n; i++ {
		main += s.at(i, i)
		anti += s.at(i, s.n-1-i)
	}

	return main, anti
}

// String renders one bracketed row per line, e.g. "[8, 1, 6]\n".
// Complexity: O(N²).
func (s *Square) String() string {
	var sb strings.Builder
	for i := 0; i < s.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < s.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%d", s.at(i, j))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
