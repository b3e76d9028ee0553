// Package square_test contains test helpers.
//
// Purpose:
//   • Check the magic-square invariants on any generated square.
//   • Keep fixtures small and literal so failures read at a glance.

package square_test

import (
	"testing"

	"github.com/katalvlaran/magicsquare/square"
	"github.com/stretchr/testify/require"
)

// requireMagic FAILS the test unless sq is an order-n magic square:
// every row, column and both diagonals sum to MagicConstant(n) and the cells
// hold each of 1..n² exactly once.
func requireMagic(tb testing.TB, sq *square.Square, n int) {
	tb.Helper()
	require.NotNil(tb, sq)
	require.Equal(tb, n, sq.Order(), "order")

	want := square.MagicConstant(n)
	for i := 0; i < n; i++ {
		require.Equalf(tb, want, sq.RowSum(i), "row %d sum", i)
		require.Equalf(tb, want, sq.ColSum(i), "column %d sum", i)
	}
	main, anti := sq.Diagonals()
	require.Equal(tb, want, main, "main diagonal sum")
	require.Equal(tb, want, anti, "anti diagonal sum")

	seen := make([]bool, n*n+1)
	for i, row := range sq.Rows() {
		for j, v := range row {
			require.Truef(tb, v >= 1 && v <= n*n, "cell (%d,%d)=%d outside 1..%d", i, j, v, n*n)
			require.Falsef(tb, seen[v], "value %d repeated at (%d,%d)", v, i, j)
			seen[v] = true
		}
	}
}

// mustGenerate runs square.Generate or fails the test.
func mustGenerate(tb testing.TB, n int) *square.Square {
	tb.Helper()
	sq, err := square.Generate(n)
	require.NoErrorf(tb, err, "Generate(%d)", n)

	return sq
}
