package square_test

import (
	"testing"

	"github.com/katalvlaran/magicsquare/square"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateSinglyEven_Six pins the order-6 Strachey square and checks both
// diagonals explicitly: a wrong exchange window keeps rows and columns at 111
// while breaking the diagonals.
func TestGenerateSinglyEven_Six(t *testing.T) {
	sq, err := square.GenerateSinglyEven(6)
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{35, 1, 6, 26, 19, 24},
		{3, 32, 7, 21, 23, 25},
		{31, 9, 2, 22, 27, 20},
		{8, 28, 33, 17, 10, 15},
		{30, 5, 34, 12, 14, 16},
		{4, 36, 29, 13, 18, 11},
	}, sq.Rows())

	main, anti := sq.Diagonals()
	assert.Equal(t, 111, main, "main diagonal")
	assert.Equal(t, 111, anti, "anti diagonal")
	requireMagic(t, sq, 6)
}

// TestGenerateSinglyEven_Diagonals checks the diagonals for larger orders,
// where the right-hand exchange window is non-empty.
func TestGenerateSinglyEven_Diagonals(t *testing.T) {
	for n := 6; n <= 50; n += 4 {
		sq, err := square.GenerateSinglyEven(n)
		require.NoError(t, err)
		want := square.MagicConstant(n)
		main, anti := sq.Diagonals()
		assert.Equal(t, want, main, "order %d main diagonal", n)
		assert.Equal(t, want, anti, "order %d anti diagonal", n)
		requireMagic(t, sq, n)
	}
}

// TestGenerateSinglyEven_QuadrantRanges checks that, away from the exchanged
// columns, each quadrant holds its own contiguous block of q² values.
func TestGenerateSinglyEven_QuadrantRanges(t *testing.T) {
	const n, q = 10, 5
	sq, err := square.GenerateSinglyEven(n)
	require.NoError(t, err)

	// column q+k (k = 2) is never exchanged.
	col := q + 2
	area := q * q
	for i := 0; i < q; i++ {
		top, err := sq.At(i, col)
		require.NoError(t, err)
		assert.True(t, top > 2*area && top <= 3*area, "top-right cell %d", top)
		bottom, err := sq.At(i+q, col)
		require.NoError(t, err)
		assert.True(t, bottom > area && bottom <= 2*area, "bottom-right cell %d", bottom)
	}
}

// TestGenerateSinglyEven_OrderTwo pins the n = 2 decision: rejected, not degenerated.
func TestGenerateSinglyEven_OrderTwo(t *testing.T) {
	sq, err := square.GenerateSinglyEven(2)
	assert.ErrorIs(t, err, square.ErrInvalidSize)
	assert.Nil(t, sq)
	assert.Contains(t, err.Error(), "no magic square of order 2")
}

// TestGenerateSinglyEven_RejectsOtherClasses verifies the precondition.
func TestGenerateSinglyEven_RejectsOtherClasses(t *testing.T) {
	for _, n := range []int{-6, 0, 1, 3, 4, 8} {
		_, err := square.GenerateSinglyEven(n)
		assert.ErrorIs(t, err, square.ErrInvalidSize, "GenerateSinglyEven(%d)", n)
	}
}
