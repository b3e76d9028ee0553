package square_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/magicsquare/square"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerate_AllOrders checks the invariants for every valid order up to 32,
// covering all three size classes several times over.
func TestGenerate_AllOrders(t *testing.T) {
	for n := 1; n <= 32; n++ {
		if n == 2 {
			continue
		}
		sq := mustGenerate(t, n)
		requireMagic(t, sq, n)
	}
}

// TestGenerate_InvalidSize verifies rejection of n < 1, the n = 2 boundary and
// orders whose N² would overflow int, one per size class above MaxOrder.
func TestGenerate_InvalidSize(t *testing.T) {
	cases := []struct {
		name string
		n    int
	}{
		{"Zero", 0},
		{"Negative", -3},
		{"MinInt", -1 << 31},
		{"Two", 2},
		{"AboveMaxDoublyEven", square.MaxOrder + 1},
		{"AboveMaxOdd", square.MaxOrder + 2},
		{"AboveMaxSinglyEven", square.MaxOrder + 3},
		{"MaxInt", math.MaxInt},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sq, err := square.Generate(tc.n)
			if !errors.Is(err, square.ErrInvalidSize) {
				t.Errorf("Generate(%d) error = %v; want %v", tc.n, err, square.ErrInvalidSize)
			}
			if sq != nil {
				t.Errorf("Generate(%d) returned a partial square", tc.n)
			}
		})
	}
}

// TestGenerate_One pins the trivial square.
func TestGenerate_One(t *testing.T) {
	sq := mustGenerate(t, 1)
	assert.Equal(t, [][]int{{1}}, sq.Rows())
	assert.Equal(t, 1, square.MagicConstant(1))
}

// TestGenerate_Deterministic verifies that two calls yield identical squares
// that do not share storage.
func TestGenerate_Deterministic(t *testing.T) {
	for _, n := range []int{3, 4, 6, 9, 12, 14} {
		a := mustGenerate(t, n)
		b := mustGenerate(t, n)
		require.Equal(t, a.Rows(), b.Rows(), "order %d", n)
		require.NotSame(t, a, b)
	}
}

// TestGenerate_RoutesByClass checks that Generate returns exactly what the
// class-specific generator returns.
func TestGenerate_RoutesByClass(t *testing.T) {
	cases := []struct {
		n   int
		gen func(int) (*square.Square, error)
	}{
		{5, square.GenerateOdd},
		{8, square.GenerateDoublyEven},
		{10, square.GenerateSinglyEven},
	}
	for _, tc := range cases {
		want, err := tc.gen(tc.n)
		require.NoError(t, err)
		got := mustGenerate(t, tc.n)
		assert.Equal(t, want.Rows(), got.Rows(), "order %d", tc.n)
	}
}

// TestGenerate_Concurrent runs independent generations in parallel; each call
// owns its buffer so results must match the sequential ones.
func TestGenerate_Concurrent(t *testing.T) {
	for _, n := range []int{7, 16, 18} {
		n := n
		want := mustGenerate(t, n).Rows()
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			for i := 0; i < 20; i++ {
				got := mustGenerate(t, n).Rows()
				assert.Equal(t, want, got)
			}
		})
	}
}

// TestClassOf covers the classification rule and its n < 1 rejection.
func TestClassOf(t *testing.T) {
	cases := []struct {
		n    int
		want square.SizeClass
	}{
		{1, square.Odd},
		{2, square.SinglyEven},
		{3, square.Odd},
		{4, square.DoublyEven},
		{6, square.SinglyEven},
		{8, square.DoublyEven},
		{10, square.SinglyEven},
		{15, square.Odd},
	}
	for _, tc := range cases {
		got, err := square.ClassOf(tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "ClassOf(%d)", tc.n)
	}

	_, err := square.ClassOf(0)
	assert.ErrorIs(t, err, square.ErrInvalidSize)
	_, err = square.ClassOf(square.MaxOrder + 1)
	assert.ErrorIs(t, err, square.ErrInvalidSize)
}

// TestGenerators_RejectAboveMaxOrder checks each class-specific generator
// refuses orders of its own class once N² no longer fits in an int.
func TestGenerators_RejectAboveMaxOrder(t *testing.T) {
	cases := []struct {
		name string
		n    int
		gen  func(int) (*square.Square, error)
	}{
		{"Odd", square.MaxOrder + 2, square.GenerateOdd},
		{"DoublyEven", square.MaxOrder + 1, square.GenerateDoublyEven},
		{"SinglyEven", square.MaxOrder + 3, square.GenerateSinglyEven},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sq, err := tc.gen(tc.n)
			require.ErrorIs(t, err, square.ErrInvalidSize)
			assert.Contains(t, err.Error(), fmt.Sprintf("order must be ≤ %d", square.MaxOrder))
			assert.Nil(t, sq)
		})
	}
}

// TestSizeClass_String pins the class names.
func TestSizeClass_String(t *testing.T) {
	assert.Equal(t, "odd", square.Odd.String())
	assert.Equal(t, "doubly_even", square.DoublyEven.String())
	assert.Equal(t, "singly_even", square.SinglyEven.String())
	assert.Equal(t, "unknown", square.SizeClass(42).String())
}

// TestMagicConstant checks the closed form against known values.
func TestMagicConstant(t *testing.T) {
	want := map[int]int{1: 1, 2: 5, 3: 15, 4: 34, 5: 65, 6: 111, 7: 175, 8: 260, 10: 505}
	for n, m := range want {
		assert.Equal(t, m, square.MagicConstant(n), "MagicConstant(%d)", n)
	}
}

// TestMagicConstant_MaxOrder checks the closed form is still exact at the
// largest accepted order.
func TestMagicConstant_MaxOrder(t *testing.T) {
	n := square.MaxOrder
	m := square.MagicConstant(n)
	require.Positive(t, m)
	assert.Zero(t, (2*m)%n)
	assert.Equal(t, n*n+1, 2*m/n)
}
