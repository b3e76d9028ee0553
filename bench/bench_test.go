package bench

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magicsquare/internal/logging"
	"github.com/katalvlaran/magicsquare/square"
)

// fakeClock advances by step on every call.
func fakeClock(t *testing.T, step time.Duration) {
	t.Helper()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	prev := clock
	clock = func() time.Time {
		now = now.Add(step)
		return now
	}
	t.Cleanup(func() { clock = prev })
}

// TestRun_Timings verifies per-order aggregation with a deterministic clock:
// each Generate call spans exactly one clock step.
func TestRun_Timings(t *testing.T) {
	fakeClock(t, time.Millisecond)

	rep, err := Run(context.Background(), Config{Sizes: []int{3, 4, 6}, Repeats: 5}, logging.Discard())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, rep.RunID)
	require.Len(t, rep.Results, 3)

	classes := []square.SizeClass{square.Odd, square.DoublyEven, square.SinglyEven}
	for i, res := range rep.Results {
		assert.Equal(t, classes[i], res.Class)
		assert.Equal(t, 5, res.Repeats)
		assert.Equal(t, 5*time.Millisecond, res.Total)
		assert.Equal(t, time.Millisecond, res.Min)
		assert.Equal(t, time.Millisecond, res.Max)
		assert.Equal(t, time.Millisecond, res.Mean())
	}
	assert.Positive(t, rep.Elapsed)
}

// TestRun_InvalidConfig covers the up-front checks.
func TestRun_InvalidConfig(t *testing.T) {
	_, err := Run(context.Background(), Config{Repeats: 1}, nil)
	assert.ErrorIs(t, err, ErrNoSizes)

	_, err = Run(context.Background(), Config{Sizes: []int{3}, Repeats: 0}, nil)
	assert.ErrorIs(t, err, ErrBadRepeats)
}

// TestRun_InvalidOrder verifies engine errors surface unchanged in kind.
func TestRun_InvalidOrder(t *testing.T) {
	for _, n := range []int{0, 2} {
		rep, err := Run(context.Background(), Config{Sizes: []int{3, n}, Repeats: 1}, nil)
		assert.ErrorIs(t, err, square.ErrInvalidSize, "order %d", n)
		assert.Nil(t, rep)
	}
}

// TestRun_Canceled verifies the context is honoured between calls.
func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Config{Sizes: []int{3}, Repeats: 3}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestReport_WriteTable checks the header and one line per order.
func TestReport_WriteTable(t *testing.T) {
	fakeClock(t, time.Microsecond)
	rep, err := Run(context.Background(), Config{Sizes: []int{5, 8}, Repeats: 2}, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteTable(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "run "+rep.RunID.String(), lines[0])
	assert.Contains(t, lines[1], "order")
	assert.Contains(t, lines[2], "odd")
	assert.Contains(t, lines[3], "doubly_even")
	assert.True(t, strings.HasPrefix(lines[4], "total "))
}

// TestReport_Sample renders the largest order.
func TestReport_Sample(t *testing.T) {
	rep := &Report{Results: []Result{{Order: 3}, {Order: 1}}}
	n, ok := rep.Largest()
	require.True(t, ok)
	assert.Equal(t, 3, n)

	var buf bytes.Buffer
	require.NoError(t, rep.Sample(&buf))
	assert.Contains(t, buf.String(), "Magic Constant: 15")

	assert.ErrorIs(t, (&Report{}).Sample(&buf), ErrNoSizes)
}

func BenchmarkRun(b *testing.B) {
	cfg := Config{Sizes: []int{9, 12, 14}, Repeats: 1}
	for i := 0; i < b.N; i++ {
		if _, err := Run(context.Background(), cfg, nil); err != nil {
			b.Fatal(err)
		}
	}
}
