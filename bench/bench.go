// SPDX-License-Identifier: MIT

package bench

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/magicsquare/render"
	"github.com/katalvlaran/magicsquare/square"
)

// ErrBadRepeats indicates Config.Repeats < 1.
var ErrBadRepeats = errors.New("bench: repeats must be ≥ 1")

// ErrNoSizes indicates Config.Sizes is empty.
var ErrNoSizes = errors.New("bench: no sizes given")

// Config selects what to time.
type Config struct {
	Sizes   []int // orders to generate, in run order
	Repeats int   // calls per order
}

// Result holds the timings for one order.
type Result struct {
	Order   int
	Class   square.SizeClass
	Repeats int
	Total   time.Duration
	Min     time.Duration
	Max     time.Duration
}

// Mean returns Total / Repeats.
func (r Result) Mean() time.Duration {
	if r.Repeats == 0 {
		return 0
	}

	return r.Total / time.Duration(r.Repeats)
}

// Report is the outcome of one Run.
type Report struct {
	RunID   uuid.UUID
	Started time.Time
	Elapsed time.Duration
	Results []Result
}

// clock is swapped in tests.
var clock = time.Now

// Run times cfg.Repeats calls of square.Generate for every order in
// cfg.Sizes, in order.
//
// Errors:
//   - ErrNoSizes, ErrBadRepeats before anything runs.
//   - square.ErrInvalidSize (wrapped) for the first invalid order; results
//     for earlier orders are discarded.
//   - ctx.Err() when the context ends between calls.
func Run(ctx context.Context, cfg Config, log logrus.FieldLogger) (*Report, error) {
	if len(cfg.Sizes) == 0 {
		return nil, ErrNoSizes
	}
	if cfg.Repeats < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrBadRepeats, cfg.Repeats)
	}

	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	rep := &Report{RunID: uuid.New(), Started: clock()}
	log = log.WithField("run_id", rep.RunID.String())
	log.WithField("sizes", len(cfg.Sizes)).Info("benchmark started")

	for _, n := range cfg.Sizes {
		res, err := runOrder(ctx, n, cfg.Repeats)
		if err != nil {
			log.WithError(err).WithField("order", n).Error("benchmark aborted")
			return nil, err
		}
		log.WithFields(logrus.Fields{
			"order":   n,
			"class":   res.Class.String(),
			"repeats": res.Repeats,
			"mean":    res.Mean(),
		}).Debug("order timed")
		rep.Results = append(rep.Results, res)
	}
	rep.Elapsed = clock().Sub(rep.Started)
	log.WithField("elapsed", rep.Elapsed).Info("benchmark finished")

	return rep, nil
}

// runOrder times repeats generations of order n.
func runOrder(ctx context.Context, n, repeats int) (Result, error) {
	class, err := square.ClassOf(n)
	if err != nil {
		return Result{}, fmt.Errorf("order %d: %w", n, err)
	}
	res := Result{Order: n, Class: class, Repeats: repeats}
	for i := 0; i < repeats; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		start := clock()
		if _, err := square.Generate(n); err != nil {
			return Result{}, fmt.Errorf("order %d: %w", n, err)
		}
		d := clock().Sub(start)
		res.Total += d
		if i == 0 || d < res.Min {
			res.Min = d
		}
		if d > res.Max {
			res.Max = d
		}
	}

	return res, nil
}

// WriteTable prints one fixed-width line per order plus a header.
func (r *Report) WriteTable(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "run %s\n", r.RunID)
	fmt.Fprintf(bw, "%6s  %-12s  %8s  %12s  %12s  %12s\n", "order", "class", "repeats", "min", "mean", "max")
	for _, res := range r.Results {
		fmt.Fprintf(bw, "%6d  %-12s  %8d  %12s  %12s  %12s\n",
			res.Order, res.Class, res.Repeats, res.Min, res.Mean(), res.Max)
	}
	fmt.Fprintf(bw, "total %s\n", r.Elapsed)

	return bw.Flush()
}

// Largest returns the biggest order timed, for callers that want to show
// a sample; ok is false when the report is empty.
func (r *Report) Largest() (n int, ok bool) {
	for _, res := range r.Results {
		if res.Order > n {
			n, ok = res.Order, true
		}
	}

	return n, ok
}

// Sample generates and renders the largest timed order as text, so a
// benchmark run also shows what was produced.
func (r *Report) Sample(w io.Writer) error {
	n, ok := r.Largest()
	if !ok {
		return ErrNoSizes
	}
	sq, err := square.Generate(n)
	if err != nil {
		return err
	}

	return render.Encode(w, sq, render.FormatText)
}
