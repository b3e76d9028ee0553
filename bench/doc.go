// SPDX-License-Identifier: MIT

// Package bench times repeated square.Generate calls per order and reports
// min/mean/max durations.
//
// Runs are sequential: generation is CPU-bound and single-threaded, and
// timing calls one after another keeps the numbers comparable across orders.
// The context is checked between calls; a single generation is never
// interrupted.
package bench
