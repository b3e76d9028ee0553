// SPDX-License-Identifier: MIT
// Package: magicsquare/square
//
// errors.go: sentinel errors for the square package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Generators wrap sentinels with method context via squareErrorf (%w).
//   • No panics on user input.

package square

import (
	"errors"
	"fmt"
)

// ErrInvalidSize indicates that the requested order has no magic square under
// the requested generator: N < 1 for every generator, N == 2, or an order of
// the wrong size class passed to a class-specific generator (e.g. an even N
// to GenerateOdd).
var ErrInvalidSize = errors.New("square: invalid size")

// ErrOutOfRange indicates that a row or column index is outside [0, N).
// At returns it instead of panicking.
var ErrOutOfRange = errors.New("square: index out of range")

// squareErrorf wraps err with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <err>".
func squareErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
