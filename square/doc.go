// SPDX-License-Identifier: MIT

// Package square constructs N×N magic squares for every order that admits one.
//
// 🚀 What is a magic square?
//
//	An N×N grid holding each of 1..N² exactly once, where every row, every
//	column and both main diagonals add up to the same magic constant
//	M(N) = N·(N²+1)/2.
//
// ✨ Construction methods (selected by the size class of N):
//
//   - Odd (N odd):                 Siamese method, cyclic up-right placement.
//   - DoublyEven (N mod 4 == 0):   complement pattern over 4×4 blocks.
//   - SinglyEven (N mod 4 == 2):   Strachey method, four offset copies of the
//     odd square of order N/2 followed by a column-exchange correction.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/magicsquare/square"
//
//	sq, err := square.Generate(6)
//	if errors.Is(err, square.ErrInvalidSize) {
//	  // N < 1 or N == 2
//	}
//	fmt.Print(sq)
//	fmt.Println(square.MagicConstant(6)) // 111
//
// Guarantees:
//
//   - Deterministic: the same N always yields the same square.
//   - No shared state: every call allocates and owns its own buffer, so
//     concurrent calls need no coordination.
//   - No partial results: validation happens before any allocation.
//   - A returned *Square is never mutated again by this package.
//
// Boundaries:
//
//   - N = 1 yields [[1]].
//   - N = 2 is rejected with ErrInvalidSize: no 2×2 magic square exists.
//
// Complexity: O(N²) time and memory for every method.
package square
