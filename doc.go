// SPDX-License-Identifier: MIT

// Package magicsquare builds N×N magic squares: grids holding 1..N² where
// every row, column and both main diagonals share one sum. It covers every order
// that has one.
//
// 🚀 What's inside?
//
//	square/ the construction engine: Siamese (odd), complement pattern
//	          (doubly-even), Strachey (singly-even), plus MagicConstant
//	render/ fixed-width text, terminal heatmap, JSON/YAML/CBOR documents
//	bench/  timing repeated generation per order
//	repl/   interactive prompt loop
//	cmd/magicsquare/ the CLI tying them together
//
// Quick example:
//
//	sq, _ := square.Generate(3)
//	fmt.Print(sq)
//	// [8, 1, 6]
//	// [3, 5, 7]
//	// [4, 9, 2]
//
//	go install github.com/katalvlaran/magicsquare/cmd/magicsquare@latest
package magicsquare
