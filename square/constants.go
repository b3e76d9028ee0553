// SPDX-License-Identifier: MIT

// Package square defines shared constants used by the generators, keeping
// minimum orders and error context tags in one place.
package square

import "math/bits"

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodGenerate is the canonical name for the Generate dispatcher.
	MethodGenerate = "Generate"
	// MethodOdd is the canonical name for the GenerateOdd generator.
	MethodOdd = "GenerateOdd"
	// MethodDoublyEven is the canonical name for the GenerateDoublyEven generator.
	MethodDoublyEven = "GenerateDoublyEven"
	// MethodSinglyEven is the canonical name for the GenerateSinglyEven generator.
	MethodSinglyEven = "GenerateSinglyEven"
	// MethodAt is the canonical name for the Square.At accessor.
	MethodAt = "At"
)

//-----------------------------------------------------------------------------
// Order Bounds
//-----------------------------------------------------------------------------

// MinOrder is the smallest order accepted by any generator.
// The 1×1 square [[1]] is trivially magic.
const MinOrder = 1

// MinSinglyEvenOrder is the smallest singly-even order with a magic square.
// Order 2 would recurse into the odd square of order 1 and leave the
// correction step with no columns to exchange; no 2×2 magic square exists.
const MinSinglyEvenOrder = 6

// MaxOrder is the largest order accepted by any generator: the largest power
// of two minus one whose n·(n²+1) still fits in an int (2097151 on 64-bit,
// 1023 on 32-bit). Above it N² overflows and the buffer length would wrap.
const MaxOrder = 1<<(bits.UintSize/3) - 1

// blockSize is the period of the doubly-even keep-mask.
const blockSize = 4
