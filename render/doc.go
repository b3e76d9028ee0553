// SPDX-License-Identifier: MIT

// Package render turns a generated *square.Square into something a person or
// another program can read.
//
// What:
//
//   - Text:    fixed-width columns, one row per line.
//   - Heatmap: terminal heatmap (256-colour ANSI backgrounds) with each
//     value overlaid on its cell; the overlay is dropped above
//     HeatmapOptions.OverlayLimit so large squares stay readable.
//   - Encode:  a Document (order, class, magic constant, rows) as text,
//     JSON, YAML or CBOR.
//
// Errors:
//
//   - ErrNilSquare:     a nil square was passed in.
//   - ErrUnknownFormat: ParseFormat/Encode got a format name it does not know.
//
// Renderers only read the square; they never change it.
package render
