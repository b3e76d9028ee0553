// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/magicsquare/square"
)

// DefaultOverlayLimit is the largest order whose heatmap still prints values.
const DefaultOverlayLimit = 20

// HeatmapOptions configures Heatmap.
//
// Fields:
//   - OverlayLimit: largest order that gets numbers printed on its cells.
//     Zero selects DefaultOverlayLimit; negative disables the overlay.
//   - Color: true for 256-colour ANSI backgrounds; false prints a
//     shade-glyph ramp that survives plain terminals and log files. With
//     the overlay on, a glyph cell is its shade followed by the
//     right-aligned value.
type HeatmapOptions struct {
	OverlayLimit int
	Color        bool
}

// DefaultHeatmapOptions returns OverlayLimit=DefaultOverlayLimit, Color=true.
func DefaultHeatmapOptions() HeatmapOptions {
	return HeatmapOptions{
		OverlayLimit: DefaultOverlayLimit,
		Color:        true,
	}
}

// viridis approximates the viridis colour map with xterm-256 indices,
// dark purple through teal to yellow.
var viridis = []int{53, 54, 55, 61, 25, 31, 30, 37, 36, 35, 71, 77, 113, 149, 185, 226}

// darkText is the index in viridis from which overlay text switches to black.
const darkText = 12

// shades is the glyph ramp used when Color is false.
var shades = []rune{'·', '░', '▒', '▓', '█'}

const (
	_ansiReset = "\x1b[0m"
	_ansiBgFmt = "\x1b[48;5;%dm"
	_ansiFgFmt = "\x1b[38;5;%dm"
	_ansiWhite = 15
	_ansiBlack = 16
)

// rampIndex maps v in [1, hi] onto [0, steps).
func rampIndex(v, hi, steps int) int {
	if hi <= 1 {
		return steps - 1
	}
	idx := (v - 1) * steps / hi

	if idx >= steps {
		return steps - 1
	}

	return idx
}

// Heatmap writes a title line, the colour grid, and a one-line legend
// spanning 1..N².
//
// Implementation:
//   - Stage 1: resolve the overlay decision from opts and N.
//   - Stage 2: per cell, pick the ramp step for value/N² and print a
//     CellWidth-wide block, with the value on top when overlaying.
//   - Stage 3: legend with every ramp step between the 1 and N² labels.
//
// Complexity: O(N²).
func Heatmap(w io.Writer, sq *square.Square, opts HeatmapOptions) error {
	if sq == nil {
		return ErrNilSquare
	}
	n := sq.Order()
	limit := opts.OverlayLimit
	if limit == 0 {
		limit = DefaultOverlayLimit
	}
	overlay := limit > 0 && n <= limit
	width := CellWidth(n)
	hi := n * n

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Magic Square of order %d\n", n)
	for _, row := range sq.Rows() {
		for _, v := range row {
			if opts.Color {
				writeColorCell(bw, v, hi, width, overlay)
			} else {
				writeGlyphCell(bw, v, hi, width, overlay)
			}
		}
		bw.WriteByte('\n')
	}
	writeLegend(bw, hi, opts.Color)

	return bw.Flush()
}

// writeColorCell prints one coloured cell, width+1 characters wide.
func writeColorCell(bw *bufio.Writer, v, hi, width int, overlay bool) {
	step := rampIndex(v, hi, len(viridis))
	fmt.Fprintf(bw, _ansiBgFmt, viridis[step])
	if !overlay {
		bw.WriteString(strings.Repeat(" ", width+1))
		bw.WriteString(_ansiReset)
		return
	}
	fg := _ansiWhite
	if step >= darkText {
		fg = _ansiBlack
	}
	fmt.Fprintf(bw, _ansiFgFmt, fg)
	bw.WriteString(padLeft(strconv.Itoa(v), width) + " ")
	bw.WriteString(_ansiReset)
}

// writeGlyphCell prints one shade cell, width+1 characters wide.
func writeGlyphCell(bw *bufio.Writer, v, hi, width int, overlay bool) {
	glyph := string(shades[rampIndex(v, hi, len(shades))])
	if !overlay {
		bw.WriteString(strings.Repeat(glyph, width+1))
		return
	}
	bw.WriteString(glyph + padLeft(strconv.Itoa(v), width))
}

// writeLegend prints "1 <ramp> N²" as a colour bar.
func writeLegend(bw *bufio.Writer, hi int, color bool) {
	bw.WriteString("1 ")
	if color {
		for _, c := range viridis {
			fmt.Fprintf(bw, _ansiBgFmt+" "+_ansiReset, c)
		}
	} else {
		for _, r := range shades {
			bw.WriteRune(r)
		}
	}
	fmt.Fprintf(bw, " %d\n", hi)
}
