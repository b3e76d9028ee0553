// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/magicsquare/square"
)

// minCellWidth matches the classic three-character column.
const minCellWidth = 3

// CellWidth returns the column width needed to right-align every value of
// an order-n square: the digit count of n², but never less than 3.
// Complexity: O(log n).
func CellWidth(n int) int {
	w := len(strconv.Itoa(n * n))
	if w < minCellWidth {
		return minCellWidth
	}

	return w
}

// Text writes sq as fixed-width columns separated by one space, one row per
// line. Values are right-aligned to CellWidth(N).
// Complexity: O(N²).
func Text(w io.Writer, sq *square.Square) error {
	if sq == nil {
		return ErrNilSquare
	}
	bw := bufio.NewWriter(w)
	width := CellWidth(sq.Order())
	for _, row := range sq.Rows() {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = padLeft(strconv.Itoa(v), width)
		}
		bw.WriteString(strings.Join(cells, " "))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// padLeft right-aligns s in a field of the given width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return strings.Repeat(" ", width-len(s)) + s
}
