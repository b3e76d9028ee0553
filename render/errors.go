// SPDX-License-Identifier: MIT

package render

import "errors"

var (
	// ErrNilSquare indicates a nil *square.Square was passed to a renderer.
	ErrNilSquare = errors.New("render: square is nil")
	// ErrUnknownFormat indicates an unsupported output format name.
	ErrUnknownFormat = errors.New("render: unknown format")
)
