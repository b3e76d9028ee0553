// SPDX-License-Identifier: MIT

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/magicsquare/square"
)

// Format selects the output encoding used by Encode.
type Format string

const (
	// FormatText prints fixed-width columns followed by the magic constant.
	FormatText Format = "text"
	// FormatJSON prints an indented JSON Document.
	FormatJSON Format = "json"
	// FormatYAML prints a YAML Document.
	FormatYAML Format = "yaml"
	// FormatCBOR writes a binary CBOR Document.
	FormatCBOR Format = "cbor"
)

// Formats lists every supported format in a stable order.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatCBOR}

// ParseFormat maps a case-insensitive name onto a Format.
// Errors: ErrUnknownFormat for any other name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("%q (use text, json, yaml, cbor): %w", s, ErrUnknownFormat)
}

// Document is the serialisable view of a square.
type Document struct {
	Order         int     `json:"order" yaml:"order" cbor:"order"`
	Class         string  `json:"class" yaml:"class" cbor:"class"`
	MagicConstant int     `json:"magic_constant" yaml:"magic_constant" cbor:"magic_constant"`
	Rows          [][]int `json:"rows" yaml:"rows,flow" cbor:"rows"`
}

// NewDocument snapshots sq into a Document.
// Errors: ErrNilSquare.
func NewDocument(sq *square.Square) (Document, error) {
	if sq == nil {
		return Document{}, ErrNilSquare
	}
	class, err := square.ClassOf(sq.Order())
	if err != nil {
		return Document{}, err
	}

	return Document{
		Order:         sq.Order(),
		Class:         class.String(),
		MagicConstant: square.MagicConstant(sq.Order()),
		Rows:          sq.Rows(),
	}, nil
}

// Encode writes sq to w in format f.
// Errors: ErrNilSquare, ErrUnknownFormat, or the writer/encoder error.
func Encode(w io.Writer, sq *square.Square, f Format) error {
	doc, err := NewDocument(sq)
	if err != nil {
		return err
	}

	switch f {
	case FormatText:
		if err = Text(w, sq); err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "\nMagic Constant: %d\n", doc.MagicConstant)
		return err

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()

	case FormatCBOR:
		data, err := cbor.Marshal(doc)
		if err != nil {
			return fmt.Errorf("cbor marshal: %w", err)
		}
		_, err = w.Write(data)
		return err

	default:
		return fmt.Errorf("%q: %w", string(f), ErrUnknownFormat)
	}
}
