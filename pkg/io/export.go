package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/maxima/pkg/errors"
	"github.com/matzehuels/maxima/pkg/geom"
	"github.com/matzehuels/maxima/pkg/layertree"
)

// Output formats accepted by [Export].
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
}

type document struct {
	Layers []layertree.Layer `json:"layers"`
}

// WriteText writes layers in the "x, y" text format, a blank line after
// each layer.
func WriteText(w io.Writer, layers []layertree.Layer) error {
	bw := bufio.NewWriter(w)
	for _, l := range layers {
		for _, p := range l.Points {
			fmt.Fprintf(bw, "%d, %d\n", p.X, p.Y)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteJSON encodes layers as an indented JSON document.
func WriteJSON(w io.Writer, layers []layertree.Layer) error {
	if layers == nil {
		layers = []layertree.Layer{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Layers: layers}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Export writes layers to a new file at path in the given format.
// An existing file is truncated.
func Export(layers []layertree.Layer, path, format string) error {
	write := WriteText
	switch format {
	case FormatText, "":
	case FormatJSON:
		write = WriteJSON
	default:
		return errors.New(errors.ErrCodeInvalidInput, "invalid format: %q (must be one of: text, json)", format)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeOutputOpen, err, "create output %s", path)
	}
	if err := write(f, layers); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeOutputOpen, err, "write output %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeOutputOpen, err, "close output %s", path)
	}
	return nil
}

// WriteInput writes points in the input format: the count, then one
// "x y" line per point.
func WriteInput(w io.Writer, pts []geom.Point) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(pts))
	for _, p := range pts {
		fmt.Fprintf(bw, "%d %d\n", p.X, p.Y)
	}
	return bw.Flush()
}

// ExportInput writes points to a new input file at path.
func ExportInput(pts []geom.Point, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeOutputOpen, err, "create input %s", path)
	}
	if err := WriteInput(f, pts); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeOutputOpen, err, "write input %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeOutputOpen, err, "close input %s", path)
	}
	return nil
}
