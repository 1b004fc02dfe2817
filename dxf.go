// Package dxf reads and writes drawings in the DXF family of
// interchange formats: text DXF, binary DXF, and the legacy DXB
// encoding.
//
// Basic usage:
//
//	doc, err := dxf.Open("drawing.dxf")
//	if err != nil {
//	    // handle error
//	}
//	for _, e := range doc.Entities {
//	    // inspect entities
//	}
//
// Creating a drawing:
//
//	doc := dxf.NewDocument()
//	doc.AddEntity(&dxf.Line{P1: dxf.NewPoint(0, 0, 0), P2: dxf.NewPoint(1, 1, 0)})
//	err := dxf.SaveFile(doc, "out.dxf")
//
// The format is detected on load from the first line of input; the
// lower-level reader, writer, and core packages are available for
// advanced use.
package dxf

import (
	"bufio"
	"io"
	"os"

	"github.com/tr3ysmith/dxf/dxb"
	"github.com/tr3ysmith/dxf/model"
	"github.com/tr3ysmith/dxf/reader"
	"github.com/tr3ysmith/dxf/writer"
)

// Commonly used model types, re-exported so simple programs only import
// this package.
type (
	Document   = model.Document
	Header     = model.Header
	Point      = model.Point
	Entity     = model.Entity
	Line       = model.Line
	ModelPoint = model.ModelPoint
	Circle     = model.Circle
	Arc        = model.Arc
	Text       = model.Text
	Solid      = model.Solid
	Polyline   = model.Polyline
	Vertex     = model.Vertex
	Layer      = model.Layer
	Block      = model.Block
)

// NewDocument creates an empty drawing with a default header.
func NewDocument() *Document {
	return model.NewDocument()
}

// NewPoint creates a point from coordinates.
func NewPoint(x, y, z float64) Point {
	return model.NewPoint(x, y, z)
}

// Load reads a drawing from r, detecting the encoding from the first
// line of input.
func Load(r io.Reader) (*Document, error) {
	return reader.Load(r)
}

// Open loads a drawing from a named file.
func Open(filename string) (*Document, error) {
	return reader.Open(filename)
}

// Save writes the drawing to w in the text encoding.
func Save(doc *Document, w io.Writer) error {
	return writer.Save(doc, w)
}

// SaveBinary writes the drawing to w in the binary encoding.
func SaveBinary(doc *Document, w io.Writer) error {
	return writer.SaveBinary(doc, w)
}

// SaveFile writes the drawing to a named file in the text encoding.
func SaveFile(doc *Document, filename string) error {
	return saveFile(doc, filename, writer.Save)
}

// SaveFileBinary writes the drawing to a named file in the binary
// encoding.
func SaveFileBinary(doc *Document, filename string) error {
	return saveFile(doc, filename, writer.SaveBinary)
}

// SaveDXB writes the drawing to w in the legacy DXB encoding.
func SaveDXB(doc *Document, w io.Writer) error {
	return dxb.NewWriter(w).Write(doc)
}

// SaveFileDXB writes the drawing to a named file in the legacy DXB
// encoding.
func SaveFileDXB(doc *Document, filename string) error {
	return saveFile(doc, filename, SaveDXB)
}

func saveFile(doc *Document, filename string, save func(*Document, io.Writer) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := save(doc, bw); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := dxf.Must(dxf.Open("drawing.dxf"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
