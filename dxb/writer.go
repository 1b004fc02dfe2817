package dxb

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/tr3ysmith/dxf/model"
)

// Writer encodes a document as a DXB item stream. Coordinates are
// written in float mode; entities with no DXB representation are
// skipped.
type Writer struct {
	w *bufio.Writer
}

// NewWriter creates a DXB writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write emits the signature, the representable entities, and the
// terminator.
func (d *Writer) Write(doc *model.Document) error {
	if _, err := d.w.WriteString(Signature + "\r\n\x1a\x00"); err != nil {
		return err
	}
	if err := d.writeItem(itemNumberMode); err != nil {
		return err
	}
	if err := d.writeInt16(1); err != nil {
		return err
	}

	for _, e := range doc.Entities {
		switch ent := e.(type) {
		case *model.Line:
			if err := d.writeItem(itemLine); err != nil {
				return err
			}
			if err := d.writeFloats(ent.P1.X, ent.P1.Y, ent.P2.X, ent.P2.Y); err != nil {
				return err
			}
		case *model.ModelPoint:
			if err := d.writeItem(itemPoint); err != nil {
				return err
			}
			if err := d.writeFloats(ent.Location.X, ent.Location.Y); err != nil {
				return err
			}
		}
	}

	if err := d.writeItem(itemEOF); err != nil {
		return err
	}
	return d.w.Flush()
}

func (d *Writer) writeItem(item byte) error {
	return d.w.WriteByte(item)
}

func (d *Writer) writeInt16(v int16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], uint16(v))
	_, err := d.w.Write(buf[:])
	return err
}

func (d *Writer) writeFloats(vals ...float64) error {
	var buf [8]byte
	for _, v := range vals {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		if _, err := d.w.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}
