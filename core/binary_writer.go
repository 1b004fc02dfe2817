package core

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
)

// BinaryWriter emits code pairs in the binary DXF encoding. WritePrelude
// emits the file sentinel; Write emits one code/value record using the
// same layout BinaryReader consumes.
type BinaryWriter struct {
	w *bufio.Writer
}

// NewBinaryWriter creates a binary pair writer.
func NewBinaryWriter(w io.Writer) *BinaryWriter {
	return &BinaryWriter{w: bufio.NewWriter(w)}
}

// WritePrelude emits the binary DXF sentinel.
func (b *BinaryWriter) WritePrelude() error {
	_, err := b.w.WriteString(BinarySentinel)
	return err
}

// Write emits one code pair.
func (b *BinaryWriter) Write(pair CodePair) error {
	if err := b.writeCode(pair.Code); err != nil {
		return err
	}
	switch v := pair.Value.(type) {
	case String:
		if _, err := b.w.WriteString(string(v)); err != nil {
			return err
		}
		return b.w.WriteByte(0)
	case Int16:
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], uint16(v))
		_, err := b.w.Write(buf[:])
		return err
	case Int32:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], uint32(v))
		_, err := b.w.Write(buf[:])
		return err
	case Int64:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, err := b.w.Write(buf[:])
		return err
	case Double:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(float64(v)))
		_, err := b.w.Write(buf[:])
		return err
	case Bool:
		if v {
			return b.w.WriteByte(1)
		}
		return b.w.WriteByte(0)
	}
	return CodeError(pair.Code)
}

func (b *BinaryWriter) writeCode(code int) error {
	if code >= 255 {
		if err := b.w.WriteByte(0xFF); err != nil {
			return err
		}
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], uint16(code))
		_, err := b.w.Write(buf[:])
		return err
	}
	return b.w.WriteByte(byte(code))
}

// Flush flushes buffered output to the underlying writer.
func (b *BinaryWriter) Flush() error {
	return b.w.Flush()
}
