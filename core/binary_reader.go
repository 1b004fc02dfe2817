package core

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"math"
)

// BinarySentinel is the fixed byte sequence that opens a binary DXF file.
const BinarySentinel = "AutoCAD Binary DXF\r\n\x1a\x00"

// BinaryReader produces code pairs from the binary DXF encoding. The
// caller is expected to have consumed the file sentinel already; Read
// starts at the first code byte.
//
// Group codes are stored as a single byte, with 255 escaping a
// little-endian int16 for codes that do not fit. Values follow the
// group-code type table: NUL-terminated strings, little-endian integers,
// IEEE 754 doubles, single-byte booleans.
type BinaryReader struct {
	r *bufio.Reader
}

// NewBinaryReader creates a binary pair reader positioned after the
// sentinel.
func NewBinaryReader(r *bufio.Reader) *BinaryReader {
	return &BinaryReader{r: r}
}

// Read returns the next code pair. io.EOF is surfaced only at a clean
// record boundary; a stream that ends mid-record yields
// ErrUnexpectedEndOfInput.
func (b *BinaryReader) Read() (CodePair, error) {
	codeByte, err := b.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			return CodePair{}, io.EOF
		}
		return CodePair{}, err
	}
	code := int(codeByte)
	if codeByte == 0xFF {
		v, err := b.readInt16()
		if err != nil {
			return CodePair{}, err
		}
		code = int(v)
	}

	switch TypeForCode(code) {
	case TypeString:
		s, err := b.readString()
		if err != nil {
			return CodePair{}, err
		}
		return NewStringPair(code, s), nil
	case TypeInt16:
		v, err := b.readInt16()
		if err != nil {
			return CodePair{}, err
		}
		return NewInt16Pair(code, v), nil
	case TypeInt32:
		var buf [4]byte
		if err := b.fill(buf[:]); err != nil {
			return CodePair{}, err
		}
		return NewInt32Pair(code, int32(binary.LittleEndian.Uint32(buf[:]))), nil
	case TypeInt64:
		var buf [8]byte
		if err := b.fill(buf[:]); err != nil {
			return CodePair{}, err
		}
		return NewInt64Pair(code, int64(binary.LittleEndian.Uint64(buf[:]))), nil
	case TypeDouble:
		var buf [8]byte
		if err := b.fill(buf[:]); err != nil {
			return CodePair{}, err
		}
		return NewDoublePair(code, math.Float64frombits(binary.LittleEndian.Uint64(buf[:]))), nil
	case TypeBool:
		v, err := b.r.ReadByte()
		if err != nil {
			return CodePair{}, eofAsUnexpected(err)
		}
		return NewBoolPair(code, v != 0), nil
	}
	return CodePair{}, CodeError(code)
}

func (b *BinaryReader) readInt16() (int16, error) {
	var buf [2]byte
	if err := b.fill(buf[:]); err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(buf[:])), nil
}

func (b *BinaryReader) readString() (string, error) {
	var buf bytes.Buffer
	for {
		c, err := b.r.ReadByte()
		if err != nil {
			return "", eofAsUnexpected(err)
		}
		if c == 0 {
			return buf.String(), nil
		}
		buf.WriteByte(c)
	}
}

func (b *BinaryReader) fill(buf []byte) error {
	_, err := io.ReadFull(b.r, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrUnexpectedEndOfInput
	}
	return err
}

func eofAsUnexpected(err error) error {
	if err == io.EOF {
		return ErrUnexpectedEndOfInput
	}
	return err
}
