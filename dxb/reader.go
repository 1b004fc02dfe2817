package dxb

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/tr3ysmith/dxf/core"
	"github.com/tr3ysmith/dxf/model"
)

// Signature is the first line of a DXB file.
const Signature = "AutoCAD DXB 1.0"

// Item type bytes.
const (
	itemEOF        = 0
	itemLine       = 1
	itemPoint      = 2
	itemScale      = 128
	itemNumberMode = 135
)

// Reader decodes a DXB item stream into a document. The caller has
// already consumed the signature line; Read starts at the byte after it.
type Reader struct {
	r      *bufio.Reader
	scale  float64
	floats bool
}

// NewReader creates a DXB reader positioned after the signature line.
func NewReader(r *bufio.Reader) *Reader {
	return &Reader{r: r, scale: 1.0}
}

// Read decodes items until the terminator. A stream that ends without
// one is a fatal end-of-input.
func (d *Reader) Read() (*model.Document, error) {
	// the signature line is followed by 0x1A 0x00
	if err := d.skipSignatureTail(); err != nil {
		return nil, err
	}

	doc := model.NewDocument()
	for {
		item, err := d.r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return nil, core.ErrUnexpectedEndOfInput
			}
			return nil, err
		}
		switch item {
		case itemEOF:
			return doc, nil
		case itemLine:
			nums, err := d.readNumbers(4)
			if err != nil {
				return nil, err
			}
			doc.AddEntity(&model.Line{
				P1: model.NewPoint(nums[0], nums[1], 0),
				P2: model.NewPoint(nums[2], nums[3], 0),
			})
		case itemPoint:
			nums, err := d.readNumbers(2)
			if err != nil {
				return nil, err
			}
			doc.AddEntity(&model.ModelPoint{
				Location: model.NewPoint(nums[0], nums[1], 0),
			})
		case itemScale:
			v, err := d.readFloat()
			if err != nil {
				return nil, err
			}
			d.scale = v
		case itemNumberMode:
			v, err := d.readInt16()
			if err != nil {
				return nil, err
			}
			d.floats = v != 0
		default:
			return nil, fmt.Errorf("%w: unsupported dxb item %d", core.ErrInvalidValue, item)
		}
	}
}

func (d *Reader) skipSignatureTail() error {
	for i := 0; i < 2; i++ {
		b, err := d.r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return core.ErrUnexpectedEndOfInput
			}
			return err
		}
		if b != 0x1A && b != 0x00 {
			return fmt.Errorf("%w: malformed dxb signature", core.ErrInvalidValue)
		}
	}
	return nil
}

// readNumbers reads n coordinates in the current number mode: scaled
// little-endian int16s, or raw float64s.
func (d *Reader) readNumbers(n int) ([]float64, error) {
	nums := make([]float64, n)
	for i := range nums {
		if d.floats {
			v, err := d.readFloat()
			if err != nil {
				return nil, err
			}
			nums[i] = v
			continue
		}
		v, err := d.readInt16()
		if err != nil {
			return nil, err
		}
		nums[i] = float64(v) * d.scale
	}
	return nums, nil
}

func (d *Reader) readInt16() (int16, error) {
	var buf [2]byte
	if err := d.fill(buf[:]); err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(buf[:])), nil
}

func (d *Reader) readFloat() (float64, error) {
	var buf [8]byte
	if err := d.fill(buf[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[:])), nil
}

func (d *Reader) fill(buf []byte) error {
	_, err := io.ReadFull(d.r, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return core.ErrUnexpectedEndOfInput
	}
	return err
}
