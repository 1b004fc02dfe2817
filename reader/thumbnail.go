package reader

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/tr3ysmith/dxf/core"
	"github.com/tr3ysmith/dxf/model"
)

// readThumbnail decodes the THUMBNAILIMAGE section: a code-90 declared
// length followed by code-310 hex runs. The declared length is read but
// not trusted; real producers write inconsistent values, so the buffer
// length is recomputed from the bytes actually decoded. The decoded
// payload is prefixed with the bitmap file header the section omits.
func (s *sectionReader) readThumbnail() error {
	lengthPair, err := s.cursor.Next()
	if err != nil {
		if err == io.EOF {
			return core.ErrUnexpectedEndOfInput
		}
		return err
	}
	if lengthPair.Code != 90 {
		return core.CodeError(lengthPair.Code)
	}
	if _, err := lengthPair.AsInt32(); err != nil {
		return err
	}

	// bitmap file header: magic, length placeholder, two reserved
	// fields, pixel data offset
	data := []byte{
		'B', 'M',
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00,
		0x00, 0x00,
		0x36, 0x04, 0x00, 0x00,
	}

	for {
		pair, err := s.cursor.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
		if pair.Code == 0 {
			s.cursor.PushBack(pair)
			break
		}
		if pair.Code != 310 {
			return core.CodeError(pair.Code)
		}
		run, err := pair.AsString()
		if err != nil {
			return err
		}
		decoded, err := hex.DecodeString(run)
		if err != nil {
			return fmt.Errorf("%w: bad thumbnail hex run: %v", core.ErrInvalidValue, err)
		}
		data = append(data, decoded...)
	}

	binary.LittleEndian.PutUint32(data[2:6], uint32(len(data)-model.ThumbnailHeaderSize))
	s.doc.Thumbnail = data
	return nil
}
