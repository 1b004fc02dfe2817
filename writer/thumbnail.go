package writer

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/tr3ysmith/dxf/core"
	"github.com/tr3ysmith/dxf/model"
)

// thumbnailChunkSize is the number of payload bytes carried by one
// code-310 value.
const thumbnailChunkSize = 128

// writeThumbnail emits the THUMBNAILIMAGE body: the synthesized bitmap
// file header is stripped, the remaining payload length written as a
// code-90 integer, and the payload hex-encoded in fixed-size runs.
func writeThumbnail(data []byte, w core.PairWriter) error {
	if len(data) < model.ThumbnailHeaderSize {
		return fmt.Errorf("%w: thumbnail buffer shorter than its header", core.ErrInvalidValue)
	}
	payload := data[model.ThumbnailHeaderSize:]
	if err := w.Write(core.NewInt32Pair(90, int32(len(payload)))); err != nil {
		return err
	}
	for start := 0; start < len(payload); start += thumbnailChunkSize {
		end := start + thumbnailChunkSize
		if end > len(payload) {
			end = len(payload)
		}
		run := strings.ToUpper(hex.EncodeToString(payload[start:end]))
		if err := w.Write(core.NewStringPair(310, run)); err != nil {
			return err
		}
	}
	return nil
}
