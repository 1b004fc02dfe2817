package model

import (
	"bytes"
	"fmt"
	"image"

	"golang.org/x/image/bmp"

	"github.com/tr3ysmith/dxf/core"
)

// ThumbnailHeaderSize is the length of the bitmap file header the
// THUMBNAILIMAGE section omits and the reader synthesizes. A document's
// thumbnail buffer, when present, is always at least this long.
const ThumbnailHeaderSize = 14

// ThumbnailImage decodes the document's thumbnail buffer into an image.
// The buffer already carries the synthesized bitmap file header, so it
// is a complete BMP file.
func (d *Document) ThumbnailImage() (image.Image, error) {
	if d.Thumbnail == nil {
		return nil, fmt.Errorf("dxf: document has no thumbnail")
	}
	if len(d.Thumbnail) < ThumbnailHeaderSize {
		return nil, fmt.Errorf("%w: thumbnail buffer shorter than its header", core.ErrInvalidValue)
	}
	img, err := bmp.Decode(bytes.NewReader(d.Thumbnail))
	if err != nil {
		return nil, fmt.Errorf("dxf: decoding thumbnail: %w", err)
	}
	return img, nil
}

// SetThumbnailImage encodes img as a bitmap and installs it as the
// document's thumbnail buffer. The buffer is only written out when the
// header version is R2000 or later.
func (d *Document) SetThumbnailImage(img image.Image) error {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		return fmt.Errorf("dxf: encoding thumbnail: %w", err)
	}
	d.Thumbnail = buf.Bytes()
	return nil
}
