// Package format provides file format detection for the dxf library.
package format

import (
	"path/filepath"
	"strings"
)

// Encoding represents an on-disk drawing encoding.
type Encoding int

const (
	// Unknown indicates an unrecognized encoding.
	Unknown Encoding = iota
	// Text indicates the text DXF encoding (alternating code/value lines).
	Text
	// Binary indicates the binary DXF encoding.
	Binary
	// DXB indicates the legacy binary-only DXB encoding.
	DXB
)

const (
	// DXBSignature is the exact first line that selects the DXB decoder.
	DXBSignature = "AutoCAD DXB 1.0"

	// binarySignatureLine is the first line of the binary DXF sentinel,
	// as it appears after line-based reading strips the \r\n.
	binarySignatureLine = "AutoCAD Binary DXF"
)

// String returns the string representation of the encoding.
func (e Encoding) String() string {
	switch e {
	case Text:
		return "Text"
	case Binary:
		return "Binary"
	case DXB:
		return "DXB"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the encoding.
func (e Encoding) Extension() string {
	switch e {
	case Text, Binary:
		return ".dxf"
	case DXB:
		return ".dxb"
	default:
		return ""
	}
}

// Detect determines the encoding family from a filename extension. The
// extension cannot distinguish text from binary DXF; DetectFirstLine is
// authoritative for that.
func Detect(filename string) Encoding {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".dxf":
		return Text
	case ".dxb":
		return DXB
	default:
		return Unknown
	}
}

// DetectFirstLine determines the encoding from the first line of the
// file. Anything that is not one of the two fixed signatures is the
// first code line of a text DXF stream.
func DetectFirstLine(line string) Encoding {
	switch line {
	case DXBSignature:
		return DXB
	case binarySignatureLine:
		return Binary
	default:
		return Text
	}
}
