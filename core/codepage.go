package core

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// codePages maps the $DWGCODEPAGE names found in drawing headers to the
// character maps they denote. Files older than R2007 store strings in one
// of these ANSI pages; R2007 and newer files are UTF-8.
var codePages = map[string]*charmap.Charmap{
	"ANSI_874":  charmap.Windows874,
	"ANSI_1250": charmap.Windows1250,
	"ANSI_1251": charmap.Windows1251,
	"ANSI_1252": charmap.Windows1252,
	"ANSI_1253": charmap.Windows1253,
	"ANSI_1254": charmap.Windows1254,
	"ANSI_1255": charmap.Windows1255,
	"ANSI_1256": charmap.Windows1256,
	"ANSI_1257": charmap.Windows1257,
	"ANSI_1258": charmap.Windows1258,
}

// codePageFor resolves a $DWGCODEPAGE name, falling back to Windows-1252
// for names it does not recognize; real files carry a wide variety of
// spellings and 1252 is what almost all of them mean.
func codePageFor(name string) *charmap.Charmap {
	if cp, ok := codePages[strings.ToUpper(name)]; ok {
		return cp
	}
	return charmap.Windows1252
}

// decoderFor returns a decoder for the named code page.
func decoderFor(name string) *encoding.Decoder {
	return codePageFor(name).NewDecoder()
}

// encoderFor returns an encoder for the named code page.
func encoderFor(name string) *encoding.Encoder {
	return codePageFor(name).NewEncoder()
}
