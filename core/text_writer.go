package core

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
)

// TextWriter emits code pairs in the text DXF encoding: the group code
// right-aligned in three columns, then the value, one line each, with
// \r\n endings.
//
// When an ANSI code page is installed (files older than R2007), string
// values are encoded through it and characters the page cannot represent
// are written as \U+XXXX escapes.
type TextWriter struct {
	w       *bufio.Writer
	encoder *encoding.Encoder
}

// NewTextWriter creates a text pair writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

// SetCodePage installs the ANSI code page used to encode string values.
// An empty name clears it, writing UTF-8 directly.
func (t *TextWriter) SetCodePage(name string) {
	if name == "" {
		t.encoder = nil
		return
	}
	t.encoder = encoderFor(name)
}

// WritePrelude emits nothing for the text encoding; the method exists so
// both pair writers share the writer-side entry contract.
func (t *TextWriter) WritePrelude() error {
	return nil
}

// Write emits one code pair.
func (t *TextWriter) Write(pair CodePair) error {
	if _, err := fmt.Fprintf(t.w, "%3d\r\n", pair.Code); err != nil {
		return err
	}
	value := pair.Value.String()
	if pair.Value.Type() == TypeString {
		value = t.encodeString(value)
	}
	_, err := fmt.Fprintf(t.w, "%s\r\n", value)
	return err
}

// Flush flushes buffered output to the underlying writer.
func (t *TextWriter) Flush() error {
	return t.w.Flush()
}

func (t *TextWriter) encodeString(s string) string {
	if t.encoder == nil {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if r < 0x80 {
			b.WriteRune(r)
			continue
		}
		encoded, err := t.encoder.String(string(r))
		if err != nil || encoded == "" {
			fmt.Fprintf(&b, `\U+%04X`, r)
			continue
		}
		b.WriteString(encoded)
	}
	return b.String()
}
