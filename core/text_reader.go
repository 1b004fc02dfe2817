package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
)

// TextReader produces code pairs from the text DXF encoding: alternating
// lines of group code and value. The first code line is handed in by the
// caller, which has already consumed it to sniff the file format.
//
// Strings are decoded through the drawing's ANSI code page for files
// older than R2007; the orchestrating reader installs the page with
// SetCodePage once the header has been parsed. R2007 and newer files are
// read as UTF-8.
type TextReader struct {
	r         *bufio.Reader
	decoder   *encoding.Decoder
	firstLine string
	hasFirst  bool
	line      int
}

// NewTextReader creates a text pair reader. firstLine is the first
// logical code line of the stream, already consumed by format sniffing.
func NewTextReader(r *bufio.Reader, firstLine string) *TextReader {
	return &TextReader{r: r, firstLine: firstLine, hasFirst: true}
}

// SetCodePage installs the ANSI code page used to decode string values.
// An empty name clears it, restoring UTF-8 passthrough.
func (t *TextReader) SetCodePage(name string) {
	if name == "" {
		t.decoder = nil
		return
	}
	t.decoder = decoderFor(name)
}

// Read returns the next code pair. It returns io.EOF at a clean pair
// boundary and ErrUnexpectedEndOfInput when the stream ends between a
// code line and its value line.
func (t *TextReader) Read() (CodePair, error) {
	codeLine, err := t.readLine()
	if err != nil {
		if err == io.EOF {
			return CodePair{}, io.EOF
		}
		return CodePair{}, err
	}
	code, err := strconv.Atoi(strings.TrimSpace(codeLine))
	if err != nil {
		return CodePair{}, fmt.Errorf("%w: line %d: bad group code %q", ErrInvalidValue, t.line, strings.TrimSpace(codeLine))
	}

	valueLine, err := t.readLine()
	if err != nil {
		if err == io.EOF {
			return CodePair{}, ErrUnexpectedEndOfInput
		}
		return CodePair{}, err
	}
	return t.parseValue(code, valueLine)
}

func (t *TextReader) parseValue(code int, raw string) (CodePair, error) {
	switch TypeForCode(code) {
	case TypeString:
		s := raw
		if t.decoder != nil {
			decoded, err := t.decoder.String(raw)
			if err == nil {
				s = decoded
			}
		}
		return NewStringPair(code, unescapeUnicode(s)), nil
	case TypeInt16:
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 16)
		if err != nil {
			return CodePair{}, t.valueError(code, raw)
		}
		return NewInt16Pair(code, int16(v)), nil
	case TypeInt32:
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
		if err != nil {
			return CodePair{}, t.valueError(code, raw)
		}
		return NewInt32Pair(code, int32(v)), nil
	case TypeInt64:
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return CodePair{}, t.valueError(code, raw)
		}
		return NewInt64Pair(code, v), nil
	case TypeDouble:
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return CodePair{}, t.valueError(code, raw)
		}
		return NewDoublePair(code, v), nil
	case TypeBool:
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 16)
		if err != nil {
			return CodePair{}, t.valueError(code, raw)
		}
		return NewBoolPair(code, v != 0), nil
	}
	return CodePair{}, CodeError(code)
}

func (t *TextReader) valueError(code int, raw string) error {
	return fmt.Errorf("%w: line %d: %q is not a valid %s for code %d",
		ErrInvalidValue, t.line, strings.TrimSpace(raw), TypeForCode(code), code)
}

// readLine returns the next line without its terminator. Both \r\n and
// \n endings are accepted. io.EOF is returned only when no bytes remain.
func (t *TextReader) readLine() (string, error) {
	if t.hasFirst {
		t.hasFirst = false
		t.line++
		return t.firstLine, nil
	}
	line, err := t.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			t.line++
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", err
	}
	t.line++
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// unescapeUnicode expands \U+XXXX escape sequences, the mechanism text
// DXF uses for characters outside the file's code page.
func unescapeUnicode(s string) string {
	if !strings.Contains(s, `\U+`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); {
		if i+7 <= len(s) && s[i] == '\\' && s[i+1] == 'U' && s[i+2] == '+' {
			if v, err := strconv.ParseUint(s[i+3:i+7], 16, 32); err == nil {
				b.WriteRune(rune(v))
				i += 7
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
