package core

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

// newTestTextReader hands the first line to the reader the way the
// format sniffer does, then lets it consume the rest of the stream.
func newTestTextReader(lines ...string) *TextReader {
	first := lines[0]
	rest := strings.Join(lines[1:], "\r\n")
	if len(lines) > 1 {
		rest += "\r\n"
	}
	return NewTextReader(bufio.NewReader(strings.NewReader(rest)), first)
}

func TestTextReader_Read(t *testing.T) {
	r := newTestTextReader("  0", "SECTION", " 10", "1.5", " 70", "3", " 90", "100000", "290", "1")

	want := []CodePair{
		NewStringPair(0, "SECTION"),
		NewDoublePair(10, 1.5),
		NewInt16Pair(70, 3),
		NewInt32Pair(90, 100000),
		NewBoolPair(290, true),
	}
	for i, w := range want {
		got, err := r.Read()
		if err != nil {
			t.Fatalf("Read() #%d error: %v", i, err)
		}
		if got != w {
			t.Errorf("Read() #%d = %s, want %s", i, got, w)
		}
	}
	if _, err := r.Read(); err != io.EOF {
		t.Errorf("Read() at end = %v, want io.EOF", err)
	}
}

func TestTextReader_DanglingCode(t *testing.T) {
	r := newTestTextReader("  0")
	if _, err := r.Read(); !errors.Is(err, ErrUnexpectedEndOfInput) {
		t.Errorf("Read() = %v, want ErrUnexpectedEndOfInput", err)
	}
}

func TestTextReader_BadValue(t *testing.T) {
	r := newTestTextReader(" 70", "not-a-number")
	if _, err := r.Read(); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Read() = %v, want ErrInvalidValue", err)
	}
}

func TestTextReader_UnicodeEscape(t *testing.T) {
	r := newTestTextReader("  1", `caf\U+00E9`)
	pair, err := r.Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if s, _ := pair.AsString(); s != "café" {
		t.Errorf("value = %q, want %q", s, "café")
	}
}

func TestTextWriter_Format(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)
	if err := w.Write(NewStringPair(0, "SECTION")); err != nil {
		t.Fatal(err)
	}
	if err := w.Write(NewDoublePair(10, 2.0)); err != nil {
		t.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	want := "  0\r\nSECTION\r\n 10\r\n2.0\r\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestTextWriter_CodePageEncoding(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)
	w.SetCodePage("ANSI_1252")
	if err := w.Write(NewStringPair(1, "café")); err != nil {
		t.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	want := "  1\r\ncaf\xe9\r\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestTextWriter_EscapesOutsideCodePage(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)
	w.SetCodePage("ANSI_1252")
	if err := w.Write(NewStringPair(1, "omega Ω")); err != nil {
		t.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), `\U+03A9`) {
		t.Errorf("output %q should contain the \\U+03A9 escape", buf.String())
	}
}

func TestText_CodePageRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)
	w.SetCodePage("ANSI_1252")
	pairs := []CodePair{
		NewStringPair(8, "café"),
		NewStringPair(1, "Ω and é"),
	}
	for _, p := range pairs {
		if err := w.Write(p); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n")
	r := newTestTextReader(lines...)
	r.SetCodePage("ANSI_1252")
	for i, want := range pairs {
		got, err := r.Read()
		if err != nil {
			t.Fatalf("Read() #%d error: %v", i, err)
		}
		if got != want {
			t.Errorf("round trip #%d = %s, want %s", i, got, want)
		}
	}
}
