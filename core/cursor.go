package core

import "io"

// PairReader is a source of code pairs. Read returns io.EOF once the
// stream is exhausted; any other error is fatal to the caller.
type PairReader interface {
	Read() (CodePair, error)
}

// PairWriter is a sink for code pairs.
type PairWriter interface {
	Write(CodePair) error
}

// Cursor wraps a PairReader with exactly one element of look-ahead. A
// pushed-back pair is returned by the next call to Next before the
// underlying reader is consulted again.
type Cursor struct {
	src     PairReader
	pending CodePair
	hasPend bool
}

// NewCursor creates a cursor over src.
func NewCursor(src PairReader) *Cursor {
	return &Cursor{src: src}
}

// Next returns the next pair, draining the push-back slot first. It
// returns io.EOF at the end of the stream.
func (c *Cursor) Next() (CodePair, error) {
	if c.hasPend {
		c.hasPend = false
		return c.pending, nil
	}
	return c.src.Read()
}

// PushBack returns a pair to the front of the stream. At most one pair
// may be pending at a time; pushing a second one is a programming error
// and panics.
func (c *Cursor) PushBack(pair CodePair) {
	if c.hasPend {
		panic("dxf: push-back slot already occupied")
	}
	c.pending = pair
	c.hasPend = true
}

// SliceReader is an in-memory PairReader over a fixed sequence of pairs.
// It is useful for programmatic construction and in tests.
type SliceReader struct {
	pairs []CodePair
	pos   int
}

// NewSliceReader creates a PairReader that yields the given pairs in order.
func NewSliceReader(pairs ...CodePair) *SliceReader {
	return &SliceReader{pairs: pairs}
}

// Read returns the next pair or io.EOF.
func (s *SliceReader) Read() (CodePair, error) {
	if s.pos >= len(s.pairs) {
		return CodePair{}, io.EOF
	}
	p := s.pairs[s.pos]
	s.pos++
	return p, nil
}
