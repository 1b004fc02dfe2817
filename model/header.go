package model

import (
	"io"

	"github.com/tr3ysmith/dxf/core"
)

// Header holds the drawing-wide settings stored in the HEADER section.
// Only the variables the library round-trips are modeled; unknown
// variables encountered on read are skipped.
type Header struct {
	// Version is the drawing format revision ($ACADVER).
	Version AcadVersion
	// CodePage names the ANSI code page strings are stored in for files
	// older than R2007 ($DWGCODEPAGE).
	CodePage string
	// HandlesEnabled reports whether the drawing carries object handles
	// ($HANDLING). Handles are always written at R13 and later
	// regardless of this flag.
	HandlesEnabled bool
	// NextAvailableHandle is the handle seed ($HANDSEED).
	NextAvailableHandle string

	InsertionBase  Point // $INSBASE
	MinimumExtents Point // $EXTMIN
	MaximumExtents Point // $EXTMAX

	UnitFormat        int16   // $LUNITS
	UnitPrecision     int16   // $LUPREC
	CurrentLayer      string  // $CLAYER
	CurrentLineType   string  // $CELTYPE
	CurrentColor      int16   // $CECOLOR
	LineTypeScale     float64 // $LTSCALE
	DefaultTextHeight float64 // $TEXTSIZE
	FillMode          bool    // $FILLMODE
}

// DefaultHeader returns the header of a freshly created drawing.
func DefaultHeader() Header {
	return Header{
		Version:             R12,
		CodePage:            "ANSI_1252",
		NextAvailableHandle: "1",
		UnitFormat:          2,
		UnitPrecision:       4,
		CurrentLayer:        "0",
		CurrentLineType:     "BYLAYER",
		CurrentColor:        256,
		LineTypeScale:       1.0,
		DefaultTextHeight:   0.2,
		FillMode:            true,
	}
}

// Read populates the header from the pair stream, consuming until the
// section's 0/ENDSEC marker, which is pushed back for the dispatcher.
func (h *Header) Read(c *core.Cursor) error {
	for {
		pair, err := c.Next()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if pair.Code == 0 {
			c.PushBack(pair)
			return nil
		}
		if pair.Code != 9 {
			// stray value between variables; skip
			continue
		}
		name, err := pair.AsString()
		if err != nil {
			return err
		}
		if err := h.readVariable(name, c); err != nil {
			return err
		}
	}
}

func (h *Header) readVariable(name string, c *core.Cursor) error {
	switch name {
	case "$ACADVER":
		s, err := nextString(c)
		if err != nil {
			return err
		}
		v, err := VersionFromCode(s)
		if err != nil {
			return err
		}
		h.Version = v
	case "$DWGCODEPAGE":
		s, err := nextString(c)
		if err != nil {
			return err
		}
		h.CodePage = s
	case "$HANDLING":
		b, err := nextBool(c)
		if err != nil {
			return err
		}
		h.HandlesEnabled = b
	case "$HANDSEED":
		s, err := nextString(c)
		if err != nil {
			return err
		}
		h.NextAvailableHandle = s
	case "$INSBASE":
		return h.readPoint(&h.InsertionBase, c)
	case "$EXTMIN":
		return h.readPoint(&h.MinimumExtents, c)
	case "$EXTMAX":
		return h.readPoint(&h.MaximumExtents, c)
	case "$LUNITS":
		v, err := nextInt16(c)
		if err != nil {
			return err
		}
		h.UnitFormat = v
	case "$LUPREC":
		v, err := nextInt16(c)
		if err != nil {
			return err
		}
		h.UnitPrecision = v
	case "$CLAYER":
		s, err := nextString(c)
		if err != nil {
			return err
		}
		h.CurrentLayer = s
	case "$CELTYPE":
		s, err := nextString(c)
		if err != nil {
			return err
		}
		h.CurrentLineType = s
	case "$CECOLOR":
		v, err := nextInt16(c)
		if err != nil {
			return err
		}
		h.CurrentColor = v
	case "$LTSCALE":
		v, err := nextDouble(c)
		if err != nil {
			return err
		}
		h.LineTypeScale = v
	case "$TEXTSIZE":
		v, err := nextDouble(c)
		if err != nil {
			return err
		}
		h.DefaultTextHeight = v
	case "$FILLMODE":
		b, err := nextBool(c)
		if err != nil {
			return err
		}
		h.FillMode = b
	default:
		return skipVariable(c)
	}
	return nil
}

// readPoint consumes the 10/20/30 coordinate pairs of a point variable,
// stopping before the next variable or section marker.
func (h *Header) readPoint(p *Point, c *core.Cursor) error {
	for {
		pair, err := c.Next()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if pair.Code == 0 || pair.Code == 9 {
			c.PushBack(pair)
			return nil
		}
		v, err := pair.AsDouble()
		if err != nil {
			return err
		}
		p.setCoord(pair.Code, 10, v)
	}
}

// skipVariable discards the value pairs of an unrecognized variable.
func skipVariable(c *core.Cursor) error {
	for {
		pair, err := c.Next()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if pair.Code == 0 || pair.Code == 9 {
			c.PushBack(pair)
			return nil
		}
	}
}

// Write emits the header variables. Section framing belongs to the
// document writer, not here.
func (h *Header) Write(w core.PairWriter) error {
	pairs := []core.CodePair{
		core.NewStringPair(9, "$ACADVER"), core.NewStringPair(1, h.Version.Code()),
		core.NewStringPair(9, "$DWGCODEPAGE"), core.NewStringPair(3, h.CodePage),
	}
	if h.Version < R2004 {
		pairs = append(pairs,
			core.NewStringPair(9, "$HANDLING"), core.NewInt16Pair(280, boolInt16(h.HandlesEnabled)))
	}
	pairs = append(pairs,
		core.NewStringPair(9, "$HANDSEED"), core.NewStringPair(5, h.NextAvailableHandle))
	pairs = appendPointVariable(pairs, "$INSBASE", h.InsertionBase)
	pairs = appendPointVariable(pairs, "$EXTMIN", h.MinimumExtents)
	pairs = appendPointVariable(pairs, "$EXTMAX", h.MaximumExtents)
	pairs = append(pairs,
		core.NewStringPair(9, "$LUNITS"), core.NewInt16Pair(70, h.UnitFormat),
		core.NewStringPair(9, "$LUPREC"), core.NewInt16Pair(70, h.UnitPrecision),
		core.NewStringPair(9, "$CLAYER"), core.NewStringPair(8, h.CurrentLayer),
		core.NewStringPair(9, "$CELTYPE"), core.NewStringPair(6, h.CurrentLineType),
		core.NewStringPair(9, "$CECOLOR"), core.NewInt16Pair(62, h.CurrentColor),
		core.NewStringPair(9, "$LTSCALE"), core.NewDoublePair(40, h.LineTypeScale),
		core.NewStringPair(9, "$TEXTSIZE"), core.NewDoublePair(40, h.DefaultTextHeight),
		core.NewStringPair(9, "$FILLMODE"), core.NewInt16Pair(70, boolInt16(h.FillMode)),
	)
	return writePairs(w, pairs)
}

func appendPointVariable(pairs []core.CodePair, name string, p Point) []core.CodePair {
	return append(pairs,
		core.NewStringPair(9, name),
		core.NewDoublePair(10, p.X),
		core.NewDoublePair(20, p.Y),
		core.NewDoublePair(30, p.Z),
	)
}

func boolInt16(b bool) int16 {
	if b {
		return 1
	}
	return 0
}

func writePairs(w core.PairWriter, pairs []core.CodePair) error {
	for _, p := range pairs {
		if err := w.Write(p); err != nil {
			return err
		}
	}
	return nil
}

// nextString reads one pair and returns its string value.
func nextString(c *core.Cursor) (string, error) {
	pair, err := c.Next()
	if err != nil {
		if err == io.EOF {
			return "", core.ErrUnexpectedEndOfInput
		}
		return "", err
	}
	return pair.AsString()
}

func nextInt16(c *core.Cursor) (int16, error) {
	pair, err := c.Next()
	if err != nil {
		if err == io.EOF {
			return 0, core.ErrUnexpectedEndOfInput
		}
		return 0, err
	}
	return pair.AsInt16()
}

func nextDouble(c *core.Cursor) (float64, error) {
	pair, err := c.Next()
	if err != nil {
		if err == io.EOF {
			return 0, core.ErrUnexpectedEndOfInput
		}
		return 0, err
	}
	return pair.AsDouble()
}

func nextBool(c *core.Cursor) (bool, error) {
	pair, err := c.Next()
	if err != nil {
		if err == io.EOF {
			return false, core.ErrUnexpectedEndOfInput
		}
		return false, err
	}
	return pair.AsBool()
}
