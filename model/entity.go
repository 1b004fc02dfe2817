package model

import "github.com/tr3ysmith/dxf/core"

// Entity is a graphical drawing element. The set of kinds is closed;
// entity types the library does not model are skipped on read, the same
// forward-compatibility stance taken for unknown sections.
type Entity interface {
	// TypeName returns the 0-code marker value of the entity (e.g. "LINE").
	TypeName() string
	// Common returns the fields shared by every entity kind.
	Common() *EntityCommon

	// applyField applies one kind-specific code pair; unknown codes are
	// ignored.
	applyField(p core.CodePair) error
	// ownFields returns the kind-specific pairs for writing.
	ownFields() []core.CodePair
}

// EntityCommon holds the fields shared by every entity kind.
type EntityCommon struct {
	Handle        string  // code 5
	Layer         string  // code 8
	LineType      string  // code 6
	Color         int16   // code 62
	LineTypeScale float64 // code 48
	Invisible     bool    // code 60
}

func (c *EntityCommon) Common() *EntityCommon { return c }

// applyCommonField applies one shared code pair; it reports whether the
// code belonged to the common set.
func (c *EntityCommon) applyCommonField(p core.CodePair) (bool, error) {
	var err error
	switch p.Code {
	case 5:
		c.Handle, err = p.AsString()
	case 8:
		c.Layer, err = p.AsString()
	case 6:
		c.LineType, err = p.AsString()
	case 62:
		c.Color, err = p.AsInt16()
	case 48:
		c.LineTypeScale, err = p.AsDouble()
	case 60:
		var v int16
		if v, err = p.AsInt16(); err == nil {
			c.Invisible = v != 0
		}
	default:
		return false, nil
	}
	return true, err
}

func (c *EntityCommon) commonFields(writeHandles bool) []core.CodePair {
	var pairs []core.CodePair
	if writeHandles && c.Handle != "" {
		pairs = append(pairs, core.NewStringPair(5, c.Handle))
	}
	pairs = append(pairs,
		core.NewStringPair(8, c.Layer),
		core.NewStringPair(6, c.LineType),
		core.NewInt16Pair(62, c.Color),
	)
	if c.LineTypeScale != 0 {
		pairs = append(pairs, core.NewDoublePair(48, c.LineTypeScale))
	}
	if c.Invisible {
		pairs = append(pairs, core.NewInt16Pair(60, 1))
	}
	return pairs
}

// Line is a LINE entity.
type Line struct {
	EntityCommon
	P1        Point   // code 10
	P2        Point   // code 11
	Thickness float64 // code 39
}

func (l *Line) TypeName() string { return "LINE" }

func (l *Line) applyField(p core.CodePair) error {
	if p.Code == 39 {
		v, err := p.AsDouble()
		l.Thickness = v
		return err
	}
	return applyPoints(p, []pointField{{10, &l.P1}, {11, &l.P2}})
}

func (l *Line) ownFields() []core.CodePair {
	pairs := pointPairs(10, l.P1)
	pairs = append(pairs, pointPairs(11, l.P2)...)
	return append(pairs, core.NewDoublePair(39, l.Thickness))
}

// ModelPoint is a POINT entity.
type ModelPoint struct {
	EntityCommon
	Location  Point   // code 10
	Thickness float64 // code 39
}

func (m *ModelPoint) TypeName() string { return "POINT" }

func (m *ModelPoint) applyField(p core.CodePair) error {
	if p.Code == 39 {
		v, err := p.AsDouble()
		m.Thickness = v
		return err
	}
	return applyPoints(p, []pointField{{10, &m.Location}})
}

func (m *ModelPoint) ownFields() []core.CodePair {
	return append(pointPairs(10, m.Location), core.NewDoublePair(39, m.Thickness))
}

// Circle is a CIRCLE entity.
type Circle struct {
	EntityCommon
	Center    Point   // code 10
	Radius    float64 // code 40
	Thickness float64 // code 39
}

func (c *Circle) TypeName() string { return "CIRCLE" }

func (c *Circle) applyField(p core.CodePair) error {
	var err error
	switch p.Code {
	case 40:
		c.Radius, err = p.AsDouble()
	case 39:
		c.Thickness, err = p.AsDouble()
	default:
		return applyPoints(p, []pointField{{10, &c.Center}})
	}
	return err
}

func (c *Circle) ownFields() []core.CodePair {
	return append(pointPairs(10, c.Center),
		core.NewDoublePair(40, c.Radius),
		core.NewDoublePair(39, c.Thickness))
}

// Arc is an ARC entity.
type Arc struct {
	EntityCommon
	Center     Point   // code 10
	Radius     float64 // code 40
	StartAngle float64 // code 50
	EndAngle   float64 // code 51
}

func (a *Arc) TypeName() string { return "ARC" }

func (a *Arc) applyField(p core.CodePair) error {
	var err error
	switch p.Code {
	case 40:
		a.Radius, err = p.AsDouble()
	case 50:
		a.StartAngle, err = p.AsDouble()
	case 51:
		a.EndAngle, err = p.AsDouble()
	default:
		return applyPoints(p, []pointField{{10, &a.Center}})
	}
	return err
}

func (a *Arc) ownFields() []core.CodePair {
	return append(pointPairs(10, a.Center),
		core.NewDoublePair(40, a.Radius),
		core.NewDoublePair(50, a.StartAngle),
		core.NewDoublePair(51, a.EndAngle))
}

// Text is a TEXT entity.
type Text struct {
	EntityCommon
	Location Point   // code 10
	Height   float64 // code 40
	Value    string  // code 1
	Rotation float64 // code 50
}

func (t *Text) TypeName() string { return "TEXT" }

func (t *Text) applyField(p core.CodePair) error {
	var err error
	switch p.Code {
	case 40:
		t.Height, err = p.AsDouble()
	case 1:
		t.Value, err = p.AsString()
	case 50:
		t.Rotation, err = p.AsDouble()
	default:
		return applyPoints(p, []pointField{{10, &t.Location}})
	}
	return err
}

func (t *Text) ownFields() []core.CodePair {
	return append(pointPairs(10, t.Location),
		core.NewDoublePair(40, t.Height),
		core.NewStringPair(1, t.Value),
		core.NewDoublePair(50, t.Rotation))
}

// Solid is a SOLID entity: a filled quadrilateral.
type Solid struct {
	EntityCommon
	Corner1 Point // code 10
	Corner2 Point // code 11
	Corner3 Point // code 12
	Corner4 Point // code 13
}

func (s *Solid) TypeName() string { return "SOLID" }

func (s *Solid) applyField(p core.CodePair) error {
	return applyPoints(p, []pointField{
		{10, &s.Corner1}, {11, &s.Corner2}, {12, &s.Corner3}, {13, &s.Corner4},
	})
}

func (s *Solid) ownFields() []core.CodePair {
	pairs := pointPairs(10, s.Corner1)
	pairs = append(pairs, pointPairs(11, s.Corner2)...)
	pairs = append(pairs, pointPairs(12, s.Corner3)...)
	return append(pairs, pointPairs(13, s.Corner4)...)
}

// Vertex is one vertex of a Polyline. On the wire it is a VERTEX record
// between the POLYLINE marker and the closing SEQEND.
type Vertex struct {
	Location Point   // code 10
	Bulge    float64 // code 42
	Flags    int16   // code 70
}

func (v *Vertex) applyField(p core.CodePair) error {
	var err error
	switch p.Code {
	case 42:
		v.Bulge, err = p.AsDouble()
	case 70:
		v.Flags, err = p.AsInt16()
	default:
		return applyPoints(p, []pointField{{10, &v.Location}})
	}
	return err
}

// Polyline is a POLYLINE entity together with its VERTEX records.
type Polyline struct {
	EntityCommon
	Flags     int16 // code 70
	Elevation Point // code 10
	Vertices  []*Vertex
}

func (pl *Polyline) TypeName() string { return "POLYLINE" }

func (pl *Polyline) applyField(p core.CodePair) error {
	switch p.Code {
	case 70:
		v, err := p.AsInt16()
		pl.Flags = v
		return err
	case 66:
		// vertices-follow flag; implied by the vertex list
		return nil
	}
	return applyPoints(p, []pointField{{10, &pl.Elevation}})
}

func (pl *Polyline) ownFields() []core.CodePair {
	pairs := []core.CodePair{
		core.NewInt16Pair(66, 1),
		core.NewInt16Pair(70, pl.Flags),
	}
	return append(pairs, pointPairs(10, pl.Elevation)...)
}

// NewEntity creates an empty entity of the named wire type, or nil for
// types the library does not model.
func NewEntity(typeName string) Entity {
	switch typeName {
	case "LINE":
		return &Line{}
	case "POINT":
		return &ModelPoint{}
	case "CIRCLE":
		return &Circle{}
	case "ARC":
		return &Arc{}
	case "TEXT":
		return &Text{}
	case "SOLID":
		return &Solid{}
	case "POLYLINE":
		return &Polyline{}
	default:
		return nil
	}
}

// ReadEntityFields consumes the field pairs of one entity, stopping
// before the next 0-code marker. Codes neither common nor kind-specific
// are ignored.
func ReadEntityFields(e Entity, c *core.Cursor) error {
	return readRecordFields(c, func(p core.CodePair) error {
		handled, err := e.Common().applyCommonField(p)
		if err != nil || handled {
			return err
		}
		return e.applyField(p)
	})
}

// ReadVertexFields consumes the field pairs of one VERTEX record.
func ReadVertexFields(v *Vertex, c *core.Cursor) error {
	return readRecordFields(c, v.applyField)
}

// WriteEntity emits one entity: the 0-code marker, the common fields,
// and the kind-specific fields. A Polyline additionally emits its VERTEX
// records and the closing SEQEND.
func WriteEntity(e Entity, w core.PairWriter, writeHandles bool) error {
	if err := w.Write(core.NewStringPair(0, e.TypeName())); err != nil {
		return err
	}
	if err := writePairs(w, e.Common().commonFields(writeHandles)); err != nil {
		return err
	}
	if err := writePairs(w, e.ownFields()); err != nil {
		return err
	}
	if pl, ok := e.(*Polyline); ok {
		for _, v := range pl.Vertices {
			if err := w.Write(core.NewStringPair(0, "VERTEX")); err != nil {
				return err
			}
			if err := writePairs(w, pointPairs(10, v.Location)); err != nil {
				return err
			}
			if err := writePairs(w, []core.CodePair{
				core.NewDoublePair(42, v.Bulge),
				core.NewInt16Pair(70, v.Flags),
			}); err != nil {
				return err
			}
		}
		if err := w.Write(core.NewStringPair(0, "SEQEND")); err != nil {
			return err
		}
	}
	return nil
}

func pointPairs(base int, p Point) []core.CodePair {
	return []core.CodePair{
		core.NewDoublePair(base, p.X),
		core.NewDoublePair(base+10, p.Y),
		core.NewDoublePair(base+20, p.Z),
	}
}
