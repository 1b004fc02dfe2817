package model

import (
	"io"

	"github.com/tr3ysmith/dxf/core"
)

// Table record kinds. Each table in the TABLES section is framed by
// 0/TABLE, 2/<name> ... 0/ENDTAB and holds records whose leading marker
// repeats the table name.

// AppID is an application-ID table record.
type AppID struct {
	Handle string
	Name   string
	Flags  int16
}

// BlockRecord is a block-record table record.
type BlockRecord struct {
	Handle string
	Name   string
	Flags  int16
}

// DimStyle is a dimension-style table record. Its handle uses group
// code 105 rather than 5.
type DimStyle struct {
	Handle          string
	Name            string
	Flags           int16
	DimensionPrefix string  // code 3
	Scale           float64 // code 40
	TextHeight      float64 // code 140
}

// Layer is a layer table record.
type Layer struct {
	Handle   string
	Name     string
	Flags    int16
	Color    int16  // code 62
	LineType string // code 6
}

// LineType is a line-type table record.
type LineType struct {
	Handle             string
	Name               string
	Flags              int16
	Description        string    // code 3
	TotalPatternLength float64   // code 40
	ElementLengths     []float64 // code 49, repeated
}

// Style is a text-style table record.
type Style struct {
	Handle       string
	Name         string
	Flags        int16
	TextHeight   float64 // code 40
	WidthFactor  float64 // code 41
	ObliqueAngle float64 // code 50
	FontName     string  // code 3
}

// UCS is a user-coordinate-system table record.
type UCS struct {
	Handle string
	Name   string
	Flags  int16
	Origin Point // code 10
	XAxis  Point // code 11
	YAxis  Point // code 12
}

// View is a view table record.
type View struct {
	Handle    string
	Name      string
	Flags     int16
	Height    float64 // code 40
	Width     float64 // code 41
	Center    Point   // code 10
	Direction Point   // code 11
}

// Viewport is a viewport table record.
type Viewport struct {
	Handle      string
	Name        string
	Flags       int16
	LowerLeft   Point   // code 10
	UpperRight  Point   // code 11
	Center      Point   // code 12
	Height      float64 // code 40
	AspectRatio float64 // code 41
}

// ReadTable reads one table of the TABLES section. The caller has
// already consumed the 0/TABLE marker; ReadTable consumes through the
// matching 0/ENDTAB. Tables with unrecognized names are swallowed.
func ReadTable(doc *Document, c *core.Cursor) error {
	pair, err := c.Next()
	if err != nil {
		if err == io.EOF {
			return core.ErrUnexpectedEndOfInput
		}
		return err
	}
	if pair.Code != 2 {
		return core.PairError(pair, "expected 2/<table-name>")
	}
	name, err := pair.AsString()
	if err != nil {
		return err
	}

	switch name {
	case "APPID":
		return readRecords(c, name, func(p core.CodePair) error {
			rec := &AppID{}
			doc.AppIDs = append(doc.AppIDs, rec)
			return readRecordFields(c, func(p core.CodePair) error {
				return applyCommon(p, &rec.Handle, &rec.Name, &rec.Flags)
			})
		})
	case "BLOCK_RECORD":
		return readRecords(c, name, func(p core.CodePair) error {
			rec := &BlockRecord{}
			doc.BlockRecords = append(doc.BlockRecords, rec)
			return readRecordFields(c, func(p core.CodePair) error {
				return applyCommon(p, &rec.Handle, &rec.Name, &rec.Flags)
			})
		})
	case "DIMSTYLE":
		return readRecords(c, name, func(p core.CodePair) error {
			rec := &DimStyle{}
			doc.DimStyles = append(doc.DimStyles, rec)
			return readRecordFields(c, func(p core.CodePair) error {
				var err error
				switch p.Code {
				case 105:
					rec.Handle, err = p.AsString()
				case 2:
					rec.Name, err = p.AsString()
				case 70:
					rec.Flags, err = p.AsInt16()
				case 3:
					rec.DimensionPrefix, err = p.AsString()
				case 40:
					rec.Scale, err = p.AsDouble()
				case 140:
					rec.TextHeight, err = p.AsDouble()
				}
				return err
			})
		})
	case "LAYER":
		return readRecords(c, name, func(p core.CodePair) error {
			rec := &Layer{}
			doc.Layers = append(doc.Layers, rec)
			return readRecordFields(c, func(p core.CodePair) error {
				if err := applyCommon(p, &rec.Handle, &rec.Name, &rec.Flags); err != nil {
					return err
				}
				var err error
				switch p.Code {
				case 62:
					rec.Color, err = p.AsInt16()
				case 6:
					rec.LineType, err = p.AsString()
				}
				return err
			})
		})
	case "LTYPE":
		return readRecords(c, name, func(p core.CodePair) error {
			rec := &LineType{}
			doc.LineTypes = append(doc.LineTypes, rec)
			return readRecordFields(c, func(p core.CodePair) error {
				if err := applyCommon(p, &rec.Handle, &rec.Name, &rec.Flags); err != nil {
					return err
				}
				var err error
				switch p.Code {
				case 3:
					rec.Description, err = p.AsString()
				case 40:
					rec.TotalPatternLength, err = p.AsDouble()
				case 49:
					var v float64
					if v, err = p.AsDouble(); err == nil {
						rec.ElementLengths = append(rec.ElementLengths, v)
					}
				}
				return err
			})
		})
	case "STYLE":
		return readRecords(c, name, func(p core.CodePair) error {
			rec := &Style{}
			doc.Styles = append(doc.Styles, rec)
			return readRecordFields(c, func(p core.CodePair) error {
				if err := applyCommon(p, &rec.Handle, &rec.Name, &rec.Flags); err != nil {
					return err
				}
				var err error
				switch p.Code {
				case 40:
					rec.TextHeight, err = p.AsDouble()
				case 41:
					rec.WidthFactor, err = p.AsDouble()
				case 50:
					rec.ObliqueAngle, err = p.AsDouble()
				case 3:
					rec.FontName, err = p.AsString()
				}
				return err
			})
		})
	case "UCS":
		return readRecords(c, name, func(p core.CodePair) error {
			rec := &UCS{}
			doc.UCSs = append(doc.UCSs, rec)
			return readRecordFields(c, func(p core.CodePair) error {
				if err := applyCommon(p, &rec.Handle, &rec.Name, &rec.Flags); err != nil {
					return err
				}
				return applyPoints(p, []pointField{
					{10, &rec.Origin}, {11, &rec.XAxis}, {12, &rec.YAxis},
				})
			})
		})
	case "VIEW":
		return readRecords(c, name, func(p core.CodePair) error {
			rec := &View{}
			doc.Views = append(doc.Views, rec)
			return readRecordFields(c, func(p core.CodePair) error {
				if err := applyCommon(p, &rec.Handle, &rec.Name, &rec.Flags); err != nil {
					return err
				}
				var err error
				switch p.Code {
				case 40:
					rec.Height, err = p.AsDouble()
				case 41:
					rec.Width, err = p.AsDouble()
				default:
					return applyPoints(p, []pointField{
						{10, &rec.Center}, {11, &rec.Direction},
					})
				}
				return err
			})
		})
	case "VPORT":
		return readRecords(c, name, func(p core.CodePair) error {
			rec := &Viewport{}
			doc.Viewports = append(doc.Viewports, rec)
			return readRecordFields(c, func(p core.CodePair) error {
				if err := applyCommon(p, &rec.Handle, &rec.Name, &rec.Flags); err != nil {
					return err
				}
				var err error
				switch p.Code {
				case 40:
					rec.Height, err = p.AsDouble()
				case 41:
					rec.AspectRatio, err = p.AsDouble()
				default:
					return applyPoints(p, []pointField{
						{10, &rec.LowerLeft}, {11, &rec.UpperRight}, {12, &rec.Center},
					})
				}
				return err
			})
		})
	default:
		return swallowTable(c)
	}
}

// readRecords loops over the records of one table, consuming the
// terminating 0/ENDTAB. Non-marker pairs before the first record (table
// handle, max record count) are ignored.
func readRecords(c *core.Cursor, recordName string, readOne func(core.CodePair) error) error {
	for {
		pair, err := c.Next()
		if err != nil {
			if err == io.EOF {
				return core.ErrUnexpectedEndOfInput
			}
			return err
		}
		if pair.Code != 0 {
			continue
		}
		value, err := pair.AsString()
		if err != nil {
			return err
		}
		switch value {
		case "ENDTAB":
			return nil
		case recordName:
			if err := readOne(pair); err != nil {
				return err
			}
		default:
			return core.PairError(pair, "expected 0/"+recordName+" or 0/ENDTAB")
		}
	}
}

// readRecordFields consumes the field pairs of one record, stopping
// before the next 0-code marker. Unknown codes are ignored by apply.
func readRecordFields(c *core.Cursor, apply func(core.CodePair) error) error {
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
		if err := apply(pair); err != nil {
			return err
		}
	}
}

func applyCommon(p core.CodePair, handle, name *string, flags *int16) error {
	var err error
	switch p.Code {
	case 5:
		*handle, err = p.AsString()
	case 2:
		*name, err = p.AsString()
	case 70:
		*flags, err = p.AsInt16()
	}
	return err
}

type pointField struct {
	base int
	p    *Point
}

func applyPoints(pair core.CodePair, fields []pointField) error {
	for _, f := range fields {
		if pair.Code == f.base || pair.Code == f.base+10 || pair.Code == f.base+20 {
			v, err := pair.AsDouble()
			if err != nil {
				return err
			}
			f.p.setCoord(pair.Code, f.base, v)
			return nil
		}
	}
	return nil
}

// swallowTable discards an unrecognized table, consuming its ENDTAB. A
// 0/TABLE or 0/ENDSEC marker encountered first is pushed back so the
// section loop can resume.
func swallowTable(c *core.Cursor) error {
	for {
		pair, err := c.Next()
		if err != nil {
			if err == io.EOF {
				return core.ErrUnexpectedEndOfInput
			}
			return err
		}
		if pair.Code != 0 {
			continue
		}
		value, err := pair.AsString()
		if err != nil {
			return err
		}
		switch value {
		case "ENDTAB":
			return nil
		case "TABLE", "ENDSEC":
			c.PushBack(pair)
			return nil
		}
	}
}
