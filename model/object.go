package model

import "github.com/tr3ysmith/dxf/core"

// Object is a nongraphical drawing object from the OBJECTS section. Like
// entities, the set of kinds is closed and unknown types are skipped on
// read.
type Object interface {
	// TypeName returns the 0-code marker value of the object.
	TypeName() string
	// Handle returns the object's handle, empty if it has none.
	Handle() string

	applyField(p core.CodePair) error
	fields() []core.CodePair
}

// DictionaryEntry is one name/handle pair of a Dictionary.
type DictionaryEntry struct {
	Name   string // code 3
	Handle string // code 350
}

// Dictionary is a DICTIONARY object: an ordered list of named references
// to other objects.
type Dictionary struct {
	DictHandle         string // code 5
	HardOwner          bool   // code 280
	DuplicateCloneFlag int16  // code 281
	Entries            []DictionaryEntry
}

func (d *Dictionary) TypeName() string { return "DICTIONARY" }
func (d *Dictionary) Handle() string   { return d.DictHandle }

func (d *Dictionary) applyField(p core.CodePair) error {
	var err error
	switch p.Code {
	case 5:
		d.DictHandle, err = p.AsString()
	case 280:
		d.HardOwner, err = p.AsBool()
	case 281:
		d.DuplicateCloneFlag, err = p.AsInt16()
	case 3:
		var name string
		if name, err = p.AsString(); err == nil {
			d.Entries = append(d.Entries, DictionaryEntry{Name: name})
		}
	case 350:
		var handle string
		if handle, err = p.AsString(); err == nil && len(d.Entries) > 0 {
			d.Entries[len(d.Entries)-1].Handle = handle
		}
	}
	return err
}

func (d *Dictionary) fields() []core.CodePair {
	var pairs []core.CodePair
	if d.DictHandle != "" {
		pairs = append(pairs, core.NewStringPair(5, d.DictHandle))
	}
	pairs = append(pairs,
		core.NewInt16Pair(280, boolInt16(d.HardOwner)),
		core.NewInt16Pair(281, d.DuplicateCloneFlag),
	)
	for _, e := range d.Entries {
		pairs = append(pairs,
			core.NewStringPair(3, e.Name),
			core.NewStringPair(350, e.Handle),
		)
	}
	return pairs
}

// Placeholder is an ACDBPLACEHOLDER object.
type Placeholder struct {
	ObjHandle string // code 5
}

func (p *Placeholder) TypeName() string { return "ACDBPLACEHOLDER" }
func (p *Placeholder) Handle() string   { return p.ObjHandle }

func (p *Placeholder) applyField(pair core.CodePair) error {
	if pair.Code == 5 {
		h, err := pair.AsString()
		p.ObjHandle = h
		return err
	}
	return nil
}

func (p *Placeholder) fields() []core.CodePair {
	if p.ObjHandle != "" {
		return []core.CodePair{core.NewStringPair(5, p.ObjHandle)}
	}
	return nil
}

// NewObject creates an empty object of the named wire type, or nil for
// types the library does not model.
func NewObject(typeName string) Object {
	switch typeName {
	case "DICTIONARY":
		return &Dictionary{}
	case "ACDBPLACEHOLDER":
		return &Placeholder{}
	default:
		return nil
	}
}

// ReadObjectFields consumes the field pairs of one object, stopping
// before the next 0-code marker.
func ReadObjectFields(o Object, c *core.Cursor) error {
	return readRecordFields(c, o.applyField)
}

// WriteObject emits one object. Object handles are not subject to the
// write-handles gate; they are written whenever present.
func WriteObject(o Object, w core.PairWriter) error {
	if err := w.Write(core.NewStringPair(0, o.TypeName())); err != nil {
		return err
	}
	return writePairs(w, o.fields())
}
