package model

import "github.com/tr3ysmith/dxf/core"

// Block is a named group of entities from the BLOCKS section, framed by
// 0/BLOCK ... 0/ENDBLK on the wire.
type Block struct {
	Handle    string // code 5
	Layer     string // code 8
	Name      string // codes 2 and 3
	Flags     int16  // code 70
	BasePoint Point  // code 10
	XrefPath  string // code 1

	Entities []Entity
}

// ApplyHeaderField applies one code pair of the block's header, the run
// of pairs between the 0/BLOCK marker and the first contained entity.
func (b *Block) ApplyHeaderField(p core.CodePair) error {
	var err error
	switch p.Code {
	case 5:
		b.Handle, err = p.AsString()
	case 8:
		b.Layer, err = p.AsString()
	case 2, 3:
		b.Name, err = p.AsString()
	case 70:
		b.Flags, err = p.AsInt16()
	case 1:
		b.XrefPath, err = p.AsString()
	default:
		return applyPoints(p, []pointField{{10, &b.BasePoint}})
	}
	return err
}

// Write emits the block: marker, header fields, contained entities, and
// the closing ENDBLK.
func (b *Block) Write(w core.PairWriter, writeHandles bool) error {
	if err := w.Write(core.NewStringPair(0, "BLOCK")); err != nil {
		return err
	}
	if writeHandles && b.Handle != "" {
		if err := w.Write(core.NewStringPair(5, b.Handle)); err != nil {
			return err
		}
	}
	pairs := []core.CodePair{
		core.NewStringPair(8, b.Layer),
		core.NewStringPair(2, b.Name),
		core.NewInt16Pair(70, b.Flags),
	}
	pairs = append(pairs, pointPairs(10, b.BasePoint)...)
	pairs = append(pairs,
		core.NewStringPair(3, b.Name),
		core.NewStringPair(1, b.XrefPath),
	)
	if err := writePairs(w, pairs); err != nil {
		return err
	}
	for _, e := range b.Entities {
		if err := WriteEntity(e, w, writeHandles); err != nil {
			return err
		}
	}
	return w.Write(core.NewStringPair(0, "ENDBLK"))
}
