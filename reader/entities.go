package reader

import (
	"io"

	"github.com/tr3ysmith/dxf/core"
	"github.com/tr3ysmith/dxf/model"
)

// readEntitySequence consumes a run of entities, stopping just before
// the first 0-code marker that is not an entity start (ENDSEC inside the
// ENTITIES section, ENDBLK inside a block). Entity types the library
// does not model are skipped pair by pair.
func (s *sectionReader) readEntitySequence() ([]model.Entity, error) {
	var entities []model.Entity
	for {
		pair, err := s.cursor.Next()
		if err != nil {
			if err == io.EOF {
				return entities, nil
			}
			return nil, err
		}
		if pair.Code != 0 {
			return nil, core.PairError(pair, "expected 0/<entity-type>")
		}
		name, err := pair.AsString()
		if err != nil {
			return nil, err
		}
		if name == "ENDSEC" || name == "ENDBLK" {
			s.cursor.PushBack(pair)
			return entities, nil
		}
		e := model.NewEntity(name)
		if e == nil {
			if err := s.swallowItem(); err != nil {
				return nil, err
			}
			continue
		}
		if err := model.ReadEntityFields(e, s.cursor); err != nil {
			return nil, err
		}
		if pl, ok := e.(*model.Polyline); ok {
			if err := s.readVertices(pl); err != nil {
				return nil, err
			}
		}
		entities = append(entities, e)
	}
}

// readVertices collects the VERTEX records following a POLYLINE marker,
// consuming the closing SEQEND. A terminating marker that arrives
// without a SEQEND is pushed back and the polyline kept as read.
func (s *sectionReader) readVertices(pl *model.Polyline) error {
	for {
		pair, err := s.cursor.Next()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if pair.Code != 0 {
			return core.PairError(pair, "expected 0/VERTEX or 0/SEQEND")
		}
		name, err := pair.AsString()
		if err != nil {
			return err
		}
		switch name {
		case "VERTEX":
			v := &model.Vertex{}
			if err := model.ReadVertexFields(v, s.cursor); err != nil {
				return err
			}
			pl.Vertices = append(pl.Vertices, v)
		case "SEQEND":
			return s.swallowItem()
		default:
			s.cursor.PushBack(pair)
			return nil
		}
	}
}

// readObjectSequence is the OBJECTS-section counterpart of
// readEntitySequence.
func (s *sectionReader) readObjectSequence() ([]model.Object, error) {
	var objects []model.Object
	for {
		pair, err := s.cursor.Next()
		if err != nil {
			if err == io.EOF {
				return objects, nil
			}
			return nil, err
		}
		if pair.Code != 0 {
			return nil, core.PairError(pair, "expected 0/<object-type>")
		}
		name, err := pair.AsString()
		if err != nil {
			return nil, err
		}
		if name == "ENDSEC" {
			s.cursor.PushBack(pair)
			return objects, nil
		}
		o := model.NewObject(name)
		if o == nil {
			if err := s.swallowItem(); err != nil {
				return nil, err
			}
			continue
		}
		if err := model.ReadObjectFields(o, s.cursor); err != nil {
			return nil, err
		}
		objects = append(objects, o)
	}
}

// readBlock reads one block of the BLOCKS section. The 0/BLOCK marker
// has already been consumed by the repeated-item loop; readBlock
// consumes through the closing ENDBLK and its trailing fields.
func (s *sectionReader) readBlock() error {
	b := &model.Block{}
	for {
		pair, err := s.cursor.Next()
		if err != nil {
			if err == io.EOF {
				return core.ErrUnexpectedEndOfInput
			}
			return err
		}
		if pair.Code == 0 {
			s.cursor.PushBack(pair)
			break
		}
		if err := b.ApplyHeaderField(pair); err != nil {
			return err
		}
	}

	entities, err := s.readEntitySequence()
	if err != nil {
		return err
	}
	b.Entities = entities

	endPair, err := s.cursor.Next()
	if err != nil {
		if err == io.EOF {
			return core.ErrUnexpectedEndOfInput
		}
		return err
	}
	if !endPair.IsMarker("ENDBLK") {
		return core.PairError(endPair, "expected 0/ENDBLK")
	}
	if err := s.swallowItem(); err != nil {
		return err
	}
	s.doc.Blocks = append(s.doc.Blocks, b)
	return nil
}
