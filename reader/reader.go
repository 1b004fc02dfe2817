package reader

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/tr3ysmith/dxf/core"
	"github.com/tr3ysmith/dxf/dxb"
	"github.com/tr3ysmith/dxf/format"
	"github.com/tr3ysmith/dxf/model"
)

// Load reads a drawing from r, detecting the encoding from the first
// line of input. The whole document is read in one pass; on any
// structural or I/O error the load is abandoned and the error returned.
func Load(r io.Reader) (*model.Document, error) {
	br := bufio.NewReader(r)
	firstLine, err := readFirstLine(br)
	if err != nil {
		return nil, err
	}

	var (
		src  core.PairReader
		text *core.TextReader
	)
	switch format.DetectFirstLine(firstLine) {
	case format.DXB:
		return dxb.NewReader(br).Read()
	case format.Binary:
		// skip the 0x1A 0x00 tail of the sentinel
		if _, err := br.Discard(2); err != nil {
			return nil, core.ErrUnexpectedEndOfInput
		}
		src = core.NewBinaryReader(br)
	default:
		text = core.NewTextReader(br, firstLine)
		src = text
	}

	cursor := core.NewCursor(src)
	doc := model.NewDocument()
	s := &sectionReader{cursor: cursor, doc: doc, text: text}
	if err := s.readSections(); err != nil {
		return nil, err
	}

	// A trailing 0/EOF was pushed back by the dispatcher; files that end
	// without one are tolerated, anything else is not.
	pair, err := cursor.Next()
	if err != nil {
		if err == io.EOF {
			return doc, nil
		}
		return nil, err
	}
	if !pair.IsMarker("EOF") {
		return nil, core.PairError(pair, "expected 0/EOF")
	}
	return doc, nil
}

// Open loads a drawing from a named file.
func Open(filename string) (*model.Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// readFirstLine consumes one line. An empty source is a fatal
// end-of-input: there is no drawing to disambiguate.
func readFirstLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			if line == "" {
				return "", core.ErrUnexpectedEndOfInput
			}
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// sectionReader drives the top-level section state machine.
type sectionReader struct {
	cursor *core.Cursor
	doc    *model.Document
	text   *core.TextReader // nil for binary input
}

// readSections consumes sections until 0/EOF (pushed back) or the end
// of the stream.
func (s *sectionReader) readSections() error {
	for {
		pair, err := s.cursor.Next()
		if err != nil {
			if err == io.EOF {
				// ideally this would have been 0/EOF
				return nil
			}
			return err
		}
		if pair.Code != 0 {
			return core.PairError(pair, "expected 0/SECTION or 0/EOF")
		}
		value, err := pair.AsString()
		if err != nil {
			return err
		}
		switch value {
		case "EOF":
			s.cursor.PushBack(pair)
			return nil
		case "SECTION":
			if err := s.readSection(); err != nil {
				return err
			}
		default:
			return core.PairError(pair, "expected 0/SECTION")
		}
	}
}

// readSection handles one SECTION: the 2/<name> marker, the dispatched
// body, and the closing 0/ENDSEC, which the dispatcher checks itself
// rather than trusting the handler.
func (s *sectionReader) readSection() error {
	namePair, err := s.cursor.Next()
	if err != nil {
		if err == io.EOF {
			return core.ErrUnexpectedEndOfInput
		}
		return err
	}
	if namePair.Code != 2 {
		return core.PairError(namePair, "expected 2/<section-name>")
	}
	name, err := namePair.AsString()
	if err != nil {
		return err
	}

	switch name {
	case "HEADER":
		if err := s.doc.Header.Read(s.cursor); err != nil {
			return err
		}
		// Strings after this point decode through the drawing's code
		// page for pre-Unicode versions.
		if s.text != nil && !s.doc.Header.Version.IsUnicode() {
			s.text.SetCodePage(s.doc.Header.CodePage)
		}
	case "CLASSES":
		classes, err := model.ReadClasses(s.cursor)
		if err != nil {
			return err
		}
		s.doc.Classes = append(s.doc.Classes, classes...)
	case "TABLES":
		if err := s.readSectionItems("TABLE", func() error {
			return model.ReadTable(s.doc, s.cursor)
		}); err != nil {
			return err
		}
	case "BLOCKS":
		if err := s.readSectionItems("BLOCK", func() error {
			return s.readBlock()
		}); err != nil {
			return err
		}
	case "ENTITIES":
		entities, err := s.readEntitySequence()
		if err != nil {
			return err
		}
		s.doc.Entities = append(s.doc.Entities, entities...)
	case "OBJECTS":
		objects, err := s.readObjectSequence()
		if err != nil {
			return err
		}
		s.doc.Objects = append(s.doc.Objects, objects...)
	case "THUMBNAILIMAGE":
		if err := s.readThumbnail(); err != nil {
			return err
		}
	default:
		if err := s.skipSection(); err != nil {
			return err
		}
	}

	endPair, err := s.cursor.Next()
	if err != nil {
		if err == io.EOF {
			return core.ErrUnexpectedEndOfInput
		}
		return err
	}
	if !endPair.IsMarker("ENDSEC") {
		return core.PairError(endPair, "expected 0/ENDSEC")
	}
	return nil
}

// readSectionItems is the generic repeated-item loop shared by the
// TABLES and BLOCKS sections: a run of homogeneously-typed items, each
// opened by a 0/<itemType> marker, bounded by the section's ENDSEC.
func (s *sectionReader) readSectionItems(itemType string, readOne func() error) error {
	for {
		pair, err := s.cursor.Next()
		if err != nil {
			if err == io.EOF {
				return core.ErrUnexpectedEndOfInput
			}
			return err
		}
		if pair.Code != 0 {
			return core.PairError(pair, "expected 0/"+itemType+" or 0/ENDSEC")
		}
		value, err := pair.AsString()
		if err != nil {
			return err
		}
		switch value {
		case "ENDSEC":
			s.cursor.PushBack(pair)
			return nil
		case itemType:
			if err := readOne(); err != nil {
				return err
			}
		default:
			return core.PairError(pair, "expected 0/"+itemType+" or 0/ENDSEC")
		}
	}
}

// skipSection discards an unrecognized section's pairs, preserving
// forward compatibility with newer format revisions. The ENDSEC marker
// is pushed back for the dispatcher's framing check.
func (s *sectionReader) skipSection() error {
	for {
		pair, err := s.cursor.Next()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if pair.IsMarker("ENDSEC") {
			s.cursor.PushBack(pair)
			return nil
		}
	}
}

// swallowItem discards pairs up to the next 0-code marker, which is
// pushed back.
func (s *sectionReader) swallowItem() error {
	for {
		pair, err := s.cursor.Next()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if pair.Code == 0 {
			s.cursor.PushBack(pair)
			return nil
		}
	}
}
