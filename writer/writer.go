// Package writer saves drawings in the text and binary DXF encodings.
// It owns section framing, the canonical section order, and the
// version-conditional inclusion rules; record payloads come from the
// codecs in package model.
package writer

import (
	"io"

	"github.com/tr3ysmith/dxf/core"
	"github.com/tr3ysmith/dxf/model"
)

// pairStreamWriter is the writer-side entry contract both pair codecs
// satisfy.
type pairStreamWriter interface {
	core.PairWriter
	WritePrelude() error
	Flush() error
}

// Save writes the document to w in the text encoding.
func Save(doc *model.Document, w io.Writer) error {
	tw := core.NewTextWriter(w)
	if !doc.Header.Version.IsUnicode() {
		tw.SetCodePage(doc.Header.CodePage)
	}
	return save(doc, tw)
}

// SaveBinary writes the document to w in the binary encoding.
func SaveBinary(doc *model.Document, w io.Writer) error {
	return save(doc, core.NewBinaryWriter(w))
}

// save emits the sections in canonical order: HEADER, CLASSES (omitted
// when empty), TABLES, BLOCKS (omitted when empty), ENTITIES, OBJECTS,
// THUMBNAILIMAGE (version-gated), then the terminating 0/EOF.
func save(doc *model.Document, w pairStreamWriter) error {
	if err := w.WritePrelude(); err != nil {
		return err
	}

	if err := writeSection(w, "HEADER", func() error {
		return doc.Header.Write(w)
	}); err != nil {
		return err
	}

	// The one cross-cutting version/feature gate: handles are written at
	// R13 and later, or whenever the header opts in.
	writeHandles := doc.Header.Version.SupportsHandles() || doc.Header.HandlesEnabled

	if len(doc.Classes) > 0 {
		if err := writeSection(w, "CLASSES", func() error {
			for _, cls := range doc.Classes {
				if err := cls.Write(w, doc.Header.Version); err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			return err
		}
	}

	if err := writeSection(w, "TABLES", func() error {
		return model.WriteTables(doc, w, writeHandles)
	}); err != nil {
		return err
	}

	if len(doc.Blocks) > 0 {
		if err := writeSection(w, "BLOCKS", func() error {
			for _, b := range doc.Blocks {
				if err := b.Write(w, writeHandles); err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			return err
		}
	}

	if err := writeSection(w, "ENTITIES", func() error {
		for _, e := range doc.Entities {
			if err := model.WriteEntity(e, w, writeHandles); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	if err := writeSection(w, "OBJECTS", func() error {
		for _, o := range doc.Objects {
			if err := model.WriteObject(o, w); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	if doc.Header.Version.SupportsThumbnail() && doc.Thumbnail != nil {
		if err := writeSection(w, "THUMBNAILIMAGE", func() error {
			return writeThumbnail(doc.Thumbnail, w)
		}); err != nil {
			return err
		}
	}

	if err := w.Write(core.NewStringPair(0, "EOF")); err != nil {
		return err
	}
	return w.Flush()
}

// writeSection frames one section; sub-writers never emit framing
// themselves.
func writeSection(w core.PairWriter, name string, body func() error) error {
	if err := w.Write(core.NewStringPair(0, "SECTION")); err != nil {
		return err
	}
	if err := w.Write(core.NewStringPair(2, name)); err != nil {
		return err
	}
	if err := body(); err != nil {
		return err
	}
	return w.Write(core.NewStringPair(0, "ENDSEC"))
}
