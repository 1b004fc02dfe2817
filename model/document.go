package model

// Document represents a complete drawing. It owns a header and ordered
// collections of classes, table records, blocks, entities, and objects,
// plus an optional thumbnail buffer. Collections preserve read/insertion
// order; uniqueness of named records is the producer's responsibility.
type Document struct {
	Header Header

	Classes []Class

	// Named-object tables, in the canonical TABLES section order.
	AppIDs       []*AppID
	BlockRecords []*BlockRecord
	DimStyles    []*DimStyle
	Layers       []*Layer
	LineTypes    []*LineType
	Styles       []*Style
	UCSs         []*UCS
	Views        []*View
	Viewports    []*Viewport

	Blocks   []*Block
	Entities []Entity
	Objects  []Object

	// Thumbnail is the raw bitmap buffer, including the synthesized
	// 14-byte file header. Nil when the drawing has no preview.
	Thumbnail []byte
}

// NewDocument creates an empty document with a default header.
func NewDocument() *Document {
	return &Document{Header: DefaultHeader()}
}

// AddEntity appends an entity to the document.
func (d *Document) AddEntity(e Entity) {
	d.Entities = append(d.Entities, e)
}

// AddObject appends a nongraphical object to the document.
func (d *Document) AddObject(o Object) {
	d.Objects = append(d.Objects, o)
}

// LayerByName returns the first layer with the given name, or nil.
func (d *Document) LayerByName(name string) *Layer {
	for _, l := range d.Layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// BlockByName returns the first block with the given name, or nil.
func (d *Document) BlockByName(name string) *Block {
	for _, b := range d.Blocks {
		if b.Name == name {
			return b
		}
	}
	return nil
}
