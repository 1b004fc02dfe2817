package reader

import (
	"encoding/binary"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/tr3ysmith/dxf/core"
	"github.com/tr3ysmith/dxf/model"
)

// dxfText joins alternating code and value lines into a text DXF stream.
func dxfText(lines ...string) string {
	return strings.Join(lines, "\r\n") + "\r\n"
}

func load(t *testing.T, lines ...string) *model.Document {
	t.Helper()
	doc, err := Load(strings.NewReader(dxfText(lines...)))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	return doc
}

func TestLoad_MinimalDocument(t *testing.T) {
	doc := load(t,
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "ENDSEC",
		"0", "EOF",
	)

	if len(doc.Entities) != 0 {
		t.Errorf("Entities count = %d, want 0", len(doc.Entities))
	}
	if doc.Header.Version != model.R12 {
		t.Errorf("Version = %s, want the R12 default", doc.Header.Version)
	}
}

func TestLoad_EmptyInput(t *testing.T) {
	if _, err := Load(strings.NewReader("")); !errors.Is(err, core.ErrUnexpectedEndOfInput) {
		t.Errorf("Load(empty) = %v, want ErrUnexpectedEndOfInput", err)
	}
}

func TestLoad_MissingTrailingEOF(t *testing.T) {
	doc := load(t,
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "ENDSEC",
	)
	if len(doc.Entities) != 0 {
		t.Errorf("Entities count = %d, want 0", len(doc.Entities))
	}
}

func TestLoad_HeaderVariables(t *testing.T) {
	doc := load(t,
		"0", "SECTION",
		"2", "HEADER",
		"9", "$ACADVER",
		"1", "AC1015",
		"9", "$CLAYER",
		"8", "walls",
		"9", "$EXTMIN",
		"10", "-2.0",
		"20", "-3.0",
		"30", "0.0",
		"0", "ENDSEC",
		"0", "EOF",
	)

	if doc.Header.Version != model.R2000 {
		t.Errorf("Version = %s, want R2000", doc.Header.Version)
	}
	if doc.Header.CurrentLayer != "walls" {
		t.Errorf("CurrentLayer = %q, want walls", doc.Header.CurrentLayer)
	}
	if doc.Header.MinimumExtents != model.NewPoint(-2, -3, 0) {
		t.Errorf("MinimumExtents = %+v", doc.Header.MinimumExtents)
	}
}

func TestLoad_UnknownSectionSkipped(t *testing.T) {
	doc := load(t,
		"0", "SECTION",
		"2", "HEADER",
		"9", "$ACADVER",
		"1", "AC1015",
		"0", "ENDSEC",
		"0", "SECTION",
		"2", "FUTURE_SECTION",
		"1", "anything at all",
		"70", "42",
		"10", "1.5",
		"0", "ENDSEC",
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "LINE",
		"10", "0.0", "20", "0.0", "30", "0.0",
		"11", "1.0", "21", "1.0", "31", "0.0",
		"0", "ENDSEC",
		"0", "EOF",
	)

	if doc.Header.Version != model.R2000 {
		t.Errorf("Version = %s, want R2000", doc.Header.Version)
	}
	if len(doc.Entities) != 1 {
		t.Errorf("Entities count = %d, want 1", len(doc.Entities))
	}
}

func TestLoad_TruncatedSection(t *testing.T) {
	input := dxfText(
		"0", "SECTION",
		"2", "HEADER",
		"9", "$ACADVER",
		"1", "AC1015",
	)
	if _, err := Load(strings.NewReader(input)); !errors.Is(err, core.ErrUnexpectedEndOfInput) {
		t.Errorf("Load() = %v, want ErrUnexpectedEndOfInput", err)
	}
}

func TestLoad_WrongTopLevelMarker(t *testing.T) {
	input := dxfText(
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "ENDSEC",
		"0", "GARBAGE",
	)
	if _, err := Load(strings.NewReader(input)); !errors.Is(err, core.ErrUnexpectedCodePair) {
		t.Errorf("Load() = %v, want ErrUnexpectedCodePair", err)
	}
}

func TestLoad_WrongItemInTables(t *testing.T) {
	input := dxfText(
		"0", "SECTION",
		"2", "TABLES",
		"0", "NOT_A_TABLE",
		"0", "ENDSEC",
		"0", "EOF",
	)
	if _, err := Load(strings.NewReader(input)); !errors.Is(err, core.ErrUnexpectedCodePair) {
		t.Errorf("Load() = %v, want ErrUnexpectedCodePair", err)
	}
}

func TestLoad_Tables(t *testing.T) {
	doc := load(t,
		"0", "SECTION",
		"2", "TABLES",
		"0", "TABLE",
		"2", "LAYER",
		"70", "1",
		"0", "LAYER",
		"2", "walls",
		"62", "1",
		"6", "CONTINUOUS",
		"0", "ENDTAB",
		"0", "ENDSEC",
		"0", "EOF",
	)

	want := []*model.Layer{{Name: "walls", Color: 1, LineType: "CONTINUOUS"}}
	if !reflect.DeepEqual(doc.Layers, want) {
		t.Errorf("Layers = %+v, want %+v", doc.Layers, want)
	}
}

func TestLoad_Entities(t *testing.T) {
	doc := load(t,
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "LINE",
		"8", "walls",
		"10", "1.0", "20", "2.0", "30", "0.0",
		"11", "3.0", "21", "4.0", "31", "0.0",
		"0", "CIRCLE",
		"10", "5.0", "20", "5.0", "30", "0.0",
		"40", "2.5",
		"0", "ENDSEC",
		"0", "EOF",
	)

	if len(doc.Entities) != 2 {
		t.Fatalf("Entities count = %d, want 2", len(doc.Entities))
	}
	line, ok := doc.Entities[0].(*model.Line)
	if !ok {
		t.Fatalf("first entity is %T, want *model.Line", doc.Entities[0])
	}
	if line.Layer != "walls" || line.P1 != model.NewPoint(1, 2, 0) || line.P2 != model.NewPoint(3, 4, 0) {
		t.Errorf("line = %+v", line)
	}
	circle, ok := doc.Entities[1].(*model.Circle)
	if !ok {
		t.Fatalf("second entity is %T, want *model.Circle", doc.Entities[1])
	}
	if circle.Radius != 2.5 {
		t.Errorf("circle radius = %v, want 2.5", circle.Radius)
	}
}

func TestLoad_UnknownEntitySkipped(t *testing.T) {
	doc := load(t,
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "WIPEOUT",
		"10", "1.0",
		"90", "4",
		"0", "LINE",
		"10", "0.0", "20", "0.0", "30", "0.0",
		"11", "1.0", "21", "0.0", "31", "0.0",
		"0", "ENDSEC",
		"0", "EOF",
	)

	if len(doc.Entities) != 1 {
		t.Fatalf("Entities count = %d, want 1", len(doc.Entities))
	}
	if doc.Entities[0].TypeName() != "LINE" {
		t.Errorf("surviving entity = %s, want LINE", doc.Entities[0].TypeName())
	}
}

func TestLoad_PolylineVertices(t *testing.T) {
	doc := load(t,
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "POLYLINE",
		"66", "1",
		"70", "1",
		"0", "VERTEX",
		"10", "0.0", "20", "0.0", "30", "0.0",
		"0", "VERTEX",
		"10", "5.0", "20", "0.0", "30", "0.0",
		"42", "0.5",
		"0", "SEQEND",
		"0", "ENDSEC",
		"0", "EOF",
	)

	if len(doc.Entities) != 1 {
		t.Fatalf("Entities count = %d, want 1", len(doc.Entities))
	}
	pl, ok := doc.Entities[0].(*model.Polyline)
	if !ok {
		t.Fatalf("entity is %T, want *model.Polyline", doc.Entities[0])
	}
	if pl.Flags != 1 || len(pl.Vertices) != 2 {
		t.Fatalf("polyline = %+v", pl)
	}
	if pl.Vertices[1].Location != model.NewPoint(5, 0, 0) || pl.Vertices[1].Bulge != 0.5 {
		t.Errorf("second vertex = %+v", pl.Vertices[1])
	}
}

func TestLoad_Blocks(t *testing.T) {
	doc := load(t,
		"0", "SECTION",
		"2", "BLOCKS",
		"0", "BLOCK",
		"8", "0",
		"2", "DESK",
		"70", "0",
		"10", "0.0", "20", "0.0", "30", "0.0",
		"0", "LINE",
		"10", "0.0", "20", "0.0", "30", "0.0",
		"11", "2.0", "21", "0.0", "31", "0.0",
		"0", "ENDBLK",
		"0", "ENDSEC",
		"0", "EOF",
	)

	if len(doc.Blocks) != 1 {
		t.Fatalf("Blocks count = %d, want 1", len(doc.Blocks))
	}
	b := doc.Blocks[0]
	if b.Name != "DESK" || len(b.Entities) != 1 {
		t.Errorf("block = %+v", b)
	}
}

func TestLoad_Objects(t *testing.T) {
	doc := load(t,
		"0", "SECTION",
		"2", "OBJECTS",
		"0", "DICTIONARY",
		"5", "C",
		"3", "ACAD_GROUP",
		"350", "D",
		"0", "ACDBPLACEHOLDER",
		"5", "E",
		"0", "ENDSEC",
		"0", "EOF",
	)

	if len(doc.Objects) != 2 {
		t.Fatalf("Objects count = %d, want 2", len(doc.Objects))
	}
	dict, ok := doc.Objects[0].(*model.Dictionary)
	if !ok {
		t.Fatalf("first object is %T, want *model.Dictionary", doc.Objects[0])
	}
	if dict.Handle() != "C" || len(dict.Entries) != 1 {
		t.Errorf("dictionary = %+v", dict)
	}
}

func TestLoad_Thumbnail(t *testing.T) {
	doc := load(t,
		"0", "SECTION",
		"2", "THUMBNAILIMAGE",
		"90", "5",
		"310", "01020304",
		"310", "AB",
		"0", "ENDSEC",
		"0", "EOF",
	)

	if doc.Thumbnail == nil {
		t.Fatal("Thumbnail is nil")
	}
	if len(doc.Thumbnail) != model.ThumbnailHeaderSize+5 {
		t.Fatalf("thumbnail length = %d, want %d", len(doc.Thumbnail), model.ThumbnailHeaderSize+5)
	}
	if doc.Thumbnail[0] != 'B' || doc.Thumbnail[1] != 'M' {
		t.Error("synthesized header must start with BM")
	}
	if got := binary.LittleEndian.Uint32(doc.Thumbnail[2:6]); got != 5 {
		t.Errorf("header length field = %d, want 5", got)
	}
	wantPayload := []byte{0x01, 0x02, 0x03, 0x04, 0xAB}
	if !reflect.DeepEqual(doc.Thumbnail[model.ThumbnailHeaderSize:], wantPayload) {
		t.Errorf("payload = %x, want %x", doc.Thumbnail[model.ThumbnailHeaderSize:], wantPayload)
	}
}

func TestLoad_ThumbnailBadHex(t *testing.T) {
	input := dxfText(
		"0", "SECTION",
		"2", "THUMBNAILIMAGE",
		"90", "2",
		"310", "GGGG",
		"0", "ENDSEC",
		"0", "EOF",
	)
	if _, err := Load(strings.NewReader(input)); !errors.Is(err, core.ErrInvalidValue) {
		t.Errorf("Load() = %v, want ErrInvalidValue", err)
	}
}

func TestLoad_ThumbnailMissingLength(t *testing.T) {
	input := dxfText(
		"0", "SECTION",
		"2", "THUMBNAILIMAGE",
		"310", "0102",
		"0", "ENDSEC",
		"0", "EOF",
	)
	if _, err := Load(strings.NewReader(input)); !errors.Is(err, core.ErrUnexpectedCode) {
		t.Errorf("Load() = %v, want ErrUnexpectedCode", err)
	}
}

func TestLoad_Classes(t *testing.T) {
	doc := load(t,
		"0", "SECTION",
		"2", "CLASSES",
		"0", "CLASS",
		"1", "ACDBDICTIONARYWDFLT",
		"2", "AcDbDictionaryWithDefault",
		"3", "ObjectDBX Classes",
		"90", "0",
		"280", "0",
		"281", "0",
		"0", "ENDSEC",
		"0", "EOF",
	)

	if len(doc.Classes) != 1 {
		t.Fatalf("Classes count = %d, want 1", len(doc.Classes))
	}
	if doc.Classes[0].RecordName != "ACDBDICTIONARYWDFLT" {
		t.Errorf("class = %+v", doc.Classes[0])
	}
}
