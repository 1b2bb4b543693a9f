package matroska

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/b01o/mkv-element/ebml"
)

func strPtr[T ~string](v T) *T { return &v }

func uintPtr[T ~uint64](v T) *T { return &v }

func TestReadEbmlHeader(t *testing.T) {
	// A minimal matroska EBML header: DocType "matroska", DocTypeVersion
	// 1, DocTypeReadVersion 1. MaxIDLength/MaxSizeLength are absent and
	// must come back as their schema defaults.
	raw := []byte{
		0x1A, 0x45, 0xDF, 0xA3, 0x93,
		0x42, 0x82, 0x88, 0x6D, 0x61, 0x74, 0x72, 0x6F, 0x73, 0x6B, 0x61,
		0x42, 0x87, 0x81, 0x01,
		0x42, 0x85, 0x81, 0x01,
	}
	var got Ebml
	if err := ebml.ReadFrom(bytes.NewReader(raw), &got); err != nil {
		t.Fatal(err)
	}
	want := Ebml{
		EBMLMaxIDLength:    4,
		EBMLMaxSizeLength:  8,
		DocType:            strPtr(DocType("matroska")),
		DocTypeVersion:     uintPtr(DocTypeVersion(1)),
		DocTypeReadVersion: uintPtr(DocTypeReadVersion(1)),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestWriteEbmlHeader(t *testing.T) {
	el := Ebml{
		EBMLMaxIDLength:    4,
		EBMLMaxSizeLength:  8,
		DocType:            strPtr(DocType("matroska")),
		DocTypeVersion:     uintPtr(DocTypeVersion(1)),
		DocTypeReadVersion: uintPtr(DocTypeReadVersion(1)),
	}
	raw := ebml.Marshal(&el)
	if !bytes.HasPrefix(raw, []byte{0x1A, 0x45, 0xDF, 0xA3}) {
		t.Errorf("output does not start with the EBML ID: % x", raw[:8])
	}

	var got Ebml
	if err := ebml.ReadFrom(bytes.NewReader(raw), &got); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, el) {
		t.Errorf("round trip: expected %+v, got %+v", el, got)
	}
}

func TestEbmlHeaderBodySizeExact(t *testing.T) {
	el := Ebml{
		EBMLMaxIDLength:   4,
		EBMLMaxSizeLength: 8,
		DocType:           strPtr(DocType("webm")),
	}
	body := make([]byte, el.Len())
	if n := el.Marshal(body); n != el.Len() {
		t.Errorf("Marshal wrote %d bytes, Len says %d", n, el.Len())
	}
}
