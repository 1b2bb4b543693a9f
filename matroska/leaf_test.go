package matroska

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/b01o/mkv-element/ebml"
)

func TestUintLeafZero(t *testing.T) {
	// Value 0 encodes with an empty body: ID, size byte 0x80, nothing.
	ts := Timestamp(0)
	raw := ebml.Marshal(&ts)
	want := []byte{0xE7, 0x80}
	if !bytes.Equal(raw, want) {
		t.Errorf("expected % x, got % x", want, raw)
	}
	var got Timestamp
	if err := ebml.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestUintLeaf300(t *testing.T) {
	tn := TrackNumber(300)
	raw := ebml.Marshal(&tn)
	want := []byte{0xD7, 0x82, 0x01, 0x2C}
	if !bytes.Equal(raw, want) {
		t.Errorf("expected % x, got % x", want, raw)
	}
	var got TrackNumber
	if err := ebml.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if got != 300 {
		t.Errorf("expected 300, got %d", got)
	}
}

func TestLeafRoundTrips(t *testing.T) {
	els := []ebml.Element{
		uintPtr(TrackUID(0xDEADBEEF)),
		func() *ReferenceBlock { v := ReferenceBlock(-42); return &v }(),
		func() *Duration { v := Duration(30000.0); return &v }(),
		strPtr(CodecID("V_VP9")),
		strPtr(Title("日本語のタイトル")),
		func() *SeekID { v := SeekID{0x1A, 0x45, 0xDF, 0xA3}; return &v }(),
		func() *DateUTC { v := DateUTC(ebml.TimeDate(ebml.DateTime(123456789))); return &v }(),
	}
	for _, el := range els {
		raw := ebml.Marshal(el)
		if len(raw) != ebml.Size(el) {
			t.Errorf("%v: wrote %d bytes, Size says %d", el.ID(), len(raw), ebml.Size(el))
		}
		back := reflect.New(reflect.TypeOf(el).Elem()).Interface().(ebml.Element)
		if err := ebml.Unmarshal(raw, back); err != nil {
			t.Errorf("%v: decode: %v", el.ID(), err)
			continue
		}
		if !reflect.DeepEqual(back, el) {
			t.Errorf("%v: decoded %v, want %v", el.ID(), reflect.ValueOf(back).Elem(), reflect.ValueOf(el).Elem())
		}
	}
}

func TestStringLeafStripsPadding(t *testing.T) {
	raw := []byte{0x86, 0x88, 'V', '_', 'V', 'P', '8', 0x00, 0x00, 0x00}
	var got CodecID
	if err := ebml.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if got != "V_VP8" {
		t.Errorf("expected V_VP8, got %q", got)
	}
}

func TestRegistry(t *testing.T) {
	reg := Lookup(IDTimestampScale)
	if reg.Name != "TimestampScale" || reg.Type != ElementTypeUint {
		t.Errorf("unexpected register: %+v", reg)
	}
	reg = Lookup(0xEF)
	if reg.Type != ElementTypeUnknown {
		t.Errorf("expected unknown register, got %+v", reg)
	}
}
