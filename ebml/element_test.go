package ebml

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

// testUint is a minimal unsigned-integer leaf bound to a fixed ID, the
// shape every schema element takes.
type testUint uint64

func (testUint) ID() ID { return 0x4286 }

func (e testUint) Len() int { return UintLen(uint64(e)) }

func (e testUint) Marshal(b []byte) int { return PutUint(b, uint64(e)) }

func (e *testUint) Unmarshal(b []byte, _ int) (int, error) {
	v, err := Uint(b)
	*e = testUint(v)
	return len(b), err
}

func TestElementRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 255, 300, 1 << 40} {
		el := testUint(v)
		b := Marshal(&el)
		if len(b) != Size(&el) {
			t.Errorf("Marshal(%d): %d bytes, Size says %d", v, len(b), Size(&el))
		}

		h, hn, err := ParseHeader(b)
		if err != nil {
			t.Fatalf("ParseHeader: %v", err)
		}
		if h.ID != el.ID() {
			t.Errorf("header ID: expected %v, got %v", el.ID(), h.ID)
		}
		size, err := h.DataSize()
		if err != nil || size != uint64(el.Len()) {
			t.Errorf("header size: expected %d, got %d (%v)", el.Len(), size, err)
		}
		if hn+int(size) != len(b) {
			t.Errorf("body size mismatch: header %d + body %d != %d", hn, size, len(b))
		}

		var back testUint
		if err := Unmarshal(b, &back); err != nil {
			t.Fatalf("Unmarshal: %v", err)
		}
		if back != el {
			t.Errorf("round trip %d: got %d", v, back)
		}

		back = 0
		if err := ReadFrom(bytes.NewReader(b), &back); err != nil {
			t.Fatalf("ReadFrom: %v", err)
		}
		if back != el {
			t.Errorf("ReadFrom round trip %d: got %d", v, back)
		}
	}
}

func TestElementZero(t *testing.T) {
	// A zero-valued integer leaf has an empty body: ID + size byte 0x80.
	el := testUint(0)
	b := Marshal(&el)
	want := []byte{0x42, 0x86, 0x80}
	if !bytes.Equal(b, want) {
		t.Errorf("expected % x, got % x", want, b)
	}
}

func TestElementValue300(t *testing.T) {
	el := testUint(300)
	b := Marshal(&el)
	want := []byte{0x42, 0x86, 0x82, 0x01, 0x2C}
	if !bytes.Equal(b, want) {
		t.Errorf("expected % x, got % x", want, b)
	}
}

func TestWriteTo(t *testing.T) {
	el := testUint(300)
	var buf bytes.Buffer
	if err := WriteTo(&buf, &el); err != nil {
		t.Fatal(err)
	}
	h, _, err := ReadHeader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if h.ID != el.ID() {
		t.Errorf("expected ID %v, got %v", el.ID(), h.ID)
	}
	if size, _ := h.DataSize(); size != uint64(el.Len()) {
		t.Errorf("expected size %d, got %d", el.Len(), size)
	}
}

func TestReadFromUnexpectedID(t *testing.T) {
	b := []byte{0x42, 0x87, 0x81, 0x01} // right shape, wrong ID
	var el testUint
	err := ReadFrom(bytes.NewReader(b), &el)
	var idErr *UnexpectedIDError
	if !errors.As(err, &idErr) {
		t.Fatalf("expected UnexpectedIDError, got %v", err)
	}
	if idErr.Expected != el.ID() || idErr.Found != 0x4287 {
		t.Errorf("unexpected fields: %+v", idErr)
	}
}

func TestReadFromUnknownSize(t *testing.T) {
	b := []byte{0x42, 0x86, 0xFF, 0x01}
	var el testUint
	err := ReadFrom(bytes.NewReader(b), &el)
	if !errors.Is(err, ErrBodySizeUnknown) {
		t.Fatalf("expected ErrBodySizeUnknown, got %v", err)
	}
}

func TestReadFromTruncatedBody(t *testing.T) {
	b := []byte{0x42, 0x86, 0x84, 0x01} // declares 4 body bytes, has 1
	var el testUint
	err := ReadFrom(bytes.NewReader(b), &el)
	if !errors.Is(err, ErrShortBody) {
		t.Fatalf("expected ErrShortBody, got %v", err)
	}
}

func TestContextDrivers(t *testing.T) {
	el := testUint(300)
	b := Marshal(&el)

	var back testUint
	if err := ReadFromContext(context.Background(), bytes.NewReader(b), &back); err != nil {
		t.Fatal(err)
	}
	if back != el {
		t.Errorf("expected %d, got %d", el, back)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := ReadFromContext(ctx, bytes.NewReader(b), &back); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	var buf bytes.Buffer
	if err := WriteToContext(ctx, &buf, &el); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSkipBody(t *testing.T) {
	payload := []byte{0x42, 0x86, 0x82, 0x01, 0x2C, 0xEC, 0x80}
	r := bytes.NewReader(payload)
	h, _, err := ReadHeader(r)
	if err != nil {
		t.Fatal(err)
	}
	if err := SkipBody(r, h); err != nil {
		t.Fatal(err)
	}
	// The next element header follows immediately.
	h, _, err = ReadHeader(r)
	if err != nil {
		t.Fatal(err)
	}
	if h.ID != 0xEC {
		t.Errorf("expected Void header after skip, got %v", h.ID)
	}
}
