package ebml

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestVintRoundTrip(t *testing.T) {
	values := []struct {
		B []byte
		V uint64
	}{
		{[]byte{0x80}, 0},
		{[]byte{0x81}, 1},
		{[]byte{0xFE}, 126},
		{[]byte{0x40, 0x7F}, 127},
		{[]byte{0x40, 0xFF}, 0xFF},
		{[]byte{0x41, 0xFF}, 0x1FF},
		{[]byte{0x20, 0x3F, 0xFF}, 0x3FFF},
		{[]byte{0x20, 0x7F, 0xFF}, 0x7FFF},
		{[]byte{0x20, 0xFF, 0xFF}, 0xFFFF},
		{[]byte{0x10, 0x20, 0x00, 0x00}, 0x200000},
		{[]byte{0x01, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFE}, 1<<56 - 2},
	}
	for _, ex := range values {
		if n := VintLen(ex.V); n != len(ex.B) {
			t.Errorf("VintLen(%d): expected %d, got %d", ex.V, len(ex.B), n)
		}
		var buf [8]byte
		n := PutVint(buf[:], KnownSize(ex.V))
		if !bytes.Equal(buf[:n], ex.B) {
			t.Errorf("PutVint(%d): expected % x, got % x", ex.V, ex.B, buf[:n])
		}

		v, n, err := ParseVint(ex.B)
		if err != nil {
			t.Fatalf("ParseVint(% x): %v", ex.B, err)
		}
		if n != len(ex.B) || v.Unknown || v.Value != ex.V {
			t.Errorf("ParseVint(% x): expected %d, got %+v (%d bytes)", ex.B, ex.V, v, n)
		}

		v, n, err = ReadVint(bytes.NewReader(ex.B))
		if err != nil {
			t.Fatalf("ReadVint(% x): %v", ex.B, err)
		}
		if n != len(ex.B) || v.Value != ex.V {
			t.Errorf("ReadVint(% x): expected %d, got %+v", ex.B, ex.V, v)
		}
	}
}

func TestVintMinimalWidthAvoidsAllOnes(t *testing.T) {
	// 127 is all payload bits set in width 1, so it must widen to 2
	// bytes; same at each width boundary.
	values := []struct {
		V uint64
		W int
	}{
		{126, 1},
		{127, 2},
		{1<<14 - 2, 2},
		{1<<14 - 1, 3},
		{1<<21 - 2, 3},
		{1<<21 - 1, 4},
		{1<<49 - 1, 8},
		{1<<56 - 2, 8},
	}
	for _, ex := range values {
		if n := VintLen(ex.V); n != ex.W {
			t.Errorf("VintLen(%d): expected %d, got %d", ex.V, ex.W, n)
		}
	}
}

func TestVintUnknown(t *testing.T) {
	for _, b := range [][]byte{
		{0xFF},
		{0x7F, 0xFF},
		{0x3F, 0xFF, 0xFF},
		{0x01, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
	} {
		v, n, err := ParseVint(b)
		if err != nil {
			t.Fatalf("ParseVint(% x): %v", b, err)
		}
		if !v.Unknown || n != len(b) {
			t.Errorf("ParseVint(% x): expected unknown, got %+v", b, v)
		}
	}

	var buf [8]byte
	if n := PutVint(buf[:], UnknownSize()); n != 1 || buf[0] != 0xFF {
		t.Errorf("PutVint(unknown): expected [ff], got % x", buf[:n])
	}
}

func TestVintFirstByteZero(t *testing.T) {
	if _, _, err := ParseVint([]byte{0x00}); !errors.Is(err, ErrVintFirstByteZero) {
		t.Errorf("expected ErrVintFirstByteZero, got %v", err)
	}
	if _, _, err := ReadVint(bytes.NewReader([]byte{0x00, 0x01})); !errors.Is(err, ErrVintFirstByteZero) {
		t.Errorf("expected ErrVintFirstByteZero, got %v", err)
	}
}

func TestVintTruncated(t *testing.T) {
	if _, _, err := ParseVint([]byte{0x40}); !errors.Is(err, ErrShortBody) {
		t.Errorf("expected ErrShortBody, got %v", err)
	}
	if _, _, err := ReadVint(bytes.NewReader([]byte{0x40})); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestIDRoundTrip(t *testing.T) {
	values := []struct {
		B  []byte
		ID ID
	}{
		{[]byte{0xEC}, 0xEC},
		{[]byte{0xBF}, 0xBF},
		{[]byte{0x42, 0x86}, 0x4286},
		{[]byte{0x2A, 0xD7, 0xB1}, 0x2AD7B1},
		{[]byte{0x1A, 0x45, 0xDF, 0xA3}, 0x1A45DFA3},
	}
	for _, ex := range values {
		if n := ex.ID.Len(); n != len(ex.B) {
			t.Errorf("%v.Len(): expected %d, got %d", ex.ID, len(ex.B), n)
		}
		var buf [4]byte
		n := PutID(buf[:], ex.ID)
		if !bytes.Equal(buf[:n], ex.B) {
			t.Errorf("PutID(%v): expected % x, got % x", ex.ID, ex.B, buf[:n])
		}
		id, n, err := ParseID(ex.B)
		if err != nil {
			t.Fatalf("ParseID(% x): %v", ex.B, err)
		}
		if id != ex.ID || n != len(ex.B) {
			t.Errorf("ParseID(% x): expected %v, got %v", ex.B, ex.ID, id)
		}
		id, _, err = ReadID(bytes.NewReader(ex.B))
		if err != nil || id != ex.ID {
			t.Errorf("ReadID(% x): expected %v, got %v (%v)", ex.B, ex.ID, id, err)
		}
	}
}

func TestIDTooWide(t *testing.T) {
	// A first byte of 0x08 implies a 5-byte ID, which Matroska forbids.
	if _, _, err := ParseID([]byte{0x08, 0, 0, 0, 0}); !errors.Is(err, ErrVintTooLong) {
		t.Errorf("expected ErrVintTooLong, got %v", err)
	}
}
