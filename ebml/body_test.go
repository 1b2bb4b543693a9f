package ebml

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func TestUintBody(t *testing.T) {
	values := []struct {
		B []byte
		V uint64
	}{
		{[]byte{}, 0},
		{[]byte{0x01}, 1},
		{[]byte{0xFF}, 255},
		{[]byte{0x01, 0x00}, 256},
		{[]byte{0x01, 0xFF}, 511},
		{[]byte{0xFF, 0xFF}, 1<<16 - 1},
		{[]byte{0x01, 0x00, 0x00}, 1 << 16},
		{[]byte{0x01, 0x00, 0x00, 0x00}, 1 << 24},
		{[]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, 1 << 56},
		{bytes.Repeat([]byte{0xFF}, 8), ^uint64(0)},
	}
	for _, ex := range values {
		v, err := Uint(ex.B)
		if err != nil {
			t.Fatalf("Uint(% x): %v", ex.B, err)
		}
		if v != ex.V {
			t.Errorf("Uint(% x): expected %d, got %d", ex.B, ex.V, v)
		}
		if n := UintLen(ex.V); n != len(ex.B) {
			t.Errorf("UintLen(%d): expected %d, got %d", ex.V, len(ex.B), n)
		}
		var buf [8]byte
		if n := PutUint(buf[:], ex.V); !bytes.Equal(buf[:n], ex.B) {
			t.Errorf("PutUint(%d): expected % x, got % x", ex.V, ex.B, buf[:n])
		}
	}

	// Leading zeros are legal on the wire and collapse on decode.
	v, err := Uint([]byte{0x00, 0x00, 0x2A})
	if err != nil || v != 42 {
		t.Errorf("Uint(00 00 2a): expected 42, got %d (%v)", v, err)
	}

	var sizeErr *InvalidSizeError
	if _, err := Uint(make([]byte, 9)); !errors.As(err, &sizeErr) {
		t.Errorf("expected InvalidSizeError, got %v", err)
	}
}

func TestIntBody(t *testing.T) {
	values := []struct {
		B []byte
		V int64
	}{
		{[]byte{}, 0},
		{[]byte{0x01}, 1},
		{[]byte{0x7F}, 127},
		{[]byte{0x00, 0x80}, 128},
		{[]byte{0xFF}, -1},
		{[]byte{0x80}, -128},
		{[]byte{0xFF, 0x7F}, -129},
		{[]byte{0x01, 0x2C}, 300},
		{[]byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, -1 << 63},
	}
	for _, ex := range values {
		v, err := Int(ex.B)
		if err != nil {
			t.Fatalf("Int(% x): %v", ex.B, err)
		}
		if v != ex.V {
			t.Errorf("Int(% x): expected %d, got %d", ex.B, ex.V, v)
		}
		if n := IntLen(ex.V); n != len(ex.B) {
			t.Errorf("IntLen(%d): expected %d, got %d", ex.V, len(ex.B), n)
		}
		var buf [8]byte
		if n := PutInt(buf[:], ex.V); !bytes.Equal(buf[:n], ex.B) {
			t.Errorf("PutInt(%d): expected % x, got % x", ex.V, ex.B, buf[:n])
		}
	}
}

func TestFloatBody(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 0.5, 3.14159265358979, 1e38, -2.5e-10} {
		var buf [8]byte
		n := PutFloat(buf[:], v)
		if n != FloatLen(v) {
			t.Errorf("PutFloat(%g): wrote %d, Len says %d", v, n, FloatLen(v))
		}
		got, err := Float(buf[:n])
		if err != nil {
			t.Fatalf("Float(% x): %v", buf[:n], err)
		}
		if got != v {
			t.Errorf("Float round trip %g: got %g", v, got)
		}
	}

	// A zero-length body decodes to 0.0.
	if v, err := Float(nil); err != nil || v != 0 {
		t.Errorf("Float(empty): expected 0, got %g (%v)", v, err)
	}

	var sizeErr *InvalidSizeError
	if _, err := Float(make([]byte, 5)); !errors.As(err, &sizeErr) {
		t.Errorf("expected InvalidSizeError, got %v", err)
	}
}

func TestStringBody(t *testing.T) {
	s, err := String([]byte("matroska\x00\x00"))
	if err != nil || s != "matroska" {
		t.Errorf("String: expected matroska, got %q (%v)", s, err)
	}
	s, err = UTF8String([]byte("näme\x00"))
	if err != nil || s != "näme" {
		t.Errorf("UTF8String: expected näme, got %q (%v)", s, err)
	}
	if _, err = UTF8String([]byte{0xFF, 0xFE, 0x41}); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestDateBody(t *testing.T) {
	// 2001-01-01T00:00:00 UTC is zero.
	if got := DateTime(0); !got.Equal(time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("DateTime(0): got %v", got)
	}
	ts := time.Date(2010, 8, 21, 7, 23, 3, 0, time.UTC)
	ns := TimeDate(ts)
	if !DateTime(ns).Equal(ts) {
		t.Errorf("TimeDate round trip: got %v", DateTime(ns))
	}

	var buf [8]byte
	PutDate(buf[:], ns)
	got, err := Date(buf[:])
	if err != nil || got != ns {
		t.Errorf("Date round trip: expected %d, got %d (%v)", ns, got, err)
	}

	var sizeErr *InvalidSizeError
	if _, err := Date([]byte{1, 2, 3}); !errors.As(err, &sizeErr) {
		t.Errorf("expected InvalidSizeError, got %v", err)
	}
}
