package matroska

import (
	"bytes"
	"testing"
)

func TestZlibContentEncoding(t *testing.T) {
	cs := &ContentEncodings{
		ContentEncoding: []ContentEncoding{{
			ContentEncodingScope: 1,
			ContentCompression:   &ContentCompression{ContentCompAlgo: CompAlgoZlib},
		}},
	}
	frame := bytes.Repeat([]byte("matroska "), 100)
	packed, err := cs.EncodeFrame(frame)
	if err != nil {
		t.Fatal(err)
	}
	if len(packed) >= len(frame) {
		t.Errorf("zlib did not shrink a repetitive frame: %d >= %d", len(packed), len(frame))
	}
	got, err := cs.DecodeFrame(packed)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, frame) {
		t.Error("zlib round trip mismatch")
	}
}

func TestHeaderStripping(t *testing.T) {
	settings := ContentCompSettings{0x00, 0x00, 0x00, 0x01}
	cs := &ContentEncodings{
		ContentEncoding: []ContentEncoding{{
			ContentEncodingScope: 1,
			ContentCompression: &ContentCompression{
				ContentCompAlgo:     CompAlgoHeaderStripping,
				ContentCompSettings: &settings,
			},
		}},
	}
	frame := []byte{0x00, 0x00, 0x00, 0x01, 0x65, 0x88}
	stripped, err := cs.EncodeFrame(frame)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(stripped, []byte{0x65, 0x88}) {
		t.Errorf("unexpected stripped frame: % x", stripped)
	}
	got, err := cs.DecodeFrame(stripped)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, frame) {
		t.Error("header stripping round trip mismatch")
	}

	if _, err := cs.EncodeFrame([]byte{0xFF}); err == nil {
		t.Error("expected error for a frame without the stripped prefix")
	}
}

func TestEncodingOrder(t *testing.T) {
	// Stripping at order 0, zlib at order 1: encode strips then
	// compresses; decode must walk back in reverse.
	settings := ContentCompSettings{0xAB}
	cs := &ContentEncodings{
		ContentEncoding: []ContentEncoding{
			{
				ContentEncodingOrder: 1,
				ContentEncodingScope: 1,
				ContentCompression:   &ContentCompression{ContentCompAlgo: CompAlgoZlib},
			},
			{
				ContentEncodingOrder: 0,
				ContentEncodingScope: 1,
				ContentCompression: &ContentCompression{
					ContentCompAlgo:     CompAlgoHeaderStripping,
					ContentCompSettings: &settings,
				},
			},
		},
	}
	frame := append([]byte{0xAB}, bytes.Repeat([]byte{7}, 64)...)
	packed, err := cs.EncodeFrame(frame)
	if err != nil {
		t.Fatal(err)
	}
	got, err := cs.DecodeFrame(packed)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, frame) {
		t.Error("ordered encoding round trip mismatch")
	}
}

func TestEncryptionRejected(t *testing.T) {
	cs := &ContentEncodings{
		ContentEncoding: []ContentEncoding{{
			ContentEncodingScope: 1,
			ContentEncodingType:  EncodingTypeEncryption,
		}},
	}
	if _, err := cs.DecodeFrame([]byte{1}); err == nil {
		t.Error("expected error for encrypted content")
	}
}

func TestNewSegmentUUID(t *testing.T) {
	a, b := NewSegmentUUID(), NewSegmentUUID()
	if len(a) != 16 || len(b) != 16 {
		t.Fatalf("expected 16-byte UUIDs, got %d and %d", len(a), len(b))
	}
	if bytes.Equal(a, b) {
		t.Error("two generated segment UUIDs should differ")
	}
}
