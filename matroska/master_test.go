package matroska

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/b01o/mkv-element/ebml"
)

func TestMasterSkipsUnknownChildren(t *testing.T) {
	// A Seek with an unknown child (ID 0xEF, 7-byte body) wedged between
	// its required children. The unknown child must vanish silently.
	var body bytes.Buffer
	id := SeekID{0x1A, 0x45, 0xDF, 0xA3}
	body.Write(ebml.Marshal(&id))
	body.Write([]byte{0xEF, 0x87, 1, 2, 3, 4, 5, 6, 7})
	pos := SeekPosition(4096)
	body.Write(ebml.Marshal(&pos))

	raw := append([]byte{0x4D, 0xBB, byte(0x80 | body.Len())}, body.Bytes()...)

	var got Seek
	if err := ebml.ReadFrom(bytes.NewReader(raw), &got); err != nil {
		t.Fatal(err)
	}
	want := Seek{SeekID: id, SeekPosition: pos}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestMasterMissingChild(t *testing.T) {
	// A Seek without its required SeekPosition.
	id := SeekID{0x1A, 0x45, 0xDF, 0xA3}
	child := ebml.Marshal(&id)
	raw := append([]byte{0x4D, 0xBB, byte(0x80 | len(child))}, child...)

	var got Seek
	err := ebml.ReadFrom(bytes.NewReader(raw), &got)
	var missErr *ebml.MissingChildError
	if !errors.As(err, &missErr) {
		t.Fatalf("expected MissingChildError, got %v", err)
	}
	if missErr.Parent != IDSeek || missErr.Child != IDSeekPosition {
		t.Errorf("unexpected fields: %+v", missErr)
	}
}

func TestMasterDuplicateChild(t *testing.T) {
	var body bytes.Buffer
	id := SeekID{0x1A, 0x45, 0xDF, 0xA3}
	pos := SeekPosition(1)
	body.Write(ebml.Marshal(&id))
	body.Write(ebml.Marshal(&pos))
	body.Write(ebml.Marshal(&pos))
	raw := append([]byte{0x4D, 0xBB, byte(0x80 | body.Len())}, body.Bytes()...)

	var got Seek
	err := ebml.ReadFrom(bytes.NewReader(raw), &got)
	var dupErr *ebml.DuplicateChildError
	if !errors.As(err, &dupErr) {
		t.Fatalf("expected DuplicateChildError, got %v", err)
	}
	if dupErr.Parent != IDSeek || dupErr.Child != IDSeekPosition {
		t.Errorf("unexpected fields: %+v", dupErr)
	}
}

func TestMasterCrc32AndVoid(t *testing.T) {
	var body bytes.Buffer
	crc := Crc32(0xDEADBEEF)
	body.Write(ebml.Marshal(&crc))
	id := SeekID{0x53, 0xAB}
	pos := SeekPosition(9)
	body.Write(ebml.Marshal(&id))
	void := Void{Size: 5}
	body.Write(ebml.Marshal(&void))
	body.Write(ebml.Marshal(&pos))
	// A second Void is discarded, not an error.
	void2 := Void{Size: 2}
	body.Write(ebml.Marshal(&void2))
	raw := append([]byte{0x4D, 0xBB, byte(0x80 | body.Len())}, body.Bytes()...)

	var got Seek
	if err := ebml.ReadFrom(bytes.NewReader(raw), &got); err != nil {
		t.Fatal(err)
	}
	if got.Crc32 == nil || *got.Crc32 != crc {
		t.Errorf("CRC-32 not carried: %+v", got.Crc32)
	}
	if got.Void == nil || got.Void.Size != 5 {
		t.Errorf("first Void should win: %+v", got.Void)
	}
}

func TestMasterDuplicateCrc32(t *testing.T) {
	var body bytes.Buffer
	crc := Crc32(1)
	body.Write(ebml.Marshal(&crc))
	body.Write(ebml.Marshal(&crc))
	raw := append([]byte{0x11, 0x4D, 0x9B, 0x74, byte(0x80 | body.Len())}, body.Bytes()...)

	var got SeekHead
	err := ebml.ReadFrom(bytes.NewReader(raw), &got)
	var dupErr *ebml.DuplicateChildError
	if !errors.As(err, &dupErr) {
		t.Fatalf("expected DuplicateChildError, got %v", err)
	}
}

func TestMasterRepeatedChildren(t *testing.T) {
	sh := SeekHead{
		Seek: []Seek{
			{SeekID: SeekID{0x15, 0x49, 0xA9, 0x66}, SeekPosition: 100},
			{SeekID: SeekID{0x16, 0x54, 0xAE, 0x6B}, SeekPosition: 200},
		},
	}
	raw := ebml.Marshal(&sh)
	var got SeekHead
	if err := ebml.ReadFrom(bytes.NewReader(raw), &got); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, sh) {
		t.Errorf("expected %+v, got %+v", sh, got)
	}
}

func TestInfoDefaults(t *testing.T) {
	// TimestampScale absent decodes to the schema default.
	var body bytes.Buffer
	mux := MuxingApp("x")
	wri := WritingApp("y")
	body.Write(ebml.Marshal(&mux))
	body.Write(ebml.Marshal(&wri))
	raw := append([]byte{0x15, 0x49, 0xA9, 0x66, byte(0x80 | body.Len())}, body.Bytes()...)

	var got Info
	if err := ebml.ReadFrom(bytes.NewReader(raw), &got); err != nil {
		t.Fatal(err)
	}
	if got.TimestampScale != 1000000 {
		t.Errorf("expected default timestamp scale, got %d", got.TimestampScale)
	}
}

func TestSegmentRoundTrip(t *testing.T) {
	seg := Segment{
		Info: Info{
			TimestampScale: 1000000,
			MuxingApp:      "mkv-element",
			WritingApp:     "master_test",
			Title:          strPtr(Title("round trip")),
		},
		Tracks: &Tracks{
			TrackEntry: []TrackEntry{{
				TrackNumber:    1,
				TrackUID:       0x4954,
				TrackType:      1,
				FlagEnabled:    1,
				FlagDefault:    1,
				FlagLacing:     1,
				Language:       "eng",
				CodecID:        "V_VP9",
				CodecDecodeAll: 1,
				Video: &Video{
					PixelWidth:  1920,
					PixelHeight: 1080,
				},
			}},
		},
		Cluster: []Cluster{{
			Timestamp:   0,
			SimpleBlock: []SimpleBlock{{0x81, 0x00, 0x00, 0x80, 0xAA, 0xBB}},
		}},
	}
	raw := ebml.Marshal(&seg)

	var got Segment
	if err := ebml.ReadFrom(bytes.NewReader(raw), &got); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, seg) {
		t.Errorf("round trip mismatch:\nwant %+v\ngot  %+v", seg, got)
	}

	// Decoding the re-encoding must also match.
	raw2 := ebml.Marshal(&got)
	var got2 Segment
	if err := ebml.ReadFrom(bytes.NewReader(raw2), &got2); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got2, got) {
		t.Errorf("second round trip mismatch")
	}
}

func TestSegmentUnknownSizeRejected(t *testing.T) {
	raw := []byte{0x18, 0x53, 0x80, 0x67, 0xFF, 0x00}
	var got Segment
	err := ebml.ReadFrom(bytes.NewReader(raw), &got)
	if !errors.Is(err, ebml.ErrBodySizeUnknown) {
		t.Fatalf("expected ErrBodySizeUnknown, got %v", err)
	}
}
