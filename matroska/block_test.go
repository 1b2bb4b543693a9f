package matroska

import (
	"bytes"
	"testing"
)

func TestXiphLacing(t *testing.T) {
	// No frames.
	laced, err := LacingXiph.Lace(nil)
	if err != nil || laced != nil {
		t.Fatalf("empty lace: got % x (%v)", laced, err)
	}
	frames, err := LacingXiph.Delace(nil)
	if err != nil || len(frames) != 0 {
		t.Fatalf("empty delace: got %d frames (%v)", len(frames), err)
	}

	// Sizes 255, 256, 1, remainder: 255 needs the 0xFF 0x00 split.
	f0 := bytes.Repeat([]byte{2}, 255)
	f1 := bytes.Repeat([]byte{42}, 256)
	f2 := []byte{38}
	f3 := []byte{100}
	laced, err = LacingXiph.Lace([][]byte{f0, f1, f2, f3})
	if err != nil {
		t.Fatal(err)
	}
	head := []byte{0x03, 0xFF, 0x00, 0xFF, 0x01, 0x01}
	want := bytes.Join([][]byte{head, f0, f1, f2, f3}, nil)
	if !bytes.Equal(laced, want) {
		t.Errorf("lace mismatch:\nwant % x...\ngot  % x...", want[:8], laced[:8])
	}

	got, err := LacingXiph.Delace(laced)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 frames, got %d", len(got))
	}
	for i, f := range [][]byte{f0, f1, f2, f3} {
		if !bytes.Equal(got[i], f) {
			t.Errorf("frame %d mismatch", i)
		}
	}

	// Sizes 600, 3, 520, remainder.
	f0 = bytes.Repeat([]byte{2}, 600)
	f1 = bytes.Repeat([]byte{42}, 3)
	f2 = bytes.Repeat([]byte{38}, 520)
	f3 = []byte{100}
	laced, err = LacingXiph.Lace([][]byte{f0, f1, f2, f3})
	if err != nil {
		t.Fatal(err)
	}
	head = []byte{0x03, 0xFF, 0xFF, 0x5A, 0x03, 0xFF, 0xFF, 0x0A}
	want = bytes.Join([][]byte{head, f0, f1, f2, f3}, nil)
	if !bytes.Equal(laced, want) {
		t.Errorf("lace mismatch at head: got % x", laced[:9])
	}
	got, err = LacingXiph.Delace(laced)
	if err != nil || len(got) != 4 {
		t.Fatalf("delace: %d frames (%v)", len(got), err)
	}
	if !bytes.Equal(got[2], f2) {
		t.Errorf("frame 2 mismatch")
	}
}

func TestEBMLLacing(t *testing.T) {
	frames := [][]byte{
		bytes.Repeat([]byte{1}, 800),
		bytes.Repeat([]byte{2}, 500),
		bytes.Repeat([]byte{3}, 100),
		[]byte{4},
	}
	laced, err := LacingEBML.Lace(frames)
	if err != nil {
		t.Fatal(err)
	}
	got, err := LacingEBML.Delace(laced)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(frames) {
		t.Fatalf("expected %d frames, got %d", len(frames), len(got))
	}
	for i := range frames {
		if !bytes.Equal(got[i], frames[i]) {
			t.Errorf("frame %d mismatch: %d vs %d bytes", i, len(got[i]), len(frames[i]))
		}
	}
}

func TestFixedLacing(t *testing.T) {
	frames := [][]byte{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	laced, err := LacingFixed.Lace(frames)
	if err != nil {
		t.Fatal(err)
	}
	got, err := LacingFixed.Delace(laced)
	if err != nil || len(got) != 3 {
		t.Fatalf("delace: %d frames (%v)", len(got), err)
	}
	for i := range frames {
		if !bytes.Equal(got[i], frames[i]) {
			t.Errorf("frame %d mismatch", i)
		}
	}

	if _, err := LacingFixed.Lace([][]byte{{1}, {2, 3}}); err == nil {
		t.Error("expected error for unequal fixed-lace frames")
	}
	if _, err := LacingFixed.Delace([]byte{0x02, 1, 2, 3, 4}); err == nil {
		t.Error("expected error for indivisible fixed-lace data")
	}
}

func TestSimpleBlockFrames(t *testing.T) {
	// Track 1, relative timestamp +5, keyframe, no lacing, 3 data bytes.
	sb := SimpleBlock{0x81, 0x00, 0x05, 0x80, 0xAA, 0xBB, 0xCC}
	frames, err := sb.Frames(1000)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(frames))
	}
	f := frames[0]
	if f.TrackNumber != 1 || f.Timestamp != 1005 || !f.Keyframe || f.Invisible || f.Discardable {
		t.Errorf("unexpected frame: %+v", f)
	}
	if !bytes.Equal(f.Data, []byte{0xAA, 0xBB, 0xCC}) {
		t.Errorf("unexpected data: % x", f.Data)
	}

	// Negative relative timestamp.
	sb = SimpleBlock{0x81, 0xFF, 0xFB, 0x00, 0x01}
	frames, err = sb.Frames(1000)
	if err != nil {
		t.Fatal(err)
	}
	if frames[0].Timestamp != 995 {
		t.Errorf("expected timestamp 995, got %d", frames[0].Timestamp)
	}
	if frames[0].Keyframe {
		t.Error("keyframe flag not set, frame should not be one")
	}
}

func TestBlockGroupFrames(t *testing.T) {
	g := BlockGroup{
		Block:          Block{0x82, 0x00, 0x00, 0x00, 0x42},
		ReferenceBlock: []ReferenceBlock{-10},
	}
	frames, err := g.Frames(0)
	if err != nil {
		t.Fatal(err)
	}
	if frames[0].TrackNumber != 2 {
		t.Errorf("expected track 2, got %d", frames[0].TrackNumber)
	}
	if frames[0].Keyframe {
		t.Error("a referenced block is not a keyframe")
	}

	g.ReferenceBlock = nil
	frames, _ = g.Frames(0)
	if !frames[0].Keyframe {
		t.Error("an unreferenced block is a keyframe")
	}
}

func TestClusterFrames(t *testing.T) {
	c := Cluster{
		Timestamp: 100,
		SimpleBlock: []SimpleBlock{
			{0x81, 0x00, 0x01, 0x80, 0x01},
			{0x81, 0x00, 0x02, 0x00, 0x02},
		},
	}
	frames, err := c.Frames()
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if frames[0].Timestamp != 101 || frames[1].Timestamp != 102 {
		t.Errorf("unexpected timestamps: %d, %d", frames[0].Timestamp, frames[1].Timestamp)
	}
}

func TestLacedSimpleBlock(t *testing.T) {
	payload, err := LacingXiph.Lace([][]byte{{1, 1}, {2, 2, 2}, {3}})
	if err != nil {
		t.Fatal(err)
	}
	sb := append(SimpleBlock{0x81, 0x00, 0x00, 0x80 | byte(LacingXiph)}, payload...)
	frames, err := sb.Frames(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(frames))
	}
	if !bytes.Equal(frames[1].Data, []byte{2, 2, 2}) {
		t.Errorf("frame 1 mismatch: % x", frames[1].Data)
	}
}
