package matroska

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/b01o/mkv-element/ebml"
)

func buildTestFile(t *testing.T) []byte {
	t.Helper()
	head := Ebml{
		EBMLMaxIDLength:    4,
		EBMLMaxSizeLength:  8,
		DocType:            strPtr(DocType("matroska")),
		DocTypeVersion:     uintPtr(DocTypeVersion(4)),
		DocTypeReadVersion: uintPtr(DocTypeReadVersion(2)),
	}
	seg := Segment{
		Info: Info{
			TimestampScale: 1000000,
			MuxingApp:      "x",
			WritingApp:     "y",
		},
		Tracks: &Tracks{
			TrackEntry: []TrackEntry{{
				TrackNumber:    1,
				TrackUID:       1234567890,
				TrackType:      1,
				FlagEnabled:    1,
				FlagDefault:    1,
				FlagLacing:     1,
				Language:       "eng",
				CodecID:        "V_VP9",
				CodecDecodeAll: 1,
				Video:          &Video{PixelWidth: 1920, PixelHeight: 1080},
			}},
		},
		Cluster: []Cluster{{
			Timestamp:   0,
			SimpleBlock: []SimpleBlock{{0x81, 0x00, 0x00, 0x80, 0x01, 0x02, 0x03}},
		}},
	}
	var buf bytes.Buffer
	if err := ebml.WriteTo(&buf, &head); err != nil {
		t.Fatal(err)
	}
	if err := ebml.WriteTo(&buf, &seg); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestViewSkipsClusters(t *testing.T) {
	raw := buildTestFile(t)
	view, err := NewView(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	if len(view.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(view.Segments))
	}
	seg := view.Segments[0]
	if seg.Info.TimestampScale != 1000000 {
		t.Errorf("expected timestamp scale 1000000, got %d", seg.Info.TimestampScale)
	}
	if len(seg.Clusters) != 1 {
		t.Fatalf("expected 1 cluster ref, got %d", len(seg.Clusters))
	}
	if seg.Tracks == nil || len(seg.Tracks.TrackEntry) != 1 {
		t.Fatal("tracks not decoded")
	}

	// The cluster body was not materialized; re-reading it through the
	// base decoder works.
	ref := seg.Clusters[0]
	cluster, err := ref.Read(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	if len(cluster.SimpleBlock) != 1 {
		t.Errorf("expected 1 simple block, got %d", len(cluster.SimpleBlock))
	}
	if uint64(len(raw)) < ref.Size {
		t.Errorf("cluster size %d exceeds the file", ref.Size)
	}
}

func TestViewMultipleSegments(t *testing.T) {
	raw := buildTestFile(t)
	seg2 := Segment{
		Info: Info{TimestampScale: 1000000, MuxingApp: "x", WritingApp: "y"},
	}
	raw = append(raw, ebml.Marshal(&seg2)...)

	view, err := NewView(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	if len(view.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(view.Segments))
	}
	if len(view.Segments[1].Clusters) != 0 {
		t.Errorf("second segment should have no clusters")
	}
}

func TestViewUnknownSegmentSizeRejected(t *testing.T) {
	head := Ebml{EBMLMaxIDLength: 4, EBMLMaxSizeLength: 8}
	raw := ebml.Marshal(&head)
	raw = append(raw, 0x18, 0x53, 0x80, 0x67, 0xFF)

	_, err := NewView(bytes.NewReader(raw))
	if !errors.Is(err, ebml.ErrBodySizeUnknown) {
		t.Fatalf("expected ErrBodySizeUnknown, got %v", err)
	}
}

func TestViewRequiresSegment(t *testing.T) {
	head := Ebml{EBMLMaxIDLength: 4, EBMLMaxSizeLength: 8}
	raw := ebml.Marshal(&head)

	_, err := NewView(bytes.NewReader(raw))
	var missErr *ebml.MissingChildError
	if !errors.As(err, &missErr) {
		t.Fatalf("expected MissingChildError, got %v", err)
	}
}

func TestViewTruncatedSegmentFatal(t *testing.T) {
	// A file cut short mid-write: the second segment's header declares
	// more body than the stream holds. The truncation must surface even
	// though one segment already parsed cleanly.
	raw := buildTestFile(t)
	seg2 := Segment{
		Info: Info{TimestampScale: 1000000, MuxingApp: "x", WritingApp: "y"},
	}
	full := ebml.Marshal(&seg2)
	raw = append(raw, full[:len(full)-5]...)

	if _, err := NewView(bytes.NewReader(raw)); err == nil {
		t.Fatal("expected an error for a truncated segment")
	}
}

func TestViewContextCancel(t *testing.T) {
	raw := buildTestFile(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewViewContext(ctx, bytes.NewReader(raw)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestViewSkipsUnknownTopLevel(t *testing.T) {
	head := Ebml{EBMLMaxIDLength: 4, EBMLMaxSizeLength: 8}
	seg := Segment{
		Info: Info{TimestampScale: 1000000, MuxingApp: "x", WritingApp: "y"},
	}
	segBody := make([]byte, seg.Len())
	seg.Marshal(segBody)

	// Hand-build the segment so an unknown element sits between its
	// children: header declares the combined size.
	unknown := []byte{0xEF, 0x85, 9, 9, 9, 9, 9}
	var buf bytes.Buffer
	buf.Write(ebml.Marshal(&head))
	hdr := ebml.Header{ID: IDSegment, Size: ebml.KnownSize(uint64(len(segBody) + len(unknown)))}
	hdr.WriteTo(&buf)
	buf.Write(unknown)
	buf.Write(segBody)

	view, err := NewView(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if view.Segments[0].Info.MuxingApp != "x" {
		t.Errorf("info not decoded past unknown element")
	}
}
