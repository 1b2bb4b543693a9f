package matroska

import (
	"context"
	"io"

	"github.com/b01o/mkv-element/ebml"
)

// View is a selective parse of a Matroska file: the EBML header and all
// segment metadata fully decoded, cluster bodies left on disk as
// offset/size references.
type View struct {
	Ebml     Ebml
	Segments []SegmentView
}

// SegmentView is one segment's metadata plus the location of every
// cluster inside it.
type SegmentView struct {
	SeekHead    []SeekHead
	Info        Info
	Tracks      *Tracks
	Cues        *Cues
	Attachments *Attachments
	Chapters    *Chapters
	Tags        []Tags

	// DataOffset is the file position of the segment body, the point
	// SeekPosition values are relative to.
	DataOffset int64
	// Clusters locates each cluster in file order.
	Clusters []ClusterRef
}

// ClusterRef locates one cluster on disk without materializing it.
type ClusterRef struct {
	// Offset is the file position of the cluster header.
	Offset int64
	// HeaderLen is the on-disk length of the cluster header, which may
	// use non-minimal VINT widths.
	HeaderLen int
	// Size is the cluster's body size.
	Size uint64
}

// Read materializes the referenced cluster through the base decoder.
func (ref ClusterRef) Read(r io.ReadSeeker) (*Cluster, error) {
	if _, err := r.Seek(ref.Offset, io.SeekStart); err != nil {
		return nil, err
	}
	var c Cluster
	if err := ebml.ReadFrom(r, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ReadContext is Read under a context.
func (ref ClusterRef) ReadContext(ctx context.Context, r io.ReadSeeker) (*Cluster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := r.Seek(ref.Offset, io.SeekStart); err != nil {
		return nil, err
	}
	var c Cluster
	if err := ebml.ReadFromContext(ctx, r, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// NewView parses the EBML header and every segment's metadata from r,
// skipping cluster bodies. Segments with unknown size are rejected with
// ebml.ErrBodySizeUnknown. At least one segment is required.
func NewView(r io.ReadSeeker) (*View, error) {
	return newView(context.Background(), r)
}

// NewViewContext is NewView under a context, observed between elements.
func NewViewContext(ctx context.Context, r io.ReadSeeker) (*View, error) {
	return newView(ctx, r)
}

func newView(ctx context.Context, r io.ReadSeeker) (*View, error) {
	var v View
	if err := ebml.ReadFromContext(ctx, r, &v.Ebml); err != nil {
		return nil, err
	}
	for {
		seg, err := readSegmentView(ctx, r)
		// A clean EOF before the next segment header ends the file; any
		// truncation or structural failure past that point is fatal.
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		v.Segments = append(v.Segments, *seg)
	}
	if len(v.Segments) == 0 {
		return nil, &ebml.MissingChildError{Parent: IDEbml, Child: IDSegment}
	}
	return &v, nil
}

func readSegmentView(ctx context.Context, r io.ReadSeeker) (*SegmentView, error) {
	h, _, err := ebml.ReadHeaderContext(ctx, r)
	if err != nil {
		return nil, err
	}
	if h.ID != IDSegment {
		return nil, &ebml.UnexpectedIDError{Expected: IDSegment, Found: h.ID}
	}
	size, err := h.DataSize()
	if err != nil {
		return nil, err
	}

	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	end := start + int64(size)

	seg := &SegmentView{DataOffset: start}
	var seenInfo bool
	for {
		pos, err := r.Seek(0, io.SeekCurrent)
		if err != nil {
			return nil, err
		}
		if pos >= end {
			break
		}
		ch, hn, err := ebml.ReadHeaderContext(ctx, r)
		if err != nil {
			return nil, err
		}
		switch ch.ID {
		case IDSeekHead:
			var el SeekHead
			if err := ebml.ReadElementContext(ctx, ch, r, &el); err != nil {
				return nil, err
			}
			seg.SeekHead = append(seg.SeekHead, el)
		case IDInfo:
			if seenInfo {
				return nil, dup(IDSegment, ch.ID)
			}
			seenInfo = true
			if err := ebml.ReadElementContext(ctx, ch, r, &seg.Info); err != nil {
				return nil, err
			}
		case IDTracks:
			seg.Tracks = new(Tracks)
			if err := ebml.ReadElementContext(ctx, ch, r, seg.Tracks); err != nil {
				return nil, err
			}
		case IDCues:
			seg.Cues = new(Cues)
			if err := ebml.ReadElementContext(ctx, ch, r, seg.Cues); err != nil {
				return nil, err
			}
		case IDAttachments:
			seg.Attachments = new(Attachments)
			if err := ebml.ReadElementContext(ctx, ch, r, seg.Attachments); err != nil {
				return nil, err
			}
		case IDChapters:
			seg.Chapters = new(Chapters)
			if err := ebml.ReadElementContext(ctx, ch, r, seg.Chapters); err != nil {
				return nil, err
			}
		case IDTags:
			var el Tags
			if err := ebml.ReadElementContext(ctx, ch, r, &el); err != nil {
				return nil, err
			}
			seg.Tags = append(seg.Tags, el)
		case IDCluster:
			clusterSize, err := ch.DataSize()
			if err != nil {
				return nil, err
			}
			seg.Clusters = append(seg.Clusters, ClusterRef{Offset: pos, HeaderLen: hn, Size: clusterSize})
			if err := ebml.SkipBody(r, ch); err != nil {
				return nil, err
			}
		default:
			if Debug {
				logSkippedTopLevel(ch)
			}
			if err := ebml.SkipBody(r, ch); err != nil {
				return nil, err
			}
		}
	}
	if !seenInfo {
		return nil, missing(IDSegment, IDInfo)
	}
	return seg, nil
}
