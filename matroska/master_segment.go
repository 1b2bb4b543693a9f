package matroska

import "github.com/b01o/mkv-element/ebml"

// Segment is the root element holding a Matroska file's metadata and
// media data.
type Segment struct {
	Crc32 *Crc32
	Void  *Void

	SeekHead    []SeekHead
	Info        Info
	Tracks      *Tracks
	Cues        *Cues
	Attachments *Attachments
	Chapters    *Chapters
	Tags        []Tags
	Cluster     []Cluster
}

func (*Segment) ID() ebml.ID { return IDSegment }

func (m *Segment) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	for i := range m.SeekHead {
		n += ebml.Size(&m.SeekHead[i])
	}
	n += ebml.Size(&m.Info)
	if m.Tracks != nil {
		n += ebml.Size(m.Tracks)
	}
	if m.Cues != nil {
		n += ebml.Size(m.Cues)
	}
	if m.Attachments != nil {
		n += ebml.Size(m.Attachments)
	}
	if m.Chapters != nil {
		n += ebml.Size(m.Chapters)
	}
	for i := range m.Tags {
		n += ebml.Size(&m.Tags[i])
	}
	for i := range m.Cluster {
		n += ebml.Size(&m.Cluster[i])
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *Segment) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	for i := range m.SeekHead {
		n += ebml.Put(b[n:], &m.SeekHead[i])
	}
	n += ebml.Put(b[n:], &m.Info)
	if m.Tracks != nil {
		n += ebml.Put(b[n:], m.Tracks)
	}
	if m.Cues != nil {
		n += ebml.Put(b[n:], m.Cues)
	}
	if m.Attachments != nil {
		n += ebml.Put(b[n:], m.Attachments)
	}
	if m.Chapters != nil {
		n += ebml.Put(b[n:], m.Chapters)
	}
	for i := range m.Tags {
		n += ebml.Put(b[n:], &m.Tags[i])
	}
	for i := range m.Cluster {
		n += ebml.Put(b[n:], &m.Cluster[i])
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *Segment) Unmarshal(b []byte, offset int) (int, error) {
	var seenInfo bool
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDSeekHead:
			var v SeekHead
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.SeekHead = append(m.SeekHead, v)
		case IDInfo:
			if seenInfo {
				return n, dup(IDSegment, c.h.ID)
			}
			seenInfo = true
			if err := c.decode(&m.Info); err != nil {
				return n, err
			}
		case IDTracks:
			if m.Tracks != nil {
				return n, dup(IDSegment, c.h.ID)
			}
			m.Tracks = new(Tracks)
			if err := c.decode(m.Tracks); err != nil {
				return n, err
			}
		case IDCues:
			if m.Cues != nil {
				return n, dup(IDSegment, c.h.ID)
			}
			m.Cues = new(Cues)
			if err := c.decode(m.Cues); err != nil {
				return n, err
			}
		case IDAttachments:
			if m.Attachments != nil {
				return n, dup(IDSegment, c.h.ID)
			}
			m.Attachments = new(Attachments)
			if err := c.decode(m.Attachments); err != nil {
				return n, err
			}
		case IDChapters:
			if m.Chapters != nil {
				return n, dup(IDSegment, c.h.ID)
			}
			m.Chapters = new(Chapters)
			if err := c.decode(m.Chapters); err != nil {
				return n, err
			}
		case IDTags:
			var v Tags
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.Tags = append(m.Tags, v)
		case IDCluster:
			var v Cluster
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.Cluster = append(m.Cluster, v)
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDSegment); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDSegment)
		}
		n += cn
	}
	if !seenInfo {
		return n, missing(IDSegment, IDInfo)
	}
	return n, nil
}

// SeekHead indexes the positions of other top-level elements.
type SeekHead struct {
	Crc32 *Crc32
	Void  *Void

	Seek []Seek
}

func (*SeekHead) ID() ebml.ID { return IDSeekHead }

func (m *SeekHead) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	for i := range m.Seek {
		n += ebml.Size(&m.Seek[i])
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *SeekHead) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	for i := range m.Seek {
		n += ebml.Put(b[n:], &m.Seek[i])
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *SeekHead) Unmarshal(b []byte, offset int) (int, error) {
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDSeek:
			var v Seek
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.Seek = append(m.Seek, v)
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDSeekHead); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDSeekHead)
		}
		n += cn
	}
	return n, nil
}

// Seek is a single entry pointing at one top-level element.
type Seek struct {
	Crc32 *Crc32
	Void  *Void

	SeekID       SeekID
	SeekPosition SeekPosition
}

func (*Seek) ID() ebml.ID { return IDSeek }

func (m *Seek) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	n += ebml.Size(&m.SeekID)
	n += ebml.Size(&m.SeekPosition)
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *Seek) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	n += ebml.Put(b[n:], &m.SeekID)
	n += ebml.Put(b[n:], &m.SeekPosition)
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *Seek) Unmarshal(b []byte, offset int) (int, error) {
	var seenSeekID, seenSeekPosition bool
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDSeekID:
			if seenSeekID {
				return n, dup(IDSeek, c.h.ID)
			}
			seenSeekID = true
			if err := c.decode(&m.SeekID); err != nil {
				return n, err
			}
		case IDSeekPosition:
			if seenSeekPosition {
				return n, dup(IDSeek, c.h.ID)
			}
			seenSeekPosition = true
			if err := c.decode(&m.SeekPosition); err != nil {
				return n, err
			}
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDSeek); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDSeek)
		}
		n += cn
	}
	if !seenSeekID {
		return n, missing(IDSeek, IDSeekID)
	}
	if !seenSeekPosition {
		return n, missing(IDSeek, IDSeekPosition)
	}
	return n, nil
}

// Info holds general information about the segment. TimestampScale
// falls back to its schema default (1000000, one millisecond per tick)
// when absent.
type Info struct {
	Crc32 *Crc32
	Void  *Void

	SegmentUUID      *SegmentUUID
	SegmentFilename  *SegmentFilename
	PrevUUID         *PrevUUID
	PrevFilename     *PrevFilename
	NextUUID         *NextUUID
	NextFilename     *NextFilename
	SegmentFamily    []SegmentFamily
	ChapterTranslate []ChapterTranslate
	TimestampScale   TimestampScale
	Duration         *Duration
	DateUTC          *DateUTC
	Title            *Title
	MuxingApp        MuxingApp
	WritingApp       WritingApp
}

func (*Info) ID() ebml.ID { return IDInfo }

func (m *Info) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	if m.SegmentUUID != nil {
		n += ebml.Size(m.SegmentUUID)
	}
	if m.SegmentFilename != nil {
		n += ebml.Size(m.SegmentFilename)
	}
	if m.PrevUUID != nil {
		n += ebml.Size(m.PrevUUID)
	}
	if m.PrevFilename != nil {
		n += ebml.Size(m.PrevFilename)
	}
	if m.NextUUID != nil {
		n += ebml.Size(m.NextUUID)
	}
	if m.NextFilename != nil {
		n += ebml.Size(m.NextFilename)
	}
	for i := range m.SegmentFamily {
		n += ebml.Size(&m.SegmentFamily[i])
	}
	for i := range m.ChapterTranslate {
		n += ebml.Size(&m.ChapterTranslate[i])
	}
	n += ebml.Size(&m.TimestampScale)
	if m.Duration != nil {
		n += ebml.Size(m.Duration)
	}
	if m.DateUTC != nil {
		n += ebml.Size(m.DateUTC)
	}
	if m.Title != nil {
		n += ebml.Size(m.Title)
	}
	n += ebml.Size(&m.MuxingApp)
	n += ebml.Size(&m.WritingApp)
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *Info) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	if m.SegmentUUID != nil {
		n += ebml.Put(b[n:], m.SegmentUUID)
	}
	if m.SegmentFilename != nil {
		n += ebml.Put(b[n:], m.SegmentFilename)
	}
	if m.PrevUUID != nil {
		n += ebml.Put(b[n:], m.PrevUUID)
	}
	if m.PrevFilename != nil {
		n += ebml.Put(b[n:], m.PrevFilename)
	}
	if m.NextUUID != nil {
		n += ebml.Put(b[n:], m.NextUUID)
	}
	if m.NextFilename != nil {
		n += ebml.Put(b[n:], m.NextFilename)
	}
	for i := range m.SegmentFamily {
		n += ebml.Put(b[n:], &m.SegmentFamily[i])
	}
	for i := range m.ChapterTranslate {
		n += ebml.Put(b[n:], &m.ChapterTranslate[i])
	}
	n += ebml.Put(b[n:], &m.TimestampScale)
	if m.Duration != nil {
		n += ebml.Put(b[n:], m.Duration)
	}
	if m.DateUTC != nil {
		n += ebml.Put(b[n:], m.DateUTC)
	}
	if m.Title != nil {
		n += ebml.Put(b[n:], m.Title)
	}
	n += ebml.Put(b[n:], &m.MuxingApp)
	n += ebml.Put(b[n:], &m.WritingApp)
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *Info) Unmarshal(b []byte, offset int) (int, error) {
	var seenTimestampScale, seenMuxingApp, seenWritingApp bool
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDSegmentUUID:
			if m.SegmentUUID != nil {
				return n, dup(IDInfo, c.h.ID)
			}
			m.SegmentUUID = new(SegmentUUID)
			if err := c.decode(m.SegmentUUID); err != nil {
				return n, err
			}
		case IDSegmentFilename:
			if m.SegmentFilename != nil {
				return n, dup(IDInfo, c.h.ID)
			}
			m.SegmentFilename = new(SegmentFilename)
			if err := c.decode(m.SegmentFilename); err != nil {
				return n, err
			}
		case IDPrevUUID:
			if m.PrevUUID != nil {
				return n, dup(IDInfo, c.h.ID)
			}
			m.PrevUUID = new(PrevUUID)
			if err := c.decode(m.PrevUUID); err != nil {
				return n, err
			}
		case IDPrevFilename:
			if m.PrevFilename != nil {
				return n, dup(IDInfo, c.h.ID)
			}
			m.PrevFilename = new(PrevFilename)
			if err := c.decode(m.PrevFilename); err != nil {
				return n, err
			}
		case IDNextUUID:
			if m.NextUUID != nil {
				return n, dup(IDInfo, c.h.ID)
			}
			m.NextUUID = new(NextUUID)
			if err := c.decode(m.NextUUID); err != nil {
				return n, err
			}
		case IDNextFilename:
			if m.NextFilename != nil {
				return n, dup(IDInfo, c.h.ID)
			}
			m.NextFilename = new(NextFilename)
			if err := c.decode(m.NextFilename); err != nil {
				return n, err
			}
		case IDSegmentFamily:
			var v SegmentFamily
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.SegmentFamily = append(m.SegmentFamily, v)
		case IDChapterTranslate:
			var v ChapterTranslate
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.ChapterTranslate = append(m.ChapterTranslate, v)
		case IDTimestampScale:
			if seenTimestampScale {
				return n, dup(IDInfo, c.h.ID)
			}
			seenTimestampScale = true
			if err := c.decode(&m.TimestampScale); err != nil {
				return n, err
			}
		case IDDuration:
			if m.Duration != nil {
				return n, dup(IDInfo, c.h.ID)
			}
			m.Duration = new(Duration)
			if err := c.decode(m.Duration); err != nil {
				return n, err
			}
		case IDDateUTC:
			if m.DateUTC != nil {
				return n, dup(IDInfo, c.h.ID)
			}
			m.DateUTC = new(DateUTC)
			if err := c.decode(m.DateUTC); err != nil {
				return n, err
			}
		case IDTitle:
			if m.Title != nil {
				return n, dup(IDInfo, c.h.ID)
			}
			m.Title = new(Title)
			if err := c.decode(m.Title); err != nil {
				return n, err
			}
		case IDMuxingApp:
			if seenMuxingApp {
				return n, dup(IDInfo, c.h.ID)
			}
			seenMuxingApp = true
			if err := c.decode(&m.MuxingApp); err != nil {
				return n, err
			}
		case IDWritingApp:
			if seenWritingApp {
				return n, dup(IDInfo, c.h.ID)
			}
			seenWritingApp = true
			if err := c.decode(&m.WritingApp); err != nil {
				return n, err
			}
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDInfo); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDInfo)
		}
		n += cn
	}
	if !seenTimestampScale {
		m.TimestampScale = 1000000
	}
	if !seenMuxingApp {
		return n, missing(IDInfo, IDMuxingApp)
	}
	if !seenWritingApp {
		return n, missing(IDInfo, IDWritingApp)
	}
	return n, nil
}

// ChapterTranslate maps this segment to a segment value in a chapter
// codec's own addressing.
type ChapterTranslate struct {
	Crc32 *Crc32
	Void  *Void

	ChapterTranslateID         ChapterTranslateID
	ChapterTranslateCodec      ChapterTranslateCodec
	ChapterTranslateEditionUID []ChapterTranslateEditionUID
}

func (*ChapterTranslate) ID() ebml.ID { return IDChapterTranslate }

func (m *ChapterTranslate) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	n += ebml.Size(&m.ChapterTranslateID)
	n += ebml.Size(&m.ChapterTranslateCodec)
	for i := range m.ChapterTranslateEditionUID {
		n += ebml.Size(&m.ChapterTranslateEditionUID[i])
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *ChapterTranslate) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	n += ebml.Put(b[n:], &m.ChapterTranslateID)
	n += ebml.Put(b[n:], &m.ChapterTranslateCodec)
	for i := range m.ChapterTranslateEditionUID {
		n += ebml.Put(b[n:], &m.ChapterTranslateEditionUID[i])
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *ChapterTranslate) Unmarshal(b []byte, offset int) (int, error) {
	var seenChapterTranslateID, seenChapterTranslateCodec bool
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDChapterTranslateID:
			if seenChapterTranslateID {
				return n, dup(IDChapterTranslate, c.h.ID)
			}
			seenChapterTranslateID = true
			if err := c.decode(&m.ChapterTranslateID); err != nil {
				return n, err
			}
		case IDChapterTranslateCodec:
			if seenChapterTranslateCodec {
				return n, dup(IDChapterTranslate, c.h.ID)
			}
			seenChapterTranslateCodec = true
			if err := c.decode(&m.ChapterTranslateCodec); err != nil {
				return n, err
			}
		case IDChapterTranslateEditionUID:
			var v ChapterTranslateEditionUID
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.ChapterTranslateEditionUID = append(m.ChapterTranslateEditionUID, v)
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDChapterTranslate); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDChapterTranslate)
		}
		n += cn
	}
	if !seenChapterTranslateID {
		return n, missing(IDChapterTranslate, IDChapterTranslateID)
	}
	if !seenChapterTranslateCodec {
		return n, missing(IDChapterTranslate, IDChapterTranslateCodec)
	}
	return n, nil
}
