package matroska

import "github.com/b01o/mkv-element/ebml"

// Tracks describes every track in the segment.
type Tracks struct {
	Crc32 *Crc32
	Void  *Void

	TrackEntry []TrackEntry
}

func (*Tracks) ID() ebml.ID { return IDTracks }

func (m *Tracks) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	for i := range m.TrackEntry {
		n += ebml.Size(&m.TrackEntry[i])
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *Tracks) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	for i := range m.TrackEntry {
		n += ebml.Put(b[n:], &m.TrackEntry[i])
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *Tracks) Unmarshal(b []byte, offset int) (int, error) {
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDTrackEntry:
			var v TrackEntry
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.TrackEntry = append(m.TrackEntry, v)
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDTracks); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDTracks)
		}
		n += cn
	}
	return n, nil
}

// TrackEntry describes one track. Flag and cache slots fall back to
// their schema defaults when absent.
type TrackEntry struct {
	Crc32 *Crc32
	Void  *Void

	TrackNumber                 TrackNumber
	TrackUID                    TrackUID
	TrackType                   TrackType
	FlagEnabled                 FlagEnabled
	FlagDefault                 FlagDefault
	FlagForced                  FlagForced
	FlagLacing                  FlagLacing
	MinCache                    MinCache
	MaxCache                    *MaxCache
	DefaultDuration             *DefaultDuration
	DefaultDecodedFieldDuration *DefaultDecodedFieldDuration
	MaxBlockAdditionID          MaxBlockAdditionID
	Name                        *Name
	Language                    Language
	CodecID                     CodecID
	CodecPrivate                *CodecPrivate
	CodecName                   *CodecName
	AttachmentLink              *AttachmentLink
	CodecDecodeAll              CodecDecodeAll
	TrackOverlay                []TrackOverlay
	CodecDelay                  CodecDelay
	SeekPreRoll                 SeekPreRoll
	TrackTranslate              []TrackTranslate
	Video                       *Video
	Audio                       *Audio
	ContentEncodings            *ContentEncodings
}

func (*TrackEntry) ID() ebml.ID { return IDTrackEntry }

func (m *TrackEntry) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	n += ebml.Size(&m.TrackNumber)
	n += ebml.Size(&m.TrackUID)
	n += ebml.Size(&m.TrackType)
	n += ebml.Size(&m.FlagEnabled)
	n += ebml.Size(&m.FlagDefault)
	n += ebml.Size(&m.FlagForced)
	n += ebml.Size(&m.FlagLacing)
	n += ebml.Size(&m.MinCache)
	if m.MaxCache != nil {
		n += ebml.Size(m.MaxCache)
	}
	if m.DefaultDuration != nil {
		n += ebml.Size(m.DefaultDuration)
	}
	if m.DefaultDecodedFieldDuration != nil {
		n += ebml.Size(m.DefaultDecodedFieldDuration)
	}
	n += ebml.Size(&m.MaxBlockAdditionID)
	if m.Name != nil {
		n += ebml.Size(m.Name)
	}
	n += ebml.Size(&m.Language)
	n += ebml.Size(&m.CodecID)
	if m.CodecPrivate != nil {
		n += ebml.Size(m.CodecPrivate)
	}
	if m.CodecName != nil {
		n += ebml.Size(m.CodecName)
	}
	if m.AttachmentLink != nil {
		n += ebml.Size(m.AttachmentLink)
	}
	n += ebml.Size(&m.CodecDecodeAll)
	for i := range m.TrackOverlay {
		n += ebml.Size(&m.TrackOverlay[i])
	}
	n += ebml.Size(&m.CodecDelay)
	n += ebml.Size(&m.SeekPreRoll)
	for i := range m.TrackTranslate {
		n += ebml.Size(&m.TrackTranslate[i])
	}
	if m.Video != nil {
		n += ebml.Size(m.Video)
	}
	if m.Audio != nil {
		n += ebml.Size(m.Audio)
	}
	if m.ContentEncodings != nil {
		n += ebml.Size(m.ContentEncodings)
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *TrackEntry) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	n += ebml.Put(b[n:], &m.TrackNumber)
	n += ebml.Put(b[n:], &m.TrackUID)
	n += ebml.Put(b[n:], &m.TrackType)
	n += ebml.Put(b[n:], &m.FlagEnabled)
	n += ebml.Put(b[n:], &m.FlagDefault)
	n += ebml.Put(b[n:], &m.FlagForced)
	n += ebml.Put(b[n:], &m.FlagLacing)
	n += ebml.Put(b[n:], &m.MinCache)
	if m.MaxCache != nil {
		n += ebml.Put(b[n:], m.MaxCache)
	}
	if m.DefaultDuration != nil {
		n += ebml.Put(b[n:], m.DefaultDuration)
	}
	if m.DefaultDecodedFieldDuration != nil {
		n += ebml.Put(b[n:], m.DefaultDecodedFieldDuration)
	}
	n += ebml.Put(b[n:], &m.MaxBlockAdditionID)
	if m.Name != nil {
		n += ebml.Put(b[n:], m.Name)
	}
	n += ebml.Put(b[n:], &m.Language)
	n += ebml.Put(b[n:], &m.CodecID)
	if m.CodecPrivate != nil {
		n += ebml.Put(b[n:], m.CodecPrivate)
	}
	if m.CodecName != nil {
		n += ebml.Put(b[n:], m.CodecName)
	}
	if m.AttachmentLink != nil {
		n += ebml.Put(b[n:], m.AttachmentLink)
	}
	n += ebml.Put(b[n:], &m.CodecDecodeAll)
	for i := range m.TrackOverlay {
		n += ebml.Put(b[n:], &m.TrackOverlay[i])
	}
	n += ebml.Put(b[n:], &m.CodecDelay)
	n += ebml.Put(b[n:], &m.SeekPreRoll)
	for i := range m.TrackTranslate {
		n += ebml.Put(b[n:], &m.TrackTranslate[i])
	}
	if m.Video != nil {
		n += ebml.Put(b[n:], m.Video)
	}
	if m.Audio != nil {
		n += ebml.Put(b[n:], m.Audio)
	}
	if m.ContentEncodings != nil {
		n += ebml.Put(b[n:], m.ContentEncodings)
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *TrackEntry) Unmarshal(b []byte, offset int) (int, error) {
	var seenTrackNumber, seenTrackUID, seenTrackType, seenFlagEnabled, seenFlagDefault, seenFlagForced, seenFlagLacing, seenMinCache, seenMaxBlockAdditionID, seenLanguage, seenCodecID, seenCodecDecodeAll, seenCodecDelay, seenSeekPreRoll bool
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDTrackNumber:
			if seenTrackNumber {
				return n, dup(IDTrackEntry, c.h.ID)
			}
			seenTrackNumber = true
			if err := c.decode(&m.TrackNumber); err != nil {
				return n, err
			}
		case IDTrackUID:
			if seenTrackUID {
				return n, dup(IDTrackEntry, c.h.ID)
			}
			seenTrackUID = true
			if err := c.decode(&m.TrackUID); err != nil {
				return n, err
			}
		case IDTrackType:
			if seenTrackType {
				return n, dup(IDTrackEntry, c.h.ID)
			}
			seenTrackType = true
			if err := c.decode(&m.TrackType); err != nil {
				return n, err
			}
		case IDFlagEnabled:
			if seenFlagEnabled {
				return n, dup(IDTrackEntry, c.h.ID)
			}
			seenFlagEnabled = true
			if err := c.decode(&m.FlagEnabled); err != nil {
				return n, err
			}
		case IDFlagDefault:
			if seenFlagDefault {
				return n, dup(IDTrackEntry, c.h.ID)
			}
			seenFlagDefault = true
			if err := c.decode(&m.FlagDefault); err != nil {
				return n, err
			}
		case IDFlagForced:
			if seenFlagForced {
				return n, dup(IDTrackEntry, c.h.ID)
			}
			seenFlagForced = true
			if err := c.decode(&m.FlagForced); err != nil {
				return n, err
			}
		case IDFlagLacing:
			if seenFlagLacing {
				return n, dup(IDTrackEntry, c.h.ID)
			}
			seenFlagLacing = true
			if err := c.decode(&m.FlagLacing); err != nil {
				return n, err
			}
		case IDMinCache:
			if seenMinCache {
				return n, dup(IDTrackEntry, c.h.ID)
			}
			seenMinCache = true
			if err := c.decode(&m.MinCache); err != nil {
				return n, err
			}
		case IDMaxCache:
			if m.MaxCache != nil {
				return n, dup(IDTrackEntry, c.h.ID)
			}
			m.MaxCache = new(MaxCache)
			if err := c.decode(m.MaxCache); err != nil {
				return n, err
			}
		case IDDefaultDuration:
			if m.DefaultDuration != nil {
				return n, dup(IDTrackEntry, c.h.ID)
			}
			m.DefaultDuration = new(DefaultDuration)
			if err := c.decode(m.DefaultDuration); err != nil {
				return n, err
			}
		case IDDefaultDecodedFieldDuration:
			if m.DefaultDecodedFieldDuration != nil {
				return n, dup(IDTrackEntry, c.h.ID)
			}
			m.DefaultDecodedFieldDuration = new(DefaultDecodedFieldDuration)
			if err := c.decode(m.DefaultDecodedFieldDuration); err != nil {
				return n, err
			}
		case IDMaxBlockAdditionID:
			if seenMaxBlockAdditionID {
				return n, dup(IDTrackEntry, c.h.ID)
			}
			seenMaxBlockAdditionID = true
			if err := c.decode(&m.MaxBlockAdditionID); err != nil {
				return n, err
			}
		case IDName:
			if m.Name != nil {
				return n, dup(IDTrackEntry, c.h.ID)
			}
			m.Name = new(Name)
			if err := c.decode(m.Name); err != nil {
				return n, err
			}
		case IDLanguage:
			if seenLanguage {
				return n, dup(IDTrackEntry, c.h.ID)
			}
			seenLanguage = true
			if err := c.decode(&m.Language); err != nil {
				return n, err
			}
		case IDCodecID:
			if seenCodecID {
				return n, dup(IDTrackEntry, c.h.ID)
			}
			seenCodecID = true
			if err := c.decode(&m.CodecID); err != nil {
				return n, err
			}
		case IDCodecPrivate:
			if m.CodecPrivate != nil {
				return n, dup(IDTrackEntry, c.h.ID)
			}
			m.CodecPrivate = new(CodecPrivate)
			if err := c.decode(m.CodecPrivate); err != nil {
				return n, err
			}
		case IDCodecName:
			if m.CodecName != nil {
				return n, dup(IDTrackEntry, c.h.ID)
			}
			m.CodecName = new(CodecName)
			if err := c.decode(m.CodecName); err != nil {
				return n, err
			}
		case IDAttachmentLink:
			if m.AttachmentLink != nil {
				return n, dup(IDTrackEntry, c.h.ID)
			}
			m.AttachmentLink = new(AttachmentLink)
			if err := c.decode(m.AttachmentLink); err != nil {
				return n, err
			}
		case IDCodecDecodeAll:
			if seenCodecDecodeAll {
				return n, dup(IDTrackEntry, c.h.ID)
			}
			seenCodecDecodeAll = true
			if err := c.decode(&m.CodecDecodeAll); err != nil {
				return n, err
			}
		case IDTrackOverlay:
			var v TrackOverlay
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.TrackOverlay = append(m.TrackOverlay, v)
		case IDCodecDelay:
			if seenCodecDelay {
				return n, dup(IDTrackEntry, c.h.ID)
			}
			seenCodecDelay = true
			if err := c.decode(&m.CodecDelay); err != nil {
				return n, err
			}
		case IDSeekPreRoll:
			if seenSeekPreRoll {
				return n, dup(IDTrackEntry, c.h.ID)
			}
			seenSeekPreRoll = true
			if err := c.decode(&m.SeekPreRoll); err != nil {
				return n, err
			}
		case IDTrackTranslate:
			var v TrackTranslate
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.TrackTranslate = append(m.TrackTranslate, v)
		case IDVideo:
			if m.Video != nil {
				return n, dup(IDTrackEntry, c.h.ID)
			}
			m.Video = new(Video)
			if err := c.decode(m.Video); err != nil {
				return n, err
			}
		case IDAudio:
			if m.Audio != nil {
				return n, dup(IDTrackEntry, c.h.ID)
			}
			m.Audio = new(Audio)
			if err := c.decode(m.Audio); err != nil {
				return n, err
			}
		case IDContentEncodings:
			if m.ContentEncodings != nil {
				return n, dup(IDTrackEntry, c.h.ID)
			}
			m.ContentEncodings = new(ContentEncodings)
			if err := c.decode(m.ContentEncodings); err != nil {
				return n, err
			}
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDTrackEntry); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDTrackEntry)
		}
		n += cn
	}
	if !seenTrackNumber {
		return n, missing(IDTrackEntry, IDTrackNumber)
	}
	if !seenTrackUID {
		return n, missing(IDTrackEntry, IDTrackUID)
	}
	if !seenTrackType {
		return n, missing(IDTrackEntry, IDTrackType)
	}
	if !seenFlagEnabled {
		m.FlagEnabled = 1
	}
	if !seenFlagDefault {
		m.FlagDefault = 1
	}
	if !seenFlagLacing {
		m.FlagLacing = 1
	}
	if !seenLanguage {
		m.Language = "eng"
	}
	if !seenCodecID {
		return n, missing(IDTrackEntry, IDCodecID)
	}
	if !seenCodecDecodeAll {
		m.CodecDecodeAll = 1
	}
	return n, nil
}

// TrackTranslate maps this track to a track value in a chapter
// codec's own addressing.
type TrackTranslate struct {
	Crc32 *Crc32
	Void  *Void

	TrackTranslateTrackID    TrackTranslateTrackID
	TrackTranslateCodec      TrackTranslateCodec
	TrackTranslateEditionUID []TrackTranslateEditionUID
}

func (*TrackTranslate) ID() ebml.ID { return IDTrackTranslate }

func (m *TrackTranslate) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	n += ebml.Size(&m.TrackTranslateTrackID)
	n += ebml.Size(&m.TrackTranslateCodec)
	for i := range m.TrackTranslateEditionUID {
		n += ebml.Size(&m.TrackTranslateEditionUID[i])
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *TrackTranslate) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	n += ebml.Put(b[n:], &m.TrackTranslateTrackID)
	n += ebml.Put(b[n:], &m.TrackTranslateCodec)
	for i := range m.TrackTranslateEditionUID {
		n += ebml.Put(b[n:], &m.TrackTranslateEditionUID[i])
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *TrackTranslate) Unmarshal(b []byte, offset int) (int, error) {
	var seenTrackTranslateTrackID, seenTrackTranslateCodec bool
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDTrackTranslateTrackID:
			if seenTrackTranslateTrackID {
				return n, dup(IDTrackTranslate, c.h.ID)
			}
			seenTrackTranslateTrackID = true
			if err := c.decode(&m.TrackTranslateTrackID); err != nil {
				return n, err
			}
		case IDTrackTranslateCodec:
			if seenTrackTranslateCodec {
				return n, dup(IDTrackTranslate, c.h.ID)
			}
			seenTrackTranslateCodec = true
			if err := c.decode(&m.TrackTranslateCodec); err != nil {
				return n, err
			}
		case IDTrackTranslateEditionUID:
			var v TrackTranslateEditionUID
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.TrackTranslateEditionUID = append(m.TrackTranslateEditionUID, v)
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDTrackTranslate); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDTrackTranslate)
		}
		n += cn
	}
	if !seenTrackTranslateTrackID {
		return n, missing(IDTrackTranslate, IDTrackTranslateTrackID)
	}
	if !seenTrackTranslateCodec {
		return n, missing(IDTrackTranslate, IDTrackTranslateCodec)
	}
	return n, nil
}

// Video holds video-only settings of a track entry.
type Video struct {
	Crc32 *Crc32
	Void  *Void

	FlagInterlaced  FlagInterlaced
	StereoMode      StereoMode
	AlphaMode       AlphaMode
	PixelWidth      PixelWidth
	PixelHeight     PixelHeight
	PixelCropBottom PixelCropBottom
	PixelCropTop    PixelCropTop
	PixelCropLeft   PixelCropLeft
	PixelCropRight  PixelCropRight
	DisplayWidth    *DisplayWidth
	DisplayHeight   *DisplayHeight
	DisplayUnit     DisplayUnit
	AspectRatioType AspectRatioType
	ColourSpace     *ColourSpace
}

func (*Video) ID() ebml.ID { return IDVideo }

func (m *Video) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	n += ebml.Size(&m.FlagInterlaced)
	n += ebml.Size(&m.StereoMode)
	n += ebml.Size(&m.AlphaMode)
	n += ebml.Size(&m.PixelWidth)
	n += ebml.Size(&m.PixelHeight)
	n += ebml.Size(&m.PixelCropBottom)
	n += ebml.Size(&m.PixelCropTop)
	n += ebml.Size(&m.PixelCropLeft)
	n += ebml.Size(&m.PixelCropRight)
	if m.DisplayWidth != nil {
		n += ebml.Size(m.DisplayWidth)
	}
	if m.DisplayHeight != nil {
		n += ebml.Size(m.DisplayHeight)
	}
	n += ebml.Size(&m.DisplayUnit)
	n += ebml.Size(&m.AspectRatioType)
	if m.ColourSpace != nil {
		n += ebml.Size(m.ColourSpace)
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *Video) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	n += ebml.Put(b[n:], &m.FlagInterlaced)
	n += ebml.Put(b[n:], &m.StereoMode)
	n += ebml.Put(b[n:], &m.AlphaMode)
	n += ebml.Put(b[n:], &m.PixelWidth)
	n += ebml.Put(b[n:], &m.PixelHeight)
	n += ebml.Put(b[n:], &m.PixelCropBottom)
	n += ebml.Put(b[n:], &m.PixelCropTop)
	n += ebml.Put(b[n:], &m.PixelCropLeft)
	n += ebml.Put(b[n:], &m.PixelCropRight)
	if m.DisplayWidth != nil {
		n += ebml.Put(b[n:], m.DisplayWidth)
	}
	if m.DisplayHeight != nil {
		n += ebml.Put(b[n:], m.DisplayHeight)
	}
	n += ebml.Put(b[n:], &m.DisplayUnit)
	n += ebml.Put(b[n:], &m.AspectRatioType)
	if m.ColourSpace != nil {
		n += ebml.Put(b[n:], m.ColourSpace)
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *Video) Unmarshal(b []byte, offset int) (int, error) {
	var seenFlagInterlaced, seenStereoMode, seenAlphaMode, seenPixelWidth, seenPixelHeight, seenPixelCropBottom, seenPixelCropTop, seenPixelCropLeft, seenPixelCropRight, seenDisplayUnit, seenAspectRatioType bool
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDFlagInterlaced:
			if seenFlagInterlaced {
				return n, dup(IDVideo, c.h.ID)
			}
			seenFlagInterlaced = true
			if err := c.decode(&m.FlagInterlaced); err != nil {
				return n, err
			}
		case IDStereoMode:
			if seenStereoMode {
				return n, dup(IDVideo, c.h.ID)
			}
			seenStereoMode = true
			if err := c.decode(&m.StereoMode); err != nil {
				return n, err
			}
		case IDAlphaMode:
			if seenAlphaMode {
				return n, dup(IDVideo, c.h.ID)
			}
			seenAlphaMode = true
			if err := c.decode(&m.AlphaMode); err != nil {
				return n, err
			}
		case IDPixelWidth:
			if seenPixelWidth {
				return n, dup(IDVideo, c.h.ID)
			}
			seenPixelWidth = true
			if err := c.decode(&m.PixelWidth); err != nil {
				return n, err
			}
		case IDPixelHeight:
			if seenPixelHeight {
				return n, dup(IDVideo, c.h.ID)
			}
			seenPixelHeight = true
			if err := c.decode(&m.PixelHeight); err != nil {
				return n, err
			}
		case IDPixelCropBottom:
			if seenPixelCropBottom {
				return n, dup(IDVideo, c.h.ID)
			}
			seenPixelCropBottom = true
			if err := c.decode(&m.PixelCropBottom); err != nil {
				return n, err
			}
		case IDPixelCropTop:
			if seenPixelCropTop {
				return n, dup(IDVideo, c.h.ID)
			}
			seenPixelCropTop = true
			if err := c.decode(&m.PixelCropTop); err != nil {
				return n, err
			}
		case IDPixelCropLeft:
			if seenPixelCropLeft {
				return n, dup(IDVideo, c.h.ID)
			}
			seenPixelCropLeft = true
			if err := c.decode(&m.PixelCropLeft); err != nil {
				return n, err
			}
		case IDPixelCropRight:
			if seenPixelCropRight {
				return n, dup(IDVideo, c.h.ID)
			}
			seenPixelCropRight = true
			if err := c.decode(&m.PixelCropRight); err != nil {
				return n, err
			}
		case IDDisplayWidth:
			if m.DisplayWidth != nil {
				return n, dup(IDVideo, c.h.ID)
			}
			m.DisplayWidth = new(DisplayWidth)
			if err := c.decode(m.DisplayWidth); err != nil {
				return n, err
			}
		case IDDisplayHeight:
			if m.DisplayHeight != nil {
				return n, dup(IDVideo, c.h.ID)
			}
			m.DisplayHeight = new(DisplayHeight)
			if err := c.decode(m.DisplayHeight); err != nil {
				return n, err
			}
		case IDDisplayUnit:
			if seenDisplayUnit {
				return n, dup(IDVideo, c.h.ID)
			}
			seenDisplayUnit = true
			if err := c.decode(&m.DisplayUnit); err != nil {
				return n, err
			}
		case IDAspectRatioType:
			if seenAspectRatioType {
				return n, dup(IDVideo, c.h.ID)
			}
			seenAspectRatioType = true
			if err := c.decode(&m.AspectRatioType); err != nil {
				return n, err
			}
		case IDColourSpace:
			if m.ColourSpace != nil {
				return n, dup(IDVideo, c.h.ID)
			}
			m.ColourSpace = new(ColourSpace)
			if err := c.decode(m.ColourSpace); err != nil {
				return n, err
			}
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDVideo); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDVideo)
		}
		n += cn
	}
	if !seenPixelWidth {
		return n, missing(IDVideo, IDPixelWidth)
	}
	if !seenPixelHeight {
		return n, missing(IDVideo, IDPixelHeight)
	}
	return n, nil
}

// Audio holds audio-only settings of a track entry.
type Audio struct {
	Crc32 *Crc32
	Void  *Void

	SamplingFrequency       SamplingFrequency
	OutputSamplingFrequency *OutputSamplingFrequency
	Channels                Channels
	BitDepth                *BitDepth
}

func (*Audio) ID() ebml.ID { return IDAudio }

func (m *Audio) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	n += ebml.Size(&m.SamplingFrequency)
	if m.OutputSamplingFrequency != nil {
		n += ebml.Size(m.OutputSamplingFrequency)
	}
	n += ebml.Size(&m.Channels)
	if m.BitDepth != nil {
		n += ebml.Size(m.BitDepth)
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *Audio) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	n += ebml.Put(b[n:], &m.SamplingFrequency)
	if m.OutputSamplingFrequency != nil {
		n += ebml.Put(b[n:], m.OutputSamplingFrequency)
	}
	n += ebml.Put(b[n:], &m.Channels)
	if m.BitDepth != nil {
		n += ebml.Put(b[n:], m.BitDepth)
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *Audio) Unmarshal(b []byte, offset int) (int, error) {
	var seenSamplingFrequency, seenChannels bool
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDSamplingFrequency:
			if seenSamplingFrequency {
				return n, dup(IDAudio, c.h.ID)
			}
			seenSamplingFrequency = true
			if err := c.decode(&m.SamplingFrequency); err != nil {
				return n, err
			}
		case IDOutputSamplingFrequency:
			if m.OutputSamplingFrequency != nil {
				return n, dup(IDAudio, c.h.ID)
			}
			m.OutputSamplingFrequency = new(OutputSamplingFrequency)
			if err := c.decode(m.OutputSamplingFrequency); err != nil {
				return n, err
			}
		case IDChannels:
			if seenChannels {
				return n, dup(IDAudio, c.h.ID)
			}
			seenChannels = true
			if err := c.decode(&m.Channels); err != nil {
				return n, err
			}
		case IDBitDepth:
			if m.BitDepth != nil {
				return n, dup(IDAudio, c.h.ID)
			}
			m.BitDepth = new(BitDepth)
			if err := c.decode(m.BitDepth); err != nil {
				return n, err
			}
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDAudio); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDAudio)
		}
		n += cn
	}
	if !seenSamplingFrequency {
		m.SamplingFrequency = 8000
	}
	if !seenChannels {
		m.Channels = 1
	}
	return n, nil
}

// ContentEncodings lists the transformations applied to the track's
// frame data.
type ContentEncodings struct {
	Crc32 *Crc32
	Void  *Void

	ContentEncoding []ContentEncoding
}

func (*ContentEncodings) ID() ebml.ID { return IDContentEncodings }

func (m *ContentEncodings) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	for i := range m.ContentEncoding {
		n += ebml.Size(&m.ContentEncoding[i])
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *ContentEncodings) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	for i := range m.ContentEncoding {
		n += ebml.Put(b[n:], &m.ContentEncoding[i])
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *ContentEncodings) Unmarshal(b []byte, offset int) (int, error) {
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDContentEncoding:
			var v ContentEncoding
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.ContentEncoding = append(m.ContentEncoding, v)
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDContentEncodings); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDContentEncodings)
		}
		n += cn
	}
	return n, nil
}

// ContentEncoding is one transformation in a track's encoding
// pipeline, ordered by ContentEncodingOrder.
type ContentEncoding struct {
	Crc32 *Crc32
	Void  *Void

	ContentEncodingOrder ContentEncodingOrder
	ContentEncodingScope ContentEncodingScope
	ContentEncodingType  ContentEncodingType
	ContentCompression   *ContentCompression
	ContentEncryption    *ContentEncryption
}

func (*ContentEncoding) ID() ebml.ID { return IDContentEncoding }

func (m *ContentEncoding) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	n += ebml.Size(&m.ContentEncodingOrder)
	n += ebml.Size(&m.ContentEncodingScope)
	n += ebml.Size(&m.ContentEncodingType)
	if m.ContentCompression != nil {
		n += ebml.Size(m.ContentCompression)
	}
	if m.ContentEncryption != nil {
		n += ebml.Size(m.ContentEncryption)
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *ContentEncoding) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	n += ebml.Put(b[n:], &m.ContentEncodingOrder)
	n += ebml.Put(b[n:], &m.ContentEncodingScope)
	n += ebml.Put(b[n:], &m.ContentEncodingType)
	if m.ContentCompression != nil {
		n += ebml.Put(b[n:], m.ContentCompression)
	}
	if m.ContentEncryption != nil {
		n += ebml.Put(b[n:], m.ContentEncryption)
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *ContentEncoding) Unmarshal(b []byte, offset int) (int, error) {
	var seenContentEncodingOrder, seenContentEncodingScope, seenContentEncodingType bool
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDContentEncodingOrder:
			if seenContentEncodingOrder {
				return n, dup(IDContentEncoding, c.h.ID)
			}
			seenContentEncodingOrder = true
			if err := c.decode(&m.ContentEncodingOrder); err != nil {
				return n, err
			}
		case IDContentEncodingScope:
			if seenContentEncodingScope {
				return n, dup(IDContentEncoding, c.h.ID)
			}
			seenContentEncodingScope = true
			if err := c.decode(&m.ContentEncodingScope); err != nil {
				return n, err
			}
		case IDContentEncodingType:
			if seenContentEncodingType {
				return n, dup(IDContentEncoding, c.h.ID)
			}
			seenContentEncodingType = true
			if err := c.decode(&m.ContentEncodingType); err != nil {
				return n, err
			}
		case IDContentCompression:
			if m.ContentCompression != nil {
				return n, dup(IDContentEncoding, c.h.ID)
			}
			m.ContentCompression = new(ContentCompression)
			if err := c.decode(m.ContentCompression); err != nil {
				return n, err
			}
		case IDContentEncryption:
			if m.ContentEncryption != nil {
				return n, dup(IDContentEncoding, c.h.ID)
			}
			m.ContentEncryption = new(ContentEncryption)
			if err := c.decode(m.ContentEncryption); err != nil {
				return n, err
			}
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDContentEncoding); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDContentEncoding)
		}
		n += cn
	}
	if !seenContentEncodingScope {
		m.ContentEncodingScope = 1
	}
	return n, nil
}

// ContentCompression selects the compression algorithm and its
// settings.
type ContentCompression struct {
	Crc32 *Crc32
	Void  *Void

	ContentCompAlgo     ContentCompAlgo
	ContentCompSettings *ContentCompSettings
}

func (*ContentCompression) ID() ebml.ID { return IDContentCompression }

func (m *ContentCompression) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	n += ebml.Size(&m.ContentCompAlgo)
	if m.ContentCompSettings != nil {
		n += ebml.Size(m.ContentCompSettings)
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *ContentCompression) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	n += ebml.Put(b[n:], &m.ContentCompAlgo)
	if m.ContentCompSettings != nil {
		n += ebml.Put(b[n:], m.ContentCompSettings)
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *ContentCompression) Unmarshal(b []byte, offset int) (int, error) {
	var seenContentCompAlgo bool
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDContentCompAlgo:
			if seenContentCompAlgo {
				return n, dup(IDContentCompression, c.h.ID)
			}
			seenContentCompAlgo = true
			if err := c.decode(&m.ContentCompAlgo); err != nil {
				return n, err
			}
		case IDContentCompSettings:
			if m.ContentCompSettings != nil {
				return n, dup(IDContentCompression, c.h.ID)
			}
			m.ContentCompSettings = new(ContentCompSettings)
			if err := c.decode(m.ContentCompSettings); err != nil {
				return n, err
			}
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDContentCompression); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDContentCompression)
		}
		n += cn
	}
	return n, nil
}

// ContentEncryption describes how the track data is encrypted and
// signed. Carried structurally; this library does not decrypt.
type ContentEncryption struct {
	Crc32 *Crc32
	Void  *Void

	ContentEncAlgo     ContentEncAlgo
	ContentEncKeyID    *ContentEncKeyID
	ContentSignature   *ContentSignature
	ContentSigKeyID    *ContentSigKeyID
	ContentSigAlgo     *ContentSigAlgo
	ContentSigHashAlgo *ContentSigHashAlgo
}

func (*ContentEncryption) ID() ebml.ID { return IDContentEncryption }

func (m *ContentEncryption) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	n += ebml.Size(&m.ContentEncAlgo)
	if m.ContentEncKeyID != nil {
		n += ebml.Size(m.ContentEncKeyID)
	}
	if m.ContentSignature != nil {
		n += ebml.Size(m.ContentSignature)
	}
	if m.ContentSigKeyID != nil {
		n += ebml.Size(m.ContentSigKeyID)
	}
	if m.ContentSigAlgo != nil {
		n += ebml.Size(m.ContentSigAlgo)
	}
	if m.ContentSigHashAlgo != nil {
		n += ebml.Size(m.ContentSigHashAlgo)
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *ContentEncryption) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	n += ebml.Put(b[n:], &m.ContentEncAlgo)
	if m.ContentEncKeyID != nil {
		n += ebml.Put(b[n:], m.ContentEncKeyID)
	}
	if m.ContentSignature != nil {
		n += ebml.Put(b[n:], m.ContentSignature)
	}
	if m.ContentSigKeyID != nil {
		n += ebml.Put(b[n:], m.ContentSigKeyID)
	}
	if m.ContentSigAlgo != nil {
		n += ebml.Put(b[n:], m.ContentSigAlgo)
	}
	if m.ContentSigHashAlgo != nil {
		n += ebml.Put(b[n:], m.ContentSigHashAlgo)
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *ContentEncryption) Unmarshal(b []byte, offset int) (int, error) {
	var seenContentEncAlgo bool
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDContentEncAlgo:
			if seenContentEncAlgo {
				return n, dup(IDContentEncryption, c.h.ID)
			}
			seenContentEncAlgo = true
			if err := c.decode(&m.ContentEncAlgo); err != nil {
				return n, err
			}
		case IDContentEncKeyID:
			if m.ContentEncKeyID != nil {
				return n, dup(IDContentEncryption, c.h.ID)
			}
			m.ContentEncKeyID = new(ContentEncKeyID)
			if err := c.decode(m.ContentEncKeyID); err != nil {
				return n, err
			}
		case IDContentSignature:
			if m.ContentSignature != nil {
				return n, dup(IDContentEncryption, c.h.ID)
			}
			m.ContentSignature = new(ContentSignature)
			if err := c.decode(m.ContentSignature); err != nil {
				return n, err
			}
		case IDContentSigKeyID:
			if m.ContentSigKeyID != nil {
				return n, dup(IDContentEncryption, c.h.ID)
			}
			m.ContentSigKeyID = new(ContentSigKeyID)
			if err := c.decode(m.ContentSigKeyID); err != nil {
				return n, err
			}
		case IDContentSigAlgo:
			if m.ContentSigAlgo != nil {
				return n, dup(IDContentEncryption, c.h.ID)
			}
			m.ContentSigAlgo = new(ContentSigAlgo)
			if err := c.decode(m.ContentSigAlgo); err != nil {
				return n, err
			}
		case IDContentSigHashAlgo:
			if m.ContentSigHashAlgo != nil {
				return n, dup(IDContentEncryption, c.h.ID)
			}
			m.ContentSigHashAlgo = new(ContentSigHashAlgo)
			if err := c.decode(m.ContentSigHashAlgo); err != nil {
				return n, err
			}
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDContentEncryption); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDContentEncryption)
		}
		n += cn
	}
	return n, nil
}
