package matroska

import "github.com/b01o/mkv-element/ebml"

// Tags holds metadata describing tracks, editions, chapters,
// attachments, or the segment as a whole.
type Tags struct {
	Crc32 *Crc32
	Void  *Void

	Tag []Tag
}

func (*Tags) ID() ebml.ID { return IDTags }

func (m *Tags) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	for i := range m.Tag {
		n += ebml.Size(&m.Tag[i])
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *Tags) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	for i := range m.Tag {
		n += ebml.Put(b[n:], &m.Tag[i])
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *Tags) Unmarshal(b []byte, offset int) (int, error) {
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDTag:
			var v Tag
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.Tag = append(m.Tag, v)
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDTags); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDTags)
		}
		n += cn
	}
	return n, nil
}

// Tag binds a set of simple tags to the targets they describe.
type Tag struct {
	Crc32 *Crc32
	Void  *Void

	Targets   Targets
	SimpleTag []SimpleTag
}

func (*Tag) ID() ebml.ID { return IDTag }

func (m *Tag) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	n += ebml.Size(&m.Targets)
	for i := range m.SimpleTag {
		n += ebml.Size(&m.SimpleTag[i])
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *Tag) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	n += ebml.Put(b[n:], &m.Targets)
	for i := range m.SimpleTag {
		n += ebml.Put(b[n:], &m.SimpleTag[i])
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *Tag) Unmarshal(b []byte, offset int) (int, error) {
	var seenTargets bool
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDTargets:
			if seenTargets {
				return n, dup(IDTag, c.h.ID)
			}
			seenTargets = true
			if err := c.decode(&m.Targets); err != nil {
				return n, err
			}
		case IDSimpleTag:
			var v SimpleTag
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.SimpleTag = append(m.SimpleTag, v)
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDTag); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDTag)
		}
		n += cn
	}
	if !seenTargets {
		return n, missing(IDTag, IDTargets)
	}
	return n, nil
}

// Targets selects what a tag applies to. TargetTypeValue falls back
// to its schema default (50, the album/movie level) when absent.
type Targets struct {
	Crc32 *Crc32
	Void  *Void

	TargetTypeValue  TargetTypeValue
	TargetType       *TargetType
	TagTrackUID      []TagTrackUID
	TagEditionUID    []TagEditionUID
	TagChapterUID    []TagChapterUID
	TagAttachmentUID []TagAttachmentUID
}

func (*Targets) ID() ebml.ID { return IDTargets }

func (m *Targets) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	n += ebml.Size(&m.TargetTypeValue)
	if m.TargetType != nil {
		n += ebml.Size(m.TargetType)
	}
	for i := range m.TagTrackUID {
		n += ebml.Size(&m.TagTrackUID[i])
	}
	for i := range m.TagEditionUID {
		n += ebml.Size(&m.TagEditionUID[i])
	}
	for i := range m.TagChapterUID {
		n += ebml.Size(&m.TagChapterUID[i])
	}
	for i := range m.TagAttachmentUID {
		n += ebml.Size(&m.TagAttachmentUID[i])
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *Targets) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	n += ebml.Put(b[n:], &m.TargetTypeValue)
	if m.TargetType != nil {
		n += ebml.Put(b[n:], m.TargetType)
	}
	for i := range m.TagTrackUID {
		n += ebml.Put(b[n:], &m.TagTrackUID[i])
	}
	for i := range m.TagEditionUID {
		n += ebml.Put(b[n:], &m.TagEditionUID[i])
	}
	for i := range m.TagChapterUID {
		n += ebml.Put(b[n:], &m.TagChapterUID[i])
	}
	for i := range m.TagAttachmentUID {
		n += ebml.Put(b[n:], &m.TagAttachmentUID[i])
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *Targets) Unmarshal(b []byte, offset int) (int, error) {
	var seenTargetTypeValue bool
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDTargetTypeValue:
			if seenTargetTypeValue {
				return n, dup(IDTargets, c.h.ID)
			}
			seenTargetTypeValue = true
			if err := c.decode(&m.TargetTypeValue); err != nil {
				return n, err
			}
		case IDTargetType:
			if m.TargetType != nil {
				return n, dup(IDTargets, c.h.ID)
			}
			m.TargetType = new(TargetType)
			if err := c.decode(m.TargetType); err != nil {
				return n, err
			}
		case IDTagTrackUID:
			var v TagTrackUID
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.TagTrackUID = append(m.TagTrackUID, v)
		case IDTagEditionUID:
			var v TagEditionUID
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.TagEditionUID = append(m.TagEditionUID, v)
		case IDTagChapterUID:
			var v TagChapterUID
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.TagChapterUID = append(m.TagChapterUID, v)
		case IDTagAttachmentUID:
			var v TagAttachmentUID
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.TagAttachmentUID = append(m.TagAttachmentUID, v)
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDTargets); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDTargets)
		}
		n += cn
	}
	if !seenTargetTypeValue {
		m.TargetTypeValue = 50
	}
	return n, nil
}

// SimpleTag is one name/value metadata pair.
type SimpleTag struct {
	Crc32 *Crc32
	Void  *Void

	TagName     TagName
	TagLanguage TagLanguage
	TagDefault  TagDefault
	TagString   *TagString
	TagBinary   *TagBinary
}

func (*SimpleTag) ID() ebml.ID { return IDSimpleTag }

func (m *SimpleTag) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	n += ebml.Size(&m.TagName)
	n += ebml.Size(&m.TagLanguage)
	n += ebml.Size(&m.TagDefault)
	if m.TagString != nil {
		n += ebml.Size(m.TagString)
	}
	if m.TagBinary != nil {
		n += ebml.Size(m.TagBinary)
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *SimpleTag) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	n += ebml.Put(b[n:], &m.TagName)
	n += ebml.Put(b[n:], &m.TagLanguage)
	n += ebml.Put(b[n:], &m.TagDefault)
	if m.TagString != nil {
		n += ebml.Put(b[n:], m.TagString)
	}
	if m.TagBinary != nil {
		n += ebml.Put(b[n:], m.TagBinary)
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *SimpleTag) Unmarshal(b []byte, offset int) (int, error) {
	var seenTagName, seenTagLanguage, seenTagDefault bool
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDTagName:
			if seenTagName {
				return n, dup(IDSimpleTag, c.h.ID)
			}
			seenTagName = true
			if err := c.decode(&m.TagName); err != nil {
				return n, err
			}
		case IDTagLanguage:
			if seenTagLanguage {
				return n, dup(IDSimpleTag, c.h.ID)
			}
			seenTagLanguage = true
			if err := c.decode(&m.TagLanguage); err != nil {
				return n, err
			}
		case IDTagDefault:
			if seenTagDefault {
				return n, dup(IDSimpleTag, c.h.ID)
			}
			seenTagDefault = true
			if err := c.decode(&m.TagDefault); err != nil {
				return n, err
			}
		case IDTagString:
			if m.TagString != nil {
				return n, dup(IDSimpleTag, c.h.ID)
			}
			m.TagString = new(TagString)
			if err := c.decode(m.TagString); err != nil {
				return n, err
			}
		case IDTagBinary:
			if m.TagBinary != nil {
				return n, dup(IDSimpleTag, c.h.ID)
			}
			m.TagBinary = new(TagBinary)
			if err := c.decode(m.TagBinary); err != nil {
				return n, err
			}
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDSimpleTag); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDSimpleTag)
		}
		n += cn
	}
	if !seenTagName {
		return n, missing(IDSimpleTag, IDTagName)
	}
	if !seenTagLanguage {
		m.TagLanguage = "und"
	}
	if !seenTagDefault {
		m.TagDefault = 1
	}
	return n, nil
}
