package matroska

import "github.com/b01o/mkv-element/ebml"

// Chapters defines basic menus and partition data.
type Chapters struct {
	Crc32 *Crc32
	Void  *Void

	EditionEntry []EditionEntry
}

func (*Chapters) ID() ebml.ID { return IDChapters }

func (m *Chapters) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	for i := range m.EditionEntry {
		n += ebml.Size(&m.EditionEntry[i])
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *Chapters) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	for i := range m.EditionEntry {
		n += ebml.Put(b[n:], &m.EditionEntry[i])
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *Chapters) Unmarshal(b []byte, offset int) (int, error) {
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDEditionEntry:
			var v EditionEntry
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.EditionEntry = append(m.EditionEntry, v)
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDChapters); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDChapters)
		}
		n += cn
	}
	return n, nil
}

// EditionEntry is one set of chapters.
type EditionEntry struct {
	Crc32 *Crc32
	Void  *Void

	EditionUID         *EditionUID
	EditionFlagHidden  EditionFlagHidden
	EditionFlagDefault EditionFlagDefault
	EditionFlagOrdered EditionFlagOrdered
	ChapterAtom        []ChapterAtom
}

func (*EditionEntry) ID() ebml.ID { return IDEditionEntry }

func (m *EditionEntry) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	if m.EditionUID != nil {
		n += ebml.Size(m.EditionUID)
	}
	n += ebml.Size(&m.EditionFlagHidden)
	n += ebml.Size(&m.EditionFlagDefault)
	n += ebml.Size(&m.EditionFlagOrdered)
	for i := range m.ChapterAtom {
		n += ebml.Size(&m.ChapterAtom[i])
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *EditionEntry) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	if m.EditionUID != nil {
		n += ebml.Put(b[n:], m.EditionUID)
	}
	n += ebml.Put(b[n:], &m.EditionFlagHidden)
	n += ebml.Put(b[n:], &m.EditionFlagDefault)
	n += ebml.Put(b[n:], &m.EditionFlagOrdered)
	for i := range m.ChapterAtom {
		n += ebml.Put(b[n:], &m.ChapterAtom[i])
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *EditionEntry) Unmarshal(b []byte, offset int) (int, error) {
	var seenEditionFlagHidden, seenEditionFlagDefault, seenEditionFlagOrdered bool
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDEditionUID:
			if m.EditionUID != nil {
				return n, dup(IDEditionEntry, c.h.ID)
			}
			m.EditionUID = new(EditionUID)
			if err := c.decode(m.EditionUID); err != nil {
				return n, err
			}
		case IDEditionFlagHidden:
			if seenEditionFlagHidden {
				return n, dup(IDEditionEntry, c.h.ID)
			}
			seenEditionFlagHidden = true
			if err := c.decode(&m.EditionFlagHidden); err != nil {
				return n, err
			}
		case IDEditionFlagDefault:
			if seenEditionFlagDefault {
				return n, dup(IDEditionEntry, c.h.ID)
			}
			seenEditionFlagDefault = true
			if err := c.decode(&m.EditionFlagDefault); err != nil {
				return n, err
			}
		case IDEditionFlagOrdered:
			if seenEditionFlagOrdered {
				return n, dup(IDEditionEntry, c.h.ID)
			}
			seenEditionFlagOrdered = true
			if err := c.decode(&m.EditionFlagOrdered); err != nil {
				return n, err
			}
		case IDChapterAtom:
			var v ChapterAtom
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.ChapterAtom = append(m.ChapterAtom, v)
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDEditionEntry); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDEditionEntry)
		}
		n += cn
	}
	return n, nil
}

// ChapterAtom is one chapter and its timing.
type ChapterAtom struct {
	Crc32 *Crc32
	Void  *Void

	ChapterUID               ChapterUID
	ChapterStringUID         *ChapterStringUID
	ChapterTimeStart         ChapterTimeStart
	ChapterTimeEnd           *ChapterTimeEnd
	ChapterFlagHidden        ChapterFlagHidden
	ChapterFlagEnabled       ChapterFlagEnabled
	ChapterSegmentUID        *ChapterSegmentUID
	ChapterSegmentEditionUID *ChapterSegmentEditionUID
	ChapterPhysicalEquiv     *ChapterPhysicalEquiv
	ChapterTrack             *ChapterTrack
	ChapterDisplay           []ChapterDisplay
}

func (*ChapterAtom) ID() ebml.ID { return IDChapterAtom }

func (m *ChapterAtom) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	n += ebml.Size(&m.ChapterUID)
	if m.ChapterStringUID != nil {
		n += ebml.Size(m.ChapterStringUID)
	}
	n += ebml.Size(&m.ChapterTimeStart)
	if m.ChapterTimeEnd != nil {
		n += ebml.Size(m.ChapterTimeEnd)
	}
	n += ebml.Size(&m.ChapterFlagHidden)
	n += ebml.Size(&m.ChapterFlagEnabled)
	if m.ChapterSegmentUID != nil {
		n += ebml.Size(m.ChapterSegmentUID)
	}
	if m.ChapterSegmentEditionUID != nil {
		n += ebml.Size(m.ChapterSegmentEditionUID)
	}
	if m.ChapterPhysicalEquiv != nil {
		n += ebml.Size(m.ChapterPhysicalEquiv)
	}
	if m.ChapterTrack != nil {
		n += ebml.Size(m.ChapterTrack)
	}
	for i := range m.ChapterDisplay {
		n += ebml.Size(&m.ChapterDisplay[i])
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *ChapterAtom) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	n += ebml.Put(b[n:], &m.ChapterUID)
	if m.ChapterStringUID != nil {
		n += ebml.Put(b[n:], m.ChapterStringUID)
	}
	n += ebml.Put(b[n:], &m.ChapterTimeStart)
	if m.ChapterTimeEnd != nil {
		n += ebml.Put(b[n:], m.ChapterTimeEnd)
	}
	n += ebml.Put(b[n:], &m.ChapterFlagHidden)
	n += ebml.Put(b[n:], &m.ChapterFlagEnabled)
	if m.ChapterSegmentUID != nil {
		n += ebml.Put(b[n:], m.ChapterSegmentUID)
	}
	if m.ChapterSegmentEditionUID != nil {
		n += ebml.Put(b[n:], m.ChapterSegmentEditionUID)
	}
	if m.ChapterPhysicalEquiv != nil {
		n += ebml.Put(b[n:], m.ChapterPhysicalEquiv)
	}
	if m.ChapterTrack != nil {
		n += ebml.Put(b[n:], m.ChapterTrack)
	}
	for i := range m.ChapterDisplay {
		n += ebml.Put(b[n:], &m.ChapterDisplay[i])
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *ChapterAtom) Unmarshal(b []byte, offset int) (int, error) {
	var seenChapterUID, seenChapterTimeStart, seenChapterFlagHidden, seenChapterFlagEnabled bool
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDChapterUID:
			if seenChapterUID {
				return n, dup(IDChapterAtom, c.h.ID)
			}
			seenChapterUID = true
			if err := c.decode(&m.ChapterUID); err != nil {
				return n, err
			}
		case IDChapterStringUID:
			if m.ChapterStringUID != nil {
				return n, dup(IDChapterAtom, c.h.ID)
			}
			m.ChapterStringUID = new(ChapterStringUID)
			if err := c.decode(m.ChapterStringUID); err != nil {
				return n, err
			}
		case IDChapterTimeStart:
			if seenChapterTimeStart {
				return n, dup(IDChapterAtom, c.h.ID)
			}
			seenChapterTimeStart = true
			if err := c.decode(&m.ChapterTimeStart); err != nil {
				return n, err
			}
		case IDChapterTimeEnd:
			if m.ChapterTimeEnd != nil {
				return n, dup(IDChapterAtom, c.h.ID)
			}
			m.ChapterTimeEnd = new(ChapterTimeEnd)
			if err := c.decode(m.ChapterTimeEnd); err != nil {
				return n, err
			}
		case IDChapterFlagHidden:
			if seenChapterFlagHidden {
				return n, dup(IDChapterAtom, c.h.ID)
			}
			seenChapterFlagHidden = true
			if err := c.decode(&m.ChapterFlagHidden); err != nil {
				return n, err
			}
		case IDChapterFlagEnabled:
			if seenChapterFlagEnabled {
				return n, dup(IDChapterAtom, c.h.ID)
			}
			seenChapterFlagEnabled = true
			if err := c.decode(&m.ChapterFlagEnabled); err != nil {
				return n, err
			}
		case IDChapterSegmentUID:
			if m.ChapterSegmentUID != nil {
				return n, dup(IDChapterAtom, c.h.ID)
			}
			m.ChapterSegmentUID = new(ChapterSegmentUID)
			if err := c.decode(m.ChapterSegmentUID); err != nil {
				return n, err
			}
		case IDChapterSegmentEditionUID:
			if m.ChapterSegmentEditionUID != nil {
				return n, dup(IDChapterAtom, c.h.ID)
			}
			m.ChapterSegmentEditionUID = new(ChapterSegmentEditionUID)
			if err := c.decode(m.ChapterSegmentEditionUID); err != nil {
				return n, err
			}
		case IDChapterPhysicalEquiv:
			if m.ChapterPhysicalEquiv != nil {
				return n, dup(IDChapterAtom, c.h.ID)
			}
			m.ChapterPhysicalEquiv = new(ChapterPhysicalEquiv)
			if err := c.decode(m.ChapterPhysicalEquiv); err != nil {
				return n, err
			}
		case IDChapterTrack:
			if m.ChapterTrack != nil {
				return n, dup(IDChapterAtom, c.h.ID)
			}
			m.ChapterTrack = new(ChapterTrack)
			if err := c.decode(m.ChapterTrack); err != nil {
				return n, err
			}
		case IDChapterDisplay:
			var v ChapterDisplay
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.ChapterDisplay = append(m.ChapterDisplay, v)
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDChapterAtom); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDChapterAtom)
		}
		n += cn
	}
	if !seenChapterUID {
		return n, missing(IDChapterAtom, IDChapterUID)
	}
	if !seenChapterTimeStart {
		return n, missing(IDChapterAtom, IDChapterTimeStart)
	}
	if !seenChapterFlagEnabled {
		m.ChapterFlagEnabled = 1
	}
	return n, nil
}

// ChapterTrack lists the tracks a chapter applies to.
type ChapterTrack struct {
	Crc32 *Crc32
	Void  *Void

	ChapterTrackNumber []ChapterTrackNumber
}

func (*ChapterTrack) ID() ebml.ID { return IDChapterTrack }

func (m *ChapterTrack) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	for i := range m.ChapterTrackNumber {
		n += ebml.Size(&m.ChapterTrackNumber[i])
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *ChapterTrack) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	for i := range m.ChapterTrackNumber {
		n += ebml.Put(b[n:], &m.ChapterTrackNumber[i])
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *ChapterTrack) Unmarshal(b []byte, offset int) (int, error) {
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDChapterTrackNumber:
			var v ChapterTrackNumber
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.ChapterTrackNumber = append(m.ChapterTrackNumber, v)
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDChapterTrack); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDChapterTrack)
		}
		n += cn
	}
	return n, nil
}

// ChapterDisplay holds the text shown for a chapter.
type ChapterDisplay struct {
	Crc32 *Crc32
	Void  *Void

	ChapString   ChapString
	ChapLanguage []ChapLanguage
	ChapCountry  []ChapCountry
}

func (*ChapterDisplay) ID() ebml.ID { return IDChapterDisplay }

func (m *ChapterDisplay) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	n += ebml.Size(&m.ChapString)
	for i := range m.ChapLanguage {
		n += ebml.Size(&m.ChapLanguage[i])
	}
	for i := range m.ChapCountry {
		n += ebml.Size(&m.ChapCountry[i])
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *ChapterDisplay) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	n += ebml.Put(b[n:], &m.ChapString)
	for i := range m.ChapLanguage {
		n += ebml.Put(b[n:], &m.ChapLanguage[i])
	}
	for i := range m.ChapCountry {
		n += ebml.Put(b[n:], &m.ChapCountry[i])
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *ChapterDisplay) Unmarshal(b []byte, offset int) (int, error) {
	var seenChapString bool
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDChapString:
			if seenChapString {
				return n, dup(IDChapterDisplay, c.h.ID)
			}
			seenChapString = true
			if err := c.decode(&m.ChapString); err != nil {
				return n, err
			}
		case IDChapLanguage:
			var v ChapLanguage
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.ChapLanguage = append(m.ChapLanguage, v)
		case IDChapCountry:
			var v ChapCountry
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.ChapCountry = append(m.ChapCountry, v)
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDChapterDisplay); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDChapterDisplay)
		}
		n += cn
	}
	if !seenChapString {
		return n, missing(IDChapterDisplay, IDChapString)
	}
	return n, nil
}
