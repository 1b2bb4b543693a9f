package matroska

import "github.com/b01o/mkv-element/ebml"

// Cues indexes timestamps to cluster positions for seeking.
type Cues struct {
	Crc32 *Crc32
	Void  *Void

	CuePoint []CuePoint
}

func (*Cues) ID() ebml.ID { return IDCues }

func (m *Cues) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	for i := range m.CuePoint {
		n += ebml.Size(&m.CuePoint[i])
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *Cues) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	for i := range m.CuePoint {
		n += ebml.Put(b[n:], &m.CuePoint[i])
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *Cues) Unmarshal(b []byte, offset int) (int, error) {
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDCuePoint:
			var v CuePoint
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.CuePoint = append(m.CuePoint, v)
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDCues); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDCues)
		}
		n += cn
	}
	return n, nil
}

// CuePoint ties one timestamp to the track positions holding it.
type CuePoint struct {
	Crc32 *Crc32
	Void  *Void

	CueTime           CueTime
	CueTrackPositions []CueTrackPositions
}

func (*CuePoint) ID() ebml.ID { return IDCuePoint }

func (m *CuePoint) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	n += ebml.Size(&m.CueTime)
	for i := range m.CueTrackPositions {
		n += ebml.Size(&m.CueTrackPositions[i])
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *CuePoint) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	n += ebml.Put(b[n:], &m.CueTime)
	for i := range m.CueTrackPositions {
		n += ebml.Put(b[n:], &m.CueTrackPositions[i])
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *CuePoint) Unmarshal(b []byte, offset int) (int, error) {
	var seenCueTime bool
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDCueTime:
			if seenCueTime {
				return n, dup(IDCuePoint, c.h.ID)
			}
			seenCueTime = true
			if err := c.decode(&m.CueTime); err != nil {
				return n, err
			}
		case IDCueTrackPositions:
			var v CueTrackPositions
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.CueTrackPositions = append(m.CueTrackPositions, v)
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDCuePoint); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDCuePoint)
		}
		n += cn
	}
	if !seenCueTime {
		return n, missing(IDCuePoint, IDCueTime)
	}
	return n, nil
}

// CueTrackPositions locates a cue point's data on one track.
type CueTrackPositions struct {
	Crc32 *Crc32
	Void  *Void

	CueTrack            CueTrack
	CueClusterPosition  CueClusterPosition
	CueRelativePosition *CueRelativePosition
	CueDuration         *CueDuration
	CueBlockNumber      *CueBlockNumber
	CueCodecState       CueCodecState
	CueReference        []CueReference
}

func (*CueTrackPositions) ID() ebml.ID { return IDCueTrackPositions }

func (m *CueTrackPositions) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	n += ebml.Size(&m.CueTrack)
	n += ebml.Size(&m.CueClusterPosition)
	if m.CueRelativePosition != nil {
		n += ebml.Size(m.CueRelativePosition)
	}
	if m.CueDuration != nil {
		n += ebml.Size(m.CueDuration)
	}
	if m.CueBlockNumber != nil {
		n += ebml.Size(m.CueBlockNumber)
	}
	n += ebml.Size(&m.CueCodecState)
	for i := range m.CueReference {
		n += ebml.Size(&m.CueReference[i])
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *CueTrackPositions) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	n += ebml.Put(b[n:], &m.CueTrack)
	n += ebml.Put(b[n:], &m.CueClusterPosition)
	if m.CueRelativePosition != nil {
		n += ebml.Put(b[n:], m.CueRelativePosition)
	}
	if m.CueDuration != nil {
		n += ebml.Put(b[n:], m.CueDuration)
	}
	if m.CueBlockNumber != nil {
		n += ebml.Put(b[n:], m.CueBlockNumber)
	}
	n += ebml.Put(b[n:], &m.CueCodecState)
	for i := range m.CueReference {
		n += ebml.Put(b[n:], &m.CueReference[i])
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *CueTrackPositions) Unmarshal(b []byte, offset int) (int, error) {
	var seenCueTrack, seenCueClusterPosition, seenCueCodecState bool
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDCueTrack:
			if seenCueTrack {
				return n, dup(IDCueTrackPositions, c.h.ID)
			}
			seenCueTrack = true
			if err := c.decode(&m.CueTrack); err != nil {
				return n, err
			}
		case IDCueClusterPosition:
			if seenCueClusterPosition {
				return n, dup(IDCueTrackPositions, c.h.ID)
			}
			seenCueClusterPosition = true
			if err := c.decode(&m.CueClusterPosition); err != nil {
				return n, err
			}
		case IDCueRelativePosition:
			if m.CueRelativePosition != nil {
				return n, dup(IDCueTrackPositions, c.h.ID)
			}
			m.CueRelativePosition = new(CueRelativePosition)
			if err := c.decode(m.CueRelativePosition); err != nil {
				return n, err
			}
		case IDCueDuration:
			if m.CueDuration != nil {
				return n, dup(IDCueTrackPositions, c.h.ID)
			}
			m.CueDuration = new(CueDuration)
			if err := c.decode(m.CueDuration); err != nil {
				return n, err
			}
		case IDCueBlockNumber:
			if m.CueBlockNumber != nil {
				return n, dup(IDCueTrackPositions, c.h.ID)
			}
			m.CueBlockNumber = new(CueBlockNumber)
			if err := c.decode(m.CueBlockNumber); err != nil {
				return n, err
			}
		case IDCueCodecState:
			if seenCueCodecState {
				return n, dup(IDCueTrackPositions, c.h.ID)
			}
			seenCueCodecState = true
			if err := c.decode(&m.CueCodecState); err != nil {
				return n, err
			}
		case IDCueReference:
			var v CueReference
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.CueReference = append(m.CueReference, v)
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDCueTrackPositions); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDCueTrackPositions)
		}
		n += cn
	}
	if !seenCueTrack {
		return n, missing(IDCueTrackPositions, IDCueTrack)
	}
	if !seenCueClusterPosition {
		return n, missing(IDCueTrackPositions, IDCueClusterPosition)
	}
	return n, nil
}

// CueReference points at a block the cued block depends on.
type CueReference struct {
	Crc32 *Crc32
	Void  *Void

	CueRefTime CueRefTime
}

func (*CueReference) ID() ebml.ID { return IDCueReference }

func (m *CueReference) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	n += ebml.Size(&m.CueRefTime)
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *CueReference) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	n += ebml.Put(b[n:], &m.CueRefTime)
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *CueReference) Unmarshal(b []byte, offset int) (int, error) {
	var seenCueRefTime bool
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDCueRefTime:
			if seenCueRefTime {
				return n, dup(IDCueReference, c.h.ID)
			}
			seenCueRefTime = true
			if err := c.decode(&m.CueRefTime); err != nil {
				return n, err
			}
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDCueReference); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDCueReference)
		}
		n += cn
	}
	if !seenCueRefTime {
		return n, missing(IDCueReference, IDCueRefTime)
	}
	return n, nil
}
