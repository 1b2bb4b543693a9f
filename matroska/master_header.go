package matroska

import "github.com/b01o/mkv-element/ebml"

// Ebml is the EBML header, the first top-level element in a Matroska
// file. EBMLMaxIDLength and EBMLMaxSizeLength fall back to their schema
// defaults (4 and 8) when absent from the stream.
type Ebml struct {
	Crc32 *Crc32
	Void  *Void

	EBMLVersion        *EBMLVersion
	EBMLReadVersion    *EBMLReadVersion
	EBMLMaxIDLength    EBMLMaxIDLength
	EBMLMaxSizeLength  EBMLMaxSizeLength
	DocType            *DocType
	DocTypeVersion     *DocTypeVersion
	DocTypeReadVersion *DocTypeReadVersion
}

func (*Ebml) ID() ebml.ID { return IDEbml }

func (m *Ebml) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	if m.EBMLVersion != nil {
		n += ebml.Size(m.EBMLVersion)
	}
	if m.EBMLReadVersion != nil {
		n += ebml.Size(m.EBMLReadVersion)
	}
	n += ebml.Size(&m.EBMLMaxIDLength)
	n += ebml.Size(&m.EBMLMaxSizeLength)
	if m.DocType != nil {
		n += ebml.Size(m.DocType)
	}
	if m.DocTypeVersion != nil {
		n += ebml.Size(m.DocTypeVersion)
	}
	if m.DocTypeReadVersion != nil {
		n += ebml.Size(m.DocTypeReadVersion)
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *Ebml) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	if m.EBMLVersion != nil {
		n += ebml.Put(b[n:], m.EBMLVersion)
	}
	if m.EBMLReadVersion != nil {
		n += ebml.Put(b[n:], m.EBMLReadVersion)
	}
	n += ebml.Put(b[n:], &m.EBMLMaxIDLength)
	n += ebml.Put(b[n:], &m.EBMLMaxSizeLength)
	if m.DocType != nil {
		n += ebml.Put(b[n:], m.DocType)
	}
	if m.DocTypeVersion != nil {
		n += ebml.Put(b[n:], m.DocTypeVersion)
	}
	if m.DocTypeReadVersion != nil {
		n += ebml.Put(b[n:], m.DocTypeReadVersion)
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *Ebml) Unmarshal(b []byte, offset int) (int, error) {
	var seenMaxID, seenMaxSize bool
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDEBMLVersion:
			if m.EBMLVersion != nil {
				return n, dup(IDEbml, c.h.ID)
			}
			m.EBMLVersion = new(EBMLVersion)
			if err := c.decode(m.EBMLVersion); err != nil {
				return n, err
			}
		case IDEBMLReadVersion:
			if m.EBMLReadVersion != nil {
				return n, dup(IDEbml, c.h.ID)
			}
			m.EBMLReadVersion = new(EBMLReadVersion)
			if err := c.decode(m.EBMLReadVersion); err != nil {
				return n, err
			}
		case IDEBMLMaxIDLength:
			if seenMaxID {
				return n, dup(IDEbml, c.h.ID)
			}
			seenMaxID = true
			if err := c.decode(&m.EBMLMaxIDLength); err != nil {
				return n, err
			}
		case IDEBMLMaxSizeLength:
			if seenMaxSize {
				return n, dup(IDEbml, c.h.ID)
			}
			seenMaxSize = true
			if err := c.decode(&m.EBMLMaxSizeLength); err != nil {
				return n, err
			}
		case IDDocType:
			if m.DocType != nil {
				return n, dup(IDEbml, c.h.ID)
			}
			m.DocType = new(DocType)
			if err := c.decode(m.DocType); err != nil {
				return n, err
			}
		case IDDocTypeVersion:
			if m.DocTypeVersion != nil {
				return n, dup(IDEbml, c.h.ID)
			}
			m.DocTypeVersion = new(DocTypeVersion)
			if err := c.decode(m.DocTypeVersion); err != nil {
				return n, err
			}
		case IDDocTypeReadVersion:
			if m.DocTypeReadVersion != nil {
				return n, dup(IDEbml, c.h.ID)
			}
			m.DocTypeReadVersion = new(DocTypeReadVersion)
			if err := c.decode(m.DocTypeReadVersion); err != nil {
				return n, err
			}
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDEbml); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDEbml)
		}
		n += cn
	}
	if !seenMaxID {
		m.EBMLMaxIDLength = 4
	}
	if !seenMaxSize {
		m.EBMLMaxSizeLength = 8
	}
	return n, nil
}
