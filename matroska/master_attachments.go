package matroska

import "github.com/b01o/mkv-element/ebml"

// Attachments holds files attached to the segment.
type Attachments struct {
	Crc32 *Crc32
	Void  *Void

	AttachedFile []AttachedFile
}

func (*Attachments) ID() ebml.ID { return IDAttachments }

func (m *Attachments) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	for i := range m.AttachedFile {
		n += ebml.Size(&m.AttachedFile[i])
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *Attachments) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	for i := range m.AttachedFile {
		n += ebml.Put(b[n:], &m.AttachedFile[i])
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *Attachments) Unmarshal(b []byte, offset int) (int, error) {
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDAttachedFile:
			var v AttachedFile
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.AttachedFile = append(m.AttachedFile, v)
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDAttachments); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDAttachments)
		}
		n += cn
	}
	return n, nil
}

// AttachedFile is one attached file and its metadata.
type AttachedFile struct {
	Crc32 *Crc32
	Void  *Void

	FileDescription *FileDescription
	FileName        FileName
	FileMimeType    FileMimeType
	FileData        FileData
	FileUID         FileUID
}

func (*AttachedFile) ID() ebml.ID { return IDAttachedFile }

func (m *AttachedFile) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	if m.FileDescription != nil {
		n += ebml.Size(m.FileDescription)
	}
	n += ebml.Size(&m.FileName)
	n += ebml.Size(&m.FileMimeType)
	n += ebml.Size(&m.FileData)
	n += ebml.Size(&m.FileUID)
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *AttachedFile) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	if m.FileDescription != nil {
		n += ebml.Put(b[n:], m.FileDescription)
	}
	n += ebml.Put(b[n:], &m.FileName)
	n += ebml.Put(b[n:], &m.FileMimeType)
	n += ebml.Put(b[n:], &m.FileData)
	n += ebml.Put(b[n:], &m.FileUID)
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *AttachedFile) Unmarshal(b []byte, offset int) (int, error) {
	var seenFileName, seenFileMimeType, seenFileData, seenFileUID bool
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDFileDescription:
			if m.FileDescription != nil {
				return n, dup(IDAttachedFile, c.h.ID)
			}
			m.FileDescription = new(FileDescription)
			if err := c.decode(m.FileDescription); err != nil {
				return n, err
			}
		case IDFileName:
			if seenFileName {
				return n, dup(IDAttachedFile, c.h.ID)
			}
			seenFileName = true
			if err := c.decode(&m.FileName); err != nil {
				return n, err
			}
		case IDFileMimeType:
			if seenFileMimeType {
				return n, dup(IDAttachedFile, c.h.ID)
			}
			seenFileMimeType = true
			if err := c.decode(&m.FileMimeType); err != nil {
				return n, err
			}
		case IDFileData:
			if seenFileData {
				return n, dup(IDAttachedFile, c.h.ID)
			}
			seenFileData = true
			if err := c.decode(&m.FileData); err != nil {
				return n, err
			}
		case IDFileUID:
			if seenFileUID {
				return n, dup(IDAttachedFile, c.h.ID)
			}
			seenFileUID = true
			if err := c.decode(&m.FileUID); err != nil {
				return n, err
			}
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDAttachedFile); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDAttachedFile)
		}
		n += cn
	}
	if !seenFileName {
		return n, missing(IDAttachedFile, IDFileName)
	}
	if !seenFileMimeType {
		return n, missing(IDAttachedFile, IDFileMimeType)
	}
	if !seenFileData {
		return n, missing(IDAttachedFile, IDFileData)
	}
	if !seenFileUID {
		return n, missing(IDAttachedFile, IDFileUID)
	}
	return n, nil
}
