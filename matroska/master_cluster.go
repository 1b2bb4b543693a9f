package matroska

import "github.com/b01o/mkv-element/ebml"

// Cluster is the top-level element carrying the block structure. It
// holds the bulk of a typical file.
type Cluster struct {
	Crc32 *Crc32
	Void  *Void

	Timestamp   Timestamp
	Position    *Position
	PrevSize    *PrevSize
	SimpleBlock []SimpleBlock
	BlockGroup  []BlockGroup
}

func (*Cluster) ID() ebml.ID { return IDCluster }

func (m *Cluster) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	n += ebml.Size(&m.Timestamp)
	if m.Position != nil {
		n += ebml.Size(m.Position)
	}
	if m.PrevSize != nil {
		n += ebml.Size(m.PrevSize)
	}
	for i := range m.SimpleBlock {
		n += ebml.Size(&m.SimpleBlock[i])
	}
	for i := range m.BlockGroup {
		n += ebml.Size(&m.BlockGroup[i])
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *Cluster) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	n += ebml.Put(b[n:], &m.Timestamp)
	if m.Position != nil {
		n += ebml.Put(b[n:], m.Position)
	}
	if m.PrevSize != nil {
		n += ebml.Put(b[n:], m.PrevSize)
	}
	for i := range m.SimpleBlock {
		n += ebml.Put(b[n:], &m.SimpleBlock[i])
	}
	for i := range m.BlockGroup {
		n += ebml.Put(b[n:], &m.BlockGroup[i])
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *Cluster) Unmarshal(b []byte, offset int) (int, error) {
	var seenTimestamp bool
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDTimestamp:
			if seenTimestamp {
				return n, dup(IDCluster, c.h.ID)
			}
			seenTimestamp = true
			if err := c.decode(&m.Timestamp); err != nil {
				return n, err
			}
		case IDPosition:
			if m.Position != nil {
				return n, dup(IDCluster, c.h.ID)
			}
			m.Position = new(Position)
			if err := c.decode(m.Position); err != nil {
				return n, err
			}
		case IDPrevSize:
			if m.PrevSize != nil {
				return n, dup(IDCluster, c.h.ID)
			}
			m.PrevSize = new(PrevSize)
			if err := c.decode(m.PrevSize); err != nil {
				return n, err
			}
		case IDSimpleBlock:
			var v SimpleBlock
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.SimpleBlock = append(m.SimpleBlock, v)
		case IDBlockGroup:
			var v BlockGroup
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.BlockGroup = append(m.BlockGroup, v)
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDCluster); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDCluster)
		}
		n += cn
	}
	if !seenTimestamp {
		return n, missing(IDCluster, IDTimestamp)
	}
	return n, nil
}

// BlockGroup wraps a single Block with information specific to it.
type BlockGroup struct {
	Crc32 *Crc32
	Void  *Void

	Block             Block
	BlockAdditions    *BlockAdditions
	BlockDuration     *BlockDuration
	ReferencePriority ReferencePriority
	ReferenceBlock    []ReferenceBlock
	CodecState        *CodecState
	DiscardPadding    *DiscardPadding
}

func (*BlockGroup) ID() ebml.ID { return IDBlockGroup }

func (m *BlockGroup) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	n += ebml.Size(&m.Block)
	if m.BlockAdditions != nil {
		n += ebml.Size(m.BlockAdditions)
	}
	if m.BlockDuration != nil {
		n += ebml.Size(m.BlockDuration)
	}
	n += ebml.Size(&m.ReferencePriority)
	for i := range m.ReferenceBlock {
		n += ebml.Size(&m.ReferenceBlock[i])
	}
	if m.CodecState != nil {
		n += ebml.Size(m.CodecState)
	}
	if m.DiscardPadding != nil {
		n += ebml.Size(m.DiscardPadding)
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *BlockGroup) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	n += ebml.Put(b[n:], &m.Block)
	if m.BlockAdditions != nil {
		n += ebml.Put(b[n:], m.BlockAdditions)
	}
	if m.BlockDuration != nil {
		n += ebml.Put(b[n:], m.BlockDuration)
	}
	n += ebml.Put(b[n:], &m.ReferencePriority)
	for i := range m.ReferenceBlock {
		n += ebml.Put(b[n:], &m.ReferenceBlock[i])
	}
	if m.CodecState != nil {
		n += ebml.Put(b[n:], m.CodecState)
	}
	if m.DiscardPadding != nil {
		n += ebml.Put(b[n:], m.DiscardPadding)
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *BlockGroup) Unmarshal(b []byte, offset int) (int, error) {
	var seenBlock, seenReferencePriority bool
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDBlock:
			if seenBlock {
				return n, dup(IDBlockGroup, c.h.ID)
			}
			seenBlock = true
			if err := c.decode(&m.Block); err != nil {
				return n, err
			}
		case IDBlockAdditions:
			if m.BlockAdditions != nil {
				return n, dup(IDBlockGroup, c.h.ID)
			}
			m.BlockAdditions = new(BlockAdditions)
			if err := c.decode(m.BlockAdditions); err != nil {
				return n, err
			}
		case IDBlockDuration:
			if m.BlockDuration != nil {
				return n, dup(IDBlockGroup, c.h.ID)
			}
			m.BlockDuration = new(BlockDuration)
			if err := c.decode(m.BlockDuration); err != nil {
				return n, err
			}
		case IDReferencePriority:
			if seenReferencePriority {
				return n, dup(IDBlockGroup, c.h.ID)
			}
			seenReferencePriority = true
			if err := c.decode(&m.ReferencePriority); err != nil {
				return n, err
			}
		case IDReferenceBlock:
			var v ReferenceBlock
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.ReferenceBlock = append(m.ReferenceBlock, v)
		case IDCodecState:
			if m.CodecState != nil {
				return n, dup(IDBlockGroup, c.h.ID)
			}
			m.CodecState = new(CodecState)
			if err := c.decode(m.CodecState); err != nil {
				return n, err
			}
		case IDDiscardPadding:
			if m.DiscardPadding != nil {
				return n, dup(IDBlockGroup, c.h.ID)
			}
			m.DiscardPadding = new(DiscardPadding)
			if err := c.decode(m.DiscardPadding); err != nil {
				return n, err
			}
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDBlockGroup); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDBlockGroup)
		}
		n += cn
	}
	if !seenBlock {
		return n, missing(IDBlockGroup, IDBlock)
	}
	return n, nil
}

// BlockAdditions carries additional binary data completing its Block.
type BlockAdditions struct {
	Crc32 *Crc32
	Void  *Void

	BlockMore []BlockMore
}

func (*BlockAdditions) ID() ebml.ID { return IDBlockAdditions }

func (m *BlockAdditions) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	for i := range m.BlockMore {
		n += ebml.Size(&m.BlockMore[i])
	}
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *BlockAdditions) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	for i := range m.BlockMore {
		n += ebml.Put(b[n:], &m.BlockMore[i])
	}
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *BlockAdditions) Unmarshal(b []byte, offset int) (int, error) {
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDBlockMore:
			var v BlockMore
			if err := c.decode(&v); err != nil {
				return n, err
			}
			m.BlockMore = append(m.BlockMore, v)
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDBlockAdditions); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDBlockAdditions)
		}
		n += cn
	}
	return n, nil
}

// BlockMore is one additional datum and the ID describing how to
// interpret it.
type BlockMore struct {
	Crc32 *Crc32
	Void  *Void

	BlockAdditional BlockAdditional
	BlockAddID      BlockAddID
}

func (*BlockMore) ID() ebml.ID { return IDBlockMore }

func (m *BlockMore) Len() (n int) {
	if m.Crc32 != nil {
		n += ebml.Size(m.Crc32)
	}
	n += ebml.Size(&m.BlockAdditional)
	n += ebml.Size(&m.BlockAddID)
	if m.Void != nil {
		n += ebml.Size(m.Void)
	}
	return
}

func (m *BlockMore) Marshal(b []byte) (n int) {
	if m.Crc32 != nil {
		n += ebml.Put(b[n:], m.Crc32)
	}
	n += ebml.Put(b[n:], &m.BlockAdditional)
	n += ebml.Put(b[n:], &m.BlockAddID)
	if m.Void != nil {
		n += ebml.Put(b[n:], m.Void)
	}
	return
}

func (m *BlockMore) Unmarshal(b []byte, offset int) (int, error) {
	var seenBlockAdditional, seenBlockAddID bool
	n := 0
	for n < len(b) {
		c, cn, err := nextChild(b, n, offset)
		if err != nil {
			return n, err
		}
		switch c.h.ID {
		case IDBlockAdditional:
			if seenBlockAdditional {
				return n, dup(IDBlockMore, c.h.ID)
			}
			seenBlockAdditional = true
			if err := c.decode(&m.BlockAdditional); err != nil {
				return n, err
			}
		case IDBlockAddID:
			if seenBlockAddID {
				return n, dup(IDBlockMore, c.h.ID)
			}
			seenBlockAddID = true
			if err := c.decode(&m.BlockAddID); err != nil {
				return n, err
			}
		case IDCrc32:
			if err := crc32Slot(&m.Crc32, c, IDBlockMore); err != nil {
				return n, err
			}
		case IDVoid:
			if err := voidSlot(&m.Void, c); err != nil {
				return n, err
			}
		default:
			c.skip(IDBlockMore)
		}
		n += cn
	}
	if !seenBlockAdditional {
		return n, missing(IDBlockMore, IDBlockAdditional)
	}
	if !seenBlockAddID {
		m.BlockAddID = 1
	}
	return n, nil
}
