package matroska

import "github.com/b01o/mkv-element/ebml"

// Supplementary elements inherited from the EBML specification rather
// than the Matroska element table: padding and integrity children legal
// inside every master.

// Void reserves space inside a master, typically for later in-place
// rewriting. Only its size survives a decode; the payload is zeros.
type Void struct {
	Size uint64
}

func (Void) ID() ebml.ID { return IDVoid }

func (e Void) Len() int { return int(e.Size) }

func (e Void) Marshal(b []byte) int {
	for i := range b[:e.Size] {
		b[i] = 0
	}
	return int(e.Size)
}

func (e *Void) Unmarshal(b []byte, _ int) (int, error) {
	e.Size = uint64(len(b))
	return len(b), nil
}

// Crc32 carries a CRC-32 of the enclosing master's other children, as a
// little-endian u32. The value is carried verbatim; this library neither
// verifies nor recomputes it.
type Crc32 uint32

func (Crc32) ID() ebml.ID { return IDCrc32 }

func (e Crc32) Len() int { return 4 }

func (e Crc32) Marshal(b []byte) int {
	b[0], b[1], b[2], b[3] = byte(e), byte(e>>8), byte(e>>16), byte(e>>24)
	return 4
}

func (e *Crc32) Unmarshal(b []byte, _ int) (int, error) {
	if len(b) != 4 {
		return 0, &ebml.InvalidSizeError{Kind: "CRC-32", Size: len(b)}
	}
	*e = Crc32(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)
	return 4, nil
}
