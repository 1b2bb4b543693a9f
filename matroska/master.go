package matroska

import (
	"log"

	"github.com/b01o/mkv-element/ebml"
)

// Debug turns on skip tracing: unknown children encountered inside
// masters are logged as they are passed over.
var Debug bool

// child is one header-framed child inside a master's body, produced by
// the dispatch loop in each master's Unmarshal.
type child struct {
	h      ebml.Header
	body   []byte
	offset int
}

// nextChild frames the child at b[n:]. The returned body slice is exactly
// the child's declared size.
func nextChild(b []byte, n, offset int) (child, int, error) {
	h, hn, err := ebml.ParseHeader(b[n:])
	if err != nil {
		return child{}, 0, ebml.ParseErr("header", offset+n, err)
	}
	size, err := h.DataSize()
	if err != nil {
		return child{}, 0, ebml.ParseErr(Lookup(h.ID).Name, offset+n, err)
	}
	if uint64(len(b)-n-hn) < size {
		return child{}, 0, ebml.ParseErr(Lookup(h.ID).Name, offset+n, ebml.ErrShortBody)
	}
	body := b[n+hn : n+hn+int(size)]
	return child{h: h, body: body, offset: offset + n + hn}, hn + int(size), nil
}

// decode unmarshals a child element from its framed body, requiring full
// consumption.
func (c child) decode(el ebml.Element) error {
	n, err := el.Unmarshal(c.body, c.offset)
	if err != nil {
		return ebml.ParseErr(Lookup(c.h.ID).Name, c.offset, err)
	}
	if n != len(c.body) {
		return ebml.ParseErr(Lookup(c.h.ID).Name, c.offset+n, ebml.ErrShortBody)
	}
	return nil
}

func (c child) skip(parent ebml.ID) {
	if Debug {
		log.Printf("matroska: skipping unknown element %v (%dB) in %s",
			c.h.ID, len(c.body), Lookup(parent).Name)
	}
}

func logSkippedTopLevel(h ebml.Header) {
	log.Printf("matroska: skipping unknown element %v (%s) in Segment",
		h.ID, h.Size)
}

func dup(parent, id ebml.ID) error {
	return &ebml.DuplicateChildError{Parent: parent, Child: id}
}

func missing(parent, id ebml.ID) error {
	return &ebml.MissingChildError{Parent: parent, Child: id}
}

// crc32Slot handles the universal CRC-32 slot: first occurrence wins,
// a second occurrence is an error.
func crc32Slot(dst **Crc32, c child, parent ebml.ID) error {
	if *dst != nil {
		return dup(parent, IDCrc32)
	}
	*dst = new(Crc32)
	return c.decode(*dst)
}

// voidSlot handles the universal Void slot: first occurrence wins, later
// occurrences are discarded.
func voidSlot(dst **Void, c child) error {
	if *dst != nil {
		return nil
	}
	*dst = new(Void)
	return c.decode(*dst)
}
