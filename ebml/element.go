package ebml

import (
	"bytes"
	"io"
)

// Element is the contract every Matroska element satisfies: it knows its
// ID, the exact size of its encoded body, and how to move its body to and
// from bytes. Masters recurse over their children; leaves bind one
// primitive codec to one ID.
type Element interface {
	// ID returns the element's EBML identifier.
	ID() ID
	// Len returns the encoded body size in bytes.
	Len() int
	// Marshal writes exactly Len() body bytes into b and returns the
	// count. b is at least Len() bytes.
	Marshal(b []byte) int
	// Unmarshal parses the element body from exactly b. offset is the
	// position of b in the enclosing stream, used for error context.
	// It returns the number of bytes consumed, which must be len(b) on
	// success.
	Unmarshal(b []byte, offset int) (int, error)
}

// Size returns the full encoded size of an element, header included.
func Size(el Element) int {
	n := el.Len()
	return el.ID().Len() + VintLen(uint64(n)) + n
}

// Put encodes header and body of el into b, which must be at least
// Size(el) bytes, and returns the number of bytes written.
func Put(b []byte, el Element) int {
	h := Header{ID: el.ID(), Size: KnownSize(uint64(el.Len()))}
	n := h.Put(b)
	n += el.Marshal(b[n:])
	return n
}

// Marshal returns the full encoding of el, header included.
func Marshal(el Element) []byte {
	b := make([]byte, Size(el))
	Put(b, el)
	return b
}

// Unmarshal decodes one complete element (header + body) from the front
// of b into el. The header's ID must match el's.
func Unmarshal(b []byte, el Element) error {
	h, hn, err := ParseHeader(b)
	if err != nil {
		return err
	}
	if h.ID != el.ID() {
		return &UnexpectedIDError{Expected: el.ID(), Found: h.ID}
	}
	size, err := h.DataSize()
	if err != nil {
		return err
	}
	if uint64(len(b)-hn) < size {
		return ErrShortBody
	}
	return unmarshalBody(el, b[hn:hn+int(size)], hn)
}

func unmarshalBody(el Element, body []byte, offset int) error {
	n, err := el.Unmarshal(body, offset)
	if err != nil {
		return err
	}
	if n != len(body) {
		return ParseErr(el.ID().String(), offset+n, ErrShortBody)
	}
	return nil
}

// WriteTo writes el to w: ID, minimal-width size, then exactly Len()
// body bytes.
func WriteTo(w io.Writer, el Element) error {
	b := Marshal(el)
	_, err := w.Write(b)
	return err
}

// ReadFrom reads one complete element from r into el. The header's ID
// must match el's; an unknown body size is rejected.
func ReadFrom(r io.Reader, el Element) error {
	h, hn, err := ReadHeader(r)
	if err != nil {
		return err
	}
	if h.ID != el.ID() {
		return &UnexpectedIDError{Expected: el.ID(), Found: h.ID}
	}
	return readElement(h, r, el, hn)
}

// ReadElement reads the body of el from r after its header has already
// been consumed. The header's ID must match el's.
func ReadElement(h Header, r io.Reader, el Element) error {
	if h.ID != el.ID() {
		return &UnexpectedIDError{Expected: el.ID(), Found: h.ID}
	}
	return readElement(h, r, el, 0)
}

func readElement(h Header, r io.Reader, el Element, offset int) error {
	body, err := ReadBody(h, r)
	if err != nil {
		return err
	}
	return unmarshalBody(el, body, offset)
}

// ReadBody reads exactly the body of the element described by h into
// memory. Unknown sizes are rejected with ErrBodySizeUnknown.
func ReadBody(h Header, r io.Reader) ([]byte, error) {
	size, err := h.DataSize()
	if err != nil {
		return nil, err
	}
	// Grow from a bounded initial allocation so a hostile size cannot
	// reserve memory the stream never delivers.
	var buf bytes.Buffer
	buf.Grow(int(min64(size, 4096)))
	n, err := io.CopyN(&buf, r, int64(size))
	if err != nil {
		if err == io.EOF && uint64(n) < size {
			err = ErrShortBody
		}
		return nil, err
	}
	return buf.Bytes(), nil
}

// SkipBody advances r past the body of the element described by h,
// seeking when r supports it and discarding otherwise.
func SkipBody(r io.Reader, h Header) error {
	size, err := h.DataSize()
	if err != nil {
		return err
	}
	if s, ok := r.(io.Seeker); ok {
		_, err := s.Seek(int64(size), io.SeekCurrent)
		return err
	}
	n, err := io.CopyN(io.Discard, r, int64(size))
	if err == io.EOF && uint64(n) < size {
		err = ErrShortBody
	}
	return err
}

func min64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}
