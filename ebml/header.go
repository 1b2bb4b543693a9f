package ebml

import (
	"fmt"
	"io"
)

// Header is the (id, size) pair prefixing every element. Size counts the
// element body only, the header itself excluded.
type Header struct {
	ID   ID
	Size VInt
}

// Len returns the encoded width of the header.
func (h Header) Len() int {
	return h.ID.Len() + h.Size.Len()
}

// Put encodes the header into b, which must be at least h.Len() bytes.
func (h Header) Put(b []byte) int {
	n := PutID(b, h.ID)
	n += PutVint(b[n:], h.Size)
	return n
}

// DataSize returns the body size as a concrete value, or
// ErrBodySizeUnknown when the header carries the unknown-size marker.
func (h Header) DataSize() (uint64, error) {
	if h.Size.Unknown {
		return 0, fmt.Errorf("%v: %w", h.ID, ErrBodySizeUnknown)
	}
	return h.Size.Value, nil
}

// WriteTo writes the encoded header to w.
func (h Header) WriteTo(w io.Writer) error {
	var buf [12]byte
	n := h.Put(buf[:])
	_, err := w.Write(buf[:n])
	return err
}

// ParseHeader decodes a header from the front of b and returns it along
// with the number of bytes consumed.
func ParseHeader(b []byte) (Header, int, error) {
	id, in, err := ParseID(b)
	if err != nil {
		return Header{}, 0, err
	}
	size, sn, err := ParseVint(b[in:])
	if err != nil {
		return Header{}, in, err
	}
	return Header{ID: id, Size: size}, in + sn, nil
}

// ReadHeader reads a header from r and returns it along with the number
// of bytes consumed.
func ReadHeader(r io.Reader) (Header, int, error) {
	id, in, err := ReadID(r)
	if err != nil {
		return Header{}, in, err
	}
	size, sn, err := ReadVint(r)
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return Header{}, in + sn, err
	}
	return Header{ID: id, Size: size}, in + sn, nil
}
