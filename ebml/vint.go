package ebml

import (
	"fmt"
	"io"
	"math/bits"
)

// VInt is a decoded EBML size integer. A size whose payload bits are all
// ones marks the element body as extending to an unknown length; such a
// value carries Unknown=true and its Value must not be used as a length.
type VInt struct {
	Value   uint64
	Unknown bool
}

// MaxKnownSize is the largest element size encodable as a known VINT.
// The 8-byte all-ones payload is reserved for the unknown-size marker.
const MaxKnownSize = 1<<56 - 2

// UnknownSize returns the unknown-size marker.
func UnknownSize() VInt {
	return VInt{Value: 1<<56 - 1, Unknown: true}
}

// KnownSize returns a VInt holding a concrete size.
func KnownSize(v uint64) VInt {
	return VInt{Value: v}
}

func (v VInt) String() string {
	if v.Unknown {
		return "unknown"
	}
	return fmt.Sprintf("%d", v.Value)
}

// Len returns the number of bytes PutVint will write for v.
func (v VInt) Len() int {
	if v.Unknown {
		return 1
	}
	return VintLen(v.Value)
}

// VintLen returns the minimal legal VINT width for a known size value.
// The all-ones payload of each width is reserved for the unknown marker,
// so values sitting exactly on a width's all-ones pattern take one more
// byte. Values above MaxKnownSize are not encodable and report 8.
func VintLen(v uint64) int {
	for w := 1; w < 8; w++ {
		if v < 1<<(7*w)-1 {
			return w
		}
	}
	return 8
}

// PutVint encodes v into b, which must be at least v.Len() bytes, and
// returns the number of bytes written. The unknown marker is written in
// its canonical one-byte form 0xFF. Values above MaxKnownSize are
// truncated to MaxKnownSize.
func PutVint(b []byte, v VInt) int {
	if v.Unknown {
		b[0] = 0xFF
		return 1
	}
	val := v.Value
	if val > MaxKnownSize {
		val = MaxKnownSize
	}
	w := VintLen(val)
	for i := w - 1; i > 0; i-- {
		b[i] = byte(val)
		val >>= 8
	}
	b[0] = byte(val) | 1<<(8-w)
	return w
}

// ParseVint decodes a size VINT from the front of b. It returns the value
// and the number of bytes consumed.
func ParseVint(b []byte) (VInt, int, error) {
	if len(b) == 0 {
		return VInt{}, 0, ErrShortBody
	}
	first := b[0]
	if first == 0 {
		return VInt{}, 0, ErrVintFirstByteZero
	}
	w := bits.LeadingZeros8(first) + 1
	if len(b) < w {
		return VInt{}, 0, ErrShortBody
	}
	v := uint64(first &^ (1 << (8 - w)))
	for i := 1; i < w; i++ {
		v = v<<8 | uint64(b[i])
	}
	if v == 1<<(7*w)-1 {
		return VInt{Value: v, Unknown: true}, w, nil
	}
	return VInt{Value: v}, w, nil
}

// ReadVint reads a size VINT from r. It returns the value and the number
// of bytes consumed.
func ReadVint(r io.Reader) (VInt, int, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:1]); err != nil {
		return VInt{}, 0, err
	}
	first := buf[0]
	if first == 0 {
		return VInt{}, 1, ErrVintFirstByteZero
	}
	w := bits.LeadingZeros8(first) + 1
	if w > 1 {
		if _, err := io.ReadFull(r, buf[1:w]); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return VInt{}, 1, err
		}
	}
	v, n, err := ParseVint(buf[:w])
	return v, n, err
}

// ID is an EBML element identifier: the 1 to 4 on-wire bytes, width
// marker included, interpreted as a big-endian integer. IDs compare and
// encode by these raw bytes.
type ID uint32

// Len returns the on-wire width of the ID in bytes.
func (id ID) Len() int {
	switch {
	case id < 1<<8:
		return 1
	case id < 1<<16:
		return 2
	case id < 1<<24:
		return 3
	default:
		return 4
	}
}

func (id ID) String() string {
	return fmt.Sprintf("0x%0*X", 2*id.Len(), uint32(id))
}

// PutID writes the ID's raw bytes into b and returns the width.
func PutID(b []byte, id ID) int {
	w := id.Len()
	for i := w - 1; i >= 0; i-- {
		b[i] = byte(id)
		id >>= 8
	}
	return w
}

// ParseID decodes an element ID from the front of b. Widths above 4
// bytes are rejected.
func ParseID(b []byte) (ID, int, error) {
	if len(b) == 0 {
		return 0, 0, ErrShortBody
	}
	first := b[0]
	if first == 0 {
		return 0, 0, ErrVintFirstByteZero
	}
	w := bits.LeadingZeros8(first) + 1
	if w > 4 {
		return 0, 0, ErrVintTooLong
	}
	if len(b) < w {
		return 0, 0, ErrShortBody
	}
	id := ID(first)
	for i := 1; i < w; i++ {
		id = id<<8 | ID(b[i])
	}
	return id, w, nil
}

// ReadID reads an element ID from r.
func ReadID(r io.Reader) (ID, int, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:1]); err != nil {
		return 0, 0, err
	}
	first := buf[0]
	if first == 0 {
		return 0, 1, ErrVintFirstByteZero
	}
	w := bits.LeadingZeros8(first) + 1
	if w > 4 {
		return 0, 1, ErrVintTooLong
	}
	if w > 1 {
		if _, err := io.ReadFull(r, buf[1:w]); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return 0, 1, err
		}
	}
	return ParseID(buf[:w])
}
