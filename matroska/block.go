package matroska

import (
	"github.com/b01o/mkv-element/ebml"
)

// Block header flag bits. Keyframe and Discardable are meaningful in
// SimpleBlocks only; BlockGroups carry the equivalent information in
// their ReferenceBlock children.
const (
	blockFlagKeyframe    = 0x80
	blockFlagInvisible   = 0x08
	blockFlagDiscardable = 0x01
	blockLacingMask      = 0x06
)

// Lacing is the frame-packing mode of a block.
type Lacing uint8

const (
	LacingNone  Lacing = 0x00
	LacingXiph  Lacing = 0x02
	LacingFixed Lacing = 0x04
	LacingEBML  Lacing = 0x06
)

// Frame is one decoded media frame from a SimpleBlock or BlockGroup.
// Data aliases the block's buffer; it is valid as long as the block is.
type Frame struct {
	Data        []byte
	TrackNumber uint64
	// Timestamp is absolute, in segment ticks: the cluster timestamp
	// plus the block's relative timestamp.
	Timestamp   int64
	Keyframe    bool
	Invisible   bool
	Discardable bool
}

// parseBlockHeader splits a Block/SimpleBlock body into its fixed header
// (track number VINT, relative timestamp, flags) and the frame data.
func parseBlockHeader(b []byte) (track uint64, rel int16, flags byte, data []byte, err error) {
	v, vn, err := ebml.ParseVint(b)
	if err != nil {
		return 0, 0, 0, nil, err
	}
	if v.Unknown {
		return 0, 0, 0, nil, &ebml.InvalidDataError{Context: "block track number is unknown-size"}
	}
	if len(b) < vn+3 {
		return 0, 0, 0, nil, ebml.ErrShortBody
	}
	rel = int16(uint16(b[vn])<<8 | uint16(b[vn+1]))
	flags = b[vn+2]
	return v.Value, rel, flags, b[vn+3:], nil
}

// Frames splits the SimpleBlock into its frames, delacing as needed.
// clusterTimestamp is the enclosing cluster's timestamp, added to the
// block-relative timestamp.
func (e *SimpleBlock) Frames(clusterTimestamp uint64) ([]Frame, error) {
	track, rel, flags, data, err := parseBlockHeader(*e)
	if err != nil {
		return nil, err
	}
	frames, err := Lacing(flags & blockLacingMask).Delace(data)
	if err != nil {
		return nil, err
	}
	out := make([]Frame, 0, len(frames))
	for _, d := range frames {
		out = append(out, Frame{
			Data:        d,
			TrackNumber: track,
			Timestamp:   int64(clusterTimestamp) + int64(rel),
			Keyframe:    flags&blockFlagKeyframe != 0,
			Invisible:   flags&blockFlagInvisible != 0,
			Discardable: flags&blockFlagDiscardable != 0,
		})
	}
	return out, nil
}

// Frames splits the group's Block into its frames, delacing as needed.
// A block with no ReferenceBlock children is a keyframe.
func (g *BlockGroup) Frames(clusterTimestamp uint64) ([]Frame, error) {
	track, rel, flags, data, err := parseBlockHeader(g.Block)
	if err != nil {
		return nil, err
	}
	frames, err := Lacing(flags & blockLacingMask).Delace(data)
	if err != nil {
		return nil, err
	}
	out := make([]Frame, 0, len(frames))
	for _, d := range frames {
		out = append(out, Frame{
			Data:        d,
			TrackNumber: track,
			Timestamp:   int64(clusterTimestamp) + int64(rel),
			Keyframe:    len(g.ReferenceBlock) == 0,
			Invisible:   flags&blockFlagInvisible != 0,
		})
	}
	return out, nil
}

// Frames returns every frame in the cluster, SimpleBlocks first and then
// BlockGroups, each in stored order.
func (c *Cluster) Frames() ([]Frame, error) {
	var out []Frame
	for i := range c.SimpleBlock {
		fs, err := c.SimpleBlock[i].Frames(uint64(c.Timestamp))
		if err != nil {
			return nil, err
		}
		out = append(out, fs...)
	}
	for i := range c.BlockGroup {
		fs, err := c.BlockGroup[i].Frames(uint64(c.Timestamp))
		if err != nil {
			return nil, err
		}
		out = append(out, fs...)
	}
	return out, nil
}

// Delace splits laced block data into individual frames. For LacingNone
// the whole payload is one frame. The returned slices alias data.
func (l Lacing) Delace(data []byte) ([][]byte, error) {
	if l == LacingNone {
		return [][]byte{data}, nil
	}
	if len(data) == 0 {
		return nil, nil
	}
	count := int(data[0]) + 1
	rest := data[1:]

	sizes := make([]int, 0, count)
	switch l {
	case LacingXiph:
		// Sizes of all frames but the last, each as a run of 0xFF bytes
		// plus a terminator byte.
		for i := 1; i < count; i++ {
			size := 0
			for {
				if len(rest) == 0 {
					return nil, &ebml.InvalidDataError{Context: "xiph lace sizes truncated"}
				}
				b := rest[0]
				rest = rest[1:]
				size += int(b)
				if b != 0xFF {
					break
				}
			}
			sizes = append(sizes, size)
		}
	case LacingEBML:
		// First size is an unsigned VINT, the rest are signed-VINT deltas
		// against the previous size.
		prev := 0
		for i := 1; i < count; i++ {
			v, vn, err := ebml.ParseVint(rest)
			if err != nil || v.Unknown {
				return nil, &ebml.InvalidDataError{Context: "ebml lace sizes malformed"}
			}
			rest = rest[vn:]
			if i == 1 {
				prev = int(v.Value)
			} else {
				prev += int(v.Value) - (1<<(7*vn-1) - 1)
			}
			if prev < 0 {
				return nil, &ebml.InvalidDataError{Context: "ebml lace size negative"}
			}
			sizes = append(sizes, prev)
		}
	case LacingFixed:
		if len(rest)%count != 0 {
			return nil, &ebml.InvalidDataError{Context: "fixed lace data not evenly divisible"}
		}
		size := len(rest) / count
		for i := 1; i < count; i++ {
			sizes = append(sizes, size)
		}
	}

	out := make([][]byte, 0, count)
	for _, size := range sizes {
		if size > len(rest) {
			return nil, &ebml.InvalidDataError{Context: "laced frame runs past block end"}
		}
		out = append(out, rest[:size])
		rest = rest[size:]
	}
	// The last frame takes whatever remains.
	out = append(out, rest)
	return out, nil
}

// Lace packs frames into a laced block payload, lace head included. The
// caller prepends the block's fixed header and sets the lacing bits in
// its flags. LacingFixed requires equal-size frames.
func (l Lacing) Lace(frames [][]byte) ([]byte, error) {
	if l == LacingNone {
		if len(frames) != 1 {
			return nil, &ebml.InvalidDataError{Context: "lacing required for multiple frames"}
		}
		return frames[0], nil
	}
	if len(frames) == 0 {
		return nil, nil
	}
	if len(frames) > 256 {
		return nil, &ebml.InvalidDataError{Context: "more than 256 frames in one lace"}
	}
	out := []byte{byte(len(frames) - 1)}

	switch l {
	case LacingXiph:
		for _, f := range frames[:len(frames)-1] {
			size := len(f)
			for size >= 0xFF {
				out = append(out, 0xFF)
				size -= 0xFF
			}
			out = append(out, byte(size))
		}
	case LacingEBML:
		prev := 0
		for i, f := range frames[:len(frames)-1] {
			if i == 0 {
				var buf [8]byte
				n := ebml.PutVint(buf[:], ebml.KnownSize(uint64(len(f))))
				out = append(out, buf[:n]...)
			} else {
				out = append(out, putLaceDelta(len(f)-prev)...)
			}
			prev = len(f)
		}
	case LacingFixed:
		for _, f := range frames[1:] {
			if len(f) != len(frames[0]) {
				return nil, &ebml.InvalidDataError{Context: "fixed lacing requires equal frame sizes"}
			}
		}
	}

	for _, f := range frames {
		out = append(out, f...)
	}
	return out, nil
}

// putLaceDelta encodes a signed EBML lace delta: the value plus the
// width's bias 2^(7w-1)-1, as an unsigned VINT of that width.
func putLaceDelta(delta int) []byte {
	for w := 1; w <= 8; w++ {
		bias := 1<<(7*w-1) - 1
		if delta >= -bias && delta <= bias {
			var buf [8]byte
			// Force width w even when the biased value would fit smaller.
			b := buf[:w]
			val := uint64(delta + bias)
			for i := w - 1; i > 0; i-- {
				b[i] = byte(val)
				val >>= 8
			}
			b[0] = byte(val) | 1<<(8-w)
			return b
		}
	}
	return nil
}
