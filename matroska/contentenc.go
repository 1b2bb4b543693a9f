package matroska

import (
	"bytes"
	"io"
	"sort"

	"github.com/klauspost/compress/zlib"

	"github.com/b01o/mkv-element/ebml"
)

// ContentCompAlgo values from the Matroska specification.
const (
	CompAlgoZlib            = 0
	CompAlgoBzlib           = 1
	CompAlgoLzo1x           = 2
	CompAlgoHeaderStripping = 3
)

// ContentEncodingType values.
const (
	EncodingTypeCompression = 0
	EncodingTypeEncryption  = 1
)

// DecodeFrame undoes the track's encodings on one frame: encodings are
// applied at write time in ascending ContentEncodingOrder, so decoding
// walks them in descending order. Supported transforms are zlib
// compression and header stripping; bzlib, lzo, and encryption are
// rejected.
func (cs *ContentEncodings) DecodeFrame(frame []byte) ([]byte, error) {
	for _, enc := range cs.ordered(false) {
		var err error
		frame, err = enc.decodeFrame(frame)
		if err != nil {
			return nil, err
		}
	}
	return frame, nil
}

// EncodeFrame applies the track's encodings to one frame in ascending
// ContentEncodingOrder.
func (cs *ContentEncodings) EncodeFrame(frame []byte) ([]byte, error) {
	for _, enc := range cs.ordered(true) {
		var err error
		frame, err = enc.encodeFrame(frame)
		if err != nil {
			return nil, err
		}
	}
	return frame, nil
}

func (cs *ContentEncodings) ordered(ascending bool) []*ContentEncoding {
	out := make([]*ContentEncoding, len(cs.ContentEncoding))
	for i := range cs.ContentEncoding {
		out[i] = &cs.ContentEncoding[i]
	}
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].ContentEncodingOrder < out[j].ContentEncodingOrder
		}
		return out[i].ContentEncodingOrder > out[j].ContentEncodingOrder
	})
	return out
}

func (enc *ContentEncoding) decodeFrame(frame []byte) ([]byte, error) {
	if enc.ContentEncodingType != EncodingTypeCompression {
		return nil, &ebml.InvalidDataError{Context: "content encryption not supported"}
	}
	comp := enc.ContentCompression
	if comp == nil {
		return frame, nil
	}
	switch comp.ContentCompAlgo {
	case CompAlgoZlib:
		zr, err := zlib.NewReader(bytes.NewReader(frame))
		if err != nil {
			return nil, &ebml.InvalidDataError{Context: "zlib frame: " + err.Error()}
		}
		defer zr.Close()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, &ebml.InvalidDataError{Context: "zlib frame: " + err.Error()}
		}
		return out, nil
	case CompAlgoHeaderStripping:
		if comp.ContentCompSettings == nil {
			return frame, nil
		}
		stripped := []byte(*comp.ContentCompSettings)
		out := make([]byte, 0, len(stripped)+len(frame))
		out = append(out, stripped...)
		return append(out, frame...), nil
	default:
		return nil, &ebml.InvalidDataError{Context: "unsupported compression algorithm"}
	}
}

func (enc *ContentEncoding) encodeFrame(frame []byte) ([]byte, error) {
	if enc.ContentEncodingType != EncodingTypeCompression {
		return nil, &ebml.InvalidDataError{Context: "content encryption not supported"}
	}
	comp := enc.ContentCompression
	if comp == nil {
		return frame, nil
	}
	switch comp.ContentCompAlgo {
	case CompAlgoZlib:
		var buf bytes.Buffer
		zw := zlib.NewWriter(&buf)
		if _, err := zw.Write(frame); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case CompAlgoHeaderStripping:
		if comp.ContentCompSettings == nil {
			return frame, nil
		}
		prefix := []byte(*comp.ContentCompSettings)
		if !bytes.HasPrefix(frame, prefix) {
			return nil, &ebml.InvalidDataError{Context: "frame lacks the stripped header prefix"}
		}
		return frame[len(prefix):], nil
	default:
		return nil, &ebml.InvalidDataError{Context: "unsupported compression algorithm"}
	}
}
