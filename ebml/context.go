package ebml

import (
	"context"
	"io"
)

// Cooperative driver family. Same contracts as the blocking drivers, but
// every reader/writer call first observes ctx, so a caller-side executor
// can cancel between I/O boundaries. Codec arithmetic never consults the
// context.

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

type ctxWriter struct {
	ctx context.Context
	w   io.Writer
}

func (c ctxWriter) Write(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.w.Write(p)
}

// ReadHeaderContext is ReadHeader under a context.
func ReadHeaderContext(ctx context.Context, r io.Reader) (Header, int, error) {
	return ReadHeader(ctxReader{ctx, r})
}

// ReadFromContext is ReadFrom under a context.
func ReadFromContext(ctx context.Context, r io.Reader, el Element) error {
	return ReadFrom(ctxReader{ctx, r}, el)
}

// ReadElementContext is ReadElement under a context.
func ReadElementContext(ctx context.Context, h Header, r io.Reader, el Element) error {
	return ReadElement(h, ctxReader{ctx, r}, el)
}

// WriteToContext is WriteTo under a context.
func WriteToContext(ctx context.Context, w io.Writer, el Element) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return WriteTo(ctxWriter{ctx, w}, el)
}

// SkipBodyContext is SkipBody under a context. Seek-based skips are a
// single position change and are not interruptible.
func SkipBodyContext(ctx context.Context, r io.Reader, h Header) error {
	if _, ok := r.(io.Seeker); ok {
		if err := ctx.Err(); err != nil {
			return err
		}
		return SkipBody(r, h)
	}
	return SkipBody(ctxReader{ctx, r}, h)
}
