package matroska

import "github.com/google/uuid"

// NewSegmentUUID returns a freshly generated 128-bit segment identifier,
// a random UUID v4 as the specification calls for.
func NewSegmentUUID() SegmentUUID {
	u := uuid.New()
	return SegmentUUID(u[:])
}
