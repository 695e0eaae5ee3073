package models

import "bytes"

// Drawing is the opaque serialized ink payload produced and consumed by the
// external drawing surface. The core never inspects strokes; it only stores
// the bytes and answers the emptiness query.
type Drawing []byte

// Empty reports whether the drawing has no strokes (zero bounds).
func (d Drawing) Empty() bool {
	return len(d) == 0
}

// Equal compares drawings byte for byte.
func (d Drawing) Equal(other Drawing) bool {
	return bytes.Equal(d, other)
}

// Clone returns an independent copy of the drawing bytes.
func (d Drawing) Clone() Drawing {
	if d == nil {
		return nil
	}
	out := make(Drawing, len(d))
	copy(out, d)
	return out
}
