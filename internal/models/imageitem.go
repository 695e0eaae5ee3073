package models

import (
	"bytes"

	"github.com/google/uuid"
)

// Image scale bounds enforced on every rescale.
const (
	MinImageScale     = 0.5
	MaxImageScale     = 3.0
	DefaultImageScale = 1.0
)

// ImageItem is a positioned photo on a page. Data holds the bytes captured
// once at creation (already re-encoded for persistence) and is never mutated
// afterwards; only position and scale change.
type ImageItem struct {
	ID       uuid.UUID
	Data     []byte
	Position Point
	Scale    float64
}

// NewImageItem creates an image item with a fresh id at the given position.
// data must already be in its persisted encoding (see imagex.Reencode).
func NewImageItem(data []byte, position Point) ImageItem {
	return ImageItem{
		ID:       uuid.New(),
		Data:     data,
		Position: position,
		Scale:    DefaultImageScale,
	}
}

// Reposition moves the image.
func (i *ImageItem) Reposition(p Point) {
	i.Position = p
}

// Rescale multiplies the scale by a pinch magnification, clamped to
// [MinImageScale, MaxImageScale].
func (i *ImageItem) Rescale(magnification float64) {
	i.Scale = clamp(i.Scale*magnification, MinImageScale, MaxImageScale)
}

// Equal compares id, bytes and position. Scale is mutable cosmetic state and
// excluded, mirroring TextItem equality.
func (i ImageItem) Equal(other ImageItem) bool {
	return i.ID == other.ID && bytes.Equal(i.Data, other.Data) && i.Position == other.Position
}
