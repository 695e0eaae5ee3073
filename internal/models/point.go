// Package models defines the page-content types of a memory book: pages,
// their drawn ink, movable text labels and photos, and the books that own
// them. It also owns the canonical serialized form of a page list.
package models

// Point is a 2D position on a page, in points.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Clamped returns the point constrained to the page rectangle of the given
// size, inset by margin on every edge. Keeps dragged items visibly on-page.
func (p Point) Clamped(width, height, margin float64) Point {
	return Point{
		X: clamp(p.X, margin, width-margin),
		Y: clamp(p.Y, margin, height-margin),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
