package models

import (
	"fmt"

	"github.com/google/uuid"
)

// PageData is one page of a memory book: an ink drawing plus ordered text
// and image items. Item order is insertion order and doubles as z-order for
// rendering; drags mutate positions in place and never reorder.
//
// The three Show*/Placing flags are transient UI-mode markers. They live on
// the page so the editing surface can restore its chrome, but they are not
// part of the persisted form.
type PageData struct {
	ID        uuid.UUID
	Title     string
	Drawing   Drawing
	TextItems []TextItem
	Images    []ImageItem

	ShowToolPicker  bool
	ShowImagePicker bool
	PlacingText     bool
}

// NewPage creates an empty page: no drawing, no items, flags off.
func NewPage(title string) PageData {
	return PageData{ID: uuid.New(), Title: title}
}

// DefaultTitle returns the title given to the n-th page (1-based), "Page N".
func DefaultTitle(n int) string {
	return fmt.Sprintf("Page %d", n)
}

// SetDrawing replaces the drawing wholesale. The surface owns stroke-level
// state; at page granularity the last writer wins.
func (p *PageData) SetDrawing(d Drawing) {
	p.Drawing = d
}

// AddText appends a text item, keeping insertion order.
func (p *PageData) AddText(item TextItem) {
	p.TextItems = append(p.TextItems, item)
}

// AddImage appends an image item, keeping insertion order.
func (p *PageData) AddImage(item ImageItem) {
	p.Images = append(p.Images, item)
}

// TextByID returns a mutable reference to the text item with the given id.
func (p *PageData) TextByID(id uuid.UUID) (*TextItem, bool) {
	for n := range p.TextItems {
		if p.TextItems[n].ID == id {
			return &p.TextItems[n], true
		}
	}
	return nil, false
}

// ImageByID returns a mutable reference to the image item with the given id.
func (p *PageData) ImageByID(id uuid.UUID) (*ImageItem, bool) {
	for n := range p.Images {
		if p.Images[n].ID == id {
			return &p.Images[n], true
		}
	}
	return nil, false
}

// RemoveText deletes the text item with the given id, preserving the order
// of the rest. Returns false when no such item exists.
func (p *PageData) RemoveText(id uuid.UUID) bool {
	for n := range p.TextItems {
		if p.TextItems[n].ID == id {
			p.TextItems = append(p.TextItems[:n], p.TextItems[n+1:]...)
			return true
		}
	}
	return false
}

// RemoveImage deletes the image item with the given id.
func (p *PageData) RemoveImage(id uuid.UUID) bool {
	for n := range p.Images {
		if p.Images[n].ID == id {
			p.Images = append(p.Images[:n], p.Images[n+1:]...)
			return true
		}
	}
	return false
}

// Clear resets the page content: empty drawing, no items, tool picker
// dismissed. Idempotent. The caller persists afterwards.
func (p *PageData) Clear() {
	p.Drawing = nil
	p.TextItems = nil
	p.Images = nil
	p.ShowToolPicker = false
}

// Empty reports whether the page has no drawing and no items.
func (p *PageData) Empty() bool {
	return p.Drawing.Empty() && len(p.TextItems) == 0 && len(p.Images) == 0
}

// Equal compares id, title, drawing bytes and items under item equality.
// Transient flags and cosmetic state are excluded; this is the equality the
// serialization round trip preserves.
func (p PageData) Equal(other PageData) bool {
	if p.ID != other.ID || p.Title != other.Title || !p.Drawing.Equal(other.Drawing) {
		return false
	}
	if len(p.TextItems) != len(other.TextItems) || len(p.Images) != len(other.Images) {
		return false
	}
	for n := range p.TextItems {
		if !p.TextItems[n].Equal(other.TextItems[n]) {
			return false
		}
	}
	for n := range p.Images {
		if !p.Images[n].Equal(other.Images[n]) {
			return false
		}
	}
	return true
}

// PagePreview is a short summary of a page for list views.
type PagePreview struct {
	Title      string
	HasDrawing bool
	Snippets   []string
	ImageCount int
}

// Preview summarizes the page using at most maxItems text snippets.
func (p *PageData) Preview(maxItems int) PagePreview {
	pv := PagePreview{
		Title:      p.Title,
		HasDrawing: !p.Drawing.Empty(),
		ImageCount: len(p.Images),
	}
	for n := range p.TextItems {
		if n == maxItems {
			break
		}
		pv.Snippets = append(pv.Snippets, p.TextItems[n].Text)
	}
	return pv
}
