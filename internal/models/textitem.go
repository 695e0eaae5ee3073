package models

import "github.com/google/uuid"

// Font size bounds enforced on every rescale.
const (
	MinFontSize     = 10.0
	MaxFontSize     = 72.0
	DefaultFontSize = 24.0
)

// TextItem is a positioned, editable text label on a page.
//
// Editing is a transient UI marker and is never persisted. FontSize is
// cosmetic state that resets to the default on reload.
type TextItem struct {
	ID       uuid.UUID
	Text     string
	Position Point
	FontSize float64
	Editing  bool
}

// NewTextItem creates a label with a fresh id at the given position.
func NewTextItem(text string, position Point) TextItem {
	return TextItem{
		ID:       uuid.New(),
		Text:     text,
		Position: position,
		FontSize: DefaultFontSize,
	}
}

// Reposition moves the label. The caller decides whether the new position
// was clamped to the page beforehand.
func (t *TextItem) Reposition(p Point) {
	t.Position = p
}

// Rescale multiplies the font size by a pinch magnification, clamped to
// [MinFontSize, MaxFontSize]. Out-of-range sizes are never stored.
func (t *TextItem) Rescale(magnification float64) {
	t.FontSize = clamp(t.FontSize*magnification, MinFontSize, MaxFontSize)
}

// SetText replaces the label text. Empty text is permitted.
func (t *TextItem) SetText(text string) {
	t.Text = text
}

// Equal compares id, text and position. Font size and the editing marker are
// mutable cosmetic state and excluded on purpose.
func (t TextItem) Equal(other TextItem) bool {
	return t.ID == other.ID && t.Text == other.Text && t.Position == other.Position
}
