package session

import "errors"

// Mode is the page-editing UI mode. Drawing, PlacingText and PickingImage
// are mutually exclusive and always return to Viewing.
type Mode int

const (
	ModeViewing Mode = iota
	ModeDrawing
	ModePlacingText
	ModePickingImage
)

// ErrModeBusy rejects an operation whose editing mode conflicts with the
// active one: entering a mode while another is up, or ending one that was
// never entered.
var ErrModeBusy = errors.New("conflicting editing mode")

func (m Mode) String() string {
	switch m {
	case ModeViewing:
		return "viewing"
	case ModeDrawing:
		return "drawing"
	case ModePlacingText:
		return "placing-text"
	case ModePickingImage:
		return "picking-image"
	default:
		return "unknown"
	}
}
