// Package session implements the editing-state model for one open book:
// a bounds-safe current-page cursor, the per-page UI-mode state machine,
// the gesture mutation API, and debounced autosave. The rendering layer
// stays behind the DrawingSurface and ImageSource ports.
package session

import (
	"context"

	"github.com/memokeep/memobook/internal/models"
)

// DrawingSurface is the external ink-drawing engine. The core never
// interprets stroke data; it exchanges opaque blobs with the surface.
type DrawingSurface interface {
	// CurrentDrawing returns the surface's present ink payload.
	CurrentDrawing() models.Drawing

	// SetDrawing replaces the surface's ink payload, e.g. on page switch.
	SetDrawing(d models.Drawing)

	// SetToolVisible shows or hides the surface's tool picker.
	SetToolVisible(visible bool)
}

// ImageSource asynchronously yields a picked photo. A (nil, nil) result
// means the user cancelled the picker.
type ImageSource interface {
	Request(ctx context.Context) ([]byte, error)
}
