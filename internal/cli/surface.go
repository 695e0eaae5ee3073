package cli

import "github.com/memokeep/memobook/internal/models"

// stubSurface is the CLI's stand-in for the platform ink engine: it holds
// the opaque blob the session exchanges with a real drawing surface. The
// "draw" command writes a payload here before notifying the session.
type stubSurface struct {
	drawing     models.Drawing
	toolVisible bool
}

func (s *stubSurface) CurrentDrawing() models.Drawing { return s.drawing }
func (s *stubSurface) SetDrawing(d models.Drawing)    { s.drawing = d }
func (s *stubSurface) SetToolVisible(v bool)          { s.toolVisible = v }
