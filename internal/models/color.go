package models

import "encoding/json"

// Color is a book's display tint as an RGB(+opacity) tuple, channels in [0,1].
// It is decorative only; nothing in the core interprets it.
type Color struct {
	R       float64
	G       float64
	B       float64
	Opacity float64
}

type colorRecord struct {
	R       float64  `json:"r"`
	G       float64  `json:"g"`
	B       float64  `json:"b"`
	Opacity *float64 `json:"opacity,omitempty"`
}

func (c Color) MarshalJSON() ([]byte, error) {
	op := c.Opacity
	return json.Marshal(colorRecord{R: c.R, G: c.G, B: c.B, Opacity: &op})
}

// UnmarshalJSON defaults opacity to 1 when the stored record omits it
// (older book records carried only r/g/b).
func (c *Color) UnmarshalJSON(data []byte) error {
	var rec colorRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	c.R, c.G, c.B = rec.R, rec.G, rec.B
	if rec.Opacity != nil {
		c.Opacity = *rec.Opacity
	} else {
		c.Opacity = 1
	}
	return nil
}

// Palette lists the default book colors offered at creation time.
var Palette = map[string]Color{
	"black":  {R: 0, G: 0, B: 0, Opacity: 1},
	"red":    {R: 1, G: 0, B: 0, Opacity: 1},
	"blue":   {R: 0, G: 0, B: 1, Opacity: 1},
	"green":  {R: 0, G: 0.8, B: 0, Opacity: 1},
	"purple": {R: 0.5, G: 0, B: 0.5, Opacity: 1},
	"orange": {R: 1, G: 0.6, B: 0, Opacity: 1},
	"pink":   {R: 1, G: 0.2, B: 0.6, Opacity: 1},
	"brown":  {R: 0.6, G: 0.4, B: 0.2, Opacity: 1},
	"gray":   {R: 0.5, G: 0.5, B: 0.5, Opacity: 1},
}
