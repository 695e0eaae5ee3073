// Package imagex normalizes picked photos for persistence. A photo arrives
// in whatever format the platform picker produced; it is decoded once and
// re-encoded as JPEG at capture time, and stored bytes are validated on load.
package imagex

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUndecodable reports image bytes no registered decoder understands.
var ErrUndecodable = errors.New("undecodable image data")

// Quality matches the capture quality used when a photo is first attached
// to a page.
const Quality = 70

// Reencode decodes src in any registered format and re-encodes it as JPEG
// at the capture quality. It is applied exactly once, when the image item
// is created; the stored bytes are never re-encoded again.
func Reencode(src []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: Quality}); err != nil {
		return nil, fmt.Errorf("jpeg encode: %w", err)
	}
	return out.Bytes(), nil
}

// Bounds returns the pixel dimensions of encoded image bytes without
// decoding the full bitmap. Used to validate stored images on load.
func Bounds(b []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	return cfg.Width, cfg.Height, nil
}

// Valid reports whether b holds decodable image bytes.
func Valid(b []byte) bool {
	_, _, err := Bounds(b)
	return err == nil
}
