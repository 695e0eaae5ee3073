package models

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/memokeep/memobook/internal/imagex"
)

// ErrUnknownFormat reports a stored page payload that is neither the
// structured format nor the legacy title list.
var ErrUnknownFormat = errors.New("unknown page data format")

// The persisted record shapes. Field names follow the historical storage
// format, so existing data keeps loading: flattened positionX/positionY
// coordinates, an optional drawingData blob, imageData bytes per image.
// Cosmetic state (font size, scale) and transient UI flags are deliberately
// absent; they reset to defaults on load. Unknown fields in older payloads
// are ignored.
type pageRecord struct {
	ID        uuid.UUID     `json:"id"`
	Title     string        `json:"title"`
	Drawing   looseBytes    `json:"drawingData,omitempty"`
	TextItems []textRecord  `json:"textItems"`
	Images    []imageRecord `json:"imagesData"`
}

type textRecord struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
	X    float64   `json:"positionX"`
	Y    float64   `json:"positionY"`
}

type imageRecord struct {
	ID   uuid.UUID  `json:"id"`
	Data looseBytes `json:"imageData"`
	X    float64    `json:"positionX"`
	Y    float64    `json:"positionY"`
}

// looseBytes marshals exactly like []byte but tolerates corrupt stored
// values: a field that is not valid base64 decodes as nil instead of
// failing the whole record, so one bad blob cannot take the book down.
type looseBytes []byte

func (b *looseBytes) UnmarshalJSON(data []byte) error {
	var raw []byte
	if err := json.Unmarshal(data, &raw); err != nil {
		*b = nil
		return nil
	}
	*b = raw
	return nil
}

// EncodePages serializes a page list into the canonical structured format.
func EncodePages(pages []PageData) ([]byte, error) {
	records := make([]pageRecord, 0, len(pages))
	for n := range pages {
		records = append(records, encodePage(&pages[n]))
	}
	return json.Marshal(records)
}

func encodePage(p *PageData) pageRecord {
	rec := pageRecord{
		ID:        p.ID,
		Title:     p.Title,
		Drawing:   looseBytes(p.Drawing),
		TextItems: make([]textRecord, 0, len(p.TextItems)),
		Images:    make([]imageRecord, 0, len(p.Images)),
	}
	for _, t := range p.TextItems {
		rec.TextItems = append(rec.TextItems, textRecord{
			ID: t.ID, Text: t.Text, X: t.Position.X, Y: t.Position.Y,
		})
	}
	for _, i := range p.Images {
		rec.Images = append(rec.Images, imageRecord{
			ID: i.ID, Data: i.Data, X: i.Position.X, Y: i.Position.Y,
		})
	}
	return rec
}

// DecodePages reconstructs a page list from stored bytes. It first attempts
// the structured format, then the legacy format (a plain list of page
// titles, from which empty pages are synthesized). Within a structured page,
// unreadable image bytes drop that single image rather than failing the
// page, and a missing or corrupt drawing blob yields an empty drawing.
func DecodePages(data []byte) ([]PageData, error) {
	var records []pageRecord
	if err := json.Unmarshal(data, &records); err == nil {
		pages := make([]PageData, 0, len(records))
		for n := range records {
			pages = append(pages, decodePage(&records[n]))
		}
		return pages, nil
	}

	var titles []string
	if err := json.Unmarshal(data, &titles); err == nil {
		pages := make([]PageData, 0, len(titles))
		for _, title := range titles {
			pages = append(pages, NewPage(title))
		}
		return pages, nil
	}

	return nil, ErrUnknownFormat
}

func decodePage(rec *pageRecord) PageData {
	p := PageData{
		ID:      rec.ID,
		Title:   rec.Title,
		Drawing: Drawing(rec.Drawing),
	}
	for _, t := range rec.TextItems {
		p.TextItems = append(p.TextItems, TextItem{
			ID:       t.ID,
			Text:     t.Text,
			Position: Point{X: t.X, Y: t.Y},
			FontSize: DefaultFontSize,
		})
	}
	for _, i := range rec.Images {
		if !imagex.Valid(i.Data) {
			// Unusable photo bytes: skip the item, keep the page.
			continue
		}
		p.Images = append(p.Images, ImageItem{
			ID:       i.ID,
			Data:     i.Data,
			Position: Point{X: i.X, Y: i.Y},
			Scale:    DefaultImageScale,
		})
	}
	return p
}
