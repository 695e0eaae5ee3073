package models

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrEmptyName rejects book creation without a usable display name.
var ErrEmptyName = errors.New("book name is empty")

// MemoryBook is a named, color-tagged collection of pages. The book id is
// also the storage key for its page list; pages are exclusively owned by
// the book and persisted separately under that key.
type MemoryBook struct {
	ID    uuid.UUID
	Name  string
	Color Color
}

// NewBook creates a book with a fresh id. The name must be non-blank.
func NewBook(name string, color Color) (MemoryBook, error) {
	if strings.TrimSpace(name) == "" {
		return MemoryBook{}, ErrEmptyName
	}
	return MemoryBook{ID: uuid.New(), Name: name, Color: color}, nil
}

type bookRecord struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color Color     `json:"color"`
}

// EncodeBooks serializes the book list persisted under the top-level key.
func EncodeBooks(books []MemoryBook) ([]byte, error) {
	records := make([]bookRecord, 0, len(books))
	for _, b := range books {
		records = append(records, bookRecord{ID: b.ID, Name: b.Name, Color: b.Color})
	}
	return json.Marshal(records)
}

// DecodeBooks is the inverse of EncodeBooks.
func DecodeBooks(data []byte) ([]MemoryBook, error) {
	var records []bookRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	books := make([]MemoryBook, 0, len(records))
	for _, r := range records {
		books = append(books, MemoryBook{ID: r.ID, Name: r.Name, Color: r.Color})
	}
	return books, nil
}
