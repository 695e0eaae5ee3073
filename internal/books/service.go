// Package books manages the persisted book list and book lifecycle.
package books

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/memokeep/memobook/internal/logging"
	"github.com/memokeep/memobook/internal/models"
	"github.com/memokeep/memobook/internal/pagestore"
	"github.com/memokeep/memobook/internal/storage"
)

// BooksKey is the top-level storage key of the book list.
const BooksKey = "books"

// ErrBookNotFound reports an id with no matching book.
var ErrBookNotFound = errors.New("book not found")

// Service persists the book list and cascades book deletion to the book's
// page storage.
type Service struct {
	store storage.Store
	log   logging.Logger
}

func NewService(store storage.Store, log logging.Logger) *Service {
	return &Service{store: store, log: log}
}

// List returns all books. Missing or unreadable data yields an empty list;
// loading never fails toward the caller.
func (s *Service) List(ctx context.Context) []models.MemoryBook {
	data, err := s.store.Get(ctx, BooksKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn(ctx, "book list load failed, starting empty", "error", err)
		}
		return nil
	}

	books, err := models.DecodeBooks(data)
	if err != nil {
		s.log.Warn(ctx, "stored book list unreadable, starting empty", "error", err)
		return nil
	}
	return books
}

// Add creates a book and appends it to the persisted list.
func (s *Service) Add(ctx context.Context, name string, color models.Color) (models.MemoryBook, error) {
	book, err := models.NewBook(name, color)
	if err != nil {
		return models.MemoryBook{}, err
	}

	list := append(s.List(ctx), book)
	if err := s.save(ctx, list); err != nil {
		return models.MemoryBook{}, err
	}

	s.log.Info(ctx, "book created", "id", book.ID, "name", book.Name)
	return book, nil
}

// Get returns the book with the given id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (models.MemoryBook, error) {
	for _, b := range s.List(ctx) {
		if b.ID == id {
			return b, nil
		}
	}
	return models.MemoryBook{}, ErrBookNotFound
}

// Delete removes the book record and cascades to its page storage key, so
// no orphaned page blob stays behind.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	list := s.List(ctx)
	kept := list[:0]
	found := false
	for _, b := range list {
		if b.ID == id {
			found = true
			continue
		}
		kept = append(kept, b)
	}
	if !found {
		return ErrBookNotFound
	}

	if err := s.save(ctx, kept); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, pagestore.PagesKey(id)); err != nil {
		// The record is gone; an orphaned page blob is a cleanup miss,
		// not a failed delete.
		s.log.Warn(ctx, "page blob cleanup failed", "book", id, "error", err)
	}

	s.log.Info(ctx, "book deleted", "id", id)
	return nil
}

func (s *Service) save(ctx context.Context, list []models.MemoryBook) error {
	data, err := models.EncodeBooks(list)
	if err != nil {
		return fmt.Errorf("encode books: %w", err)
	}
	if err := s.store.Set(ctx, BooksKey, data); err != nil {
		s.log.Warn(ctx, "book list save failed, retrying", "error", err)
		if err := s.store.Set(ctx, BooksKey, data); err != nil {
			s.log.Error(ctx, "book list save failed after retry", "error", err)
			return fmt.Errorf("save books: %w", err)
		}
	}
	return nil
}
