// Package pagestore orchestrates persistence of a book's page list between
// the in-memory model and the storage port.
package pagestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/memokeep/memobook/internal/logging"
	"github.com/memokeep/memobook/internal/models"
	"github.com/memokeep/memobook/internal/storage"
)

const keyPrefix = "bookPages_"

// PagesKey returns the storage key of a book's page list.
func PagesKey(bookID uuid.UUID) string {
	return keyPrefix + bookID.String()
}

// PageStore loads and saves page lists keyed by book identity.
type PageStore struct {
	store storage.Store
	log   logging.Logger
}

func New(store storage.Store, log logging.Logger) *PageStore {
	return &PageStore{store: store, log: log}
}

// Load returns the pages stored for the book. It never fails toward the
// caller: a missing key means a book with no pages yet, and an unreadable
// payload degrades through the legacy title-list format to an empty list.
func (s *PageStore) Load(ctx context.Context, bookID uuid.UUID) []models.PageData {
	key := PagesKey(bookID)

	data, err := s.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn(ctx, "page load failed, starting empty", "key", key, "error", err)
		}
		return nil
	}

	pages, err := models.DecodePages(data)
	if err != nil {
		s.log.Warn(ctx, "stored pages unreadable, starting empty", "key", key, "error", err)
		return nil
	}
	return pages
}

// Save encodes the page list and writes it under the book's key. A failed
// write is retried once; persistence stays best-effort, so the caller may
// ignore the returned error, but it is never swallowed silently.
func (s *PageStore) Save(ctx context.Context, bookID uuid.UUID, pages []models.PageData) error {
	key := PagesKey(bookID)

	data, err := models.EncodePages(pages)
	if err != nil {
		s.log.Error(ctx, "page encode failed", "key", key, "error", err)
		return fmt.Errorf("encode pages: %w", err)
	}

	if err := s.store.Set(ctx, key, data); err != nil {
		s.log.Warn(ctx, "page save failed, retrying", "key", key, "error", err)
		if err := s.store.Set(ctx, key, data); err != nil {
			s.log.Error(ctx, "page save failed after retry", "key", key, "error", err)
			return fmt.Errorf("save pages: %w", err)
		}
	}

	s.log.Debug(ctx, "pages saved", "key", key, "count", len(pages))
	return nil
}

// Delete removes the book's page blob.
func (s *PageStore) Delete(ctx context.Context, bookID uuid.UUID) error {
	return s.store.Delete(ctx, PagesKey(bookID))
}
