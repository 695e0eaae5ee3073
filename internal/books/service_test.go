package books

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memokeep/memobook/internal/logging"
	"github.com/memokeep/memobook/internal/models"
	"github.com/memokeep/memobook/internal/pagestore"
	"github.com/memokeep/memobook/internal/storage"
)

func newService(t *testing.T) (*Service, *storage.MemoryStore) {
	t.Helper()
	mem := storage.NewMemoryStore()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewService(mem, log), mem
}

func TestService_AddAndList(t *testing.T) {
	ctx := context.Background()
	s, _ := newService(t)

	trip, err := s.Add(ctx, "Trip", models.Palette["blue"])
	require.NoError(t, err)
	school, err := s.Add(ctx, "School", models.Palette["red"])
	require.NoError(t, err)

	got := s.List(ctx)
	require.Len(t, got, 2)
	assert.Equal(t, trip, got[0])
	assert.Equal(t, school, got[1])
}

func TestService_AddEmptyName(t *testing.T) {
	s, _ := newService(t)

	_, err := s.Add(context.Background(), "  ", models.Palette["blue"])
	assert.ErrorIs(t, err, models.ErrEmptyName)
	assert.Empty(t, s.List(context.Background()))
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()
	s, _ := newService(t)

	b, err := s.Add(ctx, "Trip", models.Palette["blue"])
	require.NoError(t, err)

	got, err := s.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	_, err = s.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestService_DeleteCascadesToPages(t *testing.T) {
	ctx := context.Background()
	s, mem := newService(t)

	b, err := s.Add(ctx, "Trip", models.Palette["blue"])
	require.NoError(t, err)

	// Simulate saved pages for the book.
	require.NoError(t, mem.Set(ctx, pagestore.PagesKey(b.ID), []byte(`["Page 1"]`)))

	require.NoError(t, s.Delete(ctx, b.ID))
	assert.Empty(t, s.List(ctx))

	_, err = mem.Get(ctx, pagestore.PagesKey(b.ID))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestService_DeleteMissing(t *testing.T) {
	s, _ := newService(t)
	err := s.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestService_ListCorruptIsEmpty(t *testing.T) {
	ctx := context.Background()
	s, mem := newService(t)

	require.NoError(t, mem.Set(ctx, BooksKey, []byte("garbage")))
	assert.Empty(t, s.List(ctx))
}
