package pagestore

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memokeep/memobook/internal/logging"
	"github.com/memokeep/memobook/internal/models"
	"github.com/memokeep/memobook/internal/storage"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// failingStore wraps a MemoryStore and fails the first n Set calls.
type failingStore struct {
	*storage.MemoryStore
	failures int
}

func (f *failingStore) Set(ctx context.Context, key string, value []byte) error {
	if f.failures > 0 {
		f.failures--
		return errors.New("disk full")
	}
	return f.MemoryStore.Set(ctx, key, value)
}

func TestPageStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New(storage.NewMemoryStore(), discardLogger())
	bookID := uuid.New()

	p := models.NewPage("Page 1")
	p.SetDrawing(models.Drawing("ink"))
	p.AddText(models.NewTextItem("Hello", models.Point{X: 100, Y: 100}))

	require.NoError(t, s.Save(ctx, bookID, []models.PageData{p}))

	got := s.Load(ctx, bookID)
	require.Len(t, got, 1)
	assert.True(t, p.Equal(got[0]))
	assert.Equal(t, models.DefaultFontSize, got[0].TextItems[0].FontSize)
}

func TestPageStore_LoadMissingIsEmpty(t *testing.T) {
	s := New(storage.NewMemoryStore(), discardLogger())
	assert.Empty(t, s.Load(context.Background(), uuid.New()))
}

func TestPageStore_LoadLegacyTitleList(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()
	s := New(mem, discardLogger())
	bookID := uuid.New()

	legacy, err := json.Marshal([]string{"Page 1", "Page 2"})
	require.NoError(t, err)
	require.NoError(t, mem.Set(ctx, PagesKey(bookID), legacy))

	got := s.Load(ctx, bookID)
	require.Len(t, got, 2)
	assert.Equal(t, "Page 1", got[0].Title)
	assert.Equal(t, "Page 2", got[1].Title)
	assert.True(t, got[0].Drawing.Empty())
	assert.Empty(t, got[0].TextItems)
	assert.Empty(t, got[0].Images)
}

func TestPageStore_LoadCorruptIsEmpty(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()
	s := New(mem, discardLogger())
	bookID := uuid.New()

	require.NoError(t, mem.Set(ctx, PagesKey(bookID), []byte("corrupt")))
	assert.Empty(t, s.Load(ctx, bookID))
}

func TestPageStore_SaveRetriesOnce(t *testing.T) {
	ctx := context.Background()
	fs := &failingStore{MemoryStore: storage.NewMemoryStore(), failures: 1}
	s := New(fs, discardLogger())
	bookID := uuid.New()

	require.NoError(t, s.Save(ctx, bookID, []models.PageData{models.NewPage("Page 1")}))
	require.Len(t, s.Load(ctx, bookID), 1)
}

func TestPageStore_SaveFailsAfterRetry(t *testing.T) {
	ctx := context.Background()
	fs := &failingStore{MemoryStore: storage.NewMemoryStore(), failures: 2}
	s := New(fs, discardLogger())

	err := s.Save(ctx, uuid.New(), []models.PageData{models.NewPage("Page 1")})
	assert.Error(t, err)
}

func TestPageStore_Delete(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()
	s := New(mem, discardLogger())
	bookID := uuid.New()

	require.NoError(t, s.Save(ctx, bookID, []models.PageData{models.NewPage("Page 1")}))
	require.NoError(t, s.Delete(ctx, bookID))
	assert.Empty(t, s.Load(ctx, bookID))
	assert.Equal(t, 0, mem.Len())
}

func TestPagesKey(t *testing.T) {
	id := uuid.MustParse("6e7cdaa8-36c5-4e66-bb2c-a40cbb744a52")
	assert.Equal(t, "bookPages_6e7cdaa8-36c5-4e66-bb2c-a40cbb744a52", PagesKey(id))
}
