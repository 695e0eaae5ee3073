package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memokeep/memobook/internal/config"
	"github.com/memokeep/memobook/internal/logging"
	"github.com/memokeep/memobook/internal/pagestore"
	"github.com/memokeep/memobook/internal/storage"
)

// captureOutput redirects the print seams into a buffer for the test.
func captureOutput(t *testing.T) *strings.Builder {
	t.Helper()
	var sb strings.Builder
	oldPrintln, oldPrintf := printlnFn, printfFn
	t.Cleanup(func() { printlnFn, printfFn = oldPrintln, oldPrintf })

	printlnFn = func(args ...any) (int, error) {
		return fmt.Fprintln(&sb, args...)
	}
	printfFn = func(format string, args ...any) (int, error) {
		return fmt.Fprintf(&sb, format, args...)
	}
	return &sb
}

func newTestApp(t *testing.T) (*App, *storage.MemoryStore) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	store := storage.NewMemoryStore()
	return newAppWithStore(store, log, cfg), store
}

func run(ctx context.Context, a *App, lines ...string) {
	for _, line := range lines {
		a.dispatch(ctx, line)
	}
}

func TestApp_BookLifecycle(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t)
	out := captureOutput(t)

	run(ctx, a,
		"books",
		"add blue Trip",
		"add red School Days",
		"books",
	)

	s := out.String()
	assert.Contains(t, s, "No books yet")
	assert.Contains(t, s, `Created book "Trip"`)
	assert.Contains(t, s, "1. Trip")
	assert.Contains(t, s, "2. School Days")
}

func TestApp_AddBookValidation(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t)
	out := captureOutput(t)

	run(ctx, a, "add", "add chartreuse X", "add blue")

	s := out.String()
	assert.Contains(t, s, "Usage: add <color> <name>")
	assert.Contains(t, s, "Unknown color")
	assert.Empty(t, a.books.List(ctx))
}

func TestApp_EditScenario(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t)
	out := captureOutput(t)

	run(ctx, a,
		"add blue Trip",
		"open 1",
		"addpage",
		"text 100 100",
		"edittext 1 Hello",
		"draw some ink payload",
		"pages",
		"save",
	)

	s := out.String()
	assert.Contains(t, s, `Opened "Trip": 0 page(s)`)
	assert.Contains(t, s, `Added "Page 1"`)
	assert.Contains(t, s, `Placed "New Text" at (100, 100)`)
	assert.Contains(t, s, `"Hello"`)
	assert.Contains(t, s, "drawing")
	assert.Contains(t, s, "Saved")

	// The store really has the page content.
	page, ok := a.session.CurrentPage()
	require.True(t, ok)
	require.Len(t, page.TextItems, 1)
	assert.Equal(t, "Hello", page.TextItems[0].Text)
	assert.False(t, page.Drawing.Empty())
}

func TestApp_ReloadAfterClose(t *testing.T) {
	ctx := context.Background()
	a, store := newTestApp(t)
	captureOutput(t)

	run(ctx, a,
		"add blue Trip",
		"open 1",
		"addpage",
		"text 100 100",
		"edittext 1 Hello",
		"close",
	)
	require.Nil(t, a.session)

	// A second app over the same store sees the saved state.
	cfg := &config.Config{}
	cfg.LoadDefaults()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	b := newAppWithStore(store, log, cfg)

	books := b.books.List(ctx)
	require.Len(t, books, 1)
	assert.Equal(t, "Trip", books[0].Name)

	pages := pagestore.New(store, log).Load(ctx, books[0].ID)
	require.Len(t, pages, 1)
	require.Len(t, pages[0].TextItems, 1)
	assert.Equal(t, "Hello", pages[0].TextItems[0].Text)
}

func TestApp_DeleteBookCascades(t *testing.T) {
	ctx := context.Background()
	a, store := newTestApp(t)
	captureOutput(t)

	run(ctx, a,
		"add blue Trip",
		"open 1",
		"addpage",
		"close",
		"delete 1",
	)

	assert.Empty(t, a.books.List(ctx))
	assert.Equal(t, 1, store.Len()) // only the (empty) books key remains
}

func TestApp_PageCommandsRequireOpenBook(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t)
	out := captureOutput(t)

	run(ctx, a, "pages", "addpage", "clear")
	assert.Contains(t, out.String(), "Open a book first")
}

func TestApp_DeletePageOfEmptyBook(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t)
	out := captureOutput(t)

	run(ctx, a, "add blue Trip", "open 1", "delpage")
	assert.Contains(t, out.String(), "Cannot delete page")
}

func TestApp_UnknownCommandAndExit(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t)
	out := captureOutput(t)

	assert.True(t, a.dispatch(ctx, "frobnicate"))
	assert.True(t, a.dispatch(ctx, "   "))
	assert.False(t, a.dispatch(ctx, "exit"))

	s := out.String()
	assert.Contains(t, s, "Unknown command: frobnicate")
	assert.Contains(t, s, "Bye!")
}
