package cli

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/memokeep/memobook/internal/books"
	"github.com/memokeep/memobook/internal/config"
	"github.com/memokeep/memobook/internal/logging"
	"github.com/memokeep/memobook/internal/pagestore"
	"github.com/memokeep/memobook/internal/session"
	"github.com/memokeep/memobook/internal/storage"

	_ "modernc.org/sqlite"
)

// App wires the memobook core behind a small REPL. One book may be open at
// a time; its Session carries the editing state.
type App struct {
	cfg     *config.Config
	log     logging.Logger
	db      *sql.DB
	books   *books.Service
	pages   *pagestore.PageStore
	surface *stubSurface
	images  *fileImageSource

	session *session.Session
}

// NewApp opens (creating if needed) the configured database and builds the
// service graph.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewTextLogger(slog.LevelInfo)

	store, db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:     cfg,
		log:     log,
		db:      db,
		books:   books.NewService(store, log),
		pages:   pagestore.New(store, log),
		surface: &stubSurface{},
		images:  &fileImageSource{},
	}, nil
}

// newAppWithStore builds an App over an injected store; used by tests.
func newAppWithStore(store storage.Store, log logging.Logger, cfg *config.Config) *App {
	return &App{
		cfg:     cfg,
		log:     log,
		books:   books.NewService(store, log),
		pages:   pagestore.New(store, log),
		surface: &stubSurface{},
		images:  &fileImageSource{},
	}
}

// Close flushes an open session and releases the database.
func (a *App) Close(ctx context.Context) error {
	a.closeSession(ctx)
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func (a *App) closeSession(ctx context.Context) {
	if a.session != nil {
		if err := a.session.Close(ctx); err != nil {
			a.log.Warn(ctx, "session close failed", "error", err)
		}
		a.session = nil
	}
}

func (a *App) hasOpenBook() bool {
	return a.session != nil
}
