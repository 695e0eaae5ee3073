package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/memokeep/memobook/internal/config"
	"github.com/memokeep/memobook/internal/imagex"
	"github.com/memokeep/memobook/internal/logging"
	"github.com/memokeep/memobook/internal/models"
	"github.com/memokeep/memobook/internal/pagestore"
)

// Defaults observed when placing new content without an explicit point.
var (
	DefaultTextPosition  = models.Point{X: 100, Y: 100}
	DefaultImagePosition = models.Point{X: 150, Y: 150}
)

// DefaultNewText is the placeholder text of a freshly placed label.
const DefaultNewText = "New Text"

// ErrNoPage rejects page operations while the book has no pages.
var ErrNoPage = errors.New("no page selected")

// ErrItemNotFound reports a drag/pinch/edit aimed at a missing item.
var ErrItemNotFound = errors.New("item not found")

// Session is the editing state of one open book. Gesture events arrive one
// at a time from the surface; structural edits persist immediately while
// drags, pinches and ink updates are saved through a short cancelable
// debounce so a burst of events costs one write.
type Session struct {
	mu sync.Mutex

	cfg     *config.Config
	book    models.MemoryBook
	cursor  *Cursor
	mode    Mode
	pages   *pagestore.PageStore
	surface DrawingSurface
	images  ImageSource
	log     logging.Logger

	saveTimer *time.Timer
}

// Open loads the book's pages and hands the current page's drawing to the
// surface.
func Open(ctx context.Context, cfg *config.Config, book models.MemoryBook,
	pages *pagestore.PageStore, surface DrawingSurface, images ImageSource,
	log logging.Logger) *Session {

	s := &Session{
		cfg:     cfg,
		book:    book,
		cursor:  NewCursor(pages.Load(ctx, book.ID)),
		pages:   pages,
		surface: surface,
		images:  images,
		log:     log.With("book", book.ID),
	}
	s.pushDrawingToSurface()
	return s
}

// Book returns the open book.
func (s *Session) Book() models.MemoryBook {
	return s.book
}

// Mode returns the active editing mode.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// PageCount returns the number of pages.
func (s *Session) PageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor.Count()
}

// PageIndex returns the current page index, -1 when the book is empty.
func (s *Session) PageIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor.Index()
}

// CurrentPage returns a copy of the selected page.
func (s *Session) CurrentPage() (models.PageData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.cursor.Current()
	if !ok {
		return models.PageData{}, false
	}
	return *p, true
}

// Previews summarizes every page for list rendering.
func (s *Session) Previews(maxItems int) []models.PagePreview {
	s.mu.Lock()
	defer s.mu.Unlock()
	pages := s.cursor.Pages()
	out := make([]models.PagePreview, 0, len(pages))
	for n := range pages {
		out = append(out, pages[n].Preview(maxItems))
	}
	return out
}

// SelectPage moves to page i (clamped) and pushes its drawing to the surface.
func (s *Session) SelectPage(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.Select(i)
	s.pushDrawingToSurface()
}

// NextPage flips forward one page.
func (s *Session) NextPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.Next()
	s.pushDrawingToSurface()
}

// PrevPage flips back one page.
func (s *Session) PrevPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.Prev()
	s.pushDrawingToSurface()
}

// AddPage appends an empty "Page N" page, selects it and persists.
func (s *Session) AddPage(ctx context.Context) models.PageData {
	s.mu.Lock()
	defer s.mu.Unlock()

	page := models.NewPage(models.DefaultTitle(s.cursor.Count() + 1))
	s.cursor.Append(page)
	s.pushDrawingToSurface()
	s.saveNowLocked(ctx)
	return page
}

// DeleteCurrentPage removes the selected page. The cursor re-clamps itself;
// deleting the only page leaves an empty book with no selection.
func (s *Session) DeleteCurrentPage(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cursor.RemoveCurrent() {
		return ErrNoPage
	}
	s.pushDrawingToSurface()
	s.saveNowLocked(ctx)
	return nil
}

// BeginDrawing opens the tool picker. Fails while another mode is active.
func (s *Session) BeginDrawing() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, ok := s.cursor.Current()
	if !ok {
		return ErrNoPage
	}
	if err := s.enterModeLocked(ModeDrawing); err != nil {
		return err
	}
	page.ShowToolPicker = true
	s.surface.SetToolVisible(true)
	return nil
}

// EndDrawing dismisses the tool picker, captures the surface's drawing into
// the page and schedules a debounced save (the deferral lets the dismissal
// animation settle before state is read again). Fails unless drawing is the
// active mode, so a stray call cannot capture the surface blob.
func (s *Session) EndDrawing() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, ok := s.cursor.Current()
	if !ok {
		return ErrNoPage
	}
	if s.mode != ModeDrawing {
		return fmt.Errorf("%w: %s", ErrModeBusy, s.mode)
	}
	page.SetDrawing(s.surface.CurrentDrawing())
	page.ShowToolPicker = false
	s.surface.SetToolVisible(false)
	s.mode = ModeViewing
	s.scheduleSaveLocked()
	return nil
}

// DrawingChanged handles the surface's stroke-completed notification:
// the page's blob is replaced wholesale, last writer wins.
func (s *Session) DrawingChanged() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, ok := s.cursor.Current()
	if !ok {
		return ErrNoPage
	}
	page.SetDrawing(s.surface.CurrentDrawing())
	s.scheduleSaveLocked()
	return nil
}

// BeginTextPlacement arms tap-to-place mode.
func (s *Session) BeginTextPlacement() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, ok := s.cursor.Current()
	if !ok {
		return ErrNoPage
	}
	if err := s.enterModeLocked(ModePlacingText); err != nil {
		return err
	}
	page.PlacingText = true
	return nil
}

// PlaceText drops a new label at the tapped point and persists. A zero
// point falls back to the default placement.
func (s *Session) PlaceText(ctx context.Context, at models.Point) (models.TextItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, ok := s.cursor.Current()
	if !ok {
		return models.TextItem{}, ErrNoPage
	}
	if at == (models.Point{}) {
		at = DefaultTextPosition
	}
	item := models.NewTextItem(DefaultNewText, s.clampLocked(at))
	page.AddText(item)
	page.PlacingText = false
	s.mode = ModeViewing
	s.saveNowLocked(ctx)
	return item, nil
}

// PickImage runs the external picker, normalizes the photo and places it at
// the default position. Returns ok=false when the user cancels.
func (s *Session) PickImage(ctx context.Context) (models.ImageItem, bool, error) {
	s.mu.Lock()
	page, pageOK := s.cursor.Current()
	if !pageOK {
		s.mu.Unlock()
		return models.ImageItem{}, false, ErrNoPage
	}
	if err := s.enterModeLocked(ModePickingImage); err != nil {
		s.mu.Unlock()
		return models.ImageItem{}, false, err
	}
	page.ShowImagePicker = true
	armed := page.ID
	s.mu.Unlock()

	// The picker sheet is external and may block on the user; the lock is
	// not held while waiting.
	data, err := s.images.Request(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = ModeViewing
	// The cursor may have moved while the sheet was up: the picker flag is
	// cleared on the page that armed it, and the photo lands on whichever
	// page is current now.
	if p, ok := s.pageByIDLocked(armed); ok {
		p.ShowImagePicker = false
	}
	page, pageOK = s.cursor.Current()
	if !pageOK {
		return models.ImageItem{}, false, ErrNoPage
	}

	if err != nil {
		return models.ImageItem{}, false, fmt.Errorf("image request: %w", err)
	}
	if data == nil {
		return models.ImageItem{}, false, nil
	}

	encoded, err := imagex.Reencode(data)
	if err != nil {
		return models.ImageItem{}, false, err
	}
	item := models.NewImageItem(encoded, DefaultImagePosition)
	page.AddImage(item)
	s.saveNowLocked(ctx)
	return item, true, nil
}

// DragText moves a label, clamping it onto the page when configured.
func (s *Session) DragText(id uuid.UUID, to models.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, ok := s.cursor.Current()
	if !ok {
		return ErrNoPage
	}
	item, ok := page.TextByID(id)
	if !ok {
		return ErrItemNotFound
	}
	item.Reposition(s.clampLocked(to))
	s.scheduleSaveLocked()
	return nil
}

// DragImage moves a photo, clamping it onto the page when configured.
func (s *Session) DragImage(id uuid.UUID, to models.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, ok := s.cursor.Current()
	if !ok {
		return ErrNoPage
	}
	item, ok := page.ImageByID(id)
	if !ok {
		return ErrItemNotFound
	}
	item.Reposition(s.clampLocked(to))
	s.scheduleSaveLocked()
	return nil
}

// PinchText rescales a label's font within its bounds.
func (s *Session) PinchText(id uuid.UUID, magnification float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, ok := s.cursor.Current()
	if !ok {
		return ErrNoPage
	}
	item, ok := page.TextByID(id)
	if !ok {
		return ErrItemNotFound
	}
	item.Rescale(magnification)
	s.scheduleSaveLocked()
	return nil
}

// PinchImage rescales a photo within its bounds.
func (s *Session) PinchImage(id uuid.UUID, magnification float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, ok := s.cursor.Current()
	if !ok {
		return ErrNoPage
	}
	item, ok := page.ImageByID(id)
	if !ok {
		return ErrItemNotFound
	}
	item.Rescale(magnification)
	s.scheduleSaveLocked()
	return nil
}

// EditText replaces a label's text (empty is allowed) and persists.
func (s *Session) EditText(ctx context.Context, id uuid.UUID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, ok := s.cursor.Current()
	if !ok {
		return ErrNoPage
	}
	item, ok := page.TextByID(id)
	if !ok {
		return ErrItemNotFound
	}
	item.SetText(text)
	s.saveNowLocked(ctx)
	return nil
}

// RemoveText deletes a label and persists.
func (s *Session) RemoveText(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, ok := s.cursor.Current()
	if !ok {
		return ErrNoPage
	}
	if !page.RemoveText(id) {
		return ErrItemNotFound
	}
	s.saveNowLocked(ctx)
	return nil
}

// RemoveImage deletes a photo and persists.
func (s *Session) RemoveImage(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, ok := s.cursor.Current()
	if !ok {
		return ErrNoPage
	}
	if !page.RemoveImage(id) {
		return ErrItemNotFound
	}
	s.saveNowLocked(ctx)
	return nil
}

// ClearPage wipes the current page's drawing and items and persists.
func (s *Session) ClearPage(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, ok := s.cursor.Current()
	if !ok {
		return ErrNoPage
	}
	page.Clear()
	s.surface.SetDrawing(nil)
	s.surface.SetToolVisible(false)
	s.mode = ModeViewing
	s.saveNowLocked(ctx)
	return nil
}

// Save flushes any pending debounced save and persists now.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveNowLocked(ctx)
}

// Close flushes pending changes; the session must not be used afterwards.
func (s *Session) Close(ctx context.Context) error {
	return s.Save(ctx)
}

func (s *Session) enterModeLocked(m Mode) error {
	if s.mode != ModeViewing {
		return fmt.Errorf("%w: %s", ErrModeBusy, s.mode)
	}
	s.mode = m
	return nil
}

func (s *Session) pageByIDLocked(id uuid.UUID) (*models.PageData, bool) {
	pages := s.cursor.Pages()
	for n := range pages {
		if pages[n].ID == id {
			return &pages[n], true
		}
	}
	return nil, false
}

func (s *Session) clampLocked(p models.Point) models.Point {
	if !s.cfg.ClampToPage {
		return p
	}
	return p.Clamped(s.cfg.PageWidth, s.cfg.PageHeight, s.cfg.ClampMargin)
}

func (s *Session) pushDrawingToSurface() {
	if page, ok := s.cursor.Current(); ok {
		s.surface.SetDrawing(page.Drawing)
	} else {
		s.surface.SetDrawing(nil)
	}
}

func (s *Session) saveNowLocked(ctx context.Context) error {
	if s.saveTimer != nil {
		s.saveTimer.Stop()
		s.saveTimer = nil
	}
	return s.pages.Save(ctx, s.book.ID, s.cursor.Pages())
}

// scheduleSaveLocked (re)arms the debounced save: a burst of gesture events
// collapses into a single write after AutosaveDelay of quiet.
func (s *Session) scheduleSaveLocked() {
	if s.saveTimer != nil {
		s.saveTimer.Stop()
	}
	s.saveTimer = time.AfterFunc(s.cfg.AutosaveDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.saveTimer = nil
		if err := s.pages.Save(context.Background(), s.book.ID, s.cursor.Pages()); err != nil {
			s.log.Warn(context.Background(), "autosave failed", "error", err)
		}
	})
}
