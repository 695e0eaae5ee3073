package session

import "github.com/memokeep/memobook/internal/models"

// Cursor owns a book's ordered pages together with the "current page"
// selection. All index arithmetic funnels through it: after any mutation,
// 0 <= Index() < Count() holds whenever pages exist, and Index() is -1
// otherwise. Callers never touch raw indices.
type Cursor struct {
	pages   []models.PageData
	current int
}

// NewCursor wraps a loaded page list, selecting the first page if any.
func NewCursor(pages []models.PageData) *Cursor {
	c := &Cursor{pages: pages, current: -1}
	if len(pages) > 0 {
		c.current = 0
	}
	return c
}

// Count returns the number of pages.
func (c *Cursor) Count() int {
	return len(c.pages)
}

// Index returns the current selection, or -1 when there are no pages.
func (c *Cursor) Index() int {
	return c.current
}

// Pages exposes the underlying page list for persistence.
func (c *Cursor) Pages() []models.PageData {
	return c.pages
}

// Current returns a mutable reference to the selected page.
func (c *Cursor) Current() (*models.PageData, bool) {
	if c.current < 0 {
		return nil, false
	}
	return &c.pages[c.current], true
}

// Select moves the selection to i, clamped into the valid range.
func (c *Cursor) Select(i int) {
	if len(c.pages) == 0 {
		c.current = -1
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(c.pages) {
		i = len(c.pages) - 1
	}
	c.current = i
}

// Next advances the selection by one page, stopping at the last.
func (c *Cursor) Next() {
	c.Select(c.current + 1)
}

// Prev moves the selection back by one page, stopping at the first.
func (c *Cursor) Prev() {
	c.Select(c.current - 1)
}

// Append adds a page at the end and selects it.
func (c *Cursor) Append(p models.PageData) {
	c.pages = append(c.pages, p)
	c.current = len(c.pages) - 1
}

// RemoveCurrent deletes the selected page and re-clamps the selection.
// Returns false when there is no page to remove.
func (c *Cursor) RemoveCurrent() bool {
	if c.current < 0 {
		return false
	}
	i := c.current
	c.pages = append(c.pages[:i], c.pages[i+1:]...)
	if len(c.pages) == 0 {
		c.current = -1
	} else if c.current >= len(c.pages) {
		c.current = len(c.pages) - 1
	}
	return true
}
