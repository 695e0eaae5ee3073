package cli

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/memokeep/memobook/internal/models"
	"github.com/memokeep/memobook/internal/session"
)

func (a *App) listBooks(ctx context.Context) {
	list := a.books.List(ctx)
	if len(list) == 0 {
		printlnFn("No books yet. Create one with: add <color> <name>")
		return
	}
	for n, b := range list {
		printfFn("%d. %s\n", n+1, b.Name)
	}
}

func (a *App) addBook(ctx context.Context, args []string) {
	if len(args) < 2 {
		printlnFn("Usage: add <color> <name>")
		return
	}
	color, ok := models.Palette[args[0]]
	if !ok {
		names := make([]string, 0, len(models.Palette))
		for name := range models.Palette {
			names = append(names, name)
		}
		sort.Strings(names)
		printlnFn("Unknown color. Choose one of:", strings.Join(names, ", "))
		return
	}

	book, err := a.books.Add(ctx, strings.Join(args[1:], " "), color)
	if err != nil {
		printlnFn("Cannot create book:", err)
		return
	}
	printfFn("Created book %q\n", book.Name)
}

func (a *App) deleteBook(ctx context.Context, args []string) {
	book, ok := a.bookByOrdinal(ctx, args)
	if !ok {
		return
	}
	if a.session != nil && a.session.Book().ID == book.ID {
		a.closeSession(ctx)
	}
	if err := a.books.Delete(ctx, book.ID); err != nil {
		printlnFn("Cannot delete book:", err)
		return
	}
	printfFn("Deleted book %q\n", book.Name)
}

func (a *App) openBook(ctx context.Context, args []string) {
	book, ok := a.bookByOrdinal(ctx, args)
	if !ok {
		return
	}
	a.closeSession(ctx)
	a.session = session.Open(ctx, a.cfg, book, a.pages, a.surface, a.images, a.log)
	printfFn("Opened %q: %d page(s)\n", book.Name, a.session.PageCount())
}

func (a *App) bookByOrdinal(ctx context.Context, args []string) (models.MemoryBook, bool) {
	if len(args) != 1 {
		printlnFn("Usage: <command> <book number>")
		return models.MemoryBook{}, false
	}
	list := a.books.List(ctx)
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(list) {
		printlnFn("No such book number")
		return models.MemoryBook{}, false
	}
	return list[n-1], true
}

func (a *App) requireSession() bool {
	if a.session == nil {
		printlnFn("Open a book first")
		return false
	}
	return true
}

func (a *App) listPages() {
	if !a.requireSession() {
		return
	}
	previews := a.session.Previews(2)
	if len(previews) == 0 {
		printlnFn("No memories")
		return
	}
	for n, pv := range previews {
		marker := " "
		if n == a.session.PageIndex() {
			marker = "*"
		}
		detail := make([]string, 0, 3)
		if pv.HasDrawing {
			detail = append(detail, "drawing")
		}
		for _, s := range pv.Snippets {
			detail = append(detail, strconv.Quote(s))
		}
		if pv.ImageCount > 0 {
			detail = append(detail, strconv.Itoa(pv.ImageCount)+" image(s)")
		}
		if len(detail) == 0 {
			detail = append(detail, "empty page")
		}
		printfFn("%s %d. %s: %s\n", marker, n+1, pv.Title, strings.Join(detail, ", "))
	}
}

func (a *App) addPage(ctx context.Context) {
	if !a.requireSession() {
		return
	}
	page := a.session.AddPage(ctx)
	printfFn("Added %q\n", page.Title)
}

func (a *App) deletePage(ctx context.Context) {
	if !a.requireSession() {
		return
	}
	if err := a.session.DeleteCurrentPage(ctx); err != nil {
		printlnFn("Cannot delete page:", err)
	}
}

func (a *App) gotoPage(args []string) {
	if !a.requireSession() {
		return
	}
	if len(args) != 1 {
		printlnFn("Usage: goto <page number>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("Usage: goto <page number>")
		return
	}
	a.session.SelectPage(n - 1)
}

func (a *App) flipPage(forward bool) {
	if !a.requireSession() {
		return
	}
	if forward {
		a.session.NextPage()
	} else {
		a.session.PrevPage()
	}
}

// draw simulates the drawing surface: the payload becomes the page's opaque
// ink blob via the regular begin/end flow.
func (a *App) draw(args []string) {
	if !a.requireSession() {
		return
	}
	if err := a.session.BeginDrawing(); err != nil {
		printlnFn("Cannot draw:", err)
		return
	}
	a.surface.drawing = models.Drawing(strings.Join(args, " "))
	if err := a.session.EndDrawing(); err != nil {
		printlnFn("Cannot finish drawing:", err)
	}
}

func (a *App) placeText(ctx context.Context, args []string) {
	if !a.requireSession() {
		return
	}
	var at models.Point
	if len(args) >= 2 {
		x, errX := strconv.ParseFloat(args[0], 64)
		y, errY := strconv.ParseFloat(args[1], 64)
		if errX != nil || errY != nil {
			printlnFn("Usage: text [x y]")
			return
		}
		at = models.Point{X: x, Y: y}
	}
	if err := a.session.BeginTextPlacement(); err != nil {
		printlnFn("Cannot place text:", err)
		return
	}
	item, err := a.session.PlaceText(ctx, at)
	if err != nil {
		printlnFn("Cannot place text:", err)
		return
	}
	printfFn("Placed %q at (%.0f, %.0f)\n", item.Text, item.Position.X, item.Position.Y)
}

func (a *App) editText(ctx context.Context, args []string) {
	if !a.requireSession() {
		return
	}
	if len(args) < 2 {
		printlnFn("Usage: edittext <n> <text>")
		return
	}
	id, ok := a.textID(args[0])
	if !ok {
		return
	}
	if err := a.session.EditText(ctx, id, strings.Join(args[1:], " ")); err != nil {
		printlnFn("Cannot edit text:", err)
	}
}

func (a *App) moveText(args []string) {
	if !a.requireSession() {
		return
	}
	id, to, ok := a.itemMoveArgs(args, a.textID, "movetext")
	if !ok {
		return
	}
	if err := a.session.DragText(id, to); err != nil {
		printlnFn("Cannot move text:", err)
	}
}

func (a *App) pinchText(args []string) {
	if !a.requireSession() {
		return
	}
	id, factor, ok := a.itemPinchArgs(args, a.textID, "pinchtext")
	if !ok {
		return
	}
	if err := a.session.PinchText(id, factor); err != nil {
		printlnFn("Cannot resize text:", err)
	}
}

func (a *App) removeText(ctx context.Context, args []string) {
	if !a.requireSession() {
		return
	}
	if len(args) != 1 {
		printlnFn("Usage: rmtext <n>")
		return
	}
	id, ok := a.textID(args[0])
	if !ok {
		return
	}
	if err := a.session.RemoveText(ctx, id); err != nil {
		printlnFn("Cannot remove text:", err)
	}
}

func (a *App) addImage(ctx context.Context, args []string) {
	if !a.requireSession() {
		return
	}
	if len(args) != 1 {
		printlnFn("Usage: addimage <path>")
		return
	}
	a.images.path = args[0]
	defer func() { a.images.path = "" }()

	item, ok, err := a.session.PickImage(ctx)
	if err != nil {
		printlnFn("Cannot add image:", err)
		return
	}
	if !ok {
		printlnFn("Cancelled")
		return
	}
	printfFn("Added image at (%.0f, %.0f)\n", item.Position.X, item.Position.Y)
}

func (a *App) moveImage(args []string) {
	if !a.requireSession() {
		return
	}
	id, to, ok := a.itemMoveArgs(args, a.imageID, "moveimage")
	if !ok {
		return
	}
	if err := a.session.DragImage(id, to); err != nil {
		printlnFn("Cannot move image:", err)
	}
}

func (a *App) pinchImage(args []string) {
	if !a.requireSession() {
		return
	}
	id, factor, ok := a.itemPinchArgs(args, a.imageID, "pinchimage")
	if !ok {
		return
	}
	if err := a.session.PinchImage(id, factor); err != nil {
		printlnFn("Cannot resize image:", err)
	}
}

func (a *App) removeImage(ctx context.Context, args []string) {
	if !a.requireSession() {
		return
	}
	if len(args) != 1 {
		printlnFn("Usage: rmimage <n>")
		return
	}
	id, ok := a.imageID(args[0])
	if !ok {
		return
	}
	if err := a.session.RemoveImage(ctx, id); err != nil {
		printlnFn("Cannot remove image:", err)
	}
}

func (a *App) clearPage(ctx context.Context) {
	if !a.requireSession() {
		return
	}
	if err := a.session.ClearPage(ctx); err != nil {
		printlnFn("Cannot clear page:", err)
	}
}

func (a *App) save(ctx context.Context) {
	if !a.requireSession() {
		return
	}
	if err := a.session.Save(ctx); err != nil {
		printlnFn("Save failed:", err)
		return
	}
	printlnFn("Saved")
}

// textID resolves a 1-based ordinal into the current page's text item id.
func (a *App) textID(arg string) (uuid.UUID, bool) {
	page, ok := a.session.CurrentPage()
	if !ok {
		printlnFn("No page selected")
		return uuid.UUID{}, false
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(page.TextItems) {
		printlnFn("No such text item")
		return uuid.UUID{}, false
	}
	return page.TextItems[n-1].ID, true
}

// imageID resolves a 1-based ordinal into the current page's image item id.
func (a *App) imageID(arg string) (uuid.UUID, bool) {
	page, ok := a.session.CurrentPage()
	if !ok {
		printlnFn("No page selected")
		return uuid.UUID{}, false
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(page.Images) {
		printlnFn("No such image item")
		return uuid.UUID{}, false
	}
	return page.Images[n-1].ID, true
}

func (a *App) itemMoveArgs(args []string, resolve func(string) (uuid.UUID, bool), cmd string) (uuid.UUID, models.Point, bool) {
	if len(args) != 3 {
		printlnFn("Usage: " + cmd + " <n> <x> <y>")
		return uuid.UUID{}, models.Point{}, false
	}
	id, ok := resolve(args[0])
	if !ok {
		return uuid.UUID{}, models.Point{}, false
	}
	x, errX := strconv.ParseFloat(args[1], 64)
	y, errY := strconv.ParseFloat(args[2], 64)
	if errX != nil || errY != nil {
		printlnFn("Usage: " + cmd + " <n> <x> <y>")
		return uuid.UUID{}, models.Point{}, false
	}
	return id, models.Point{X: x, Y: y}, true
}

func (a *App) itemPinchArgs(args []string, resolve func(string) (uuid.UUID, bool), cmd string) (uuid.UUID, float64, bool) {
	if len(args) != 2 {
		printlnFn("Usage: " + cmd + " <n> <factor>")
		return uuid.UUID{}, 0, false
	}
	id, ok := resolve(args[0])
	if !ok {
		return uuid.UUID{}, 0, false
	}
	factor, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		printlnFn("Usage: " + cmd + " <n> <factor>")
		return uuid.UUID{}, 0, false
	}
	return id, factor, true
}
