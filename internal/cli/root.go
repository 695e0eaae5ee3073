package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// Output seams; tests replace them to capture what the REPL prints.
var (
	printlnFn = fmt.Println
	printfFn  = fmt.Printf
)

// Run starts the read–eval–print loop. It exits on EOF or "exit"/"quit".
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to memobook (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		printfFn("mb %s> ", a.status())
		if !scanner.Scan() {
			break
		}
		if !a.dispatch(ctx, scanner.Text()) {
			break
		}
	}
	a.closeSession(ctx)
}

func (a *App) status() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s p%d/%d) ", a.session.Book().Name,
		a.session.PageIndex()+1, a.session.PageCount())
}

// dispatch runs one command line; it returns false when the loop should end.
func (a *App) dispatch(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "help":
		a.help()

	case "books":
		a.listBooks(ctx)
	case "add":
		a.addBook(ctx, args)
	case "delete":
		a.deleteBook(ctx, args)
	case "open":
		a.openBook(ctx, args)
	case "close":
		a.closeSession(ctx)

	case "pages":
		a.listPages()
	case "addpage":
		a.addPage(ctx)
	case "delpage":
		a.deletePage(ctx)
	case "goto":
		a.gotoPage(args)
	case "next":
		a.flipPage(true)
	case "prev":
		a.flipPage(false)

	case "draw":
		a.draw(args)
	case "text":
		a.placeText(ctx, args)
	case "edittext":
		a.editText(ctx, args)
	case "movetext":
		a.moveText(args)
	case "pinchtext":
		a.pinchText(args)
	case "rmtext":
		a.removeText(ctx, args)

	case "addimage":
		a.addImage(ctx, args)
	case "moveimage":
		a.moveImage(args)
	case "pinchimage":
		a.pinchImage(args)
	case "rmimage":
		a.removeImage(ctx, args)

	case "clear":
		a.clearPage(ctx)
	case "save":
		a.save(ctx)

	case "exit", "quit":
		printlnFn("Bye!")
		return false
	default:
		printlnFn("Unknown command:", cmd)
	}
	return true
}

func (a *App) help() {
	if a.hasOpenBook() {
		printlnFn("Pages:  pages, addpage, delpage, goto <n>, next, prev")
		printlnFn("Items:  text [x y], edittext <n> <text>, movetext <n> <x> <y>, pinchtext <n> <factor>, rmtext <n>")
		printlnFn("        addimage <path>, moveimage <n> <x> <y>, pinchimage <n> <factor>, rmimage <n>")
		printlnFn("Other:  draw <payload>, clear, save, close, exit")
	} else {
		printlnFn("Available commands: books, add <color> <name>, delete <n>, open <n>, exit")
	}
}
