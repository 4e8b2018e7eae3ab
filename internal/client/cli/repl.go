package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Customers(ctx context.Context) error
	Search(ctx context.Context, term string) error
	State(ctx context.Context, state string) error
	City(ctx context.Context, city string) error
	Pincode(ctx context.Context, pincode string) error
	Clear(ctx context.Context) error
	Retry(ctx context.Context) error
	Options(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Status(ctx context.Context) error
}

const (
	helpPublic = "Available commands: register, login, status, help, exit"
	helpAuthed = "Available commands: customers, search [term], state [name], city [name], pincode [code], " +
		"clear, retry, options, show <id>, status, logout, help, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// The first token is the command; the remainder of the line is its argument,
// so multi-word values such as "city Los Angeles" work. The loop exits on
// EOF, on "exit" or "quit", or when ctx is cancelled.
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("pa %s> ", statusFn()))

		line, err := readLine(reader)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				printlnFn("read error:", err)
			}
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		arg = strings.TrimSpace(arg)
		if cmd == "" {
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpAuthed)
			} else {
				printlnFn(helpPublic)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "customers", "list", "l":
			_ = a.Customers(ctx)

		case "search":
			_ = a.Search(ctx, arg)

		case "state":
			_ = a.State(ctx, arg)

		case "city":
			_ = a.City(ctx, arg)

		case "pincode":
			_ = a.Pincode(ctx, arg)

		case "clear":
			_ = a.Clear(ctx)

		case "retry":
			_ = a.Retry(ctx)

		case "options":
			_ = a.Options(ctx)

		case "show":
			if arg == "" {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, arg)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
