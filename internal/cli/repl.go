package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Users(ctx context.Context) error
	Community(ctx context.Context) error
	Profile(ctx context.Context) error
	Examples(ctx context.Context) error
	Assistant(ctx context.Context) error
}

// runREPL starts the shell's read-eval-print loop.
//
// It reads a line, parses the first token as the command, and dispatches to
// methods on 'a'. The command set is gated on authentication state: before
// login only login/help/exit exist; after login the screen commands appear
// and a successful login lands on the dashboard (the default view). Unknown
// commands are reported back to the user. The loop exits on input EOF or
// when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers render
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func(ctx context.Context) string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("padm %s> ", statusFn(ctx)))
		line, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err == io.EOF {
				return
			}
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: dashboard, users, community, profile, examples, assistant, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			if a.isLoggedIn(ctx) {
				printlnFn("Already logged in. Use 'logout' first.")
				continue
			}
			if err := a.Login(ctx); err == nil && a.isLoggedIn(ctx) {
				// Landing screen after login.
				_ = a.Dashboard(ctx)
			}

		case "logout":
			if !requireLogin(ctx, a) {
				continue
			}
			_ = a.Logout(ctx)

		case "dashboard", "home":
			if !requireLogin(ctx, a) {
				continue
			}
			_ = a.Dashboard(ctx)

		case "users":
			if !requireLogin(ctx, a) {
				continue
			}
			_ = a.Users(ctx)

		case "community":
			if !requireLogin(ctx, a) {
				continue
			}
			_ = a.Community(ctx)

		case "profile":
			if !requireLogin(ctx, a) {
				continue
			}
			_ = a.Profile(ctx)

		case "examples":
			if !requireLogin(ctx, a) {
				continue
			}
			_ = a.Examples(ctx)

		case "assistant":
			if !requireLogin(ctx, a) {
				continue
			}
			_ = a.Assistant(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err == io.EOF {
			return
		}
	}
}

func requireLogin(ctx context.Context, a execIface) bool {
	if a.isLoggedIn(ctx) {
		return true
	}
	printlnFn("Please login first.")
	return false
}
