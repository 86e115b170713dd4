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

const sessionExpired = "Session expired, please log in again."

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	takeExpired() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Events(ctx context.Context) error
	Event(ctx context.Context, args []string) error
	Buy(ctx context.Context, args []string) error

	Reservations(ctx context.Context) error
	Reserve(ctx context.Context, args []string) error
	Update(ctx context.Context, args []string) error
	Cancel(ctx context.Context, args []string) error
}

// runREPL starts a simple read-eval-print loop for the GophTickets CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, on context cancellation, or when the user
// types "exit" or "quit".
//
// Before every prompt the loop checks whether the session was dropped by the
// API client; if so it tells the user and runs the login flow.
//
// Commands
//
//	Always:
//	  - help                            show available commands
//	  - events                          list events
//	  - event <id>                      show one event
//	  - exit | quit                     leave the program
//
//	Not logged in:
//	  - register                        create an account
//	  - login                           authenticate
//
//	Logged in:
//	  - whoami                          show the current session
//	  - buy <event-id>                  pay for and reserve tickets
//	  - reservations                    list reserved tickets
//	  - reserve <event-id> <qty>        reserve without paying
//	  - update <reservation-id> <qty>   change ticket count
//	  - cancel <reservation-id>         cancel a reservation
//	  - logout                          log out
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		if a.takeExpired() {
			printlnFn(sessionExpired)
			_ = a.Login(ctx)
			continue
		}

		printlnFn(fmt.Sprintf("tickets%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: events, event <id>, buy <event-id>, reservations, reserve <event-id> <qty>, update <id> <qty>, cancel <id>, whoami, logout, exit")
			} else {
				printlnFn("Available commands: events, event <id>, register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "events":
			_ = a.Events(ctx)

		case "event":
			_ = a.Event(ctx, args)

		case "buy":
			_ = a.Buy(ctx, args)

		case "reservations":
			_ = a.Reservations(ctx)

		case "reserve":
			_ = a.Reserve(ctx, args)

		case "update":
			_ = a.Update(ctx, args)

		case "cancel":
			_ = a.Cancel(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
