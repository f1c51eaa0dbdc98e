package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) error
	Assessments(ctx context.Context, args []string) error
	Filter(ctx context.Context, args []string) error
	Dates(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Page(ctx context.Context, args []string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Sort(ctx context.Context, args []string) error
	ToggleFilters(ctx context.Context) error
	Mailbox(ctx context.Context) error
	Read(ctx context.Context, args []string) error
	Ack(ctx context.Context, args []string) error
	EPAs(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Export(ctx context.Context, args []string) error
	message(err error) string
}

const (
	helpAnonymous = "Available commands: login, help, exit"
	helpSignedIn  = "Available commands: me, assessments [all|mine|evaluations|received], filter key=value, dates [start end], " +
		"search text, page n, next, prev, sort key [desc], filters, mailbox, read <id>, ack <id>, epas, dashboard, " +
		"export assessments|grid, logout, help, exit"
)

// runREPL reads commands from in until EOF, "exit" or "quit". Commands that
// prompt (login, dates) must read from the same reader so piped input stays
// in order.
//
//	Not logged in:
//	  - help, login, exit | quit
//
//	Logged in:
//	  - me                          show the signed-in user
//	  - assessments [scope]         open an assessment list
//	  - filter key=value            set (or clear with key=) a filter on the open list
//	  - dates [start end]           set the shift date range (asks when no args)
//	  - search text                 search the open list
//	  - page n | next | prev        paginate
//	  - sort key [desc]             change ordering
//	  - filters                     show or hide the filter panel
//	  - mailbox | read <id>         private comments, mark one read
//	  - ack <id>                    acknowledge a received assessment
//	  - epas                        curriculum EPAs
//	  - dashboard                   summary tiles
//	  - export assessments|grid     download a CSV export
//	  - logout
//
// A failing command prints its user-facing message; the loop keeps going.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("sn %s> ", statusFn()))
		line, readErr := in.ReadString('\n')
		if readErr != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpAnonymous)
			}
			continue
		case "login":
			err = a.Login(ctx)
		default:
			if !a.isLoggedIn() {
				if isCommand(cmd) {
					printlnFn("Please log in first.")
				} else {
					printlnFn("Unknown command:", cmd)
				}
				continue
			}
			err = dispatch(ctx, a, cmd, args)
		}

		if err != nil {
			printlnFn(a.message(err))
		}
	}
}

var commands = map[string]bool{
	"logout": true, "me": true, "assessments": true, "filter": true, "dates": true,
	"search": true, "page": true, "next": true, "prev": true, "sort": true,
	"filters": true, "mailbox": true, "read": true, "ack": true, "epas": true,
	"dashboard": true, "export": true,
}

func isCommand(cmd string) bool { return commands[cmd] }

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "logout":
		return a.Logout(ctx)
	case "me":
		return a.Me(ctx)
	case "assessments":
		return a.Assessments(ctx, args)
	case "filter":
		return a.Filter(ctx, args)
	case "dates":
		return a.Dates(ctx, args)
	case "search":
		return a.Search(ctx, args)
	case "page":
		return a.Page(ctx, args)
	case "next":
		return a.Next(ctx)
	case "prev":
		return a.Prev(ctx)
	case "sort":
		return a.Sort(ctx, args)
	case "filters":
		return a.ToggleFilters(ctx)
	case "mailbox":
		return a.Mailbox(ctx)
	case "read":
		return a.Read(ctx, args)
	case "ack":
		return a.Ack(ctx, args)
	case "epas":
		return a.EPAs(ctx)
	case "dashboard":
		return a.Dashboard(ctx)
	case "export":
		return a.Export(ctx, args)
	}
	printlnFn("Unknown command:", cmd)
	return nil
}
