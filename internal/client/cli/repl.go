package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	currentView() View
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Admin(ctx context.Context) error
	Show(ctx context.Context) error
	Select(ctx context.Context, args []string) error
	Shift(ctx context.Context, args []string) error
	Paid(ctx context.Context, args []string) error
	Save(ctx context.Context) error
	PDF(ctx context.Context) error
	Send(ctx context.Context) error
	AddUser(ctx context.Context) error
}

func helpText(a execIface) string {
	if !a.isLoggedIn() {
		return "Available commands: login, dashboard, exit"
	}
	switch a.currentView() {
	case ViewAdmin:
		return "Available commands: adduser, show, dashboard, whoami, logout, exit"
	default:
		return "Available commands: select <id>, shift morning|evening, paid yes|no, save, pdf, send, show, reload, admin, whoami, logout, exit"
	}
}

// runREPL writes its prompt and messages to out, reads a line from reader, dispatches the first token as the
// command and loops until EOF, "exit" or "quit". Errors from handlers are
// ignored here; handlers print their own messages.
//
// Prompts inside handlers read from the same reader, so commands and their
// answers can be piped in together.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "mhp (%s)> \n", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(out, helpText(a))
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.Whoami(ctx)
		case "dashboard", "reload":
			_ = a.Dashboard(ctx)
		case "admin":
			_ = a.Admin(ctx)
		case "show":
			_ = a.Show(ctx)
		case "select":
			_ = a.Select(ctx, args)
		case "shift":
			_ = a.Shift(ctx, args)
		case "paid":
			_ = a.Paid(ctx, args)
		case "save":
			_ = a.Save(ctx)
		case "pdf":
			_ = a.PDF(ctx)
		case "send":
			_ = a.Send(ctx)
		case "adduser":
			_ = a.AddUser(ctx)
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}
