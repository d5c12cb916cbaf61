package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. *App satisfies
// it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	Profile(ctx context.Context, args []string) error
	Target(ctx context.Context) error
	Image(ctx context.Context) error
	Delete(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, status, exit"
	helpLoggedIn  = "Available commands: status, profile [edit], target, image, delete, logout, exit"
)

// runREPL reads commands line by line and dispatches them to a. It stops at
// end of input or on "exit"/"quit". Handler errors are printed, never fatal.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		prompt := "insula> "
		if s := statusFn(); s != "" {
			prompt = fmt.Sprintf("insula (%s)> ", s)
		}
		_, _ = fmt.Fprint(out, prompt)

		line, err := reader.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			_, _ = fmt.Fprintln(out)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				_, _ = fmt.Fprintln(out, helpLoggedIn)
			} else {
				_, _ = fmt.Fprintln(out, helpLoggedOut)
			}
		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "status":
			cmdErr = a.Status(ctx)
		case "profile":
			cmdErr = a.Profile(ctx, args)
		case "target":
			cmdErr = a.Target(ctx)
		case "image":
			cmdErr = a.Image(ctx)
		case "delete":
			cmdErr = a.Delete(ctx)
		case "exit", "quit":
			_, _ = fmt.Fprintln(out, "Bye!")
			return
		default:
			_, _ = fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			_, _ = fmt.Fprintln(out, "Error:", describeError(cmdErr))
		}
		if err != nil {
			return
		}
	}
}
