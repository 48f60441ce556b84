package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/synckeeper/internal/client/models"
	"github.com/fatih/color"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

var (
	errorColor = color.New(color.FgRed)
	okColor    = color.New(color.FgGreen)
	hintColor  = color.New(color.Faint)
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Posts(ctx context.Context) error
	Reload(ctx context.Context) error
	Filter(ctx context.Context, q string) error
	More(ctx context.Context) error
	Show(ctx context.Context, arg string) error
	AddPost(ctx context.Context) error
	EditPost(ctx context.Context, arg string) error
	DeletePost(ctx context.Context, arg string) error
	Products(ctx context.Context) error
	Search(ctx context.Context, q string) error
	Status(ctx context.Context) error
}

const (
	helpGuest = "Available commands: login, status, help, exit"
	helpUser  = "Available commands: posts, products, reload, filter <q>, search <q>, more, show <id>, " +
		"addpost, editpost <id>, delpost <id>, status, whoami, logout, exit"
)

// runREPL reads commands line by line from r and dispatches them to a.
//
// The first word is the command and the rest of the line its argument
// (filter and search keep inner spaces). An error returned by a handler is
// printed and the loop continues. The loop exits on EOF or on "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("sk %s > ", statusFn()))

		line, err := r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		arg = strings.TrimSpace(arg)
		if cmd == "" {
			continue
		}

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpUser)
			} else {
				printlnFn(helpGuest)
			}

		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "posts", "p":
			cmdErr = a.Posts(ctx)
		case "reload", "r":
			cmdErr = a.Reload(ctx)
		case "filter", "f":
			cmdErr = a.Filter(ctx, arg)
		case "more", "m":
			cmdErr = a.More(ctx)
		case "show":
			cmdErr = a.Show(ctx, arg)
		case "addpost":
			cmdErr = a.AddPost(ctx)
		case "editpost":
			cmdErr = a.EditPost(ctx, arg)
		case "delpost":
			cmdErr = a.DeletePost(ctx, arg)

		case "products":
			cmdErr = a.Products(ctx)
		case "search", "s":
			cmdErr = a.Search(ctx, arg)

		case "status":
			cmdErr = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		switch {
		case cmdErr == nil:
		case models.IsValidation(cmdErr):
			printlnFn(hintColor.Sprint("invalid input: " + cmdErr.Error()))
		default:
			printlnFn(errorColor.Sprint("error: " + cmdErr.Error()))
		}

		if err != nil {
			return
		}
	}
}
