package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/synckeeper/internal/client/config"
	"github.com/dmitrijs2005/synckeeper/internal/client/models"
	"github.com/dmitrijs2005/synckeeper/internal/client/pagination"
	"github.com/dmitrijs2005/synckeeper/internal/client/services"
	"github.com/dmitrijs2005/synckeeper/internal/client/store"
	"github.com/dmitrijs2005/synckeeper/internal/logging"
)

// authIface is the part of services.AuthService the CLI drives.
type authIface interface {
	Login(ctx context.Context, username, password string) (models.SessionUser, error)
	Logout(ctx context.Context) error
	IsAuthorized() bool
	User() (models.SessionUser, bool)
}

type App struct {
	config *config.Config
	auth   authIface

	posts       *services.CollectionService[models.Post]
	postsWindow *pagination.Window

	products       *services.CollectionService[models.Product]
	productsSearch *services.Search[models.Product]
	searchDone     chan error
	// closed and done are set from the signal handler goroutine.
	closed    atomic.Bool
	done      chan struct{}
	closeOnce sync.Once

	// view is the collection "more" and "show" act on.
	view store.Kind

	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger
}

// NewApp wires the CLI to the core services. The product search runs its
// remote calls under ctx until Close.
func NewApp(ctx context.Context, c *config.Config, auth authIface,
	posts *services.CollectionService[models.Post],
	products *services.CollectionService[models.Product],
	log logging.Logger,
) *App {
	a := &App{
		config:      c,
		auth:        auth,
		posts:       posts,
		postsWindow: pagination.NewWindow(c.PageSize),
		products:    products,
		searchDone:  make(chan error, 1),
		done:        make(chan struct{}),
		view:        store.KindPosts,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		log:         logging.OrNop(log),
	}

	a.productsSearch = services.NewSearch(ctx, products, pagination.NewWindow(c.PageSize),
		c.DebounceInterval, a.log, services.WithResultHandler[models.Product](a.searchCommitted))

	return a
}

func (a *App) searchCommitted(_ string, err error) {
	// drop an unread result so the newest one is kept
	select {
	case <-a.searchDone:
	default:
	}
	a.searchDone <- err
}

// Run blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("Welcome to synckeeper (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close stops the product search. No search result is applied afterwards
// and a command waiting for one returns errSearchClosed.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		a.closed.Store(true)
		a.productsSearch.Close()
		close(a.done)
	})
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthorized()
}

func (a *App) getStatus() string {
	if u, ok := a.auth.User(); ok && a.auth.IsAuthorized() {
		return "(" + u.Username + ")"
	}
	return "(guest)"
}
