package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/synckeeper/internal/client/store"
)

var errSearchClosed = errors.New("product search is closed")

// Products loads the whole catalogue and clears any search query.
func (a *App) Products(ctx context.Context) error {
	if a.closed.Load() {
		return errSearchClosed
	}
	a.view = store.KindProducts
	a.drainSearch()

	a.productsSearch.Input("")
	a.productsSearch.Flush()

	err := a.waitSearch(ctx)
	a.renderProducts()
	return err
}

// Search types q into the product search box one character at a time and
// waits for the debounced query to be committed and fetched.
func (a *App) Search(ctx context.Context, q string) error {
	if a.closed.Load() {
		return errSearchClosed
	}
	a.view = store.KindProducts
	a.drainSearch()

	runes := []rune(q)
	if len(runes) == 0 {
		a.productsSearch.Input("")
	}
	for i := range runes {
		a.productsSearch.Input(string(runes[:i+1]))
	}

	err := a.waitSearch(ctx)
	a.renderProducts()
	return err
}

func (a *App) drainSearch() {
	select {
	case <-a.searchDone:
	default:
	}
}

func (a *App) waitSearch(ctx context.Context) error {
	select {
	case err := <-a.searchDone:
		return err
	case <-a.done:
		return errSearchClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *App) renderProducts() {
	snap := a.products.Snapshot()
	q := a.productsSearch.Committed()
	renderProductsPage(a.out, a.productsSearch.Page(), snap.Status, snap.Total, q)
}

// Status prints the state of both collections and the session.
func (a *App) Status(ctx context.Context) error {
	if u, ok := a.auth.User(); ok && a.auth.IsAuthorized() {
		fmt.Fprintf(a.out, "session:  %s\n", u.Username)
	} else {
		fmt.Fprintln(a.out, "session:  none")
	}

	ps := a.posts.Snapshot()
	renderStatus(a.out, string(a.posts.Kind()), ps.Status, ps.Len(), ps.Total, ps.Version, ps.Err)

	pr := a.products.Snapshot()
	renderStatus(a.out, string(a.products.Kind()), pr.Status, pr.Len(), pr.Total, pr.Version, pr.Err)

	if raw, committed := a.productsSearch.Raw(), a.productsSearch.Committed(); raw != "" || committed != "" {
		fmt.Fprintf(a.out, "search:   %q (committed %q, quiet %s)\n", raw, committed, a.productsSearch.Quiet())
	}
	return nil
}
