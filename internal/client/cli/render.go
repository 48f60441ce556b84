package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/synckeeper/internal/client/models"
	"github.com/dmitrijs2005/synckeeper/internal/client/pagination"
	"github.com/dmitrijs2005/synckeeper/internal/client/store"
	"github.com/fatih/color"
)

var statusColor = map[store.LoadStatus]*color.Color{
	store.Idle:      color.New(color.Faint),
	store.Loading:   color.New(color.FgYellow),
	store.Succeeded: color.New(color.FgGreen),
	store.Failed:    color.New(color.FgRed),
}

func renderPostsPage(w io.Writer, page pagination.Page[models.Post], status store.LoadStatus, remote int, filter string) {
	if filter != "" {
		hintColor.Fprintf(w, "filter: %q\n", filter)
	}
	if len(page.Items) == 0 {
		fmt.Fprintf(w, "No posts (%s)\n", status)
		return
	}
	for _, p := range page.Items {
		fmt.Fprintf(w, "#%-4d %s\n", p.ID, p.Title)
	}
	if filter != "" {
		// a local filter makes the server count meaningless
		remote = 0
	}
	renderFooter(w, page, remote)
}

func renderProductsPage(w io.Writer, page pagination.Page[models.Product], status store.LoadStatus, remote int, query string) {
	if query != "" {
		hintColor.Fprintf(w, "search: %q\n", query)
	}
	if len(page.Items) == 0 {
		fmt.Fprintf(w, "No products (%s)\n", status)
		return
	}
	for _, p := range page.Items {
		stock := "in stock"
		if !p.InStock() {
			stock = "out of stock"
		}
		fmt.Fprintf(w, "#%-4d %-36s %9.2f  %s\n", p.ID, truncate(p.Title, 36), p.Price, stock)
	}
	renderFooter(w, page, remote)
}

// renderFooter prints "showing X of Y". remote is the server's count and is
// mentioned only when the server holds more than was fetched.
func renderFooter[T any](w io.Writer, page pagination.Page[T], remote int) {
	hint := ""
	if remote > page.Total {
		hint = fmt.Sprintf(" (%d on the server)", remote)
	}
	if page.HasMore {
		hint += ", type 'more' for the next page"
	}
	hintColor.Fprintf(w, "showing %d of %d%s\n", len(page.Items), page.Total, hint)
}

func renderPost(w io.Writer, p models.Post) {
	fmt.Fprintf(w, "#%d %s\n", p.ID, p.Title)
	fmt.Fprintf(w, "author: %d  views: %d\n", p.AuthorID, p.Views)
	if len(p.Tags) > 0 {
		fmt.Fprintf(w, "tags: %s\n", strings.Join(p.Tags, ", "))
	}
	fmt.Fprintf(w, "\n%s\n", p.Body)
}

func renderProduct(w io.Writer, p models.Product) {
	fmt.Fprintf(w, "#%d %s\n", p.ID, p.Title)
	if p.Brand != "" {
		fmt.Fprintf(w, "brand: %s\n", p.Brand)
	}
	fmt.Fprintf(w, "category: %s\n", p.Category)
	fmt.Fprintf(w, "price: %.2f (-%.2f%%)  rating: %.2f  stock: %d\n", p.Price, p.DiscountPercentage, p.Rating, p.StockCount)
	if p.Description != "" {
		fmt.Fprintf(w, "\n%s\n", p.Description)
	}
}

func renderStatus(w io.Writer, kind string, status store.LoadStatus, count, remote int, version uint64, errMsg string) {
	fmt.Fprintf(w, "%-9s ", kind+":")
	c, ok := statusColor[status]
	if !ok {
		c = color.New(color.Reset)
	}
	c.Fprint(w, status.String())
	fmt.Fprintf(w, ", %d items", count)
	if remote > count {
		fmt.Fprintf(w, " of %d", remote)
	}
	fmt.Fprintf(w, ", v%d", version)
	if errMsg != "" {
		errorColor.Fprintf(w, " (%s)", errMsg)
	}
	fmt.Fprintln(w)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
