package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/synckeeper/internal/client/client"
	"github.com/dmitrijs2005/synckeeper/internal/client/models"
	"github.com/dmitrijs2005/synckeeper/internal/client/pagination"
	"github.com/dmitrijs2005/synckeeper/internal/client/store"
	"github.com/dmitrijs2005/synckeeper/internal/common"
)

// Posts loads every post and shows the first page.
func (a *App) Posts(ctx context.Context) error {
	a.view = store.KindPosts
	a.postsWindow.Reset()

	err := a.posts.Load(ctx)
	a.renderPosts()
	return err
}

// Reload refetches the current view. Products keep their committed
// search query.
func (a *App) Reload(ctx context.Context) error {
	var err error
	switch a.view {
	case store.KindProducts:
		err = a.products.Reload(ctx, a.productsSearch.Committed())
		a.renderProducts()
	default:
		err = a.posts.Load(ctx)
		a.renderPosts()
	}
	return err
}

// Filter narrows the posts view by title. An empty q clears the filter.
// Changing the filter shows the first page again.
func (a *App) Filter(ctx context.Context, q string) error {
	a.view = store.KindPosts
	if a.posts.Snapshot().Status == store.Idle {
		if err := a.posts.Load(ctx); err != nil {
			return err
		}
	}
	a.postsWindow.SetFilter(q)
	a.renderPosts()
	return nil
}

// More reveals the next page of the current view.
func (a *App) More(ctx context.Context) error {
	if a.view == store.KindProducts {
		if !a.productsSearch.Page().HasMore {
			fmt.Fprintln(a.out, "Nothing more to show")
			return nil
		}
		a.productsSearch.LoadMore()
		a.renderProducts()
		return nil
	}

	if !a.postsPage().HasMore {
		fmt.Fprintln(a.out, "Nothing more to show")
		return nil
	}
	a.postsWindow.LoadMore()
	a.renderPosts()
	return nil
}

// Show prints one entity of the current view.
func (a *App) Show(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	if a.view == store.KindProducts {
		p, _, ok := a.products.Snapshot().Find(id)
		if !ok {
			return fmt.Errorf("product #%d: %w", id, common.ErrorNotFound)
		}
		renderProduct(a.out, p)
		return nil
	}

	p, _, ok := a.posts.Snapshot().Find(id)
	if !ok {
		return fmt.Errorf("post #%d: %w", id, common.ErrorNotFound)
	}
	renderPost(a.out, p)
	return nil
}

// AddPost prompts for a new post and creates it remotely. The post is
// listed only once the server has acknowledged it.
func (a *App) AddPost(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrorUnauthorized
	}

	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	body, err := getMultiline(a.reader, "Enter body", a.out)
	if err != nil {
		return err
	}
	tags, err := getSimpleText(a.reader, "Enter tags (comma separated, optional)", a.out)
	if err != nil {
		return err
	}

	post := models.Post{Title: title, Body: body, Tags: SplitTags(tags)}
	if u, ok := a.auth.User(); ok {
		post.AuthorID = u.ID
	}

	created, err := a.posts.Create(ctx, post)
	if err != nil {
		return err
	}

	a.view = store.KindPosts
	okColor.Fprintf(a.out, "Created post #%d\n", created.ID)
	return nil
}

// EditPost prompts for new values of a loaded post. Blank answers keep the
// current value.
func (a *App) EditPost(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	if !a.isLoggedIn() {
		return common.ErrorUnauthorized
	}

	post, _, ok := a.posts.Snapshot().Find(id)
	if !ok {
		return fmt.Errorf("post #%d: %w", id, common.ErrorNotFound)
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Enter title [%s]", post.Title), a.out)
	if err != nil {
		return err
	}
	body, err := getMultiline(a.reader, "Enter body (empty keeps the current one)", a.out)
	if err != nil {
		return err
	}

	if title != "" {
		post.Title = title
	}
	if body != "" {
		post.Body = body
	}

	updated, err := a.posts.Update(ctx, post)
	if client.IsNotFound(err) {
		return fmt.Errorf("post #%d is not on the server: %w", id, common.ErrorNotFound)
	}
	if err != nil {
		return err
	}

	okColor.Fprintf(a.out, "Updated post #%d\n", updated.ID)
	return nil
}

// DeletePost asks for confirmation and deletes a post remotely.
func (a *App) DeletePost(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	if !a.isLoggedIn() {
		return common.ErrorUnauthorized
	}

	ok, err := getConfirmation(a.reader, fmt.Sprintf("Delete post #%d?", id), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	err = a.posts.Delete(ctx, id)
	if client.IsNotFound(err) {
		return fmt.Errorf("post #%d is not on the server: %w", id, common.ErrorNotFound)
	}
	if err != nil {
		return err
	}
	okColor.Fprintf(a.out, "Deleted post #%d\n", id)
	return nil
}

func (a *App) postsPage() pagination.Page[models.Post] {
	return pagination.Apply(a.postsWindow, a.posts.Snapshot().Items)
}

func (a *App) renderPosts() {
	snap := a.posts.Snapshot()
	renderPostsPage(a.out, a.postsPage(), snap.Status, snap.Total, a.postsWindow.Filter())
}

func parseID(arg string) (int, error) {
	arg = strings.TrimPrefix(strings.TrimSpace(arg), "#")
	if arg == "" {
		return 0, &models.ValidationError{Field: "id", Reason: "is required"}
	}
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, &models.ValidationError{Field: "id", Reason: fmt.Sprintf("%q is not a positive number", arg)}
	}
	return id, nil
}
