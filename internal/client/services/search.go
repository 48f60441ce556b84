package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/synckeeper/internal/client/debounce"
	"github.com/dmitrijs2005/synckeeper/internal/client/models"
	"github.com/dmitrijs2005/synckeeper/internal/client/pagination"
	"github.com/dmitrijs2005/synckeeper/internal/logging"
)

// Search is a remote search box: raw input is debounced, the committed
// query reloads the collection and the bound window drops back to one page.
type Search[T models.Entity] struct {
	svc    *CollectionService[T]
	window *pagination.Window
	deb    *debounce.Debouncer
	log    logging.Logger

	ctx    context.Context
	cancel context.CancelFunc

	onResult func(q string, err error)
}

// SearchOption configures a Search.
type SearchOption[T models.Entity] func(*Search[T])

// WithResultHandler is called after every committed query with the reload
// outcome. It runs on the committing goroutine.
func WithResultHandler[T models.Entity](fn func(q string, err error)) SearchOption[T] {
	return func(s *Search[T]) { s.onResult = fn }
}

// NewSearch binds svc and window to a debouncer with the given quiet
// period. Remote calls use a context derived from ctx that Close cancels;
// a reload cut short that way leaves the collection as it was before.
func NewSearch[T models.Entity](ctx context.Context, svc *CollectionService[T], window *pagination.Window, quiet time.Duration, log logging.Logger, opts ...SearchOption[T]) *Search[T] {
	s := &Search[T]{
		svc:    svc,
		window: window,
		log:    logging.OrNop(log),
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	for _, opt := range opts {
		opt(s)
	}
	s.deb = debounce.New(quiet, s.commit)
	return s
}

func (s *Search[T]) commit(q string) {
	s.window.Reset()

	err := s.svc.Reload(s.ctx, q)
	if err != nil && !errors.Is(err, context.Canceled) {
		s.log.Warn(s.ctx, "search failed", "query", q, "error", err)
	}
	if s.onResult != nil {
		s.onResult(q, err)
	}
}

// Input records one keystroke's worth of raw text.
func (s *Search[T]) Input(raw string) {
	s.deb.Push(raw)
}

// Flush commits pending input now, on the caller's goroutine.
func (s *Search[T]) Flush() bool {
	return s.deb.Flush()
}

func (s *Search[T]) Raw() string       { return s.deb.Raw() }
func (s *Search[T]) Committed() string { return s.deb.Committed() }
func (s *Search[T]) Pending() bool     { return s.deb.Pending() }

// Quiet is the debounce period.
func (s *Search[T]) Quiet() time.Duration { return s.deb.Quiet() }

// Page is the visible window over the current collection snapshot.
func (s *Search[T]) Page() pagination.Page[T] {
	return pagination.Apply(s.window, s.svc.Snapshot().Items)
}

// LoadMore reveals one more page.
func (s *Search[T]) LoadMore() pagination.Page[T] {
	s.window.LoadMore()
	return s.Page()
}

// Close cancels in-flight remote calls and tears down the debouncer. No
// commit is delivered after Close returns. The shared collection keeps its
// items, status and error from before the cancelled reload.
func (s *Search[T]) Close() {
	s.cancel()
	s.deb.Stop()
}
