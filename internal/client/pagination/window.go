// Package pagination derives the visible prefix of a collection.
//
// Nothing here holds entity data: a Window is only a reveal count plus the
// filter it was computed for, and Apply/Slice are pure functions over the
// items the caller passes in.
package pagination

import (
	"strings"
	"sync"

	"github.com/dmitrijs2005/synckeeper/internal/client/models"
)

// DefaultPageSize is the reveal step used when none is configured.
const DefaultPageSize = 6

// Titled is what the local text filter needs from an item.
type Titled interface {
	GetTitle() string
}

// Page is the visible part of a (filtered) sequence.
type Page[T any] struct {
	Items   []T
	HasMore bool
	// Total is the length of the sequence the page was cut from.
	Total int
}

// Slice returns the first min(n, len(items)) items. Negative n counts as 0.
func Slice[T any](items []T, n int) Page[T] {
	if n < 0 {
		n = 0
	}
	visible := min(n, len(items))
	return Page[T]{
		Items:   items[:visible:visible],
		HasMore: len(items) > n,
		Total:   len(items),
	}
}

// FilterByTitle keeps items whose title contains q, ignoring case.
// A blank q keeps everything.
func FilterByTitle[T Titled](items []T, q string) []T {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return items
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.GetTitle()), q) {
			out = append(out, item)
		}
	}
	return out
}

// Window is the reveal count over one view. It is safe for concurrent use.
type Window struct {
	mu       sync.Mutex
	pageSize int
	n        int
	filter   string
}

func NewWindow(pageSize int) *Window {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Window{pageSize: pageSize, n: pageSize}
}

func (w *Window) PageSize() int {
	return w.pageSize
}

// Revealed returns the current reveal count.
func (w *Window) Revealed() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.n
}

func (w *Window) Filter() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.filter
}

// LoadMore grows the window by one page. Growing past the end is harmless:
// the visible slice is capped by the sequence length.
func (w *Window) LoadMore() {
	w.mu.Lock()
	w.n += w.pageSize
	w.mu.Unlock()
}

// SetFilter records a new filter predicate. When it differs from the current
// one the window shrinks (or grows) back to a single page and true is
// returned.
func (w *Window) SetFilter(q string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if q == w.filter {
		return false
	}
	w.filter = q
	w.n = w.pageSize
	return true
}

// Reset returns to a single page without touching the filter.
func (w *Window) Reset() {
	w.mu.Lock()
	w.n = w.pageSize
	w.mu.Unlock()
}

// Apply filters items by the window's filter and cuts the visible prefix.
func Apply[T models.Entity](w *Window, items []T) Page[T] {
	w.mu.Lock()
	filter, n := w.filter, w.n
	w.mu.Unlock()

	return Slice(FilterByTitle(items, filter), n)
}
