package store

import (
	"sync"

	"github.com/dmitrijs2005/synckeeper/internal/client/models"
)

// Kind names an entity collection.
type Kind string

const (
	KindPosts    Kind = "posts"
	KindProducts Kind = "products"
)

// Reader is the consumer view of a collection.
type Reader[T models.Entity] interface {
	Kind() Kind
	Snapshot() *Snapshot[T]
	// Subscribe registers fn to be called with every newly published
	// snapshot and returns a func that removes it.
	Subscribe(fn func(*Snapshot[T])) (unsubscribe func())
}

// Cache holds the current snapshot of one collection together with the
// sequence number of the most recently issued load.
type Cache[T models.Entity] struct {
	kind Kind

	mu     sync.Mutex
	snap   *Snapshot[T]
	issued uint64

	// status and error of the last resolved load, restored by AbandonLoad
	settled    LoadStatus
	settledErr string

	listeners    map[int]func(*Snapshot[T])
	nextListener int
}

func NewCache[T models.Entity](kind Kind) *Cache[T] {
	return &Cache[T]{
		kind:      kind,
		snap:      &Snapshot[T]{Status: Idle},
		settled:   Idle,
		listeners: make(map[int]func(*Snapshot[T])),
	}
}

func (c *Cache[T]) Kind() Kind {
	return c.kind
}

func (c *Cache[T]) Snapshot() *Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Subscribe registers a change listener. Listeners run on the goroutine that
// performed the mutation, outside the cache lock; under concurrent mutation
// they may observe snapshots out of order and should compare Version.
// A listener must not mutate the cache.
func (c *Cache[T]) Subscribe(fn func(*Snapshot[T])) func() {
	c.mu.Lock()
	id := c.nextListener
	c.nextListener++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// BeginLoad marks the collection Loading and returns the sequence number
// that tags the new request. Items from the previous state stay visible.
func (c *Cache[T]) BeginLoad() uint64 {
	c.mu.Lock()
	c.issued++
	seq := c.issued
	n := c.snap.next()
	n.Status = Loading
	c.publishLocked(n)
	return seq
}

// Latest returns the sequence number of the most recently issued load.
func (c *Cache[T]) Latest() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.issued
}

// ResolveLoad applies the outcome of the load tagged seq. It reports false,
// and changes nothing, when a newer load has been issued since.
//
// On success the items replace the sequence wholesale (duplicate ids keep
// their first occurrence) and total becomes the server-side count, never
// less than the number of items kept. On failure the previous items are
// kept and the error message is recorded.
func (c *Cache[T]) ResolveLoad(seq uint64, items []T, total int, loadErr error) bool {
	c.mu.Lock()
	if seq != c.issued {
		c.mu.Unlock()
		return false
	}

	n := c.snap.next()
	if loadErr != nil {
		n.Status = Failed
		n.Err = loadErr.Error()
		if n.Err == "" {
			n.Err = "load failed"
		}
	} else {
		n.Items = dedupe(items)
		n.Total = max(total, len(n.Items))
		n.Status = Succeeded
		n.Err = ""
	}
	c.settled, c.settledErr = n.Status, n.Err
	c.publishLocked(n)
	return true
}

// AbandonLoad withdraws the load tagged seq without an outcome, as when its
// caller gave up on it. If it is still the latest load the status and error
// of the last resolved load come back; otherwise nothing changes. It reports
// whether a snapshot was published.
func (c *Cache[T]) AbandonLoad(seq uint64) bool {
	c.mu.Lock()
	if seq != c.issued || c.snap.Status != Loading {
		c.mu.Unlock()
		return false
	}

	n := c.snap.next()
	n.Status = c.settled
	n.Err = c.settledErr
	c.publishLocked(n)
	return true
}

// Append adds an entity at the end. An entity whose id is already cached
// replaces that entry in place instead, keeping ids unique; Append then
// reports true.
func (c *Cache[T]) Append(item T) (replaced bool) {
	c.mu.Lock()
	items := c.snap.Items
	updated := make([]T, 0, len(items)+1)
	for _, existing := range items {
		if existing.GetID() == item.GetID() {
			updated = append(updated, item)
			replaced = true
			continue
		}
		updated = append(updated, existing)
	}
	if !replaced {
		updated = append(updated, item)
	}

	n := c.snap.next()
	n.Items = updated
	if !replaced {
		n.Total++
	}
	c.publishLocked(n)
	return replaced
}

// ReplaceByID swaps the entry sharing item's id, keeping its position.
// It reports false, leaving the cache untouched, when no such entry exists.
func (c *Cache[T]) ReplaceByID(item T) bool {
	c.mu.Lock()
	_, idx, ok := c.snap.Find(item.GetID())
	if !ok {
		c.mu.Unlock()
		return false
	}

	updated := make([]T, len(c.snap.Items))
	copy(updated, c.snap.Items)
	updated[idx] = item

	n := c.snap.next()
	n.Items = updated
	c.publishLocked(n)
	return true
}

// RemoveByID drops the entry with the given id. It reports false, leaving
// the cache (and its snapshot pointer) untouched, when the id is absent.
func (c *Cache[T]) RemoveByID(id int) bool {
	c.mu.Lock()
	_, idx, ok := c.snap.Find(id)
	if !ok {
		c.mu.Unlock()
		return false
	}

	items := c.snap.Items
	updated := make([]T, 0, len(items)-1)
	updated = append(updated, items[:idx]...)
	updated = append(updated, items[idx+1:]...)

	n := c.snap.next()
	n.Items = updated
	n.Total = max(n.Total-1, len(updated))
	c.publishLocked(n)
	return true
}

// publishLocked installs n, releases the lock and notifies listeners.
func (c *Cache[T]) publishLocked(n *Snapshot[T]) {
	c.snap = n
	fns := make([]func(*Snapshot[T]), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(n)
	}
}
