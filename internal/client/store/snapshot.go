package store

import "github.com/dmitrijs2005/synckeeper/internal/client/models"

// Snapshot is one published state of a collection.
type Snapshot[T models.Entity] struct {
	// Items in fetch/insertion order; never re-sorted.
	Items []T
	// Total is the server's count for the last applied load, adjusted by
	// local creates and deletes. It is at least len(Items) and may exceed
	// it when the server returned only part of the collection.
	Total int
	// Status of the load pipeline.
	Status LoadStatus
	// Err is the message of the last failed load, empty otherwise.
	Err string
	// Version increases by one with every published snapshot.
	Version uint64
}

func (s *Snapshot[T]) Len() int {
	return len(s.Items)
}

// Find returns the entity with the given id and its index.
func (s *Snapshot[T]) Find(id int) (T, int, bool) {
	for i, item := range s.Items {
		if item.GetID() == id {
			return item, i, true
		}
	}
	var zero T
	return zero, -1, false
}

// IDs lists identifiers in order.
func (s *Snapshot[T]) IDs() []int {
	ids := make([]int, len(s.Items))
	for i, item := range s.Items {
		ids[i] = item.GetID()
	}
	return ids
}

// next copies the header; items are shared until the caller replaces them.
func (s *Snapshot[T]) next() *Snapshot[T] {
	n := *s
	n.Version++
	return &n
}

// dedupe keeps the first occurrence of every id.
func dedupe[T models.Entity](items []T) []T {
	seen := make(map[int]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, dup := seen[item.GetID()]; dup {
			continue
		}
		seen[item.GetID()] = struct{}{}
		out = append(out, item)
	}
	return out
}
