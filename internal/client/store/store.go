package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dmitrijs2005/synckeeper/internal/client/models"
)

var ErrKindConflict = errors.New("collection registered with a different entity type")

// Store owns every collection cache and the session.
type Store struct {
	mu      sync.RWMutex
	caches  map[Kind]any
	session models.Session
}

// New returns a Store with the posts and products collections registered.
func New() *Store {
	s := &Store{caches: make(map[Kind]any)}
	s.caches[KindPosts] = NewCache[models.Post](KindPosts)
	s.caches[KindProducts] = NewCache[models.Product](KindProducts)
	return s
}

// Register returns the cache for kind, creating it on first use.
func Register[T models.Entity](s *Store, kind Kind) (*Cache[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.caches[kind]; ok {
		c, ok := existing.(*Cache[T])
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrKindConflict, kind)
		}
		return c, nil
	}

	c := NewCache[T](kind)
	s.caches[kind] = c
	return c, nil
}

// Collection looks up the cache registered for kind.
func Collection[T models.Entity](s *Store, kind Kind) (*Cache[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.caches[kind].(*Cache[T])
	return c, ok
}

func (s *Store) Posts() *Cache[models.Post] {
	c, _ := Collection[models.Post](s, KindPosts)
	return c
}

func (s *Store) Products() *Cache[models.Product] {
	c, _ := Collection[models.Product](s, KindProducts)
	return c
}

// Kinds lists the registered collections in name order.
func (s *Store) Kinds() []Kind {
	s.mu.RLock()
	defer s.mu.RUnlock()

	kinds := make([]Kind, 0, len(s.caches))
	for k := range s.caches {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Session returns a copy of the current session.
func (s *Store) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySession(s.session)
}

// SetSession replaces user and token in a single transition.
func (s *Store) SetSession(session models.Session) {
	session = copySession(session)
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
}

// ClearSession drops user and token together.
func (s *Store) ClearSession() {
	s.mu.Lock()
	s.session = models.Session{}
	s.mu.Unlock()
}

func copySession(in models.Session) models.Session {
	if in.User == nil {
		return models.Session{Token: in.Token}
	}
	user := *in.User
	return models.Session{User: &user, Token: in.Token}
}
