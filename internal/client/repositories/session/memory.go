package session

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/synckeeper/internal/client/models"
	"github.com/dmitrijs2005/synckeeper/internal/common"
	"github.com/patrickmn/go-cache"
)

const memoryKey = "session"

// MemoryRepository keeps the session in process memory only. With a
// positive ttl the stored session expires on its own.
type MemoryRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewMemoryRepository(ttl time.Duration) *MemoryRepository {
	if ttl <= 0 {
		return &MemoryRepository{cache: cache.New(cache.NoExpiration, 0), ttl: cache.NoExpiration}
	}
	return &MemoryRepository{cache: cache.New(ttl, ttl), ttl: ttl}
}

func (r *MemoryRepository) Load(_ context.Context) (models.Session, bool, error) {
	x, found := r.cache.Get(memoryKey)
	if !found {
		return models.Session{}, false, nil
	}
	s := x.(models.Session)
	return s, s.Valid(), nil
}

func (r *MemoryRepository) Save(_ context.Context, s models.Session) error {
	if !s.Valid() {
		return fmt.Errorf("save session: %w", common.ErrValidation)
	}
	user := *s.User
	r.cache.Set(memoryKey, models.Session{User: &user, Token: s.Token}, r.ttl)
	return nil
}

func (r *MemoryRepository) Clear(_ context.Context) error {
	r.cache.Delete(memoryKey)
	return nil
}
