package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/synckeeper/internal/client/models"
)

// Op names a mutation.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

var errMissingID = errors.New("entity has no id")

// MutationError is a failed create, update or delete. It never touches
// the collection's load status or error; it goes to the caller only.
type MutationError struct {
	Op  Op
	ID  int
	Err error
}

func (e *MutationError) Error() string {
	if e.ID > 0 {
		return fmt.Sprintf("%s %d: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *MutationError) Unwrap() error {
	return e.Err
}

// Create sends payload without an id and appends the entity the server
// returns. Nothing is cached before acknowledgment.
func (s *CollectionService[T]) Create(ctx context.Context, payload T) (T, error) {
	var zero T

	if err := payload.Validate(); err != nil {
		return zero, err
	}
	if err := s.check(); err != nil {
		return zero, err
	}

	created, err := s.gateway.Create(ctx, withoutID(payload))
	if err != nil {
		s.log.Warn(ctx, "create failed", "error", err)
		return zero, &MutationError{Op: OpCreate, Err: err}
	}

	if s.cache.Append(created) {
		s.log.Warn(ctx, "created id already cached, entry replaced", "id", created.GetID())
	}
	s.log.Info(ctx, "created", "id", created.GetID())
	return created, nil
}

// Update sends entity and replaces the cached entry with the same id by
// the server's response. A response for an id no longer cached is
// discarded.
func (s *CollectionService[T]) Update(ctx context.Context, entity T) (T, error) {
	var zero T

	id := entity.GetID()
	if id <= 0 {
		return zero, &models.ValidationError{Field: "id", Reason: errMissingID.Error()}
	}
	if err := entity.Validate(); err != nil {
		return zero, err
	}
	if err := s.check(); err != nil {
		return zero, err
	}

	updated, err := s.gateway.Update(ctx, entity)
	if err != nil {
		s.log.Warn(ctx, "update failed", "id", id, "error", err)
		return zero, &MutationError{Op: OpUpdate, ID: id, Err: err}
	}

	if !s.cache.ReplaceByID(updated) {
		s.log.Debug(ctx, "update response discarded", "id", updated.GetID())
	}
	return updated, nil
}

// Delete removes id remotely and then from the cache. Deleting an id that
// is not cached is a no-op locally.
func (s *CollectionService[T]) Delete(ctx context.Context, id int) error {
	if err := s.check(); err != nil {
		return err
	}

	ackID, err := s.gateway.Delete(ctx, id)
	if err != nil {
		s.log.Warn(ctx, "delete failed", "id", id, "error", err)
		return &MutationError{Op: OpDelete, ID: id, Err: err}
	}
	if ackID == 0 {
		ackID = id
	}

	if !s.cache.RemoveByID(ackID) {
		s.log.Debug(ctx, "delete of uncached id", "id", ackID)
	}
	return nil
}

// withoutID clears the identifier of entities that support it.
func withoutID[T models.Entity](v T) T {
	if r, ok := any(v).(interface{ WithID(int) T }); ok {
		return r.WithID(0)
	}
	return v
}
