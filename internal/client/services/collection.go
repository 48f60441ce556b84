package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/synckeeper/internal/client/client"
	"github.com/dmitrijs2005/synckeeper/internal/client/models"
	"github.com/dmitrijs2005/synckeeper/internal/client/store"
	"github.com/dmitrijs2005/synckeeper/internal/logging"
)

// Gate decides whether a remote call may be issued at all.
type Gate interface {
	Check() error
}

// CollectionService owns the remote lifecycle of one collection cache.
type CollectionService[T models.Entity] struct {
	cache   *store.Cache[T]
	gateway client.Gateway[T]
	gate    Gate
	log     logging.Logger
}

// NewCollectionService binds cache to gateway. A nil gate leaves the
// collection ungated.
func NewCollectionService[T models.Entity](cache *store.Cache[T], gateway client.Gateway[T], gate Gate, log logging.Logger) *CollectionService[T] {
	return &CollectionService[T]{
		cache:   cache,
		gateway: gateway,
		gate:    gate,
		log:     logging.OrNop(log).With("kind", string(cache.Kind())),
	}
}

func (s *CollectionService[T]) Kind() store.Kind {
	return s.cache.Kind()
}

func (s *CollectionService[T]) Snapshot() *store.Snapshot[T] {
	return s.cache.Snapshot()
}

// Reader exposes the cache read-only.
func (s *CollectionService[T]) Reader() store.Reader[T] {
	return s.cache
}

// Load fetches the whole collection.
func (s *CollectionService[T]) Load(ctx context.Context) error {
	return s.run(ctx, "", s.gateway.FetchAll)
}

// Reload fetches the collection narrowed by q. A blank q is a Load.
func (s *CollectionService[T]) Reload(ctx context.Context, q string) error {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.Load(ctx)
	}
	return s.run(ctx, q, func(ctx context.Context) (client.List[T], error) {
		return s.gateway.FetchByQuery(ctx, q)
	})
}

// run issues one sequence-tagged fetch. The result is applied only if no
// newer fetch was issued meanwhile; a superseded result is dropped and run
// returns nil. A failed fetch keeps the previous items and is also
// returned to the caller.
//
// A fetch given up because ctx ended is not a remote failure: it is
// withdrawn, the collection goes back to its last settled status and
// ctx's error is returned.
func (s *CollectionService[T]) run(ctx context.Context, q string, fetch func(context.Context) (client.List[T], error)) error {
	if err := s.check(); err != nil {
		s.log.Warn(ctx, "load denied", "error", err)
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	seq := s.cache.BeginLoad()
	s.log.Debug(ctx, "load issued", "seq", seq, "query", q)

	list, err := fetch(ctx)
	// any error once ctx has ended is put down to the cancellation
	if err != nil && ctx.Err() != nil {
		s.cache.AbandonLoad(seq)
		s.log.Debug(ctx, "load abandoned", "seq", seq, "query", q)
		return ctx.Err()
	}
	if !s.cache.ResolveLoad(seq, list.Items, list.Total, err) {
		s.log.Debug(ctx, "load superseded", "seq", seq, "latest", s.cache.Latest())
		return nil
	}

	if err != nil {
		s.log.Warn(ctx, "load failed", "seq", seq, "query", q, "error", err)
		return err
	}

	s.log.Debug(ctx, "load applied", "seq", seq, "count", len(list.Items), "total", list.Total)
	return nil
}

func (s *CollectionService[T]) check() error {
	if s.gate == nil {
		return nil
	}
	return s.gate.Check()
}
