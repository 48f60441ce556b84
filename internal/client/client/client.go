package client

import (
	"context"

	"github.com/dmitrijs2005/synckeeper/internal/client/models"
)

// List is a fetched collection. Total is the server's count for the whole
// collection or query and may exceed len(Items) when the server pages; zero
// means the server did not say.
type List[T models.Entity] struct {
	Items []T
	Total int
}

// Gateway performs the remote calls for one entity kind.
type Gateway[T models.Entity] interface {
	FetchAll(ctx context.Context) (List[T], error)
	FetchByQuery(ctx context.Context, q string) (List[T], error)
	// Create sends a payload without an identifier and returns the entity
	// with its server-assigned id.
	Create(ctx context.Context, payload T) (T, error)
	Update(ctx context.Context, entity T) (T, error)
	// Delete returns the id the server acknowledged.
	Delete(ctx context.Context, id int) (int, error)
}

// Authenticator exchanges credentials for a session. It never carries a
// bearer credential itself.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (models.Session, error)
}

// TokenSource supplies the bearer credential for gated calls. An empty
// token means "send none".
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed TokenSource.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }
