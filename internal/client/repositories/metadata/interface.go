// Package metadata is a small key/value store kept in the local client
// database. The session repository uses it to persist the credential token
// and user record under stable keys.
package metadata

import (
	"context"

	"github.com/dmitrijs2005/synckeeper/internal/dbx"
)

// Repository reads and writes opaque values by key. Get returns (nil, nil)
// for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// WithTx returns a Repository bound to the given transaction handle.
	WithTx(tx dbx.DBTX) Repository
}
