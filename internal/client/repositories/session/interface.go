// Package session persists the logged-in session between process runs.
//
// The Repository contract is deliberately narrow: Load seeds the session
// gate at startup, Save is called once per successful login and Clear on
// logout. Implementations must write the token and user record as a unit;
// a half-written session loads as absent.
package session

import (
	"context"

	"github.com/dmitrijs2005/synckeeper/internal/client/models"
)

type Repository interface {
	// Load returns the stored session and true, or a zero Session and false
	// when nothing (or only part of a session) is stored.
	Load(ctx context.Context) (models.Session, bool, error)
	Save(ctx context.Context, s models.Session) error
	Clear(ctx context.Context) error
}
