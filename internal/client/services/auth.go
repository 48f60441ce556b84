package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/synckeeper/internal/client/client"
	"github.com/dmitrijs2005/synckeeper/internal/client/models"
	"github.com/dmitrijs2005/synckeeper/internal/client/repositories/session"
	"github.com/dmitrijs2005/synckeeper/internal/client/store"
	"github.com/dmitrijs2005/synckeeper/internal/client/tokens"
	"github.com/dmitrijs2005/synckeeper/internal/common"
	"github.com/dmitrijs2005/synckeeper/internal/logging"
)

// AuthService is the session gate. The session itself lives in the store;
// the repository keeps a copy between runs.
//
// Contract:
//   - Restore: seed the store from the repository at startup.
//   - IsAuthorized / Check: open only when user and token are both present
//     and the token, if it is a JWT, has not expired.
//   - Login: exchange credentials, persist, then swap the session in.
//   - Logout: clear the store and the repository.
type AuthService struct {
	auth  client.Authenticator
	repo  session.Repository
	store *store.Store
	log   logging.Logger
	now   func() time.Time
}

func NewAuthService(auth client.Authenticator, repo session.Repository, st *store.Store, log logging.Logger) *AuthService {
	return &AuthService{
		auth:  auth,
		repo:  repo,
		store: st,
		log:   logging.OrNop(log),
		now:   time.Now,
	}
}

// Restore loads a persisted session, if any, into the store.
func (a *AuthService) Restore(ctx context.Context) error {
	s, ok, err := a.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if !ok {
		a.store.ClearSession()
		return nil
	}

	a.store.SetSession(s)
	a.log.Debug(ctx, "session restored", "user", s.User.Username)
	return nil
}

// IsAuthorized reports whether the gate is open. An expired token closes
// it and destroys the session.
func (a *AuthService) IsAuthorized() bool {
	return a.Check() == nil
}

// Check returns nil when the gate is open and an error matching
// common.ErrorUnauthorized otherwise.
func (a *AuthService) Check() error {
	s := a.store.Session()
	if !s.Valid() {
		return common.ErrorUnauthorized
	}

	if tokens.Expired(s.Token, a.now()) {
		ctx := context.Background()
		a.store.ClearSession()
		if err := a.repo.Clear(ctx); err != nil {
			a.log.Warn(ctx, "failed to clear expired session", "error", err)
		}
		a.log.Info(ctx, "session expired", "user", s.User.Username)
		return fmt.Errorf("%w: %w", common.ErrorUnauthorized, common.ErrTokenExpired)
	}

	return nil
}

// Login exchanges credentials for a session. Nothing is written unless the
// exchange succeeds and the session is persisted.
func (a *AuthService) Login(ctx context.Context, username, password string) (models.SessionUser, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.SessionUser{}, &models.ValidationError{Field: "username", Reason: "is required"}
	}
	if password == "" {
		return models.SessionUser{}, &models.ValidationError{Field: "password", Reason: "is required"}
	}

	s, err := a.auth.Login(ctx, username, password)
	if err != nil {
		a.log.Warn(ctx, "login failed", "user", username, "error", err)
		return models.SessionUser{}, fmt.Errorf("login error: %w", err)
	}
	if !s.Valid() {
		return models.SessionUser{}, fmt.Errorf("login error: %w", common.ErrorUnauthorized)
	}

	if err := a.repo.Save(ctx, s); err != nil {
		return models.SessionUser{}, fmt.Errorf("session saving error: %w", err)
	}
	a.store.SetSession(s)

	a.log.Info(ctx, "logged in", "user", s.User.Username)
	return *s.User, nil
}

// Logout closes the gate. The store is cleared even if the repository
// cannot be.
func (a *AuthService) Logout(ctx context.Context) error {
	user := a.store.Session().User
	a.store.ClearSession()

	if err := a.repo.Clear(ctx); err != nil {
		return fmt.Errorf("session clearing error: %w", err)
	}
	if user != nil {
		a.log.Info(ctx, "logged out", "user", user.Username)
	}
	return nil
}

// Token implements client.TokenSource. It is empty while the gate is
// closed.
func (a *AuthService) Token() string {
	s := a.store.Session()
	if !s.Valid() {
		return ""
	}
	return s.Token
}

// User returns the logged-in user, if any.
func (a *AuthService) User() (models.SessionUser, bool) {
	s := a.store.Session()
	if !s.Valid() {
		return models.SessionUser{}, false
	}
	return *s.User, true
}
