package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/synckeeper/internal/client/models"
)

var errNoToken = errors.New("login response carried no token")

// HTTPAuthenticator performs the credential exchange at POST /auth/login.
type HTTPAuthenticator struct {
	*transport
	expiresInMins int
}

// NewHTTPAuthenticator builds an authenticator. expiresInMins > 0 asks the
// server for a token of that lifetime.
func NewHTTPAuthenticator(baseURL string, expiresInMins int, opts ...Option) *HTTPAuthenticator {
	return &HTTPAuthenticator{transport: newTransport(baseURL, opts...), expiresInMins: expiresInMins}
}

type loginRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	ExpiresInMins int    `json:"expiresInMins,omitempty"`
}

type loginResponse struct {
	models.SessionUser
	AccessToken string `json:"accessToken"`
	// Token is the field name used by older API versions.
	Token string `json:"token"`
}

func (a *HTTPAuthenticator) Login(ctx context.Context, username, password string) (models.Session, error) {
	req := loginRequest{Username: username, Password: password, ExpiresInMins: a.expiresInMins}

	var resp loginResponse
	if err := a.do(ctx, http.MethodPost, "/auth/login", "", req, &resp); err != nil {
		return models.Session{}, err
	}

	token := resp.AccessToken
	if token == "" {
		token = resp.Token
	}
	if token == "" {
		return models.Session{}, errNoToken
	}

	user := resp.SessionUser
	if user.Username == "" {
		user.Username = username
	}
	return models.Session{User: &user, Token: token}, nil
}
