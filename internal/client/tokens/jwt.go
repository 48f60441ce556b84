// Package tokens reads the claims of session tokens issued by the remote
// API. Signatures are not verified here: the client holds no key, and the
// server remains the authority on validity.
package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned for opaque tokens.
var ErrNotJWT = errors.New("token is not a JWT")

// Claims are the registered claims plus the user fields the API embeds.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int    `json:"id,omitempty"`
	Username string `json:"username,omitempty"`
}

// Inspect decodes tokenString without verifying its signature.
func Inspect(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrNotJWT
	}
	return claims, nil
}

// Expired reports whether tokenString is a JWT whose exp is not after now.
// Opaque tokens and tokens without exp never expire here.
func Expired(tokenString string, now time.Time) bool {
	claims, err := Inspect(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}
