package models

import "strings"

// SessionUser is the logged-in account as returned by the credential exchange.
type SessionUser struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// DisplayName prefers "First Last" and falls back to the username.
func (u SessionUser) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// Session pairs the user record with its opaque credential token.
// The zero value is the absent session.
type Session struct {
	User  *SessionUser
	Token string
}

// Valid reports whether both halves are present; a user without a token (or
// a token without a user) does not count.
func (s Session) Valid() bool {
	return s.User != nil && s.User.Username != "" && s.Token != ""
}
