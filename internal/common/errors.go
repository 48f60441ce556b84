// Package common defines sentinel errors shared by the synckeeper layers.
// Callers should match them with errors.Is.
package common

import "errors"

var (
	// Lookup errors.
	ErrorNotFound = errors.New("not found")

	// Gate errors: the operation needs an open session.
	ErrorUnauthorized = errors.New("unauthorized")

	// Caller-supplied payload failed local required-field checks.
	ErrValidation = errors.New("validation error")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
