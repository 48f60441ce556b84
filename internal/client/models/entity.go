// Package models defines the client-side records synchronized with the
// remote API: posts, products and the logged-in session.
package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/synckeeper/internal/common"
)

// Entity is a record cached per collection. Identifiers are assigned by the
// remote API and are unique within one kind.
type Entity interface {
	GetID() int
	GetTitle() string
	Validate() error
}

// ValidationError reports a caller-supplied payload that failed local
// required-field checks. It matches common.ErrValidation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == common.ErrValidation
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Reason: "is required"}
	}
	return nil
}
