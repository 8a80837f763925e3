package lifecycle

import (
	"errors"
	"fmt"

	"github.com/bitmark-inc/relief-api/schema"
	"github.com/bitmark-inc/relief-api/store"
)

// ValidationError reports malformed or missing input
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AuthError reports an anonymous or unauthorized actor
type AuthError struct {
	Unauthenticated bool
	Reason          string
}

func (e *AuthError) Error() string {
	if e.Unauthenticated {
		return "authentication required"
	}
	return "not allowed: " + e.Reason
}

// InvalidTransitionError reports a change the current state does not allow.
// To is empty when the record is frozen for any mutation.
type InvalidTransitionError struct {
	From schema.RequestStatus
	To   schema.RequestStatus
}

func (e *InvalidTransitionError) Error() string {
	if e.To == "" {
		return fmt.Sprintf("request is %s", e.From)
	}
	return fmt.Sprintf("cannot move request from %s to %s", e.From, e.To)
}

// StoreError wraps a failed read or write of the entity store
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

var errUnauthenticated = &AuthError{Unauthenticated: true}

func forbidden(reason string) error {
	return &AuthError{Reason: reason}
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsNotFound reports whether err comes from a missing record
func IsNotFound(err error) bool {
	return errors.Is(err, store.ErrRecordNotFound)
}

func storeFailure(op string, err error) error {
	if errors.Is(err, store.ErrAreaNotExist) {
		return invalid("area_id", "unknown area")
	}
	return &StoreError{Op: op, Err: err}
}
