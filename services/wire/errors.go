package wire

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart signals an intake attempt with no cart items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrAddressRequired signals that the user has no default shipping
	// address yet. Handlers treat this as a prompt to collect one, not as
	// a hard failure.
	ErrAddressRequired = errors.New("address required")

	// ErrInvalidToken covers malformed encoding, truncated buffers and
	// authentication failures on a payment link token.
	ErrInvalidToken = errors.New("invalid or corrupted token")

	// ErrExpiredLink means the token decoded cleanly but its embedded
	// expiry has passed.
	ErrExpiredLink = errors.New("payment link has expired")
)

// NotFoundError reports a missing payment request, invoice, order or user.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// PersistenceError wraps a failed database operation so handlers can map
// it to a 500 while keeping the underlying message for diagnosis.
type PersistenceError struct {
	Op  string
	Err error
}

func (e PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e PersistenceError) Unwrap() error {
	return e.Err
}
