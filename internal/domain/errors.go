package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound reports an identifier that matched no record. Recovered
// by re-prompting, never fatal to the session.
var ErrNotFound = errors.New("not found")

// ErrInvalidResponse reports a yes/no answer that was neither.
var ErrInvalidResponse = errors.New("invalid response")

// ErrTooManyAttempts ends a session whose configured attempt budget is
// exhausted.
var ErrTooManyAttempts = errors.New("too many attempts")

// QuantityError reports a requested quantity that is not positive or
// exceeds the product's current stock.
type QuantityError struct {
	Product   string
	Requested int
	Available int
}

func (e *QuantityError) Error() string {
	if e.Requested <= 0 {
		return fmt.Sprintf("quantity %d is not a positive number", e.Requested)
	}
	return fmt.Sprintf("quantity of %d not available for %s (%d in stock)", e.Requested, e.Product, e.Available)
}

// PersistenceError wraps a store failure. Fatal to the session; nothing
// is left partially committed.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
