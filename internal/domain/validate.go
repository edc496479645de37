package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Decision is the outcome of the final purchase confirmation.
type Decision int

const (
	Commit Decision = iota
	Abort
)

// ParseYesNo normalizes a free-form answer to a boolean. Accepted
// tokens are y/yes and n/no in any case; anything else is an
// ErrInvalidResponse the caller recovers from by re-prompting.
func ParseYesNo(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return false, fmt.Errorf("%q: %w", strings.TrimSpace(raw), ErrInvalidResponse)
}

// ParseQuantity validates a raw quantity entry against the product's
// current stock. It never mutates stock.
func ParseQuantity(p *Product, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, &QuantityError{Product: p.Name, Requested: n}
	}
	if n > p.UnitsInStock {
		return 0, &QuantityError{Product: p.Name, Requested: n, Available: p.UnitsInStock}
	}
	return n, nil
}
