package domain

import (
	"fmt"
	"strings"
)

// Directory is the in-memory set of known customers, keyed by ID.
// Listing order follows load order.
type Directory struct {
	byID  map[string]Customer
	order []string
}

// NewDirectory indexes customers by ID; first record wins on duplicates.
func NewDirectory(customers []Customer) *Directory {
	d := &Directory{byID: make(map[string]Customer, len(customers))}
	for _, c := range customers {
		if _, dup := d.byID[c.ID]; dup {
			continue
		}
		d.byID[c.ID] = c
		d.order = append(d.order, c.ID)
	}
	return d
}

// Lookup resolves a customer ID to its record.
func (d *Directory) Lookup(id string) (Customer, error) {
	c, ok := d.byID[strings.TrimSpace(id)]
	if !ok {
		return Customer{}, fmt.Errorf("customer %q: %w", strings.TrimSpace(id), ErrNotFound)
	}
	return c, nil
}

// Customers returns all customers in listing order.
func (d *Directory) Customers() []Customer {
	out := make([]Customer, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.byID[id])
	}
	return out
}
