package domain

import (
	"fmt"
	"strings"
)

// Catalog is the in-memory set of products available for selection,
// keyed by UPC. Listing order follows load order.
type Catalog struct {
	byUPC map[string]*Product
	order []string
}

// NewCatalog indexes products by UPC. UPCs are unique; on a duplicate
// the first record wins.
func NewCatalog(products []*Product) *Catalog {
	c := &Catalog{byUPC: make(map[string]*Product, len(products))}
	for _, p := range products {
		if _, dup := c.byUPC[p.UPC]; dup {
			continue
		}
		c.byUPC[p.UPC] = p
		c.order = append(c.order, p.UPC)
	}
	return c
}

// Lookup resolves a UPC to its product.
func (c *Catalog) Lookup(upc string) (*Product, error) {
	p, ok := c.byUPC[strings.TrimSpace(upc)]
	if !ok {
		return nil, fmt.Errorf("product %q: %w", strings.TrimSpace(upc), ErrNotFound)
	}
	return p, nil
}

// Reserve decrements the product's stock by quantity. This is the only
// place stock is mutated; a quantity that does not fit the current
// stock is rejected and stock stays untouched.
func (c *Catalog) Reserve(upc string, quantity int) (*Product, error) {
	p, err := c.Lookup(upc)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 || quantity > p.UnitsInStock {
		return nil, &QuantityError{Product: p.Name, Requested: quantity, Available: p.UnitsInStock}
	}
	p.UnitsInStock -= quantity
	return p, nil
}

// Products returns all products in listing order.
func (c *Catalog) Products() []*Product {
	out := make([]*Product, 0, len(c.order))
	for _, upc := range c.order {
		out = append(out, c.byUPC[upc])
	}
	return out
}
