package domain

// Prompter is the line-oriented input/output surface of a session.
type Prompter interface {
	// Ask writes the prompt and blocks until one line of input is
	// available.
	Ask(prompt string) (string, error)
	// Say writes one status line.
	Say(format string, args ...any)
}

// Renderer formats records for the output surface.
type Renderer interface {
	Catalog(products []*Product) string
	Customers(customers []Customer) string
	Receipt(order *Order) string
}

// Store loads the record sets at session start and opens the
// transaction that spans the session.
type Store interface {
	LoadCustomers() ([]Customer, error)
	LoadProducts() ([]*Product, error)
	Begin() (Tx, error)
}

// Tx stages saves for one session. Nothing becomes visible to other
// readers of the store until Commit; Rollback discards everything
// staged. A failed save surfaces to the caller, never masked
// per-record.
type Tx interface {
	SaveOrder(o *Order) error
	SaveProducts(products []*Product) error
	Commit() error
	Rollback() error
}
