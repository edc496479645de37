package application

import (
	"fmt"
	"time"

	"github.com/orderdesk/orderdesk/internal/domain"
)

// PlaceOrderRequest describes a complete order placed in one step.
type PlaceOrderRequest struct {
	CustomerID  string
	Salesperson string
	Lines       []RequestedLine
}

// RequestedLine is one product+quantity entry of a one-step order.
type RequestedLine struct {
	UPC      string
	Quantity int
}

// OrderService places complete orders without the interactive loop,
// applying the same stock and quantity rules as a session.
type OrderService struct {
	store domain.Store
	now   func() time.Time
}

func NewOrderService(store domain.Store) *OrderService {
	return &OrderService{store: store, now: time.Now}
}

// PlaceOrder validates and commits the requested order in one
// transaction. Any rejected line rejects the whole order.
func (s *OrderService) PlaceOrder(req PlaceOrderRequest) (*domain.Order, error) {
	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("order has no lines")
	}

	customers, err := s.store.LoadCustomers()
	if err != nil {
		return nil, &domain.PersistenceError{Op: "load customers", Err: err}
	}
	products, err := s.store.LoadProducts()
	if err != nil {
		return nil, &domain.PersistenceError{Op: "load products", Err: err}
	}

	customer, err := domain.NewDirectory(customers).Lookup(req.CustomerID)
	if err != nil {
		return nil, err
	}
	catalog := domain.NewCatalog(products)

	salesperson := req.Salesperson
	if salesperson == "" {
		salesperson = domain.DefaultSalesperson
	}

	tx, err := s.store.Begin()
	if err != nil {
		return nil, &domain.PersistenceError{Op: "begin", Err: err}
	}

	order := domain.NewOrder(customer, salesperson, s.now())
	for _, rl := range req.Lines {
		product, err := catalog.Reserve(rl.UPC, rl.Quantity)
		if err != nil {
			_ = tx.Rollback()
			return nil, err
		}
		order.AddLine(product, rl.Quantity)
	}

	if err := tx.SaveOrder(order); err != nil {
		_ = tx.Rollback()
		return nil, &domain.PersistenceError{Op: "save order", Err: err}
	}
	if err := tx.SaveProducts(catalog.Products()); err != nil {
		_ = tx.Rollback()
		return nil, &domain.PersistenceError{Op: "save products", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return nil, &domain.PersistenceError{Op: "commit", Err: err}
	}

	return order, nil
}
