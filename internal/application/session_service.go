package application

import (
	"errors"
	"time"

	"github.com/orderdesk/orderdesk/internal/domain"
)

// SessionService runs one interactive order-entry session: resolve a
// customer, build a draft order line by line against the catalog, then
// commit or abort the whole purchase. One store transaction spans the
// session; it commits only on final confirmation.
type SessionService struct {
	store  domain.Store
	prompt domain.Prompter
	render domain.Renderer
	cfg    domain.SessionConfig
	now    func() time.Time
}

func NewSessionService(store domain.Store, prompt domain.Prompter, render domain.Renderer, cfg domain.SessionConfig) *SessionService {
	return &SessionService{
		store:  store,
		prompt: prompt,
		render: render,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Run executes the whole session.
//
// Stock reserved for confirmed lines is not returned to the in-memory
// catalog when the purchase is aborted; the transaction is rolled back,
// so the store itself stays untouched. This mirrors the reservation
// behavior the workflow has always had.
func (s *SessionService) Run() error {
	customers, err := s.store.LoadCustomers()
	if err != nil {
		return &domain.PersistenceError{Op: "load customers", Err: err}
	}
	products, err := s.store.LoadProducts()
	if err != nil {
		return &domain.PersistenceError{Op: "load products", Err: err}
	}
	directory := domain.NewDirectory(customers)
	catalog := domain.NewCatalog(products)

	tx, err := s.store.Begin()
	if err != nil {
		return &domain.PersistenceError{Op: "begin", Err: err}
	}

	customer, err := s.selectCustomer(directory)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	order := domain.NewOrder(customer, s.cfg.Salesperson, s.now())

	for {
		if err := s.addLine(catalog, order); err != nil {
			_ = tx.Rollback()
			return err
		}
		more, err := s.askYesNo("Add another product to the order? (y/n): ")
		if err != nil {
			_ = tx.Rollback()
			return err
		}
		if !more {
			break
		}
	}

	decision, err := s.confirmPurchase(order)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if decision == domain.Abort {
		_ = tx.Rollback()
		s.prompt.Say("Order aborted; nothing was saved.")
		return nil
	}

	if err := tx.SaveOrder(order); err != nil {
		_ = tx.Rollback()
		return &domain.PersistenceError{Op: "save order", Err: err}
	}
	if err := tx.SaveProducts(catalog.Products()); err != nil {
		_ = tx.Rollback()
		return &domain.PersistenceError{Op: "save products", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &domain.PersistenceError{Op: "commit", Err: err}
	}

	s.prompt.Say("Completed satisfactorily. Order total: %s", order.Total.StringFixed(2))
	return nil
}

// selectCustomer prompts for a customer ID until it resolves in the
// directory.
func (s *SessionService) selectCustomer(directory *domain.Directory) (domain.Customer, error) {
	s.prompt.Say("%s", s.render.Customers(directory.Customers()))
	for attempt := 0; ; attempt++ {
		if err := s.checkAttempts(attempt); err != nil {
			return domain.Customer{}, err
		}
		raw, err := s.prompt.Ask("Enter your customer ID: ")
		if err != nil {
			return domain.Customer{}, err
		}
		customer, err := directory.Lookup(raw)
		if err != nil {
			s.prompt.Say("No customer with ID %q. Try again.", raw)
			continue
		}
		return customer, nil
	}
}

// addLine runs one pass of the line-entry state machine: select a
// product, select a quantity, price the line, then confirm. Declining
// the confirmation discards only this attempt.
func (s *SessionService) addLine(catalog *domain.Catalog, order *domain.Order) error {
	product, err := s.selectProduct(catalog)
	if err != nil {
		return err
	}
	quantity, err := s.selectQuantity(product)
	if err != nil {
		return err
	}

	price := domain.PriceLine(product, quantity)
	s.prompt.Say("Total price: %s", price.StringFixed(2))

	ok, err := s.askYesNo("Add product? (y/n): ")
	if err != nil {
		return err
	}
	if !ok {
		s.prompt.Say("Product not added.")
		return nil
	}

	if _, err := catalog.Reserve(product.UPC, quantity); err != nil {
		var qe *domain.QuantityError
		if errors.As(err, &qe) {
			s.prompt.Say("%v", qe)
			return nil
		}
		return err
	}
	line := order.AddLine(product, quantity)
	s.prompt.Say("Added %d x %s (%s).", line.Quantity, line.ProductName, line.Subtotal.StringFixed(2))
	return nil
}

func (s *SessionService) selectProduct(catalog *domain.Catalog) (*domain.Product, error) {
	s.prompt.Say("%s", s.render.Catalog(catalog.Products()))
	for attempt := 0; ; attempt++ {
		if err := s.checkAttempts(attempt); err != nil {
			return nil, err
		}
		raw, err := s.prompt.Ask("Enter the UPC of the product to purchase: ")
		if err != nil {
			return nil, err
		}
		product, err := catalog.Lookup(raw)
		if err != nil {
			s.prompt.Say("No product with UPC %q. Try again.", raw)
			continue
		}
		return product, nil
	}
}

// selectQuantity prompts until a positive integer within the product's
// current stock is entered. Stock is never mutated here.
func (s *SessionService) selectQuantity(product *domain.Product) (int, error) {
	for attempt := 0; ; attempt++ {
		if err := s.checkAttempts(attempt); err != nil {
			return 0, err
		}
		raw, err := s.prompt.Ask("Enter the quantity to purchase: ")
		if err != nil {
			return 0, err
		}
		quantity, err := domain.ParseQuantity(product, raw)
		if err != nil {
			s.prompt.Say("%v. Enter a valid quantity.", err)
			continue
		}
		return quantity, nil
	}
}

// confirmPurchase is the final gate. Commit persists the draft; Abort
// discards it.
func (s *SessionService) confirmPurchase(order *domain.Order) (domain.Decision, error) {
	s.prompt.Say("%s", s.render.Receipt(order))
	yes, err := s.askYesNo("Confirm purchase? (y/n): ")
	if err != nil {
		return domain.Abort, err
	}
	if yes {
		return domain.Commit, nil
	}
	return domain.Abort, nil
}

func (s *SessionService) askYesNo(prompt string) (bool, error) {
	for attempt := 0; ; attempt++ {
		if err := s.checkAttempts(attempt); err != nil {
			return false, err
		}
		raw, err := s.prompt.Ask(prompt)
		if err != nil {
			return false, err
		}
		yes, err := domain.ParseYesNo(raw)
		if err != nil {
			s.prompt.Say("Please answer y or n.")
			continue
		}
		return yes, nil
	}
}

func (s *SessionService) checkAttempts(attempt int) error {
	if s.cfg.MaxAttempts > 0 && attempt >= s.cfg.MaxAttempts {
		return domain.ErrTooManyAttempts
	}
	return nil
}
