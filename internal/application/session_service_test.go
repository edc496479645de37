package application_test

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderdesk/orderdesk/internal/adapters/outbound/tui"
	"github.com/orderdesk/orderdesk/internal/application"
	"github.com/orderdesk/orderdesk/internal/domain"
)

// scriptPrompter feeds a fixed sequence of answers and records all
// output.
type scriptPrompter struct {
	answers []string
	next    int
	out     strings.Builder
}

func (p *scriptPrompter) Ask(prompt string) (string, error) {
	p.out.WriteString(prompt)
	if p.next >= len(p.answers) {
		return "", io.EOF
	}
	answer := p.answers[p.next]
	p.next++
	return answer, nil
}

func (p *scriptPrompter) Say(format string, args ...any) {
	fmt.Fprintf(&p.out, format+"\n", args...)
}

// memStore implements domain.Store in memory and records the staged
// transaction.
type memStore struct {
	customers []domain.Customer
	products  []*domain.Product
	tx        *memTx
}

func (s *memStore) LoadCustomers() ([]domain.Customer, error) { return s.customers, nil }
func (s *memStore) LoadProducts() ([]*domain.Product, error)  { return s.products, nil }
func (s *memStore) Begin() (domain.Tx, error) {
	s.tx = &memTx{}
	return s.tx, nil
}

type memTx struct {
	orders     []*domain.Order
	products   []*domain.Product
	committed  bool
	rolledBack bool
}

func (tx *memTx) SaveOrder(o *domain.Order) error {
	tx.orders = append(tx.orders, o)
	return nil
}

func (tx *memTx) SaveProducts(products []*domain.Product) error {
	tx.products = products
	return nil
}

func (tx *memTx) Commit() error   { tx.committed = true; return nil }
func (tx *memTx) Rollback() error { tx.rolledBack = true; return nil }

func seedStore() *memStore {
	return &memStore{
		customers: []domain.Customer{
			{ID: "1", Name: "Bob Smith", Address: "123 Street", Zip: "12345", Phone: "012-345-6789"},
			{ID: "2", Name: "Walid Akhras", Address: "124 Street", Zip: "90621", Phone: "741-532-1111"},
		},
		products: []*domain.Product{
			{UPC: "123", Name: "16 oz. hickory hammer", Manufacturer: "Stanely Tools", Category: "1", UnitListPrice: decimal.RequireFromString("9.97"), UnitsInStock: 50},
			{UPC: "124", Name: "19 oz. Smooth Face Fiberglass", Manufacturer: "Milwaukee", Category: "2", UnitListPrice: decimal.RequireFromString("25.88"), UnitsInStock: 10},
			{UPC: "125", Name: "20 oz. Fiberglass Rip Claw Hammer", Manufacturer: "Crescent", Category: "3", UnitListPrice: decimal.RequireFromString("19.97"), UnitsInStock: 5},
		},
	}
}

func newSession(store *memStore, prompter *scriptPrompter, cfg domain.SessionConfig) *application.SessionService {
	return application.NewSessionService(store, prompter, tui.New(), cfg)
}

func run(t *testing.T, store *memStore, cfg domain.SessionConfig, answers ...string) (*scriptPrompter, error) {
	t.Helper()
	prompter := &scriptPrompter{answers: answers}
	err := newSession(store, prompter, cfg).Run()
	return prompter, err
}

func stockOf(store *memStore, upc string) int {
	for _, p := range store.products {
		if p.UPC == upc {
			return p.UnitsInStock
		}
	}
	return -1
}

func TestRun_CommitsSingleLineOrder(t *testing.T) {
	store := seedStore()
	cfg := domain.DefaultSessionConfig()

	// customer 1, UPC 123, quantity 2, add, stop shopping, confirm
	prompter, err := run(t, store, cfg, "1", "123", "2", "y", "n", "y")
	require.NoError(t, err)

	require.True(t, store.tx.committed)
	require.Len(t, store.tx.orders, 1)
	order := store.tx.orders[0]
	assert.Equal(t, "1", order.CustomerID)
	assert.Equal(t, "counter", order.Salesperson)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, "19.94", order.Lines[0].Subtotal.StringFixed(2))
	assert.Equal(t, "19.94", order.Total.StringFixed(2))

	assert.Equal(t, 48, stockOf(store, "123"))
	assert.Contains(t, prompter.out.String(), "Total price: 19.94")
	assert.Contains(t, prompter.out.String(), "Completed satisfactorily. Order total: 19.94")
}

func TestRun_QuantityExceedingStockReprompts(t *testing.T) {
	store := seedStore()

	// 60 exceeds the 50 in stock and must be re-prompted, not fatal
	prompter, err := run(t, store, domain.DefaultSessionConfig(), "1", "123", "60", "2", "y", "n", "y")
	require.NoError(t, err)

	require.Len(t, store.tx.orders, 1)
	require.Len(t, store.tx.orders[0].Lines, 1)
	assert.Equal(t, 2, store.tx.orders[0].Lines[0].Quantity)
	assert.Equal(t, 48, stockOf(store, "123"))
	assert.Contains(t, prompter.out.String(), "not available for 16 oz. hickory hammer")
}

func TestRun_DecliningLineDiscardsOnlyThatAttempt(t *testing.T) {
	store := seedStore()

	// decline the hammer, then add the fiberglass and commit
	_, err := run(t, store, domain.DefaultSessionConfig(),
		"1", "123", "2", "n", "y", "124", "1", "y", "n", "y")
	require.NoError(t, err)

	require.Len(t, store.tx.orders, 1)
	order := store.tx.orders[0]
	require.Len(t, order.Lines, 1)
	assert.Equal(t, "124", order.Lines[0].UPC)
	assert.Equal(t, "25.88", order.Total.StringFixed(2))

	assert.Equal(t, 50, stockOf(store, "123"), "declined line must not touch stock")
	assert.Equal(t, 9, stockOf(store, "124"))
}

func TestRun_AbortPersistsNothingButKeepsReservedStock(t *testing.T) {
	store := seedStore()

	// two confirmed lines totaling 45.85, then abort the purchase
	prompter, err := run(t, store, domain.DefaultSessionConfig(),
		"1", "124", "1", "y", "y", "125", "1", "y", "n", "n")
	require.NoError(t, err)

	assert.True(t, store.tx.rolledBack)
	assert.False(t, store.tx.committed)
	assert.Empty(t, store.tx.orders)
	assert.Contains(t, prompter.out.String(), "45.85")
	assert.Contains(t, prompter.out.String(), "Order aborted")

	// Reservations made during the session are not rolled back in
	// memory; only the store stays untouched.
	assert.Equal(t, 9, stockOf(store, "124"))
	assert.Equal(t, 4, stockOf(store, "125"))
}

func TestRun_UnknownCustomerReprompts(t *testing.T) {
	store := seedStore()

	prompter, err := run(t, store, domain.DefaultSessionConfig(),
		"99", "1", "123", "1", "y", "n", "y")
	require.NoError(t, err)

	assert.True(t, store.tx.committed)
	assert.Contains(t, prompter.out.String(), `No customer with ID "99"`)
}

func TestRun_UnknownProductReprompts(t *testing.T) {
	store := seedStore()

	prompter, err := run(t, store, domain.DefaultSessionConfig(),
		"1", "999", "123", "1", "y", "n", "y")
	require.NoError(t, err)

	assert.True(t, store.tx.committed)
	assert.Contains(t, prompter.out.String(), `No product with UPC "999"`)
}

func TestRun_InvalidYesNoReprompts(t *testing.T) {
	store := seedStore()

	prompter, err := run(t, store, domain.DefaultSessionConfig(),
		"1", "123", "1", "maybe", "y", "n", "y")
	require.NoError(t, err)

	assert.True(t, store.tx.committed)
	assert.Contains(t, prompter.out.String(), "Please answer y or n.")
}

func TestRun_EmptyOrderCanCommit(t *testing.T) {
	store := seedStore()

	// decline the only attempted line, stop, confirm
	_, err := run(t, store, domain.DefaultSessionConfig(),
		"1", "123", "2", "n", "n", "y")
	require.NoError(t, err)

	require.Len(t, store.tx.orders, 1)
	assert.Empty(t, store.tx.orders[0].Lines)
	assert.Equal(t, "0.00", store.tx.orders[0].Total.StringFixed(2))
	assert.Equal(t, 50, stockOf(store, "123"))
}

func TestRun_MaxAttemptsExhausted(t *testing.T) {
	store := seedStore()
	cfg := domain.DefaultSessionConfig()
	cfg.MaxAttempts = 2

	_, err := run(t, store, cfg, "98", "99")
	assert.ErrorIs(t, err, domain.ErrTooManyAttempts)
	assert.True(t, store.tx.rolledBack)
	assert.False(t, store.tx.committed)
}

func TestRun_ExhaustedInputFailsSession(t *testing.T) {
	store := seedStore()

	_, err := run(t, store, domain.DefaultSessionConfig(), "1", "123")
	assert.ErrorIs(t, err, io.EOF)
	assert.True(t, store.tx.rolledBack)
}

func TestRun_SalespersonFromConfig(t *testing.T) {
	store := seedStore()
	cfg := domain.DefaultSessionConfig()
	cfg.Salesperson = "walid"

	_, err := run(t, store, cfg, "1", "123", "1", "y", "n", "y")
	require.NoError(t, err)
	assert.Equal(t, "walid", store.tx.orders[0].Salesperson)
}
