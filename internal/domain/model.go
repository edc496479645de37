package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a known buyer loaded at session start. Read-only for the
// whole session.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Zip     string `json:"zip"`
	Phone   string `json:"phone"`
}

// Product is one catalog entry. UnitsInStock is the only mutable field;
// it decreases as line items are confirmed and never goes negative.
type Product struct {
	UPC           string          `json:"upc"`
	Name          string          `json:"name"`
	Manufacturer  string          `json:"manufacturer"`
	Category      string          `json:"category"`
	UnitListPrice decimal.Decimal `json:"unit_list_price"`
	UnitsInStock  int             `json:"units_in_stock"`
}

// Order is a draft order under construction during one session. Lines
// are append-only; Total equals the sum of line subtotals at all times.
type Order struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	Salesperson string          `json:"salesperson"`
	CreatedAt   time.Time       `json:"created_at"`
	Lines       []LineItem      `json:"lines,omitempty"`
	Total       decimal.Decimal `json:"total"`
}

// LineItem is one product+quantity entry within an order. UnitPrice is
// the product's list price captured at the time of addition.
type LineItem struct {
	OrderID     string          `json:"order_id"`
	UPC         string          `json:"upc"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}
