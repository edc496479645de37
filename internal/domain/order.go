package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewOrder opens a draft order for the given customer. The customer
// reference is set once here and never changes.
func NewOrder(customer Customer, salesperson string, now time.Time) *Order {
	return &Order{
		ID:          uuid.NewString(),
		CustomerID:  customer.ID,
		Salesperson: salesperson,
		CreatedAt:   now,
		Total:       decimal.Zero,
	}
}

// PriceLine computes quantity times the product's unit list price for a
// prospective line. Rounding happens only at the display boundary.
func PriceLine(p *Product, quantity int) decimal.Decimal {
	return p.UnitListPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// AddLine appends a confirmed line item and adds its subtotal to the
// running total. Stock must already be reserved via Catalog.Reserve;
// AddLine itself never touches stock.
func (o *Order) AddLine(p *Product, quantity int) LineItem {
	line := LineItem{
		OrderID:     o.ID,
		UPC:         p.UPC,
		ProductName: p.Name,
		Quantity:    quantity,
		UnitPrice:   p.UnitListPrice,
		Subtotal:    PriceLine(p, quantity),
	}
	o.Lines = append(o.Lines, line)
	o.Total = o.Total.Add(line.Subtotal)
	return line
}
