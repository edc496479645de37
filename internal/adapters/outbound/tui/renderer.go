package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/orderdesk/orderdesk/internal/domain"
)

// ── warm palette ──
var (
	accent = lipgloss.Color("#D97706") // amber
	fg     = lipgloss.Color("#E8E6E3") // warm light gray
	dim    = lipgloss.Color("#6B7280") // muted gray
	faint  = lipgloss.Color("#3F3F46") // very dim
	green  = lipgloss.Color("#22C55E")
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	headStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	totalStyle    = lipgloss.NewStyle().Bold(true).Foreground(green)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// Renderer implements domain.Renderer for a terminal.
type Renderer struct{}

func New() *Renderer { return &Renderer{} }

// Catalog renders the product listing with live stock counts. Prices
// are formatted to two decimal places at this boundary only.
func (r *Renderer) Catalog(products []*domain.Product) string {
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Catalog") + "\n")
	b.WriteString("  " + separatorLine + "\n")
	b.WriteString(fmt.Sprintf("  %s %s %s %s %s\n",
		headStyle.Render(padRight("UPC", 6)),
		headStyle.Render(padRight("Product", 36)),
		headStyle.Render(padRight("Maker", 16)),
		headStyle.Render(padRight("Price", 9)),
		headStyle.Render("Stock"),
	))
	for _, p := range products {
		b.WriteString(fmt.Sprintf("  %s %s %s %s %s\n",
			padRight(p.UPC, 6),
			padRight(p.Name, 36),
			dimStyle.Render(padRight(p.Manufacturer, 16)),
			padRight(p.UnitListPrice.StringFixed(2), 9),
			dimStyle.Render(fmt.Sprintf("%d", p.UnitsInStock)),
		))
	}
	return b.String()
}

// Customers renders the customer listing.
func (r *Renderer) Customers(customers []domain.Customer) string {
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Customers") + "\n")
	b.WriteString("  " + separatorLine + "\n")
	for _, c := range customers {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			headStyle.Render(padRight(c.ID, 4)),
			padRight(c.Name, 24),
			dimStyle.Render(fmt.Sprintf("%s, %s  %s", c.Address, c.Zip, c.Phone)),
		))
	}
	return b.String()
}

// Receipt renders the draft order ahead of the final confirmation.
func (r *Renderer) Receipt(order *domain.Order) string {
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Order summary") + "\n")
	b.WriteString("  " + separatorLine + "\n")
	if len(order.Lines) == 0 {
		b.WriteString("  " + dimStyle.Render("No products added.") + "\n")
	}
	for _, line := range order.Lines {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			padRight(fmt.Sprintf("%d x", line.Quantity), 5),
			padRight(line.ProductName, 36),
			line.Subtotal.StringFixed(2),
		))
	}
	b.WriteString("  " + separatorLine + "\n")
	b.WriteString("  " + headStyle.Render(padRight("Total", 42)) + totalStyle.Render(order.Total.StringFixed(2)) + "\n")
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
