package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/orderdesk/orderdesk/internal/domain"
)

// SeedCustomers returns the starter customer records written by
// "orderdesk init".
func SeedCustomers() []domain.Customer {
	return []domain.Customer{
		{ID: "1", Name: "Bob Smith", Address: "123 Street", Zip: "12345", Phone: "012-345-6789"},
		{ID: "2", Name: "Walid Akhras", Address: "124 Street", Zip: "90621", Phone: "741-532-1111"},
		{ID: "3", Name: "Kanye West", Address: "125 Street", Zip: "90742", Phone: "321-344-6789"},
		{ID: "4", Name: "First Last", Address: "126 Street", Zip: "12345", Phone: "012-532-6789"},
	}
}

// SeedProducts returns the starter product records written by
// "orderdesk init".
func SeedProducts() []*domain.Product {
	return []*domain.Product{
		{UPC: "123", Name: "16 oz. hickory hammer", Manufacturer: "Stanely Tools", Category: "1", UnitListPrice: decimal.RequireFromString("9.97"), UnitsInStock: 50},
		{UPC: "124", Name: "19 oz. Smooth Face Fiberglass", Manufacturer: "Milwaukee", Category: "2", UnitListPrice: decimal.RequireFromString("25.88"), UnitsInStock: 10},
		{UPC: "125", Name: "20 oz. Fiberglass Rip Claw Hammer", Manufacturer: "Crescent", Category: "3", UnitListPrice: decimal.RequireFromString("19.97"), UnitsInStock: 5},
		{UPC: "126", Name: "3 lbs Fiberglass Drilling Hammer", Manufacturer: "Milwaukee", Category: "4", UnitListPrice: decimal.RequireFromString("18.97"), UnitsInStock: 10},
	}
}

// Init writes a seeded data file. An existing file is preserved unless
// force is set.
func (s *FileStore) Init(force bool) error {
	if !force {
		if _, err := os.Stat(s.path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", s.path)
		}
	}

	data := fileData{
		Customers: SeedCustomers(),
		Products:  SeedProducts(),
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0644)
}
