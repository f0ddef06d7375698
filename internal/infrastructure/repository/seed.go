package repository

import (
	"github.com/primeretail/billing-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// DefaultCatalog returns the starter items written into a brand-new catalog,
// matching the stock the shop opened with.
func DefaultCatalog() []entity.Item {
	return []entity.Item{
		{Name: "Laptop", Price: decimal.NewFromFloat(899.99)},
		{Name: "Wireless Mouse", Price: decimal.NewFromFloat(29.99)},
		{Name: "Office Chair", Price: decimal.NewFromFloat(249.99)},
		{Name: "Desk Lamp", Price: decimal.NewFromFloat(45.99)},
		{Name: "Notebook Set", Price: decimal.NewFromFloat(12.99)},
	}
}
