package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Item represents a catalog entry in the inventory
type Item struct {
	ID    int             `gorm:"primaryKey" json:"id"`
	Name  string          `gorm:"size:255;not null" json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"-"`
}

// MarshalJSON custom marshaler exposing the price as a native number
func (i Item) MarshalJSON() ([]byte, error) {
	type Alias Item
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(i),
		Price: i.Price.InexactFloat64(),
	})
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "inventory_items"
}
