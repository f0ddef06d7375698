package entity

import (
	"encoding/json"
	"time"

	"github.com/primeretail/billing-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// LedgerTimeFormat is the timestamp layout used by the ledger and the API.
const LedgerTimeFormat = "2006-01-02 15:04:05"

// Bill is one row of the bill ledger, written exactly once per successfully
// rendered invoice. Rows are immutable; the only mutation path is an explicit
// delete by id.
type Bill struct {
	BillID        int                `gorm:"column:bill_id;primaryKey" json:"bill_id"`
	IssuedAt      time.Time          `gorm:"not null" json:"-"`
	CustomerName  string             `gorm:"size:255;not null" json:"customer_name"`
	CustomerPhone string             `gorm:"size:50" json:"customer_phone"`
	CustomerEmail string             `gorm:"size:255" json:"customer_email"`
	Items         []BillItem         `gorm:"serializer:json" json:"items"`
	Total         decimal.Decimal    `gorm:"type:decimal(12,2)" json:"-"`
	PaymentStatus enum.PaymentStatus `gorm:"size:20;not null" json:"payment_status"`
	Notes         string             `gorm:"type:text" json:"notes"`
}

// MarshalJSON custom marshaler exposing the total as a native number and the
// issue timestamp in the ledger layout
func (b Bill) MarshalJSON() ([]byte, error) {
	type Alias Bill
	return json.Marshal(&struct {
		Alias
		Date  string  `json:"date"`
		Total float64 `json:"total"`
	}{
		Alias: Alias(b),
		Date:  b.IssuedAt.Format(LedgerTimeFormat),
		Total: b.Total.InexactFloat64(),
	})
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// BillItem is one line of a bill's item snapshot. The snapshot is serialized
// to JSON inside the ledger row and must re-parse to reconstruct the items.
type BillItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"-"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"-"`
}

// MarshalJSON custom marshaler exposing money fields as native numbers
func (it BillItem) MarshalJSON() ([]byte, error) {
	type Alias BillItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
		Total float64 `json:"total"`
	}{
		Alias: Alias(it),
		Price: it.Price.InexactFloat64(),
		Total: it.Total.InexactFloat64(),
	})
}

// UnmarshalJSON accepts both quoted and bare numbers for the money fields.
func (it *BillItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name     string          `json:"name"`
		Price    decimal.Decimal `json:"price"`
		Quantity int             `json:"quantity"`
		Total    decimal.Decimal `json:"total"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	it.Name = raw.Name
	it.Price = raw.Price
	it.Quantity = raw.Quantity
	it.Total = raw.Total
	return nil
}
