package entity

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/primeretail/billing-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

func TestBillMarshalsMoneyAsNumbers(t *testing.T) {
	bill := Bill{
		BillID:        7,
		IssuedAt:      time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		CustomerName:  "Alice",
		Items: []BillItem{
			{Name: "Laptop", Price: decimal.NewFromFloat(899.99), Quantity: 1, Total: decimal.NewFromFloat(899.99)},
		},
		Total:         decimal.NewFromFloat(899.99),
		PaymentStatus: enum.PaymentStatusPaid,
	}

	raw, err := json.Marshal(bill)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(raw)
	if strings.Contains(s, `"total":"`) || strings.Contains(s, `"price":"`) {
		t.Errorf("money fields must be bare numbers: %s", s)
	}
	if !strings.Contains(s, `"total":899.99`) {
		t.Errorf("total missing or wrong: %s", s)
	}
	if !strings.Contains(s, `"date":"2026-03-15 10:30:00"`) {
		t.Errorf("date missing or wrong layout: %s", s)
	}
}

func TestBillItemSnapshotRoundTrip(t *testing.T) {
	in := []BillItem{
		{Name: "Desk Lamp", Price: decimal.NewFromFloat(45.99), Quantity: 2, Total: decimal.NewFromFloat(91.98)},
	}
	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out []BillItem
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Desk Lamp" || out[0].Quantity != 2 {
		t.Fatalf("round trip: %+v", out)
	}
	if !out[0].Price.Equal(in[0].Price) || !out[0].Total.Equal(in[0].Total) {
		t.Errorf("money fields drifted: %+v", out[0])
	}
}
