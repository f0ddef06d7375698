package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/primeretail/billing-api/internal/domain/entity"
	"github.com/primeretail/billing-api/internal/domain/enum"
	"github.com/primeretail/billing-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

func testBill(name string, total float64) *entity.Bill {
	return &entity.Bill{
		IssuedAt:      time.Date(2026, 3, 15, 10, 30, 0, 0, time.Local),
		CustomerName:  name,
		CustomerPhone: "555-0100",
		CustomerEmail: name + "@example.com",
		Items: []entity.BillItem{
			{Name: "Laptop", Price: decimal.NewFromFloat(899.99), Quantity: 1, Total: decimal.NewFromFloat(899.99)},
		},
		Total:         decimal.NewFromFloat(total),
		PaymentStatus: enum.PaymentStatusPaid,
		Notes:         "handle with care",
	}
}

func TestCSVBillRepositoryAppendAssignsSequentialIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bills.csv")
	repo, err := NewCSVBillRepository(path)
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}

	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		bill, err := repo.Append(ctx, testBill("Customer", 899.99))
		if err != nil {
			t.Fatalf("append bill %d: %v", i, err)
		}
		if bill.BillID != i {
			t.Errorf("bill %d: got id %d, want %d", i, bill.BillID, i)
		}
	}
}

func TestCSVBillRepositoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bills.csv")
	repo, err := NewCSVBillRepository(path)
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}

	ctx := context.Background()
	in := testBill("Alice", 899.99)
	if _, err := repo.Append(ctx, in); err != nil {
		t.Fatalf("append: %v", err)
	}

	bills, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(bills) != 1 {
		t.Fatalf("got %d bills, want 1", len(bills))
	}

	got := bills[0]
	if got.BillID != 1 {
		t.Errorf("id: got %d, want 1", got.BillID)
	}
	if got.CustomerName != "Alice" {
		t.Errorf("customer name: got %q", got.CustomerName)
	}
	if got.CustomerPhone != "555-0100" {
		t.Errorf("customer phone: got %q", got.CustomerPhone)
	}
	if !got.IssuedAt.Equal(in.IssuedAt) {
		t.Errorf("issued at: got %v, want %v", got.IssuedAt, in.IssuedAt)
	}
	if !got.Total.Equal(decimal.NewFromFloat(899.99)) {
		t.Errorf("total: got %s", got.Total)
	}
	if got.PaymentStatus != enum.PaymentStatusPaid {
		t.Errorf("payment status: got %q", got.PaymentStatus)
	}
	if len(got.Items) != 1 || got.Items[0].Name != "Laptop" {
		t.Errorf("items snapshot did not survive: %+v", got.Items)
	}
	if !got.Items[0].Price.Equal(decimal.NewFromFloat(899.99)) {
		t.Errorf("item price: got %s", got.Items[0].Price)
	}
}

func TestCSVBillRepositoryDeletePreservesOtherIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bills.csv")
	repo, err := NewCSVBillRepository(path)
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := repo.Append(ctx, testBill("Customer", 10)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	if err := repo.DeleteByID(ctx, "2"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	bills, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(bills) != 2 {
		t.Fatalf("got %d bills, want 2", len(bills))
	}
	if bills[0].BillID != 1 || bills[1].BillID != 3 {
		t.Errorf("got ids %d and %d, want 1 and 3", bills[0].BillID, bills[1].BillID)
	}

	// Ids never recycle: the next bill continues past the historical maximum.
	next, err := repo.Append(ctx, testBill("Customer", 10))
	if err != nil {
		t.Fatalf("append after delete: %v", err)
	}
	if next.BillID != 4 {
		t.Errorf("next id: got %d, want 4", next.BillID)
	}
}

func TestCSVBillRepositoryDeleteMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bills.csv")
	repo, err := NewCSVBillRepository(path)
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}

	ctx := context.Background()
	if _, err := repo.Append(ctx, testBill("Customer", 10)); err != nil {
		t.Fatalf("append: %v", err)
	}

	err = repo.DeleteByID(ctx, "42")
	if !apperror.IsNotFound(err) {
		t.Fatalf("got %v, want not-found", err)
	}

	bills, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(bills) != 1 {
		t.Errorf("failed delete must not change the ledger, got %d bills", len(bills))
	}
}

func TestCSVBillRepositoryPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bills.csv")
	repo, err := NewCSVBillRepository(path)
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}

	ctx := context.Background()
	if _, err := repo.Append(ctx, testBill("Bob", 29.99)); err != nil {
		t.Fatalf("append: %v", err)
	}

	reopened, err := NewCSVBillRepository(path)
	if err != nil {
		t.Fatalf("reopen repository: %v", err)
	}
	bills, err := reopened.List(ctx)
	if err != nil {
		t.Fatalf("list after reopen: %v", err)
	}
	if len(bills) != 1 || bills[0].CustomerName != "Bob" {
		t.Fatalf("ledger did not survive reopen: %+v", bills)
	}

	next, err := reopened.Append(ctx, testBill("Carol", 12.99))
	if err != nil {
		t.Fatalf("append after reopen: %v", err)
	}
	if next.BillID != 2 {
		t.Errorf("id after reopen: got %d, want 2", next.BillID)
	}
}

func TestCSVBillRepositoryFileHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bills.csv")
	if _, err := NewCSVBillRepository(path); err != nil {
		t.Fatalf("open repository: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read ledger file: %v", err)
	}
	first := strings.SplitN(string(data), "\n", 2)[0]
	want := "bill_id,date,customer_name,customer_phone,customer_email,items,total,payment_status,notes"
	if strings.TrimRight(first, "\r") != want {
		t.Errorf("header row: got %q, want %q", first, want)
	}
}
