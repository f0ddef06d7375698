package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/primeretail/billing-api/internal/domain/entity"
	"github.com/primeretail/billing-api/internal/domain/enum"
	"github.com/primeretail/billing-api/internal/domain/repository"
	"github.com/primeretail/billing-api/pkg/apperror"
	"github.com/primeretail/billing-api/pkg/invoice"
	"github.com/shopspring/decimal"
)

// roundingTolerance is the maximum drift allowed between caller-supplied
// money values and the recomputed ones.
var roundingTolerance = decimal.NewFromFloat(0.01)

// BillingService turns orders into PDF invoices and ledger rows.
type BillingService struct {
	billRepo repository.BillRepository
	shop     entity.ShopProfile
	now      func() time.Time
}

// NewBillingService creates a new billing service for the given shop.
func NewBillingService(billRepo repository.BillRepository, shop entity.ShopProfile) *BillingService {
	return &BillingService{
		billRepo: billRepo,
		shop:     shop,
		now:      time.Now,
	}
}

// OrderLineInput is one cart line submitted for invoicing. LineTotal, when
// present, is cross-checked against unit price times quantity.
type OrderLineInput struct {
	Name      string
	Quantity  int
	UnitPrice float64
	LineTotal *float64
}

// GenerateBillInput is the order submitted for invoicing. Total, when
// present, is cross-checked against the recomputed sum of line totals.
type GenerateBillInput struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Lines         []OrderLineInput
	Total         *float64
	PaymentStatus string
	Notes         string
}

// GeneratedBill couples the rendered document with its persisted ledger row.
type GeneratedBill struct {
	PDF  []byte
	Bill *entity.Bill
}

// GenerateBill validates the order, recomputes all money values from the
// lines, renders the PDF and appends the bill to the ledger. The document is
// never returned without a persisted ledger row: an append failure fails the
// whole operation.
func (s *BillingService) GenerateBill(ctx context.Context, input *GenerateBillInput) (*GeneratedBill, error) {
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, apperror.NewValidationError("Customer name is required",
			apperror.FieldError{Field: "customer.name", Message: "must not be empty"})
	}

	status, err := enum.ParsePaymentStatus(input.PaymentStatus)
	if err != nil {
		return nil, apperror.NewValidationError("Invalid payment status",
			apperror.FieldError{Field: "payment_status", Message: `must be "Paid" or "Unpaid"`})
	}

	items := make([]entity.BillItem, 0, len(input.Lines))
	total := decimal.Zero
	for i, line := range input.Lines {
		field := fmt.Sprintf("items[%d]", i)
		if line.Quantity < 1 {
			return nil, apperror.NewValidationError("Invalid item quantity",
				apperror.FieldError{Field: field + ".quantity", Message: "must be at least 1"})
		}
		unitPrice := decimal.NewFromFloat(line.UnitPrice)
		if unitPrice.IsNegative() {
			return nil, apperror.NewValidationError("Invalid item price",
				apperror.FieldError{Field: field + ".price", Message: "must not be negative"})
		}

		// Never trust caller-computed amounts; recompute and compare.
		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		if line.LineTotal != nil {
			supplied := decimal.NewFromFloat(*line.LineTotal)
			if supplied.Sub(lineTotal).Abs().GreaterThan(roundingTolerance) {
				return nil, apperror.NewValidationError("Line total does not match price and quantity",
					apperror.FieldError{Field: field + ".total", Message: "expected " + lineTotal.StringFixed(2)})
			}
		}

		items = append(items, entity.BillItem{
			Name:     line.Name,
			Price:    unitPrice,
			Quantity: line.Quantity,
			Total:    lineTotal,
		})
		total = total.Add(lineTotal)
	}

	if input.Total != nil {
		supplied := decimal.NewFromFloat(*input.Total)
		if supplied.Sub(total).Abs().GreaterThan(roundingTolerance) {
			return nil, apperror.NewValidationError("Order total does not match line totals",
				apperror.FieldError{Field: "total", Message: "expected " + total.StringFixed(2)})
		}
	}

	issuedAt := s.now()
	pdf, err := invoice.Render(s.invoiceDocument(input, items, total, status, issuedAt))
	if err != nil {
		return nil, apperror.NewAppError(500, "Failed to render invoice: "+err.Error())
	}

	bill, err := s.billRepo.Append(ctx, &entity.Bill{
		IssuedAt:      issuedAt,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		CustomerEmail: input.CustomerEmail,
		Items:         items,
		Total:         total,
		PaymentStatus: status,
		Notes:         input.Notes,
	})
	if err != nil {
		return nil, err
	}

	return &GeneratedBill{PDF: pdf, Bill: bill}, nil
}

// ListBills returns all ledger rows in issuance order.
func (s *BillingService) ListBills(ctx context.Context) ([]entity.Bill, error) {
	return s.billRepo.List(ctx)
}

// DeleteBill removes a ledger row by id.
func (s *BillingService) DeleteBill(ctx context.Context, id string) error {
	return s.billRepo.DeleteByID(ctx, id)
}

// Shop returns the configured shop profile.
func (s *BillingService) Shop() entity.ShopProfile {
	return s.shop
}

func (s *BillingService) invoiceDocument(input *GenerateBillInput, items []entity.BillItem, total decimal.Decimal, status enum.PaymentStatus, issuedAt time.Time) *invoice.Document {
	lines := make([]invoice.Line, len(items))
	for i, item := range items {
		lines[i] = invoice.Line{
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  item.Quantity,
			Total:     item.Total,
		}
	}
	return &invoice.Document{
		Shop: invoice.Shop{
			Name:           s.shop.Name,
			Owner:          s.shop.Owner,
			Address:        s.shop.Address,
			Phone:          s.shop.Phone,
			Email:          s.shop.Email,
			CurrencySymbol: s.shop.CurrencySymbol,
		},
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		Lines:         lines,
		Total:         total,
		Paid:          status == enum.PaymentStatusPaid,
		Notes:         input.Notes,
		IssuedAt:      issuedAt,
	}
}
