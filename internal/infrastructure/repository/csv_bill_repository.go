package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/primeretail/billing-api/internal/domain/entity"
	"github.com/primeretail/billing-api/internal/domain/enum"
	domainRepo "github.com/primeretail/billing-api/internal/domain/repository"
	"github.com/primeretail/billing-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// billHeader is the ledger's on-disk column layout. Kept stable for
// compatibility with existing bills.csv files.
var billHeader = []string{
	"bill_id", "date", "customer_name", "customer_phone",
	"customer_email", "items", "total", "payment_status", "notes",
}

type csvBillRepository struct {
	table *csvTable
}

// NewCSVBillRepository opens (or creates) the bill ledger at path.
func NewCSVBillRepository(path string) (domainRepo.BillRepository, error) {
	table, _, err := newCSVTable(path, billHeader)
	if err != nil {
		return nil, err
	}
	return &csvBillRepository{table: table}, nil
}

func (r *csvBillRepository) Append(ctx context.Context, bill *entity.Bill) (*entity.Bill, error) {
	stored := *bill
	err := r.table.replace(func(rows [][]string) ([][]string, error) {
		// Max-based assignment keeps ids unique even after deletions.
		maxID := 0
		for _, row := range rows {
			if len(row) == 0 {
				continue
			}
			if id, err := strconv.Atoi(strings.TrimSpace(row[0])); err == nil && id > maxID {
				maxID = id
			}
		}
		stored.BillID = maxID + 1

		row, err := encodeBillRow(&stored)
		if err != nil {
			return nil, err
		}
		return append(rows, row), nil
	})
	if err != nil {
		return nil, apperror.NewPersistenceError("append bill", err)
	}
	return &stored, nil
}

func (r *csvBillRepository) List(ctx context.Context) ([]entity.Bill, error) {
	rows, err := r.table.rows()
	if err != nil {
		return nil, apperror.NewPersistenceError("read bill ledger", err)
	}

	bills := make([]entity.Bill, 0, len(rows))
	for _, row := range rows {
		bill, err := decodeBillRow(row)
		if err != nil {
			return nil, apperror.NewPersistenceError("decode bill row", err)
		}
		bills = append(bills, *bill)
	}
	return bills, nil
}

func (r *csvBillRepository) DeleteByID(ctx context.Context, id string) error {
	// String-normalized comparison tolerates type drift between the storage
	// encoding and the request path parameter.
	want := strings.TrimSpace(id)
	found := false

	err := r.table.replace(func(rows [][]string) ([][]string, error) {
		kept := rows[:0]
		for _, row := range rows {
			if len(row) > 0 && strings.TrimSpace(row[0]) == want {
				found = true
				continue
			}
			kept = append(kept, row)
		}
		if !found {
			return nil, apperror.NewNotFoundError("Bill " + want)
		}
		return kept, nil
	})
	if err != nil {
		if apperror.IsAppError(err) {
			return err
		}
		return apperror.NewPersistenceError("delete bill", err)
	}
	return nil
}

func encodeBillRow(b *entity.Bill) ([]string, error) {
	items, err := json.Marshal(b.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal items snapshot: %w", err)
	}
	return []string{
		strconv.Itoa(b.BillID),
		b.IssuedAt.Format(entity.LedgerTimeFormat),
		b.CustomerName,
		b.CustomerPhone,
		b.CustomerEmail,
		string(items),
		b.Total.StringFixed(2),
		b.PaymentStatus.String(),
		b.Notes,
	}, nil
}

func decodeBillRow(row []string) (*entity.Bill, error) {
	if len(row) < len(billHeader) {
		return nil, fmt.Errorf("short bill row: %d columns", len(row))
	}

	id, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return nil, fmt.Errorf("bad bill id %q: %w", row[0], err)
	}
	issuedAt, err := time.ParseInLocation(entity.LedgerTimeFormat, row[1], time.Local)
	if err != nil {
		return nil, fmt.Errorf("bad bill date %q: %w", row[1], err)
	}
	var items []entity.BillItem
	if row[5] != "" {
		if err := json.Unmarshal([]byte(row[5]), &items); err != nil {
			return nil, fmt.Errorf("parse items snapshot: %w", err)
		}
	}
	total, err := decimal.NewFromString(row[6])
	if err != nil {
		return nil, fmt.Errorf("bad bill total %q: %w", row[6], err)
	}

	return &entity.Bill{
		BillID:        id,
		IssuedAt:      issuedAt,
		CustomerName:  row[2],
		CustomerPhone: row[3],
		CustomerEmail: row[4],
		Items:         items,
		Total:         total,
		PaymentStatus: enum.PaymentStatus(row[7]),
		Notes:         row[8],
	}, nil
}
