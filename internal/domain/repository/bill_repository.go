package repository

import (
	"context"

	"github.com/primeretail/billing-api/internal/domain/entity"
)

// BillRepository defines the interface for bill ledger operations.
//
// Append assigns the bill id (max existing id + 1, or 1 for an empty ledger)
// at call time and returns the stored row. List returns rows in issuance
// order and always reflects the latest persisted state. DeleteByID removes a
// row permanently and fails with a not-found error when the id is absent.
type BillRepository interface {
	Append(ctx context.Context, bill *entity.Bill) (*entity.Bill, error)
	List(ctx context.Context) ([]entity.Bill, error)
	DeleteByID(ctx context.Context, id string) error
}
