package repository

import (
	"context"

	"github.com/primeretail/billing-api/internal/domain/entity"
)

// ItemRepository defines the interface for catalog data operations.
//
// Create and CreateBatch assign ids as max(existing)+1, or 1 for an empty
// catalog. Update and Delete fail with a not-found error for unknown ids.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) (*entity.Item, error)
	CreateBatch(ctx context.Context, items []entity.Item) ([]entity.Item, error)
	List(ctx context.Context) ([]entity.Item, error)
	GetByID(ctx context.Context, id int) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id int) error
}
