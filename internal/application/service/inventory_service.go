package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/primeretail/billing-api/internal/domain/entity"
	"github.com/primeretail/billing-api/internal/domain/repository"
	"github.com/primeretail/billing-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// InventoryService handles catalog CRUD and bulk imports.
type InventoryService struct {
	itemRepo repository.ItemRepository
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(itemRepo repository.ItemRepository) *InventoryService {
	return &InventoryService{itemRepo: itemRepo}
}

// ItemInput carries the editable fields of a catalog item.
type ItemInput struct {
	Name  string
	Price float64
}

func (in *ItemInput) validate() (*entity.Item, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperror.NewValidationError("Item name is required",
			apperror.FieldError{Field: "name", Message: "must not be empty"})
	}
	price := decimal.NewFromFloat(in.Price)
	if price.IsNegative() {
		return nil, apperror.NewValidationError("Invalid item price",
			apperror.FieldError{Field: "price", Message: "must not be negative"})
	}
	return &entity.Item{Name: in.Name, Price: price}, nil
}

// ListItems returns the full catalog.
func (s *InventoryService) ListItems(ctx context.Context) ([]entity.Item, error) {
	return s.itemRepo.List(ctx)
}

// CreateItem validates and stores a new catalog item.
func (s *InventoryService) CreateItem(ctx context.Context, input *ItemInput) (*entity.Item, error) {
	item, err := input.validate()
	if err != nil {
		return nil, err
	}
	return s.itemRepo.Create(ctx, item)
}

// UpdateItem replaces the name and price of an existing item.
func (s *InventoryService) UpdateItem(ctx context.Context, id int, input *ItemInput) (*entity.Item, error) {
	item, err := input.validate()
	if err != nil {
		return nil, err
	}
	item.ID = id
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes an item by id.
func (s *InventoryService) DeleteItem(ctx context.Context, id int) error {
	return s.itemRepo.Delete(ctx, id)
}

// ImportResult reports the outcome of a bulk import.
type ImportResult struct {
	Imported int `json:"imported"`
}

// ImportItems bulk-creates items from an uploaded CSV. The file must carry
// name and price columns; ids continue from the current maximum.
func (s *InventoryService) ImportItems(ctx context.Context, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid CSV file: " + err.Error())
	}
	if len(records) == 0 {
		return nil, apperror.NewBadRequestError("CSV file is empty")
	}

	nameCol, priceCol := -1, -1
	for i, col := range records[0] {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "name":
			nameCol = i
		case "price":
			priceCol = i
		}
	}
	if nameCol < 0 || priceCol < 0 {
		return nil, apperror.NewBadRequestError("CSV must contain name and price columns")
	}

	items := make([]entity.Item, 0, len(records)-1)
	for n, row := range records[1:] {
		if len(row) <= nameCol || len(row) <= priceCol {
			continue
		}
		name := strings.TrimSpace(row[nameCol])
		if name == "" {
			continue
		}
		price, err := decimal.NewFromString(strings.TrimSpace(row[priceCol]))
		if err != nil || price.IsNegative() {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Invalid price on row %d", n+2))
		}
		items = append(items, entity.Item{Name: name, Price: price})
	}
	if len(items) == 0 {
		return nil, apperror.NewBadRequestError("CSV contains no importable rows")
	}

	if _, err := s.itemRepo.CreateBatch(ctx, items); err != nil {
		return nil, err
	}
	return &ImportResult{Imported: len(items)}, nil
}
