package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/primeretail/billing-api/internal/domain/entity"
	domainRepo "github.com/primeretail/billing-api/internal/domain/repository"
	"github.com/primeretail/billing-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

var itemHeader = []string{"id", "name", "price"}

type csvItemRepository struct {
	table *csvTable
}

// NewCSVItemRepository opens (or creates) the catalog table at path. A fresh
// file is seeded with the provided items.
func NewCSVItemRepository(path string, seed []entity.Item) (domainRepo.ItemRepository, error) {
	table, created, err := newCSVTable(path, itemHeader)
	if err != nil {
		return nil, err
	}
	repo := &csvItemRepository{table: table}
	if created && len(seed) > 0 {
		if _, err := repo.CreateBatch(context.Background(), seed); err != nil {
			return nil, err
		}
	}
	return repo, nil
}

func (r *csvItemRepository) Create(ctx context.Context, item *entity.Item) (*entity.Item, error) {
	created, err := r.CreateBatch(ctx, []entity.Item{*item})
	if err != nil {
		return nil, err
	}
	return &created[0], nil
}

func (r *csvItemRepository) CreateBatch(ctx context.Context, items []entity.Item) ([]entity.Item, error) {
	stored := append([]entity.Item(nil), items...)
	err := r.table.replace(func(rows [][]string) ([][]string, error) {
		maxID := 0
		for _, row := range rows {
			if len(row) == 0 {
				continue
			}
			if id, err := strconv.Atoi(strings.TrimSpace(row[0])); err == nil && id > maxID {
				maxID = id
			}
		}
		for i := range stored {
			maxID++
			stored[i].ID = maxID
			rows = append(rows, encodeItemRow(&stored[i]))
		}
		return rows, nil
	})
	if err != nil {
		return nil, apperror.NewPersistenceError("create items", err)
	}
	return stored, nil
}

func (r *csvItemRepository) List(ctx context.Context) ([]entity.Item, error) {
	rows, err := r.table.rows()
	if err != nil {
		return nil, apperror.NewPersistenceError("read catalog", err)
	}

	items := make([]entity.Item, 0, len(rows))
	for _, row := range rows {
		item, err := decodeItemRow(row)
		if err != nil {
			return nil, apperror.NewPersistenceError("decode catalog row", err)
		}
		items = append(items, *item)
	}
	return items, nil
}

func (r *csvItemRepository) GetByID(ctx context.Context, id int) (*entity.Item, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

func (r *csvItemRepository) Update(ctx context.Context, item *entity.Item) error {
	found := false
	err := r.table.replace(func(rows [][]string) ([][]string, error) {
		for i, row := range rows {
			if len(row) > 0 && strings.TrimSpace(row[0]) == strconv.Itoa(item.ID) {
				rows[i] = encodeItemRow(item)
				found = true
				break
			}
		}
		if !found {
			return nil, apperror.NewNotFoundError("Item")
		}
		return rows, nil
	})
	if err != nil {
		if apperror.IsAppError(err) {
			return err
		}
		return apperror.NewPersistenceError("update item", err)
	}
	return nil
}

func (r *csvItemRepository) Delete(ctx context.Context, id int) error {
	found := false
	err := r.table.replace(func(rows [][]string) ([][]string, error) {
		kept := rows[:0]
		for _, row := range rows {
			if len(row) > 0 && strings.TrimSpace(row[0]) == strconv.Itoa(id) {
				found = true
				continue
			}
			kept = append(kept, row)
		}
		if !found {
			return nil, apperror.NewNotFoundError("Item")
		}
		return kept, nil
	})
	if err != nil {
		if apperror.IsAppError(err) {
			return err
		}
		return apperror.NewPersistenceError("delete item", err)
	}
	return nil
}

func encodeItemRow(i *entity.Item) []string {
	return []string{strconv.Itoa(i.ID), i.Name, i.Price.StringFixed(2)}
}

func decodeItemRow(row []string) (*entity.Item, error) {
	if len(row) < len(itemHeader) {
		return nil, fmt.Errorf("short catalog row: %d columns", len(row))
	}
	id, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return nil, fmt.Errorf("bad item id %q: %w", row[0], err)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(row[2]))
	if err != nil {
		return nil, fmt.Errorf("bad item price %q: %w", row[2], err)
	}
	return &entity.Item{ID: id, Name: row[1], Price: price}, nil
}
