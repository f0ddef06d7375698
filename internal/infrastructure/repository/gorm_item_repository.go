package repository

import (
	"context"
	"errors"

	"github.com/primeretail/billing-api/internal/domain/entity"
	domainRepo "github.com/primeretail/billing-api/internal/domain/repository"
	"github.com/primeretail/billing-api/pkg/apperror"
	"gorm.io/gorm"
)

type gormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a catalog backed by a relational table.
func NewGormItemRepository(db *gorm.DB) domainRepo.ItemRepository {
	return &gormItemRepository{db: db}
}

func (r *gormItemRepository) Create(ctx context.Context, item *entity.Item) (*entity.Item, error) {
	created, err := r.CreateBatch(ctx, []entity.Item{*item})
	if err != nil {
		return nil, err
	}
	return &created[0], nil
}

func (r *gormItemRepository) CreateBatch(ctx context.Context, items []entity.Item) ([]entity.Item, error) {
	stored := append([]entity.Item(nil), items...)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxID int
		if err := tx.Model(&entity.Item{}).
			Select("COALESCE(MAX(id), 0)").
			Scan(&maxID).Error; err != nil {
			return err
		}
		for i := range stored {
			maxID++
			stored[i].ID = maxID
		}
		return tx.Create(&stored).Error
	})
	if err != nil {
		return nil, apperror.NewPersistenceError("create items", err)
	}
	return stored, nil
}

func (r *gormItemRepository) List(ctx context.Context) ([]entity.Item, error) {
	var items []entity.Item
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, apperror.NewPersistenceError("read catalog", err)
	}
	return items, nil
}

func (r *gormItemRepository) GetByID(ctx context.Context, id int) (*entity.Item, error) {
	var item entity.Item
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.NewPersistenceError("read item", err)
	}
	return &item, nil
}

func (r *gormItemRepository) Update(ctx context.Context, item *entity.Item) error {
	res := r.db.WithContext(ctx).Model(&entity.Item{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{"name": item.Name, "price": item.Price})
	if res.Error != nil {
		return apperror.NewPersistenceError("update item", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NewNotFoundError("Item")
	}
	return nil
}

func (r *gormItemRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&entity.Item{}, "id = ?", id)
	if res.Error != nil {
		return apperror.NewPersistenceError("delete item", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NewNotFoundError("Item")
	}
	return nil
}
