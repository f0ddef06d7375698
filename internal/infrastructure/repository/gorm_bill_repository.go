package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/primeretail/billing-api/internal/domain/entity"
	domainRepo "github.com/primeretail/billing-api/internal/domain/repository"
	"github.com/primeretail/billing-api/pkg/apperror"
	"gorm.io/gorm"
)

type gormBillRepository struct {
	db *gorm.DB
}

// NewGormBillRepository creates a ledger backed by a relational table. Id
// assignment runs inside a transaction, so concurrent appends cannot reuse
// an id.
func NewGormBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &gormBillRepository{db: db}
}

func (r *gormBillRepository) Append(ctx context.Context, bill *entity.Bill) (*entity.Bill, error) {
	stored := *bill
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxID int
		if err := tx.Model(&entity.Bill{}).
			Select("COALESCE(MAX(bill_id), 0)").
			Scan(&maxID).Error; err != nil {
			return err
		}
		stored.BillID = maxID + 1
		return tx.Create(&stored).Error
	})
	if err != nil {
		return nil, apperror.NewPersistenceError("append bill", err)
	}
	return &stored, nil
}

func (r *gormBillRepository) List(ctx context.Context) ([]entity.Bill, error) {
	var bills []entity.Bill
	if err := r.db.WithContext(ctx).Order("bill_id ASC").Find(&bills).Error; err != nil {
		return nil, apperror.NewPersistenceError("read bill ledger", err)
	}
	return bills, nil
}

func (r *gormBillRepository) DeleteByID(ctx context.Context, id string) error {
	billID, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return apperror.NewNotFoundError("Bill " + id)
	}

	res := r.db.WithContext(ctx).Delete(&entity.Bill{}, "bill_id = ?", billID)
	if res.Error != nil {
		return apperror.NewPersistenceError("delete bill", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NewNotFoundError("Bill " + id)
	}
	return nil
}
