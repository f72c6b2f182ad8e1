package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AddressGormRepository struct {
	db *gorm.DB
}

func NewAddressGormRepository(db *gorm.DB) *AddressGormRepository {
	return &AddressGormRepository{db: db}
}

func (r *AddressGormRepository) FindByCustomerID(ctx context.Context, customerID int64) (model.Address, error) {
	var a model.Address
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Address{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Address{}, err
	}
	return a, nil
}

// 1:1なのでON CONFLICTで上書き（重複作成はエラーにしない）
func (r *AddressGormRepository) Upsert(ctx context.Context, address model.Address) (model.Address, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"province", "city", "street", "detail", "updated_at"}),
		}).
		Create(&address).Error
	if err != nil {
		return model.Address{}, err
	}
	return address, nil
}
