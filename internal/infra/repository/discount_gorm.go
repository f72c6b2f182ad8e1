package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type DiscountGormRepository struct {
	db *gorm.DB
}

func NewDiscountGormRepository(db *gorm.DB) *DiscountGormRepository {
	return &DiscountGormRepository{db: db}
}

func (r *DiscountGormRepository) List(ctx context.Context) ([]model.Discount, error) {
	var items []model.Discount
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return []model.Discount{}, err
	}
	return items, nil
}

func (r *DiscountGormRepository) FindByID(ctx context.Context, id int64) (model.Discount, error) {
	var d model.Discount
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Discount{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Discount{}, err
	}
	return d, nil
}

func (r *DiscountGormRepository) Create(ctx context.Context, d model.Discount) (model.Discount, error) {
	if err := r.db.WithContext(ctx).Create(&d).Error; err != nil {
		return model.Discount{}, err
	}
	return d, nil
}

func (r *DiscountGormRepository) Update(ctx context.Context, d model.Discount) error {
	res := r.db.WithContext(ctx).
		Model(&model.Discount{}).
		Where("id = ?", d.ID).
		Updates(map[string]interface{}{
			"amount":      d.Amount,
			"description": d.Description,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *DiscountGormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("discount_id = ?", id).Delete(&model.BookDiscount{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&model.Discount{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}
		return nil
	})
}

// 付いている書籍を丸ごと入れ替える
func (r *DiscountGormRepository) ReplaceBooks(ctx context.Context, discountID int64, bookIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("discount_id = ?", discountID).Delete(&model.BookDiscount{}).Error; err != nil {
			return err
		}

		if len(bookIDs) == 0 {
			return nil
		}

		rows := make([]model.BookDiscount, 0, len(bookIDs))
		for _, id := range bookIDs {
			rows = append(rows, model.BookDiscount{BookID: id, DiscountID: discountID})
		}
		return tx.Create(&rows).Error
	})
}

func (r *DiscountGormRepository) ListBookIDs(ctx context.Context, discountID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&model.BookDiscount{}).
		Where("discount_id = ?", discountID).
		Pluck("book_id", &ids).Error
	if err != nil {
		return []int64{}, err
	}
	return ids, nil
}
