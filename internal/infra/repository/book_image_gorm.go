package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type BookImageGormRepository struct {
	db *gorm.DB
}

func NewBookImageGormRepository(db *gorm.DB) *BookImageGormRepository {
	return &BookImageGormRepository{db: db}
}

func (r *BookImageGormRepository) ListByBookID(ctx context.Context, bookID int64) ([]model.BookImage, error) {
	var items []model.BookImage
	err := r.db.WithContext(ctx).Where("book_id = ?", bookID).Order("id asc").Find(&items).Error
	if err != nil {
		return []model.BookImage{}, err
	}
	return items, nil
}

func (r *BookImageGormRepository) Create(ctx context.Context, img model.BookImage) (model.BookImage, error) {
	if err := r.db.WithContext(ctx).Create(&img).Error; err != nil {
		return model.BookImage{}, err
	}
	return img, nil
}

func (r *BookImageGormRepository) DeleteByID(ctx context.Context, imageID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.BookImage{}, imageID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
