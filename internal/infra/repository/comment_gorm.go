package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type CommentGormRepository struct {
	db *gorm.DB
}

func NewCommentGormRepository(db *gorm.DB) *CommentGormRepository {
	return &CommentGormRepository{db: db}
}

func (r *CommentGormRepository) ListByBookID(ctx context.Context, bookID int64, onlyApproved bool) ([]model.Comment, error) {
	q := r.db.WithContext(ctx).Where("book_id = ?", bookID)
	if onlyApproved {
		q = q.Where("status = ?", model.CommentStatusApproved)
	}

	var items []model.Comment
	if err := q.Order("id desc").Find(&items).Error; err != nil {
		return []model.Comment{}, err
	}
	return items, nil
}

func (r *CommentGormRepository) Create(ctx context.Context, c model.Comment) (model.Comment, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Comment{}, err
	}
	return c, nil
}

func (r *CommentGormRepository) UpdateStatus(ctx context.Context, commentID int64, status model.CommentStatus) error {
	res := r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", commentID).
		Update("status", status)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CommentGormRepository) DeleteByID(ctx context.Context, commentID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Comment{}, commentID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
