package repository

import (
	"app/internal/domain/model"
	"context"
)

type BookImageRepository interface {
	ListByBookID(ctx context.Context, bookID int64) ([]model.BookImage, error)
	Create(ctx context.Context, img model.BookImage) (model.BookImage, error)
	DeleteByID(ctx context.Context, imageID int64) error
}
