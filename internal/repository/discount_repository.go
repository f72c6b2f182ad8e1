package repository

import (
	"app/internal/domain/model"
	"context"
)

type DiscountRepository interface {
	List(ctx context.Context) ([]model.Discount, error)
	FindByID(ctx context.Context, id int64) (model.Discount, error)
	Create(ctx context.Context, d model.Discount) (model.Discount, error)
	Update(ctx context.Context, d model.Discount) error
	Delete(ctx context.Context, id int64) error

	//中間テーブル（book_discounts）の付け替え
	ReplaceBooks(ctx context.Context, discountID int64, bookIDs []int64) error
	ListBookIDs(ctx context.Context, discountID int64) ([]int64, error)
}
