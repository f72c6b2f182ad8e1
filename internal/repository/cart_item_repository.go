package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartItemRepository interface {
	ListByCartID(ctx context.Context, cartID string) ([]model.CartItem, error)
	CountByCartID(ctx context.Context, cartID string) (int64, error)

	// 同一書籍は数量加算。結果の明細を必ず返す。
	UpsertByCartAndBook(ctx context.Context, cartID string, bookID int64, addQty int64) (model.CartItem, error)

	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error
	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)
}
