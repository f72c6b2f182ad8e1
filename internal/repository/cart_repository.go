package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartRepository interface {
	Create(ctx context.Context, cart model.Cart) (model.Cart, error)
	FindByID(ctx context.Context, cartID string) (model.Cart, error)

	//カート削除（明細も一緒に消す）
	Delete(ctx context.Context, cartID string) error
}
