package repository

import (
	"app/internal/domain/model"
	"context"
)

// 会員プロフィールを保存・取得する窓口
type CustomerRepository interface {
	Create(ctx context.Context, c model.Customer) (model.Customer, error)
	FindByID(ctx context.Context, customerID int64) (model.Customer, error)

	//リクエスト者のUserIDからプロフィールを引く
	FindByUserID(ctx context.Context, userID int64) (model.Customer, error)

	Update(ctx context.Context, c model.Customer) error
	List(ctx context.Context, page int, limit int) ([]model.Customer, int64, error)
}
