package repository

import (
	"app/internal/domain/model"
	"context"
)

// 住所(Address)はCustomerと1:1。プロフィール経由でのみ触る。
type AddressRepository interface {
	FindByCustomerID(ctx context.Context, customerID int64) (model.Address, error)

	//無ければ作成、あれば更新（重複エラーにはしない）
	Upsert(ctx context.Context, address model.Address) (model.Address, error)
}
