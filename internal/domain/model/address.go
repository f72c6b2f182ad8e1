package model

import "time"

// 配送先住所（Customerと1:1、主キー＝customer_id）
// 住所はプロフィール経由でのみ作成・更新する
type Address struct {
	CustomerID int64 `gorm:"primaryKey" json:"customer_id"`

	//都道府県
	Province string `gorm:"type:varchar(100);not null" json:"province"`

	//市区町村
	City string `gorm:"type:varchar(100);not null" json:"city"`

	//番地など
	Street string `gorm:"type:varchar(100);not null" json:"street"`

	//建物名・部屋番号など
	Detail string `gorm:"type:text" json:"detail"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
