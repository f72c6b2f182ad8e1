package model

import "time"

// 匿名カート。主キーはUUIDトークン。
// 注文確定に成功した瞬間に明細ごと削除される
type Cart struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"cart_id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
