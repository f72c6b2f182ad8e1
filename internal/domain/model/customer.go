package model

import "time"

// 会員プロフィール（Userと1:1）
// 会員登録と同じトランザクションで必ず作られる
type Customer struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64      `gorm:"not null;uniqueIndex" json:"user_id"`
	Phone     string     `gorm:"type:varchar(20)" json:"phone"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	CreatedAt time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
