package model

import "time"

type CommentStatus string

const (
	CommentStatusWaiting     CommentStatus = "WAITING"
	CommentStatusApproved    CommentStatus = "APPROVED"
	CommentStatusNotApproved CommentStatus = "NOT_APPROVED"
)

// 書籍レビュー（公開側はAPPROVEDのみ見える）
type Comment struct {
	ID        int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	BookID    int64         `gorm:"not null;index" json:"book_id"`
	Body      string        `gorm:"type:text;not null" json:"body"`
	Status    CommentStatus `gorm:"type:varchar(20);not null;default:'WAITING'" json:"status"`
	CreatedAt time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time     `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
