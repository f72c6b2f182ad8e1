package model

type Category struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title          string `gorm:"type:varchar(255);not null" json:"title"`
	FeaturedBookID *int64 `json:"featured_book_id,omitempty"`
}
