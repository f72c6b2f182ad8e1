package model

type Discount struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Amount      float64 `gorm:"not null" json:"amount"`
	Description string  `gorm:"type:text" json:"description"`
}

// BookとDiscountの多対多（中間テーブルを明示する）
type BookDiscount struct {
	BookID     int64 `gorm:"primaryKey" json:"book_id"`
	DiscountID int64 `gorm:"primaryKey" json:"discount_id"`
}
