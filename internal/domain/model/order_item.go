package model

import "time"

// 注文明細
// unit_price は確定時点の価格スナップショット。後から書籍の価格が
// 変わってもこの値は変わらない。(order_id, book_id) は一意。
type OrderItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64     `gorm:"not null;uniqueIndex:idx_order_book" json:"order_id"`
	BookID    int64     `gorm:"not null;uniqueIndex:idx_order_book" json:"book_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	UnitPrice int64     `gorm:"not null" json:"unit_price"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
