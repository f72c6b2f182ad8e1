package model

type BookImage struct {
	ID     int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	BookID int64  `gorm:"not null;index" json:"book_id"`
	URL    string `gorm:"type:varchar(512);not null" json:"url"`
}
