package model

import "time"

// ShoppingItem is a single row of the shopping list. Items created by
// auto-generation carry a marker note so the UI can tell them apart.
type ShoppingItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(200);not null" json:"name"`
	Quantity  int       `gorm:"default:1" json:"quantity"`
	Category  string    `gorm:"type:varchar(50)" json:"category"`
	Checked   bool      `gorm:"default:false" json:"checked"`
	Notes     string    `gorm:"type:varchar(500)" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

func (ShoppingItem) TableName() string {
	return "shopping_list"
}
