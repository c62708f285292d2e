package model

import "time"

// Product is a perishable item in the kitchen inventory. Expiry and purchase
// dates are stored as ISO date strings so they compare lexically in SQL.
type Product struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	EAN          string    `gorm:"column:ean;type:varchar(50)" json:"ean"`
	Name         string    `gorm:"type:varchar(200);not null;index:idx_name" json:"name"`
	ExpiryDate   string    `gorm:"type:varchar(20);index:idx_expiry_date" json:"expiry_date"`
	PurchaseDate string    `gorm:"type:varchar(20)" json:"purchase_date"`
	Location     string    `gorm:"type:varchar(100);index:idx_location" json:"location"`
	Quantity     int       `gorm:"default:1" json:"quantity"`
	WeightVolume string    `gorm:"type:varchar(50)" json:"weight_volume"`
	Notes        string    `gorm:"type:varchar(1000)" json:"notes"`
	IsVegetarian bool      `gorm:"default:false" json:"is_vegetarian"`
	IsVegan      bool      `gorm:"default:false" json:"is_vegan"`
	Price        float64   `gorm:"default:0" json:"price"`
	ImageURL     string    `gorm:"type:varchar(500)" json:"image_url"`
	Category     string    `gorm:"type:varchar(50)" json:"category"`
	Tags         string    `gorm:"type:varchar(200)" json:"tags"`
	ScanCount    int       `gorm:"default:0" json:"scan_count"`
	LastScanned  string    `gorm:"type:varchar(50)" json:"last_scanned"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}
