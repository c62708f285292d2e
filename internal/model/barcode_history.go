package model

import "time"

// BarcodeHistory keeps one row per barcode: a scan counter plus the most
// recent metadata snapshot. Snapshot fields are last-write-wins, not a merge.
type BarcodeHistory struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	EAN          string    `gorm:"column:ean;type:varchar(50);uniqueIndex;not null" json:"ean"`
	Name         string    `gorm:"type:varchar(200)" json:"name"`
	Category     string    `gorm:"type:varchar(50)" json:"category"`
	WeightVolume string    `gorm:"type:varchar(50)" json:"weight_volume"`
	Tags         string    `gorm:"type:varchar(200)" json:"tags"`
	IsVegetarian bool      `gorm:"default:false" json:"is_vegetarian"`
	IsVegan      bool      `gorm:"default:false" json:"is_vegan"`
	ScanCount    int       `gorm:"default:1" json:"scan_count"`
	LastScanned  time.Time `json:"last_scanned"`
}

func (BarcodeHistory) TableName() string {
	return "barcode_history"
}

// BarcodeSnapshot carries the metadata written into the history on a touch.
type BarcodeSnapshot struct {
	EAN          string
	Name         string
	Category     string
	WeightVolume string
	Tags         string
	IsVegetarian bool
	IsVegan      bool
}
