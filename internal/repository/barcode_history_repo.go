package repository

import (
	"errors"
	"time"

	"go-kitchen-inventory/internal/model"

	"gorm.io/gorm"
)

type BarcodeHistoryRepository interface {
	// Touch runs inside the caller's transaction so the read-modify-write on
	// the counter cannot lose increments.
	Touch(tx *gorm.DB, snap model.BarcodeSnapshot) error
	FindRecent(limit int) ([]model.BarcodeHistory, error)
}

type barcodeHistoryRepo struct {
	db *gorm.DB
}

func NewBarcodeHistoryRepo(db *gorm.DB) BarcodeHistoryRepository {
	return &barcodeHistoryRepo{db}
}

// Touch upserts the one history row for a barcode: first sighting inserts
// with scan_count 1, every later sighting increments the counter and
// overwrites the whole snapshot, blanks included. Last write wins.
func (r *barcodeHistoryRepo) Touch(tx *gorm.DB, snap model.BarcodeSnapshot) error {
	var existing model.BarcodeHistory
	err := tx.Where("ean = ?", snap.EAN).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(&model.BarcodeHistory{
			EAN:          snap.EAN,
			Name:         snap.Name,
			Category:     snap.Category,
			WeightVolume: snap.WeightVolume,
			Tags:         snap.Tags,
			IsVegetarian: snap.IsVegetarian,
			IsVegan:      snap.IsVegan,
			ScanCount:    1,
			LastScanned:  time.Now(),
		}).Error
	}
	if err != nil {
		return err
	}

	return tx.Model(&existing).Updates(map[string]interface{}{
		"scan_count":    existing.ScanCount + 1,
		"last_scanned":  time.Now(),
		"name":          snap.Name,
		"category":      snap.Category,
		"weight_volume": snap.WeightVolume,
		"tags":          snap.Tags,
		"is_vegetarian": snap.IsVegetarian,
		"is_vegan":      snap.IsVegan,
	}).Error
}

func (r *barcodeHistoryRepo) FindRecent(limit int) ([]model.BarcodeHistory, error) {
	var entries []model.BarcodeHistory
	err := r.db.Order("last_scanned DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
