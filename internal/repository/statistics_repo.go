package repository

import (
	"time"

	"go-kitchen-inventory/internal/model"

	"gorm.io/gorm"
)

type StatisticsRepository interface {
	Totals() (products int64, items int64, value float64, err error)
	CountExpiringBetween(today, until string) (int64, error)
	CountExpiredBefore(today string) (int64, error)
	ByLocation() ([]model.LocationStats, error)
	AdditionsSince(since time.Time) (count int64, value float64, err error)
	Waste(today string) (model.WasteStats, error)
	ByCategory() ([]model.CategoryStats, error)
	TopScanned(limit int) ([]model.TopScannedEntry, error)
	AvgPriceByCategory() ([]model.CategoryAvgPrice, error)
}

type statisticsRepo struct {
	db *gorm.DB
}

func NewStatisticsRepo(db *gorm.DB) StatisticsRepository {
	return &statisticsRepo{db}
}

func (r *statisticsRepo) Totals() (int64, int64, float64, error) {
	var products, items int64
	var value float64
	row := r.db.Model(&model.Product{}).
		Select("COUNT(*), COALESCE(SUM(quantity), 0), COALESCE(SUM(price * quantity), 0)").
		Row()
	err := row.Scan(&products, &items, &value)
	return products, items, value, err
}

func (r *statisticsRepo) CountExpiringBetween(today, until string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).
		Where("expiry_date != '' AND expiry_date >= ? AND expiry_date <= ?", today, until).
		Count(&count).Error
	return count, err
}

func (r *statisticsRepo) CountExpiredBefore(today string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).
		Where("expiry_date != '' AND expiry_date < ?", today).
		Count(&count).Error
	return count, err
}

func (r *statisticsRepo) ByLocation() ([]model.LocationStats, error) {
	results := []model.LocationStats{}
	rows, err := r.db.Model(&model.Product{}).
		Select("location, COUNT(*), COALESCE(SUM(quantity), 0)").
		Group("location").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s model.LocationStats
		if err := rows.Scan(&s.Location, &s.Products, &s.Items); err != nil {
			return nil, err
		}
		results = append(results, s)
	}
	return results, rows.Err()
}

func (r *statisticsRepo) AdditionsSince(since time.Time) (int64, float64, error) {
	var count int64
	var value float64
	row := r.db.Model(&model.Product{}).
		Select("COUNT(*), COALESCE(SUM(price * quantity), 0)").
		Where("created_at >= ?", since).
		Row()
	err := row.Scan(&count, &value)
	return count, value, err
}

func (r *statisticsRepo) Waste(today string) (model.WasteStats, error) {
	var w model.WasteStats
	row := r.db.Model(&model.Product{}).
		Select("COUNT(*), COALESCE(SUM(price * quantity), 0)").
		Where("expiry_date != '' AND expiry_date < ?", today).
		Row()
	err := row.Scan(&w.Count, &w.Value)
	return w, err
}

func (r *statisticsRepo) ByCategory() ([]model.CategoryStats, error) {
	results := []model.CategoryStats{}
	rows, err := r.db.Model(&model.Product{}).
		Select("category, COUNT(*), COALESCE(SUM(quantity), 0)").
		Where("category IS NOT NULL AND category != ''").
		Group("category").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s model.CategoryStats
		if err := rows.Scan(&s.Category, &s.Count, &s.Items); err != nil {
			return nil, err
		}
		results = append(results, s)
	}
	return results, rows.Err()
}

func (r *statisticsRepo) TopScanned(limit int) ([]model.TopScannedEntry, error) {
	var entries []model.BarcodeHistory
	err := r.db.Order("scan_count DESC").Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, err
	}

	results := make([]model.TopScannedEntry, 0, len(entries))
	for _, e := range entries {
		results = append(results, model.TopScannedEntry{
			Name:        e.Name,
			Count:       e.ScanCount,
			LastScanned: e.LastScanned,
		})
	}
	return results, nil
}

func (r *statisticsRepo) AvgPriceByCategory() ([]model.CategoryAvgPrice, error) {
	results := []model.CategoryAvgPrice{}
	rows, err := r.db.Model(&model.Product{}).
		Select("category, AVG(price)").
		Where("category IS NOT NULL AND category != '' AND price > 0").
		Group("category").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s model.CategoryAvgPrice
		if err := rows.Scan(&s.Category, &s.AvgPrice); err != nil {
			return nil, err
		}
		results = append(results, s)
	}
	return results, rows.Err()
}
