package repository

import (
	"go-kitchen-inventory/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	FindAll() ([]model.Product, error)
	FindByID(id uint) (*model.Product, error)
	DeleteBatch(ids []uint) error
	UpdateLocationBatch(ids []uint, location string) error
	FindByEAN(ean string) ([]model.Product, error)
	SearchByName(name string, limit int) ([]model.Product, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	return &product, err
}

// DeleteBatch removes all given ids in one statement. It intentionally does
// not fold metadata into barcode history or remove image files; only the
// single-product delete path does that.
func (r *productRepo) DeleteBatch(ids []uint) error {
	return r.db.Delete(&model.Product{}, "id IN ?", ids).Error
}

func (r *productRepo) UpdateLocationBatch(ids []uint, location string) error {
	return r.db.Model(&model.Product{}).
		Where("id IN ?", ids).
		Update("location", location).Error
}

func (r *productRepo) FindByEAN(ean string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("ean = ? AND ean != ''", ean).Find(&products).Error
	return products, err
}

func (r *productRepo) SearchByName(name string, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("LOWER(name) = LOWER(?)", name).Limit(limit).Find(&products).Error
	return products, err
}
