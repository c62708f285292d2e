package repository

import (
	"go-kitchen-inventory/internal/model"

	"gorm.io/gorm"
)

type ShoppingListRepository interface {
	FindAll() ([]model.ShoppingItem, error)
	FindByID(id uint) (*model.ShoppingItem, error)
	Create(item *model.ShoppingItem) error
	Update(item *model.ShoppingItem) error
	Delete(id uint) error
	ClearChecked() error
	// RestockCandidates runs inside the caller's transaction during list
	// generation.
	RestockCandidates(tx *gorm.DB, today string) ([]model.Product, error)
}

type shoppingListRepo struct {
	db *gorm.DB
}

func NewShoppingListRepo(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepo{db}
}

func (r *shoppingListRepo) FindAll() ([]model.ShoppingItem, error) {
	var items []model.ShoppingItem
	err := r.db.Order("checked ASC, created_at DESC").Find(&items).Error
	return items, err
}

func (r *shoppingListRepo) FindByID(id uint) (*model.ShoppingItem, error) {
	var item model.ShoppingItem
	err := r.db.First(&item, "id = ?", id).Error
	return &item, err
}

func (r *shoppingListRepo) Create(item *model.ShoppingItem) error {
	return r.db.Create(item).Error
}

func (r *shoppingListRepo) Update(item *model.ShoppingItem) error {
	return r.db.Save(item).Error
}

func (r *shoppingListRepo) Delete(id uint) error {
	return r.db.Delete(&model.ShoppingItem{}, "id = ?", id).Error
}

func (r *shoppingListRepo) ClearChecked() error {
	return r.db.Where("checked = ?", true).Delete(&model.ShoppingItem{}).Error
}

// RestockCandidates returns products that are expired or down to their last
// unit, excluding names already on the list whether checked or not.
func (r *shoppingListRepo) RestockCandidates(tx *gorm.DB, today string) ([]model.Product, error) {
	var products []model.Product
	err := tx.Model(&model.Product{}).
		Where("(expiry_date != '' AND expiry_date < ?) OR quantity <= 1", today).
		Where("name NOT IN (SELECT name FROM shopping_list)").
		Find(&products).Error
	return products, err
}
