package service

import (
	"errors"
	"time"

	"go-kitchen-inventory/internal/model"
	"go-kitchen-inventory/internal/repository"
	"go-kitchen-inventory/pkg/sanitize"

	"gorm.io/gorm"
)

const autoGeneratedNote = "Auto-generiert"

type ShoppingService interface {
	GetItems() ([]model.ShoppingItem, error)
	AddItem(req *model.ShoppingItemRequest) error
	UpdateItem(id uint, req *model.ShoppingItemRequest) error
	DeleteItem(id uint) error
	ClearChecked() error
	Generate() (int, error)
}

type shoppingService struct {
	shoppingRepo repository.ShoppingListRepository
	db           *gorm.DB
}

func NewShoppingService(repo repository.ShoppingListRepository, db *gorm.DB) ShoppingService {
	return &shoppingService{shoppingRepo: repo, db: db}
}

func (s *shoppingService) GetItems() ([]model.ShoppingItem, error) {
	return s.shoppingRepo.FindAll()
}

func (s *shoppingService) AddItem(req *model.ShoppingItemRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}

	name := sanitize.Text(req.Name, maxNameLen)
	if name == "" {
		return model.ErrNameRequired
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	return s.shoppingRepo.Create(&model.ShoppingItem{
		Name:     name,
		Quantity: quantity,
		Category: sanitize.Text(req.Category, maxCategoryLen),
		Notes:    sanitize.Text(req.Notes, 500),
	})
}

// UpdateItem replaces name, quantity and checked state. Category and notes
// are fixed at creation.
func (s *shoppingService) UpdateItem(id uint, req *model.ShoppingItemRequest) error {
	item, err := s.shoppingRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ErrShoppingItemNotFound
		}
		return err
	}

	name := sanitize.Text(req.Name, maxNameLen)
	if name == "" {
		return model.ErrNameRequired
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	item.Name = name
	item.Quantity = quantity
	item.Checked = req.Checked
	return s.shoppingRepo.Update(item)
}

func (s *shoppingService) DeleteItem(id uint) error {
	return s.shoppingRepo.Delete(id)
}

func (s *shoppingService) ClearChecked() error {
	return s.shoppingRepo.ClearChecked()
}

// Generate adds one entry per expired or low-stock product whose name is not
// already on the list, checked or not. Returns the number of entries added.
func (s *shoppingService) Generate() (int, error) {
	today := time.Now().Format("2006-01-02")
	added := 0

	err := s.db.Transaction(func(tx *gorm.DB) error {
		candidates, err := s.shoppingRepo.RestockCandidates(tx, today)
		if err != nil {
			return err
		}
		for _, p := range candidates {
			item := model.ShoppingItem{
				Name:     p.Name,
				Quantity: 1,
				Category: p.Category,
				Notes:    autoGeneratedNote,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			added++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return added, nil
}
