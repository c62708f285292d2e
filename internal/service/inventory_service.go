package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"go-kitchen-inventory/internal/model"
	"go-kitchen-inventory/internal/repository"
	"go-kitchen-inventory/pkg/imagestore"
	"go-kitchen-inventory/pkg/sanitize"
	"go-kitchen-inventory/pkg/validator"

	"gorm.io/gorm"
)

const (
	maxNameLen     = 200
	maxEANLen      = 50
	maxDateLen     = 20
	maxLocationLen = 100
	maxWeightLen   = 50
	maxNotesLen    = 1000
	maxCategoryLen = 50
	maxTagsLen     = 200
)

type InventoryService interface {
	GetAllProducts() ([]model.Product, error)
	CreateProduct(req *model.ProductRequest) (uint, error)
	UpdateProduct(id uint, req *model.ProductRequest) error
	DeleteProduct(id uint) error
	BatchOperation(req *model.BatchRequest) (int, error)
	CheckDuplicate(req *model.DuplicateCheckRequest) ([]model.Product, error)
}

type inventoryService struct {
	productRepo repository.ProductRepository
	historyRepo repository.BarcodeHistoryRepository
	images      *imagestore.Store
	db          *gorm.DB
}

func NewInventoryService(pRepo repository.ProductRepository, hRepo repository.BarcodeHistoryRepository, images *imagestore.Store, db *gorm.DB) InventoryService {
	return &inventoryService{
		productRepo: pRepo,
		historyRepo: hRepo,
		images:      images,
		db:          db,
	}
}

func validateRequest(req interface{}) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", model.ErrValidation, first.FailedField, first.Tag)
	}
	return nil
}

// sanitizeProduct applies the field limits shared by create and update and
// returns the normalized values. Create-only defaults are not applied here.
func sanitizeProduct(req *model.ProductRequest) (*model.Product, error) {
	name := sanitize.Text(req.Name, maxNameLen)
	if name == "" {
		return nil, model.ErrNameRequired
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity < 1 || quantity > 9999 {
		return nil, model.ErrInvalidQuantity
	}

	if req.Price < 0 {
		return nil, model.ErrInvalidPrice
	}

	return &model.Product{
		EAN:          sanitize.Text(req.EAN, maxEANLen),
		Name:         name,
		ExpiryDate:   sanitize.Text(req.ExpiryDate, maxDateLen),
		PurchaseDate: sanitize.Text(req.PurchaseDate, maxDateLen),
		Location:     sanitize.Text(req.Location, maxLocationLen),
		Quantity:     quantity,
		WeightVolume: sanitize.Text(req.WeightVolume, maxWeightLen),
		Notes:        sanitize.Text(req.Notes, maxNotesLen),
		IsVegetarian: req.IsVegetarian,
		IsVegan:      req.IsVegan,
		Price:        req.Price,
		Category:     sanitize.Text(req.Category, maxCategoryLen),
		Tags:         sanitize.Text(req.Tags, maxTagsLen),
	}, nil
}

func snapshotOf(p *model.Product) model.BarcodeSnapshot {
	return model.BarcodeSnapshot{
		EAN:          p.EAN,
		Name:         p.Name,
		Category:     p.Category,
		WeightVolume: p.WeightVolume,
		Tags:         p.Tags,
		IsVegetarian: p.IsVegetarian,
		IsVegan:      p.IsVegan,
	}
}

func (s *inventoryService) GetAllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *inventoryService) CreateProduct(req *model.ProductRequest) (uint, error) {
	if err := validateRequest(req); err != nil {
		return 0, err
	}

	product, err := sanitizeProduct(req)
	if err != nil {
		return 0, err
	}
	if product.PurchaseDate == "" {
		product.PurchaseDate = time.Now().Format("2006-01-02")
	}

	// An inline image is persisted before the row; a failed save just means
	// the product is stored without one.
	if strings.HasPrefix(req.ImageURL, "data:image") {
		url, err := s.images.Save(req.ImageURL)
		if err != nil {
			log.Printf("inventory: image save failed: %v", err)
			url = ""
		}
		product.ImageURL = url
	} else {
		product.ImageURL = req.ImageURL
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		if product.EAN != "" {
			return s.historyRepo.Touch(tx, snapshotOf(product))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return product.ID, nil
}

func (s *inventoryService) UpdateProduct(id uint, req *model.ProductRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}

	fields, err := sanitizeProduct(req)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Product
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return model.ErrProductNotFound
			}
			return err
		}

		imageURL := req.ImageURL
		oldImage := existing.ImageURL
		switch {
		case strings.HasPrefix(imageURL, "data:image"):
			// New inline image replaces the old managed file.
			url, err := s.images.Save(imageURL)
			if err != nil {
				log.Printf("inventory: image save failed: %v", err)
				imageURL = oldImage
			} else {
				imageURL = url
				s.images.Delete(oldImage)
			}
		case imageURL == "" && oldImage != "":
			// Image reference cleared.
			s.images.Delete(oldImage)
		case imageURL == "":
			imageURL = oldImage
		}

		existing.EAN = fields.EAN
		existing.Name = fields.Name
		existing.ExpiryDate = fields.ExpiryDate
		existing.PurchaseDate = fields.PurchaseDate
		existing.Location = fields.Location
		existing.Quantity = fields.Quantity
		existing.WeightVolume = fields.WeightVolume
		existing.Notes = fields.Notes
		existing.IsVegetarian = fields.IsVegetarian
		existing.IsVegan = fields.IsVegan
		existing.Price = fields.Price
		existing.ImageURL = imageURL
		existing.Category = fields.Category
		existing.Tags = fields.Tags

		return tx.Save(&existing).Error
	})
}

// DeleteProduct removes a product but preserves its barcode history: the
// row's own current metadata is folded into the ledger before the delete.
func (s *inventoryService) DeleteProduct(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return model.ErrProductNotFound
			}
			return err
		}

		if product.EAN != "" {
			if err := s.historyRepo.Touch(tx, snapshotOf(&product)); err != nil {
				return err
			}
		}

		if product.ImageURL != "" {
			s.images.Delete(product.ImageURL)
		}

		return tx.Delete(&model.Product{}, product.ID).Error
	})
}

func (s *inventoryService) BatchOperation(req *model.BatchRequest) (int, error) {
	if req.Operation == "" || len(req.ProductIDs) == 0 {
		return 0, model.ErrBatchArgs
	}

	switch req.Operation {
	case "delete":
		if err := s.productRepo.DeleteBatch(req.ProductIDs); err != nil {
			return 0, err
		}
	case "update_location":
		location := sanitize.Text(req.Location, maxLocationLen)
		if err := s.productRepo.UpdateLocationBatch(req.ProductIDs, location); err != nil {
			return 0, err
		}
	default:
		return 0, model.ErrInvalidOperation
	}
	return len(req.ProductIDs), nil
}

// CheckDuplicate looks for products with the same barcode, or failing that,
// the same name. A barcode match short-circuits the name lookup; the result
// is capped at 5 entries.
func (s *inventoryService) CheckDuplicate(req *model.DuplicateCheckRequest) ([]model.Product, error) {
	var duplicates []model.Product

	if req.EAN != "" {
		matches, err := s.productRepo.FindByEAN(req.EAN)
		if err != nil {
			return nil, err
		}
		duplicates = matches
	}

	if len(duplicates) == 0 && req.Name != "" {
		matches, err := s.productRepo.SearchByName(req.Name, 5)
		if err != nil {
			return nil, err
		}
		duplicates = matches
	}

	if len(duplicates) > 5 {
		duplicates = duplicates[:5]
	}
	return duplicates, nil
}
