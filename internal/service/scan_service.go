package service

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"

	"go-kitchen-inventory/internal/model"
	"go-kitchen-inventory/internal/repository"
	"go-kitchen-inventory/pkg/openfoodfacts"
	"go-kitchen-inventory/pkg/sanitize"

	"gorm.io/gorm"
)

var eanPattern = regexp.MustCompile(`^\d{8,13}$`)

type ScanService interface {
	Scan(ctx context.Context, ean string) (*model.ScanResult, error)
}

type scanService struct {
	client      *openfoodfacts.Client
	historyRepo repository.BarcodeHistoryRepository
	db          *gorm.DB
}

func NewScanService(client *openfoodfacts.Client, hRepo repository.BarcodeHistoryRepository, db *gorm.DB) ScanService {
	return &scanService{client: client, historyRepo: hRepo, db: db}
}

// Scan proxies a barcode lookup to the external product database and records
// the sighting in the barcode history. The history write is best effort: a
// failure there never fails the lookup itself.
func (s *scanService) Scan(ctx context.Context, ean string) (*model.ScanResult, error) {
	if !eanPattern.MatchString(ean) {
		return nil, model.ErrInvalidEAN
	}

	product, err := s.client.Lookup(ctx, ean)
	if err != nil {
		switch {
		case errors.Is(err, openfoodfacts.ErrNotFound):
			return nil, model.ErrUpstreamNotFound
		case errors.Is(err, openfoodfacts.ErrTimeout):
			return nil, model.ErrUpstreamTimeout
		case errors.Is(err, openfoodfacts.ErrUnavailable):
			return nil, model.ErrUpstreamUnavailable
		}
		return nil, err
	}

	name := sanitize.Truncate(product.ProductName, 200)
	if name == "" {
		name = "Unbekanntes Produkt"
	}

	category := ""
	if product.Categories != "" {
		category = strings.TrimSpace(strings.SplitN(product.Categories, ",", 2)[0])
	}
	categoriesLower := strings.ToLower(product.Categories)
	isVegetarian := strings.Contains(categoriesLower, "vegetarian")
	isVegan := strings.Contains(categoriesLower, "vegan")

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.historyRepo.Touch(tx, model.BarcodeSnapshot{
			EAN:          ean,
			Name:         name,
			Category:     category,
			WeightVolume: product.Quantity,
			IsVegetarian: isVegetarian,
			IsVegan:      isVegan,
		})
	})
	if err != nil {
		log.Printf("scan: history update failed for %s: %v", ean, err)
	}

	return &model.ScanResult{
		Found:    true,
		Name:     name,
		ImageURL: sanitize.Truncate(product.ImageURL, 500),
		Quantity: sanitize.Truncate(product.Quantity, 50),
		Brands:   sanitize.Truncate(product.Brands, 200),
		Category: category,
	}, nil
}
