package database

import (
	"fmt"
	"log"

	"go-kitchen-inventory/internal/model"

	"gorm.io/gorm"
)

// A migration is one additive, idempotent schema step. Steps run in order at
// every startup; each one checks the introspected schema before acting.
// Nothing is ever removed or renamed.
type migration struct {
	name  string
	apply func(db *gorm.DB) (bool, error)
}

func createTable(m interface{}) func(*gorm.DB) (bool, error) {
	return func(db *gorm.DB) (bool, error) {
		if db.Migrator().HasTable(m) {
			return false, nil
		}
		return true, db.Migrator().CreateTable(m)
	}
}

func addColumn(m interface{}, column string) func(*gorm.DB) (bool, error) {
	return func(db *gorm.DB) (bool, error) {
		if db.Migrator().HasColumn(m, column) {
			return false, nil
		}
		return true, db.Migrator().AddColumn(m, column)
	}
}

func addIndex(m interface{}, name string) func(*gorm.DB) (bool, error) {
	return func(db *gorm.DB) (bool, error) {
		if db.Migrator().HasIndex(m, name) {
			return false, nil
		}
		return true, db.Migrator().CreateIndex(m, name)
	}
}

var migrations = []migration{
	{"create products table", createTable(&model.Product{})},
	{"create shopping_list table", createTable(&model.ShoppingItem{})},
	{"create barcode_history table", createTable(&model.BarcodeHistory{})},

	// Columns added after the first release. New installs get them from
	// CreateTable; existing databases pick them up here.
	{"products.weight_volume", addColumn(&model.Product{}, "weight_volume")},
	{"products.created_at", addColumn(&model.Product{}, "created_at")},
	{"products.price", addColumn(&model.Product{}, "price")},
	{"products.image_url", addColumn(&model.Product{}, "image_url")},
	{"products.category", addColumn(&model.Product{}, "category")},
	{"products.tags", addColumn(&model.Product{}, "tags")},
	{"products.scan_count", addColumn(&model.Product{}, "scan_count")},
	{"products.last_scanned", addColumn(&model.Product{}, "last_scanned")},
	{"barcode_history.category", addColumn(&model.BarcodeHistory{}, "category")},
	{"barcode_history.weight_volume", addColumn(&model.BarcodeHistory{}, "weight_volume")},
	{"barcode_history.tags", addColumn(&model.BarcodeHistory{}, "tags")},
	{"barcode_history.is_vegetarian", addColumn(&model.BarcodeHistory{}, "is_vegetarian")},
	{"barcode_history.is_vegan", addColumn(&model.BarcodeHistory{}, "is_vegan")},

	{"index products.expiry_date", addIndex(&model.Product{}, "idx_expiry_date")},
	{"index products.location", addIndex(&model.Product{}, "idx_location")},
	{"index products.name", addIndex(&model.Product{}, "idx_name")},
}

// Migrate applies all pending schema steps.
func Migrate(db *gorm.DB) error {
	for _, m := range migrations {
		applied, err := m.apply(db)
		if err != nil {
			return fmt.Errorf("migration %q: %w", m.name, err)
		}
		if applied {
			log.Printf("Migrating database: %s", m.name)
		}
	}
	return nil
}
