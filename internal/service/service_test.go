package service

import (
	"testing"

	"go-kitchen-inventory/internal/repository"
	"go-kitchen-inventory/pkg/database"
	"go-kitchen-inventory/pkg/imagestore"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with the full schema applied.
// A single pooled connection keeps the memory database alive for the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func newTestImages(t *testing.T) *imagestore.Store {
	t.Helper()
	images, err := imagestore.New(t.TempDir())
	require.NoError(t, err)
	return images
}

func newTestInventory(t *testing.T) (InventoryService, *gorm.DB, *imagestore.Store) {
	t.Helper()
	db := newTestDB(t)
	images := newTestImages(t)
	svc := NewInventoryService(
		repository.NewProductRepo(db),
		repository.NewBarcodeHistoryRepo(db),
		images,
		db,
	)
	return svc, db, images
}

func intPtr(v int) *int {
	return &v
}
