package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"go-kitchen-inventory/internal/repository"
	"go-kitchen-inventory/internal/service"
	"go-kitchen-inventory/pkg/database"
	"go-kitchen-inventory/pkg/imagestore"
	"go-kitchen-inventory/pkg/openfoodfacts"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp wires the full route table against an in-memory database, the
// same way main does. Barcode lookups go to the given upstream handler.
func newTestApp(t *testing.T, upstream http.HandlerFunc) (*fiber.App, *gorm.DB) {
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

	images, err := imagestore.New(t.TempDir())
	require.NoError(t, err)

	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	productRepo := repository.NewProductRepo(db)
	shoppingRepo := repository.NewShoppingListRepo(db)
	historyRepo := repository.NewBarcodeHistoryRepo(db)
	statsRepo := repository.NewStatisticsRepo(db)

	invHandler := NewInventoryHandler(service.NewInventoryService(productRepo, historyRepo, images, db))
	shoppingHandler := NewShoppingHandler(service.NewShoppingService(shoppingRepo, db))
	statsHandler := NewStatisticsHandler(service.NewStatisticsService(statsRepo))
	scanHandler := NewScanHandler(service.NewScanService(openfoodfacts.NewClient(server.URL), historyRepo, db), historyRepo)

	app := fiber.New()
	api := app.Group("/api")

	api.Get("/products", invHandler.GetProducts)
	api.Post("/products", invHandler.CreateProduct)
	api.Post("/products/batch", invHandler.BatchOperation)
	api.Post("/products/check-duplicate", invHandler.CheckDuplicate)
	api.Put("/products/:id", invHandler.UpdateProduct)
	api.Delete("/products/:id", invHandler.DeleteProduct)

	api.Get("/statistics", statsHandler.GetStatistics)
	api.Get("/statistics/advanced", statsHandler.GetAdvancedStatistics)

	api.Get("/scan/:ean", scanHandler.Scan)
	api.Get("/barcode-history", scanHandler.GetBarcodeHistory)

	api.Get("/shopping-list", shoppingHandler.GetItems)
	api.Post("/shopping-list", shoppingHandler.AddItem)
	api.Post("/shopping-list/generate", shoppingHandler.Generate)
	api.Delete("/shopping-list/clear-checked", shoppingHandler.ClearChecked)
	api.Put("/shopping-list/:id", shoppingHandler.UpdateItem)
	api.Delete("/shopping-list/:id", shoppingHandler.DeleteItem)

	return app, db
}

func upstreamNotFound(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, `{"status": 0, "status_verbose": "product not found"}`)
}

func itoa(id int) string {
	return strconv.Itoa(id)
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var decoded map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func doJSONList(t *testing.T, app *fiber.App, target string) (*http.Response, []map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("GET", target, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}
