package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-kitchen-inventory/internal/handler"
	"go-kitchen-inventory/internal/repository"
	"go-kitchen-inventory/internal/service"
	"go-kitchen-inventory/pkg/database"
	"go-kitchen-inventory/pkg/imagestore"
	"go-kitchen-inventory/pkg/openfoodfacts"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	if err := database.Migrate(db); err != nil {
		log.Fatal("Database migration failed: ", err)
	}

	// 3. Image uploads directory
	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "static/uploads"
	}
	images, err := imagestore.New(uploadsDir)
	if err != nil {
		log.Fatal("Failed to create uploads directory: ", err)
	}

	// 4. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	shoppingRepo := repository.NewShoppingListRepo(db)
	historyRepo := repository.NewBarcodeHistoryRepo(db)
	statsRepo := repository.NewStatisticsRepo(db)

	offClient := openfoodfacts.NewClient(os.Getenv("OFF_BASE_URL"))

	invService := service.NewInventoryService(productRepo, historyRepo, images, db)
	shoppingService := service.NewShoppingService(shoppingRepo, db)
	statsService := service.NewStatisticsService(statsRepo)
	scanService := service.NewScanService(offClient, historyRepo, db)

	invHandler := handler.NewInventoryHandler(invService)
	shoppingHandler := handler.NewShoppingHandler(shoppingService)
	statsHandler := handler.NewStatisticsHandler(statsService)
	scanHandler := handler.NewScanHandler(scanService, historyRepo)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:   "Smart Kitchen Inventory v1.0",
		BodyLimit: 1 * 1024 * 1024, // inline image payloads, 1MB max
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// Uploaded images are served straight from disk.
	app.Static(imagestore.URLPrefix, images.Dir())

	// 6. Routes
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
	// clear-checked must be registered before the :id route
	api.Delete("/shopping-list/clear-checked", shoppingHandler.ClearChecked)
	api.Put("/shopping-list/:id", shoppingHandler.UpdateItem)
	api.Delete("/shopping-list/:id", shoppingHandler.DeleteItem)

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "5000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
