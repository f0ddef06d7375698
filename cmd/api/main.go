package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/primeretail/billing-api/internal/application/service"
	"github.com/primeretail/billing-api/internal/config"
	"github.com/primeretail/billing-api/internal/domain/entity"
	domainRepo "github.com/primeretail/billing-api/internal/domain/repository"
	"github.com/primeretail/billing-api/internal/infrastructure/database"
	"github.com/primeretail/billing-api/internal/infrastructure/repository"
	"github.com/primeretail/billing-api/internal/presentation/http/handler"
	"github.com/primeretail/billing-api/internal/presentation/http/routes"
	"github.com/primeretail/billing-api/pkg/signature"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	billRepo, itemRepo, err := buildStores(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	signatureStore, err := signature.NewStore(cfg.Storage.SignaturesPath())
	if err != nil {
		log.Fatalf("Failed to initialize signature store: %v", err)
	}

	shop := entity.ShopProfile{
		Name:           cfg.Shop.Name,
		Owner:          cfg.Shop.Owner,
		Address:        cfg.Shop.Address,
		Phone:          cfg.Shop.Phone,
		Email:          cfg.Shop.Email,
		GST:            cfg.Shop.GST,
		CurrencySymbol: cfg.Shop.CurrencySymbol,
	}

	// Initialize services
	billingService := service.NewBillingService(billRepo, shop)
	inventoryService := service.NewInventoryService(itemRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Bill:      handler.NewBillHandler(billingService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Signature: handler.NewSignatureHandler(signatureStore),
	}

	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s | Storage driver: %s", cfg.App.Env, cfg.Storage.Driver)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildStores wires the configured persistence driver: flat CSV tables by
// default, PostgreSQL when STORAGE_DRIVER=postgres.
func buildStores(cfg *config.Config) (domainRepo.BillRepository, domainRepo.ItemRepository, error) {
	if cfg.Storage.Driver == "postgres" {
		db, err := database.NewPostgresDB(&cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, err
		}
		if err := database.SeedDefaultData(db); err != nil {
			log.Printf("Warning: failed to seed default catalog: %v", err)
		}
		return repository.NewGormBillRepository(db), repository.NewGormItemRepository(db), nil
	}

	billRepo, err := repository.NewCSVBillRepository(cfg.Storage.BillsPath())
	if err != nil {
		return nil, nil, err
	}
	itemRepo, err := repository.NewCSVItemRepository(cfg.Storage.InventoryPath(), repository.DefaultCatalog())
	if err != nil {
		return nil, nil, err
	}
	return billRepo, itemRepo, nil
}
