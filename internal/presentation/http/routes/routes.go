package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/primeretail/billing-api/internal/config"
	"github.com/primeretail/billing-api/internal/presentation/http/handler"
	"github.com/primeretail/billing-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Bill      *handler.BillHandler
	Inventory *handler.InventoryHandler
	Signature *handler.SignatureHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(&cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
		BurstSize:         cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})

	api := router.Group("/api")
	api.Use(rateLimiter.Middleware())
	{
		api.GET("/shop", h.Bill.GetShop)

		api.GET("/bills", h.Bill.List)
		api.DELETE("/bills/:id", h.Bill.Delete)
		api.POST("/generate-bill", h.Bill.Generate)

		inventory := api.Group("/inventory")
		{
			inventory.GET("", h.Inventory.List)
			inventory.POST("", h.Inventory.Create)
			inventory.POST("/import", h.Inventory.Import)
			inventory.PUT("/:id", h.Inventory.Update)
			inventory.DELETE("/:id", h.Inventory.Delete)
		}

		api.POST("/signature", h.Signature.Save)
	}

	return router
}
