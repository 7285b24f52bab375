package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/catalog-backend/internal/handlers"
	"github.com/yungbote/catalog-backend/internal/middleware"
)

type RouterConfig struct {
	ProductHandler *handlers.ProductHandler
	RequestLogger  *middleware.RequestLogger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.RequestLogger != nil {
		router.Use(cfg.RequestLogger.Handle())
	}

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	products := api.Group("/products")
	{
		products.POST("", cfg.ProductHandler.Create)
		products.GET("", cfg.ProductHandler.List)
		products.GET("/:id", cfg.ProductHandler.GetByID)
		products.PUT("/:id", cfg.ProductHandler.Update)
		products.DELETE("/:id", cfg.ProductHandler.Delete)
		products.POST("/:id/stock", cfg.ProductHandler.AdjustStock)
		products.POST("/:id/activate", cfg.ProductHandler.Activate)
		products.POST("/:id/deactivate", cfg.ProductHandler.Deactivate)
	}

	return router
}
