package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/catalog-backend/internal/logger"
	"github.com/yungbote/catalog-backend/internal/services"
)

type Services struct {
	Product services.ProductService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Product: services.NewProductService(db, log, reposet.Product),
	}
}
