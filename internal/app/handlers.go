package app

import (
	"github.com/yungbote/catalog-backend/internal/handlers"
	"github.com/yungbote/catalog-backend/internal/logger"
)

type Handlers struct {
	Product *handlers.ProductHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Product: handlers.NewProductHandler(serviceset.Product),
	}
}
