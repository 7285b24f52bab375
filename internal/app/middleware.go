package app

import (
	"github.com/yungbote/catalog-backend/internal/logger"
	"github.com/yungbote/catalog-backend/internal/middleware"
)

type Middleware struct {
	RequestLog *middleware.RequestLogger
}

func wireMiddleware(log *logger.Logger) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		RequestLog: middleware.NewRequestLogger(log),
	}
}
