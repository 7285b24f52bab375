package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/catalog-backend/internal/server"
)

func wireRouter(handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ProductHandler: handlerset.Product,
		RequestLogger:  middlewareset.RequestLog,
	})
}
