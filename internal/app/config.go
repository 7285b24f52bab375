package app

import (
	"github.com/yungbote/catalog-backend/internal/logger"
	"github.com/yungbote/catalog-backend/internal/utils"
)

type Config struct {
	Port    string
	GinMode string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:    utils.GetEnv("PORT", "8080", log),
		GinMode: utils.GetEnv("GIN_MODE", "debug", log),
	}
}
