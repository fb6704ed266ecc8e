package di

import (
	"go.uber.org/zap"

	"hmaas-backend/application/services"
	"hmaas-backend/infrastructure/config"
)

// Container holds all application dependencies
type Container struct {
	Config          *config.Config
	Logger          *zap.Logger
	ItemService     *services.ItemService
	CategoryService *services.CategoryService
}
