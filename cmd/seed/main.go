// Seeds reference data through the service layer. Intended for fresh local
// or development tables; creation is idempotent only in the sense that
// re-running produces new ids.
package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"hmaas-backend/domain"
	"hmaas-backend/infrastructure/config"
	"hmaas-backend/infrastructure/di"
)

func strptr(s string) *string { return &s }

var seedCategories = []domain.CreateCategoryRequest{
	{Name: "General Maintenance", Description: strptr("Regular home maintenance tasks")},
	{Name: "Plumbing", Description: strptr("Plumbing repairs and installations")},
	{Name: "Electrical", Description: strptr("Electrical repairs and installations")},
}

var seedItems = []domain.CreateItemRequest{
	{Name: "Compass", Description: strptr("A magnetic compass")},
}

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	logger := container.Logger

	logger.Info("Seeding table",
		zap.String("table", cfg.DynamoDBTable),
		zap.Int("categories", len(seedCategories)),
		zap.Int("items", len(seedItems)),
	)

	for _, req := range seedCategories {
		category, err := container.CategoryService.CreateCategory(ctx, req)
		if err != nil {
			logger.Fatal("Failed to seed category", zap.String("name", req.Name), zap.Error(err))
		}
		logger.Info("Seeded category", zap.String("categoryId", category.CategoryID), zap.String("name", category.Name))
	}

	for _, req := range seedItems {
		item, err := container.ItemService.CreateItem(ctx, req)
		if err != nil {
			logger.Fatal("Failed to seed item", zap.String("name", req.Name), zap.Error(err))
		}
		logger.Info("Seeded item", zap.String("itemId", item.ItemID), zap.String("name", item.Name))
	}

	logger.Info("Seeding complete")
}
