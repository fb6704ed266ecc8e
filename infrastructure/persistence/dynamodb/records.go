package dynamodb

import (
	"go.uber.org/zap"

	"hmaas-backend/application/ports"
	"hmaas-backend/domain"
	"hmaas-backend/pkg/schema"
)

// NewItemRepository creates the DynamoDB-backed item repository.
func NewItemRepository(client DynamoDBAPI, tableName string, logger *zap.Logger) ports.ItemRepository {
	return NewRepository[domain.Item](client, tableName, itemCodec{}, logger)
}

// NewCategoryRepository creates the DynamoDB-backed category repository.
func NewCategoryRepository(client DynamoDBAPI, tableName string, logger *zap.Logger) ports.CategoryRepository {
	return NewRepository[domain.Category](client, tableName, categoryCodec{}, logger)
}

type itemCodec struct{}

func (itemCodec) Definition() schema.Definition { return domain.ItemSchema }

func (itemCodec) ID(item domain.Item) string { return item.ItemID }

func (itemCodec) FromRecord(rec schema.Record) domain.Item { return domain.ItemFromRecord(rec) }

func (itemCodec) Attributes(item domain.Item) map[string]any {
	attrs := map[string]any{
		"itemId": item.ItemID,
		"name":   item.Name,
	}
	if item.Description != nil {
		attrs["description"] = *item.Description
	}
	mergeExtra(attrs, item.Extra)
	return attrs
}

type categoryCodec struct{}

func (categoryCodec) Definition() schema.Definition { return domain.CategorySchema }

func (categoryCodec) ID(category domain.Category) string { return category.CategoryID }

func (categoryCodec) FromRecord(rec schema.Record) domain.Category {
	return domain.CategoryFromRecord(rec)
}

func (categoryCodec) Attributes(category domain.Category) map[string]any {
	attrs := map[string]any{
		"categoryId": category.CategoryID,
		"name":       category.Name,
	}
	if category.Description != nil {
		attrs["description"] = *category.Description
	}
	mergeExtra(attrs, category.Extra)
	return attrs
}

// mergeExtra carries preserved unknown attributes into a write. Known fields
// and store-assigned timestamps always win.
func mergeExtra(attrs map[string]any, extra map[string]any) {
	for k, v := range extra {
		switch k {
		case "createdAt", "updatedAt":
			continue
		}
		if _, exists := attrs[k]; !exists {
			attrs[k] = v
		}
	}
}
