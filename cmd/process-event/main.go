// Lambda consumer for domain events routed off the bus.
package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"hmaas-backend/domain"
)

var logger *zap.Logger

func init() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

// Handler processes one EventBridge event.
func Handler(ctx context.Context, event events.EventBridgeEvent) error {
	logger.Info("Received EventBridge event",
		zap.String("source", event.Source),
		zap.String("detailType", event.DetailType),
		zap.String("id", event.ID),
	)

	switch event.DetailType {
	case domain.EventItemCreated:
		var item domain.Item
		if err := json.Unmarshal(event.Detail, &item); err != nil {
			logger.Error("Failed to decode ItemCreated detail", zap.Error(err))
			return err
		}
		logger.Info("Processing ItemCreated event", zap.String("itemId", item.ItemID))
	case domain.EventCategoryCreated:
		var category domain.Category
		if err := json.Unmarshal(event.Detail, &category); err != nil {
			logger.Error("Failed to decode CategoryCreated detail", zap.Error(err))
			return err
		}
		logger.Info("Processing CategoryCreated event", zap.String("categoryId", category.CategoryID))
	default:
		logger.Info("Ignoring unhandled event type", zap.String("detailType", event.DetailType))
	}

	return nil
}

func main() {
	lambda.Start(Handler)
}
