// Package services contains the per-entity use-case orchestration. Services
// are transport- and storage-agnostic: collaborators are injected interfaces.
package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hmaas-backend/application/ports"
	"hmaas-backend/domain"
	apperrors "hmaas-backend/pkg/errors"
	"hmaas-backend/pkg/utils"
)

// MetricItemsCreated counts successful item creations.
const MetricItemsCreated = "ItemsCreated"

// ItemService orchestrates item use cases.
type ItemService struct {
	repo    ports.ItemRepository
	events  ports.EventPublisher
	metrics ports.MetricsRecorder
	logger  *zap.Logger
}

// NewItemService creates a new item service.
func NewItemService(
	repo ports.ItemRepository,
	events ports.EventPublisher,
	metrics ports.MetricsRecorder,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		repo:    repo,
		events:  events,
		metrics: metrics,
		logger:  logger,
	}
}

// CreateItem validates the request, assigns a fresh identity and persists the
// item. The ItemCreated event is published best-effort after the write: a
// publish failure is logged and the created item is still returned.
func (s *ItemService) CreateItem(ctx context.Context, req domain.CreateItemRequest) (domain.Item, error) {
	if issues := utils.ValidateStruct(req); issues != nil {
		return domain.Item{}, apperrors.NewValidationError("Validation failed", issues)
	}

	s.logger.Info("Creating item", zap.String("name", req.Name))

	item := domain.Item{
		ItemID:      uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return domain.Item{}, err
	}
	s.metrics.Count(ctx, MetricItemsCreated)

	// The durable write succeeded; everything past this point must not fail
	// the request.
	if err := s.events.Publish(ctx, domain.EventItemCreated, created); err != nil {
		s.logger.Error("Failed to publish ItemCreated event",
			zap.String("itemId", created.ItemID),
			zap.Error(err),
		)
	}

	return created, nil
}

// GetItem returns the item or a typed not-found error.
func (s *ItemService) GetItem(ctx context.Context, itemID string) (domain.Item, error) {
	item, err := s.repo.Get(ctx, itemID)
	if err != nil {
		return domain.Item{}, err
	}
	if item == nil {
		return domain.Item{}, apperrors.NewNotFoundError("Item")
	}
	return *item, nil
}

// ListItems returns one page of items in store scan order.
func (s *ItemService) ListItems(ctx context.Context, opts ports.ListOptions) (ports.Page[domain.Item], error) {
	return s.repo.List(ctx, opts)
}

// DeleteItem deletes by id. Deleting an id that does not exist is not an
// error: delete is idempotent from the caller's perspective.
func (s *ItemService) DeleteItem(ctx context.Context, itemID string) error {
	if err := s.repo.Delete(ctx, itemID); err != nil {
		return err
	}
	s.logger.Info("Item deleted", zap.String("itemId", itemID))
	return nil
}
