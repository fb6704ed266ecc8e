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

// MetricCategoriesCreated counts successful category creations.
const MetricCategoriesCreated = "CategoriesCreated"

// CategoryService orchestrates category use cases.
type CategoryService struct {
	repo    ports.CategoryRepository
	events  ports.EventPublisher
	metrics ports.MetricsRecorder
	logger  *zap.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(
	repo ports.CategoryRepository,
	events ports.EventPublisher,
	metrics ports.MetricsRecorder,
	logger *zap.Logger,
) *CategoryService {
	return &CategoryService{
		repo:    repo,
		events:  events,
		metrics: metrics,
		logger:  logger,
	}
}

// CreateCategory validates the request, assigns a fresh identity and persists
// the category, then publishes CategoryCreated best-effort.
func (s *CategoryService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.Category, error) {
	if issues := utils.ValidateStruct(req); issues != nil {
		return domain.Category{}, apperrors.NewValidationError("Validation failed", issues)
	}

	s.logger.Info("Creating category", zap.String("name", req.Name))

	category := domain.Category{
		CategoryID:  uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
	}

	created, err := s.repo.Create(ctx, category)
	if err != nil {
		return domain.Category{}, err
	}
	s.metrics.Count(ctx, MetricCategoriesCreated)

	if err := s.events.Publish(ctx, domain.EventCategoryCreated, created); err != nil {
		s.logger.Error("Failed to publish CategoryCreated event",
			zap.String("categoryId", created.CategoryID),
			zap.Error(err),
		)
	}

	return created, nil
}

// GetCategory returns the category or a typed not-found error.
func (s *CategoryService) GetCategory(ctx context.Context, categoryID string) (domain.Category, error) {
	category, err := s.repo.Get(ctx, categoryID)
	if err != nil {
		return domain.Category{}, err
	}
	if category == nil {
		return domain.Category{}, apperrors.NewNotFoundError("Category")
	}
	return *category, nil
}

// ListCategories returns one page of categories in store scan order.
func (s *CategoryService) ListCategories(ctx context.Context, opts ports.ListOptions) (ports.Page[domain.Category], error) {
	return s.repo.List(ctx, opts)
}

// DeleteCategory deletes by id without checking prior existence.
func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := s.repo.Delete(ctx, categoryID); err != nil {
		return err
	}
	s.logger.Info("Category deleted", zap.String("categoryId", categoryID))
	return nil
}
