// Package ports declares the interfaces the application layer depends on.
// Implementations live under infrastructure; tests substitute doubles.
package ports

import (
	"context"

	"hmaas-backend/domain"
)

// ListOptions carries pagination parameters for a list call.
type ListOptions struct {
	// Limit bounds the page size; zero means the repository default.
	Limit int32
	// Cursor resumes a prior scan. It is opaque: produced by the store,
	// never interpreted by callers.
	Cursor *string
}

// Page is one page of a paginated scan. Cursor is nil when the scan is
// exhausted.
type Page[T any] struct {
	Items  []T     `json:"items"`
	Cursor *string `json:"cursor"`
}

// ItemRepository provides durable storage for items.
//
// Get returns nil without an error when no record exists: absence is a
// neutral signal at this layer, never a failure.
type ItemRepository interface {
	Create(ctx context.Context, item domain.Item) (domain.Item, error)
	Get(ctx context.Context, itemID string) (*domain.Item, error)
	List(ctx context.Context, opts ListOptions) (Page[domain.Item], error)
	Delete(ctx context.Context, itemID string) error
}

// CategoryRepository provides durable storage for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category domain.Category) (domain.Category, error)
	Get(ctx context.Context, categoryID string) (*domain.Category, error)
	List(ctx context.Context, opts ListOptions) (Page[domain.Category], error)
	Delete(ctx context.Context, categoryID string) error
}

// EventPublisher fans domain events out to the bus. Publishing is
// best-effort: callers log a returned error and move on, it must never fail
// the operation that triggered the event.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}

// MetricsRecorder publishes operational counters.
type MetricsRecorder interface {
	Count(ctx context.Context, name string)
}
