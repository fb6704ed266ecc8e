package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hmaas-backend/application/ports"
	"hmaas-backend/domain"
	apperrors "hmaas-backend/pkg/errors"
)

type mockItemRepository struct {
	mock.Mock
}

func (m *mockItemRepository) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *mockItemRepository) Get(ctx context.Context, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *mockItemRepository) List(ctx context.Context, opts ports.ListOptions) (ports.Page[domain.Item], error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(ports.Page[domain.Item]), args.Error(1)
}

func (m *mockItemRepository) Delete(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	args := m.Called(ctx, eventType, payload)
	return args.Error(0)
}

type mockMetricsRecorder struct {
	mock.Mock
}

func (m *mockMetricsRecorder) Count(ctx context.Context, name string) {
	m.Called(ctx, name)
}

func newItemService(repo *mockItemRepository, events *mockEventPublisher, metrics *mockMetricsRecorder) *ItemService {
	return NewItemService(repo, events, metrics, zap.NewNop())
}

func TestCreateItem_AssignsIdentityAndPublishes(t *testing.T) {
	repo := new(mockItemRepository)
	events := new(mockEventPublisher)
	metrics := new(mockMetricsRecorder)
	svc := newItemService(repo, events, metrics)

	desc := "A magnetic compass"
	stored := domain.Item{
		ItemID:      "assigned-later",
		Name:        "Compass",
		Description: &desc,
		CreatedAt:   "1700000000000",
		UpdatedAt:   "1700000000000",
	}

	repo.On("Create", mock.Anything, mock.MatchedBy(func(item domain.Item) bool {
		_, err := uuid.Parse(item.ItemID)
		return err == nil && item.Name == "Compass" && item.CreatedAt == ""
	})).Return(stored, nil)
	metrics.On("Count", mock.Anything, MetricItemsCreated).Return()
	events.On("Publish", mock.Anything, domain.EventItemCreated, stored).Return(nil)

	created, err := svc.CreateItem(context.Background(), domain.CreateItemRequest{
		Name:        "Compass",
		Description: &desc,
	})

	require.NoError(t, err)
	assert.Equal(t, stored, created, "the caller gets the record as persisted")
	repo.AssertExpectations(t)
	events.AssertExpectations(t)
	metrics.AssertExpectations(t)
}

func TestCreateItem_ValidationFailure(t *testing.T) {
	repo := new(mockItemRepository)
	events := new(mockEventPublisher)
	metrics := new(mockMetricsRecorder)
	svc := newItemService(repo, events, metrics)

	_, err := svc.CreateItem(context.Background(), domain.CreateItemRequest{})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateItem_PublishFailureDoesNotFailRequest(t *testing.T) {
	repo := new(mockItemRepository)
	events := new(mockEventPublisher)
	metrics := new(mockMetricsRecorder)
	svc := newItemService(repo, events, metrics)

	stored := domain.Item{ItemID: "item-1", Name: "Compass", CreatedAt: "1700000000000"}
	repo.On("Create", mock.Anything, mock.Anything).Return(stored, nil)
	metrics.On("Count", mock.Anything, MetricItemsCreated).Return()
	events.On("Publish", mock.Anything, domain.EventItemCreated, stored).
		Return(errors.New("bus unavailable"))

	created, err := svc.CreateItem(context.Background(), domain.CreateItemRequest{Name: "Compass"})

	require.NoError(t, err, "a publish failure never fails the create")
	assert.Equal(t, stored, created)
	events.AssertExpectations(t)
}

func TestCreateItem_RepositoryFailure(t *testing.T) {
	repo := new(mockItemRepository)
	events := new(mockEventPublisher)
	metrics := new(mockMetricsRecorder)
	svc := newItemService(repo, events, metrics)

	repo.On("Create", mock.Anything, mock.Anything).
		Return(domain.Item{}, errors.New("provisioned throughput exceeded"))

	_, err := svc.CreateItem(context.Background(), domain.CreateItemRequest{Name: "Compass"})

	require.EqualError(t, err, "provisioned throughput exceeded")
	events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	metrics.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
}

func TestGetItem_Found(t *testing.T) {
	repo := new(mockItemRepository)
	svc := newItemService(repo, new(mockEventPublisher), new(mockMetricsRecorder))

	stored := domain.Item{ItemID: "item-1", Name: "Compass", CreatedAt: "1700000000000"}
	repo.On("Get", mock.Anything, "item-1").Return(&stored, nil)

	item, err := svc.GetItem(context.Background(), "item-1")

	require.NoError(t, err)
	assert.Equal(t, stored, item)
}

func TestGetItem_AbsenceBecomesNotFound(t *testing.T) {
	repo := new(mockItemRepository)
	svc := newItemService(repo, new(mockEventPublisher), new(mockMetricsRecorder))

	repo.On("Get", mock.Anything, "missing").Return(nil, nil)

	_, err := svc.GetItem(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Item not found", apperrors.GetAppError(err).Message)
}

func TestListItems_Delegates(t *testing.T) {
	repo := new(mockItemRepository)
	svc := newItemService(repo, new(mockEventPublisher), new(mockMetricsRecorder))

	cursor := "abc"
	page := ports.Page[domain.Item]{
		Items:  []domain.Item{{ItemID: "item-1", Name: "Compass", CreatedAt: "1700000000000"}},
		Cursor: &cursor,
	}
	repo.On("List", mock.Anything, ports.ListOptions{Limit: 5}).Return(page, nil)

	got, err := svc.ListItems(context.Background(), ports.ListOptions{Limit: 5})

	require.NoError(t, err)
	assert.Equal(t, page, got)
}

func TestDeleteItem_Idempotent(t *testing.T) {
	repo := new(mockItemRepository)
	svc := newItemService(repo, new(mockEventPublisher), new(mockMetricsRecorder))

	repo.On("Delete", mock.Anything, "never-existed").Return(nil)

	require.NoError(t, svc.DeleteItem(context.Background(), "never-existed"))
	repo.AssertExpectations(t)
}
