package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/repository"
)

func TestDivisionService_EnsureDefaults(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds an empty table", func(t *testing.T) {
		repo := new(MockDivisionRepository)
		service := NewDivisionService(repo)
		repo.On("Count", ctx).Return(int64(0), nil)
		repo.On("Create", ctx, mock.AnythingOfType("*models.Division")).Return(nil)

		created, err := service.EnsureDefaults(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, created)
		repo.AssertNumberOfCalls(t, "Create", 2)
	})

	t.Run("leaves existing divisions alone", func(t *testing.T) {
		repo := new(MockDivisionRepository)
		service := NewDivisionService(repo)
		repo.On("Count", ctx).Return(int64(5), nil)

		created, err := service.EnsureDefaults(ctx)
		require.NoError(t, err)
		assert.Zero(t, created)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestDivisionService_ListSortsByOrder(t *testing.T) {
	ctx := context.Background()
	repo := new(MockDivisionRepository)
	service := NewDivisionService(repo)
	repo.On("List", ctx).Return([]models.Division{
		{Slug: "dress-shoes", Order: 2},
		{Slug: "leather", Order: 1},
	}, nil)

	divisions, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "leather", divisions[0].Slug)
	assert.Equal(t, "dress-shoes", divisions[1].Slug)
}

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("slug derived from the name", func(t *testing.T) {
		categories := new(MockCategoryRepository)
		divisions := new(MockDivisionRepository)
		service := NewCategoryService(categories, divisions)

		divisionID := uuid.New()
		divisions.On("GetByID", ctx, divisionID).Return(&models.Division{ID: divisionID}, nil)
		categories.On("Create", ctx, mock.AnythingOfType("*models.Category")).Return(nil)

		category, err := service.Create(ctx, &models.CategoryRequest{Name: "Chaussures de Ville", NameAr: "أحذية المدينة", DivisionID: &divisionID})
		require.NoError(t, err)
		assert.Equal(t, "chaussures-de-ville", category.Slug)
		assert.Equal(t, &divisionID, category.DivisionID)
	})

	t.Run("unknown division", func(t *testing.T) {
		categories := new(MockCategoryRepository)
		divisions := new(MockDivisionRepository)
		service := NewCategoryService(categories, divisions)

		divisionID := uuid.New()
		divisions.On("GetByID", ctx, divisionID).Return(nil, repository.ErrNotFound)

		_, err := service.Create(ctx, &models.CategoryRequest{Name: "Boots", NameAr: "بوت", DivisionID: &divisionID})
		require.Error(t, err)
		assert.True(t, models.IsValidationError(err))
		assert.Equal(t, "Division not found", err.Error())
		categories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing arabic name", func(t *testing.T) {
		service := NewCategoryService(new(MockCategoryRepository), new(MockDivisionRepository))
		_, err := service.Create(ctx, &models.CategoryRequest{Name: "Boots"})
		assert.True(t, models.IsValidationError(err))
	})
}

func TestDashboardService_Stats(t *testing.T) {
	ctx := context.Background()
	products := new(MockProductRepository)
	orders := new(MockOrderRepository)
	brands := new(MockBrandRepository)
	service := NewDashboardService(products, orders, brands)

	products.On("Count", ctx).Return(int64(42), nil)
	orders.On("Count", ctx).Return(int64(10), nil)
	orders.On("CountByStatus", ctx, models.OrderStatusPending).Return(int64(3), nil)
	brands.On("Count", ctx).Return(int64(2), nil)

	stats, err := service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DashboardStats{Products: 42, Orders: 10, PendingOrders: 3, Brands: 2}, *stats)
}

func TestActivityService_Log(t *testing.T) {
	ctx := context.Background()

	t.Run("records and publishes", func(t *testing.T) {
		repo := new(MockActivityLogRepository)
		publisher := new(MockActivityPublisher)
		service := NewActivityService(repo, publisher, nil)

		matches := mock.MatchedBy(func(e *models.ActivityLog) bool {
			return e.Action == models.ActionCreate && e.EntityType == models.EntityProduct && e.AdminEmail == "admin@edoseleman.com"
		})
		repo.On("Record", ctx, matches).Return(nil)
		publisher.On("PublishActivity", ctx, matches).Return(nil)

		service.Log(ctx, Actor{ID: "a1", Email: "admin@edoseleman.com"}, models.ActionCreate, models.EntityProduct, "p1", "EDS-001")

		repo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("storage failures are swallowed", func(t *testing.T) {
		repo := new(MockActivityLogRepository)
		service := NewActivityService(repo, nil, nil)
		repo.On("Record", ctx, mock.Anything).Return(errors.New("connection refused"))

		assert.NotPanics(t, func() {
			service.Log(ctx, Actor{}, models.ActionDelete, models.EntityOrder, "o1", "")
		})
	})
}
