package services

import (
	"context"

	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/repository"
)

// DashboardService computes the admin dashboard counters
type DashboardService struct {
	products repository.ProductRepositoryInterface
	orders   repository.OrderRepository
	brands   repository.BrandRepositoryInterface
}

// NewDashboardService creates a dashboard service
func NewDashboardService(products repository.ProductRepositoryInterface, orders repository.OrderRepository, brands repository.BrandRepositoryInterface) *DashboardService {
	return &DashboardService{products: products, orders: orders, brands: brands}
}

func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	var err error

	if stats.Products, err = s.products.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Orders, err = s.orders.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingOrders, err = s.orders.CountByStatus(ctx, models.OrderStatusPending); err != nil {
		return nil, err
	}
	if stats.Brands, err = s.brands.Count(ctx); err != nil {
		return nil, err
	}
	return &stats, nil
}
