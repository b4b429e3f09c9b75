package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/spydz12/Eleman-Shoes/internal/models"
)

// ProductRepositoryInterface defines the contract for product persistence
type ProductRepositoryInterface interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	ListActive(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.ProductStatus) (int64, error)
}

type productRepository struct {
	table[models.Product]
}

// NewProductRepository creates a product repository. The storefront list is
// cached; admin lists always hit the database.
func NewProductRepository(db *gorm.DB, redisClient *redis.Client) ProductRepositoryInterface {
	return &productRepository{table[models.Product]{db: db, cache: newCacheLayer(redisClient), name: "products", order: "created_at DESC"}}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	return r.create(ctx, product)
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return r.get(ctx, id)
}

func (r *productRepository) List(ctx context.Context) ([]models.Product, error) {
	return r.list(ctx, "", nil)
}

func (r *productRepository) ListActive(ctx context.Context) ([]models.Product, error) {
	return r.list(ctx, "active", func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", models.ProductStatusActive)
	})
}

func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	return r.save(ctx, product)
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, nil)
}

func (r *productRepository) CountByStatus(ctx context.Context, status models.ProductStatus) (int64, error) {
	return r.count(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", status)
	})
}
