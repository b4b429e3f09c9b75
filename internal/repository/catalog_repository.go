package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/spydz12/Eleman-Shoes/internal/models"
)

// BrandRepositoryInterface defines the contract for brand persistence
type BrandRepositoryInterface interface {
	Create(ctx context.Context, brand *models.Brand) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Brand, error)
	List(ctx context.Context) ([]models.Brand, error)
	Update(ctx context.Context, brand *models.Brand) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type brandRepository struct {
	table[models.Brand]
}

// NewBrandRepository creates a brand repository; redisClient may be nil
func NewBrandRepository(db *gorm.DB, redisClient *redis.Client) BrandRepositoryInterface {
	return &brandRepository{table[models.Brand]{db: db, cache: newCacheLayer(redisClient), name: "brands", order: "created_at DESC"}}
}

func (r *brandRepository) Create(ctx context.Context, brand *models.Brand) error {
	return r.create(ctx, brand)
}

func (r *brandRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	return r.get(ctx, id)
}

func (r *brandRepository) List(ctx context.Context) ([]models.Brand, error) {
	return r.list(ctx, "all", nil)
}

func (r *brandRepository) Update(ctx context.Context, brand *models.Brand) error {
	return r.save(ctx, brand)
}

func (r *brandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}

func (r *brandRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, nil)
}

// DivisionRepositoryInterface defines the contract for division persistence
type DivisionRepositoryInterface interface {
	Create(ctx context.Context, division *models.Division) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Division, error)
	List(ctx context.Context) ([]models.Division, error)
	Update(ctx context.Context, division *models.Division) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type divisionRepository struct {
	table[models.Division]
}

// NewDivisionRepository creates a division repository listing by display order
func NewDivisionRepository(db *gorm.DB, redisClient *redis.Client) DivisionRepositoryInterface {
	return &divisionRepository{table[models.Division]{db: db, cache: newCacheLayer(redisClient), name: "divisions", order: "sort_order ASC, name ASC"}}
}

func (r *divisionRepository) Create(ctx context.Context, division *models.Division) error {
	return r.create(ctx, division)
}

func (r *divisionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Division, error) {
	return r.get(ctx, id)
}

func (r *divisionRepository) List(ctx context.Context) ([]models.Division, error) {
	return r.list(ctx, "all", nil)
}

func (r *divisionRepository) Update(ctx context.Context, division *models.Division) error {
	return r.save(ctx, division)
}

func (r *divisionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}

func (r *divisionRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, nil)
}

// CategoryRepositoryInterface defines the contract for category persistence
type CategoryRepositoryInterface interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	List(ctx context.Context, divisionID *uuid.UUID) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryRepository struct {
	table[models.Category]
}

// NewCategoryRepository creates a category repository
func NewCategoryRepository(db *gorm.DB, redisClient *redis.Client) CategoryRepositoryInterface {
	return &categoryRepository{table[models.Category]{db: db, cache: newCacheLayer(redisClient), name: "categories", order: "name ASC"}}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.create(ctx, category)
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return r.get(ctx, id)
}

func (r *categoryRepository) List(ctx context.Context, divisionID *uuid.UUID) ([]models.Category, error) {
	if divisionID == nil {
		return r.list(ctx, "all", nil)
	}
	return r.list(ctx, "division:"+divisionID.String(), func(db *gorm.DB) *gorm.DB {
		return db.Where("division_id = ?", *divisionID)
	})
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	return r.save(ctx, category)
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}
