package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Tesseract-Nexus/go-shared/cache"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/spydz12/Eleman-Shoes/internal/models"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// Create stores the order and records it on the matching client in one transaction
	Create(ctx context.Context, order *models.Order) (*models.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error)
	// Health check methods for Redis
	RedisHealth(ctx context.Context) error
	CacheStats() *cache.CacheStats
}

type orderRepository struct {
	table[models.Order]
	redis *redis.Client
}

// NewOrderRepository creates a new order repository with optional Redis caching
func NewOrderRepository(db *gorm.DB, redisClient *redis.Client) OrderRepository {
	return &orderRepository{
		table: table[models.Order]{db: db, cache: newCacheLayer(redisClient), name: "orders", order: "created_at DESC"},
		redis: redisClient,
	}
}

func (r *orderRepository) Create(ctx context.Context, order *models.Order) (*models.Client, error) {
	var client *models.Client
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		c, err := recordClientOrder(tx, order)
		if err != nil {
			return err
		}
		client = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return client, nil
}

// recordClientOrder finds the client by WhatsApp number, creating it from the
// order when missing, then bumps its order counters.
func recordClientOrder(tx *gorm.DB, order *models.Order) (*models.Client, error) {
	var client models.Client
	err := tx.Where("whatsapp_number = ?", order.WhatsappNumber).First(&client).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		client = models.Client{
			CompanyName:    order.CompanyName,
			Country:        order.Country,
			WhatsappNumber: order.WhatsappNumber,
			Email:          order.Email,
		}
	case err != nil:
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	placedAt := order.CreatedAt
	if placedAt.IsZero() {
		placedAt = time.Now()
	}
	client.TotalOrders++
	client.LastOrderDate = &placedAt
	if client.Email == "" {
		client.Email = order.Email
	}

	if err := tx.Save(&client).Error; err != nil {
		return nil, fmt.Errorf("failed to record client order: %w", err)
	}
	return &client, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return r.get(ctx, id)
}

func (r *orderRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order by number: %w", err)
	}
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context) ([]models.Order, error) {
	return r.list(ctx, "", nil)
}

func (r *orderRepository) Update(ctx context.Context, order *models.Order) error {
	return r.save(ctx, order)
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, nil)
}

func (r *orderRepository) CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error) {
	return r.count(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", status)
	})
}

// RedisHealth checks if Redis is healthy
func (r *orderRepository) RedisHealth(ctx context.Context) error {
	if r.redis == nil {
		return fmt.Errorf("redis not configured")
	}
	return r.redis.Ping(ctx).Err()
}

// CacheStats returns cache statistics
func (r *orderRepository) CacheStats() *cache.CacheStats {
	if r.cache == nil {
		return nil
	}
	stats := r.cache.Stats()
	return &stats
}
