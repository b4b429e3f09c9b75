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
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = errors.New("record not found")

// Cache TTL constants
const (
	CatalogCacheTTL  = 5 * time.Minute
	SettingsCacheTTL = 30 * time.Minute
	cacheKeyPrefix   = "eleman:"
)

// newCacheLayer wraps the shared Redis client, or returns nil when caching is disabled.
func newCacheLayer(redisClient *redis.Client) *cache.CacheLayer {
	if redisClient == nil {
		return nil
	}
	return cache.NewCacheLayerFromClient(redisClient, cache.CacheConfig{
		L1Enabled:  true,
		L1MaxItems: 1000,
		L1TTL:      30 * time.Second,
		DefaultTTL: CatalogCacheTTL,
		KeyPrefix:  cacheKeyPrefix,
	})
}

// table is the CRUD core shared by the entity repositories. Lists are read
// through the cache when one is configured and every write drops the
// table's cached lists.
type table[T any] struct {
	db    *gorm.DB
	cache *cache.CacheLayer
	name  string
	order string
}

func (t *table[T]) create(ctx context.Context, v *T) error {
	if err := t.db.WithContext(ctx).Create(v).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", t.name, err)
	}
	t.invalidate(ctx)
	return nil
}

func (t *table[T]) get(ctx context.Context, id uuid.UUID) (*T, error) {
	var v T
	if err := t.db.WithContext(ctx).Where("id = ?", id).First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", t.name, err)
	}
	return &v, nil
}

func (t *table[T]) list(ctx context.Context, key string, scope func(*gorm.DB) *gorm.DB) ([]T, error) {
	load := func() ([]T, error) {
		var out []T
		query := t.db.WithContext(ctx).Order(t.order)
		if scope != nil {
			query = scope(query)
		}
		if err := query.Find(&out).Error; err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", t.name, err)
		}
		return out, nil
	}

	if t.cache == nil || key == "" {
		return load()
	}

	var out []T
	err := t.cache.GetOrSetJSON(ctx, t.listKey(key), &out, CatalogCacheTTL, func() (any, error) {
		return load()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (t *table[T]) save(ctx context.Context, v *T) error {
	if err := t.db.WithContext(ctx).Save(v).Error; err != nil {
		return fmt.Errorf("failed to update %s: %w", t.name, err)
	}
	t.invalidate(ctx)
	return nil
}

func (t *table[T]) delete(ctx context.Context, id uuid.UUID) error {
	var v T
	result := t.db.WithContext(ctx).Where("id = ?", id).Delete(&v)
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", t.name, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	t.invalidate(ctx)
	return nil
}

func (t *table[T]) count(ctx context.Context, scope func(*gorm.DB) *gorm.DB) (int64, error) {
	var v T
	var n int64
	query := t.db.WithContext(ctx).Model(&v)
	if scope != nil {
		query = scope(query)
	}
	if err := query.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", t.name, err)
	}
	return n, nil
}

func (t *table[T]) listKey(key string) string {
	return fmt.Sprintf("%s:list:%s", t.name, key)
}

func (t *table[T]) invalidate(ctx context.Context) {
	if t.cache == nil {
		return
	}
	_ = t.cache.DeletePattern(ctx, t.name+":list:*")
}
