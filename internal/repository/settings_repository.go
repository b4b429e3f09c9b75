package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/spydz12/Eleman-Shoes/internal/models"
)

const settingsCacheKey = cacheKeyPrefix + "settings:" + models.SettingsID

// SettingsRepositoryInterface defines the contract for the settings singleton
type SettingsRepositoryInterface interface {
	// Get returns ErrNotFound when the singleton has not been written yet
	Get(ctx context.Context) (*models.Settings, error)
	Save(ctx context.Context, settings *models.Settings) error
}

type settingsRepository struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewSettingsRepository creates the settings repository. The singleton is
// cached in Redis as JSON when a client is given.
func NewSettingsRepository(db *gorm.DB, redisClient *redis.Client) SettingsRepositoryInterface {
	return &settingsRepository{db: db, redis: redisClient}
}

func (r *settingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	if r.redis != nil {
		val, err := r.redis.Get(ctx, settingsCacheKey).Result()
		if err == nil {
			var settings models.Settings
			if err := json.Unmarshal([]byte(val), &settings); err == nil {
				return &settings, nil
			}
		}
	}

	var settings models.Settings
	if err := r.db.WithContext(ctx).Where("id = ?", models.SettingsID).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	r.store(ctx, &settings)
	return &settings, nil
}

// Save upserts the singleton.
func (r *settingsRepository) Save(ctx context.Context, settings *models.Settings) error {
	settings.ID = models.SettingsID
	settings.UpdatedAt = time.Now()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Settings
		err := tx.Where("id = ?", models.SettingsID).First(&current).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if settings.CreatedAt.IsZero() {
				settings.CreatedAt = settings.UpdatedAt
			}
			return tx.Create(settings).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&current).Select("*").Omit("id", "created_at").Updates(settings).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	if r.redis != nil {
		r.redis.Del(ctx, settingsCacheKey)
	}
	return nil
}

func (r *settingsRepository) store(ctx context.Context, settings *models.Settings) {
	if r.redis == nil {
		return
	}
	data, err := json.Marshal(settings)
	if err == nil {
		r.redis.Set(ctx, settingsCacheKey, data, SettingsCacheTTL)
	}
}
