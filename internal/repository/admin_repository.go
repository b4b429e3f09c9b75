package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/spydz12/Eleman-Shoes/internal/models"
)

// AdminRepositoryInterface defines the contract for back-office accounts
type AdminRepositoryInterface interface {
	Create(ctx context.Context, admin *models.AdminUser) error
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	GetByID(ctx context.Context, id string) (*models.AdminUser, error)
	Count(ctx context.Context) (int64, error)
	TouchLogin(ctx context.Context, admin *models.AdminUser) error
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates the admin account repository
func NewAdminRepository(db *gorm.DB) AdminRepositoryInterface {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *models.AdminUser) error {
	admin.Email = strings.ToLower(strings.TrimSpace(admin.Email))
	if err := r.db.WithContext(ctx).Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	return r.first(ctx, "email = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*models.AdminUser, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *adminRepository) first(ctx context.Context, query string, arg interface{}) (*models.AdminUser, error) {
	var admin models.AdminUser
	if err := r.db.WithContext(ctx).Where(query, arg).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &admin, nil
}

func (r *adminRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.AdminUser{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return n, nil
}

func (r *adminRepository) TouchLogin(ctx context.Context, admin *models.AdminUser) error {
	now := time.Now()
	admin.LastLoginAt = &now
	return r.db.WithContext(ctx).Model(admin).Update("last_login_at", now).Error
}
