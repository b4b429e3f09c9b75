package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is a back-office account
type AdminUser struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string     `json:"email" gorm:"not null;uniqueIndex"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-" gorm:"not null"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

// LoginRequest is the admin login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token
type LoginResponse struct {
	AccessToken string     `json:"accessToken"`
	ExpiresAt   time.Time  `json:"expiresAt"`
	Admin       *AdminUser `json:"admin"`
}

// DashboardStats are the counters shown on the admin dashboard
type DashboardStats struct {
	Products      int64 `json:"products"`
	Orders        int64 `json:"orders"`
	PendingOrders int64 `json:"pendingOrders"`
	Brands        int64 `json:"brands"`
}
