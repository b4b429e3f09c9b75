package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BrandStatus represents whether a brand is shown on the storefront
type BrandStatus string

const (
	BrandStatusActive   BrandStatus = "active"
	BrandStatusDisabled BrandStatus = "disabled"
)

// Brand is one of the group's footwear labels
type Brand struct {
	ID             uuid.UUID   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string      `json:"name" gorm:"not null"`
	NameAr         string      `json:"nameAr" gorm:"not null"`
	Description    string      `json:"description"`
	DescriptionAr  string      `json:"descriptionAr"`
	WhatsappNumber string      `json:"whatsappNumber"`
	Logo           string      `json:"logo"`
	Status         BrandStatus `json:"status" gorm:"not null;default:'active';index"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

func (Brand) TableName() string {
	return "brands"
}

// BrandRequest is the create/update payload for a brand
type BrandRequest struct {
	Name           string      `json:"name"`
	NameAr         string      `json:"nameAr"`
	Description    string      `json:"description"`
	DescriptionAr  string      `json:"descriptionAr"`
	WhatsappNumber string      `json:"whatsappNumber"`
	Logo           string      `json:"logo"`
	Status         BrandStatus `json:"status"`
}

// Validate checks the required brand fields
func (r *BrandRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.NameAr) == "" {
		return NewValidationError("name", "Please fill in required fields")
	}
	if r.Status != "" && r.Status != BrandStatusActive && r.Status != BrandStatusDisabled {
		return NewValidationError("status", "Invalid brand status %q", r.Status)
	}
	return nil
}

// Apply copies the request onto the brand
func (r *BrandRequest) Apply(b *Brand) {
	b.Name = strings.TrimSpace(r.Name)
	b.NameAr = strings.TrimSpace(r.NameAr)
	b.Description = r.Description
	b.DescriptionAr = r.DescriptionAr
	b.WhatsappNumber = r.WhatsappNumber
	if r.Logo != "" {
		b.Logo = r.Logo
	}
	b.Status = r.Status
	if b.Status == "" {
		b.Status = BrandStatusActive
	}
}
