package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Division is a top-level product grouping shown in the storefront navigation
type Division struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"not null"`
	NameAr    string    `json:"nameAr" gorm:"not null"`
	Slug      string    `json:"slug" gorm:"not null;uniqueIndex"`
	Order     int       `json:"order" gorm:"column:sort_order;not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Division) TableName() string {
	return "divisions"
}

// DivisionRequest is the create/update payload for a division
type DivisionRequest struct {
	Name   string `json:"name"`
	NameAr string `json:"nameAr"`
	Slug   string `json:"slug"`
	Order  int    `json:"order"`
}

// Validate checks the required division fields and normalises the slug
func (r *DivisionRequest) Validate() error {
	r.Slug = NormalizeSlug(r.Slug)
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.NameAr) == "" || r.Slug == "" {
		return NewValidationError("name", "Please fill in all required fields")
	}
	return nil
}

// DefaultDivisions are seeded when the divisions table is empty
func DefaultDivisions() []Division {
	return []Division{
		{Name: "LEATHER", NameAr: "جلد", Slug: "leather", Order: 1},
		{Name: "DRESS SHOES", NameAr: "أحذية رسمية", Slug: "dress-shoes", Order: 2},
	}
}

// Category groups products inside a division
type Category struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name       string     `json:"name" gorm:"not null"`
	NameAr     string     `json:"nameAr" gorm:"not null"`
	DivisionID *uuid.UUID `json:"divisionId,omitempty" gorm:"type:uuid;index"`
	Slug       string     `json:"slug" gorm:"index"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryRequest is the create/update payload for a category
type CategoryRequest struct {
	Name       string     `json:"name"`
	NameAr     string     `json:"nameAr"`
	DivisionID *uuid.UUID `json:"divisionId"`
	Slug       string     `json:"slug"`
}

// Validate checks the required category fields. An empty slug is derived from the name.
func (r *CategoryRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.NameAr) == "" {
		return NewValidationError("name", "Please fill in all required fields")
	}
	if r.Slug == "" {
		r.Slug = r.Name
	}
	r.Slug = NormalizeSlug(r.Slug)
	return nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeSlug lowercases s and replaces each whitespace run with a dash.
func NormalizeSlug(s string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
}
