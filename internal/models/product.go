package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProductBrand is the label a product is sold under
type ProductBrand string

const (
	ProductBrandEdos   ProductBrand = "edos"
	ProductBrandEleman ProductBrand = "eleman"
)

// ProductStatus represents the visibility of a product
type ProductStatus string

const (
	ProductStatusActive ProductStatus = "active"
	ProductStatusHidden ProductStatus = "hidden"
)

// Product is a footwear model. Its color variants are embedded as JSONB.
type Product struct {
	ID            uuid.UUID                         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Brand         ProductBrand                      `json:"brand" gorm:"not null;index"`
	Category      string                            `json:"category" gorm:"index"`
	Reference     string                            `json:"reference" gorm:"not null;index"`
	NameFr        string                            `json:"nameFr" gorm:"not null"`
	DescriptionFr string                            `json:"descriptionFr"`
	Status        ProductStatus                     `json:"status" gorm:"not null;default:'active';index"`
	ColorVariants datatypes.JSONSlice[ColorVariant] `json:"colorVariants" gorm:"type:jsonb"`
	CreatedAt     time.Time                         `json:"createdAt"`
	UpdatedAt     time.Time                         `json:"updatedAt"`
}

func (Product) TableName() string {
	return "products"
}

// ProductRequest is the create/update payload sent by the product editor
type ProductRequest struct {
	Brand         ProductBrand   `json:"brand"`
	Category      string         `json:"category"`
	Reference     string         `json:"reference"`
	NameFr        string         `json:"nameFr"`
	DescriptionFr string         `json:"descriptionFr"`
	Status        ProductStatus  `json:"status"`
	ColorVariants []ColorVariant `json:"colorVariants"`
}

// Apply copies the request onto the product
func (r *ProductRequest) Apply(p *Product) {
	p.Brand = r.Brand
	if p.Brand == "" {
		p.Brand = ProductBrandEdos
	}
	p.Category = strings.TrimSpace(r.Category)
	p.Reference = strings.TrimSpace(r.Reference)
	p.NameFr = strings.TrimSpace(r.NameFr)
	p.DescriptionFr = r.DescriptionFr
	p.Status = r.Status
	if p.Status == "" {
		p.Status = ProductStatusActive
	}
	variants := make([]ColorVariant, len(r.ColorVariants))
	for i, v := range r.ColorVariants {
		v.Images = append([]string(nil), v.Images...)
		v.ClampMainImage()
		variants[i] = v
	}
	p.ColorVariants = variants
}

// Validate checks the product before it is saved. Every variant must hold
// between MinImagesPerColor and MaxImagesPerColor images.
func (p *Product) Validate() error {
	if p.NameFr == "" || p.Reference == "" {
		return NewValidationError("nameFr", "Please fill in required fields: Product Name and Reference")
	}
	if p.Brand != ProductBrandEdos && p.Brand != ProductBrandEleman {
		return NewValidationError("brand", "Invalid brand %q", p.Brand)
	}
	if p.Status != ProductStatusActive && p.Status != ProductStatusHidden {
		return NewValidationError("status", "Invalid product status %q", p.Status)
	}
	if len(p.ColorVariants) == 0 {
		return NewValidationError("colorVariants", "Please add at least one color variant")
	}
	for _, color := range p.ColorVariants {
		if len(color.Images) < MinImagesPerColor {
			return NewValidationError("colorVariants",
				"Color %q needs at least %d images (currently has %d)", color.Name, MinImagesPerColor, len(color.Images))
		}
		if len(color.Images) > MaxImagesPerColor {
			return NewValidationError("colorVariants",
				"Color %q has too many images. Maximum is %d.", color.Name, MaxImagesPerColor)
		}
	}
	return nil
}

// AddColor appends a placeholder variant and returns its index
func (p *Product) AddColor() int {
	p.ColorVariants = append(p.ColorVariants, NewColorVariant())
	return len(p.ColorVariants) - 1
}

// RemoveColor drops the variant at index i together with its images
func (p *Product) RemoveColor(i int) error {
	if i < 0 || i >= len(p.ColorVariants) {
		return NewValidationError("color", "Color variant %d does not exist", i)
	}
	p.ColorVariants = append(p.ColorVariants[:i:i], p.ColorVariants[i+1:]...)
	return nil
}

// Color returns a pointer to the variant at index i
func (p *Product) Color(i int) (*ColorVariant, error) {
	if i < 0 || i >= len(p.ColorVariants) {
		return nil, NewValidationError("color", "Color variant %d does not exist", i)
	}
	return &p.ColorVariants[i], nil
}

// HasColor reports whether any variant is named name, ignoring case.
func (p *Product) HasColor(name string) bool {
	for _, c := range p.ColorVariants {
		if strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

// MainImage returns the main image of the first variant, if any.
func (p *Product) MainImage() string {
	if len(p.ColorVariants) == 0 {
		return ""
	}
	return p.ColorVariants[0].MainImage()
}

// Images lists the image URLs of every variant
func (p *Product) Images() []string {
	var urls []string
	for _, c := range p.ColorVariants {
		urls = append(urls, c.Images...)
	}
	return urls
}

// DroppedImages returns the URLs of before that no variant of p still uses
func (p *Product) DroppedImages(before []string) []string {
	kept := make(map[string]struct{})
	for _, u := range p.Images() {
		kept[u] = struct{}{}
	}
	var dropped []string
	for _, u := range before {
		if _, ok := kept[u]; !ok {
			dropped = append(dropped, u)
			kept[u] = struct{}{}
		}
	}
	return dropped
}

// ProductStatusRequest toggles product visibility
type ProductStatusRequest struct {
	Status ProductStatus `json:"status" binding:"required"`
}
