package models

import (
	"fmt"
	"strings"
)

const (
	MinImagesPerColor = 4
	MaxImagesPerColor = 5
	MaxImageSizeBytes = 5 * 1024 * 1024

	// MaxUploadBodyBytes caps an image upload request: a full color of
	// images plus room for the other form fields
	MaxUploadBodyBytes = MaxImagesPerColor*MaxImageSizeBytes + 1024*1024
)

// ColorVariant is a named color option of a product with its image set
type ColorVariant struct {
	Name           string   `json:"name"`
	NameAr         string   `json:"nameAr"`
	HexCode        string   `json:"hexCode"`
	Images         []string `json:"images"`
	MainImageIndex int      `json:"mainImageIndex"`
}

// NewColorVariant returns the placeholder variant the editor starts from
func NewColorVariant() ColorVariant {
	return ColorVariant{
		Name:           "New Color",
		NameAr:         "لون جديد",
		HexCode:        "#000000",
		Images:         []string{},
		MainImageIndex: 0,
	}
}

// RemainingSlots is the number of images that can still be added
func (c *ColorVariant) RemainingSlots() int {
	if n := MaxImagesPerColor - len(c.Images); n > 0 {
		return n
	}
	return 0
}

// AddImages appends as many urls as fit and returns the accepted ones.
func (c *ColorVariant) AddImages(urls []string) ([]string, error) {
	slots := c.RemainingSlots()
	if slots == 0 {
		return nil, NewValidationError("images", "Maximum %d images per color", MaxImagesPerColor)
	}
	if len(urls) > slots {
		urls = urls[:slots]
	}
	c.Images = append(c.Images[:len(c.Images):len(c.Images)], urls...)
	return urls, nil
}

// RemoveImage deletes the image at index i and keeps MainImageIndex pointing
// at a valid image: the main image falls back to 0 when it is removed and
// shifts left when an earlier image is removed.
func (c *ColorVariant) RemoveImage(i int) error {
	if i < 0 || i >= len(c.Images) {
		return NewValidationError("image", "Image %d does not exist", i)
	}
	c.Images = append(c.Images[:i:i], c.Images[i+1:]...)
	switch {
	case i == c.MainImageIndex:
		c.MainImageIndex = 0
	case i < c.MainImageIndex:
		c.MainImageIndex--
	}
	c.ClampMainImage()
	return nil
}

// SetMainImage designates the image at index i as the main one
func (c *ColorVariant) SetMainImage(i int) error {
	if i < 0 || i >= len(c.Images) {
		return NewValidationError("image", "Image %d does not exist", i)
	}
	c.MainImageIndex = i
	return nil
}

// ClampMainImage forces MainImageIndex into [0, max(0, len(Images)-1)].
func (c *ColorVariant) ClampMainImage() {
	last := len(c.Images) - 1
	if last < 0 {
		last = 0
	}
	if c.MainImageIndex > last {
		c.MainImageIndex = last
	}
	if c.MainImageIndex < 0 {
		c.MainImageIndex = 0
	}
}

// MainImage returns the URL of the main image or "" when there are none
func (c *ColorVariant) MainImage() string {
	if len(c.Images) == 0 {
		return ""
	}
	i := c.MainImageIndex
	if i < 0 || i >= len(c.Images) {
		i = 0
	}
	return c.Images[i]
}

// Rename updates the labels of the variant. The French name is required.
func (c *ColorVariant) Rename(name, nameAr, hexCode string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return NewValidationError("name", "Color name (French) is required")
	}
	c.Name = name
	c.NameAr = strings.TrimSpace(nameAr)
	if hexCode != "" {
		c.HexCode = hexCode
	}
	return nil
}

// ColorRequest is the payload used to rename a color variant
type ColorRequest struct {
	Name    string `json:"name"`
	NameAr  string `json:"nameAr"`
	HexCode string `json:"hexCode"`
}

// MainImageRequest designates a variant's main image
type MainImageRequest struct {
	Index *int `json:"index" binding:"required"`
}

// UploadRejection explains why an uploaded file was skipped
type UploadRejection struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// CheckImageUpload validates one file of an image upload.
func CheckImageUpload(filename, contentType string, size int64) *UploadRejection {
	if !strings.HasPrefix(contentType, "image/") {
		return &UploadRejection{Filename: filename, Reason: fmt.Sprintf("File %q is not an image", filename)}
	}
	if size > MaxImageSizeBytes {
		return &UploadRejection{Filename: filename, Reason: fmt.Sprintf("File %q is too large. Maximum size is 5MB", filename)}
	}
	return nil
}
