package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/repository"
)

// ProductService manages the catalog and the color variants of each product.
// Every mutation re-validates the whole product before it is saved, so a
// stored product always has between 4 and 5 images per color.
type ProductService struct {
	repo  repository.ProductRepositoryInterface
	media *MediaService
}

// NewProductService creates a product service
func NewProductService(repo repository.ProductRepositoryInterface, media *MediaService) *ProductService {
	return &ProductService{repo: repo, media: media}
}

// AdminList returns every product matching the admin filters
func (s *ProductService) AdminList(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterAdminProducts(products, filter), nil
}

// StorefrontList returns the active catalog with its filter options
func (s *ProductService) StorefrontList(ctx context.Context, filter StorefrontFilter) (*StorefrontCatalog, error) {
	products, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	catalog := FilterStorefront(products, filter)
	return &catalog, nil
}

func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// GetActive returns a product visible on the storefront. Hidden products are not found.
func (s *ProductService) GetActive(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.Status != models.ProductStatusActive {
		return nil, repository.ErrNotFound
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, req *models.ProductRequest) (*models.Product, error) {
	product := &models.Product{}
	req.Apply(product)
	if err := product.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req *models.ProductRequest) (*models.Product, error) {
	var before []string
	product, err := s.mutate(ctx, id, func(p *models.Product) error {
		before = p.Images()
		req.Apply(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.media.Discard(ctx, product.DroppedImages(before)...)
	return product, nil
}

// Delete removes a product and then its stored images
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	for _, color := range product.ColorVariants {
		s.media.Discard(ctx, color.Images...)
	}
	return nil
}

// SetStatus shows or hides a product on the storefront
func (s *ProductService) SetStatus(ctx context.Context, id uuid.UUID, status models.ProductStatus) (*models.Product, error) {
	return s.mutate(ctx, id, func(p *models.Product) error {
		p.Status = status
		return nil
	})
}

// AddColor appends a new color variant built from req and the uploaded files.
// The files must yield at least MinImagesPerColor images.
func (s *ProductService) AddColor(ctx context.Context, id uuid.UUID, req *models.ColorRequest, files []UploadFile) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	color := models.NewColorVariant()
	if err := color.Rename(req.Name, req.NameAr, req.HexCode); err != nil {
		return nil, err
	}
	if n := countAccepted(files, 0); n < models.MinImagesPerColor {
		return nil, models.NewValidationError("colorVariants",
			"Color %q needs at least %d images (currently has %d)", color.Name, models.MinImagesPerColor, n)
	}

	uploaded, err := s.media.UploadProductImages(ctx, 0, files)
	if err != nil {
		return nil, err
	}
	if _, err := color.AddImages(uploaded.URLs); err != nil {
		s.media.Discard(ctx, uploaded.URLs...)
		return nil, err
	}

	product.ColorVariants = append(product.ColorVariants, color)
	if err := s.save(ctx, product); err != nil {
		s.media.Discard(ctx, uploaded.URLs...)
		return nil, err
	}
	return product, nil
}

// UpdateColor renames a color variant
func (s *ProductService) UpdateColor(ctx context.Context, id uuid.UUID, colorIndex int, req *models.ColorRequest) (*models.Product, error) {
	return s.mutate(ctx, id, func(p *models.Product) error {
		color, err := p.Color(colorIndex)
		if err != nil {
			return err
		}
		return color.Rename(req.Name, req.NameAr, req.HexCode)
	})
}

// RemoveColor drops a color variant with all its images
func (s *ProductService) RemoveColor(ctx context.Context, id uuid.UUID, colorIndex int) (*models.Product, error) {
	var removed []string
	product, err := s.mutate(ctx, id, func(p *models.Product) error {
		color, err := p.Color(colorIndex)
		if err != nil {
			return err
		}
		removed = color.Images
		return p.RemoveColor(colorIndex)
	})
	if err != nil {
		return nil, err
	}
	s.media.Discard(ctx, removed...)
	return product, nil
}

// UploadColorImages uploads images into the free slots of a color variant
func (s *ProductService) UploadColorImages(ctx context.Context, id uuid.UUID, colorIndex int, files []UploadFile) (*models.Product, *ImageUploadResult, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	color, err := product.Color(colorIndex)
	if err != nil {
		return nil, nil, err
	}

	uploaded, err := s.media.UploadProductImages(ctx, len(color.Images), files)
	if err != nil {
		return nil, nil, err
	}
	if len(uploaded.URLs) == 0 {
		return product, uploaded, nil
	}
	if _, err := color.AddImages(uploaded.URLs); err != nil {
		s.media.Discard(ctx, uploaded.URLs...)
		return nil, nil, err
	}
	if err := s.save(ctx, product); err != nil {
		s.media.Discard(ctx, uploaded.URLs...)
		return nil, nil, err
	}
	return product, uploaded, nil
}

// RemoveColorImage removes one image of a color variant
func (s *ProductService) RemoveColorImage(ctx context.Context, id uuid.UUID, colorIndex, imageIndex int) (*models.Product, error) {
	var removed string
	product, err := s.mutate(ctx, id, func(p *models.Product) error {
		color, err := p.Color(colorIndex)
		if err != nil {
			return err
		}
		if imageIndex >= 0 && imageIndex < len(color.Images) {
			removed = color.Images[imageIndex]
		}
		return color.RemoveImage(imageIndex)
	})
	if err != nil {
		return nil, err
	}
	s.media.Discard(ctx, removed)
	return product, nil
}

// SetMainImage designates the main image of a color variant
func (s *ProductService) SetMainImage(ctx context.Context, id uuid.UUID, colorIndex, imageIndex int) (*models.Product, error) {
	return s.mutate(ctx, id, func(p *models.Product) error {
		color, err := p.Color(colorIndex)
		if err != nil {
			return err
		}
		return color.SetMainImage(imageIndex)
	})
}

// UploadDraftImages uploads images for a variant that is not stored yet
func (s *ProductService) UploadDraftImages(ctx context.Context, existingCount int, files []UploadFile) (*ImageUploadResult, error) {
	return s.media.UploadProductImages(ctx, existingCount, files)
}

func (s *ProductService) mutate(ctx context.Context, id uuid.UUID, fn func(p *models.Product) error) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(product); err != nil {
		return nil, err
	}
	if err := s.save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) save(ctx context.Context, product *models.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, product)
}

// countAccepted is the number of files an upload next to existing images would store
func countAccepted(files []UploadFile, existing int) int {
	n := 0
	for _, f := range files {
		if models.CheckImageUpload(f.Filename, f.ContentType, f.Size) == nil {
			n++
		}
	}
	if free := models.MaxImagesPerColor - existing; n > free {
		n = free
	}
	return n
}
