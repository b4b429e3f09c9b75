package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/repository"
)

// BrandService manages the group's brands
type BrandService struct {
	repo  repository.BrandRepositoryInterface
	media *MediaService
}

// NewBrandService creates a brand service
func NewBrandService(repo repository.BrandRepositoryInterface, media *MediaService) *BrandService {
	return &BrandService{repo: repo, media: media}
}

func (s *BrandService) List(ctx context.Context, filter BrandFilter) ([]models.Brand, error) {
	brands, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterBrands(brands, filter), nil
}

func (s *BrandService) Get(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BrandService) Create(ctx context.Context, req *models.BrandRequest) (*models.Brand, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	brand := &models.Brand{}
	req.Apply(brand)
	if err := s.repo.Create(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *BrandService) Update(ctx context.Context, id uuid.UUID, req *models.BrandRequest) (*models.Brand, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	brand, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(brand)
	if err := s.repo.Update(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *BrandService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// UploadLogo stores a new logo and points the brand at it
func (s *BrandService) UploadLogo(ctx context.Context, id uuid.UUID, file UploadFile) (*models.Brand, error) {
	brand, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	url, err := s.media.UploadBrandLogo(ctx, id, file)
	if err != nil {
		return nil, err
	}
	brand.Logo = url
	if err := s.repo.Update(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}
