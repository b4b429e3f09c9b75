package services

import (
	"context"
	"errors"
	"time"

	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/repository"
)

// SettingsService reads and edits the settings singleton
type SettingsService struct {
	repo  repository.SettingsRepositoryInterface
	media *MediaService
	now   func() time.Time
}

// NewSettingsService creates a settings service
func NewSettingsService(repo repository.SettingsRepositoryInterface, media *MediaService) *SettingsService {
	return &SettingsService{repo: repo, media: media, now: time.Now}
}

// Get returns the settings, writing the defaults first when none exist
func (s *SettingsService) Get(ctx context.Context) (*models.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	defaults := models.DefaultSettings()
	now := s.now()
	defaults.CreatedAt = now
	defaults.UpdatedAt = now
	if err := s.repo.Save(ctx, &defaults); err != nil {
		return nil, err
	}
	return &defaults, nil
}

// Update merges the set fields into the singleton
func (s *SettingsService) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.Settings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	req.Apply(settings)
	settings.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// UploadBrandLogo stores the logo of edos or eleman and saves its URL
func (s *SettingsService) UploadBrandLogo(ctx context.Context, brand models.ProductBrand, file UploadFile) (*models.Settings, error) {
	if brand != models.ProductBrandEdos && brand != models.ProductBrandEleman {
		return nil, models.NewValidationError("brand", "Unknown brand %q", brand)
	}
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	url, err := s.media.UploadLogo(ctx, brand, file)
	if err != nil {
		return nil, err
	}
	if err := settings.SetLogo(brand, url); err != nil {
		return nil, err
	}
	settings.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
