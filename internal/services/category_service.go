package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/repository"
)

// CategoryService manages product categories. A category may belong to a division.
type CategoryService struct {
	categories repository.CategoryRepositoryInterface
	divisions  repository.DivisionRepositoryInterface
}

// NewCategoryService creates a category service
func NewCategoryService(categories repository.CategoryRepositoryInterface, divisions repository.DivisionRepositoryInterface) *CategoryService {
	return &CategoryService{categories: categories, divisions: divisions}
}

// List returns the categories, optionally those of one division
func (s *CategoryService) List(ctx context.Context, divisionID *uuid.UUID) ([]models.Category, error) {
	return s.categories.List(ctx, divisionID)
}

func (s *CategoryService) Create(ctx context.Context, req *models.CategoryRequest) (*models.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkDivision(ctx, req.DivisionID); err != nil {
		return nil, err
	}
	category := &models.Category{Name: req.Name, NameAr: req.NameAr, DivisionID: req.DivisionID, Slug: req.Slug}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req *models.CategoryRequest) (*models.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkDivision(ctx, req.DivisionID); err != nil {
		return nil, err
	}
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Name = req.Name
	category.NameAr = req.NameAr
	category.DivisionID = req.DivisionID
	category.Slug = req.Slug
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.categories.Delete(ctx, id)
}

func (s *CategoryService) checkDivision(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := s.divisions.GetByID(ctx, *id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.NewValidationError("divisionId", "Division not found")
		}
		return err
	}
	return nil
}
