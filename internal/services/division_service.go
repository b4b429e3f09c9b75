package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/repository"
)

// DivisionService manages the storefront divisions
type DivisionService struct {
	divisions repository.DivisionRepositoryInterface
}

// NewDivisionService creates a division service
func NewDivisionService(divisions repository.DivisionRepositoryInterface) *DivisionService {
	return &DivisionService{divisions: divisions}
}

// List returns the divisions by display order
func (s *DivisionService) List(ctx context.Context) ([]models.Division, error) {
	divisions, err := s.divisions.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(divisions, func(i, j int) bool {
		return divisions[i].Order < divisions[j].Order
	})
	return divisions, nil
}

func (s *DivisionService) Create(ctx context.Context, req *models.DivisionRequest) (*models.Division, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	division := &models.Division{Name: req.Name, NameAr: req.NameAr, Slug: req.Slug, Order: req.Order}
	if err := s.divisions.Create(ctx, division); err != nil {
		return nil, err
	}
	return division, nil
}

func (s *DivisionService) Update(ctx context.Context, id uuid.UUID, req *models.DivisionRequest) (*models.Division, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	division, err := s.divisions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	division.Name = req.Name
	division.NameAr = req.NameAr
	division.Slug = req.Slug
	division.Order = req.Order
	if err := s.divisions.Update(ctx, division); err != nil {
		return nil, err
	}
	return division, nil
}

func (s *DivisionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.divisions.Delete(ctx, id)
}

// EnsureDefaults seeds the default divisions into an empty table
func (s *DivisionService) EnsureDefaults(ctx context.Context) (int, error) {
	n, err := s.divisions.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	created := 0
	for _, d := range models.DefaultDivisions() {
		division := d
		if err := s.divisions.Create(ctx, &division); err != nil {
			return created, fmt.Errorf("failed to seed division %s: %w", d.Slug, err)
		}
		created++
	}
	return created, nil
}
