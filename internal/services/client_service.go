package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/repository"
)

// ClientService manages the retailers that order from the group
type ClientService struct {
	repo repository.ClientRepositoryInterface
}

// NewClientService creates a client service
func NewClientService(repo repository.ClientRepositoryInterface) *ClientService {
	return &ClientService{repo: repo}
}

func (s *ClientService) List(ctx context.Context, filter ClientFilter) ([]models.Client, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterClients(clients, filter), nil
}

func (s *ClientService) Get(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ClientService) Create(ctx context.Context, req *models.ClientRequest) (*models.Client, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	client := &models.Client{}
	req.Apply(client)
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Update edits the contact fields and notes. Order counters are left alone.
func (s *ClientService) Update(ctx context.Context, id uuid.UUID, req *models.ClientRequest) (*models.Client, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(client)
	if err := s.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
