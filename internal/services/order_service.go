package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/repository"
)

// GenerateOrderNumber returns EE-YYYYMMDD-XXXXXX
func GenerateOrderNumber(now time.Time) string {
	return fmt.Sprintf("EE-%s-%s", now.Format("20060102"), randomSuffix())
}

// randomSuffix is six uppercase hex characters
func randomSuffix() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
}

// OrderService handles wholesale order requests
type OrderService struct {
	repo repository.OrderRepository
	now  func() time.Time
}

// NewOrderService creates an order service
func NewOrderService(repo repository.OrderRepository) *OrderService {
	return &OrderService{repo: repo, now: time.Now}
}

func (s *OrderService) List(ctx context.Context, filter OrderFilter) ([]models.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterOrders(orders, filter), nil
}

func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *OrderService) GetByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	return s.repo.GetByOrderNumber(ctx, orderNumber)
}

// Create stores a new pending order and records it on the client with the
// same WhatsApp number, creating the client when needed.
func (s *OrderService) Create(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *models.Client, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	now := s.now()
	order := &models.Order{
		OrderNumber:    GenerateOrderNumber(now),
		CompanyName:    strings.TrimSpace(req.CompanyName),
		Country:        strings.TrimSpace(req.Country),
		WhatsappNumber: strings.TrimSpace(req.WhatsappNumber),
		Email:          strings.TrimSpace(req.Email),
		Items:          req.Items,
		Notes:          req.Notes,
		Status:         models.OrderStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	client, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, nil, err
	}
	return order, client, nil
}

// UpdateStatus moves the order through the status state machine. Setting
// the current status again is a no-op.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, models.OrderStatus, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	previous := order.Status
	if previous == status {
		return order, previous, nil
	}
	if err := models.ValidateOrderStatusTransition(previous, status); err != nil {
		return nil, previous, err
	}

	order.Status = status
	order.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, previous, err
	}
	return order, previous, nil
}

// UpdateShipping edits the shipping details and internal notes
func (s *OrderService) UpdateShipping(ctx context.Context, id uuid.UUID, req *models.UpdateShippingRequest) (*models.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(order)
	order.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
