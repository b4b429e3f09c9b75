package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spydz12/Eleman-Shoes/internal/models"
)

func TestGenerateOrderNumber(t *testing.T) {
	now := time.Date(2026, 1, 7, 14, 54, 45, 0, time.UTC)
	number := GenerateOrderNumber(now)
	assert.Regexp(t, regexp.MustCompile(`^EE-20260107-[0-9A-F]{6}$`), number)
	assert.NotEqual(t, number, GenerateOrderNumber(now))
}

func TestGenerateInvoiceNumber(t *testing.T) {
	now := time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)
	assert.Regexp(t, regexp.MustCompile(`^INV-202601-[0-9A-F]{6}$`), GenerateInvoiceNumber(now))
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("order starts pending and is recorded on the client", func(t *testing.T) {
		repo := new(MockOrderRepository)
		service := NewOrderService(repo)
		service.now = func() time.Time { return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC) }

		client := &models.Client{ID: uuid.New(), CompanyName: "Atlas Retail", TotalOrders: 3}
		repo.On("Create", ctx, mock.MatchedBy(func(o *models.Order) bool {
			return o.Status == models.OrderStatusPending && o.WhatsappNumber == "+212600000000"
		})).Return(client, nil)

		order, got, err := service.Create(ctx, &models.CreateOrderRequest{
			CompanyName:    " Atlas Retail ",
			Country:        "Morocco",
			WhatsappNumber: "+212600000000",
			Items:          []models.OrderItem{{ReferenceCode: "EDS-001", Quantity: 24}},
		})

		require.NoError(t, err)
		assert.Equal(t, "Atlas Retail", order.CompanyName)
		assert.Contains(t, order.OrderNumber, "EE-20260302-")
		assert.Equal(t, 24, order.TotalQuantity())
		assert.Equal(t, client, got)
		repo.AssertExpectations(t)
	})

	t.Run("missing whatsapp number", func(t *testing.T) {
		repo := new(MockOrderRepository)
		service := NewOrderService(repo)

		_, _, err := service.Create(ctx, &models.CreateOrderRequest{
			CompanyName: "Atlas Retail",
			Items:       []models.OrderItem{{ReferenceCode: "EDS-001", Quantity: 1}},
		})

		require.Error(t, err)
		assert.Equal(t, "Please fill in required fields: Company Name and WhatsApp Number", err.Error())
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		from      models.OrderStatus
		to        models.OrderStatus
		wantErr   bool
		wantSaved bool
	}{
		{"pending to preparing", models.OrderStatusPending, models.OrderStatusPreparing, false, true},
		{"shipped to completed", models.OrderStatusShipped, models.OrderStatusCompleted, false, true},
		{"same status is a no-op", models.OrderStatusShipped, models.OrderStatusShipped, false, false},
		{"completed is terminal", models.OrderStatusCompleted, models.OrderStatusPending, true, false},
		{"unknown status", models.OrderStatusPending, models.OrderStatus("lost"), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockOrderRepository)
			service := NewOrderService(repo)
			order := &models.Order{ID: uuid.New(), Status: tt.from}
			repo.On("GetByID", ctx, order.ID).Return(order, nil)
			repo.On("Update", ctx, order).Return(nil).Maybe()

			updated, previous, err := service.UpdateStatus(ctx, order.ID, tt.to)

			assert.Equal(t, tt.from, previous)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.to, updated.Status)
			}
			if tt.wantSaved {
				repo.AssertCalled(t, "Update", ctx, order)
			} else {
				repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestOrderService_UpdateShipping(t *testing.T) {
	ctx := context.Background()
	repo := new(MockOrderRepository)
	service := NewOrderService(repo)

	order := &models.Order{ID: uuid.New(), ShippingMethod: "DHL", InternalNotes: "VIP"}
	repo.On("GetByID", ctx, order.ID).Return(order, nil)
	repo.On("Update", ctx, order).Return(nil)

	tracking := "1Z999"
	updated, err := service.UpdateShipping(ctx, order.ID, &models.UpdateShippingRequest{TrackingNumber: &tracking})

	require.NoError(t, err)
	assert.Equal(t, "1Z999", updated.TrackingNumber)
	assert.Equal(t, "DHL", updated.ShippingMethod)
	assert.Equal(t, "VIP", updated.InternalNotes)
}
