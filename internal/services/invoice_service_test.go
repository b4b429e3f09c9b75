package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/repository"
)

type invoiceFixture struct {
	service  *InvoiceService
	invoices *MockInvoiceRepository
	orders   *MockOrderRepository
	clients  *MockClientRepository
	settings *MockSettingsRepository
	docs     *fakeDocumentClient
}

func newInvoiceFixture() *invoiceFixture {
	f := &invoiceFixture{
		invoices: new(MockInvoiceRepository),
		orders:   new(MockOrderRepository),
		clients:  new(MockClientRepository),
		settings: new(MockSettingsRepository),
		docs:     &fakeDocumentClient{},
	}
	media := NewMediaService(f.docs)
	f.service = NewInvoiceService(f.invoices, f.orders, f.clients, NewSettingsService(f.settings, media), media, "")
	return f
}

func createTestOrder() *models.Order {
	return &models.Order{
		ID:             uuid.New(),
		OrderNumber:    "EE-20260107-ABC123",
		CompanyName:    "Sahara Shoes",
		Country:        "Algeria",
		WhatsappNumber: "+213555000000",
		Status:         models.OrderStatusPreparing,
		Items: []models.OrderItem{
			{ReferenceCode: "EDS-001", NameFr: "Mocassin Cuir", Color: "Noir", Quantity: 12},
			{ReferenceCode: "ELM-002", NameFr: "Richelieu", Quantity: 3},
		},
		CreatedAt: time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC),
	}
}

func TestInvoiceService_CreateFromOrder(t *testing.T) {
	ctx := context.Background()
	f := newInvoiceFixture()
	order := createTestOrder()
	client := &models.Client{ID: uuid.New()}

	f.orders.On("GetByID", ctx, order.ID).Return(order, nil)
	f.clients.On("FindByWhatsapp", ctx, order.WhatsappNumber).Return(client, nil)
	f.invoices.On("Create", ctx, mock.AnythingOfType("*models.Invoice")).Return(nil)

	invoice, err := f.service.CreateFromOrder(ctx, &models.CreateInvoiceRequest{
		OrderID:    order.ID,
		UnitPrices: map[string]float64{"EDS-001": 2500},
		TaxRate:    0.19,
	})

	require.NoError(t, err)
	assert.Regexp(t, `^INV-\d{6}-[0-9A-F]{6}$`, invoice.InvoiceNumber)
	assert.Equal(t, "DZD", invoice.Currency)
	assert.Equal(t, models.InvoiceStatusDraft, invoice.Status)
	assert.Equal(t, &client.ID, invoice.ClientID)
	require.Len(t, invoice.Items, 2)
	assert.Equal(t, 30000.0, invoice.Items[0].Total)
	assert.Equal(t, 0.0, invoice.Items[1].UnitPrice)
	assert.Equal(t, 30000.0, invoice.Subtotal)
	assert.Equal(t, 5700.0, invoice.Tax)
	assert.Equal(t, 35700.0, invoice.Total)
}

func TestInvoiceService_CreateFromOrderWithoutClient(t *testing.T) {
	ctx := context.Background()
	f := newInvoiceFixture()
	order := createTestOrder()

	f.orders.On("GetByID", ctx, order.ID).Return(order, nil)
	f.clients.On("FindByWhatsapp", ctx, order.WhatsappNumber).Return(nil, repository.ErrNotFound)
	f.invoices.On("Create", ctx, mock.AnythingOfType("*models.Invoice")).Return(nil)

	invoice, err := f.service.CreateFromOrder(ctx, &models.CreateInvoiceRequest{OrderID: order.ID, Currency: "eur"})
	require.NoError(t, err)
	assert.Nil(t, invoice.ClientID)
	assert.Equal(t, "EUR", invoice.Currency)
}

func TestInvoiceService_CreateFromMissingOrder(t *testing.T) {
	ctx := context.Background()
	f := newInvoiceFixture()
	id := uuid.New()
	f.orders.On("GetByID", ctx, id).Return(nil, repository.ErrNotFound)

	_, err := f.service.CreateFromOrder(ctx, &models.CreateInvoiceRequest{OrderID: id})
	require.Error(t, err)
	assert.True(t, models.IsValidationError(err))
}

func TestInvoiceService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	f := newInvoiceFixture()
	invoice := &models.Invoice{ID: uuid.New(), Status: models.InvoiceStatusPaid}
	f.invoices.On("GetByID", ctx, invoice.ID).Return(invoice, nil)

	_, err := f.service.UpdateStatus(ctx, invoice.ID, models.InvoiceStatusDraft)
	var transitionErr *models.TransitionError
	assert.ErrorAs(t, err, &transitionErr)
}

func TestInvoiceService_GeneratePDF(t *testing.T) {
	ctx := context.Background()
	f := newInvoiceFixture()
	order := createTestOrder()
	settings := models.DefaultSettings()
	invoice := &models.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "INV-202601-ABCDEF",
		OrderID:       order.ID,
		CompanyName:   order.CompanyName,
		Items:         []models.InvoiceItem{{ReferenceCode: "EDS-001", Description: "Mocassin Cuir", Quantity: 2, UnitPrice: 10}},
		TaxRate:       0.19,
		Currency:      "DZD",
		Status:        models.InvoiceStatusDraft,
		CreatedAt:     time.Now(),
	}
	invoice.Recalculate()

	f.invoices.On("GetByID", ctx, invoice.ID).Return(invoice, nil)
	f.settings.On("Get", ctx).Return(&settings, nil)
	f.orders.On("GetByID", ctx, order.ID).Return(order, nil)
	f.invoices.On("Update", ctx, invoice).Return(nil)

	pdf, _, err := f.service.RenderPDF(ctx, invoice.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	updated, err := f.service.GeneratePDF(ctx, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/invoices/"+invoice.ID.String()+".pdf", updated.PdfURL)
	assert.Equal(t, []string{"invoices/" + invoice.ID.String() + ".pdf"}, f.docs.paths)
}
