package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/repository"
)

// GenerateInvoiceNumber returns INV-YYYYMM-XXXXXX
func GenerateInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV-%s-%s", now.Format("200601"), randomSuffix())
}

// InvoiceService bills orders and renders invoice PDFs
type InvoiceService struct {
	invoices repository.InvoiceRepositoryInterface
	orders   repository.OrderRepository
	clients  repository.ClientRepositoryInterface
	settings *SettingsService
	media    *MediaService
	currency string
	now      func() time.Time
}

// NewInvoiceService creates an invoice service. currency is used when a request sets none.
func NewInvoiceService(
	invoices repository.InvoiceRepositoryInterface,
	orders repository.OrderRepository,
	clients repository.ClientRepositoryInterface,
	settings *SettingsService,
	media *MediaService,
	currency string,
) *InvoiceService {
	if currency == "" {
		currency = "DZD"
	}
	return &InvoiceService{
		invoices: invoices,
		orders:   orders,
		clients:  clients,
		settings: settings,
		media:    media,
		currency: currency,
		now:      time.Now,
	}
}

// CreateFromOrder bills the items of an order. Unit prices are looked up by
// item reference and default to 0.
func (s *InvoiceService) CreateFromOrder(ctx context.Context, req *models.CreateInvoiceRequest) (*models.Invoice, error) {
	if req.TaxRate < 0 || req.TaxRate > 1 {
		return nil, models.NewValidationError("taxRate", "Tax rate must be between 0 and 1")
	}
	order, err := s.orders.GetByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewValidationError("orderId", "Order not found")
		}
		return nil, err
	}

	now := s.now()
	invoice := &models.Invoice{
		InvoiceNumber: GenerateInvoiceNumber(now),
		OrderID:       order.ID,
		BrandID:       req.BrandID,
		CompanyName:   order.CompanyName,
		TaxRate:       req.TaxRate,
		Currency:      strings.ToUpper(strings.TrimSpace(req.Currency)),
		Status:        models.InvoiceStatusDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if invoice.Currency == "" {
		invoice.Currency = s.currency
	}

	if client, err := s.clients.FindByWhatsapp(ctx, order.WhatsappNumber); err == nil {
		invoice.ClientID = &client.ID
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	items := make([]models.InvoiceItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, models.InvoiceItem{
			ProductID:     item.ProductID,
			ReferenceCode: item.ReferenceCode,
			Description:   item.NameFr,
			Color:         item.Color,
			Quantity:      item.Quantity,
			UnitPrice:     req.UnitPrices[item.ReferenceCode],
		})
	}
	invoice.Items = items
	invoice.Recalculate()

	if err := s.invoices.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *InvoiceService) List(ctx context.Context) ([]models.Invoice, error) {
	return s.invoices.List(ctx)
}

func (s *InvoiceService) Get(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

func (s *InvoiceService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.InvoiceStatus) (*models.Invoice, error) {
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice.Status == status {
		return invoice, nil
	}
	if err := models.ValidateInvoiceStatusTransition(invoice.Status, status); err != nil {
		return nil, err
	}
	invoice.Status = status
	invoice.UpdatedAt = s.now()
	if err := s.invoices.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *InvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.invoices.Delete(ctx, id)
}

// RenderPDF renders the invoice without storing it
func (s *InvoiceService) RenderPDF(ctx context.Context, id uuid.UUID) ([]byte, *models.Invoice, error) {
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, nil, err
	}
	order, err := s.orders.GetByID(ctx, invoice.OrderID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, nil, err
	}

	pdf, err := renderInvoicePDF(invoice, order, settings)
	if err != nil {
		return nil, nil, err
	}
	return pdf, invoice, nil
}

// GeneratePDF renders the invoice, stores it under invoices/{id}.pdf and saves its URL
func (s *InvoiceService) GeneratePDF(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	pdf, invoice, err := s.RenderPDF(ctx, id)
	if err != nil {
		return nil, err
	}
	url, err := s.media.UploadInvoicePDF(ctx, invoice.ID, pdf)
	if err != nil {
		return nil, err
	}
	invoice.PdfURL = url
	invoice.UpdatedAt = s.now()
	if err := s.invoices.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}
