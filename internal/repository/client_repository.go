package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/spydz12/Eleman-Shoes/internal/models"
)

// ClientRepositoryInterface defines the contract for client persistence
type ClientRepositoryInterface interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error)
	FindByWhatsapp(ctx context.Context, number string) (*models.Client, error)
	List(ctx context.Context) ([]models.Client, error)
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientRepository struct {
	table[models.Client]
}

// NewClientRepository creates a client repository. Client lists are not cached.
func NewClientRepository(db *gorm.DB) ClientRepositoryInterface {
	return &clientRepository{table[models.Client]{db: db, name: "clients", order: "created_at DESC"}}
}

func (r *clientRepository) Create(ctx context.Context, client *models.Client) error {
	return r.create(ctx, client)
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	return r.get(ctx, id)
}

func (r *clientRepository) FindByWhatsapp(ctx context.Context, number string) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).Where("whatsapp_number = ?", number).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	return &client, nil
}

func (r *clientRepository) List(ctx context.Context) ([]models.Client, error) {
	return r.list(ctx, "", nil)
}

func (r *clientRepository) Update(ctx context.Context, client *models.Client) error {
	return r.save(ctx, client)
}

func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}

// InvoiceRepositoryInterface defines the contract for invoice persistence
type InvoiceRepositoryInterface interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	List(ctx context.Context) ([]models.Invoice, error)
	Update(ctx context.Context, invoice *models.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type invoiceRepository struct {
	table[models.Invoice]
}

// NewInvoiceRepository creates an invoice repository
func NewInvoiceRepository(db *gorm.DB) InvoiceRepositoryInterface {
	return &invoiceRepository{table[models.Invoice]{db: db, name: "invoices", order: "created_at DESC"}}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	return r.create(ctx, invoice)
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	return r.get(ctx, id)
}

func (r *invoiceRepository) List(ctx context.Context) ([]models.Invoice, error) {
	return r.list(ctx, "", nil)
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *models.Invoice) error {
	return r.save(ctx, invoice)
}

func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}
