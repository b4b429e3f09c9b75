package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// InvoiceStatus represents the billing state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// InvoiceItem is one billed line
type InvoiceItem struct {
	ProductID     string  `json:"productId"`
	ReferenceCode string  `json:"referenceCode"`
	Description   string  `json:"description"`
	Color         string  `json:"color,omitempty"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice"`
	Total         float64 `json:"total"`
}

// Invoice bills an order to a client
type Invoice struct {
	ID            uuid.UUID                        `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	InvoiceNumber string                           `json:"invoiceNumber" gorm:"not null;uniqueIndex"`
	OrderID       uuid.UUID                        `json:"orderId" gorm:"type:uuid;not null;index"`
	ClientID      *uuid.UUID                       `json:"clientId,omitempty" gorm:"type:uuid;index"`
	BrandID       *uuid.UUID                       `json:"brandId,omitempty" gorm:"type:uuid"`
	CompanyName   string                           `json:"companyName"`
	Items         datatypes.JSONSlice[InvoiceItem] `json:"items" gorm:"type:jsonb"`
	Subtotal      float64                          `json:"subtotal"`
	TaxRate       float64                          `json:"taxRate"`
	Tax           float64                          `json:"tax"`
	Total         float64                          `json:"total"`
	Currency      string                           `json:"currency" gorm:"not null;default:'DZD'"`
	PdfURL        string                           `json:"pdfUrl,omitempty"`
	Status        InvoiceStatus                    `json:"status" gorm:"not null;default:'draft';index"`
	CreatedAt     time.Time                        `json:"createdAt" gorm:"index"`
	UpdatedAt     time.Time                        `json:"updatedAt"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// Recalculate refreshes line totals and the invoice amounts, rounded to cents
func (inv *Invoice) Recalculate() {
	subtotal := decimal.Zero
	for i := range inv.Items {
		line := decimal.NewFromFloat(inv.Items[i].UnitPrice).Mul(decimal.NewFromInt(int64(inv.Items[i].Quantity))).Round(2)
		inv.Items[i].Total = line.InexactFloat64()
		subtotal = subtotal.Add(line)
	}
	tax := subtotal.Mul(decimal.NewFromFloat(inv.TaxRate)).Round(2)
	inv.Subtotal = subtotal.InexactFloat64()
	inv.Tax = tax.InexactFloat64()
	inv.Total = subtotal.Add(tax).InexactFloat64()
}

// CreateInvoiceRequest creates an invoice from an order. UnitPrices are keyed by item reference.
type CreateInvoiceRequest struct {
	OrderID    uuid.UUID          `json:"orderId" binding:"required"`
	BrandID    *uuid.UUID         `json:"brandId"`
	UnitPrices map[string]float64 `json:"unitPrices"`
	TaxRate    float64            `json:"taxRate" binding:"min=0,max=1"`
	Currency   string             `json:"currency"`
}

// UpdateInvoiceStatusRequest changes the status of an invoice
type UpdateInvoiceStatusRequest struct {
	Status InvoiceStatus `json:"status" binding:"required"`
}
