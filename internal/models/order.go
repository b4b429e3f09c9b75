package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderStatus represents the progress of a wholesale order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderItem is a snapshot of the product at the time the order was placed
type OrderItem struct {
	ProductID     string `json:"productId"`
	ReferenceCode string `json:"referenceCode"`
	NameFr        string `json:"nameFr"`
	NameAr        string `json:"nameAr"`
	Color         string `json:"color,omitempty"`
	Quantity      int    `json:"quantity"`
	Image         string `json:"image"`
}

// Order is a wholesale order request from a retailer
type Order struct {
	ID                uuid.UUID                      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderNumber       string                         `json:"orderNumber" gorm:"not null;uniqueIndex"`
	CompanyName       string                         `json:"companyName" gorm:"not null"`
	Country           string                         `json:"country"`
	WhatsappNumber    string                         `json:"whatsappNumber" gorm:"index"`
	Email             string                         `json:"email"`
	Items             datatypes.JSONSlice[OrderItem] `json:"items" gorm:"type:jsonb"`
	Notes             string                         `json:"notes"`
	Status            OrderStatus                    `json:"status" gorm:"not null;default:'pending';index"`
	ShippingCountry   string                         `json:"shippingCountry,omitempty"`
	ShippingMethod    string                         `json:"shippingMethod,omitempty"`
	EstimatedDelivery *time.Time                     `json:"estimatedDelivery,omitempty"`
	TrackingNumber    string                         `json:"trackingNumber,omitempty"`
	DeliveryNotes     string                         `json:"deliveryNotes,omitempty"`
	InternalNotes     string                         `json:"internalNotes,omitempty"`
	CreatedAt         time.Time                      `json:"createdAt" gorm:"index"`
	UpdatedAt         time.Time                      `json:"updatedAt"`
}

func (Order) TableName() string {
	return "orders"
}

// TotalQuantity sums the quantities of all items
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// CreateOrderRequest is the payload of a wholesale order request
type CreateOrderRequest struct {
	CompanyName    string      `json:"companyName"`
	Country        string      `json:"country"`
	WhatsappNumber string      `json:"whatsappNumber"`
	Email          string      `json:"email"`
	Items          []OrderItem `json:"items"`
	Notes          string      `json:"notes"`
}

// Validate checks the order request
func (r *CreateOrderRequest) Validate() error {
	if strings.TrimSpace(r.CompanyName) == "" || strings.TrimSpace(r.WhatsappNumber) == "" {
		return NewValidationError("companyName", "Please fill in required fields: Company Name and WhatsApp Number")
	}
	if len(r.Items) == 0 {
		return NewValidationError("items", "Please add at least one product")
	}
	for _, item := range r.Items {
		if item.ReferenceCode == "" || item.Quantity < 1 {
			return NewValidationError("items", "Each item needs a reference and a quantity of at least 1")
		}
	}
	return nil
}

// UpdateOrderStatusRequest changes the status of an order
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" binding:"required"`
}

// UpdateShippingRequest carries the shipping and internal fields an admin edits
type UpdateShippingRequest struct {
	ShippingCountry   *string    `json:"shippingCountry"`
	ShippingMethod    *string    `json:"shippingMethod"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery"`
	TrackingNumber    *string    `json:"trackingNumber"`
	DeliveryNotes     *string    `json:"deliveryNotes"`
	InternalNotes     *string    `json:"internalNotes"`
}

// Apply copies the set fields onto the order
func (r *UpdateShippingRequest) Apply(o *Order) {
	if r.ShippingCountry != nil {
		o.ShippingCountry = *r.ShippingCountry
	}
	if r.ShippingMethod != nil {
		o.ShippingMethod = *r.ShippingMethod
	}
	if r.EstimatedDelivery != nil {
		o.EstimatedDelivery = r.EstimatedDelivery
	}
	if r.TrackingNumber != nil {
		o.TrackingNumber = *r.TrackingNumber
	}
	if r.DeliveryNotes != nil {
		o.DeliveryNotes = *r.DeliveryNotes
	}
	if r.InternalNotes != nil {
		o.InternalNotes = *r.InternalNotes
	}
}
