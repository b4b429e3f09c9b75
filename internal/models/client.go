package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client is a retailer that has ordered from the group
type Client struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CompanyName    string     `json:"companyName" gorm:"not null"`
	Country        string     `json:"country"`
	WhatsappNumber string     `json:"whatsappNumber" gorm:"index"`
	Email          string     `json:"email"`
	TotalOrders    int        `json:"totalOrders" gorm:"not null;default:0"`
	LastOrderDate  *time.Time `json:"lastOrderDate,omitempty"`
	Notes          string     `json:"notes"`
	CreatedAt      time.Time  `json:"createdAt" gorm:"index"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func (Client) TableName() string {
	return "clients"
}

// ClientRequest is the create/update payload for a client
type ClientRequest struct {
	CompanyName    string `json:"companyName"`
	Country        string `json:"country"`
	WhatsappNumber string `json:"whatsappNumber"`
	Email          string `json:"email"`
	Notes          string `json:"notes"`
}

// Validate checks the required client fields
func (r *ClientRequest) Validate() error {
	if strings.TrimSpace(r.CompanyName) == "" {
		return NewValidationError("companyName", "Please fill in required fields: Company Name")
	}
	return nil
}

// Apply copies the request onto the client
func (r *ClientRequest) Apply(c *Client) {
	c.CompanyName = strings.TrimSpace(r.CompanyName)
	c.Country = r.Country
	c.WhatsappNumber = r.WhatsappNumber
	c.Email = r.Email
	c.Notes = r.Notes
}
