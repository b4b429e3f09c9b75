package models

import (
	"time"

	"github.com/google/uuid"
)

// EntityType names the kind of record an activity refers to
type EntityType string

const (
	EntityProduct  EntityType = "product"
	EntityOrder    EntityType = "order"
	EntityBrand    EntityType = "brand"
	EntityDivision EntityType = "division"
	EntityCategory EntityType = "category"
	EntityClient   EntityType = "client"
	EntitySettings EntityType = "settings"
	EntityInvoice  EntityType = "invoice"
)

// Activity actions
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionStatus = "status_change"
	ActionUpload = "upload"
)

// ActivityLog records one admin mutation
type ActivityLog struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AdminID    string     `json:"adminId" gorm:"index"`
	AdminEmail string     `json:"adminEmail"`
	Action     string     `json:"action" gorm:"not null"`
	EntityType EntityType `json:"entityType" gorm:"not null;index"`
	EntityID   string     `json:"entityId" gorm:"index"`
	Details    string     `json:"details"`
	Timestamp  time.Time  `json:"timestamp" gorm:"not null;index"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
