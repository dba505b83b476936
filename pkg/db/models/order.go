package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/techstore/storefront-backend/pkg/enums"
)

type Order struct {
	ID              uuid.UUID         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID         `gorm:"column:user_id;type:uuid" json:"user_id"`
	User            *User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Total           decimal.Decimal   `gorm:"column:total;type:numeric(10,2)" json:"total"`
	Status          enums.OrderStatus `gorm:"column:status" json:"status"`
	ShippingAddress string            `gorm:"column:shipping_address" json:"shipping_address"`
	Notes           string            `gorm:"column:notes" json:"notes"`
	Items           []OrderItem       `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	CreatedAt       time.Time         `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"column:updated_at" json:"updated_at"`
}

func (Order) TableName() string { return "orders" }

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.Status == "" {
		o.Status = enums.OrderStatusPending
	}
	return nil
}
