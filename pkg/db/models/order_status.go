package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/edupaylabs/edupay-backend/pkg/enums"
)

// OrderStatus is the mutable settlement record tracking an Order's payment
// outcome. OrderID is nullable: webhook deliveries for an unknown collect_id
// insert a record with no owning order.
type OrderStatus struct {
	ID                uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CollectID         string              `gorm:"column:collect_id;not null;uniqueIndex:order_statuses_collect_id_key"`
	OrderID           *uuid.UUID          `gorm:"column:order_id;type:uuid"`
	CustomOrderID     string              `gorm:"column:custom_order_id;not null"`
	OrderAmount       decimal.Decimal     `gorm:"column:order_amount;type:numeric(12,2);not null;default:0"`
	TransactionAmount decimal.Decimal     `gorm:"column:transaction_amount;type:numeric(12,2);not null;default:0"`
	PaymentMode       *string             `gorm:"column:payment_mode"`
	PaymentMessage    *string             `gorm:"column:payment_message"`
	ErrorMessage      *string             `gorm:"column:error_message"`
	PaymentTime       *time.Time          `gorm:"column:payment_time"`
	Status            enums.PaymentStatus `gorm:"column:status;not null;default:'pending'"`
	CreatedAt         time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
