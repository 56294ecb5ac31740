package models

import (
	"time"

	"github.com/google/uuid"
)

// StudentInfo is the student a fee order is raised for.
type StudentInfo struct {
	Name  string `gorm:"column:student_name;not null"`
	ID    string `gorm:"column:student_id;not null"`
	Email string `gorm:"column:student_email;not null"`
}

// Order is a school-fee payment request. Immutable after creation; settlement
// progress lives on OrderStatus.
type Order struct {
	ID            uuid.UUID   `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SchoolID      string      `gorm:"column:school_id;not null"`
	TrusteeID     string      `gorm:"column:trustee_id;not null"`
	Student       StudentInfo `gorm:"embedded"`
	GatewayName   string      `gorm:"column:gateway_name;not null"`
	CustomOrderID string      `gorm:"column:custom_order_id;not null;uniqueIndex:orders_custom_order_id_key"`
	CreatedAt     time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time   `gorm:"column:updated_at;autoUpdateTime"`
}
