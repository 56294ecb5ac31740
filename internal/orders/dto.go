package orders

import (
	"time"

	"github.com/edupaylabs/edupay-backend/pkg/db/models"
	"github.com/edupaylabs/edupay-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StudentInput is the student block required when creating an order.
type StudentInput struct {
	Name  string
	ID    string
	Email string
}

// CreateOrderInput captures the data required to raise a fee order.
type CreateOrderInput struct {
	SchoolID      string
	TrusteeID     string
	Student       StudentInput
	CustomOrderID string
	OrderAmount   decimal.Decimal
	GatewayName   string
}

// OrderView is the wire shape of a created order.
type OrderView struct {
	ID            uuid.UUID       `json:"id"`
	SchoolID      string          `json:"school_id"`
	TrusteeID     string          `json:"trustee_id"`
	StudentInfo   StudentInfoView `json:"student_info"`
	GatewayName   string          `json:"gateway_name"`
	CustomOrderID string          `json:"custom_order_id"`
	CreatedAt     time.Time       `json:"created_at"`
}

// StatusView is the wire shape of a settlement record.
type StatusView struct {
	ID                uuid.UUID           `json:"id"`
	CollectID         string              `json:"collect_id"`
	OrderID           *uuid.UUID          `json:"order_id,omitempty"`
	CustomOrderID     string              `json:"custom_order_id"`
	OrderAmount       decimal.Decimal     `json:"order_amount"`
	TransactionAmount decimal.Decimal     `json:"transaction_amount"`
	PaymentMode       *string             `json:"payment_mode,omitempty"`
	PaymentMessage    *string             `json:"payment_message,omitempty"`
	ErrorMessage      *string             `json:"error_message,omitempty"`
	PaymentTime       *time.Time          `json:"payment_time,omitempty"`
	Status            enums.PaymentStatus `json:"status"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// CreateOrderOutput returns both records created together.
type CreateOrderOutput struct {
	Order       OrderView  `json:"order"`
	OrderStatus StatusView `json:"order_status"`
}

// StudentInfoView nests the student columns back into one object.
type StudentInfoView struct {
	Name  string `json:"name"`
	ID    string `json:"id"`
	Email string `json:"email"`
}

// TransactionView is the flattened status-joined-to-order projection used by
// the transaction listings.
type TransactionView struct {
	CollectID         string              `json:"collect_id"`
	CustomOrderID     string              `json:"custom_order_id"`
	OrderAmount       decimal.Decimal     `json:"order_amount"`
	TransactionAmount decimal.Decimal     `json:"transaction_amount"`
	Status            enums.PaymentStatus `json:"status"`
	PaymentMode       *string             `json:"payment_mode,omitempty"`
	PaymentTime       *time.Time          `json:"payment_time,omitempty"`
	SchoolID          string              `json:"school_id"`
	StudentInfo       StudentInfoView     `json:"student_info"`
	GatewayName       string              `json:"gateway_name"`
}

func orderView(order *models.Order) OrderView {
	return OrderView{
		ID:        order.ID,
		SchoolID:  order.SchoolID,
		TrusteeID: order.TrusteeID,
		StudentInfo: StudentInfoView{
			Name:  order.Student.Name,
			ID:    order.Student.ID,
			Email: order.Student.Email,
		},
		GatewayName:   order.GatewayName,
		CustomOrderID: order.CustomOrderID,
		CreatedAt:     order.CreatedAt,
	}
}

// NewStatusView flattens a stored settlement record into its wire shape.
func NewStatusView(status *models.OrderStatus) StatusView {
	return StatusView{
		ID:                status.ID,
		CollectID:         status.CollectID,
		OrderID:           status.OrderID,
		CustomOrderID:     status.CustomOrderID,
		OrderAmount:       status.OrderAmount,
		TransactionAmount: status.TransactionAmount,
		PaymentMode:       status.PaymentMode,
		PaymentMessage:    status.PaymentMessage,
		ErrorMessage:      status.ErrorMessage,
		PaymentTime:       status.PaymentTime,
		Status:            status.Status,
		UpdatedAt:         status.UpdatedAt,
	}
}
