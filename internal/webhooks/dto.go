package webhooks

import (
	"time"

	"github.com/edupaylabs/edupay-backend/internal/orders"
	"github.com/shopspring/decimal"
)

// OrderInfo is the settlement detail block of a gateway callback.
type OrderInfo struct {
	CollectID         string           `json:"collect_id"`
	CustomOrderID     string           `json:"custom_order_id"`
	TransactionAmount *decimal.Decimal `json:"transaction_amount,omitempty"`
	PaymentMode       *string          `json:"payment_mode,omitempty"`
	PaymentMessage    *string          `json:"payment_message,omitempty"`
	PaymentTime       *time.Time       `json:"payment_time,omitempty"`
	ErrorMessage      *string          `json:"error_message,omitempty"`
}

// Payload is the raw gateway callback body. Status is the gateway's own
// numeric code, not an HTTP status; anything other than 200 means the
// settlement failed.
type Payload struct {
	Status    *int       `json:"status"`
	OrderInfo *OrderInfo `json:"order_info"`
}

// Result is the webhook response body returned to the gateway.
type Result struct {
	Message            string            `json:"message"`
	UpdatedTransaction orders.StatusView `json:"updated_transaction"`
}
