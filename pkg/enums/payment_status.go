package enums

import (
	"fmt"
	"strings"
)

// PaymentStatus tracks the settlement outcome of an order.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusSuccess, PaymentStatusFailed:
		return true
	default:
		return false
	}
}

func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	status := PaymentStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !status.IsValid() {
		return "", fmt.Errorf("invalid payment status %q", raw)
	}
	return status, nil
}
