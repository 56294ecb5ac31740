package webhooks

import (
	"context"
	"fmt"
	"strings"

	"github.com/edupaylabs/edupay-backend/internal/orders"
	"github.com/edupaylabs/edupay-backend/pkg/db/models"
	"github.com/edupaylabs/edupay-backend/pkg/enums"
	pkgerrors "github.com/edupaylabs/edupay-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// gatewaySuccessCode is the only top-level status the gateway sends for a
// settled payment. Anything else, including a missing status, means failure.
const gatewaySuccessCode = 200

// Service reconciles gateway callbacks into settlement records.
type Service interface {
	Reconcile(ctx context.Context, payload Payload) (*orders.StatusView, error)
}

type service struct {
	repo Repository
}

// NewService builds a webhook service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("webhook repository required")
	}
	return &service{repo: repo}, nil
}

// Reconcile applies a gateway callback to the settlement record addressed by
// its collect_id. Unknown collect_ids create an orphan record rather than
// failing, so deliveries that race order creation are never lost.
func (s *service) Reconcile(ctx context.Context, payload Payload) (*orders.StatusView, error) {
	if payload.OrderInfo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order_info is required")
	}
	if strings.TrimSpace(payload.OrderInfo.CollectID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order_info.collect_id is required")
	}

	info := payload.OrderInfo

	outcome := enums.PaymentStatusFailed
	if payload.Status != nil && *payload.Status == gatewaySuccessCode {
		outcome = enums.PaymentStatusSuccess
	}

	transactionAmount := decimal.Zero
	if info.TransactionAmount != nil {
		transactionAmount = *info.TransactionAmount
	}

	status := &models.OrderStatus{
		ID:                uuid.New(),
		CollectID:         info.CollectID,
		CustomOrderID:     info.CustomOrderID,
		TransactionAmount: transactionAmount,
		PaymentMode:       info.PaymentMode,
		PaymentMessage:    info.PaymentMessage,
		PaymentTime:       info.PaymentTime,
		ErrorMessage:      info.ErrorMessage,
		Status:            outcome,
	}

	stored, err := s.repo.UpsertStatusByCollectID(ctx, status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "apply webhook")
	}

	view := orders.NewStatusView(stored)
	return &view, nil
}
