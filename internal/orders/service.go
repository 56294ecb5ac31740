package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/edupaylabs/edupay-backend/pkg/config"
	"github.com/edupaylabs/edupay-backend/pkg/db"
	"github.com/edupaylabs/edupay-backend/pkg/db/models"
	"github.com/edupaylabs/edupay-backend/pkg/enums"
	pkgerrors "github.com/edupaylabs/edupay-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const customOrderIDConstraint = "orders_custom_order_id_key"

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines the order-level operations exposed to the API.
type Service interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*CreateOrderOutput, error)
	ListTransactions(ctx context.Context) ([]TransactionView, error)
	ListSchoolTransactions(ctx context.Context, schoolID string) ([]TransactionView, error)
	TransactionStatus(ctx context.Context, customOrderID string) (*StatusView, error)
}

type service struct {
	repo    Repository
	tx      txRunner
	gateway config.GatewayConfig
	now     func() time.Time
}

// NewService builds an order service with the required dependencies.
func NewService(repo Repository, tx txRunner, gateway config.GatewayConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{
		repo:    repo,
		tx:      tx,
		gateway: gateway,
		now:     time.Now,
	}, nil
}

// CreateOrder inserts an Order and its initial pending OrderStatus in one
// transaction, so a status record exists for every order.
func (s *service) CreateOrder(ctx context.Context, input CreateOrderInput) (*CreateOrderOutput, error) {
	if err := validateCreateOrder(input); err != nil {
		return nil, err
	}

	gatewayName := strings.TrimSpace(input.GatewayName)
	if gatewayName == "" {
		gatewayName = s.gateway.Name
	}

	order := &models.Order{
		SchoolID:  input.SchoolID,
		TrusteeID: input.TrusteeID,
		Student: models.StudentInfo{
			Name:  input.Student.Name,
			ID:    input.Student.ID,
			Email: input.Student.Email,
		},
		GatewayName:   gatewayName,
		CustomOrderID: input.CustomOrderID,
	}

	var status *models.OrderStatus
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		created, err := repo.CreateOrder(ctx, order)
		if err != nil {
			if db.IsUniqueViolation(err, customOrderIDConstraint) {
				return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "custom_order_id already exists")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
		}

		orderID := created.ID
		status = &models.OrderStatus{
			CollectID:         s.newCollectID(),
			OrderID:           &orderID,
			CustomOrderID:     created.CustomOrderID,
			OrderAmount:       input.OrderAmount,
			TransactionAmount: decimal.Zero,
			Status:            enums.PaymentStatusPending,
		}
		if _, err := repo.CreateOrderStatus(ctx, status); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order status")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateOrderOutput{
		Order:       orderView(order),
		OrderStatus: NewStatusView(status),
	}, nil
}

func (s *service) ListTransactions(ctx context.Context) ([]TransactionView, error) {
	views, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list transactions")
	}
	return views, nil
}

func (s *service) ListSchoolTransactions(ctx context.Context, schoolID string) ([]TransactionView, error) {
	if strings.TrimSpace(schoolID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "school id is required")
	}
	views, err := s.repo.ListTransactionsBySchool(ctx, schoolID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list school transactions")
	}
	return views, nil
}

func (s *service) TransactionStatus(ctx context.Context, customOrderID string) (*StatusView, error) {
	if strings.TrimSpace(customOrderID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "custom order id is required")
	}
	status, err := s.repo.FindStatusByCustomOrderID(ctx, customOrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "transaction not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find transaction status")
	}
	view := NewStatusView(status)
	return &view, nil
}

// newCollectID generates the time-derived placeholder used until the gateway
// registers its own settlement-session id.
func (s *service) newCollectID() string {
	return fmt.Sprintf("COLL_%d", s.now().UnixNano())
}

func validateCreateOrder(input CreateOrderInput) error {
	missing := map[string]string{}
	if strings.TrimSpace(input.SchoolID) == "" {
		missing["school_id"] = "is required"
	}
	if strings.TrimSpace(input.TrusteeID) == "" {
		missing["trustee_id"] = "is required"
	}
	if strings.TrimSpace(input.Student.Name) == "" {
		missing["student_info.name"] = "is required"
	}
	if strings.TrimSpace(input.Student.ID) == "" {
		missing["student_info.id"] = "is required"
	}
	if strings.TrimSpace(input.Student.Email) == "" {
		missing["student_info.email"] = "is required"
	}
	if strings.TrimSpace(input.CustomOrderID) == "" {
		missing["custom_order_id"] = "is required"
	}
	if input.OrderAmount.LessThanOrEqual(decimal.Zero) {
		missing["order_amount"] = "must be positive"
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(missing)
	}
	return nil
}
