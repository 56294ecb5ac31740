package orders

import (
	"context"

	"github.com/edupaylabs/edupay-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the order tables.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	CreateOrderStatus(ctx context.Context, status *models.OrderStatus) (*models.OrderStatus, error)
	FindStatusByCustomOrderID(ctx context.Context, customOrderID string) (*models.OrderStatus, error)
	ListTransactions(ctx context.Context) ([]TransactionView, error)
	ListTransactionsBySchool(ctx context.Context, schoolID string) ([]TransactionView, error)
}
