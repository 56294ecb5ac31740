package orders

import (
	"context"
	"time"

	"github.com/edupaylabs/edupay-backend/pkg/db/models"
	"github.com/edupaylabs/edupay-backend/pkg/enums"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *repository) CreateOrderStatus(ctx context.Context, status *models.OrderStatus) (*models.OrderStatus, error) {
	if err := r.db.WithContext(ctx).Create(status).Error; err != nil {
		return nil, err
	}
	return status, nil
}

func (r *repository) FindStatusByCustomOrderID(ctx context.Context, customOrderID string) (*models.OrderStatus, error) {
	var status models.OrderStatus
	err := r.db.WithContext(ctx).
		Where("custom_order_id = ?", customOrderID).
		First(&status).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// transactionRow is the flat scan target for the join projection.
type transactionRow struct {
	CollectID         string              `gorm:"column:collect_id"`
	CustomOrderID     string              `gorm:"column:custom_order_id"`
	OrderAmount       decimal.Decimal     `gorm:"column:order_amount"`
	TransactionAmount decimal.Decimal     `gorm:"column:transaction_amount"`
	Status            enums.PaymentStatus `gorm:"column:status"`
	PaymentMode       *string             `gorm:"column:payment_mode"`
	PaymentTime       *time.Time          `gorm:"column:payment_time"`
	SchoolID          string              `gorm:"column:school_id"`
	StudentName       string              `gorm:"column:student_name"`
	StudentID         string              `gorm:"column:student_id"`
	StudentEmail      string              `gorm:"column:student_email"`
	GatewayName       string              `gorm:"column:gateway_name"`
}

const transactionProjection = `order_statuses.collect_id,
order_statuses.custom_order_id,
order_statuses.order_amount,
order_statuses.transaction_amount,
order_statuses.status,
order_statuses.payment_mode,
order_statuses.payment_time,
orders.school_id,
orders.student_name,
orders.student_id,
orders.student_email,
orders.gateway_name`

func (r *repository) ListTransactions(ctx context.Context) ([]TransactionView, error) {
	var rows []transactionRow
	err := r.db.WithContext(ctx).
		Table("order_statuses").
		Select(transactionProjection).
		Joins("INNER JOIN orders ON orders.id = order_statuses.order_id").
		Order("order_statuses.payment_time DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toTransactionViews(rows), nil
}

func (r *repository) ListTransactionsBySchool(ctx context.Context, schoolID string) ([]TransactionView, error) {
	var rows []transactionRow
	err := r.db.WithContext(ctx).
		Table("order_statuses").
		Select(transactionProjection).
		Joins("INNER JOIN orders ON orders.id = order_statuses.order_id").
		Where("orders.school_id = ?", schoolID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toTransactionViews(rows), nil
}

func toTransactionViews(rows []transactionRow) []TransactionView {
	views := make([]TransactionView, 0, len(rows))
	for _, row := range rows {
		views = append(views, TransactionView{
			CollectID:         row.CollectID,
			CustomOrderID:     row.CustomOrderID,
			OrderAmount:       row.OrderAmount,
			TransactionAmount: row.TransactionAmount,
			Status:            row.Status,
			PaymentMode:       row.PaymentMode,
			PaymentTime:       row.PaymentTime,
			SchoolID:          row.SchoolID,
			StudentInfo: StudentInfoView{
				Name:  row.StudentName,
				ID:    row.StudentID,
				Email: row.StudentEmail,
			},
			GatewayName: row.GatewayName,
		})
	}
	return views
}
