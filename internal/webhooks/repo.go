package webhooks

import (
	"context"

	"github.com/edupaylabs/edupay-backend/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a webhook repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// UpsertStatusByCollectID atomically applies a gateway callback. An unknown
// collect_id inserts a fresh record with only the supplied fields; a known one
// overwrites the settlement fields unconditionally. Replays converge to the
// same stored state.
func (r *repository) UpsertStatusByCollectID(ctx context.Context, status *models.OrderStatus) (*models.OrderStatus, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "collect_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"status",
				"transaction_amount",
				"payment_mode",
				"payment_message",
				"payment_time",
				"error_message",
				"updated_at",
			}),
		}).
		Create(status).Error
	if err != nil {
		return nil, err
	}

	var stored models.OrderStatus
	err = r.db.WithContext(ctx).
		Where("collect_id = ?", status.CollectID).
		First(&stored).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}
