package webhooks

import (
	"context"

	"github.com/edupaylabs/edupay-backend/pkg/db/models"
)

// Repository persists gateway callbacks against the settlement records.
type Repository interface {
	UpsertStatusByCollectID(ctx context.Context, status *models.OrderStatus) (*models.OrderStatus, error)
}
