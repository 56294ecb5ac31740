package webhooks

import (
	"net/http"

	"github.com/edupaylabs/edupay-backend/api/responses"
	"github.com/edupaylabs/edupay-backend/api/validators"
	internalwebhooks "github.com/edupaylabs/edupay-backend/internal/webhooks"
	"github.com/edupaylabs/edupay-backend/pkg/logger"
)

// Gateway receives settlement callbacks from the payment gateway. The route
// carries no credential; the body is decoded leniently because the gateway
// sends fields we do not model.
func Gateway(svc internalwebhooks.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload internalwebhooks.Payload
		if err := validators.DecodeLenientJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil && payload.OrderInfo != nil {
			ctx = logg.WithCollectID(ctx, payload.OrderInfo.CollectID)
		}

		view, err := svc.Reconcile(ctx, payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, internalwebhooks.Result{
			Message:            "webhook processed",
			UpdatedTransaction: *view,
		})
	}
}
