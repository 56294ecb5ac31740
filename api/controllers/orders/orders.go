package orders

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/edupaylabs/edupay-backend/api/responses"
	"github.com/edupaylabs/edupay-backend/api/validators"
	"github.com/edupaylabs/edupay-backend/internal/orders"
	"github.com/edupaylabs/edupay-backend/internal/payments"
	pkgerrors "github.com/edupaylabs/edupay-backend/pkg/errors"
	"github.com/edupaylabs/edupay-backend/pkg/logger"
)

type studentInfoBody struct {
	Name  string `json:"name" validate:"required"`
	ID    string `json:"id" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type createOrderRequest struct {
	SchoolID      string          `json:"school_id" validate:"required"`
	TrusteeID     string          `json:"trustee_id" validate:"required"`
	StudentInfo   studentInfoBody `json:"student_info"`
	GatewayName   string          `json:"gateway_name"`
	CustomOrderID string          `json:"custom_order_id" validate:"required"`
	OrderAmount   decimal.Decimal `json:"order_amount" validate:"required"`
}

// Create raises a fee order together with its initial pending status.
func Create(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createOrderRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out, err := svc.CreateOrder(r.Context(), orders.CreateOrderInput{
			SchoolID:  body.SchoolID,
			TrusteeID: body.TrusteeID,
			Student: orders.StudentInput{
				Name:  body.StudentInfo.Name,
				ID:    body.StudentInfo.ID,
				Email: body.StudentInfo.Email,
			},
			CustomOrderID: body.CustomOrderID,
			OrderAmount:   body.OrderAmount,
			GatewayName:   body.GatewayName,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, out)
	}
}

// Transactions lists every settled or pending transaction joined to its order.
func Transactions(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views, err := svc.ListTransactions(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, views)
	}
}

// SchoolTransactions lists transactions for one school.
func SchoolTransactions(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schoolID := strings.TrimSpace(chi.URLParam(r, "schoolId"))
		views, err := svc.ListSchoolTransactions(r.Context(), schoolID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, views)
	}
}

// TransactionStatus looks up one settlement record by its external order id.
func TransactionStatus(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customOrderID := strings.TrimSpace(chi.URLParam(r, "customOrderId"))
		view, err := svc.TransactionStatus(r.Context(), customOrderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

type createPaymentRequest struct {
	OrderID string          `json:"order_id" validate:"required"`
	Amount  decimal.Decimal `json:"amount" validate:"required"`
}

type createPaymentResponse struct {
	Message        string `json:"message"`
	PaymentPageURL string `json:"payment_page_url"`
	ExpiresAt      int64  `json:"expires_at"`
}

// CreatePayment signs a redirect token and hands back the hosted-page URL.
func CreatePayment(issuer *payments.Issuer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if issuer == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payment issuer unavailable"))
			return
		}

		var body createPaymentRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		redirect, err := issuer.CreatePayment(body.OrderID, body.Amount)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, createPaymentResponse{
			Message:        "payment link created",
			PaymentPageURL: redirect.PaymentPageURL,
			ExpiresAt:      redirect.ExpiresAt,
		})
	}
}
