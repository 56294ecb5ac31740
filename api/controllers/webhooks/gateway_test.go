package webhooks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	internalorders "github.com/edupaylabs/edupay-backend/internal/orders"
	internalwebhooks "github.com/edupaylabs/edupay-backend/internal/webhooks"
	"github.com/edupaylabs/edupay-backend/pkg/enums"
	pkgerrors "github.com/edupaylabs/edupay-backend/pkg/errors"
	"github.com/edupaylabs/edupay-backend/pkg/types"
	"github.com/shopspring/decimal"
)

type stubService struct {
	view    *internalorders.StatusView
	err     error
	payload internalwebhooks.Payload
}

func (s *stubService) Reconcile(ctx context.Context, payload internalwebhooks.Payload) (*internalorders.StatusView, error) {
	s.payload = payload
	return s.view, s.err
}

func TestGateway_AppliesCallback(t *testing.T) {
	svc := &stubService{
		view: &internalorders.StatusView{
			CollectID:         "COLL_1",
			CustomOrderID:     "ORD-1",
			TransactionAmount: decimal.NewFromInt(2200),
			Status:            enums.PaymentStatusSuccess,
		},
	}

	body := `{
		"status": 200,
		"order_info": {
			"collect_id": "COLL_1",
			"custom_order_id": "ORD-1",
			"transaction_amount": 2200,
			"payment_mode": "upi",
			"bank_reference": "YESBNK222"
		}
	}`

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/orders/webhook", strings.NewReader(body))
	Gateway(svc, nil)(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 but got %d: %s", w.Code, w.Body.String())
	}

	if svc.payload.Status == nil || *svc.payload.Status != 200 {
		t.Fatalf("expected status 200 passed through, got %v", svc.payload.Status)
	}
	if svc.payload.OrderInfo == nil || svc.payload.OrderInfo.CollectID != "COLL_1" {
		t.Fatalf("expected collect id passed through, got %v", svc.payload.OrderInfo)
	}

	var envelope types.SuccessEnvelope
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	data := envelope.Data.(map[string]any)
	if data["message"] != "webhook processed" {
		t.Fatalf("unexpected message %v", data["message"])
	}
	updated, ok := data["updated_transaction"].(map[string]any)
	if !ok || updated["collect_id"] != "COLL_1" {
		t.Fatalf("unexpected updated transaction %v", data["updated_transaction"])
	}
}

func TestGateway_UnknownFieldsTolerated(t *testing.T) {
	svc := &stubService{view: &internalorders.StatusView{CollectID: "COLL_1"}}

	body := `{"status": 500, "order_info": {"collect_id": "COLL_1", "gateway": "PhonePe", "payemnt_details": "x"}}`

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/orders/webhook", strings.NewReader(body))
	Gateway(svc, nil)(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 but got %d: %s", w.Code, w.Body.String())
	}
}

func TestGateway_MalformedBodyRejected(t *testing.T) {
	svc := &stubService{}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/orders/webhook", strings.NewReader(`{not json`))
	Gateway(svc, nil)(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 but got %d", w.Code)
	}
}

func TestGateway_ValidationErrorSurfacesAs400(t *testing.T) {
	svc := &stubService{err: pkgerrors.New(pkgerrors.CodeValidation, "order_info.collect_id is required")}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/orders/webhook", strings.NewReader(`{"status": 200}`))
	Gateway(svc, nil)(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 but got %d", w.Code)
	}
}
