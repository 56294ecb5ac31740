package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	internalorders "github.com/edupaylabs/edupay-backend/internal/orders"
	"github.com/edupaylabs/edupay-backend/internal/payments"
	"github.com/edupaylabs/edupay-backend/pkg/config"
	"github.com/edupaylabs/edupay-backend/pkg/enums"
	pkgerrors "github.com/edupaylabs/edupay-backend/pkg/errors"
	"github.com/edupaylabs/edupay-backend/pkg/types"
	"github.com/google/uuid"
)

type stubService struct {
	createOut  *internalorders.CreateOrderOutput
	createErr  error
	lastInput  internalorders.CreateOrderInput
	statusView *internalorders.StatusView
	statusErr  error
	listViews  []internalorders.TransactionView
	listErr    error
	lastSchool string
}

func (s *stubService) CreateOrder(ctx context.Context, input internalorders.CreateOrderInput) (*internalorders.CreateOrderOutput, error) {
	s.lastInput = input
	return s.createOut, s.createErr
}

func (s *stubService) ListTransactions(ctx context.Context) ([]internalorders.TransactionView, error) {
	return s.listViews, s.listErr
}

func (s *stubService) ListSchoolTransactions(ctx context.Context, schoolID string) ([]internalorders.TransactionView, error) {
	s.lastSchool = schoolID
	return s.listViews, s.listErr
}

func (s *stubService) TransactionStatus(ctx context.Context, customOrderID string) (*internalorders.StatusView, error) {
	return s.statusView, s.statusErr
}

func TestCreate_Returns201(t *testing.T) {
	svc := &stubService{
		createOut: &internalorders.CreateOrderOutput{
			Order:       internalorders.OrderView{ID: uuid.New(), CustomOrderID: "ORD-1"},
			OrderStatus: internalorders.StatusView{CollectID: "COLL_1", Status: enums.PaymentStatusPending},
		},
	}

	body := `{
		"school_id": "school-1",
		"trustee_id": "trustee-1",
		"student_info": {"name": "Asha", "id": "stu-1", "email": "asha@example.com"},
		"custom_order_id": "ORD-1",
		"order_amount": 2000
	}`

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	Create(svc, nil)(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 but got %d: %s", w.Code, w.Body.String())
	}
	if svc.lastInput.SchoolID != "school-1" {
		t.Fatalf("unexpected school id %q", svc.lastInput.SchoolID)
	}
	if svc.lastInput.Student.Email != "asha@example.com" {
		t.Fatalf("unexpected student email %q", svc.lastInput.Student.Email)
	}
	if !svc.lastInput.OrderAmount.Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("unexpected order amount %s", svc.lastInput.OrderAmount)
	}
}

func TestCreate_InvalidBodyRejected(t *testing.T) {
	svc := &stubService{}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"school_id": ""}`))
	Create(svc, nil)(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 but got %d", w.Code)
	}
}

func TestCreate_ConflictSurfacesAs409(t *testing.T) {
	svc := &stubService{
		createErr: pkgerrors.New(pkgerrors.CodeConflict, "custom_order_id already exists"),
	}

	body := `{
		"school_id": "school-1",
		"trustee_id": "trustee-1",
		"student_info": {"name": "Asha", "id": "stu-1", "email": "asha@example.com"},
		"custom_order_id": "ORD-1",
		"order_amount": 2000
	}`

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	Create(svc, nil)(w, r)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 but got %d", w.Code)
	}
}

func TestTransactions_ReturnsViews(t *testing.T) {
	svc := &stubService{
		listViews: []internalorders.TransactionView{
			{CollectID: "COLL_1", CustomOrderID: "ORD-1", SchoolID: "school-1"},
		},
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/orders/transactions", nil)
	Transactions(svc, nil)(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 but got %d", w.Code)
	}

	var envelope types.SuccessEnvelope
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	views, ok := envelope.Data.([]any)
	if !ok || len(views) != 1 {
		t.Fatalf("expected one view, got %v", envelope.Data)
	}
}

func TestSchoolTransactions_PassesURLParam(t *testing.T) {
	svc := &stubService{}

	router := chi.NewRouter()
	router.Get("/api/orders/transactions/school/{schoolId}", SchoolTransactions(svc, nil))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/orders/transactions/school/school-9", nil)
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 but got %d", w.Code)
	}
	if svc.lastSchool != "school-9" {
		t.Fatalf("expected school id from path, got %q", svc.lastSchool)
	}
}

func TestTransactionStatus_NotFoundIs404(t *testing.T) {
	svc := &stubService{
		statusErr: pkgerrors.New(pkgerrors.CodeNotFound, "transaction not found"),
	}

	router := chi.NewRouter()
	router.Get("/api/orders/transaction-status/{customOrderId}", TransactionStatus(svc, nil))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/orders/transaction-status/ORD-404", nil)
	router.ServeHTTP(w, r)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 but got %d", w.Code)
	}
}

func TestCreatePayment_ReturnsSignedURL(t *testing.T) {
	issuer, err := payments.NewIssuer(config.GatewayConfig{
		Secret:          "gateway-secret",
		PageURL:         "https://payment-gateway.com/pay",
		DefaultSchoolID: "65b0e6293e9f76a9694d84b4",
		TokenTTL:        5 * time.Minute,
	})
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/orders/create-payment", strings.NewReader(`{"order_id": "order-1", "amount": 2000}`))
	CreatePayment(issuer, nil)(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 but got %d: %s", w.Code, w.Body.String())
	}

	var envelope types.SuccessEnvelope
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	data := envelope.Data.(map[string]any)
	urlValue, _ := data["payment_page_url"].(string)
	if !strings.HasPrefix(urlValue, "https://payment-gateway.com/pay?token=") {
		t.Fatalf("unexpected payment page url %q", urlValue)
	}
}

func TestCreatePayment_MissingAmountRejected(t *testing.T) {
	issuer, err := payments.NewIssuer(config.GatewayConfig{
		Secret:  "gateway-secret",
		PageURL: "https://payment-gateway.com/pay",
	})
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/orders/create-payment", strings.NewReader(`{"order_id": "order-1"}`))
	CreatePayment(issuer, nil)(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 but got %d", w.Code)
	}
}
