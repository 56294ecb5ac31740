package payments

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/edupaylabs/edupay-backend/pkg/config"
	pkgerrors "github.com/edupaylabs/edupay-backend/pkg/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

func testConfig() config.GatewayConfig {
	return config.GatewayConfig{
		Secret:          "gateway-secret",
		PageURL:         "https://payment-gateway.com/pay",
		Name:            "PhonePe",
		DefaultSchoolID: "65b0e6293e9f76a9694d84b4",
		TokenTTL:        5 * time.Minute,
	}
}

func TestNewIssuer_RejectsMissingConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Secret = ""
	if _, err := NewIssuer(cfg); err == nil {
		t.Fatal("expected error for missing secret")
	}

	cfg = testConfig()
	cfg.PageURL = ""
	if _, err := NewIssuer(cfg); err == nil {
		t.Fatal("expected error for missing page url")
	}
}

func TestCreatePayment_ValidatesInput(t *testing.T) {
	issuer, err := NewIssuer(testConfig())
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}

	_, err = issuer.CreatePayment("", decimal.NewFromInt(100))
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for missing order id, got %v", err)
	}

	_, err = issuer.CreatePayment("order-1", decimal.Zero)
	typed = pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for non-positive amount, got %v", err)
	}
}

func TestCreatePayment_SignedTokenAndURL(t *testing.T) {
	issuer, err := NewIssuer(testConfig())
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	fixed := time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return fixed }

	redirect, err := issuer.CreatePayment("order-1", decimal.NewFromInt(2000))
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}

	if !strings.HasPrefix(redirect.PaymentPageURL, "https://payment-gateway.com/pay?token=") {
		t.Fatalf("unexpected redirect url %q", redirect.PaymentPageURL)
	}
	parsed, err := url.Parse(redirect.PaymentPageURL)
	if err != nil {
		t.Fatalf("parse redirect url: %v", err)
	}
	if parsed.Query().Get("token") != redirect.Token {
		t.Fatal("url token must match the signed token")
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(redirect.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("gateway-secret"), nil
	}, jwt.WithTimeFunc(func() time.Time { return fixed }))
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims["order_id"] != "order-1" {
		t.Fatalf("expected order id claim, got %v", claims["order_id"])
	}
	if claims["amount"] != "2000" {
		t.Fatalf("expected amount claim, got %v", claims["amount"])
	}
	if claims["school_id"] != "65b0e6293e9f76a9694d84b4" {
		t.Fatalf("expected default school id claim, got %v", claims["school_id"])
	}

	wantExp := fixed.Add(5 * time.Minute).Unix()
	if redirect.ExpiresAt != wantExp {
		t.Fatalf("expected expiry %d, got %d", wantExp, redirect.ExpiresAt)
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) != wantExp {
		t.Fatalf("expected exp claim %d, got %v", wantExp, claims["exp"])
	}
}

func TestCreatePayment_TokenExpires(t *testing.T) {
	issuer, err := NewIssuer(testConfig())
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	past := time.Now().Add(-time.Hour)
	issuer.now = func() time.Time { return past }

	redirect, err := issuer.CreatePayment("order-1", decimal.NewFromInt(100))
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}

	_, err = jwt.Parse(redirect.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("gateway-secret"), nil
	})
	if err == nil {
		t.Fatal("expected expired token to fail verification")
	}
}
