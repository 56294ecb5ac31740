package payments

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/edupaylabs/edupay-backend/pkg/config"
	pkgerrors "github.com/edupaylabs/edupay-backend/pkg/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

// Redirect is a signed handoff to the gateway's hosted payment page.
type Redirect struct {
	PaymentPageURL string `json:"payment_page_url"`
	Token          string `json:"token"`
	ExpiresAt      int64  `json:"expires_at"`
}

// Issuer builds signed, time-limited redirect URLs for the external gateway.
// It never touches the store; the only failure modes are bad input and
// missing signing configuration.
type Issuer struct {
	secret   []byte
	pageURL  string
	schoolID string
	ttl      time.Duration
	now      func() time.Time
}

// NewIssuer validates the gateway signing configuration up front so a
// misconfigured deployment fails at startup rather than per request.
func NewIssuer(cfg config.GatewayConfig) (*Issuer, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, fmt.Errorf("gateway signing secret required")
	}
	if strings.TrimSpace(cfg.PageURL) == "" {
		return nil, fmt.Errorf("gateway payment page url required")
	}
	if _, err := url.Parse(cfg.PageURL); err != nil {
		return nil, fmt.Errorf("gateway payment page url invalid: %w", err)
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Issuer{
		secret:   []byte(cfg.Secret),
		pageURL:  cfg.PageURL,
		schoolID: cfg.DefaultSchoolID,
		ttl:      ttl,
		now:      time.Now,
	}, nil
}

// CreatePayment signs a redirect token embedding the order id and amount and
// composes the hosted-page URL carrying it.
func (i *Issuer) CreatePayment(orderID string, amount decimal.Decimal) (*Redirect, error) {
	missing := map[string]string{}
	if strings.TrimSpace(orderID) == "" {
		missing["order_id"] = "is required"
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		missing["amount"] = "must be positive"
	}
	if len(missing) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(missing)
	}

	expiresAt := i.now().Add(i.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"order_id":  orderID,
		"amount":    amount.String(),
		"school_id": i.schoolID,
		"exp":       expiresAt.Unix(),
	})
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "sign redirect token")
	}

	redirect, err := url.Parse(i.pageURL)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "parse payment page url")
	}
	query := redirect.Query()
	query.Set("token", signed)
	redirect.RawQuery = query.Encode()

	return &Redirect{
		PaymentPageURL: redirect.String(),
		Token:          signed,
		ExpiresAt:      expiresAt.Unix(),
	}, nil
}
