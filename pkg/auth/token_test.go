package auth

import (
	"testing"
	"time"

	"github.com/edupaylabs/edupay-backend/pkg/config"
	"github.com/google/uuid"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "edupay",
		ExpirationMinutes: 60,
	}
}

func TestMintAndParseRoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	signed, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{UserID: userID})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := ParseAccessToken(cfg, signed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("expected issuer %s, got %s", cfg.Issuer, claims.Issuer)
	}
	if claims.ID == "" {
		t.Fatal("expected a generated jti")
	}
}

func TestMintRequiresUserID(t *testing.T) {
	if _, err := MintAccessToken(testJWTConfig(), time.Now(), AccessTokenPayload{}); err == nil {
		t.Fatal("expected error for nil user id")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.ExpirationMinutes = 1

	signed, err := MintAccessToken(cfg, time.Now().Add(-time.Hour), AccessTokenPayload{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if _, err := ParseAccessToken(cfg, signed); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	signed, err := MintAccessToken(testJWTConfig(), time.Now(), AccessTokenPayload{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	other := testJWTConfig()
	other.Secret = "another-secret"
	if _, err := ParseAccessToken(other, signed); err == nil {
		t.Fatal("expected token signed with different secret to be rejected")
	}
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	cfg := testJWTConfig()
	signed, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	cfg.Issuer = "someone-else"
	if _, err := ParseAccessToken(cfg, signed); err == nil {
		t.Fatal("expected token with different issuer to be rejected")
	}
}
