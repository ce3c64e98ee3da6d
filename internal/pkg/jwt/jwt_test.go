package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	token, err := svc.GenerateAccessToken("ops@venuehub.test", RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken returned error: %v", err)
	}
	if claims.Subject != "ops@venuehub.test" {
		t.Fatalf("expected subject ops@venuehub.test, got %s", claims.Subject)
	}
	if claims.Role != RoleAdmin {
		t.Fatalf("expected role admin, got %s", claims.Role)
	}
}

func TestValidateAccessTokenWrongSecret(t *testing.T) {
	token, err := NewService("secret-a", time.Hour).GenerateAccessToken("ops", RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	if _, err := NewService("secret-b", time.Hour).ValidateAccessToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateAccessTokenExpired(t *testing.T) {
	svc := NewService("test-secret", time.Minute)
	issued := time.Now().Add(-time.Hour)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateAccessToken("ops", RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateAccessToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateAccessTokenGarbage(t *testing.T) {
	if _, err := NewService("s", time.Hour).ValidateAccessToken("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
