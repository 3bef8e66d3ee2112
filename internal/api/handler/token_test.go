package handler

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lemonqwest/household-api/internal/core/domain"
)

func TestTokenIssuer_Claims(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	user := &domain.User{ID: "caregiver-1", Role: domain.RoleCaregiver, IsAdmin: true}

	token, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["user_id"] != "caregiver-1" {
		t.Fatalf("user_id claim missing: %v", claims)
	}
	if claims["role"] != "caregiver" {
		t.Fatalf("role claim missing: %v", claims)
	}
	if claims["is_admin"] != true {
		t.Fatalf("is_admin claim missing: %v", claims)
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("exp claim missing: %v", claims)
	}
}

func TestTokenIssuer_DefaultTTL(t *testing.T) {
	issuer := NewTokenIssuer("secret", 0)
	if issuer.ttl != 24*time.Hour {
		t.Fatalf("expected default ttl, got %v", issuer.ttl)
	}
}
