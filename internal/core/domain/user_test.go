package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRole(t *testing.T) {
	for raw, want := range map[string]UserRole{"child": RoleChild, "caregiver": RoleCaregiver} {
		role, err := ParseRole(raw)
		if err != nil {
			t.Fatalf("ParseRole(%q): %v", raw, err)
		}
		if role != want {
			t.Fatalf("ParseRole(%q) = %s, want %s", raw, role, want)
		}
	}

	if _, err := ParseRole("admin"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestNewPIN(t *testing.T) {
	pin, err := NewPIN("1234")
	if err != nil {
		t.Fatalf("NewPIN: %v", err)
	}
	if pin.Value() != "1234" {
		t.Fatalf("unexpected value: %s", pin.Value())
	}

	for _, raw := range []string{"", "123", "12345", "12a4", "12 4"} {
		if _, err := NewPIN(raw); !errors.Is(err, ErrInvalidPIN) {
			t.Fatalf("NewPIN(%q): expected ErrInvalidPIN, got %v", raw, err)
		}
	}
}

func TestPIN_StringMasksSecret(t *testing.T) {
	pin, err := NewPIN("1234")
	if err != nil {
		t.Fatalf("NewPIN: %v", err)
	}
	if strings.Contains(pin.String(), "1234") {
		t.Fatalf("String() leaks the secret: %s", pin.String())
	}
}

func TestAuthResultVariants(t *testing.T) {
	u := &User{ID: "caregiver-1", Role: RoleCaregiver}

	success := AuthSuccess(u)
	if !success.Authenticated() || success.User != u {
		t.Fatalf("unexpected success variant: %+v", success)
	}

	for _, r := range []AuthResult{AuthInvalidPIN(), AuthUserNotFound()} {
		if r.Authenticated() {
			t.Fatalf("failure variant reports authenticated: %+v", r)
		}
		if r.User != nil {
			t.Fatalf("failure variant carries a user: %+v", r)
		}
	}
}
