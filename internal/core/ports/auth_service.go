package ports

import (
	"context"

	"github.com/lemonqwest/household-api/internal/core/domain"
)

// AuthService is the authentication and session domain surface consumed by
// the transport layer. Expected failures come back as AuthResult variants;
// a non-nil error always means a collaborator fault.
type AuthService interface {
	AuthenticateWithPIN(ctx context.Context, pin domain.PIN) (domain.AuthResult, error)
	AuthenticateAsChild(ctx context.Context) (domain.AuthResult, error)
	SwitchRole(ctx context.Context, target domain.UserRole) (domain.AuthResult, error)
	CurrentUser(ctx context.Context) (*domain.User, error)
	IsAuthenticated(ctx context.Context) (bool, error)
	Logout(ctx context.Context) error
}
