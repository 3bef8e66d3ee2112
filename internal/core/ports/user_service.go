package ports

import (
	"context"

	"github.com/lemonqwest/household-api/internal/core/domain"
)

// CreateUserInput carries everything needed to register a household member.
// PIN is optional; children are created without one.
type CreateUserInput struct {
	Name          string
	Role          domain.UserRole
	PIN           *domain.PIN
	DisplayName   string
	AvatarType    domain.AvatarType
	AvatarData    string
	FavoriteColor string
	IsAdmin       bool
}

// UpdateProfileInput carries the mutable profile attributes. Nil pointers
// leave the stored value untouched.
type UpdateProfileInput struct {
	DisplayName   *string
	AvatarType    *domain.AvatarType
	AvatarData    *string
	FavoriteColor *string
}

// UserService manages household member records.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (*domain.User, error)
}
