package ports

import (
	"context"

	"github.com/lemonqwest/household-api/internal/core/domain"
)

// UserDirectory resolves household members from durable storage. Every
// lookup returns (nil, nil) on a miss; a non-nil error means the storage
// itself failed, never "not found".
type UserDirectory interface {
	// FindByID resolves a user by unique id.
	FindByID(ctx context.Context, id string) (*domain.User, error)

	// FindByPIN resolves the user whose PIN credential matches exactly.
	// PIN hashing and normalization are this directory's concern; the
	// directory is expected to guarantee PIN uniqueness.
	FindByPIN(ctx context.Context, pin domain.PIN) (*domain.User, error)

	// FindByRole resolves the first (expected: only) user holding the role.
	FindByRole(ctx context.Context, role domain.UserRole) (*domain.User, error)
}

// UserRepository extends the directory with the write operations the user
// management service needs. Auth flows only ever see the UserDirectory side.
type UserRepository interface {
	UserDirectory

	// Create persists a new user; pin may be nil for users without PIN
	// access. Returns domain.ErrUserExists on id collision.
	Create(ctx context.Context, user *domain.User, pin *domain.PIN) (*domain.User, error)

	// List returns all household members.
	List(ctx context.Context) ([]*domain.User, error)

	// Update overwrites the stored profile attributes of an existing user.
	// Returns domain.ErrUserNotFound when the id does not resolve.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}
