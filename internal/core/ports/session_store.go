package ports

import (
	"context"

	"github.com/lemonqwest/household-api/internal/core/domain"
)

// SessionStore holds the single current-authentication slot for this
// device: the authenticated user's id plus a cached role and admin flag.
// There is exactly one slot; concurrent writers are last-write-wins.
type SessionStore interface {
	// CurrentUserID returns the latest value of the slot, "" when no
	// session is active.
	CurrentUserID(ctx context.Context) (string, error)

	// SetCurrentUser writes id, role and admin flag as one atomic unit.
	SetCurrentUser(ctx context.Context, id string, role domain.UserRole, isAdmin bool) error

	// ClearCurrentUser empties the slot. Clearing an empty slot is a no-op.
	ClearCurrentUser(ctx context.Context) error
}
