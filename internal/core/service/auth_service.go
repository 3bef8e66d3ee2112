package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lemonqwest/household-api/internal/core/domain"
	"github.com/lemonqwest/household-api/internal/core/ports"
)

// AuthService implements PIN authentication, PIN-less child authentication,
// authorization-gated role switching and session retrieval. It holds no
// state of its own: every operation re-reads the session store and the user
// directory, and each call makes at most two collaborator round-trips.
type AuthService struct {
	directory ports.UserDirectory
	sessions  ports.SessionStore
	log       zerolog.Logger
}

func NewAuthService(directory ports.UserDirectory, sessions ports.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{directory: directory, sessions: sessions, log: log}
}

// AuthenticateWithPIN resolves a user by exact PIN match and, on success,
// establishes the session. A miss returns the InvalidPIN variant and leaves
// the session untouched. There is no attempt lockout.
func (s *AuthService) AuthenticateWithPIN(ctx context.Context, pin domain.PIN) (domain.AuthResult, error) {
	user, err := s.directory.FindByPIN(ctx, pin)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("find by pin: %w", err)
	}
	if user == nil {
		return domain.AuthInvalidPIN(), nil
	}

	if err := s.sessions.SetCurrentUser(ctx, user.ID, user.Role, user.IsAdmin); err != nil {
		return domain.AuthResult{}, fmt.Errorf("set session: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("pin authentication succeeded")
	return domain.AuthSuccess(user), nil
}

// AuthenticateAsChild resolves the household child directly, bypassing any
// PIN check. Children have no PIN barrier.
func (s *AuthService) AuthenticateAsChild(ctx context.Context) (domain.AuthResult, error) {
	child, err := s.directory.FindByRole(ctx, domain.RoleChild)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("find child: %w", err)
	}
	if child == nil {
		return domain.AuthUserNotFound(), nil
	}

	if err := s.sessions.SetCurrentUser(ctx, child.ID, child.Role, child.IsAdmin); err != nil {
		return domain.AuthResult{}, fmt.Errorf("set session: %w", err)
	}

	s.log.Info().Str("user_id", child.ID).Msg("child authentication succeeded")
	return domain.AuthSuccess(child), nil
}

// SwitchRole moves the session to the user holding target. Only a
// currently-authenticated caregiver may switch; a child session, a missing
// session and a missing target user all surface as the same UserNotFound
// variant so an unauthenticated caller learns nothing about who exists.
func (s *AuthService) SwitchRole(ctx context.Context, target domain.UserRole) (domain.AuthResult, error) {
	currentID, err := s.sessions.CurrentUserID(ctx)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("read session: %w", err)
	}
	if currentID == "" {
		return domain.AuthUserNotFound(), nil
	}

	current, err := s.directory.FindByID(ctx, currentID)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("find current user: %w", err)
	}
	if current == nil {
		return domain.AuthUserNotFound(), nil
	}

	// The gate is solely on the current role; switching to the role already
	// held goes through the same path.
	if current.Role == domain.RoleChild {
		s.log.Warn().Str("user_id", current.ID).Str("target", string(target)).Msg("role switch denied")
		return domain.AuthUserNotFound(), nil
	}

	targetUser, err := s.directory.FindByRole(ctx, target)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("find target user: %w", err)
	}
	if targetUser == nil {
		return domain.AuthUserNotFound(), nil
	}

	if err := s.sessions.SetCurrentUser(ctx, targetUser.ID, targetUser.Role, targetUser.IsAdmin); err != nil {
		return domain.AuthResult{}, fmt.Errorf("set session: %w", err)
	}

	s.log.Info().
		Str("from_user_id", current.ID).
		Str("to_user_id", targetUser.ID).
		Str("target_role", string(target)).
		Msg("role switch succeeded")
	return domain.AuthSuccess(targetUser), nil
}

// CurrentUser resolves the session subject, nil when no session is active
// or when the stored id no longer resolves (stale reference). A stale id is
// reported as no-user without clearing the session.
func (s *AuthService) CurrentUser(ctx context.Context) (*domain.User, error) {
	id, err := s.sessions.CurrentUserID(ctx)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if id == "" {
		return nil, nil
	}

	user, err := s.directory.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find current user: %w", err)
	}
	return user, nil
}

// IsAuthenticated is defined as CurrentUser != nil; it shares that code
// path so the two checks can never diverge.
func (s *AuthService) IsAuthenticated(ctx context.Context) (bool, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

// Logout unconditionally clears the session slot. Logging out with no
// active session is a no-op success.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.ClearCurrentUser(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.log.Info().Msg("session cleared")
	return nil
}
