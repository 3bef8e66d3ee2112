package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lemonqwest/household-api/internal/core/domain"
	"github.com/lemonqwest/household-api/internal/core/ports"
)

// UserService manages household member records on top of the repository.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Create registers a new household member. Ids are generated here; the PIN,
// when present, is handed to the repository which owns hashing and storage.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if in.Name == "" || !in.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	avatarType := in.AvatarType
	avatarData := in.AvatarData
	if avatarType == "" {
		avatarType = domain.AvatarPredefined
	}
	if avatarData == "" {
		avatarData = domain.DefaultAvatarID
	}

	user := &domain.User{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Role:          in.Role,
		DisplayName:   in.DisplayName,
		AvatarType:    avatarType,
		AvatarData:    avatarData,
		FavoriteColor: in.FavoriteColor,
		// The admin flag only means anything for caregivers.
		IsAdmin: in.IsAdmin && in.Role == domain.RoleCaregiver,
	}

	created, err := s.repo.Create(ctx, user, in.PIN)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// Get resolves a single member by id.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// List returns every household member.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// UpdateProfile applies the provided profile attributes, leaving identity
// and authorization fields untouched.
func (s *UserService) UpdateProfile(ctx context.Context, id string, in ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.DisplayName != nil {
		user.DisplayName = *in.DisplayName
	}
	if in.AvatarType != nil {
		user.AvatarType = *in.AvatarType
	}
	if in.AvatarData != nil {
		user.AvatarData = *in.AvatarData
	}
	if in.FavoriteColor != nil {
		user.FavoriteColor = *in.FavoriteColor
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}
