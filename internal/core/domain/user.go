package domain

import (
	"errors"
	"fmt"
	"regexp"
)

// UserRole determines which features a household member can access and
// whether they may switch the device session to another role.
type UserRole string

const (
	RoleChild     UserRole = "child"
	RoleCaregiver UserRole = "caregiver"
)

// ParseRole converts a request string into a UserRole.
func ParseRole(s string) (UserRole, error) {
	switch UserRole(s) {
	case RoleChild, RoleCaregiver:
		return UserRole(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	return r == RoleChild || r == RoleCaregiver
}

// AvatarType describes where a user's avatar comes from.
type AvatarType string

const (
	AvatarPredefined AvatarType = "predefined"
	AvatarCustom     AvatarType = "custom"
)

// DefaultAvatarID is assigned to users created without an explicit avatar.
const DefaultAvatarID = "default_child"

var ErrInvalidRole = errors.New("invalid user role")
var ErrInvalidPIN = errors.New("invalid pin format")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// User models a household member. Identity and authorization live in ID,
// Role and IsAdmin; the remaining attributes (token balance, avatar, display
// preferences) are carried through the auth flows untouched. PIN credentials
// are never part of this struct — they stay inside the user directory.
type User struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Role          UserRole   `json:"role"`
	TokenBalance  int        `json:"token_balance"`
	DisplayName   string     `json:"display_name,omitempty"`
	AvatarType    AvatarType `json:"avatar_type"`
	AvatarData    string     `json:"avatar_data"`
	FavoriteColor string     `json:"favorite_color,omitempty"`
	IsAdmin       bool       `json:"is_admin"`
}

var pinPattern = regexp.MustCompile(`^[0-9]{4}$`)

// PIN is a four-digit secret used by caregivers to authenticate. It wraps
// the raw value only transiently, between request parsing and the directory
// lookup; storage and hashing belong to the directory implementation.
type PIN struct {
	value string
}

// NewPIN validates the raw secret and wraps it.
func NewPIN(raw string) (PIN, error) {
	if !pinPattern.MatchString(raw) {
		return PIN{}, ErrInvalidPIN
	}
	return PIN{value: raw}, nil
}

// Value returns the raw secret for directory lookup.
func (p PIN) Value() string {
	return p.value
}

// String masks the secret so a PIN can never leak through logging.
func (p PIN) String() string {
	return "****"
}
