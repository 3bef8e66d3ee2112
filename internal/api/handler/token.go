package handler

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lemonqwest/household-api/internal/core/domain"
)

// TokenIssuer mints the transport-level bearer tokens handed out after a
// successful authentication. The token is only proof for the HTTP layer;
// session truth stays in the session store.
type TokenIssuer struct {
	secret string
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: secret, ttl: ttl}
}

// Issue signs an HS256 token carrying the user's id, role and admin flag.
func (i *TokenIssuer) Issue(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"role":     string(user.Role),
		"is_admin": user.IsAdmin,
		"exp":      time.Now().Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(i.secret))
}
