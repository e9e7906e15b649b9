package ports

import (
	"context"
	"time"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
)

// RegisterInput carries the data needed to create an identity.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	// Role defaults to BUSINESS_ADMIN when empty. New business admins get a
	// generated business id; agents must be bound to an existing one.
	Role       domain.Role
	BusinessID string
}

// AuthResult is returned after a successful register or login.
type AuthResult struct {
	Token    string
	Identity *domain.Identity
}

// AuthService implements registration, login, and logout.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Logout revokes the presented token until its natural expiry.
	Logout(ctx context.Context, token string) error
}

// RevocationStore records revoked token ids so stateless JWTs can be
// invalidated by logout.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
