package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
	"github.com/bizgenie/bizgenie-api/internal/core/ports"
	"github.com/bizgenie/bizgenie-api/internal/core/session"
)

// AuthService implements registration, login, and logout. Successful calls
// publish exactly one event on the session feed.
type AuthService struct {
	repo      ports.IdentityRepository
	revoked   ports.RevocationStore
	feed      *session.Feed
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.IdentityRepository, revoked ports.RevocationStore, feed *session.Feed, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, revoked: revoked, feed: feed, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role := input.Role
	if role == "" {
		role = domain.RoleBusinessAdmin
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidCredentials
	}

	businessID := input.BusinessID
	if businessID == "" && role == domain.RoleBusinessAdmin {
		// New owners get a fresh tenant; the profile itself is created later,
		// at onboarding completion.
		businessID = "biz-" + uuid.NewString()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	identity := &domain.Identity{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		BusinessID:   businessID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, identity)
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(created)
	if err != nil {
		return nil, err
	}

	s.feed.Publish(created)
	return &ports.AuthResult{Token: token, Identity: created}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	identity, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// An unknown email fails the same way a wrong password does, so
		// callers cannot probe which accounts exist.
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(identity)
	if err != nil {
		return nil, err
	}

	s.feed.Publish(identity)
	return &ports.AuthResult{Token: token, Identity: identity}, nil
}

// Logout revokes the token id until the token's natural expiry and clears the
// session feed.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return domain.ErrInvalidCredentials
	}

	jti, _ := claims["jti"].(string)
	if jti == "" {
		return domain.ErrInvalidCredentials
	}
	sub, _ := claims["sub"].(string)

	ttl := s.tokenTTL
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		ttl = time.Until(exp.Time)
	}
	if ttl > 0 {
		if err := s.revoked.Revoke(ctx, jti, ttl); err != nil {
			return fmt.Errorf("revoke token: %w", err)
		}
	}

	s.feed.Clear(sub)
	return nil
}

func (s *AuthService) generateToken(identity *domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":         identity.ID,
		"name":        identity.Name,
		"role":        string(identity.Role),
		"business_id": identity.BusinessID,
		"jti":         uuid.NewString(),
		"exp":         time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
