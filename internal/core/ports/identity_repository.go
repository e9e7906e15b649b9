package ports

import (
	"context"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
)

// IdentityRepository defines persistence for identities and their profiles.
type IdentityRepository interface {
	Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error)
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
	FindByID(ctx context.Context, id string) (*domain.Identity, error)
	// ListByBusiness returns the team roster of a tenant in insertion order.
	ListByBusiness(ctx context.Context, businessID string) ([]*domain.Identity, error)
}
