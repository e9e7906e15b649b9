package ports

import (
	"context"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
)

// BusinessRepository defines persistence for tenant profiles and the
// platform-admin summary read model.
type BusinessRepository interface {
	CreateProfile(ctx context.Context, profile *domain.BusinessProfile) error
	FindByID(ctx context.Context, id string) (*domain.BusinessProfile, error)
	AddFileRef(ctx context.Context, businessID, ref string) error
	RemoveFileRef(ctx context.Context, businessID, ref string) error
	// ListSummaries aggregates every tenant into its summary view.
	ListSummaries(ctx context.Context) ([]*domain.BusinessSummary, error)
}
