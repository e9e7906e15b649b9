package ports

import (
	"context"
	"io"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
)

// OnboardingInput carries the tenant profile captured at onboarding.
type OnboardingInput struct {
	Name        string
	Industry    string
	Description string
}

// BusinessService defines tenant-profile and platform-administration use cases.
type BusinessService interface {
	// CompleteOnboarding creates the tenant profile for a business admin and
	// moves the account out of the awaiting-onboarding state.
	CompleteOnboarding(ctx context.Context, viewer *domain.Identity, input OnboardingInput) (*domain.BusinessProfile, error)
	// Profile returns the viewer's tenant profile, or ErrBusinessNotFound when
	// onboarding has not completed yet.
	Profile(ctx context.Context, viewer *domain.Identity) (*domain.BusinessProfile, error)
	// UploadFile stores a document in the object store and records its
	// reference on the profile. Returns the stored reference.
	UploadFile(ctx context.Context, viewer *domain.Identity, filename, contentType string, r io.Reader) (string, error)
	RemoveFile(ctx context.Context, viewer *domain.Identity, ref string) error
	// ListSummaries returns the cross-tenant read model. Platform admins only.
	ListSummaries(ctx context.Context, viewer *domain.Identity) ([]*domain.BusinessSummary, error)
}

// FileStore abstracts the object storage backing business file uploads.
type FileStore interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader) error
	Delete(ctx context.Context, key string) error
}
