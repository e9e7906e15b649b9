package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/rs/zerolog"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
	"github.com/bizgenie/bizgenie-api/internal/core/ports"
)

// BusinessService implements onboarding, tenant-profile management, and the
// platform-admin summary view.
type BusinessService struct {
	repo   ports.BusinessRepository
	files  ports.FileStore
	logger zerolog.Logger
}

func NewBusinessService(repo ports.BusinessRepository, files ports.FileStore, logger zerolog.Logger) *BusinessService {
	return &BusinessService{repo: repo, files: files, logger: logger}
}

// CompleteOnboarding creates the tenant profile. Only business admins go
// through onboarding; the profile id is the admin's business binding.
func (s *BusinessService) CompleteOnboarding(ctx context.Context, viewer *domain.Identity, input ports.OnboardingInput) (*domain.BusinessProfile, error) {
	if viewer.Role != domain.RoleBusinessAdmin || viewer.BusinessID == "" {
		return nil, domain.ErrForbidden
	}

	if _, err := s.repo.FindByID(ctx, viewer.BusinessID); err == nil {
		return nil, domain.ErrBusinessExists
	}

	profile := &domain.BusinessProfile{
		ID:            viewer.BusinessID,
		Name:          input.Name,
		Industry:      input.Industry,
		Description:   input.Description,
		OwnerID:       viewer.ID,
		Plan:          domain.PlanFree,
		Status:        domain.BusinessActive,
		UploadedFiles: []string{},
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.CreateProfile(ctx, profile); err != nil {
		s.logger.Error().Err(err).Str("business_id", viewer.BusinessID).Msg("failed to create business profile")
		return nil, err
	}

	s.logger.Info().Str("business_id", profile.ID).Str("industry", profile.Industry).Msg("onboarding completed")
	return profile, nil
}

func (s *BusinessService) Profile(ctx context.Context, viewer *domain.Identity) (*domain.BusinessProfile, error) {
	if viewer.BusinessID == "" {
		return nil, domain.ErrBusinessNotFound
	}
	return s.repo.FindByID(ctx, viewer.BusinessID)
}

// UploadFile stores the document under the tenant's prefix and records the
// reference on the profile.
func (s *BusinessService) UploadFile(ctx context.Context, viewer *domain.Identity, filename, contentType string, r io.Reader) (string, error) {
	if viewer.Role != domain.RoleBusinessAdmin || viewer.BusinessID == "" {
		return "", domain.ErrForbidden
	}

	ref := path.Join(viewer.BusinessID, path.Base(filename))
	if err := s.files.Upload(ctx, ref, contentType, r); err != nil {
		return "", fmt.Errorf("upload file: %w", err)
	}

	if err := s.repo.AddFileRef(ctx, viewer.BusinessID, ref); err != nil {
		return "", err
	}

	s.logger.Info().Str("business_id", viewer.BusinessID).Str("ref", ref).Msg("file uploaded")
	return ref, nil
}

func (s *BusinessService) RemoveFile(ctx context.Context, viewer *domain.Identity, ref string) error {
	if viewer.Role != domain.RoleBusinessAdmin || viewer.BusinessID == "" {
		return domain.ErrForbidden
	}

	if err := s.files.Delete(ctx, ref); err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	return s.repo.RemoveFileRef(ctx, viewer.BusinessID, ref)
}

// ListSummaries returns the cross-tenant read model. Platform admins only; no
// tenant record detail is exposed here.
func (s *BusinessService) ListSummaries(ctx context.Context, viewer *domain.Identity) ([]*domain.BusinessSummary, error) {
	if viewer.Role != domain.RolePlatformAdmin {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListSummaries(ctx)
}
