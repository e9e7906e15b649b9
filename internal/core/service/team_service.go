package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
	"github.com/bizgenie/bizgenie-api/internal/core/ports"
)

// TeamService implements team-roster use cases within a tenant. Inviting does
// not switch the inviter's session, so it creates the agent directly instead
// of going through AuthService.Register.
type TeamService struct {
	repo   ports.IdentityRepository
	logger zerolog.Logger
}

func NewTeamService(repo ports.IdentityRepository, logger zerolog.Logger) *TeamService {
	return &TeamService{repo: repo, logger: logger}
}

func (s *TeamService) Roster(ctx context.Context, viewer *domain.Identity) ([]*domain.Identity, error) {
	if viewer.BusinessID == "" {
		return []*domain.Identity{}, nil
	}
	return s.repo.ListByBusiness(ctx, viewer.BusinessID)
}

func (s *TeamService) Invite(ctx context.Context, viewer *domain.Identity, input ports.InviteInput) (*domain.Identity, error) {
	if viewer.Role != domain.RoleBusinessAdmin || viewer.BusinessID == "" {
		return nil, domain.ErrForbidden
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	agent := &domain.Identity{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleAgent,
		BusinessID:   viewer.BusinessID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, agent)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("agent_id", created.ID).Str("business_id", viewer.BusinessID).Msg("agent invited")
	return created, nil
}
