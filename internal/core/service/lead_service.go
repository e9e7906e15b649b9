package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
	"github.com/bizgenie/bizgenie-api/internal/core/liveview"
	"github.com/bizgenie/bizgenie-api/internal/core/ports"
)

// LeadService implements the role-scoped lead use cases.
type LeadService struct {
	repo       ports.LeadRepository
	identities ports.IdentityRepository
	notifier   ports.LeadNotifier
	hub        *liveview.Hub
	logger     zerolog.Logger
}

func NewLeadService(repo ports.LeadRepository, identities ports.IdentityRepository, notifier ports.LeadNotifier, hub *liveview.Hub, logger zerolog.Logger) *LeadService {
	return &LeadService{repo: repo, identities: identities, notifier: notifier, hub: hub, logger: logger}
}

// scopeFor derives the repository scope from the viewer's role. A zero scope
// with ok=false means the viewer legitimately sees nothing.
func scopeFor(viewer *domain.Identity) (ports.LeadScope, bool, error) {
	if viewer.BusinessID == "" {
		return ports.LeadScope{}, false, nil
	}
	switch viewer.Role {
	case domain.RoleAgent:
		return ports.LeadScope{BusinessID: viewer.BusinessID, AssignedTo: viewer.ID}, true, nil
	case domain.RoleBusinessAdmin:
		return ports.LeadScope{BusinessID: viewer.BusinessID}, true, nil
	case domain.RolePlatformAdmin:
		// Platform admins see cross-tenant summaries, never tenant records.
		return ports.LeadScope{}, false, nil
	}
	return ports.LeadScope{}, false, domain.ErrForbidden
}

func (s *LeadService) List(ctx context.Context, viewer *domain.Identity) ([]*domain.Lead, error) {
	scope, ok, err := scopeFor(viewer)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []*domain.Lead{}, nil
	}
	return s.repo.List(ctx, scope)
}

func (s *LeadService) Create(ctx context.Context, viewer *domain.Identity, input ports.CreateLeadInput) (*domain.Lead, error) {
	if viewer.BusinessID == "" {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	lead := &domain.Lead{
		ID:              uuid.NewString(),
		BusinessID:      viewer.BusinessID,
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		Source:          input.Source,
		Status:          domain.LeadNew,
		Score:           domain.DefaultLeadScore,
		Requirements:    input.Requirements,
		AssignedTo:      input.AssignedTo,
		LastInteraction: now,
		CreatedAt:       now,
	}

	if err := s.repo.Insert(ctx, lead); err != nil {
		s.logger.Error().Err(err).Str("business_id", viewer.BusinessID).Msg("failed to create lead")
		return nil, err
	}

	s.logger.Info().Str("lead_id", lead.ID).Str("business_id", lead.BusinessID).Str("source", lead.Source).Msg("lead created")
	s.hub.Notify(liveview.Topic(lead.BusinessID, liveview.CollectionLeads))
	return lead, nil
}

func (s *LeadService) UpdateStatus(ctx context.Context, viewer *domain.Identity, leadID string, status domain.LeadStatus) error {
	if viewer.BusinessID == "" {
		return domain.ErrForbidden
	}
	if !status.Valid() {
		return domain.ErrInvalidStatus
	}

	lead, err := s.repo.FindByID(ctx, viewer.BusinessID, leadID)
	if err != nil {
		return err
	}
	// Agents may only touch their own leads.
	if viewer.Role == domain.RoleAgent && lead.AssignedTo != viewer.ID {
		return domain.ErrForbidden
	}

	if err := s.repo.UpdateStatus(ctx, viewer.BusinessID, leadID, status); err != nil {
		return fmt.Errorf("update lead status: %w", err)
	}

	s.hub.Notify(liveview.Topic(viewer.BusinessID, liveview.CollectionLeads))
	return nil
}

// Assign hands a lead to an agent of the same business and emits an
// assignment event. Notification failures are logged, not surfaced: the
// assignment itself already succeeded.
func (s *LeadService) Assign(ctx context.Context, viewer *domain.Identity, leadID, agentID string) error {
	if viewer.Role != domain.RoleBusinessAdmin || viewer.BusinessID == "" {
		return domain.ErrForbidden
	}

	lead, err := s.repo.FindByID(ctx, viewer.BusinessID, leadID)
	if err != nil {
		return err
	}

	agent, err := s.identities.FindByID(ctx, agentID)
	if err != nil {
		return err
	}
	if agent.BusinessID != viewer.BusinessID || agent.Role != domain.RoleAgent {
		return domain.ErrForbidden
	}

	if err := s.repo.Assign(ctx, viewer.BusinessID, leadID, agentID); err != nil {
		return fmt.Errorf("assign lead: %w", err)
	}

	if s.notifier != nil {
		event := ports.LeadAssignedEvent{
			LeadID:     lead.ID,
			LeadName:   lead.Name,
			BusinessID: lead.BusinessID,
			AgentID:    agent.ID,
			AgentName:  agent.Name,
			AgentEmail: agent.Email,
		}
		if err := s.notifier.LeadAssigned(ctx, event); err != nil {
			s.logger.Warn().Err(err).Str("lead_id", leadID).Str("agent_id", agentID).Msg("failed to publish assignment event")
		}
	}

	s.logger.Info().Str("lead_id", leadID).Str("agent_id", agentID).Msg("lead assigned")
	s.hub.Notify(liveview.Topic(viewer.BusinessID, liveview.CollectionLeads))
	return nil
}
