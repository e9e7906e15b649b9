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

// ContentService implements the content-studio use cases. The repository
// returns the business collection; visibility is filtered here so the rule
// (admins all, agents own-or-shared) lives in exactly one place.
type ContentService struct {
	repo   ports.ContentRepository
	hub    *liveview.Hub
	logger zerolog.Logger
}

func NewContentService(repo ports.ContentRepository, hub *liveview.Hub, logger zerolog.Logger) *ContentService {
	return &ContentService{repo: repo, hub: hub, logger: logger}
}

func (s *ContentService) List(ctx context.Context, viewer *domain.Identity) ([]*domain.ContentItem, error) {
	if viewer.BusinessID == "" {
		return []*domain.ContentItem{}, nil
	}

	items, err := s.repo.ListByBusiness(ctx, viewer.BusinessID)
	if err != nil {
		return nil, err
	}

	visible := make([]*domain.ContentItem, 0, len(items))
	for _, item := range items {
		if item.VisibleTo(viewer) {
			visible = append(visible, item)
		}
	}
	return visible, nil
}

func (s *ContentService) Save(ctx context.Context, viewer *domain.Identity, input ports.SaveContentInput) (*domain.ContentItem, error) {
	if viewer.BusinessID == "" {
		return nil, domain.ErrForbidden
	}
	if !input.Type.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	item := &domain.ContentItem{
		ID:         uuid.NewString(),
		BusinessID: viewer.BusinessID,
		Title:      input.Title,
		Type:       input.Type,
		Status:     domain.ContentDraft,
		Data:       input.Data,
		CreatedBy:  viewer.ID,
		Shared:     input.Shared,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		s.logger.Error().Err(err).Str("business_id", viewer.BusinessID).Msg("failed to save content")
		return nil, err
	}

	s.logger.Info().Str("content_id", item.ID).Str("type", string(item.Type)).Msg("content saved")
	s.hub.Notify(liveview.Topic(item.BusinessID, liveview.CollectionContent))
	return item, nil
}

func (s *ContentService) UpdateStatus(ctx context.Context, viewer *domain.Identity, contentID string, status domain.ContentStatus) error {
	if viewer.BusinessID == "" {
		return domain.ErrForbidden
	}

	item, err := s.repo.FindByID(ctx, viewer.BusinessID, contentID)
	if err != nil {
		return err
	}
	if !item.VisibleTo(viewer) {
		return domain.ErrForbidden
	}
	// Only admins move content through the editorial pipeline.
	if viewer.Role == domain.RoleAgent {
		return domain.ErrForbidden
	}
	if !item.Status.CanTransitionTo(status) {
		return fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, item.Status, status)
	}

	if err := s.repo.UpdateStatus(ctx, viewer.BusinessID, contentID, status); err != nil {
		return fmt.Errorf("update content status: %w", err)
	}

	s.hub.Notify(liveview.Topic(viewer.BusinessID, liveview.CollectionContent))
	return nil
}
