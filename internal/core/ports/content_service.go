package ports

import (
	"context"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
)

// SaveContentInput carries the data for a new content item. New items always
// start as drafts.
type SaveContentInput struct {
	Title  string
	Type   domain.ContentType
	Data   string
	Shared bool
}

// ContentService defines the content-studio use cases.
type ContentService interface {
	// List returns the items the viewer may observe: admins see the whole
	// business collection, agents see own-or-shared.
	List(ctx context.Context, viewer *domain.Identity) ([]*domain.ContentItem, error)
	Save(ctx context.Context, viewer *domain.Identity, input SaveContentInput) (*domain.ContentItem, error)
	UpdateStatus(ctx context.Context, viewer *domain.Identity, contentID string, status domain.ContentStatus) error
}
