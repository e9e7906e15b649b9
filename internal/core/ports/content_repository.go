package ports

import (
	"context"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
)

// ContentRepository defines persistence operations for content items.
// Listing is business-wide; per-role visibility is applied by the service.
type ContentRepository interface {
	Insert(ctx context.Context, item *domain.ContentItem) error
	FindByID(ctx context.Context, businessID, id string) (*domain.ContentItem, error)
	ListByBusiness(ctx context.Context, businessID string) ([]*domain.ContentItem, error)
	UpdateStatus(ctx context.Context, businessID, id string, status domain.ContentStatus) error
}
