package ports

import (
	"context"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
)

// LeadScope narrows a lead query to what the viewer may observe. The service
// layer always derives it from the viewer's role; repositories never guess.
type LeadScope struct {
	BusinessID string // required; empty means "nothing visible"
	AssignedTo string // optional: restrict to leads assigned to this identity
}

// LeadRepository defines persistence operations for leads.
type LeadRepository interface {
	Insert(ctx context.Context, lead *domain.Lead) error
	// FindByID retrieves a lead within a business. businessID is always
	// enforced to keep tenants isolated.
	FindByID(ctx context.Context, businessID, id string) (*domain.Lead, error)
	// List returns leads matching scope in insertion order.
	List(ctx context.Context, scope LeadScope) ([]*domain.Lead, error)
	UpdateStatus(ctx context.Context, businessID, id string, status domain.LeadStatus) error
	Assign(ctx context.Context, businessID, id, agentID string) error
}
