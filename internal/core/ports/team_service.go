package ports

import (
	"context"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
)

// InviteInput carries the data for inviting an agent onto the viewer's team.
type InviteInput struct {
	Name     string
	Email    string
	Password string
}

// TeamService defines team-roster use cases within a tenant.
type TeamService interface {
	// Roster lists every identity bound to the viewer's business.
	Roster(ctx context.Context, viewer *domain.Identity) ([]*domain.Identity, error)
	// Invite creates an AGENT identity bound to the viewer's business.
	// Business admins only.
	Invite(ctx context.Context, viewer *domain.Identity, input InviteInput) (*domain.Identity, error)
}
