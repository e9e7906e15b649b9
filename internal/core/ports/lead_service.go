package ports

import (
	"context"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
)

// CreateLeadInput carries the data for a new lead. Status and score are not
// caller-controlled: new leads always start NEW with the default score.
type CreateLeadInput struct {
	Name         string
	Email        string
	Phone        string
	Source       string
	Requirements string
	AssignedTo   string
}

// LeadService defines the role-scoped use cases over leads. Every method takes
// the viewer so scoping can never be bypassed at the transport layer.
type LeadService interface {
	// List returns exactly the leads the viewer may observe. A viewer with no
	// business binding gets an empty set, never an error.
	List(ctx context.Context, viewer *domain.Identity) ([]*domain.Lead, error)
	Create(ctx context.Context, viewer *domain.Identity, input CreateLeadInput) (*domain.Lead, error)
	UpdateStatus(ctx context.Context, viewer *domain.Identity, leadID string, status domain.LeadStatus) error
	// Assign hands a lead to an agent of the same business. Business admins only.
	Assign(ctx context.Context, viewer *domain.Identity, leadID, agentID string) error
}

// LeadAssignedEvent is published when a lead is handed to an agent.
type LeadAssignedEvent struct {
	LeadID     string `json:"lead_id"`
	LeadName   string `json:"lead_name"`
	BusinessID string `json:"business_id"`
	AgentID    string `json:"agent_id"`
	AgentName  string `json:"agent_name"`
	AgentEmail string `json:"agent_email"`
}

// LeadNotifier delivers assignment events to interested consumers (queue,
// mail). Failures are non-fatal to the assignment itself.
type LeadNotifier interface {
	LeadAssigned(ctx context.Context, event LeadAssignedEvent) error
}
