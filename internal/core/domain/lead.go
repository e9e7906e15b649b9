package domain

import "time"

// LeadStatus represents the pipeline state of a lead.
type LeadStatus string

const (
	LeadNew       LeadStatus = "NEW"
	LeadContacted LeadStatus = "CONTACTED"
	LeadQualified LeadStatus = "QUALIFIED"
	LeadClosed    LeadStatus = "CLOSED"
	LeadLost      LeadStatus = "LOST"
)

// Valid reports whether s is a known lead status.
func (s LeadStatus) Valid() bool {
	switch s {
	case LeadNew, LeadContacted, LeadQualified, LeadClosed, LeadLost:
		return true
	}
	return false
}

// DefaultLeadScore is assigned to every new lead. No scoring algorithm exists;
// the score only changes through explicit updates.
const DefaultLeadScore = 50

// Lead is a CRM prospect owned by exactly one business.
type Lead struct {
	ID              string     `json:"id" bson:"_id,omitempty"`
	BusinessID      string     `json:"business_id" bson:"business_id"`
	Name            string     `json:"name" bson:"name"`
	Email           string     `json:"email" bson:"email"`
	Phone           string     `json:"phone" bson:"phone"`
	Source          string     `json:"source" bson:"source"`
	Status          LeadStatus `json:"status" bson:"status"`
	LastInteraction time.Time  `json:"last_interaction" bson:"last_interaction"`
	Score           int        `json:"score" bson:"score"`
	Requirements    string     `json:"requirements,omitempty" bson:"requirements,omitempty"`
	AssignedTo      string     `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	CreatedAt       time.Time  `json:"created_at" bson:"created_at"`
}
