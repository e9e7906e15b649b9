package domain

import "time"

// SubscriptionPlan is the billing tier of a tenant.
type SubscriptionPlan string

const (
	PlanFree       SubscriptionPlan = "Free"
	PlanPro        SubscriptionPlan = "Pro"
	PlanEnterprise SubscriptionPlan = "Enterprise"
)

// BusinessStatus is the operational state of a tenant account.
type BusinessStatus string

const (
	BusinessActive    BusinessStatus = "Active"
	BusinessPending   BusinessStatus = "Pending"
	BusinessSuspended BusinessStatus = "Suspended"
)

// BusinessProfile is the tenant record created when a business admin completes
// onboarding. UploadedFiles holds object-store references, not file bytes.
type BusinessProfile struct {
	ID            string           `json:"id" bson:"_id,omitempty"`
	Name          string           `json:"name" bson:"name"`
	Industry      string           `json:"industry" bson:"industry"`
	Description   string           `json:"description" bson:"description"`
	OwnerID       string           `json:"owner_id" bson:"owner_id"`
	Plan          SubscriptionPlan `json:"plan" bson:"plan"`
	Status        BusinessStatus   `json:"status" bson:"status"`
	UploadedFiles []string         `json:"uploaded_files" bson:"uploaded_files"`
	CreatedAt     time.Time        `json:"created_at" bson:"created_at"`
}

// BusinessStats aggregates per-tenant usage counters.
type BusinessStats struct {
	TotalLeads       int64  `json:"total_leads"`
	CampaignsRunning int64  `json:"campaigns_running"`
	StorageUsed      string `json:"storage_used"`
}

// BusinessSummary is the cross-tenant read model served to platform admins.
// It deliberately exposes no tenant record detail beyond aggregates.
type BusinessSummary struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Industry   string           `json:"industry"`
	OwnerName  string           `json:"owner_name"`
	OwnerEmail string           `json:"owner_email"`
	AgentCount int64            `json:"agent_count"`
	Plan       SubscriptionPlan `json:"subscription_plan"`
	Status     BusinessStatus   `json:"status"`
	JoinedDate time.Time        `json:"joined_date"`
	Stats      BusinessStats    `json:"stats"`
}
