package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
	"github.com/bizgenie/bizgenie-api/internal/core/liveview"
	"github.com/bizgenie/bizgenie-api/internal/core/ports"
)

func admin(businessID string) *domain.Identity {
	return &domain.Identity{ID: "admin-1", Name: "Admin", Role: domain.RoleBusinessAdmin, BusinessID: businessID}
}

func agentIdentity(id, businessID string) *domain.Identity {
	return &domain.Identity{ID: id, Name: "Agent " + id, Email: id + "@example.com", Role: domain.RoleAgent, BusinessID: businessID}
}

func seedLead(t *testing.T, repo *stubLeadRepo, id, businessID, assignedTo string) {
	t.Helper()
	if err := repo.Insert(context.Background(), &domain.Lead{
		ID: id, BusinessID: businessID, Name: "Lead " + id,
		Status: domain.LeadNew, Score: domain.DefaultLeadScore, AssignedTo: assignedTo,
	}); err != nil {
		t.Fatalf("seed lead: %v", err)
	}
}

func TestLeadService_List_ScopedByRole(t *testing.T) {
	repo := newStubLeadRepo()
	svc := NewLeadService(repo, newStubIdentityRepo(), nil, liveview.NewHub(), zerolog.Nop())

	seedLead(t, repo, "l1", "biz-1", "agent-1")
	seedLead(t, repo, "l2", "biz-1", "agent-2")
	seedLead(t, repo, "l3", "biz-2", "agent-1")

	adminLeads, err := svc.List(context.Background(), admin("biz-1"))
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(adminLeads) != 2 {
		t.Fatalf("expected admin to see 2 leads, got %d", len(adminLeads))
	}

	agentLeads, err := svc.List(context.Background(), agentIdentity("agent-1", "biz-1"))
	if err != nil {
		t.Fatalf("agent list: %v", err)
	}
	if len(agentLeads) != 1 || agentLeads[0].ID != "l1" {
		t.Fatalf("expected agent to see only l1, got %+v", agentLeads)
	}
}

func TestLeadService_List_PlatformAdminSeesNothing(t *testing.T) {
	repo := newStubLeadRepo()
	svc := NewLeadService(repo, newStubIdentityRepo(), nil, liveview.NewHub(), zerolog.Nop())
	seedLead(t, repo, "l1", "biz-1", "")

	viewer := &domain.Identity{ID: "p1", Role: domain.RolePlatformAdmin, BusinessID: "biz-1"}
	leads, err := svc.List(context.Background(), viewer)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(leads) != 0 {
		t.Fatalf("expected empty set for platform admin, got %d", len(leads))
	}
}

func TestLeadService_List_NoBusinessBinding(t *testing.T) {
	svc := NewLeadService(newStubLeadRepo(), newStubIdentityRepo(), nil, liveview.NewHub(), zerolog.Nop())

	viewer := &domain.Identity{ID: "x", Role: domain.RoleAgent}
	leads, err := svc.List(context.Background(), viewer)
	if err != nil {
		t.Fatalf("expected no error for unbound viewer, got %v", err)
	}
	if len(leads) != 0 {
		t.Fatalf("expected empty set, got %d", len(leads))
	}
}

func TestLeadService_Create_Defaults(t *testing.T) {
	repo := newStubLeadRepo()
	hub := liveview.NewHub()
	svc := NewLeadService(repo, newStubIdentityRepo(), nil, hub, zerolog.Nop())

	sub := hub.Subscribe(liveview.Topic("biz-1", liveview.CollectionLeads))
	defer sub.Cancel()

	lead, err := svc.Create(context.Background(), admin("biz-1"), ports.CreateLeadInput{
		Name: "Prospect", Source: "web", Requirements: "needs a website",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if lead.Status != domain.LeadNew {
		t.Fatalf("expected status NEW, got %s", lead.Status)
	}
	if lead.Score != domain.DefaultLeadScore {
		t.Fatalf("expected default score %d, got %d", domain.DefaultLeadScore, lead.Score)
	}
	if lead.BusinessID != "biz-1" {
		t.Fatalf("expected business binding from viewer, got %q", lead.BusinessID)
	}
	if lead.LastInteraction.IsZero() {
		t.Fatalf("expected last interaction timestamp")
	}

	select {
	case <-sub.C:
	case <-time.After(time.Second):
		t.Fatalf("expected change signal on lead topic")
	}
}

func TestLeadService_UpdateStatus_AgentOwnLeadOnly(t *testing.T) {
	repo := newStubLeadRepo()
	svc := NewLeadService(repo, newStubIdentityRepo(), nil, liveview.NewHub(), zerolog.Nop())

	seedLead(t, repo, "mine", "biz-1", "agent-1")
	seedLead(t, repo, "other", "biz-1", "agent-2")

	viewer := agentIdentity("agent-1", "biz-1")
	if err := svc.UpdateStatus(context.Background(), viewer, "mine", domain.LeadContacted); err != nil {
		t.Fatalf("own lead update failed: %v", err)
	}
	if err := svc.UpdateStatus(context.Background(), viewer, "other", domain.LeadContacted); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for foreign lead, got %v", err)
	}
}

func TestLeadService_UpdateStatus_InvalidStatus(t *testing.T) {
	repo := newStubLeadRepo()
	svc := NewLeadService(repo, newStubIdentityRepo(), nil, liveview.NewHub(), zerolog.Nop())
	seedLead(t, repo, "l1", "biz-1", "")

	if err := svc.UpdateStatus(context.Background(), admin("biz-1"), "l1", "BOGUS"); err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestLeadService_UpdateStatus_TenantIsolation(t *testing.T) {
	repo := newStubLeadRepo()
	svc := NewLeadService(repo, newStubIdentityRepo(), nil, liveview.NewHub(), zerolog.Nop())
	seedLead(t, repo, "l1", "biz-2", "")

	if err := svc.UpdateStatus(context.Background(), admin("biz-1"), "l1", domain.LeadContacted); err != domain.ErrLeadNotFound {
		t.Fatalf("expected ErrLeadNotFound across tenants, got %v", err)
	}
}

func TestLeadService_Assign_Success(t *testing.T) {
	leadRepo := newStubLeadRepo()
	identityRepo := newStubIdentityRepo()
	notifier := &stubNotifier{}
	svc := NewLeadService(leadRepo, identityRepo, notifier, liveview.NewHub(), zerolog.Nop())

	seedLead(t, leadRepo, "l1", "biz-1", "")
	if _, err := identityRepo.Create(context.Background(), agentIdentity("agent-1", "biz-1")); err != nil {
		t.Fatalf("seed agent: %v", err)
	}

	if err := svc.Assign(context.Background(), admin("biz-1"), "l1", "agent-1"); err != nil {
		t.Fatalf("assign: %v", err)
	}

	lead, err := leadRepo.FindByID(context.Background(), "biz-1", "l1")
	if err != nil || lead.AssignedTo != "agent-1" {
		t.Fatalf("expected lead assigned to agent-1, got %+v err=%v", lead, err)
	}
	if len(notifier.events) != 1 {
		t.Fatalf("expected 1 assignment event, got %d", len(notifier.events))
	}
	if ev := notifier.events[0]; ev.LeadID != "l1" || ev.AgentEmail != "agent-1@example.com" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestLeadService_Assign_AgentForbidden(t *testing.T) {
	svc := NewLeadService(newStubLeadRepo(), newStubIdentityRepo(), nil, liveview.NewHub(), zerolog.Nop())

	if err := svc.Assign(context.Background(), agentIdentity("agent-1", "biz-1"), "l1", "agent-2"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestLeadService_Assign_CrossBusinessAgentRejected(t *testing.T) {
	leadRepo := newStubLeadRepo()
	identityRepo := newStubIdentityRepo()
	svc := NewLeadService(leadRepo, identityRepo, nil, liveview.NewHub(), zerolog.Nop())

	seedLead(t, leadRepo, "l1", "biz-1", "")
	if _, err := identityRepo.Create(context.Background(), agentIdentity("outsider", "biz-2")); err != nil {
		t.Fatalf("seed agent: %v", err)
	}

	if err := svc.Assign(context.Background(), admin("biz-1"), "l1", "outsider"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for cross-business agent, got %v", err)
	}
}

func TestLeadService_Assign_NotifierFailureIsNonFatal(t *testing.T) {
	leadRepo := newStubLeadRepo()
	identityRepo := newStubIdentityRepo()
	notifier := &stubNotifier{err: context.DeadlineExceeded}
	svc := NewLeadService(leadRepo, identityRepo, notifier, liveview.NewHub(), zerolog.Nop())

	seedLead(t, leadRepo, "l1", "biz-1", "")
	if _, err := identityRepo.Create(context.Background(), agentIdentity("agent-1", "biz-1")); err != nil {
		t.Fatalf("seed agent: %v", err)
	}

	if err := svc.Assign(context.Background(), admin("biz-1"), "l1", "agent-1"); err != nil {
		t.Fatalf("expected assignment to succeed despite notifier failure, got %v", err)
	}
}
