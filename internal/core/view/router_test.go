package view

import (
	"testing"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
)

func viewer(role domain.Role) *domain.Identity {
	return &domain.Identity{ID: "u1", Role: role, BusinessID: "biz-1"}
}

func TestResolve_Unauthenticated(t *testing.T) {
	if got := Resolve(nil, false, PageLeads); got != PageAuth {
		t.Fatalf("expected auth page, got %s", got)
	}
}

func TestResolve_AwaitingOnboarding(t *testing.T) {
	if got := Resolve(viewer(domain.RoleBusinessAdmin), false, PageLeads); got != PageOnboarding {
		t.Fatalf("expected onboarding page, got %s", got)
	}
	// Only business admins onboard; agents never see the onboarding page.
	if got := Resolve(viewer(domain.RoleAgent), false, PageLeads); got != PageLeads {
		t.Fatalf("expected leads page for agent, got %s", got)
	}
}

func TestResolve_DefaultTab(t *testing.T) {
	if got := Resolve(viewer(domain.RoleBusinessAdmin), true, ""); got != PageDashboard {
		t.Fatalf("expected dashboard, got %s", got)
	}
}

func TestResolve_UnreachableTabFallsBack(t *testing.T) {
	// Agents have no team tab.
	if got := Resolve(viewer(domain.RoleAgent), true, PageTeam); got != PageDashboard {
		t.Fatalf("expected dashboard fallback, got %s", got)
	}
	// Platform admins have no leads tab.
	if got := Resolve(viewer(domain.RolePlatformAdmin), true, PageLeads); got != PageDashboard {
		t.Fatalf("expected dashboard fallback, got %s", got)
	}
	if got := Resolve(viewer(domain.RoleBusinessAdmin), true, Page("bogus")); got != PageDashboard {
		t.Fatalf("expected dashboard fallback for unknown tab, got %s", got)
	}
}

func TestResolve_ReachableTab(t *testing.T) {
	if got := Resolve(viewer(domain.RoleAgent), true, PageContent); got != PageContent {
		t.Fatalf("expected content, got %s", got)
	}
	if got := Resolve(viewer(domain.RolePlatformAdmin), true, PageBusinesses); got != PageBusinesses {
		t.Fatalf("expected businesses, got %s", got)
	}
}

func TestTabsFor(t *testing.T) {
	cases := []struct {
		role domain.Role
		want []Page
	}{
		{domain.RolePlatformAdmin, []Page{PageDashboard, PageBusinesses, PageSettings}},
		{domain.RoleBusinessAdmin, []Page{PageDashboard, PageLeads, PageContent, PageTeam, PageBusiness, PageSettings}},
		{domain.RoleAgent, []Page{PageDashboard, PageLeads, PageContent, PageSettings}},
	}
	for _, tc := range cases {
		got := TabsFor(tc.role)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.role, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("%s: got %v, want %v", tc.role, got, tc.want)
			}
		}
	}
	if TabsFor("UNKNOWN") != nil {
		t.Fatalf("expected nil tabs for unknown role")
	}
}
