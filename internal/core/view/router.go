// Package view resolves which page a client should render. Resolve is a pure
// function over (identity, onboarded, tab); it holds no state of its own.
package view

import "github.com/bizgenie/bizgenie-api/internal/core/domain"

// Page identifies one of the fixed set of client pages. Tabs are the subset of
// pages reachable from navigation.
type Page string

const (
	PageAuth       Page = "auth"
	PageOnboarding Page = "onboarding"
	PageDashboard  Page = "dashboard"
	PageLeads      Page = "leads"
	PageContent    Page = "content"
	PageBusiness   Page = "business"
	PageTeam       Page = "team"
	PageBusinesses Page = "businesses"
	PageSettings   Page = "settings"
)

// DefaultTab is the landing tab after login and after logout resets the view.
const DefaultTab = PageDashboard

// TabsFor returns the navigation tabs available to a role, in display order.
// The switch is exhaustive over domain.Role.
func TabsFor(role domain.Role) []Page {
	switch role {
	case domain.RolePlatformAdmin:
		return []Page{PageDashboard, PageBusinesses, PageSettings}
	case domain.RoleBusinessAdmin:
		return []Page{PageDashboard, PageLeads, PageContent, PageTeam, PageBusiness, PageSettings}
	case domain.RoleAgent:
		return []Page{PageDashboard, PageLeads, PageContent, PageSettings}
	}
	return nil
}

// Resolve maps session state to the page to render:
//
//	unauthenticated           → auth
//	awaiting-onboarding       → onboarding (business admins without a profile)
//	active(tab)               → the tab, if the role may reach it
//	active(unreachable tab)   → dashboard
func Resolve(viewer *domain.Identity, onboarded bool, tab Page) Page {
	if viewer == nil {
		return PageAuth
	}
	if viewer.Role == domain.RoleBusinessAdmin && !onboarded {
		return PageOnboarding
	}
	if tab == "" {
		return DefaultTab
	}
	for _, t := range TabsFor(viewer.Role) {
		if t == tab {
			return tab
		}
	}
	return DefaultTab
}
