package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
	"github.com/bizgenie/bizgenie-api/internal/core/ports"
)

type stubBusinessService struct {
	profile   *domain.BusinessProfile
	summaries []*domain.BusinessSummary
	err       error
}

func (s *stubBusinessService) CompleteOnboarding(_ context.Context, _ *domain.Identity, _ ports.OnboardingInput) (*domain.BusinessProfile, error) {
	return s.profile, s.err
}

func (s *stubBusinessService) Profile(_ context.Context, _ *domain.Identity) (*domain.BusinessProfile, error) {
	if s.profile == nil {
		return nil, domain.ErrBusinessNotFound
	}
	return s.profile, s.err
}

func (s *stubBusinessService) UploadFile(_ context.Context, _ *domain.Identity, _, _ string, _ io.Reader) (string, error) {
	return "", s.err
}

func (s *stubBusinessService) RemoveFile(_ context.Context, _ *domain.Identity, _ string) error {
	return s.err
}

func (s *stubBusinessService) ListSummaries(_ context.Context, _ *domain.Identity) ([]*domain.BusinessSummary, error) {
	return s.summaries, s.err
}

func decodeView(t *testing.T, body []byte) (page string, tabs []string) {
	t.Helper()
	var resp struct {
		Page string   `json:"page"`
		Tabs []string `json:"tabs"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.Page, resp.Tabs
}

func TestViewHandler_Current_Onboarded(t *testing.T) {
	h := NewViewHandler(&stubBusinessService{profile: &domain.BusinessProfile{ID: "biz-1"}})

	c, rec := newTestContext(http.MethodGet, "/v1/views/current?tab=leads", "")
	setClaims(c, domain.RoleBusinessAdmin)

	if err := h.Current(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	page, tabs := decodeView(t, rec.Body.Bytes())
	if page != "leads" {
		t.Fatalf("expected leads page, got %q", page)
	}
	if len(tabs) != 6 {
		t.Fatalf("expected 6 business-admin tabs, got %v", tabs)
	}
}

func TestViewHandler_Current_AwaitingOnboarding(t *testing.T) {
	h := NewViewHandler(&stubBusinessService{})

	c, rec := newTestContext(http.MethodGet, "/v1/views/current?tab=leads", "")
	setClaims(c, domain.RoleBusinessAdmin)

	if err := h.Current(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	page, _ := decodeView(t, rec.Body.Bytes())
	if page != "onboarding" {
		t.Fatalf("expected onboarding page, got %q", page)
	}
}

func TestViewHandler_Current_AgentSkipsOnboardingCheck(t *testing.T) {
	// No profile exists, but agents never see the onboarding page.
	h := NewViewHandler(&stubBusinessService{})

	c, rec := newTestContext(http.MethodGet, "/v1/views/current", "")
	setClaims(c, domain.RoleAgent)

	if err := h.Current(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	page, tabs := decodeView(t, rec.Body.Bytes())
	if page != "dashboard" {
		t.Fatalf("expected dashboard, got %q", page)
	}
	if len(tabs) != 4 {
		t.Fatalf("expected 4 agent tabs, got %v", tabs)
	}
}

func TestViewHandler_Current_UnreachableTab(t *testing.T) {
	h := NewViewHandler(&stubBusinessService{})

	c, rec := newTestContext(http.MethodGet, "/v1/views/current?tab=team", "")
	setClaims(c, domain.RoleAgent)

	if err := h.Current(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	page, _ := decodeView(t, rec.Body.Bytes())
	if page != "dashboard" {
		t.Fatalf("expected dashboard fallback, got %q", page)
	}
}

func TestViewHandler_Tabs_PlatformAdmin(t *testing.T) {
	h := NewViewHandler(&stubBusinessService{})

	c, rec := newTestContext(http.MethodGet, "/v1/views/tabs", "")
	setClaims(c, domain.RolePlatformAdmin)

	if err := h.Tabs(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Tabs []string `json:"tabs"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []string{"dashboard", "businesses", "settings"}
	if len(resp.Tabs) != len(want) {
		t.Fatalf("expected %v, got %v", want, resp.Tabs)
	}
	for i := range want {
		if resp.Tabs[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, resp.Tabs)
		}
	}
}
