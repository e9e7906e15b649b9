package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
	"github.com/bizgenie/bizgenie-api/internal/core/ports"
)

type stubAuthService struct {
	registered []ports.RegisterInput
	loggedOut  []string
	result     *ports.AuthResult
	err        error
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.registered = append(s.registered, input)
	return s.result, nil
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (*ports.AuthResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubAuthService) Logout(_ context.Context, token string) error {
	if s.err != nil {
		return s.err
	}
	s.loggedOut = append(s.loggedOut, token)
	return nil
}

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &stubAuthService{result: &ports.AuthResult{
		Token: "jwt-token",
		Identity: &domain.Identity{
			ID: "u1", Name: "Alice", Email: "alice@example.com",
			Role: domain.RoleBusinessAdmin, BusinessID: "biz-1",
		},
	}}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/v1/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"pass1234"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID     string `json:"id"`
			Avatar string `json:"avatar"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "jwt-token" || resp.User.ID != "u1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.User.Avatar != "A" {
		t.Fatalf("expected derived avatar, got %q", resp.User.Avatar)
	}
	if len(svc.registered) != 1 || svc.registered[0].Email != "alice@example.com" {
		t.Fatalf("service not called with input: %+v", svc.registered)
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(http.MethodPost, "/v1/auth/register",
		`{"name":"Alice","email":"not-an-email","password":"short"}`)

	err := h.Register(c)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{result: &ports.AuthResult{
		Token:    "jwt-token",
		Identity: &domain.Identity{ID: "u1", Name: "Alice", Role: domain.RoleAgent},
	}}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/v1/auth/login",
		`{"email":"alice@example.com","password":"pass1234"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_ServiceError(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials})

	c, _ := newTestContext(http.MethodPost, "/v1/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`)

	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected domain error to surface, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/v1/auth/logout", "")
	c.Set("token", "the-raw-token")

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(svc.loggedOut) != 1 || svc.loggedOut[0] != "the-raw-token" {
		t.Fatalf("expected raw token passed to service, got %v", svc.loggedOut)
	}
}

func TestAuthHandler_Logout_MissingToken(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(http.MethodPost, "/v1/auth/logout", "")

	err := h.Logout(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
