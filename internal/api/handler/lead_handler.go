package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bizgenie/bizgenie-api/internal/api/metrics"
	"github.com/bizgenie/bizgenie-api/internal/core/domain"
	"github.com/bizgenie/bizgenie-api/internal/core/ports"
)

// LeadHandler serves the role-scoped lead pipeline.
type LeadHandler struct {
	leadService ports.LeadService
}

func NewLeadHandler(leadService ports.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

type createLeadRequest struct {
	Name         string `json:"name"  validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	Source       string `json:"source"`
	Requirements string `json:"requirements"`
	AssignedTo   string `json:"assigned_to"`
}

type updateLeadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=NEW CONTACTED QUALIFIED CLOSED LOST"`
}

type assignLeadRequest struct {
	AgentID string `json:"agent_id" validate:"required"`
}

type leadListResponse struct {
	Leads []*domain.Lead `json:"leads"`
}

// List returns the leads the caller may observe.
//
// @Summary      List visible leads
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  leadListResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	viewer, err := currentIdentity(c)
	if err != nil {
		return err
	}

	leads, err := h.leadService.List(c.Request().Context(), viewer)
	if err != nil {
		return err
	}
	if leads == nil {
		leads = []*domain.Lead{}
	}
	return c.JSON(http.StatusOK, leadListResponse{Leads: leads})
}

// Create adds a lead to the caller's business.
//
// @Summary      Create a lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createLeadRequest  true  "Lead details"
// @Success      201   {object}  domain.Lead
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/leads [post]
func (h *LeadHandler) Create(c echo.Context) error {
	viewer, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req createLeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lead, err := h.leadService.Create(c.Request().Context(), viewer, ports.CreateLeadInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Source:       req.Source,
		Requirements: req.Requirements,
		AssignedTo:   req.AssignedTo,
	})
	if err != nil {
		return err
	}

	metrics.LeadsCreatedTotal.WithLabelValues(sourceLabel(req.Source)).Inc()
	return c.JSON(http.StatusCreated, lead)
}

// UpdateStatus moves a lead through the pipeline.
//
// @Summary      Update lead status
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Lead id"
// @Param        body  body      updateLeadStatusRequest  true  "New status"
// @Success      204
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/leads/{id}/status [patch]
func (h *LeadHandler) UpdateStatus(c echo.Context) error {
	viewer, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req updateLeadStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.leadService.UpdateStatus(c.Request().Context(), viewer, c.Param("id"), domain.LeadStatus(req.Status)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Assign hands a lead to an agent of the same business.
//
// @Summary      Assign a lead to an agent
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Lead id"
// @Param        body  body      assignLeadRequest  true  "Target agent"
// @Success      204
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/leads/{id}/assign [patch]
func (h *LeadHandler) Assign(c echo.Context) error {
	viewer, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req assignLeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.leadService.Assign(c.Request().Context(), viewer, c.Param("id"), req.AgentID); err != nil {
		return err
	}

	metrics.LeadAssignmentsTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

func sourceLabel(source string) string {
	if source == "" {
		return "unknown"
	}
	return source
}
