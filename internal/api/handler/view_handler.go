package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
	"github.com/bizgenie/bizgenie-api/internal/core/ports"
	"github.com/bizgenie/bizgenie-api/internal/core/view"
)

// ViewHandler resolves which page an authenticated client should render.
type ViewHandler struct {
	businessService ports.BusinessService
}

func NewViewHandler(businessService ports.BusinessService) *ViewHandler {
	return &ViewHandler{businessService: businessService}
}

type currentViewResponse struct {
	Page view.Page   `json:"page"`
	Tabs []view.Page `json:"tabs"`
}

type tabsResponse struct {
	Tabs []view.Page `json:"tabs"`
}

// Current resolves the page for the caller, honouring the requested tab when
// the role may reach it.
//
// @Summary      Resolve the current view
// @Tags         views
// @Produce      json
// @Security     BearerAuth
// @Param        tab  query     string  false  "Requested tab"
// @Success      200  {object}  currentViewResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/views/current [get]
func (h *ViewHandler) Current(c echo.Context) error {
	viewer, err := currentIdentity(c)
	if err != nil {
		return err
	}

	onboarded, err := h.onboarded(c, viewer)
	if err != nil {
		return err
	}

	page := view.Resolve(viewer, onboarded, view.Page(c.QueryParam("tab")))
	return c.JSON(http.StatusOK, currentViewResponse{
		Page: page,
		Tabs: view.TabsFor(viewer.Role),
	})
}

// Tabs returns the navigation tabs available to the caller's role.
//
// @Summary      List navigation tabs
// @Tags         views
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  tabsResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/views/tabs [get]
func (h *ViewHandler) Tabs(c echo.Context) error {
	viewer, err := currentIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tabsResponse{Tabs: view.TabsFor(viewer.Role)})
}

// onboarded reports whether the viewer's business finished onboarding. Only
// business admins can be in the awaiting-onboarding state.
func (h *ViewHandler) onboarded(c echo.Context, viewer *domain.Identity) (bool, error) {
	if viewer.Role != domain.RoleBusinessAdmin {
		return true, nil
	}
	_, err := h.businessService.Profile(c.Request().Context(), viewer)
	if errors.Is(err, domain.ErrBusinessNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
