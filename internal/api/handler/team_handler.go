package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bizgenie/bizgenie-api/internal/core/ports"
)

// TeamHandler serves the tenant team roster.
type TeamHandler struct {
	teamService ports.TeamService
}

func NewTeamHandler(teamService ports.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

type inviteRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type rosterResponse struct {
	Members []*identityPayload `json:"members"`
}

// Roster lists every identity bound to the caller's business.
//
// @Summary      List team members
// @Tags         team
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  rosterResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/team [get]
func (h *TeamHandler) Roster(c echo.Context) error {
	viewer, err := currentIdentity(c)
	if err != nil {
		return err
	}

	members, err := h.teamService.Roster(c.Request().Context(), viewer)
	if err != nil {
		return err
	}

	payload := make([]*identityPayload, 0, len(members))
	for _, m := range members {
		payload = append(payload, toIdentityPayload(m))
	}
	return c.JSON(http.StatusOK, rosterResponse{Members: payload})
}

// Invite creates an agent account on the caller's team.
//
// @Summary      Invite an agent
// @Tags         team
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      inviteRequest  true  "Agent details"
// @Success      201   {object}  identityPayload
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/team/invite [post]
func (h *TeamHandler) Invite(c echo.Context) error {
	viewer, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req inviteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	agent, err := h.teamService.Invite(c.Request().Context(), viewer, ports.InviteInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toIdentityPayload(agent))
}
