package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
	"github.com/bizgenie/bizgenie-api/internal/core/ports"
)

// ContentHandler serves the content studio library.
type ContentHandler struct {
	contentService ports.ContentService
}

func NewContentHandler(contentService ports.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

type saveContentRequest struct {
	Title  string `json:"title" validate:"required"`
	Type   string `json:"type"  validate:"required,oneof=TEXT IMAGE VIDEO AUDIO"`
	Data   string `json:"data"  validate:"required"`
	Shared bool   `json:"shared"`
}

type updateContentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Draft Approved Published"`
}

type contentListResponse struct {
	Items []*domain.ContentItem `json:"items"`
}

// List returns the content items the caller may observe.
//
// @Summary      List visible content
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  contentListResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/content [get]
func (h *ContentHandler) List(c echo.Context) error {
	viewer, err := currentIdentity(c)
	if err != nil {
		return err
	}

	items, err := h.contentService.List(c.Request().Context(), viewer)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*domain.ContentItem{}
	}
	return c.JSON(http.StatusOK, contentListResponse{Items: items})
}

// Save stores a new content item as a draft.
//
// @Summary      Save a content item
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveContentRequest  true  "Content details"
// @Success      201   {object}  domain.ContentItem
// @Failure      400   {object}  map[string]string
// @Router       /v1/content [post]
func (h *ContentHandler) Save(c echo.Context) error {
	viewer, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req saveContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.contentService.Save(c.Request().Context(), viewer, ports.SaveContentInput{
		Title:  req.Title,
		Type:   domain.ContentType(req.Type),
		Data:   req.Data,
		Shared: req.Shared,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// UpdateStatus moves a content item through the editorial flow.
//
// @Summary      Update content status
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "Content id"
// @Param        body  body      updateContentStatusRequest  true  "New status"
// @Success      204
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/content/{id}/status [patch]
func (h *ContentHandler) UpdateStatus(c echo.Context) error {
	viewer, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req updateContentStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.contentService.UpdateStatus(c.Request().Context(), viewer, c.Param("id"), domain.ContentStatus(req.Status)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
