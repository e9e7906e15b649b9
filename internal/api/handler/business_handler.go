package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
	"github.com/bizgenie/bizgenie-api/internal/core/ports"
)

// maxUploadBytes bounds a single business document upload.
const maxUploadBytes = 25 << 20 // 25 MiB

// BusinessHandler serves tenant profiles, onboarding, document uploads, and
// the platform-admin summary view.
type BusinessHandler struct {
	businessService ports.BusinessService
}

func NewBusinessHandler(businessService ports.BusinessService) *BusinessHandler {
	return &BusinessHandler{businessService: businessService}
}

type onboardingRequest struct {
	Name        string `json:"name"     validate:"required"`
	Industry    string `json:"industry" validate:"required"`
	Description string `json:"description"`
}

type uploadFileResponse struct {
	Ref string `json:"ref"`
}

type businessSummariesResponse struct {
	Businesses []*domain.BusinessSummary `json:"businesses"`
}

// CompleteOnboarding creates the tenant profile for the caller's business.
//
// @Summary      Complete business onboarding
// @Tags         business
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      onboardingRequest  true  "Business profile"
// @Success      201   {object}  domain.BusinessProfile
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/business/onboarding [post]
func (h *BusinessHandler) CompleteOnboarding(c echo.Context) error {
	viewer, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req onboardingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.businessService.CompleteOnboarding(c.Request().Context(), viewer, ports.OnboardingInput{
		Name:        req.Name,
		Industry:    req.Industry,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, profile)
}

// Profile returns the caller's tenant profile.
//
// @Summary      Get the business profile
// @Tags         business
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.BusinessProfile
// @Failure      404  {object}  map[string]string
// @Router       /v1/business/profile [get]
func (h *BusinessHandler) Profile(c echo.Context) error {
	viewer, err := currentIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.businessService.Profile(c.Request().Context(), viewer)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// ListFiles returns the stored document references for the caller's business.
//
// @Summary      List business documents
// @Tags         business
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string][]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/business/files [get]
func (h *BusinessHandler) ListFiles(c echo.Context) error {
	viewer, err := currentIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.businessService.Profile(c.Request().Context(), viewer)
	if err != nil {
		return err
	}
	files := profile.UploadedFiles
	if files == nil {
		files = []string{}
	}
	return c.JSON(http.StatusOK, map[string][]string{"files": files})
}

// UploadFile stores a business document and records its reference.
//
// @Summary      Upload a business document
// @Tags         business
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Document"
// @Success      201   {object}  uploadFileResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/business/files [post]
func (h *BusinessHandler) UploadFile(c echo.Context) error {
	viewer, err := currentIdentity(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file")
	}
	if fh.Size > maxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file too large")
	}

	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ref, err := h.businessService.UploadFile(c.Request().Context(), viewer, fh.Filename, contentType, src)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, uploadFileResponse{Ref: ref})
}

// RemoveFile deletes a stored document. The reference contains a slash, so it
// travels as a query parameter rather than a path segment.
//
// @Summary      Remove a business document
// @Tags         business
// @Produce      json
// @Security     BearerAuth
// @Param        ref  query  string  true  "Stored reference"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/business/files [delete]
func (h *BusinessHandler) RemoveFile(c echo.Context) error {
	viewer, err := currentIdentity(c)
	if err != nil {
		return err
	}

	ref := c.QueryParam("ref")
	if ref == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing ref")
	}

	if err := h.businessService.RemoveFile(c.Request().Context(), viewer, ref); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListSummaries returns the cross-tenant read model. Platform admins only.
//
// @Summary      List business summaries
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  businessSummariesResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/businesses [get]
func (h *BusinessHandler) ListSummaries(c echo.Context) error {
	viewer, err := currentIdentity(c)
	if err != nil {
		return err
	}

	summaries, err := h.businessService.ListSummaries(c.Request().Context(), viewer)
	if err != nil {
		return err
	}
	if summaries == nil {
		summaries = []*domain.BusinessSummary{}
	}
	return c.JSON(http.StatusOK, businessSummariesResponse{Businesses: summaries})
}
