package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
)

// currentIdentity rebuilds the viewer from the claims injected by the Auth
// middleware and fast-fails before any service call:
//   - user_id and role must be non-empty (presence proves the middleware ran).
//   - the role must be one of the known roles; an unknown role claim means the
//     token predates a role change and is operationally unusable.
func currentIdentity(c echo.Context) (*domain.Identity, error) {
	id, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if id == "" || role == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	if !domain.Role(role).Valid() {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "unknown role claim")
	}

	name, _ := c.Get("user_name").(string)
	businessID, _ := c.Get("business_id").(string)

	return &domain.Identity{
		ID:         id,
		Name:       name,
		Role:       domain.Role(role),
		BusinessID: businessID,
	}, nil
}
