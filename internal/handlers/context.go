package handlers

import (
	"strconv"

	"github.com/IbrahimAlakbarov06/social-media-task/internal/models"
	"github.com/labstack/echo/v4"
)

// getEmailFromContext returns the authenticated user's email claim, or ""
// when the request carries no valid claims
func getEmailFromContext(c echo.Context) string {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return ""
	}
	return claims.Email
}

// getPagination parses page and size query parameters. Page is 0-based.
func getPagination(c echo.Context) models.Pagination {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	return models.Pagination{Page: page, Size: size}.Normalize()
}

// parseIDParam parses a numeric path parameter
func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
