package handlers

import (
	"net/http"

	"github.com/IbrahimAlakbarov06/social-media-task/internal/models"
	"github.com/IbrahimAlakbarov06/social-media-task/internal/services"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests related to user profiles and search
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterUserRoutes registers user profile and search routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users/me", h.GetCurrentUser)
	g.PUT("/users/me", h.UpdateCurrentUser)
	g.DELETE("/users/me", h.DeleteCurrentUser)
	g.GET("/users/search", h.SearchUsers)
	g.GET("/users/search/name", h.SearchUsersByName)
	g.GET("/users/search/surname", h.SearchUsersBySurname)
	g.GET("/users/search/username", h.SearchUsersByUsername)
	g.GET("/users/:id", h.GetUser)
}

// GetCurrentUser retrieves the authenticated user's profile
func (h *UserHandler) GetCurrentUser(c echo.Context) error {
	user, err := h.userService.GetCurrentUser(getEmailFromContext(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateCurrentUser applies a partial update to the authenticated user's profile
func (h *UserHandler) UpdateCurrentUser(c echo.Context) error {
	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.UpdateUser(getEmailFromContext(c), &req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteCurrentUser deletes the authenticated user's account
func (h *UserHandler) DeleteCurrentUser(c echo.Context) error {
	if err := h.userService.DeleteUser(getEmailFromContext(c)); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetUser retrieves another user's profile by ID
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	user, err := h.userService.GetUserByID(getEmailFromContext(c), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// SearchUsers searches users by username, name or surname
func (h *UserHandler) SearchUsers(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search query is required")
	}
	page, err := h.userService.SearchUsers(getEmailFromContext(c), query, getPagination(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// SearchUsersByName searches users by name
func (h *UserHandler) SearchUsersByName(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search name is required")
	}
	page, err := h.userService.SearchUsersByName(getEmailFromContext(c), name, getPagination(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// SearchUsersBySurname searches users by surname
func (h *UserHandler) SearchUsersBySurname(c echo.Context) error {
	surname := c.QueryParam("surname")
	if surname == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search surname is required")
	}
	page, err := h.userService.SearchUsersBySurname(getEmailFromContext(c), surname, getPagination(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// SearchUsersByUsername searches users by username
func (h *UserHandler) SearchUsersByUsername(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search username is required")
	}
	page, err := h.userService.SearchUsersByUsername(getEmailFromContext(c), username, getPagination(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}
