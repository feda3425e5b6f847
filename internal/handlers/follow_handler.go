package handlers

import (
	"net/http"

	"github.com/IbrahimAlakbarov06/social-media-task/internal/monitoring"
	"github.com/IbrahimAlakbarov06/social-media-task/internal/services"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow/unfollow and follower-listing HTTP requests
type FollowHandler struct {
	userService *services.UserService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(userService *services.UserService) *FollowHandler {
	return &FollowHandler{userService: userService}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.FollowUser)
	g.POST("/users/:id/unfollow", h.UnfollowUser)
	g.GET("/users/me/following", h.GetOwnFollowing)
	g.GET("/users/me/followers", h.GetOwnFollowers)
	g.GET("/users/:id/following", h.GetUserFollowing)
	g.GET("/users/:id/followers", h.GetUserFollowers)
}

// FollowUser adds the target user to the acting user's following set
func (h *FollowHandler) FollowUser(c echo.Context) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	user, err := h.userService.Follow(getEmailFromContext(c), targetID)
	if err != nil {
		return httpError(err)
	}
	monitoring.FollowsTotal.Inc()
	return c.JSON(http.StatusOK, user)
}

// UnfollowUser removes the target user from the acting user's following set
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	user, err := h.userService.Unfollow(getEmailFromContext(c), targetID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// GetOwnFollowing lists the users the acting user follows
func (h *FollowHandler) GetOwnFollowing(c echo.Context) error {
	page, err := h.userService.GetOwnFollowing(getEmailFromContext(c), getPagination(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// GetOwnFollowers lists the acting user's followers
func (h *FollowHandler) GetOwnFollowers(c echo.Context) error {
	page, err := h.userService.GetOwnFollowers(getEmailFromContext(c), getPagination(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// GetUserFollowing lists the users a given user follows
func (h *FollowHandler) GetUserFollowing(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	page, err := h.userService.GetFollowing(getEmailFromContext(c), userID, getPagination(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// GetUserFollowers lists a given user's followers
func (h *FollowHandler) GetUserFollowers(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	page, err := h.userService.GetFollowers(getEmailFromContext(c), userID, getPagination(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}
