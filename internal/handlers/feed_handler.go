package handlers

import (
	"net/http"

	"github.com/IbrahimAlakbarov06/social-media-task/internal/services"
	"github.com/labstack/echo/v4"
)

// FeedHandler handles feed and explore listings
type FeedHandler struct {
	postService *services.PostService
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(postService *services.PostService) *FeedHandler {
	return &FeedHandler{postService: postService}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/posts/feed", h.GetFeed)
	g.GET("/posts/explore", h.GetExplore)
	g.GET("/posts/user/:userId", h.GetUserPosts)
}

// GetFeed returns posts by users the acting user follows, newest first.
// A user following nobody gets an empty page.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	page, err := h.postService.GetFeedPosts(getEmailFromContext(c), getPagination(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// GetExplore returns all posts, newest first
func (h *FeedHandler) GetExplore(c echo.Context) error {
	page, err := h.postService.GetExplorePosts(getEmailFromContext(c), getPagination(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// GetUserPosts returns a user's own posts, newest first
func (h *FeedHandler) GetUserPosts(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	page, err := h.postService.GetUserPosts(getEmailFromContext(c), userID, getPagination(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}
