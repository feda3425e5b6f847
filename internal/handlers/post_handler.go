package handlers

import (
	"net/http"

	"github.com/IbrahimAlakbarov06/social-media-task/internal/models"
	"github.com/IbrahimAlakbarov06/social-media-task/internal/monitoring"
	"github.com/IbrahimAlakbarov06/social-media-task/internal/services"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts and reactions
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:id", h.GetPost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
	g.POST("/posts/:id/like", h.LikePost)
	g.POST("/posts/:id/dislike", h.DislikePost)
}

// CreatePost creates a new post owned by the acting user
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postService.CreatePost(getEmailFromContext(c), &req)
	if err != nil {
		return httpError(err)
	}
	monitoring.PostsCreated.Inc()
	return c.JSON(http.StatusCreated, post)
}

// GetPost retrieves a post annotated with the acting user's reaction
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	post, err := h.postService.GetPost(getEmailFromContext(c), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// UpdatePost applies a partial update to a post owned by the acting user
func (h *PostHandler) UpdatePost(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postService.UpdatePost(getEmailFromContext(c), id, &req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post owned by the acting user
func (h *PostHandler) DeletePost(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	if err := h.postService.DeletePost(getEmailFromContext(c), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// LikePost toggles a like on a post
func (h *PostHandler) LikePost(c echo.Context) error {
	return h.react(c, true)
}

// DislikePost toggles a dislike on a post
func (h *PostHandler) DislikePost(c echo.Context) error {
	return h.react(c, false)
}

func (h *PostHandler) react(c echo.Context, liked bool) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	post, err := h.postService.ReactToPost(getEmailFromContext(c), id, liked)
	if err != nil {
		return httpError(err)
	}
	monitoring.ReactionsToggled.Inc()
	return c.JSON(http.StatusOK, post)
}
