package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/postflow-io/postflow/ent/post"
	"github.com/postflow-io/postflow/pkg/models"
)

// publishHandler handles POST /api/v1/posts.
func (s *Server) publishHandler(c *echo.Context) error {
	var req models.PublishRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := s.posts.Publish(c.Request().Context(), principalFrom(c), req)
	if err != nil {
		return mapServiceError(err)
	}

	status := http.StatusAccepted
	if result.Deduplicated {
		status = http.StatusOK
	}
	return c.JSON(status, result)
}

// getPostHandler handles GET /api/v1/posts/:id.
func (s *Server) getPostHandler(c *echo.Context) error {
	postID := c.Param("id")
	if postID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "post id is required")
	}

	snapshot, err := s.posts.GetPost(c.Request().Context(), principalFrom(c), postID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, snapshot)
}

// listPostsHandler handles GET /api/v1/posts.
func (s *Server) listPostsHandler(c *echo.Context) error {
	params := models.PostListParams{
		Page:     1,
		PageSize: 25,
	}

	// Parse pagination.
	if v := c.QueryParam("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			params.Page = p
		}
	}
	if v := c.QueryParam("page_size"); v != "" {
		if ps, err := strconv.Atoi(v); err == nil && ps > 0 && ps <= 100 {
			params.PageSize = ps
		}
	}

	// Parse filters.
	if v := c.QueryParam("state"); v != "" {
		if err := post.StateValidator(post.State(v)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid state: "+v)
		}
		params.State = v
	}
	if v := c.QueryParam("platform"); v != "" {
		if err := post.PlatformValidator(post.Platform(v)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid platform: "+v)
		}
		params.Platform = v
	}

	result, err := s.posts.ListPosts(c.Request().Context(), principalFrom(c), params)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// cancelPostHandler handles POST /api/v1/posts/:id/cancel.
func (s *Server) cancelPostHandler(c *echo.Context) error {
	postID := c.Param("id")
	if postID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "post id is required")
	}

	if err := s.posts.CancelPost(c.Request().Context(), principalFrom(c), postID); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &CancelResponse{
		PostID:  postID,
		Message: "Post cancelled",
	})
}
