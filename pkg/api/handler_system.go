package api

import (
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/postflow-io/postflow/ent/post"
)

// setPlatformHandler handles PUT /api/v1/admin/platforms/:platform.
// Flips the per-platform kill switch at runtime: a disabled platform rejects
// new publishes and pauses its worker pool while in-flight posts finish.
func (s *Server) setPlatformHandler(c *echo.Context) error {
	platform := c.Param("platform")
	if err := post.PlatformValidator(post.Platform(platform)); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid platform: "+platform)
	}

	var req SetPlatformRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	s.cfg.Features.SetPlatform(platform, req.Enabled)
	slog.Info("Platform switch changed",
		"platform", platform,
		"enabled", req.Enabled,
		"changed_by", principalFrom(c).CreatorID)

	return c.JSON(http.StatusOK, &PlatformResponse{
		Platform: platform,
		Enabled:  req.Enabled,
	})
}

// listBreakersHandler handles GET /api/v1/admin/breakers.
// Lists accounts currently held back by an open or half-open circuit breaker.
func (s *Server) listBreakersHandler(c *echo.Context) error {
	buckets, err := s.buckets.ListOpenBreakers(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}

	resp := make([]BreakerResponse, 0, len(buckets))
	for _, b := range buckets {
		item := BreakerResponse{
			AccountID:           b.AccountID,
			Endpoint:            b.Endpoint,
			BreakerState:        string(b.BreakerState),
			ConsecutiveFailures: b.ConsecutiveFailures,
			CooldownUntil:       b.CooldownUntil,
		}
		resp = append(resp, item)
	}
	return c.JSON(http.StatusOK, resp)
}
