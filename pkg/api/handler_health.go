package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/postflow-io/postflow/pkg/database"
	"github.com/postflow-io/postflow/pkg/version"
)

// healthHandler handles GET /health.
// Returns a minimal, safe response suitable for unauthenticated access.
// Only our own components (database, worker pool) are checked; platform APIs
// and the caption sidecar are excluded so an external outage cannot make the
// orchestrator restart us.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	status := "healthy"
	httpStatus := http.StatusOK

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	resp := &HealthResponse{
		Status:        status,
		Version:       version.GitCommit,
		Database:      dbHealth,
		Configuration: s.cfg.Stats(),
	}
	if s.workerPool != nil {
		resp.WorkerPool = s.workerPool.Health()
	}
	if s.ingress != nil {
		failures := s.ingress.SignatureFailures()
		resp.WebhookSignatureFailures = &failures
	}

	return c.JSON(httpStatus, resp)
}
