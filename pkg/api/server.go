// Package api exposes the HTTP surface: publish and account management,
// budget standing, the WebSocket event stream, and webhook ingress.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/postflow-io/postflow/pkg/config"
	"github.com/postflow-io/postflow/pkg/database"
	"github.com/postflow-io/postflow/pkg/events"
	"github.com/postflow-io/postflow/pkg/services"
	"github.com/postflow-io/postflow/pkg/webhook"
	"github.com/postflow-io/postflow/pkg/workflow"
)

// Server is the HTTP server wiring handlers to the service layer.
type Server struct {
	cfg         *config.Config
	dbClient    *database.Client
	posts       *services.PostService
	accounts    *services.AccountService
	budgets     *services.BudgetService
	buckets     *services.BucketService
	workerPool  *workflow.WorkerPool
	connManager *events.ConnectionManager
	ingress     *webhook.Ingress

	echo       *echo.Echo
	httpServer *http.Server
}

// NewServer creates the API server and registers all routes.
// workerPool, connManager, and ingress may be nil (feature disabled).
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	posts *services.PostService,
	accounts *services.AccountService,
	budgets *services.BudgetService,
	buckets *services.BucketService,
	workerPool *workflow.WorkerPool,
	connManager *events.ConnectionManager,
	ingress *webhook.Ingress,
) *Server {
	s := &Server{
		cfg:         cfg,
		dbClient:    dbClient,
		posts:       posts,
		accounts:    accounts,
		budgets:     budgets,
		buckets:     buckets,
		workerPool:  workerPool,
		connManager: connManager,
		ingress:     ingress,
	}
	s.echo = s.buildRouter()
	return s
}

// buildRouter wires middleware and routes.
func (s *Server) buildRouter() *echo.Echo {
	e := echo.New()
	e.Use(securityHeaders())
	e.Use(requestLogger())

	// Unauthenticated surfaces: health probes and platform callbacks.
	e.GET("/health", s.healthHandler)
	e.GET("/healthz", s.healthHandler)
	if s.ingress != nil {
		s.ingress.RegisterRoutes(e.Group(""))
	}

	// Creator-scoped API.
	v1 := e.Group("/api/v1", requirePrincipal())

	v1.POST("/posts", s.publishHandler)
	v1.GET("/posts", s.listPostsHandler)
	v1.GET("/posts/:id", s.getPostHandler)
	v1.POST("/posts/:id/cancel", s.cancelPostHandler)

	v1.POST("/accounts", s.createAccountHandler)
	v1.GET("/accounts", s.listAccountsHandler)
	v1.GET("/accounts/:id", s.getAccountHandler)
	v1.PUT("/accounts/:id/tokens", s.updateTokensHandler)

	v1.GET("/budget", s.budgetStatusHandler)
	v1.PUT("/budget/limit", s.setBudgetLimitHandler)

	v1.PUT("/admin/platforms/:platform", s.setPlatformHandler)
	v1.GET("/admin/breakers", s.listBreakersHandler)

	v1.GET("/ws", s.wsHandler)

	return e
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Router exposes the echo instance for tests.
func (s *Server) Router() *echo.Echo {
	return s.echo
}

// requestLogger returns middleware that logs one line per completed request.
// The handler error stands in for a status code; echo writes the response
// after the middleware returns, so the code is not observable here.
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			start := time.Now()
			err := next(c)
			fields := []any{
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if err != nil {
				fields = append(fields, "error", err)
			}
			slog.Info("HTTP request", fields...)
			return err
		}
	}
}
