// PostFlow publishing server: serves the HTTP API, runs per-platform
// dispatch workers, and reconciles platform callbacks.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/postflow-io/postflow/pkg/adapters"
	"github.com/postflow-io/postflow/pkg/api"
	"github.com/postflow-io/postflow/pkg/budget"
	"github.com/postflow-io/postflow/pkg/config"
	"github.com/postflow-io/postflow/pkg/database"
	"github.com/postflow-io/postflow/pkg/events"
	"github.com/postflow-io/postflow/pkg/llm"
	"github.com/postflow-io/postflow/pkg/notify"
	"github.com/postflow-io/postflow/pkg/ratelimit"
	"github.com/postflow-io/postflow/pkg/services"
	"github.com/postflow-io/postflow/pkg/webhook"
	"github.com/postflow-io/postflow/pkg/workflow"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func buildAdapterRegistry() adapters.Registry {
	return adapters.NewRegistry(
		adapters.NewInstagramAdapter(getEnv("INSTAGRAM_API_URL", "https://graph.instagram.com"), nil),
		adapters.NewTikTokAdapter(getEnv("TIKTOK_API_URL", "https://open.tiktokapis.com"), nil),
		adapters.NewXAdapter(getEnv("X_API_URL", "https://api.x.com"), nil),
		adapters.NewRedditAdapter(getEnv("REDDIT_API_URL", "https://oauth.reddit.com"), nil),
	)
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting PostFlow",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Token cipher and domain services
	cipher, err := services.NewTokenCipherFromEnv()
	if err != nil {
		slog.Error("Failed to initialize token cipher", "error", err)
		os.Exit(1)
	}

	postService := services.NewPostService(dbClient.Client, cfg.Scheduler, cfg.Features)
	accountService := services.NewAccountService(dbClient.Client, cipher)
	mappingService := services.NewMappingService(dbClient.Client)
	webhookService := services.NewWebhookService(dbClient.Client)
	budgetService := services.NewBudgetService(dbClient.Client, cfg.Budget)
	bucketService := services.NewBucketService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. Redis-backed rate limiter with circuit breakers
	rdb := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			slog.Error("Error closing redis client", "error", err)
		}
	}()
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Failed to connect to redis", "error", err)
		os.Exit(1)
	}
	limiter := ratelimit.NewLimiter(rdb, cfg.RateLimits, bucketService)
	slog.Info("Rate limiter initialized")

	// 5. Budget guard and reservation reaper
	guard := budget.NewGuard(budgetService, budget.NewEstimator(cfg.Pricing))
	reaper := budget.NewReaper(budgetService, cfg.Budget)
	reaper.Start(ctx)
	defer reaper.Stop()

	// 5a. Caption sidecar client (optional)
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on
	// first RPC call.
	var captionClient llm.CaptionClient
	if cfg.Caption.Enabled {
		captionAddr := getEnv("CAPTION_SERVICE_ADDR", "localhost:50051")
		grpcClient, err := llm.NewGRPCCaptionClient(captionAddr, cfg.Caption)
		if err != nil {
			slog.Error("Failed to initialize caption client", "addr", captionAddr, "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := grpcClient.Close(); err != nil {
				slog.Error("Error closing caption client", "error", err)
			}
		}()
		captionClient = grpcClient
		slog.Info("Caption client initialized", "addr", captionAddr)
	}

	// 5b. Slack creator notifications (optional)
	var notifier *notify.Service
	if cfg.Slack != nil && (cfg.Slack.Enabled == nil || *cfg.Slack.Enabled) {
		tokenEnv := cfg.Slack.TokenEnv
		if tokenEnv == "" {
			tokenEnv = "SLACK_BOT_TOKEN"
		}
		notifier = notify.NewService(notify.ServiceConfig{
			Token:   os.Getenv(tokenEnv),
			Channel: cfg.Slack.Channel,
		})
		if notifier != nil {
			slog.Info("Slack notifications enabled", "channel", cfg.Slack.Channel)
		}
	}

	// 6. Streaming infrastructure
	eventService := services.NewEventService(dbClient.Client)
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(eventService, api.NewPostChannelAuthorizer(postService), 10*time.Second)

	// Start NotifyListener (dedicated pgx connection for LISTEN)
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 6a. Periodic pruning of delivered stream events
	pruneStop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-pruneStop:
				return
			case <-ticker.C:
				if n, err := eventService.PruneOldEvents(ctx, 24*time.Hour); err != nil {
					slog.Warn("Event pruning failed", "error", err)
				} else if n > 0 {
					slog.Debug("Pruned old stream events", "count", n)
				}
			}
		}
	}()
	defer close(pruneStop)

	// 7. Platform adapters and dispatch pipeline
	registry := buildAdapterRegistry()
	dispatcher := workflow.NewPostDispatcher(
		cfg.Scheduler, cfg.Caption,
		postService, accountService, mappingService, budgetService,
		limiter, guard, captionClient, registry, eventPublisher, notifier,
	)

	// 8. Worker pool (claims stale posts from a previous run before serving)
	platforms := []string{"instagram", "tiktok", "x", "reddit"}
	workerPool := workflow.NewWorkerPool(podID, platforms, postService, cfg.Scheduler, cfg.Features, dispatcher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8a. Remote-status prober for asynchronous platforms
	prober := workflow.NewProber(cfg.Scheduler, postService, accountService, registry, eventPublisher, notifier)
	prober.Start(ctx)

	// 8b. Webhook ingress and unroutable-event reconciler
	ingress := webhook.NewIngress(cfg.Webhook, webhookService, mappingService, postService, eventPublisher)
	reconciler := webhook.NewReconciler(cfg.Webhook, ingress, webhookService)
	reconciler.Start(ctx)

	// 9. HTTP server
	httpServer := api.NewServer(cfg, dbClient, postService, accountService, budgetService,
		bucketService, workerPool, connManager, ingress)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	stats := cfg.Stats()
	slog.Info("PostFlow started successfully",
		"pod_id", podID,
		"platforms", stats.Platforms,
		"webhook_providers", stats.WebhookProviders,
		"workers_per_platform", cfg.Scheduler.WorkerConcurrency)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop claiming first, finish active dispatches.
	shutdownCtx, cancelShutdown := context.WithTimeout(ctx, cfg.Scheduler.GracefulShutdownTimeout)
	defer cancelShutdown()

	reconciler.Stop()
	prober.Stop()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, unfinished dispatches will be orphan-recovered")
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
