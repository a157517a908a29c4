// Package notify delivers creator-facing Slack notifications for terminal
// publish outcomes and budget threshold alerts. Delivery is best-effort and
// never blocks or fails the workflow that triggered it.
package notify

import (
	"context"
	"log/slog"
	"time"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token   string
	Channel string
}

// PublishedInput contains data for a publish success notification.
type PublishedInput struct {
	PostID    string
	CreatorID string
	Platform  string
	RemoteID  string
}

// FailedInput contains data for a terminal failure notification.
type FailedInput struct {
	PostID    string
	CreatorID string
	Platform  string
	Attempts  int
	Reason    string
}

// BudgetAlertInput contains data for a budget threshold notification.
type BudgetAlertInput struct {
	CreatorID string
	Month     string
	Threshold string // soft or hard
	SpentUSD  float64
	LimitUSD  float64
}

// Service handles Slack notification delivery.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client *Client
	logger *slog.Logger
}

// NewService creates a new Slack notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client: NewClient(cfg.Token, cfg.Channel),
		logger: slog.Default().With("component", "slack-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client) *Service {
	return &Service{
		client: client,
		logger: slog.Default().With("component", "slack-service"),
	}
}

// NotifyPublished sends a publish success notification.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyPublished(ctx context.Context, input PublishedInput) {
	if s == nil {
		return
	}
	blocks := BuildPublishedMessage(input)
	if err := s.client.PostMessage(ctx, blocks, 5*time.Second); err != nil {
		s.logger.Error("Failed to send Slack publish notification",
			"post_id", input.PostID,
			"error", err)
	}
}

// NotifyFailed sends a terminal failure notification.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyFailed(ctx context.Context, input FailedInput) {
	if s == nil {
		return
	}
	blocks := BuildFailedMessage(input)
	if err := s.client.PostMessage(ctx, blocks, 5*time.Second); err != nil {
		s.logger.Error("Failed to send Slack failure notification",
			"post_id", input.PostID,
			"error", err)
	}
}

// NotifyBudgetAlert sends a budget threshold notification.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyBudgetAlert(ctx context.Context, input BudgetAlertInput) {
	if s == nil {
		return
	}
	blocks := BuildBudgetAlertMessage(input)
	if err := s.client.PostMessage(ctx, blocks, 5*time.Second); err != nil {
		s.logger.Error("Failed to send Slack budget alert",
			"creator_id", input.CreatorID,
			"error", err)
	}
}
