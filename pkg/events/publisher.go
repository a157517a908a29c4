package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher publishes events for WebSocket delivery.
// Post state events are stored in the events table then broadcast via NOTIFY
// in the same transaction; budget alerts are NOTIFY-only.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// PublishPostState persists a post state event and broadcasts it to both the
// post channel and the owning creator's channel. The persistent copy lives on
// the post channel; the creator channel gets a transient copy.
func (p *EventPublisher) PublishPostState(ctx context.Context, creatorID string, payload PostStatePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal PostStatePayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, payload.PostID, PostChannel(payload.PostID), payloadJSON); err != nil {
		slog.Warn("Failed to publish post state to post channel",
			"post_id", payload.PostID, "state", payload.State, "error", err)
		firstErr = err
	}

	if err := p.notifyOnly(ctx, CreatorChannel(creatorID), payloadJSON); err != nil {
		slog.Warn("Failed to publish post state to creator channel",
			"post_id", payload.PostID, "creator_id", creatorID, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// PublishBudgetAlert broadcasts a transient budget alert to the creator.
func (p *EventPublisher) PublishBudgetAlert(ctx context.Context, payload BudgetAlertPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal BudgetAlertPayload: %w", err)
	}
	return p.notifyOnly(ctx, CreatorChannel(payload.CreatorID), payloadJSON)
}

// persistAndNotify persists a pre-marshaled event and broadcasts via NOTIFY
// in a single transaction (pg_notify is transactional — held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, postID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (post_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		postID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persistence.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(string(enriched))
}

// truncateIfNeeded returns the payload as-is when it fits within PostgreSQL's
// 8000-byte NOTIFY limit, otherwise a minimal envelope with routing fields so
// the client can fetch the full event from the database.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}

	var routing struct {
		Type      string `json:"type"`
		PostID    string `json:"post_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal([]byte(payloadStr), &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"post_id":   routing.PostID,
		"truncated": true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
