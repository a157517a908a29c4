package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/postflow-io/postflow/ent"
	"github.com/postflow-io/postflow/ent/event"
	"github.com/postflow-io/postflow/pkg/events"
)

// EventService reads and prunes persisted websocket events.
// Implements events.CatchupQuerier.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetCatchupEvents returns events on a channel after sinceID, oldest first.
func (s *EventService) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]events.CatchupEvent, error) {
	if limit <= 0 {
		limit = 200
	}

	rows, err := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query catchup events: %w", err)
	}

	out := make([]events.CatchupEvent, 0, len(rows))
	for _, row := range rows {
		var payload map[string]interface{}
		if err := json.Unmarshal([]byte(row.Payload), &payload); err != nil {
			continue // skip rows with unreadable payloads
		}
		out = append(out, events.CatchupEvent{ID: row.ID, Payload: payload})
	}
	return out, nil
}

// PruneOldEvents deletes event rows older than the retention window.
// Events are a reconnect buffer, not an audit log.
func (s *EventService) PruneOldEvents(ctx context.Context, retention time.Duration) (int, error) {
	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(time.Now().Add(-retention))).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune events: %w", err)
	}
	return count, nil
}
