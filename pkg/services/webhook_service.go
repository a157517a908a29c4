package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/postflow-io/postflow/ent"
	"github.com/postflow-io/postflow/ent/webhookevent"
)

// WebhookService persists provider callbacks and their processing status
type WebhookService struct {
	client *ent.Client
}

// NewWebhookService creates a new WebhookService
func NewWebhookService(client *ent.Client) *WebhookService {
	return &WebhookService{client: client}
}

// StoreEventParams captures everything ingress knows about a delivery.
type StoreEventParams struct {
	Provider          string
	EventID           string
	EventType         string
	Payload           []byte
	Signature         string
	SignatureVerified bool
}

// StoreEvent persists a delivery exactly once. The bool reports whether this
// call created the row; false means the provider redelivered a known event.
func (s *WebhookService) StoreEvent(httpCtx context.Context, params StoreEventParams) (*ent.WebhookEvent, bool, error) {
	if params.Provider == "" {
		return nil, false, NewValidationError("provider", "required")
	}
	if params.EventID == "" {
		return nil, false, NewValidationError("event_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	event, err := s.client.WebhookEvent.Create().
		SetID(uuid.New().String()).
		SetProvider(params.Provider).
		SetEventID(params.EventID).
		SetEventType(params.EventType).
		SetPayload(params.Payload).
		SetSignature(params.Signature).
		SetSignatureVerified(params.SignatureVerified).
		SetProcessingStatus(webhookevent.ProcessingStatusReceived).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, qerr := s.client.WebhookEvent.Query().
				Where(
					webhookevent.ProviderEQ(params.Provider),
					webhookevent.EventIDEQ(params.EventID),
				).
				Only(ctx)
			if qerr != nil {
				return nil, false, fmt.Errorf("failed to load duplicate event: %w", qerr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to store webhook event: %w", err)
	}
	return event, true, nil
}

// MarkProcessing claims an event for processing. Zero rows means another
// worker got there first.
func (s *WebhookService) MarkProcessing(ctx context.Context, eventID string) (bool, error) {
	count, err := s.client.WebhookEvent.Update().
		Where(
			webhookevent.IDEQ(eventID),
			webhookevent.ProcessingStatusIn(
				webhookevent.ProcessingStatusReceived,
				webhookevent.ProcessingStatusUnroutable,
			),
		).
		SetProcessingStatus(webhookevent.ProcessingStatusProcessing).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to mark event processing: %w", err)
	}
	return count > 0, nil
}

// MarkCompleted finalizes a routed event.
func (s *WebhookService) MarkCompleted(ctx context.Context, eventID, postID string) error {
	update := s.client.WebhookEvent.UpdateOneID(eventID).
		SetProcessingStatus(webhookevent.ProcessingStatusCompleted).
		SetProcessedAt(time.Now())
	if postID != "" {
		update = update.SetPostID(postID)
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark event completed: %w", err)
	}
	return nil
}

// MarkUnroutable parks an event the reconciler should retry, moving it to the
// dead letter queue once attempts are exhausted.
func (s *WebhookService) MarkUnroutable(ctx context.Context, eventID string, maxRetries int) error {
	event, err := s.client.WebhookEvent.Query().
		Where(webhookevent.IDEQ(eventID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load event: %w", err)
	}

	attempts := event.AttemptCount + 1
	status := webhookevent.ProcessingStatusUnroutable
	if attempts >= maxRetries {
		status = webhookevent.ProcessingStatusDlq
	}

	err = event.Update().
		SetProcessingStatus(status).
		SetAttemptCount(attempts).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark event unroutable: %w", err)
	}
	return nil
}

// ListUnroutable returns events the reconciler should retry, oldest first.
func (s *WebhookService) ListUnroutable(ctx context.Context, limit int) ([]*ent.WebhookEvent, error) {
	if limit <= 0 {
		limit = 100
	}
	events, err := s.client.WebhookEvent.Query().
		Where(webhookevent.ProcessingStatusEQ(webhookevent.ProcessingStatusUnroutable)).
		Order(ent.Asc(webhookevent.FieldReceivedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unroutable events: %w", err)
	}
	return events, nil
}
