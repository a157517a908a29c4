package webhook

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/postflow-io/postflow/ent"
	"github.com/postflow-io/postflow/pkg/config"
	"github.com/postflow-io/postflow/pkg/events"
	"github.com/postflow-io/postflow/pkg/services"
)

// Ingress processes provider callbacks: verify, persist exactly once, route
// through trusted mappings, apply the post transition.
//
// Everything here is best-effort from the provider's point of view: the HTTP
// layer answers 200 regardless, so a forger learns nothing and a legitimate
// provider never retries into a poison loop.
type Ingress struct {
	cfg       *config.WebhookConfig
	webhooks  *services.WebhookService
	mappings  *services.MappingService
	posts     *services.PostService
	publisher *events.EventPublisher
	logger    *slog.Logger

	// sigFailures counts rejected signatures since process start. A sudden
	// climb here means a leaked or rotated secret, or someone probing us.
	sigFailures atomic.Uint64
}

// NewIngress creates a new Ingress
func NewIngress(cfg *config.WebhookConfig, webhooks *services.WebhookService, mappings *services.MappingService, posts *services.PostService, publisher *events.EventPublisher) *Ingress {
	return &Ingress{
		cfg:       cfg,
		webhooks:  webhooks,
		mappings:  mappings,
		posts:     posts,
		publisher: publisher,
		logger:    slog.With("component", "webhook"),
	}
}

// Delivery is one raw callback as received by the HTTP layer.
type Delivery struct {
	Provider  string
	Body      []byte
	Signature string
	Timestamp string
}

// envelope is the provider-agnostic view of a callback payload. Providers
// name these fields differently; the alternates cover the platforms we speak.
type envelope struct {
	EventID   string `json:"event_id"`
	ID        string `json:"id"`
	EventType string `json:"event_type"`
	Type      string `json:"type"`
	RemoteID  string `json:"remote_id"`
	MediaID   string `json:"media_id"`
	PublishID string `json:"publish_id"`
	Status    string `json:"status"`
	Reason    string `json:"reason"`
	Timestamp string `json:"timestamp"`
}

func (e envelope) eventID() string {
	if e.EventID != "" {
		return e.EventID
	}
	return e.ID
}

func (e envelope) eventType() string {
	if e.EventType != "" {
		return e.EventType
	}
	return e.Type
}

func (e envelope) remoteID() string {
	switch {
	case e.RemoteID != "":
		return e.RemoteID
	case e.MediaID != "":
		return e.MediaID
	default:
		return e.PublishID
	}
}

// Handle processes one delivery. Errors are logged, never returned to the
// provider.
func (i *Ingress) Handle(ctx context.Context, d Delivery) {
	provider, err := i.cfg.Provider(d.Provider)
	if err != nil {
		i.logger.Warn("Callback for unknown provider dropped", "provider", d.Provider)
		return
	}

	verified := i.verify(provider, d)

	var env envelope
	if err := json.Unmarshal(d.Body, &env); err != nil || env.eventID() == "" {
		i.logger.Warn("Unparseable callback payload dropped", "provider", d.Provider)
		return
	}

	event, created, err := i.webhooks.StoreEvent(ctx, services.StoreEventParams{
		Provider:          d.Provider,
		EventID:           env.eventID(),
		EventType:         env.eventType(),
		Payload:           d.Body,
		Signature:         d.Signature,
		SignatureVerified: verified,
	})
	if err != nil {
		i.logger.Error("Failed to store webhook event", "provider", d.Provider, "error", err)
		return
	}
	if !created {
		i.logger.Debug("Duplicate delivery ignored", "provider", d.Provider, "event_id", env.eventID())
		return
	}

	if !verified {
		// Stored for audit, never processed.
		i.logger.Warn("Unverified callback parked",
			"provider", d.Provider, "event_id", env.eventID())
		_ = i.webhooks.MarkUnroutable(ctx, event.ID, 0) // 0 retries — straight to DLQ
		return
	}

	i.Route(ctx, event, env)
}

func (i *Ingress) verify(provider *config.WebhookProviderConfig, d Delivery) bool {
	secret, err := provider.Secret()
	if err != nil {
		i.logger.Error("Webhook secret unavailable", "provider", d.Provider, "error", err)
		return false
	}

	signature := StripPrefix(d.Signature, provider.SignaturePrefix)
	if provider.Timestamped() {
		err = VerifyTimestamped(secret, d.Body, d.Timestamp, signature, i.cfg.SignatureTolerance)
	} else {
		err = VerifyPlain(secret, d.Body, signature)
	}
	if err != nil {
		i.sigFailures.Add(1)
		i.logger.Warn("Webhook signature rejected", "provider", d.Provider, "error", err)
		return false
	}
	return true
}

// SignatureFailures reports the number of deliveries rejected for a bad
// signature since process start. Exposed on the health endpoint.
func (i *Ingress) SignatureFailures() uint64 {
	return i.sigFailures.Load()
}

// Route resolves the trusted mapping and applies the post transition. Also
// called by the reconciler for parked events.
func (i *Ingress) Route(ctx context.Context, event *ent.WebhookEvent, env envelope) {
	remoteID := env.remoteID()
	if remoteID == "" {
		i.logger.Warn("Callback carries no platform id", "provider", event.Provider, "event_id", event.EventID)
		_ = i.webhooks.MarkUnroutable(ctx, event.ID, i.cfg.DLQMaxRetries)
		return
	}

	claimed, err := i.webhooks.MarkProcessing(ctx, event.ID)
	if err != nil {
		i.logger.Error("Failed to claim webhook event", "event_id", event.EventID, "error", err)
		return
	}
	if !claimed {
		return
	}

	postID, err := i.mappings.Resolve(ctx, event.Provider, remoteID)
	if err != nil {
		// No mapping yet — the adapter result may still be in flight.
		i.logger.Info("No trusted mapping for callback, parking",
			"provider", event.Provider, "remote_id", remoteID)
		_ = i.webhooks.MarkUnroutable(ctx, event.ID, i.cfg.DLQMaxRetries)
		return
	}

	if err := i.applyTransition(ctx, postID, remoteID, env); err != nil {
		i.logger.Error("Failed to apply webhook transition",
			"post_id", postID, "event_id", event.EventID, "error", err)
		_ = i.webhooks.MarkUnroutable(ctx, event.ID, i.cfg.DLQMaxRetries)
		return
	}

	if err := i.webhooks.MarkCompleted(ctx, event.ID, postID); err != nil {
		i.logger.Error("Failed to complete webhook event", "event_id", event.EventID, "error", err)
	}
}

// applyTransition maps the provider's status onto the post state machine.
func (i *Ingress) applyTransition(ctx context.Context, postID, remoteID string, env envelope) error {
	switch normalizeStatus(env.Status, env.eventType()) {
	case "published":
		publishedAt := time.Now()
		if ts, err := time.Parse(time.RFC3339, env.Timestamp); err == nil {
			publishedAt = ts
		}
		if err := i.posts.MarkPublished(ctx, postID, remoteID, publishedAt); err != nil {
			return err
		}
		i.publishStateEvent(ctx, postID, "published", remoteID)
		return nil

	case "failed":
		reason := env.Reason
		if reason == "" {
			reason = "platform reported failure"
		}
		if err := i.posts.MarkFailed(ctx, postID, "remote_failed", reason); err != nil {
			return err
		}
		i.publishStateEvent(ctx, postID, "failed", remoteID)
		return nil

	default:
		// Informational callback (processing progress etc.) — nothing to do.
		return nil
	}
}

// normalizeStatus collapses provider status vocabularies onto ours.
func normalizeStatus(status, eventType string) string {
	s := strings.ToLower(status)
	if s == "" {
		s = strings.ToLower(eventType)
	}
	switch {
	case strings.Contains(s, "publish") && strings.Contains(s, "fail"):
		return "failed"
	case strings.Contains(s, "complete"), strings.Contains(s, "published"), strings.Contains(s, "finished"), strings.Contains(s, "live"):
		return "published"
	case strings.Contains(s, "fail"), strings.Contains(s, "error"), strings.Contains(s, "reject"):
		return "failed"
	default:
		return s
	}
}

func (i *Ingress) publishStateEvent(ctx context.Context, postID, state, remoteID string) {
	if i.publisher == nil {
		return
	}
	ref, err := i.posts.Ref(ctx, postID)
	if err != nil {
		return
	}
	payload := events.NewPostStatePayload(postID, ref.AccountID, ref.Platform, state)
	payload.RemoteID = remoteID
	if err := i.publisher.PublishPostState(ctx, ref.CreatorID, payload); err != nil {
		i.logger.Warn("Failed to publish post state event", "post_id", postID, "error", err)
	}
}
