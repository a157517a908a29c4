package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WebhookEvent holds the schema definition for the WebhookEvent entity.
// Rows are immutable once stored except for processing_status bookkeeping;
// the unique (provider, event_id) index enforces at-most-once insertion.
type WebhookEvent struct {
	ent.Schema
}

// Fields of the WebhookEvent.
func (WebhookEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("webhook_event_id").
			Unique().
			Immutable(),
		field.String("provider").
			Immutable(),
		field.String("event_id").
			Immutable().
			Comment("Provider-assigned delivery id"),
		field.String("event_type").
			Immutable(),
		field.Bytes("payload").
			Immutable().
			Comment("Exact raw body bytes as received — re-serialization breaks the signature"),
		field.String("signature").
			Immutable(),
		field.Bool("signature_verified").
			Immutable(),
		field.Enum("processing_status").
			Values("received", "processing", "completed", "unroutable", "dlq").
			Default("received"),
		field.Int("attempt_count").
			Default(0).
			Comment("Reconciler routing attempts for unroutable events"),
		field.String("post_id").
			Optional().
			Nillable().
			Comment("Set once routed via trusted mapping"),
		field.Time("received_at").
			Default(time.Now).
			Immutable(),
		field.Time("processed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the WebhookEvent.
func (WebhookEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider", "event_id").
			Unique(),
		index.Fields("processing_status", "received_at"),
		index.Fields("post_id"),
	}
}
