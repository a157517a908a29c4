package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Post holds the schema definition for the Post entity.
// One post is one publish intent: exactly one adapter invocation lifecycle.
type Post struct {
	ent.Schema
}

// Fields of the Post.
func (Post) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("post_id").
			Unique().
			Immutable(),
		field.String("creator_id").
			Immutable(),
		field.String("account_id").
			Immutable(),
		field.Enum("platform").
			Values("instagram", "tiktok", "x", "reddit").
			Immutable(),
		field.String("media_ref").
			Immutable().
			Comment("Opaque reference to already-transcoded media"),
		// caption is mutable: the dispatcher persists a generated caption just
		// before the adapter call. content_hash stays frozen at submit time so
		// the dedupe key is unaffected.
		field.Text("caption"),
		field.String("content_hash").
			Immutable(),
		field.String("dedupe_key").
			Immutable().
			Comment("account_id + ':' + content_hash — collapses duplicate publishes"),
		// State machine:
		//   draft → scheduled → dispatching → awaiting_remote → published
		//                         │                │
		//                         └──► failed ◄────┘
		// cancelled is reachable from scheduled and awaiting_remote only.
		// Terminal states (published, failed, cancelled) are immutable.
		field.Enum("state").
			Values("draft", "scheduled", "dispatching", "awaiting_remote", "published", "failed", "cancelled").
			Default("draft"),
		field.Time("scheduled_at").
			Optional().
			Nillable(),
		field.Int("attempt_count").
			Default(0),
		field.Time("next_retry_at").
			Optional().
			Nillable(),
		field.String("last_error").
			Optional().
			Nillable(),
		field.String("error_kind").
			Optional().
			Nillable().
			Comment("Machine-readable failure class (auth_revoked, rate_limited, ...)"),
		field.String("remote_id").
			Optional().
			Nillable().
			Comment("Platform-side post id, set when the adapter accepts the post"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Worker heartbeat — drives orphan detection"),
		field.Time("dispatched_at").
			Optional().
			Nillable(),
		field.Time("published_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Post.
func (Post) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("creator_id"),
		index.Fields("account_id", "dedupe_key"),
		index.Fields("platform", "state", "scheduled_at"),
		index.Fields("state", "last_interaction_at"),
		index.Fields("state", "next_retry_at"),
		// Dispatching posts are rare; partial index keeps orphan scans cheap.
		index.Fields("pod_id").
			Annotations(entsql.IndexWhere("state = 'dispatching'")),
	}
}
