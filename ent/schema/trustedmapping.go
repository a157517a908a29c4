package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TrustedMapping holds the schema definition for the TrustedMapping entity.
// Associates a platform-side identifier with an internal post id; created when
// the adapter returns a remote id, consumed by webhook ingress for routing.
type TrustedMapping struct {
	ent.Schema
}

// Fields of the TrustedMapping.
func (TrustedMapping) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("mapping_id").
			Unique().
			Immutable(),
		field.String("provider").
			Immutable(),
		field.String("platform_id").
			Immutable().
			Comment("Platform-side identifier, e.g. remote video id"),
		field.String("post_id").
			Immutable(),
		field.String("kind").
			Default("remote_post").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the TrustedMapping.
func (TrustedMapping) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider", "platform_id").
			Unique(),
		index.Fields("post_id"),
	}
}
