package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RateLimitBucket holds the schema definition for the RateLimitBucket entity.
// This is the durable checkpoint of per-(account, endpoint) rate-limit state;
// the hot token accounting lives in Redis and is written back through here.
type RateLimitBucket struct {
	ent.Schema
}

// Fields of the RateLimitBucket.
func (RateLimitBucket) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("bucket_id").
			Unique().
			Immutable(),
		field.String("account_id").
			Immutable(),
		field.String("endpoint").
			Immutable(),
		field.Float("tokens"),
		field.Float("capacity"),
		field.Float("refill_rate").
			Comment("Tokens per second"),
		field.Time("last_refill_at"),
		field.Time("cooldown_until").
			Optional().
			Nillable(),
		field.Int("consecutive_failures").
			Default(0),
		field.Enum("breaker_state").
			Values("closed", "open", "half_open").
			Default("closed"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the RateLimitBucket.
func (RateLimitBucket) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id", "endpoint").
			Unique(),
		index.Fields("breaker_state"),
	}
}
