package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Persisted copies of NOTIFY payloads so websocket clients can catch up after
// a reconnect. Transient rows; deleted shortly after the post reaches a
// terminal state.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		// Implicit auto-increment int id; clients use it as the catchup cursor.
		field.String("post_id").
			Optional().
			Immutable(),
		field.String("channel").
			Immutable(),
		field.Text("payload").
			Immutable().
			Comment("JSON payload as broadcast via NOTIFY"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("post_id", "created_at"),
		index.Fields("channel"),
	}
}
