package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Reservation holds the schema definition for the Reservation entity.
// A reservation is a provisional budget hold tied to one in-flight LLM call;
// it is committed into spent_usd or released — never both.
type Reservation struct {
	ent.Schema
}

// Fields of the Reservation.
func (Reservation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("reservation_id").
			Unique().
			Immutable(),
		field.String("creator_id").
			Immutable(),
		field.String("month").
			Immutable(),
		field.Float("amount_usd").
			Comment("Estimated cost held against the budget period"),
		field.Float("committed_usd").
			Optional().
			Nillable().
			Comment("Actual cost moved to spent on commit"),
		field.Enum("state").
			Values("held", "committed", "released", "expired").
			Default("held"),
		field.Time("expires_at").
			Comment("Reaper releases held reservations past this instant"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Reservation.
func (Reservation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("creator_id", "month"),
		index.Fields("state", "expires_at"),
	}
}
