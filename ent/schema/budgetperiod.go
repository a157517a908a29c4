package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BudgetPeriod holds the schema definition for the BudgetPeriod entity.
// One row per (creator, calendar month). Invariant maintained by the Budget
// Guard: spent_usd + sum(held reservations) ≤ limit_usd.
type BudgetPeriod struct {
	ent.Schema
}

// Fields of the BudgetPeriod.
func (BudgetPeriod) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("budget_period_id").
			Unique().
			Immutable(),
		field.String("creator_id").
			Immutable(),
		field.String("month").
			Immutable().
			Comment("UTC calendar month, YYYY-MM"),
		field.Float("limit_usd"),
		field.Float("soft_pct").
			Default(0.8),
		field.Float("spent_usd").
			Default(0),
		field.Float("reserved_usd").
			Default(0).
			Comment("Sum of held reservations; denormalized for the reserve check"),
		field.Bool("hard_stop").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the BudgetPeriod.
func (BudgetPeriod) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("creator_id", "month").
			Unique(),
	}
}
