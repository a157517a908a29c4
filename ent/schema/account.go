package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Account holds the schema definition for the Account entity.
// An account is one creator's authenticated identity on one platform.
type Account struct {
	ent.Schema
}

// Fields of the Account.
func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("account_id").
			Unique().
			Immutable(),
		field.String("creator_id").
			Immutable().
			Comment("Owning creator — every query is scoped by this"),
		field.Enum("platform").
			Values("instagram", "tiktok", "x", "reddit").
			Immutable(),
		field.String("platform_account_id").
			Immutable().
			Comment("Platform-side identity (user id, channel id, ...)"),
		field.String("display_name").
			Optional(),
		field.Enum("status").
			Values("pending", "active", "cooldown", "revoked").
			Default("pending"),
		field.Bytes("access_token_ciphertext").
			Sensitive().
			Comment("AES-GCM encrypted OAuth access token"),
		field.Bytes("refresh_token_ciphertext").
			Optional().
			Sensitive(),
		field.Time("token_expires_at").
			Optional().
			Nillable(),
		field.Int("priority").
			Default(1).
			Comment("Fair-share weight; higher is served more often"),
		field.Time("last_scheduled_at").
			Optional().
			Nillable().
			Comment("Updated on successful dispatch claim — drives fair-share ordering"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Account.
func (Account) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("platform", "platform_account_id").
			Unique(),
		index.Fields("creator_id"),
		index.Fields("status"),
		index.Fields("platform", "status", "last_scheduled_at"),
	}
}
