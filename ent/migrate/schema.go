// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "account_id", Type: field.TypeString, Unique: true},
		{Name: "creator_id", Type: field.TypeString},
		{Name: "platform", Type: field.TypeEnum, Enums: []string{"instagram", "tiktok", "x", "reddit"}},
		{Name: "platform_account_id", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "active", "cooldown", "revoked"}, Default: "pending"},
		{Name: "access_token_ciphertext", Type: field.TypeBytes},
		{Name: "refresh_token_ciphertext", Type: field.TypeBytes, Nullable: true},
		{Name: "token_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 1},
		{Name: "last_scheduled_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "account_platform_platform_account_id",
				Unique:  true,
				Columns: []*schema.Column{AccountsColumns[2], AccountsColumns[3]},
			},
			{
				Name:    "account_creator_id",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[1]},
			},
			{
				Name:    "account_status",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[5]},
			},
			{
				Name:    "account_platform_status_last_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[2], AccountsColumns[5], AccountsColumns[10]},
			},
		},
	}
	// BudgetPeriodsColumns holds the columns for the "budget_periods" table.
	BudgetPeriodsColumns = []*schema.Column{
		{Name: "budget_period_id", Type: field.TypeString, Unique: true},
		{Name: "creator_id", Type: field.TypeString},
		{Name: "month", Type: field.TypeString},
		{Name: "limit_usd", Type: field.TypeFloat64},
		{Name: "soft_pct", Type: field.TypeFloat64, Default: 0.8},
		{Name: "spent_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "reserved_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "hard_stop", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BudgetPeriodsTable holds the schema information for the "budget_periods" table.
	BudgetPeriodsTable = &schema.Table{
		Name:       "budget_periods",
		Columns:    BudgetPeriodsColumns,
		PrimaryKey: []*schema.Column{BudgetPeriodsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "budgetperiod_creator_id_month",
				Unique:  true,
				Columns: []*schema.Column{BudgetPeriodsColumns[1], BudgetPeriodsColumns[2]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "post_id", Type: field.TypeString, Nullable: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_post_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[4]},
			},
			{
				Name:    "event_channel",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
		},
	}
	// PostsColumns holds the columns for the "posts" table.
	PostsColumns = []*schema.Column{
		{Name: "post_id", Type: field.TypeString, Unique: true},
		{Name: "creator_id", Type: field.TypeString},
		{Name: "account_id", Type: field.TypeString},
		{Name: "platform", Type: field.TypeEnum, Enums: []string{"instagram", "tiktok", "x", "reddit"}},
		{Name: "media_ref", Type: field.TypeString},
		{Name: "caption", Type: field.TypeString, Size: 2147483647},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "dedupe_key", Type: field.TypeString},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"draft", "scheduled", "dispatching", "awaiting_remote", "published", "failed", "cancelled"}, Default: "draft"},
		{Name: "scheduled_at", Type: field.TypeTime, Nullable: true},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "next_retry_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "remote_id", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
		{Name: "dispatched_at", Type: field.TypeTime, Nullable: true},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PostsTable holds the schema information for the "posts" table.
	PostsTable = &schema.Table{
		Name:       "posts",
		Columns:    PostsColumns,
		PrimaryKey: []*schema.Column{PostsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "post_creator_id",
				Unique:  false,
				Columns: []*schema.Column{PostsColumns[1]},
			},
			{
				Name:    "post_account_id_dedupe_key",
				Unique:  false,
				Columns: []*schema.Column{PostsColumns[2], PostsColumns[7]},
			},
			{
				Name:    "post_platform_state_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{PostsColumns[3], PostsColumns[8], PostsColumns[9]},
			},
			{
				Name:    "post_state_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{PostsColumns[8], PostsColumns[16]},
			},
			{
				Name:    "post_state_next_retry_at",
				Unique:  false,
				Columns: []*schema.Column{PostsColumns[8], PostsColumns[11]},
			},
			{
				Name:    "post_pod_id",
				Unique:  false,
				Columns: []*schema.Column{PostsColumns[15]},
				Annotation: &entsql.IndexAnnotation{
					Where: "state = 'dispatching'",
				},
			},
		},
	}
	// RateLimitBucketsColumns holds the columns for the "rate_limit_buckets" table.
	RateLimitBucketsColumns = []*schema.Column{
		{Name: "bucket_id", Type: field.TypeString, Unique: true},
		{Name: "account_id", Type: field.TypeString},
		{Name: "endpoint", Type: field.TypeString},
		{Name: "tokens", Type: field.TypeFloat64},
		{Name: "capacity", Type: field.TypeFloat64},
		{Name: "refill_rate", Type: field.TypeFloat64},
		{Name: "last_refill_at", Type: field.TypeTime},
		{Name: "cooldown_until", Type: field.TypeTime, Nullable: true},
		{Name: "consecutive_failures", Type: field.TypeInt, Default: 0},
		{Name: "breaker_state", Type: field.TypeEnum, Enums: []string{"closed", "open", "half_open"}, Default: "closed"},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RateLimitBucketsTable holds the schema information for the "rate_limit_buckets" table.
	RateLimitBucketsTable = &schema.Table{
		Name:       "rate_limit_buckets",
		Columns:    RateLimitBucketsColumns,
		PrimaryKey: []*schema.Column{RateLimitBucketsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ratelimitbucket_account_id_endpoint",
				Unique:  true,
				Columns: []*schema.Column{RateLimitBucketsColumns[1], RateLimitBucketsColumns[2]},
			},
			{
				Name:    "ratelimitbucket_breaker_state",
				Unique:  false,
				Columns: []*schema.Column{RateLimitBucketsColumns[9]},
			},
		},
	}
	// ReservationsColumns holds the columns for the "reservations" table.
	ReservationsColumns = []*schema.Column{
		{Name: "reservation_id", Type: field.TypeString, Unique: true},
		{Name: "creator_id", Type: field.TypeString},
		{Name: "month", Type: field.TypeString},
		{Name: "amount_usd", Type: field.TypeFloat64},
		{Name: "committed_usd", Type: field.TypeFloat64, Nullable: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"held", "committed", "released", "expired"}, Default: "held"},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ReservationsTable holds the schema information for the "reservations" table.
	ReservationsTable = &schema.Table{
		Name:       "reservations",
		Columns:    ReservationsColumns,
		PrimaryKey: []*schema.Column{ReservationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reservation_creator_id_month",
				Unique:  false,
				Columns: []*schema.Column{ReservationsColumns[1], ReservationsColumns[2]},
			},
			{
				Name:    "reservation_state_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ReservationsColumns[5], ReservationsColumns[6]},
			},
		},
	}
	// TrustedMappingsColumns holds the columns for the "trusted_mappings" table.
	TrustedMappingsColumns = []*schema.Column{
		{Name: "mapping_id", Type: field.TypeString, Unique: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "platform_id", Type: field.TypeString},
		{Name: "post_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString, Default: "remote_post"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TrustedMappingsTable holds the schema information for the "trusted_mappings" table.
	TrustedMappingsTable = &schema.Table{
		Name:       "trusted_mappings",
		Columns:    TrustedMappingsColumns,
		PrimaryKey: []*schema.Column{TrustedMappingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "trustedmapping_provider_platform_id",
				Unique:  true,
				Columns: []*schema.Column{TrustedMappingsColumns[1], TrustedMappingsColumns[2]},
			},
			{
				Name:    "trustedmapping_post_id",
				Unique:  false,
				Columns: []*schema.Column{TrustedMappingsColumns[3]},
			},
		},
	}
	// WebhookEventsColumns holds the columns for the "webhook_events" table.
	WebhookEventsColumns = []*schema.Column{
		{Name: "webhook_event_id", Type: field.TypeString, Unique: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "event_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeBytes},
		{Name: "signature", Type: field.TypeString},
		{Name: "signature_verified", Type: field.TypeBool},
		{Name: "processing_status", Type: field.TypeEnum, Enums: []string{"received", "processing", "completed", "unroutable", "dlq"}, Default: "received"},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "post_id", Type: field.TypeString, Nullable: true},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
	}
	// WebhookEventsTable holds the schema information for the "webhook_events" table.
	WebhookEventsTable = &schema.Table{
		Name:       "webhook_events",
		Columns:    WebhookEventsColumns,
		PrimaryKey: []*schema.Column{WebhookEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "webhookevent_provider_event_id",
				Unique:  true,
				Columns: []*schema.Column{WebhookEventsColumns[1], WebhookEventsColumns[2]},
			},
			{
				Name:    "webhookevent_processing_status_received_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookEventsColumns[7], WebhookEventsColumns[10]},
			},
			{
				Name:    "webhookevent_post_id",
				Unique:  false,
				Columns: []*schema.Column{WebhookEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		BudgetPeriodsTable,
		EventsTable,
		PostsTable,
		RateLimitBucketsTable,
		ReservationsTable,
		TrustedMappingsTable,
		WebhookEventsTable,
	}
)

func init() {
}
