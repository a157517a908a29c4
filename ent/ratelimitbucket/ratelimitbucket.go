// Code generated by ent, DO NOT EDIT.

package ratelimitbucket

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the ratelimitbucket type in the database.
	Label = "rate_limit_bucket"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "bucket_id"
	// FieldAccountID holds the string denoting the account_id field in the database.
	FieldAccountID = "account_id"
	// FieldEndpoint holds the string denoting the endpoint field in the database.
	FieldEndpoint = "endpoint"
	// FieldTokens holds the string denoting the tokens field in the database.
	FieldTokens = "tokens"
	// FieldCapacity holds the string denoting the capacity field in the database.
	FieldCapacity = "capacity"
	// FieldRefillRate holds the string denoting the refill_rate field in the database.
	FieldRefillRate = "refill_rate"
	// FieldLastRefillAt holds the string denoting the last_refill_at field in the database.
	FieldLastRefillAt = "last_refill_at"
	// FieldCooldownUntil holds the string denoting the cooldown_until field in the database.
	FieldCooldownUntil = "cooldown_until"
	// FieldConsecutiveFailures holds the string denoting the consecutive_failures field in the database.
	FieldConsecutiveFailures = "consecutive_failures"
	// FieldBreakerState holds the string denoting the breaker_state field in the database.
	FieldBreakerState = "breaker_state"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the ratelimitbucket in the database.
	Table = "rate_limit_buckets"
)

// Columns holds all SQL columns for ratelimitbucket fields.
var Columns = []string{
	FieldID,
	FieldAccountID,
	FieldEndpoint,
	FieldTokens,
	FieldCapacity,
	FieldRefillRate,
	FieldLastRefillAt,
	FieldCooldownUntil,
	FieldConsecutiveFailures,
	FieldBreakerState,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultConsecutiveFailures holds the default value on creation for the "consecutive_failures" field.
	DefaultConsecutiveFailures int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// BreakerState defines the type for the "breaker_state" enum field.
type BreakerState string

// BreakerStateClosed is the default value of the BreakerState enum.
const DefaultBreakerState = BreakerStateClosed

// BreakerState values.
const (
	BreakerStateClosed   BreakerState = "closed"
	BreakerStateOpen     BreakerState = "open"
	BreakerStateHalfOpen BreakerState = "half_open"
)

func (bs BreakerState) String() string {
	return string(bs)
}

// BreakerStateValidator is a validator for the "breaker_state" field enum values. It is called by the builders before save.
func BreakerStateValidator(bs BreakerState) error {
	switch bs {
	case BreakerStateClosed, BreakerStateOpen, BreakerStateHalfOpen:
		return nil
	default:
		return fmt.Errorf("ratelimitbucket: invalid enum value for breaker_state field: %q", bs)
	}
}

// OrderOption defines the ordering options for the RateLimitBucket queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAccountID orders the results by the account_id field.
func ByAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountID, opts...).ToFunc()
}

// ByEndpoint orders the results by the endpoint field.
func ByEndpoint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndpoint, opts...).ToFunc()
}

// ByTokens orders the results by the tokens field.
func ByTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokens, opts...).ToFunc()
}

// ByCapacity orders the results by the capacity field.
func ByCapacity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCapacity, opts...).ToFunc()
}

// ByRefillRate orders the results by the refill_rate field.
func ByRefillRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRefillRate, opts...).ToFunc()
}

// ByLastRefillAt orders the results by the last_refill_at field.
func ByLastRefillAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRefillAt, opts...).ToFunc()
}

// ByCooldownUntil orders the results by the cooldown_until field.
func ByCooldownUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCooldownUntil, opts...).ToFunc()
}

// ByConsecutiveFailures orders the results by the consecutive_failures field.
func ByConsecutiveFailures(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveFailures, opts...).ToFunc()
}

// ByBreakerState orders the results by the breaker_state field.
func ByBreakerState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBreakerState, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
