// Code generated by ent, DO NOT EDIT.

package budgetperiod

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the budgetperiod type in the database.
	Label = "budget_period"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "budget_period_id"
	// FieldCreatorID holds the string denoting the creator_id field in the database.
	FieldCreatorID = "creator_id"
	// FieldMonth holds the string denoting the month field in the database.
	FieldMonth = "month"
	// FieldLimitUsd holds the string denoting the limit_usd field in the database.
	FieldLimitUsd = "limit_usd"
	// FieldSoftPct holds the string denoting the soft_pct field in the database.
	FieldSoftPct = "soft_pct"
	// FieldSpentUsd holds the string denoting the spent_usd field in the database.
	FieldSpentUsd = "spent_usd"
	// FieldReservedUsd holds the string denoting the reserved_usd field in the database.
	FieldReservedUsd = "reserved_usd"
	// FieldHardStop holds the string denoting the hard_stop field in the database.
	FieldHardStop = "hard_stop"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the budgetperiod in the database.
	Table = "budget_periods"
)

// Columns holds all SQL columns for budgetperiod fields.
var Columns = []string{
	FieldID,
	FieldCreatorID,
	FieldMonth,
	FieldLimitUsd,
	FieldSoftPct,
	FieldSpentUsd,
	FieldReservedUsd,
	FieldHardStop,
	FieldCreatedAt,
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
	// DefaultSoftPct holds the default value on creation for the "soft_pct" field.
	DefaultSoftPct float64
	// DefaultSpentUsd holds the default value on creation for the "spent_usd" field.
	DefaultSpentUsd float64
	// DefaultReservedUsd holds the default value on creation for the "reserved_usd" field.
	DefaultReservedUsd float64
	// DefaultHardStop holds the default value on creation for the "hard_stop" field.
	DefaultHardStop bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the BudgetPeriod queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatorID orders the results by the creator_id field.
func ByCreatorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatorID, opts...).ToFunc()
}

// ByMonth orders the results by the month field.
func ByMonth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonth, opts...).ToFunc()
}

// ByLimitUsd orders the results by the limit_usd field.
func ByLimitUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLimitUsd, opts...).ToFunc()
}

// BySoftPct orders the results by the soft_pct field.
func BySoftPct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSoftPct, opts...).ToFunc()
}

// BySpentUsd orders the results by the spent_usd field.
func BySpentUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpentUsd, opts...).ToFunc()
}

// ByReservedUsd orders the results by the reserved_usd field.
func ByReservedUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReservedUsd, opts...).ToFunc()
}

// ByHardStop orders the results by the hard_stop field.
func ByHardStop(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHardStop, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
