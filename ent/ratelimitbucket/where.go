// Code generated by ent, DO NOT EDIT.

package ratelimitbucket

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/postflow-io/postflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldContainsFold(FieldID, id))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldAccountID, v))
}

// Endpoint applies equality check predicate on the "endpoint" field. It's identical to EndpointEQ.
func Endpoint(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldEndpoint, v))
}

// Tokens applies equality check predicate on the "tokens" field. It's identical to TokensEQ.
func Tokens(v float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldTokens, v))
}

// Capacity applies equality check predicate on the "capacity" field. It's identical to CapacityEQ.
func Capacity(v float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldCapacity, v))
}

// RefillRate applies equality check predicate on the "refill_rate" field. It's identical to RefillRateEQ.
func RefillRate(v float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldRefillRate, v))
}

// LastRefillAt applies equality check predicate on the "last_refill_at" field. It's identical to LastRefillAtEQ.
func LastRefillAt(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldLastRefillAt, v))
}

// CooldownUntil applies equality check predicate on the "cooldown_until" field. It's identical to CooldownUntilEQ.
func CooldownUntil(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldCooldownUntil, v))
}

// ConsecutiveFailures applies equality check predicate on the "consecutive_failures" field. It's identical to ConsecutiveFailuresEQ.
func ConsecutiveFailures(v int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldConsecutiveFailures, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldUpdatedAt, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLTE(FieldAccountID, v))
}

// AccountIDContains applies the Contains predicate on the "account_id" field.
func AccountIDContains(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldContains(FieldAccountID, v))
}

// AccountIDHasPrefix applies the HasPrefix predicate on the "account_id" field.
func AccountIDHasPrefix(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldHasPrefix(FieldAccountID, v))
}

// AccountIDHasSuffix applies the HasSuffix predicate on the "account_id" field.
func AccountIDHasSuffix(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldHasSuffix(FieldAccountID, v))
}

// AccountIDEqualFold applies the EqualFold predicate on the "account_id" field.
func AccountIDEqualFold(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEqualFold(FieldAccountID, v))
}

// AccountIDContainsFold applies the ContainsFold predicate on the "account_id" field.
func AccountIDContainsFold(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldContainsFold(FieldAccountID, v))
}

// EndpointEQ applies the EQ predicate on the "endpoint" field.
func EndpointEQ(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldEndpoint, v))
}

// EndpointNEQ applies the NEQ predicate on the "endpoint" field.
func EndpointNEQ(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNEQ(FieldEndpoint, v))
}

// EndpointIn applies the In predicate on the "endpoint" field.
func EndpointIn(vs ...string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldIn(FieldEndpoint, vs...))
}

// EndpointNotIn applies the NotIn predicate on the "endpoint" field.
func EndpointNotIn(vs ...string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNotIn(FieldEndpoint, vs...))
}

// EndpointGT applies the GT predicate on the "endpoint" field.
func EndpointGT(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGT(FieldEndpoint, v))
}

// EndpointGTE applies the GTE predicate on the "endpoint" field.
func EndpointGTE(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGTE(FieldEndpoint, v))
}

// EndpointLT applies the LT predicate on the "endpoint" field.
func EndpointLT(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLT(FieldEndpoint, v))
}

// EndpointLTE applies the LTE predicate on the "endpoint" field.
func EndpointLTE(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLTE(FieldEndpoint, v))
}

// EndpointContains applies the Contains predicate on the "endpoint" field.
func EndpointContains(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldContains(FieldEndpoint, v))
}

// EndpointHasPrefix applies the HasPrefix predicate on the "endpoint" field.
func EndpointHasPrefix(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldHasPrefix(FieldEndpoint, v))
}

// EndpointHasSuffix applies the HasSuffix predicate on the "endpoint" field.
func EndpointHasSuffix(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldHasSuffix(FieldEndpoint, v))
}

// EndpointEqualFold applies the EqualFold predicate on the "endpoint" field.
func EndpointEqualFold(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEqualFold(FieldEndpoint, v))
}

// EndpointContainsFold applies the ContainsFold predicate on the "endpoint" field.
func EndpointContainsFold(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldContainsFold(FieldEndpoint, v))
}

// TokensEQ applies the EQ predicate on the "tokens" field.
func TokensEQ(v float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldTokens, v))
}

// TokensNEQ applies the NEQ predicate on the "tokens" field.
func TokensNEQ(v float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNEQ(FieldTokens, v))
}

// TokensIn applies the In predicate on the "tokens" field.
func TokensIn(vs ...float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldIn(FieldTokens, vs...))
}

// TokensNotIn applies the NotIn predicate on the "tokens" field.
func TokensNotIn(vs ...float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNotIn(FieldTokens, vs...))
}

// TokensGT applies the GT predicate on the "tokens" field.
func TokensGT(v float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGT(FieldTokens, v))
}

// TokensGTE applies the GTE predicate on the "tokens" field.
func TokensGTE(v float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGTE(FieldTokens, v))
}

// TokensLT applies the LT predicate on the "tokens" field.
func TokensLT(v float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLT(FieldTokens, v))
}

// TokensLTE applies the LTE predicate on the "tokens" field.
func TokensLTE(v float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLTE(FieldTokens, v))
}

// CapacityEQ applies the EQ predicate on the "capacity" field.
func CapacityEQ(v float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldCapacity, v))
}

// CapacityNEQ applies the NEQ predicate on the "capacity" field.
func CapacityNEQ(v float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNEQ(FieldCapacity, v))
}

// CapacityIn applies the In predicate on the "capacity" field.
func CapacityIn(vs ...float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldIn(FieldCapacity, vs...))
}

// CapacityNotIn applies the NotIn predicate on the "capacity" field.
func CapacityNotIn(vs ...float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNotIn(FieldCapacity, vs...))
}

// CapacityGT applies the GT predicate on the "capacity" field.
func CapacityGT(v float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGT(FieldCapacity, v))
}

// CapacityGTE applies the GTE predicate on the "capacity" field.
func CapacityGTE(v float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGTE(FieldCapacity, v))
}

// CapacityLT applies the LT predicate on the "capacity" field.
func CapacityLT(v float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLT(FieldCapacity, v))
}

// CapacityLTE applies the LTE predicate on the "capacity" field.
func CapacityLTE(v float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLTE(FieldCapacity, v))
}

// RefillRateEQ applies the EQ predicate on the "refill_rate" field.
func RefillRateEQ(v float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldRefillRate, v))
}

// RefillRateNEQ applies the NEQ predicate on the "refill_rate" field.
func RefillRateNEQ(v float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNEQ(FieldRefillRate, v))
}

// RefillRateIn applies the In predicate on the "refill_rate" field.
func RefillRateIn(vs ...float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldIn(FieldRefillRate, vs...))
}

// RefillRateNotIn applies the NotIn predicate on the "refill_rate" field.
func RefillRateNotIn(vs ...float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNotIn(FieldRefillRate, vs...))
}

// RefillRateGT applies the GT predicate on the "refill_rate" field.
func RefillRateGT(v float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGT(FieldRefillRate, v))
}

// RefillRateGTE applies the GTE predicate on the "refill_rate" field.
func RefillRateGTE(v float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGTE(FieldRefillRate, v))
}

// RefillRateLT applies the LT predicate on the "refill_rate" field.
func RefillRateLT(v float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLT(FieldRefillRate, v))
}

// RefillRateLTE applies the LTE predicate on the "refill_rate" field.
func RefillRateLTE(v float64) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLTE(FieldRefillRate, v))
}

// LastRefillAtEQ applies the EQ predicate on the "last_refill_at" field.
func LastRefillAtEQ(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldLastRefillAt, v))
}

// LastRefillAtNEQ applies the NEQ predicate on the "last_refill_at" field.
func LastRefillAtNEQ(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNEQ(FieldLastRefillAt, v))
}

// LastRefillAtIn applies the In predicate on the "last_refill_at" field.
func LastRefillAtIn(vs ...time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldIn(FieldLastRefillAt, vs...))
}

// LastRefillAtNotIn applies the NotIn predicate on the "last_refill_at" field.
func LastRefillAtNotIn(vs ...time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNotIn(FieldLastRefillAt, vs...))
}

// LastRefillAtGT applies the GT predicate on the "last_refill_at" field.
func LastRefillAtGT(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGT(FieldLastRefillAt, v))
}

// LastRefillAtGTE applies the GTE predicate on the "last_refill_at" field.
func LastRefillAtGTE(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGTE(FieldLastRefillAt, v))
}

// LastRefillAtLT applies the LT predicate on the "last_refill_at" field.
func LastRefillAtLT(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLT(FieldLastRefillAt, v))
}

// LastRefillAtLTE applies the LTE predicate on the "last_refill_at" field.
func LastRefillAtLTE(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLTE(FieldLastRefillAt, v))
}

// CooldownUntilEQ applies the EQ predicate on the "cooldown_until" field.
func CooldownUntilEQ(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldCooldownUntil, v))
}

// CooldownUntilNEQ applies the NEQ predicate on the "cooldown_until" field.
func CooldownUntilNEQ(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNEQ(FieldCooldownUntil, v))
}

// CooldownUntilIn applies the In predicate on the "cooldown_until" field.
func CooldownUntilIn(vs ...time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldIn(FieldCooldownUntil, vs...))
}

// CooldownUntilNotIn applies the NotIn predicate on the "cooldown_until" field.
func CooldownUntilNotIn(vs ...time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNotIn(FieldCooldownUntil, vs...))
}

// CooldownUntilGT applies the GT predicate on the "cooldown_until" field.
func CooldownUntilGT(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGT(FieldCooldownUntil, v))
}

// CooldownUntilGTE applies the GTE predicate on the "cooldown_until" field.
func CooldownUntilGTE(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGTE(FieldCooldownUntil, v))
}

// CooldownUntilLT applies the LT predicate on the "cooldown_until" field.
func CooldownUntilLT(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLT(FieldCooldownUntil, v))
}

// CooldownUntilLTE applies the LTE predicate on the "cooldown_until" field.
func CooldownUntilLTE(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLTE(FieldCooldownUntil, v))
}

// CooldownUntilIsNil applies the IsNil predicate on the "cooldown_until" field.
func CooldownUntilIsNil() predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldIsNull(FieldCooldownUntil))
}

// CooldownUntilNotNil applies the NotNil predicate on the "cooldown_until" field.
func CooldownUntilNotNil() predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNotNull(FieldCooldownUntil))
}

// ConsecutiveFailuresEQ applies the EQ predicate on the "consecutive_failures" field.
func ConsecutiveFailuresEQ(v int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresNEQ applies the NEQ predicate on the "consecutive_failures" field.
func ConsecutiveFailuresNEQ(v int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNEQ(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresIn applies the In predicate on the "consecutive_failures" field.
func ConsecutiveFailuresIn(vs ...int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldIn(FieldConsecutiveFailures, vs...))
}

// ConsecutiveFailuresNotIn applies the NotIn predicate on the "consecutive_failures" field.
func ConsecutiveFailuresNotIn(vs ...int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNotIn(FieldConsecutiveFailures, vs...))
}

// ConsecutiveFailuresGT applies the GT predicate on the "consecutive_failures" field.
func ConsecutiveFailuresGT(v int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGT(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresGTE applies the GTE predicate on the "consecutive_failures" field.
func ConsecutiveFailuresGTE(v int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGTE(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresLT applies the LT predicate on the "consecutive_failures" field.
func ConsecutiveFailuresLT(v int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLT(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresLTE applies the LTE predicate on the "consecutive_failures" field.
func ConsecutiveFailuresLTE(v int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLTE(FieldConsecutiveFailures, v))
}

// BreakerStateEQ applies the EQ predicate on the "breaker_state" field.
func BreakerStateEQ(v BreakerState) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldBreakerState, v))
}

// BreakerStateNEQ applies the NEQ predicate on the "breaker_state" field.
func BreakerStateNEQ(v BreakerState) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNEQ(FieldBreakerState, v))
}

// BreakerStateIn applies the In predicate on the "breaker_state" field.
func BreakerStateIn(vs ...BreakerState) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldIn(FieldBreakerState, vs...))
}

// BreakerStateNotIn applies the NotIn predicate on the "breaker_state" field.
func BreakerStateNotIn(vs ...BreakerState) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNotIn(FieldBreakerState, vs...))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RateLimitBucket) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RateLimitBucket) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RateLimitBucket) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.NotPredicates(p))
}
