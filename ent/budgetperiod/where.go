// Code generated by ent, DO NOT EDIT.

package budgetperiod

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/postflow-io/postflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldContainsFold(FieldID, id))
}

// CreatorID applies equality check predicate on the "creator_id" field. It's identical to CreatorIDEQ.
func CreatorID(v string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldEQ(FieldCreatorID, v))
}

// Month applies equality check predicate on the "month" field. It's identical to MonthEQ.
func Month(v string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldEQ(FieldMonth, v))
}

// LimitUsd applies equality check predicate on the "limit_usd" field. It's identical to LimitUsdEQ.
func LimitUsd(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldEQ(FieldLimitUsd, v))
}

// SoftPct applies equality check predicate on the "soft_pct" field. It's identical to SoftPctEQ.
func SoftPct(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldEQ(FieldSoftPct, v))
}

// SpentUsd applies equality check predicate on the "spent_usd" field. It's identical to SpentUsdEQ.
func SpentUsd(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldEQ(FieldSpentUsd, v))
}

// ReservedUsd applies equality check predicate on the "reserved_usd" field. It's identical to ReservedUsdEQ.
func ReservedUsd(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldEQ(FieldReservedUsd, v))
}

// HardStop applies equality check predicate on the "hard_stop" field. It's identical to HardStopEQ.
func HardStop(v bool) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldEQ(FieldHardStop, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldEQ(FieldUpdatedAt, v))
}

// CreatorIDEQ applies the EQ predicate on the "creator_id" field.
func CreatorIDEQ(v string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldEQ(FieldCreatorID, v))
}

// CreatorIDNEQ applies the NEQ predicate on the "creator_id" field.
func CreatorIDNEQ(v string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldNEQ(FieldCreatorID, v))
}

// CreatorIDIn applies the In predicate on the "creator_id" field.
func CreatorIDIn(vs ...string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldIn(FieldCreatorID, vs...))
}

// CreatorIDNotIn applies the NotIn predicate on the "creator_id" field.
func CreatorIDNotIn(vs ...string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldNotIn(FieldCreatorID, vs...))
}

// CreatorIDGT applies the GT predicate on the "creator_id" field.
func CreatorIDGT(v string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldGT(FieldCreatorID, v))
}

// CreatorIDGTE applies the GTE predicate on the "creator_id" field.
func CreatorIDGTE(v string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldGTE(FieldCreatorID, v))
}

// CreatorIDLT applies the LT predicate on the "creator_id" field.
func CreatorIDLT(v string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldLT(FieldCreatorID, v))
}

// CreatorIDLTE applies the LTE predicate on the "creator_id" field.
func CreatorIDLTE(v string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldLTE(FieldCreatorID, v))
}

// CreatorIDContains applies the Contains predicate on the "creator_id" field.
func CreatorIDContains(v string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldContains(FieldCreatorID, v))
}

// CreatorIDHasPrefix applies the HasPrefix predicate on the "creator_id" field.
func CreatorIDHasPrefix(v string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldHasPrefix(FieldCreatorID, v))
}

// CreatorIDHasSuffix applies the HasSuffix predicate on the "creator_id" field.
func CreatorIDHasSuffix(v string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldHasSuffix(FieldCreatorID, v))
}

// CreatorIDEqualFold applies the EqualFold predicate on the "creator_id" field.
func CreatorIDEqualFold(v string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldEqualFold(FieldCreatorID, v))
}

// CreatorIDContainsFold applies the ContainsFold predicate on the "creator_id" field.
func CreatorIDContainsFold(v string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldContainsFold(FieldCreatorID, v))
}

// MonthEQ applies the EQ predicate on the "month" field.
func MonthEQ(v string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldEQ(FieldMonth, v))
}

// MonthNEQ applies the NEQ predicate on the "month" field.
func MonthNEQ(v string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldNEQ(FieldMonth, v))
}

// MonthIn applies the In predicate on the "month" field.
func MonthIn(vs ...string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldIn(FieldMonth, vs...))
}

// MonthNotIn applies the NotIn predicate on the "month" field.
func MonthNotIn(vs ...string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldNotIn(FieldMonth, vs...))
}

// MonthGT applies the GT predicate on the "month" field.
func MonthGT(v string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldGT(FieldMonth, v))
}

// MonthGTE applies the GTE predicate on the "month" field.
func MonthGTE(v string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldGTE(FieldMonth, v))
}

// MonthLT applies the LT predicate on the "month" field.
func MonthLT(v string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldLT(FieldMonth, v))
}

// MonthLTE applies the LTE predicate on the "month" field.
func MonthLTE(v string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldLTE(FieldMonth, v))
}

// MonthContains applies the Contains predicate on the "month" field.
func MonthContains(v string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldContains(FieldMonth, v))
}

// MonthHasPrefix applies the HasPrefix predicate on the "month" field.
func MonthHasPrefix(v string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldHasPrefix(FieldMonth, v))
}

// MonthHasSuffix applies the HasSuffix predicate on the "month" field.
func MonthHasSuffix(v string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldHasSuffix(FieldMonth, v))
}

// MonthEqualFold applies the EqualFold predicate on the "month" field.
func MonthEqualFold(v string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldEqualFold(FieldMonth, v))
}

// MonthContainsFold applies the ContainsFold predicate on the "month" field.
func MonthContainsFold(v string) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldContainsFold(FieldMonth, v))
}

// LimitUsdEQ applies the EQ predicate on the "limit_usd" field.
func LimitUsdEQ(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldEQ(FieldLimitUsd, v))
}

// LimitUsdNEQ applies the NEQ predicate on the "limit_usd" field.
func LimitUsdNEQ(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldNEQ(FieldLimitUsd, v))
}

// LimitUsdIn applies the In predicate on the "limit_usd" field.
func LimitUsdIn(vs ...float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldIn(FieldLimitUsd, vs...))
}

// LimitUsdNotIn applies the NotIn predicate on the "limit_usd" field.
func LimitUsdNotIn(vs ...float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldNotIn(FieldLimitUsd, vs...))
}

// LimitUsdGT applies the GT predicate on the "limit_usd" field.
func LimitUsdGT(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldGT(FieldLimitUsd, v))
}

// LimitUsdGTE applies the GTE predicate on the "limit_usd" field.
func LimitUsdGTE(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldGTE(FieldLimitUsd, v))
}

// LimitUsdLT applies the LT predicate on the "limit_usd" field.
func LimitUsdLT(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldLT(FieldLimitUsd, v))
}

// LimitUsdLTE applies the LTE predicate on the "limit_usd" field.
func LimitUsdLTE(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldLTE(FieldLimitUsd, v))
}

// SoftPctEQ applies the EQ predicate on the "soft_pct" field.
func SoftPctEQ(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldEQ(FieldSoftPct, v))
}

// SoftPctNEQ applies the NEQ predicate on the "soft_pct" field.
func SoftPctNEQ(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldNEQ(FieldSoftPct, v))
}

// SoftPctIn applies the In predicate on the "soft_pct" field.
func SoftPctIn(vs ...float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldIn(FieldSoftPct, vs...))
}

// SoftPctNotIn applies the NotIn predicate on the "soft_pct" field.
func SoftPctNotIn(vs ...float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldNotIn(FieldSoftPct, vs...))
}

// SoftPctGT applies the GT predicate on the "soft_pct" field.
func SoftPctGT(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldGT(FieldSoftPct, v))
}

// SoftPctGTE applies the GTE predicate on the "soft_pct" field.
func SoftPctGTE(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldGTE(FieldSoftPct, v))
}

// SoftPctLT applies the LT predicate on the "soft_pct" field.
func SoftPctLT(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldLT(FieldSoftPct, v))
}

// SoftPctLTE applies the LTE predicate on the "soft_pct" field.
func SoftPctLTE(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldLTE(FieldSoftPct, v))
}

// SpentUsdEQ applies the EQ predicate on the "spent_usd" field.
func SpentUsdEQ(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldEQ(FieldSpentUsd, v))
}

// SpentUsdNEQ applies the NEQ predicate on the "spent_usd" field.
func SpentUsdNEQ(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldNEQ(FieldSpentUsd, v))
}

// SpentUsdIn applies the In predicate on the "spent_usd" field.
func SpentUsdIn(vs ...float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldIn(FieldSpentUsd, vs...))
}

// SpentUsdNotIn applies the NotIn predicate on the "spent_usd" field.
func SpentUsdNotIn(vs ...float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldNotIn(FieldSpentUsd, vs...))
}

// SpentUsdGT applies the GT predicate on the "spent_usd" field.
func SpentUsdGT(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldGT(FieldSpentUsd, v))
}

// SpentUsdGTE applies the GTE predicate on the "spent_usd" field.
func SpentUsdGTE(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldGTE(FieldSpentUsd, v))
}

// SpentUsdLT applies the LT predicate on the "spent_usd" field.
func SpentUsdLT(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldLT(FieldSpentUsd, v))
}

// SpentUsdLTE applies the LTE predicate on the "spent_usd" field.
func SpentUsdLTE(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldLTE(FieldSpentUsd, v))
}

// ReservedUsdEQ applies the EQ predicate on the "reserved_usd" field.
func ReservedUsdEQ(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldEQ(FieldReservedUsd, v))
}

// ReservedUsdNEQ applies the NEQ predicate on the "reserved_usd" field.
func ReservedUsdNEQ(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldNEQ(FieldReservedUsd, v))
}

// ReservedUsdIn applies the In predicate on the "reserved_usd" field.
func ReservedUsdIn(vs ...float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldIn(FieldReservedUsd, vs...))
}

// ReservedUsdNotIn applies the NotIn predicate on the "reserved_usd" field.
func ReservedUsdNotIn(vs ...float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldNotIn(FieldReservedUsd, vs...))
}

// ReservedUsdGT applies the GT predicate on the "reserved_usd" field.
func ReservedUsdGT(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldGT(FieldReservedUsd, v))
}

// ReservedUsdGTE applies the GTE predicate on the "reserved_usd" field.
func ReservedUsdGTE(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldGTE(FieldReservedUsd, v))
}

// ReservedUsdLT applies the LT predicate on the "reserved_usd" field.
func ReservedUsdLT(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldLT(FieldReservedUsd, v))
}

// ReservedUsdLTE applies the LTE predicate on the "reserved_usd" field.
func ReservedUsdLTE(v float64) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldLTE(FieldReservedUsd, v))
}

// HardStopEQ applies the EQ predicate on the "hard_stop" field.
func HardStopEQ(v bool) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldEQ(FieldHardStop, v))
}

// HardStopNEQ applies the NEQ predicate on the "hard_stop" field.
func HardStopNEQ(v bool) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldNEQ(FieldHardStop, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BudgetPeriod) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BudgetPeriod) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BudgetPeriod) predicate.BudgetPeriod {
	return predicate.BudgetPeriod(sql.NotPredicates(p))
}
