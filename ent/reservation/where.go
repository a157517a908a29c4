// Code generated by ent, DO NOT EDIT.

package reservation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/postflow-io/postflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContainsFold(FieldID, id))
}

// CreatorID applies equality check predicate on the "creator_id" field. It's identical to CreatorIDEQ.
func CreatorID(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldCreatorID, v))
}

// Month applies equality check predicate on the "month" field. It's identical to MonthEQ.
func Month(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldMonth, v))
}

// AmountUsd applies equality check predicate on the "amount_usd" field. It's identical to AmountUsdEQ.
func AmountUsd(v float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldAmountUsd, v))
}

// CommittedUsd applies equality check predicate on the "committed_usd" field. It's identical to CommittedUsdEQ.
func CommittedUsd(v float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldCommittedUsd, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldExpiresAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldUpdatedAt, v))
}

// CreatorIDEQ applies the EQ predicate on the "creator_id" field.
func CreatorIDEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldCreatorID, v))
}

// CreatorIDNEQ applies the NEQ predicate on the "creator_id" field.
func CreatorIDNEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldCreatorID, v))
}

// CreatorIDIn applies the In predicate on the "creator_id" field.
func CreatorIDIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldCreatorID, vs...))
}

// CreatorIDNotIn applies the NotIn predicate on the "creator_id" field.
func CreatorIDNotIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldCreatorID, vs...))
}

// CreatorIDGT applies the GT predicate on the "creator_id" field.
func CreatorIDGT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldCreatorID, v))
}

// CreatorIDGTE applies the GTE predicate on the "creator_id" field.
func CreatorIDGTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldCreatorID, v))
}

// CreatorIDLT applies the LT predicate on the "creator_id" field.
func CreatorIDLT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldCreatorID, v))
}

// CreatorIDLTE applies the LTE predicate on the "creator_id" field.
func CreatorIDLTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldCreatorID, v))
}

// CreatorIDContains applies the Contains predicate on the "creator_id" field.
func CreatorIDContains(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContains(FieldCreatorID, v))
}

// CreatorIDHasPrefix applies the HasPrefix predicate on the "creator_id" field.
func CreatorIDHasPrefix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasPrefix(FieldCreatorID, v))
}

// CreatorIDHasSuffix applies the HasSuffix predicate on the "creator_id" field.
func CreatorIDHasSuffix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasSuffix(FieldCreatorID, v))
}

// CreatorIDEqualFold applies the EqualFold predicate on the "creator_id" field.
func CreatorIDEqualFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEqualFold(FieldCreatorID, v))
}

// CreatorIDContainsFold applies the ContainsFold predicate on the "creator_id" field.
func CreatorIDContainsFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContainsFold(FieldCreatorID, v))
}

// MonthEQ applies the EQ predicate on the "month" field.
func MonthEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldMonth, v))
}

// MonthNEQ applies the NEQ predicate on the "month" field.
func MonthNEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldMonth, v))
}

// MonthIn applies the In predicate on the "month" field.
func MonthIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldMonth, vs...))
}

// MonthNotIn applies the NotIn predicate on the "month" field.
func MonthNotIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldMonth, vs...))
}

// MonthGT applies the GT predicate on the "month" field.
func MonthGT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldMonth, v))
}

// MonthGTE applies the GTE predicate on the "month" field.
func MonthGTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldMonth, v))
}

// MonthLT applies the LT predicate on the "month" field.
func MonthLT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldMonth, v))
}

// MonthLTE applies the LTE predicate on the "month" field.
func MonthLTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldMonth, v))
}

// MonthContains applies the Contains predicate on the "month" field.
func MonthContains(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContains(FieldMonth, v))
}

// MonthHasPrefix applies the HasPrefix predicate on the "month" field.
func MonthHasPrefix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasPrefix(FieldMonth, v))
}

// MonthHasSuffix applies the HasSuffix predicate on the "month" field.
func MonthHasSuffix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasSuffix(FieldMonth, v))
}

// MonthEqualFold applies the EqualFold predicate on the "month" field.
func MonthEqualFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEqualFold(FieldMonth, v))
}

// MonthContainsFold applies the ContainsFold predicate on the "month" field.
func MonthContainsFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContainsFold(FieldMonth, v))
}

// AmountUsdEQ applies the EQ predicate on the "amount_usd" field.
func AmountUsdEQ(v float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldAmountUsd, v))
}

// AmountUsdNEQ applies the NEQ predicate on the "amount_usd" field.
func AmountUsdNEQ(v float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldAmountUsd, v))
}

// AmountUsdIn applies the In predicate on the "amount_usd" field.
func AmountUsdIn(vs ...float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldAmountUsd, vs...))
}

// AmountUsdNotIn applies the NotIn predicate on the "amount_usd" field.
func AmountUsdNotIn(vs ...float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldAmountUsd, vs...))
}

// AmountUsdGT applies the GT predicate on the "amount_usd" field.
func AmountUsdGT(v float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldAmountUsd, v))
}

// AmountUsdGTE applies the GTE predicate on the "amount_usd" field.
func AmountUsdGTE(v float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldAmountUsd, v))
}

// AmountUsdLT applies the LT predicate on the "amount_usd" field.
func AmountUsdLT(v float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldAmountUsd, v))
}

// AmountUsdLTE applies the LTE predicate on the "amount_usd" field.
func AmountUsdLTE(v float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldAmountUsd, v))
}

// CommittedUsdEQ applies the EQ predicate on the "committed_usd" field.
func CommittedUsdEQ(v float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldCommittedUsd, v))
}

// CommittedUsdNEQ applies the NEQ predicate on the "committed_usd" field.
func CommittedUsdNEQ(v float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldCommittedUsd, v))
}

// CommittedUsdIn applies the In predicate on the "committed_usd" field.
func CommittedUsdIn(vs ...float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldCommittedUsd, vs...))
}

// CommittedUsdNotIn applies the NotIn predicate on the "committed_usd" field.
func CommittedUsdNotIn(vs ...float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldCommittedUsd, vs...))
}

// CommittedUsdGT applies the GT predicate on the "committed_usd" field.
func CommittedUsdGT(v float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldCommittedUsd, v))
}

// CommittedUsdGTE applies the GTE predicate on the "committed_usd" field.
func CommittedUsdGTE(v float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldCommittedUsd, v))
}

// CommittedUsdLT applies the LT predicate on the "committed_usd" field.
func CommittedUsdLT(v float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldCommittedUsd, v))
}

// CommittedUsdLTE applies the LTE predicate on the "committed_usd" field.
func CommittedUsdLTE(v float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldCommittedUsd, v))
}

// CommittedUsdIsNil applies the IsNil predicate on the "committed_usd" field.
func CommittedUsdIsNil() predicate.Reservation {
	return predicate.Reservation(sql.FieldIsNull(FieldCommittedUsd))
}

// CommittedUsdNotNil applies the NotNil predicate on the "committed_usd" field.
func CommittedUsdNotNil() predicate.Reservation {
	return predicate.Reservation(sql.FieldNotNull(FieldCommittedUsd))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldState, vs...))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldExpiresAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Reservation) predicate.Reservation {
	return predicate.Reservation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Reservation) predicate.Reservation {
	return predicate.Reservation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Reservation) predicate.Reservation {
	return predicate.Reservation(sql.NotPredicates(p))
}
