// Code generated by ent, DO NOT EDIT.

package post

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/postflow-io/postflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Post {
	return predicate.Post(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Post {
	return predicate.Post(sql.FieldContainsFold(FieldID, id))
}

// CreatorID applies equality check predicate on the "creator_id" field. It's identical to CreatorIDEQ.
func CreatorID(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldCreatorID, v))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldAccountID, v))
}

// MediaRef applies equality check predicate on the "media_ref" field. It's identical to MediaRefEQ.
func MediaRef(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldMediaRef, v))
}

// Caption applies equality check predicate on the "caption" field. It's identical to CaptionEQ.
func Caption(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldCaption, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldContentHash, v))
}

// DedupeKey applies equality check predicate on the "dedupe_key" field. It's identical to DedupeKeyEQ.
func DedupeKey(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldDedupeKey, v))
}

// ScheduledAt applies equality check predicate on the "scheduled_at" field. It's identical to ScheduledAtEQ.
func ScheduledAt(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldScheduledAt, v))
}

// AttemptCount applies equality check predicate on the "attempt_count" field. It's identical to AttemptCountEQ.
func AttemptCount(v int) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldAttemptCount, v))
}

// NextRetryAt applies equality check predicate on the "next_retry_at" field. It's identical to NextRetryAtEQ.
func NextRetryAt(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldNextRetryAt, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldLastError, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldErrorKind, v))
}

// RemoteID applies equality check predicate on the "remote_id" field. It's identical to RemoteIDEQ.
func RemoteID(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldRemoteID, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldPodID, v))
}

// LastInteractionAt applies equality check predicate on the "last_interaction_at" field. It's identical to LastInteractionAtEQ.
func LastInteractionAt(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldLastInteractionAt, v))
}

// DispatchedAt applies equality check predicate on the "dispatched_at" field. It's identical to DispatchedAtEQ.
func DispatchedAt(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldDispatchedAt, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldPublishedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldUpdatedAt, v))
}

// CreatorIDEQ applies the EQ predicate on the "creator_id" field.
func CreatorIDEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldCreatorID, v))
}

// CreatorIDNEQ applies the NEQ predicate on the "creator_id" field.
func CreatorIDNEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldCreatorID, v))
}

// CreatorIDIn applies the In predicate on the "creator_id" field.
func CreatorIDIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldCreatorID, vs...))
}

// CreatorIDNotIn applies the NotIn predicate on the "creator_id" field.
func CreatorIDNotIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldCreatorID, vs...))
}

// CreatorIDGT applies the GT predicate on the "creator_id" field.
func CreatorIDGT(v string) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldCreatorID, v))
}

// CreatorIDGTE applies the GTE predicate on the "creator_id" field.
func CreatorIDGTE(v string) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldCreatorID, v))
}

// CreatorIDLT applies the LT predicate on the "creator_id" field.
func CreatorIDLT(v string) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldCreatorID, v))
}

// CreatorIDLTE applies the LTE predicate on the "creator_id" field.
func CreatorIDLTE(v string) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldCreatorID, v))
}

// CreatorIDContains applies the Contains predicate on the "creator_id" field.
func CreatorIDContains(v string) predicate.Post {
	return predicate.Post(sql.FieldContains(FieldCreatorID, v))
}

// CreatorIDHasPrefix applies the HasPrefix predicate on the "creator_id" field.
func CreatorIDHasPrefix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasPrefix(FieldCreatorID, v))
}

// CreatorIDHasSuffix applies the HasSuffix predicate on the "creator_id" field.
func CreatorIDHasSuffix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasSuffix(FieldCreatorID, v))
}

// CreatorIDEqualFold applies the EqualFold predicate on the "creator_id" field.
func CreatorIDEqualFold(v string) predicate.Post {
	return predicate.Post(sql.FieldEqualFold(FieldCreatorID, v))
}

// CreatorIDContainsFold applies the ContainsFold predicate on the "creator_id" field.
func CreatorIDContainsFold(v string) predicate.Post {
	return predicate.Post(sql.FieldContainsFold(FieldCreatorID, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v string) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v string) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v string) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v string) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldAccountID, v))
}

// AccountIDContains applies the Contains predicate on the "account_id" field.
func AccountIDContains(v string) predicate.Post {
	return predicate.Post(sql.FieldContains(FieldAccountID, v))
}

// AccountIDHasPrefix applies the HasPrefix predicate on the "account_id" field.
func AccountIDHasPrefix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasPrefix(FieldAccountID, v))
}

// AccountIDHasSuffix applies the HasSuffix predicate on the "account_id" field.
func AccountIDHasSuffix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasSuffix(FieldAccountID, v))
}

// AccountIDEqualFold applies the EqualFold predicate on the "account_id" field.
func AccountIDEqualFold(v string) predicate.Post {
	return predicate.Post(sql.FieldEqualFold(FieldAccountID, v))
}

// AccountIDContainsFold applies the ContainsFold predicate on the "account_id" field.
func AccountIDContainsFold(v string) predicate.Post {
	return predicate.Post(sql.FieldContainsFold(FieldAccountID, v))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v Platform) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v Platform) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...Platform) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...Platform) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldPlatform, vs...))
}

// MediaRefEQ applies the EQ predicate on the "media_ref" field.
func MediaRefEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldMediaRef, v))
}

// MediaRefNEQ applies the NEQ predicate on the "media_ref" field.
func MediaRefNEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldMediaRef, v))
}

// MediaRefIn applies the In predicate on the "media_ref" field.
func MediaRefIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldMediaRef, vs...))
}

// MediaRefNotIn applies the NotIn predicate on the "media_ref" field.
func MediaRefNotIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldMediaRef, vs...))
}

// MediaRefGT applies the GT predicate on the "media_ref" field.
func MediaRefGT(v string) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldMediaRef, v))
}

// MediaRefGTE applies the GTE predicate on the "media_ref" field.
func MediaRefGTE(v string) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldMediaRef, v))
}

// MediaRefLT applies the LT predicate on the "media_ref" field.
func MediaRefLT(v string) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldMediaRef, v))
}

// MediaRefLTE applies the LTE predicate on the "media_ref" field.
func MediaRefLTE(v string) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldMediaRef, v))
}

// MediaRefContains applies the Contains predicate on the "media_ref" field.
func MediaRefContains(v string) predicate.Post {
	return predicate.Post(sql.FieldContains(FieldMediaRef, v))
}

// MediaRefHasPrefix applies the HasPrefix predicate on the "media_ref" field.
func MediaRefHasPrefix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasPrefix(FieldMediaRef, v))
}

// MediaRefHasSuffix applies the HasSuffix predicate on the "media_ref" field.
func MediaRefHasSuffix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasSuffix(FieldMediaRef, v))
}

// MediaRefEqualFold applies the EqualFold predicate on the "media_ref" field.
func MediaRefEqualFold(v string) predicate.Post {
	return predicate.Post(sql.FieldEqualFold(FieldMediaRef, v))
}

// MediaRefContainsFold applies the ContainsFold predicate on the "media_ref" field.
func MediaRefContainsFold(v string) predicate.Post {
	return predicate.Post(sql.FieldContainsFold(FieldMediaRef, v))
}

// CaptionEQ applies the EQ predicate on the "caption" field.
func CaptionEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldCaption, v))
}

// CaptionNEQ applies the NEQ predicate on the "caption" field.
func CaptionNEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldCaption, v))
}

// CaptionIn applies the In predicate on the "caption" field.
func CaptionIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldCaption, vs...))
}

// CaptionNotIn applies the NotIn predicate on the "caption" field.
func CaptionNotIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldCaption, vs...))
}

// CaptionGT applies the GT predicate on the "caption" field.
func CaptionGT(v string) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldCaption, v))
}

// CaptionGTE applies the GTE predicate on the "caption" field.
func CaptionGTE(v string) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldCaption, v))
}

// CaptionLT applies the LT predicate on the "caption" field.
func CaptionLT(v string) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldCaption, v))
}

// CaptionLTE applies the LTE predicate on the "caption" field.
func CaptionLTE(v string) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldCaption, v))
}

// CaptionContains applies the Contains predicate on the "caption" field.
func CaptionContains(v string) predicate.Post {
	return predicate.Post(sql.FieldContains(FieldCaption, v))
}

// CaptionHasPrefix applies the HasPrefix predicate on the "caption" field.
func CaptionHasPrefix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasPrefix(FieldCaption, v))
}

// CaptionHasSuffix applies the HasSuffix predicate on the "caption" field.
func CaptionHasSuffix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasSuffix(FieldCaption, v))
}

// CaptionEqualFold applies the EqualFold predicate on the "caption" field.
func CaptionEqualFold(v string) predicate.Post {
	return predicate.Post(sql.FieldEqualFold(FieldCaption, v))
}

// CaptionContainsFold applies the ContainsFold predicate on the "caption" field.
func CaptionContainsFold(v string) predicate.Post {
	return predicate.Post(sql.FieldContainsFold(FieldCaption, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.Post {
	return predicate.Post(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.Post {
	return predicate.Post(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.Post {
	return predicate.Post(sql.FieldContainsFold(FieldContentHash, v))
}

// DedupeKeyEQ applies the EQ predicate on the "dedupe_key" field.
func DedupeKeyEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldDedupeKey, v))
}

// DedupeKeyNEQ applies the NEQ predicate on the "dedupe_key" field.
func DedupeKeyNEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldDedupeKey, v))
}

// DedupeKeyIn applies the In predicate on the "dedupe_key" field.
func DedupeKeyIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldDedupeKey, vs...))
}

// DedupeKeyNotIn applies the NotIn predicate on the "dedupe_key" field.
func DedupeKeyNotIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldDedupeKey, vs...))
}

// DedupeKeyGT applies the GT predicate on the "dedupe_key" field.
func DedupeKeyGT(v string) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldDedupeKey, v))
}

// DedupeKeyGTE applies the GTE predicate on the "dedupe_key" field.
func DedupeKeyGTE(v string) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldDedupeKey, v))
}

// DedupeKeyLT applies the LT predicate on the "dedupe_key" field.
func DedupeKeyLT(v string) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldDedupeKey, v))
}

// DedupeKeyLTE applies the LTE predicate on the "dedupe_key" field.
func DedupeKeyLTE(v string) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldDedupeKey, v))
}

// DedupeKeyContains applies the Contains predicate on the "dedupe_key" field.
func DedupeKeyContains(v string) predicate.Post {
	return predicate.Post(sql.FieldContains(FieldDedupeKey, v))
}

// DedupeKeyHasPrefix applies the HasPrefix predicate on the "dedupe_key" field.
func DedupeKeyHasPrefix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasPrefix(FieldDedupeKey, v))
}

// DedupeKeyHasSuffix applies the HasSuffix predicate on the "dedupe_key" field.
func DedupeKeyHasSuffix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasSuffix(FieldDedupeKey, v))
}

// DedupeKeyEqualFold applies the EqualFold predicate on the "dedupe_key" field.
func DedupeKeyEqualFold(v string) predicate.Post {
	return predicate.Post(sql.FieldEqualFold(FieldDedupeKey, v))
}

// DedupeKeyContainsFold applies the ContainsFold predicate on the "dedupe_key" field.
func DedupeKeyContainsFold(v string) predicate.Post {
	return predicate.Post(sql.FieldContainsFold(FieldDedupeKey, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldState, vs...))
}

// ScheduledAtEQ applies the EQ predicate on the "scheduled_at" field.
func ScheduledAtEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldScheduledAt, v))
}

// ScheduledAtNEQ applies the NEQ predicate on the "scheduled_at" field.
func ScheduledAtNEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldScheduledAt, v))
}

// ScheduledAtIn applies the In predicate on the "scheduled_at" field.
func ScheduledAtIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldScheduledAt, vs...))
}

// ScheduledAtNotIn applies the NotIn predicate on the "scheduled_at" field.
func ScheduledAtNotIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldScheduledAt, vs...))
}

// ScheduledAtGT applies the GT predicate on the "scheduled_at" field.
func ScheduledAtGT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldScheduledAt, v))
}

// ScheduledAtGTE applies the GTE predicate on the "scheduled_at" field.
func ScheduledAtGTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldScheduledAt, v))
}

// ScheduledAtLT applies the LT predicate on the "scheduled_at" field.
func ScheduledAtLT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldScheduledAt, v))
}

// ScheduledAtLTE applies the LTE predicate on the "scheduled_at" field.
func ScheduledAtLTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldScheduledAt, v))
}

// ScheduledAtIsNil applies the IsNil predicate on the "scheduled_at" field.
func ScheduledAtIsNil() predicate.Post {
	return predicate.Post(sql.FieldIsNull(FieldScheduledAt))
}

// ScheduledAtNotNil applies the NotNil predicate on the "scheduled_at" field.
func ScheduledAtNotNil() predicate.Post {
	return predicate.Post(sql.FieldNotNull(FieldScheduledAt))
}

// AttemptCountEQ applies the EQ predicate on the "attempt_count" field.
func AttemptCountEQ(v int) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldAttemptCount, v))
}

// AttemptCountNEQ applies the NEQ predicate on the "attempt_count" field.
func AttemptCountNEQ(v int) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldAttemptCount, v))
}

// AttemptCountIn applies the In predicate on the "attempt_count" field.
func AttemptCountIn(vs ...int) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldAttemptCount, vs...))
}

// AttemptCountNotIn applies the NotIn predicate on the "attempt_count" field.
func AttemptCountNotIn(vs ...int) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldAttemptCount, vs...))
}

// AttemptCountGT applies the GT predicate on the "attempt_count" field.
func AttemptCountGT(v int) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldAttemptCount, v))
}

// AttemptCountGTE applies the GTE predicate on the "attempt_count" field.
func AttemptCountGTE(v int) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldAttemptCount, v))
}

// AttemptCountLT applies the LT predicate on the "attempt_count" field.
func AttemptCountLT(v int) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldAttemptCount, v))
}

// AttemptCountLTE applies the LTE predicate on the "attempt_count" field.
func AttemptCountLTE(v int) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldAttemptCount, v))
}

// NextRetryAtEQ applies the EQ predicate on the "next_retry_at" field.
func NextRetryAtEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldNextRetryAt, v))
}

// NextRetryAtNEQ applies the NEQ predicate on the "next_retry_at" field.
func NextRetryAtNEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldNextRetryAt, v))
}

// NextRetryAtIn applies the In predicate on the "next_retry_at" field.
func NextRetryAtIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldNextRetryAt, vs...))
}

// NextRetryAtNotIn applies the NotIn predicate on the "next_retry_at" field.
func NextRetryAtNotIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldNextRetryAt, vs...))
}

// NextRetryAtGT applies the GT predicate on the "next_retry_at" field.
func NextRetryAtGT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldNextRetryAt, v))
}

// NextRetryAtGTE applies the GTE predicate on the "next_retry_at" field.
func NextRetryAtGTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldNextRetryAt, v))
}

// NextRetryAtLT applies the LT predicate on the "next_retry_at" field.
func NextRetryAtLT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldNextRetryAt, v))
}

// NextRetryAtLTE applies the LTE predicate on the "next_retry_at" field.
func NextRetryAtLTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldNextRetryAt, v))
}

// NextRetryAtIsNil applies the IsNil predicate on the "next_retry_at" field.
func NextRetryAtIsNil() predicate.Post {
	return predicate.Post(sql.FieldIsNull(FieldNextRetryAt))
}

// NextRetryAtNotNil applies the NotNil predicate on the "next_retry_at" field.
func NextRetryAtNotNil() predicate.Post {
	return predicate.Post(sql.FieldNotNull(FieldNextRetryAt))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.Post {
	return predicate.Post(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.Post {
	return predicate.Post(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.Post {
	return predicate.Post(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.Post {
	return predicate.Post(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.Post {
	return predicate.Post(sql.FieldContainsFold(FieldLastError, v))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.Post {
	return predicate.Post(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindIsNil applies the IsNil predicate on the "error_kind" field.
func ErrorKindIsNil() predicate.Post {
	return predicate.Post(sql.FieldIsNull(FieldErrorKind))
}

// ErrorKindNotNil applies the NotNil predicate on the "error_kind" field.
func ErrorKindNotNil() predicate.Post {
	return predicate.Post(sql.FieldNotNull(FieldErrorKind))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.Post {
	return predicate.Post(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.Post {
	return predicate.Post(sql.FieldContainsFold(FieldErrorKind, v))
}

// RemoteIDEQ applies the EQ predicate on the "remote_id" field.
func RemoteIDEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldRemoteID, v))
}

// RemoteIDNEQ applies the NEQ predicate on the "remote_id" field.
func RemoteIDNEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldRemoteID, v))
}

// RemoteIDIn applies the In predicate on the "remote_id" field.
func RemoteIDIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldRemoteID, vs...))
}

// RemoteIDNotIn applies the NotIn predicate on the "remote_id" field.
func RemoteIDNotIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldRemoteID, vs...))
}

// RemoteIDGT applies the GT predicate on the "remote_id" field.
func RemoteIDGT(v string) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldRemoteID, v))
}

// RemoteIDGTE applies the GTE predicate on the "remote_id" field.
func RemoteIDGTE(v string) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldRemoteID, v))
}

// RemoteIDLT applies the LT predicate on the "remote_id" field.
func RemoteIDLT(v string) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldRemoteID, v))
}

// RemoteIDLTE applies the LTE predicate on the "remote_id" field.
func RemoteIDLTE(v string) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldRemoteID, v))
}

// RemoteIDContains applies the Contains predicate on the "remote_id" field.
func RemoteIDContains(v string) predicate.Post {
	return predicate.Post(sql.FieldContains(FieldRemoteID, v))
}

// RemoteIDHasPrefix applies the HasPrefix predicate on the "remote_id" field.
func RemoteIDHasPrefix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasPrefix(FieldRemoteID, v))
}

// RemoteIDHasSuffix applies the HasSuffix predicate on the "remote_id" field.
func RemoteIDHasSuffix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasSuffix(FieldRemoteID, v))
}

// RemoteIDIsNil applies the IsNil predicate on the "remote_id" field.
func RemoteIDIsNil() predicate.Post {
	return predicate.Post(sql.FieldIsNull(FieldRemoteID))
}

// RemoteIDNotNil applies the NotNil predicate on the "remote_id" field.
func RemoteIDNotNil() predicate.Post {
	return predicate.Post(sql.FieldNotNull(FieldRemoteID))
}

// RemoteIDEqualFold applies the EqualFold predicate on the "remote_id" field.
func RemoteIDEqualFold(v string) predicate.Post {
	return predicate.Post(sql.FieldEqualFold(FieldRemoteID, v))
}

// RemoteIDContainsFold applies the ContainsFold predicate on the "remote_id" field.
func RemoteIDContainsFold(v string) predicate.Post {
	return predicate.Post(sql.FieldContainsFold(FieldRemoteID, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Post {
	return predicate.Post(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Post {
	return predicate.Post(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Post {
	return predicate.Post(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Post {
	return predicate.Post(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Post {
	return predicate.Post(sql.FieldContainsFold(FieldPodID, v))
}

// LastInteractionAtEQ applies the EQ predicate on the "last_interaction_at" field.
func LastInteractionAtEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtNEQ applies the NEQ predicate on the "last_interaction_at" field.
func LastInteractionAtNEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtIn applies the In predicate on the "last_interaction_at" field.
func LastInteractionAtIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtNotIn applies the NotIn predicate on the "last_interaction_at" field.
func LastInteractionAtNotIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtGT applies the GT predicate on the "last_interaction_at" field.
func LastInteractionAtGT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldLastInteractionAt, v))
}

// LastInteractionAtGTE applies the GTE predicate on the "last_interaction_at" field.
func LastInteractionAtGTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldLastInteractionAt, v))
}

// LastInteractionAtLT applies the LT predicate on the "last_interaction_at" field.
func LastInteractionAtLT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldLastInteractionAt, v))
}

// LastInteractionAtLTE applies the LTE predicate on the "last_interaction_at" field.
func LastInteractionAtLTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldLastInteractionAt, v))
}

// LastInteractionAtIsNil applies the IsNil predicate on the "last_interaction_at" field.
func LastInteractionAtIsNil() predicate.Post {
	return predicate.Post(sql.FieldIsNull(FieldLastInteractionAt))
}

// LastInteractionAtNotNil applies the NotNil predicate on the "last_interaction_at" field.
func LastInteractionAtNotNil() predicate.Post {
	return predicate.Post(sql.FieldNotNull(FieldLastInteractionAt))
}

// DispatchedAtEQ applies the EQ predicate on the "dispatched_at" field.
func DispatchedAtEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldDispatchedAt, v))
}

// DispatchedAtNEQ applies the NEQ predicate on the "dispatched_at" field.
func DispatchedAtNEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldDispatchedAt, v))
}

// DispatchedAtIn applies the In predicate on the "dispatched_at" field.
func DispatchedAtIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldDispatchedAt, vs...))
}

// DispatchedAtNotIn applies the NotIn predicate on the "dispatched_at" field.
func DispatchedAtNotIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldDispatchedAt, vs...))
}

// DispatchedAtGT applies the GT predicate on the "dispatched_at" field.
func DispatchedAtGT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldDispatchedAt, v))
}

// DispatchedAtGTE applies the GTE predicate on the "dispatched_at" field.
func DispatchedAtGTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldDispatchedAt, v))
}

// DispatchedAtLT applies the LT predicate on the "dispatched_at" field.
func DispatchedAtLT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldDispatchedAt, v))
}

// DispatchedAtLTE applies the LTE predicate on the "dispatched_at" field.
func DispatchedAtLTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldDispatchedAt, v))
}

// DispatchedAtIsNil applies the IsNil predicate on the "dispatched_at" field.
func DispatchedAtIsNil() predicate.Post {
	return predicate.Post(sql.FieldIsNull(FieldDispatchedAt))
}

// DispatchedAtNotNil applies the NotNil predicate on the "dispatched_at" field.
func DispatchedAtNotNil() predicate.Post {
	return predicate.Post(sql.FieldNotNull(FieldDispatchedAt))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldPublishedAt, v))
}

// PublishedAtIsNil applies the IsNil predicate on the "published_at" field.
func PublishedAtIsNil() predicate.Post {
	return predicate.Post(sql.FieldIsNull(FieldPublishedAt))
}

// PublishedAtNotNil applies the NotNil predicate on the "published_at" field.
func PublishedAtNotNil() predicate.Post {
	return predicate.Post(sql.FieldNotNull(FieldPublishedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Post) predicate.Post {
	return predicate.Post(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Post) predicate.Post {
	return predicate.Post(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Post) predicate.Post {
	return predicate.Post(sql.NotPredicates(p))
}
