// Code generated by ent, DO NOT EDIT.

package webhookevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/postflow-io/postflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldContainsFold(FieldID, id))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldProvider, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldEventID, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldEventType, v))
}

// Payload applies equality check predicate on the "payload" field. It's identical to PayloadEQ.
func Payload(v []byte) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldPayload, v))
}

// Signature applies equality check predicate on the "signature" field. It's identical to SignatureEQ.
func Signature(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldSignature, v))
}

// SignatureVerified applies equality check predicate on the "signature_verified" field. It's identical to SignatureVerifiedEQ.
func SignatureVerified(v bool) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldSignatureVerified, v))
}

// AttemptCount applies equality check predicate on the "attempt_count" field. It's identical to AttemptCountEQ.
func AttemptCount(v int) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldAttemptCount, v))
}

// PostID applies equality check predicate on the "post_id" field. It's identical to PostIDEQ.
func PostID(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldPostID, v))
}

// ReceivedAt applies equality check predicate on the "received_at" field. It's identical to ReceivedAtEQ.
func ReceivedAt(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldReceivedAt, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldProcessedAt, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldContainsFold(FieldProvider, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldContainsFold(FieldEventID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldContainsFold(FieldEventType, v))
}

// PayloadEQ applies the EQ predicate on the "payload" field.
func PayloadEQ(v []byte) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldPayload, v))
}

// PayloadNEQ applies the NEQ predicate on the "payload" field.
func PayloadNEQ(v []byte) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldPayload, v))
}

// PayloadIn applies the In predicate on the "payload" field.
func PayloadIn(vs ...[]byte) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIn(FieldPayload, vs...))
}

// PayloadNotIn applies the NotIn predicate on the "payload" field.
func PayloadNotIn(vs ...[]byte) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotIn(FieldPayload, vs...))
}

// PayloadGT applies the GT predicate on the "payload" field.
func PayloadGT(v []byte) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGT(FieldPayload, v))
}

// PayloadGTE applies the GTE predicate on the "payload" field.
func PayloadGTE(v []byte) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGTE(FieldPayload, v))
}

// PayloadLT applies the LT predicate on the "payload" field.
func PayloadLT(v []byte) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLT(FieldPayload, v))
}

// PayloadLTE applies the LTE predicate on the "payload" field.
func PayloadLTE(v []byte) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLTE(FieldPayload, v))
}

// SignatureEQ applies the EQ predicate on the "signature" field.
func SignatureEQ(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldSignature, v))
}

// SignatureNEQ applies the NEQ predicate on the "signature" field.
func SignatureNEQ(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldSignature, v))
}

// SignatureIn applies the In predicate on the "signature" field.
func SignatureIn(vs ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIn(FieldSignature, vs...))
}

// SignatureNotIn applies the NotIn predicate on the "signature" field.
func SignatureNotIn(vs ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotIn(FieldSignature, vs...))
}

// SignatureGT applies the GT predicate on the "signature" field.
func SignatureGT(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGT(FieldSignature, v))
}

// SignatureGTE applies the GTE predicate on the "signature" field.
func SignatureGTE(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGTE(FieldSignature, v))
}

// SignatureLT applies the LT predicate on the "signature" field.
func SignatureLT(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLT(FieldSignature, v))
}

// SignatureLTE applies the LTE predicate on the "signature" field.
func SignatureLTE(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLTE(FieldSignature, v))
}

// SignatureContains applies the Contains predicate on the "signature" field.
func SignatureContains(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldContains(FieldSignature, v))
}

// SignatureHasPrefix applies the HasPrefix predicate on the "signature" field.
func SignatureHasPrefix(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldHasPrefix(FieldSignature, v))
}

// SignatureHasSuffix applies the HasSuffix predicate on the "signature" field.
func SignatureHasSuffix(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldHasSuffix(FieldSignature, v))
}

// SignatureEqualFold applies the EqualFold predicate on the "signature" field.
func SignatureEqualFold(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEqualFold(FieldSignature, v))
}

// SignatureContainsFold applies the ContainsFold predicate on the "signature" field.
func SignatureContainsFold(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldContainsFold(FieldSignature, v))
}

// SignatureVerifiedEQ applies the EQ predicate on the "signature_verified" field.
func SignatureVerifiedEQ(v bool) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldSignatureVerified, v))
}

// SignatureVerifiedNEQ applies the NEQ predicate on the "signature_verified" field.
func SignatureVerifiedNEQ(v bool) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldSignatureVerified, v))
}

// ProcessingStatusEQ applies the EQ predicate on the "processing_status" field.
func ProcessingStatusEQ(v ProcessingStatus) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldProcessingStatus, v))
}

// ProcessingStatusNEQ applies the NEQ predicate on the "processing_status" field.
func ProcessingStatusNEQ(v ProcessingStatus) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldProcessingStatus, v))
}

// ProcessingStatusIn applies the In predicate on the "processing_status" field.
func ProcessingStatusIn(vs ...ProcessingStatus) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusNotIn applies the NotIn predicate on the "processing_status" field.
func ProcessingStatusNotIn(vs ...ProcessingStatus) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotIn(FieldProcessingStatus, vs...))
}

// AttemptCountEQ applies the EQ predicate on the "attempt_count" field.
func AttemptCountEQ(v int) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldAttemptCount, v))
}

// AttemptCountNEQ applies the NEQ predicate on the "attempt_count" field.
func AttemptCountNEQ(v int) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldAttemptCount, v))
}

// AttemptCountIn applies the In predicate on the "attempt_count" field.
func AttemptCountIn(vs ...int) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIn(FieldAttemptCount, vs...))
}

// AttemptCountNotIn applies the NotIn predicate on the "attempt_count" field.
func AttemptCountNotIn(vs ...int) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotIn(FieldAttemptCount, vs...))
}

// AttemptCountGT applies the GT predicate on the "attempt_count" field.
func AttemptCountGT(v int) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGT(FieldAttemptCount, v))
}

// AttemptCountGTE applies the GTE predicate on the "attempt_count" field.
func AttemptCountGTE(v int) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGTE(FieldAttemptCount, v))
}

// AttemptCountLT applies the LT predicate on the "attempt_count" field.
func AttemptCountLT(v int) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLT(FieldAttemptCount, v))
}

// AttemptCountLTE applies the LTE predicate on the "attempt_count" field.
func AttemptCountLTE(v int) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLTE(FieldAttemptCount, v))
}

// PostIDEQ applies the EQ predicate on the "post_id" field.
func PostIDEQ(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldPostID, v))
}

// PostIDNEQ applies the NEQ predicate on the "post_id" field.
func PostIDNEQ(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldPostID, v))
}

// PostIDIn applies the In predicate on the "post_id" field.
func PostIDIn(vs ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIn(FieldPostID, vs...))
}

// PostIDNotIn applies the NotIn predicate on the "post_id" field.
func PostIDNotIn(vs ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotIn(FieldPostID, vs...))
}

// PostIDGT applies the GT predicate on the "post_id" field.
func PostIDGT(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGT(FieldPostID, v))
}

// PostIDGTE applies the GTE predicate on the "post_id" field.
func PostIDGTE(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGTE(FieldPostID, v))
}

// PostIDLT applies the LT predicate on the "post_id" field.
func PostIDLT(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLT(FieldPostID, v))
}

// PostIDLTE applies the LTE predicate on the "post_id" field.
func PostIDLTE(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLTE(FieldPostID, v))
}

// PostIDContains applies the Contains predicate on the "post_id" field.
func PostIDContains(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldContains(FieldPostID, v))
}

// PostIDHasPrefix applies the HasPrefix predicate on the "post_id" field.
func PostIDHasPrefix(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldHasPrefix(FieldPostID, v))
}

// PostIDHasSuffix applies the HasSuffix predicate on the "post_id" field.
func PostIDHasSuffix(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldHasSuffix(FieldPostID, v))
}

// PostIDIsNil applies the IsNil predicate on the "post_id" field.
func PostIDIsNil() predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIsNull(FieldPostID))
}

// PostIDNotNil applies the NotNil predicate on the "post_id" field.
func PostIDNotNil() predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotNull(FieldPostID))
}

// PostIDEqualFold applies the EqualFold predicate on the "post_id" field.
func PostIDEqualFold(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEqualFold(FieldPostID, v))
}

// PostIDContainsFold applies the ContainsFold predicate on the "post_id" field.
func PostIDContainsFold(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldContainsFold(FieldPostID, v))
}

// ReceivedAtEQ applies the EQ predicate on the "received_at" field.
func ReceivedAtEQ(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldReceivedAt, v))
}

// ReceivedAtNEQ applies the NEQ predicate on the "received_at" field.
func ReceivedAtNEQ(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldReceivedAt, v))
}

// ReceivedAtIn applies the In predicate on the "received_at" field.
func ReceivedAtIn(vs ...time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIn(FieldReceivedAt, vs...))
}

// ReceivedAtNotIn applies the NotIn predicate on the "received_at" field.
func ReceivedAtNotIn(vs ...time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotIn(FieldReceivedAt, vs...))
}

// ReceivedAtGT applies the GT predicate on the "received_at" field.
func ReceivedAtGT(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGT(FieldReceivedAt, v))
}

// ReceivedAtGTE applies the GTE predicate on the "received_at" field.
func ReceivedAtGTE(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGTE(FieldReceivedAt, v))
}

// ReceivedAtLT applies the LT predicate on the "received_at" field.
func ReceivedAtLT(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLT(FieldReceivedAt, v))
}

// ReceivedAtLTE applies the LTE predicate on the "received_at" field.
func ReceivedAtLTE(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLTE(FieldReceivedAt, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotNull(FieldProcessedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WebhookEvent) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WebhookEvent) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WebhookEvent) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.NotPredicates(p))
}
