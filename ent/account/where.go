// Code generated by ent, DO NOT EDIT.

package account

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/postflow-io/postflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldID, id))
}

// CreatorID applies equality check predicate on the "creator_id" field. It's identical to CreatorIDEQ.
func CreatorID(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldCreatorID, v))
}

// PlatformAccountID applies equality check predicate on the "platform_account_id" field. It's identical to PlatformAccountIDEQ.
func PlatformAccountID(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldPlatformAccountID, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldDisplayName, v))
}

// AccessTokenCiphertext applies equality check predicate on the "access_token_ciphertext" field. It's identical to AccessTokenCiphertextEQ.
func AccessTokenCiphertext(v []byte) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldAccessTokenCiphertext, v))
}

// RefreshTokenCiphertext applies equality check predicate on the "refresh_token_ciphertext" field. It's identical to RefreshTokenCiphertextEQ.
func RefreshTokenCiphertext(v []byte) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldRefreshTokenCiphertext, v))
}

// TokenExpiresAt applies equality check predicate on the "token_expires_at" field. It's identical to TokenExpiresAtEQ.
func TokenExpiresAt(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldTokenExpiresAt, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldPriority, v))
}

// LastScheduledAt applies equality check predicate on the "last_scheduled_at" field. It's identical to LastScheduledAtEQ.
func LastScheduledAt(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldLastScheduledAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldUpdatedAt, v))
}

// CreatorIDEQ applies the EQ predicate on the "creator_id" field.
func CreatorIDEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldCreatorID, v))
}

// CreatorIDNEQ applies the NEQ predicate on the "creator_id" field.
func CreatorIDNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldCreatorID, v))
}

// CreatorIDIn applies the In predicate on the "creator_id" field.
func CreatorIDIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldCreatorID, vs...))
}

// CreatorIDNotIn applies the NotIn predicate on the "creator_id" field.
func CreatorIDNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldCreatorID, vs...))
}

// CreatorIDGT applies the GT predicate on the "creator_id" field.
func CreatorIDGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldCreatorID, v))
}

// CreatorIDGTE applies the GTE predicate on the "creator_id" field.
func CreatorIDGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldCreatorID, v))
}

// CreatorIDLT applies the LT predicate on the "creator_id" field.
func CreatorIDLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldCreatorID, v))
}

// CreatorIDLTE applies the LTE predicate on the "creator_id" field.
func CreatorIDLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldCreatorID, v))
}

// CreatorIDContains applies the Contains predicate on the "creator_id" field.
func CreatorIDContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldCreatorID, v))
}

// CreatorIDHasPrefix applies the HasPrefix predicate on the "creator_id" field.
func CreatorIDHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldCreatorID, v))
}

// CreatorIDHasSuffix applies the HasSuffix predicate on the "creator_id" field.
func CreatorIDHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldCreatorID, v))
}

// CreatorIDEqualFold applies the EqualFold predicate on the "creator_id" field.
func CreatorIDEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldCreatorID, v))
}

// CreatorIDContainsFold applies the ContainsFold predicate on the "creator_id" field.
func CreatorIDContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldCreatorID, v))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v Platform) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v Platform) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...Platform) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...Platform) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldPlatform, vs...))
}

// PlatformAccountIDEQ applies the EQ predicate on the "platform_account_id" field.
func PlatformAccountIDEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldPlatformAccountID, v))
}

// PlatformAccountIDNEQ applies the NEQ predicate on the "platform_account_id" field.
func PlatformAccountIDNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldPlatformAccountID, v))
}

// PlatformAccountIDIn applies the In predicate on the "platform_account_id" field.
func PlatformAccountIDIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldPlatformAccountID, vs...))
}

// PlatformAccountIDNotIn applies the NotIn predicate on the "platform_account_id" field.
func PlatformAccountIDNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldPlatformAccountID, vs...))
}

// PlatformAccountIDGT applies the GT predicate on the "platform_account_id" field.
func PlatformAccountIDGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldPlatformAccountID, v))
}

// PlatformAccountIDGTE applies the GTE predicate on the "platform_account_id" field.
func PlatformAccountIDGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldPlatformAccountID, v))
}

// PlatformAccountIDLT applies the LT predicate on the "platform_account_id" field.
func PlatformAccountIDLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldPlatformAccountID, v))
}

// PlatformAccountIDLTE applies the LTE predicate on the "platform_account_id" field.
func PlatformAccountIDLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldPlatformAccountID, v))
}

// PlatformAccountIDContains applies the Contains predicate on the "platform_account_id" field.
func PlatformAccountIDContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldPlatformAccountID, v))
}

// PlatformAccountIDHasPrefix applies the HasPrefix predicate on the "platform_account_id" field.
func PlatformAccountIDHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldPlatformAccountID, v))
}

// PlatformAccountIDHasSuffix applies the HasSuffix predicate on the "platform_account_id" field.
func PlatformAccountIDHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldPlatformAccountID, v))
}

// PlatformAccountIDEqualFold applies the EqualFold predicate on the "platform_account_id" field.
func PlatformAccountIDEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldPlatformAccountID, v))
}

// PlatformAccountIDContainsFold applies the ContainsFold predicate on the "platform_account_id" field.
func PlatformAccountIDContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldPlatformAccountID, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameIsNil applies the IsNil predicate on the "display_name" field.
func DisplayNameIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldDisplayName))
}

// DisplayNameNotNil applies the NotNil predicate on the "display_name" field.
func DisplayNameNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldDisplayName))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldDisplayName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldStatus, vs...))
}

// AccessTokenCiphertextEQ applies the EQ predicate on the "access_token_ciphertext" field.
func AccessTokenCiphertextEQ(v []byte) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldAccessTokenCiphertext, v))
}

// AccessTokenCiphertextNEQ applies the NEQ predicate on the "access_token_ciphertext" field.
func AccessTokenCiphertextNEQ(v []byte) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldAccessTokenCiphertext, v))
}

// AccessTokenCiphertextIn applies the In predicate on the "access_token_ciphertext" field.
func AccessTokenCiphertextIn(vs ...[]byte) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldAccessTokenCiphertext, vs...))
}

// AccessTokenCiphertextNotIn applies the NotIn predicate on the "access_token_ciphertext" field.
func AccessTokenCiphertextNotIn(vs ...[]byte) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldAccessTokenCiphertext, vs...))
}

// AccessTokenCiphertextGT applies the GT predicate on the "access_token_ciphertext" field.
func AccessTokenCiphertextGT(v []byte) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldAccessTokenCiphertext, v))
}

// AccessTokenCiphertextGTE applies the GTE predicate on the "access_token_ciphertext" field.
func AccessTokenCiphertextGTE(v []byte) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldAccessTokenCiphertext, v))
}

// AccessTokenCiphertextLT applies the LT predicate on the "access_token_ciphertext" field.
func AccessTokenCiphertextLT(v []byte) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldAccessTokenCiphertext, v))
}

// AccessTokenCiphertextLTE applies the LTE predicate on the "access_token_ciphertext" field.
func AccessTokenCiphertextLTE(v []byte) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldAccessTokenCiphertext, v))
}

// RefreshTokenCiphertextEQ applies the EQ predicate on the "refresh_token_ciphertext" field.
func RefreshTokenCiphertextEQ(v []byte) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldRefreshTokenCiphertext, v))
}

// RefreshTokenCiphertextNEQ applies the NEQ predicate on the "refresh_token_ciphertext" field.
func RefreshTokenCiphertextNEQ(v []byte) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldRefreshTokenCiphertext, v))
}

// RefreshTokenCiphertextIn applies the In predicate on the "refresh_token_ciphertext" field.
func RefreshTokenCiphertextIn(vs ...[]byte) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldRefreshTokenCiphertext, vs...))
}

// RefreshTokenCiphertextNotIn applies the NotIn predicate on the "refresh_token_ciphertext" field.
func RefreshTokenCiphertextNotIn(vs ...[]byte) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldRefreshTokenCiphertext, vs...))
}

// RefreshTokenCiphertextGT applies the GT predicate on the "refresh_token_ciphertext" field.
func RefreshTokenCiphertextGT(v []byte) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldRefreshTokenCiphertext, v))
}

// RefreshTokenCiphertextGTE applies the GTE predicate on the "refresh_token_ciphertext" field.
func RefreshTokenCiphertextGTE(v []byte) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldRefreshTokenCiphertext, v))
}

// RefreshTokenCiphertextLT applies the LT predicate on the "refresh_token_ciphertext" field.
func RefreshTokenCiphertextLT(v []byte) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldRefreshTokenCiphertext, v))
}

// RefreshTokenCiphertextLTE applies the LTE predicate on the "refresh_token_ciphertext" field.
func RefreshTokenCiphertextLTE(v []byte) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldRefreshTokenCiphertext, v))
}

// RefreshTokenCiphertextIsNil applies the IsNil predicate on the "refresh_token_ciphertext" field.
func RefreshTokenCiphertextIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldRefreshTokenCiphertext))
}

// RefreshTokenCiphertextNotNil applies the NotNil predicate on the "refresh_token_ciphertext" field.
func RefreshTokenCiphertextNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldRefreshTokenCiphertext))
}

// TokenExpiresAtEQ applies the EQ predicate on the "token_expires_at" field.
func TokenExpiresAtEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldTokenExpiresAt, v))
}

// TokenExpiresAtNEQ applies the NEQ predicate on the "token_expires_at" field.
func TokenExpiresAtNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldTokenExpiresAt, v))
}

// TokenExpiresAtIn applies the In predicate on the "token_expires_at" field.
func TokenExpiresAtIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldTokenExpiresAt, vs...))
}

// TokenExpiresAtNotIn applies the NotIn predicate on the "token_expires_at" field.
func TokenExpiresAtNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldTokenExpiresAt, vs...))
}

// TokenExpiresAtGT applies the GT predicate on the "token_expires_at" field.
func TokenExpiresAtGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldTokenExpiresAt, v))
}

// TokenExpiresAtGTE applies the GTE predicate on the "token_expires_at" field.
func TokenExpiresAtGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldTokenExpiresAt, v))
}

// TokenExpiresAtLT applies the LT predicate on the "token_expires_at" field.
func TokenExpiresAtLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldTokenExpiresAt, v))
}

// TokenExpiresAtLTE applies the LTE predicate on the "token_expires_at" field.
func TokenExpiresAtLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldTokenExpiresAt, v))
}

// TokenExpiresAtIsNil applies the IsNil predicate on the "token_expires_at" field.
func TokenExpiresAtIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldTokenExpiresAt))
}

// TokenExpiresAtNotNil applies the NotNil predicate on the "token_expires_at" field.
func TokenExpiresAtNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldTokenExpiresAt))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldPriority, v))
}

// LastScheduledAtEQ applies the EQ predicate on the "last_scheduled_at" field.
func LastScheduledAtEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldLastScheduledAt, v))
}

// LastScheduledAtNEQ applies the NEQ predicate on the "last_scheduled_at" field.
func LastScheduledAtNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldLastScheduledAt, v))
}

// LastScheduledAtIn applies the In predicate on the "last_scheduled_at" field.
func LastScheduledAtIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldLastScheduledAt, vs...))
}

// LastScheduledAtNotIn applies the NotIn predicate on the "last_scheduled_at" field.
func LastScheduledAtNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldLastScheduledAt, vs...))
}

// LastScheduledAtGT applies the GT predicate on the "last_scheduled_at" field.
func LastScheduledAtGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldLastScheduledAt, v))
}

// LastScheduledAtGTE applies the GTE predicate on the "last_scheduled_at" field.
func LastScheduledAtGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldLastScheduledAt, v))
}

// LastScheduledAtLT applies the LT predicate on the "last_scheduled_at" field.
func LastScheduledAtLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldLastScheduledAt, v))
}

// LastScheduledAtLTE applies the LTE predicate on the "last_scheduled_at" field.
func LastScheduledAtLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldLastScheduledAt, v))
}

// LastScheduledAtIsNil applies the IsNil predicate on the "last_scheduled_at" field.
func LastScheduledAtIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldLastScheduledAt))
}

// LastScheduledAtNotNil applies the NotNil predicate on the "last_scheduled_at" field.
func LastScheduledAtNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldLastScheduledAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Account) predicate.Account {
	return predicate.Account(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Account) predicate.Account {
	return predicate.Account(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Account) predicate.Account {
	return predicate.Account(sql.NotPredicates(p))
}
