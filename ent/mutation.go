// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/postflow-io/postflow/ent/account"
	"github.com/postflow-io/postflow/ent/budgetperiod"
	"github.com/postflow-io/postflow/ent/event"
	"github.com/postflow-io/postflow/ent/post"
	"github.com/postflow-io/postflow/ent/predicate"
	"github.com/postflow-io/postflow/ent/ratelimitbucket"
	"github.com/postflow-io/postflow/ent/reservation"
	"github.com/postflow-io/postflow/ent/trustedmapping"
	"github.com/postflow-io/postflow/ent/webhookevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAccount         = "Account"
	TypeBudgetPeriod    = "BudgetPeriod"
	TypeEvent           = "Event"
	TypePost            = "Post"
	TypeRateLimitBucket = "RateLimitBucket"
	TypeReservation     = "Reservation"
	TypeTrustedMapping  = "TrustedMapping"
	TypeWebhookEvent    = "WebhookEvent"
)

// AccountMutation represents an operation that mutates the Account nodes in the graph.
type AccountMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	creator_id               *string
	platform                 *account.Platform
	platform_account_id      *string
	display_name             *string
	status                   *account.Status
	access_token_ciphertext  *[]byte
	refresh_token_ciphertext *[]byte
	token_expires_at         *time.Time
	priority                 *int
	addpriority              *int
	last_scheduled_at        *time.Time
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*Account, error)
	predicates               []predicate.Account
}

var _ ent.Mutation = (*AccountMutation)(nil)

// accountOption allows management of the mutation configuration using functional options.
type accountOption func(*AccountMutation)

// newAccountMutation creates new mutation for the Account entity.
func newAccountMutation(c config, op Op, opts ...accountOption) *AccountMutation {
	m := &AccountMutation{
		config:        c,
		op:            op,
		typ:           TypeAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAccountID sets the ID field of the mutation.
func withAccountID(id string) accountOption {
	return func(m *AccountMutation) {
		var (
			err   error
			once  sync.Once
			value *Account
		)
		m.oldValue = func(ctx context.Context) (*Account, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Account.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAccount sets the old Account of the mutation.
func withAccount(node *Account) accountOption {
	return func(m *AccountMutation) {
		m.oldValue = func(context.Context) (*Account, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Account entities.
func (m *AccountMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AccountMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AccountMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Account.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatorID sets the "creator_id" field.
func (m *AccountMutation) SetCreatorID(s string) {
	m.creator_id = &s
}

// CreatorID returns the value of the "creator_id" field in the mutation.
func (m *AccountMutation) CreatorID() (r string, exists bool) {
	v := m.creator_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatorID returns the old "creator_id" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldCreatorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatorID: %w", err)
	}
	return oldValue.CreatorID, nil
}

// ResetCreatorID resets all changes to the "creator_id" field.
func (m *AccountMutation) ResetCreatorID() {
	m.creator_id = nil
}

// SetPlatform sets the "platform" field.
func (m *AccountMutation) SetPlatform(a account.Platform) {
	m.platform = &a
}

// Platform returns the value of the "platform" field in the mutation.
func (m *AccountMutation) Platform() (r account.Platform, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldPlatform(ctx context.Context) (v account.Platform, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *AccountMutation) ResetPlatform() {
	m.platform = nil
}

// SetPlatformAccountID sets the "platform_account_id" field.
func (m *AccountMutation) SetPlatformAccountID(s string) {
	m.platform_account_id = &s
}

// PlatformAccountID returns the value of the "platform_account_id" field in the mutation.
func (m *AccountMutation) PlatformAccountID() (r string, exists bool) {
	v := m.platform_account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformAccountID returns the old "platform_account_id" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldPlatformAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformAccountID: %w", err)
	}
	return oldValue.PlatformAccountID, nil
}

// ResetPlatformAccountID resets all changes to the "platform_account_id" field.
func (m *AccountMutation) ResetPlatformAccountID() {
	m.platform_account_id = nil
}

// SetDisplayName sets the "display_name" field.
func (m *AccountMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *AccountMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *AccountMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[account.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *AccountMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[account.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *AccountMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, account.FieldDisplayName)
}

// SetStatus sets the "status" field.
func (m *AccountMutation) SetStatus(a account.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AccountMutation) Status() (r account.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldStatus(ctx context.Context) (v account.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AccountMutation) ResetStatus() {
	m.status = nil
}

// SetAccessTokenCiphertext sets the "access_token_ciphertext" field.
func (m *AccountMutation) SetAccessTokenCiphertext(b []byte) {
	m.access_token_ciphertext = &b
}

// AccessTokenCiphertext returns the value of the "access_token_ciphertext" field in the mutation.
func (m *AccountMutation) AccessTokenCiphertext() (r []byte, exists bool) {
	v := m.access_token_ciphertext
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessTokenCiphertext returns the old "access_token_ciphertext" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldAccessTokenCiphertext(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessTokenCiphertext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessTokenCiphertext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessTokenCiphertext: %w", err)
	}
	return oldValue.AccessTokenCiphertext, nil
}

// ResetAccessTokenCiphertext resets all changes to the "access_token_ciphertext" field.
func (m *AccountMutation) ResetAccessTokenCiphertext() {
	m.access_token_ciphertext = nil
}

// SetRefreshTokenCiphertext sets the "refresh_token_ciphertext" field.
func (m *AccountMutation) SetRefreshTokenCiphertext(b []byte) {
	m.refresh_token_ciphertext = &b
}

// RefreshTokenCiphertext returns the value of the "refresh_token_ciphertext" field in the mutation.
func (m *AccountMutation) RefreshTokenCiphertext() (r []byte, exists bool) {
	v := m.refresh_token_ciphertext
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshTokenCiphertext returns the old "refresh_token_ciphertext" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldRefreshTokenCiphertext(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshTokenCiphertext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshTokenCiphertext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshTokenCiphertext: %w", err)
	}
	return oldValue.RefreshTokenCiphertext, nil
}

// ClearRefreshTokenCiphertext clears the value of the "refresh_token_ciphertext" field.
func (m *AccountMutation) ClearRefreshTokenCiphertext() {
	m.refresh_token_ciphertext = nil
	m.clearedFields[account.FieldRefreshTokenCiphertext] = struct{}{}
}

// RefreshTokenCiphertextCleared returns if the "refresh_token_ciphertext" field was cleared in this mutation.
func (m *AccountMutation) RefreshTokenCiphertextCleared() bool {
	_, ok := m.clearedFields[account.FieldRefreshTokenCiphertext]
	return ok
}

// ResetRefreshTokenCiphertext resets all changes to the "refresh_token_ciphertext" field.
func (m *AccountMutation) ResetRefreshTokenCiphertext() {
	m.refresh_token_ciphertext = nil
	delete(m.clearedFields, account.FieldRefreshTokenCiphertext)
}

// SetTokenExpiresAt sets the "token_expires_at" field.
func (m *AccountMutation) SetTokenExpiresAt(t time.Time) {
	m.token_expires_at = &t
}

// TokenExpiresAt returns the value of the "token_expires_at" field in the mutation.
func (m *AccountMutation) TokenExpiresAt() (r time.Time, exists bool) {
	v := m.token_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenExpiresAt returns the old "token_expires_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldTokenExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenExpiresAt: %w", err)
	}
	return oldValue.TokenExpiresAt, nil
}

// ClearTokenExpiresAt clears the value of the "token_expires_at" field.
func (m *AccountMutation) ClearTokenExpiresAt() {
	m.token_expires_at = nil
	m.clearedFields[account.FieldTokenExpiresAt] = struct{}{}
}

// TokenExpiresAtCleared returns if the "token_expires_at" field was cleared in this mutation.
func (m *AccountMutation) TokenExpiresAtCleared() bool {
	_, ok := m.clearedFields[account.FieldTokenExpiresAt]
	return ok
}

// ResetTokenExpiresAt resets all changes to the "token_expires_at" field.
func (m *AccountMutation) ResetTokenExpiresAt() {
	m.token_expires_at = nil
	delete(m.clearedFields, account.FieldTokenExpiresAt)
}

// SetPriority sets the "priority" field.
func (m *AccountMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *AccountMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *AccountMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *AccountMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *AccountMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetLastScheduledAt sets the "last_scheduled_at" field.
func (m *AccountMutation) SetLastScheduledAt(t time.Time) {
	m.last_scheduled_at = &t
}

// LastScheduledAt returns the value of the "last_scheduled_at" field in the mutation.
func (m *AccountMutation) LastScheduledAt() (r time.Time, exists bool) {
	v := m.last_scheduled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastScheduledAt returns the old "last_scheduled_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldLastScheduledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastScheduledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastScheduledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastScheduledAt: %w", err)
	}
	return oldValue.LastScheduledAt, nil
}

// ClearLastScheduledAt clears the value of the "last_scheduled_at" field.
func (m *AccountMutation) ClearLastScheduledAt() {
	m.last_scheduled_at = nil
	m.clearedFields[account.FieldLastScheduledAt] = struct{}{}
}

// LastScheduledAtCleared returns if the "last_scheduled_at" field was cleared in this mutation.
func (m *AccountMutation) LastScheduledAtCleared() bool {
	_, ok := m.clearedFields[account.FieldLastScheduledAt]
	return ok
}

// ResetLastScheduledAt resets all changes to the "last_scheduled_at" field.
func (m *AccountMutation) ResetLastScheduledAt() {
	m.last_scheduled_at = nil
	delete(m.clearedFields, account.FieldLastScheduledAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *AccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AccountMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AccountMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AccountMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AccountMutation builder.
func (m *AccountMutation) Where(ps ...predicate.Account) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Account, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Account).
func (m *AccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AccountMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.creator_id != nil {
		fields = append(fields, account.FieldCreatorID)
	}
	if m.platform != nil {
		fields = append(fields, account.FieldPlatform)
	}
	if m.platform_account_id != nil {
		fields = append(fields, account.FieldPlatformAccountID)
	}
	if m.display_name != nil {
		fields = append(fields, account.FieldDisplayName)
	}
	if m.status != nil {
		fields = append(fields, account.FieldStatus)
	}
	if m.access_token_ciphertext != nil {
		fields = append(fields, account.FieldAccessTokenCiphertext)
	}
	if m.refresh_token_ciphertext != nil {
		fields = append(fields, account.FieldRefreshTokenCiphertext)
	}
	if m.token_expires_at != nil {
		fields = append(fields, account.FieldTokenExpiresAt)
	}
	if m.priority != nil {
		fields = append(fields, account.FieldPriority)
	}
	if m.last_scheduled_at != nil {
		fields = append(fields, account.FieldLastScheduledAt)
	}
	if m.created_at != nil {
		fields = append(fields, account.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, account.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case account.FieldCreatorID:
		return m.CreatorID()
	case account.FieldPlatform:
		return m.Platform()
	case account.FieldPlatformAccountID:
		return m.PlatformAccountID()
	case account.FieldDisplayName:
		return m.DisplayName()
	case account.FieldStatus:
		return m.Status()
	case account.FieldAccessTokenCiphertext:
		return m.AccessTokenCiphertext()
	case account.FieldRefreshTokenCiphertext:
		return m.RefreshTokenCiphertext()
	case account.FieldTokenExpiresAt:
		return m.TokenExpiresAt()
	case account.FieldPriority:
		return m.Priority()
	case account.FieldLastScheduledAt:
		return m.LastScheduledAt()
	case account.FieldCreatedAt:
		return m.CreatedAt()
	case account.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case account.FieldCreatorID:
		return m.OldCreatorID(ctx)
	case account.FieldPlatform:
		return m.OldPlatform(ctx)
	case account.FieldPlatformAccountID:
		return m.OldPlatformAccountID(ctx)
	case account.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case account.FieldStatus:
		return m.OldStatus(ctx)
	case account.FieldAccessTokenCiphertext:
		return m.OldAccessTokenCiphertext(ctx)
	case account.FieldRefreshTokenCiphertext:
		return m.OldRefreshTokenCiphertext(ctx)
	case account.FieldTokenExpiresAt:
		return m.OldTokenExpiresAt(ctx)
	case account.FieldPriority:
		return m.OldPriority(ctx)
	case account.FieldLastScheduledAt:
		return m.OldLastScheduledAt(ctx)
	case account.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case account.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Account field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case account.FieldCreatorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatorID(v)
		return nil
	case account.FieldPlatform:
		v, ok := value.(account.Platform)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case account.FieldPlatformAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformAccountID(v)
		return nil
	case account.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case account.FieldStatus:
		v, ok := value.(account.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case account.FieldAccessTokenCiphertext:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessTokenCiphertext(v)
		return nil
	case account.FieldRefreshTokenCiphertext:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshTokenCiphertext(v)
		return nil
	case account.FieldTokenExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenExpiresAt(v)
		return nil
	case account.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case account.FieldLastScheduledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastScheduledAt(v)
		return nil
	case account.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case account.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AccountMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, account.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AccountMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case account.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	case account.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown Account numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AccountMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(account.FieldDisplayName) {
		fields = append(fields, account.FieldDisplayName)
	}
	if m.FieldCleared(account.FieldRefreshTokenCiphertext) {
		fields = append(fields, account.FieldRefreshTokenCiphertext)
	}
	if m.FieldCleared(account.FieldTokenExpiresAt) {
		fields = append(fields, account.FieldTokenExpiresAt)
	}
	if m.FieldCleared(account.FieldLastScheduledAt) {
		fields = append(fields, account.FieldLastScheduledAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AccountMutation) ClearField(name string) error {
	switch name {
	case account.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	case account.FieldRefreshTokenCiphertext:
		m.ClearRefreshTokenCiphertext()
		return nil
	case account.FieldTokenExpiresAt:
		m.ClearTokenExpiresAt()
		return nil
	case account.FieldLastScheduledAt:
		m.ClearLastScheduledAt()
		return nil
	}
	return fmt.Errorf("unknown Account nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AccountMutation) ResetField(name string) error {
	switch name {
	case account.FieldCreatorID:
		m.ResetCreatorID()
		return nil
	case account.FieldPlatform:
		m.ResetPlatform()
		return nil
	case account.FieldPlatformAccountID:
		m.ResetPlatformAccountID()
		return nil
	case account.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case account.FieldStatus:
		m.ResetStatus()
		return nil
	case account.FieldAccessTokenCiphertext:
		m.ResetAccessTokenCiphertext()
		return nil
	case account.FieldRefreshTokenCiphertext:
		m.ResetRefreshTokenCiphertext()
		return nil
	case account.FieldTokenExpiresAt:
		m.ResetTokenExpiresAt()
		return nil
	case account.FieldPriority:
		m.ResetPriority()
		return nil
	case account.FieldLastScheduledAt:
		m.ResetLastScheduledAt()
		return nil
	case account.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case account.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AccountMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AccountMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AccountMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AccountMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Account unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AccountMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Account edge %s", name)
}

// BudgetPeriodMutation represents an operation that mutates the BudgetPeriod nodes in the graph.
type BudgetPeriodMutation struct {
	config
	op              Op
	typ             string
	id              *string
	creator_id      *string
	month           *string
	limit_usd       *float64
	addlimit_usd    *float64
	soft_pct        *float64
	addsoft_pct     *float64
	spent_usd       *float64
	addspent_usd    *float64
	reserved_usd    *float64
	addreserved_usd *float64
	hard_stop       *bool
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*BudgetPeriod, error)
	predicates      []predicate.BudgetPeriod
}

var _ ent.Mutation = (*BudgetPeriodMutation)(nil)

// budgetperiodOption allows management of the mutation configuration using functional options.
type budgetperiodOption func(*BudgetPeriodMutation)

// newBudgetPeriodMutation creates new mutation for the BudgetPeriod entity.
func newBudgetPeriodMutation(c config, op Op, opts ...budgetperiodOption) *BudgetPeriodMutation {
	m := &BudgetPeriodMutation{
		config:        c,
		op:            op,
		typ:           TypeBudgetPeriod,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBudgetPeriodID sets the ID field of the mutation.
func withBudgetPeriodID(id string) budgetperiodOption {
	return func(m *BudgetPeriodMutation) {
		var (
			err   error
			once  sync.Once
			value *BudgetPeriod
		)
		m.oldValue = func(ctx context.Context) (*BudgetPeriod, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BudgetPeriod.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBudgetPeriod sets the old BudgetPeriod of the mutation.
func withBudgetPeriod(node *BudgetPeriod) budgetperiodOption {
	return func(m *BudgetPeriodMutation) {
		m.oldValue = func(context.Context) (*BudgetPeriod, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BudgetPeriodMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BudgetPeriodMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BudgetPeriod entities.
func (m *BudgetPeriodMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BudgetPeriodMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BudgetPeriodMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BudgetPeriod.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatorID sets the "creator_id" field.
func (m *BudgetPeriodMutation) SetCreatorID(s string) {
	m.creator_id = &s
}

// CreatorID returns the value of the "creator_id" field in the mutation.
func (m *BudgetPeriodMutation) CreatorID() (r string, exists bool) {
	v := m.creator_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatorID returns the old "creator_id" field's value of the BudgetPeriod entity.
// If the BudgetPeriod object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetPeriodMutation) OldCreatorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatorID: %w", err)
	}
	return oldValue.CreatorID, nil
}

// ResetCreatorID resets all changes to the "creator_id" field.
func (m *BudgetPeriodMutation) ResetCreatorID() {
	m.creator_id = nil
}

// SetMonth sets the "month" field.
func (m *BudgetPeriodMutation) SetMonth(s string) {
	m.month = &s
}

// Month returns the value of the "month" field in the mutation.
func (m *BudgetPeriodMutation) Month() (r string, exists bool) {
	v := m.month
	if v == nil {
		return
	}
	return *v, true
}

// OldMonth returns the old "month" field's value of the BudgetPeriod entity.
// If the BudgetPeriod object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetPeriodMutation) OldMonth(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonth: %w", err)
	}
	return oldValue.Month, nil
}

// ResetMonth resets all changes to the "month" field.
func (m *BudgetPeriodMutation) ResetMonth() {
	m.month = nil
}

// SetLimitUsd sets the "limit_usd" field.
func (m *BudgetPeriodMutation) SetLimitUsd(f float64) {
	m.limit_usd = &f
	m.addlimit_usd = nil
}

// LimitUsd returns the value of the "limit_usd" field in the mutation.
func (m *BudgetPeriodMutation) LimitUsd() (r float64, exists bool) {
	v := m.limit_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldLimitUsd returns the old "limit_usd" field's value of the BudgetPeriod entity.
// If the BudgetPeriod object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetPeriodMutation) OldLimitUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLimitUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLimitUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLimitUsd: %w", err)
	}
	return oldValue.LimitUsd, nil
}

// AddLimitUsd adds f to the "limit_usd" field.
func (m *BudgetPeriodMutation) AddLimitUsd(f float64) {
	if m.addlimit_usd != nil {
		*m.addlimit_usd += f
	} else {
		m.addlimit_usd = &f
	}
}

// AddedLimitUsd returns the value that was added to the "limit_usd" field in this mutation.
func (m *BudgetPeriodMutation) AddedLimitUsd() (r float64, exists bool) {
	v := m.addlimit_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetLimitUsd resets all changes to the "limit_usd" field.
func (m *BudgetPeriodMutation) ResetLimitUsd() {
	m.limit_usd = nil
	m.addlimit_usd = nil
}

// SetSoftPct sets the "soft_pct" field.
func (m *BudgetPeriodMutation) SetSoftPct(f float64) {
	m.soft_pct = &f
	m.addsoft_pct = nil
}

// SoftPct returns the value of the "soft_pct" field in the mutation.
func (m *BudgetPeriodMutation) SoftPct() (r float64, exists bool) {
	v := m.soft_pct
	if v == nil {
		return
	}
	return *v, true
}

// OldSoftPct returns the old "soft_pct" field's value of the BudgetPeriod entity.
// If the BudgetPeriod object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetPeriodMutation) OldSoftPct(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSoftPct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSoftPct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSoftPct: %w", err)
	}
	return oldValue.SoftPct, nil
}

// AddSoftPct adds f to the "soft_pct" field.
func (m *BudgetPeriodMutation) AddSoftPct(f float64) {
	if m.addsoft_pct != nil {
		*m.addsoft_pct += f
	} else {
		m.addsoft_pct = &f
	}
}

// AddedSoftPct returns the value that was added to the "soft_pct" field in this mutation.
func (m *BudgetPeriodMutation) AddedSoftPct() (r float64, exists bool) {
	v := m.addsoft_pct
	if v == nil {
		return
	}
	return *v, true
}

// ResetSoftPct resets all changes to the "soft_pct" field.
func (m *BudgetPeriodMutation) ResetSoftPct() {
	m.soft_pct = nil
	m.addsoft_pct = nil
}

// SetSpentUsd sets the "spent_usd" field.
func (m *BudgetPeriodMutation) SetSpentUsd(f float64) {
	m.spent_usd = &f
	m.addspent_usd = nil
}

// SpentUsd returns the value of the "spent_usd" field in the mutation.
func (m *BudgetPeriodMutation) SpentUsd() (r float64, exists bool) {
	v := m.spent_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldSpentUsd returns the old "spent_usd" field's value of the BudgetPeriod entity.
// If the BudgetPeriod object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetPeriodMutation) OldSpentUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpentUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpentUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpentUsd: %w", err)
	}
	return oldValue.SpentUsd, nil
}

// AddSpentUsd adds f to the "spent_usd" field.
func (m *BudgetPeriodMutation) AddSpentUsd(f float64) {
	if m.addspent_usd != nil {
		*m.addspent_usd += f
	} else {
		m.addspent_usd = &f
	}
}

// AddedSpentUsd returns the value that was added to the "spent_usd" field in this mutation.
func (m *BudgetPeriodMutation) AddedSpentUsd() (r float64, exists bool) {
	v := m.addspent_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetSpentUsd resets all changes to the "spent_usd" field.
func (m *BudgetPeriodMutation) ResetSpentUsd() {
	m.spent_usd = nil
	m.addspent_usd = nil
}

// SetReservedUsd sets the "reserved_usd" field.
func (m *BudgetPeriodMutation) SetReservedUsd(f float64) {
	m.reserved_usd = &f
	m.addreserved_usd = nil
}

// ReservedUsd returns the value of the "reserved_usd" field in the mutation.
func (m *BudgetPeriodMutation) ReservedUsd() (r float64, exists bool) {
	v := m.reserved_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldReservedUsd returns the old "reserved_usd" field's value of the BudgetPeriod entity.
// If the BudgetPeriod object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetPeriodMutation) OldReservedUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReservedUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReservedUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReservedUsd: %w", err)
	}
	return oldValue.ReservedUsd, nil
}

// AddReservedUsd adds f to the "reserved_usd" field.
func (m *BudgetPeriodMutation) AddReservedUsd(f float64) {
	if m.addreserved_usd != nil {
		*m.addreserved_usd += f
	} else {
		m.addreserved_usd = &f
	}
}

// AddedReservedUsd returns the value that was added to the "reserved_usd" field in this mutation.
func (m *BudgetPeriodMutation) AddedReservedUsd() (r float64, exists bool) {
	v := m.addreserved_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetReservedUsd resets all changes to the "reserved_usd" field.
func (m *BudgetPeriodMutation) ResetReservedUsd() {
	m.reserved_usd = nil
	m.addreserved_usd = nil
}

// SetHardStop sets the "hard_stop" field.
func (m *BudgetPeriodMutation) SetHardStop(b bool) {
	m.hard_stop = &b
}

// HardStop returns the value of the "hard_stop" field in the mutation.
func (m *BudgetPeriodMutation) HardStop() (r bool, exists bool) {
	v := m.hard_stop
	if v == nil {
		return
	}
	return *v, true
}

// OldHardStop returns the old "hard_stop" field's value of the BudgetPeriod entity.
// If the BudgetPeriod object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetPeriodMutation) OldHardStop(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHardStop is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHardStop requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHardStop: %w", err)
	}
	return oldValue.HardStop, nil
}

// ResetHardStop resets all changes to the "hard_stop" field.
func (m *BudgetPeriodMutation) ResetHardStop() {
	m.hard_stop = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BudgetPeriodMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BudgetPeriodMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BudgetPeriod entity.
// If the BudgetPeriod object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetPeriodMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BudgetPeriodMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BudgetPeriodMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BudgetPeriodMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BudgetPeriod entity.
// If the BudgetPeriod object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetPeriodMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BudgetPeriodMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the BudgetPeriodMutation builder.
func (m *BudgetPeriodMutation) Where(ps ...predicate.BudgetPeriod) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BudgetPeriodMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BudgetPeriodMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BudgetPeriod, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BudgetPeriodMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BudgetPeriodMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BudgetPeriod).
func (m *BudgetPeriodMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BudgetPeriodMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.creator_id != nil {
		fields = append(fields, budgetperiod.FieldCreatorID)
	}
	if m.month != nil {
		fields = append(fields, budgetperiod.FieldMonth)
	}
	if m.limit_usd != nil {
		fields = append(fields, budgetperiod.FieldLimitUsd)
	}
	if m.soft_pct != nil {
		fields = append(fields, budgetperiod.FieldSoftPct)
	}
	if m.spent_usd != nil {
		fields = append(fields, budgetperiod.FieldSpentUsd)
	}
	if m.reserved_usd != nil {
		fields = append(fields, budgetperiod.FieldReservedUsd)
	}
	if m.hard_stop != nil {
		fields = append(fields, budgetperiod.FieldHardStop)
	}
	if m.created_at != nil {
		fields = append(fields, budgetperiod.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, budgetperiod.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BudgetPeriodMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case budgetperiod.FieldCreatorID:
		return m.CreatorID()
	case budgetperiod.FieldMonth:
		return m.Month()
	case budgetperiod.FieldLimitUsd:
		return m.LimitUsd()
	case budgetperiod.FieldSoftPct:
		return m.SoftPct()
	case budgetperiod.FieldSpentUsd:
		return m.SpentUsd()
	case budgetperiod.FieldReservedUsd:
		return m.ReservedUsd()
	case budgetperiod.FieldHardStop:
		return m.HardStop()
	case budgetperiod.FieldCreatedAt:
		return m.CreatedAt()
	case budgetperiod.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BudgetPeriodMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case budgetperiod.FieldCreatorID:
		return m.OldCreatorID(ctx)
	case budgetperiod.FieldMonth:
		return m.OldMonth(ctx)
	case budgetperiod.FieldLimitUsd:
		return m.OldLimitUsd(ctx)
	case budgetperiod.FieldSoftPct:
		return m.OldSoftPct(ctx)
	case budgetperiod.FieldSpentUsd:
		return m.OldSpentUsd(ctx)
	case budgetperiod.FieldReservedUsd:
		return m.OldReservedUsd(ctx)
	case budgetperiod.FieldHardStop:
		return m.OldHardStop(ctx)
	case budgetperiod.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case budgetperiod.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BudgetPeriod field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BudgetPeriodMutation) SetField(name string, value ent.Value) error {
	switch name {
	case budgetperiod.FieldCreatorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatorID(v)
		return nil
	case budgetperiod.FieldMonth:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonth(v)
		return nil
	case budgetperiod.FieldLimitUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLimitUsd(v)
		return nil
	case budgetperiod.FieldSoftPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSoftPct(v)
		return nil
	case budgetperiod.FieldSpentUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpentUsd(v)
		return nil
	case budgetperiod.FieldReservedUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReservedUsd(v)
		return nil
	case budgetperiod.FieldHardStop:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHardStop(v)
		return nil
	case budgetperiod.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case budgetperiod.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BudgetPeriod field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BudgetPeriodMutation) AddedFields() []string {
	var fields []string
	if m.addlimit_usd != nil {
		fields = append(fields, budgetperiod.FieldLimitUsd)
	}
	if m.addsoft_pct != nil {
		fields = append(fields, budgetperiod.FieldSoftPct)
	}
	if m.addspent_usd != nil {
		fields = append(fields, budgetperiod.FieldSpentUsd)
	}
	if m.addreserved_usd != nil {
		fields = append(fields, budgetperiod.FieldReservedUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BudgetPeriodMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case budgetperiod.FieldLimitUsd:
		return m.AddedLimitUsd()
	case budgetperiod.FieldSoftPct:
		return m.AddedSoftPct()
	case budgetperiod.FieldSpentUsd:
		return m.AddedSpentUsd()
	case budgetperiod.FieldReservedUsd:
		return m.AddedReservedUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BudgetPeriodMutation) AddField(name string, value ent.Value) error {
	switch name {
	case budgetperiod.FieldLimitUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLimitUsd(v)
		return nil
	case budgetperiod.FieldSoftPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSoftPct(v)
		return nil
	case budgetperiod.FieldSpentUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpentUsd(v)
		return nil
	case budgetperiod.FieldReservedUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReservedUsd(v)
		return nil
	}
	return fmt.Errorf("unknown BudgetPeriod numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BudgetPeriodMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BudgetPeriodMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BudgetPeriodMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BudgetPeriod nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BudgetPeriodMutation) ResetField(name string) error {
	switch name {
	case budgetperiod.FieldCreatorID:
		m.ResetCreatorID()
		return nil
	case budgetperiod.FieldMonth:
		m.ResetMonth()
		return nil
	case budgetperiod.FieldLimitUsd:
		m.ResetLimitUsd()
		return nil
	case budgetperiod.FieldSoftPct:
		m.ResetSoftPct()
		return nil
	case budgetperiod.FieldSpentUsd:
		m.ResetSpentUsd()
		return nil
	case budgetperiod.FieldReservedUsd:
		m.ResetReservedUsd()
		return nil
	case budgetperiod.FieldHardStop:
		m.ResetHardStop()
		return nil
	case budgetperiod.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case budgetperiod.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BudgetPeriod field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BudgetPeriodMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BudgetPeriodMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BudgetPeriodMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BudgetPeriodMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BudgetPeriodMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BudgetPeriodMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BudgetPeriodMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BudgetPeriod unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BudgetPeriodMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BudgetPeriod edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	post_id       *string
	channel       *string
	payload       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPostID sets the "post_id" field.
func (m *EventMutation) SetPostID(s string) {
	m.post_id = &s
}

// PostID returns the value of the "post_id" field in the mutation.
func (m *EventMutation) PostID() (r string, exists bool) {
	v := m.post_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPostID returns the old "post_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPostID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostID: %w", err)
	}
	return oldValue.PostID, nil
}

// ClearPostID clears the value of the "post_id" field.
func (m *EventMutation) ClearPostID() {
	m.post_id = nil
	m.clearedFields[event.FieldPostID] = struct{}{}
}

// PostIDCleared returns if the "post_id" field was cleared in this mutation.
func (m *EventMutation) PostIDCleared() bool {
	_, ok := m.clearedFields[event.FieldPostID]
	return ok
}

// ResetPostID resets all changes to the "post_id" field.
func (m *EventMutation) ResetPostID() {
	m.post_id = nil
	delete(m.clearedFields, event.FieldPostID)
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(s string) {
	m.payload = &s
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r string, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.post_id != nil {
		fields = append(fields, event.FieldPostID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldPostID:
		return m.PostID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldPostID:
		return m.OldPostID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldPostID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldPostID) {
		fields = append(fields, event.FieldPostID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldPostID:
		m.ClearPostID()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldPostID:
		m.ResetPostID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// PostMutation represents an operation that mutates the Post nodes in the graph.
type PostMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	creator_id          *string
	account_id          *string
	platform            *post.Platform
	media_ref           *string
	caption             *string
	content_hash        *string
	dedupe_key          *string
	state               *post.State
	scheduled_at        *time.Time
	attempt_count       *int
	addattempt_count    *int
	next_retry_at       *time.Time
	last_error          *string
	error_kind          *string
	remote_id           *string
	pod_id              *string
	last_interaction_at *time.Time
	dispatched_at       *time.Time
	published_at        *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Post, error)
	predicates          []predicate.Post
}

var _ ent.Mutation = (*PostMutation)(nil)

// postOption allows management of the mutation configuration using functional options.
type postOption func(*PostMutation)

// newPostMutation creates new mutation for the Post entity.
func newPostMutation(c config, op Op, opts ...postOption) *PostMutation {
	m := &PostMutation{
		config:        c,
		op:            op,
		typ:           TypePost,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPostID sets the ID field of the mutation.
func withPostID(id string) postOption {
	return func(m *PostMutation) {
		var (
			err   error
			once  sync.Once
			value *Post
		)
		m.oldValue = func(ctx context.Context) (*Post, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Post.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPost sets the old Post of the mutation.
func withPost(node *Post) postOption {
	return func(m *PostMutation) {
		m.oldValue = func(context.Context) (*Post, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PostMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PostMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Post entities.
func (m *PostMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PostMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PostMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Post.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatorID sets the "creator_id" field.
func (m *PostMutation) SetCreatorID(s string) {
	m.creator_id = &s
}

// CreatorID returns the value of the "creator_id" field in the mutation.
func (m *PostMutation) CreatorID() (r string, exists bool) {
	v := m.creator_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatorID returns the old "creator_id" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldCreatorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatorID: %w", err)
	}
	return oldValue.CreatorID, nil
}

// ResetCreatorID resets all changes to the "creator_id" field.
func (m *PostMutation) ResetCreatorID() {
	m.creator_id = nil
}

// SetAccountID sets the "account_id" field.
func (m *PostMutation) SetAccountID(s string) {
	m.account_id = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *PostMutation) AccountID() (r string, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *PostMutation) ResetAccountID() {
	m.account_id = nil
}

// SetPlatform sets the "platform" field.
func (m *PostMutation) SetPlatform(po post.Platform) {
	m.platform = &po
}

// Platform returns the value of the "platform" field in the mutation.
func (m *PostMutation) Platform() (r post.Platform, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldPlatform(ctx context.Context) (v post.Platform, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *PostMutation) ResetPlatform() {
	m.platform = nil
}

// SetMediaRef sets the "media_ref" field.
func (m *PostMutation) SetMediaRef(s string) {
	m.media_ref = &s
}

// MediaRef returns the value of the "media_ref" field in the mutation.
func (m *PostMutation) MediaRef() (r string, exists bool) {
	v := m.media_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaRef returns the old "media_ref" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldMediaRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaRef: %w", err)
	}
	return oldValue.MediaRef, nil
}

// ResetMediaRef resets all changes to the "media_ref" field.
func (m *PostMutation) ResetMediaRef() {
	m.media_ref = nil
}

// SetCaption sets the "caption" field.
func (m *PostMutation) SetCaption(s string) {
	m.caption = &s
}

// Caption returns the value of the "caption" field in the mutation.
func (m *PostMutation) Caption() (r string, exists bool) {
	v := m.caption
	if v == nil {
		return
	}
	return *v, true
}

// OldCaption returns the old "caption" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldCaption(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaption is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaption requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaption: %w", err)
	}
	return oldValue.Caption, nil
}

// ResetCaption resets all changes to the "caption" field.
func (m *PostMutation) ResetCaption() {
	m.caption = nil
}

// SetContentHash sets the "content_hash" field.
func (m *PostMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *PostMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *PostMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetDedupeKey sets the "dedupe_key" field.
func (m *PostMutation) SetDedupeKey(s string) {
	m.dedupe_key = &s
}

// DedupeKey returns the value of the "dedupe_key" field in the mutation.
func (m *PostMutation) DedupeKey() (r string, exists bool) {
	v := m.dedupe_key
	if v == nil {
		return
	}
	return *v, true
}

// OldDedupeKey returns the old "dedupe_key" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldDedupeKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDedupeKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDedupeKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDedupeKey: %w", err)
	}
	return oldValue.DedupeKey, nil
}

// ResetDedupeKey resets all changes to the "dedupe_key" field.
func (m *PostMutation) ResetDedupeKey() {
	m.dedupe_key = nil
}

// SetState sets the "state" field.
func (m *PostMutation) SetState(po post.State) {
	m.state = &po
}

// State returns the value of the "state" field in the mutation.
func (m *PostMutation) State() (r post.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldState(ctx context.Context) (v post.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *PostMutation) ResetState() {
	m.state = nil
}

// SetScheduledAt sets the "scheduled_at" field.
func (m *PostMutation) SetScheduledAt(t time.Time) {
	m.scheduled_at = &t
}

// ScheduledAt returns the value of the "scheduled_at" field in the mutation.
func (m *PostMutation) ScheduledAt() (r time.Time, exists bool) {
	v := m.scheduled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledAt returns the old "scheduled_at" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldScheduledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledAt: %w", err)
	}
	return oldValue.ScheduledAt, nil
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (m *PostMutation) ClearScheduledAt() {
	m.scheduled_at = nil
	m.clearedFields[post.FieldScheduledAt] = struct{}{}
}

// ScheduledAtCleared returns if the "scheduled_at" field was cleared in this mutation.
func (m *PostMutation) ScheduledAtCleared() bool {
	_, ok := m.clearedFields[post.FieldScheduledAt]
	return ok
}

// ResetScheduledAt resets all changes to the "scheduled_at" field.
func (m *PostMutation) ResetScheduledAt() {
	m.scheduled_at = nil
	delete(m.clearedFields, post.FieldScheduledAt)
}

// SetAttemptCount sets the "attempt_count" field.
func (m *PostMutation) SetAttemptCount(i int) {
	m.attempt_count = &i
	m.addattempt_count = nil
}

// AttemptCount returns the value of the "attempt_count" field in the mutation.
func (m *PostMutation) AttemptCount() (r int, exists bool) {
	v := m.attempt_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptCount returns the old "attempt_count" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldAttemptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptCount: %w", err)
	}
	return oldValue.AttemptCount, nil
}

// AddAttemptCount adds i to the "attempt_count" field.
func (m *PostMutation) AddAttemptCount(i int) {
	if m.addattempt_count != nil {
		*m.addattempt_count += i
	} else {
		m.addattempt_count = &i
	}
}

// AddedAttemptCount returns the value that was added to the "attempt_count" field in this mutation.
func (m *PostMutation) AddedAttemptCount() (r int, exists bool) {
	v := m.addattempt_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptCount resets all changes to the "attempt_count" field.
func (m *PostMutation) ResetAttemptCount() {
	m.attempt_count = nil
	m.addattempt_count = nil
}

// SetNextRetryAt sets the "next_retry_at" field.
func (m *PostMutation) SetNextRetryAt(t time.Time) {
	m.next_retry_at = &t
}

// NextRetryAt returns the value of the "next_retry_at" field in the mutation.
func (m *PostMutation) NextRetryAt() (r time.Time, exists bool) {
	v := m.next_retry_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRetryAt returns the old "next_retry_at" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldNextRetryAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRetryAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRetryAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRetryAt: %w", err)
	}
	return oldValue.NextRetryAt, nil
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (m *PostMutation) ClearNextRetryAt() {
	m.next_retry_at = nil
	m.clearedFields[post.FieldNextRetryAt] = struct{}{}
}

// NextRetryAtCleared returns if the "next_retry_at" field was cleared in this mutation.
func (m *PostMutation) NextRetryAtCleared() bool {
	_, ok := m.clearedFields[post.FieldNextRetryAt]
	return ok
}

// ResetNextRetryAt resets all changes to the "next_retry_at" field.
func (m *PostMutation) ResetNextRetryAt() {
	m.next_retry_at = nil
	delete(m.clearedFields, post.FieldNextRetryAt)
}

// SetLastError sets the "last_error" field.
func (m *PostMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *PostMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *PostMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[post.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *PostMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[post.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *PostMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, post.FieldLastError)
}

// SetErrorKind sets the "error_kind" field.
func (m *PostMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *PostMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *PostMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[post.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *PostMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[post.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *PostMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, post.FieldErrorKind)
}

// SetRemoteID sets the "remote_id" field.
func (m *PostMutation) SetRemoteID(s string) {
	m.remote_id = &s
}

// RemoteID returns the value of the "remote_id" field in the mutation.
func (m *PostMutation) RemoteID() (r string, exists bool) {
	v := m.remote_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRemoteID returns the old "remote_id" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldRemoteID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemoteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemoteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemoteID: %w", err)
	}
	return oldValue.RemoteID, nil
}

// ClearRemoteID clears the value of the "remote_id" field.
func (m *PostMutation) ClearRemoteID() {
	m.remote_id = nil
	m.clearedFields[post.FieldRemoteID] = struct{}{}
}

// RemoteIDCleared returns if the "remote_id" field was cleared in this mutation.
func (m *PostMutation) RemoteIDCleared() bool {
	_, ok := m.clearedFields[post.FieldRemoteID]
	return ok
}

// ResetRemoteID resets all changes to the "remote_id" field.
func (m *PostMutation) ResetRemoteID() {
	m.remote_id = nil
	delete(m.clearedFields, post.FieldRemoteID)
}

// SetPodID sets the "pod_id" field.
func (m *PostMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *PostMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *PostMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[post.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *PostMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[post.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *PostMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, post.FieldPodID)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *PostMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *PostMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *PostMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[post.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *PostMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[post.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *PostMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, post.FieldLastInteractionAt)
}

// SetDispatchedAt sets the "dispatched_at" field.
func (m *PostMutation) SetDispatchedAt(t time.Time) {
	m.dispatched_at = &t
}

// DispatchedAt returns the value of the "dispatched_at" field in the mutation.
func (m *PostMutation) DispatchedAt() (r time.Time, exists bool) {
	v := m.dispatched_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDispatchedAt returns the old "dispatched_at" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldDispatchedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDispatchedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDispatchedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDispatchedAt: %w", err)
	}
	return oldValue.DispatchedAt, nil
}

// ClearDispatchedAt clears the value of the "dispatched_at" field.
func (m *PostMutation) ClearDispatchedAt() {
	m.dispatched_at = nil
	m.clearedFields[post.FieldDispatchedAt] = struct{}{}
}

// DispatchedAtCleared returns if the "dispatched_at" field was cleared in this mutation.
func (m *PostMutation) DispatchedAtCleared() bool {
	_, ok := m.clearedFields[post.FieldDispatchedAt]
	return ok
}

// ResetDispatchedAt resets all changes to the "dispatched_at" field.
func (m *PostMutation) ResetDispatchedAt() {
	m.dispatched_at = nil
	delete(m.clearedFields, post.FieldDispatchedAt)
}

// SetPublishedAt sets the "published_at" field.
func (m *PostMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *PostMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldPublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ClearPublishedAt clears the value of the "published_at" field.
func (m *PostMutation) ClearPublishedAt() {
	m.published_at = nil
	m.clearedFields[post.FieldPublishedAt] = struct{}{}
}

// PublishedAtCleared returns if the "published_at" field was cleared in this mutation.
func (m *PostMutation) PublishedAtCleared() bool {
	_, ok := m.clearedFields[post.FieldPublishedAt]
	return ok
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *PostMutation) ResetPublishedAt() {
	m.published_at = nil
	delete(m.clearedFields, post.FieldPublishedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *PostMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PostMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PostMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PostMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PostMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PostMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PostMutation builder.
func (m *PostMutation) Where(ps ...predicate.Post) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PostMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PostMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Post, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PostMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PostMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Post).
func (m *PostMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PostMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.creator_id != nil {
		fields = append(fields, post.FieldCreatorID)
	}
	if m.account_id != nil {
		fields = append(fields, post.FieldAccountID)
	}
	if m.platform != nil {
		fields = append(fields, post.FieldPlatform)
	}
	if m.media_ref != nil {
		fields = append(fields, post.FieldMediaRef)
	}
	if m.caption != nil {
		fields = append(fields, post.FieldCaption)
	}
	if m.content_hash != nil {
		fields = append(fields, post.FieldContentHash)
	}
	if m.dedupe_key != nil {
		fields = append(fields, post.FieldDedupeKey)
	}
	if m.state != nil {
		fields = append(fields, post.FieldState)
	}
	if m.scheduled_at != nil {
		fields = append(fields, post.FieldScheduledAt)
	}
	if m.attempt_count != nil {
		fields = append(fields, post.FieldAttemptCount)
	}
	if m.next_retry_at != nil {
		fields = append(fields, post.FieldNextRetryAt)
	}
	if m.last_error != nil {
		fields = append(fields, post.FieldLastError)
	}
	if m.error_kind != nil {
		fields = append(fields, post.FieldErrorKind)
	}
	if m.remote_id != nil {
		fields = append(fields, post.FieldRemoteID)
	}
	if m.pod_id != nil {
		fields = append(fields, post.FieldPodID)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, post.FieldLastInteractionAt)
	}
	if m.dispatched_at != nil {
		fields = append(fields, post.FieldDispatchedAt)
	}
	if m.published_at != nil {
		fields = append(fields, post.FieldPublishedAt)
	}
	if m.created_at != nil {
		fields = append(fields, post.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, post.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PostMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case post.FieldCreatorID:
		return m.CreatorID()
	case post.FieldAccountID:
		return m.AccountID()
	case post.FieldPlatform:
		return m.Platform()
	case post.FieldMediaRef:
		return m.MediaRef()
	case post.FieldCaption:
		return m.Caption()
	case post.FieldContentHash:
		return m.ContentHash()
	case post.FieldDedupeKey:
		return m.DedupeKey()
	case post.FieldState:
		return m.State()
	case post.FieldScheduledAt:
		return m.ScheduledAt()
	case post.FieldAttemptCount:
		return m.AttemptCount()
	case post.FieldNextRetryAt:
		return m.NextRetryAt()
	case post.FieldLastError:
		return m.LastError()
	case post.FieldErrorKind:
		return m.ErrorKind()
	case post.FieldRemoteID:
		return m.RemoteID()
	case post.FieldPodID:
		return m.PodID()
	case post.FieldLastInteractionAt:
		return m.LastInteractionAt()
	case post.FieldDispatchedAt:
		return m.DispatchedAt()
	case post.FieldPublishedAt:
		return m.PublishedAt()
	case post.FieldCreatedAt:
		return m.CreatedAt()
	case post.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PostMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case post.FieldCreatorID:
		return m.OldCreatorID(ctx)
	case post.FieldAccountID:
		return m.OldAccountID(ctx)
	case post.FieldPlatform:
		return m.OldPlatform(ctx)
	case post.FieldMediaRef:
		return m.OldMediaRef(ctx)
	case post.FieldCaption:
		return m.OldCaption(ctx)
	case post.FieldContentHash:
		return m.OldContentHash(ctx)
	case post.FieldDedupeKey:
		return m.OldDedupeKey(ctx)
	case post.FieldState:
		return m.OldState(ctx)
	case post.FieldScheduledAt:
		return m.OldScheduledAt(ctx)
	case post.FieldAttemptCount:
		return m.OldAttemptCount(ctx)
	case post.FieldNextRetryAt:
		return m.OldNextRetryAt(ctx)
	case post.FieldLastError:
		return m.OldLastError(ctx)
	case post.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case post.FieldRemoteID:
		return m.OldRemoteID(ctx)
	case post.FieldPodID:
		return m.OldPodID(ctx)
	case post.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	case post.FieldDispatchedAt:
		return m.OldDispatchedAt(ctx)
	case post.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case post.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case post.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Post field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PostMutation) SetField(name string, value ent.Value) error {
	switch name {
	case post.FieldCreatorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatorID(v)
		return nil
	case post.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case post.FieldPlatform:
		v, ok := value.(post.Platform)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case post.FieldMediaRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaRef(v)
		return nil
	case post.FieldCaption:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaption(v)
		return nil
	case post.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case post.FieldDedupeKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDedupeKey(v)
		return nil
	case post.FieldState:
		v, ok := value.(post.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case post.FieldScheduledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledAt(v)
		return nil
	case post.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptCount(v)
		return nil
	case post.FieldNextRetryAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRetryAt(v)
		return nil
	case post.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case post.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case post.FieldRemoteID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemoteID(v)
		return nil
	case post.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case post.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	case post.FieldDispatchedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDispatchedAt(v)
		return nil
	case post.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case post.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case post.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Post field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PostMutation) AddedFields() []string {
	var fields []string
	if m.addattempt_count != nil {
		fields = append(fields, post.FieldAttemptCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PostMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case post.FieldAttemptCount:
		return m.AddedAttemptCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PostMutation) AddField(name string, value ent.Value) error {
	switch name {
	case post.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptCount(v)
		return nil
	}
	return fmt.Errorf("unknown Post numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PostMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(post.FieldScheduledAt) {
		fields = append(fields, post.FieldScheduledAt)
	}
	if m.FieldCleared(post.FieldNextRetryAt) {
		fields = append(fields, post.FieldNextRetryAt)
	}
	if m.FieldCleared(post.FieldLastError) {
		fields = append(fields, post.FieldLastError)
	}
	if m.FieldCleared(post.FieldErrorKind) {
		fields = append(fields, post.FieldErrorKind)
	}
	if m.FieldCleared(post.FieldRemoteID) {
		fields = append(fields, post.FieldRemoteID)
	}
	if m.FieldCleared(post.FieldPodID) {
		fields = append(fields, post.FieldPodID)
	}
	if m.FieldCleared(post.FieldLastInteractionAt) {
		fields = append(fields, post.FieldLastInteractionAt)
	}
	if m.FieldCleared(post.FieldDispatchedAt) {
		fields = append(fields, post.FieldDispatchedAt)
	}
	if m.FieldCleared(post.FieldPublishedAt) {
		fields = append(fields, post.FieldPublishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PostMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PostMutation) ClearField(name string) error {
	switch name {
	case post.FieldScheduledAt:
		m.ClearScheduledAt()
		return nil
	case post.FieldNextRetryAt:
		m.ClearNextRetryAt()
		return nil
	case post.FieldLastError:
		m.ClearLastError()
		return nil
	case post.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case post.FieldRemoteID:
		m.ClearRemoteID()
		return nil
	case post.FieldPodID:
		m.ClearPodID()
		return nil
	case post.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	case post.FieldDispatchedAt:
		m.ClearDispatchedAt()
		return nil
	case post.FieldPublishedAt:
		m.ClearPublishedAt()
		return nil
	}
	return fmt.Errorf("unknown Post nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PostMutation) ResetField(name string) error {
	switch name {
	case post.FieldCreatorID:
		m.ResetCreatorID()
		return nil
	case post.FieldAccountID:
		m.ResetAccountID()
		return nil
	case post.FieldPlatform:
		m.ResetPlatform()
		return nil
	case post.FieldMediaRef:
		m.ResetMediaRef()
		return nil
	case post.FieldCaption:
		m.ResetCaption()
		return nil
	case post.FieldContentHash:
		m.ResetContentHash()
		return nil
	case post.FieldDedupeKey:
		m.ResetDedupeKey()
		return nil
	case post.FieldState:
		m.ResetState()
		return nil
	case post.FieldScheduledAt:
		m.ResetScheduledAt()
		return nil
	case post.FieldAttemptCount:
		m.ResetAttemptCount()
		return nil
	case post.FieldNextRetryAt:
		m.ResetNextRetryAt()
		return nil
	case post.FieldLastError:
		m.ResetLastError()
		return nil
	case post.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case post.FieldRemoteID:
		m.ResetRemoteID()
		return nil
	case post.FieldPodID:
		m.ResetPodID()
		return nil
	case post.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	case post.FieldDispatchedAt:
		m.ResetDispatchedAt()
		return nil
	case post.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case post.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case post.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Post field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PostMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PostMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PostMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PostMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PostMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PostMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PostMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Post unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PostMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Post edge %s", name)
}

// RateLimitBucketMutation represents an operation that mutates the RateLimitBucket nodes in the graph.
type RateLimitBucketMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	account_id              *string
	endpoint                *string
	tokens                  *float64
	addtokens               *float64
	capacity                *float64
	addcapacity             *float64
	refill_rate             *float64
	addrefill_rate          *float64
	last_refill_at          *time.Time
	cooldown_until          *time.Time
	consecutive_failures    *int
	addconsecutive_failures *int
	breaker_state           *ratelimitbucket.BreakerState
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*RateLimitBucket, error)
	predicates              []predicate.RateLimitBucket
}

var _ ent.Mutation = (*RateLimitBucketMutation)(nil)

// ratelimitbucketOption allows management of the mutation configuration using functional options.
type ratelimitbucketOption func(*RateLimitBucketMutation)

// newRateLimitBucketMutation creates new mutation for the RateLimitBucket entity.
func newRateLimitBucketMutation(c config, op Op, opts ...ratelimitbucketOption) *RateLimitBucketMutation {
	m := &RateLimitBucketMutation{
		config:        c,
		op:            op,
		typ:           TypeRateLimitBucket,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRateLimitBucketID sets the ID field of the mutation.
func withRateLimitBucketID(id string) ratelimitbucketOption {
	return func(m *RateLimitBucketMutation) {
		var (
			err   error
			once  sync.Once
			value *RateLimitBucket
		)
		m.oldValue = func(ctx context.Context) (*RateLimitBucket, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RateLimitBucket.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRateLimitBucket sets the old RateLimitBucket of the mutation.
func withRateLimitBucket(node *RateLimitBucket) ratelimitbucketOption {
	return func(m *RateLimitBucketMutation) {
		m.oldValue = func(context.Context) (*RateLimitBucket, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RateLimitBucketMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RateLimitBucketMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RateLimitBucket entities.
func (m *RateLimitBucketMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RateLimitBucketMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RateLimitBucketMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RateLimitBucket.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccountID sets the "account_id" field.
func (m *RateLimitBucketMutation) SetAccountID(s string) {
	m.account_id = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *RateLimitBucketMutation) AccountID() (r string, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the RateLimitBucket entity.
// If the RateLimitBucket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitBucketMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *RateLimitBucketMutation) ResetAccountID() {
	m.account_id = nil
}

// SetEndpoint sets the "endpoint" field.
func (m *RateLimitBucketMutation) SetEndpoint(s string) {
	m.endpoint = &s
}

// Endpoint returns the value of the "endpoint" field in the mutation.
func (m *RateLimitBucketMutation) Endpoint() (r string, exists bool) {
	v := m.endpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldEndpoint returns the old "endpoint" field's value of the RateLimitBucket entity.
// If the RateLimitBucket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitBucketMutation) OldEndpoint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndpoint: %w", err)
	}
	return oldValue.Endpoint, nil
}

// ResetEndpoint resets all changes to the "endpoint" field.
func (m *RateLimitBucketMutation) ResetEndpoint() {
	m.endpoint = nil
}

// SetTokens sets the "tokens" field.
func (m *RateLimitBucketMutation) SetTokens(f float64) {
	m.tokens = &f
	m.addtokens = nil
}

// Tokens returns the value of the "tokens" field in the mutation.
func (m *RateLimitBucketMutation) Tokens() (r float64, exists bool) {
	v := m.tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTokens returns the old "tokens" field's value of the RateLimitBucket entity.
// If the RateLimitBucket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitBucketMutation) OldTokens(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokens: %w", err)
	}
	return oldValue.Tokens, nil
}

// AddTokens adds f to the "tokens" field.
func (m *RateLimitBucketMutation) AddTokens(f float64) {
	if m.addtokens != nil {
		*m.addtokens += f
	} else {
		m.addtokens = &f
	}
}

// AddedTokens returns the value that was added to the "tokens" field in this mutation.
func (m *RateLimitBucketMutation) AddedTokens() (r float64, exists bool) {
	v := m.addtokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokens resets all changes to the "tokens" field.
func (m *RateLimitBucketMutation) ResetTokens() {
	m.tokens = nil
	m.addtokens = nil
}

// SetCapacity sets the "capacity" field.
func (m *RateLimitBucketMutation) SetCapacity(f float64) {
	m.capacity = &f
	m.addcapacity = nil
}

// Capacity returns the value of the "capacity" field in the mutation.
func (m *RateLimitBucketMutation) Capacity() (r float64, exists bool) {
	v := m.capacity
	if v == nil {
		return
	}
	return *v, true
}

// OldCapacity returns the old "capacity" field's value of the RateLimitBucket entity.
// If the RateLimitBucket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitBucketMutation) OldCapacity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapacity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapacity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapacity: %w", err)
	}
	return oldValue.Capacity, nil
}

// AddCapacity adds f to the "capacity" field.
func (m *RateLimitBucketMutation) AddCapacity(f float64) {
	if m.addcapacity != nil {
		*m.addcapacity += f
	} else {
		m.addcapacity = &f
	}
}

// AddedCapacity returns the value that was added to the "capacity" field in this mutation.
func (m *RateLimitBucketMutation) AddedCapacity() (r float64, exists bool) {
	v := m.addcapacity
	if v == nil {
		return
	}
	return *v, true
}

// ResetCapacity resets all changes to the "capacity" field.
func (m *RateLimitBucketMutation) ResetCapacity() {
	m.capacity = nil
	m.addcapacity = nil
}

// SetRefillRate sets the "refill_rate" field.
func (m *RateLimitBucketMutation) SetRefillRate(f float64) {
	m.refill_rate = &f
	m.addrefill_rate = nil
}

// RefillRate returns the value of the "refill_rate" field in the mutation.
func (m *RateLimitBucketMutation) RefillRate() (r float64, exists bool) {
	v := m.refill_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldRefillRate returns the old "refill_rate" field's value of the RateLimitBucket entity.
// If the RateLimitBucket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitBucketMutation) OldRefillRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefillRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefillRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefillRate: %w", err)
	}
	return oldValue.RefillRate, nil
}

// AddRefillRate adds f to the "refill_rate" field.
func (m *RateLimitBucketMutation) AddRefillRate(f float64) {
	if m.addrefill_rate != nil {
		*m.addrefill_rate += f
	} else {
		m.addrefill_rate = &f
	}
}

// AddedRefillRate returns the value that was added to the "refill_rate" field in this mutation.
func (m *RateLimitBucketMutation) AddedRefillRate() (r float64, exists bool) {
	v := m.addrefill_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetRefillRate resets all changes to the "refill_rate" field.
func (m *RateLimitBucketMutation) ResetRefillRate() {
	m.refill_rate = nil
	m.addrefill_rate = nil
}

// SetLastRefillAt sets the "last_refill_at" field.
func (m *RateLimitBucketMutation) SetLastRefillAt(t time.Time) {
	m.last_refill_at = &t
}

// LastRefillAt returns the value of the "last_refill_at" field in the mutation.
func (m *RateLimitBucketMutation) LastRefillAt() (r time.Time, exists bool) {
	v := m.last_refill_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRefillAt returns the old "last_refill_at" field's value of the RateLimitBucket entity.
// If the RateLimitBucket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitBucketMutation) OldLastRefillAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRefillAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRefillAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRefillAt: %w", err)
	}
	return oldValue.LastRefillAt, nil
}

// ResetLastRefillAt resets all changes to the "last_refill_at" field.
func (m *RateLimitBucketMutation) ResetLastRefillAt() {
	m.last_refill_at = nil
}

// SetCooldownUntil sets the "cooldown_until" field.
func (m *RateLimitBucketMutation) SetCooldownUntil(t time.Time) {
	m.cooldown_until = &t
}

// CooldownUntil returns the value of the "cooldown_until" field in the mutation.
func (m *RateLimitBucketMutation) CooldownUntil() (r time.Time, exists bool) {
	v := m.cooldown_until
	if v == nil {
		return
	}
	return *v, true
}

// OldCooldownUntil returns the old "cooldown_until" field's value of the RateLimitBucket entity.
// If the RateLimitBucket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitBucketMutation) OldCooldownUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCooldownUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCooldownUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCooldownUntil: %w", err)
	}
	return oldValue.CooldownUntil, nil
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (m *RateLimitBucketMutation) ClearCooldownUntil() {
	m.cooldown_until = nil
	m.clearedFields[ratelimitbucket.FieldCooldownUntil] = struct{}{}
}

// CooldownUntilCleared returns if the "cooldown_until" field was cleared in this mutation.
func (m *RateLimitBucketMutation) CooldownUntilCleared() bool {
	_, ok := m.clearedFields[ratelimitbucket.FieldCooldownUntil]
	return ok
}

// ResetCooldownUntil resets all changes to the "cooldown_until" field.
func (m *RateLimitBucketMutation) ResetCooldownUntil() {
	m.cooldown_until = nil
	delete(m.clearedFields, ratelimitbucket.FieldCooldownUntil)
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (m *RateLimitBucketMutation) SetConsecutiveFailures(i int) {
	m.consecutive_failures = &i
	m.addconsecutive_failures = nil
}

// ConsecutiveFailures returns the value of the "consecutive_failures" field in the mutation.
func (m *RateLimitBucketMutation) ConsecutiveFailures() (r int, exists bool) {
	v := m.consecutive_failures
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveFailures returns the old "consecutive_failures" field's value of the RateLimitBucket entity.
// If the RateLimitBucket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitBucketMutation) OldConsecutiveFailures(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveFailures: %w", err)
	}
	return oldValue.ConsecutiveFailures, nil
}

// AddConsecutiveFailures adds i to the "consecutive_failures" field.
func (m *RateLimitBucketMutation) AddConsecutiveFailures(i int) {
	if m.addconsecutive_failures != nil {
		*m.addconsecutive_failures += i
	} else {
		m.addconsecutive_failures = &i
	}
}

// AddedConsecutiveFailures returns the value that was added to the "consecutive_failures" field in this mutation.
func (m *RateLimitBucketMutation) AddedConsecutiveFailures() (r int, exists bool) {
	v := m.addconsecutive_failures
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveFailures resets all changes to the "consecutive_failures" field.
func (m *RateLimitBucketMutation) ResetConsecutiveFailures() {
	m.consecutive_failures = nil
	m.addconsecutive_failures = nil
}

// SetBreakerState sets the "breaker_state" field.
func (m *RateLimitBucketMutation) SetBreakerState(rs ratelimitbucket.BreakerState) {
	m.breaker_state = &rs
}

// BreakerState returns the value of the "breaker_state" field in the mutation.
func (m *RateLimitBucketMutation) BreakerState() (r ratelimitbucket.BreakerState, exists bool) {
	v := m.breaker_state
	if v == nil {
		return
	}
	return *v, true
}

// OldBreakerState returns the old "breaker_state" field's value of the RateLimitBucket entity.
// If the RateLimitBucket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitBucketMutation) OldBreakerState(ctx context.Context) (v ratelimitbucket.BreakerState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBreakerState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBreakerState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBreakerState: %w", err)
	}
	return oldValue.BreakerState, nil
}

// ResetBreakerState resets all changes to the "breaker_state" field.
func (m *RateLimitBucketMutation) ResetBreakerState() {
	m.breaker_state = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RateLimitBucketMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RateLimitBucketMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RateLimitBucket entity.
// If the RateLimitBucket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitBucketMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RateLimitBucketMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the RateLimitBucketMutation builder.
func (m *RateLimitBucketMutation) Where(ps ...predicate.RateLimitBucket) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RateLimitBucketMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RateLimitBucketMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RateLimitBucket, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RateLimitBucketMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RateLimitBucketMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RateLimitBucket).
func (m *RateLimitBucketMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RateLimitBucketMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.account_id != nil {
		fields = append(fields, ratelimitbucket.FieldAccountID)
	}
	if m.endpoint != nil {
		fields = append(fields, ratelimitbucket.FieldEndpoint)
	}
	if m.tokens != nil {
		fields = append(fields, ratelimitbucket.FieldTokens)
	}
	if m.capacity != nil {
		fields = append(fields, ratelimitbucket.FieldCapacity)
	}
	if m.refill_rate != nil {
		fields = append(fields, ratelimitbucket.FieldRefillRate)
	}
	if m.last_refill_at != nil {
		fields = append(fields, ratelimitbucket.FieldLastRefillAt)
	}
	if m.cooldown_until != nil {
		fields = append(fields, ratelimitbucket.FieldCooldownUntil)
	}
	if m.consecutive_failures != nil {
		fields = append(fields, ratelimitbucket.FieldConsecutiveFailures)
	}
	if m.breaker_state != nil {
		fields = append(fields, ratelimitbucket.FieldBreakerState)
	}
	if m.updated_at != nil {
		fields = append(fields, ratelimitbucket.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RateLimitBucketMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ratelimitbucket.FieldAccountID:
		return m.AccountID()
	case ratelimitbucket.FieldEndpoint:
		return m.Endpoint()
	case ratelimitbucket.FieldTokens:
		return m.Tokens()
	case ratelimitbucket.FieldCapacity:
		return m.Capacity()
	case ratelimitbucket.FieldRefillRate:
		return m.RefillRate()
	case ratelimitbucket.FieldLastRefillAt:
		return m.LastRefillAt()
	case ratelimitbucket.FieldCooldownUntil:
		return m.CooldownUntil()
	case ratelimitbucket.FieldConsecutiveFailures:
		return m.ConsecutiveFailures()
	case ratelimitbucket.FieldBreakerState:
		return m.BreakerState()
	case ratelimitbucket.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RateLimitBucketMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ratelimitbucket.FieldAccountID:
		return m.OldAccountID(ctx)
	case ratelimitbucket.FieldEndpoint:
		return m.OldEndpoint(ctx)
	case ratelimitbucket.FieldTokens:
		return m.OldTokens(ctx)
	case ratelimitbucket.FieldCapacity:
		return m.OldCapacity(ctx)
	case ratelimitbucket.FieldRefillRate:
		return m.OldRefillRate(ctx)
	case ratelimitbucket.FieldLastRefillAt:
		return m.OldLastRefillAt(ctx)
	case ratelimitbucket.FieldCooldownUntil:
		return m.OldCooldownUntil(ctx)
	case ratelimitbucket.FieldConsecutiveFailures:
		return m.OldConsecutiveFailures(ctx)
	case ratelimitbucket.FieldBreakerState:
		return m.OldBreakerState(ctx)
	case ratelimitbucket.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RateLimitBucket field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RateLimitBucketMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ratelimitbucket.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case ratelimitbucket.FieldEndpoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndpoint(v)
		return nil
	case ratelimitbucket.FieldTokens:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokens(v)
		return nil
	case ratelimitbucket.FieldCapacity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapacity(v)
		return nil
	case ratelimitbucket.FieldRefillRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefillRate(v)
		return nil
	case ratelimitbucket.FieldLastRefillAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRefillAt(v)
		return nil
	case ratelimitbucket.FieldCooldownUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCooldownUntil(v)
		return nil
	case ratelimitbucket.FieldConsecutiveFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveFailures(v)
		return nil
	case ratelimitbucket.FieldBreakerState:
		v, ok := value.(ratelimitbucket.BreakerState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBreakerState(v)
		return nil
	case ratelimitbucket.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RateLimitBucket field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RateLimitBucketMutation) AddedFields() []string {
	var fields []string
	if m.addtokens != nil {
		fields = append(fields, ratelimitbucket.FieldTokens)
	}
	if m.addcapacity != nil {
		fields = append(fields, ratelimitbucket.FieldCapacity)
	}
	if m.addrefill_rate != nil {
		fields = append(fields, ratelimitbucket.FieldRefillRate)
	}
	if m.addconsecutive_failures != nil {
		fields = append(fields, ratelimitbucket.FieldConsecutiveFailures)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RateLimitBucketMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ratelimitbucket.FieldTokens:
		return m.AddedTokens()
	case ratelimitbucket.FieldCapacity:
		return m.AddedCapacity()
	case ratelimitbucket.FieldRefillRate:
		return m.AddedRefillRate()
	case ratelimitbucket.FieldConsecutiveFailures:
		return m.AddedConsecutiveFailures()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RateLimitBucketMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ratelimitbucket.FieldTokens:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokens(v)
		return nil
	case ratelimitbucket.FieldCapacity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCapacity(v)
		return nil
	case ratelimitbucket.FieldRefillRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRefillRate(v)
		return nil
	case ratelimitbucket.FieldConsecutiveFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveFailures(v)
		return nil
	}
	return fmt.Errorf("unknown RateLimitBucket numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RateLimitBucketMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ratelimitbucket.FieldCooldownUntil) {
		fields = append(fields, ratelimitbucket.FieldCooldownUntil)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RateLimitBucketMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RateLimitBucketMutation) ClearField(name string) error {
	switch name {
	case ratelimitbucket.FieldCooldownUntil:
		m.ClearCooldownUntil()
		return nil
	}
	return fmt.Errorf("unknown RateLimitBucket nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RateLimitBucketMutation) ResetField(name string) error {
	switch name {
	case ratelimitbucket.FieldAccountID:
		m.ResetAccountID()
		return nil
	case ratelimitbucket.FieldEndpoint:
		m.ResetEndpoint()
		return nil
	case ratelimitbucket.FieldTokens:
		m.ResetTokens()
		return nil
	case ratelimitbucket.FieldCapacity:
		m.ResetCapacity()
		return nil
	case ratelimitbucket.FieldRefillRate:
		m.ResetRefillRate()
		return nil
	case ratelimitbucket.FieldLastRefillAt:
		m.ResetLastRefillAt()
		return nil
	case ratelimitbucket.FieldCooldownUntil:
		m.ResetCooldownUntil()
		return nil
	case ratelimitbucket.FieldConsecutiveFailures:
		m.ResetConsecutiveFailures()
		return nil
	case ratelimitbucket.FieldBreakerState:
		m.ResetBreakerState()
		return nil
	case ratelimitbucket.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RateLimitBucket field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RateLimitBucketMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RateLimitBucketMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RateLimitBucketMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RateLimitBucketMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RateLimitBucketMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RateLimitBucketMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RateLimitBucketMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RateLimitBucket unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RateLimitBucketMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RateLimitBucket edge %s", name)
}

// ReservationMutation represents an operation that mutates the Reservation nodes in the graph.
type ReservationMutation struct {
	config
	op               Op
	typ              string
	id               *string
	creator_id       *string
	month            *string
	amount_usd       *float64
	addamount_usd    *float64
	committed_usd    *float64
	addcommitted_usd *float64
	state            *reservation.State
	expires_at       *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Reservation, error)
	predicates       []predicate.Reservation
}

var _ ent.Mutation = (*ReservationMutation)(nil)

// reservationOption allows management of the mutation configuration using functional options.
type reservationOption func(*ReservationMutation)

// newReservationMutation creates new mutation for the Reservation entity.
func newReservationMutation(c config, op Op, opts ...reservationOption) *ReservationMutation {
	m := &ReservationMutation{
		config:        c,
		op:            op,
		typ:           TypeReservation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReservationID sets the ID field of the mutation.
func withReservationID(id string) reservationOption {
	return func(m *ReservationMutation) {
		var (
			err   error
			once  sync.Once
			value *Reservation
		)
		m.oldValue = func(ctx context.Context) (*Reservation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Reservation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReservation sets the old Reservation of the mutation.
func withReservation(node *Reservation) reservationOption {
	return func(m *ReservationMutation) {
		m.oldValue = func(context.Context) (*Reservation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReservationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReservationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Reservation entities.
func (m *ReservationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReservationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReservationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Reservation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatorID sets the "creator_id" field.
func (m *ReservationMutation) SetCreatorID(s string) {
	m.creator_id = &s
}

// CreatorID returns the value of the "creator_id" field in the mutation.
func (m *ReservationMutation) CreatorID() (r string, exists bool) {
	v := m.creator_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatorID returns the old "creator_id" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldCreatorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatorID: %w", err)
	}
	return oldValue.CreatorID, nil
}

// ResetCreatorID resets all changes to the "creator_id" field.
func (m *ReservationMutation) ResetCreatorID() {
	m.creator_id = nil
}

// SetMonth sets the "month" field.
func (m *ReservationMutation) SetMonth(s string) {
	m.month = &s
}

// Month returns the value of the "month" field in the mutation.
func (m *ReservationMutation) Month() (r string, exists bool) {
	v := m.month
	if v == nil {
		return
	}
	return *v, true
}

// OldMonth returns the old "month" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldMonth(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonth: %w", err)
	}
	return oldValue.Month, nil
}

// ResetMonth resets all changes to the "month" field.
func (m *ReservationMutation) ResetMonth() {
	m.month = nil
}

// SetAmountUsd sets the "amount_usd" field.
func (m *ReservationMutation) SetAmountUsd(f float64) {
	m.amount_usd = &f
	m.addamount_usd = nil
}

// AmountUsd returns the value of the "amount_usd" field in the mutation.
func (m *ReservationMutation) AmountUsd() (r float64, exists bool) {
	v := m.amount_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountUsd returns the old "amount_usd" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldAmountUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountUsd: %w", err)
	}
	return oldValue.AmountUsd, nil
}

// AddAmountUsd adds f to the "amount_usd" field.
func (m *ReservationMutation) AddAmountUsd(f float64) {
	if m.addamount_usd != nil {
		*m.addamount_usd += f
	} else {
		m.addamount_usd = &f
	}
}

// AddedAmountUsd returns the value that was added to the "amount_usd" field in this mutation.
func (m *ReservationMutation) AddedAmountUsd() (r float64, exists bool) {
	v := m.addamount_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmountUsd resets all changes to the "amount_usd" field.
func (m *ReservationMutation) ResetAmountUsd() {
	m.amount_usd = nil
	m.addamount_usd = nil
}

// SetCommittedUsd sets the "committed_usd" field.
func (m *ReservationMutation) SetCommittedUsd(f float64) {
	m.committed_usd = &f
	m.addcommitted_usd = nil
}

// CommittedUsd returns the value of the "committed_usd" field in the mutation.
func (m *ReservationMutation) CommittedUsd() (r float64, exists bool) {
	v := m.committed_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCommittedUsd returns the old "committed_usd" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldCommittedUsd(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommittedUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommittedUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommittedUsd: %w", err)
	}
	return oldValue.CommittedUsd, nil
}

// AddCommittedUsd adds f to the "committed_usd" field.
func (m *ReservationMutation) AddCommittedUsd(f float64) {
	if m.addcommitted_usd != nil {
		*m.addcommitted_usd += f
	} else {
		m.addcommitted_usd = &f
	}
}

// AddedCommittedUsd returns the value that was added to the "committed_usd" field in this mutation.
func (m *ReservationMutation) AddedCommittedUsd() (r float64, exists bool) {
	v := m.addcommitted_usd
	if v == nil {
		return
	}
	return *v, true
}

// ClearCommittedUsd clears the value of the "committed_usd" field.
func (m *ReservationMutation) ClearCommittedUsd() {
	m.committed_usd = nil
	m.addcommitted_usd = nil
	m.clearedFields[reservation.FieldCommittedUsd] = struct{}{}
}

// CommittedUsdCleared returns if the "committed_usd" field was cleared in this mutation.
func (m *ReservationMutation) CommittedUsdCleared() bool {
	_, ok := m.clearedFields[reservation.FieldCommittedUsd]
	return ok
}

// ResetCommittedUsd resets all changes to the "committed_usd" field.
func (m *ReservationMutation) ResetCommittedUsd() {
	m.committed_usd = nil
	m.addcommitted_usd = nil
	delete(m.clearedFields, reservation.FieldCommittedUsd)
}

// SetState sets the "state" field.
func (m *ReservationMutation) SetState(r reservation.State) {
	m.state = &r
}

// State returns the value of the "state" field in the mutation.
func (m *ReservationMutation) State() (r reservation.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldState(ctx context.Context) (v reservation.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *ReservationMutation) ResetState() {
	m.state = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *ReservationMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ReservationMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ReservationMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReservationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReservationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReservationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReservationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReservationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReservationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ReservationMutation builder.
func (m *ReservationMutation) Where(ps ...predicate.Reservation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReservationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReservationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Reservation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReservationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReservationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Reservation).
func (m *ReservationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReservationMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.creator_id != nil {
		fields = append(fields, reservation.FieldCreatorID)
	}
	if m.month != nil {
		fields = append(fields, reservation.FieldMonth)
	}
	if m.amount_usd != nil {
		fields = append(fields, reservation.FieldAmountUsd)
	}
	if m.committed_usd != nil {
		fields = append(fields, reservation.FieldCommittedUsd)
	}
	if m.state != nil {
		fields = append(fields, reservation.FieldState)
	}
	if m.expires_at != nil {
		fields = append(fields, reservation.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, reservation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, reservation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReservationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reservation.FieldCreatorID:
		return m.CreatorID()
	case reservation.FieldMonth:
		return m.Month()
	case reservation.FieldAmountUsd:
		return m.AmountUsd()
	case reservation.FieldCommittedUsd:
		return m.CommittedUsd()
	case reservation.FieldState:
		return m.State()
	case reservation.FieldExpiresAt:
		return m.ExpiresAt()
	case reservation.FieldCreatedAt:
		return m.CreatedAt()
	case reservation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReservationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reservation.FieldCreatorID:
		return m.OldCreatorID(ctx)
	case reservation.FieldMonth:
		return m.OldMonth(ctx)
	case reservation.FieldAmountUsd:
		return m.OldAmountUsd(ctx)
	case reservation.FieldCommittedUsd:
		return m.OldCommittedUsd(ctx)
	case reservation.FieldState:
		return m.OldState(ctx)
	case reservation.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case reservation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case reservation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Reservation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReservationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reservation.FieldCreatorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatorID(v)
		return nil
	case reservation.FieldMonth:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonth(v)
		return nil
	case reservation.FieldAmountUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountUsd(v)
		return nil
	case reservation.FieldCommittedUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommittedUsd(v)
		return nil
	case reservation.FieldState:
		v, ok := value.(reservation.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case reservation.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case reservation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case reservation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Reservation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReservationMutation) AddedFields() []string {
	var fields []string
	if m.addamount_usd != nil {
		fields = append(fields, reservation.FieldAmountUsd)
	}
	if m.addcommitted_usd != nil {
		fields = append(fields, reservation.FieldCommittedUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReservationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reservation.FieldAmountUsd:
		return m.AddedAmountUsd()
	case reservation.FieldCommittedUsd:
		return m.AddedCommittedUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReservationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reservation.FieldAmountUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountUsd(v)
		return nil
	case reservation.FieldCommittedUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommittedUsd(v)
		return nil
	}
	return fmt.Errorf("unknown Reservation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReservationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reservation.FieldCommittedUsd) {
		fields = append(fields, reservation.FieldCommittedUsd)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReservationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReservationMutation) ClearField(name string) error {
	switch name {
	case reservation.FieldCommittedUsd:
		m.ClearCommittedUsd()
		return nil
	}
	return fmt.Errorf("unknown Reservation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReservationMutation) ResetField(name string) error {
	switch name {
	case reservation.FieldCreatorID:
		m.ResetCreatorID()
		return nil
	case reservation.FieldMonth:
		m.ResetMonth()
		return nil
	case reservation.FieldAmountUsd:
		m.ResetAmountUsd()
		return nil
	case reservation.FieldCommittedUsd:
		m.ResetCommittedUsd()
		return nil
	case reservation.FieldState:
		m.ResetState()
		return nil
	case reservation.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case reservation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case reservation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Reservation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReservationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReservationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReservationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReservationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReservationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReservationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReservationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Reservation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReservationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Reservation edge %s", name)
}

// TrustedMappingMutation represents an operation that mutates the TrustedMapping nodes in the graph.
type TrustedMappingMutation struct {
	config
	op            Op
	typ           string
	id            *string
	provider      *string
	platform_id   *string
	post_id       *string
	kind          *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TrustedMapping, error)
	predicates    []predicate.TrustedMapping
}

var _ ent.Mutation = (*TrustedMappingMutation)(nil)

// trustedmappingOption allows management of the mutation configuration using functional options.
type trustedmappingOption func(*TrustedMappingMutation)

// newTrustedMappingMutation creates new mutation for the TrustedMapping entity.
func newTrustedMappingMutation(c config, op Op, opts ...trustedmappingOption) *TrustedMappingMutation {
	m := &TrustedMappingMutation{
		config:        c,
		op:            op,
		typ:           TypeTrustedMapping,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrustedMappingID sets the ID field of the mutation.
func withTrustedMappingID(id string) trustedmappingOption {
	return func(m *TrustedMappingMutation) {
		var (
			err   error
			once  sync.Once
			value *TrustedMapping
		)
		m.oldValue = func(ctx context.Context) (*TrustedMapping, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TrustedMapping.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrustedMapping sets the old TrustedMapping of the mutation.
func withTrustedMapping(node *TrustedMapping) trustedmappingOption {
	return func(m *TrustedMappingMutation) {
		m.oldValue = func(context.Context) (*TrustedMapping, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrustedMappingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrustedMappingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TrustedMapping entities.
func (m *TrustedMappingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrustedMappingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrustedMappingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TrustedMapping.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProvider sets the "provider" field.
func (m *TrustedMappingMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *TrustedMappingMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the TrustedMapping entity.
// If the TrustedMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrustedMappingMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *TrustedMappingMutation) ResetProvider() {
	m.provider = nil
}

// SetPlatformID sets the "platform_id" field.
func (m *TrustedMappingMutation) SetPlatformID(s string) {
	m.platform_id = &s
}

// PlatformID returns the value of the "platform_id" field in the mutation.
func (m *TrustedMappingMutation) PlatformID() (r string, exists bool) {
	v := m.platform_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformID returns the old "platform_id" field's value of the TrustedMapping entity.
// If the TrustedMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrustedMappingMutation) OldPlatformID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformID: %w", err)
	}
	return oldValue.PlatformID, nil
}

// ResetPlatformID resets all changes to the "platform_id" field.
func (m *TrustedMappingMutation) ResetPlatformID() {
	m.platform_id = nil
}

// SetPostID sets the "post_id" field.
func (m *TrustedMappingMutation) SetPostID(s string) {
	m.post_id = &s
}

// PostID returns the value of the "post_id" field in the mutation.
func (m *TrustedMappingMutation) PostID() (r string, exists bool) {
	v := m.post_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPostID returns the old "post_id" field's value of the TrustedMapping entity.
// If the TrustedMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrustedMappingMutation) OldPostID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostID: %w", err)
	}
	return oldValue.PostID, nil
}

// ResetPostID resets all changes to the "post_id" field.
func (m *TrustedMappingMutation) ResetPostID() {
	m.post_id = nil
}

// SetKind sets the "kind" field.
func (m *TrustedMappingMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *TrustedMappingMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the TrustedMapping entity.
// If the TrustedMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrustedMappingMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *TrustedMappingMutation) ResetKind() {
	m.kind = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TrustedMappingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TrustedMappingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TrustedMapping entity.
// If the TrustedMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrustedMappingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TrustedMappingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TrustedMappingMutation builder.
func (m *TrustedMappingMutation) Where(ps ...predicate.TrustedMapping) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrustedMappingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrustedMappingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TrustedMapping, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrustedMappingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrustedMappingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TrustedMapping).
func (m *TrustedMappingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrustedMappingMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.provider != nil {
		fields = append(fields, trustedmapping.FieldProvider)
	}
	if m.platform_id != nil {
		fields = append(fields, trustedmapping.FieldPlatformID)
	}
	if m.post_id != nil {
		fields = append(fields, trustedmapping.FieldPostID)
	}
	if m.kind != nil {
		fields = append(fields, trustedmapping.FieldKind)
	}
	if m.created_at != nil {
		fields = append(fields, trustedmapping.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrustedMappingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trustedmapping.FieldProvider:
		return m.Provider()
	case trustedmapping.FieldPlatformID:
		return m.PlatformID()
	case trustedmapping.FieldPostID:
		return m.PostID()
	case trustedmapping.FieldKind:
		return m.Kind()
	case trustedmapping.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrustedMappingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trustedmapping.FieldProvider:
		return m.OldProvider(ctx)
	case trustedmapping.FieldPlatformID:
		return m.OldPlatformID(ctx)
	case trustedmapping.FieldPostID:
		return m.OldPostID(ctx)
	case trustedmapping.FieldKind:
		return m.OldKind(ctx)
	case trustedmapping.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TrustedMapping field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrustedMappingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trustedmapping.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case trustedmapping.FieldPlatformID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformID(v)
		return nil
	case trustedmapping.FieldPostID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostID(v)
		return nil
	case trustedmapping.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case trustedmapping.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TrustedMapping field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrustedMappingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrustedMappingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrustedMappingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TrustedMapping numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrustedMappingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrustedMappingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrustedMappingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TrustedMapping nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrustedMappingMutation) ResetField(name string) error {
	switch name {
	case trustedmapping.FieldProvider:
		m.ResetProvider()
		return nil
	case trustedmapping.FieldPlatformID:
		m.ResetPlatformID()
		return nil
	case trustedmapping.FieldPostID:
		m.ResetPostID()
		return nil
	case trustedmapping.FieldKind:
		m.ResetKind()
		return nil
	case trustedmapping.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TrustedMapping field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrustedMappingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrustedMappingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrustedMappingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrustedMappingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrustedMappingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrustedMappingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrustedMappingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TrustedMapping unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrustedMappingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TrustedMapping edge %s", name)
}

// WebhookEventMutation represents an operation that mutates the WebhookEvent nodes in the graph.
type WebhookEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	provider           *string
	event_id           *string
	event_type         *string
	payload            *[]byte
	signature          *string
	signature_verified *bool
	processing_status  *webhookevent.ProcessingStatus
	attempt_count      *int
	addattempt_count   *int
	post_id            *string
	received_at        *time.Time
	processed_at       *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*WebhookEvent, error)
	predicates         []predicate.WebhookEvent
}

var _ ent.Mutation = (*WebhookEventMutation)(nil)

// webhookeventOption allows management of the mutation configuration using functional options.
type webhookeventOption func(*WebhookEventMutation)

// newWebhookEventMutation creates new mutation for the WebhookEvent entity.
func newWebhookEventMutation(c config, op Op, opts ...webhookeventOption) *WebhookEventMutation {
	m := &WebhookEventMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhookEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookEventID sets the ID field of the mutation.
func withWebhookEventID(id string) webhookeventOption {
	return func(m *WebhookEventMutation) {
		var (
			err   error
			once  sync.Once
			value *WebhookEvent
		)
		m.oldValue = func(ctx context.Context) (*WebhookEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WebhookEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhookEvent sets the old WebhookEvent of the mutation.
func withWebhookEvent(node *WebhookEvent) webhookeventOption {
	return func(m *WebhookEventMutation) {
		m.oldValue = func(context.Context) (*WebhookEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WebhookEvent entities.
func (m *WebhookEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WebhookEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProvider sets the "provider" field.
func (m *WebhookEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *WebhookEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *WebhookEventMutation) ResetProvider() {
	m.provider = nil
}

// SetEventID sets the "event_id" field.
func (m *WebhookEventMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *WebhookEventMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *WebhookEventMutation) ResetEventID() {
	m.event_id = nil
}

// SetEventType sets the "event_type" field.
func (m *WebhookEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *WebhookEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *WebhookEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *WebhookEventMutation) SetPayload(b []byte) {
	m.payload = &b
}

// Payload returns the value of the "payload" field in the mutation.
func (m *WebhookEventMutation) Payload() (r []byte, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldPayload(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *WebhookEventMutation) ResetPayload() {
	m.payload = nil
}

// SetSignature sets the "signature" field.
func (m *WebhookEventMutation) SetSignature(s string) {
	m.signature = &s
}

// Signature returns the value of the "signature" field in the mutation.
func (m *WebhookEventMutation) Signature() (r string, exists bool) {
	v := m.signature
	if v == nil {
		return
	}
	return *v, true
}

// OldSignature returns the old "signature" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldSignature(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignature: %w", err)
	}
	return oldValue.Signature, nil
}

// ResetSignature resets all changes to the "signature" field.
func (m *WebhookEventMutation) ResetSignature() {
	m.signature = nil
}

// SetSignatureVerified sets the "signature_verified" field.
func (m *WebhookEventMutation) SetSignatureVerified(b bool) {
	m.signature_verified = &b
}

// SignatureVerified returns the value of the "signature_verified" field in the mutation.
func (m *WebhookEventMutation) SignatureVerified() (r bool, exists bool) {
	v := m.signature_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldSignatureVerified returns the old "signature_verified" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldSignatureVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignatureVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignatureVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignatureVerified: %w", err)
	}
	return oldValue.SignatureVerified, nil
}

// ResetSignatureVerified resets all changes to the "signature_verified" field.
func (m *WebhookEventMutation) ResetSignatureVerified() {
	m.signature_verified = nil
}

// SetProcessingStatus sets the "processing_status" field.
func (m *WebhookEventMutation) SetProcessingStatus(ws webhookevent.ProcessingStatus) {
	m.processing_status = &ws
}

// ProcessingStatus returns the value of the "processing_status" field in the mutation.
func (m *WebhookEventMutation) ProcessingStatus() (r webhookevent.ProcessingStatus, exists bool) {
	v := m.processing_status
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingStatus returns the old "processing_status" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldProcessingStatus(ctx context.Context) (v webhookevent.ProcessingStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingStatus: %w", err)
	}
	return oldValue.ProcessingStatus, nil
}

// ResetProcessingStatus resets all changes to the "processing_status" field.
func (m *WebhookEventMutation) ResetProcessingStatus() {
	m.processing_status = nil
}

// SetAttemptCount sets the "attempt_count" field.
func (m *WebhookEventMutation) SetAttemptCount(i int) {
	m.attempt_count = &i
	m.addattempt_count = nil
}

// AttemptCount returns the value of the "attempt_count" field in the mutation.
func (m *WebhookEventMutation) AttemptCount() (r int, exists bool) {
	v := m.attempt_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptCount returns the old "attempt_count" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldAttemptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptCount: %w", err)
	}
	return oldValue.AttemptCount, nil
}

// AddAttemptCount adds i to the "attempt_count" field.
func (m *WebhookEventMutation) AddAttemptCount(i int) {
	if m.addattempt_count != nil {
		*m.addattempt_count += i
	} else {
		m.addattempt_count = &i
	}
}

// AddedAttemptCount returns the value that was added to the "attempt_count" field in this mutation.
func (m *WebhookEventMutation) AddedAttemptCount() (r int, exists bool) {
	v := m.addattempt_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptCount resets all changes to the "attempt_count" field.
func (m *WebhookEventMutation) ResetAttemptCount() {
	m.attempt_count = nil
	m.addattempt_count = nil
}

// SetPostID sets the "post_id" field.
func (m *WebhookEventMutation) SetPostID(s string) {
	m.post_id = &s
}

// PostID returns the value of the "post_id" field in the mutation.
func (m *WebhookEventMutation) PostID() (r string, exists bool) {
	v := m.post_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPostID returns the old "post_id" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldPostID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostID: %w", err)
	}
	return oldValue.PostID, nil
}

// ClearPostID clears the value of the "post_id" field.
func (m *WebhookEventMutation) ClearPostID() {
	m.post_id = nil
	m.clearedFields[webhookevent.FieldPostID] = struct{}{}
}

// PostIDCleared returns if the "post_id" field was cleared in this mutation.
func (m *WebhookEventMutation) PostIDCleared() bool {
	_, ok := m.clearedFields[webhookevent.FieldPostID]
	return ok
}

// ResetPostID resets all changes to the "post_id" field.
func (m *WebhookEventMutation) ResetPostID() {
	m.post_id = nil
	delete(m.clearedFields, webhookevent.FieldPostID)
}

// SetReceivedAt sets the "received_at" field.
func (m *WebhookEventMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *WebhookEventMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *WebhookEventMutation) ResetReceivedAt() {
	m.received_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *WebhookEventMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *WebhookEventMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *WebhookEventMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[webhookevent.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *WebhookEventMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[webhookevent.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *WebhookEventMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, webhookevent.FieldProcessedAt)
}

// Where appends a list predicates to the WebhookEventMutation builder.
func (m *WebhookEventMutation) Where(ps ...predicate.WebhookEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WebhookEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WebhookEvent).
func (m *WebhookEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.provider != nil {
		fields = append(fields, webhookevent.FieldProvider)
	}
	if m.event_id != nil {
		fields = append(fields, webhookevent.FieldEventID)
	}
	if m.event_type != nil {
		fields = append(fields, webhookevent.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, webhookevent.FieldPayload)
	}
	if m.signature != nil {
		fields = append(fields, webhookevent.FieldSignature)
	}
	if m.signature_verified != nil {
		fields = append(fields, webhookevent.FieldSignatureVerified)
	}
	if m.processing_status != nil {
		fields = append(fields, webhookevent.FieldProcessingStatus)
	}
	if m.attempt_count != nil {
		fields = append(fields, webhookevent.FieldAttemptCount)
	}
	if m.post_id != nil {
		fields = append(fields, webhookevent.FieldPostID)
	}
	if m.received_at != nil {
		fields = append(fields, webhookevent.FieldReceivedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, webhookevent.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhookevent.FieldProvider:
		return m.Provider()
	case webhookevent.FieldEventID:
		return m.EventID()
	case webhookevent.FieldEventType:
		return m.EventType()
	case webhookevent.FieldPayload:
		return m.Payload()
	case webhookevent.FieldSignature:
		return m.Signature()
	case webhookevent.FieldSignatureVerified:
		return m.SignatureVerified()
	case webhookevent.FieldProcessingStatus:
		return m.ProcessingStatus()
	case webhookevent.FieldAttemptCount:
		return m.AttemptCount()
	case webhookevent.FieldPostID:
		return m.PostID()
	case webhookevent.FieldReceivedAt:
		return m.ReceivedAt()
	case webhookevent.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhookevent.FieldProvider:
		return m.OldProvider(ctx)
	case webhookevent.FieldEventID:
		return m.OldEventID(ctx)
	case webhookevent.FieldEventType:
		return m.OldEventType(ctx)
	case webhookevent.FieldPayload:
		return m.OldPayload(ctx)
	case webhookevent.FieldSignature:
		return m.OldSignature(ctx)
	case webhookevent.FieldSignatureVerified:
		return m.OldSignatureVerified(ctx)
	case webhookevent.FieldProcessingStatus:
		return m.OldProcessingStatus(ctx)
	case webhookevent.FieldAttemptCount:
		return m.OldAttemptCount(ctx)
	case webhookevent.FieldPostID:
		return m.OldPostID(ctx)
	case webhookevent.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	case webhookevent.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WebhookEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhookevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case webhookevent.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case webhookevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case webhookevent.FieldPayload:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case webhookevent.FieldSignature:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignature(v)
		return nil
	case webhookevent.FieldSignatureVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignatureVerified(v)
		return nil
	case webhookevent.FieldProcessingStatus:
		v, ok := value.(webhookevent.ProcessingStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingStatus(v)
		return nil
	case webhookevent.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptCount(v)
		return nil
	case webhookevent.FieldPostID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostID(v)
		return nil
	case webhookevent.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	case webhookevent.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookEventMutation) AddedFields() []string {
	var fields []string
	if m.addattempt_count != nil {
		fields = append(fields, webhookevent.FieldAttemptCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case webhookevent.FieldAttemptCount:
		return m.AddedAttemptCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case webhookevent.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptCount(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(webhookevent.FieldPostID) {
		fields = append(fields, webhookevent.FieldPostID)
	}
	if m.FieldCleared(webhookevent.FieldProcessedAt) {
		fields = append(fields, webhookevent.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookEventMutation) ClearField(name string) error {
	switch name {
	case webhookevent.FieldPostID:
		m.ClearPostID()
		return nil
	case webhookevent.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookEventMutation) ResetField(name string) error {
	switch name {
	case webhookevent.FieldProvider:
		m.ResetProvider()
		return nil
	case webhookevent.FieldEventID:
		m.ResetEventID()
		return nil
	case webhookevent.FieldEventType:
		m.ResetEventType()
		return nil
	case webhookevent.FieldPayload:
		m.ResetPayload()
		return nil
	case webhookevent.FieldSignature:
		m.ResetSignature()
		return nil
	case webhookevent.FieldSignatureVerified:
		m.ResetSignatureVerified()
		return nil
	case webhookevent.FieldProcessingStatus:
		m.ResetProcessingStatus()
		return nil
	case webhookevent.FieldAttemptCount:
		m.ResetAttemptCount()
		return nil
	case webhookevent.FieldPostID:
		m.ResetPostID()
		return nil
	case webhookevent.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	case webhookevent.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WebhookEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WebhookEvent edge %s", name)
}
