// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/postflow-io/postflow/ent/account"
	"github.com/postflow-io/postflow/ent/predicate"
)

// AccountUpdate is the builder for updating Account entities.
type AccountUpdate struct {
	config
	hooks    []Hook
	mutation *AccountMutation
}

// Where appends a list predicates to the AccountUpdate builder.
func (_u *AccountUpdate) Where(ps ...predicate.Account) *AccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *AccountUpdate) SetDisplayName(v string) *AccountUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableDisplayName(v *string) *AccountUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *AccountUpdate) ClearDisplayName() *AccountUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AccountUpdate) SetStatus(v account.Status) *AccountUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableStatus(v *account.Status) *AccountUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAccessTokenCiphertext sets the "access_token_ciphertext" field.
func (_u *AccountUpdate) SetAccessTokenCiphertext(v []byte) *AccountUpdate {
	_u.mutation.SetAccessTokenCiphertext(v)
	return _u
}

// SetRefreshTokenCiphertext sets the "refresh_token_ciphertext" field.
func (_u *AccountUpdate) SetRefreshTokenCiphertext(v []byte) *AccountUpdate {
	_u.mutation.SetRefreshTokenCiphertext(v)
	return _u
}

// ClearRefreshTokenCiphertext clears the value of the "refresh_token_ciphertext" field.
func (_u *AccountUpdate) ClearRefreshTokenCiphertext() *AccountUpdate {
	_u.mutation.ClearRefreshTokenCiphertext()
	return _u
}

// SetTokenExpiresAt sets the "token_expires_at" field.
func (_u *AccountUpdate) SetTokenExpiresAt(v time.Time) *AccountUpdate {
	_u.mutation.SetTokenExpiresAt(v)
	return _u
}

// SetNillableTokenExpiresAt sets the "token_expires_at" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableTokenExpiresAt(v *time.Time) *AccountUpdate {
	if v != nil {
		_u.SetTokenExpiresAt(*v)
	}
	return _u
}

// ClearTokenExpiresAt clears the value of the "token_expires_at" field.
func (_u *AccountUpdate) ClearTokenExpiresAt() *AccountUpdate {
	_u.mutation.ClearTokenExpiresAt()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *AccountUpdate) SetPriority(v int) *AccountUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *AccountUpdate) SetNillablePriority(v *int) *AccountUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *AccountUpdate) AddPriority(v int) *AccountUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetLastScheduledAt sets the "last_scheduled_at" field.
func (_u *AccountUpdate) SetLastScheduledAt(v time.Time) *AccountUpdate {
	_u.mutation.SetLastScheduledAt(v)
	return _u
}

// SetNillableLastScheduledAt sets the "last_scheduled_at" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableLastScheduledAt(v *time.Time) *AccountUpdate {
	if v != nil {
		_u.SetLastScheduledAt(*v)
	}
	return _u
}

// ClearLastScheduledAt clears the value of the "last_scheduled_at" field.
func (_u *AccountUpdate) ClearLastScheduledAt() *AccountUpdate {
	_u.mutation.ClearLastScheduledAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AccountUpdate) SetUpdatedAt(v time.Time) *AccountUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AccountMutation object of the builder.
func (_u *AccountUpdate) Mutation() *AccountMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AccountUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AccountUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := account.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccountUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := account.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Account.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(account.Table, account.Columns, sqlgraph.NewFieldSpec(account.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(account.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(account.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(account.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AccessTokenCiphertext(); ok {
		_spec.SetField(account.FieldAccessTokenCiphertext, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.RefreshTokenCiphertext(); ok {
		_spec.SetField(account.FieldRefreshTokenCiphertext, field.TypeBytes, value)
	}
	if _u.mutation.RefreshTokenCiphertextCleared() {
		_spec.ClearField(account.FieldRefreshTokenCiphertext, field.TypeBytes)
	}
	if value, ok := _u.mutation.TokenExpiresAt(); ok {
		_spec.SetField(account.FieldTokenExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.TokenExpiresAtCleared() {
		_spec.ClearField(account.FieldTokenExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(account.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(account.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastScheduledAt(); ok {
		_spec.SetField(account.FieldLastScheduledAt, field.TypeTime, value)
	}
	if _u.mutation.LastScheduledAtCleared() {
		_spec.ClearField(account.FieldLastScheduledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(account.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{account.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AccountUpdateOne is the builder for updating a single Account entity.
type AccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AccountMutation
}

// SetDisplayName sets the "display_name" field.
func (_u *AccountUpdateOne) SetDisplayName(v string) *AccountUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableDisplayName(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *AccountUpdateOne) ClearDisplayName() *AccountUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AccountUpdateOne) SetStatus(v account.Status) *AccountUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableStatus(v *account.Status) *AccountUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAccessTokenCiphertext sets the "access_token_ciphertext" field.
func (_u *AccountUpdateOne) SetAccessTokenCiphertext(v []byte) *AccountUpdateOne {
	_u.mutation.SetAccessTokenCiphertext(v)
	return _u
}

// SetRefreshTokenCiphertext sets the "refresh_token_ciphertext" field.
func (_u *AccountUpdateOne) SetRefreshTokenCiphertext(v []byte) *AccountUpdateOne {
	_u.mutation.SetRefreshTokenCiphertext(v)
	return _u
}

// ClearRefreshTokenCiphertext clears the value of the "refresh_token_ciphertext" field.
func (_u *AccountUpdateOne) ClearRefreshTokenCiphertext() *AccountUpdateOne {
	_u.mutation.ClearRefreshTokenCiphertext()
	return _u
}

// SetTokenExpiresAt sets the "token_expires_at" field.
func (_u *AccountUpdateOne) SetTokenExpiresAt(v time.Time) *AccountUpdateOne {
	_u.mutation.SetTokenExpiresAt(v)
	return _u
}

// SetNillableTokenExpiresAt sets the "token_expires_at" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableTokenExpiresAt(v *time.Time) *AccountUpdateOne {
	if v != nil {
		_u.SetTokenExpiresAt(*v)
	}
	return _u
}

// ClearTokenExpiresAt clears the value of the "token_expires_at" field.
func (_u *AccountUpdateOne) ClearTokenExpiresAt() *AccountUpdateOne {
	_u.mutation.ClearTokenExpiresAt()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *AccountUpdateOne) SetPriority(v int) *AccountUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillablePriority(v *int) *AccountUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *AccountUpdateOne) AddPriority(v int) *AccountUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetLastScheduledAt sets the "last_scheduled_at" field.
func (_u *AccountUpdateOne) SetLastScheduledAt(v time.Time) *AccountUpdateOne {
	_u.mutation.SetLastScheduledAt(v)
	return _u
}

// SetNillableLastScheduledAt sets the "last_scheduled_at" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableLastScheduledAt(v *time.Time) *AccountUpdateOne {
	if v != nil {
		_u.SetLastScheduledAt(*v)
	}
	return _u
}

// ClearLastScheduledAt clears the value of the "last_scheduled_at" field.
func (_u *AccountUpdateOne) ClearLastScheduledAt() *AccountUpdateOne {
	_u.mutation.ClearLastScheduledAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AccountUpdateOne) SetUpdatedAt(v time.Time) *AccountUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AccountMutation object of the builder.
func (_u *AccountUpdateOne) Mutation() *AccountMutation {
	return _u.mutation
}

// Where appends a list predicates to the AccountUpdate builder.
func (_u *AccountUpdateOne) Where(ps ...predicate.Account) *AccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AccountUpdateOne) Select(field string, fields ...string) *AccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Account entity.
func (_u *AccountUpdateOne) Save(ctx context.Context) (*Account, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccountUpdateOne) SaveX(ctx context.Context) *Account {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AccountUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := account.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccountUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := account.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Account.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AccountUpdateOne) sqlSave(ctx context.Context) (_node *Account, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(account.Table, account.Columns, sqlgraph.NewFieldSpec(account.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Account.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, account.FieldID)
		for _, f := range fields {
			if !account.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != account.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(account.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(account.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(account.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AccessTokenCiphertext(); ok {
		_spec.SetField(account.FieldAccessTokenCiphertext, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.RefreshTokenCiphertext(); ok {
		_spec.SetField(account.FieldRefreshTokenCiphertext, field.TypeBytes, value)
	}
	if _u.mutation.RefreshTokenCiphertextCleared() {
		_spec.ClearField(account.FieldRefreshTokenCiphertext, field.TypeBytes)
	}
	if value, ok := _u.mutation.TokenExpiresAt(); ok {
		_spec.SetField(account.FieldTokenExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.TokenExpiresAtCleared() {
		_spec.ClearField(account.FieldTokenExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(account.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(account.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastScheduledAt(); ok {
		_spec.SetField(account.FieldLastScheduledAt, field.TypeTime, value)
	}
	if _u.mutation.LastScheduledAtCleared() {
		_spec.ClearField(account.FieldLastScheduledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(account.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Account{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{account.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
