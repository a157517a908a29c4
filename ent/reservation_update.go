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
	"github.com/postflow-io/postflow/ent/predicate"
	"github.com/postflow-io/postflow/ent/reservation"
)

// ReservationUpdate is the builder for updating Reservation entities.
type ReservationUpdate struct {
	config
	hooks    []Hook
	mutation *ReservationMutation
}

// Where appends a list predicates to the ReservationUpdate builder.
func (_u *ReservationUpdate) Where(ps ...predicate.Reservation) *ReservationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAmountUsd sets the "amount_usd" field.
func (_u *ReservationUpdate) SetAmountUsd(v float64) *ReservationUpdate {
	_u.mutation.ResetAmountUsd()
	_u.mutation.SetAmountUsd(v)
	return _u
}

// SetNillableAmountUsd sets the "amount_usd" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableAmountUsd(v *float64) *ReservationUpdate {
	if v != nil {
		_u.SetAmountUsd(*v)
	}
	return _u
}

// AddAmountUsd adds value to the "amount_usd" field.
func (_u *ReservationUpdate) AddAmountUsd(v float64) *ReservationUpdate {
	_u.mutation.AddAmountUsd(v)
	return _u
}

// SetCommittedUsd sets the "committed_usd" field.
func (_u *ReservationUpdate) SetCommittedUsd(v float64) *ReservationUpdate {
	_u.mutation.ResetCommittedUsd()
	_u.mutation.SetCommittedUsd(v)
	return _u
}

// SetNillableCommittedUsd sets the "committed_usd" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableCommittedUsd(v *float64) *ReservationUpdate {
	if v != nil {
		_u.SetCommittedUsd(*v)
	}
	return _u
}

// AddCommittedUsd adds value to the "committed_usd" field.
func (_u *ReservationUpdate) AddCommittedUsd(v float64) *ReservationUpdate {
	_u.mutation.AddCommittedUsd(v)
	return _u
}

// ClearCommittedUsd clears the value of the "committed_usd" field.
func (_u *ReservationUpdate) ClearCommittedUsd() *ReservationUpdate {
	_u.mutation.ClearCommittedUsd()
	return _u
}

// SetState sets the "state" field.
func (_u *ReservationUpdate) SetState(v reservation.State) *ReservationUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableState(v *reservation.State) *ReservationUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ReservationUpdate) SetExpiresAt(v time.Time) *ReservationUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableExpiresAt(v *time.Time) *ReservationUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReservationUpdate) SetUpdatedAt(v time.Time) *ReservationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ReservationMutation object of the builder.
func (_u *ReservationUpdate) Mutation() *ReservationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReservationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReservationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReservationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReservationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReservationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reservation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReservationUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := reservation.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Reservation.state": %w`, err)}
		}
	}
	return nil
}

func (_u *ReservationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reservation.Table, reservation.Columns, sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AmountUsd(); ok {
		_spec.SetField(reservation.FieldAmountUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmountUsd(); ok {
		_spec.AddField(reservation.FieldAmountUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CommittedUsd(); ok {
		_spec.SetField(reservation.FieldCommittedUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCommittedUsd(); ok {
		_spec.AddField(reservation.FieldCommittedUsd, field.TypeFloat64, value)
	}
	if _u.mutation.CommittedUsdCleared() {
		_spec.ClearField(reservation.FieldCommittedUsd, field.TypeFloat64)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(reservation.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(reservation.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reservation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reservation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReservationUpdateOne is the builder for updating a single Reservation entity.
type ReservationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReservationMutation
}

// SetAmountUsd sets the "amount_usd" field.
func (_u *ReservationUpdateOne) SetAmountUsd(v float64) *ReservationUpdateOne {
	_u.mutation.ResetAmountUsd()
	_u.mutation.SetAmountUsd(v)
	return _u
}

// SetNillableAmountUsd sets the "amount_usd" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableAmountUsd(v *float64) *ReservationUpdateOne {
	if v != nil {
		_u.SetAmountUsd(*v)
	}
	return _u
}

// AddAmountUsd adds value to the "amount_usd" field.
func (_u *ReservationUpdateOne) AddAmountUsd(v float64) *ReservationUpdateOne {
	_u.mutation.AddAmountUsd(v)
	return _u
}

// SetCommittedUsd sets the "committed_usd" field.
func (_u *ReservationUpdateOne) SetCommittedUsd(v float64) *ReservationUpdateOne {
	_u.mutation.ResetCommittedUsd()
	_u.mutation.SetCommittedUsd(v)
	return _u
}

// SetNillableCommittedUsd sets the "committed_usd" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableCommittedUsd(v *float64) *ReservationUpdateOne {
	if v != nil {
		_u.SetCommittedUsd(*v)
	}
	return _u
}

// AddCommittedUsd adds value to the "committed_usd" field.
func (_u *ReservationUpdateOne) AddCommittedUsd(v float64) *ReservationUpdateOne {
	_u.mutation.AddCommittedUsd(v)
	return _u
}

// ClearCommittedUsd clears the value of the "committed_usd" field.
func (_u *ReservationUpdateOne) ClearCommittedUsd() *ReservationUpdateOne {
	_u.mutation.ClearCommittedUsd()
	return _u
}

// SetState sets the "state" field.
func (_u *ReservationUpdateOne) SetState(v reservation.State) *ReservationUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableState(v *reservation.State) *ReservationUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ReservationUpdateOne) SetExpiresAt(v time.Time) *ReservationUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableExpiresAt(v *time.Time) *ReservationUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReservationUpdateOne) SetUpdatedAt(v time.Time) *ReservationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ReservationMutation object of the builder.
func (_u *ReservationUpdateOne) Mutation() *ReservationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReservationUpdate builder.
func (_u *ReservationUpdateOne) Where(ps ...predicate.Reservation) *ReservationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReservationUpdateOne) Select(field string, fields ...string) *ReservationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Reservation entity.
func (_u *ReservationUpdateOne) Save(ctx context.Context) (*Reservation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReservationUpdateOne) SaveX(ctx context.Context) *Reservation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReservationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReservationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReservationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reservation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReservationUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := reservation.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Reservation.state": %w`, err)}
		}
	}
	return nil
}

func (_u *ReservationUpdateOne) sqlSave(ctx context.Context) (_node *Reservation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reservation.Table, reservation.Columns, sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Reservation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reservation.FieldID)
		for _, f := range fields {
			if !reservation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reservation.FieldID {
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
	if value, ok := _u.mutation.AmountUsd(); ok {
		_spec.SetField(reservation.FieldAmountUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmountUsd(); ok {
		_spec.AddField(reservation.FieldAmountUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CommittedUsd(); ok {
		_spec.SetField(reservation.FieldCommittedUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCommittedUsd(); ok {
		_spec.AddField(reservation.FieldCommittedUsd, field.TypeFloat64, value)
	}
	if _u.mutation.CommittedUsdCleared() {
		_spec.ClearField(reservation.FieldCommittedUsd, field.TypeFloat64)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(reservation.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(reservation.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reservation.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Reservation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reservation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
