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
	"github.com/postflow-io/postflow/ent/budgetperiod"
	"github.com/postflow-io/postflow/ent/predicate"
)

// BudgetPeriodUpdate is the builder for updating BudgetPeriod entities.
type BudgetPeriodUpdate struct {
	config
	hooks    []Hook
	mutation *BudgetPeriodMutation
}

// Where appends a list predicates to the BudgetPeriodUpdate builder.
func (_u *BudgetPeriodUpdate) Where(ps ...predicate.BudgetPeriod) *BudgetPeriodUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLimitUsd sets the "limit_usd" field.
func (_u *BudgetPeriodUpdate) SetLimitUsd(v float64) *BudgetPeriodUpdate {
	_u.mutation.ResetLimitUsd()
	_u.mutation.SetLimitUsd(v)
	return _u
}

// SetNillableLimitUsd sets the "limit_usd" field if the given value is not nil.
func (_u *BudgetPeriodUpdate) SetNillableLimitUsd(v *float64) *BudgetPeriodUpdate {
	if v != nil {
		_u.SetLimitUsd(*v)
	}
	return _u
}

// AddLimitUsd adds value to the "limit_usd" field.
func (_u *BudgetPeriodUpdate) AddLimitUsd(v float64) *BudgetPeriodUpdate {
	_u.mutation.AddLimitUsd(v)
	return _u
}

// SetSoftPct sets the "soft_pct" field.
func (_u *BudgetPeriodUpdate) SetSoftPct(v float64) *BudgetPeriodUpdate {
	_u.mutation.ResetSoftPct()
	_u.mutation.SetSoftPct(v)
	return _u
}

// SetNillableSoftPct sets the "soft_pct" field if the given value is not nil.
func (_u *BudgetPeriodUpdate) SetNillableSoftPct(v *float64) *BudgetPeriodUpdate {
	if v != nil {
		_u.SetSoftPct(*v)
	}
	return _u
}

// AddSoftPct adds value to the "soft_pct" field.
func (_u *BudgetPeriodUpdate) AddSoftPct(v float64) *BudgetPeriodUpdate {
	_u.mutation.AddSoftPct(v)
	return _u
}

// SetSpentUsd sets the "spent_usd" field.
func (_u *BudgetPeriodUpdate) SetSpentUsd(v float64) *BudgetPeriodUpdate {
	_u.mutation.ResetSpentUsd()
	_u.mutation.SetSpentUsd(v)
	return _u
}

// SetNillableSpentUsd sets the "spent_usd" field if the given value is not nil.
func (_u *BudgetPeriodUpdate) SetNillableSpentUsd(v *float64) *BudgetPeriodUpdate {
	if v != nil {
		_u.SetSpentUsd(*v)
	}
	return _u
}

// AddSpentUsd adds value to the "spent_usd" field.
func (_u *BudgetPeriodUpdate) AddSpentUsd(v float64) *BudgetPeriodUpdate {
	_u.mutation.AddSpentUsd(v)
	return _u
}

// SetReservedUsd sets the "reserved_usd" field.
func (_u *BudgetPeriodUpdate) SetReservedUsd(v float64) *BudgetPeriodUpdate {
	_u.mutation.ResetReservedUsd()
	_u.mutation.SetReservedUsd(v)
	return _u
}

// SetNillableReservedUsd sets the "reserved_usd" field if the given value is not nil.
func (_u *BudgetPeriodUpdate) SetNillableReservedUsd(v *float64) *BudgetPeriodUpdate {
	if v != nil {
		_u.SetReservedUsd(*v)
	}
	return _u
}

// AddReservedUsd adds value to the "reserved_usd" field.
func (_u *BudgetPeriodUpdate) AddReservedUsd(v float64) *BudgetPeriodUpdate {
	_u.mutation.AddReservedUsd(v)
	return _u
}

// SetHardStop sets the "hard_stop" field.
func (_u *BudgetPeriodUpdate) SetHardStop(v bool) *BudgetPeriodUpdate {
	_u.mutation.SetHardStop(v)
	return _u
}

// SetNillableHardStop sets the "hard_stop" field if the given value is not nil.
func (_u *BudgetPeriodUpdate) SetNillableHardStop(v *bool) *BudgetPeriodUpdate {
	if v != nil {
		_u.SetHardStop(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BudgetPeriodUpdate) SetUpdatedAt(v time.Time) *BudgetPeriodUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BudgetPeriodMutation object of the builder.
func (_u *BudgetPeriodUpdate) Mutation() *BudgetPeriodMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BudgetPeriodUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BudgetPeriodUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BudgetPeriodUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BudgetPeriodUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BudgetPeriodUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := budgetperiod.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *BudgetPeriodUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(budgetperiod.Table, budgetperiod.Columns, sqlgraph.NewFieldSpec(budgetperiod.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LimitUsd(); ok {
		_spec.SetField(budgetperiod.FieldLimitUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLimitUsd(); ok {
		_spec.AddField(budgetperiod.FieldLimitUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SoftPct(); ok {
		_spec.SetField(budgetperiod.FieldSoftPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSoftPct(); ok {
		_spec.AddField(budgetperiod.FieldSoftPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SpentUsd(); ok {
		_spec.SetField(budgetperiod.FieldSpentUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSpentUsd(); ok {
		_spec.AddField(budgetperiod.FieldSpentUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReservedUsd(); ok {
		_spec.SetField(budgetperiod.FieldReservedUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReservedUsd(); ok {
		_spec.AddField(budgetperiod.FieldReservedUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HardStop(); ok {
		_spec.SetField(budgetperiod.FieldHardStop, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(budgetperiod.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{budgetperiod.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BudgetPeriodUpdateOne is the builder for updating a single BudgetPeriod entity.
type BudgetPeriodUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BudgetPeriodMutation
}

// SetLimitUsd sets the "limit_usd" field.
func (_u *BudgetPeriodUpdateOne) SetLimitUsd(v float64) *BudgetPeriodUpdateOne {
	_u.mutation.ResetLimitUsd()
	_u.mutation.SetLimitUsd(v)
	return _u
}

// SetNillableLimitUsd sets the "limit_usd" field if the given value is not nil.
func (_u *BudgetPeriodUpdateOne) SetNillableLimitUsd(v *float64) *BudgetPeriodUpdateOne {
	if v != nil {
		_u.SetLimitUsd(*v)
	}
	return _u
}

// AddLimitUsd adds value to the "limit_usd" field.
func (_u *BudgetPeriodUpdateOne) AddLimitUsd(v float64) *BudgetPeriodUpdateOne {
	_u.mutation.AddLimitUsd(v)
	return _u
}

// SetSoftPct sets the "soft_pct" field.
func (_u *BudgetPeriodUpdateOne) SetSoftPct(v float64) *BudgetPeriodUpdateOne {
	_u.mutation.ResetSoftPct()
	_u.mutation.SetSoftPct(v)
	return _u
}

// SetNillableSoftPct sets the "soft_pct" field if the given value is not nil.
func (_u *BudgetPeriodUpdateOne) SetNillableSoftPct(v *float64) *BudgetPeriodUpdateOne {
	if v != nil {
		_u.SetSoftPct(*v)
	}
	return _u
}

// AddSoftPct adds value to the "soft_pct" field.
func (_u *BudgetPeriodUpdateOne) AddSoftPct(v float64) *BudgetPeriodUpdateOne {
	_u.mutation.AddSoftPct(v)
	return _u
}

// SetSpentUsd sets the "spent_usd" field.
func (_u *BudgetPeriodUpdateOne) SetSpentUsd(v float64) *BudgetPeriodUpdateOne {
	_u.mutation.ResetSpentUsd()
	_u.mutation.SetSpentUsd(v)
	return _u
}

// SetNillableSpentUsd sets the "spent_usd" field if the given value is not nil.
func (_u *BudgetPeriodUpdateOne) SetNillableSpentUsd(v *float64) *BudgetPeriodUpdateOne {
	if v != nil {
		_u.SetSpentUsd(*v)
	}
	return _u
}

// AddSpentUsd adds value to the "spent_usd" field.
func (_u *BudgetPeriodUpdateOne) AddSpentUsd(v float64) *BudgetPeriodUpdateOne {
	_u.mutation.AddSpentUsd(v)
	return _u
}

// SetReservedUsd sets the "reserved_usd" field.
func (_u *BudgetPeriodUpdateOne) SetReservedUsd(v float64) *BudgetPeriodUpdateOne {
	_u.mutation.ResetReservedUsd()
	_u.mutation.SetReservedUsd(v)
	return _u
}

// SetNillableReservedUsd sets the "reserved_usd" field if the given value is not nil.
func (_u *BudgetPeriodUpdateOne) SetNillableReservedUsd(v *float64) *BudgetPeriodUpdateOne {
	if v != nil {
		_u.SetReservedUsd(*v)
	}
	return _u
}

// AddReservedUsd adds value to the "reserved_usd" field.
func (_u *BudgetPeriodUpdateOne) AddReservedUsd(v float64) *BudgetPeriodUpdateOne {
	_u.mutation.AddReservedUsd(v)
	return _u
}

// SetHardStop sets the "hard_stop" field.
func (_u *BudgetPeriodUpdateOne) SetHardStop(v bool) *BudgetPeriodUpdateOne {
	_u.mutation.SetHardStop(v)
	return _u
}

// SetNillableHardStop sets the "hard_stop" field if the given value is not nil.
func (_u *BudgetPeriodUpdateOne) SetNillableHardStop(v *bool) *BudgetPeriodUpdateOne {
	if v != nil {
		_u.SetHardStop(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BudgetPeriodUpdateOne) SetUpdatedAt(v time.Time) *BudgetPeriodUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BudgetPeriodMutation object of the builder.
func (_u *BudgetPeriodUpdateOne) Mutation() *BudgetPeriodMutation {
	return _u.mutation
}

// Where appends a list predicates to the BudgetPeriodUpdate builder.
func (_u *BudgetPeriodUpdateOne) Where(ps ...predicate.BudgetPeriod) *BudgetPeriodUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BudgetPeriodUpdateOne) Select(field string, fields ...string) *BudgetPeriodUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BudgetPeriod entity.
func (_u *BudgetPeriodUpdateOne) Save(ctx context.Context) (*BudgetPeriod, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BudgetPeriodUpdateOne) SaveX(ctx context.Context) *BudgetPeriod {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BudgetPeriodUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BudgetPeriodUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BudgetPeriodUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := budgetperiod.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *BudgetPeriodUpdateOne) sqlSave(ctx context.Context) (_node *BudgetPeriod, err error) {
	_spec := sqlgraph.NewUpdateSpec(budgetperiod.Table, budgetperiod.Columns, sqlgraph.NewFieldSpec(budgetperiod.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BudgetPeriod.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, budgetperiod.FieldID)
		for _, f := range fields {
			if !budgetperiod.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != budgetperiod.FieldID {
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
	if value, ok := _u.mutation.LimitUsd(); ok {
		_spec.SetField(budgetperiod.FieldLimitUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLimitUsd(); ok {
		_spec.AddField(budgetperiod.FieldLimitUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SoftPct(); ok {
		_spec.SetField(budgetperiod.FieldSoftPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSoftPct(); ok {
		_spec.AddField(budgetperiod.FieldSoftPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SpentUsd(); ok {
		_spec.SetField(budgetperiod.FieldSpentUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSpentUsd(); ok {
		_spec.AddField(budgetperiod.FieldSpentUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReservedUsd(); ok {
		_spec.SetField(budgetperiod.FieldReservedUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReservedUsd(); ok {
		_spec.AddField(budgetperiod.FieldReservedUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HardStop(); ok {
		_spec.SetField(budgetperiod.FieldHardStop, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(budgetperiod.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &BudgetPeriod{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{budgetperiod.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
