// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/postflow-io/postflow/ent/budgetperiod"
)

// BudgetPeriodCreate is the builder for creating a BudgetPeriod entity.
type BudgetPeriodCreate struct {
	config
	mutation *BudgetPeriodMutation
	hooks    []Hook
}

// SetCreatorID sets the "creator_id" field.
func (_c *BudgetPeriodCreate) SetCreatorID(v string) *BudgetPeriodCreate {
	_c.mutation.SetCreatorID(v)
	return _c
}

// SetMonth sets the "month" field.
func (_c *BudgetPeriodCreate) SetMonth(v string) *BudgetPeriodCreate {
	_c.mutation.SetMonth(v)
	return _c
}

// SetLimitUsd sets the "limit_usd" field.
func (_c *BudgetPeriodCreate) SetLimitUsd(v float64) *BudgetPeriodCreate {
	_c.mutation.SetLimitUsd(v)
	return _c
}

// SetSoftPct sets the "soft_pct" field.
func (_c *BudgetPeriodCreate) SetSoftPct(v float64) *BudgetPeriodCreate {
	_c.mutation.SetSoftPct(v)
	return _c
}

// SetNillableSoftPct sets the "soft_pct" field if the given value is not nil.
func (_c *BudgetPeriodCreate) SetNillableSoftPct(v *float64) *BudgetPeriodCreate {
	if v != nil {
		_c.SetSoftPct(*v)
	}
	return _c
}

// SetSpentUsd sets the "spent_usd" field.
func (_c *BudgetPeriodCreate) SetSpentUsd(v float64) *BudgetPeriodCreate {
	_c.mutation.SetSpentUsd(v)
	return _c
}

// SetNillableSpentUsd sets the "spent_usd" field if the given value is not nil.
func (_c *BudgetPeriodCreate) SetNillableSpentUsd(v *float64) *BudgetPeriodCreate {
	if v != nil {
		_c.SetSpentUsd(*v)
	}
	return _c
}

// SetReservedUsd sets the "reserved_usd" field.
func (_c *BudgetPeriodCreate) SetReservedUsd(v float64) *BudgetPeriodCreate {
	_c.mutation.SetReservedUsd(v)
	return _c
}

// SetNillableReservedUsd sets the "reserved_usd" field if the given value is not nil.
func (_c *BudgetPeriodCreate) SetNillableReservedUsd(v *float64) *BudgetPeriodCreate {
	if v != nil {
		_c.SetReservedUsd(*v)
	}
	return _c
}

// SetHardStop sets the "hard_stop" field.
func (_c *BudgetPeriodCreate) SetHardStop(v bool) *BudgetPeriodCreate {
	_c.mutation.SetHardStop(v)
	return _c
}

// SetNillableHardStop sets the "hard_stop" field if the given value is not nil.
func (_c *BudgetPeriodCreate) SetNillableHardStop(v *bool) *BudgetPeriodCreate {
	if v != nil {
		_c.SetHardStop(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BudgetPeriodCreate) SetCreatedAt(v time.Time) *BudgetPeriodCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BudgetPeriodCreate) SetNillableCreatedAt(v *time.Time) *BudgetPeriodCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BudgetPeriodCreate) SetUpdatedAt(v time.Time) *BudgetPeriodCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BudgetPeriodCreate) SetNillableUpdatedAt(v *time.Time) *BudgetPeriodCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BudgetPeriodCreate) SetID(v string) *BudgetPeriodCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BudgetPeriodMutation object of the builder.
func (_c *BudgetPeriodCreate) Mutation() *BudgetPeriodMutation {
	return _c.mutation
}

// Save creates the BudgetPeriod in the database.
func (_c *BudgetPeriodCreate) Save(ctx context.Context) (*BudgetPeriod, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BudgetPeriodCreate) SaveX(ctx context.Context) *BudgetPeriod {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetPeriodCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetPeriodCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BudgetPeriodCreate) defaults() {
	if _, ok := _c.mutation.SoftPct(); !ok {
		v := budgetperiod.DefaultSoftPct
		_c.mutation.SetSoftPct(v)
	}
	if _, ok := _c.mutation.SpentUsd(); !ok {
		v := budgetperiod.DefaultSpentUsd
		_c.mutation.SetSpentUsd(v)
	}
	if _, ok := _c.mutation.ReservedUsd(); !ok {
		v := budgetperiod.DefaultReservedUsd
		_c.mutation.SetReservedUsd(v)
	}
	if _, ok := _c.mutation.HardStop(); !ok {
		v := budgetperiod.DefaultHardStop
		_c.mutation.SetHardStop(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := budgetperiod.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := budgetperiod.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BudgetPeriodCreate) check() error {
	if _, ok := _c.mutation.CreatorID(); !ok {
		return &ValidationError{Name: "creator_id", err: errors.New(`ent: missing required field "BudgetPeriod.creator_id"`)}
	}
	if _, ok := _c.mutation.Month(); !ok {
		return &ValidationError{Name: "month", err: errors.New(`ent: missing required field "BudgetPeriod.month"`)}
	}
	if _, ok := _c.mutation.LimitUsd(); !ok {
		return &ValidationError{Name: "limit_usd", err: errors.New(`ent: missing required field "BudgetPeriod.limit_usd"`)}
	}
	if _, ok := _c.mutation.SoftPct(); !ok {
		return &ValidationError{Name: "soft_pct", err: errors.New(`ent: missing required field "BudgetPeriod.soft_pct"`)}
	}
	if _, ok := _c.mutation.SpentUsd(); !ok {
		return &ValidationError{Name: "spent_usd", err: errors.New(`ent: missing required field "BudgetPeriod.spent_usd"`)}
	}
	if _, ok := _c.mutation.ReservedUsd(); !ok {
		return &ValidationError{Name: "reserved_usd", err: errors.New(`ent: missing required field "BudgetPeriod.reserved_usd"`)}
	}
	if _, ok := _c.mutation.HardStop(); !ok {
		return &ValidationError{Name: "hard_stop", err: errors.New(`ent: missing required field "BudgetPeriod.hard_stop"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BudgetPeriod.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BudgetPeriod.updated_at"`)}
	}
	return nil
}

func (_c *BudgetPeriodCreate) sqlSave(ctx context.Context) (*BudgetPeriod, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected BudgetPeriod.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BudgetPeriodCreate) createSpec() (*BudgetPeriod, *sqlgraph.CreateSpec) {
	var (
		_node = &BudgetPeriod{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(budgetperiod.Table, sqlgraph.NewFieldSpec(budgetperiod.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatorID(); ok {
		_spec.SetField(budgetperiod.FieldCreatorID, field.TypeString, value)
		_node.CreatorID = value
	}
	if value, ok := _c.mutation.Month(); ok {
		_spec.SetField(budgetperiod.FieldMonth, field.TypeString, value)
		_node.Month = value
	}
	if value, ok := _c.mutation.LimitUsd(); ok {
		_spec.SetField(budgetperiod.FieldLimitUsd, field.TypeFloat64, value)
		_node.LimitUsd = value
	}
	if value, ok := _c.mutation.SoftPct(); ok {
		_spec.SetField(budgetperiod.FieldSoftPct, field.TypeFloat64, value)
		_node.SoftPct = value
	}
	if value, ok := _c.mutation.SpentUsd(); ok {
		_spec.SetField(budgetperiod.FieldSpentUsd, field.TypeFloat64, value)
		_node.SpentUsd = value
	}
	if value, ok := _c.mutation.ReservedUsd(); ok {
		_spec.SetField(budgetperiod.FieldReservedUsd, field.TypeFloat64, value)
		_node.ReservedUsd = value
	}
	if value, ok := _c.mutation.HardStop(); ok {
		_spec.SetField(budgetperiod.FieldHardStop, field.TypeBool, value)
		_node.HardStop = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(budgetperiod.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(budgetperiod.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// BudgetPeriodCreateBulk is the builder for creating many BudgetPeriod entities in bulk.
type BudgetPeriodCreateBulk struct {
	config
	err      error
	builders []*BudgetPeriodCreate
}

// Save creates the BudgetPeriod entities in the database.
func (_c *BudgetPeriodCreateBulk) Save(ctx context.Context) ([]*BudgetPeriod, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BudgetPeriod, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BudgetPeriodMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BudgetPeriodCreateBulk) SaveX(ctx context.Context) []*BudgetPeriod {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetPeriodCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetPeriodCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
