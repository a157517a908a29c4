// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/postflow-io/postflow/ent/budgetperiod"
	"github.com/postflow-io/postflow/ent/predicate"
)

// BudgetPeriodDelete is the builder for deleting a BudgetPeriod entity.
type BudgetPeriodDelete struct {
	config
	hooks    []Hook
	mutation *BudgetPeriodMutation
}

// Where appends a list predicates to the BudgetPeriodDelete builder.
func (_d *BudgetPeriodDelete) Where(ps ...predicate.BudgetPeriod) *BudgetPeriodDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BudgetPeriodDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BudgetPeriodDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BudgetPeriodDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(budgetperiod.Table, sqlgraph.NewFieldSpec(budgetperiod.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// BudgetPeriodDeleteOne is the builder for deleting a single BudgetPeriod entity.
type BudgetPeriodDeleteOne struct {
	_d *BudgetPeriodDelete
}

// Where appends a list predicates to the BudgetPeriodDelete builder.
func (_d *BudgetPeriodDeleteOne) Where(ps ...predicate.BudgetPeriod) *BudgetPeriodDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BudgetPeriodDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{budgetperiod.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BudgetPeriodDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
