// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/postflow-io/postflow/ent/predicate"
	"github.com/postflow-io/postflow/ent/ratelimitbucket"
)

// RateLimitBucketDelete is the builder for deleting a RateLimitBucket entity.
type RateLimitBucketDelete struct {
	config
	hooks    []Hook
	mutation *RateLimitBucketMutation
}

// Where appends a list predicates to the RateLimitBucketDelete builder.
func (_d *RateLimitBucketDelete) Where(ps ...predicate.RateLimitBucket) *RateLimitBucketDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RateLimitBucketDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RateLimitBucketDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RateLimitBucketDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(ratelimitbucket.Table, sqlgraph.NewFieldSpec(ratelimitbucket.FieldID, field.TypeString))
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

// RateLimitBucketDeleteOne is the builder for deleting a single RateLimitBucket entity.
type RateLimitBucketDeleteOne struct {
	_d *RateLimitBucketDelete
}

// Where appends a list predicates to the RateLimitBucketDelete builder.
func (_d *RateLimitBucketDeleteOne) Where(ps ...predicate.RateLimitBucket) *RateLimitBucketDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RateLimitBucketDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{ratelimitbucket.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RateLimitBucketDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
