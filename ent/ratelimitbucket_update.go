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
	"github.com/postflow-io/postflow/ent/ratelimitbucket"
)

// RateLimitBucketUpdate is the builder for updating RateLimitBucket entities.
type RateLimitBucketUpdate struct {
	config
	hooks    []Hook
	mutation *RateLimitBucketMutation
}

// Where appends a list predicates to the RateLimitBucketUpdate builder.
func (_u *RateLimitBucketUpdate) Where(ps ...predicate.RateLimitBucket) *RateLimitBucketUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTokens sets the "tokens" field.
func (_u *RateLimitBucketUpdate) SetTokens(v float64) *RateLimitBucketUpdate {
	_u.mutation.ResetTokens()
	_u.mutation.SetTokens(v)
	return _u
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_u *RateLimitBucketUpdate) SetNillableTokens(v *float64) *RateLimitBucketUpdate {
	if v != nil {
		_u.SetTokens(*v)
	}
	return _u
}

// AddTokens adds value to the "tokens" field.
func (_u *RateLimitBucketUpdate) AddTokens(v float64) *RateLimitBucketUpdate {
	_u.mutation.AddTokens(v)
	return _u
}

// SetCapacity sets the "capacity" field.
func (_u *RateLimitBucketUpdate) SetCapacity(v float64) *RateLimitBucketUpdate {
	_u.mutation.ResetCapacity()
	_u.mutation.SetCapacity(v)
	return _u
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_u *RateLimitBucketUpdate) SetNillableCapacity(v *float64) *RateLimitBucketUpdate {
	if v != nil {
		_u.SetCapacity(*v)
	}
	return _u
}

// AddCapacity adds value to the "capacity" field.
func (_u *RateLimitBucketUpdate) AddCapacity(v float64) *RateLimitBucketUpdate {
	_u.mutation.AddCapacity(v)
	return _u
}

// SetRefillRate sets the "refill_rate" field.
func (_u *RateLimitBucketUpdate) SetRefillRate(v float64) *RateLimitBucketUpdate {
	_u.mutation.ResetRefillRate()
	_u.mutation.SetRefillRate(v)
	return _u
}

// SetNillableRefillRate sets the "refill_rate" field if the given value is not nil.
func (_u *RateLimitBucketUpdate) SetNillableRefillRate(v *float64) *RateLimitBucketUpdate {
	if v != nil {
		_u.SetRefillRate(*v)
	}
	return _u
}

// AddRefillRate adds value to the "refill_rate" field.
func (_u *RateLimitBucketUpdate) AddRefillRate(v float64) *RateLimitBucketUpdate {
	_u.mutation.AddRefillRate(v)
	return _u
}

// SetLastRefillAt sets the "last_refill_at" field.
func (_u *RateLimitBucketUpdate) SetLastRefillAt(v time.Time) *RateLimitBucketUpdate {
	_u.mutation.SetLastRefillAt(v)
	return _u
}

// SetNillableLastRefillAt sets the "last_refill_at" field if the given value is not nil.
func (_u *RateLimitBucketUpdate) SetNillableLastRefillAt(v *time.Time) *RateLimitBucketUpdate {
	if v != nil {
		_u.SetLastRefillAt(*v)
	}
	return _u
}

// SetCooldownUntil sets the "cooldown_until" field.
func (_u *RateLimitBucketUpdate) SetCooldownUntil(v time.Time) *RateLimitBucketUpdate {
	_u.mutation.SetCooldownUntil(v)
	return _u
}

// SetNillableCooldownUntil sets the "cooldown_until" field if the given value is not nil.
func (_u *RateLimitBucketUpdate) SetNillableCooldownUntil(v *time.Time) *RateLimitBucketUpdate {
	if v != nil {
		_u.SetCooldownUntil(*v)
	}
	return _u
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (_u *RateLimitBucketUpdate) ClearCooldownUntil() *RateLimitBucketUpdate {
	_u.mutation.ClearCooldownUntil()
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *RateLimitBucketUpdate) SetConsecutiveFailures(v int) *RateLimitBucketUpdate {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *RateLimitBucketUpdate) SetNillableConsecutiveFailures(v *int) *RateLimitBucketUpdate {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *RateLimitBucketUpdate) AddConsecutiveFailures(v int) *RateLimitBucketUpdate {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// SetBreakerState sets the "breaker_state" field.
func (_u *RateLimitBucketUpdate) SetBreakerState(v ratelimitbucket.BreakerState) *RateLimitBucketUpdate {
	_u.mutation.SetBreakerState(v)
	return _u
}

// SetNillableBreakerState sets the "breaker_state" field if the given value is not nil.
func (_u *RateLimitBucketUpdate) SetNillableBreakerState(v *ratelimitbucket.BreakerState) *RateLimitBucketUpdate {
	if v != nil {
		_u.SetBreakerState(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RateLimitBucketUpdate) SetUpdatedAt(v time.Time) *RateLimitBucketUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RateLimitBucketMutation object of the builder.
func (_u *RateLimitBucketUpdate) Mutation() *RateLimitBucketMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RateLimitBucketUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RateLimitBucketUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RateLimitBucketUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RateLimitBucketUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RateLimitBucketUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ratelimitbucket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RateLimitBucketUpdate) check() error {
	if v, ok := _u.mutation.BreakerState(); ok {
		if err := ratelimitbucket.BreakerStateValidator(v); err != nil {
			return &ValidationError{Name: "breaker_state", err: fmt.Errorf(`ent: validator failed for field "RateLimitBucket.breaker_state": %w`, err)}
		}
	}
	return nil
}

func (_u *RateLimitBucketUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ratelimitbucket.Table, ratelimitbucket.Columns, sqlgraph.NewFieldSpec(ratelimitbucket.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Tokens(); ok {
		_spec.SetField(ratelimitbucket.FieldTokens, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTokens(); ok {
		_spec.AddField(ratelimitbucket.FieldTokens, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Capacity(); ok {
		_spec.SetField(ratelimitbucket.FieldCapacity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCapacity(); ok {
		_spec.AddField(ratelimitbucket.FieldCapacity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RefillRate(); ok {
		_spec.SetField(ratelimitbucket.FieldRefillRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRefillRate(); ok {
		_spec.AddField(ratelimitbucket.FieldRefillRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastRefillAt(); ok {
		_spec.SetField(ratelimitbucket.FieldLastRefillAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CooldownUntil(); ok {
		_spec.SetField(ratelimitbucket.FieldCooldownUntil, field.TypeTime, value)
	}
	if _u.mutation.CooldownUntilCleared() {
		_spec.ClearField(ratelimitbucket.FieldCooldownUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(ratelimitbucket.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(ratelimitbucket.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BreakerState(); ok {
		_spec.SetField(ratelimitbucket.FieldBreakerState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ratelimitbucket.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ratelimitbucket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RateLimitBucketUpdateOne is the builder for updating a single RateLimitBucket entity.
type RateLimitBucketUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RateLimitBucketMutation
}

// SetTokens sets the "tokens" field.
func (_u *RateLimitBucketUpdateOne) SetTokens(v float64) *RateLimitBucketUpdateOne {
	_u.mutation.ResetTokens()
	_u.mutation.SetTokens(v)
	return _u
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_u *RateLimitBucketUpdateOne) SetNillableTokens(v *float64) *RateLimitBucketUpdateOne {
	if v != nil {
		_u.SetTokens(*v)
	}
	return _u
}

// AddTokens adds value to the "tokens" field.
func (_u *RateLimitBucketUpdateOne) AddTokens(v float64) *RateLimitBucketUpdateOne {
	_u.mutation.AddTokens(v)
	return _u
}

// SetCapacity sets the "capacity" field.
func (_u *RateLimitBucketUpdateOne) SetCapacity(v float64) *RateLimitBucketUpdateOne {
	_u.mutation.ResetCapacity()
	_u.mutation.SetCapacity(v)
	return _u
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_u *RateLimitBucketUpdateOne) SetNillableCapacity(v *float64) *RateLimitBucketUpdateOne {
	if v != nil {
		_u.SetCapacity(*v)
	}
	return _u
}

// AddCapacity adds value to the "capacity" field.
func (_u *RateLimitBucketUpdateOne) AddCapacity(v float64) *RateLimitBucketUpdateOne {
	_u.mutation.AddCapacity(v)
	return _u
}

// SetRefillRate sets the "refill_rate" field.
func (_u *RateLimitBucketUpdateOne) SetRefillRate(v float64) *RateLimitBucketUpdateOne {
	_u.mutation.ResetRefillRate()
	_u.mutation.SetRefillRate(v)
	return _u
}

// SetNillableRefillRate sets the "refill_rate" field if the given value is not nil.
func (_u *RateLimitBucketUpdateOne) SetNillableRefillRate(v *float64) *RateLimitBucketUpdateOne {
	if v != nil {
		_u.SetRefillRate(*v)
	}
	return _u
}

// AddRefillRate adds value to the "refill_rate" field.
func (_u *RateLimitBucketUpdateOne) AddRefillRate(v float64) *RateLimitBucketUpdateOne {
	_u.mutation.AddRefillRate(v)
	return _u
}

// SetLastRefillAt sets the "last_refill_at" field.
func (_u *RateLimitBucketUpdateOne) SetLastRefillAt(v time.Time) *RateLimitBucketUpdateOne {
	_u.mutation.SetLastRefillAt(v)
	return _u
}

// SetNillableLastRefillAt sets the "last_refill_at" field if the given value is not nil.
func (_u *RateLimitBucketUpdateOne) SetNillableLastRefillAt(v *time.Time) *RateLimitBucketUpdateOne {
	if v != nil {
		_u.SetLastRefillAt(*v)
	}
	return _u
}

// SetCooldownUntil sets the "cooldown_until" field.
func (_u *RateLimitBucketUpdateOne) SetCooldownUntil(v time.Time) *RateLimitBucketUpdateOne {
	_u.mutation.SetCooldownUntil(v)
	return _u
}

// SetNillableCooldownUntil sets the "cooldown_until" field if the given value is not nil.
func (_u *RateLimitBucketUpdateOne) SetNillableCooldownUntil(v *time.Time) *RateLimitBucketUpdateOne {
	if v != nil {
		_u.SetCooldownUntil(*v)
	}
	return _u
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (_u *RateLimitBucketUpdateOne) ClearCooldownUntil() *RateLimitBucketUpdateOne {
	_u.mutation.ClearCooldownUntil()
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *RateLimitBucketUpdateOne) SetConsecutiveFailures(v int) *RateLimitBucketUpdateOne {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *RateLimitBucketUpdateOne) SetNillableConsecutiveFailures(v *int) *RateLimitBucketUpdateOne {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *RateLimitBucketUpdateOne) AddConsecutiveFailures(v int) *RateLimitBucketUpdateOne {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// SetBreakerState sets the "breaker_state" field.
func (_u *RateLimitBucketUpdateOne) SetBreakerState(v ratelimitbucket.BreakerState) *RateLimitBucketUpdateOne {
	_u.mutation.SetBreakerState(v)
	return _u
}

// SetNillableBreakerState sets the "breaker_state" field if the given value is not nil.
func (_u *RateLimitBucketUpdateOne) SetNillableBreakerState(v *ratelimitbucket.BreakerState) *RateLimitBucketUpdateOne {
	if v != nil {
		_u.SetBreakerState(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RateLimitBucketUpdateOne) SetUpdatedAt(v time.Time) *RateLimitBucketUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RateLimitBucketMutation object of the builder.
func (_u *RateLimitBucketUpdateOne) Mutation() *RateLimitBucketMutation {
	return _u.mutation
}

// Where appends a list predicates to the RateLimitBucketUpdate builder.
func (_u *RateLimitBucketUpdateOne) Where(ps ...predicate.RateLimitBucket) *RateLimitBucketUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RateLimitBucketUpdateOne) Select(field string, fields ...string) *RateLimitBucketUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RateLimitBucket entity.
func (_u *RateLimitBucketUpdateOne) Save(ctx context.Context) (*RateLimitBucket, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RateLimitBucketUpdateOne) SaveX(ctx context.Context) *RateLimitBucket {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RateLimitBucketUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RateLimitBucketUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RateLimitBucketUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ratelimitbucket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RateLimitBucketUpdateOne) check() error {
	if v, ok := _u.mutation.BreakerState(); ok {
		if err := ratelimitbucket.BreakerStateValidator(v); err != nil {
			return &ValidationError{Name: "breaker_state", err: fmt.Errorf(`ent: validator failed for field "RateLimitBucket.breaker_state": %w`, err)}
		}
	}
	return nil
}

func (_u *RateLimitBucketUpdateOne) sqlSave(ctx context.Context) (_node *RateLimitBucket, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ratelimitbucket.Table, ratelimitbucket.Columns, sqlgraph.NewFieldSpec(ratelimitbucket.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RateLimitBucket.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ratelimitbucket.FieldID)
		for _, f := range fields {
			if !ratelimitbucket.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ratelimitbucket.FieldID {
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
	if value, ok := _u.mutation.Tokens(); ok {
		_spec.SetField(ratelimitbucket.FieldTokens, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTokens(); ok {
		_spec.AddField(ratelimitbucket.FieldTokens, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Capacity(); ok {
		_spec.SetField(ratelimitbucket.FieldCapacity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCapacity(); ok {
		_spec.AddField(ratelimitbucket.FieldCapacity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RefillRate(); ok {
		_spec.SetField(ratelimitbucket.FieldRefillRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRefillRate(); ok {
		_spec.AddField(ratelimitbucket.FieldRefillRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastRefillAt(); ok {
		_spec.SetField(ratelimitbucket.FieldLastRefillAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CooldownUntil(); ok {
		_spec.SetField(ratelimitbucket.FieldCooldownUntil, field.TypeTime, value)
	}
	if _u.mutation.CooldownUntilCleared() {
		_spec.ClearField(ratelimitbucket.FieldCooldownUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(ratelimitbucket.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(ratelimitbucket.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BreakerState(); ok {
		_spec.SetField(ratelimitbucket.FieldBreakerState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ratelimitbucket.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &RateLimitBucket{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ratelimitbucket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
