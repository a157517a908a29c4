// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/postflow-io/postflow/ent/ratelimitbucket"
)

// RateLimitBucketCreate is the builder for creating a RateLimitBucket entity.
type RateLimitBucketCreate struct {
	config
	mutation *RateLimitBucketMutation
	hooks    []Hook
}

// SetAccountID sets the "account_id" field.
func (_c *RateLimitBucketCreate) SetAccountID(v string) *RateLimitBucketCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetEndpoint sets the "endpoint" field.
func (_c *RateLimitBucketCreate) SetEndpoint(v string) *RateLimitBucketCreate {
	_c.mutation.SetEndpoint(v)
	return _c
}

// SetTokens sets the "tokens" field.
func (_c *RateLimitBucketCreate) SetTokens(v float64) *RateLimitBucketCreate {
	_c.mutation.SetTokens(v)
	return _c
}

// SetCapacity sets the "capacity" field.
func (_c *RateLimitBucketCreate) SetCapacity(v float64) *RateLimitBucketCreate {
	_c.mutation.SetCapacity(v)
	return _c
}

// SetRefillRate sets the "refill_rate" field.
func (_c *RateLimitBucketCreate) SetRefillRate(v float64) *RateLimitBucketCreate {
	_c.mutation.SetRefillRate(v)
	return _c
}

// SetLastRefillAt sets the "last_refill_at" field.
func (_c *RateLimitBucketCreate) SetLastRefillAt(v time.Time) *RateLimitBucketCreate {
	_c.mutation.SetLastRefillAt(v)
	return _c
}

// SetCooldownUntil sets the "cooldown_until" field.
func (_c *RateLimitBucketCreate) SetCooldownUntil(v time.Time) *RateLimitBucketCreate {
	_c.mutation.SetCooldownUntil(v)
	return _c
}

// SetNillableCooldownUntil sets the "cooldown_until" field if the given value is not nil.
func (_c *RateLimitBucketCreate) SetNillableCooldownUntil(v *time.Time) *RateLimitBucketCreate {
	if v != nil {
		_c.SetCooldownUntil(*v)
	}
	return _c
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_c *RateLimitBucketCreate) SetConsecutiveFailures(v int) *RateLimitBucketCreate {
	_c.mutation.SetConsecutiveFailures(v)
	return _c
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_c *RateLimitBucketCreate) SetNillableConsecutiveFailures(v *int) *RateLimitBucketCreate {
	if v != nil {
		_c.SetConsecutiveFailures(*v)
	}
	return _c
}

// SetBreakerState sets the "breaker_state" field.
func (_c *RateLimitBucketCreate) SetBreakerState(v ratelimitbucket.BreakerState) *RateLimitBucketCreate {
	_c.mutation.SetBreakerState(v)
	return _c
}

// SetNillableBreakerState sets the "breaker_state" field if the given value is not nil.
func (_c *RateLimitBucketCreate) SetNillableBreakerState(v *ratelimitbucket.BreakerState) *RateLimitBucketCreate {
	if v != nil {
		_c.SetBreakerState(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RateLimitBucketCreate) SetUpdatedAt(v time.Time) *RateLimitBucketCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RateLimitBucketCreate) SetNillableUpdatedAt(v *time.Time) *RateLimitBucketCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RateLimitBucketCreate) SetID(v string) *RateLimitBucketCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RateLimitBucketMutation object of the builder.
func (_c *RateLimitBucketCreate) Mutation() *RateLimitBucketMutation {
	return _c.mutation
}

// Save creates the RateLimitBucket in the database.
func (_c *RateLimitBucketCreate) Save(ctx context.Context) (*RateLimitBucket, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RateLimitBucketCreate) SaveX(ctx context.Context) *RateLimitBucket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RateLimitBucketCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RateLimitBucketCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RateLimitBucketCreate) defaults() {
	if _, ok := _c.mutation.ConsecutiveFailures(); !ok {
		v := ratelimitbucket.DefaultConsecutiveFailures
		_c.mutation.SetConsecutiveFailures(v)
	}
	if _, ok := _c.mutation.BreakerState(); !ok {
		v := ratelimitbucket.DefaultBreakerState
		_c.mutation.SetBreakerState(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := ratelimitbucket.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RateLimitBucketCreate) check() error {
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "RateLimitBucket.account_id"`)}
	}
	if _, ok := _c.mutation.Endpoint(); !ok {
		return &ValidationError{Name: "endpoint", err: errors.New(`ent: missing required field "RateLimitBucket.endpoint"`)}
	}
	if _, ok := _c.mutation.Tokens(); !ok {
		return &ValidationError{Name: "tokens", err: errors.New(`ent: missing required field "RateLimitBucket.tokens"`)}
	}
	if _, ok := _c.mutation.Capacity(); !ok {
		return &ValidationError{Name: "capacity", err: errors.New(`ent: missing required field "RateLimitBucket.capacity"`)}
	}
	if _, ok := _c.mutation.RefillRate(); !ok {
		return &ValidationError{Name: "refill_rate", err: errors.New(`ent: missing required field "RateLimitBucket.refill_rate"`)}
	}
	if _, ok := _c.mutation.LastRefillAt(); !ok {
		return &ValidationError{Name: "last_refill_at", err: errors.New(`ent: missing required field "RateLimitBucket.last_refill_at"`)}
	}
	if _, ok := _c.mutation.ConsecutiveFailures(); !ok {
		return &ValidationError{Name: "consecutive_failures", err: errors.New(`ent: missing required field "RateLimitBucket.consecutive_failures"`)}
	}
	if _, ok := _c.mutation.BreakerState(); !ok {
		return &ValidationError{Name: "breaker_state", err: errors.New(`ent: missing required field "RateLimitBucket.breaker_state"`)}
	}
	if v, ok := _c.mutation.BreakerState(); ok {
		if err := ratelimitbucket.BreakerStateValidator(v); err != nil {
			return &ValidationError{Name: "breaker_state", err: fmt.Errorf(`ent: validator failed for field "RateLimitBucket.breaker_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RateLimitBucket.updated_at"`)}
	}
	return nil
}

func (_c *RateLimitBucketCreate) sqlSave(ctx context.Context) (*RateLimitBucket, error) {
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
			return nil, fmt.Errorf("unexpected RateLimitBucket.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RateLimitBucketCreate) createSpec() (*RateLimitBucket, *sqlgraph.CreateSpec) {
	var (
		_node = &RateLimitBucket{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ratelimitbucket.Table, sqlgraph.NewFieldSpec(ratelimitbucket.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(ratelimitbucket.FieldAccountID, field.TypeString, value)
		_node.AccountID = value
	}
	if value, ok := _c.mutation.Endpoint(); ok {
		_spec.SetField(ratelimitbucket.FieldEndpoint, field.TypeString, value)
		_node.Endpoint = value
	}
	if value, ok := _c.mutation.Tokens(); ok {
		_spec.SetField(ratelimitbucket.FieldTokens, field.TypeFloat64, value)
		_node.Tokens = value
	}
	if value, ok := _c.mutation.Capacity(); ok {
		_spec.SetField(ratelimitbucket.FieldCapacity, field.TypeFloat64, value)
		_node.Capacity = value
	}
	if value, ok := _c.mutation.RefillRate(); ok {
		_spec.SetField(ratelimitbucket.FieldRefillRate, field.TypeFloat64, value)
		_node.RefillRate = value
	}
	if value, ok := _c.mutation.LastRefillAt(); ok {
		_spec.SetField(ratelimitbucket.FieldLastRefillAt, field.TypeTime, value)
		_node.LastRefillAt = value
	}
	if value, ok := _c.mutation.CooldownUntil(); ok {
		_spec.SetField(ratelimitbucket.FieldCooldownUntil, field.TypeTime, value)
		_node.CooldownUntil = &value
	}
	if value, ok := _c.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(ratelimitbucket.FieldConsecutiveFailures, field.TypeInt, value)
		_node.ConsecutiveFailures = value
	}
	if value, ok := _c.mutation.BreakerState(); ok {
		_spec.SetField(ratelimitbucket.FieldBreakerState, field.TypeEnum, value)
		_node.BreakerState = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(ratelimitbucket.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// RateLimitBucketCreateBulk is the builder for creating many RateLimitBucket entities in bulk.
type RateLimitBucketCreateBulk struct {
	config
	err      error
	builders []*RateLimitBucketCreate
}

// Save creates the RateLimitBucket entities in the database.
func (_c *RateLimitBucketCreateBulk) Save(ctx context.Context) ([]*RateLimitBucket, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RateLimitBucket, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RateLimitBucketMutation)
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
func (_c *RateLimitBucketCreateBulk) SaveX(ctx context.Context) []*RateLimitBucket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RateLimitBucketCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RateLimitBucketCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
