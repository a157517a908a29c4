// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/postflow-io/postflow/ent/reservation"
)

// ReservationCreate is the builder for creating a Reservation entity.
type ReservationCreate struct {
	config
	mutation *ReservationMutation
	hooks    []Hook
}

// SetCreatorID sets the "creator_id" field.
func (_c *ReservationCreate) SetCreatorID(v string) *ReservationCreate {
	_c.mutation.SetCreatorID(v)
	return _c
}

// SetMonth sets the "month" field.
func (_c *ReservationCreate) SetMonth(v string) *ReservationCreate {
	_c.mutation.SetMonth(v)
	return _c
}

// SetAmountUsd sets the "amount_usd" field.
func (_c *ReservationCreate) SetAmountUsd(v float64) *ReservationCreate {
	_c.mutation.SetAmountUsd(v)
	return _c
}

// SetCommittedUsd sets the "committed_usd" field.
func (_c *ReservationCreate) SetCommittedUsd(v float64) *ReservationCreate {
	_c.mutation.SetCommittedUsd(v)
	return _c
}

// SetNillableCommittedUsd sets the "committed_usd" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableCommittedUsd(v *float64) *ReservationCreate {
	if v != nil {
		_c.SetCommittedUsd(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *ReservationCreate) SetState(v reservation.State) *ReservationCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableState(v *reservation.State) *ReservationCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ReservationCreate) SetExpiresAt(v time.Time) *ReservationCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReservationCreate) SetCreatedAt(v time.Time) *ReservationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableCreatedAt(v *time.Time) *ReservationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReservationCreate) SetUpdatedAt(v time.Time) *ReservationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableUpdatedAt(v *time.Time) *ReservationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReservationCreate) SetID(v string) *ReservationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ReservationMutation object of the builder.
func (_c *ReservationCreate) Mutation() *ReservationMutation {
	return _c.mutation
}

// Save creates the Reservation in the database.
func (_c *ReservationCreate) Save(ctx context.Context) (*Reservation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReservationCreate) SaveX(ctx context.Context) *Reservation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReservationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReservationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReservationCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := reservation.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reservation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reservation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReservationCreate) check() error {
	if _, ok := _c.mutation.CreatorID(); !ok {
		return &ValidationError{Name: "creator_id", err: errors.New(`ent: missing required field "Reservation.creator_id"`)}
	}
	if _, ok := _c.mutation.Month(); !ok {
		return &ValidationError{Name: "month", err: errors.New(`ent: missing required field "Reservation.month"`)}
	}
	if _, ok := _c.mutation.AmountUsd(); !ok {
		return &ValidationError{Name: "amount_usd", err: errors.New(`ent: missing required field "Reservation.amount_usd"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Reservation.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := reservation.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Reservation.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "Reservation.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Reservation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Reservation.updated_at"`)}
	}
	return nil
}

func (_c *ReservationCreate) sqlSave(ctx context.Context) (*Reservation, error) {
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
			return nil, fmt.Errorf("unexpected Reservation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReservationCreate) createSpec() (*Reservation, *sqlgraph.CreateSpec) {
	var (
		_node = &Reservation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reservation.Table, sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatorID(); ok {
		_spec.SetField(reservation.FieldCreatorID, field.TypeString, value)
		_node.CreatorID = value
	}
	if value, ok := _c.mutation.Month(); ok {
		_spec.SetField(reservation.FieldMonth, field.TypeString, value)
		_node.Month = value
	}
	if value, ok := _c.mutation.AmountUsd(); ok {
		_spec.SetField(reservation.FieldAmountUsd, field.TypeFloat64, value)
		_node.AmountUsd = value
	}
	if value, ok := _c.mutation.CommittedUsd(); ok {
		_spec.SetField(reservation.FieldCommittedUsd, field.TypeFloat64, value)
		_node.CommittedUsd = &value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(reservation.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(reservation.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reservation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reservation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ReservationCreateBulk is the builder for creating many Reservation entities in bulk.
type ReservationCreateBulk struct {
	config
	err      error
	builders []*ReservationCreate
}

// Save creates the Reservation entities in the database.
func (_c *ReservationCreateBulk) Save(ctx context.Context) ([]*Reservation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Reservation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReservationMutation)
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
func (_c *ReservationCreateBulk) SaveX(ctx context.Context) []*Reservation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReservationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReservationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
