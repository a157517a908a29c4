// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/postflow-io/postflow/ent/trustedmapping"
)

// TrustedMappingCreate is the builder for creating a TrustedMapping entity.
type TrustedMappingCreate struct {
	config
	mutation *TrustedMappingMutation
	hooks    []Hook
}

// SetProvider sets the "provider" field.
func (_c *TrustedMappingCreate) SetProvider(v string) *TrustedMappingCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetPlatformID sets the "platform_id" field.
func (_c *TrustedMappingCreate) SetPlatformID(v string) *TrustedMappingCreate {
	_c.mutation.SetPlatformID(v)
	return _c
}

// SetPostID sets the "post_id" field.
func (_c *TrustedMappingCreate) SetPostID(v string) *TrustedMappingCreate {
	_c.mutation.SetPostID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *TrustedMappingCreate) SetKind(v string) *TrustedMappingCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *TrustedMappingCreate) SetNillableKind(v *string) *TrustedMappingCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TrustedMappingCreate) SetCreatedAt(v time.Time) *TrustedMappingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TrustedMappingCreate) SetNillableCreatedAt(v *time.Time) *TrustedMappingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TrustedMappingCreate) SetID(v string) *TrustedMappingCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TrustedMappingMutation object of the builder.
func (_c *TrustedMappingCreate) Mutation() *TrustedMappingMutation {
	return _c.mutation
}

// Save creates the TrustedMapping in the database.
func (_c *TrustedMappingCreate) Save(ctx context.Context) (*TrustedMapping, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrustedMappingCreate) SaveX(ctx context.Context) *TrustedMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrustedMappingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrustedMappingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrustedMappingCreate) defaults() {
	if _, ok := _c.mutation.Kind(); !ok {
		v := trustedmapping.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := trustedmapping.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrustedMappingCreate) check() error {
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "TrustedMapping.provider"`)}
	}
	if _, ok := _c.mutation.PlatformID(); !ok {
		return &ValidationError{Name: "platform_id", err: errors.New(`ent: missing required field "TrustedMapping.platform_id"`)}
	}
	if _, ok := _c.mutation.PostID(); !ok {
		return &ValidationError{Name: "post_id", err: errors.New(`ent: missing required field "TrustedMapping.post_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "TrustedMapping.kind"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TrustedMapping.created_at"`)}
	}
	return nil
}

func (_c *TrustedMappingCreate) sqlSave(ctx context.Context) (*TrustedMapping, error) {
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
			return nil, fmt.Errorf("unexpected TrustedMapping.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TrustedMappingCreate) createSpec() (*TrustedMapping, *sqlgraph.CreateSpec) {
	var (
		_node = &TrustedMapping{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trustedmapping.Table, sqlgraph.NewFieldSpec(trustedmapping.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(trustedmapping.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.PlatformID(); ok {
		_spec.SetField(trustedmapping.FieldPlatformID, field.TypeString, value)
		_node.PlatformID = value
	}
	if value, ok := _c.mutation.PostID(); ok {
		_spec.SetField(trustedmapping.FieldPostID, field.TypeString, value)
		_node.PostID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(trustedmapping.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(trustedmapping.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TrustedMappingCreateBulk is the builder for creating many TrustedMapping entities in bulk.
type TrustedMappingCreateBulk struct {
	config
	err      error
	builders []*TrustedMappingCreate
}

// Save creates the TrustedMapping entities in the database.
func (_c *TrustedMappingCreateBulk) Save(ctx context.Context) ([]*TrustedMapping, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrustedMapping, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrustedMappingMutation)
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
func (_c *TrustedMappingCreateBulk) SaveX(ctx context.Context) []*TrustedMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrustedMappingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrustedMappingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
