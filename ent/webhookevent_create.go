// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/postflow-io/postflow/ent/webhookevent"
)

// WebhookEventCreate is the builder for creating a WebhookEvent entity.
type WebhookEventCreate struct {
	config
	mutation *WebhookEventMutation
	hooks    []Hook
}

// SetProvider sets the "provider" field.
func (_c *WebhookEventCreate) SetProvider(v string) *WebhookEventCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *WebhookEventCreate) SetEventID(v string) *WebhookEventCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *WebhookEventCreate) SetEventType(v string) *WebhookEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *WebhookEventCreate) SetPayload(v []byte) *WebhookEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetSignature sets the "signature" field.
func (_c *WebhookEventCreate) SetSignature(v string) *WebhookEventCreate {
	_c.mutation.SetSignature(v)
	return _c
}

// SetSignatureVerified sets the "signature_verified" field.
func (_c *WebhookEventCreate) SetSignatureVerified(v bool) *WebhookEventCreate {
	_c.mutation.SetSignatureVerified(v)
	return _c
}

// SetProcessingStatus sets the "processing_status" field.
func (_c *WebhookEventCreate) SetProcessingStatus(v webhookevent.ProcessingStatus) *WebhookEventCreate {
	_c.mutation.SetProcessingStatus(v)
	return _c
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_c *WebhookEventCreate) SetNillableProcessingStatus(v *webhookevent.ProcessingStatus) *WebhookEventCreate {
	if v != nil {
		_c.SetProcessingStatus(*v)
	}
	return _c
}

// SetAttemptCount sets the "attempt_count" field.
func (_c *WebhookEventCreate) SetAttemptCount(v int) *WebhookEventCreate {
	_c.mutation.SetAttemptCount(v)
	return _c
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_c *WebhookEventCreate) SetNillableAttemptCount(v *int) *WebhookEventCreate {
	if v != nil {
		_c.SetAttemptCount(*v)
	}
	return _c
}

// SetPostID sets the "post_id" field.
func (_c *WebhookEventCreate) SetPostID(v string) *WebhookEventCreate {
	_c.mutation.SetPostID(v)
	return _c
}

// SetNillablePostID sets the "post_id" field if the given value is not nil.
func (_c *WebhookEventCreate) SetNillablePostID(v *string) *WebhookEventCreate {
	if v != nil {
		_c.SetPostID(*v)
	}
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *WebhookEventCreate) SetReceivedAt(v time.Time) *WebhookEventCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *WebhookEventCreate) SetNillableReceivedAt(v *time.Time) *WebhookEventCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *WebhookEventCreate) SetProcessedAt(v time.Time) *WebhookEventCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *WebhookEventCreate) SetNillableProcessedAt(v *time.Time) *WebhookEventCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WebhookEventCreate) SetID(v string) *WebhookEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the WebhookEventMutation object of the builder.
func (_c *WebhookEventCreate) Mutation() *WebhookEventMutation {
	return _c.mutation
}

// Save creates the WebhookEvent in the database.
func (_c *WebhookEventCreate) Save(ctx context.Context) (*WebhookEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WebhookEventCreate) SaveX(ctx context.Context) *WebhookEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WebhookEventCreate) defaults() {
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		v := webhookevent.DefaultProcessingStatus
		_c.mutation.SetProcessingStatus(v)
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		v := webhookevent.DefaultAttemptCount
		_c.mutation.SetAttemptCount(v)
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		v := webhookevent.DefaultReceivedAt()
		_c.mutation.SetReceivedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WebhookEventCreate) check() error {
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "WebhookEvent.provider"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "WebhookEvent.event_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "WebhookEvent.event_type"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "WebhookEvent.payload"`)}
	}
	if _, ok := _c.mutation.Signature(); !ok {
		return &ValidationError{Name: "signature", err: errors.New(`ent: missing required field "WebhookEvent.signature"`)}
	}
	if _, ok := _c.mutation.SignatureVerified(); !ok {
		return &ValidationError{Name: "signature_verified", err: errors.New(`ent: missing required field "WebhookEvent.signature_verified"`)}
	}
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		return &ValidationError{Name: "processing_status", err: errors.New(`ent: missing required field "WebhookEvent.processing_status"`)}
	}
	if v, ok := _c.mutation.ProcessingStatus(); ok {
		if err := webhookevent.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "WebhookEvent.processing_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		return &ValidationError{Name: "attempt_count", err: errors.New(`ent: missing required field "WebhookEvent.attempt_count"`)}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "WebhookEvent.received_at"`)}
	}
	return nil
}

func (_c *WebhookEventCreate) sqlSave(ctx context.Context) (*WebhookEvent, error) {
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
			return nil, fmt.Errorf("unexpected WebhookEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WebhookEventCreate) createSpec() (*WebhookEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &WebhookEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(webhookevent.Table, sqlgraph.NewFieldSpec(webhookevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(webhookevent.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(webhookevent.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(webhookevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(webhookevent.FieldPayload, field.TypeBytes, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Signature(); ok {
		_spec.SetField(webhookevent.FieldSignature, field.TypeString, value)
		_node.Signature = value
	}
	if value, ok := _c.mutation.SignatureVerified(); ok {
		_spec.SetField(webhookevent.FieldSignatureVerified, field.TypeBool, value)
		_node.SignatureVerified = value
	}
	if value, ok := _c.mutation.ProcessingStatus(); ok {
		_spec.SetField(webhookevent.FieldProcessingStatus, field.TypeEnum, value)
		_node.ProcessingStatus = value
	}
	if value, ok := _c.mutation.AttemptCount(); ok {
		_spec.SetField(webhookevent.FieldAttemptCount, field.TypeInt, value)
		_node.AttemptCount = value
	}
	if value, ok := _c.mutation.PostID(); ok {
		_spec.SetField(webhookevent.FieldPostID, field.TypeString, value)
		_node.PostID = &value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(webhookevent.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(webhookevent.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	return _node, _spec
}

// WebhookEventCreateBulk is the builder for creating many WebhookEvent entities in bulk.
type WebhookEventCreateBulk struct {
	config
	err      error
	builders []*WebhookEventCreate
}

// Save creates the WebhookEvent entities in the database.
func (_c *WebhookEventCreateBulk) Save(ctx context.Context) ([]*WebhookEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WebhookEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WebhookEventMutation)
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
func (_c *WebhookEventCreateBulk) SaveX(ctx context.Context) []*WebhookEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
