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
	"github.com/postflow-io/postflow/ent/webhookevent"
)

// WebhookEventUpdate is the builder for updating WebhookEvent entities.
type WebhookEventUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookEventMutation
}

// Where appends a list predicates to the WebhookEventUpdate builder.
func (_u *WebhookEventUpdate) Where(ps ...predicate.WebhookEvent) *WebhookEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *WebhookEventUpdate) SetProcessingStatus(v webhookevent.ProcessingStatus) *WebhookEventUpdate {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableProcessingStatus(v *webhookevent.ProcessingStatus) *WebhookEventUpdate {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *WebhookEventUpdate) SetAttemptCount(v int) *WebhookEventUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableAttemptCount(v *int) *WebhookEventUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *WebhookEventUpdate) AddAttemptCount(v int) *WebhookEventUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetPostID sets the "post_id" field.
func (_u *WebhookEventUpdate) SetPostID(v string) *WebhookEventUpdate {
	_u.mutation.SetPostID(v)
	return _u
}

// SetNillablePostID sets the "post_id" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillablePostID(v *string) *WebhookEventUpdate {
	if v != nil {
		_u.SetPostID(*v)
	}
	return _u
}

// ClearPostID clears the value of the "post_id" field.
func (_u *WebhookEventUpdate) ClearPostID() *WebhookEventUpdate {
	_u.mutation.ClearPostID()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *WebhookEventUpdate) SetProcessedAt(v time.Time) *WebhookEventUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableProcessedAt(v *time.Time) *WebhookEventUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *WebhookEventUpdate) ClearProcessedAt() *WebhookEventUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// Mutation returns the WebhookEventMutation object of the builder.
func (_u *WebhookEventUpdate) Mutation() *WebhookEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookEventUpdate) check() error {
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := webhookevent.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "WebhookEvent.processing_status": %w`, err)}
		}
	}
	return nil
}

func (_u *WebhookEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookevent.Table, webhookevent.Columns, sqlgraph.NewFieldSpec(webhookevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(webhookevent.FieldProcessingStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(webhookevent.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(webhookevent.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PostID(); ok {
		_spec.SetField(webhookevent.FieldPostID, field.TypeString, value)
	}
	if _u.mutation.PostIDCleared() {
		_spec.ClearField(webhookevent.FieldPostID, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(webhookevent.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(webhookevent.FieldProcessedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookEventUpdateOne is the builder for updating a single WebhookEvent entity.
type WebhookEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookEventMutation
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *WebhookEventUpdateOne) SetProcessingStatus(v webhookevent.ProcessingStatus) *WebhookEventUpdateOne {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableProcessingStatus(v *webhookevent.ProcessingStatus) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *WebhookEventUpdateOne) SetAttemptCount(v int) *WebhookEventUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableAttemptCount(v *int) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *WebhookEventUpdateOne) AddAttemptCount(v int) *WebhookEventUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetPostID sets the "post_id" field.
func (_u *WebhookEventUpdateOne) SetPostID(v string) *WebhookEventUpdateOne {
	_u.mutation.SetPostID(v)
	return _u
}

// SetNillablePostID sets the "post_id" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillablePostID(v *string) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetPostID(*v)
	}
	return _u
}

// ClearPostID clears the value of the "post_id" field.
func (_u *WebhookEventUpdateOne) ClearPostID() *WebhookEventUpdateOne {
	_u.mutation.ClearPostID()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *WebhookEventUpdateOne) SetProcessedAt(v time.Time) *WebhookEventUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableProcessedAt(v *time.Time) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *WebhookEventUpdateOne) ClearProcessedAt() *WebhookEventUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// Mutation returns the WebhookEventMutation object of the builder.
func (_u *WebhookEventUpdateOne) Mutation() *WebhookEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the WebhookEventUpdate builder.
func (_u *WebhookEventUpdateOne) Where(ps ...predicate.WebhookEvent) *WebhookEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookEventUpdateOne) Select(field string, fields ...string) *WebhookEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WebhookEvent entity.
func (_u *WebhookEventUpdateOne) Save(ctx context.Context) (*WebhookEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookEventUpdateOne) SaveX(ctx context.Context) *WebhookEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookEventUpdateOne) check() error {
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := webhookevent.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "WebhookEvent.processing_status": %w`, err)}
		}
	}
	return nil
}

func (_u *WebhookEventUpdateOne) sqlSave(ctx context.Context) (_node *WebhookEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookevent.Table, webhookevent.Columns, sqlgraph.NewFieldSpec(webhookevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WebhookEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhookevent.FieldID)
		for _, f := range fields {
			if !webhookevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != webhookevent.FieldID {
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
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(webhookevent.FieldProcessingStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(webhookevent.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(webhookevent.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PostID(); ok {
		_spec.SetField(webhookevent.FieldPostID, field.TypeString, value)
	}
	if _u.mutation.PostIDCleared() {
		_spec.ClearField(webhookevent.FieldPostID, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(webhookevent.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(webhookevent.FieldProcessedAt, field.TypeTime)
	}
	_node = &WebhookEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
