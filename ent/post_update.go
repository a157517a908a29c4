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
	"github.com/postflow-io/postflow/ent/post"
	"github.com/postflow-io/postflow/ent/predicate"
)

// PostUpdate is the builder for updating Post entities.
type PostUpdate struct {
	config
	hooks    []Hook
	mutation *PostMutation
}

// Where appends a list predicates to the PostUpdate builder.
func (_u *PostUpdate) Where(ps ...predicate.Post) *PostUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCaption sets the "caption" field.
func (_u *PostUpdate) SetCaption(v string) *PostUpdate {
	_u.mutation.SetCaption(v)
	return _u
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (_u *PostUpdate) SetNillableCaption(v *string) *PostUpdate {
	if v != nil {
		_u.SetCaption(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *PostUpdate) SetState(v post.State) *PostUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *PostUpdate) SetNillableState(v *post.State) *PostUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *PostUpdate) SetScheduledAt(v time.Time) *PostUpdate {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *PostUpdate) SetNillableScheduledAt(v *time.Time) *PostUpdate {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (_u *PostUpdate) ClearScheduledAt() *PostUpdate {
	_u.mutation.ClearScheduledAt()
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *PostUpdate) SetAttemptCount(v int) *PostUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *PostUpdate) SetNillableAttemptCount(v *int) *PostUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *PostUpdate) AddAttemptCount(v int) *PostUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *PostUpdate) SetNextRetryAt(v time.Time) *PostUpdate {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *PostUpdate) SetNillableNextRetryAt(v *time.Time) *PostUpdate {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (_u *PostUpdate) ClearNextRetryAt() *PostUpdate {
	_u.mutation.ClearNextRetryAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *PostUpdate) SetLastError(v string) *PostUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *PostUpdate) SetNillableLastError(v *string) *PostUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *PostUpdate) ClearLastError() *PostUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *PostUpdate) SetErrorKind(v string) *PostUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *PostUpdate) SetNillableErrorKind(v *string) *PostUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *PostUpdate) ClearErrorKind() *PostUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetRemoteID sets the "remote_id" field.
func (_u *PostUpdate) SetRemoteID(v string) *PostUpdate {
	_u.mutation.SetRemoteID(v)
	return _u
}

// SetNillableRemoteID sets the "remote_id" field if the given value is not nil.
func (_u *PostUpdate) SetNillableRemoteID(v *string) *PostUpdate {
	if v != nil {
		_u.SetRemoteID(*v)
	}
	return _u
}

// ClearRemoteID clears the value of the "remote_id" field.
func (_u *PostUpdate) ClearRemoteID() *PostUpdate {
	_u.mutation.ClearRemoteID()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *PostUpdate) SetPodID(v string) *PostUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *PostUpdate) SetNillablePodID(v *string) *PostUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *PostUpdate) ClearPodID() *PostUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *PostUpdate) SetLastInteractionAt(v time.Time) *PostUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *PostUpdate) SetNillableLastInteractionAt(v *time.Time) *PostUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *PostUpdate) ClearLastInteractionAt() *PostUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetDispatchedAt sets the "dispatched_at" field.
func (_u *PostUpdate) SetDispatchedAt(v time.Time) *PostUpdate {
	_u.mutation.SetDispatchedAt(v)
	return _u
}

// SetNillableDispatchedAt sets the "dispatched_at" field if the given value is not nil.
func (_u *PostUpdate) SetNillableDispatchedAt(v *time.Time) *PostUpdate {
	if v != nil {
		_u.SetDispatchedAt(*v)
	}
	return _u
}

// ClearDispatchedAt clears the value of the "dispatched_at" field.
func (_u *PostUpdate) ClearDispatchedAt() *PostUpdate {
	_u.mutation.ClearDispatchedAt()
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *PostUpdate) SetPublishedAt(v time.Time) *PostUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *PostUpdate) SetNillablePublishedAt(v *time.Time) *PostUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *PostUpdate) ClearPublishedAt() *PostUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PostUpdate) SetUpdatedAt(v time.Time) *PostUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PostMutation object of the builder.
func (_u *PostUpdate) Mutation() *PostMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PostUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PostUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PostUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PostUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PostUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := post.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PostUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := post.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Post.state": %w`, err)}
		}
	}
	return nil
}

func (_u *PostUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(post.Table, post.Columns, sqlgraph.NewFieldSpec(post.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Caption(); ok {
		_spec.SetField(post.FieldCaption, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(post.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(post.FieldScheduledAt, field.TypeTime, value)
	}
	if _u.mutation.ScheduledAtCleared() {
		_spec.ClearField(post.FieldScheduledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(post.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(post.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(post.FieldNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.NextRetryAtCleared() {
		_spec.ClearField(post.FieldNextRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(post.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(post.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(post.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(post.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.RemoteID(); ok {
		_spec.SetField(post.FieldRemoteID, field.TypeString, value)
	}
	if _u.mutation.RemoteIDCleared() {
		_spec.ClearField(post.FieldRemoteID, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(post.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(post.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(post.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(post.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DispatchedAt(); ok {
		_spec.SetField(post.FieldDispatchedAt, field.TypeTime, value)
	}
	if _u.mutation.DispatchedAtCleared() {
		_spec.ClearField(post.FieldDispatchedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(post.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(post.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(post.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{post.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PostUpdateOne is the builder for updating a single Post entity.
type PostUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PostMutation
}

// SetCaption sets the "caption" field.
func (_u *PostUpdateOne) SetCaption(v string) *PostUpdateOne {
	_u.mutation.SetCaption(v)
	return _u
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableCaption(v *string) *PostUpdateOne {
	if v != nil {
		_u.SetCaption(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *PostUpdateOne) SetState(v post.State) *PostUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableState(v *post.State) *PostUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *PostUpdateOne) SetScheduledAt(v time.Time) *PostUpdateOne {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableScheduledAt(v *time.Time) *PostUpdateOne {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (_u *PostUpdateOne) ClearScheduledAt() *PostUpdateOne {
	_u.mutation.ClearScheduledAt()
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *PostUpdateOne) SetAttemptCount(v int) *PostUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableAttemptCount(v *int) *PostUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *PostUpdateOne) AddAttemptCount(v int) *PostUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *PostUpdateOne) SetNextRetryAt(v time.Time) *PostUpdateOne {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableNextRetryAt(v *time.Time) *PostUpdateOne {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (_u *PostUpdateOne) ClearNextRetryAt() *PostUpdateOne {
	_u.mutation.ClearNextRetryAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *PostUpdateOne) SetLastError(v string) *PostUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableLastError(v *string) *PostUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *PostUpdateOne) ClearLastError() *PostUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *PostUpdateOne) SetErrorKind(v string) *PostUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableErrorKind(v *string) *PostUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *PostUpdateOne) ClearErrorKind() *PostUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetRemoteID sets the "remote_id" field.
func (_u *PostUpdateOne) SetRemoteID(v string) *PostUpdateOne {
	_u.mutation.SetRemoteID(v)
	return _u
}

// SetNillableRemoteID sets the "remote_id" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableRemoteID(v *string) *PostUpdateOne {
	if v != nil {
		_u.SetRemoteID(*v)
	}
	return _u
}

// ClearRemoteID clears the value of the "remote_id" field.
func (_u *PostUpdateOne) ClearRemoteID() *PostUpdateOne {
	_u.mutation.ClearRemoteID()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *PostUpdateOne) SetPodID(v string) *PostUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillablePodID(v *string) *PostUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *PostUpdateOne) ClearPodID() *PostUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *PostUpdateOne) SetLastInteractionAt(v time.Time) *PostUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableLastInteractionAt(v *time.Time) *PostUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *PostUpdateOne) ClearLastInteractionAt() *PostUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetDispatchedAt sets the "dispatched_at" field.
func (_u *PostUpdateOne) SetDispatchedAt(v time.Time) *PostUpdateOne {
	_u.mutation.SetDispatchedAt(v)
	return _u
}

// SetNillableDispatchedAt sets the "dispatched_at" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableDispatchedAt(v *time.Time) *PostUpdateOne {
	if v != nil {
		_u.SetDispatchedAt(*v)
	}
	return _u
}

// ClearDispatchedAt clears the value of the "dispatched_at" field.
func (_u *PostUpdateOne) ClearDispatchedAt() *PostUpdateOne {
	_u.mutation.ClearDispatchedAt()
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *PostUpdateOne) SetPublishedAt(v time.Time) *PostUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillablePublishedAt(v *time.Time) *PostUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *PostUpdateOne) ClearPublishedAt() *PostUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PostUpdateOne) SetUpdatedAt(v time.Time) *PostUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PostMutation object of the builder.
func (_u *PostUpdateOne) Mutation() *PostMutation {
	return _u.mutation
}

// Where appends a list predicates to the PostUpdate builder.
func (_u *PostUpdateOne) Where(ps ...predicate.Post) *PostUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PostUpdateOne) Select(field string, fields ...string) *PostUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Post entity.
func (_u *PostUpdateOne) Save(ctx context.Context) (*Post, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PostUpdateOne) SaveX(ctx context.Context) *Post {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PostUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PostUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PostUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := post.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PostUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := post.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Post.state": %w`, err)}
		}
	}
	return nil
}

func (_u *PostUpdateOne) sqlSave(ctx context.Context) (_node *Post, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(post.Table, post.Columns, sqlgraph.NewFieldSpec(post.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Post.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, post.FieldID)
		for _, f := range fields {
			if !post.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != post.FieldID {
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
	if value, ok := _u.mutation.Caption(); ok {
		_spec.SetField(post.FieldCaption, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(post.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(post.FieldScheduledAt, field.TypeTime, value)
	}
	if _u.mutation.ScheduledAtCleared() {
		_spec.ClearField(post.FieldScheduledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(post.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(post.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(post.FieldNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.NextRetryAtCleared() {
		_spec.ClearField(post.FieldNextRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(post.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(post.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(post.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(post.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.RemoteID(); ok {
		_spec.SetField(post.FieldRemoteID, field.TypeString, value)
	}
	if _u.mutation.RemoteIDCleared() {
		_spec.ClearField(post.FieldRemoteID, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(post.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(post.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(post.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(post.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DispatchedAt(); ok {
		_spec.SetField(post.FieldDispatchedAt, field.TypeTime, value)
	}
	if _u.mutation.DispatchedAtCleared() {
		_spec.ClearField(post.FieldDispatchedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(post.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(post.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(post.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Post{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{post.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
