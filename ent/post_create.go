// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/postflow-io/postflow/ent/post"
)

// PostCreate is the builder for creating a Post entity.
type PostCreate struct {
	config
	mutation *PostMutation
	hooks    []Hook
}

// SetCreatorID sets the "creator_id" field.
func (_c *PostCreate) SetCreatorID(v string) *PostCreate {
	_c.mutation.SetCreatorID(v)
	return _c
}

// SetAccountID sets the "account_id" field.
func (_c *PostCreate) SetAccountID(v string) *PostCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *PostCreate) SetPlatform(v post.Platform) *PostCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetMediaRef sets the "media_ref" field.
func (_c *PostCreate) SetMediaRef(v string) *PostCreate {
	_c.mutation.SetMediaRef(v)
	return _c
}

// SetCaption sets the "caption" field.
func (_c *PostCreate) SetCaption(v string) *PostCreate {
	_c.mutation.SetCaption(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *PostCreate) SetContentHash(v string) *PostCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetDedupeKey sets the "dedupe_key" field.
func (_c *PostCreate) SetDedupeKey(v string) *PostCreate {
	_c.mutation.SetDedupeKey(v)
	return _c
}

// SetState sets the "state" field.
func (_c *PostCreate) SetState(v post.State) *PostCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *PostCreate) SetNillableState(v *post.State) *PostCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetScheduledAt sets the "scheduled_at" field.
func (_c *PostCreate) SetScheduledAt(v time.Time) *PostCreate {
	_c.mutation.SetScheduledAt(v)
	return _c
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_c *PostCreate) SetNillableScheduledAt(v *time.Time) *PostCreate {
	if v != nil {
		_c.SetScheduledAt(*v)
	}
	return _c
}

// SetAttemptCount sets the "attempt_count" field.
func (_c *PostCreate) SetAttemptCount(v int) *PostCreate {
	_c.mutation.SetAttemptCount(v)
	return _c
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_c *PostCreate) SetNillableAttemptCount(v *int) *PostCreate {
	if v != nil {
		_c.SetAttemptCount(*v)
	}
	return _c
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_c *PostCreate) SetNextRetryAt(v time.Time) *PostCreate {
	_c.mutation.SetNextRetryAt(v)
	return _c
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_c *PostCreate) SetNillableNextRetryAt(v *time.Time) *PostCreate {
	if v != nil {
		_c.SetNextRetryAt(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *PostCreate) SetLastError(v string) *PostCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *PostCreate) SetNillableLastError(v *string) *PostCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *PostCreate) SetErrorKind(v string) *PostCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *PostCreate) SetNillableErrorKind(v *string) *PostCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetRemoteID sets the "remote_id" field.
func (_c *PostCreate) SetRemoteID(v string) *PostCreate {
	_c.mutation.SetRemoteID(v)
	return _c
}

// SetNillableRemoteID sets the "remote_id" field if the given value is not nil.
func (_c *PostCreate) SetNillableRemoteID(v *string) *PostCreate {
	if v != nil {
		_c.SetRemoteID(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *PostCreate) SetPodID(v string) *PostCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *PostCreate) SetNillablePodID(v *string) *PostCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *PostCreate) SetLastInteractionAt(v time.Time) *PostCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *PostCreate) SetNillableLastInteractionAt(v *time.Time) *PostCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetDispatchedAt sets the "dispatched_at" field.
func (_c *PostCreate) SetDispatchedAt(v time.Time) *PostCreate {
	_c.mutation.SetDispatchedAt(v)
	return _c
}

// SetNillableDispatchedAt sets the "dispatched_at" field if the given value is not nil.
func (_c *PostCreate) SetNillableDispatchedAt(v *time.Time) *PostCreate {
	if v != nil {
		_c.SetDispatchedAt(*v)
	}
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *PostCreate) SetPublishedAt(v time.Time) *PostCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *PostCreate) SetNillablePublishedAt(v *time.Time) *PostCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PostCreate) SetCreatedAt(v time.Time) *PostCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PostCreate) SetNillableCreatedAt(v *time.Time) *PostCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PostCreate) SetUpdatedAt(v time.Time) *PostCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PostCreate) SetNillableUpdatedAt(v *time.Time) *PostCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PostCreate) SetID(v string) *PostCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PostMutation object of the builder.
func (_c *PostCreate) Mutation() *PostMutation {
	return _c.mutation
}

// Save creates the Post in the database.
func (_c *PostCreate) Save(ctx context.Context) (*Post, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PostCreate) SaveX(ctx context.Context) *Post {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PostCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PostCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PostCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := post.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		v := post.DefaultAttemptCount
		_c.mutation.SetAttemptCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := post.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := post.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PostCreate) check() error {
	if _, ok := _c.mutation.CreatorID(); !ok {
		return &ValidationError{Name: "creator_id", err: errors.New(`ent: missing required field "Post.creator_id"`)}
	}
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "Post.account_id"`)}
	}
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "Post.platform"`)}
	}
	if v, ok := _c.mutation.Platform(); ok {
		if err := post.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "Post.platform": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MediaRef(); !ok {
		return &ValidationError{Name: "media_ref", err: errors.New(`ent: missing required field "Post.media_ref"`)}
	}
	if _, ok := _c.mutation.Caption(); !ok {
		return &ValidationError{Name: "caption", err: errors.New(`ent: missing required field "Post.caption"`)}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "Post.content_hash"`)}
	}
	if _, ok := _c.mutation.DedupeKey(); !ok {
		return &ValidationError{Name: "dedupe_key", err: errors.New(`ent: missing required field "Post.dedupe_key"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Post.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := post.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Post.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		return &ValidationError{Name: "attempt_count", err: errors.New(`ent: missing required field "Post.attempt_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Post.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Post.updated_at"`)}
	}
	return nil
}

func (_c *PostCreate) sqlSave(ctx context.Context) (*Post, error) {
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
			return nil, fmt.Errorf("unexpected Post.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PostCreate) createSpec() (*Post, *sqlgraph.CreateSpec) {
	var (
		_node = &Post{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(post.Table, sqlgraph.NewFieldSpec(post.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatorID(); ok {
		_spec.SetField(post.FieldCreatorID, field.TypeString, value)
		_node.CreatorID = value
	}
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(post.FieldAccountID, field.TypeString, value)
		_node.AccountID = value
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(post.FieldPlatform, field.TypeEnum, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.MediaRef(); ok {
		_spec.SetField(post.FieldMediaRef, field.TypeString, value)
		_node.MediaRef = value
	}
	if value, ok := _c.mutation.Caption(); ok {
		_spec.SetField(post.FieldCaption, field.TypeString, value)
		_node.Caption = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(post.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.DedupeKey(); ok {
		_spec.SetField(post.FieldDedupeKey, field.TypeString, value)
		_node.DedupeKey = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(post.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.ScheduledAt(); ok {
		_spec.SetField(post.FieldScheduledAt, field.TypeTime, value)
		_node.ScheduledAt = &value
	}
	if value, ok := _c.mutation.AttemptCount(); ok {
		_spec.SetField(post.FieldAttemptCount, field.TypeInt, value)
		_node.AttemptCount = value
	}
	if value, ok := _c.mutation.NextRetryAt(); ok {
		_spec.SetField(post.FieldNextRetryAt, field.TypeTime, value)
		_node.NextRetryAt = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(post.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(post.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = &value
	}
	if value, ok := _c.mutation.RemoteID(); ok {
		_spec.SetField(post.FieldRemoteID, field.TypeString, value)
		_node.RemoteID = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(post.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(post.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if value, ok := _c.mutation.DispatchedAt(); ok {
		_spec.SetField(post.FieldDispatchedAt, field.TypeTime, value)
		_node.DispatchedAt = &value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(post.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(post.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(post.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PostCreateBulk is the builder for creating many Post entities in bulk.
type PostCreateBulk struct {
	config
	err      error
	builders []*PostCreate
}

// Save creates the Post entities in the database.
func (_c *PostCreateBulk) Save(ctx context.Context) ([]*Post, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Post, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PostMutation)
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
func (_c *PostCreateBulk) SaveX(ctx context.Context) []*Post {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PostCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PostCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
