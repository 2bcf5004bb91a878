// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/askvidya/vidya/ent/resolutionevent"
)

// ResolutionEventCreate is the builder for creating a ResolutionEvent entity.
type ResolutionEventCreate struct {
	config
	mutation *ResolutionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ResolutionEventCreate) SetSequence(v int64) *ResolutionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ResolutionEventCreate) SetTimestamp(v time.Time) *ResolutionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ResolutionEventCreate) SetNillableTimestamp(v *time.Time) *ResolutionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *ResolutionEventCreate) SetRequestID(v string) *ResolutionEventCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *ResolutionEventCreate) SetQuestion(v string) *ResolutionEventCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *ResolutionEventCreate) SetSource(v string) *ResolutionEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ResolutionEventCreate) SetCategory(v string) *ResolutionEventCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *ResolutionEventCreate) SetNillableCategory(v *string) *ResolutionEventCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetLanguage sets the "language" field.
func (_c *ResolutionEventCreate) SetLanguage(v string) *ResolutionEventCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *ResolutionEventCreate) SetNillableLanguage(v *string) *ResolutionEventCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *ResolutionEventCreate) SetSuccess(v bool) *ResolutionEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *ResolutionEventCreate) SetLatencyMs(v int64) *ResolutionEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *ResolutionEventCreate) SetNillableLatencyMs(v *int64) *ResolutionEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// Mutation returns the ResolutionEventMutation object of the builder.
func (_c *ResolutionEventCreate) Mutation() *ResolutionEventMutation {
	return _c.mutation
}

// Save creates the ResolutionEvent in the database.
func (_c *ResolutionEventCreate) Save(ctx context.Context) (*ResolutionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResolutionEventCreate) SaveX(ctx context.Context) *ResolutionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResolutionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResolutionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResolutionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := resolutionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Category(); !ok {
		v := resolutionevent.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.Language(); !ok {
		v := resolutionevent.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := resolutionevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResolutionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ResolutionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ResolutionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "ResolutionEvent.request_id"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "ResolutionEvent.question"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "ResolutionEvent.source"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "ResolutionEvent.category"`)}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "ResolutionEvent.language"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "ResolutionEvent.success"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "ResolutionEvent.latency_ms"`)}
	}
	return nil
}

func (_c *ResolutionEventCreate) sqlSave(ctx context.Context) (*ResolutionEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResolutionEventCreate) createSpec() (*ResolutionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ResolutionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resolutionevent.Table, sqlgraph.NewFieldSpec(resolutionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(resolutionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(resolutionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(resolutionevent.FieldRequestID, field.TypeString, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(resolutionevent.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(resolutionevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(resolutionevent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(resolutionevent.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(resolutionevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(resolutionevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	return _node, _spec
}

// ResolutionEventCreateBulk is the builder for creating many ResolutionEvent entities in bulk.
type ResolutionEventCreateBulk struct {
	config
	err      error
	builders []*ResolutionEventCreate
}

// Save creates the ResolutionEvent entities in the database.
func (_c *ResolutionEventCreateBulk) Save(ctx context.Context) ([]*ResolutionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResolutionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResolutionEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ResolutionEventCreateBulk) SaveX(ctx context.Context) []*ResolutionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResolutionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResolutionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
