// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/askvidya/vidya/ent/predicate"
	"github.com/askvidya/vidya/ent/resolutionevent"
)

// ResolutionEventUpdate is the builder for updating ResolutionEvent entities.
type ResolutionEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResolutionEventMutation
}

// Where appends a list predicates to the ResolutionEventUpdate builder.
func (_u *ResolutionEventUpdate) Where(ps ...predicate.ResolutionEvent) *ResolutionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *ResolutionEventUpdate) SetRequestID(v string) *ResolutionEventUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *ResolutionEventUpdate) SetNillableRequestID(v *string) *ResolutionEventUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *ResolutionEventUpdate) SetQuestion(v string) *ResolutionEventUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *ResolutionEventUpdate) SetNillableQuestion(v *string) *ResolutionEventUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ResolutionEventUpdate) SetSource(v string) *ResolutionEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ResolutionEventUpdate) SetNillableSource(v *string) *ResolutionEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ResolutionEventUpdate) SetCategory(v string) *ResolutionEventUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ResolutionEventUpdate) SetNillableCategory(v *string) *ResolutionEventUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *ResolutionEventUpdate) SetLanguage(v string) *ResolutionEventUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *ResolutionEventUpdate) SetNillableLanguage(v *string) *ResolutionEventUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ResolutionEventUpdate) SetSuccess(v bool) *ResolutionEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ResolutionEventUpdate) SetNillableSuccess(v *bool) *ResolutionEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ResolutionEventUpdate) SetLatencyMs(v int64) *ResolutionEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ResolutionEventUpdate) SetNillableLatencyMs(v *int64) *ResolutionEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ResolutionEventUpdate) AddLatencyMs(v int64) *ResolutionEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the ResolutionEventMutation object of the builder.
func (_u *ResolutionEventUpdate) Mutation() *ResolutionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResolutionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResolutionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResolutionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResolutionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ResolutionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(resolutionevent.Table, resolutionevent.Columns, sqlgraph.NewFieldSpec(resolutionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(resolutionevent.FieldRequestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(resolutionevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(resolutionevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(resolutionevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(resolutionevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(resolutionevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(resolutionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(resolutionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resolutionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResolutionEventUpdateOne is the builder for updating a single ResolutionEvent entity.
type ResolutionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResolutionEventMutation
}

// SetRequestID sets the "request_id" field.
func (_u *ResolutionEventUpdateOne) SetRequestID(v string) *ResolutionEventUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *ResolutionEventUpdateOne) SetNillableRequestID(v *string) *ResolutionEventUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *ResolutionEventUpdateOne) SetQuestion(v string) *ResolutionEventUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *ResolutionEventUpdateOne) SetNillableQuestion(v *string) *ResolutionEventUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ResolutionEventUpdateOne) SetSource(v string) *ResolutionEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ResolutionEventUpdateOne) SetNillableSource(v *string) *ResolutionEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ResolutionEventUpdateOne) SetCategory(v string) *ResolutionEventUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ResolutionEventUpdateOne) SetNillableCategory(v *string) *ResolutionEventUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *ResolutionEventUpdateOne) SetLanguage(v string) *ResolutionEventUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *ResolutionEventUpdateOne) SetNillableLanguage(v *string) *ResolutionEventUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ResolutionEventUpdateOne) SetSuccess(v bool) *ResolutionEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ResolutionEventUpdateOne) SetNillableSuccess(v *bool) *ResolutionEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ResolutionEventUpdateOne) SetLatencyMs(v int64) *ResolutionEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ResolutionEventUpdateOne) SetNillableLatencyMs(v *int64) *ResolutionEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ResolutionEventUpdateOne) AddLatencyMs(v int64) *ResolutionEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the ResolutionEventMutation object of the builder.
func (_u *ResolutionEventUpdateOne) Mutation() *ResolutionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResolutionEventUpdate builder.
func (_u *ResolutionEventUpdateOne) Where(ps ...predicate.ResolutionEvent) *ResolutionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResolutionEventUpdateOne) Select(field string, fields ...string) *ResolutionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResolutionEvent entity.
func (_u *ResolutionEventUpdateOne) Save(ctx context.Context) (*ResolutionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResolutionEventUpdateOne) SaveX(ctx context.Context) *ResolutionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResolutionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResolutionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ResolutionEventUpdateOne) sqlSave(ctx context.Context) (_node *ResolutionEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(resolutionevent.Table, resolutionevent.Columns, sqlgraph.NewFieldSpec(resolutionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResolutionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resolutionevent.FieldID)
		for _, f := range fields {
			if !resolutionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resolutionevent.FieldID {
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
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(resolutionevent.FieldRequestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(resolutionevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(resolutionevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(resolutionevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(resolutionevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(resolutionevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(resolutionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(resolutionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	_node = &ResolutionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resolutionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
