// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/kelsic/dialogia/ent/predicate"
	"github.com/kelsic/dialogia/ent/schema"
	"github.com/kelsic/dialogia/ent/verdictevent"
)

// VerdictEventUpdate is the builder for updating VerdictEvent entities.
type VerdictEventUpdate struct {
	config
	hooks    []Hook
	mutation *VerdictEventMutation
}

// Where appends a list predicates to the VerdictEventUpdate builder.
func (_u *VerdictEventUpdate) Where(ps ...predicate.VerdictEvent) *VerdictEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *VerdictEventUpdate) SetRunID(v string) *VerdictEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *VerdictEventUpdate) SetNillableRunID(v *string) *VerdictEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetAccept sets the "accept" field.
func (_u *VerdictEventUpdate) SetAccept(v bool) *VerdictEventUpdate {
	_u.mutation.SetAccept(v)
	return _u
}

// SetNillableAccept sets the "accept" field if the given value is not nil.
func (_u *VerdictEventUpdate) SetNillableAccept(v *bool) *VerdictEventUpdate {
	if v != nil {
		_u.SetAccept(*v)
	}
	return _u
}

// SetHardStop sets the "hard_stop" field.
func (_u *VerdictEventUpdate) SetHardStop(v bool) *VerdictEventUpdate {
	_u.mutation.SetHardStop(v)
	return _u
}

// SetNillableHardStop sets the "hard_stop" field if the given value is not nil.
func (_u *VerdictEventUpdate) SetNillableHardStop(v *bool) *VerdictEventUpdate {
	if v != nil {
		_u.SetHardStop(*v)
	}
	return _u
}

// SetDimensions sets the "dimensions" field.
func (_u *VerdictEventUpdate) SetDimensions(v []schema.DimensionScore) *VerdictEventUpdate {
	_u.mutation.SetDimensions(v)
	return _u
}

// AppendDimensions appends value to the "dimensions" field.
func (_u *VerdictEventUpdate) AppendDimensions(v []schema.DimensionScore) *VerdictEventUpdate {
	_u.mutation.AppendDimensions(v)
	return _u
}

// ClearDimensions clears the value of the "dimensions" field.
func (_u *VerdictEventUpdate) ClearDimensions() *VerdictEventUpdate {
	_u.mutation.ClearDimensions()
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *VerdictEventUpdate) SetRationale(v string) *VerdictEventUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *VerdictEventUpdate) SetNillableRationale(v *string) *VerdictEventUpdate {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// Mutation returns the VerdictEventMutation object of the builder.
func (_u *VerdictEventUpdate) Mutation() *VerdictEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerdictEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerdictEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerdictEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerdictEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerdictEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := verdictevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "VerdictEvent.run_id": %w`, err)}
		}
	}
	return nil
}

func (_u *VerdictEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verdictevent.Table, verdictevent.Columns, sqlgraph.NewFieldSpec(verdictevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(verdictevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Accept(); ok {
		_spec.SetField(verdictevent.FieldAccept, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HardStop(); ok {
		_spec.SetField(verdictevent.FieldHardStop, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Dimensions(); ok {
		_spec.SetField(verdictevent.FieldDimensions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDimensions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verdictevent.FieldDimensions, value)
		})
	}
	if _u.mutation.DimensionsCleared() {
		_spec.ClearField(verdictevent.FieldDimensions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(verdictevent.FieldRationale, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verdictevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerdictEventUpdateOne is the builder for updating a single VerdictEvent entity.
type VerdictEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerdictEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *VerdictEventUpdateOne) SetRunID(v string) *VerdictEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *VerdictEventUpdateOne) SetNillableRunID(v *string) *VerdictEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetAccept sets the "accept" field.
func (_u *VerdictEventUpdateOne) SetAccept(v bool) *VerdictEventUpdateOne {
	_u.mutation.SetAccept(v)
	return _u
}

// SetNillableAccept sets the "accept" field if the given value is not nil.
func (_u *VerdictEventUpdateOne) SetNillableAccept(v *bool) *VerdictEventUpdateOne {
	if v != nil {
		_u.SetAccept(*v)
	}
	return _u
}

// SetHardStop sets the "hard_stop" field.
func (_u *VerdictEventUpdateOne) SetHardStop(v bool) *VerdictEventUpdateOne {
	_u.mutation.SetHardStop(v)
	return _u
}

// SetNillableHardStop sets the "hard_stop" field if the given value is not nil.
func (_u *VerdictEventUpdateOne) SetNillableHardStop(v *bool) *VerdictEventUpdateOne {
	if v != nil {
		_u.SetHardStop(*v)
	}
	return _u
}

// SetDimensions sets the "dimensions" field.
func (_u *VerdictEventUpdateOne) SetDimensions(v []schema.DimensionScore) *VerdictEventUpdateOne {
	_u.mutation.SetDimensions(v)
	return _u
}

// AppendDimensions appends value to the "dimensions" field.
func (_u *VerdictEventUpdateOne) AppendDimensions(v []schema.DimensionScore) *VerdictEventUpdateOne {
	_u.mutation.AppendDimensions(v)
	return _u
}

// ClearDimensions clears the value of the "dimensions" field.
func (_u *VerdictEventUpdateOne) ClearDimensions() *VerdictEventUpdateOne {
	_u.mutation.ClearDimensions()
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *VerdictEventUpdateOne) SetRationale(v string) *VerdictEventUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *VerdictEventUpdateOne) SetNillableRationale(v *string) *VerdictEventUpdateOne {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// Mutation returns the VerdictEventMutation object of the builder.
func (_u *VerdictEventUpdateOne) Mutation() *VerdictEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the VerdictEventUpdate builder.
func (_u *VerdictEventUpdateOne) Where(ps ...predicate.VerdictEvent) *VerdictEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerdictEventUpdateOne) Select(field string, fields ...string) *VerdictEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VerdictEvent entity.
func (_u *VerdictEventUpdateOne) Save(ctx context.Context) (*VerdictEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerdictEventUpdateOne) SaveX(ctx context.Context) *VerdictEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerdictEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerdictEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerdictEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := verdictevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "VerdictEvent.run_id": %w`, err)}
		}
	}
	return nil
}

func (_u *VerdictEventUpdateOne) sqlSave(ctx context.Context) (_node *VerdictEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verdictevent.Table, verdictevent.Columns, sqlgraph.NewFieldSpec(verdictevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VerdictEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verdictevent.FieldID)
		for _, f := range fields {
			if !verdictevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verdictevent.FieldID {
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
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(verdictevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Accept(); ok {
		_spec.SetField(verdictevent.FieldAccept, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HardStop(); ok {
		_spec.SetField(verdictevent.FieldHardStop, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Dimensions(); ok {
		_spec.SetField(verdictevent.FieldDimensions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDimensions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verdictevent.FieldDimensions, value)
		})
	}
	if _u.mutation.DimensionsCleared() {
		_spec.ClearField(verdictevent.FieldDimensions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(verdictevent.FieldRationale, field.TypeString, value)
	}
	_node = &VerdictEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verdictevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
