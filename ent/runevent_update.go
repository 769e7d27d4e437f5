// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kelsic/dialogia/ent/predicate"
	"github.com/kelsic/dialogia/ent/runevent"
)

// RunEventUpdate is the builder for updating RunEvent entities.
type RunEventUpdate struct {
	config
	hooks    []Hook
	mutation *RunEventMutation
}

// Where appends a list predicates to the RunEventUpdate builder.
func (_u *RunEventUpdate) Where(ps ...predicate.RunEvent) *RunEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *RunEventUpdate) SetRunID(v string) *RunEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableRunID(v *string) *RunEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *RunEventUpdate) SetAction(v string) *RunEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableAction(v *string) *RunEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetScenarioID sets the "scenario_id" field.
func (_u *RunEventUpdate) SetScenarioID(v string) *RunEventUpdate {
	_u.mutation.SetScenarioID(v)
	return _u
}

// SetNillableScenarioID sets the "scenario_id" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableScenarioID(v *string) *RunEventUpdate {
	if v != nil {
		_u.SetScenarioID(*v)
	}
	return _u
}

// SetStudentName sets the "student_name" field.
func (_u *RunEventUpdate) SetStudentName(v string) *RunEventUpdate {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableStudentName(v *string) *RunEventUpdate {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *RunEventUpdate) SetOutcome(v string) *RunEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableOutcome(v *string) *RunEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetExchanges sets the "exchanges" field.
func (_u *RunEventUpdate) SetExchanges(v int) *RunEventUpdate {
	_u.mutation.ResetExchanges()
	_u.mutation.SetExchanges(v)
	return _u
}

// SetNillableExchanges sets the "exchanges" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableExchanges(v *int) *RunEventUpdate {
	if v != nil {
		_u.SetExchanges(*v)
	}
	return _u
}

// AddExchanges adds value to the "exchanges" field.
func (_u *RunEventUpdate) AddExchanges(v int) *RunEventUpdate {
	_u.mutation.AddExchanges(v)
	return _u
}

// SetStudentExchanges sets the "student_exchanges" field.
func (_u *RunEventUpdate) SetStudentExchanges(v int) *RunEventUpdate {
	_u.mutation.ResetStudentExchanges()
	_u.mutation.SetStudentExchanges(v)
	return _u
}

// SetNillableStudentExchanges sets the "student_exchanges" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableStudentExchanges(v *int) *RunEventUpdate {
	if v != nil {
		_u.SetStudentExchanges(*v)
	}
	return _u
}

// AddStudentExchanges adds value to the "student_exchanges" field.
func (_u *RunEventUpdate) AddStudentExchanges(v int) *RunEventUpdate {
	_u.mutation.AddStudentExchanges(v)
	return _u
}

// SetPushbackRate sets the "pushback_rate" field.
func (_u *RunEventUpdate) SetPushbackRate(v float64) *RunEventUpdate {
	_u.mutation.ResetPushbackRate()
	_u.mutation.SetPushbackRate(v)
	return _u
}

// SetNillablePushbackRate sets the "pushback_rate" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillablePushbackRate(v *float64) *RunEventUpdate {
	if v != nil {
		_u.SetPushbackRate(*v)
	}
	return _u
}

// AddPushbackRate adds value to the "pushback_rate" field.
func (_u *RunEventUpdate) AddPushbackRate(v float64) *RunEventUpdate {
	_u.mutation.AddPushbackRate(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RunEventUpdate) SetErrorMessage(v string) *RunEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableErrorMessage(v *string) *RunEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the RunEventMutation object of the builder.
func (_u *RunEventUpdate) Mutation() *RunEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := runevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "RunEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := runevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "RunEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *RunEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runevent.Table, runevent.Columns, sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(runevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(runevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScenarioID(); ok {
		_spec.SetField(runevent.FieldScenarioID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(runevent.FieldStudentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(runevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Exchanges(); ok {
		_spec.SetField(runevent.FieldExchanges, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExchanges(); ok {
		_spec.AddField(runevent.FieldExchanges, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StudentExchanges(); ok {
		_spec.SetField(runevent.FieldStudentExchanges, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentExchanges(); ok {
		_spec.AddField(runevent.FieldStudentExchanges, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PushbackRate(); ok {
		_spec.SetField(runevent.FieldPushbackRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPushbackRate(); ok {
		_spec.AddField(runevent.FieldPushbackRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(runevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunEventUpdateOne is the builder for updating a single RunEvent entity.
type RunEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *RunEventUpdateOne) SetRunID(v string) *RunEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableRunID(v *string) *RunEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *RunEventUpdateOne) SetAction(v string) *RunEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableAction(v *string) *RunEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetScenarioID sets the "scenario_id" field.
func (_u *RunEventUpdateOne) SetScenarioID(v string) *RunEventUpdateOne {
	_u.mutation.SetScenarioID(v)
	return _u
}

// SetNillableScenarioID sets the "scenario_id" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableScenarioID(v *string) *RunEventUpdateOne {
	if v != nil {
		_u.SetScenarioID(*v)
	}
	return _u
}

// SetStudentName sets the "student_name" field.
func (_u *RunEventUpdateOne) SetStudentName(v string) *RunEventUpdateOne {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableStudentName(v *string) *RunEventUpdateOne {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *RunEventUpdateOne) SetOutcome(v string) *RunEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableOutcome(v *string) *RunEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetExchanges sets the "exchanges" field.
func (_u *RunEventUpdateOne) SetExchanges(v int) *RunEventUpdateOne {
	_u.mutation.ResetExchanges()
	_u.mutation.SetExchanges(v)
	return _u
}

// SetNillableExchanges sets the "exchanges" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableExchanges(v *int) *RunEventUpdateOne {
	if v != nil {
		_u.SetExchanges(*v)
	}
	return _u
}

// AddExchanges adds value to the "exchanges" field.
func (_u *RunEventUpdateOne) AddExchanges(v int) *RunEventUpdateOne {
	_u.mutation.AddExchanges(v)
	return _u
}

// SetStudentExchanges sets the "student_exchanges" field.
func (_u *RunEventUpdateOne) SetStudentExchanges(v int) *RunEventUpdateOne {
	_u.mutation.ResetStudentExchanges()
	_u.mutation.SetStudentExchanges(v)
	return _u
}

// SetNillableStudentExchanges sets the "student_exchanges" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableStudentExchanges(v *int) *RunEventUpdateOne {
	if v != nil {
		_u.SetStudentExchanges(*v)
	}
	return _u
}

// AddStudentExchanges adds value to the "student_exchanges" field.
func (_u *RunEventUpdateOne) AddStudentExchanges(v int) *RunEventUpdateOne {
	_u.mutation.AddStudentExchanges(v)
	return _u
}

// SetPushbackRate sets the "pushback_rate" field.
func (_u *RunEventUpdateOne) SetPushbackRate(v float64) *RunEventUpdateOne {
	_u.mutation.ResetPushbackRate()
	_u.mutation.SetPushbackRate(v)
	return _u
}

// SetNillablePushbackRate sets the "pushback_rate" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillablePushbackRate(v *float64) *RunEventUpdateOne {
	if v != nil {
		_u.SetPushbackRate(*v)
	}
	return _u
}

// AddPushbackRate adds value to the "pushback_rate" field.
func (_u *RunEventUpdateOne) AddPushbackRate(v float64) *RunEventUpdateOne {
	_u.mutation.AddPushbackRate(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RunEventUpdateOne) SetErrorMessage(v string) *RunEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableErrorMessage(v *string) *RunEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the RunEventMutation object of the builder.
func (_u *RunEventUpdateOne) Mutation() *RunEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunEventUpdate builder.
func (_u *RunEventUpdateOne) Where(ps ...predicate.RunEvent) *RunEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunEventUpdateOne) Select(field string, fields ...string) *RunEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunEvent entity.
func (_u *RunEventUpdateOne) Save(ctx context.Context) (*RunEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunEventUpdateOne) SaveX(ctx context.Context) *RunEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := runevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "RunEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := runevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "RunEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *RunEventUpdateOne) sqlSave(ctx context.Context) (_node *RunEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runevent.Table, runevent.Columns, sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runevent.FieldID)
		for _, f := range fields {
			if !runevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runevent.FieldID {
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
		_spec.SetField(runevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(runevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScenarioID(); ok {
		_spec.SetField(runevent.FieldScenarioID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(runevent.FieldStudentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(runevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Exchanges(); ok {
		_spec.SetField(runevent.FieldExchanges, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExchanges(); ok {
		_spec.AddField(runevent.FieldExchanges, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StudentExchanges(); ok {
		_spec.SetField(runevent.FieldStudentExchanges, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentExchanges(); ok {
		_spec.AddField(runevent.FieldStudentExchanges, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PushbackRate(); ok {
		_spec.SetField(runevent.FieldPushbackRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPushbackRate(); ok {
		_spec.AddField(runevent.FieldPushbackRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(runevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &RunEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
