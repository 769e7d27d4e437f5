// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kelsic/dialogia/ent/runevent"
)

// RunEventCreate is the builder for creating a RunEvent entity.
type RunEventCreate struct {
	config
	mutation *RunEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RunEventCreate) SetSequence(v int64) *RunEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RunEventCreate) SetTimestamp(v time.Time) *RunEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableTimestamp(v *time.Time) *RunEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *RunEventCreate) SetRunID(v string) *RunEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *RunEventCreate) SetAction(v string) *RunEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetScenarioID sets the "scenario_id" field.
func (_c *RunEventCreate) SetScenarioID(v string) *RunEventCreate {
	_c.mutation.SetScenarioID(v)
	return _c
}

// SetNillableScenarioID sets the "scenario_id" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableScenarioID(v *string) *RunEventCreate {
	if v != nil {
		_c.SetScenarioID(*v)
	}
	return _c
}

// SetStudentName sets the "student_name" field.
func (_c *RunEventCreate) SetStudentName(v string) *RunEventCreate {
	_c.mutation.SetStudentName(v)
	return _c
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableStudentName(v *string) *RunEventCreate {
	if v != nil {
		_c.SetStudentName(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *RunEventCreate) SetOutcome(v string) *RunEventCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableOutcome(v *string) *RunEventCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetExchanges sets the "exchanges" field.
func (_c *RunEventCreate) SetExchanges(v int) *RunEventCreate {
	_c.mutation.SetExchanges(v)
	return _c
}

// SetNillableExchanges sets the "exchanges" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableExchanges(v *int) *RunEventCreate {
	if v != nil {
		_c.SetExchanges(*v)
	}
	return _c
}

// SetStudentExchanges sets the "student_exchanges" field.
func (_c *RunEventCreate) SetStudentExchanges(v int) *RunEventCreate {
	_c.mutation.SetStudentExchanges(v)
	return _c
}

// SetNillableStudentExchanges sets the "student_exchanges" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableStudentExchanges(v *int) *RunEventCreate {
	if v != nil {
		_c.SetStudentExchanges(*v)
	}
	return _c
}

// SetPushbackRate sets the "pushback_rate" field.
func (_c *RunEventCreate) SetPushbackRate(v float64) *RunEventCreate {
	_c.mutation.SetPushbackRate(v)
	return _c
}

// SetNillablePushbackRate sets the "pushback_rate" field if the given value is not nil.
func (_c *RunEventCreate) SetNillablePushbackRate(v *float64) *RunEventCreate {
	if v != nil {
		_c.SetPushbackRate(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RunEventCreate) SetErrorMessage(v string) *RunEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableErrorMessage(v *string) *RunEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the RunEventMutation object of the builder.
func (_c *RunEventCreate) Mutation() *RunEventMutation {
	return _c.mutation
}

// Save creates the RunEvent in the database.
func (_c *RunEventCreate) Save(ctx context.Context) (*RunEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunEventCreate) SaveX(ctx context.Context) *RunEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := runevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ScenarioID(); !ok {
		v := runevent.DefaultScenarioID
		_c.mutation.SetScenarioID(v)
	}
	if _, ok := _c.mutation.StudentName(); !ok {
		v := runevent.DefaultStudentName
		_c.mutation.SetStudentName(v)
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		v := runevent.DefaultOutcome
		_c.mutation.SetOutcome(v)
	}
	if _, ok := _c.mutation.Exchanges(); !ok {
		v := runevent.DefaultExchanges
		_c.mutation.SetExchanges(v)
	}
	if _, ok := _c.mutation.StudentExchanges(); !ok {
		v := runevent.DefaultStudentExchanges
		_c.mutation.SetStudentExchanges(v)
	}
	if _, ok := _c.mutation.PushbackRate(); !ok {
		v := runevent.DefaultPushbackRate
		_c.mutation.SetPushbackRate(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := runevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RunEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RunEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "RunEvent.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := runevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "RunEvent.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "RunEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := runevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "RunEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScenarioID(); !ok {
		return &ValidationError{Name: "scenario_id", err: errors.New(`ent: missing required field "RunEvent.scenario_id"`)}
	}
	if _, ok := _c.mutation.StudentName(); !ok {
		return &ValidationError{Name: "student_name", err: errors.New(`ent: missing required field "RunEvent.student_name"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "RunEvent.outcome"`)}
	}
	if _, ok := _c.mutation.Exchanges(); !ok {
		return &ValidationError{Name: "exchanges", err: errors.New(`ent: missing required field "RunEvent.exchanges"`)}
	}
	if _, ok := _c.mutation.StudentExchanges(); !ok {
		return &ValidationError{Name: "student_exchanges", err: errors.New(`ent: missing required field "RunEvent.student_exchanges"`)}
	}
	if _, ok := _c.mutation.PushbackRate(); !ok {
		return &ValidationError{Name: "pushback_rate", err: errors.New(`ent: missing required field "RunEvent.pushback_rate"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "RunEvent.error_message"`)}
	}
	return nil
}

func (_c *RunEventCreate) sqlSave(ctx context.Context) (*RunEvent, error) {
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

func (_c *RunEventCreate) createSpec() (*RunEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RunEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runevent.Table, sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(runevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(runevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(runevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(runevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.ScenarioID(); ok {
		_spec.SetField(runevent.FieldScenarioID, field.TypeString, value)
		_node.ScenarioID = value
	}
	if value, ok := _c.mutation.StudentName(); ok {
		_spec.SetField(runevent.FieldStudentName, field.TypeString, value)
		_node.StudentName = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(runevent.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.Exchanges(); ok {
		_spec.SetField(runevent.FieldExchanges, field.TypeInt, value)
		_node.Exchanges = value
	}
	if value, ok := _c.mutation.StudentExchanges(); ok {
		_spec.SetField(runevent.FieldStudentExchanges, field.TypeInt, value)
		_node.StudentExchanges = value
	}
	if value, ok := _c.mutation.PushbackRate(); ok {
		_spec.SetField(runevent.FieldPushbackRate, field.TypeFloat64, value)
		_node.PushbackRate = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(runevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// RunEventCreateBulk is the builder for creating many RunEvent entities in bulk.
type RunEventCreateBulk struct {
	config
	err      error
	builders []*RunEventCreate
}

// Save creates the RunEvent entities in the database.
func (_c *RunEventCreateBulk) Save(ctx context.Context) ([]*RunEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RunEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunEventMutation)
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
func (_c *RunEventCreateBulk) SaveX(ctx context.Context) []*RunEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
