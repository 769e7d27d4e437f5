// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kelsic/dialogia/ent/schema"
	"github.com/kelsic/dialogia/ent/verdictevent"
)

// VerdictEventCreate is the builder for creating a VerdictEvent entity.
type VerdictEventCreate struct {
	config
	mutation *VerdictEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *VerdictEventCreate) SetSequence(v int64) *VerdictEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *VerdictEventCreate) SetTimestamp(v time.Time) *VerdictEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *VerdictEventCreate) SetNillableTimestamp(v *time.Time) *VerdictEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *VerdictEventCreate) SetRunID(v string) *VerdictEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetAccept sets the "accept" field.
func (_c *VerdictEventCreate) SetAccept(v bool) *VerdictEventCreate {
	_c.mutation.SetAccept(v)
	return _c
}

// SetHardStop sets the "hard_stop" field.
func (_c *VerdictEventCreate) SetHardStop(v bool) *VerdictEventCreate {
	_c.mutation.SetHardStop(v)
	return _c
}

// SetNillableHardStop sets the "hard_stop" field if the given value is not nil.
func (_c *VerdictEventCreate) SetNillableHardStop(v *bool) *VerdictEventCreate {
	if v != nil {
		_c.SetHardStop(*v)
	}
	return _c
}

// SetDimensions sets the "dimensions" field.
func (_c *VerdictEventCreate) SetDimensions(v []schema.DimensionScore) *VerdictEventCreate {
	_c.mutation.SetDimensions(v)
	return _c
}

// SetRationale sets the "rationale" field.
func (_c *VerdictEventCreate) SetRationale(v string) *VerdictEventCreate {
	_c.mutation.SetRationale(v)
	return _c
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_c *VerdictEventCreate) SetNillableRationale(v *string) *VerdictEventCreate {
	if v != nil {
		_c.SetRationale(*v)
	}
	return _c
}

// Mutation returns the VerdictEventMutation object of the builder.
func (_c *VerdictEventCreate) Mutation() *VerdictEventMutation {
	return _c.mutation
}

// Save creates the VerdictEvent in the database.
func (_c *VerdictEventCreate) Save(ctx context.Context) (*VerdictEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerdictEventCreate) SaveX(ctx context.Context) *VerdictEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerdictEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerdictEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerdictEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := verdictevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.HardStop(); !ok {
		v := verdictevent.DefaultHardStop
		_c.mutation.SetHardStop(v)
	}
	if _, ok := _c.mutation.Rationale(); !ok {
		v := verdictevent.DefaultRationale
		_c.mutation.SetRationale(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerdictEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "VerdictEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "VerdictEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "VerdictEvent.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := verdictevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "VerdictEvent.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Accept(); !ok {
		return &ValidationError{Name: "accept", err: errors.New(`ent: missing required field "VerdictEvent.accept"`)}
	}
	if _, ok := _c.mutation.HardStop(); !ok {
		return &ValidationError{Name: "hard_stop", err: errors.New(`ent: missing required field "VerdictEvent.hard_stop"`)}
	}
	if _, ok := _c.mutation.Rationale(); !ok {
		return &ValidationError{Name: "rationale", err: errors.New(`ent: missing required field "VerdictEvent.rationale"`)}
	}
	return nil
}

func (_c *VerdictEventCreate) sqlSave(ctx context.Context) (*VerdictEvent, error) {
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

func (_c *VerdictEventCreate) createSpec() (*VerdictEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &VerdictEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verdictevent.Table, sqlgraph.NewFieldSpec(verdictevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(verdictevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(verdictevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(verdictevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.Accept(); ok {
		_spec.SetField(verdictevent.FieldAccept, field.TypeBool, value)
		_node.Accept = value
	}
	if value, ok := _c.mutation.HardStop(); ok {
		_spec.SetField(verdictevent.FieldHardStop, field.TypeBool, value)
		_node.HardStop = value
	}
	if value, ok := _c.mutation.Dimensions(); ok {
		_spec.SetField(verdictevent.FieldDimensions, field.TypeJSON, value)
		_node.Dimensions = value
	}
	if value, ok := _c.mutation.Rationale(); ok {
		_spec.SetField(verdictevent.FieldRationale, field.TypeString, value)
		_node.Rationale = value
	}
	return _node, _spec
}

// VerdictEventCreateBulk is the builder for creating many VerdictEvent entities in bulk.
type VerdictEventCreateBulk struct {
	config
	err      error
	builders []*VerdictEventCreate
}

// Save creates the VerdictEvent entities in the database.
func (_c *VerdictEventCreateBulk) Save(ctx context.Context) ([]*VerdictEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VerdictEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerdictEventMutation)
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
func (_c *VerdictEventCreateBulk) SaveX(ctx context.Context) []*VerdictEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerdictEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerdictEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
