// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studyloop/studyloop/ent/adaptationevent"
)

// AdaptationEventCreate is the builder for creating a AdaptationEvent entity.
type AdaptationEventCreate struct {
	config
	mutation *AdaptationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AdaptationEventCreate) SetSequence(v int64) *AdaptationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AdaptationEventCreate) SetTimestamp(v time.Time) *AdaptationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AdaptationEventCreate) SetNillableTimestamp(v *time.Time) *AdaptationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *AdaptationEventCreate) SetStudentID(v string) *AdaptationEventCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetClassification sets the "classification" field.
func (_c *AdaptationEventCreate) SetClassification(v string) *AdaptationEventCreate {
	_c.mutation.SetClassification(v)
	return _c
}

// SetUrgency sets the "urgency" field.
func (_c *AdaptationEventCreate) SetUrgency(v string) *AdaptationEventCreate {
	_c.mutation.SetUrgency(v)
	return _c
}

// SetMutationCount sets the "mutation_count" field.
func (_c *AdaptationEventCreate) SetMutationCount(v int) *AdaptationEventCreate {
	_c.mutation.SetMutationCount(v)
	return _c
}

// SetNillableMutationCount sets the "mutation_count" field if the given value is not nil.
func (_c *AdaptationEventCreate) SetNillableMutationCount(v *int) *AdaptationEventCreate {
	if v != nil {
		_c.SetMutationCount(*v)
	}
	return _c
}

// SetRationale sets the "rationale" field.
func (_c *AdaptationEventCreate) SetRationale(v string) *AdaptationEventCreate {
	_c.mutation.SetRationale(v)
	return _c
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_c *AdaptationEventCreate) SetNillableRationale(v *string) *AdaptationEventCreate {
	if v != nil {
		_c.SetRationale(*v)
	}
	return _c
}

// Mutation returns the AdaptationEventMutation object of the builder.
func (_c *AdaptationEventCreate) Mutation() *AdaptationEventMutation {
	return _c.mutation
}

// Save creates the AdaptationEvent in the database.
func (_c *AdaptationEventCreate) Save(ctx context.Context) (*AdaptationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AdaptationEventCreate) SaveX(ctx context.Context) *AdaptationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdaptationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdaptationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AdaptationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := adaptationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.MutationCount(); !ok {
		v := adaptationevent.DefaultMutationCount
		_c.mutation.SetMutationCount(v)
	}
	if _, ok := _c.mutation.Rationale(); !ok {
		v := adaptationevent.DefaultRationale
		_c.mutation.SetRationale(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AdaptationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AdaptationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AdaptationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "AdaptationEvent.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := adaptationevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Classification(); !ok {
		return &ValidationError{Name: "classification", err: errors.New(`ent: missing required field "AdaptationEvent.classification"`)}
	}
	if v, ok := _c.mutation.Classification(); ok {
		if err := adaptationevent.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.classification": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Urgency(); !ok {
		return &ValidationError{Name: "urgency", err: errors.New(`ent: missing required field "AdaptationEvent.urgency"`)}
	}
	if v, ok := _c.mutation.Urgency(); ok {
		if err := adaptationevent.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.urgency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MutationCount(); !ok {
		return &ValidationError{Name: "mutation_count", err: errors.New(`ent: missing required field "AdaptationEvent.mutation_count"`)}
	}
	if _, ok := _c.mutation.Rationale(); !ok {
		return &ValidationError{Name: "rationale", err: errors.New(`ent: missing required field "AdaptationEvent.rationale"`)}
	}
	return nil
}

func (_c *AdaptationEventCreate) sqlSave(ctx context.Context) (*AdaptationEvent, error) {
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

func (_c *AdaptationEventCreate) createSpec() (*AdaptationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AdaptationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(adaptationevent.Table, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(adaptationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(adaptationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(adaptationevent.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Classification(); ok {
		_spec.SetField(adaptationevent.FieldClassification, field.TypeString, value)
		_node.Classification = value
	}
	if value, ok := _c.mutation.Urgency(); ok {
		_spec.SetField(adaptationevent.FieldUrgency, field.TypeString, value)
		_node.Urgency = value
	}
	if value, ok := _c.mutation.MutationCount(); ok {
		_spec.SetField(adaptationevent.FieldMutationCount, field.TypeInt, value)
		_node.MutationCount = value
	}
	if value, ok := _c.mutation.Rationale(); ok {
		_spec.SetField(adaptationevent.FieldRationale, field.TypeString, value)
		_node.Rationale = value
	}
	return _node, _spec
}

// AdaptationEventCreateBulk is the builder for creating many AdaptationEvent entities in bulk.
type AdaptationEventCreateBulk struct {
	config
	err      error
	builders []*AdaptationEventCreate
}

// Save creates the AdaptationEvent entities in the database.
func (_c *AdaptationEventCreateBulk) Save(ctx context.Context) ([]*AdaptationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AdaptationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdaptationEventMutation)
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
func (_c *AdaptationEventCreateBulk) SaveX(ctx context.Context) []*AdaptationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdaptationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdaptationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
