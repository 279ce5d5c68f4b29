// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/studyloop/studyloop/ent/calendarevent"
)

// CalendarEventCreate is the builder for creating a CalendarEvent entity.
type CalendarEventCreate struct {
	config
	mutation *CalendarEventMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *CalendarEventCreate) SetStudentID(v string) *CalendarEventCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *CalendarEventCreate) SetCourseID(v string) *CalendarEventCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetUnitID sets the "unit_id" field.
func (_c *CalendarEventCreate) SetUnitID(v string) *CalendarEventCreate {
	_c.mutation.SetUnitID(v)
	return _c
}

// SetUnitPosition sets the "unit_position" field.
func (_c *CalendarEventCreate) SetUnitPosition(v int) *CalendarEventCreate {
	_c.mutation.SetUnitPosition(v)
	return _c
}

// SetScheduledAt sets the "scheduled_at" field.
func (_c *CalendarEventCreate) SetScheduledAt(v time.Time) *CalendarEventCreate {
	_c.mutation.SetScheduledAt(v)
	return _c
}

// SetPlannedMinutes sets the "planned_minutes" field.
func (_c *CalendarEventCreate) SetPlannedMinutes(v int) *CalendarEventCreate {
	_c.mutation.SetPlannedMinutes(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *CalendarEventCreate) SetDifficulty(v int) *CalendarEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *CalendarEventCreate) SetCompleted(v bool) *CalendarEventCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableCompleted(v *bool) *CalendarEventCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetActualMinutes sets the "actual_minutes" field.
func (_c *CalendarEventCreate) SetActualMinutes(v int) *CalendarEventCreate {
	_c.mutation.SetActualMinutes(v)
	return _c
}

// SetNillableActualMinutes sets the "actual_minutes" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableActualMinutes(v *int) *CalendarEventCreate {
	if v != nil {
		_c.SetActualMinutes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CalendarEventCreate) SetCreatedAt(v time.Time) *CalendarEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableCreatedAt(v *time.Time) *CalendarEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CalendarEventCreate) SetID(v uuid.UUID) *CalendarEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableID(v *uuid.UUID) *CalendarEventCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the CalendarEventMutation object of the builder.
func (_c *CalendarEventCreate) Mutation() *CalendarEventMutation {
	return _c.mutation
}

// Save creates the CalendarEvent in the database.
func (_c *CalendarEventCreate) Save(ctx context.Context) (*CalendarEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CalendarEventCreate) SaveX(ctx context.Context) *CalendarEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CalendarEventCreate) defaults() {
	if _, ok := _c.mutation.Completed(); !ok {
		v := calendarevent.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := calendarevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := calendarevent.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CalendarEventCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "CalendarEvent.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := calendarevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "CalendarEvent.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "CalendarEvent.course_id"`)}
	}
	if v, ok := _c.mutation.CourseID(); ok {
		if err := calendarevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "CalendarEvent.course_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitID(); !ok {
		return &ValidationError{Name: "unit_id", err: errors.New(`ent: missing required field "CalendarEvent.unit_id"`)}
	}
	if v, ok := _c.mutation.UnitID(); ok {
		if err := calendarevent.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "CalendarEvent.unit_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitPosition(); !ok {
		return &ValidationError{Name: "unit_position", err: errors.New(`ent: missing required field "CalendarEvent.unit_position"`)}
	}
	if _, ok := _c.mutation.ScheduledAt(); !ok {
		return &ValidationError{Name: "scheduled_at", err: errors.New(`ent: missing required field "CalendarEvent.scheduled_at"`)}
	}
	if _, ok := _c.mutation.PlannedMinutes(); !ok {
		return &ValidationError{Name: "planned_minutes", err: errors.New(`ent: missing required field "CalendarEvent.planned_minutes"`)}
	}
	if v, ok := _c.mutation.PlannedMinutes(); ok {
		if err := calendarevent.PlannedMinutesValidator(v); err != nil {
			return &ValidationError{Name: "planned_minutes", err: fmt.Errorf(`ent: validator failed for field "CalendarEvent.planned_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "CalendarEvent.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := calendarevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "CalendarEvent.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "CalendarEvent.completed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CalendarEvent.created_at"`)}
	}
	return nil
}

func (_c *CalendarEventCreate) sqlSave(ctx context.Context) (*CalendarEvent, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CalendarEventCreate) createSpec() (*CalendarEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CalendarEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(calendarevent.Table, sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(calendarevent.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(calendarevent.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.UnitID(); ok {
		_spec.SetField(calendarevent.FieldUnitID, field.TypeString, value)
		_node.UnitID = value
	}
	if value, ok := _c.mutation.UnitPosition(); ok {
		_spec.SetField(calendarevent.FieldUnitPosition, field.TypeInt, value)
		_node.UnitPosition = value
	}
	if value, ok := _c.mutation.ScheduledAt(); ok {
		_spec.SetField(calendarevent.FieldScheduledAt, field.TypeTime, value)
		_node.ScheduledAt = value
	}
	if value, ok := _c.mutation.PlannedMinutes(); ok {
		_spec.SetField(calendarevent.FieldPlannedMinutes, field.TypeInt, value)
		_node.PlannedMinutes = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(calendarevent.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(calendarevent.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.ActualMinutes(); ok {
		_spec.SetField(calendarevent.FieldActualMinutes, field.TypeInt, value)
		_node.ActualMinutes = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(calendarevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// CalendarEventCreateBulk is the builder for creating many CalendarEvent entities in bulk.
type CalendarEventCreateBulk struct {
	config
	err      error
	builders []*CalendarEventCreate
}

// Save creates the CalendarEvent entities in the database.
func (_c *CalendarEventCreateBulk) Save(ctx context.Context) ([]*CalendarEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CalendarEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CalendarEventMutation)
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
func (_c *CalendarEventCreateBulk) SaveX(ctx context.Context) []*CalendarEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
