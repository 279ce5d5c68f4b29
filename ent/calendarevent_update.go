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
	"github.com/studyloop/studyloop/ent/calendarevent"
	"github.com/studyloop/studyloop/ent/predicate"
)

// CalendarEventUpdate is the builder for updating CalendarEvent entities.
type CalendarEventUpdate struct {
	config
	hooks    []Hook
	mutation *CalendarEventMutation
}

// Where appends a list predicates to the CalendarEventUpdate builder.
func (_u *CalendarEventUpdate) Where(ps ...predicate.CalendarEvent) *CalendarEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *CalendarEventUpdate) SetScheduledAt(v time.Time) *CalendarEventUpdate {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableScheduledAt(v *time.Time) *CalendarEventUpdate {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetPlannedMinutes sets the "planned_minutes" field.
func (_u *CalendarEventUpdate) SetPlannedMinutes(v int) *CalendarEventUpdate {
	_u.mutation.ResetPlannedMinutes()
	_u.mutation.SetPlannedMinutes(v)
	return _u
}

// SetNillablePlannedMinutes sets the "planned_minutes" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillablePlannedMinutes(v *int) *CalendarEventUpdate {
	if v != nil {
		_u.SetPlannedMinutes(*v)
	}
	return _u
}

// AddPlannedMinutes adds value to the "planned_minutes" field.
func (_u *CalendarEventUpdate) AddPlannedMinutes(v int) *CalendarEventUpdate {
	_u.mutation.AddPlannedMinutes(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *CalendarEventUpdate) SetDifficulty(v int) *CalendarEventUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableDifficulty(v *int) *CalendarEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *CalendarEventUpdate) AddDifficulty(v int) *CalendarEventUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *CalendarEventUpdate) SetCompleted(v bool) *CalendarEventUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableCompleted(v *bool) *CalendarEventUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetActualMinutes sets the "actual_minutes" field.
func (_u *CalendarEventUpdate) SetActualMinutes(v int) *CalendarEventUpdate {
	_u.mutation.ResetActualMinutes()
	_u.mutation.SetActualMinutes(v)
	return _u
}

// SetNillableActualMinutes sets the "actual_minutes" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableActualMinutes(v *int) *CalendarEventUpdate {
	if v != nil {
		_u.SetActualMinutes(*v)
	}
	return _u
}

// AddActualMinutes adds value to the "actual_minutes" field.
func (_u *CalendarEventUpdate) AddActualMinutes(v int) *CalendarEventUpdate {
	_u.mutation.AddActualMinutes(v)
	return _u
}

// ClearActualMinutes clears the value of the "actual_minutes" field.
func (_u *CalendarEventUpdate) ClearActualMinutes() *CalendarEventUpdate {
	_u.mutation.ClearActualMinutes()
	return _u
}

// Mutation returns the CalendarEventMutation object of the builder.
func (_u *CalendarEventUpdate) Mutation() *CalendarEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CalendarEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CalendarEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalendarEventUpdate) check() error {
	if v, ok := _u.mutation.PlannedMinutes(); ok {
		if err := calendarevent.PlannedMinutesValidator(v); err != nil {
			return &ValidationError{Name: "planned_minutes", err: fmt.Errorf(`ent: validator failed for field "CalendarEvent.planned_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := calendarevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "CalendarEvent.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *CalendarEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calendarevent.Table, calendarevent.Columns, sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(calendarevent.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PlannedMinutes(); ok {
		_spec.SetField(calendarevent.FieldPlannedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlannedMinutes(); ok {
		_spec.AddField(calendarevent.FieldPlannedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(calendarevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(calendarevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(calendarevent.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ActualMinutes(); ok {
		_spec.SetField(calendarevent.FieldActualMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActualMinutes(); ok {
		_spec.AddField(calendarevent.FieldActualMinutes, field.TypeInt, value)
	}
	if _u.mutation.ActualMinutesCleared() {
		_spec.ClearField(calendarevent.FieldActualMinutes, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CalendarEventUpdateOne is the builder for updating a single CalendarEvent entity.
type CalendarEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CalendarEventMutation
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *CalendarEventUpdateOne) SetScheduledAt(v time.Time) *CalendarEventUpdateOne {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableScheduledAt(v *time.Time) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetPlannedMinutes sets the "planned_minutes" field.
func (_u *CalendarEventUpdateOne) SetPlannedMinutes(v int) *CalendarEventUpdateOne {
	_u.mutation.ResetPlannedMinutes()
	_u.mutation.SetPlannedMinutes(v)
	return _u
}

// SetNillablePlannedMinutes sets the "planned_minutes" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillablePlannedMinutes(v *int) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetPlannedMinutes(*v)
	}
	return _u
}

// AddPlannedMinutes adds value to the "planned_minutes" field.
func (_u *CalendarEventUpdateOne) AddPlannedMinutes(v int) *CalendarEventUpdateOne {
	_u.mutation.AddPlannedMinutes(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *CalendarEventUpdateOne) SetDifficulty(v int) *CalendarEventUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableDifficulty(v *int) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *CalendarEventUpdateOne) AddDifficulty(v int) *CalendarEventUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *CalendarEventUpdateOne) SetCompleted(v bool) *CalendarEventUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableCompleted(v *bool) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetActualMinutes sets the "actual_minutes" field.
func (_u *CalendarEventUpdateOne) SetActualMinutes(v int) *CalendarEventUpdateOne {
	_u.mutation.ResetActualMinutes()
	_u.mutation.SetActualMinutes(v)
	return _u
}

// SetNillableActualMinutes sets the "actual_minutes" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableActualMinutes(v *int) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetActualMinutes(*v)
	}
	return _u
}

// AddActualMinutes adds value to the "actual_minutes" field.
func (_u *CalendarEventUpdateOne) AddActualMinutes(v int) *CalendarEventUpdateOne {
	_u.mutation.AddActualMinutes(v)
	return _u
}

// ClearActualMinutes clears the value of the "actual_minutes" field.
func (_u *CalendarEventUpdateOne) ClearActualMinutes() *CalendarEventUpdateOne {
	_u.mutation.ClearActualMinutes()
	return _u
}

// Mutation returns the CalendarEventMutation object of the builder.
func (_u *CalendarEventUpdateOne) Mutation() *CalendarEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CalendarEventUpdate builder.
func (_u *CalendarEventUpdateOne) Where(ps ...predicate.CalendarEvent) *CalendarEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CalendarEventUpdateOne) Select(field string, fields ...string) *CalendarEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CalendarEvent entity.
func (_u *CalendarEventUpdateOne) Save(ctx context.Context) (*CalendarEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarEventUpdateOne) SaveX(ctx context.Context) *CalendarEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CalendarEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalendarEventUpdateOne) check() error {
	if v, ok := _u.mutation.PlannedMinutes(); ok {
		if err := calendarevent.PlannedMinutesValidator(v); err != nil {
			return &ValidationError{Name: "planned_minutes", err: fmt.Errorf(`ent: validator failed for field "CalendarEvent.planned_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := calendarevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "CalendarEvent.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *CalendarEventUpdateOne) sqlSave(ctx context.Context) (_node *CalendarEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calendarevent.Table, calendarevent.Columns, sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CalendarEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, calendarevent.FieldID)
		for _, f := range fields {
			if !calendarevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != calendarevent.FieldID {
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
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(calendarevent.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PlannedMinutes(); ok {
		_spec.SetField(calendarevent.FieldPlannedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlannedMinutes(); ok {
		_spec.AddField(calendarevent.FieldPlannedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(calendarevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(calendarevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(calendarevent.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ActualMinutes(); ok {
		_spec.SetField(calendarevent.FieldActualMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActualMinutes(); ok {
		_spec.AddField(calendarevent.FieldActualMinutes, field.TypeInt, value)
	}
	if _u.mutation.ActualMinutesCleared() {
		_spec.ClearField(calendarevent.FieldActualMinutes, field.TypeInt)
	}
	_node = &CalendarEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
