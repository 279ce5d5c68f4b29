// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studyloop/studyloop/ent/adaptationevent"
	"github.com/studyloop/studyloop/ent/predicate"
)

// AdaptationEventUpdate is the builder for updating AdaptationEvent entities.
type AdaptationEventUpdate struct {
	config
	hooks    []Hook
	mutation *AdaptationEventMutation
}

// Where appends a list predicates to the AdaptationEventUpdate builder.
func (_u *AdaptationEventUpdate) Where(ps ...predicate.AdaptationEvent) *AdaptationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *AdaptationEventUpdate) SetStudentID(v string) *AdaptationEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableStudentID(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetClassification sets the "classification" field.
func (_u *AdaptationEventUpdate) SetClassification(v string) *AdaptationEventUpdate {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableClassification(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// SetUrgency sets the "urgency" field.
func (_u *AdaptationEventUpdate) SetUrgency(v string) *AdaptationEventUpdate {
	_u.mutation.SetUrgency(v)
	return _u
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableUrgency(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetUrgency(*v)
	}
	return _u
}

// SetMutationCount sets the "mutation_count" field.
func (_u *AdaptationEventUpdate) SetMutationCount(v int) *AdaptationEventUpdate {
	_u.mutation.ResetMutationCount()
	_u.mutation.SetMutationCount(v)
	return _u
}

// SetNillableMutationCount sets the "mutation_count" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableMutationCount(v *int) *AdaptationEventUpdate {
	if v != nil {
		_u.SetMutationCount(*v)
	}
	return _u
}

// AddMutationCount adds value to the "mutation_count" field.
func (_u *AdaptationEventUpdate) AddMutationCount(v int) *AdaptationEventUpdate {
	_u.mutation.AddMutationCount(v)
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *AdaptationEventUpdate) SetRationale(v string) *AdaptationEventUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableRationale(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// Mutation returns the AdaptationEventMutation object of the builder.
func (_u *AdaptationEventUpdate) Mutation() *AdaptationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdaptationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdaptationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdaptationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdaptationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdaptationEventUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := adaptationevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := adaptationevent.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.classification": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Urgency(); ok {
		if err := adaptationevent.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.urgency": %w`, err)}
		}
	}
	return nil
}

func (_u *AdaptationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adaptationevent.Table, adaptationevent.Columns, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(adaptationevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(adaptationevent.FieldClassification, field.TypeString, value)
	}
	if value, ok := _u.mutation.Urgency(); ok {
		_spec.SetField(adaptationevent.FieldUrgency, field.TypeString, value)
	}
	if value, ok := _u.mutation.MutationCount(); ok {
		_spec.SetField(adaptationevent.FieldMutationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMutationCount(); ok {
		_spec.AddField(adaptationevent.FieldMutationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(adaptationevent.FieldRationale, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adaptationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdaptationEventUpdateOne is the builder for updating a single AdaptationEvent entity.
type AdaptationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdaptationEventMutation
}

// SetStudentID sets the "student_id" field.
func (_u *AdaptationEventUpdateOne) SetStudentID(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableStudentID(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetClassification sets the "classification" field.
func (_u *AdaptationEventUpdateOne) SetClassification(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableClassification(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// SetUrgency sets the "urgency" field.
func (_u *AdaptationEventUpdateOne) SetUrgency(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetUrgency(v)
	return _u
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableUrgency(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetUrgency(*v)
	}
	return _u
}

// SetMutationCount sets the "mutation_count" field.
func (_u *AdaptationEventUpdateOne) SetMutationCount(v int) *AdaptationEventUpdateOne {
	_u.mutation.ResetMutationCount()
	_u.mutation.SetMutationCount(v)
	return _u
}

// SetNillableMutationCount sets the "mutation_count" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableMutationCount(v *int) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetMutationCount(*v)
	}
	return _u
}

// AddMutationCount adds value to the "mutation_count" field.
func (_u *AdaptationEventUpdateOne) AddMutationCount(v int) *AdaptationEventUpdateOne {
	_u.mutation.AddMutationCount(v)
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *AdaptationEventUpdateOne) SetRationale(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableRationale(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// Mutation returns the AdaptationEventMutation object of the builder.
func (_u *AdaptationEventUpdateOne) Mutation() *AdaptationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AdaptationEventUpdate builder.
func (_u *AdaptationEventUpdateOne) Where(ps ...predicate.AdaptationEvent) *AdaptationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdaptationEventUpdateOne) Select(field string, fields ...string) *AdaptationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdaptationEvent entity.
func (_u *AdaptationEventUpdateOne) Save(ctx context.Context) (*AdaptationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdaptationEventUpdateOne) SaveX(ctx context.Context) *AdaptationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdaptationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdaptationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdaptationEventUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := adaptationevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := adaptationevent.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.classification": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Urgency(); ok {
		if err := adaptationevent.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.urgency": %w`, err)}
		}
	}
	return nil
}

func (_u *AdaptationEventUpdateOne) sqlSave(ctx context.Context) (_node *AdaptationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adaptationevent.Table, adaptationevent.Columns, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AdaptationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, adaptationevent.FieldID)
		for _, f := range fields {
			if !adaptationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != adaptationevent.FieldID {
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
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(adaptationevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(adaptationevent.FieldClassification, field.TypeString, value)
	}
	if value, ok := _u.mutation.Urgency(); ok {
		_spec.SetField(adaptationevent.FieldUrgency, field.TypeString, value)
	}
	if value, ok := _u.mutation.MutationCount(); ok {
		_spec.SetField(adaptationevent.FieldMutationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMutationCount(); ok {
		_spec.AddField(adaptationevent.FieldMutationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(adaptationevent.FieldRationale, field.TypeString, value)
	}
	_node = &AdaptationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adaptationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
