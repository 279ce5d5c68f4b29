// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studyloop/studyloop/ent/adaptationevent"
	"github.com/studyloop/studyloop/ent/predicate"
)

// AdaptationEventDelete is the builder for deleting a AdaptationEvent entity.
type AdaptationEventDelete struct {
	config
	hooks    []Hook
	mutation *AdaptationEventMutation
}

// Where appends a list predicates to the AdaptationEventDelete builder.
func (_d *AdaptationEventDelete) Where(ps ...predicate.AdaptationEvent) *AdaptationEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AdaptationEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdaptationEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AdaptationEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(adaptationevent.Table, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AdaptationEventDeleteOne is the builder for deleting a single AdaptationEvent entity.
type AdaptationEventDeleteOne struct {
	_d *AdaptationEventDelete
}

// Where appends a list predicates to the AdaptationEventDelete builder.
func (_d *AdaptationEventDeleteOne) Where(ps ...predicate.AdaptationEvent) *AdaptationEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AdaptationEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{adaptationevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdaptationEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
