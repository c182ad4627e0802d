// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"portfolio-api/ent/chatbotsetting"
	"portfolio-api/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ChatbotSettingDelete is the builder for deleting a ChatbotSetting entity.
type ChatbotSettingDelete struct {
	config
	hooks    []Hook
	mutation *ChatbotSettingMutation
}

// Where appends a list predicates to the ChatbotSettingDelete builder.
func (_d *ChatbotSettingDelete) Where(ps ...predicate.ChatbotSetting) *ChatbotSettingDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ChatbotSettingDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChatbotSettingDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ChatbotSettingDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(chatbotsetting.Table, sqlgraph.NewFieldSpec(chatbotsetting.FieldID, field.TypeUUID))
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

// ChatbotSettingDeleteOne is the builder for deleting a single ChatbotSetting entity.
type ChatbotSettingDeleteOne struct {
	_d *ChatbotSettingDelete
}

// Where appends a list predicates to the ChatbotSettingDelete builder.
func (_d *ChatbotSettingDeleteOne) Where(ps ...predicate.ChatbotSetting) *ChatbotSettingDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ChatbotSettingDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{chatbotsetting.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChatbotSettingDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
