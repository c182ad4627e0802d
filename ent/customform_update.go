// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-api/ent/customform"
	"portfolio-api/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
)

// CustomFormUpdate is the builder for updating CustomForm entities.
type CustomFormUpdate struct {
	config
	hooks    []Hook
	mutation *CustomFormMutation
}

// Where appends a list predicates to the CustomFormUpdate builder.
func (_u *CustomFormUpdate) Where(ps ...predicate.CustomForm) *CustomFormUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CustomFormUpdate) SetTitle(v string) *CustomFormUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CustomFormUpdate) SetNillableTitle(v *string) *CustomFormUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *CustomFormUpdate) SetSlug(v string) *CustomFormUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *CustomFormUpdate) SetNillableSlug(v *string) *CustomFormUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetFields sets the "fields" field.
func (_u *CustomFormUpdate) SetFields(v []map[string]interface{}) *CustomFormUpdate {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *CustomFormUpdate) AppendFields(v []map[string]interface{}) *CustomFormUpdate {
	_u.mutation.AppendFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *CustomFormUpdate) ClearFields() *CustomFormUpdate {
	_u.mutation.ClearFields()
	return _u
}

// SetActive sets the "active" field.
func (_u *CustomFormUpdate) SetActive(v bool) *CustomFormUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *CustomFormUpdate) SetNillableActive(v *bool) *CustomFormUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CustomFormUpdate) SetUpdatedAt(v time.Time) *CustomFormUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CustomFormMutation object of the builder.
func (_u *CustomFormUpdate) Mutation() *CustomFormMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CustomFormUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CustomFormUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CustomFormUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CustomFormUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CustomFormUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := customform.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CustomFormUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := customform.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CustomForm.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := customform.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "CustomForm.slug": %w`, err)}
		}
	}
	return nil
}

func (_u *CustomFormUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(customform.Table, customform.Columns, sqlgraph.NewFieldSpec(customform.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(customform.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(customform.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(customform.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, customform.FieldFields, value)
		})
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(customform.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(customform.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(customform.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{customform.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CustomFormUpdateOne is the builder for updating a single CustomForm entity.
type CustomFormUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CustomFormMutation
}

// SetTitle sets the "title" field.
func (_u *CustomFormUpdateOne) SetTitle(v string) *CustomFormUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CustomFormUpdateOne) SetNillableTitle(v *string) *CustomFormUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *CustomFormUpdateOne) SetSlug(v string) *CustomFormUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *CustomFormUpdateOne) SetNillableSlug(v *string) *CustomFormUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetFields sets the "fields" field.
func (_u *CustomFormUpdateOne) SetFields(v []map[string]interface{}) *CustomFormUpdateOne {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *CustomFormUpdateOne) AppendFields(v []map[string]interface{}) *CustomFormUpdateOne {
	_u.mutation.AppendFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *CustomFormUpdateOne) ClearFields() *CustomFormUpdateOne {
	_u.mutation.ClearFields()
	return _u
}

// SetActive sets the "active" field.
func (_u *CustomFormUpdateOne) SetActive(v bool) *CustomFormUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *CustomFormUpdateOne) SetNillableActive(v *bool) *CustomFormUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CustomFormUpdateOne) SetUpdatedAt(v time.Time) *CustomFormUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CustomFormMutation object of the builder.
func (_u *CustomFormUpdateOne) Mutation() *CustomFormMutation {
	return _u.mutation
}

// Where appends a list predicates to the CustomFormUpdate builder.
func (_u *CustomFormUpdateOne) Where(ps ...predicate.CustomForm) *CustomFormUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CustomFormUpdateOne) Select(field string, fields ...string) *CustomFormUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CustomForm entity.
func (_u *CustomFormUpdateOne) Save(ctx context.Context) (*CustomForm, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CustomFormUpdateOne) SaveX(ctx context.Context) *CustomForm {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CustomFormUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CustomFormUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CustomFormUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := customform.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CustomFormUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := customform.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CustomForm.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := customform.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "CustomForm.slug": %w`, err)}
		}
	}
	return nil
}

func (_u *CustomFormUpdateOne) sqlSave(ctx context.Context) (_node *CustomForm, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(customform.Table, customform.Columns, sqlgraph.NewFieldSpec(customform.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CustomForm.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, customform.FieldID)
		for _, f := range fields {
			if !customform.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != customform.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(customform.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(customform.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(customform.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, customform.FieldFields, value)
		})
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(customform.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(customform.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(customform.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CustomForm{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{customform.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
