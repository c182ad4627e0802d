// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-api/ent/predicate"
	"portfolio-api/ent/seoentry"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SeoEntryUpdate is the builder for updating SeoEntry entities.
type SeoEntryUpdate struct {
	config
	hooks    []Hook
	mutation *SeoEntryMutation
}

// Where appends a list predicates to the SeoEntryUpdate builder.
func (_u *SeoEntryUpdate) Where(ps ...predicate.SeoEntry) *SeoEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPath sets the "path" field.
func (_u *SeoEntryUpdate) SetPath(v string) *SeoEntryUpdate {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *SeoEntryUpdate) SetNillablePath(v *string) *SeoEntryUpdate {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SeoEntryUpdate) SetTitle(v string) *SeoEntryUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SeoEntryUpdate) SetNillableTitle(v *string) *SeoEntryUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *SeoEntryUpdate) ClearTitle() *SeoEntryUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetDescription sets the "description" field.
func (_u *SeoEntryUpdate) SetDescription(v string) *SeoEntryUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SeoEntryUpdate) SetNillableDescription(v *string) *SeoEntryUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SeoEntryUpdate) ClearDescription() *SeoEntryUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *SeoEntryUpdate) SetKeywords(v string) *SeoEntryUpdate {
	_u.mutation.SetKeywords(v)
	return _u
}

// SetNillableKeywords sets the "keywords" field if the given value is not nil.
func (_u *SeoEntryUpdate) SetNillableKeywords(v *string) *SeoEntryUpdate {
	if v != nil {
		_u.SetKeywords(*v)
	}
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *SeoEntryUpdate) ClearKeywords() *SeoEntryUpdate {
	_u.mutation.ClearKeywords()
	return _u
}

// SetOgImage sets the "og_image" field.
func (_u *SeoEntryUpdate) SetOgImage(v string) *SeoEntryUpdate {
	_u.mutation.SetOgImage(v)
	return _u
}

// SetNillableOgImage sets the "og_image" field if the given value is not nil.
func (_u *SeoEntryUpdate) SetNillableOgImage(v *string) *SeoEntryUpdate {
	if v != nil {
		_u.SetOgImage(*v)
	}
	return _u
}

// ClearOgImage clears the value of the "og_image" field.
func (_u *SeoEntryUpdate) ClearOgImage() *SeoEntryUpdate {
	_u.mutation.ClearOgImage()
	return _u
}

// SetChangeFreq sets the "change_freq" field.
func (_u *SeoEntryUpdate) SetChangeFreq(v seoentry.ChangeFreq) *SeoEntryUpdate {
	_u.mutation.SetChangeFreq(v)
	return _u
}

// SetNillableChangeFreq sets the "change_freq" field if the given value is not nil.
func (_u *SeoEntryUpdate) SetNillableChangeFreq(v *seoentry.ChangeFreq) *SeoEntryUpdate {
	if v != nil {
		_u.SetChangeFreq(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *SeoEntryUpdate) SetPriority(v float64) *SeoEntryUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *SeoEntryUpdate) SetNillablePriority(v *float64) *SeoEntryUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *SeoEntryUpdate) AddPriority(v float64) *SeoEntryUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SeoEntryUpdate) SetUpdatedAt(v time.Time) *SeoEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SeoEntryMutation object of the builder.
func (_u *SeoEntryUpdate) Mutation() *SeoEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SeoEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SeoEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SeoEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SeoEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SeoEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := seoentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SeoEntryUpdate) check() error {
	if v, ok := _u.mutation.Path(); ok {
		if err := seoentry.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "SeoEntry.path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := seoentry.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "SeoEntry.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := seoentry.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "SeoEntry.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Keywords(); ok {
		if err := seoentry.KeywordsValidator(v); err != nil {
			return &ValidationError{Name: "keywords", err: fmt.Errorf(`ent: validator failed for field "SeoEntry.keywords": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OgImage(); ok {
		if err := seoentry.OgImageValidator(v); err != nil {
			return &ValidationError{Name: "og_image", err: fmt.Errorf(`ent: validator failed for field "SeoEntry.og_image": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChangeFreq(); ok {
		if err := seoentry.ChangeFreqValidator(v); err != nil {
			return &ValidationError{Name: "change_freq", err: fmt.Errorf(`ent: validator failed for field "SeoEntry.change_freq": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := seoentry.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "SeoEntry.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *SeoEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(seoentry.Table, seoentry.Columns, sqlgraph.NewFieldSpec(seoentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(seoentry.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(seoentry.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(seoentry.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(seoentry.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(seoentry.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(seoentry.FieldKeywords, field.TypeString, value)
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(seoentry.FieldKeywords, field.TypeString)
	}
	if value, ok := _u.mutation.OgImage(); ok {
		_spec.SetField(seoentry.FieldOgImage, field.TypeString, value)
	}
	if _u.mutation.OgImageCleared() {
		_spec.ClearField(seoentry.FieldOgImage, field.TypeString)
	}
	if value, ok := _u.mutation.ChangeFreq(); ok {
		_spec.SetField(seoentry.FieldChangeFreq, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(seoentry.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(seoentry.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(seoentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{seoentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SeoEntryUpdateOne is the builder for updating a single SeoEntry entity.
type SeoEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SeoEntryMutation
}

// SetPath sets the "path" field.
func (_u *SeoEntryUpdateOne) SetPath(v string) *SeoEntryUpdateOne {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *SeoEntryUpdateOne) SetNillablePath(v *string) *SeoEntryUpdateOne {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SeoEntryUpdateOne) SetTitle(v string) *SeoEntryUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SeoEntryUpdateOne) SetNillableTitle(v *string) *SeoEntryUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *SeoEntryUpdateOne) ClearTitle() *SeoEntryUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetDescription sets the "description" field.
func (_u *SeoEntryUpdateOne) SetDescription(v string) *SeoEntryUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SeoEntryUpdateOne) SetNillableDescription(v *string) *SeoEntryUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SeoEntryUpdateOne) ClearDescription() *SeoEntryUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *SeoEntryUpdateOne) SetKeywords(v string) *SeoEntryUpdateOne {
	_u.mutation.SetKeywords(v)
	return _u
}

// SetNillableKeywords sets the "keywords" field if the given value is not nil.
func (_u *SeoEntryUpdateOne) SetNillableKeywords(v *string) *SeoEntryUpdateOne {
	if v != nil {
		_u.SetKeywords(*v)
	}
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *SeoEntryUpdateOne) ClearKeywords() *SeoEntryUpdateOne {
	_u.mutation.ClearKeywords()
	return _u
}

// SetOgImage sets the "og_image" field.
func (_u *SeoEntryUpdateOne) SetOgImage(v string) *SeoEntryUpdateOne {
	_u.mutation.SetOgImage(v)
	return _u
}

// SetNillableOgImage sets the "og_image" field if the given value is not nil.
func (_u *SeoEntryUpdateOne) SetNillableOgImage(v *string) *SeoEntryUpdateOne {
	if v != nil {
		_u.SetOgImage(*v)
	}
	return _u
}

// ClearOgImage clears the value of the "og_image" field.
func (_u *SeoEntryUpdateOne) ClearOgImage() *SeoEntryUpdateOne {
	_u.mutation.ClearOgImage()
	return _u
}

// SetChangeFreq sets the "change_freq" field.
func (_u *SeoEntryUpdateOne) SetChangeFreq(v seoentry.ChangeFreq) *SeoEntryUpdateOne {
	_u.mutation.SetChangeFreq(v)
	return _u
}

// SetNillableChangeFreq sets the "change_freq" field if the given value is not nil.
func (_u *SeoEntryUpdateOne) SetNillableChangeFreq(v *seoentry.ChangeFreq) *SeoEntryUpdateOne {
	if v != nil {
		_u.SetChangeFreq(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *SeoEntryUpdateOne) SetPriority(v float64) *SeoEntryUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *SeoEntryUpdateOne) SetNillablePriority(v *float64) *SeoEntryUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *SeoEntryUpdateOne) AddPriority(v float64) *SeoEntryUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SeoEntryUpdateOne) SetUpdatedAt(v time.Time) *SeoEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SeoEntryMutation object of the builder.
func (_u *SeoEntryUpdateOne) Mutation() *SeoEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the SeoEntryUpdate builder.
func (_u *SeoEntryUpdateOne) Where(ps ...predicate.SeoEntry) *SeoEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SeoEntryUpdateOne) Select(field string, fields ...string) *SeoEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SeoEntry entity.
func (_u *SeoEntryUpdateOne) Save(ctx context.Context) (*SeoEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SeoEntryUpdateOne) SaveX(ctx context.Context) *SeoEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SeoEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SeoEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SeoEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := seoentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SeoEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Path(); ok {
		if err := seoentry.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "SeoEntry.path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := seoentry.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "SeoEntry.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := seoentry.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "SeoEntry.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Keywords(); ok {
		if err := seoentry.KeywordsValidator(v); err != nil {
			return &ValidationError{Name: "keywords", err: fmt.Errorf(`ent: validator failed for field "SeoEntry.keywords": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OgImage(); ok {
		if err := seoentry.OgImageValidator(v); err != nil {
			return &ValidationError{Name: "og_image", err: fmt.Errorf(`ent: validator failed for field "SeoEntry.og_image": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChangeFreq(); ok {
		if err := seoentry.ChangeFreqValidator(v); err != nil {
			return &ValidationError{Name: "change_freq", err: fmt.Errorf(`ent: validator failed for field "SeoEntry.change_freq": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := seoentry.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "SeoEntry.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *SeoEntryUpdateOne) sqlSave(ctx context.Context) (_node *SeoEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(seoentry.Table, seoentry.Columns, sqlgraph.NewFieldSpec(seoentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SeoEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, seoentry.FieldID)
		for _, f := range fields {
			if !seoentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != seoentry.FieldID {
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
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(seoentry.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(seoentry.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(seoentry.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(seoentry.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(seoentry.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(seoentry.FieldKeywords, field.TypeString, value)
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(seoentry.FieldKeywords, field.TypeString)
	}
	if value, ok := _u.mutation.OgImage(); ok {
		_spec.SetField(seoentry.FieldOgImage, field.TypeString, value)
	}
	if _u.mutation.OgImageCleared() {
		_spec.ClearField(seoentry.FieldOgImage, field.TypeString)
	}
	if value, ok := _u.mutation.ChangeFreq(); ok {
		_spec.SetField(seoentry.FieldChangeFreq, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(seoentry.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(seoentry.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(seoentry.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SeoEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{seoentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
