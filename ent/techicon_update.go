// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-api/ent/iconvariant"
	"portfolio-api/ent/predicate"
	"portfolio-api/ent/techicon"
	"portfolio-api/ent/technology"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// TechIconUpdate is the builder for updating TechIcon entities.
type TechIconUpdate struct {
	config
	hooks    []Hook
	mutation *TechIconMutation
}

// Where appends a list predicates to the TechIconUpdate builder.
func (_u *TechIconUpdate) Where(ps ...predicate.TechIcon) *TechIconUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileURL sets the "file_url" field.
func (_u *TechIconUpdate) SetFileURL(v string) *TechIconUpdate {
	_u.mutation.SetFileURL(v)
	return _u
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_u *TechIconUpdate) SetNillableFileURL(v *string) *TechIconUpdate {
	if v != nil {
		_u.SetFileURL(*v)
	}
	return _u
}

// ClearFileURL clears the value of the "file_url" field.
func (_u *TechIconUpdate) ClearFileURL() *TechIconUpdate {
	_u.mutation.ClearFileURL()
	return _u
}

// SetShouldInvertOnDark sets the "should_invert_on_dark" field.
func (_u *TechIconUpdate) SetShouldInvertOnDark(v bool) *TechIconUpdate {
	_u.mutation.SetShouldInvertOnDark(v)
	return _u
}

// SetNillableShouldInvertOnDark sets the "should_invert_on_dark" field if the given value is not nil.
func (_u *TechIconUpdate) SetNillableShouldInvertOnDark(v *bool) *TechIconUpdate {
	if v != nil {
		_u.SetShouldInvertOnDark(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *TechIconUpdate) SetVersion(v int) *TechIconUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *TechIconUpdate) SetNillableVersion(v *int) *TechIconUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *TechIconUpdate) AddVersion(v int) *TechIconUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TechIconUpdate) SetUpdatedAt(v time.Time) *TechIconUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTechnologyID sets the "technology" edge to the Technology entity by ID.
func (_u *TechIconUpdate) SetTechnologyID(id uuid.UUID) *TechIconUpdate {
	_u.mutation.SetTechnologyID(id)
	return _u
}

// SetTechnology sets the "technology" edge to the Technology entity.
func (_u *TechIconUpdate) SetTechnology(v *Technology) *TechIconUpdate {
	return _u.SetTechnologyID(v.ID)
}

// SetVariantID sets the "variant" edge to the IconVariant entity by ID.
func (_u *TechIconUpdate) SetVariantID(id uuid.UUID) *TechIconUpdate {
	_u.mutation.SetVariantID(id)
	return _u
}

// SetNillableVariantID sets the "variant" edge to the IconVariant entity by ID if the given value is not nil.
func (_u *TechIconUpdate) SetNillableVariantID(id *uuid.UUID) *TechIconUpdate {
	if id != nil {
		_u = _u.SetVariantID(*id)
	}
	return _u
}

// SetVariant sets the "variant" edge to the IconVariant entity.
func (_u *TechIconUpdate) SetVariant(v *IconVariant) *TechIconUpdate {
	return _u.SetVariantID(v.ID)
}

// Mutation returns the TechIconMutation object of the builder.
func (_u *TechIconUpdate) Mutation() *TechIconMutation {
	return _u.mutation
}

// ClearTechnology clears the "technology" edge to the Technology entity.
func (_u *TechIconUpdate) ClearTechnology() *TechIconUpdate {
	_u.mutation.ClearTechnology()
	return _u
}

// ClearVariant clears the "variant" edge to the IconVariant entity.
func (_u *TechIconUpdate) ClearVariant() *TechIconUpdate {
	_u.mutation.ClearVariant()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TechIconUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TechIconUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TechIconUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TechIconUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TechIconUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := techicon.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TechIconUpdate) check() error {
	if v, ok := _u.mutation.FileURL(); ok {
		if err := techicon.FileURLValidator(v); err != nil {
			return &ValidationError{Name: "file_url", err: fmt.Errorf(`ent: validator failed for field "TechIcon.file_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := techicon.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "TechIcon.version": %w`, err)}
		}
	}
	if _u.mutation.TechnologyCleared() && len(_u.mutation.TechnologyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TechIcon.technology"`)
	}
	return nil
}

func (_u *TechIconUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(techicon.Table, techicon.Columns, sqlgraph.NewFieldSpec(techicon.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileURL(); ok {
		_spec.SetField(techicon.FieldFileURL, field.TypeString, value)
	}
	if _u.mutation.FileURLCleared() {
		_spec.ClearField(techicon.FieldFileURL, field.TypeString)
	}
	if value, ok := _u.mutation.ShouldInvertOnDark(); ok {
		_spec.SetField(techicon.FieldShouldInvertOnDark, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(techicon.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(techicon.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(techicon.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TechnologyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   techicon.TechnologyTable,
			Columns: []string{techicon.TechnologyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(technology.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TechnologyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   techicon.TechnologyTable,
			Columns: []string{techicon.TechnologyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(technology.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VariantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   techicon.VariantTable,
			Columns: []string{techicon.VariantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(iconvariant.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VariantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   techicon.VariantTable,
			Columns: []string{techicon.VariantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(iconvariant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{techicon.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TechIconUpdateOne is the builder for updating a single TechIcon entity.
type TechIconUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TechIconMutation
}

// SetFileURL sets the "file_url" field.
func (_u *TechIconUpdateOne) SetFileURL(v string) *TechIconUpdateOne {
	_u.mutation.SetFileURL(v)
	return _u
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_u *TechIconUpdateOne) SetNillableFileURL(v *string) *TechIconUpdateOne {
	if v != nil {
		_u.SetFileURL(*v)
	}
	return _u
}

// ClearFileURL clears the value of the "file_url" field.
func (_u *TechIconUpdateOne) ClearFileURL() *TechIconUpdateOne {
	_u.mutation.ClearFileURL()
	return _u
}

// SetShouldInvertOnDark sets the "should_invert_on_dark" field.
func (_u *TechIconUpdateOne) SetShouldInvertOnDark(v bool) *TechIconUpdateOne {
	_u.mutation.SetShouldInvertOnDark(v)
	return _u
}

// SetNillableShouldInvertOnDark sets the "should_invert_on_dark" field if the given value is not nil.
func (_u *TechIconUpdateOne) SetNillableShouldInvertOnDark(v *bool) *TechIconUpdateOne {
	if v != nil {
		_u.SetShouldInvertOnDark(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *TechIconUpdateOne) SetVersion(v int) *TechIconUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *TechIconUpdateOne) SetNillableVersion(v *int) *TechIconUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *TechIconUpdateOne) AddVersion(v int) *TechIconUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TechIconUpdateOne) SetUpdatedAt(v time.Time) *TechIconUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTechnologyID sets the "technology" edge to the Technology entity by ID.
func (_u *TechIconUpdateOne) SetTechnologyID(id uuid.UUID) *TechIconUpdateOne {
	_u.mutation.SetTechnologyID(id)
	return _u
}

// SetTechnology sets the "technology" edge to the Technology entity.
func (_u *TechIconUpdateOne) SetTechnology(v *Technology) *TechIconUpdateOne {
	return _u.SetTechnologyID(v.ID)
}

// SetVariantID sets the "variant" edge to the IconVariant entity by ID.
func (_u *TechIconUpdateOne) SetVariantID(id uuid.UUID) *TechIconUpdateOne {
	_u.mutation.SetVariantID(id)
	return _u
}

// SetNillableVariantID sets the "variant" edge to the IconVariant entity by ID if the given value is not nil.
func (_u *TechIconUpdateOne) SetNillableVariantID(id *uuid.UUID) *TechIconUpdateOne {
	if id != nil {
		_u = _u.SetVariantID(*id)
	}
	return _u
}

// SetVariant sets the "variant" edge to the IconVariant entity.
func (_u *TechIconUpdateOne) SetVariant(v *IconVariant) *TechIconUpdateOne {
	return _u.SetVariantID(v.ID)
}

// Mutation returns the TechIconMutation object of the builder.
func (_u *TechIconUpdateOne) Mutation() *TechIconMutation {
	return _u.mutation
}

// ClearTechnology clears the "technology" edge to the Technology entity.
func (_u *TechIconUpdateOne) ClearTechnology() *TechIconUpdateOne {
	_u.mutation.ClearTechnology()
	return _u
}

// ClearVariant clears the "variant" edge to the IconVariant entity.
func (_u *TechIconUpdateOne) ClearVariant() *TechIconUpdateOne {
	_u.mutation.ClearVariant()
	return _u
}

// Where appends a list predicates to the TechIconUpdate builder.
func (_u *TechIconUpdateOne) Where(ps ...predicate.TechIcon) *TechIconUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TechIconUpdateOne) Select(field string, fields ...string) *TechIconUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TechIcon entity.
func (_u *TechIconUpdateOne) Save(ctx context.Context) (*TechIcon, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TechIconUpdateOne) SaveX(ctx context.Context) *TechIcon {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TechIconUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TechIconUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TechIconUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := techicon.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TechIconUpdateOne) check() error {
	if v, ok := _u.mutation.FileURL(); ok {
		if err := techicon.FileURLValidator(v); err != nil {
			return &ValidationError{Name: "file_url", err: fmt.Errorf(`ent: validator failed for field "TechIcon.file_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := techicon.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "TechIcon.version": %w`, err)}
		}
	}
	if _u.mutation.TechnologyCleared() && len(_u.mutation.TechnologyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TechIcon.technology"`)
	}
	return nil
}

func (_u *TechIconUpdateOne) sqlSave(ctx context.Context) (_node *TechIcon, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(techicon.Table, techicon.Columns, sqlgraph.NewFieldSpec(techicon.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TechIcon.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, techicon.FieldID)
		for _, f := range fields {
			if !techicon.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != techicon.FieldID {
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
	if value, ok := _u.mutation.FileURL(); ok {
		_spec.SetField(techicon.FieldFileURL, field.TypeString, value)
	}
	if _u.mutation.FileURLCleared() {
		_spec.ClearField(techicon.FieldFileURL, field.TypeString)
	}
	if value, ok := _u.mutation.ShouldInvertOnDark(); ok {
		_spec.SetField(techicon.FieldShouldInvertOnDark, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(techicon.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(techicon.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(techicon.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TechnologyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   techicon.TechnologyTable,
			Columns: []string{techicon.TechnologyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(technology.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TechnologyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   techicon.TechnologyTable,
			Columns: []string{techicon.TechnologyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(technology.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VariantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   techicon.VariantTable,
			Columns: []string{techicon.VariantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(iconvariant.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VariantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   techicon.VariantTable,
			Columns: []string{techicon.VariantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(iconvariant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TechIcon{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{techicon.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
