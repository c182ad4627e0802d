// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-api/ent/predicate"
	"portfolio-api/ent/techdetail"
	"portfolio-api/ent/techicon"
	"portfolio-api/ent/technology"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// TechnologyUpdate is the builder for updating Technology entities.
type TechnologyUpdate struct {
	config
	hooks    []Hook
	mutation *TechnologyMutation
}

// Where appends a list predicates to the TechnologyUpdate builder.
func (_u *TechnologyUpdate) Where(ps ...predicate.Technology) *TechnologyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *TechnologyUpdate) SetCompanyName(v string) *TechnologyUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *TechnologyUpdate) SetNillableCompanyName(v *string) *TechnologyUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetOldID sets the "old_id" field.
func (_u *TechnologyUpdate) SetOldID(v string) *TechnologyUpdate {
	_u.mutation.SetOldID(v)
	return _u
}

// SetNillableOldID sets the "old_id" field if the given value is not nil.
func (_u *TechnologyUpdate) SetNillableOldID(v *string) *TechnologyUpdate {
	if v != nil {
		_u.SetOldID(*v)
	}
	return _u
}

// ClearOldID clears the value of the "old_id" field.
func (_u *TechnologyUpdate) ClearOldID() *TechnologyUpdate {
	_u.mutation.ClearOldID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TechnologyUpdate) SetUpdatedAt(v time.Time) *TechnologyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddIconIDs adds the "icons" edge to the TechIcon entity by IDs.
func (_u *TechnologyUpdate) AddIconIDs(ids ...uuid.UUID) *TechnologyUpdate {
	_u.mutation.AddIconIDs(ids...)
	return _u
}

// AddIcons adds the "icons" edges to the TechIcon entity.
func (_u *TechnologyUpdate) AddIcons(v ...*TechIcon) *TechnologyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIconIDs(ids...)
}

// SetDetailsID sets the "details" edge to the TechDetail entity by ID.
func (_u *TechnologyUpdate) SetDetailsID(id uuid.UUID) *TechnologyUpdate {
	_u.mutation.SetDetailsID(id)
	return _u
}

// SetNillableDetailsID sets the "details" edge to the TechDetail entity by ID if the given value is not nil.
func (_u *TechnologyUpdate) SetNillableDetailsID(id *uuid.UUID) *TechnologyUpdate {
	if id != nil {
		_u = _u.SetDetailsID(*id)
	}
	return _u
}

// SetDetails sets the "details" edge to the TechDetail entity.
func (_u *TechnologyUpdate) SetDetails(v *TechDetail) *TechnologyUpdate {
	return _u.SetDetailsID(v.ID)
}

// Mutation returns the TechnologyMutation object of the builder.
func (_u *TechnologyUpdate) Mutation() *TechnologyMutation {
	return _u.mutation
}

// ClearIcons clears all "icons" edges to the TechIcon entity.
func (_u *TechnologyUpdate) ClearIcons() *TechnologyUpdate {
	_u.mutation.ClearIcons()
	return _u
}

// RemoveIconIDs removes the "icons" edge to TechIcon entities by IDs.
func (_u *TechnologyUpdate) RemoveIconIDs(ids ...uuid.UUID) *TechnologyUpdate {
	_u.mutation.RemoveIconIDs(ids...)
	return _u
}

// RemoveIcons removes "icons" edges to TechIcon entities.
func (_u *TechnologyUpdate) RemoveIcons(v ...*TechIcon) *TechnologyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIconIDs(ids...)
}

// ClearDetails clears the "details" edge to the TechDetail entity.
func (_u *TechnologyUpdate) ClearDetails() *TechnologyUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TechnologyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TechnologyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TechnologyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TechnologyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TechnologyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := technology.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TechnologyUpdate) check() error {
	if v, ok := _u.mutation.CompanyName(); ok {
		if err := technology.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "Technology.company_name": %w`, err)}
		}
	}
	return nil
}

func (_u *TechnologyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(technology.Table, technology.Columns, sqlgraph.NewFieldSpec(technology.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(technology.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OldID(); ok {
		_spec.SetField(technology.FieldOldID, field.TypeString, value)
	}
	if _u.mutation.OldIDCleared() {
		_spec.ClearField(technology.FieldOldID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(technology.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.IconsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   technology.IconsTable,
			Columns: []string{technology.IconsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(techicon.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIconsIDs(); len(nodes) > 0 && !_u.mutation.IconsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   technology.IconsTable,
			Columns: []string{technology.IconsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(techicon.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IconsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   technology.IconsTable,
			Columns: []string{technology.IconsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(techicon.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DetailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   technology.DetailsTable,
			Columns: []string{technology.DetailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(techdetail.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DetailsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   technology.DetailsTable,
			Columns: []string{technology.DetailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(techdetail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{technology.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TechnologyUpdateOne is the builder for updating a single Technology entity.
type TechnologyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TechnologyMutation
}

// SetCompanyName sets the "company_name" field.
func (_u *TechnologyUpdateOne) SetCompanyName(v string) *TechnologyUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *TechnologyUpdateOne) SetNillableCompanyName(v *string) *TechnologyUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetOldID sets the "old_id" field.
func (_u *TechnologyUpdateOne) SetOldID(v string) *TechnologyUpdateOne {
	_u.mutation.SetOldID(v)
	return _u
}

// SetNillableOldID sets the "old_id" field if the given value is not nil.
func (_u *TechnologyUpdateOne) SetNillableOldID(v *string) *TechnologyUpdateOne {
	if v != nil {
		_u.SetOldID(*v)
	}
	return _u
}

// ClearOldID clears the value of the "old_id" field.
func (_u *TechnologyUpdateOne) ClearOldID() *TechnologyUpdateOne {
	_u.mutation.ClearOldID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TechnologyUpdateOne) SetUpdatedAt(v time.Time) *TechnologyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddIconIDs adds the "icons" edge to the TechIcon entity by IDs.
func (_u *TechnologyUpdateOne) AddIconIDs(ids ...uuid.UUID) *TechnologyUpdateOne {
	_u.mutation.AddIconIDs(ids...)
	return _u
}

// AddIcons adds the "icons" edges to the TechIcon entity.
func (_u *TechnologyUpdateOne) AddIcons(v ...*TechIcon) *TechnologyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIconIDs(ids...)
}

// SetDetailsID sets the "details" edge to the TechDetail entity by ID.
func (_u *TechnologyUpdateOne) SetDetailsID(id uuid.UUID) *TechnologyUpdateOne {
	_u.mutation.SetDetailsID(id)
	return _u
}

// SetNillableDetailsID sets the "details" edge to the TechDetail entity by ID if the given value is not nil.
func (_u *TechnologyUpdateOne) SetNillableDetailsID(id *uuid.UUID) *TechnologyUpdateOne {
	if id != nil {
		_u = _u.SetDetailsID(*id)
	}
	return _u
}

// SetDetails sets the "details" edge to the TechDetail entity.
func (_u *TechnologyUpdateOne) SetDetails(v *TechDetail) *TechnologyUpdateOne {
	return _u.SetDetailsID(v.ID)
}

// Mutation returns the TechnologyMutation object of the builder.
func (_u *TechnologyUpdateOne) Mutation() *TechnologyMutation {
	return _u.mutation
}

// ClearIcons clears all "icons" edges to the TechIcon entity.
func (_u *TechnologyUpdateOne) ClearIcons() *TechnologyUpdateOne {
	_u.mutation.ClearIcons()
	return _u
}

// RemoveIconIDs removes the "icons" edge to TechIcon entities by IDs.
func (_u *TechnologyUpdateOne) RemoveIconIDs(ids ...uuid.UUID) *TechnologyUpdateOne {
	_u.mutation.RemoveIconIDs(ids...)
	return _u
}

// RemoveIcons removes "icons" edges to TechIcon entities.
func (_u *TechnologyUpdateOne) RemoveIcons(v ...*TechIcon) *TechnologyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIconIDs(ids...)
}

// ClearDetails clears the "details" edge to the TechDetail entity.
func (_u *TechnologyUpdateOne) ClearDetails() *TechnologyUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// Where appends a list predicates to the TechnologyUpdate builder.
func (_u *TechnologyUpdateOne) Where(ps ...predicate.Technology) *TechnologyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TechnologyUpdateOne) Select(field string, fields ...string) *TechnologyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Technology entity.
func (_u *TechnologyUpdateOne) Save(ctx context.Context) (*Technology, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TechnologyUpdateOne) SaveX(ctx context.Context) *Technology {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TechnologyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TechnologyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TechnologyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := technology.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TechnologyUpdateOne) check() error {
	if v, ok := _u.mutation.CompanyName(); ok {
		if err := technology.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "Technology.company_name": %w`, err)}
		}
	}
	return nil
}

func (_u *TechnologyUpdateOne) sqlSave(ctx context.Context) (_node *Technology, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(technology.Table, technology.Columns, sqlgraph.NewFieldSpec(technology.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Technology.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, technology.FieldID)
		for _, f := range fields {
			if !technology.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != technology.FieldID {
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
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(technology.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OldID(); ok {
		_spec.SetField(technology.FieldOldID, field.TypeString, value)
	}
	if _u.mutation.OldIDCleared() {
		_spec.ClearField(technology.FieldOldID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(technology.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.IconsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   technology.IconsTable,
			Columns: []string{technology.IconsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(techicon.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIconsIDs(); len(nodes) > 0 && !_u.mutation.IconsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   technology.IconsTable,
			Columns: []string{technology.IconsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(techicon.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IconsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   technology.IconsTable,
			Columns: []string{technology.IconsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(techicon.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DetailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   technology.DetailsTable,
			Columns: []string{technology.DetailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(techdetail.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DetailsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   technology.DetailsTable,
			Columns: []string{technology.DetailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(techdetail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Technology{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{technology.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
