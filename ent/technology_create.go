// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-api/ent/techdetail"
	"portfolio-api/ent/techicon"
	"portfolio-api/ent/technology"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// TechnologyCreate is the builder for creating a Technology entity.
type TechnologyCreate struct {
	config
	mutation *TechnologyMutation
	hooks    []Hook
}

// SetCompanyName sets the "company_name" field.
func (_c *TechnologyCreate) SetCompanyName(v string) *TechnologyCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetOldID sets the "old_id" field.
func (_c *TechnologyCreate) SetOldID(v string) *TechnologyCreate {
	_c.mutation.SetOldID(v)
	return _c
}

// SetNillableOldID sets the "old_id" field if the given value is not nil.
func (_c *TechnologyCreate) SetNillableOldID(v *string) *TechnologyCreate {
	if v != nil {
		_c.SetOldID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TechnologyCreate) SetCreatedAt(v time.Time) *TechnologyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TechnologyCreate) SetNillableCreatedAt(v *time.Time) *TechnologyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TechnologyCreate) SetUpdatedAt(v time.Time) *TechnologyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TechnologyCreate) SetNillableUpdatedAt(v *time.Time) *TechnologyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TechnologyCreate) SetID(v uuid.UUID) *TechnologyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TechnologyCreate) SetNillableID(v *uuid.UUID) *TechnologyCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddIconIDs adds the "icons" edge to the TechIcon entity by IDs.
func (_c *TechnologyCreate) AddIconIDs(ids ...uuid.UUID) *TechnologyCreate {
	_c.mutation.AddIconIDs(ids...)
	return _c
}

// AddIcons adds the "icons" edges to the TechIcon entity.
func (_c *TechnologyCreate) AddIcons(v ...*TechIcon) *TechnologyCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddIconIDs(ids...)
}

// SetDetailsID sets the "details" edge to the TechDetail entity by ID.
func (_c *TechnologyCreate) SetDetailsID(id uuid.UUID) *TechnologyCreate {
	_c.mutation.SetDetailsID(id)
	return _c
}

// SetNillableDetailsID sets the "details" edge to the TechDetail entity by ID if the given value is not nil.
func (_c *TechnologyCreate) SetNillableDetailsID(id *uuid.UUID) *TechnologyCreate {
	if id != nil {
		_c = _c.SetDetailsID(*id)
	}
	return _c
}

// SetDetails sets the "details" edge to the TechDetail entity.
func (_c *TechnologyCreate) SetDetails(v *TechDetail) *TechnologyCreate {
	return _c.SetDetailsID(v.ID)
}

// Mutation returns the TechnologyMutation object of the builder.
func (_c *TechnologyCreate) Mutation() *TechnologyMutation {
	return _c.mutation
}

// Save creates the Technology in the database.
func (_c *TechnologyCreate) Save(ctx context.Context) (*Technology, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TechnologyCreate) SaveX(ctx context.Context) *Technology {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TechnologyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TechnologyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TechnologyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := technology.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := technology.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := technology.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TechnologyCreate) check() error {
	if _, ok := _c.mutation.CompanyName(); !ok {
		return &ValidationError{Name: "company_name", err: errors.New(`ent: missing required field "Technology.company_name"`)}
	}
	if v, ok := _c.mutation.CompanyName(); ok {
		if err := technology.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "Technology.company_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Technology.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Technology.updated_at"`)}
	}
	return nil
}

func (_c *TechnologyCreate) sqlSave(ctx context.Context) (*Technology, error) {
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

func (_c *TechnologyCreate) createSpec() (*Technology, *sqlgraph.CreateSpec) {
	var (
		_node = &Technology{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(technology.Table, sqlgraph.NewFieldSpec(technology.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(technology.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = value
	}
	if value, ok := _c.mutation.OldID(); ok {
		_spec.SetField(technology.FieldOldID, field.TypeString, value)
		_node.OldID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(technology.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(technology.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.IconsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DetailsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TechnologyCreateBulk is the builder for creating many Technology entities in bulk.
type TechnologyCreateBulk struct {
	config
	err      error
	builders []*TechnologyCreate
}

// Save creates the Technology entities in the database.
func (_c *TechnologyCreateBulk) Save(ctx context.Context) ([]*Technology, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Technology, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TechnologyMutation)
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
func (_c *TechnologyCreateBulk) SaveX(ctx context.Context) []*Technology {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TechnologyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TechnologyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
