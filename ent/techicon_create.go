// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-api/ent/iconvariant"
	"portfolio-api/ent/techicon"
	"portfolio-api/ent/technology"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// TechIconCreate is the builder for creating a TechIcon entity.
type TechIconCreate struct {
	config
	mutation *TechIconMutation
	hooks    []Hook
}

// SetFileURL sets the "file_url" field.
func (_c *TechIconCreate) SetFileURL(v string) *TechIconCreate {
	_c.mutation.SetFileURL(v)
	return _c
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_c *TechIconCreate) SetNillableFileURL(v *string) *TechIconCreate {
	if v != nil {
		_c.SetFileURL(*v)
	}
	return _c
}

// SetShouldInvertOnDark sets the "should_invert_on_dark" field.
func (_c *TechIconCreate) SetShouldInvertOnDark(v bool) *TechIconCreate {
	_c.mutation.SetShouldInvertOnDark(v)
	return _c
}

// SetNillableShouldInvertOnDark sets the "should_invert_on_dark" field if the given value is not nil.
func (_c *TechIconCreate) SetNillableShouldInvertOnDark(v *bool) *TechIconCreate {
	if v != nil {
		_c.SetShouldInvertOnDark(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *TechIconCreate) SetVersion(v int) *TechIconCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *TechIconCreate) SetNillableVersion(v *int) *TechIconCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TechIconCreate) SetCreatedAt(v time.Time) *TechIconCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TechIconCreate) SetNillableCreatedAt(v *time.Time) *TechIconCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TechIconCreate) SetUpdatedAt(v time.Time) *TechIconCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TechIconCreate) SetNillableUpdatedAt(v *time.Time) *TechIconCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TechIconCreate) SetID(v uuid.UUID) *TechIconCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TechIconCreate) SetNillableID(v *uuid.UUID) *TechIconCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTechnologyID sets the "technology" edge to the Technology entity by ID.
func (_c *TechIconCreate) SetTechnologyID(id uuid.UUID) *TechIconCreate {
	_c.mutation.SetTechnologyID(id)
	return _c
}

// SetTechnology sets the "technology" edge to the Technology entity.
func (_c *TechIconCreate) SetTechnology(v *Technology) *TechIconCreate {
	return _c.SetTechnologyID(v.ID)
}

// SetVariantID sets the "variant" edge to the IconVariant entity by ID.
func (_c *TechIconCreate) SetVariantID(id uuid.UUID) *TechIconCreate {
	_c.mutation.SetVariantID(id)
	return _c
}

// SetNillableVariantID sets the "variant" edge to the IconVariant entity by ID if the given value is not nil.
func (_c *TechIconCreate) SetNillableVariantID(id *uuid.UUID) *TechIconCreate {
	if id != nil {
		_c = _c.SetVariantID(*id)
	}
	return _c
}

// SetVariant sets the "variant" edge to the IconVariant entity.
func (_c *TechIconCreate) SetVariant(v *IconVariant) *TechIconCreate {
	return _c.SetVariantID(v.ID)
}

// Mutation returns the TechIconMutation object of the builder.
func (_c *TechIconCreate) Mutation() *TechIconMutation {
	return _c.mutation
}

// Save creates the TechIcon in the database.
func (_c *TechIconCreate) Save(ctx context.Context) (*TechIcon, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TechIconCreate) SaveX(ctx context.Context) *TechIcon {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TechIconCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TechIconCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TechIconCreate) defaults() {
	if _, ok := _c.mutation.ShouldInvertOnDark(); !ok {
		v := techicon.DefaultShouldInvertOnDark
		_c.mutation.SetShouldInvertOnDark(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := techicon.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := techicon.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := techicon.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := techicon.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TechIconCreate) check() error {
	if v, ok := _c.mutation.FileURL(); ok {
		if err := techicon.FileURLValidator(v); err != nil {
			return &ValidationError{Name: "file_url", err: fmt.Errorf(`ent: validator failed for field "TechIcon.file_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ShouldInvertOnDark(); !ok {
		return &ValidationError{Name: "should_invert_on_dark", err: errors.New(`ent: missing required field "TechIcon.should_invert_on_dark"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "TechIcon.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := techicon.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "TechIcon.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TechIcon.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TechIcon.updated_at"`)}
	}
	if len(_c.mutation.TechnologyIDs()) == 0 {
		return &ValidationError{Name: "technology", err: errors.New(`ent: missing required edge "TechIcon.technology"`)}
	}
	return nil
}

func (_c *TechIconCreate) sqlSave(ctx context.Context) (*TechIcon, error) {
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

func (_c *TechIconCreate) createSpec() (*TechIcon, *sqlgraph.CreateSpec) {
	var (
		_node = &TechIcon{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(techicon.Table, sqlgraph.NewFieldSpec(techicon.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FileURL(); ok {
		_spec.SetField(techicon.FieldFileURL, field.TypeString, value)
		_node.FileURL = value
	}
	if value, ok := _c.mutation.ShouldInvertOnDark(); ok {
		_spec.SetField(techicon.FieldShouldInvertOnDark, field.TypeBool, value)
		_node.ShouldInvertOnDark = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(techicon.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(techicon.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(techicon.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TechnologyIDs(); len(nodes) > 0 {
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
		_node.tech_icon_technology = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.VariantIDs(); len(nodes) > 0 {
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
		_node.tech_icon_variant = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TechIconCreateBulk is the builder for creating many TechIcon entities in bulk.
type TechIconCreateBulk struct {
	config
	err      error
	builders []*TechIconCreate
}

// Save creates the TechIcon entities in the database.
func (_c *TechIconCreateBulk) Save(ctx context.Context) ([]*TechIcon, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TechIcon, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TechIconMutation)
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
func (_c *TechIconCreateBulk) SaveX(ctx context.Context) []*TechIcon {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TechIconCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TechIconCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
