// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-api/ent/seoentry"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SeoEntryCreate is the builder for creating a SeoEntry entity.
type SeoEntryCreate struct {
	config
	mutation *SeoEntryMutation
	hooks    []Hook
}

// SetPath sets the "path" field.
func (_c *SeoEntryCreate) SetPath(v string) *SeoEntryCreate {
	_c.mutation.SetPath(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *SeoEntryCreate) SetTitle(v string) *SeoEntryCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *SeoEntryCreate) SetNillableTitle(v *string) *SeoEntryCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *SeoEntryCreate) SetDescription(v string) *SeoEntryCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SeoEntryCreate) SetNillableDescription(v *string) *SeoEntryCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetKeywords sets the "keywords" field.
func (_c *SeoEntryCreate) SetKeywords(v string) *SeoEntryCreate {
	_c.mutation.SetKeywords(v)
	return _c
}

// SetNillableKeywords sets the "keywords" field if the given value is not nil.
func (_c *SeoEntryCreate) SetNillableKeywords(v *string) *SeoEntryCreate {
	if v != nil {
		_c.SetKeywords(*v)
	}
	return _c
}

// SetOgImage sets the "og_image" field.
func (_c *SeoEntryCreate) SetOgImage(v string) *SeoEntryCreate {
	_c.mutation.SetOgImage(v)
	return _c
}

// SetNillableOgImage sets the "og_image" field if the given value is not nil.
func (_c *SeoEntryCreate) SetNillableOgImage(v *string) *SeoEntryCreate {
	if v != nil {
		_c.SetOgImage(*v)
	}
	return _c
}

// SetChangeFreq sets the "change_freq" field.
func (_c *SeoEntryCreate) SetChangeFreq(v seoentry.ChangeFreq) *SeoEntryCreate {
	_c.mutation.SetChangeFreq(v)
	return _c
}

// SetNillableChangeFreq sets the "change_freq" field if the given value is not nil.
func (_c *SeoEntryCreate) SetNillableChangeFreq(v *seoentry.ChangeFreq) *SeoEntryCreate {
	if v != nil {
		_c.SetChangeFreq(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *SeoEntryCreate) SetPriority(v float64) *SeoEntryCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *SeoEntryCreate) SetNillablePriority(v *float64) *SeoEntryCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SeoEntryCreate) SetCreatedAt(v time.Time) *SeoEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SeoEntryCreate) SetNillableCreatedAt(v *time.Time) *SeoEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SeoEntryCreate) SetUpdatedAt(v time.Time) *SeoEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SeoEntryCreate) SetNillableUpdatedAt(v *time.Time) *SeoEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SeoEntryCreate) SetID(v uuid.UUID) *SeoEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SeoEntryCreate) SetNillableID(v *uuid.UUID) *SeoEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the SeoEntryMutation object of the builder.
func (_c *SeoEntryCreate) Mutation() *SeoEntryMutation {
	return _c.mutation
}

// Save creates the SeoEntry in the database.
func (_c *SeoEntryCreate) Save(ctx context.Context) (*SeoEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SeoEntryCreate) SaveX(ctx context.Context) *SeoEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SeoEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SeoEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SeoEntryCreate) defaults() {
	if _, ok := _c.mutation.ChangeFreq(); !ok {
		v := seoentry.DefaultChangeFreq
		_c.mutation.SetChangeFreq(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := seoentry.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := seoentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := seoentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := seoentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SeoEntryCreate) check() error {
	if _, ok := _c.mutation.Path(); !ok {
		return &ValidationError{Name: "path", err: errors.New(`ent: missing required field "SeoEntry.path"`)}
	}
	if v, ok := _c.mutation.Path(); ok {
		if err := seoentry.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "SeoEntry.path": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := seoentry.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "SeoEntry.title": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := seoentry.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "SeoEntry.description": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Keywords(); ok {
		if err := seoentry.KeywordsValidator(v); err != nil {
			return &ValidationError{Name: "keywords", err: fmt.Errorf(`ent: validator failed for field "SeoEntry.keywords": %w`, err)}
		}
	}
	if v, ok := _c.mutation.OgImage(); ok {
		if err := seoentry.OgImageValidator(v); err != nil {
			return &ValidationError{Name: "og_image", err: fmt.Errorf(`ent: validator failed for field "SeoEntry.og_image": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChangeFreq(); !ok {
		return &ValidationError{Name: "change_freq", err: errors.New(`ent: missing required field "SeoEntry.change_freq"`)}
	}
	if v, ok := _c.mutation.ChangeFreq(); ok {
		if err := seoentry.ChangeFreqValidator(v); err != nil {
			return &ValidationError{Name: "change_freq", err: fmt.Errorf(`ent: validator failed for field "SeoEntry.change_freq": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "SeoEntry.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := seoentry.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "SeoEntry.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SeoEntry.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SeoEntry.updated_at"`)}
	}
	return nil
}

func (_c *SeoEntryCreate) sqlSave(ctx context.Context) (*SeoEntry, error) {
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

func (_c *SeoEntryCreate) createSpec() (*SeoEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &SeoEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(seoentry.Table, sqlgraph.NewFieldSpec(seoentry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Path(); ok {
		_spec.SetField(seoentry.FieldPath, field.TypeString, value)
		_node.Path = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(seoentry.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(seoentry.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Keywords(); ok {
		_spec.SetField(seoentry.FieldKeywords, field.TypeString, value)
		_node.Keywords = value
	}
	if value, ok := _c.mutation.OgImage(); ok {
		_spec.SetField(seoentry.FieldOgImage, field.TypeString, value)
		_node.OgImage = value
	}
	if value, ok := _c.mutation.ChangeFreq(); ok {
		_spec.SetField(seoentry.FieldChangeFreq, field.TypeEnum, value)
		_node.ChangeFreq = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(seoentry.FieldPriority, field.TypeFloat64, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(seoentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(seoentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SeoEntryCreateBulk is the builder for creating many SeoEntry entities in bulk.
type SeoEntryCreateBulk struct {
	config
	err      error
	builders []*SeoEntryCreate
}

// Save creates the SeoEntry entities in the database.
func (_c *SeoEntryCreateBulk) Save(ctx context.Context) ([]*SeoEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SeoEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SeoEntryMutation)
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
func (_c *SeoEntryCreateBulk) SaveX(ctx context.Context) []*SeoEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SeoEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SeoEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
