// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-api/ent/techdetail"
	"portfolio-api/ent/technology"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// TechDetailCreate is the builder for creating a TechDetail entity.
type TechDetailCreate struct {
	config
	mutation *TechDetailMutation
	hooks    []Hook
}

// SetWebsiteURL sets the "website_url" field.
func (_c *TechDetailCreate) SetWebsiteURL(v string) *TechDetailCreate {
	_c.mutation.SetWebsiteURL(v)
	return _c
}

// SetNillableWebsiteURL sets the "website_url" field if the given value is not nil.
func (_c *TechDetailCreate) SetNillableWebsiteURL(v *string) *TechDetailCreate {
	if v != nil {
		_c.SetWebsiteURL(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *TechDetailCreate) SetCategory(v techdetail.Category) *TechDetailCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetMyStack sets the "my_stack" field.
func (_c *TechDetailCreate) SetMyStack(v bool) *TechDetailCreate {
	_c.mutation.SetMyStack(v)
	return _c
}

// SetNillableMyStack sets the "my_stack" field if the given value is not nil.
func (_c *TechDetailCreate) SetNillableMyStack(v *bool) *TechDetailCreate {
	if v != nil {
		_c.SetMyStack(*v)
	}
	return _c
}

// SetIsFavorite sets the "is_favorite" field.
func (_c *TechDetailCreate) SetIsFavorite(v bool) *TechDetailCreate {
	_c.mutation.SetIsFavorite(v)
	return _c
}

// SetNillableIsFavorite sets the "is_favorite" field if the given value is not nil.
func (_c *TechDetailCreate) SetNillableIsFavorite(v *bool) *TechDetailCreate {
	if v != nil {
		_c.SetIsFavorite(*v)
	}
	return _c
}

// SetUseCase sets the "use_case" field.
func (_c *TechDetailCreate) SetUseCase(v string) *TechDetailCreate {
	_c.mutation.SetUseCase(v)
	return _c
}

// SetNillableUseCase sets the "use_case" field if the given value is not nil.
func (_c *TechDetailCreate) SetNillableUseCase(v *string) *TechDetailCreate {
	if v != nil {
		_c.SetUseCase(*v)
	}
	return _c
}

// SetExperience sets the "experience" field.
func (_c *TechDetailCreate) SetExperience(v string) *TechDetailCreate {
	_c.mutation.SetExperience(v)
	return _c
}

// SetNillableExperience sets the "experience" field if the given value is not nil.
func (_c *TechDetailCreate) SetNillableExperience(v *string) *TechDetailCreate {
	if v != nil {
		_c.SetExperience(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *TechDetailCreate) SetDescription(v string) *TechDetailCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TechDetailCreate) SetNillableDescription(v *string) *TechDetailCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetComment sets the "comment" field.
func (_c *TechDetailCreate) SetComment(v string) *TechDetailCreate {
	_c.mutation.SetComment(v)
	return _c
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_c *TechDetailCreate) SetNillableComment(v *string) *TechDetailCreate {
	if v != nil {
		_c.SetComment(*v)
	}
	return _c
}

// SetPurchased sets the "purchased" field.
func (_c *TechDetailCreate) SetPurchased(v bool) *TechDetailCreate {
	_c.mutation.SetPurchased(v)
	return _c
}

// SetNillablePurchased sets the "purchased" field if the given value is not nil.
func (_c *TechDetailCreate) SetNillablePurchased(v *bool) *TechDetailCreate {
	if v != nil {
		_c.SetPurchased(*v)
	}
	return _c
}

// SetYearBeganUsing sets the "year_began_using" field.
func (_c *TechDetailCreate) SetYearBeganUsing(v int) *TechDetailCreate {
	_c.mutation.SetYearBeganUsing(v)
	return _c
}

// SetNillableYearBeganUsing sets the "year_began_using" field if the given value is not nil.
func (_c *TechDetailCreate) SetNillableYearBeganUsing(v *int) *TechDetailCreate {
	if v != nil {
		_c.SetYearBeganUsing(*v)
	}
	return _c
}

// SetMonthBeganUsing sets the "month_began_using" field.
func (_c *TechDetailCreate) SetMonthBeganUsing(v techdetail.MonthBeganUsing) *TechDetailCreate {
	_c.mutation.SetMonthBeganUsing(v)
	return _c
}

// SetNillableMonthBeganUsing sets the "month_began_using" field if the given value is not nil.
func (_c *TechDetailCreate) SetNillableMonthBeganUsing(v *techdetail.MonthBeganUsing) *TechDetailCreate {
	if v != nil {
		_c.SetMonthBeganUsing(*v)
	}
	return _c
}

// SetSkillLevel sets the "skill_level" field.
func (_c *TechDetailCreate) SetSkillLevel(v techdetail.SkillLevel) *TechDetailCreate {
	_c.mutation.SetSkillLevel(v)
	return _c
}

// SetNillableSkillLevel sets the "skill_level" field if the given value is not nil.
func (_c *TechDetailCreate) SetNillableSkillLevel(v *techdetail.SkillLevel) *TechDetailCreate {
	if v != nil {
		_c.SetSkillLevel(*v)
	}
	return _c
}

// SetRating sets the "rating" field.
func (_c *TechDetailCreate) SetRating(v techdetail.Rating) *TechDetailCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_c *TechDetailCreate) SetNillableRating(v *techdetail.Rating) *TechDetailCreate {
	if v != nil {
		_c.SetRating(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TechDetailCreate) SetCreatedAt(v time.Time) *TechDetailCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TechDetailCreate) SetNillableCreatedAt(v *time.Time) *TechDetailCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TechDetailCreate) SetUpdatedAt(v time.Time) *TechDetailCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TechDetailCreate) SetNillableUpdatedAt(v *time.Time) *TechDetailCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TechDetailCreate) SetID(v uuid.UUID) *TechDetailCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TechDetailCreate) SetNillableID(v *uuid.UUID) *TechDetailCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTechnologyID sets the "technology" edge to the Technology entity by ID.
func (_c *TechDetailCreate) SetTechnologyID(id uuid.UUID) *TechDetailCreate {
	_c.mutation.SetTechnologyID(id)
	return _c
}

// SetTechnology sets the "technology" edge to the Technology entity.
func (_c *TechDetailCreate) SetTechnology(v *Technology) *TechDetailCreate {
	return _c.SetTechnologyID(v.ID)
}

// Mutation returns the TechDetailMutation object of the builder.
func (_c *TechDetailCreate) Mutation() *TechDetailMutation {
	return _c.mutation
}

// Save creates the TechDetail in the database.
func (_c *TechDetailCreate) Save(ctx context.Context) (*TechDetail, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TechDetailCreate) SaveX(ctx context.Context) *TechDetail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TechDetailCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TechDetailCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TechDetailCreate) defaults() {
	if _, ok := _c.mutation.MyStack(); !ok {
		v := techdetail.DefaultMyStack
		_c.mutation.SetMyStack(v)
	}
	if _, ok := _c.mutation.IsFavorite(); !ok {
		v := techdetail.DefaultIsFavorite
		_c.mutation.SetIsFavorite(v)
	}
	if _, ok := _c.mutation.Purchased(); !ok {
		v := techdetail.DefaultPurchased
		_c.mutation.SetPurchased(v)
	}
	if _, ok := _c.mutation.YearBeganUsing(); !ok {
		v := techdetail.DefaultYearBeganUsing
		_c.mutation.SetYearBeganUsing(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := techdetail.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := techdetail.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := techdetail.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TechDetailCreate) check() error {
	if v, ok := _c.mutation.WebsiteURL(); ok {
		if err := techdetail.WebsiteURLValidator(v); err != nil {
			return &ValidationError{Name: "website_url", err: fmt.Errorf(`ent: validator failed for field "TechDetail.website_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "TechDetail.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := techdetail.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "TechDetail.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MyStack(); !ok {
		return &ValidationError{Name: "my_stack", err: errors.New(`ent: missing required field "TechDetail.my_stack"`)}
	}
	if _, ok := _c.mutation.IsFavorite(); !ok {
		return &ValidationError{Name: "is_favorite", err: errors.New(`ent: missing required field "TechDetail.is_favorite"`)}
	}
	if _, ok := _c.mutation.Purchased(); !ok {
		return &ValidationError{Name: "purchased", err: errors.New(`ent: missing required field "TechDetail.purchased"`)}
	}
	if _, ok := _c.mutation.YearBeganUsing(); !ok {
		return &ValidationError{Name: "year_began_using", err: errors.New(`ent: missing required field "TechDetail.year_began_using"`)}
	}
	if v, ok := _c.mutation.MonthBeganUsing(); ok {
		if err := techdetail.MonthBeganUsingValidator(v); err != nil {
			return &ValidationError{Name: "month_began_using", err: fmt.Errorf(`ent: validator failed for field "TechDetail.month_began_using": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SkillLevel(); ok {
		if err := techdetail.SkillLevelValidator(v); err != nil {
			return &ValidationError{Name: "skill_level", err: fmt.Errorf(`ent: validator failed for field "TechDetail.skill_level": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Rating(); ok {
		if err := techdetail.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "TechDetail.rating": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TechDetail.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TechDetail.updated_at"`)}
	}
	if len(_c.mutation.TechnologyIDs()) == 0 {
		return &ValidationError{Name: "technology", err: errors.New(`ent: missing required edge "TechDetail.technology"`)}
	}
	return nil
}

func (_c *TechDetailCreate) sqlSave(ctx context.Context) (*TechDetail, error) {
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

func (_c *TechDetailCreate) createSpec() (*TechDetail, *sqlgraph.CreateSpec) {
	var (
		_node = &TechDetail{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(techdetail.Table, sqlgraph.NewFieldSpec(techdetail.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.WebsiteURL(); ok {
		_spec.SetField(techdetail.FieldWebsiteURL, field.TypeString, value)
		_node.WebsiteURL = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(techdetail.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.MyStack(); ok {
		_spec.SetField(techdetail.FieldMyStack, field.TypeBool, value)
		_node.MyStack = value
	}
	if value, ok := _c.mutation.IsFavorite(); ok {
		_spec.SetField(techdetail.FieldIsFavorite, field.TypeBool, value)
		_node.IsFavorite = value
	}
	if value, ok := _c.mutation.UseCase(); ok {
		_spec.SetField(techdetail.FieldUseCase, field.TypeString, value)
		_node.UseCase = value
	}
	if value, ok := _c.mutation.Experience(); ok {
		_spec.SetField(techdetail.FieldExperience, field.TypeString, value)
		_node.Experience = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(techdetail.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Comment(); ok {
		_spec.SetField(techdetail.FieldComment, field.TypeString, value)
		_node.Comment = value
	}
	if value, ok := _c.mutation.Purchased(); ok {
		_spec.SetField(techdetail.FieldPurchased, field.TypeBool, value)
		_node.Purchased = value
	}
	if value, ok := _c.mutation.YearBeganUsing(); ok {
		_spec.SetField(techdetail.FieldYearBeganUsing, field.TypeInt, value)
		_node.YearBeganUsing = value
	}
	if value, ok := _c.mutation.MonthBeganUsing(); ok {
		_spec.SetField(techdetail.FieldMonthBeganUsing, field.TypeEnum, value)
		_node.MonthBeganUsing = value
	}
	if value, ok := _c.mutation.SkillLevel(); ok {
		_spec.SetField(techdetail.FieldSkillLevel, field.TypeEnum, value)
		_node.SkillLevel = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(techdetail.FieldRating, field.TypeEnum, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(techdetail.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(techdetail.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TechnologyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   techdetail.TechnologyTable,
			Columns: []string{techdetail.TechnologyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(technology.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.technology_details = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TechDetailCreateBulk is the builder for creating many TechDetail entities in bulk.
type TechDetailCreateBulk struct {
	config
	err      error
	builders []*TechDetailCreate
}

// Save creates the TechDetail entities in the database.
func (_c *TechDetailCreateBulk) Save(ctx context.Context) ([]*TechDetail, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TechDetail, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TechDetailMutation)
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
func (_c *TechDetailCreateBulk) SaveX(ctx context.Context) []*TechDetail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TechDetailCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TechDetailCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
