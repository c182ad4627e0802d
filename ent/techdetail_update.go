// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-api/ent/predicate"
	"portfolio-api/ent/techdetail"
	"portfolio-api/ent/technology"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// TechDetailUpdate is the builder for updating TechDetail entities.
type TechDetailUpdate struct {
	config
	hooks    []Hook
	mutation *TechDetailMutation
}

// Where appends a list predicates to the TechDetailUpdate builder.
func (_u *TechDetailUpdate) Where(ps ...predicate.TechDetail) *TechDetailUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWebsiteURL sets the "website_url" field.
func (_u *TechDetailUpdate) SetWebsiteURL(v string) *TechDetailUpdate {
	_u.mutation.SetWebsiteURL(v)
	return _u
}

// SetNillableWebsiteURL sets the "website_url" field if the given value is not nil.
func (_u *TechDetailUpdate) SetNillableWebsiteURL(v *string) *TechDetailUpdate {
	if v != nil {
		_u.SetWebsiteURL(*v)
	}
	return _u
}

// ClearWebsiteURL clears the value of the "website_url" field.
func (_u *TechDetailUpdate) ClearWebsiteURL() *TechDetailUpdate {
	_u.mutation.ClearWebsiteURL()
	return _u
}

// SetCategory sets the "category" field.
func (_u *TechDetailUpdate) SetCategory(v techdetail.Category) *TechDetailUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TechDetailUpdate) SetNillableCategory(v *techdetail.Category) *TechDetailUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetMyStack sets the "my_stack" field.
func (_u *TechDetailUpdate) SetMyStack(v bool) *TechDetailUpdate {
	_u.mutation.SetMyStack(v)
	return _u
}

// SetNillableMyStack sets the "my_stack" field if the given value is not nil.
func (_u *TechDetailUpdate) SetNillableMyStack(v *bool) *TechDetailUpdate {
	if v != nil {
		_u.SetMyStack(*v)
	}
	return _u
}

// SetIsFavorite sets the "is_favorite" field.
func (_u *TechDetailUpdate) SetIsFavorite(v bool) *TechDetailUpdate {
	_u.mutation.SetIsFavorite(v)
	return _u
}

// SetNillableIsFavorite sets the "is_favorite" field if the given value is not nil.
func (_u *TechDetailUpdate) SetNillableIsFavorite(v *bool) *TechDetailUpdate {
	if v != nil {
		_u.SetIsFavorite(*v)
	}
	return _u
}

// SetUseCase sets the "use_case" field.
func (_u *TechDetailUpdate) SetUseCase(v string) *TechDetailUpdate {
	_u.mutation.SetUseCase(v)
	return _u
}

// SetNillableUseCase sets the "use_case" field if the given value is not nil.
func (_u *TechDetailUpdate) SetNillableUseCase(v *string) *TechDetailUpdate {
	if v != nil {
		_u.SetUseCase(*v)
	}
	return _u
}

// ClearUseCase clears the value of the "use_case" field.
func (_u *TechDetailUpdate) ClearUseCase() *TechDetailUpdate {
	_u.mutation.ClearUseCase()
	return _u
}

// SetExperience sets the "experience" field.
func (_u *TechDetailUpdate) SetExperience(v string) *TechDetailUpdate {
	_u.mutation.SetExperience(v)
	return _u
}

// SetNillableExperience sets the "experience" field if the given value is not nil.
func (_u *TechDetailUpdate) SetNillableExperience(v *string) *TechDetailUpdate {
	if v != nil {
		_u.SetExperience(*v)
	}
	return _u
}

// ClearExperience clears the value of the "experience" field.
func (_u *TechDetailUpdate) ClearExperience() *TechDetailUpdate {
	_u.mutation.ClearExperience()
	return _u
}

// SetDescription sets the "description" field.
func (_u *TechDetailUpdate) SetDescription(v string) *TechDetailUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TechDetailUpdate) SetNillableDescription(v *string) *TechDetailUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TechDetailUpdate) ClearDescription() *TechDetailUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetComment sets the "comment" field.
func (_u *TechDetailUpdate) SetComment(v string) *TechDetailUpdate {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *TechDetailUpdate) SetNillableComment(v *string) *TechDetailUpdate {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *TechDetailUpdate) ClearComment() *TechDetailUpdate {
	_u.mutation.ClearComment()
	return _u
}

// SetPurchased sets the "purchased" field.
func (_u *TechDetailUpdate) SetPurchased(v bool) *TechDetailUpdate {
	_u.mutation.SetPurchased(v)
	return _u
}

// SetNillablePurchased sets the "purchased" field if the given value is not nil.
func (_u *TechDetailUpdate) SetNillablePurchased(v *bool) *TechDetailUpdate {
	if v != nil {
		_u.SetPurchased(*v)
	}
	return _u
}

// SetYearBeganUsing sets the "year_began_using" field.
func (_u *TechDetailUpdate) SetYearBeganUsing(v int) *TechDetailUpdate {
	_u.mutation.ResetYearBeganUsing()
	_u.mutation.SetYearBeganUsing(v)
	return _u
}

// SetNillableYearBeganUsing sets the "year_began_using" field if the given value is not nil.
func (_u *TechDetailUpdate) SetNillableYearBeganUsing(v *int) *TechDetailUpdate {
	if v != nil {
		_u.SetYearBeganUsing(*v)
	}
	return _u
}

// AddYearBeganUsing adds value to the "year_began_using" field.
func (_u *TechDetailUpdate) AddYearBeganUsing(v int) *TechDetailUpdate {
	_u.mutation.AddYearBeganUsing(v)
	return _u
}

// SetMonthBeganUsing sets the "month_began_using" field.
func (_u *TechDetailUpdate) SetMonthBeganUsing(v techdetail.MonthBeganUsing) *TechDetailUpdate {
	_u.mutation.SetMonthBeganUsing(v)
	return _u
}

// SetNillableMonthBeganUsing sets the "month_began_using" field if the given value is not nil.
func (_u *TechDetailUpdate) SetNillableMonthBeganUsing(v *techdetail.MonthBeganUsing) *TechDetailUpdate {
	if v != nil {
		_u.SetMonthBeganUsing(*v)
	}
	return _u
}

// ClearMonthBeganUsing clears the value of the "month_began_using" field.
func (_u *TechDetailUpdate) ClearMonthBeganUsing() *TechDetailUpdate {
	_u.mutation.ClearMonthBeganUsing()
	return _u
}

// SetSkillLevel sets the "skill_level" field.
func (_u *TechDetailUpdate) SetSkillLevel(v techdetail.SkillLevel) *TechDetailUpdate {
	_u.mutation.SetSkillLevel(v)
	return _u
}

// SetNillableSkillLevel sets the "skill_level" field if the given value is not nil.
func (_u *TechDetailUpdate) SetNillableSkillLevel(v *techdetail.SkillLevel) *TechDetailUpdate {
	if v != nil {
		_u.SetSkillLevel(*v)
	}
	return _u
}

// ClearSkillLevel clears the value of the "skill_level" field.
func (_u *TechDetailUpdate) ClearSkillLevel() *TechDetailUpdate {
	_u.mutation.ClearSkillLevel()
	return _u
}

// SetRating sets the "rating" field.
func (_u *TechDetailUpdate) SetRating(v techdetail.Rating) *TechDetailUpdate {
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *TechDetailUpdate) SetNillableRating(v *techdetail.Rating) *TechDetailUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// ClearRating clears the value of the "rating" field.
func (_u *TechDetailUpdate) ClearRating() *TechDetailUpdate {
	_u.mutation.ClearRating()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TechDetailUpdate) SetUpdatedAt(v time.Time) *TechDetailUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTechnologyID sets the "technology" edge to the Technology entity by ID.
func (_u *TechDetailUpdate) SetTechnologyID(id uuid.UUID) *TechDetailUpdate {
	_u.mutation.SetTechnologyID(id)
	return _u
}

// SetTechnology sets the "technology" edge to the Technology entity.
func (_u *TechDetailUpdate) SetTechnology(v *Technology) *TechDetailUpdate {
	return _u.SetTechnologyID(v.ID)
}

// Mutation returns the TechDetailMutation object of the builder.
func (_u *TechDetailUpdate) Mutation() *TechDetailMutation {
	return _u.mutation
}

// ClearTechnology clears the "technology" edge to the Technology entity.
func (_u *TechDetailUpdate) ClearTechnology() *TechDetailUpdate {
	_u.mutation.ClearTechnology()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TechDetailUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TechDetailUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TechDetailUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TechDetailUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TechDetailUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := techdetail.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TechDetailUpdate) check() error {
	if v, ok := _u.mutation.WebsiteURL(); ok {
		if err := techdetail.WebsiteURLValidator(v); err != nil {
			return &ValidationError{Name: "website_url", err: fmt.Errorf(`ent: validator failed for field "TechDetail.website_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := techdetail.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "TechDetail.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MonthBeganUsing(); ok {
		if err := techdetail.MonthBeganUsingValidator(v); err != nil {
			return &ValidationError{Name: "month_began_using", err: fmt.Errorf(`ent: validator failed for field "TechDetail.month_began_using": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillLevel(); ok {
		if err := techdetail.SkillLevelValidator(v); err != nil {
			return &ValidationError{Name: "skill_level", err: fmt.Errorf(`ent: validator failed for field "TechDetail.skill_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := techdetail.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "TechDetail.rating": %w`, err)}
		}
	}
	if _u.mutation.TechnologyCleared() && len(_u.mutation.TechnologyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TechDetail.technology"`)
	}
	return nil
}

func (_u *TechDetailUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(techdetail.Table, techdetail.Columns, sqlgraph.NewFieldSpec(techdetail.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WebsiteURL(); ok {
		_spec.SetField(techdetail.FieldWebsiteURL, field.TypeString, value)
	}
	if _u.mutation.WebsiteURLCleared() {
		_spec.ClearField(techdetail.FieldWebsiteURL, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(techdetail.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MyStack(); ok {
		_spec.SetField(techdetail.FieldMyStack, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsFavorite(); ok {
		_spec.SetField(techdetail.FieldIsFavorite, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UseCase(); ok {
		_spec.SetField(techdetail.FieldUseCase, field.TypeString, value)
	}
	if _u.mutation.UseCaseCleared() {
		_spec.ClearField(techdetail.FieldUseCase, field.TypeString)
	}
	if value, ok := _u.mutation.Experience(); ok {
		_spec.SetField(techdetail.FieldExperience, field.TypeString, value)
	}
	if _u.mutation.ExperienceCleared() {
		_spec.ClearField(techdetail.FieldExperience, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(techdetail.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(techdetail.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(techdetail.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(techdetail.FieldComment, field.TypeString)
	}
	if value, ok := _u.mutation.Purchased(); ok {
		_spec.SetField(techdetail.FieldPurchased, field.TypeBool, value)
	}
	if value, ok := _u.mutation.YearBeganUsing(); ok {
		_spec.SetField(techdetail.FieldYearBeganUsing, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearBeganUsing(); ok {
		_spec.AddField(techdetail.FieldYearBeganUsing, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MonthBeganUsing(); ok {
		_spec.SetField(techdetail.FieldMonthBeganUsing, field.TypeEnum, value)
	}
	if _u.mutation.MonthBeganUsingCleared() {
		_spec.ClearField(techdetail.FieldMonthBeganUsing, field.TypeEnum)
	}
	if value, ok := _u.mutation.SkillLevel(); ok {
		_spec.SetField(techdetail.FieldSkillLevel, field.TypeEnum, value)
	}
	if _u.mutation.SkillLevelCleared() {
		_spec.ClearField(techdetail.FieldSkillLevel, field.TypeEnum)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(techdetail.FieldRating, field.TypeEnum, value)
	}
	if _u.mutation.RatingCleared() {
		_spec.ClearField(techdetail.FieldRating, field.TypeEnum)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(techdetail.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TechnologyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TechnologyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{techdetail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TechDetailUpdateOne is the builder for updating a single TechDetail entity.
type TechDetailUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TechDetailMutation
}

// SetWebsiteURL sets the "website_url" field.
func (_u *TechDetailUpdateOne) SetWebsiteURL(v string) *TechDetailUpdateOne {
	_u.mutation.SetWebsiteURL(v)
	return _u
}

// SetNillableWebsiteURL sets the "website_url" field if the given value is not nil.
func (_u *TechDetailUpdateOne) SetNillableWebsiteURL(v *string) *TechDetailUpdateOne {
	if v != nil {
		_u.SetWebsiteURL(*v)
	}
	return _u
}

// ClearWebsiteURL clears the value of the "website_url" field.
func (_u *TechDetailUpdateOne) ClearWebsiteURL() *TechDetailUpdateOne {
	_u.mutation.ClearWebsiteURL()
	return _u
}

// SetCategory sets the "category" field.
func (_u *TechDetailUpdateOne) SetCategory(v techdetail.Category) *TechDetailUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TechDetailUpdateOne) SetNillableCategory(v *techdetail.Category) *TechDetailUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetMyStack sets the "my_stack" field.
func (_u *TechDetailUpdateOne) SetMyStack(v bool) *TechDetailUpdateOne {
	_u.mutation.SetMyStack(v)
	return _u
}

// SetNillableMyStack sets the "my_stack" field if the given value is not nil.
func (_u *TechDetailUpdateOne) SetNillableMyStack(v *bool) *TechDetailUpdateOne {
	if v != nil {
		_u.SetMyStack(*v)
	}
	return _u
}

// SetIsFavorite sets the "is_favorite" field.
func (_u *TechDetailUpdateOne) SetIsFavorite(v bool) *TechDetailUpdateOne {
	_u.mutation.SetIsFavorite(v)
	return _u
}

// SetNillableIsFavorite sets the "is_favorite" field if the given value is not nil.
func (_u *TechDetailUpdateOne) SetNillableIsFavorite(v *bool) *TechDetailUpdateOne {
	if v != nil {
		_u.SetIsFavorite(*v)
	}
	return _u
}

// SetUseCase sets the "use_case" field.
func (_u *TechDetailUpdateOne) SetUseCase(v string) *TechDetailUpdateOne {
	_u.mutation.SetUseCase(v)
	return _u
}

// SetNillableUseCase sets the "use_case" field if the given value is not nil.
func (_u *TechDetailUpdateOne) SetNillableUseCase(v *string) *TechDetailUpdateOne {
	if v != nil {
		_u.SetUseCase(*v)
	}
	return _u
}

// ClearUseCase clears the value of the "use_case" field.
func (_u *TechDetailUpdateOne) ClearUseCase() *TechDetailUpdateOne {
	_u.mutation.ClearUseCase()
	return _u
}

// SetExperience sets the "experience" field.
func (_u *TechDetailUpdateOne) SetExperience(v string) *TechDetailUpdateOne {
	_u.mutation.SetExperience(v)
	return _u
}

// SetNillableExperience sets the "experience" field if the given value is not nil.
func (_u *TechDetailUpdateOne) SetNillableExperience(v *string) *TechDetailUpdateOne {
	if v != nil {
		_u.SetExperience(*v)
	}
	return _u
}

// ClearExperience clears the value of the "experience" field.
func (_u *TechDetailUpdateOne) ClearExperience() *TechDetailUpdateOne {
	_u.mutation.ClearExperience()
	return _u
}

// SetDescription sets the "description" field.
func (_u *TechDetailUpdateOne) SetDescription(v string) *TechDetailUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TechDetailUpdateOne) SetNillableDescription(v *string) *TechDetailUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TechDetailUpdateOne) ClearDescription() *TechDetailUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetComment sets the "comment" field.
func (_u *TechDetailUpdateOne) SetComment(v string) *TechDetailUpdateOne {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *TechDetailUpdateOne) SetNillableComment(v *string) *TechDetailUpdateOne {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *TechDetailUpdateOne) ClearComment() *TechDetailUpdateOne {
	_u.mutation.ClearComment()
	return _u
}

// SetPurchased sets the "purchased" field.
func (_u *TechDetailUpdateOne) SetPurchased(v bool) *TechDetailUpdateOne {
	_u.mutation.SetPurchased(v)
	return _u
}

// SetNillablePurchased sets the "purchased" field if the given value is not nil.
func (_u *TechDetailUpdateOne) SetNillablePurchased(v *bool) *TechDetailUpdateOne {
	if v != nil {
		_u.SetPurchased(*v)
	}
	return _u
}

// SetYearBeganUsing sets the "year_began_using" field.
func (_u *TechDetailUpdateOne) SetYearBeganUsing(v int) *TechDetailUpdateOne {
	_u.mutation.ResetYearBeganUsing()
	_u.mutation.SetYearBeganUsing(v)
	return _u
}

// SetNillableYearBeganUsing sets the "year_began_using" field if the given value is not nil.
func (_u *TechDetailUpdateOne) SetNillableYearBeganUsing(v *int) *TechDetailUpdateOne {
	if v != nil {
		_u.SetYearBeganUsing(*v)
	}
	return _u
}

// AddYearBeganUsing adds value to the "year_began_using" field.
func (_u *TechDetailUpdateOne) AddYearBeganUsing(v int) *TechDetailUpdateOne {
	_u.mutation.AddYearBeganUsing(v)
	return _u
}

// SetMonthBeganUsing sets the "month_began_using" field.
func (_u *TechDetailUpdateOne) SetMonthBeganUsing(v techdetail.MonthBeganUsing) *TechDetailUpdateOne {
	_u.mutation.SetMonthBeganUsing(v)
	return _u
}

// SetNillableMonthBeganUsing sets the "month_began_using" field if the given value is not nil.
func (_u *TechDetailUpdateOne) SetNillableMonthBeganUsing(v *techdetail.MonthBeganUsing) *TechDetailUpdateOne {
	if v != nil {
		_u.SetMonthBeganUsing(*v)
	}
	return _u
}

// ClearMonthBeganUsing clears the value of the "month_began_using" field.
func (_u *TechDetailUpdateOne) ClearMonthBeganUsing() *TechDetailUpdateOne {
	_u.mutation.ClearMonthBeganUsing()
	return _u
}

// SetSkillLevel sets the "skill_level" field.
func (_u *TechDetailUpdateOne) SetSkillLevel(v techdetail.SkillLevel) *TechDetailUpdateOne {
	_u.mutation.SetSkillLevel(v)
	return _u
}

// SetNillableSkillLevel sets the "skill_level" field if the given value is not nil.
func (_u *TechDetailUpdateOne) SetNillableSkillLevel(v *techdetail.SkillLevel) *TechDetailUpdateOne {
	if v != nil {
		_u.SetSkillLevel(*v)
	}
	return _u
}

// ClearSkillLevel clears the value of the "skill_level" field.
func (_u *TechDetailUpdateOne) ClearSkillLevel() *TechDetailUpdateOne {
	_u.mutation.ClearSkillLevel()
	return _u
}

// SetRating sets the "rating" field.
func (_u *TechDetailUpdateOne) SetRating(v techdetail.Rating) *TechDetailUpdateOne {
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *TechDetailUpdateOne) SetNillableRating(v *techdetail.Rating) *TechDetailUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// ClearRating clears the value of the "rating" field.
func (_u *TechDetailUpdateOne) ClearRating() *TechDetailUpdateOne {
	_u.mutation.ClearRating()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TechDetailUpdateOne) SetUpdatedAt(v time.Time) *TechDetailUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTechnologyID sets the "technology" edge to the Technology entity by ID.
func (_u *TechDetailUpdateOne) SetTechnologyID(id uuid.UUID) *TechDetailUpdateOne {
	_u.mutation.SetTechnologyID(id)
	return _u
}

// SetTechnology sets the "technology" edge to the Technology entity.
func (_u *TechDetailUpdateOne) SetTechnology(v *Technology) *TechDetailUpdateOne {
	return _u.SetTechnologyID(v.ID)
}

// Mutation returns the TechDetailMutation object of the builder.
func (_u *TechDetailUpdateOne) Mutation() *TechDetailMutation {
	return _u.mutation
}

// ClearTechnology clears the "technology" edge to the Technology entity.
func (_u *TechDetailUpdateOne) ClearTechnology() *TechDetailUpdateOne {
	_u.mutation.ClearTechnology()
	return _u
}

// Where appends a list predicates to the TechDetailUpdate builder.
func (_u *TechDetailUpdateOne) Where(ps ...predicate.TechDetail) *TechDetailUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TechDetailUpdateOne) Select(field string, fields ...string) *TechDetailUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TechDetail entity.
func (_u *TechDetailUpdateOne) Save(ctx context.Context) (*TechDetail, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TechDetailUpdateOne) SaveX(ctx context.Context) *TechDetail {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TechDetailUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TechDetailUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TechDetailUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := techdetail.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TechDetailUpdateOne) check() error {
	if v, ok := _u.mutation.WebsiteURL(); ok {
		if err := techdetail.WebsiteURLValidator(v); err != nil {
			return &ValidationError{Name: "website_url", err: fmt.Errorf(`ent: validator failed for field "TechDetail.website_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := techdetail.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "TechDetail.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MonthBeganUsing(); ok {
		if err := techdetail.MonthBeganUsingValidator(v); err != nil {
			return &ValidationError{Name: "month_began_using", err: fmt.Errorf(`ent: validator failed for field "TechDetail.month_began_using": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillLevel(); ok {
		if err := techdetail.SkillLevelValidator(v); err != nil {
			return &ValidationError{Name: "skill_level", err: fmt.Errorf(`ent: validator failed for field "TechDetail.skill_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := techdetail.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "TechDetail.rating": %w`, err)}
		}
	}
	if _u.mutation.TechnologyCleared() && len(_u.mutation.TechnologyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TechDetail.technology"`)
	}
	return nil
}

func (_u *TechDetailUpdateOne) sqlSave(ctx context.Context) (_node *TechDetail, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(techdetail.Table, techdetail.Columns, sqlgraph.NewFieldSpec(techdetail.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TechDetail.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, techdetail.FieldID)
		for _, f := range fields {
			if !techdetail.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != techdetail.FieldID {
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
	if value, ok := _u.mutation.WebsiteURL(); ok {
		_spec.SetField(techdetail.FieldWebsiteURL, field.TypeString, value)
	}
	if _u.mutation.WebsiteURLCleared() {
		_spec.ClearField(techdetail.FieldWebsiteURL, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(techdetail.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MyStack(); ok {
		_spec.SetField(techdetail.FieldMyStack, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsFavorite(); ok {
		_spec.SetField(techdetail.FieldIsFavorite, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UseCase(); ok {
		_spec.SetField(techdetail.FieldUseCase, field.TypeString, value)
	}
	if _u.mutation.UseCaseCleared() {
		_spec.ClearField(techdetail.FieldUseCase, field.TypeString)
	}
	if value, ok := _u.mutation.Experience(); ok {
		_spec.SetField(techdetail.FieldExperience, field.TypeString, value)
	}
	if _u.mutation.ExperienceCleared() {
		_spec.ClearField(techdetail.FieldExperience, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(techdetail.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(techdetail.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(techdetail.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(techdetail.FieldComment, field.TypeString)
	}
	if value, ok := _u.mutation.Purchased(); ok {
		_spec.SetField(techdetail.FieldPurchased, field.TypeBool, value)
	}
	if value, ok := _u.mutation.YearBeganUsing(); ok {
		_spec.SetField(techdetail.FieldYearBeganUsing, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearBeganUsing(); ok {
		_spec.AddField(techdetail.FieldYearBeganUsing, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MonthBeganUsing(); ok {
		_spec.SetField(techdetail.FieldMonthBeganUsing, field.TypeEnum, value)
	}
	if _u.mutation.MonthBeganUsingCleared() {
		_spec.ClearField(techdetail.FieldMonthBeganUsing, field.TypeEnum)
	}
	if value, ok := _u.mutation.SkillLevel(); ok {
		_spec.SetField(techdetail.FieldSkillLevel, field.TypeEnum, value)
	}
	if _u.mutation.SkillLevelCleared() {
		_spec.ClearField(techdetail.FieldSkillLevel, field.TypeEnum)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(techdetail.FieldRating, field.TypeEnum, value)
	}
	if _u.mutation.RatingCleared() {
		_spec.ClearField(techdetail.FieldRating, field.TypeEnum)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(techdetail.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TechnologyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TechnologyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TechDetail{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{techdetail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
