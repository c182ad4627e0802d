// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-api/ent/chatbotsetting"
	"portfolio-api/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ChatbotSettingUpdate is the builder for updating ChatbotSetting entities.
type ChatbotSettingUpdate struct {
	config
	hooks    []Hook
	mutation *ChatbotSettingMutation
}

// Where appends a list predicates to the ChatbotSettingUpdate builder.
func (_u *ChatbotSettingUpdate) Where(ps ...predicate.ChatbotSetting) *ChatbotSettingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ChatbotSettingUpdate) SetEnabled(v bool) *ChatbotSettingUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ChatbotSettingUpdate) SetNillableEnabled(v *bool) *ChatbotSettingUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *ChatbotSettingUpdate) SetModel(v string) *ChatbotSettingUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ChatbotSettingUpdate) SetNillableModel(v *string) *ChatbotSettingUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *ChatbotSettingUpdate) SetTemperature(v float64) *ChatbotSettingUpdate {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *ChatbotSettingUpdate) SetNillableTemperature(v *float64) *ChatbotSettingUpdate {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *ChatbotSettingUpdate) AddTemperature(v float64) *ChatbotSettingUpdate {
	_u.mutation.AddTemperature(v)
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *ChatbotSettingUpdate) SetSystemPrompt(v string) *ChatbotSettingUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *ChatbotSettingUpdate) SetNillableSystemPrompt(v *string) *ChatbotSettingUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (_u *ChatbotSettingUpdate) ClearSystemPrompt() *ChatbotSettingUpdate {
	_u.mutation.ClearSystemPrompt()
	return _u
}

// SetKnowledge sets the "knowledge" field.
func (_u *ChatbotSettingUpdate) SetKnowledge(v map[string]interface{}) *ChatbotSettingUpdate {
	_u.mutation.SetKnowledge(v)
	return _u
}

// ClearKnowledge clears the value of the "knowledge" field.
func (_u *ChatbotSettingUpdate) ClearKnowledge() *ChatbotSettingUpdate {
	_u.mutation.ClearKnowledge()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatbotSettingUpdate) SetUpdatedAt(v time.Time) *ChatbotSettingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChatbotSettingMutation object of the builder.
func (_u *ChatbotSettingUpdate) Mutation() *ChatbotSettingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatbotSettingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatbotSettingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatbotSettingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatbotSettingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatbotSettingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatbotsetting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatbotSettingUpdate) check() error {
	if v, ok := _u.mutation.Model(); ok {
		if err := chatbotsetting.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "ChatbotSetting.model": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Temperature(); ok {
		if err := chatbotsetting.TemperatureValidator(v); err != nil {
			return &ValidationError{Name: "temperature", err: fmt.Errorf(`ent: validator failed for field "ChatbotSetting.temperature": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatbotSettingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatbotsetting.Table, chatbotsetting.Columns, sqlgraph.NewFieldSpec(chatbotsetting.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(chatbotsetting.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(chatbotsetting.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(chatbotsetting.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(chatbotsetting.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(chatbotsetting.FieldSystemPrompt, field.TypeString, value)
	}
	if _u.mutation.SystemPromptCleared() {
		_spec.ClearField(chatbotsetting.FieldSystemPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.Knowledge(); ok {
		_spec.SetField(chatbotsetting.FieldKnowledge, field.TypeJSON, value)
	}
	if _u.mutation.KnowledgeCleared() {
		_spec.ClearField(chatbotsetting.FieldKnowledge, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatbotsetting.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatbotsetting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatbotSettingUpdateOne is the builder for updating a single ChatbotSetting entity.
type ChatbotSettingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatbotSettingMutation
}

// SetEnabled sets the "enabled" field.
func (_u *ChatbotSettingUpdateOne) SetEnabled(v bool) *ChatbotSettingUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ChatbotSettingUpdateOne) SetNillableEnabled(v *bool) *ChatbotSettingUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *ChatbotSettingUpdateOne) SetModel(v string) *ChatbotSettingUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ChatbotSettingUpdateOne) SetNillableModel(v *string) *ChatbotSettingUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *ChatbotSettingUpdateOne) SetTemperature(v float64) *ChatbotSettingUpdateOne {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *ChatbotSettingUpdateOne) SetNillableTemperature(v *float64) *ChatbotSettingUpdateOne {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *ChatbotSettingUpdateOne) AddTemperature(v float64) *ChatbotSettingUpdateOne {
	_u.mutation.AddTemperature(v)
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *ChatbotSettingUpdateOne) SetSystemPrompt(v string) *ChatbotSettingUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *ChatbotSettingUpdateOne) SetNillableSystemPrompt(v *string) *ChatbotSettingUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (_u *ChatbotSettingUpdateOne) ClearSystemPrompt() *ChatbotSettingUpdateOne {
	_u.mutation.ClearSystemPrompt()
	return _u
}

// SetKnowledge sets the "knowledge" field.
func (_u *ChatbotSettingUpdateOne) SetKnowledge(v map[string]interface{}) *ChatbotSettingUpdateOne {
	_u.mutation.SetKnowledge(v)
	return _u
}

// ClearKnowledge clears the value of the "knowledge" field.
func (_u *ChatbotSettingUpdateOne) ClearKnowledge() *ChatbotSettingUpdateOne {
	_u.mutation.ClearKnowledge()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatbotSettingUpdateOne) SetUpdatedAt(v time.Time) *ChatbotSettingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChatbotSettingMutation object of the builder.
func (_u *ChatbotSettingUpdateOne) Mutation() *ChatbotSettingMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChatbotSettingUpdate builder.
func (_u *ChatbotSettingUpdateOne) Where(ps ...predicate.ChatbotSetting) *ChatbotSettingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatbotSettingUpdateOne) Select(field string, fields ...string) *ChatbotSettingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatbotSetting entity.
func (_u *ChatbotSettingUpdateOne) Save(ctx context.Context) (*ChatbotSetting, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatbotSettingUpdateOne) SaveX(ctx context.Context) *ChatbotSetting {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatbotSettingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatbotSettingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatbotSettingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatbotsetting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatbotSettingUpdateOne) check() error {
	if v, ok := _u.mutation.Model(); ok {
		if err := chatbotsetting.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "ChatbotSetting.model": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Temperature(); ok {
		if err := chatbotsetting.TemperatureValidator(v); err != nil {
			return &ValidationError{Name: "temperature", err: fmt.Errorf(`ent: validator failed for field "ChatbotSetting.temperature": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatbotSettingUpdateOne) sqlSave(ctx context.Context) (_node *ChatbotSetting, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatbotsetting.Table, chatbotsetting.Columns, sqlgraph.NewFieldSpec(chatbotsetting.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatbotSetting.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatbotsetting.FieldID)
		for _, f := range fields {
			if !chatbotsetting.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatbotsetting.FieldID {
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
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(chatbotsetting.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(chatbotsetting.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(chatbotsetting.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(chatbotsetting.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(chatbotsetting.FieldSystemPrompt, field.TypeString, value)
	}
	if _u.mutation.SystemPromptCleared() {
		_spec.ClearField(chatbotsetting.FieldSystemPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.Knowledge(); ok {
		_spec.SetField(chatbotsetting.FieldKnowledge, field.TypeJSON, value)
	}
	if _u.mutation.KnowledgeCleared() {
		_spec.ClearField(chatbotsetting.FieldKnowledge, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatbotsetting.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ChatbotSetting{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatbotsetting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
