// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-api/ent/chatbotsetting"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ChatbotSettingCreate is the builder for creating a ChatbotSetting entity.
type ChatbotSettingCreate struct {
	config
	mutation *ChatbotSettingMutation
	hooks    []Hook
}

// SetEnabled sets the "enabled" field.
func (_c *ChatbotSettingCreate) SetEnabled(v bool) *ChatbotSettingCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *ChatbotSettingCreate) SetNillableEnabled(v *bool) *ChatbotSettingCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *ChatbotSettingCreate) SetModel(v string) *ChatbotSettingCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *ChatbotSettingCreate) SetNillableModel(v *string) *ChatbotSettingCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetTemperature sets the "temperature" field.
func (_c *ChatbotSettingCreate) SetTemperature(v float64) *ChatbotSettingCreate {
	_c.mutation.SetTemperature(v)
	return _c
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_c *ChatbotSettingCreate) SetNillableTemperature(v *float64) *ChatbotSettingCreate {
	if v != nil {
		_c.SetTemperature(*v)
	}
	return _c
}

// SetSystemPrompt sets the "system_prompt" field.
func (_c *ChatbotSettingCreate) SetSystemPrompt(v string) *ChatbotSettingCreate {
	_c.mutation.SetSystemPrompt(v)
	return _c
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_c *ChatbotSettingCreate) SetNillableSystemPrompt(v *string) *ChatbotSettingCreate {
	if v != nil {
		_c.SetSystemPrompt(*v)
	}
	return _c
}

// SetKnowledge sets the "knowledge" field.
func (_c *ChatbotSettingCreate) SetKnowledge(v map[string]interface{}) *ChatbotSettingCreate {
	_c.mutation.SetKnowledge(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChatbotSettingCreate) SetUpdatedAt(v time.Time) *ChatbotSettingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChatbotSettingCreate) SetNillableUpdatedAt(v *time.Time) *ChatbotSettingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChatbotSettingCreate) SetID(v uuid.UUID) *ChatbotSettingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ChatbotSettingCreate) SetNillableID(v *uuid.UUID) *ChatbotSettingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ChatbotSettingMutation object of the builder.
func (_c *ChatbotSettingCreate) Mutation() *ChatbotSettingMutation {
	return _c.mutation
}

// Save creates the ChatbotSetting in the database.
func (_c *ChatbotSettingCreate) Save(ctx context.Context) (*ChatbotSetting, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatbotSettingCreate) SaveX(ctx context.Context) *ChatbotSetting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatbotSettingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatbotSettingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatbotSettingCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := chatbotsetting.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.Model(); !ok {
		v := chatbotsetting.DefaultModel
		_c.mutation.SetModel(v)
	}
	if _, ok := _c.mutation.Temperature(); !ok {
		v := chatbotsetting.DefaultTemperature
		_c.mutation.SetTemperature(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := chatbotsetting.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := chatbotsetting.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatbotSettingCreate) check() error {
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "ChatbotSetting.enabled"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "ChatbotSetting.model"`)}
	}
	if v, ok := _c.mutation.Model(); ok {
		if err := chatbotsetting.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "ChatbotSetting.model": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Temperature(); !ok {
		return &ValidationError{Name: "temperature", err: errors.New(`ent: missing required field "ChatbotSetting.temperature"`)}
	}
	if v, ok := _c.mutation.Temperature(); ok {
		if err := chatbotsetting.TemperatureValidator(v); err != nil {
			return &ValidationError{Name: "temperature", err: fmt.Errorf(`ent: validator failed for field "ChatbotSetting.temperature": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ChatbotSetting.updated_at"`)}
	}
	return nil
}

func (_c *ChatbotSettingCreate) sqlSave(ctx context.Context) (*ChatbotSetting, error) {
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

func (_c *ChatbotSettingCreate) createSpec() (*ChatbotSetting, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatbotSetting{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatbotsetting.Table, sqlgraph.NewFieldSpec(chatbotsetting.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(chatbotsetting.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(chatbotsetting.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Temperature(); ok {
		_spec.SetField(chatbotsetting.FieldTemperature, field.TypeFloat64, value)
		_node.Temperature = value
	}
	if value, ok := _c.mutation.SystemPrompt(); ok {
		_spec.SetField(chatbotsetting.FieldSystemPrompt, field.TypeString, value)
		_node.SystemPrompt = value
	}
	if value, ok := _c.mutation.Knowledge(); ok {
		_spec.SetField(chatbotsetting.FieldKnowledge, field.TypeJSON, value)
		_node.Knowledge = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(chatbotsetting.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ChatbotSettingCreateBulk is the builder for creating many ChatbotSetting entities in bulk.
type ChatbotSettingCreateBulk struct {
	config
	err      error
	builders []*ChatbotSettingCreate
}

// Save creates the ChatbotSetting entities in the database.
func (_c *ChatbotSettingCreateBulk) Save(ctx context.Context) ([]*ChatbotSetting, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatbotSetting, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatbotSettingMutation)
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
func (_c *ChatbotSettingCreateBulk) SaveX(ctx context.Context) []*ChatbotSetting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatbotSettingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatbotSettingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
