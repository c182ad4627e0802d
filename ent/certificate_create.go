// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-api/ent/certificate"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// CertificateCreate is the builder for creating a Certificate entity.
type CertificateCreate struct {
	config
	mutation *CertificateMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *CertificateCreate) SetTitle(v string) *CertificateCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetIssuer sets the "issuer" field.
func (_c *CertificateCreate) SetIssuer(v string) *CertificateCreate {
	_c.mutation.SetIssuer(v)
	return _c
}

// SetNillableIssuer sets the "issuer" field if the given value is not nil.
func (_c *CertificateCreate) SetNillableIssuer(v *string) *CertificateCreate {
	if v != nil {
		_c.SetIssuer(*v)
	}
	return _c
}

// SetIssueMonth sets the "issue_month" field.
func (_c *CertificateCreate) SetIssueMonth(v certificate.IssueMonth) *CertificateCreate {
	_c.mutation.SetIssueMonth(v)
	return _c
}

// SetNillableIssueMonth sets the "issue_month" field if the given value is not nil.
func (_c *CertificateCreate) SetNillableIssueMonth(v *certificate.IssueMonth) *CertificateCreate {
	if v != nil {
		_c.SetIssueMonth(*v)
	}
	return _c
}

// SetIssueYear sets the "issue_year" field.
func (_c *CertificateCreate) SetIssueYear(v int) *CertificateCreate {
	_c.mutation.SetIssueYear(v)
	return _c
}

// SetNillableIssueYear sets the "issue_year" field if the given value is not nil.
func (_c *CertificateCreate) SetNillableIssueYear(v *int) *CertificateCreate {
	if v != nil {
		_c.SetIssueYear(*v)
	}
	return _c
}

// SetExpiryMonth sets the "expiry_month" field.
func (_c *CertificateCreate) SetExpiryMonth(v certificate.ExpiryMonth) *CertificateCreate {
	_c.mutation.SetExpiryMonth(v)
	return _c
}

// SetNillableExpiryMonth sets the "expiry_month" field if the given value is not nil.
func (_c *CertificateCreate) SetNillableExpiryMonth(v *certificate.ExpiryMonth) *CertificateCreate {
	if v != nil {
		_c.SetExpiryMonth(*v)
	}
	return _c
}

// SetExpiryYear sets the "expiry_year" field.
func (_c *CertificateCreate) SetExpiryYear(v int) *CertificateCreate {
	_c.mutation.SetExpiryYear(v)
	return _c
}

// SetNillableExpiryYear sets the "expiry_year" field if the given value is not nil.
func (_c *CertificateCreate) SetNillableExpiryYear(v *int) *CertificateCreate {
	if v != nil {
		_c.SetExpiryYear(*v)
	}
	return _c
}

// SetCredentialID sets the "credential_id" field.
func (_c *CertificateCreate) SetCredentialID(v string) *CertificateCreate {
	_c.mutation.SetCredentialID(v)
	return _c
}

// SetNillableCredentialID sets the "credential_id" field if the given value is not nil.
func (_c *CertificateCreate) SetNillableCredentialID(v *string) *CertificateCreate {
	if v != nil {
		_c.SetCredentialID(*v)
	}
	return _c
}

// SetCredentialURL sets the "credential_url" field.
func (_c *CertificateCreate) SetCredentialURL(v string) *CertificateCreate {
	_c.mutation.SetCredentialURL(v)
	return _c
}

// SetNillableCredentialURL sets the "credential_url" field if the given value is not nil.
func (_c *CertificateCreate) SetNillableCredentialURL(v *string) *CertificateCreate {
	if v != nil {
		_c.SetCredentialURL(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *CertificateCreate) SetDescription(v string) *CertificateCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CertificateCreate) SetNillableDescription(v *string) *CertificateCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CertificateCreate) SetCreatedAt(v time.Time) *CertificateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CertificateCreate) SetNillableCreatedAt(v *time.Time) *CertificateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CertificateCreate) SetUpdatedAt(v time.Time) *CertificateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CertificateCreate) SetNillableUpdatedAt(v *time.Time) *CertificateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CertificateCreate) SetID(v uuid.UUID) *CertificateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CertificateCreate) SetNillableID(v *uuid.UUID) *CertificateCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the CertificateMutation object of the builder.
func (_c *CertificateCreate) Mutation() *CertificateMutation {
	return _c.mutation
}

// Save creates the Certificate in the database.
func (_c *CertificateCreate) Save(ctx context.Context) (*Certificate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CertificateCreate) SaveX(ctx context.Context) *Certificate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CertificateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CertificateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CertificateCreate) defaults() {
	if _, ok := _c.mutation.IssueYear(); !ok {
		v := certificate.DefaultIssueYear
		_c.mutation.SetIssueYear(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := certificate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := certificate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := certificate.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CertificateCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Certificate.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := certificate.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Certificate.title": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Issuer(); ok {
		if err := certificate.IssuerValidator(v); err != nil {
			return &ValidationError{Name: "issuer", err: fmt.Errorf(`ent: validator failed for field "Certificate.issuer": %w`, err)}
		}
	}
	if v, ok := _c.mutation.IssueMonth(); ok {
		if err := certificate.IssueMonthValidator(v); err != nil {
			return &ValidationError{Name: "issue_month", err: fmt.Errorf(`ent: validator failed for field "Certificate.issue_month": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IssueYear(); !ok {
		return &ValidationError{Name: "issue_year", err: errors.New(`ent: missing required field "Certificate.issue_year"`)}
	}
	if v, ok := _c.mutation.ExpiryMonth(); ok {
		if err := certificate.ExpiryMonthValidator(v); err != nil {
			return &ValidationError{Name: "expiry_month", err: fmt.Errorf(`ent: validator failed for field "Certificate.expiry_month": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CredentialID(); ok {
		if err := certificate.CredentialIDValidator(v); err != nil {
			return &ValidationError{Name: "credential_id", err: fmt.Errorf(`ent: validator failed for field "Certificate.credential_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CredentialURL(); ok {
		if err := certificate.CredentialURLValidator(v); err != nil {
			return &ValidationError{Name: "credential_url", err: fmt.Errorf(`ent: validator failed for field "Certificate.credential_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Certificate.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Certificate.updated_at"`)}
	}
	return nil
}

func (_c *CertificateCreate) sqlSave(ctx context.Context) (*Certificate, error) {
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

func (_c *CertificateCreate) createSpec() (*Certificate, *sqlgraph.CreateSpec) {
	var (
		_node = &Certificate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(certificate.Table, sqlgraph.NewFieldSpec(certificate.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(certificate.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Issuer(); ok {
		_spec.SetField(certificate.FieldIssuer, field.TypeString, value)
		_node.Issuer = value
	}
	if value, ok := _c.mutation.IssueMonth(); ok {
		_spec.SetField(certificate.FieldIssueMonth, field.TypeEnum, value)
		_node.IssueMonth = value
	}
	if value, ok := _c.mutation.IssueYear(); ok {
		_spec.SetField(certificate.FieldIssueYear, field.TypeInt, value)
		_node.IssueYear = value
	}
	if value, ok := _c.mutation.ExpiryMonth(); ok {
		_spec.SetField(certificate.FieldExpiryMonth, field.TypeEnum, value)
		_node.ExpiryMonth = value
	}
	if value, ok := _c.mutation.ExpiryYear(); ok {
		_spec.SetField(certificate.FieldExpiryYear, field.TypeInt, value)
		_node.ExpiryYear = value
	}
	if value, ok := _c.mutation.CredentialID(); ok {
		_spec.SetField(certificate.FieldCredentialID, field.TypeString, value)
		_node.CredentialID = value
	}
	if value, ok := _c.mutation.CredentialURL(); ok {
		_spec.SetField(certificate.FieldCredentialURL, field.TypeString, value)
		_node.CredentialURL = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(certificate.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(certificate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(certificate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CertificateCreateBulk is the builder for creating many Certificate entities in bulk.
type CertificateCreateBulk struct {
	config
	err      error
	builders []*CertificateCreate
}

// Save creates the Certificate entities in the database.
func (_c *CertificateCreateBulk) Save(ctx context.Context) ([]*Certificate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Certificate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CertificateMutation)
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
func (_c *CertificateCreateBulk) SaveX(ctx context.Context) []*Certificate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CertificateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CertificateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
