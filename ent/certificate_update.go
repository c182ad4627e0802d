// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-api/ent/certificate"
	"portfolio-api/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CertificateUpdate is the builder for updating Certificate entities.
type CertificateUpdate struct {
	config
	hooks    []Hook
	mutation *CertificateMutation
}

// Where appends a list predicates to the CertificateUpdate builder.
func (_u *CertificateUpdate) Where(ps ...predicate.Certificate) *CertificateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CertificateUpdate) SetTitle(v string) *CertificateUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CertificateUpdate) SetNillableTitle(v *string) *CertificateUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetIssuer sets the "issuer" field.
func (_u *CertificateUpdate) SetIssuer(v string) *CertificateUpdate {
	_u.mutation.SetIssuer(v)
	return _u
}

// SetNillableIssuer sets the "issuer" field if the given value is not nil.
func (_u *CertificateUpdate) SetNillableIssuer(v *string) *CertificateUpdate {
	if v != nil {
		_u.SetIssuer(*v)
	}
	return _u
}

// ClearIssuer clears the value of the "issuer" field.
func (_u *CertificateUpdate) ClearIssuer() *CertificateUpdate {
	_u.mutation.ClearIssuer()
	return _u
}

// SetIssueMonth sets the "issue_month" field.
func (_u *CertificateUpdate) SetIssueMonth(v certificate.IssueMonth) *CertificateUpdate {
	_u.mutation.SetIssueMonth(v)
	return _u
}

// SetNillableIssueMonth sets the "issue_month" field if the given value is not nil.
func (_u *CertificateUpdate) SetNillableIssueMonth(v *certificate.IssueMonth) *CertificateUpdate {
	if v != nil {
		_u.SetIssueMonth(*v)
	}
	return _u
}

// ClearIssueMonth clears the value of the "issue_month" field.
func (_u *CertificateUpdate) ClearIssueMonth() *CertificateUpdate {
	_u.mutation.ClearIssueMonth()
	return _u
}

// SetIssueYear sets the "issue_year" field.
func (_u *CertificateUpdate) SetIssueYear(v int) *CertificateUpdate {
	_u.mutation.ResetIssueYear()
	_u.mutation.SetIssueYear(v)
	return _u
}

// SetNillableIssueYear sets the "issue_year" field if the given value is not nil.
func (_u *CertificateUpdate) SetNillableIssueYear(v *int) *CertificateUpdate {
	if v != nil {
		_u.SetIssueYear(*v)
	}
	return _u
}

// AddIssueYear adds value to the "issue_year" field.
func (_u *CertificateUpdate) AddIssueYear(v int) *CertificateUpdate {
	_u.mutation.AddIssueYear(v)
	return _u
}

// SetExpiryMonth sets the "expiry_month" field.
func (_u *CertificateUpdate) SetExpiryMonth(v certificate.ExpiryMonth) *CertificateUpdate {
	_u.mutation.SetExpiryMonth(v)
	return _u
}

// SetNillableExpiryMonth sets the "expiry_month" field if the given value is not nil.
func (_u *CertificateUpdate) SetNillableExpiryMonth(v *certificate.ExpiryMonth) *CertificateUpdate {
	if v != nil {
		_u.SetExpiryMonth(*v)
	}
	return _u
}

// ClearExpiryMonth clears the value of the "expiry_month" field.
func (_u *CertificateUpdate) ClearExpiryMonth() *CertificateUpdate {
	_u.mutation.ClearExpiryMonth()
	return _u
}

// SetExpiryYear sets the "expiry_year" field.
func (_u *CertificateUpdate) SetExpiryYear(v int) *CertificateUpdate {
	_u.mutation.ResetExpiryYear()
	_u.mutation.SetExpiryYear(v)
	return _u
}

// SetNillableExpiryYear sets the "expiry_year" field if the given value is not nil.
func (_u *CertificateUpdate) SetNillableExpiryYear(v *int) *CertificateUpdate {
	if v != nil {
		_u.SetExpiryYear(*v)
	}
	return _u
}

// AddExpiryYear adds value to the "expiry_year" field.
func (_u *CertificateUpdate) AddExpiryYear(v int) *CertificateUpdate {
	_u.mutation.AddExpiryYear(v)
	return _u
}

// ClearExpiryYear clears the value of the "expiry_year" field.
func (_u *CertificateUpdate) ClearExpiryYear() *CertificateUpdate {
	_u.mutation.ClearExpiryYear()
	return _u
}

// SetCredentialID sets the "credential_id" field.
func (_u *CertificateUpdate) SetCredentialID(v string) *CertificateUpdate {
	_u.mutation.SetCredentialID(v)
	return _u
}

// SetNillableCredentialID sets the "credential_id" field if the given value is not nil.
func (_u *CertificateUpdate) SetNillableCredentialID(v *string) *CertificateUpdate {
	if v != nil {
		_u.SetCredentialID(*v)
	}
	return _u
}

// ClearCredentialID clears the value of the "credential_id" field.
func (_u *CertificateUpdate) ClearCredentialID() *CertificateUpdate {
	_u.mutation.ClearCredentialID()
	return _u
}

// SetCredentialURL sets the "credential_url" field.
func (_u *CertificateUpdate) SetCredentialURL(v string) *CertificateUpdate {
	_u.mutation.SetCredentialURL(v)
	return _u
}

// SetNillableCredentialURL sets the "credential_url" field if the given value is not nil.
func (_u *CertificateUpdate) SetNillableCredentialURL(v *string) *CertificateUpdate {
	if v != nil {
		_u.SetCredentialURL(*v)
	}
	return _u
}

// ClearCredentialURL clears the value of the "credential_url" field.
func (_u *CertificateUpdate) ClearCredentialURL() *CertificateUpdate {
	_u.mutation.ClearCredentialURL()
	return _u
}

// SetDescription sets the "description" field.
func (_u *CertificateUpdate) SetDescription(v string) *CertificateUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CertificateUpdate) SetNillableDescription(v *string) *CertificateUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CertificateUpdate) ClearDescription() *CertificateUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CertificateUpdate) SetUpdatedAt(v time.Time) *CertificateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CertificateMutation object of the builder.
func (_u *CertificateUpdate) Mutation() *CertificateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CertificateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CertificateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CertificateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CertificateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CertificateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := certificate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CertificateUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := certificate.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Certificate.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Issuer(); ok {
		if err := certificate.IssuerValidator(v); err != nil {
			return &ValidationError{Name: "issuer", err: fmt.Errorf(`ent: validator failed for field "Certificate.issuer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IssueMonth(); ok {
		if err := certificate.IssueMonthValidator(v); err != nil {
			return &ValidationError{Name: "issue_month", err: fmt.Errorf(`ent: validator failed for field "Certificate.issue_month": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpiryMonth(); ok {
		if err := certificate.ExpiryMonthValidator(v); err != nil {
			return &ValidationError{Name: "expiry_month", err: fmt.Errorf(`ent: validator failed for field "Certificate.expiry_month": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CredentialID(); ok {
		if err := certificate.CredentialIDValidator(v); err != nil {
			return &ValidationError{Name: "credential_id", err: fmt.Errorf(`ent: validator failed for field "Certificate.credential_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CredentialURL(); ok {
		if err := certificate.CredentialURLValidator(v); err != nil {
			return &ValidationError{Name: "credential_url", err: fmt.Errorf(`ent: validator failed for field "Certificate.credential_url": %w`, err)}
		}
	}
	return nil
}

func (_u *CertificateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(certificate.Table, certificate.Columns, sqlgraph.NewFieldSpec(certificate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(certificate.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Issuer(); ok {
		_spec.SetField(certificate.FieldIssuer, field.TypeString, value)
	}
	if _u.mutation.IssuerCleared() {
		_spec.ClearField(certificate.FieldIssuer, field.TypeString)
	}
	if value, ok := _u.mutation.IssueMonth(); ok {
		_spec.SetField(certificate.FieldIssueMonth, field.TypeEnum, value)
	}
	if _u.mutation.IssueMonthCleared() {
		_spec.ClearField(certificate.FieldIssueMonth, field.TypeEnum)
	}
	if value, ok := _u.mutation.IssueYear(); ok {
		_spec.SetField(certificate.FieldIssueYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIssueYear(); ok {
		_spec.AddField(certificate.FieldIssueYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiryMonth(); ok {
		_spec.SetField(certificate.FieldExpiryMonth, field.TypeEnum, value)
	}
	if _u.mutation.ExpiryMonthCleared() {
		_spec.ClearField(certificate.FieldExpiryMonth, field.TypeEnum)
	}
	if value, ok := _u.mutation.ExpiryYear(); ok {
		_spec.SetField(certificate.FieldExpiryYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExpiryYear(); ok {
		_spec.AddField(certificate.FieldExpiryYear, field.TypeInt, value)
	}
	if _u.mutation.ExpiryYearCleared() {
		_spec.ClearField(certificate.FieldExpiryYear, field.TypeInt)
	}
	if value, ok := _u.mutation.CredentialID(); ok {
		_spec.SetField(certificate.FieldCredentialID, field.TypeString, value)
	}
	if _u.mutation.CredentialIDCleared() {
		_spec.ClearField(certificate.FieldCredentialID, field.TypeString)
	}
	if value, ok := _u.mutation.CredentialURL(); ok {
		_spec.SetField(certificate.FieldCredentialURL, field.TypeString, value)
	}
	if _u.mutation.CredentialURLCleared() {
		_spec.ClearField(certificate.FieldCredentialURL, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(certificate.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(certificate.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(certificate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{certificate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CertificateUpdateOne is the builder for updating a single Certificate entity.
type CertificateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CertificateMutation
}

// SetTitle sets the "title" field.
func (_u *CertificateUpdateOne) SetTitle(v string) *CertificateUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CertificateUpdateOne) SetNillableTitle(v *string) *CertificateUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetIssuer sets the "issuer" field.
func (_u *CertificateUpdateOne) SetIssuer(v string) *CertificateUpdateOne {
	_u.mutation.SetIssuer(v)
	return _u
}

// SetNillableIssuer sets the "issuer" field if the given value is not nil.
func (_u *CertificateUpdateOne) SetNillableIssuer(v *string) *CertificateUpdateOne {
	if v != nil {
		_u.SetIssuer(*v)
	}
	return _u
}

// ClearIssuer clears the value of the "issuer" field.
func (_u *CertificateUpdateOne) ClearIssuer() *CertificateUpdateOne {
	_u.mutation.ClearIssuer()
	return _u
}

// SetIssueMonth sets the "issue_month" field.
func (_u *CertificateUpdateOne) SetIssueMonth(v certificate.IssueMonth) *CertificateUpdateOne {
	_u.mutation.SetIssueMonth(v)
	return _u
}

// SetNillableIssueMonth sets the "issue_month" field if the given value is not nil.
func (_u *CertificateUpdateOne) SetNillableIssueMonth(v *certificate.IssueMonth) *CertificateUpdateOne {
	if v != nil {
		_u.SetIssueMonth(*v)
	}
	return _u
}

// ClearIssueMonth clears the value of the "issue_month" field.
func (_u *CertificateUpdateOne) ClearIssueMonth() *CertificateUpdateOne {
	_u.mutation.ClearIssueMonth()
	return _u
}

// SetIssueYear sets the "issue_year" field.
func (_u *CertificateUpdateOne) SetIssueYear(v int) *CertificateUpdateOne {
	_u.mutation.ResetIssueYear()
	_u.mutation.SetIssueYear(v)
	return _u
}

// SetNillableIssueYear sets the "issue_year" field if the given value is not nil.
func (_u *CertificateUpdateOne) SetNillableIssueYear(v *int) *CertificateUpdateOne {
	if v != nil {
		_u.SetIssueYear(*v)
	}
	return _u
}

// AddIssueYear adds value to the "issue_year" field.
func (_u *CertificateUpdateOne) AddIssueYear(v int) *CertificateUpdateOne {
	_u.mutation.AddIssueYear(v)
	return _u
}

// SetExpiryMonth sets the "expiry_month" field.
func (_u *CertificateUpdateOne) SetExpiryMonth(v certificate.ExpiryMonth) *CertificateUpdateOne {
	_u.mutation.SetExpiryMonth(v)
	return _u
}

// SetNillableExpiryMonth sets the "expiry_month" field if the given value is not nil.
func (_u *CertificateUpdateOne) SetNillableExpiryMonth(v *certificate.ExpiryMonth) *CertificateUpdateOne {
	if v != nil {
		_u.SetExpiryMonth(*v)
	}
	return _u
}

// ClearExpiryMonth clears the value of the "expiry_month" field.
func (_u *CertificateUpdateOne) ClearExpiryMonth() *CertificateUpdateOne {
	_u.mutation.ClearExpiryMonth()
	return _u
}

// SetExpiryYear sets the "expiry_year" field.
func (_u *CertificateUpdateOne) SetExpiryYear(v int) *CertificateUpdateOne {
	_u.mutation.ResetExpiryYear()
	_u.mutation.SetExpiryYear(v)
	return _u
}

// SetNillableExpiryYear sets the "expiry_year" field if the given value is not nil.
func (_u *CertificateUpdateOne) SetNillableExpiryYear(v *int) *CertificateUpdateOne {
	if v != nil {
		_u.SetExpiryYear(*v)
	}
	return _u
}

// AddExpiryYear adds value to the "expiry_year" field.
func (_u *CertificateUpdateOne) AddExpiryYear(v int) *CertificateUpdateOne {
	_u.mutation.AddExpiryYear(v)
	return _u
}

// ClearExpiryYear clears the value of the "expiry_year" field.
func (_u *CertificateUpdateOne) ClearExpiryYear() *CertificateUpdateOne {
	_u.mutation.ClearExpiryYear()
	return _u
}

// SetCredentialID sets the "credential_id" field.
func (_u *CertificateUpdateOne) SetCredentialID(v string) *CertificateUpdateOne {
	_u.mutation.SetCredentialID(v)
	return _u
}

// SetNillableCredentialID sets the "credential_id" field if the given value is not nil.
func (_u *CertificateUpdateOne) SetNillableCredentialID(v *string) *CertificateUpdateOne {
	if v != nil {
		_u.SetCredentialID(*v)
	}
	return _u
}

// ClearCredentialID clears the value of the "credential_id" field.
func (_u *CertificateUpdateOne) ClearCredentialID() *CertificateUpdateOne {
	_u.mutation.ClearCredentialID()
	return _u
}

// SetCredentialURL sets the "credential_url" field.
func (_u *CertificateUpdateOne) SetCredentialURL(v string) *CertificateUpdateOne {
	_u.mutation.SetCredentialURL(v)
	return _u
}

// SetNillableCredentialURL sets the "credential_url" field if the given value is not nil.
func (_u *CertificateUpdateOne) SetNillableCredentialURL(v *string) *CertificateUpdateOne {
	if v != nil {
		_u.SetCredentialURL(*v)
	}
	return _u
}

// ClearCredentialURL clears the value of the "credential_url" field.
func (_u *CertificateUpdateOne) ClearCredentialURL() *CertificateUpdateOne {
	_u.mutation.ClearCredentialURL()
	return _u
}

// SetDescription sets the "description" field.
func (_u *CertificateUpdateOne) SetDescription(v string) *CertificateUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CertificateUpdateOne) SetNillableDescription(v *string) *CertificateUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CertificateUpdateOne) ClearDescription() *CertificateUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CertificateUpdateOne) SetUpdatedAt(v time.Time) *CertificateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CertificateMutation object of the builder.
func (_u *CertificateUpdateOne) Mutation() *CertificateMutation {
	return _u.mutation
}

// Where appends a list predicates to the CertificateUpdate builder.
func (_u *CertificateUpdateOne) Where(ps ...predicate.Certificate) *CertificateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CertificateUpdateOne) Select(field string, fields ...string) *CertificateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Certificate entity.
func (_u *CertificateUpdateOne) Save(ctx context.Context) (*Certificate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CertificateUpdateOne) SaveX(ctx context.Context) *Certificate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CertificateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CertificateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CertificateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := certificate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CertificateUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := certificate.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Certificate.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Issuer(); ok {
		if err := certificate.IssuerValidator(v); err != nil {
			return &ValidationError{Name: "issuer", err: fmt.Errorf(`ent: validator failed for field "Certificate.issuer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IssueMonth(); ok {
		if err := certificate.IssueMonthValidator(v); err != nil {
			return &ValidationError{Name: "issue_month", err: fmt.Errorf(`ent: validator failed for field "Certificate.issue_month": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpiryMonth(); ok {
		if err := certificate.ExpiryMonthValidator(v); err != nil {
			return &ValidationError{Name: "expiry_month", err: fmt.Errorf(`ent: validator failed for field "Certificate.expiry_month": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CredentialID(); ok {
		if err := certificate.CredentialIDValidator(v); err != nil {
			return &ValidationError{Name: "credential_id", err: fmt.Errorf(`ent: validator failed for field "Certificate.credential_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CredentialURL(); ok {
		if err := certificate.CredentialURLValidator(v); err != nil {
			return &ValidationError{Name: "credential_url", err: fmt.Errorf(`ent: validator failed for field "Certificate.credential_url": %w`, err)}
		}
	}
	return nil
}

func (_u *CertificateUpdateOne) sqlSave(ctx context.Context) (_node *Certificate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(certificate.Table, certificate.Columns, sqlgraph.NewFieldSpec(certificate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Certificate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, certificate.FieldID)
		for _, f := range fields {
			if !certificate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != certificate.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(certificate.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Issuer(); ok {
		_spec.SetField(certificate.FieldIssuer, field.TypeString, value)
	}
	if _u.mutation.IssuerCleared() {
		_spec.ClearField(certificate.FieldIssuer, field.TypeString)
	}
	if value, ok := _u.mutation.IssueMonth(); ok {
		_spec.SetField(certificate.FieldIssueMonth, field.TypeEnum, value)
	}
	if _u.mutation.IssueMonthCleared() {
		_spec.ClearField(certificate.FieldIssueMonth, field.TypeEnum)
	}
	if value, ok := _u.mutation.IssueYear(); ok {
		_spec.SetField(certificate.FieldIssueYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIssueYear(); ok {
		_spec.AddField(certificate.FieldIssueYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiryMonth(); ok {
		_spec.SetField(certificate.FieldExpiryMonth, field.TypeEnum, value)
	}
	if _u.mutation.ExpiryMonthCleared() {
		_spec.ClearField(certificate.FieldExpiryMonth, field.TypeEnum)
	}
	if value, ok := _u.mutation.ExpiryYear(); ok {
		_spec.SetField(certificate.FieldExpiryYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExpiryYear(); ok {
		_spec.AddField(certificate.FieldExpiryYear, field.TypeInt, value)
	}
	if _u.mutation.ExpiryYearCleared() {
		_spec.ClearField(certificate.FieldExpiryYear, field.TypeInt)
	}
	if value, ok := _u.mutation.CredentialID(); ok {
		_spec.SetField(certificate.FieldCredentialID, field.TypeString, value)
	}
	if _u.mutation.CredentialIDCleared() {
		_spec.ClearField(certificate.FieldCredentialID, field.TypeString)
	}
	if value, ok := _u.mutation.CredentialURL(); ok {
		_spec.SetField(certificate.FieldCredentialURL, field.TypeString, value)
	}
	if _u.mutation.CredentialURLCleared() {
		_spec.ClearField(certificate.FieldCredentialURL, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(certificate.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(certificate.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(certificate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Certificate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{certificate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
