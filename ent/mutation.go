// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-api/ent/certificate"
	"portfolio-api/ent/chatbotsetting"
	"portfolio-api/ent/contactmessage"
	"portfolio-api/ent/customform"
	"portfolio-api/ent/iconvariant"
	"portfolio-api/ent/predicate"
	"portfolio-api/ent/seoentry"
	"portfolio-api/ent/task"
	"portfolio-api/ent/techdetail"
	"portfolio-api/ent/techicon"
	"portfolio-api/ent/technology"
	"portfolio-api/ent/user"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCertificate    = "Certificate"
	TypeChatbotSetting = "ChatbotSetting"
	TypeContactMessage = "ContactMessage"
	TypeCustomForm     = "CustomForm"
	TypeIconVariant    = "IconVariant"
	TypeSeoEntry       = "SeoEntry"
	TypeTask           = "Task"
	TypeTechDetail     = "TechDetail"
	TypeTechIcon       = "TechIcon"
	TypeTechnology     = "Technology"
	TypeUser           = "User"
)

// CertificateMutation represents an operation that mutates the Certificate nodes in the graph.
type CertificateMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	title          *string
	issuer         *string
	issue_month    *certificate.IssueMonth
	issue_year     *int
	addissue_year  *int
	expiry_month   *certificate.ExpiryMonth
	expiry_year    *int
	addexpiry_year *int
	credential_id  *string
	credential_url *string
	description    *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Certificate, error)
	predicates     []predicate.Certificate
}

var _ ent.Mutation = (*CertificateMutation)(nil)

// certificateOption allows management of the mutation configuration using functional options.
type certificateOption func(*CertificateMutation)

// newCertificateMutation creates new mutation for the Certificate entity.
func newCertificateMutation(c config, op Op, opts ...certificateOption) *CertificateMutation {
	m := &CertificateMutation{
		config:        c,
		op:            op,
		typ:           TypeCertificate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCertificateID sets the ID field of the mutation.
func withCertificateID(id uuid.UUID) certificateOption {
	return func(m *CertificateMutation) {
		var (
			err   error
			once  sync.Once
			value *Certificate
		)
		m.oldValue = func(ctx context.Context) (*Certificate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Certificate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCertificate sets the old Certificate of the mutation.
func withCertificate(node *Certificate) certificateOption {
	return func(m *CertificateMutation) {
		m.oldValue = func(context.Context) (*Certificate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CertificateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CertificateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Certificate entities.
func (m *CertificateMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CertificateMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CertificateMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Certificate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *CertificateMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CertificateMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Certificate entity.
// If the Certificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CertificateMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *CertificateMutation) ResetTitle() {
	m.title = nil
}

// SetIssuer sets the "issuer" field.
func (m *CertificateMutation) SetIssuer(s string) {
	m.issuer = &s
}

// Issuer returns the value of the "issuer" field in the mutation.
func (m *CertificateMutation) Issuer() (r string, exists bool) {
	v := m.issuer
	if v == nil {
		return
	}
	return *v, true
}

// OldIssuer returns the old "issuer" field's value of the Certificate entity.
// If the Certificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CertificateMutation) OldIssuer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssuer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssuer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssuer: %w", err)
	}
	return oldValue.Issuer, nil
}

// ClearIssuer clears the value of the "issuer" field.
func (m *CertificateMutation) ClearIssuer() {
	m.issuer = nil
	m.clearedFields[certificate.FieldIssuer] = struct{}{}
}

// IssuerCleared returns if the "issuer" field was cleared in this mutation.
func (m *CertificateMutation) IssuerCleared() bool {
	_, ok := m.clearedFields[certificate.FieldIssuer]
	return ok
}

// ResetIssuer resets all changes to the "issuer" field.
func (m *CertificateMutation) ResetIssuer() {
	m.issuer = nil
	delete(m.clearedFields, certificate.FieldIssuer)
}

// SetIssueMonth sets the "issue_month" field.
func (m *CertificateMutation) SetIssueMonth(cm certificate.IssueMonth) {
	m.issue_month = &cm
}

// IssueMonth returns the value of the "issue_month" field in the mutation.
func (m *CertificateMutation) IssueMonth() (r certificate.IssueMonth, exists bool) {
	v := m.issue_month
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueMonth returns the old "issue_month" field's value of the Certificate entity.
// If the Certificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CertificateMutation) OldIssueMonth(ctx context.Context) (v certificate.IssueMonth, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueMonth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueMonth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueMonth: %w", err)
	}
	return oldValue.IssueMonth, nil
}

// ClearIssueMonth clears the value of the "issue_month" field.
func (m *CertificateMutation) ClearIssueMonth() {
	m.issue_month = nil
	m.clearedFields[certificate.FieldIssueMonth] = struct{}{}
}

// IssueMonthCleared returns if the "issue_month" field was cleared in this mutation.
func (m *CertificateMutation) IssueMonthCleared() bool {
	_, ok := m.clearedFields[certificate.FieldIssueMonth]
	return ok
}

// ResetIssueMonth resets all changes to the "issue_month" field.
func (m *CertificateMutation) ResetIssueMonth() {
	m.issue_month = nil
	delete(m.clearedFields, certificate.FieldIssueMonth)
}

// SetIssueYear sets the "issue_year" field.
func (m *CertificateMutation) SetIssueYear(i int) {
	m.issue_year = &i
	m.addissue_year = nil
}

// IssueYear returns the value of the "issue_year" field in the mutation.
func (m *CertificateMutation) IssueYear() (r int, exists bool) {
	v := m.issue_year
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueYear returns the old "issue_year" field's value of the Certificate entity.
// If the Certificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CertificateMutation) OldIssueYear(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueYear: %w", err)
	}
	return oldValue.IssueYear, nil
}

// AddIssueYear adds i to the "issue_year" field.
func (m *CertificateMutation) AddIssueYear(i int) {
	if m.addissue_year != nil {
		*m.addissue_year += i
	} else {
		m.addissue_year = &i
	}
}

// AddedIssueYear returns the value that was added to the "issue_year" field in this mutation.
func (m *CertificateMutation) AddedIssueYear() (r int, exists bool) {
	v := m.addissue_year
	if v == nil {
		return
	}
	return *v, true
}

// ResetIssueYear resets all changes to the "issue_year" field.
func (m *CertificateMutation) ResetIssueYear() {
	m.issue_year = nil
	m.addissue_year = nil
}

// SetExpiryMonth sets the "expiry_month" field.
func (m *CertificateMutation) SetExpiryMonth(cm certificate.ExpiryMonth) {
	m.expiry_month = &cm
}

// ExpiryMonth returns the value of the "expiry_month" field in the mutation.
func (m *CertificateMutation) ExpiryMonth() (r certificate.ExpiryMonth, exists bool) {
	v := m.expiry_month
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiryMonth returns the old "expiry_month" field's value of the Certificate entity.
// If the Certificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CertificateMutation) OldExpiryMonth(ctx context.Context) (v certificate.ExpiryMonth, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiryMonth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiryMonth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiryMonth: %w", err)
	}
	return oldValue.ExpiryMonth, nil
}

// ClearExpiryMonth clears the value of the "expiry_month" field.
func (m *CertificateMutation) ClearExpiryMonth() {
	m.expiry_month = nil
	m.clearedFields[certificate.FieldExpiryMonth] = struct{}{}
}

// ExpiryMonthCleared returns if the "expiry_month" field was cleared in this mutation.
func (m *CertificateMutation) ExpiryMonthCleared() bool {
	_, ok := m.clearedFields[certificate.FieldExpiryMonth]
	return ok
}

// ResetExpiryMonth resets all changes to the "expiry_month" field.
func (m *CertificateMutation) ResetExpiryMonth() {
	m.expiry_month = nil
	delete(m.clearedFields, certificate.FieldExpiryMonth)
}

// SetExpiryYear sets the "expiry_year" field.
func (m *CertificateMutation) SetExpiryYear(i int) {
	m.expiry_year = &i
	m.addexpiry_year = nil
}

// ExpiryYear returns the value of the "expiry_year" field in the mutation.
func (m *CertificateMutation) ExpiryYear() (r int, exists bool) {
	v := m.expiry_year
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiryYear returns the old "expiry_year" field's value of the Certificate entity.
// If the Certificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CertificateMutation) OldExpiryYear(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiryYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiryYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiryYear: %w", err)
	}
	return oldValue.ExpiryYear, nil
}

// AddExpiryYear adds i to the "expiry_year" field.
func (m *CertificateMutation) AddExpiryYear(i int) {
	if m.addexpiry_year != nil {
		*m.addexpiry_year += i
	} else {
		m.addexpiry_year = &i
	}
}

// AddedExpiryYear returns the value that was added to the "expiry_year" field in this mutation.
func (m *CertificateMutation) AddedExpiryYear() (r int, exists bool) {
	v := m.addexpiry_year
	if v == nil {
		return
	}
	return *v, true
}

// ClearExpiryYear clears the value of the "expiry_year" field.
func (m *CertificateMutation) ClearExpiryYear() {
	m.expiry_year = nil
	m.addexpiry_year = nil
	m.clearedFields[certificate.FieldExpiryYear] = struct{}{}
}

// ExpiryYearCleared returns if the "expiry_year" field was cleared in this mutation.
func (m *CertificateMutation) ExpiryYearCleared() bool {
	_, ok := m.clearedFields[certificate.FieldExpiryYear]
	return ok
}

// ResetExpiryYear resets all changes to the "expiry_year" field.
func (m *CertificateMutation) ResetExpiryYear() {
	m.expiry_year = nil
	m.addexpiry_year = nil
	delete(m.clearedFields, certificate.FieldExpiryYear)
}

// SetCredentialID sets the "credential_id" field.
func (m *CertificateMutation) SetCredentialID(s string) {
	m.credential_id = &s
}

// CredentialID returns the value of the "credential_id" field in the mutation.
func (m *CertificateMutation) CredentialID() (r string, exists bool) {
	v := m.credential_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCredentialID returns the old "credential_id" field's value of the Certificate entity.
// If the Certificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CertificateMutation) OldCredentialID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCredentialID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCredentialID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCredentialID: %w", err)
	}
	return oldValue.CredentialID, nil
}

// ClearCredentialID clears the value of the "credential_id" field.
func (m *CertificateMutation) ClearCredentialID() {
	m.credential_id = nil
	m.clearedFields[certificate.FieldCredentialID] = struct{}{}
}

// CredentialIDCleared returns if the "credential_id" field was cleared in this mutation.
func (m *CertificateMutation) CredentialIDCleared() bool {
	_, ok := m.clearedFields[certificate.FieldCredentialID]
	return ok
}

// ResetCredentialID resets all changes to the "credential_id" field.
func (m *CertificateMutation) ResetCredentialID() {
	m.credential_id = nil
	delete(m.clearedFields, certificate.FieldCredentialID)
}

// SetCredentialURL sets the "credential_url" field.
func (m *CertificateMutation) SetCredentialURL(s string) {
	m.credential_url = &s
}

// CredentialURL returns the value of the "credential_url" field in the mutation.
func (m *CertificateMutation) CredentialURL() (r string, exists bool) {
	v := m.credential_url
	if v == nil {
		return
	}
	return *v, true
}

// OldCredentialURL returns the old "credential_url" field's value of the Certificate entity.
// If the Certificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CertificateMutation) OldCredentialURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCredentialURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCredentialURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCredentialURL: %w", err)
	}
	return oldValue.CredentialURL, nil
}

// ClearCredentialURL clears the value of the "credential_url" field.
func (m *CertificateMutation) ClearCredentialURL() {
	m.credential_url = nil
	m.clearedFields[certificate.FieldCredentialURL] = struct{}{}
}

// CredentialURLCleared returns if the "credential_url" field was cleared in this mutation.
func (m *CertificateMutation) CredentialURLCleared() bool {
	_, ok := m.clearedFields[certificate.FieldCredentialURL]
	return ok
}

// ResetCredentialURL resets all changes to the "credential_url" field.
func (m *CertificateMutation) ResetCredentialURL() {
	m.credential_url = nil
	delete(m.clearedFields, certificate.FieldCredentialURL)
}

// SetDescription sets the "description" field.
func (m *CertificateMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CertificateMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Certificate entity.
// If the Certificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CertificateMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CertificateMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[certificate.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CertificateMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[certificate.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CertificateMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, certificate.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *CertificateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CertificateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Certificate entity.
// If the Certificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CertificateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CertificateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CertificateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CertificateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Certificate entity.
// If the Certificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CertificateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CertificateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CertificateMutation builder.
func (m *CertificateMutation) Where(ps ...predicate.Certificate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CertificateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CertificateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Certificate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CertificateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CertificateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Certificate).
func (m *CertificateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CertificateMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.title != nil {
		fields = append(fields, certificate.FieldTitle)
	}
	if m.issuer != nil {
		fields = append(fields, certificate.FieldIssuer)
	}
	if m.issue_month != nil {
		fields = append(fields, certificate.FieldIssueMonth)
	}
	if m.issue_year != nil {
		fields = append(fields, certificate.FieldIssueYear)
	}
	if m.expiry_month != nil {
		fields = append(fields, certificate.FieldExpiryMonth)
	}
	if m.expiry_year != nil {
		fields = append(fields, certificate.FieldExpiryYear)
	}
	if m.credential_id != nil {
		fields = append(fields, certificate.FieldCredentialID)
	}
	if m.credential_url != nil {
		fields = append(fields, certificate.FieldCredentialURL)
	}
	if m.description != nil {
		fields = append(fields, certificate.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, certificate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, certificate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CertificateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case certificate.FieldTitle:
		return m.Title()
	case certificate.FieldIssuer:
		return m.Issuer()
	case certificate.FieldIssueMonth:
		return m.IssueMonth()
	case certificate.FieldIssueYear:
		return m.IssueYear()
	case certificate.FieldExpiryMonth:
		return m.ExpiryMonth()
	case certificate.FieldExpiryYear:
		return m.ExpiryYear()
	case certificate.FieldCredentialID:
		return m.CredentialID()
	case certificate.FieldCredentialURL:
		return m.CredentialURL()
	case certificate.FieldDescription:
		return m.Description()
	case certificate.FieldCreatedAt:
		return m.CreatedAt()
	case certificate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CertificateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case certificate.FieldTitle:
		return m.OldTitle(ctx)
	case certificate.FieldIssuer:
		return m.OldIssuer(ctx)
	case certificate.FieldIssueMonth:
		return m.OldIssueMonth(ctx)
	case certificate.FieldIssueYear:
		return m.OldIssueYear(ctx)
	case certificate.FieldExpiryMonth:
		return m.OldExpiryMonth(ctx)
	case certificate.FieldExpiryYear:
		return m.OldExpiryYear(ctx)
	case certificate.FieldCredentialID:
		return m.OldCredentialID(ctx)
	case certificate.FieldCredentialURL:
		return m.OldCredentialURL(ctx)
	case certificate.FieldDescription:
		return m.OldDescription(ctx)
	case certificate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case certificate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Certificate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CertificateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case certificate.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case certificate.FieldIssuer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssuer(v)
		return nil
	case certificate.FieldIssueMonth:
		v, ok := value.(certificate.IssueMonth)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueMonth(v)
		return nil
	case certificate.FieldIssueYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueYear(v)
		return nil
	case certificate.FieldExpiryMonth:
		v, ok := value.(certificate.ExpiryMonth)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiryMonth(v)
		return nil
	case certificate.FieldExpiryYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiryYear(v)
		return nil
	case certificate.FieldCredentialID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCredentialID(v)
		return nil
	case certificate.FieldCredentialURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCredentialURL(v)
		return nil
	case certificate.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case certificate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case certificate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Certificate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CertificateMutation) AddedFields() []string {
	var fields []string
	if m.addissue_year != nil {
		fields = append(fields, certificate.FieldIssueYear)
	}
	if m.addexpiry_year != nil {
		fields = append(fields, certificate.FieldExpiryYear)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CertificateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case certificate.FieldIssueYear:
		return m.AddedIssueYear()
	case certificate.FieldExpiryYear:
		return m.AddedExpiryYear()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CertificateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case certificate.FieldIssueYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIssueYear(v)
		return nil
	case certificate.FieldExpiryYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExpiryYear(v)
		return nil
	}
	return fmt.Errorf("unknown Certificate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CertificateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(certificate.FieldIssuer) {
		fields = append(fields, certificate.FieldIssuer)
	}
	if m.FieldCleared(certificate.FieldIssueMonth) {
		fields = append(fields, certificate.FieldIssueMonth)
	}
	if m.FieldCleared(certificate.FieldExpiryMonth) {
		fields = append(fields, certificate.FieldExpiryMonth)
	}
	if m.FieldCleared(certificate.FieldExpiryYear) {
		fields = append(fields, certificate.FieldExpiryYear)
	}
	if m.FieldCleared(certificate.FieldCredentialID) {
		fields = append(fields, certificate.FieldCredentialID)
	}
	if m.FieldCleared(certificate.FieldCredentialURL) {
		fields = append(fields, certificate.FieldCredentialURL)
	}
	if m.FieldCleared(certificate.FieldDescription) {
		fields = append(fields, certificate.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CertificateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CertificateMutation) ClearField(name string) error {
	switch name {
	case certificate.FieldIssuer:
		m.ClearIssuer()
		return nil
	case certificate.FieldIssueMonth:
		m.ClearIssueMonth()
		return nil
	case certificate.FieldExpiryMonth:
		m.ClearExpiryMonth()
		return nil
	case certificate.FieldExpiryYear:
		m.ClearExpiryYear()
		return nil
	case certificate.FieldCredentialID:
		m.ClearCredentialID()
		return nil
	case certificate.FieldCredentialURL:
		m.ClearCredentialURL()
		return nil
	case certificate.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Certificate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CertificateMutation) ResetField(name string) error {
	switch name {
	case certificate.FieldTitle:
		m.ResetTitle()
		return nil
	case certificate.FieldIssuer:
		m.ResetIssuer()
		return nil
	case certificate.FieldIssueMonth:
		m.ResetIssueMonth()
		return nil
	case certificate.FieldIssueYear:
		m.ResetIssueYear()
		return nil
	case certificate.FieldExpiryMonth:
		m.ResetExpiryMonth()
		return nil
	case certificate.FieldExpiryYear:
		m.ResetExpiryYear()
		return nil
	case certificate.FieldCredentialID:
		m.ResetCredentialID()
		return nil
	case certificate.FieldCredentialURL:
		m.ResetCredentialURL()
		return nil
	case certificate.FieldDescription:
		m.ResetDescription()
		return nil
	case certificate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case certificate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Certificate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CertificateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CertificateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CertificateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CertificateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CertificateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CertificateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CertificateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Certificate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CertificateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Certificate edge %s", name)
}

// ChatbotSettingMutation represents an operation that mutates the ChatbotSetting nodes in the graph.
type ChatbotSettingMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	enabled        *bool
	model          *string
	temperature    *float64
	addtemperature *float64
	system_prompt  *string
	knowledge      *map[string]interface{}
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ChatbotSetting, error)
	predicates     []predicate.ChatbotSetting
}

var _ ent.Mutation = (*ChatbotSettingMutation)(nil)

// chatbotsettingOption allows management of the mutation configuration using functional options.
type chatbotsettingOption func(*ChatbotSettingMutation)

// newChatbotSettingMutation creates new mutation for the ChatbotSetting entity.
func newChatbotSettingMutation(c config, op Op, opts ...chatbotsettingOption) *ChatbotSettingMutation {
	m := &ChatbotSettingMutation{
		config:        c,
		op:            op,
		typ:           TypeChatbotSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatbotSettingID sets the ID field of the mutation.
func withChatbotSettingID(id uuid.UUID) chatbotsettingOption {
	return func(m *ChatbotSettingMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatbotSetting
		)
		m.oldValue = func(ctx context.Context) (*ChatbotSetting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatbotSetting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatbotSetting sets the old ChatbotSetting of the mutation.
func withChatbotSetting(node *ChatbotSetting) chatbotsettingOption {
	return func(m *ChatbotSettingMutation) {
		m.oldValue = func(context.Context) (*ChatbotSetting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatbotSettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatbotSettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatbotSetting entities.
func (m *ChatbotSettingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatbotSettingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatbotSettingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatbotSetting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEnabled sets the "enabled" field.
func (m *ChatbotSettingMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *ChatbotSettingMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the ChatbotSetting entity.
// If the ChatbotSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatbotSettingMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *ChatbotSettingMutation) ResetEnabled() {
	m.enabled = nil
}

// SetModel sets the "model" field.
func (m *ChatbotSettingMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *ChatbotSettingMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the ChatbotSetting entity.
// If the ChatbotSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatbotSettingMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *ChatbotSettingMutation) ResetModel() {
	m.model = nil
}

// SetTemperature sets the "temperature" field.
func (m *ChatbotSettingMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *ChatbotSettingMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the ChatbotSetting entity.
// If the ChatbotSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatbotSettingMutation) OldTemperature(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *ChatbotSettingMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *ChatbotSettingMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *ChatbotSettingMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
}

// SetSystemPrompt sets the "system_prompt" field.
func (m *ChatbotSettingMutation) SetSystemPrompt(s string) {
	m.system_prompt = &s
}

// SystemPrompt returns the value of the "system_prompt" field in the mutation.
func (m *ChatbotSettingMutation) SystemPrompt() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPrompt returns the old "system_prompt" field's value of the ChatbotSetting entity.
// If the ChatbotSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatbotSettingMutation) OldSystemPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPrompt: %w", err)
	}
	return oldValue.SystemPrompt, nil
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (m *ChatbotSettingMutation) ClearSystemPrompt() {
	m.system_prompt = nil
	m.clearedFields[chatbotsetting.FieldSystemPrompt] = struct{}{}
}

// SystemPromptCleared returns if the "system_prompt" field was cleared in this mutation.
func (m *ChatbotSettingMutation) SystemPromptCleared() bool {
	_, ok := m.clearedFields[chatbotsetting.FieldSystemPrompt]
	return ok
}

// ResetSystemPrompt resets all changes to the "system_prompt" field.
func (m *ChatbotSettingMutation) ResetSystemPrompt() {
	m.system_prompt = nil
	delete(m.clearedFields, chatbotsetting.FieldSystemPrompt)
}

// SetKnowledge sets the "knowledge" field.
func (m *ChatbotSettingMutation) SetKnowledge(value map[string]interface{}) {
	m.knowledge = &value
}

// Knowledge returns the value of the "knowledge" field in the mutation.
func (m *ChatbotSettingMutation) Knowledge() (r map[string]interface{}, exists bool) {
	v := m.knowledge
	if v == nil {
		return
	}
	return *v, true
}

// OldKnowledge returns the old "knowledge" field's value of the ChatbotSetting entity.
// If the ChatbotSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatbotSettingMutation) OldKnowledge(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKnowledge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKnowledge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKnowledge: %w", err)
	}
	return oldValue.Knowledge, nil
}

// ClearKnowledge clears the value of the "knowledge" field.
func (m *ChatbotSettingMutation) ClearKnowledge() {
	m.knowledge = nil
	m.clearedFields[chatbotsetting.FieldKnowledge] = struct{}{}
}

// KnowledgeCleared returns if the "knowledge" field was cleared in this mutation.
func (m *ChatbotSettingMutation) KnowledgeCleared() bool {
	_, ok := m.clearedFields[chatbotsetting.FieldKnowledge]
	return ok
}

// ResetKnowledge resets all changes to the "knowledge" field.
func (m *ChatbotSettingMutation) ResetKnowledge() {
	m.knowledge = nil
	delete(m.clearedFields, chatbotsetting.FieldKnowledge)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChatbotSettingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChatbotSettingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ChatbotSetting entity.
// If the ChatbotSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatbotSettingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChatbotSettingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ChatbotSettingMutation builder.
func (m *ChatbotSettingMutation) Where(ps ...predicate.ChatbotSetting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatbotSettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatbotSettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatbotSetting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatbotSettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatbotSettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatbotSetting).
func (m *ChatbotSettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatbotSettingMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.enabled != nil {
		fields = append(fields, chatbotsetting.FieldEnabled)
	}
	if m.model != nil {
		fields = append(fields, chatbotsetting.FieldModel)
	}
	if m.temperature != nil {
		fields = append(fields, chatbotsetting.FieldTemperature)
	}
	if m.system_prompt != nil {
		fields = append(fields, chatbotsetting.FieldSystemPrompt)
	}
	if m.knowledge != nil {
		fields = append(fields, chatbotsetting.FieldKnowledge)
	}
	if m.updated_at != nil {
		fields = append(fields, chatbotsetting.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatbotSettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatbotsetting.FieldEnabled:
		return m.Enabled()
	case chatbotsetting.FieldModel:
		return m.Model()
	case chatbotsetting.FieldTemperature:
		return m.Temperature()
	case chatbotsetting.FieldSystemPrompt:
		return m.SystemPrompt()
	case chatbotsetting.FieldKnowledge:
		return m.Knowledge()
	case chatbotsetting.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatbotSettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatbotsetting.FieldEnabled:
		return m.OldEnabled(ctx)
	case chatbotsetting.FieldModel:
		return m.OldModel(ctx)
	case chatbotsetting.FieldTemperature:
		return m.OldTemperature(ctx)
	case chatbotsetting.FieldSystemPrompt:
		return m.OldSystemPrompt(ctx)
	case chatbotsetting.FieldKnowledge:
		return m.OldKnowledge(ctx)
	case chatbotsetting.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatbotSetting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatbotSettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatbotsetting.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case chatbotsetting.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case chatbotsetting.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case chatbotsetting.FieldSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPrompt(v)
		return nil
	case chatbotsetting.FieldKnowledge:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKnowledge(v)
		return nil
	case chatbotsetting.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatbotSetting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatbotSettingMutation) AddedFields() []string {
	var fields []string
	if m.addtemperature != nil {
		fields = append(fields, chatbotsetting.FieldTemperature)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatbotSettingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chatbotsetting.FieldTemperature:
		return m.AddedTemperature()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatbotSettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chatbotsetting.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	}
	return fmt.Errorf("unknown ChatbotSetting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatbotSettingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatbotsetting.FieldSystemPrompt) {
		fields = append(fields, chatbotsetting.FieldSystemPrompt)
	}
	if m.FieldCleared(chatbotsetting.FieldKnowledge) {
		fields = append(fields, chatbotsetting.FieldKnowledge)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatbotSettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatbotSettingMutation) ClearField(name string) error {
	switch name {
	case chatbotsetting.FieldSystemPrompt:
		m.ClearSystemPrompt()
		return nil
	case chatbotsetting.FieldKnowledge:
		m.ClearKnowledge()
		return nil
	}
	return fmt.Errorf("unknown ChatbotSetting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatbotSettingMutation) ResetField(name string) error {
	switch name {
	case chatbotsetting.FieldEnabled:
		m.ResetEnabled()
		return nil
	case chatbotsetting.FieldModel:
		m.ResetModel()
		return nil
	case chatbotsetting.FieldTemperature:
		m.ResetTemperature()
		return nil
	case chatbotsetting.FieldSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case chatbotsetting.FieldKnowledge:
		m.ResetKnowledge()
		return nil
	case chatbotsetting.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatbotSetting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatbotSettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatbotSettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatbotSettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatbotSettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatbotSettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatbotSettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatbotSettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChatbotSetting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatbotSettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChatbotSetting edge %s", name)
}

// ContactMessageMutation represents an operation that mutates the ContactMessage nodes in the graph.
type ContactMessageMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	email         *string
	subject       *string
	body          *string
	read          *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ContactMessage, error)
	predicates    []predicate.ContactMessage
}

var _ ent.Mutation = (*ContactMessageMutation)(nil)

// contactmessageOption allows management of the mutation configuration using functional options.
type contactmessageOption func(*ContactMessageMutation)

// newContactMessageMutation creates new mutation for the ContactMessage entity.
func newContactMessageMutation(c config, op Op, opts ...contactmessageOption) *ContactMessageMutation {
	m := &ContactMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeContactMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContactMessageID sets the ID field of the mutation.
func withContactMessageID(id uuid.UUID) contactmessageOption {
	return func(m *ContactMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ContactMessage
		)
		m.oldValue = func(ctx context.Context) (*ContactMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContactMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContactMessage sets the old ContactMessage of the mutation.
func withContactMessage(node *ContactMessage) contactmessageOption {
	return func(m *ContactMessageMutation) {
		m.oldValue = func(context.Context) (*ContactMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContactMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContactMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContactMessage entities.
func (m *ContactMessageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContactMessageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContactMessageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContactMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ContactMessageMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ContactMessageMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ContactMessage entity.
// If the ContactMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMessageMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ContactMessageMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *ContactMessageMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ContactMessageMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the ContactMessage entity.
// If the ContactMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMessageMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *ContactMessageMutation) ResetEmail() {
	m.email = nil
}

// SetSubject sets the "subject" field.
func (m *ContactMessageMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *ContactMessageMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the ContactMessage entity.
// If the ContactMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMessageMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *ContactMessageMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[contactmessage.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *ContactMessageMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[contactmessage.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *ContactMessageMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, contactmessage.FieldSubject)
}

// SetBody sets the "body" field.
func (m *ContactMessageMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *ContactMessageMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the ContactMessage entity.
// If the ContactMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMessageMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *ContactMessageMutation) ResetBody() {
	m.body = nil
}

// SetRead sets the "read" field.
func (m *ContactMessageMutation) SetRead(b bool) {
	m.read = &b
}

// Read returns the value of the "read" field in the mutation.
func (m *ContactMessageMutation) Read() (r bool, exists bool) {
	v := m.read
	if v == nil {
		return
	}
	return *v, true
}

// OldRead returns the old "read" field's value of the ContactMessage entity.
// If the ContactMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMessageMutation) OldRead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRead: %w", err)
	}
	return oldValue.Read, nil
}

// ResetRead resets all changes to the "read" field.
func (m *ContactMessageMutation) ResetRead() {
	m.read = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ContactMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContactMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ContactMessage entity.
// If the ContactMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContactMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ContactMessageMutation builder.
func (m *ContactMessageMutation) Where(ps ...predicate.ContactMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContactMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContactMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContactMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContactMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContactMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContactMessage).
func (m *ContactMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContactMessageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, contactmessage.FieldName)
	}
	if m.email != nil {
		fields = append(fields, contactmessage.FieldEmail)
	}
	if m.subject != nil {
		fields = append(fields, contactmessage.FieldSubject)
	}
	if m.body != nil {
		fields = append(fields, contactmessage.FieldBody)
	}
	if m.read != nil {
		fields = append(fields, contactmessage.FieldRead)
	}
	if m.created_at != nil {
		fields = append(fields, contactmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContactMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contactmessage.FieldName:
		return m.Name()
	case contactmessage.FieldEmail:
		return m.Email()
	case contactmessage.FieldSubject:
		return m.Subject()
	case contactmessage.FieldBody:
		return m.Body()
	case contactmessage.FieldRead:
		return m.Read()
	case contactmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContactMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contactmessage.FieldName:
		return m.OldName(ctx)
	case contactmessage.FieldEmail:
		return m.OldEmail(ctx)
	case contactmessage.FieldSubject:
		return m.OldSubject(ctx)
	case contactmessage.FieldBody:
		return m.OldBody(ctx)
	case contactmessage.FieldRead:
		return m.OldRead(ctx)
	case contactmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ContactMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contactmessage.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case contactmessage.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case contactmessage.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case contactmessage.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case contactmessage.FieldRead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRead(v)
		return nil
	case contactmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ContactMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContactMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContactMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ContactMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContactMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contactmessage.FieldSubject) {
		fields = append(fields, contactmessage.FieldSubject)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContactMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContactMessageMutation) ClearField(name string) error {
	switch name {
	case contactmessage.FieldSubject:
		m.ClearSubject()
		return nil
	}
	return fmt.Errorf("unknown ContactMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContactMessageMutation) ResetField(name string) error {
	switch name {
	case contactmessage.FieldName:
		m.ResetName()
		return nil
	case contactmessage.FieldEmail:
		m.ResetEmail()
		return nil
	case contactmessage.FieldSubject:
		m.ResetSubject()
		return nil
	case contactmessage.FieldBody:
		m.ResetBody()
		return nil
	case contactmessage.FieldRead:
		m.ResetRead()
		return nil
	case contactmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ContactMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContactMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContactMessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContactMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContactMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContactMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContactMessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContactMessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ContactMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContactMessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ContactMessage edge %s", name)
}

// CustomFormMutation represents an operation that mutates the CustomForm nodes in the graph.
type CustomFormMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	title         *string
	slug          *string
	fields        *[]map[string]interface{}
	appendfields  []map[string]interface{}
	active        *bool
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CustomForm, error)
	predicates    []predicate.CustomForm
}

var _ ent.Mutation = (*CustomFormMutation)(nil)

// customformOption allows management of the mutation configuration using functional options.
type customformOption func(*CustomFormMutation)

// newCustomFormMutation creates new mutation for the CustomForm entity.
func newCustomFormMutation(c config, op Op, opts ...customformOption) *CustomFormMutation {
	m := &CustomFormMutation{
		config:        c,
		op:            op,
		typ:           TypeCustomForm,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCustomFormID sets the ID field of the mutation.
func withCustomFormID(id uuid.UUID) customformOption {
	return func(m *CustomFormMutation) {
		var (
			err   error
			once  sync.Once
			value *CustomForm
		)
		m.oldValue = func(ctx context.Context) (*CustomForm, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CustomForm.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCustomForm sets the old CustomForm of the mutation.
func withCustomForm(node *CustomForm) customformOption {
	return func(m *CustomFormMutation) {
		m.oldValue = func(context.Context) (*CustomForm, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CustomFormMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CustomFormMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CustomForm entities.
func (m *CustomFormMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CustomFormMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CustomFormMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CustomForm.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *CustomFormMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CustomFormMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the CustomForm entity.
// If the CustomForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomFormMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *CustomFormMutation) ResetTitle() {
	m.title = nil
}

// SetSlug sets the "slug" field.
func (m *CustomFormMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *CustomFormMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the CustomForm entity.
// If the CustomForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomFormMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *CustomFormMutation) ResetSlug() {
	m.slug = nil
}

// SetFields sets the "fields" field.
func (m *CustomFormMutation) SetFields(value []map[string]interface{}) {
	m.fields = &value
	m.appendfields = nil
}

// GetFields returns the value of the "fields" field in the mutation.
func (m *CustomFormMutation) GetFields() (r []map[string]interface{}, exists bool) {
	v := m.fields
	if v == nil {
		return
	}
	return *v, true
}

// OldFields returns the old "fields" field's value of the CustomForm entity.
// If the CustomForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomFormMutation) OldFields(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFields: %w", err)
	}
	return oldValue.Fields, nil
}

// AppendFields adds value to the "fields" field.
func (m *CustomFormMutation) AppendFields(value []map[string]interface{}) {
	m.appendfields = append(m.appendfields, value...)
}

// AppendedFields returns the list of values that were appended to the "fields" field in this mutation.
func (m *CustomFormMutation) AppendedFields() ([]map[string]interface{}, bool) {
	if len(m.appendfields) == 0 {
		return nil, false
	}
	return m.appendfields, true
}

// ClearFields clears the value of the "fields" field.
func (m *CustomFormMutation) ClearFields() {
	m.fields = nil
	m.appendfields = nil
	m.clearedFields[customform.FieldFields] = struct{}{}
}

// FieldsCleared returns if the "fields" field was cleared in this mutation.
func (m *CustomFormMutation) FieldsCleared() bool {
	_, ok := m.clearedFields[customform.FieldFields]
	return ok
}

// ResetFields resets all changes to the "fields" field.
func (m *CustomFormMutation) ResetFields() {
	m.fields = nil
	m.appendfields = nil
	delete(m.clearedFields, customform.FieldFields)
}

// SetActive sets the "active" field.
func (m *CustomFormMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *CustomFormMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the CustomForm entity.
// If the CustomForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomFormMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *CustomFormMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CustomFormMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CustomFormMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CustomForm entity.
// If the CustomForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomFormMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CustomFormMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CustomFormMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CustomFormMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CustomForm entity.
// If the CustomForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomFormMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CustomFormMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CustomFormMutation builder.
func (m *CustomFormMutation) Where(ps ...predicate.CustomForm) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CustomFormMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CustomFormMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CustomForm, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CustomFormMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CustomFormMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CustomForm).
func (m *CustomFormMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CustomFormMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.title != nil {
		fields = append(fields, customform.FieldTitle)
	}
	if m.slug != nil {
		fields = append(fields, customform.FieldSlug)
	}
	if m.fields != nil {
		fields = append(fields, customform.FieldFields)
	}
	if m.active != nil {
		fields = append(fields, customform.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, customform.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, customform.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CustomFormMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case customform.FieldTitle:
		return m.Title()
	case customform.FieldSlug:
		return m.Slug()
	case customform.FieldFields:
		return m.GetFields()
	case customform.FieldActive:
		return m.Active()
	case customform.FieldCreatedAt:
		return m.CreatedAt()
	case customform.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CustomFormMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case customform.FieldTitle:
		return m.OldTitle(ctx)
	case customform.FieldSlug:
		return m.OldSlug(ctx)
	case customform.FieldFields:
		return m.OldFields(ctx)
	case customform.FieldActive:
		return m.OldActive(ctx)
	case customform.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case customform.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CustomForm field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CustomFormMutation) SetField(name string, value ent.Value) error {
	switch name {
	case customform.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case customform.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case customform.FieldFields:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFields(v)
		return nil
	case customform.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case customform.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case customform.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CustomForm field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CustomFormMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CustomFormMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CustomFormMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CustomForm numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CustomFormMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(customform.FieldFields) {
		fields = append(fields, customform.FieldFields)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CustomFormMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CustomFormMutation) ClearField(name string) error {
	switch name {
	case customform.FieldFields:
		m.ClearFields()
		return nil
	}
	return fmt.Errorf("unknown CustomForm nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CustomFormMutation) ResetField(name string) error {
	switch name {
	case customform.FieldTitle:
		m.ResetTitle()
		return nil
	case customform.FieldSlug:
		m.ResetSlug()
		return nil
	case customform.FieldFields:
		m.ResetFields()
		return nil
	case customform.FieldActive:
		m.ResetActive()
		return nil
	case customform.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case customform.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CustomForm field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CustomFormMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CustomFormMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CustomFormMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CustomFormMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CustomFormMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CustomFormMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CustomFormMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CustomForm unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CustomFormMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CustomForm edge %s", name)
}

// IconVariantMutation represents an operation that mutates the IconVariant nodes in the graph.
type IconVariantMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*IconVariant, error)
	predicates    []predicate.IconVariant
}

var _ ent.Mutation = (*IconVariantMutation)(nil)

// iconvariantOption allows management of the mutation configuration using functional options.
type iconvariantOption func(*IconVariantMutation)

// newIconVariantMutation creates new mutation for the IconVariant entity.
func newIconVariantMutation(c config, op Op, opts ...iconvariantOption) *IconVariantMutation {
	m := &IconVariantMutation{
		config:        c,
		op:            op,
		typ:           TypeIconVariant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIconVariantID sets the ID field of the mutation.
func withIconVariantID(id uuid.UUID) iconvariantOption {
	return func(m *IconVariantMutation) {
		var (
			err   error
			once  sync.Once
			value *IconVariant
		)
		m.oldValue = func(ctx context.Context) (*IconVariant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IconVariant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIconVariant sets the old IconVariant of the mutation.
func withIconVariant(node *IconVariant) iconvariantOption {
	return func(m *IconVariantMutation) {
		m.oldValue = func(context.Context) (*IconVariant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IconVariantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IconVariantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IconVariant entities.
func (m *IconVariantMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IconVariantMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IconVariantMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IconVariant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *IconVariantMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *IconVariantMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the IconVariant entity.
// If the IconVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IconVariantMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *IconVariantMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *IconVariantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IconVariantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the IconVariant entity.
// If the IconVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IconVariantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IconVariantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IconVariantMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IconVariantMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the IconVariant entity.
// If the IconVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IconVariantMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *IconVariantMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the IconVariantMutation builder.
func (m *IconVariantMutation) Where(ps ...predicate.IconVariant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IconVariantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IconVariantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IconVariant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IconVariantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IconVariantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IconVariant).
func (m *IconVariantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IconVariantMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, iconvariant.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, iconvariant.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, iconvariant.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IconVariantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case iconvariant.FieldName:
		return m.Name()
	case iconvariant.FieldCreatedAt:
		return m.CreatedAt()
	case iconvariant.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IconVariantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case iconvariant.FieldName:
		return m.OldName(ctx)
	case iconvariant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case iconvariant.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IconVariant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IconVariantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case iconvariant.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case iconvariant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case iconvariant.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IconVariant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IconVariantMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IconVariantMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IconVariantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown IconVariant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IconVariantMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IconVariantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IconVariantMutation) ClearField(name string) error {
	return fmt.Errorf("unknown IconVariant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IconVariantMutation) ResetField(name string) error {
	switch name {
	case iconvariant.FieldName:
		m.ResetName()
		return nil
	case iconvariant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case iconvariant.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown IconVariant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IconVariantMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IconVariantMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IconVariantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IconVariantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IconVariantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IconVariantMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IconVariantMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IconVariant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IconVariantMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IconVariant edge %s", name)
}

// SeoEntryMutation represents an operation that mutates the SeoEntry nodes in the graph.
type SeoEntryMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	_path         *string
	title         *string
	description   *string
	keywords      *string
	og_image      *string
	change_freq   *seoentry.ChangeFreq
	priority      *float64
	addpriority   *float64
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SeoEntry, error)
	predicates    []predicate.SeoEntry
}

var _ ent.Mutation = (*SeoEntryMutation)(nil)

// seoentryOption allows management of the mutation configuration using functional options.
type seoentryOption func(*SeoEntryMutation)

// newSeoEntryMutation creates new mutation for the SeoEntry entity.
func newSeoEntryMutation(c config, op Op, opts ...seoentryOption) *SeoEntryMutation {
	m := &SeoEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeSeoEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSeoEntryID sets the ID field of the mutation.
func withSeoEntryID(id uuid.UUID) seoentryOption {
	return func(m *SeoEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *SeoEntry
		)
		m.oldValue = func(ctx context.Context) (*SeoEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SeoEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSeoEntry sets the old SeoEntry of the mutation.
func withSeoEntry(node *SeoEntry) seoentryOption {
	return func(m *SeoEntryMutation) {
		m.oldValue = func(context.Context) (*SeoEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SeoEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SeoEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SeoEntry entities.
func (m *SeoEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SeoEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SeoEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SeoEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPath sets the "path" field.
func (m *SeoEntryMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *SeoEntryMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the SeoEntry entity.
// If the SeoEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeoEntryMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *SeoEntryMutation) ResetPath() {
	m._path = nil
}

// SetTitle sets the "title" field.
func (m *SeoEntryMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SeoEntryMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the SeoEntry entity.
// If the SeoEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeoEntryMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *SeoEntryMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[seoentry.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *SeoEntryMutation) TitleCleared() bool {
	_, ok := m.clearedFields[seoentry.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *SeoEntryMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, seoentry.FieldTitle)
}

// SetDescription sets the "description" field.
func (m *SeoEntryMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SeoEntryMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the SeoEntry entity.
// If the SeoEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeoEntryMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SeoEntryMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[seoentry.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SeoEntryMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[seoentry.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SeoEntryMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, seoentry.FieldDescription)
}

// SetKeywords sets the "keywords" field.
func (m *SeoEntryMutation) SetKeywords(s string) {
	m.keywords = &s
}

// Keywords returns the value of the "keywords" field in the mutation.
func (m *SeoEntryMutation) Keywords() (r string, exists bool) {
	v := m.keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldKeywords returns the old "keywords" field's value of the SeoEntry entity.
// If the SeoEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeoEntryMutation) OldKeywords(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeywords: %w", err)
	}
	return oldValue.Keywords, nil
}

// ClearKeywords clears the value of the "keywords" field.
func (m *SeoEntryMutation) ClearKeywords() {
	m.keywords = nil
	m.clearedFields[seoentry.FieldKeywords] = struct{}{}
}

// KeywordsCleared returns if the "keywords" field was cleared in this mutation.
func (m *SeoEntryMutation) KeywordsCleared() bool {
	_, ok := m.clearedFields[seoentry.FieldKeywords]
	return ok
}

// ResetKeywords resets all changes to the "keywords" field.
func (m *SeoEntryMutation) ResetKeywords() {
	m.keywords = nil
	delete(m.clearedFields, seoentry.FieldKeywords)
}

// SetOgImage sets the "og_image" field.
func (m *SeoEntryMutation) SetOgImage(s string) {
	m.og_image = &s
}

// OgImage returns the value of the "og_image" field in the mutation.
func (m *SeoEntryMutation) OgImage() (r string, exists bool) {
	v := m.og_image
	if v == nil {
		return
	}
	return *v, true
}

// OldOgImage returns the old "og_image" field's value of the SeoEntry entity.
// If the SeoEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeoEntryMutation) OldOgImage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOgImage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOgImage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOgImage: %w", err)
	}
	return oldValue.OgImage, nil
}

// ClearOgImage clears the value of the "og_image" field.
func (m *SeoEntryMutation) ClearOgImage() {
	m.og_image = nil
	m.clearedFields[seoentry.FieldOgImage] = struct{}{}
}

// OgImageCleared returns if the "og_image" field was cleared in this mutation.
func (m *SeoEntryMutation) OgImageCleared() bool {
	_, ok := m.clearedFields[seoentry.FieldOgImage]
	return ok
}

// ResetOgImage resets all changes to the "og_image" field.
func (m *SeoEntryMutation) ResetOgImage() {
	m.og_image = nil
	delete(m.clearedFields, seoentry.FieldOgImage)
}

// SetChangeFreq sets the "change_freq" field.
func (m *SeoEntryMutation) SetChangeFreq(sf seoentry.ChangeFreq) {
	m.change_freq = &sf
}

// ChangeFreq returns the value of the "change_freq" field in the mutation.
func (m *SeoEntryMutation) ChangeFreq() (r seoentry.ChangeFreq, exists bool) {
	v := m.change_freq
	if v == nil {
		return
	}
	return *v, true
}

// OldChangeFreq returns the old "change_freq" field's value of the SeoEntry entity.
// If the SeoEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeoEntryMutation) OldChangeFreq(ctx context.Context) (v seoentry.ChangeFreq, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangeFreq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangeFreq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangeFreq: %w", err)
	}
	return oldValue.ChangeFreq, nil
}

// ResetChangeFreq resets all changes to the "change_freq" field.
func (m *SeoEntryMutation) ResetChangeFreq() {
	m.change_freq = nil
}

// SetPriority sets the "priority" field.
func (m *SeoEntryMutation) SetPriority(f float64) {
	m.priority = &f
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *SeoEntryMutation) Priority() (r float64, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the SeoEntry entity.
// If the SeoEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeoEntryMutation) OldPriority(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds f to the "priority" field.
func (m *SeoEntryMutation) AddPriority(f float64) {
	if m.addpriority != nil {
		*m.addpriority += f
	} else {
		m.addpriority = &f
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *SeoEntryMutation) AddedPriority() (r float64, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *SeoEntryMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SeoEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SeoEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SeoEntry entity.
// If the SeoEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeoEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SeoEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SeoEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SeoEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SeoEntry entity.
// If the SeoEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeoEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SeoEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SeoEntryMutation builder.
func (m *SeoEntryMutation) Where(ps ...predicate.SeoEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SeoEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SeoEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SeoEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SeoEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SeoEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SeoEntry).
func (m *SeoEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SeoEntryMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m._path != nil {
		fields = append(fields, seoentry.FieldPath)
	}
	if m.title != nil {
		fields = append(fields, seoentry.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, seoentry.FieldDescription)
	}
	if m.keywords != nil {
		fields = append(fields, seoentry.FieldKeywords)
	}
	if m.og_image != nil {
		fields = append(fields, seoentry.FieldOgImage)
	}
	if m.change_freq != nil {
		fields = append(fields, seoentry.FieldChangeFreq)
	}
	if m.priority != nil {
		fields = append(fields, seoentry.FieldPriority)
	}
	if m.created_at != nil {
		fields = append(fields, seoentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, seoentry.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SeoEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case seoentry.FieldPath:
		return m.Path()
	case seoentry.FieldTitle:
		return m.Title()
	case seoentry.FieldDescription:
		return m.Description()
	case seoentry.FieldKeywords:
		return m.Keywords()
	case seoentry.FieldOgImage:
		return m.OgImage()
	case seoentry.FieldChangeFreq:
		return m.ChangeFreq()
	case seoentry.FieldPriority:
		return m.Priority()
	case seoentry.FieldCreatedAt:
		return m.CreatedAt()
	case seoentry.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SeoEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case seoentry.FieldPath:
		return m.OldPath(ctx)
	case seoentry.FieldTitle:
		return m.OldTitle(ctx)
	case seoentry.FieldDescription:
		return m.OldDescription(ctx)
	case seoentry.FieldKeywords:
		return m.OldKeywords(ctx)
	case seoentry.FieldOgImage:
		return m.OldOgImage(ctx)
	case seoentry.FieldChangeFreq:
		return m.OldChangeFreq(ctx)
	case seoentry.FieldPriority:
		return m.OldPriority(ctx)
	case seoentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case seoentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SeoEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SeoEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case seoentry.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case seoentry.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case seoentry.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case seoentry.FieldKeywords:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeywords(v)
		return nil
	case seoentry.FieldOgImage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOgImage(v)
		return nil
	case seoentry.FieldChangeFreq:
		v, ok := value.(seoentry.ChangeFreq)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangeFreq(v)
		return nil
	case seoentry.FieldPriority:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case seoentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case seoentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SeoEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SeoEntryMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, seoentry.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SeoEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case seoentry.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SeoEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case seoentry.FieldPriority:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown SeoEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SeoEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(seoentry.FieldTitle) {
		fields = append(fields, seoentry.FieldTitle)
	}
	if m.FieldCleared(seoentry.FieldDescription) {
		fields = append(fields, seoentry.FieldDescription)
	}
	if m.FieldCleared(seoentry.FieldKeywords) {
		fields = append(fields, seoentry.FieldKeywords)
	}
	if m.FieldCleared(seoentry.FieldOgImage) {
		fields = append(fields, seoentry.FieldOgImage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SeoEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SeoEntryMutation) ClearField(name string) error {
	switch name {
	case seoentry.FieldTitle:
		m.ClearTitle()
		return nil
	case seoentry.FieldDescription:
		m.ClearDescription()
		return nil
	case seoentry.FieldKeywords:
		m.ClearKeywords()
		return nil
	case seoentry.FieldOgImage:
		m.ClearOgImage()
		return nil
	}
	return fmt.Errorf("unknown SeoEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SeoEntryMutation) ResetField(name string) error {
	switch name {
	case seoentry.FieldPath:
		m.ResetPath()
		return nil
	case seoentry.FieldTitle:
		m.ResetTitle()
		return nil
	case seoentry.FieldDescription:
		m.ResetDescription()
		return nil
	case seoentry.FieldKeywords:
		m.ResetKeywords()
		return nil
	case seoentry.FieldOgImage:
		m.ResetOgImage()
		return nil
	case seoentry.FieldChangeFreq:
		m.ResetChangeFreq()
		return nil
	case seoentry.FieldPriority:
		m.ResetPriority()
		return nil
	case seoentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case seoentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SeoEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SeoEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SeoEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SeoEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SeoEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SeoEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SeoEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SeoEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SeoEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SeoEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SeoEntry edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	title         *string
	_done         *bool
	position      *int
	addposition   *int
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Task, error)
	predicates    []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id uuid.UUID) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetDone sets the "done" field.
func (m *TaskMutation) SetDone(b bool) {
	m._done = &b
}

// Done returns the value of the "done" field in the mutation.
func (m *TaskMutation) Done() (r bool, exists bool) {
	v := m._done
	if v == nil {
		return
	}
	return *v, true
}

// OldDone returns the old "done" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDone(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDone: %w", err)
	}
	return oldValue.Done, nil
}

// ResetDone resets all changes to the "done" field.
func (m *TaskMutation) ResetDone() {
	m._done = nil
}

// SetPosition sets the "position" field.
func (m *TaskMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *TaskMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *TaskMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *TaskMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *TaskMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m._done != nil {
		fields = append(fields, task.FieldDone)
	}
	if m.position != nil {
		fields = append(fields, task.FieldPosition)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldTitle:
		return m.Title()
	case task.FieldDone:
		return m.Done()
	case task.FieldPosition:
		return m.Position()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldDone:
		return m.OldDone(ctx)
	case task.FieldPosition:
		return m.OldPosition(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldDone:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDone(v)
		return nil
	case task.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, task.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldDone:
		m.ResetDone()
		return nil
	case task.FieldPosition:
		m.ResetPosition()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Task edge %s", name)
}

// TechDetailMutation represents an operation that mutates the TechDetail nodes in the graph.
type TechDetailMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	website_url         *string
	category            *techdetail.Category
	my_stack            *bool
	is_favorite         *bool
	use_case            *string
	experience          *string
	description         *string
	comment             *string
	purchased           *bool
	year_began_using    *int
	addyear_began_using *int
	month_began_using   *techdetail.MonthBeganUsing
	skill_level         *techdetail.SkillLevel
	rating              *techdetail.Rating
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	technology          *uuid.UUID
	clearedtechnology   bool
	done                bool
	oldValue            func(context.Context) (*TechDetail, error)
	predicates          []predicate.TechDetail
}

var _ ent.Mutation = (*TechDetailMutation)(nil)

// techdetailOption allows management of the mutation configuration using functional options.
type techdetailOption func(*TechDetailMutation)

// newTechDetailMutation creates new mutation for the TechDetail entity.
func newTechDetailMutation(c config, op Op, opts ...techdetailOption) *TechDetailMutation {
	m := &TechDetailMutation{
		config:        c,
		op:            op,
		typ:           TypeTechDetail,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTechDetailID sets the ID field of the mutation.
func withTechDetailID(id uuid.UUID) techdetailOption {
	return func(m *TechDetailMutation) {
		var (
			err   error
			once  sync.Once
			value *TechDetail
		)
		m.oldValue = func(ctx context.Context) (*TechDetail, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TechDetail.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTechDetail sets the old TechDetail of the mutation.
func withTechDetail(node *TechDetail) techdetailOption {
	return func(m *TechDetailMutation) {
		m.oldValue = func(context.Context) (*TechDetail, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TechDetailMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TechDetailMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TechDetail entities.
func (m *TechDetailMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TechDetailMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TechDetailMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TechDetail.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWebsiteURL sets the "website_url" field.
func (m *TechDetailMutation) SetWebsiteURL(s string) {
	m.website_url = &s
}

// WebsiteURL returns the value of the "website_url" field in the mutation.
func (m *TechDetailMutation) WebsiteURL() (r string, exists bool) {
	v := m.website_url
	if v == nil {
		return
	}
	return *v, true
}

// OldWebsiteURL returns the old "website_url" field's value of the TechDetail entity.
// If the TechDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechDetailMutation) OldWebsiteURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebsiteURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebsiteURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebsiteURL: %w", err)
	}
	return oldValue.WebsiteURL, nil
}

// ClearWebsiteURL clears the value of the "website_url" field.
func (m *TechDetailMutation) ClearWebsiteURL() {
	m.website_url = nil
	m.clearedFields[techdetail.FieldWebsiteURL] = struct{}{}
}

// WebsiteURLCleared returns if the "website_url" field was cleared in this mutation.
func (m *TechDetailMutation) WebsiteURLCleared() bool {
	_, ok := m.clearedFields[techdetail.FieldWebsiteURL]
	return ok
}

// ResetWebsiteURL resets all changes to the "website_url" field.
func (m *TechDetailMutation) ResetWebsiteURL() {
	m.website_url = nil
	delete(m.clearedFields, techdetail.FieldWebsiteURL)
}

// SetCategory sets the "category" field.
func (m *TechDetailMutation) SetCategory(t techdetail.Category) {
	m.category = &t
}

// Category returns the value of the "category" field in the mutation.
func (m *TechDetailMutation) Category() (r techdetail.Category, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the TechDetail entity.
// If the TechDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechDetailMutation) OldCategory(ctx context.Context) (v techdetail.Category, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *TechDetailMutation) ResetCategory() {
	m.category = nil
}

// SetMyStack sets the "my_stack" field.
func (m *TechDetailMutation) SetMyStack(b bool) {
	m.my_stack = &b
}

// MyStack returns the value of the "my_stack" field in the mutation.
func (m *TechDetailMutation) MyStack() (r bool, exists bool) {
	v := m.my_stack
	if v == nil {
		return
	}
	return *v, true
}

// OldMyStack returns the old "my_stack" field's value of the TechDetail entity.
// If the TechDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechDetailMutation) OldMyStack(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMyStack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMyStack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMyStack: %w", err)
	}
	return oldValue.MyStack, nil
}

// ResetMyStack resets all changes to the "my_stack" field.
func (m *TechDetailMutation) ResetMyStack() {
	m.my_stack = nil
}

// SetIsFavorite sets the "is_favorite" field.
func (m *TechDetailMutation) SetIsFavorite(b bool) {
	m.is_favorite = &b
}

// IsFavorite returns the value of the "is_favorite" field in the mutation.
func (m *TechDetailMutation) IsFavorite() (r bool, exists bool) {
	v := m.is_favorite
	if v == nil {
		return
	}
	return *v, true
}

// OldIsFavorite returns the old "is_favorite" field's value of the TechDetail entity.
// If the TechDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechDetailMutation) OldIsFavorite(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsFavorite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsFavorite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsFavorite: %w", err)
	}
	return oldValue.IsFavorite, nil
}

// ResetIsFavorite resets all changes to the "is_favorite" field.
func (m *TechDetailMutation) ResetIsFavorite() {
	m.is_favorite = nil
}

// SetUseCase sets the "use_case" field.
func (m *TechDetailMutation) SetUseCase(s string) {
	m.use_case = &s
}

// UseCase returns the value of the "use_case" field in the mutation.
func (m *TechDetailMutation) UseCase() (r string, exists bool) {
	v := m.use_case
	if v == nil {
		return
	}
	return *v, true
}

// OldUseCase returns the old "use_case" field's value of the TechDetail entity.
// If the TechDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechDetailMutation) OldUseCase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUseCase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUseCase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUseCase: %w", err)
	}
	return oldValue.UseCase, nil
}

// ClearUseCase clears the value of the "use_case" field.
func (m *TechDetailMutation) ClearUseCase() {
	m.use_case = nil
	m.clearedFields[techdetail.FieldUseCase] = struct{}{}
}

// UseCaseCleared returns if the "use_case" field was cleared in this mutation.
func (m *TechDetailMutation) UseCaseCleared() bool {
	_, ok := m.clearedFields[techdetail.FieldUseCase]
	return ok
}

// ResetUseCase resets all changes to the "use_case" field.
func (m *TechDetailMutation) ResetUseCase() {
	m.use_case = nil
	delete(m.clearedFields, techdetail.FieldUseCase)
}

// SetExperience sets the "experience" field.
func (m *TechDetailMutation) SetExperience(s string) {
	m.experience = &s
}

// Experience returns the value of the "experience" field in the mutation.
func (m *TechDetailMutation) Experience() (r string, exists bool) {
	v := m.experience
	if v == nil {
		return
	}
	return *v, true
}

// OldExperience returns the old "experience" field's value of the TechDetail entity.
// If the TechDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechDetailMutation) OldExperience(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExperience is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExperience requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExperience: %w", err)
	}
	return oldValue.Experience, nil
}

// ClearExperience clears the value of the "experience" field.
func (m *TechDetailMutation) ClearExperience() {
	m.experience = nil
	m.clearedFields[techdetail.FieldExperience] = struct{}{}
}

// ExperienceCleared returns if the "experience" field was cleared in this mutation.
func (m *TechDetailMutation) ExperienceCleared() bool {
	_, ok := m.clearedFields[techdetail.FieldExperience]
	return ok
}

// ResetExperience resets all changes to the "experience" field.
func (m *TechDetailMutation) ResetExperience() {
	m.experience = nil
	delete(m.clearedFields, techdetail.FieldExperience)
}

// SetDescription sets the "description" field.
func (m *TechDetailMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TechDetailMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the TechDetail entity.
// If the TechDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechDetailMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TechDetailMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[techdetail.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TechDetailMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[techdetail.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TechDetailMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, techdetail.FieldDescription)
}

// SetComment sets the "comment" field.
func (m *TechDetailMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *TechDetailMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the TechDetail entity.
// If the TechDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechDetailMutation) OldComment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ClearComment clears the value of the "comment" field.
func (m *TechDetailMutation) ClearComment() {
	m.comment = nil
	m.clearedFields[techdetail.FieldComment] = struct{}{}
}

// CommentCleared returns if the "comment" field was cleared in this mutation.
func (m *TechDetailMutation) CommentCleared() bool {
	_, ok := m.clearedFields[techdetail.FieldComment]
	return ok
}

// ResetComment resets all changes to the "comment" field.
func (m *TechDetailMutation) ResetComment() {
	m.comment = nil
	delete(m.clearedFields, techdetail.FieldComment)
}

// SetPurchased sets the "purchased" field.
func (m *TechDetailMutation) SetPurchased(b bool) {
	m.purchased = &b
}

// Purchased returns the value of the "purchased" field in the mutation.
func (m *TechDetailMutation) Purchased() (r bool, exists bool) {
	v := m.purchased
	if v == nil {
		return
	}
	return *v, true
}

// OldPurchased returns the old "purchased" field's value of the TechDetail entity.
// If the TechDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechDetailMutation) OldPurchased(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurchased is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurchased requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurchased: %w", err)
	}
	return oldValue.Purchased, nil
}

// ResetPurchased resets all changes to the "purchased" field.
func (m *TechDetailMutation) ResetPurchased() {
	m.purchased = nil
}

// SetYearBeganUsing sets the "year_began_using" field.
func (m *TechDetailMutation) SetYearBeganUsing(i int) {
	m.year_began_using = &i
	m.addyear_began_using = nil
}

// YearBeganUsing returns the value of the "year_began_using" field in the mutation.
func (m *TechDetailMutation) YearBeganUsing() (r int, exists bool) {
	v := m.year_began_using
	if v == nil {
		return
	}
	return *v, true
}

// OldYearBeganUsing returns the old "year_began_using" field's value of the TechDetail entity.
// If the TechDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechDetailMutation) OldYearBeganUsing(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYearBeganUsing is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYearBeganUsing requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYearBeganUsing: %w", err)
	}
	return oldValue.YearBeganUsing, nil
}

// AddYearBeganUsing adds i to the "year_began_using" field.
func (m *TechDetailMutation) AddYearBeganUsing(i int) {
	if m.addyear_began_using != nil {
		*m.addyear_began_using += i
	} else {
		m.addyear_began_using = &i
	}
}

// AddedYearBeganUsing returns the value that was added to the "year_began_using" field in this mutation.
func (m *TechDetailMutation) AddedYearBeganUsing() (r int, exists bool) {
	v := m.addyear_began_using
	if v == nil {
		return
	}
	return *v, true
}

// ResetYearBeganUsing resets all changes to the "year_began_using" field.
func (m *TechDetailMutation) ResetYearBeganUsing() {
	m.year_began_using = nil
	m.addyear_began_using = nil
}

// SetMonthBeganUsing sets the "month_began_using" field.
func (m *TechDetailMutation) SetMonthBeganUsing(tbu techdetail.MonthBeganUsing) {
	m.month_began_using = &tbu
}

// MonthBeganUsing returns the value of the "month_began_using" field in the mutation.
func (m *TechDetailMutation) MonthBeganUsing() (r techdetail.MonthBeganUsing, exists bool) {
	v := m.month_began_using
	if v == nil {
		return
	}
	return *v, true
}

// OldMonthBeganUsing returns the old "month_began_using" field's value of the TechDetail entity.
// If the TechDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechDetailMutation) OldMonthBeganUsing(ctx context.Context) (v techdetail.MonthBeganUsing, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonthBeganUsing is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonthBeganUsing requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonthBeganUsing: %w", err)
	}
	return oldValue.MonthBeganUsing, nil
}

// ClearMonthBeganUsing clears the value of the "month_began_using" field.
func (m *TechDetailMutation) ClearMonthBeganUsing() {
	m.month_began_using = nil
	m.clearedFields[techdetail.FieldMonthBeganUsing] = struct{}{}
}

// MonthBeganUsingCleared returns if the "month_began_using" field was cleared in this mutation.
func (m *TechDetailMutation) MonthBeganUsingCleared() bool {
	_, ok := m.clearedFields[techdetail.FieldMonthBeganUsing]
	return ok
}

// ResetMonthBeganUsing resets all changes to the "month_began_using" field.
func (m *TechDetailMutation) ResetMonthBeganUsing() {
	m.month_began_using = nil
	delete(m.clearedFields, techdetail.FieldMonthBeganUsing)
}

// SetSkillLevel sets the "skill_level" field.
func (m *TechDetailMutation) SetSkillLevel(tl techdetail.SkillLevel) {
	m.skill_level = &tl
}

// SkillLevel returns the value of the "skill_level" field in the mutation.
func (m *TechDetailMutation) SkillLevel() (r techdetail.SkillLevel, exists bool) {
	v := m.skill_level
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillLevel returns the old "skill_level" field's value of the TechDetail entity.
// If the TechDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechDetailMutation) OldSkillLevel(ctx context.Context) (v techdetail.SkillLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillLevel: %w", err)
	}
	return oldValue.SkillLevel, nil
}

// ClearSkillLevel clears the value of the "skill_level" field.
func (m *TechDetailMutation) ClearSkillLevel() {
	m.skill_level = nil
	m.clearedFields[techdetail.FieldSkillLevel] = struct{}{}
}

// SkillLevelCleared returns if the "skill_level" field was cleared in this mutation.
func (m *TechDetailMutation) SkillLevelCleared() bool {
	_, ok := m.clearedFields[techdetail.FieldSkillLevel]
	return ok
}

// ResetSkillLevel resets all changes to the "skill_level" field.
func (m *TechDetailMutation) ResetSkillLevel() {
	m.skill_level = nil
	delete(m.clearedFields, techdetail.FieldSkillLevel)
}

// SetRating sets the "rating" field.
func (m *TechDetailMutation) SetRating(t techdetail.Rating) {
	m.rating = &t
}

// Rating returns the value of the "rating" field in the mutation.
func (m *TechDetailMutation) Rating() (r techdetail.Rating, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the TechDetail entity.
// If the TechDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechDetailMutation) OldRating(ctx context.Context) (v techdetail.Rating, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// ClearRating clears the value of the "rating" field.
func (m *TechDetailMutation) ClearRating() {
	m.rating = nil
	m.clearedFields[techdetail.FieldRating] = struct{}{}
}

// RatingCleared returns if the "rating" field was cleared in this mutation.
func (m *TechDetailMutation) RatingCleared() bool {
	_, ok := m.clearedFields[techdetail.FieldRating]
	return ok
}

// ResetRating resets all changes to the "rating" field.
func (m *TechDetailMutation) ResetRating() {
	m.rating = nil
	delete(m.clearedFields, techdetail.FieldRating)
}

// SetCreatedAt sets the "created_at" field.
func (m *TechDetailMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TechDetailMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TechDetail entity.
// If the TechDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechDetailMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TechDetailMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TechDetailMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TechDetailMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TechDetail entity.
// If the TechDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechDetailMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TechDetailMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTechnologyID sets the "technology" edge to the Technology entity by id.
func (m *TechDetailMutation) SetTechnologyID(id uuid.UUID) {
	m.technology = &id
}

// ClearTechnology clears the "technology" edge to the Technology entity.
func (m *TechDetailMutation) ClearTechnology() {
	m.clearedtechnology = true
}

// TechnologyCleared reports if the "technology" edge to the Technology entity was cleared.
func (m *TechDetailMutation) TechnologyCleared() bool {
	return m.clearedtechnology
}

// TechnologyID returns the "technology" edge ID in the mutation.
func (m *TechDetailMutation) TechnologyID() (id uuid.UUID, exists bool) {
	if m.technology != nil {
		return *m.technology, true
	}
	return
}

// TechnologyIDs returns the "technology" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TechnologyID instead. It exists only for internal usage by the builders.
func (m *TechDetailMutation) TechnologyIDs() (ids []uuid.UUID) {
	if id := m.technology; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTechnology resets all changes to the "technology" edge.
func (m *TechDetailMutation) ResetTechnology() {
	m.technology = nil
	m.clearedtechnology = false
}

// Where appends a list predicates to the TechDetailMutation builder.
func (m *TechDetailMutation) Where(ps ...predicate.TechDetail) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TechDetailMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TechDetailMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TechDetail, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TechDetailMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TechDetailMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TechDetail).
func (m *TechDetailMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TechDetailMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.website_url != nil {
		fields = append(fields, techdetail.FieldWebsiteURL)
	}
	if m.category != nil {
		fields = append(fields, techdetail.FieldCategory)
	}
	if m.my_stack != nil {
		fields = append(fields, techdetail.FieldMyStack)
	}
	if m.is_favorite != nil {
		fields = append(fields, techdetail.FieldIsFavorite)
	}
	if m.use_case != nil {
		fields = append(fields, techdetail.FieldUseCase)
	}
	if m.experience != nil {
		fields = append(fields, techdetail.FieldExperience)
	}
	if m.description != nil {
		fields = append(fields, techdetail.FieldDescription)
	}
	if m.comment != nil {
		fields = append(fields, techdetail.FieldComment)
	}
	if m.purchased != nil {
		fields = append(fields, techdetail.FieldPurchased)
	}
	if m.year_began_using != nil {
		fields = append(fields, techdetail.FieldYearBeganUsing)
	}
	if m.month_began_using != nil {
		fields = append(fields, techdetail.FieldMonthBeganUsing)
	}
	if m.skill_level != nil {
		fields = append(fields, techdetail.FieldSkillLevel)
	}
	if m.rating != nil {
		fields = append(fields, techdetail.FieldRating)
	}
	if m.created_at != nil {
		fields = append(fields, techdetail.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, techdetail.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TechDetailMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case techdetail.FieldWebsiteURL:
		return m.WebsiteURL()
	case techdetail.FieldCategory:
		return m.Category()
	case techdetail.FieldMyStack:
		return m.MyStack()
	case techdetail.FieldIsFavorite:
		return m.IsFavorite()
	case techdetail.FieldUseCase:
		return m.UseCase()
	case techdetail.FieldExperience:
		return m.Experience()
	case techdetail.FieldDescription:
		return m.Description()
	case techdetail.FieldComment:
		return m.Comment()
	case techdetail.FieldPurchased:
		return m.Purchased()
	case techdetail.FieldYearBeganUsing:
		return m.YearBeganUsing()
	case techdetail.FieldMonthBeganUsing:
		return m.MonthBeganUsing()
	case techdetail.FieldSkillLevel:
		return m.SkillLevel()
	case techdetail.FieldRating:
		return m.Rating()
	case techdetail.FieldCreatedAt:
		return m.CreatedAt()
	case techdetail.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TechDetailMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case techdetail.FieldWebsiteURL:
		return m.OldWebsiteURL(ctx)
	case techdetail.FieldCategory:
		return m.OldCategory(ctx)
	case techdetail.FieldMyStack:
		return m.OldMyStack(ctx)
	case techdetail.FieldIsFavorite:
		return m.OldIsFavorite(ctx)
	case techdetail.FieldUseCase:
		return m.OldUseCase(ctx)
	case techdetail.FieldExperience:
		return m.OldExperience(ctx)
	case techdetail.FieldDescription:
		return m.OldDescription(ctx)
	case techdetail.FieldComment:
		return m.OldComment(ctx)
	case techdetail.FieldPurchased:
		return m.OldPurchased(ctx)
	case techdetail.FieldYearBeganUsing:
		return m.OldYearBeganUsing(ctx)
	case techdetail.FieldMonthBeganUsing:
		return m.OldMonthBeganUsing(ctx)
	case techdetail.FieldSkillLevel:
		return m.OldSkillLevel(ctx)
	case techdetail.FieldRating:
		return m.OldRating(ctx)
	case techdetail.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case techdetail.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TechDetail field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TechDetailMutation) SetField(name string, value ent.Value) error {
	switch name {
	case techdetail.FieldWebsiteURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebsiteURL(v)
		return nil
	case techdetail.FieldCategory:
		v, ok := value.(techdetail.Category)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case techdetail.FieldMyStack:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMyStack(v)
		return nil
	case techdetail.FieldIsFavorite:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsFavorite(v)
		return nil
	case techdetail.FieldUseCase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUseCase(v)
		return nil
	case techdetail.FieldExperience:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExperience(v)
		return nil
	case techdetail.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case techdetail.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	case techdetail.FieldPurchased:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurchased(v)
		return nil
	case techdetail.FieldYearBeganUsing:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYearBeganUsing(v)
		return nil
	case techdetail.FieldMonthBeganUsing:
		v, ok := value.(techdetail.MonthBeganUsing)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonthBeganUsing(v)
		return nil
	case techdetail.FieldSkillLevel:
		v, ok := value.(techdetail.SkillLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillLevel(v)
		return nil
	case techdetail.FieldRating:
		v, ok := value.(techdetail.Rating)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case techdetail.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case techdetail.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TechDetail field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TechDetailMutation) AddedFields() []string {
	var fields []string
	if m.addyear_began_using != nil {
		fields = append(fields, techdetail.FieldYearBeganUsing)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TechDetailMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case techdetail.FieldYearBeganUsing:
		return m.AddedYearBeganUsing()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TechDetailMutation) AddField(name string, value ent.Value) error {
	switch name {
	case techdetail.FieldYearBeganUsing:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYearBeganUsing(v)
		return nil
	}
	return fmt.Errorf("unknown TechDetail numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TechDetailMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(techdetail.FieldWebsiteURL) {
		fields = append(fields, techdetail.FieldWebsiteURL)
	}
	if m.FieldCleared(techdetail.FieldUseCase) {
		fields = append(fields, techdetail.FieldUseCase)
	}
	if m.FieldCleared(techdetail.FieldExperience) {
		fields = append(fields, techdetail.FieldExperience)
	}
	if m.FieldCleared(techdetail.FieldDescription) {
		fields = append(fields, techdetail.FieldDescription)
	}
	if m.FieldCleared(techdetail.FieldComment) {
		fields = append(fields, techdetail.FieldComment)
	}
	if m.FieldCleared(techdetail.FieldMonthBeganUsing) {
		fields = append(fields, techdetail.FieldMonthBeganUsing)
	}
	if m.FieldCleared(techdetail.FieldSkillLevel) {
		fields = append(fields, techdetail.FieldSkillLevel)
	}
	if m.FieldCleared(techdetail.FieldRating) {
		fields = append(fields, techdetail.FieldRating)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TechDetailMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TechDetailMutation) ClearField(name string) error {
	switch name {
	case techdetail.FieldWebsiteURL:
		m.ClearWebsiteURL()
		return nil
	case techdetail.FieldUseCase:
		m.ClearUseCase()
		return nil
	case techdetail.FieldExperience:
		m.ClearExperience()
		return nil
	case techdetail.FieldDescription:
		m.ClearDescription()
		return nil
	case techdetail.FieldComment:
		m.ClearComment()
		return nil
	case techdetail.FieldMonthBeganUsing:
		m.ClearMonthBeganUsing()
		return nil
	case techdetail.FieldSkillLevel:
		m.ClearSkillLevel()
		return nil
	case techdetail.FieldRating:
		m.ClearRating()
		return nil
	}
	return fmt.Errorf("unknown TechDetail nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TechDetailMutation) ResetField(name string) error {
	switch name {
	case techdetail.FieldWebsiteURL:
		m.ResetWebsiteURL()
		return nil
	case techdetail.FieldCategory:
		m.ResetCategory()
		return nil
	case techdetail.FieldMyStack:
		m.ResetMyStack()
		return nil
	case techdetail.FieldIsFavorite:
		m.ResetIsFavorite()
		return nil
	case techdetail.FieldUseCase:
		m.ResetUseCase()
		return nil
	case techdetail.FieldExperience:
		m.ResetExperience()
		return nil
	case techdetail.FieldDescription:
		m.ResetDescription()
		return nil
	case techdetail.FieldComment:
		m.ResetComment()
		return nil
	case techdetail.FieldPurchased:
		m.ResetPurchased()
		return nil
	case techdetail.FieldYearBeganUsing:
		m.ResetYearBeganUsing()
		return nil
	case techdetail.FieldMonthBeganUsing:
		m.ResetMonthBeganUsing()
		return nil
	case techdetail.FieldSkillLevel:
		m.ResetSkillLevel()
		return nil
	case techdetail.FieldRating:
		m.ResetRating()
		return nil
	case techdetail.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case techdetail.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TechDetail field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TechDetailMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.technology != nil {
		edges = append(edges, techdetail.EdgeTechnology)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TechDetailMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case techdetail.EdgeTechnology:
		if id := m.technology; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TechDetailMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TechDetailMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TechDetailMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtechnology {
		edges = append(edges, techdetail.EdgeTechnology)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TechDetailMutation) EdgeCleared(name string) bool {
	switch name {
	case techdetail.EdgeTechnology:
		return m.clearedtechnology
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TechDetailMutation) ClearEdge(name string) error {
	switch name {
	case techdetail.EdgeTechnology:
		m.ClearTechnology()
		return nil
	}
	return fmt.Errorf("unknown TechDetail unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TechDetailMutation) ResetEdge(name string) error {
	switch name {
	case techdetail.EdgeTechnology:
		m.ResetTechnology()
		return nil
	}
	return fmt.Errorf("unknown TechDetail edge %s", name)
}

// TechIconMutation represents an operation that mutates the TechIcon nodes in the graph.
type TechIconMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	file_url              *string
	should_invert_on_dark *bool
	version               *int
	addversion            *int
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	technology            *uuid.UUID
	clearedtechnology     bool
	variant               *uuid.UUID
	clearedvariant        bool
	done                  bool
	oldValue              func(context.Context) (*TechIcon, error)
	predicates            []predicate.TechIcon
}

var _ ent.Mutation = (*TechIconMutation)(nil)

// techiconOption allows management of the mutation configuration using functional options.
type techiconOption func(*TechIconMutation)

// newTechIconMutation creates new mutation for the TechIcon entity.
func newTechIconMutation(c config, op Op, opts ...techiconOption) *TechIconMutation {
	m := &TechIconMutation{
		config:        c,
		op:            op,
		typ:           TypeTechIcon,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTechIconID sets the ID field of the mutation.
func withTechIconID(id uuid.UUID) techiconOption {
	return func(m *TechIconMutation) {
		var (
			err   error
			once  sync.Once
			value *TechIcon
		)
		m.oldValue = func(ctx context.Context) (*TechIcon, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TechIcon.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTechIcon sets the old TechIcon of the mutation.
func withTechIcon(node *TechIcon) techiconOption {
	return func(m *TechIconMutation) {
		m.oldValue = func(context.Context) (*TechIcon, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TechIconMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TechIconMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TechIcon entities.
func (m *TechIconMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TechIconMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TechIconMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TechIcon.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileURL sets the "file_url" field.
func (m *TechIconMutation) SetFileURL(s string) {
	m.file_url = &s
}

// FileURL returns the value of the "file_url" field in the mutation.
func (m *TechIconMutation) FileURL() (r string, exists bool) {
	v := m.file_url
	if v == nil {
		return
	}
	return *v, true
}

// OldFileURL returns the old "file_url" field's value of the TechIcon entity.
// If the TechIcon object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechIconMutation) OldFileURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileURL: %w", err)
	}
	return oldValue.FileURL, nil
}

// ClearFileURL clears the value of the "file_url" field.
func (m *TechIconMutation) ClearFileURL() {
	m.file_url = nil
	m.clearedFields[techicon.FieldFileURL] = struct{}{}
}

// FileURLCleared returns if the "file_url" field was cleared in this mutation.
func (m *TechIconMutation) FileURLCleared() bool {
	_, ok := m.clearedFields[techicon.FieldFileURL]
	return ok
}

// ResetFileURL resets all changes to the "file_url" field.
func (m *TechIconMutation) ResetFileURL() {
	m.file_url = nil
	delete(m.clearedFields, techicon.FieldFileURL)
}

// SetShouldInvertOnDark sets the "should_invert_on_dark" field.
func (m *TechIconMutation) SetShouldInvertOnDark(b bool) {
	m.should_invert_on_dark = &b
}

// ShouldInvertOnDark returns the value of the "should_invert_on_dark" field in the mutation.
func (m *TechIconMutation) ShouldInvertOnDark() (r bool, exists bool) {
	v := m.should_invert_on_dark
	if v == nil {
		return
	}
	return *v, true
}

// OldShouldInvertOnDark returns the old "should_invert_on_dark" field's value of the TechIcon entity.
// If the TechIcon object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechIconMutation) OldShouldInvertOnDark(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShouldInvertOnDark is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShouldInvertOnDark requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShouldInvertOnDark: %w", err)
	}
	return oldValue.ShouldInvertOnDark, nil
}

// ResetShouldInvertOnDark resets all changes to the "should_invert_on_dark" field.
func (m *TechIconMutation) ResetShouldInvertOnDark() {
	m.should_invert_on_dark = nil
}

// SetVersion sets the "version" field.
func (m *TechIconMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *TechIconMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the TechIcon entity.
// If the TechIcon object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechIconMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *TechIconMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *TechIconMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *TechIconMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TechIconMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TechIconMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TechIcon entity.
// If the TechIcon object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechIconMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TechIconMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TechIconMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TechIconMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TechIcon entity.
// If the TechIcon object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechIconMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TechIconMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTechnologyID sets the "technology" edge to the Technology entity by id.
func (m *TechIconMutation) SetTechnologyID(id uuid.UUID) {
	m.technology = &id
}

// ClearTechnology clears the "technology" edge to the Technology entity.
func (m *TechIconMutation) ClearTechnology() {
	m.clearedtechnology = true
}

// TechnologyCleared reports if the "technology" edge to the Technology entity was cleared.
func (m *TechIconMutation) TechnologyCleared() bool {
	return m.clearedtechnology
}

// TechnologyID returns the "technology" edge ID in the mutation.
func (m *TechIconMutation) TechnologyID() (id uuid.UUID, exists bool) {
	if m.technology != nil {
		return *m.technology, true
	}
	return
}

// TechnologyIDs returns the "technology" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TechnologyID instead. It exists only for internal usage by the builders.
func (m *TechIconMutation) TechnologyIDs() (ids []uuid.UUID) {
	if id := m.technology; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTechnology resets all changes to the "technology" edge.
func (m *TechIconMutation) ResetTechnology() {
	m.technology = nil
	m.clearedtechnology = false
}

// SetVariantID sets the "variant" edge to the IconVariant entity by id.
func (m *TechIconMutation) SetVariantID(id uuid.UUID) {
	m.variant = &id
}

// ClearVariant clears the "variant" edge to the IconVariant entity.
func (m *TechIconMutation) ClearVariant() {
	m.clearedvariant = true
}

// VariantCleared reports if the "variant" edge to the IconVariant entity was cleared.
func (m *TechIconMutation) VariantCleared() bool {
	return m.clearedvariant
}

// VariantID returns the "variant" edge ID in the mutation.
func (m *TechIconMutation) VariantID() (id uuid.UUID, exists bool) {
	if m.variant != nil {
		return *m.variant, true
	}
	return
}

// VariantIDs returns the "variant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VariantID instead. It exists only for internal usage by the builders.
func (m *TechIconMutation) VariantIDs() (ids []uuid.UUID) {
	if id := m.variant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVariant resets all changes to the "variant" edge.
func (m *TechIconMutation) ResetVariant() {
	m.variant = nil
	m.clearedvariant = false
}

// Where appends a list predicates to the TechIconMutation builder.
func (m *TechIconMutation) Where(ps ...predicate.TechIcon) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TechIconMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TechIconMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TechIcon, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TechIconMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TechIconMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TechIcon).
func (m *TechIconMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TechIconMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.file_url != nil {
		fields = append(fields, techicon.FieldFileURL)
	}
	if m.should_invert_on_dark != nil {
		fields = append(fields, techicon.FieldShouldInvertOnDark)
	}
	if m.version != nil {
		fields = append(fields, techicon.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, techicon.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, techicon.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TechIconMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case techicon.FieldFileURL:
		return m.FileURL()
	case techicon.FieldShouldInvertOnDark:
		return m.ShouldInvertOnDark()
	case techicon.FieldVersion:
		return m.Version()
	case techicon.FieldCreatedAt:
		return m.CreatedAt()
	case techicon.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TechIconMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case techicon.FieldFileURL:
		return m.OldFileURL(ctx)
	case techicon.FieldShouldInvertOnDark:
		return m.OldShouldInvertOnDark(ctx)
	case techicon.FieldVersion:
		return m.OldVersion(ctx)
	case techicon.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case techicon.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TechIcon field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TechIconMutation) SetField(name string, value ent.Value) error {
	switch name {
	case techicon.FieldFileURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileURL(v)
		return nil
	case techicon.FieldShouldInvertOnDark:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShouldInvertOnDark(v)
		return nil
	case techicon.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case techicon.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case techicon.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TechIcon field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TechIconMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, techicon.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TechIconMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case techicon.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TechIconMutation) AddField(name string, value ent.Value) error {
	switch name {
	case techicon.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown TechIcon numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TechIconMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(techicon.FieldFileURL) {
		fields = append(fields, techicon.FieldFileURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TechIconMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TechIconMutation) ClearField(name string) error {
	switch name {
	case techicon.FieldFileURL:
		m.ClearFileURL()
		return nil
	}
	return fmt.Errorf("unknown TechIcon nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TechIconMutation) ResetField(name string) error {
	switch name {
	case techicon.FieldFileURL:
		m.ResetFileURL()
		return nil
	case techicon.FieldShouldInvertOnDark:
		m.ResetShouldInvertOnDark()
		return nil
	case techicon.FieldVersion:
		m.ResetVersion()
		return nil
	case techicon.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case techicon.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TechIcon field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TechIconMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.technology != nil {
		edges = append(edges, techicon.EdgeTechnology)
	}
	if m.variant != nil {
		edges = append(edges, techicon.EdgeVariant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TechIconMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case techicon.EdgeTechnology:
		if id := m.technology; id != nil {
			return []ent.Value{*id}
		}
	case techicon.EdgeVariant:
		if id := m.variant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TechIconMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TechIconMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TechIconMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtechnology {
		edges = append(edges, techicon.EdgeTechnology)
	}
	if m.clearedvariant {
		edges = append(edges, techicon.EdgeVariant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TechIconMutation) EdgeCleared(name string) bool {
	switch name {
	case techicon.EdgeTechnology:
		return m.clearedtechnology
	case techicon.EdgeVariant:
		return m.clearedvariant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TechIconMutation) ClearEdge(name string) error {
	switch name {
	case techicon.EdgeTechnology:
		m.ClearTechnology()
		return nil
	case techicon.EdgeVariant:
		m.ClearVariant()
		return nil
	}
	return fmt.Errorf("unknown TechIcon unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TechIconMutation) ResetEdge(name string) error {
	switch name {
	case techicon.EdgeTechnology:
		m.ResetTechnology()
		return nil
	case techicon.EdgeVariant:
		m.ResetVariant()
		return nil
	}
	return fmt.Errorf("unknown TechIcon edge %s", name)
}

// TechnologyMutation represents an operation that mutates the Technology nodes in the graph.
type TechnologyMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	company_name   *string
	old_id         *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	icons          map[uuid.UUID]struct{}
	removedicons   map[uuid.UUID]struct{}
	clearedicons   bool
	details        *uuid.UUID
	cleareddetails bool
	done           bool
	oldValue       func(context.Context) (*Technology, error)
	predicates     []predicate.Technology
}

var _ ent.Mutation = (*TechnologyMutation)(nil)

// technologyOption allows management of the mutation configuration using functional options.
type technologyOption func(*TechnologyMutation)

// newTechnologyMutation creates new mutation for the Technology entity.
func newTechnologyMutation(c config, op Op, opts ...technologyOption) *TechnologyMutation {
	m := &TechnologyMutation{
		config:        c,
		op:            op,
		typ:           TypeTechnology,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTechnologyID sets the ID field of the mutation.
func withTechnologyID(id uuid.UUID) technologyOption {
	return func(m *TechnologyMutation) {
		var (
			err   error
			once  sync.Once
			value *Technology
		)
		m.oldValue = func(ctx context.Context) (*Technology, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Technology.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTechnology sets the old Technology of the mutation.
func withTechnology(node *Technology) technologyOption {
	return func(m *TechnologyMutation) {
		m.oldValue = func(context.Context) (*Technology, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TechnologyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TechnologyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Technology entities.
func (m *TechnologyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TechnologyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TechnologyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Technology.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyName sets the "company_name" field.
func (m *TechnologyMutation) SetCompanyName(s string) {
	m.company_name = &s
}

// CompanyName returns the value of the "company_name" field in the mutation.
func (m *TechnologyMutation) CompanyName() (r string, exists bool) {
	v := m.company_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyName returns the old "company_name" field's value of the Technology entity.
// If the Technology object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechnologyMutation) OldCompanyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyName: %w", err)
	}
	return oldValue.CompanyName, nil
}

// ResetCompanyName resets all changes to the "company_name" field.
func (m *TechnologyMutation) ResetCompanyName() {
	m.company_name = nil
}

// SetOldID sets the "old_id" field.
func (m *TechnologyMutation) SetOldID(s string) {
	m.old_id = &s
}

// OldID returns the value of the "old_id" field in the mutation.
func (m *TechnologyMutation) OldID() (r string, exists bool) {
	v := m.old_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOldID returns the old "old_id" field's value of the Technology entity.
// If the Technology object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechnologyMutation) OldOldID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldID: %w", err)
	}
	return oldValue.OldID, nil
}

// ClearOldID clears the value of the "old_id" field.
func (m *TechnologyMutation) ClearOldID() {
	m.old_id = nil
	m.clearedFields[technology.FieldOldID] = struct{}{}
}

// OldIDCleared returns if the "old_id" field was cleared in this mutation.
func (m *TechnologyMutation) OldIDCleared() bool {
	_, ok := m.clearedFields[technology.FieldOldID]
	return ok
}

// ResetOldID resets all changes to the "old_id" field.
func (m *TechnologyMutation) ResetOldID() {
	m.old_id = nil
	delete(m.clearedFields, technology.FieldOldID)
}

// SetCreatedAt sets the "created_at" field.
func (m *TechnologyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TechnologyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Technology entity.
// If the Technology object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechnologyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TechnologyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TechnologyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TechnologyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Technology entity.
// If the Technology object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechnologyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TechnologyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddIconIDs adds the "icons" edge to the TechIcon entity by ids.
func (m *TechnologyMutation) AddIconIDs(ids ...uuid.UUID) {
	if m.icons == nil {
		m.icons = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.icons[ids[i]] = struct{}{}
	}
}

// ClearIcons clears the "icons" edge to the TechIcon entity.
func (m *TechnologyMutation) ClearIcons() {
	m.clearedicons = true
}

// IconsCleared reports if the "icons" edge to the TechIcon entity was cleared.
func (m *TechnologyMutation) IconsCleared() bool {
	return m.clearedicons
}

// RemoveIconIDs removes the "icons" edge to the TechIcon entity by IDs.
func (m *TechnologyMutation) RemoveIconIDs(ids ...uuid.UUID) {
	if m.removedicons == nil {
		m.removedicons = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.icons, ids[i])
		m.removedicons[ids[i]] = struct{}{}
	}
}

// RemovedIcons returns the removed IDs of the "icons" edge to the TechIcon entity.
func (m *TechnologyMutation) RemovedIconsIDs() (ids []uuid.UUID) {
	for id := range m.removedicons {
		ids = append(ids, id)
	}
	return
}

// IconsIDs returns the "icons" edge IDs in the mutation.
func (m *TechnologyMutation) IconsIDs() (ids []uuid.UUID) {
	for id := range m.icons {
		ids = append(ids, id)
	}
	return
}

// ResetIcons resets all changes to the "icons" edge.
func (m *TechnologyMutation) ResetIcons() {
	m.icons = nil
	m.clearedicons = false
	m.removedicons = nil
}

// SetDetailsID sets the "details" edge to the TechDetail entity by id.
func (m *TechnologyMutation) SetDetailsID(id uuid.UUID) {
	m.details = &id
}

// ClearDetails clears the "details" edge to the TechDetail entity.
func (m *TechnologyMutation) ClearDetails() {
	m.cleareddetails = true
}

// DetailsCleared reports if the "details" edge to the TechDetail entity was cleared.
func (m *TechnologyMutation) DetailsCleared() bool {
	return m.cleareddetails
}

// DetailsID returns the "details" edge ID in the mutation.
func (m *TechnologyMutation) DetailsID() (id uuid.UUID, exists bool) {
	if m.details != nil {
		return *m.details, true
	}
	return
}

// DetailsIDs returns the "details" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DetailsID instead. It exists only for internal usage by the builders.
func (m *TechnologyMutation) DetailsIDs() (ids []uuid.UUID) {
	if id := m.details; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDetails resets all changes to the "details" edge.
func (m *TechnologyMutation) ResetDetails() {
	m.details = nil
	m.cleareddetails = false
}

// Where appends a list predicates to the TechnologyMutation builder.
func (m *TechnologyMutation) Where(ps ...predicate.Technology) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TechnologyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TechnologyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Technology, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TechnologyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TechnologyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Technology).
func (m *TechnologyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TechnologyMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.company_name != nil {
		fields = append(fields, technology.FieldCompanyName)
	}
	if m.old_id != nil {
		fields = append(fields, technology.FieldOldID)
	}
	if m.created_at != nil {
		fields = append(fields, technology.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, technology.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TechnologyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case technology.FieldCompanyName:
		return m.CompanyName()
	case technology.FieldOldID:
		return m.OldID()
	case technology.FieldCreatedAt:
		return m.CreatedAt()
	case technology.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TechnologyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case technology.FieldCompanyName:
		return m.OldCompanyName(ctx)
	case technology.FieldOldID:
		return m.OldOldID(ctx)
	case technology.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case technology.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Technology field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TechnologyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case technology.FieldCompanyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyName(v)
		return nil
	case technology.FieldOldID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldID(v)
		return nil
	case technology.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case technology.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Technology field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TechnologyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TechnologyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TechnologyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Technology numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TechnologyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(technology.FieldOldID) {
		fields = append(fields, technology.FieldOldID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TechnologyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TechnologyMutation) ClearField(name string) error {
	switch name {
	case technology.FieldOldID:
		m.ClearOldID()
		return nil
	}
	return fmt.Errorf("unknown Technology nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TechnologyMutation) ResetField(name string) error {
	switch name {
	case technology.FieldCompanyName:
		m.ResetCompanyName()
		return nil
	case technology.FieldOldID:
		m.ResetOldID()
		return nil
	case technology.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case technology.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Technology field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TechnologyMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.icons != nil {
		edges = append(edges, technology.EdgeIcons)
	}
	if m.details != nil {
		edges = append(edges, technology.EdgeDetails)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TechnologyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case technology.EdgeIcons:
		ids := make([]ent.Value, 0, len(m.icons))
		for id := range m.icons {
			ids = append(ids, id)
		}
		return ids
	case technology.EdgeDetails:
		if id := m.details; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TechnologyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedicons != nil {
		edges = append(edges, technology.EdgeIcons)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TechnologyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case technology.EdgeIcons:
		ids := make([]ent.Value, 0, len(m.removedicons))
		for id := range m.removedicons {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TechnologyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedicons {
		edges = append(edges, technology.EdgeIcons)
	}
	if m.cleareddetails {
		edges = append(edges, technology.EdgeDetails)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TechnologyMutation) EdgeCleared(name string) bool {
	switch name {
	case technology.EdgeIcons:
		return m.clearedicons
	case technology.EdgeDetails:
		return m.cleareddetails
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TechnologyMutation) ClearEdge(name string) error {
	switch name {
	case technology.EdgeDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown Technology unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TechnologyMutation) ResetEdge(name string) error {
	switch name {
	case technology.EdgeIcons:
		m.ResetIcons()
		return nil
	case technology.EdgeDetails:
		m.ResetDetails()
		return nil
	}
	return fmt.Errorf("unknown Technology edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	username      *string
	display_name  *string
	password_hash *string
	is_active     *bool
	last_login_at *time.Time
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*User, error)
	predicates    []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetDisplayName sets the "display_name" field.
func (m *UserMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *UserMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *UserMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[user.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *UserMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[user.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *UserMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, user.FieldDisplayName)
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetIsActive sets the "is_active" field.
func (m *UserMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UserMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UserMutation) ResetIsActive() {
	m.is_active = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.display_name != nil {
		fields = append(fields, user.FieldDisplayName)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.is_active != nil {
		fields = append(fields, user.FieldIsActive)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldUsername:
		return m.Username()
	case user.FieldDisplayName:
		return m.DisplayName()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldIsActive:
		return m.IsActive()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldIsActive:
		return m.OldIsActive(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldDisplayName) {
		fields = append(fields, user.FieldDisplayName)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldIsActive:
		m.ResetIsActive()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}
