// Code generated by ent, DO NOT EDIT.

package certificate

import (
	"portfolio-api/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldTitle, v))
}

// Issuer applies equality check predicate on the "issuer" field. It's identical to IssuerEQ.
func Issuer(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldIssuer, v))
}

// IssueYear applies equality check predicate on the "issue_year" field. It's identical to IssueYearEQ.
func IssueYear(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldIssueYear, v))
}

// ExpiryYear applies equality check predicate on the "expiry_year" field. It's identical to ExpiryYearEQ.
func ExpiryYear(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldExpiryYear, v))
}

// CredentialID applies equality check predicate on the "credential_id" field. It's identical to CredentialIDEQ.
func CredentialID(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldCredentialID, v))
}

// CredentialURL applies equality check predicate on the "credential_url" field. It's identical to CredentialURLEQ.
func CredentialURL(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldCredentialURL, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldDescription, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldContainsFold(FieldTitle, v))
}

// IssuerEQ applies the EQ predicate on the "issuer" field.
func IssuerEQ(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldIssuer, v))
}

// IssuerNEQ applies the NEQ predicate on the "issuer" field.
func IssuerNEQ(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldIssuer, v))
}

// IssuerIn applies the In predicate on the "issuer" field.
func IssuerIn(vs ...string) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldIssuer, vs...))
}

// IssuerNotIn applies the NotIn predicate on the "issuer" field.
func IssuerNotIn(vs ...string) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldIssuer, vs...))
}

// IssuerGT applies the GT predicate on the "issuer" field.
func IssuerGT(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldIssuer, v))
}

// IssuerGTE applies the GTE predicate on the "issuer" field.
func IssuerGTE(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldIssuer, v))
}

// IssuerLT applies the LT predicate on the "issuer" field.
func IssuerLT(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldIssuer, v))
}

// IssuerLTE applies the LTE predicate on the "issuer" field.
func IssuerLTE(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldIssuer, v))
}

// IssuerContains applies the Contains predicate on the "issuer" field.
func IssuerContains(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldContains(FieldIssuer, v))
}

// IssuerHasPrefix applies the HasPrefix predicate on the "issuer" field.
func IssuerHasPrefix(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldHasPrefix(FieldIssuer, v))
}

// IssuerHasSuffix applies the HasSuffix predicate on the "issuer" field.
func IssuerHasSuffix(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldHasSuffix(FieldIssuer, v))
}

// IssuerIsNil applies the IsNil predicate on the "issuer" field.
func IssuerIsNil() predicate.Certificate {
	return predicate.Certificate(sql.FieldIsNull(FieldIssuer))
}

// IssuerNotNil applies the NotNil predicate on the "issuer" field.
func IssuerNotNil() predicate.Certificate {
	return predicate.Certificate(sql.FieldNotNull(FieldIssuer))
}

// IssuerEqualFold applies the EqualFold predicate on the "issuer" field.
func IssuerEqualFold(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEqualFold(FieldIssuer, v))
}

// IssuerContainsFold applies the ContainsFold predicate on the "issuer" field.
func IssuerContainsFold(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldContainsFold(FieldIssuer, v))
}

// IssueMonthEQ applies the EQ predicate on the "issue_month" field.
func IssueMonthEQ(v IssueMonth) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldIssueMonth, v))
}

// IssueMonthNEQ applies the NEQ predicate on the "issue_month" field.
func IssueMonthNEQ(v IssueMonth) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldIssueMonth, v))
}

// IssueMonthIn applies the In predicate on the "issue_month" field.
func IssueMonthIn(vs ...IssueMonth) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldIssueMonth, vs...))
}

// IssueMonthNotIn applies the NotIn predicate on the "issue_month" field.
func IssueMonthNotIn(vs ...IssueMonth) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldIssueMonth, vs...))
}

// IssueMonthIsNil applies the IsNil predicate on the "issue_month" field.
func IssueMonthIsNil() predicate.Certificate {
	return predicate.Certificate(sql.FieldIsNull(FieldIssueMonth))
}

// IssueMonthNotNil applies the NotNil predicate on the "issue_month" field.
func IssueMonthNotNil() predicate.Certificate {
	return predicate.Certificate(sql.FieldNotNull(FieldIssueMonth))
}

// IssueYearEQ applies the EQ predicate on the "issue_year" field.
func IssueYearEQ(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldIssueYear, v))
}

// IssueYearNEQ applies the NEQ predicate on the "issue_year" field.
func IssueYearNEQ(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldIssueYear, v))
}

// IssueYearIn applies the In predicate on the "issue_year" field.
func IssueYearIn(vs ...int) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldIssueYear, vs...))
}

// IssueYearNotIn applies the NotIn predicate on the "issue_year" field.
func IssueYearNotIn(vs ...int) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldIssueYear, vs...))
}

// IssueYearGT applies the GT predicate on the "issue_year" field.
func IssueYearGT(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldIssueYear, v))
}

// IssueYearGTE applies the GTE predicate on the "issue_year" field.
func IssueYearGTE(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldIssueYear, v))
}

// IssueYearLT applies the LT predicate on the "issue_year" field.
func IssueYearLT(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldIssueYear, v))
}

// IssueYearLTE applies the LTE predicate on the "issue_year" field.
func IssueYearLTE(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldIssueYear, v))
}

// ExpiryMonthEQ applies the EQ predicate on the "expiry_month" field.
func ExpiryMonthEQ(v ExpiryMonth) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldExpiryMonth, v))
}

// ExpiryMonthNEQ applies the NEQ predicate on the "expiry_month" field.
func ExpiryMonthNEQ(v ExpiryMonth) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldExpiryMonth, v))
}

// ExpiryMonthIn applies the In predicate on the "expiry_month" field.
func ExpiryMonthIn(vs ...ExpiryMonth) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldExpiryMonth, vs...))
}

// ExpiryMonthNotIn applies the NotIn predicate on the "expiry_month" field.
func ExpiryMonthNotIn(vs ...ExpiryMonth) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldExpiryMonth, vs...))
}

// ExpiryMonthIsNil applies the IsNil predicate on the "expiry_month" field.
func ExpiryMonthIsNil() predicate.Certificate {
	return predicate.Certificate(sql.FieldIsNull(FieldExpiryMonth))
}

// ExpiryMonthNotNil applies the NotNil predicate on the "expiry_month" field.
func ExpiryMonthNotNil() predicate.Certificate {
	return predicate.Certificate(sql.FieldNotNull(FieldExpiryMonth))
}

// ExpiryYearEQ applies the EQ predicate on the "expiry_year" field.
func ExpiryYearEQ(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldExpiryYear, v))
}

// ExpiryYearNEQ applies the NEQ predicate on the "expiry_year" field.
func ExpiryYearNEQ(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldExpiryYear, v))
}

// ExpiryYearIn applies the In predicate on the "expiry_year" field.
func ExpiryYearIn(vs ...int) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldExpiryYear, vs...))
}

// ExpiryYearNotIn applies the NotIn predicate on the "expiry_year" field.
func ExpiryYearNotIn(vs ...int) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldExpiryYear, vs...))
}

// ExpiryYearGT applies the GT predicate on the "expiry_year" field.
func ExpiryYearGT(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldExpiryYear, v))
}

// ExpiryYearGTE applies the GTE predicate on the "expiry_year" field.
func ExpiryYearGTE(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldExpiryYear, v))
}

// ExpiryYearLT applies the LT predicate on the "expiry_year" field.
func ExpiryYearLT(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldExpiryYear, v))
}

// ExpiryYearLTE applies the LTE predicate on the "expiry_year" field.
func ExpiryYearLTE(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldExpiryYear, v))
}

// ExpiryYearIsNil applies the IsNil predicate on the "expiry_year" field.
func ExpiryYearIsNil() predicate.Certificate {
	return predicate.Certificate(sql.FieldIsNull(FieldExpiryYear))
}

// ExpiryYearNotNil applies the NotNil predicate on the "expiry_year" field.
func ExpiryYearNotNil() predicate.Certificate {
	return predicate.Certificate(sql.FieldNotNull(FieldExpiryYear))
}

// CredentialIDEQ applies the EQ predicate on the "credential_id" field.
func CredentialIDEQ(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldCredentialID, v))
}

// CredentialIDNEQ applies the NEQ predicate on the "credential_id" field.
func CredentialIDNEQ(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldCredentialID, v))
}

// CredentialIDIn applies the In predicate on the "credential_id" field.
func CredentialIDIn(vs ...string) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldCredentialID, vs...))
}

// CredentialIDNotIn applies the NotIn predicate on the "credential_id" field.
func CredentialIDNotIn(vs ...string) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldCredentialID, vs...))
}

// CredentialIDGT applies the GT predicate on the "credential_id" field.
func CredentialIDGT(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldCredentialID, v))
}

// CredentialIDGTE applies the GTE predicate on the "credential_id" field.
func CredentialIDGTE(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldCredentialID, v))
}

// CredentialIDLT applies the LT predicate on the "credential_id" field.
func CredentialIDLT(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldCredentialID, v))
}

// CredentialIDLTE applies the LTE predicate on the "credential_id" field.
func CredentialIDLTE(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldCredentialID, v))
}

// CredentialIDContains applies the Contains predicate on the "credential_id" field.
func CredentialIDContains(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldContains(FieldCredentialID, v))
}

// CredentialIDHasPrefix applies the HasPrefix predicate on the "credential_id" field.
func CredentialIDHasPrefix(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldHasPrefix(FieldCredentialID, v))
}

// CredentialIDHasSuffix applies the HasSuffix predicate on the "credential_id" field.
func CredentialIDHasSuffix(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldHasSuffix(FieldCredentialID, v))
}

// CredentialIDIsNil applies the IsNil predicate on the "credential_id" field.
func CredentialIDIsNil() predicate.Certificate {
	return predicate.Certificate(sql.FieldIsNull(FieldCredentialID))
}

// CredentialIDNotNil applies the NotNil predicate on the "credential_id" field.
func CredentialIDNotNil() predicate.Certificate {
	return predicate.Certificate(sql.FieldNotNull(FieldCredentialID))
}

// CredentialIDEqualFold applies the EqualFold predicate on the "credential_id" field.
func CredentialIDEqualFold(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEqualFold(FieldCredentialID, v))
}

// CredentialIDContainsFold applies the ContainsFold predicate on the "credential_id" field.
func CredentialIDContainsFold(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldContainsFold(FieldCredentialID, v))
}

// CredentialURLEQ applies the EQ predicate on the "credential_url" field.
func CredentialURLEQ(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldCredentialURL, v))
}

// CredentialURLNEQ applies the NEQ predicate on the "credential_url" field.
func CredentialURLNEQ(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldCredentialURL, v))
}

// CredentialURLIn applies the In predicate on the "credential_url" field.
func CredentialURLIn(vs ...string) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldCredentialURL, vs...))
}

// CredentialURLNotIn applies the NotIn predicate on the "credential_url" field.
func CredentialURLNotIn(vs ...string) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldCredentialURL, vs...))
}

// CredentialURLGT applies the GT predicate on the "credential_url" field.
func CredentialURLGT(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldCredentialURL, v))
}

// CredentialURLGTE applies the GTE predicate on the "credential_url" field.
func CredentialURLGTE(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldCredentialURL, v))
}

// CredentialURLLT applies the LT predicate on the "credential_url" field.
func CredentialURLLT(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldCredentialURL, v))
}

// CredentialURLLTE applies the LTE predicate on the "credential_url" field.
func CredentialURLLTE(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldCredentialURL, v))
}

// CredentialURLContains applies the Contains predicate on the "credential_url" field.
func CredentialURLContains(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldContains(FieldCredentialURL, v))
}

// CredentialURLHasPrefix applies the HasPrefix predicate on the "credential_url" field.
func CredentialURLHasPrefix(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldHasPrefix(FieldCredentialURL, v))
}

// CredentialURLHasSuffix applies the HasSuffix predicate on the "credential_url" field.
func CredentialURLHasSuffix(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldHasSuffix(FieldCredentialURL, v))
}

// CredentialURLIsNil applies the IsNil predicate on the "credential_url" field.
func CredentialURLIsNil() predicate.Certificate {
	return predicate.Certificate(sql.FieldIsNull(FieldCredentialURL))
}

// CredentialURLNotNil applies the NotNil predicate on the "credential_url" field.
func CredentialURLNotNil() predicate.Certificate {
	return predicate.Certificate(sql.FieldNotNull(FieldCredentialURL))
}

// CredentialURLEqualFold applies the EqualFold predicate on the "credential_url" field.
func CredentialURLEqualFold(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEqualFold(FieldCredentialURL, v))
}

// CredentialURLContainsFold applies the ContainsFold predicate on the "credential_url" field.
func CredentialURLContainsFold(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldContainsFold(FieldCredentialURL, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Certificate {
	return predicate.Certificate(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Certificate {
	return predicate.Certificate(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldContainsFold(FieldDescription, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Certificate) predicate.Certificate {
	return predicate.Certificate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Certificate) predicate.Certificate {
	return predicate.Certificate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Certificate) predicate.Certificate {
	return predicate.Certificate(sql.NotPredicates(p))
}
