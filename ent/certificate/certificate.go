// Code generated by ent, DO NOT EDIT.

package certificate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the certificate type in the database.
	Label = "certificate"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldIssuer holds the string denoting the issuer field in the database.
	FieldIssuer = "issuer"
	// FieldIssueMonth holds the string denoting the issue_month field in the database.
	FieldIssueMonth = "issue_month"
	// FieldIssueYear holds the string denoting the issue_year field in the database.
	FieldIssueYear = "issue_year"
	// FieldExpiryMonth holds the string denoting the expiry_month field in the database.
	FieldExpiryMonth = "expiry_month"
	// FieldExpiryYear holds the string denoting the expiry_year field in the database.
	FieldExpiryYear = "expiry_year"
	// FieldCredentialID holds the string denoting the credential_id field in the database.
	FieldCredentialID = "credential_id"
	// FieldCredentialURL holds the string denoting the credential_url field in the database.
	FieldCredentialURL = "credential_url"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the certificate in the database.
	Table = "certificates"
)

// Columns holds all SQL columns for certificate fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldIssuer,
	FieldIssueMonth,
	FieldIssueYear,
	FieldExpiryMonth,
	FieldExpiryYear,
	FieldCredentialID,
	FieldCredentialURL,
	FieldDescription,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// IssuerValidator is a validator for the "issuer" field. It is called by the builders before save.
	IssuerValidator func(string) error
	// DefaultIssueYear holds the default value on creation for the "issue_year" field.
	DefaultIssueYear int
	// CredentialIDValidator is a validator for the "credential_id" field. It is called by the builders before save.
	CredentialIDValidator func(string) error
	// CredentialURLValidator is a validator for the "credential_url" field. It is called by the builders before save.
	CredentialURLValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// IssueMonth defines the type for the "issue_month" enum field.
type IssueMonth string

// IssueMonth values.
const (
	IssueMonthJan IssueMonth = "Jan"
	IssueMonthFeb IssueMonth = "Feb"
	IssueMonthMar IssueMonth = "Mar"
	IssueMonthApr IssueMonth = "Apr"
	IssueMonthMay IssueMonth = "May"
	IssueMonthJun IssueMonth = "Jun"
	IssueMonthJul IssueMonth = "Jul"
	IssueMonthAug IssueMonth = "Aug"
	IssueMonthSep IssueMonth = "Sep"
	IssueMonthOct IssueMonth = "Oct"
	IssueMonthNov IssueMonth = "Nov"
	IssueMonthDec IssueMonth = "Dec"
)

func (im IssueMonth) String() string {
	return string(im)
}

// IssueMonthValidator is a validator for the "issue_month" field enum values. It is called by the builders before save.
func IssueMonthValidator(im IssueMonth) error {
	switch im {
	case IssueMonthJan, IssueMonthFeb, IssueMonthMar, IssueMonthApr, IssueMonthMay, IssueMonthJun, IssueMonthJul, IssueMonthAug, IssueMonthSep, IssueMonthOct, IssueMonthNov, IssueMonthDec:
		return nil
	default:
		return fmt.Errorf("certificate: invalid enum value for issue_month field: %q", im)
	}
}

// ExpiryMonth defines the type for the "expiry_month" enum field.
type ExpiryMonth string

// ExpiryMonth values.
const (
	ExpiryMonthJan ExpiryMonth = "Jan"
	ExpiryMonthFeb ExpiryMonth = "Feb"
	ExpiryMonthMar ExpiryMonth = "Mar"
	ExpiryMonthApr ExpiryMonth = "Apr"
	ExpiryMonthMay ExpiryMonth = "May"
	ExpiryMonthJun ExpiryMonth = "Jun"
	ExpiryMonthJul ExpiryMonth = "Jul"
	ExpiryMonthAug ExpiryMonth = "Aug"
	ExpiryMonthSep ExpiryMonth = "Sep"
	ExpiryMonthOct ExpiryMonth = "Oct"
	ExpiryMonthNov ExpiryMonth = "Nov"
	ExpiryMonthDec ExpiryMonth = "Dec"
)

func (em ExpiryMonth) String() string {
	return string(em)
}

// ExpiryMonthValidator is a validator for the "expiry_month" field enum values. It is called by the builders before save.
func ExpiryMonthValidator(em ExpiryMonth) error {
	switch em {
	case ExpiryMonthJan, ExpiryMonthFeb, ExpiryMonthMar, ExpiryMonthApr, ExpiryMonthMay, ExpiryMonthJun, ExpiryMonthJul, ExpiryMonthAug, ExpiryMonthSep, ExpiryMonthOct, ExpiryMonthNov, ExpiryMonthDec:
		return nil
	default:
		return fmt.Errorf("certificate: invalid enum value for expiry_month field: %q", em)
	}
}

// OrderOption defines the ordering options for the Certificate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByIssuer orders the results by the issuer field.
func ByIssuer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssuer, opts...).ToFunc()
}

// ByIssueMonth orders the results by the issue_month field.
func ByIssueMonth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueMonth, opts...).ToFunc()
}

// ByIssueYear orders the results by the issue_year field.
func ByIssueYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueYear, opts...).ToFunc()
}

// ByExpiryMonth orders the results by the expiry_month field.
func ByExpiryMonth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiryMonth, opts...).ToFunc()
}

// ByExpiryYear orders the results by the expiry_year field.
func ByExpiryYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiryYear, opts...).ToFunc()
}

// ByCredentialID orders the results by the credential_id field.
func ByCredentialID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCredentialID, opts...).ToFunc()
}

// ByCredentialURL orders the results by the credential_url field.
func ByCredentialURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCredentialURL, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
