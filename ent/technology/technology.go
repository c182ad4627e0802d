// Code generated by ent, DO NOT EDIT.

package technology

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the technology type in the database.
	Label = "technology"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCompanyName holds the string denoting the company_name field in the database.
	FieldCompanyName = "company_name"
	// FieldOldID holds the string denoting the old_id field in the database.
	FieldOldID = "old_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeIcons holds the string denoting the icons edge name in mutations.
	EdgeIcons = "icons"
	// EdgeDetails holds the string denoting the details edge name in mutations.
	EdgeDetails = "details"
	// Table holds the table name of the technology in the database.
	Table = "technologies"
	// IconsTable is the table that holds the icons relation/edge.
	IconsTable = "tech_icons"
	// IconsInverseTable is the table name for the TechIcon entity.
	// It exists in this package in order to avoid circular dependency with the "techicon" package.
	IconsInverseTable = "tech_icons"
	// IconsColumn is the table column denoting the icons relation/edge.
	IconsColumn = "tech_icon_technology"
	// DetailsTable is the table that holds the details relation/edge.
	DetailsTable = "tech_details"
	// DetailsInverseTable is the table name for the TechDetail entity.
	// It exists in this package in order to avoid circular dependency with the "techdetail" package.
	DetailsInverseTable = "tech_details"
	// DetailsColumn is the table column denoting the details relation/edge.
	DetailsColumn = "technology_details"
)

// Columns holds all SQL columns for technology fields.
var Columns = []string{
	FieldID,
	FieldCompanyName,
	FieldOldID,
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
	// CompanyNameValidator is a validator for the "company_name" field. It is called by the builders before save.
	CompanyNameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Technology queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompanyName orders the results by the company_name field.
func ByCompanyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyName, opts...).ToFunc()
}

// ByOldID orders the results by the old_id field.
func ByOldID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByIconsCount orders the results by icons count.
func ByIconsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newIconsStep(), opts...)
	}
}

// ByIcons orders the results by icons terms.
func ByIcons(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIconsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDetailsField orders the results by details field.
func ByDetailsField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDetailsStep(), sql.OrderByField(field, opts...))
	}
}
func newIconsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IconsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, true, IconsTable, IconsColumn),
	)
}
func newDetailsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DetailsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, DetailsTable, DetailsColumn),
	)
}
