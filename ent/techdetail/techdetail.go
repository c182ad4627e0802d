// Code generated by ent, DO NOT EDIT.

package techdetail

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the techdetail type in the database.
	Label = "tech_detail"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldWebsiteURL holds the string denoting the website_url field in the database.
	FieldWebsiteURL = "website_url"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldMyStack holds the string denoting the my_stack field in the database.
	FieldMyStack = "my_stack"
	// FieldIsFavorite holds the string denoting the is_favorite field in the database.
	FieldIsFavorite = "is_favorite"
	// FieldUseCase holds the string denoting the use_case field in the database.
	FieldUseCase = "use_case"
	// FieldExperience holds the string denoting the experience field in the database.
	FieldExperience = "experience"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldComment holds the string denoting the comment field in the database.
	FieldComment = "comment"
	// FieldPurchased holds the string denoting the purchased field in the database.
	FieldPurchased = "purchased"
	// FieldYearBeganUsing holds the string denoting the year_began_using field in the database.
	FieldYearBeganUsing = "year_began_using"
	// FieldMonthBeganUsing holds the string denoting the month_began_using field in the database.
	FieldMonthBeganUsing = "month_began_using"
	// FieldSkillLevel holds the string denoting the skill_level field in the database.
	FieldSkillLevel = "skill_level"
	// FieldRating holds the string denoting the rating field in the database.
	FieldRating = "rating"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTechnology holds the string denoting the technology edge name in mutations.
	EdgeTechnology = "technology"
	// Table holds the table name of the techdetail in the database.
	Table = "tech_details"
	// TechnologyTable is the table that holds the technology relation/edge.
	TechnologyTable = "tech_details"
	// TechnologyInverseTable is the table name for the Technology entity.
	// It exists in this package in order to avoid circular dependency with the "technology" package.
	TechnologyInverseTable = "technologies"
	// TechnologyColumn is the table column denoting the technology relation/edge.
	TechnologyColumn = "technology_details"
)

// Columns holds all SQL columns for techdetail fields.
var Columns = []string{
	FieldID,
	FieldWebsiteURL,
	FieldCategory,
	FieldMyStack,
	FieldIsFavorite,
	FieldUseCase,
	FieldExperience,
	FieldDescription,
	FieldComment,
	FieldPurchased,
	FieldYearBeganUsing,
	FieldMonthBeganUsing,
	FieldSkillLevel,
	FieldRating,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "tech_details"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"technology_details",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// WebsiteURLValidator is a validator for the "website_url" field. It is called by the builders before save.
	WebsiteURLValidator func(string) error
	// DefaultMyStack holds the default value on creation for the "my_stack" field.
	DefaultMyStack bool
	// DefaultIsFavorite holds the default value on creation for the "is_favorite" field.
	DefaultIsFavorite bool
	// DefaultPurchased holds the default value on creation for the "purchased" field.
	DefaultPurchased bool
	// DefaultYearBeganUsing holds the default value on creation for the "year_began_using" field.
	DefaultYearBeganUsing int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Category defines the type for the "category" enum field.
type Category string

// Category values.
const (
	CategoryFrontend     Category = "Frontend"
	CategoryBackend      Category = "Backend"
	CategoryDatabase     Category = "Database"
	CategoryDevOps       Category = "DevOps"
	CategoryDesign       Category = "Design"
	CategoryTesting      Category = "Testing"
	CategoryHosting      Category = "Hosting"
	CategoryAI           Category = "AI"
	CategoryProductivity Category = "Productivity"
	CategoryOther        Category = "Other"
)

func (c Category) String() string {
	return string(c)
}

// CategoryValidator is a validator for the "category" field enum values. It is called by the builders before save.
func CategoryValidator(c Category) error {
	switch c {
	case CategoryFrontend, CategoryBackend, CategoryDatabase, CategoryDevOps, CategoryDesign, CategoryTesting, CategoryHosting, CategoryAI, CategoryProductivity, CategoryOther:
		return nil
	default:
		return fmt.Errorf("techdetail: invalid enum value for category field: %q", c)
	}
}

// MonthBeganUsing defines the type for the "month_began_using" enum field.
type MonthBeganUsing string

// MonthBeganUsing values.
const (
	MonthBeganUsingJan MonthBeganUsing = "Jan"
	MonthBeganUsingFeb MonthBeganUsing = "Feb"
	MonthBeganUsingMar MonthBeganUsing = "Mar"
	MonthBeganUsingApr MonthBeganUsing = "Apr"
	MonthBeganUsingMay MonthBeganUsing = "May"
	MonthBeganUsingJun MonthBeganUsing = "Jun"
	MonthBeganUsingJul MonthBeganUsing = "Jul"
	MonthBeganUsingAug MonthBeganUsing = "Aug"
	MonthBeganUsingSep MonthBeganUsing = "Sep"
	MonthBeganUsingOct MonthBeganUsing = "Oct"
	MonthBeganUsingNov MonthBeganUsing = "Nov"
	MonthBeganUsingDec MonthBeganUsing = "Dec"
)

func (mbu MonthBeganUsing) String() string {
	return string(mbu)
}

// MonthBeganUsingValidator is a validator for the "month_began_using" field enum values. It is called by the builders before save.
func MonthBeganUsingValidator(mbu MonthBeganUsing) error {
	switch mbu {
	case MonthBeganUsingJan, MonthBeganUsingFeb, MonthBeganUsingMar, MonthBeganUsingApr, MonthBeganUsingMay, MonthBeganUsingJun, MonthBeganUsingJul, MonthBeganUsingAug, MonthBeganUsingSep, MonthBeganUsingOct, MonthBeganUsingNov, MonthBeganUsingDec:
		return nil
	default:
		return fmt.Errorf("techdetail: invalid enum value for month_began_using field: %q", mbu)
	}
}

// SkillLevel defines the type for the "skill_level" enum field.
type SkillLevel string

// SkillLevel values.
const (
	SkillLevelOne   SkillLevel = "1"
	SkillLevelTwo   SkillLevel = "2"
	SkillLevelThree SkillLevel = "3"
	SkillLevelFour  SkillLevel = "4"
	SkillLevelFive  SkillLevel = "5"
)

func (sl SkillLevel) String() string {
	return string(sl)
}

// SkillLevelValidator is a validator for the "skill_level" field enum values. It is called by the builders before save.
func SkillLevelValidator(sl SkillLevel) error {
	switch sl {
	case SkillLevelOne, SkillLevelTwo, SkillLevelThree, SkillLevelFour, SkillLevelFive:
		return nil
	default:
		return fmt.Errorf("techdetail: invalid enum value for skill_level field: %q", sl)
	}
}

// Rating defines the type for the "rating" enum field.
type Rating string

// Rating values.
const (
	RatingOne   Rating = "1"
	RatingTwo   Rating = "2"
	RatingThree Rating = "3"
	RatingFour  Rating = "4"
	RatingFive  Rating = "5"
)

func (r Rating) String() string {
	return string(r)
}

// RatingValidator is a validator for the "rating" field enum values. It is called by the builders before save.
func RatingValidator(r Rating) error {
	switch r {
	case RatingOne, RatingTwo, RatingThree, RatingFour, RatingFive:
		return nil
	default:
		return fmt.Errorf("techdetail: invalid enum value for rating field: %q", r)
	}
}

// OrderOption defines the ordering options for the TechDetail queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWebsiteURL orders the results by the website_url field.
func ByWebsiteURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebsiteURL, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByMyStack orders the results by the my_stack field.
func ByMyStack(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMyStack, opts...).ToFunc()
}

// ByIsFavorite orders the results by the is_favorite field.
func ByIsFavorite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsFavorite, opts...).ToFunc()
}

// ByUseCase orders the results by the use_case field.
func ByUseCase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUseCase, opts...).ToFunc()
}

// ByExperience orders the results by the experience field.
func ByExperience(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExperience, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByComment orders the results by the comment field.
func ByComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComment, opts...).ToFunc()
}

// ByPurchased orders the results by the purchased field.
func ByPurchased(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPurchased, opts...).ToFunc()
}

// ByYearBeganUsing orders the results by the year_began_using field.
func ByYearBeganUsing(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYearBeganUsing, opts...).ToFunc()
}

// ByMonthBeganUsing orders the results by the month_began_using field.
func ByMonthBeganUsing(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthBeganUsing, opts...).ToFunc()
}

// BySkillLevel orders the results by the skill_level field.
func BySkillLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillLevel, opts...).ToFunc()
}

// ByRating orders the results by the rating field.
func ByRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRating, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTechnologyField orders the results by technology field.
func ByTechnologyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTechnologyStep(), sql.OrderByField(field, opts...))
	}
}
func newTechnologyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TechnologyInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, TechnologyTable, TechnologyColumn),
	)
}
