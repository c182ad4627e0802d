// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"portfolio-api/ent/techdetail"
	"portfolio-api/ent/technology"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// TechDetail is the model entity for the TechDetail schema.
type TechDetail struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// WebsiteURL holds the value of the "website_url" field.
	WebsiteURL string `json:"website_url,omitempty"`
	// Category holds the value of the "category" field.
	Category techdetail.Category `json:"category,omitempty"`
	// MyStack holds the value of the "my_stack" field.
	MyStack bool `json:"my_stack,omitempty"`
	// IsFavorite holds the value of the "is_favorite" field.
	IsFavorite bool `json:"is_favorite,omitempty"`
	// UseCase holds the value of the "use_case" field.
	UseCase string `json:"use_case,omitempty"`
	// Experience holds the value of the "experience" field.
	Experience string `json:"experience,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Comment holds the value of the "comment" field.
	Comment string `json:"comment,omitempty"`
	// Purchased holds the value of the "purchased" field.
	Purchased bool `json:"purchased,omitempty"`
	// YearBeganUsing holds the value of the "year_began_using" field.
	YearBeganUsing int `json:"year_began_using,omitempty"`
	// MonthBeganUsing holds the value of the "month_began_using" field.
	MonthBeganUsing techdetail.MonthBeganUsing `json:"month_began_using,omitempty"`
	// SkillLevel holds the value of the "skill_level" field.
	SkillLevel techdetail.SkillLevel `json:"skill_level,omitempty"`
	// Rating holds the value of the "rating" field.
	Rating techdetail.Rating `json:"rating,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TechDetailQuery when eager-loading is set.
	Edges              TechDetailEdges `json:"edges"`
	technology_details *uuid.UUID
	selectValues       sql.SelectValues
}

// TechDetailEdges holds the relations/edges for other nodes in the graph.
type TechDetailEdges struct {
	// Technology holds the value of the technology edge.
	Technology *Technology `json:"technology,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TechnologyOrErr returns the Technology value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TechDetailEdges) TechnologyOrErr() (*Technology, error) {
	if e.Technology != nil {
		return e.Technology, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: technology.Label}
	}
	return nil, &NotLoadedError{edge: "technology"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TechDetail) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case techdetail.FieldMyStack, techdetail.FieldIsFavorite, techdetail.FieldPurchased:
			values[i] = new(sql.NullBool)
		case techdetail.FieldYearBeganUsing:
			values[i] = new(sql.NullInt64)
		case techdetail.FieldWebsiteURL, techdetail.FieldCategory, techdetail.FieldUseCase, techdetail.FieldExperience, techdetail.FieldDescription, techdetail.FieldComment, techdetail.FieldMonthBeganUsing, techdetail.FieldSkillLevel, techdetail.FieldRating:
			values[i] = new(sql.NullString)
		case techdetail.FieldCreatedAt, techdetail.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case techdetail.FieldID:
			values[i] = new(uuid.UUID)
		case techdetail.ForeignKeys[0]: // technology_details
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TechDetail fields.
func (_m *TechDetail) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case techdetail.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case techdetail.FieldWebsiteURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field website_url", values[i])
			} else if value.Valid {
				_m.WebsiteURL = value.String
			}
		case techdetail.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = techdetail.Category(value.String)
			}
		case techdetail.FieldMyStack:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field my_stack", values[i])
			} else if value.Valid {
				_m.MyStack = value.Bool
			}
		case techdetail.FieldIsFavorite:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_favorite", values[i])
			} else if value.Valid {
				_m.IsFavorite = value.Bool
			}
		case techdetail.FieldUseCase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field use_case", values[i])
			} else if value.Valid {
				_m.UseCase = value.String
			}
		case techdetail.FieldExperience:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field experience", values[i])
			} else if value.Valid {
				_m.Experience = value.String
			}
		case techdetail.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case techdetail.FieldComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comment", values[i])
			} else if value.Valid {
				_m.Comment = value.String
			}
		case techdetail.FieldPurchased:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field purchased", values[i])
			} else if value.Valid {
				_m.Purchased = value.Bool
			}
		case techdetail.FieldYearBeganUsing:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field year_began_using", values[i])
			} else if value.Valid {
				_m.YearBeganUsing = int(value.Int64)
			}
		case techdetail.FieldMonthBeganUsing:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field month_began_using", values[i])
			} else if value.Valid {
				_m.MonthBeganUsing = techdetail.MonthBeganUsing(value.String)
			}
		case techdetail.FieldSkillLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_level", values[i])
			} else if value.Valid {
				_m.SkillLevel = techdetail.SkillLevel(value.String)
			}
		case techdetail.FieldRating:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value.Valid {
				_m.Rating = techdetail.Rating(value.String)
			}
		case techdetail.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case techdetail.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case techdetail.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field technology_details", values[i])
			} else if value.Valid {
				_m.technology_details = new(uuid.UUID)
				*_m.technology_details = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TechDetail.
// This includes values selected through modifiers, order, etc.
func (_m *TechDetail) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTechnology queries the "technology" edge of the TechDetail entity.
func (_m *TechDetail) QueryTechnology() *TechnologyQuery {
	return NewTechDetailClient(_m.config).QueryTechnology(_m)
}

// Update returns a builder for updating this TechDetail.
// Note that you need to call TechDetail.Unwrap() before calling this method if this TechDetail
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TechDetail) Update() *TechDetailUpdateOne {
	return NewTechDetailClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TechDetail entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TechDetail) Unwrap() *TechDetail {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TechDetail is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TechDetail) String() string {
	var builder strings.Builder
	builder.WriteString("TechDetail(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("website_url=")
	builder.WriteString(_m.WebsiteURL)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(fmt.Sprintf("%v", _m.Category))
	builder.WriteString(", ")
	builder.WriteString("my_stack=")
	builder.WriteString(fmt.Sprintf("%v", _m.MyStack))
	builder.WriteString(", ")
	builder.WriteString("is_favorite=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsFavorite))
	builder.WriteString(", ")
	builder.WriteString("use_case=")
	builder.WriteString(_m.UseCase)
	builder.WriteString(", ")
	builder.WriteString("experience=")
	builder.WriteString(_m.Experience)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("comment=")
	builder.WriteString(_m.Comment)
	builder.WriteString(", ")
	builder.WriteString("purchased=")
	builder.WriteString(fmt.Sprintf("%v", _m.Purchased))
	builder.WriteString(", ")
	builder.WriteString("year_began_using=")
	builder.WriteString(fmt.Sprintf("%v", _m.YearBeganUsing))
	builder.WriteString(", ")
	builder.WriteString("month_began_using=")
	builder.WriteString(fmt.Sprintf("%v", _m.MonthBeganUsing))
	builder.WriteString(", ")
	builder.WriteString("skill_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkillLevel))
	builder.WriteString(", ")
	builder.WriteString("rating=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rating))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TechDetails is a parsable slice of TechDetail.
type TechDetails []*TechDetail
