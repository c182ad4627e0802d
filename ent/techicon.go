// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"portfolio-api/ent/iconvariant"
	"portfolio-api/ent/techicon"
	"portfolio-api/ent/technology"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// TechIcon is the model entity for the TechIcon schema.
type TechIcon struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FileURL holds the value of the "file_url" field.
	FileURL string `json:"file_url,omitempty"`
	// ShouldInvertOnDark holds the value of the "should_invert_on_dark" field.
	ShouldInvertOnDark bool `json:"should_invert_on_dark,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TechIconQuery when eager-loading is set.
	Edges                TechIconEdges `json:"edges"`
	tech_icon_technology *uuid.UUID
	tech_icon_variant    *uuid.UUID
	selectValues         sql.SelectValues
}

// TechIconEdges holds the relations/edges for other nodes in the graph.
type TechIconEdges struct {
	// Technology holds the value of the technology edge.
	Technology *Technology `json:"technology,omitempty"`
	// Variant holds the value of the variant edge.
	Variant *IconVariant `json:"variant,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TechnologyOrErr returns the Technology value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TechIconEdges) TechnologyOrErr() (*Technology, error) {
	if e.Technology != nil {
		return e.Technology, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: technology.Label}
	}
	return nil, &NotLoadedError{edge: "technology"}
}

// VariantOrErr returns the Variant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TechIconEdges) VariantOrErr() (*IconVariant, error) {
	if e.Variant != nil {
		return e.Variant, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: iconvariant.Label}
	}
	return nil, &NotLoadedError{edge: "variant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TechIcon) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case techicon.FieldShouldInvertOnDark:
			values[i] = new(sql.NullBool)
		case techicon.FieldVersion:
			values[i] = new(sql.NullInt64)
		case techicon.FieldFileURL:
			values[i] = new(sql.NullString)
		case techicon.FieldCreatedAt, techicon.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case techicon.FieldID:
			values[i] = new(uuid.UUID)
		case techicon.ForeignKeys[0]: // tech_icon_technology
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case techicon.ForeignKeys[1]: // tech_icon_variant
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TechIcon fields.
func (_m *TechIcon) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case techicon.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case techicon.FieldFileURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_url", values[i])
			} else if value.Valid {
				_m.FileURL = value.String
			}
		case techicon.FieldShouldInvertOnDark:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field should_invert_on_dark", values[i])
			} else if value.Valid {
				_m.ShouldInvertOnDark = value.Bool
			}
		case techicon.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case techicon.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case techicon.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case techicon.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field tech_icon_technology", values[i])
			} else if value.Valid {
				_m.tech_icon_technology = new(uuid.UUID)
				*_m.tech_icon_technology = *value.S.(*uuid.UUID)
			}
		case techicon.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field tech_icon_variant", values[i])
			} else if value.Valid {
				_m.tech_icon_variant = new(uuid.UUID)
				*_m.tech_icon_variant = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TechIcon.
// This includes values selected through modifiers, order, etc.
func (_m *TechIcon) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTechnology queries the "technology" edge of the TechIcon entity.
func (_m *TechIcon) QueryTechnology() *TechnologyQuery {
	return NewTechIconClient(_m.config).QueryTechnology(_m)
}

// QueryVariant queries the "variant" edge of the TechIcon entity.
func (_m *TechIcon) QueryVariant() *IconVariantQuery {
	return NewTechIconClient(_m.config).QueryVariant(_m)
}

// Update returns a builder for updating this TechIcon.
// Note that you need to call TechIcon.Unwrap() before calling this method if this TechIcon
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TechIcon) Update() *TechIconUpdateOne {
	return NewTechIconClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TechIcon entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TechIcon) Unwrap() *TechIcon {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TechIcon is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TechIcon) String() string {
	var builder strings.Builder
	builder.WriteString("TechIcon(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_url=")
	builder.WriteString(_m.FileURL)
	builder.WriteString(", ")
	builder.WriteString("should_invert_on_dark=")
	builder.WriteString(fmt.Sprintf("%v", _m.ShouldInvertOnDark))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TechIcons is a parsable slice of TechIcon.
type TechIcons []*TechIcon
