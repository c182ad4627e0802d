// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"portfolio-api/ent/seoentry"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// SeoEntry is the model entity for the SeoEntry schema.
type SeoEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Path holds the value of the "path" field.
	Path string `json:"path,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Keywords holds the value of the "keywords" field.
	Keywords string `json:"keywords,omitempty"`
	// OgImage holds the value of the "og_image" field.
	OgImage string `json:"og_image,omitempty"`
	// ChangeFreq holds the value of the "change_freq" field.
	ChangeFreq seoentry.ChangeFreq `json:"change_freq,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority float64 `json:"priority,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SeoEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case seoentry.FieldPriority:
			values[i] = new(sql.NullFloat64)
		case seoentry.FieldPath, seoentry.FieldTitle, seoentry.FieldDescription, seoentry.FieldKeywords, seoentry.FieldOgImage, seoentry.FieldChangeFreq:
			values[i] = new(sql.NullString)
		case seoentry.FieldCreatedAt, seoentry.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case seoentry.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SeoEntry fields.
func (_m *SeoEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case seoentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case seoentry.FieldPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field path", values[i])
			} else if value.Valid {
				_m.Path = value.String
			}
		case seoentry.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case seoentry.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case seoentry.FieldKeywords:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field keywords", values[i])
			} else if value.Valid {
				_m.Keywords = value.String
			}
		case seoentry.FieldOgImage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field og_image", values[i])
			} else if value.Valid {
				_m.OgImage = value.String
			}
		case seoentry.FieldChangeFreq:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field change_freq", values[i])
			} else if value.Valid {
				_m.ChangeFreq = seoentry.ChangeFreq(value.String)
			}
		case seoentry.FieldPriority:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = value.Float64
			}
		case seoentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case seoentry.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SeoEntry.
// This includes values selected through modifiers, order, etc.
func (_m *SeoEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SeoEntry.
// Note that you need to call SeoEntry.Unwrap() before calling this method if this SeoEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SeoEntry) Update() *SeoEntryUpdateOne {
	return NewSeoEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SeoEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SeoEntry) Unwrap() *SeoEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SeoEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SeoEntry) String() string {
	var builder strings.Builder
	builder.WriteString("SeoEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("path=")
	builder.WriteString(_m.Path)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("keywords=")
	builder.WriteString(_m.Keywords)
	builder.WriteString(", ")
	builder.WriteString("og_image=")
	builder.WriteString(_m.OgImage)
	builder.WriteString(", ")
	builder.WriteString("change_freq=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChangeFreq))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SeoEntries is a parsable slice of SeoEntry.
type SeoEntries []*SeoEntry
