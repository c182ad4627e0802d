package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// CustomForm is an admin-built form definition rendered by the marketing site.
type CustomForm struct{ ent.Schema }

// Fields defines the fields for the CustomForm entity.
func (CustomForm) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("title").NotEmpty().MaxLen(255),
		field.String("slug").NotEmpty().MaxLen(255).Unique(),
		// field definitions as an ordered list of JSON objects
		field.JSON("fields", []map[string]any{}).Optional(),
		field.Bool("active").Default(true),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
