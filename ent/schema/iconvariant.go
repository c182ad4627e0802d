package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// IconVariant is a named visual style bucket icon assets can belong to,
// e.g. "color" or "line". Icons reference it weakly.
type IconVariant struct{ ent.Schema }

// Fields defines the fields for the IconVariant entity.
func (IconVariant) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("name").NotEmpty().MaxLen(255),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
