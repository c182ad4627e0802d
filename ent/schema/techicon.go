package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// TechIcon is one versioned icon asset belonging to a Technology, optionally
// tagged with an IconVariant. The natural key is (technology, variant, version).
type TechIcon struct{ ent.Schema }

// Fields defines the fields for the TechIcon entity.
func (TechIcon) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		// an icon row may exist before its asset is uploaded
		field.String("file_url").Optional().MaxLen(1000),
		field.Bool("should_invert_on_dark").Default(false),
		field.Int("version").Default(1).Min(1),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges defines the relationships for the TechIcon entity.
func (TechIcon) Edges() []ent.Edge {
	return []ent.Edge{
		// owning technology (required)
		edge.To("technology", Technology.Type).Unique().Required(),
		// optional style bucket; weak reference, the variant never points back
		edge.To("variant", IconVariant.Type).Unique(),
	}
}

// Indexes defines indexes for the TechIcon entity.
func (TechIcon) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("technology"),
		index.Edges("variant"),
		// one icon per (technology, variant, version); rows without a variant
		// fall outside the unique constraint per SQL NULL semantics
		index.Fields("version").Edges("technology", "variant").Unique(),
	}
}
