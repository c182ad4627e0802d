// Package schema defines Ent ORM schema types for the application.
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Technology represents a tool or company tracked in the portfolio tech stack.
type Technology struct{ ent.Schema }

// Fields defines the fields for the Technology entity.
func (Technology) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("company_name").NotEmpty().MaxLen(255),
		// legacy external id, kept for one-time migration lookups
		field.String("old_id").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges defines the relationships for the Technology entity.
func (Technology) Edges() []ent.Edge {
	return []ent.Edge{
		// icon assets across variants and versions (one-to-many)
		edge.From("icons", TechIcon.Type).Ref("technology"),
		// at most one details record (one-to-one)
		edge.To("details", TechDetail.Type).Unique(),
	}
}

// Indexes defines indexes for the Technology entity.
func (Technology) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("old_id"),
		index.Fields("updated_at"),
	}
}
