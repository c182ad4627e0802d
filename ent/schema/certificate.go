package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Certificate represents a professional certificate shown on the portfolio.
type Certificate struct{ ent.Schema }

// Fields defines the fields for the Certificate entity.
func (Certificate) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("title").NotEmpty().MaxLen(255),
		field.String("issuer").Optional().MaxLen(255),
		field.Enum("issue_month").
			Values("Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec").
			Optional(),
		field.Int("issue_year").Default(0),
		field.Enum("expiry_month").
			Values("Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec").
			Optional(),
		field.Int("expiry_year").Optional(),
		field.String("credential_id").Optional().MaxLen(255),
		field.String("credential_url").Optional().MaxLen(1000),
		field.Text("description").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Indexes defines indexes for the Certificate entity.
func (Certificate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("issue_year"),
		index.Fields("updated_at"),
	}
}
