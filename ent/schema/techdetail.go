package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// TechDetail holds the descriptive record attached to exactly one Technology.
type TechDetail struct{ ent.Schema }

// Fields defines the fields for the TechDetail entity.
func (TechDetail) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("website_url").Optional().MaxLen(1000),
		field.Enum("category").
			Values(
				"Frontend",
				"Backend",
				"Database",
				"DevOps",
				"Design",
				"Testing",
				"Hosting",
				"AI",
				"Productivity",
				"Other",
			),
		field.Bool("my_stack").Default(false),
		field.Bool("is_favorite").Default(false),
		field.Text("use_case").Optional(),
		field.Text("experience").Optional(),
		field.Text("description").Optional(),
		field.Text("comment").Optional(),
		field.Bool("purchased").Default(false),
		field.Int("year_began_using").Default(0),
		// unset means the admin never picked a month
		field.Enum("month_began_using").
			Values("Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec").
			Optional(),
		field.Enum("skill_level").
			NamedValues("One", "1", "Two", "2", "Three", "3", "Four", "4", "Five", "5").
			Optional(),
		field.Enum("rating").
			NamedValues("One", "1", "Two", "2", "Three", "3", "Four", "4", "Five", "5").
			Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges defines the relationships for the TechDetail entity.
func (TechDetail) Edges() []ent.Edge {
	return []ent.Edge{
		// owning technology; unique edge enforces the one-details-per-technology rule
		edge.From("technology", Technology.Type).Ref("details").Unique().Required(),
	}
}

// Indexes defines indexes for the TechDetail entity.
func (TechDetail) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("technology").Unique(),
		index.Fields("category"),
	}
}
