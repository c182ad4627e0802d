package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct{ ent.Schema }

// Fields defines the fields for the ContactMessage entity.
func (ContactMessage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("name").NotEmpty().MaxLen(255),
		field.String("email").NotEmpty().MaxLen(255),
		field.String("subject").Optional().MaxLen(255),
		field.Text("body").NotEmpty(),
		field.Bool("read").Default(false),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Indexes defines indexes for the ContactMessage entity.
func (ContactMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("read"),
		index.Fields("created_at"),
	}
}
