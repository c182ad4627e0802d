package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Task is an item on the admin dashboard todo list.
type Task struct{ ent.Schema }

// Fields defines the fields for the Task entity.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("title").NotEmpty().MaxLen(500),
		field.Bool("done").Default(false),
		field.Int("position").Default(0),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Indexes defines indexes for the Task entity.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("position"),
	}
}
