package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ChatbotSetting is the flat configuration record for the site chatbot.
// Inference itself happens in an external service; this only persists knobs.
type ChatbotSetting struct{ ent.Schema }

// Fields defines the fields for the ChatbotSetting entity.
func (ChatbotSetting) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.Bool("enabled").Default(false),
		field.String("model").Default("gpt-4o-mini").MaxLen(255),
		field.Float("temperature").Default(0.7).Min(0).Max(2),
		field.Text("system_prompt").Optional(),
		// knowledge-base configuration as a free-form JSON document
		field.JSON("knowledge", map[string]any{}).Optional(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
