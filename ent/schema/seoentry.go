package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SeoEntry holds per-page SEO metadata and drives sitemap generation.
type SeoEntry struct{ ent.Schema }

// Fields defines the fields for the SeoEntry entity.
func (SeoEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		// site-relative path, e.g. "/" or "/certificates"
		field.String("path").NotEmpty().MaxLen(500).Unique(),
		field.String("title").Optional().MaxLen(255),
		field.String("description").Optional().MaxLen(1000),
		field.String("keywords").Optional().MaxLen(1000),
		field.String("og_image").Optional().MaxLen(1000),
		field.Enum("change_freq").
			Values("always", "hourly", "daily", "weekly", "monthly", "yearly", "never").
			Default("monthly"),
		field.Float("priority").Default(0.5).Min(0).Max(1),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
