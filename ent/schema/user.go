package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// User is an admin account. The dashboard has a single access tier, so there
// is no role model beyond "a user exists and is active".
type User struct{ ent.Schema }

// Fields defines the fields for the User entity.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("username").NotEmpty().Unique().MaxLen(255),
		field.String("display_name").Optional().MaxLen(255),
		// argon2id PHC-encoded hash
		field.String("password_hash").Sensitive(),
		field.Bool("is_active").Default(true),
		field.Time("last_login_at").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
