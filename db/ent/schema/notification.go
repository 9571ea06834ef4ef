package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/chandrashekharddev/agroscheme/constants"
	"github.com/chandrashekharddev/agroscheme/db/ent/schema/utils"
)

type Notification struct{ ent.Schema }

func (Notification) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "notifications"},
	}
}

func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("farmer_id", uuid.UUID{}),
		field.String("title").NotEmpty(),
		field.String("message").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("notification_type").
			Validate(utils.EnumValidator(
				string(constants.NotifyApplication),
				string(constants.NotifyStatusChange),
				string(constants.NotifyScheme),
			)),
		field.Bool("read").Default(false),
		field.Time("created_at").Default(time.Now),
	}
}

func (Notification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("farmer", Farmer.Type).
			Ref("notifications").
			Field("farmer_id").
			Unique().
			Required(),
	}
}

func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("farmer_id", "read", "created_at"),
	}
}
