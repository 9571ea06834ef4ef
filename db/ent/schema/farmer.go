package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Farmer struct{ ent.Schema }

func (Farmer) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "farmers"},
	}
}

func (Farmer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("farmer_code").NotEmpty().Unique(),
		field.String("name").NotEmpty(),
		field.String("phone").Optional().Nillable(),
		field.String("village").Optional().Nillable(),
		field.String("district").Optional().Nillable(),
		field.Bool("auto_apply").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Farmer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("documents", FarmerDocument.Type),
		edge.To("applications", Application.Type),
		edge.To("notifications", Notification.Type),
	}
}
