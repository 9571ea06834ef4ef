package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Scheme struct{ ent.Schema }

func (Scheme) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "schemes"},
	}
}

func (Scheme) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("description").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float("benefit_amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}).
			Default(0),
		// Criteria is immutable once the scheme exists; validated against
		// the criteria JSON schema before insert.
		field.JSON("criteria", json.RawMessage{}).Optional(),
		field.JSON("required_documents", []string{}).Optional(),
		field.Bool("active").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Scheme) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("applications", Application.Type),
	}
}
