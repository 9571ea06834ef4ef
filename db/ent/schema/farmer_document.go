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
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/chandrashekharddev/agroscheme/constants"
	"github.com/chandrashekharddev/agroscheme/db/ent/schema/utils"
)

type FarmerDocument struct{ ent.Schema }

func (FarmerDocument) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "farmer_documents"},
	}
}

func (FarmerDocument) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("farmer_id", uuid.UUID{}),
		field.String("doc_type").NotEmpty().
			Validate(utils.EnumValidator(constants.DocumentTypeStrings()...)),
		// Extracted field-set; overwritten wholesale on re-upload.
		field.JSON("fields", json.RawMessage{}).Optional(),
		field.Float32("extraction_confidence").Optional().Nillable(),
		field.String("raw_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("uploaded_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (FarmerDocument) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("farmer", Farmer.Type).
			Ref("documents").
			Field("farmer_id").
			Unique().
			Required(),
	}
}

func (FarmerDocument) Indexes() []ent.Index {
	return []ent.Index{
		// Last write wins: one field-set per (farmer, document type).
		index.Fields("farmer_id", "doc_type").Unique(),
	}
}
