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

type Application struct{ ent.Schema }

func (Application) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "applications"},
	}
}

func (Application) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// Human-facing application identifier; the unique constraint here is
		// what the ID-collision retry loop keys off.
		field.String("application_id").NotEmpty().Unique().Immutable(),
		field.UUID("farmer_id", uuid.UUID{}),
		field.UUID("scheme_id", uuid.UUID{}),
		field.String("status").
			Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.ApplicationStatuses...)),
		field.String("source").
			Default(string(constants.SourceManual)).
			Validate(utils.EnumValidator(string(constants.SourceAuto), string(constants.SourceManual))),
		field.Float("applied_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("approved_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		// Eligibility verdict snapshot embedded at apply time for audit.
		field.JSON("eligibility", json.RawMessage{}).Optional(),
		// Append-only transition log: [{status, timestamp, approved_amount}].
		field.JSON("status_history", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Application) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("farmer", Farmer.Type).
			Ref("applications").
			Field("farmer_id").
			Unique().
			Required(),
		edge.From("scheme", Scheme.Type).
			Ref("applications").
			Field("scheme_id").
			Unique().
			Required(),
	}
}

func (Application) Indexes() []ent.Index {
	return []ent.Index{
		// At most one application per (farmer, scheme); the insert is the
		// authoritative uniqueness check under concurrent apply.
		index.Fields("farmer_id", "scheme_id").Unique(),
		index.Fields("scheme_id", "status"),
	}
}
