// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApplicationsColumns holds the columns for the "applications" table.
	ApplicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "application_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "source", Type: field.TypeString, Default: "MANUAL"},
		{Name: "applied_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "approved_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "eligibility", Type: field.TypeJSON, Nullable: true},
		{Name: "status_history", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "farmer_id", Type: field.TypeUUID},
		{Name: "scheme_id", Type: field.TypeUUID},
	}
	// ApplicationsTable holds the schema information for the "applications" table.
	ApplicationsTable = &schema.Table{
		Name:       "applications",
		Columns:    ApplicationsColumns,
		PrimaryKey: []*schema.Column{ApplicationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "applications_farmers_applications",
				Columns:    []*schema.Column{ApplicationsColumns[10]},
				RefColumns: []*schema.Column{FarmersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "applications_schemes_applications",
				Columns:    []*schema.Column{ApplicationsColumns[11]},
				RefColumns: []*schema.Column{SchemesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "application_farmer_id_scheme_id",
				Unique:  true,
				Columns: []*schema.Column{ApplicationsColumns[10], ApplicationsColumns[11]},
			},
			{
				Name:    "application_scheme_id_status",
				Unique:  false,
				Columns: []*schema.Column{ApplicationsColumns[11], ApplicationsColumns[2]},
			},
		},
	}
	// FarmersColumns holds the columns for the "farmers" table.
	FarmersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "farmer_code", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "village", Type: field.TypeString, Nullable: true},
		{Name: "district", Type: field.TypeString, Nullable: true},
		{Name: "auto_apply", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FarmersTable holds the schema information for the "farmers" table.
	FarmersTable = &schema.Table{
		Name:       "farmers",
		Columns:    FarmersColumns,
		PrimaryKey: []*schema.Column{FarmersColumns[0]},
	}
	// FarmerDocumentsColumns holds the columns for the "farmer_documents" table.
	FarmerDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "doc_type", Type: field.TypeString},
		{Name: "fields", Type: field.TypeJSON, Nullable: true},
		{Name: "extraction_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "farmer_id", Type: field.TypeUUID},
	}
	// FarmerDocumentsTable holds the schema information for the "farmer_documents" table.
	FarmerDocumentsTable = &schema.Table{
		Name:       "farmer_documents",
		Columns:    FarmerDocumentsColumns,
		PrimaryKey: []*schema.Column{FarmerDocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "farmer_documents_farmers_documents",
				Columns:    []*schema.Column{FarmerDocumentsColumns[6]},
				RefColumns: []*schema.Column{FarmersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "farmerdocument_farmer_id_doc_type",
				Unique:  true,
				Columns: []*schema.Column{FarmerDocumentsColumns[6], FarmerDocumentsColumns[1]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "notification_type", Type: field.TypeString},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "farmer_id", Type: field.TypeUUID},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notifications_farmers_notifications",
				Columns:    []*schema.Column{NotificationsColumns[6]},
				RefColumns: []*schema.Column{FarmersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notification_farmer_id_read_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[6], NotificationsColumns[4], NotificationsColumns[5]},
			},
		},
	}
	// SchemesColumns holds the columns for the "schemes" table.
	SchemesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "benefit_amount", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "criteria", Type: field.TypeJSON, Nullable: true},
		{Name: "required_documents", Type: field.TypeJSON, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SchemesTable holds the schema information for the "schemes" table.
	SchemesTable = &schema.Table{
		Name:       "schemes",
		Columns:    SchemesColumns,
		PrimaryKey: []*schema.Column{SchemesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApplicationsTable,
		FarmersTable,
		FarmerDocumentsTable,
		NotificationsTable,
		SchemesTable,
	}
)

func init() {
	ApplicationsTable.ForeignKeys[0].RefTable = FarmersTable
	ApplicationsTable.ForeignKeys[1].RefTable = SchemesTable
	ApplicationsTable.Annotation = &entsql.Annotation{
		Table: "applications",
	}
	FarmersTable.Annotation = &entsql.Annotation{
		Table: "farmers",
	}
	FarmerDocumentsTable.ForeignKeys[0].RefTable = FarmersTable
	FarmerDocumentsTable.Annotation = &entsql.Annotation{
		Table: "farmer_documents",
	}
	NotificationsTable.ForeignKeys[0].RefTable = FarmersTable
	NotificationsTable.Annotation = &entsql.Annotation{
		Table: "notifications",
	}
	SchemesTable.Annotation = &entsql.Annotation{
		Table: "schemes",
	}
}
