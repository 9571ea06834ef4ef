// Code generated by ent, DO NOT EDIT.

package farmerdocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the farmerdocument type in the database.
	Label = "farmer_document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFarmerID holds the string denoting the farmer_id field in the database.
	FieldFarmerID = "farmer_id"
	// FieldDocType holds the string denoting the doc_type field in the database.
	FieldDocType = "doc_type"
	// FieldFields holds the string denoting the fields field in the database.
	FieldFields = "fields"
	// FieldExtractionConfidence holds the string denoting the extraction_confidence field in the database.
	FieldExtractionConfidence = "extraction_confidence"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldUploadedAt holds the string denoting the uploaded_at field in the database.
	FieldUploadedAt = "uploaded_at"
	// EdgeFarmer holds the string denoting the farmer edge name in mutations.
	EdgeFarmer = "farmer"
	// Table holds the table name of the farmerdocument in the database.
	Table = "farmer_documents"
	// FarmerTable is the table that holds the farmer relation/edge.
	FarmerTable = "farmer_documents"
	// FarmerInverseTable is the table name for the Farmer entity.
	// It exists in this package in order to avoid circular dependency with the "farmer" package.
	FarmerInverseTable = "farmers"
	// FarmerColumn is the table column denoting the farmer relation/edge.
	FarmerColumn = "farmer_id"
)

// Columns holds all SQL columns for farmerdocument fields.
var Columns = []string{
	FieldID,
	FieldFarmerID,
	FieldDocType,
	FieldFields,
	FieldExtractionConfidence,
	FieldRawText,
	FieldUploadedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DocTypeValidator is a validator for the "doc_type" field. It is called by the builders before save.
	DocTypeValidator func(string) error
	// DefaultUploadedAt holds the default value on creation for the "uploaded_at" field.
	DefaultUploadedAt func() time.Time
	// UpdateDefaultUploadedAt holds the default value on update for the "uploaded_at" field.
	UpdateDefaultUploadedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the FarmerDocument queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFarmerID orders the results by the farmer_id field.
func ByFarmerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFarmerID, opts...).ToFunc()
}

// ByDocType orders the results by the doc_type field.
func ByDocType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocType, opts...).ToFunc()
}

// ByExtractionConfidence orders the results by the extraction_confidence field.
func ByExtractionConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionConfidence, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}

// ByUploadedAt orders the results by the uploaded_at field.
func ByUploadedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedAt, opts...).ToFunc()
}

// ByFarmerField orders the results by farmer field.
func ByFarmerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFarmerStep(), sql.OrderByField(field, opts...))
	}
}
func newFarmerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FarmerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FarmerTable, FarmerColumn),
	)
}
