// Code generated by ent, DO NOT EDIT.

package application

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the application type in the database.
	Label = "application"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldApplicationID holds the string denoting the application_id field in the database.
	FieldApplicationID = "application_id"
	// FieldFarmerID holds the string denoting the farmer_id field in the database.
	FieldFarmerID = "farmer_id"
	// FieldSchemeID holds the string denoting the scheme_id field in the database.
	FieldSchemeID = "scheme_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldAppliedAmount holds the string denoting the applied_amount field in the database.
	FieldAppliedAmount = "applied_amount"
	// FieldApprovedAmount holds the string denoting the approved_amount field in the database.
	FieldApprovedAmount = "approved_amount"
	// FieldEligibility holds the string denoting the eligibility field in the database.
	FieldEligibility = "eligibility"
	// FieldStatusHistory holds the string denoting the status_history field in the database.
	FieldStatusHistory = "status_history"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeFarmer holds the string denoting the farmer edge name in mutations.
	EdgeFarmer = "farmer"
	// EdgeScheme holds the string denoting the scheme edge name in mutations.
	EdgeScheme = "scheme"
	// Table holds the table name of the application in the database.
	Table = "applications"
	// FarmerTable is the table that holds the farmer relation/edge.
	FarmerTable = "applications"
	// FarmerInverseTable is the table name for the Farmer entity.
	// It exists in this package in order to avoid circular dependency with the "farmer" package.
	FarmerInverseTable = "farmers"
	// FarmerColumn is the table column denoting the farmer relation/edge.
	FarmerColumn = "farmer_id"
	// SchemeTable is the table that holds the scheme relation/edge.
	SchemeTable = "applications"
	// SchemeInverseTable is the table name for the Scheme entity.
	// It exists in this package in order to avoid circular dependency with the "scheme" package.
	SchemeInverseTable = "schemes"
	// SchemeColumn is the table column denoting the scheme relation/edge.
	SchemeColumn = "scheme_id"
)

// Columns holds all SQL columns for application fields.
var Columns = []string{
	FieldID,
	FieldApplicationID,
	FieldFarmerID,
	FieldSchemeID,
	FieldStatus,
	FieldSource,
	FieldAppliedAmount,
	FieldApprovedAmount,
	FieldEligibility,
	FieldStatusHistory,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// ApplicationIDValidator is a validator for the "application_id" field. It is called by the builders before save.
	ApplicationIDValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultSource holds the default value on creation for the "source" field.
	DefaultSource string
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Application queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByApplicationID orders the results by the application_id field.
func ByApplicationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplicationID, opts...).ToFunc()
}

// ByFarmerID orders the results by the farmer_id field.
func ByFarmerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFarmerID, opts...).ToFunc()
}

// BySchemeID orders the results by the scheme_id field.
func BySchemeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchemeID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByAppliedAmount orders the results by the applied_amount field.
func ByAppliedAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppliedAmount, opts...).ToFunc()
}

// ByApprovedAmount orders the results by the approved_amount field.
func ByApprovedAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovedAmount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByFarmerField orders the results by farmer field.
func ByFarmerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFarmerStep(), sql.OrderByField(field, opts...))
	}
}

// BySchemeField orders the results by scheme field.
func BySchemeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSchemeStep(), sql.OrderByField(field, opts...))
	}
}
func newFarmerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FarmerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FarmerTable, FarmerColumn),
	)
}
func newSchemeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SchemeInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SchemeTable, SchemeColumn),
	)
}
