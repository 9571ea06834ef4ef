// Code generated by ent, DO NOT EDIT.

package notification

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the notification type in the database.
	Label = "notification"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFarmerID holds the string denoting the farmer_id field in the database.
	FieldFarmerID = "farmer_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldNotificationType holds the string denoting the notification_type field in the database.
	FieldNotificationType = "notification_type"
	// FieldRead holds the string denoting the read field in the database.
	FieldRead = "read"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeFarmer holds the string denoting the farmer edge name in mutations.
	EdgeFarmer = "farmer"
	// Table holds the table name of the notification in the database.
	Table = "notifications"
	// FarmerTable is the table that holds the farmer relation/edge.
	FarmerTable = "notifications"
	// FarmerInverseTable is the table name for the Farmer entity.
	// It exists in this package in order to avoid circular dependency with the "farmer" package.
	FarmerInverseTable = "farmers"
	// FarmerColumn is the table column denoting the farmer relation/edge.
	FarmerColumn = "farmer_id"
)

// Columns holds all SQL columns for notification fields.
var Columns = []string{
	FieldID,
	FieldFarmerID,
	FieldTitle,
	FieldMessage,
	FieldNotificationType,
	FieldRead,
	FieldCreatedAt,
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
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// NotificationTypeValidator is a validator for the "notification_type" field. It is called by the builders before save.
	NotificationTypeValidator func(string) error
	// DefaultRead holds the default value on creation for the "read" field.
	DefaultRead bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Notification queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFarmerID orders the results by the farmer_id field.
func ByFarmerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFarmerID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByNotificationType orders the results by the notification_type field.
func ByNotificationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotificationType, opts...).ToFunc()
}

// ByRead orders the results by the read field.
func ByRead(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRead, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
