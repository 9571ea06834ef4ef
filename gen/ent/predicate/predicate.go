// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Application is the predicate function for application builders.
type Application func(*sql.Selector)

// Farmer is the predicate function for farmer builders.
type Farmer func(*sql.Selector)

// FarmerDocument is the predicate function for farmerdocument builders.
type FarmerDocument func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Scheme is the predicate function for scheme builders.
type Scheme func(*sql.Selector)
