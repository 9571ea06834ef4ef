// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chandrashekharddev/agroscheme/gen/ent/scheme"
	"github.com/google/uuid"
)

// Scheme is the model entity for the Scheme schema.
type Scheme struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// BenefitAmount holds the value of the "benefit_amount" field.
	BenefitAmount float64 `json:"benefit_amount,omitempty"`
	// Criteria holds the value of the "criteria" field.
	Criteria json.RawMessage `json:"criteria,omitempty"`
	// RequiredDocuments holds the value of the "required_documents" field.
	RequiredDocuments []string `json:"required_documents,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SchemeQuery when eager-loading is set.
	Edges        SchemeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SchemeEdges holds the relations/edges for other nodes in the graph.
type SchemeEdges struct {
	// Applications holds the value of the applications edge.
	Applications []*Application `json:"applications,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ApplicationsOrErr returns the Applications value or an error if the edge
// was not loaded in eager-loading.
func (e SchemeEdges) ApplicationsOrErr() ([]*Application, error) {
	if e.loadedTypes[0] {
		return e.Applications, nil
	}
	return nil, &NotLoadedError{edge: "applications"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Scheme) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scheme.FieldCriteria, scheme.FieldRequiredDocuments:
			values[i] = new([]byte)
		case scheme.FieldActive:
			values[i] = new(sql.NullBool)
		case scheme.FieldBenefitAmount:
			values[i] = new(sql.NullFloat64)
		case scheme.FieldName, scheme.FieldDescription:
			values[i] = new(sql.NullString)
		case scheme.FieldCreatedAt, scheme.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case scheme.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Scheme fields.
func (_m *Scheme) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scheme.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case scheme.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case scheme.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case scheme.FieldBenefitAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field benefit_amount", values[i])
			} else if value.Valid {
				_m.BenefitAmount = value.Float64
			}
		case scheme.FieldCriteria:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field criteria", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Criteria); err != nil {
					return fmt.Errorf("unmarshal field criteria: %w", err)
				}
			}
		case scheme.FieldRequiredDocuments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field required_documents", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RequiredDocuments); err != nil {
					return fmt.Errorf("unmarshal field required_documents: %w", err)
				}
			}
		case scheme.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case scheme.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case scheme.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Scheme.
// This includes values selected through modifiers, order, etc.
func (_m *Scheme) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryApplications queries the "applications" edge of the Scheme entity.
func (_m *Scheme) QueryApplications() *ApplicationQuery {
	return NewSchemeClient(_m.config).QueryApplications(_m)
}

// Update returns a builder for updating this Scheme.
// Note that you need to call Scheme.Unwrap() before calling this method if this Scheme
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Scheme) Update() *SchemeUpdateOne {
	return NewSchemeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Scheme entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Scheme) Unwrap() *Scheme {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Scheme is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Scheme) String() string {
	var builder strings.Builder
	builder.WriteString("Scheme(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("benefit_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.BenefitAmount))
	builder.WriteString(", ")
	builder.WriteString("criteria=")
	builder.WriteString(fmt.Sprintf("%v", _m.Criteria))
	builder.WriteString(", ")
	builder.WriteString("required_documents=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiredDocuments))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Schemes is a parsable slice of Scheme.
type Schemes []*Scheme
