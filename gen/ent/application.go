// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chandrashekharddev/agroscheme/gen/ent/application"
	"github.com/chandrashekharddev/agroscheme/gen/ent/farmer"
	"github.com/chandrashekharddev/agroscheme/gen/ent/scheme"
	"github.com/google/uuid"
)

// Application is the model entity for the Application schema.
type Application struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ApplicationID holds the value of the "application_id" field.
	ApplicationID string `json:"application_id,omitempty"`
	// FarmerID holds the value of the "farmer_id" field.
	FarmerID uuid.UUID `json:"farmer_id,omitempty"`
	// SchemeID holds the value of the "scheme_id" field.
	SchemeID uuid.UUID `json:"scheme_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// AppliedAmount holds the value of the "applied_amount" field.
	AppliedAmount *float64 `json:"applied_amount,omitempty"`
	// ApprovedAmount holds the value of the "approved_amount" field.
	ApprovedAmount *float64 `json:"approved_amount,omitempty"`
	// Eligibility holds the value of the "eligibility" field.
	Eligibility json.RawMessage `json:"eligibility,omitempty"`
	// StatusHistory holds the value of the "status_history" field.
	StatusHistory json.RawMessage `json:"status_history,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ApplicationQuery when eager-loading is set.
	Edges        ApplicationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ApplicationEdges holds the relations/edges for other nodes in the graph.
type ApplicationEdges struct {
	// Farmer holds the value of the farmer edge.
	Farmer *Farmer `json:"farmer,omitempty"`
	// Scheme holds the value of the scheme edge.
	Scheme *Scheme `json:"scheme,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FarmerOrErr returns the Farmer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ApplicationEdges) FarmerOrErr() (*Farmer, error) {
	if e.Farmer != nil {
		return e.Farmer, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: farmer.Label}
	}
	return nil, &NotLoadedError{edge: "farmer"}
}

// SchemeOrErr returns the Scheme value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ApplicationEdges) SchemeOrErr() (*Scheme, error) {
	if e.Scheme != nil {
		return e.Scheme, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: scheme.Label}
	}
	return nil, &NotLoadedError{edge: "scheme"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Application) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case application.FieldEligibility, application.FieldStatusHistory:
			values[i] = new([]byte)
		case application.FieldAppliedAmount, application.FieldApprovedAmount:
			values[i] = new(sql.NullFloat64)
		case application.FieldApplicationID, application.FieldStatus, application.FieldSource:
			values[i] = new(sql.NullString)
		case application.FieldCreatedAt, application.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case application.FieldID, application.FieldFarmerID, application.FieldSchemeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Application fields.
func (_m *Application) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case application.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case application.FieldApplicationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field application_id", values[i])
			} else if value.Valid {
				_m.ApplicationID = value.String
			}
		case application.FieldFarmerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field farmer_id", values[i])
			} else if value != nil {
				_m.FarmerID = *value
			}
		case application.FieldSchemeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field scheme_id", values[i])
			} else if value != nil {
				_m.SchemeID = *value
			}
		case application.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case application.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case application.FieldAppliedAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field applied_amount", values[i])
			} else if value.Valid {
				_m.AppliedAmount = new(float64)
				*_m.AppliedAmount = value.Float64
			}
		case application.FieldApprovedAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field approved_amount", values[i])
			} else if value.Valid {
				_m.ApprovedAmount = new(float64)
				*_m.ApprovedAmount = value.Float64
			}
		case application.FieldEligibility:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field eligibility", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Eligibility); err != nil {
					return fmt.Errorf("unmarshal field eligibility: %w", err)
				}
			}
		case application.FieldStatusHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field status_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StatusHistory); err != nil {
					return fmt.Errorf("unmarshal field status_history: %w", err)
				}
			}
		case application.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case application.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Application.
// This includes values selected through modifiers, order, etc.
func (_m *Application) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFarmer queries the "farmer" edge of the Application entity.
func (_m *Application) QueryFarmer() *FarmerQuery {
	return NewApplicationClient(_m.config).QueryFarmer(_m)
}

// QueryScheme queries the "scheme" edge of the Application entity.
func (_m *Application) QueryScheme() *SchemeQuery {
	return NewApplicationClient(_m.config).QueryScheme(_m)
}

// Update returns a builder for updating this Application.
// Note that you need to call Application.Unwrap() before calling this method if this Application
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Application) Update() *ApplicationUpdateOne {
	return NewApplicationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Application entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Application) Unwrap() *Application {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Application is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Application) String() string {
	var builder strings.Builder
	builder.WriteString("Application(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("application_id=")
	builder.WriteString(_m.ApplicationID)
	builder.WriteString(", ")
	builder.WriteString("farmer_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FarmerID))
	builder.WriteString(", ")
	builder.WriteString("scheme_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SchemeID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	if v := _m.AppliedAmount; v != nil {
		builder.WriteString("applied_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ApprovedAmount; v != nil {
		builder.WriteString("approved_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("eligibility=")
	builder.WriteString(fmt.Sprintf("%v", _m.Eligibility))
	builder.WriteString(", ")
	builder.WriteString("status_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.StatusHistory))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Applications is a parsable slice of Application.
type Applications []*Application
