// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chandrashekharddev/agroscheme/gen/ent/farmer"
	"github.com/google/uuid"
)

// Farmer is the model entity for the Farmer schema.
type Farmer struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FarmerCode holds the value of the "farmer_code" field.
	FarmerCode string `json:"farmer_code,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone *string `json:"phone,omitempty"`
	// Village holds the value of the "village" field.
	Village *string `json:"village,omitempty"`
	// District holds the value of the "district" field.
	District *string `json:"district,omitempty"`
	// AutoApply holds the value of the "auto_apply" field.
	AutoApply bool `json:"auto_apply,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FarmerQuery when eager-loading is set.
	Edges        FarmerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FarmerEdges holds the relations/edges for other nodes in the graph.
type FarmerEdges struct {
	// Documents holds the value of the documents edge.
	Documents []*FarmerDocument `json:"documents,omitempty"`
	// Applications holds the value of the applications edge.
	Applications []*Application `json:"applications,omitempty"`
	// Notifications holds the value of the notifications edge.
	Notifications []*Notification `json:"notifications,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e FarmerEdges) DocumentsOrErr() ([]*FarmerDocument, error) {
	if e.loadedTypes[0] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// ApplicationsOrErr returns the Applications value or an error if the edge
// was not loaded in eager-loading.
func (e FarmerEdges) ApplicationsOrErr() ([]*Application, error) {
	if e.loadedTypes[1] {
		return e.Applications, nil
	}
	return nil, &NotLoadedError{edge: "applications"}
}

// NotificationsOrErr returns the Notifications value or an error if the edge
// was not loaded in eager-loading.
func (e FarmerEdges) NotificationsOrErr() ([]*Notification, error) {
	if e.loadedTypes[2] {
		return e.Notifications, nil
	}
	return nil, &NotLoadedError{edge: "notifications"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Farmer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case farmer.FieldAutoApply:
			values[i] = new(sql.NullBool)
		case farmer.FieldFarmerCode, farmer.FieldName, farmer.FieldPhone, farmer.FieldVillage, farmer.FieldDistrict:
			values[i] = new(sql.NullString)
		case farmer.FieldCreatedAt, farmer.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case farmer.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Farmer fields.
func (_m *Farmer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case farmer.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case farmer.FieldFarmerCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field farmer_code", values[i])
			} else if value.Valid {
				_m.FarmerCode = value.String
			}
		case farmer.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case farmer.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = new(string)
				*_m.Phone = value.String
			}
		case farmer.FieldVillage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field village", values[i])
			} else if value.Valid {
				_m.Village = new(string)
				*_m.Village = value.String
			}
		case farmer.FieldDistrict:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field district", values[i])
			} else if value.Valid {
				_m.District = new(string)
				*_m.District = value.String
			}
		case farmer.FieldAutoApply:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field auto_apply", values[i])
			} else if value.Valid {
				_m.AutoApply = value.Bool
			}
		case farmer.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case farmer.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Farmer.
// This includes values selected through modifiers, order, etc.
func (_m *Farmer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocuments queries the "documents" edge of the Farmer entity.
func (_m *Farmer) QueryDocuments() *FarmerDocumentQuery {
	return NewFarmerClient(_m.config).QueryDocuments(_m)
}

// QueryApplications queries the "applications" edge of the Farmer entity.
func (_m *Farmer) QueryApplications() *ApplicationQuery {
	return NewFarmerClient(_m.config).QueryApplications(_m)
}

// QueryNotifications queries the "notifications" edge of the Farmer entity.
func (_m *Farmer) QueryNotifications() *NotificationQuery {
	return NewFarmerClient(_m.config).QueryNotifications(_m)
}

// Update returns a builder for updating this Farmer.
// Note that you need to call Farmer.Unwrap() before calling this method if this Farmer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Farmer) Update() *FarmerUpdateOne {
	return NewFarmerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Farmer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Farmer) Unwrap() *Farmer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Farmer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Farmer) String() string {
	var builder strings.Builder
	builder.WriteString("Farmer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("farmer_code=")
	builder.WriteString(_m.FarmerCode)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Phone; v != nil {
		builder.WriteString("phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Village; v != nil {
		builder.WriteString("village=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.District; v != nil {
		builder.WriteString("district=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("auto_apply=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoApply))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Farmers is a parsable slice of Farmer.
type Farmers []*Farmer
