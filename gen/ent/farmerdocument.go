// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chandrashekharddev/agroscheme/gen/ent/farmer"
	"github.com/chandrashekharddev/agroscheme/gen/ent/farmerdocument"
	"github.com/google/uuid"
)

// FarmerDocument is the model entity for the FarmerDocument schema.
type FarmerDocument struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FarmerID holds the value of the "farmer_id" field.
	FarmerID uuid.UUID `json:"farmer_id,omitempty"`
	// DocType holds the value of the "doc_type" field.
	DocType string `json:"doc_type,omitempty"`
	// Fields holds the value of the "fields" field.
	Fields json.RawMessage `json:"fields,omitempty"`
	// ExtractionConfidence holds the value of the "extraction_confidence" field.
	ExtractionConfidence *float32 `json:"extraction_confidence,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText *string `json:"raw_text,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FarmerDocumentQuery when eager-loading is set.
	Edges        FarmerDocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FarmerDocumentEdges holds the relations/edges for other nodes in the graph.
type FarmerDocumentEdges struct {
	// Farmer holds the value of the farmer edge.
	Farmer *Farmer `json:"farmer,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FarmerOrErr returns the Farmer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FarmerDocumentEdges) FarmerOrErr() (*Farmer, error) {
	if e.Farmer != nil {
		return e.Farmer, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: farmer.Label}
	}
	return nil, &NotLoadedError{edge: "farmer"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FarmerDocument) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case farmerdocument.FieldFields:
			values[i] = new([]byte)
		case farmerdocument.FieldExtractionConfidence:
			values[i] = new(sql.NullFloat64)
		case farmerdocument.FieldDocType, farmerdocument.FieldRawText:
			values[i] = new(sql.NullString)
		case farmerdocument.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case farmerdocument.FieldID, farmerdocument.FieldFarmerID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FarmerDocument fields.
func (_m *FarmerDocument) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case farmerdocument.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case farmerdocument.FieldFarmerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field farmer_id", values[i])
			} else if value != nil {
				_m.FarmerID = *value
			}
		case farmerdocument.FieldDocType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_type", values[i])
			} else if value.Valid {
				_m.DocType = value.String
			}
		case farmerdocument.FieldFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Fields); err != nil {
					return fmt.Errorf("unmarshal field fields: %w", err)
				}
			}
		case farmerdocument.FieldExtractionConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_confidence", values[i])
			} else if value.Valid {
				_m.ExtractionConfidence = new(float32)
				*_m.ExtractionConfidence = float32(value.Float64)
			}
		case farmerdocument.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = new(string)
				*_m.RawText = value.String
			}
		case farmerdocument.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FarmerDocument.
// This includes values selected through modifiers, order, etc.
func (_m *FarmerDocument) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFarmer queries the "farmer" edge of the FarmerDocument entity.
func (_m *FarmerDocument) QueryFarmer() *FarmerQuery {
	return NewFarmerDocumentClient(_m.config).QueryFarmer(_m)
}

// Update returns a builder for updating this FarmerDocument.
// Note that you need to call FarmerDocument.Unwrap() before calling this method if this FarmerDocument
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FarmerDocument) Update() *FarmerDocumentUpdateOne {
	return NewFarmerDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FarmerDocument entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FarmerDocument) Unwrap() *FarmerDocument {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FarmerDocument is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FarmerDocument) String() string {
	var builder strings.Builder
	builder.WriteString("FarmerDocument(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("farmer_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FarmerID))
	builder.WriteString(", ")
	builder.WriteString("doc_type=")
	builder.WriteString(_m.DocType)
	builder.WriteString(", ")
	builder.WriteString("fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fields))
	builder.WriteString(", ")
	if v := _m.ExtractionConfidence; v != nil {
		builder.WriteString("extraction_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RawText; v != nil {
		builder.WriteString("raw_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FarmerDocuments is a parsable slice of FarmerDocument.
type FarmerDocuments []*FarmerDocument
