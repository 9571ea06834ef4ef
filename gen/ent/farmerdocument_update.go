// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/chandrashekharddev/agroscheme/gen/ent/farmer"
	"github.com/chandrashekharddev/agroscheme/gen/ent/farmerdocument"
	"github.com/chandrashekharddev/agroscheme/gen/ent/predicate"
	"github.com/google/uuid"
)

// FarmerDocumentUpdate is the builder for updating FarmerDocument entities.
type FarmerDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *FarmerDocumentMutation
}

// Where appends a list predicates to the FarmerDocumentUpdate builder.
func (_u *FarmerDocumentUpdate) Where(ps ...predicate.FarmerDocument) *FarmerDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFarmerID sets the "farmer_id" field.
func (_u *FarmerDocumentUpdate) SetFarmerID(v uuid.UUID) *FarmerDocumentUpdate {
	_u.mutation.SetFarmerID(v)
	return _u
}

// SetNillableFarmerID sets the "farmer_id" field if the given value is not nil.
func (_u *FarmerDocumentUpdate) SetNillableFarmerID(v *uuid.UUID) *FarmerDocumentUpdate {
	if v != nil {
		_u.SetFarmerID(*v)
	}
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *FarmerDocumentUpdate) SetDocType(v string) *FarmerDocumentUpdate {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *FarmerDocumentUpdate) SetNillableDocType(v *string) *FarmerDocumentUpdate {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetFields sets the "fields" field.
func (_u *FarmerDocumentUpdate) SetFields(v json.RawMessage) *FarmerDocumentUpdate {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *FarmerDocumentUpdate) AppendFields(v json.RawMessage) *FarmerDocumentUpdate {
	_u.mutation.AppendFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *FarmerDocumentUpdate) ClearFields() *FarmerDocumentUpdate {
	_u.mutation.ClearFields()
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *FarmerDocumentUpdate) SetExtractionConfidence(v float32) *FarmerDocumentUpdate {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *FarmerDocumentUpdate) SetNillableExtractionConfidence(v *float32) *FarmerDocumentUpdate {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *FarmerDocumentUpdate) AddExtractionConfidence(v float32) *FarmerDocumentUpdate {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (_u *FarmerDocumentUpdate) ClearExtractionConfidence() *FarmerDocumentUpdate {
	_u.mutation.ClearExtractionConfidence()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *FarmerDocumentUpdate) SetRawText(v string) *FarmerDocumentUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *FarmerDocumentUpdate) SetNillableRawText(v *string) *FarmerDocumentUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *FarmerDocumentUpdate) ClearRawText() *FarmerDocumentUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *FarmerDocumentUpdate) SetUploadedAt(v time.Time) *FarmerDocumentUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetFarmer sets the "farmer" edge to the Farmer entity.
func (_u *FarmerDocumentUpdate) SetFarmer(v *Farmer) *FarmerDocumentUpdate {
	return _u.SetFarmerID(v.ID)
}

// Mutation returns the FarmerDocumentMutation object of the builder.
func (_u *FarmerDocumentUpdate) Mutation() *FarmerDocumentMutation {
	return _u.mutation
}

// ClearFarmer clears the "farmer" edge to the Farmer entity.
func (_u *FarmerDocumentUpdate) ClearFarmer() *FarmerDocumentUpdate {
	_u.mutation.ClearFarmer()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FarmerDocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FarmerDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FarmerDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FarmerDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FarmerDocumentUpdate) defaults() {
	if _, ok := _u.mutation.UploadedAt(); !ok {
		v := farmerdocument.UpdateDefaultUploadedAt()
		_u.mutation.SetUploadedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FarmerDocumentUpdate) check() error {
	if v, ok := _u.mutation.DocType(); ok {
		if err := farmerdocument.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "FarmerDocument.doc_type": %w`, err)}
		}
	}
	if _u.mutation.FarmerCleared() && len(_u.mutation.FarmerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FarmerDocument.farmer"`)
	}
	return nil
}

func (_u *FarmerDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(farmerdocument.Table, farmerdocument.Columns, sqlgraph.NewFieldSpec(farmerdocument.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(farmerdocument.FieldDocType, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(farmerdocument.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, farmerdocument.FieldFields, value)
		})
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(farmerdocument.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(farmerdocument.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(farmerdocument.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ExtractionConfidenceCleared() {
		_spec.ClearField(farmerdocument.FieldExtractionConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(farmerdocument.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(farmerdocument.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(farmerdocument.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.FarmerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   farmerdocument.FarmerTable,
			Columns: []string{farmerdocument.FarmerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(farmer.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FarmerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   farmerdocument.FarmerTable,
			Columns: []string{farmerdocument.FarmerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(farmer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{farmerdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FarmerDocumentUpdateOne is the builder for updating a single FarmerDocument entity.
type FarmerDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FarmerDocumentMutation
}

// SetFarmerID sets the "farmer_id" field.
func (_u *FarmerDocumentUpdateOne) SetFarmerID(v uuid.UUID) *FarmerDocumentUpdateOne {
	_u.mutation.SetFarmerID(v)
	return _u
}

// SetNillableFarmerID sets the "farmer_id" field if the given value is not nil.
func (_u *FarmerDocumentUpdateOne) SetNillableFarmerID(v *uuid.UUID) *FarmerDocumentUpdateOne {
	if v != nil {
		_u.SetFarmerID(*v)
	}
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *FarmerDocumentUpdateOne) SetDocType(v string) *FarmerDocumentUpdateOne {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *FarmerDocumentUpdateOne) SetNillableDocType(v *string) *FarmerDocumentUpdateOne {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetFields sets the "fields" field.
func (_u *FarmerDocumentUpdateOne) SetFields(v json.RawMessage) *FarmerDocumentUpdateOne {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *FarmerDocumentUpdateOne) AppendFields(v json.RawMessage) *FarmerDocumentUpdateOne {
	_u.mutation.AppendFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *FarmerDocumentUpdateOne) ClearFields() *FarmerDocumentUpdateOne {
	_u.mutation.ClearFields()
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *FarmerDocumentUpdateOne) SetExtractionConfidence(v float32) *FarmerDocumentUpdateOne {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *FarmerDocumentUpdateOne) SetNillableExtractionConfidence(v *float32) *FarmerDocumentUpdateOne {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *FarmerDocumentUpdateOne) AddExtractionConfidence(v float32) *FarmerDocumentUpdateOne {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (_u *FarmerDocumentUpdateOne) ClearExtractionConfidence() *FarmerDocumentUpdateOne {
	_u.mutation.ClearExtractionConfidence()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *FarmerDocumentUpdateOne) SetRawText(v string) *FarmerDocumentUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *FarmerDocumentUpdateOne) SetNillableRawText(v *string) *FarmerDocumentUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *FarmerDocumentUpdateOne) ClearRawText() *FarmerDocumentUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *FarmerDocumentUpdateOne) SetUploadedAt(v time.Time) *FarmerDocumentUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetFarmer sets the "farmer" edge to the Farmer entity.
func (_u *FarmerDocumentUpdateOne) SetFarmer(v *Farmer) *FarmerDocumentUpdateOne {
	return _u.SetFarmerID(v.ID)
}

// Mutation returns the FarmerDocumentMutation object of the builder.
func (_u *FarmerDocumentUpdateOne) Mutation() *FarmerDocumentMutation {
	return _u.mutation
}

// ClearFarmer clears the "farmer" edge to the Farmer entity.
func (_u *FarmerDocumentUpdateOne) ClearFarmer() *FarmerDocumentUpdateOne {
	_u.mutation.ClearFarmer()
	return _u
}

// Where appends a list predicates to the FarmerDocumentUpdate builder.
func (_u *FarmerDocumentUpdateOne) Where(ps ...predicate.FarmerDocument) *FarmerDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FarmerDocumentUpdateOne) Select(field string, fields ...string) *FarmerDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FarmerDocument entity.
func (_u *FarmerDocumentUpdateOne) Save(ctx context.Context) (*FarmerDocument, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FarmerDocumentUpdateOne) SaveX(ctx context.Context) *FarmerDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FarmerDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FarmerDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FarmerDocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UploadedAt(); !ok {
		v := farmerdocument.UpdateDefaultUploadedAt()
		_u.mutation.SetUploadedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FarmerDocumentUpdateOne) check() error {
	if v, ok := _u.mutation.DocType(); ok {
		if err := farmerdocument.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "FarmerDocument.doc_type": %w`, err)}
		}
	}
	if _u.mutation.FarmerCleared() && len(_u.mutation.FarmerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FarmerDocument.farmer"`)
	}
	return nil
}

func (_u *FarmerDocumentUpdateOne) sqlSave(ctx context.Context) (_node *FarmerDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(farmerdocument.Table, farmerdocument.Columns, sqlgraph.NewFieldSpec(farmerdocument.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FarmerDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, farmerdocument.FieldID)
		for _, f := range fields {
			if !farmerdocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != farmerdocument.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(farmerdocument.FieldDocType, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(farmerdocument.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, farmerdocument.FieldFields, value)
		})
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(farmerdocument.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(farmerdocument.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(farmerdocument.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ExtractionConfidenceCleared() {
		_spec.ClearField(farmerdocument.FieldExtractionConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(farmerdocument.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(farmerdocument.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(farmerdocument.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.FarmerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   farmerdocument.FarmerTable,
			Columns: []string{farmerdocument.FarmerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(farmer.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FarmerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   farmerdocument.FarmerTable,
			Columns: []string{farmerdocument.FarmerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(farmer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FarmerDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{farmerdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
