// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/chandrashekharddev/agroscheme/gen/ent/farmer"
	"github.com/chandrashekharddev/agroscheme/gen/ent/farmerdocument"
	"github.com/google/uuid"
)

// FarmerDocumentCreate is the builder for creating a FarmerDocument entity.
type FarmerDocumentCreate struct {
	config
	mutation *FarmerDocumentMutation
	hooks    []Hook
}

// SetFarmerID sets the "farmer_id" field.
func (_c *FarmerDocumentCreate) SetFarmerID(v uuid.UUID) *FarmerDocumentCreate {
	_c.mutation.SetFarmerID(v)
	return _c
}

// SetDocType sets the "doc_type" field.
func (_c *FarmerDocumentCreate) SetDocType(v string) *FarmerDocumentCreate {
	_c.mutation.SetDocType(v)
	return _c
}

// SetFields sets the "fields" field.
func (_c *FarmerDocumentCreate) SetFields(v json.RawMessage) *FarmerDocumentCreate {
	_c.mutation.SetFields(v)
	return _c
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_c *FarmerDocumentCreate) SetExtractionConfidence(v float32) *FarmerDocumentCreate {
	_c.mutation.SetExtractionConfidence(v)
	return _c
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_c *FarmerDocumentCreate) SetNillableExtractionConfidence(v *float32) *FarmerDocumentCreate {
	if v != nil {
		_c.SetExtractionConfidence(*v)
	}
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *FarmerDocumentCreate) SetRawText(v string) *FarmerDocumentCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *FarmerDocumentCreate) SetNillableRawText(v *string) *FarmerDocumentCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *FarmerDocumentCreate) SetUploadedAt(v time.Time) *FarmerDocumentCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *FarmerDocumentCreate) SetNillableUploadedAt(v *time.Time) *FarmerDocumentCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FarmerDocumentCreate) SetID(v uuid.UUID) *FarmerDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FarmerDocumentCreate) SetNillableID(v *uuid.UUID) *FarmerDocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFarmer sets the "farmer" edge to the Farmer entity.
func (_c *FarmerDocumentCreate) SetFarmer(v *Farmer) *FarmerDocumentCreate {
	return _c.SetFarmerID(v.ID)
}

// Mutation returns the FarmerDocumentMutation object of the builder.
func (_c *FarmerDocumentCreate) Mutation() *FarmerDocumentMutation {
	return _c.mutation
}

// Save creates the FarmerDocument in the database.
func (_c *FarmerDocumentCreate) Save(ctx context.Context) (*FarmerDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FarmerDocumentCreate) SaveX(ctx context.Context) *FarmerDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FarmerDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FarmerDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FarmerDocumentCreate) defaults() {
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := farmerdocument.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := farmerdocument.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FarmerDocumentCreate) check() error {
	if _, ok := _c.mutation.FarmerID(); !ok {
		return &ValidationError{Name: "farmer_id", err: errors.New(`ent: missing required field "FarmerDocument.farmer_id"`)}
	}
	if _, ok := _c.mutation.DocType(); !ok {
		return &ValidationError{Name: "doc_type", err: errors.New(`ent: missing required field "FarmerDocument.doc_type"`)}
	}
	if v, ok := _c.mutation.DocType(); ok {
		if err := farmerdocument.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "FarmerDocument.doc_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "FarmerDocument.uploaded_at"`)}
	}
	if len(_c.mutation.FarmerIDs()) == 0 {
		return &ValidationError{Name: "farmer", err: errors.New(`ent: missing required edge "FarmerDocument.farmer"`)}
	}
	return nil
}

func (_c *FarmerDocumentCreate) sqlSave(ctx context.Context) (*FarmerDocument, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FarmerDocumentCreate) createSpec() (*FarmerDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &FarmerDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(farmerdocument.Table, sqlgraph.NewFieldSpec(farmerdocument.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DocType(); ok {
		_spec.SetField(farmerdocument.FieldDocType, field.TypeString, value)
		_node.DocType = value
	}
	if value, ok := _c.mutation.GetFields(); ok {
		_spec.SetField(farmerdocument.FieldFields, field.TypeJSON, value)
		_node.Fields = value
	}
	if value, ok := _c.mutation.ExtractionConfidence(); ok {
		_spec.SetField(farmerdocument.FieldExtractionConfidence, field.TypeFloat32, value)
		_node.ExtractionConfidence = &value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(farmerdocument.FieldRawText, field.TypeString, value)
		_node.RawText = &value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(farmerdocument.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.FarmerIDs(); len(nodes) > 0 {
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
		_node.FarmerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FarmerDocumentCreateBulk is the builder for creating many FarmerDocument entities in bulk.
type FarmerDocumentCreateBulk struct {
	config
	err      error
	builders []*FarmerDocumentCreate
}

// Save creates the FarmerDocument entities in the database.
func (_c *FarmerDocumentCreateBulk) Save(ctx context.Context) ([]*FarmerDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FarmerDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FarmerDocumentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *FarmerDocumentCreateBulk) SaveX(ctx context.Context) []*FarmerDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FarmerDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FarmerDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
