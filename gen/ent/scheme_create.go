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
	"github.com/chandrashekharddev/agroscheme/gen/ent/application"
	"github.com/chandrashekharddev/agroscheme/gen/ent/scheme"
	"github.com/google/uuid"
)

// SchemeCreate is the builder for creating a Scheme entity.
type SchemeCreate struct {
	config
	mutation *SchemeMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *SchemeCreate) SetName(v string) *SchemeCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SchemeCreate) SetDescription(v string) *SchemeCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SchemeCreate) SetNillableDescription(v *string) *SchemeCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetBenefitAmount sets the "benefit_amount" field.
func (_c *SchemeCreate) SetBenefitAmount(v float64) *SchemeCreate {
	_c.mutation.SetBenefitAmount(v)
	return _c
}

// SetNillableBenefitAmount sets the "benefit_amount" field if the given value is not nil.
func (_c *SchemeCreate) SetNillableBenefitAmount(v *float64) *SchemeCreate {
	if v != nil {
		_c.SetBenefitAmount(*v)
	}
	return _c
}

// SetCriteria sets the "criteria" field.
func (_c *SchemeCreate) SetCriteria(v json.RawMessage) *SchemeCreate {
	_c.mutation.SetCriteria(v)
	return _c
}

// SetRequiredDocuments sets the "required_documents" field.
func (_c *SchemeCreate) SetRequiredDocuments(v []string) *SchemeCreate {
	_c.mutation.SetRequiredDocuments(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *SchemeCreate) SetActive(v bool) *SchemeCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *SchemeCreate) SetNillableActive(v *bool) *SchemeCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SchemeCreate) SetCreatedAt(v time.Time) *SchemeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SchemeCreate) SetNillableCreatedAt(v *time.Time) *SchemeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SchemeCreate) SetUpdatedAt(v time.Time) *SchemeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SchemeCreate) SetNillableUpdatedAt(v *time.Time) *SchemeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SchemeCreate) SetID(v uuid.UUID) *SchemeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SchemeCreate) SetNillableID(v *uuid.UUID) *SchemeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddApplicationIDs adds the "applications" edge to the Application entity by IDs.
func (_c *SchemeCreate) AddApplicationIDs(ids ...uuid.UUID) *SchemeCreate {
	_c.mutation.AddApplicationIDs(ids...)
	return _c
}

// AddApplications adds the "applications" edges to the Application entity.
func (_c *SchemeCreate) AddApplications(v ...*Application) *SchemeCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddApplicationIDs(ids...)
}

// Mutation returns the SchemeMutation object of the builder.
func (_c *SchemeCreate) Mutation() *SchemeMutation {
	return _c.mutation
}

// Save creates the Scheme in the database.
func (_c *SchemeCreate) Save(ctx context.Context) (*Scheme, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SchemeCreate) SaveX(ctx context.Context) *Scheme {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchemeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchemeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SchemeCreate) defaults() {
	if _, ok := _c.mutation.BenefitAmount(); !ok {
		v := scheme.DefaultBenefitAmount
		_c.mutation.SetBenefitAmount(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := scheme.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scheme.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := scheme.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := scheme.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SchemeCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Scheme.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := scheme.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Scheme.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BenefitAmount(); !ok {
		return &ValidationError{Name: "benefit_amount", err: errors.New(`ent: missing required field "Scheme.benefit_amount"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Scheme.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Scheme.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Scheme.updated_at"`)}
	}
	return nil
}

func (_c *SchemeCreate) sqlSave(ctx context.Context) (*Scheme, error) {
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

func (_c *SchemeCreate) createSpec() (*Scheme, *sqlgraph.CreateSpec) {
	var (
		_node = &Scheme{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheme.Table, sqlgraph.NewFieldSpec(scheme.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(scheme.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(scheme.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.BenefitAmount(); ok {
		_spec.SetField(scheme.FieldBenefitAmount, field.TypeFloat64, value)
		_node.BenefitAmount = value
	}
	if value, ok := _c.mutation.Criteria(); ok {
		_spec.SetField(scheme.FieldCriteria, field.TypeJSON, value)
		_node.Criteria = value
	}
	if value, ok := _c.mutation.RequiredDocuments(); ok {
		_spec.SetField(scheme.FieldRequiredDocuments, field.TypeJSON, value)
		_node.RequiredDocuments = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(scheme.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scheme.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(scheme.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ApplicationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scheme.ApplicationsTable,
			Columns: []string{scheme.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SchemeCreateBulk is the builder for creating many Scheme entities in bulk.
type SchemeCreateBulk struct {
	config
	err      error
	builders []*SchemeCreate
}

// Save creates the Scheme entities in the database.
func (_c *SchemeCreateBulk) Save(ctx context.Context) ([]*Scheme, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Scheme, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SchemeMutation)
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
func (_c *SchemeCreateBulk) SaveX(ctx context.Context) []*Scheme {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchemeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchemeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
