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
	"github.com/chandrashekharddev/agroscheme/gen/ent/farmer"
	"github.com/chandrashekharddev/agroscheme/gen/ent/scheme"
	"github.com/google/uuid"
)

// ApplicationCreate is the builder for creating a Application entity.
type ApplicationCreate struct {
	config
	mutation *ApplicationMutation
	hooks    []Hook
}

// SetApplicationID sets the "application_id" field.
func (_c *ApplicationCreate) SetApplicationID(v string) *ApplicationCreate {
	_c.mutation.SetApplicationID(v)
	return _c
}

// SetFarmerID sets the "farmer_id" field.
func (_c *ApplicationCreate) SetFarmerID(v uuid.UUID) *ApplicationCreate {
	_c.mutation.SetFarmerID(v)
	return _c
}

// SetSchemeID sets the "scheme_id" field.
func (_c *ApplicationCreate) SetSchemeID(v uuid.UUID) *ApplicationCreate {
	_c.mutation.SetSchemeID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ApplicationCreate) SetStatus(v string) *ApplicationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableStatus(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *ApplicationCreate) SetSource(v string) *ApplicationCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableSource(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetAppliedAmount sets the "applied_amount" field.
func (_c *ApplicationCreate) SetAppliedAmount(v float64) *ApplicationCreate {
	_c.mutation.SetAppliedAmount(v)
	return _c
}

// SetNillableAppliedAmount sets the "applied_amount" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableAppliedAmount(v *float64) *ApplicationCreate {
	if v != nil {
		_c.SetAppliedAmount(*v)
	}
	return _c
}

// SetApprovedAmount sets the "approved_amount" field.
func (_c *ApplicationCreate) SetApprovedAmount(v float64) *ApplicationCreate {
	_c.mutation.SetApprovedAmount(v)
	return _c
}

// SetNillableApprovedAmount sets the "approved_amount" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableApprovedAmount(v *float64) *ApplicationCreate {
	if v != nil {
		_c.SetApprovedAmount(*v)
	}
	return _c
}

// SetEligibility sets the "eligibility" field.
func (_c *ApplicationCreate) SetEligibility(v json.RawMessage) *ApplicationCreate {
	_c.mutation.SetEligibility(v)
	return _c
}

// SetStatusHistory sets the "status_history" field.
func (_c *ApplicationCreate) SetStatusHistory(v json.RawMessage) *ApplicationCreate {
	_c.mutation.SetStatusHistory(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApplicationCreate) SetCreatedAt(v time.Time) *ApplicationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableCreatedAt(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ApplicationCreate) SetUpdatedAt(v time.Time) *ApplicationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableUpdatedAt(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApplicationCreate) SetID(v uuid.UUID) *ApplicationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableID(v *uuid.UUID) *ApplicationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFarmer sets the "farmer" edge to the Farmer entity.
func (_c *ApplicationCreate) SetFarmer(v *Farmer) *ApplicationCreate {
	return _c.SetFarmerID(v.ID)
}

// SetScheme sets the "scheme" edge to the Scheme entity.
func (_c *ApplicationCreate) SetScheme(v *Scheme) *ApplicationCreate {
	return _c.SetSchemeID(v.ID)
}

// Mutation returns the ApplicationMutation object of the builder.
func (_c *ApplicationCreate) Mutation() *ApplicationMutation {
	return _c.mutation
}

// Save creates the Application in the database.
func (_c *ApplicationCreate) Save(ctx context.Context) (*Application, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApplicationCreate) SaveX(ctx context.Context) *Application {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApplicationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := application.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := application.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := application.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := application.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := application.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApplicationCreate) check() error {
	if _, ok := _c.mutation.ApplicationID(); !ok {
		return &ValidationError{Name: "application_id", err: errors.New(`ent: missing required field "Application.application_id"`)}
	}
	if v, ok := _c.mutation.ApplicationID(); ok {
		if err := application.ApplicationIDValidator(v); err != nil {
			return &ValidationError{Name: "application_id", err: fmt.Errorf(`ent: validator failed for field "Application.application_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FarmerID(); !ok {
		return &ValidationError{Name: "farmer_id", err: errors.New(`ent: missing required field "Application.farmer_id"`)}
	}
	if _, ok := _c.mutation.SchemeID(); !ok {
		return &ValidationError{Name: "scheme_id", err: errors.New(`ent: missing required field "Application.scheme_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Application.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Application.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := application.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Application.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Application.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Application.updated_at"`)}
	}
	if len(_c.mutation.FarmerIDs()) == 0 {
		return &ValidationError{Name: "farmer", err: errors.New(`ent: missing required edge "Application.farmer"`)}
	}
	if len(_c.mutation.SchemeIDs()) == 0 {
		return &ValidationError{Name: "scheme", err: errors.New(`ent: missing required edge "Application.scheme"`)}
	}
	return nil
}

func (_c *ApplicationCreate) sqlSave(ctx context.Context) (*Application, error) {
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

func (_c *ApplicationCreate) createSpec() (*Application, *sqlgraph.CreateSpec) {
	var (
		_node = &Application{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(application.Table, sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ApplicationID(); ok {
		_spec.SetField(application.FieldApplicationID, field.TypeString, value)
		_node.ApplicationID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(application.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.AppliedAmount(); ok {
		_spec.SetField(application.FieldAppliedAmount, field.TypeFloat64, value)
		_node.AppliedAmount = &value
	}
	if value, ok := _c.mutation.ApprovedAmount(); ok {
		_spec.SetField(application.FieldApprovedAmount, field.TypeFloat64, value)
		_node.ApprovedAmount = &value
	}
	if value, ok := _c.mutation.Eligibility(); ok {
		_spec.SetField(application.FieldEligibility, field.TypeJSON, value)
		_node.Eligibility = value
	}
	if value, ok := _c.mutation.StatusHistory(); ok {
		_spec.SetField(application.FieldStatusHistory, field.TypeJSON, value)
		_node.StatusHistory = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(application.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.FarmerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.FarmerTable,
			Columns: []string{application.FarmerColumn},
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
	if nodes := _c.mutation.SchemeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.SchemeTable,
			Columns: []string{application.SchemeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheme.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SchemeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ApplicationCreateBulk is the builder for creating many Application entities in bulk.
type ApplicationCreateBulk struct {
	config
	err      error
	builders []*ApplicationCreate
}

// Save creates the Application entities in the database.
func (_c *ApplicationCreateBulk) Save(ctx context.Context) ([]*Application, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Application, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApplicationMutation)
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
func (_c *ApplicationCreateBulk) SaveX(ctx context.Context) []*Application {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
