// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/chandrashekharddev/agroscheme/gen/ent/application"
	"github.com/chandrashekharddev/agroscheme/gen/ent/farmer"
	"github.com/chandrashekharddev/agroscheme/gen/ent/farmerdocument"
	"github.com/chandrashekharddev/agroscheme/gen/ent/notification"
	"github.com/google/uuid"
)

// FarmerCreate is the builder for creating a Farmer entity.
type FarmerCreate struct {
	config
	mutation *FarmerMutation
	hooks    []Hook
}

// SetFarmerCode sets the "farmer_code" field.
func (_c *FarmerCreate) SetFarmerCode(v string) *FarmerCreate {
	_c.mutation.SetFarmerCode(v)
	return _c
}

// SetName sets the "name" field.
func (_c *FarmerCreate) SetName(v string) *FarmerCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *FarmerCreate) SetPhone(v string) *FarmerCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *FarmerCreate) SetNillablePhone(v *string) *FarmerCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetVillage sets the "village" field.
func (_c *FarmerCreate) SetVillage(v string) *FarmerCreate {
	_c.mutation.SetVillage(v)
	return _c
}

// SetNillableVillage sets the "village" field if the given value is not nil.
func (_c *FarmerCreate) SetNillableVillage(v *string) *FarmerCreate {
	if v != nil {
		_c.SetVillage(*v)
	}
	return _c
}

// SetDistrict sets the "district" field.
func (_c *FarmerCreate) SetDistrict(v string) *FarmerCreate {
	_c.mutation.SetDistrict(v)
	return _c
}

// SetNillableDistrict sets the "district" field if the given value is not nil.
func (_c *FarmerCreate) SetNillableDistrict(v *string) *FarmerCreate {
	if v != nil {
		_c.SetDistrict(*v)
	}
	return _c
}

// SetAutoApply sets the "auto_apply" field.
func (_c *FarmerCreate) SetAutoApply(v bool) *FarmerCreate {
	_c.mutation.SetAutoApply(v)
	return _c
}

// SetNillableAutoApply sets the "auto_apply" field if the given value is not nil.
func (_c *FarmerCreate) SetNillableAutoApply(v *bool) *FarmerCreate {
	if v != nil {
		_c.SetAutoApply(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FarmerCreate) SetCreatedAt(v time.Time) *FarmerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FarmerCreate) SetNillableCreatedAt(v *time.Time) *FarmerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FarmerCreate) SetUpdatedAt(v time.Time) *FarmerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FarmerCreate) SetNillableUpdatedAt(v *time.Time) *FarmerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FarmerCreate) SetID(v uuid.UUID) *FarmerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FarmerCreate) SetNillableID(v *uuid.UUID) *FarmerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddDocumentIDs adds the "documents" edge to the FarmerDocument entity by IDs.
func (_c *FarmerCreate) AddDocumentIDs(ids ...uuid.UUID) *FarmerCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the FarmerDocument entity.
func (_c *FarmerCreate) AddDocuments(v ...*FarmerDocument) *FarmerCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// AddApplicationIDs adds the "applications" edge to the Application entity by IDs.
func (_c *FarmerCreate) AddApplicationIDs(ids ...uuid.UUID) *FarmerCreate {
	_c.mutation.AddApplicationIDs(ids...)
	return _c
}

// AddApplications adds the "applications" edges to the Application entity.
func (_c *FarmerCreate) AddApplications(v ...*Application) *FarmerCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddApplicationIDs(ids...)
}

// AddNotificationIDs adds the "notifications" edge to the Notification entity by IDs.
func (_c *FarmerCreate) AddNotificationIDs(ids ...uuid.UUID) *FarmerCreate {
	_c.mutation.AddNotificationIDs(ids...)
	return _c
}

// AddNotifications adds the "notifications" edges to the Notification entity.
func (_c *FarmerCreate) AddNotifications(v ...*Notification) *FarmerCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddNotificationIDs(ids...)
}

// Mutation returns the FarmerMutation object of the builder.
func (_c *FarmerCreate) Mutation() *FarmerMutation {
	return _c.mutation
}

// Save creates the Farmer in the database.
func (_c *FarmerCreate) Save(ctx context.Context) (*Farmer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FarmerCreate) SaveX(ctx context.Context) *Farmer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FarmerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FarmerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FarmerCreate) defaults() {
	if _, ok := _c.mutation.AutoApply(); !ok {
		v := farmer.DefaultAutoApply
		_c.mutation.SetAutoApply(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := farmer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := farmer.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := farmer.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FarmerCreate) check() error {
	if _, ok := _c.mutation.FarmerCode(); !ok {
		return &ValidationError{Name: "farmer_code", err: errors.New(`ent: missing required field "Farmer.farmer_code"`)}
	}
	if v, ok := _c.mutation.FarmerCode(); ok {
		if err := farmer.FarmerCodeValidator(v); err != nil {
			return &ValidationError{Name: "farmer_code", err: fmt.Errorf(`ent: validator failed for field "Farmer.farmer_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Farmer.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := farmer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Farmer.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AutoApply(); !ok {
		return &ValidationError{Name: "auto_apply", err: errors.New(`ent: missing required field "Farmer.auto_apply"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Farmer.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Farmer.updated_at"`)}
	}
	return nil
}

func (_c *FarmerCreate) sqlSave(ctx context.Context) (*Farmer, error) {
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

func (_c *FarmerCreate) createSpec() (*Farmer, *sqlgraph.CreateSpec) {
	var (
		_node = &Farmer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(farmer.Table, sqlgraph.NewFieldSpec(farmer.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FarmerCode(); ok {
		_spec.SetField(farmer.FieldFarmerCode, field.TypeString, value)
		_node.FarmerCode = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(farmer.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(farmer.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.Village(); ok {
		_spec.SetField(farmer.FieldVillage, field.TypeString, value)
		_node.Village = &value
	}
	if value, ok := _c.mutation.District(); ok {
		_spec.SetField(farmer.FieldDistrict, field.TypeString, value)
		_node.District = &value
	}
	if value, ok := _c.mutation.AutoApply(); ok {
		_spec.SetField(farmer.FieldAutoApply, field.TypeBool, value)
		_node.AutoApply = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(farmer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(farmer.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farmer.DocumentsTable,
			Columns: []string{farmer.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(farmerdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ApplicationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farmer.ApplicationsTable,
			Columns: []string{farmer.ApplicationsColumn},
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
	if nodes := _c.mutation.NotificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farmer.NotificationsTable,
			Columns: []string{farmer.NotificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notification.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FarmerCreateBulk is the builder for creating many Farmer entities in bulk.
type FarmerCreateBulk struct {
	config
	err      error
	builders []*FarmerCreate
}

// Save creates the Farmer entities in the database.
func (_c *FarmerCreateBulk) Save(ctx context.Context) ([]*Farmer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Farmer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FarmerMutation)
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
func (_c *FarmerCreateBulk) SaveX(ctx context.Context) []*Farmer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FarmerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FarmerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
