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
	"github.com/chandrashekharddev/agroscheme/gen/ent/application"
	"github.com/chandrashekharddev/agroscheme/gen/ent/predicate"
	"github.com/chandrashekharddev/agroscheme/gen/ent/scheme"
	"github.com/google/uuid"
)

// SchemeUpdate is the builder for updating Scheme entities.
type SchemeUpdate struct {
	config
	hooks    []Hook
	mutation *SchemeMutation
}

// Where appends a list predicates to the SchemeUpdate builder.
func (_u *SchemeUpdate) Where(ps ...predicate.Scheme) *SchemeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SchemeUpdate) SetName(v string) *SchemeUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SchemeUpdate) SetNillableName(v *string) *SchemeUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SchemeUpdate) SetDescription(v string) *SchemeUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SchemeUpdate) SetNillableDescription(v *string) *SchemeUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SchemeUpdate) ClearDescription() *SchemeUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetBenefitAmount sets the "benefit_amount" field.
func (_u *SchemeUpdate) SetBenefitAmount(v float64) *SchemeUpdate {
	_u.mutation.ResetBenefitAmount()
	_u.mutation.SetBenefitAmount(v)
	return _u
}

// SetNillableBenefitAmount sets the "benefit_amount" field if the given value is not nil.
func (_u *SchemeUpdate) SetNillableBenefitAmount(v *float64) *SchemeUpdate {
	if v != nil {
		_u.SetBenefitAmount(*v)
	}
	return _u
}

// AddBenefitAmount adds value to the "benefit_amount" field.
func (_u *SchemeUpdate) AddBenefitAmount(v float64) *SchemeUpdate {
	_u.mutation.AddBenefitAmount(v)
	return _u
}

// SetCriteria sets the "criteria" field.
func (_u *SchemeUpdate) SetCriteria(v json.RawMessage) *SchemeUpdate {
	_u.mutation.SetCriteria(v)
	return _u
}

// AppendCriteria appends value to the "criteria" field.
func (_u *SchemeUpdate) AppendCriteria(v json.RawMessage) *SchemeUpdate {
	_u.mutation.AppendCriteria(v)
	return _u
}

// ClearCriteria clears the value of the "criteria" field.
func (_u *SchemeUpdate) ClearCriteria() *SchemeUpdate {
	_u.mutation.ClearCriteria()
	return _u
}

// SetRequiredDocuments sets the "required_documents" field.
func (_u *SchemeUpdate) SetRequiredDocuments(v []string) *SchemeUpdate {
	_u.mutation.SetRequiredDocuments(v)
	return _u
}

// AppendRequiredDocuments appends value to the "required_documents" field.
func (_u *SchemeUpdate) AppendRequiredDocuments(v []string) *SchemeUpdate {
	_u.mutation.AppendRequiredDocuments(v)
	return _u
}

// ClearRequiredDocuments clears the value of the "required_documents" field.
func (_u *SchemeUpdate) ClearRequiredDocuments() *SchemeUpdate {
	_u.mutation.ClearRequiredDocuments()
	return _u
}

// SetActive sets the "active" field.
func (_u *SchemeUpdate) SetActive(v bool) *SchemeUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *SchemeUpdate) SetNillableActive(v *bool) *SchemeUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SchemeUpdate) SetCreatedAt(v time.Time) *SchemeUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SchemeUpdate) SetNillableCreatedAt(v *time.Time) *SchemeUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SchemeUpdate) SetUpdatedAt(v time.Time) *SchemeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddApplicationIDs adds the "applications" edge to the Application entity by IDs.
func (_u *SchemeUpdate) AddApplicationIDs(ids ...uuid.UUID) *SchemeUpdate {
	_u.mutation.AddApplicationIDs(ids...)
	return _u
}

// AddApplications adds the "applications" edges to the Application entity.
func (_u *SchemeUpdate) AddApplications(v ...*Application) *SchemeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApplicationIDs(ids...)
}

// Mutation returns the SchemeMutation object of the builder.
func (_u *SchemeUpdate) Mutation() *SchemeMutation {
	return _u.mutation
}

// ClearApplications clears all "applications" edges to the Application entity.
func (_u *SchemeUpdate) ClearApplications() *SchemeUpdate {
	_u.mutation.ClearApplications()
	return _u
}

// RemoveApplicationIDs removes the "applications" edge to Application entities by IDs.
func (_u *SchemeUpdate) RemoveApplicationIDs(ids ...uuid.UUID) *SchemeUpdate {
	_u.mutation.RemoveApplicationIDs(ids...)
	return _u
}

// RemoveApplications removes "applications" edges to Application entities.
func (_u *SchemeUpdate) RemoveApplications(v ...*Application) *SchemeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApplicationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SchemeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchemeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SchemeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchemeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SchemeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scheme.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SchemeUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := scheme.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Scheme.name": %w`, err)}
		}
	}
	return nil
}

func (_u *SchemeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheme.Table, scheme.Columns, sqlgraph.NewFieldSpec(scheme.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(scheme.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(scheme.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(scheme.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.BenefitAmount(); ok {
		_spec.SetField(scheme.FieldBenefitAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBenefitAmount(); ok {
		_spec.AddField(scheme.FieldBenefitAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Criteria(); ok {
		_spec.SetField(scheme.FieldCriteria, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCriteria(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scheme.FieldCriteria, value)
		})
	}
	if _u.mutation.CriteriaCleared() {
		_spec.ClearField(scheme.FieldCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequiredDocuments(); ok {
		_spec.SetField(scheme.FieldRequiredDocuments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredDocuments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scheme.FieldRequiredDocuments, value)
		})
	}
	if _u.mutation.RequiredDocumentsCleared() {
		_spec.ClearField(scheme.FieldRequiredDocuments, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(scheme.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(scheme.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scheme.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApplicationsIDs(); len(nodes) > 0 && !_u.mutation.ApplicationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheme.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SchemeUpdateOne is the builder for updating a single Scheme entity.
type SchemeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SchemeMutation
}

// SetName sets the "name" field.
func (_u *SchemeUpdateOne) SetName(v string) *SchemeUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SchemeUpdateOne) SetNillableName(v *string) *SchemeUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SchemeUpdateOne) SetDescription(v string) *SchemeUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SchemeUpdateOne) SetNillableDescription(v *string) *SchemeUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SchemeUpdateOne) ClearDescription() *SchemeUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetBenefitAmount sets the "benefit_amount" field.
func (_u *SchemeUpdateOne) SetBenefitAmount(v float64) *SchemeUpdateOne {
	_u.mutation.ResetBenefitAmount()
	_u.mutation.SetBenefitAmount(v)
	return _u
}

// SetNillableBenefitAmount sets the "benefit_amount" field if the given value is not nil.
func (_u *SchemeUpdateOne) SetNillableBenefitAmount(v *float64) *SchemeUpdateOne {
	if v != nil {
		_u.SetBenefitAmount(*v)
	}
	return _u
}

// AddBenefitAmount adds value to the "benefit_amount" field.
func (_u *SchemeUpdateOne) AddBenefitAmount(v float64) *SchemeUpdateOne {
	_u.mutation.AddBenefitAmount(v)
	return _u
}

// SetCriteria sets the "criteria" field.
func (_u *SchemeUpdateOne) SetCriteria(v json.RawMessage) *SchemeUpdateOne {
	_u.mutation.SetCriteria(v)
	return _u
}

// AppendCriteria appends value to the "criteria" field.
func (_u *SchemeUpdateOne) AppendCriteria(v json.RawMessage) *SchemeUpdateOne {
	_u.mutation.AppendCriteria(v)
	return _u
}

// ClearCriteria clears the value of the "criteria" field.
func (_u *SchemeUpdateOne) ClearCriteria() *SchemeUpdateOne {
	_u.mutation.ClearCriteria()
	return _u
}

// SetRequiredDocuments sets the "required_documents" field.
func (_u *SchemeUpdateOne) SetRequiredDocuments(v []string) *SchemeUpdateOne {
	_u.mutation.SetRequiredDocuments(v)
	return _u
}

// AppendRequiredDocuments appends value to the "required_documents" field.
func (_u *SchemeUpdateOne) AppendRequiredDocuments(v []string) *SchemeUpdateOne {
	_u.mutation.AppendRequiredDocuments(v)
	return _u
}

// ClearRequiredDocuments clears the value of the "required_documents" field.
func (_u *SchemeUpdateOne) ClearRequiredDocuments() *SchemeUpdateOne {
	_u.mutation.ClearRequiredDocuments()
	return _u
}

// SetActive sets the "active" field.
func (_u *SchemeUpdateOne) SetActive(v bool) *SchemeUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *SchemeUpdateOne) SetNillableActive(v *bool) *SchemeUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SchemeUpdateOne) SetCreatedAt(v time.Time) *SchemeUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SchemeUpdateOne) SetNillableCreatedAt(v *time.Time) *SchemeUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SchemeUpdateOne) SetUpdatedAt(v time.Time) *SchemeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddApplicationIDs adds the "applications" edge to the Application entity by IDs.
func (_u *SchemeUpdateOne) AddApplicationIDs(ids ...uuid.UUID) *SchemeUpdateOne {
	_u.mutation.AddApplicationIDs(ids...)
	return _u
}

// AddApplications adds the "applications" edges to the Application entity.
func (_u *SchemeUpdateOne) AddApplications(v ...*Application) *SchemeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApplicationIDs(ids...)
}

// Mutation returns the SchemeMutation object of the builder.
func (_u *SchemeUpdateOne) Mutation() *SchemeMutation {
	return _u.mutation
}

// ClearApplications clears all "applications" edges to the Application entity.
func (_u *SchemeUpdateOne) ClearApplications() *SchemeUpdateOne {
	_u.mutation.ClearApplications()
	return _u
}

// RemoveApplicationIDs removes the "applications" edge to Application entities by IDs.
func (_u *SchemeUpdateOne) RemoveApplicationIDs(ids ...uuid.UUID) *SchemeUpdateOne {
	_u.mutation.RemoveApplicationIDs(ids...)
	return _u
}

// RemoveApplications removes "applications" edges to Application entities.
func (_u *SchemeUpdateOne) RemoveApplications(v ...*Application) *SchemeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApplicationIDs(ids...)
}

// Where appends a list predicates to the SchemeUpdate builder.
func (_u *SchemeUpdateOne) Where(ps ...predicate.Scheme) *SchemeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SchemeUpdateOne) Select(field string, fields ...string) *SchemeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Scheme entity.
func (_u *SchemeUpdateOne) Save(ctx context.Context) (*Scheme, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchemeUpdateOne) SaveX(ctx context.Context) *Scheme {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SchemeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchemeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SchemeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scheme.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SchemeUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := scheme.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Scheme.name": %w`, err)}
		}
	}
	return nil
}

func (_u *SchemeUpdateOne) sqlSave(ctx context.Context) (_node *Scheme, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheme.Table, scheme.Columns, sqlgraph.NewFieldSpec(scheme.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Scheme.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheme.FieldID)
		for _, f := range fields {
			if !scheme.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheme.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(scheme.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(scheme.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(scheme.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.BenefitAmount(); ok {
		_spec.SetField(scheme.FieldBenefitAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBenefitAmount(); ok {
		_spec.AddField(scheme.FieldBenefitAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Criteria(); ok {
		_spec.SetField(scheme.FieldCriteria, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCriteria(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scheme.FieldCriteria, value)
		})
	}
	if _u.mutation.CriteriaCleared() {
		_spec.ClearField(scheme.FieldCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequiredDocuments(); ok {
		_spec.SetField(scheme.FieldRequiredDocuments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredDocuments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scheme.FieldRequiredDocuments, value)
		})
	}
	if _u.mutation.RequiredDocumentsCleared() {
		_spec.ClearField(scheme.FieldRequiredDocuments, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(scheme.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(scheme.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scheme.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApplicationsIDs(); len(nodes) > 0 && !_u.mutation.ApplicationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Scheme{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheme.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
