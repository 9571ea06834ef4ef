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
	"github.com/chandrashekharddev/agroscheme/gen/ent/farmer"
	"github.com/chandrashekharddev/agroscheme/gen/ent/predicate"
	"github.com/chandrashekharddev/agroscheme/gen/ent/scheme"
	"github.com/google/uuid"
)

// ApplicationUpdate is the builder for updating Application entities.
type ApplicationUpdate struct {
	config
	hooks    []Hook
	mutation *ApplicationMutation
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (_u *ApplicationUpdate) Where(ps ...predicate.Application) *ApplicationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFarmerID sets the "farmer_id" field.
func (_u *ApplicationUpdate) SetFarmerID(v uuid.UUID) *ApplicationUpdate {
	_u.mutation.SetFarmerID(v)
	return _u
}

// SetNillableFarmerID sets the "farmer_id" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableFarmerID(v *uuid.UUID) *ApplicationUpdate {
	if v != nil {
		_u.SetFarmerID(*v)
	}
	return _u
}

// SetSchemeID sets the "scheme_id" field.
func (_u *ApplicationUpdate) SetSchemeID(v uuid.UUID) *ApplicationUpdate {
	_u.mutation.SetSchemeID(v)
	return _u
}

// SetNillableSchemeID sets the "scheme_id" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableSchemeID(v *uuid.UUID) *ApplicationUpdate {
	if v != nil {
		_u.SetSchemeID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApplicationUpdate) SetStatus(v string) *ApplicationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableStatus(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ApplicationUpdate) SetSource(v string) *ApplicationUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableSource(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetAppliedAmount sets the "applied_amount" field.
func (_u *ApplicationUpdate) SetAppliedAmount(v float64) *ApplicationUpdate {
	_u.mutation.ResetAppliedAmount()
	_u.mutation.SetAppliedAmount(v)
	return _u
}

// SetNillableAppliedAmount sets the "applied_amount" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableAppliedAmount(v *float64) *ApplicationUpdate {
	if v != nil {
		_u.SetAppliedAmount(*v)
	}
	return _u
}

// AddAppliedAmount adds value to the "applied_amount" field.
func (_u *ApplicationUpdate) AddAppliedAmount(v float64) *ApplicationUpdate {
	_u.mutation.AddAppliedAmount(v)
	return _u
}

// ClearAppliedAmount clears the value of the "applied_amount" field.
func (_u *ApplicationUpdate) ClearAppliedAmount() *ApplicationUpdate {
	_u.mutation.ClearAppliedAmount()
	return _u
}

// SetApprovedAmount sets the "approved_amount" field.
func (_u *ApplicationUpdate) SetApprovedAmount(v float64) *ApplicationUpdate {
	_u.mutation.ResetApprovedAmount()
	_u.mutation.SetApprovedAmount(v)
	return _u
}

// SetNillableApprovedAmount sets the "approved_amount" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableApprovedAmount(v *float64) *ApplicationUpdate {
	if v != nil {
		_u.SetApprovedAmount(*v)
	}
	return _u
}

// AddApprovedAmount adds value to the "approved_amount" field.
func (_u *ApplicationUpdate) AddApprovedAmount(v float64) *ApplicationUpdate {
	_u.mutation.AddApprovedAmount(v)
	return _u
}

// ClearApprovedAmount clears the value of the "approved_amount" field.
func (_u *ApplicationUpdate) ClearApprovedAmount() *ApplicationUpdate {
	_u.mutation.ClearApprovedAmount()
	return _u
}

// SetEligibility sets the "eligibility" field.
func (_u *ApplicationUpdate) SetEligibility(v json.RawMessage) *ApplicationUpdate {
	_u.mutation.SetEligibility(v)
	return _u
}

// AppendEligibility appends value to the "eligibility" field.
func (_u *ApplicationUpdate) AppendEligibility(v json.RawMessage) *ApplicationUpdate {
	_u.mutation.AppendEligibility(v)
	return _u
}

// ClearEligibility clears the value of the "eligibility" field.
func (_u *ApplicationUpdate) ClearEligibility() *ApplicationUpdate {
	_u.mutation.ClearEligibility()
	return _u
}

// SetStatusHistory sets the "status_history" field.
func (_u *ApplicationUpdate) SetStatusHistory(v json.RawMessage) *ApplicationUpdate {
	_u.mutation.SetStatusHistory(v)
	return _u
}

// AppendStatusHistory appends value to the "status_history" field.
func (_u *ApplicationUpdate) AppendStatusHistory(v json.RawMessage) *ApplicationUpdate {
	_u.mutation.AppendStatusHistory(v)
	return _u
}

// ClearStatusHistory clears the value of the "status_history" field.
func (_u *ApplicationUpdate) ClearStatusHistory() *ApplicationUpdate {
	_u.mutation.ClearStatusHistory()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ApplicationUpdate) SetCreatedAt(v time.Time) *ApplicationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableCreatedAt(v *time.Time) *ApplicationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicationUpdate) SetUpdatedAt(v time.Time) *ApplicationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFarmer sets the "farmer" edge to the Farmer entity.
func (_u *ApplicationUpdate) SetFarmer(v *Farmer) *ApplicationUpdate {
	return _u.SetFarmerID(v.ID)
}

// SetScheme sets the "scheme" edge to the Scheme entity.
func (_u *ApplicationUpdate) SetScheme(v *Scheme) *ApplicationUpdate {
	return _u.SetSchemeID(v.ID)
}

// Mutation returns the ApplicationMutation object of the builder.
func (_u *ApplicationUpdate) Mutation() *ApplicationMutation {
	return _u.mutation
}

// ClearFarmer clears the "farmer" edge to the Farmer entity.
func (_u *ApplicationUpdate) ClearFarmer() *ApplicationUpdate {
	_u.mutation.ClearFarmer()
	return _u
}

// ClearScheme clears the "scheme" edge to the Scheme entity.
func (_u *ApplicationUpdate) ClearScheme() *ApplicationUpdate {
	_u.mutation.ClearScheme()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApplicationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApplicationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := application.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := application.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Application.source": %w`, err)}
		}
	}
	if _u.mutation.FarmerCleared() && len(_u.mutation.FarmerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Application.farmer"`)
	}
	if _u.mutation.SchemeCleared() && len(_u.mutation.SchemeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Application.scheme"`)
	}
	return nil
}

func (_u *ApplicationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(application.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.AppliedAmount(); ok {
		_spec.SetField(application.FieldAppliedAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAppliedAmount(); ok {
		_spec.AddField(application.FieldAppliedAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AppliedAmountCleared() {
		_spec.ClearField(application.FieldAppliedAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ApprovedAmount(); ok {
		_spec.SetField(application.FieldApprovedAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedApprovedAmount(); ok {
		_spec.AddField(application.FieldApprovedAmount, field.TypeFloat64, value)
	}
	if _u.mutation.ApprovedAmountCleared() {
		_spec.ClearField(application.FieldApprovedAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Eligibility(); ok {
		_spec.SetField(application.FieldEligibility, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEligibility(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, application.FieldEligibility, value)
		})
	}
	if _u.mutation.EligibilityCleared() {
		_spec.ClearField(application.FieldEligibility, field.TypeJSON)
	}
	if value, ok := _u.mutation.StatusHistory(); ok {
		_spec.SetField(application.FieldStatusHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStatusHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, application.FieldStatusHistory, value)
		})
	}
	if _u.mutation.StatusHistoryCleared() {
		_spec.ClearField(application.FieldStatusHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(application.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FarmerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FarmerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SchemeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SchemeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApplicationUpdateOne is the builder for updating a single Application entity.
type ApplicationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApplicationMutation
}

// SetFarmerID sets the "farmer_id" field.
func (_u *ApplicationUpdateOne) SetFarmerID(v uuid.UUID) *ApplicationUpdateOne {
	_u.mutation.SetFarmerID(v)
	return _u
}

// SetNillableFarmerID sets the "farmer_id" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableFarmerID(v *uuid.UUID) *ApplicationUpdateOne {
	if v != nil {
		_u.SetFarmerID(*v)
	}
	return _u
}

// SetSchemeID sets the "scheme_id" field.
func (_u *ApplicationUpdateOne) SetSchemeID(v uuid.UUID) *ApplicationUpdateOne {
	_u.mutation.SetSchemeID(v)
	return _u
}

// SetNillableSchemeID sets the "scheme_id" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableSchemeID(v *uuid.UUID) *ApplicationUpdateOne {
	if v != nil {
		_u.SetSchemeID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApplicationUpdateOne) SetStatus(v string) *ApplicationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableStatus(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ApplicationUpdateOne) SetSource(v string) *ApplicationUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableSource(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetAppliedAmount sets the "applied_amount" field.
func (_u *ApplicationUpdateOne) SetAppliedAmount(v float64) *ApplicationUpdateOne {
	_u.mutation.ResetAppliedAmount()
	_u.mutation.SetAppliedAmount(v)
	return _u
}

// SetNillableAppliedAmount sets the "applied_amount" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableAppliedAmount(v *float64) *ApplicationUpdateOne {
	if v != nil {
		_u.SetAppliedAmount(*v)
	}
	return _u
}

// AddAppliedAmount adds value to the "applied_amount" field.
func (_u *ApplicationUpdateOne) AddAppliedAmount(v float64) *ApplicationUpdateOne {
	_u.mutation.AddAppliedAmount(v)
	return _u
}

// ClearAppliedAmount clears the value of the "applied_amount" field.
func (_u *ApplicationUpdateOne) ClearAppliedAmount() *ApplicationUpdateOne {
	_u.mutation.ClearAppliedAmount()
	return _u
}

// SetApprovedAmount sets the "approved_amount" field.
func (_u *ApplicationUpdateOne) SetApprovedAmount(v float64) *ApplicationUpdateOne {
	_u.mutation.ResetApprovedAmount()
	_u.mutation.SetApprovedAmount(v)
	return _u
}

// SetNillableApprovedAmount sets the "approved_amount" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableApprovedAmount(v *float64) *ApplicationUpdateOne {
	if v != nil {
		_u.SetApprovedAmount(*v)
	}
	return _u
}

// AddApprovedAmount adds value to the "approved_amount" field.
func (_u *ApplicationUpdateOne) AddApprovedAmount(v float64) *ApplicationUpdateOne {
	_u.mutation.AddApprovedAmount(v)
	return _u
}

// ClearApprovedAmount clears the value of the "approved_amount" field.
func (_u *ApplicationUpdateOne) ClearApprovedAmount() *ApplicationUpdateOne {
	_u.mutation.ClearApprovedAmount()
	return _u
}

// SetEligibility sets the "eligibility" field.
func (_u *ApplicationUpdateOne) SetEligibility(v json.RawMessage) *ApplicationUpdateOne {
	_u.mutation.SetEligibility(v)
	return _u
}

// AppendEligibility appends value to the "eligibility" field.
func (_u *ApplicationUpdateOne) AppendEligibility(v json.RawMessage) *ApplicationUpdateOne {
	_u.mutation.AppendEligibility(v)
	return _u
}

// ClearEligibility clears the value of the "eligibility" field.
func (_u *ApplicationUpdateOne) ClearEligibility() *ApplicationUpdateOne {
	_u.mutation.ClearEligibility()
	return _u
}

// SetStatusHistory sets the "status_history" field.
func (_u *ApplicationUpdateOne) SetStatusHistory(v json.RawMessage) *ApplicationUpdateOne {
	_u.mutation.SetStatusHistory(v)
	return _u
}

// AppendStatusHistory appends value to the "status_history" field.
func (_u *ApplicationUpdateOne) AppendStatusHistory(v json.RawMessage) *ApplicationUpdateOne {
	_u.mutation.AppendStatusHistory(v)
	return _u
}

// ClearStatusHistory clears the value of the "status_history" field.
func (_u *ApplicationUpdateOne) ClearStatusHistory() *ApplicationUpdateOne {
	_u.mutation.ClearStatusHistory()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ApplicationUpdateOne) SetCreatedAt(v time.Time) *ApplicationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableCreatedAt(v *time.Time) *ApplicationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicationUpdateOne) SetUpdatedAt(v time.Time) *ApplicationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFarmer sets the "farmer" edge to the Farmer entity.
func (_u *ApplicationUpdateOne) SetFarmer(v *Farmer) *ApplicationUpdateOne {
	return _u.SetFarmerID(v.ID)
}

// SetScheme sets the "scheme" edge to the Scheme entity.
func (_u *ApplicationUpdateOne) SetScheme(v *Scheme) *ApplicationUpdateOne {
	return _u.SetSchemeID(v.ID)
}

// Mutation returns the ApplicationMutation object of the builder.
func (_u *ApplicationUpdateOne) Mutation() *ApplicationMutation {
	return _u.mutation
}

// ClearFarmer clears the "farmer" edge to the Farmer entity.
func (_u *ApplicationUpdateOne) ClearFarmer() *ApplicationUpdateOne {
	_u.mutation.ClearFarmer()
	return _u
}

// ClearScheme clears the "scheme" edge to the Scheme entity.
func (_u *ApplicationUpdateOne) ClearScheme() *ApplicationUpdateOne {
	_u.mutation.ClearScheme()
	return _u
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (_u *ApplicationUpdateOne) Where(ps ...predicate.Application) *ApplicationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApplicationUpdateOne) Select(field string, fields ...string) *ApplicationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Application entity.
func (_u *ApplicationUpdateOne) Save(ctx context.Context) (*Application, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationUpdateOne) SaveX(ctx context.Context) *Application {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApplicationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := application.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := application.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Application.source": %w`, err)}
		}
	}
	if _u.mutation.FarmerCleared() && len(_u.mutation.FarmerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Application.farmer"`)
	}
	if _u.mutation.SchemeCleared() && len(_u.mutation.SchemeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Application.scheme"`)
	}
	return nil
}

func (_u *ApplicationUpdateOne) sqlSave(ctx context.Context) (_node *Application, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Application.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, application.FieldID)
		for _, f := range fields {
			if !application.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != application.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(application.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.AppliedAmount(); ok {
		_spec.SetField(application.FieldAppliedAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAppliedAmount(); ok {
		_spec.AddField(application.FieldAppliedAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AppliedAmountCleared() {
		_spec.ClearField(application.FieldAppliedAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ApprovedAmount(); ok {
		_spec.SetField(application.FieldApprovedAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedApprovedAmount(); ok {
		_spec.AddField(application.FieldApprovedAmount, field.TypeFloat64, value)
	}
	if _u.mutation.ApprovedAmountCleared() {
		_spec.ClearField(application.FieldApprovedAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Eligibility(); ok {
		_spec.SetField(application.FieldEligibility, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEligibility(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, application.FieldEligibility, value)
		})
	}
	if _u.mutation.EligibilityCleared() {
		_spec.ClearField(application.FieldEligibility, field.TypeJSON)
	}
	if value, ok := _u.mutation.StatusHistory(); ok {
		_spec.SetField(application.FieldStatusHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStatusHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, application.FieldStatusHistory, value)
		})
	}
	if _u.mutation.StatusHistoryCleared() {
		_spec.ClearField(application.FieldStatusHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(application.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FarmerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FarmerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SchemeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SchemeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Application{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
