// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/chandrashekharddev/agroscheme/gen/ent/application"
	"github.com/chandrashekharddev/agroscheme/gen/ent/farmer"
	"github.com/chandrashekharddev/agroscheme/gen/ent/farmerdocument"
	"github.com/chandrashekharddev/agroscheme/gen/ent/notification"
	"github.com/chandrashekharddev/agroscheme/gen/ent/predicate"
	"github.com/google/uuid"
)

// FarmerUpdate is the builder for updating Farmer entities.
type FarmerUpdate struct {
	config
	hooks    []Hook
	mutation *FarmerMutation
}

// Where appends a list predicates to the FarmerUpdate builder.
func (_u *FarmerUpdate) Where(ps ...predicate.Farmer) *FarmerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFarmerCode sets the "farmer_code" field.
func (_u *FarmerUpdate) SetFarmerCode(v string) *FarmerUpdate {
	_u.mutation.SetFarmerCode(v)
	return _u
}

// SetNillableFarmerCode sets the "farmer_code" field if the given value is not nil.
func (_u *FarmerUpdate) SetNillableFarmerCode(v *string) *FarmerUpdate {
	if v != nil {
		_u.SetFarmerCode(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *FarmerUpdate) SetName(v string) *FarmerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FarmerUpdate) SetNillableName(v *string) *FarmerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *FarmerUpdate) SetPhone(v string) *FarmerUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *FarmerUpdate) SetNillablePhone(v *string) *FarmerUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *FarmerUpdate) ClearPhone() *FarmerUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetVillage sets the "village" field.
func (_u *FarmerUpdate) SetVillage(v string) *FarmerUpdate {
	_u.mutation.SetVillage(v)
	return _u
}

// SetNillableVillage sets the "village" field if the given value is not nil.
func (_u *FarmerUpdate) SetNillableVillage(v *string) *FarmerUpdate {
	if v != nil {
		_u.SetVillage(*v)
	}
	return _u
}

// ClearVillage clears the value of the "village" field.
func (_u *FarmerUpdate) ClearVillage() *FarmerUpdate {
	_u.mutation.ClearVillage()
	return _u
}

// SetDistrict sets the "district" field.
func (_u *FarmerUpdate) SetDistrict(v string) *FarmerUpdate {
	_u.mutation.SetDistrict(v)
	return _u
}

// SetNillableDistrict sets the "district" field if the given value is not nil.
func (_u *FarmerUpdate) SetNillableDistrict(v *string) *FarmerUpdate {
	if v != nil {
		_u.SetDistrict(*v)
	}
	return _u
}

// ClearDistrict clears the value of the "district" field.
func (_u *FarmerUpdate) ClearDistrict() *FarmerUpdate {
	_u.mutation.ClearDistrict()
	return _u
}

// SetAutoApply sets the "auto_apply" field.
func (_u *FarmerUpdate) SetAutoApply(v bool) *FarmerUpdate {
	_u.mutation.SetAutoApply(v)
	return _u
}

// SetNillableAutoApply sets the "auto_apply" field if the given value is not nil.
func (_u *FarmerUpdate) SetNillableAutoApply(v *bool) *FarmerUpdate {
	if v != nil {
		_u.SetAutoApply(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FarmerUpdate) SetCreatedAt(v time.Time) *FarmerUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FarmerUpdate) SetNillableCreatedAt(v *time.Time) *FarmerUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FarmerUpdate) SetUpdatedAt(v time.Time) *FarmerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocumentIDs adds the "documents" edge to the FarmerDocument entity by IDs.
func (_u *FarmerUpdate) AddDocumentIDs(ids ...uuid.UUID) *FarmerUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the FarmerDocument entity.
func (_u *FarmerUpdate) AddDocuments(v ...*FarmerDocument) *FarmerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddApplicationIDs adds the "applications" edge to the Application entity by IDs.
func (_u *FarmerUpdate) AddApplicationIDs(ids ...uuid.UUID) *FarmerUpdate {
	_u.mutation.AddApplicationIDs(ids...)
	return _u
}

// AddApplications adds the "applications" edges to the Application entity.
func (_u *FarmerUpdate) AddApplications(v ...*Application) *FarmerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApplicationIDs(ids...)
}

// AddNotificationIDs adds the "notifications" edge to the Notification entity by IDs.
func (_u *FarmerUpdate) AddNotificationIDs(ids ...uuid.UUID) *FarmerUpdate {
	_u.mutation.AddNotificationIDs(ids...)
	return _u
}

// AddNotifications adds the "notifications" edges to the Notification entity.
func (_u *FarmerUpdate) AddNotifications(v ...*Notification) *FarmerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNotificationIDs(ids...)
}

// Mutation returns the FarmerMutation object of the builder.
func (_u *FarmerUpdate) Mutation() *FarmerMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the FarmerDocument entity.
func (_u *FarmerUpdate) ClearDocuments() *FarmerUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to FarmerDocument entities by IDs.
func (_u *FarmerUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *FarmerUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to FarmerDocument entities.
func (_u *FarmerUpdate) RemoveDocuments(v ...*FarmerDocument) *FarmerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearApplications clears all "applications" edges to the Application entity.
func (_u *FarmerUpdate) ClearApplications() *FarmerUpdate {
	_u.mutation.ClearApplications()
	return _u
}

// RemoveApplicationIDs removes the "applications" edge to Application entities by IDs.
func (_u *FarmerUpdate) RemoveApplicationIDs(ids ...uuid.UUID) *FarmerUpdate {
	_u.mutation.RemoveApplicationIDs(ids...)
	return _u
}

// RemoveApplications removes "applications" edges to Application entities.
func (_u *FarmerUpdate) RemoveApplications(v ...*Application) *FarmerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApplicationIDs(ids...)
}

// ClearNotifications clears all "notifications" edges to the Notification entity.
func (_u *FarmerUpdate) ClearNotifications() *FarmerUpdate {
	_u.mutation.ClearNotifications()
	return _u
}

// RemoveNotificationIDs removes the "notifications" edge to Notification entities by IDs.
func (_u *FarmerUpdate) RemoveNotificationIDs(ids ...uuid.UUID) *FarmerUpdate {
	_u.mutation.RemoveNotificationIDs(ids...)
	return _u
}

// RemoveNotifications removes "notifications" edges to Notification entities.
func (_u *FarmerUpdate) RemoveNotifications(v ...*Notification) *FarmerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNotificationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FarmerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FarmerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FarmerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FarmerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FarmerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := farmer.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FarmerUpdate) check() error {
	if v, ok := _u.mutation.FarmerCode(); ok {
		if err := farmer.FarmerCodeValidator(v); err != nil {
			return &ValidationError{Name: "farmer_code", err: fmt.Errorf(`ent: validator failed for field "Farmer.farmer_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := farmer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Farmer.name": %w`, err)}
		}
	}
	return nil
}

func (_u *FarmerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(farmer.Table, farmer.Columns, sqlgraph.NewFieldSpec(farmer.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FarmerCode(); ok {
		_spec.SetField(farmer.FieldFarmerCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(farmer.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(farmer.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(farmer.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Village(); ok {
		_spec.SetField(farmer.FieldVillage, field.TypeString, value)
	}
	if _u.mutation.VillageCleared() {
		_spec.ClearField(farmer.FieldVillage, field.TypeString)
	}
	if value, ok := _u.mutation.District(); ok {
		_spec.SetField(farmer.FieldDistrict, field.TypeString, value)
	}
	if _u.mutation.DistrictCleared() {
		_spec.ClearField(farmer.FieldDistrict, field.TypeString)
	}
	if value, ok := _u.mutation.AutoApply(); ok {
		_spec.SetField(farmer.FieldAutoApply, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(farmer.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(farmer.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApplicationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApplicationsIDs(); len(nodes) > 0 && !_u.mutation.ApplicationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NotificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNotificationsIDs(); len(nodes) > 0 && !_u.mutation.NotificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotificationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{farmer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FarmerUpdateOne is the builder for updating a single Farmer entity.
type FarmerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FarmerMutation
}

// SetFarmerCode sets the "farmer_code" field.
func (_u *FarmerUpdateOne) SetFarmerCode(v string) *FarmerUpdateOne {
	_u.mutation.SetFarmerCode(v)
	return _u
}

// SetNillableFarmerCode sets the "farmer_code" field if the given value is not nil.
func (_u *FarmerUpdateOne) SetNillableFarmerCode(v *string) *FarmerUpdateOne {
	if v != nil {
		_u.SetFarmerCode(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *FarmerUpdateOne) SetName(v string) *FarmerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FarmerUpdateOne) SetNillableName(v *string) *FarmerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *FarmerUpdateOne) SetPhone(v string) *FarmerUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *FarmerUpdateOne) SetNillablePhone(v *string) *FarmerUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *FarmerUpdateOne) ClearPhone() *FarmerUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetVillage sets the "village" field.
func (_u *FarmerUpdateOne) SetVillage(v string) *FarmerUpdateOne {
	_u.mutation.SetVillage(v)
	return _u
}

// SetNillableVillage sets the "village" field if the given value is not nil.
func (_u *FarmerUpdateOne) SetNillableVillage(v *string) *FarmerUpdateOne {
	if v != nil {
		_u.SetVillage(*v)
	}
	return _u
}

// ClearVillage clears the value of the "village" field.
func (_u *FarmerUpdateOne) ClearVillage() *FarmerUpdateOne {
	_u.mutation.ClearVillage()
	return _u
}

// SetDistrict sets the "district" field.
func (_u *FarmerUpdateOne) SetDistrict(v string) *FarmerUpdateOne {
	_u.mutation.SetDistrict(v)
	return _u
}

// SetNillableDistrict sets the "district" field if the given value is not nil.
func (_u *FarmerUpdateOne) SetNillableDistrict(v *string) *FarmerUpdateOne {
	if v != nil {
		_u.SetDistrict(*v)
	}
	return _u
}

// ClearDistrict clears the value of the "district" field.
func (_u *FarmerUpdateOne) ClearDistrict() *FarmerUpdateOne {
	_u.mutation.ClearDistrict()
	return _u
}

// SetAutoApply sets the "auto_apply" field.
func (_u *FarmerUpdateOne) SetAutoApply(v bool) *FarmerUpdateOne {
	_u.mutation.SetAutoApply(v)
	return _u
}

// SetNillableAutoApply sets the "auto_apply" field if the given value is not nil.
func (_u *FarmerUpdateOne) SetNillableAutoApply(v *bool) *FarmerUpdateOne {
	if v != nil {
		_u.SetAutoApply(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FarmerUpdateOne) SetCreatedAt(v time.Time) *FarmerUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FarmerUpdateOne) SetNillableCreatedAt(v *time.Time) *FarmerUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FarmerUpdateOne) SetUpdatedAt(v time.Time) *FarmerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocumentIDs adds the "documents" edge to the FarmerDocument entity by IDs.
func (_u *FarmerUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *FarmerUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the FarmerDocument entity.
func (_u *FarmerUpdateOne) AddDocuments(v ...*FarmerDocument) *FarmerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddApplicationIDs adds the "applications" edge to the Application entity by IDs.
func (_u *FarmerUpdateOne) AddApplicationIDs(ids ...uuid.UUID) *FarmerUpdateOne {
	_u.mutation.AddApplicationIDs(ids...)
	return _u
}

// AddApplications adds the "applications" edges to the Application entity.
func (_u *FarmerUpdateOne) AddApplications(v ...*Application) *FarmerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApplicationIDs(ids...)
}

// AddNotificationIDs adds the "notifications" edge to the Notification entity by IDs.
func (_u *FarmerUpdateOne) AddNotificationIDs(ids ...uuid.UUID) *FarmerUpdateOne {
	_u.mutation.AddNotificationIDs(ids...)
	return _u
}

// AddNotifications adds the "notifications" edges to the Notification entity.
func (_u *FarmerUpdateOne) AddNotifications(v ...*Notification) *FarmerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNotificationIDs(ids...)
}

// Mutation returns the FarmerMutation object of the builder.
func (_u *FarmerUpdateOne) Mutation() *FarmerMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the FarmerDocument entity.
func (_u *FarmerUpdateOne) ClearDocuments() *FarmerUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to FarmerDocument entities by IDs.
func (_u *FarmerUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *FarmerUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to FarmerDocument entities.
func (_u *FarmerUpdateOne) RemoveDocuments(v ...*FarmerDocument) *FarmerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearApplications clears all "applications" edges to the Application entity.
func (_u *FarmerUpdateOne) ClearApplications() *FarmerUpdateOne {
	_u.mutation.ClearApplications()
	return _u
}

// RemoveApplicationIDs removes the "applications" edge to Application entities by IDs.
func (_u *FarmerUpdateOne) RemoveApplicationIDs(ids ...uuid.UUID) *FarmerUpdateOne {
	_u.mutation.RemoveApplicationIDs(ids...)
	return _u
}

// RemoveApplications removes "applications" edges to Application entities.
func (_u *FarmerUpdateOne) RemoveApplications(v ...*Application) *FarmerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApplicationIDs(ids...)
}

// ClearNotifications clears all "notifications" edges to the Notification entity.
func (_u *FarmerUpdateOne) ClearNotifications() *FarmerUpdateOne {
	_u.mutation.ClearNotifications()
	return _u
}

// RemoveNotificationIDs removes the "notifications" edge to Notification entities by IDs.
func (_u *FarmerUpdateOne) RemoveNotificationIDs(ids ...uuid.UUID) *FarmerUpdateOne {
	_u.mutation.RemoveNotificationIDs(ids...)
	return _u
}

// RemoveNotifications removes "notifications" edges to Notification entities.
func (_u *FarmerUpdateOne) RemoveNotifications(v ...*Notification) *FarmerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNotificationIDs(ids...)
}

// Where appends a list predicates to the FarmerUpdate builder.
func (_u *FarmerUpdateOne) Where(ps ...predicate.Farmer) *FarmerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FarmerUpdateOne) Select(field string, fields ...string) *FarmerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Farmer entity.
func (_u *FarmerUpdateOne) Save(ctx context.Context) (*Farmer, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FarmerUpdateOne) SaveX(ctx context.Context) *Farmer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FarmerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FarmerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FarmerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := farmer.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FarmerUpdateOne) check() error {
	if v, ok := _u.mutation.FarmerCode(); ok {
		if err := farmer.FarmerCodeValidator(v); err != nil {
			return &ValidationError{Name: "farmer_code", err: fmt.Errorf(`ent: validator failed for field "Farmer.farmer_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := farmer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Farmer.name": %w`, err)}
		}
	}
	return nil
}

func (_u *FarmerUpdateOne) sqlSave(ctx context.Context) (_node *Farmer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(farmer.Table, farmer.Columns, sqlgraph.NewFieldSpec(farmer.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Farmer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, farmer.FieldID)
		for _, f := range fields {
			if !farmer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != farmer.FieldID {
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
	if value, ok := _u.mutation.FarmerCode(); ok {
		_spec.SetField(farmer.FieldFarmerCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(farmer.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(farmer.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(farmer.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Village(); ok {
		_spec.SetField(farmer.FieldVillage, field.TypeString, value)
	}
	if _u.mutation.VillageCleared() {
		_spec.ClearField(farmer.FieldVillage, field.TypeString)
	}
	if value, ok := _u.mutation.District(); ok {
		_spec.SetField(farmer.FieldDistrict, field.TypeString, value)
	}
	if _u.mutation.DistrictCleared() {
		_spec.ClearField(farmer.FieldDistrict, field.TypeString)
	}
	if value, ok := _u.mutation.AutoApply(); ok {
		_spec.SetField(farmer.FieldAutoApply, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(farmer.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(farmer.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApplicationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApplicationsIDs(); len(nodes) > 0 && !_u.mutation.ApplicationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NotificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNotificationsIDs(); len(nodes) > 0 && !_u.mutation.NotificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotificationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Farmer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{farmer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
