// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chandrashekharddev/agroscheme/gen/ent/application"
	"github.com/chandrashekharddev/agroscheme/gen/ent/farmer"
	"github.com/chandrashekharddev/agroscheme/gen/ent/farmerdocument"
	"github.com/chandrashekharddev/agroscheme/gen/ent/notification"
	"github.com/chandrashekharddev/agroscheme/gen/ent/predicate"
	"github.com/chandrashekharddev/agroscheme/gen/ent/scheme"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApplication    = "Application"
	TypeFarmer         = "Farmer"
	TypeFarmerDocument = "FarmerDocument"
	TypeNotification   = "Notification"
	TypeScheme         = "Scheme"
)

// ApplicationMutation represents an operation that mutates the Application nodes in the graph.
type ApplicationMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	application_id       *string
	status               *string
	source               *string
	applied_amount       *float64
	addapplied_amount    *float64
	approved_amount      *float64
	addapproved_amount   *float64
	eligibility          *json.RawMessage
	appendeligibility    json.RawMessage
	status_history       *json.RawMessage
	appendstatus_history json.RawMessage
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	farmer               *uuid.UUID
	clearedfarmer        bool
	scheme               *uuid.UUID
	clearedscheme        bool
	done                 bool
	oldValue             func(context.Context) (*Application, error)
	predicates           []predicate.Application
}

var _ ent.Mutation = (*ApplicationMutation)(nil)

// applicationOption allows management of the mutation configuration using functional options.
type applicationOption func(*ApplicationMutation)

// newApplicationMutation creates new mutation for the Application entity.
func newApplicationMutation(c config, op Op, opts ...applicationOption) *ApplicationMutation {
	m := &ApplicationMutation{
		config:        c,
		op:            op,
		typ:           TypeApplication,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApplicationID sets the ID field of the mutation.
func withApplicationID(id uuid.UUID) applicationOption {
	return func(m *ApplicationMutation) {
		var (
			err   error
			once  sync.Once
			value *Application
		)
		m.oldValue = func(ctx context.Context) (*Application, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Application.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApplication sets the old Application of the mutation.
func withApplication(node *Application) applicationOption {
	return func(m *ApplicationMutation) {
		m.oldValue = func(context.Context) (*Application, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApplicationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApplicationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Application entities.
func (m *ApplicationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApplicationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApplicationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Application.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetApplicationID sets the "application_id" field.
func (m *ApplicationMutation) SetApplicationID(s string) {
	m.application_id = &s
}

// ApplicationID returns the value of the "application_id" field in the mutation.
func (m *ApplicationMutation) ApplicationID() (r string, exists bool) {
	v := m.application_id
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationID returns the old "application_id" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldApplicationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationID: %w", err)
	}
	return oldValue.ApplicationID, nil
}

// ResetApplicationID resets all changes to the "application_id" field.
func (m *ApplicationMutation) ResetApplicationID() {
	m.application_id = nil
}

// SetFarmerID sets the "farmer_id" field.
func (m *ApplicationMutation) SetFarmerID(u uuid.UUID) {
	m.farmer = &u
}

// FarmerID returns the value of the "farmer_id" field in the mutation.
func (m *ApplicationMutation) FarmerID() (r uuid.UUID, exists bool) {
	v := m.farmer
	if v == nil {
		return
	}
	return *v, true
}

// OldFarmerID returns the old "farmer_id" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldFarmerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFarmerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFarmerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFarmerID: %w", err)
	}
	return oldValue.FarmerID, nil
}

// ResetFarmerID resets all changes to the "farmer_id" field.
func (m *ApplicationMutation) ResetFarmerID() {
	m.farmer = nil
}

// SetSchemeID sets the "scheme_id" field.
func (m *ApplicationMutation) SetSchemeID(u uuid.UUID) {
	m.scheme = &u
}

// SchemeID returns the value of the "scheme_id" field in the mutation.
func (m *ApplicationMutation) SchemeID() (r uuid.UUID, exists bool) {
	v := m.scheme
	if v == nil {
		return
	}
	return *v, true
}

// OldSchemeID returns the old "scheme_id" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldSchemeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchemeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchemeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchemeID: %w", err)
	}
	return oldValue.SchemeID, nil
}

// ResetSchemeID resets all changes to the "scheme_id" field.
func (m *ApplicationMutation) ResetSchemeID() {
	m.scheme = nil
}

// SetStatus sets the "status" field.
func (m *ApplicationMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ApplicationMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ApplicationMutation) ResetStatus() {
	m.status = nil
}

// SetSource sets the "source" field.
func (m *ApplicationMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *ApplicationMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ApplicationMutation) ResetSource() {
	m.source = nil
}

// SetAppliedAmount sets the "applied_amount" field.
func (m *ApplicationMutation) SetAppliedAmount(f float64) {
	m.applied_amount = &f
	m.addapplied_amount = nil
}

// AppliedAmount returns the value of the "applied_amount" field in the mutation.
func (m *ApplicationMutation) AppliedAmount() (r float64, exists bool) {
	v := m.applied_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAppliedAmount returns the old "applied_amount" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldAppliedAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppliedAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppliedAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppliedAmount: %w", err)
	}
	return oldValue.AppliedAmount, nil
}

// AddAppliedAmount adds f to the "applied_amount" field.
func (m *ApplicationMutation) AddAppliedAmount(f float64) {
	if m.addapplied_amount != nil {
		*m.addapplied_amount += f
	} else {
		m.addapplied_amount = &f
	}
}

// AddedAppliedAmount returns the value that was added to the "applied_amount" field in this mutation.
func (m *ApplicationMutation) AddedAppliedAmount() (r float64, exists bool) {
	v := m.addapplied_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearAppliedAmount clears the value of the "applied_amount" field.
func (m *ApplicationMutation) ClearAppliedAmount() {
	m.applied_amount = nil
	m.addapplied_amount = nil
	m.clearedFields[application.FieldAppliedAmount] = struct{}{}
}

// AppliedAmountCleared returns if the "applied_amount" field was cleared in this mutation.
func (m *ApplicationMutation) AppliedAmountCleared() bool {
	_, ok := m.clearedFields[application.FieldAppliedAmount]
	return ok
}

// ResetAppliedAmount resets all changes to the "applied_amount" field.
func (m *ApplicationMutation) ResetAppliedAmount() {
	m.applied_amount = nil
	m.addapplied_amount = nil
	delete(m.clearedFields, application.FieldAppliedAmount)
}

// SetApprovedAmount sets the "approved_amount" field.
func (m *ApplicationMutation) SetApprovedAmount(f float64) {
	m.approved_amount = &f
	m.addapproved_amount = nil
}

// ApprovedAmount returns the value of the "approved_amount" field in the mutation.
func (m *ApplicationMutation) ApprovedAmount() (r float64, exists bool) {
	v := m.approved_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedAmount returns the old "approved_amount" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldApprovedAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedAmount: %w", err)
	}
	return oldValue.ApprovedAmount, nil
}

// AddApprovedAmount adds f to the "approved_amount" field.
func (m *ApplicationMutation) AddApprovedAmount(f float64) {
	if m.addapproved_amount != nil {
		*m.addapproved_amount += f
	} else {
		m.addapproved_amount = &f
	}
}

// AddedApprovedAmount returns the value that was added to the "approved_amount" field in this mutation.
func (m *ApplicationMutation) AddedApprovedAmount() (r float64, exists bool) {
	v := m.addapproved_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearApprovedAmount clears the value of the "approved_amount" field.
func (m *ApplicationMutation) ClearApprovedAmount() {
	m.approved_amount = nil
	m.addapproved_amount = nil
	m.clearedFields[application.FieldApprovedAmount] = struct{}{}
}

// ApprovedAmountCleared returns if the "approved_amount" field was cleared in this mutation.
func (m *ApplicationMutation) ApprovedAmountCleared() bool {
	_, ok := m.clearedFields[application.FieldApprovedAmount]
	return ok
}

// ResetApprovedAmount resets all changes to the "approved_amount" field.
func (m *ApplicationMutation) ResetApprovedAmount() {
	m.approved_amount = nil
	m.addapproved_amount = nil
	delete(m.clearedFields, application.FieldApprovedAmount)
}

// SetEligibility sets the "eligibility" field.
func (m *ApplicationMutation) SetEligibility(jm json.RawMessage) {
	m.eligibility = &jm
	m.appendeligibility = nil
}

// Eligibility returns the value of the "eligibility" field in the mutation.
func (m *ApplicationMutation) Eligibility() (r json.RawMessage, exists bool) {
	v := m.eligibility
	if v == nil {
		return
	}
	return *v, true
}

// OldEligibility returns the old "eligibility" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldEligibility(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEligibility is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEligibility requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEligibility: %w", err)
	}
	return oldValue.Eligibility, nil
}

// AppendEligibility adds jm to the "eligibility" field.
func (m *ApplicationMutation) AppendEligibility(jm json.RawMessage) {
	m.appendeligibility = append(m.appendeligibility, jm...)
}

// AppendedEligibility returns the list of values that were appended to the "eligibility" field in this mutation.
func (m *ApplicationMutation) AppendedEligibility() (json.RawMessage, bool) {
	if len(m.appendeligibility) == 0 {
		return nil, false
	}
	return m.appendeligibility, true
}

// ClearEligibility clears the value of the "eligibility" field.
func (m *ApplicationMutation) ClearEligibility() {
	m.eligibility = nil
	m.appendeligibility = nil
	m.clearedFields[application.FieldEligibility] = struct{}{}
}

// EligibilityCleared returns if the "eligibility" field was cleared in this mutation.
func (m *ApplicationMutation) EligibilityCleared() bool {
	_, ok := m.clearedFields[application.FieldEligibility]
	return ok
}

// ResetEligibility resets all changes to the "eligibility" field.
func (m *ApplicationMutation) ResetEligibility() {
	m.eligibility = nil
	m.appendeligibility = nil
	delete(m.clearedFields, application.FieldEligibility)
}

// SetStatusHistory sets the "status_history" field.
func (m *ApplicationMutation) SetStatusHistory(jm json.RawMessage) {
	m.status_history = &jm
	m.appendstatus_history = nil
}

// StatusHistory returns the value of the "status_history" field in the mutation.
func (m *ApplicationMutation) StatusHistory() (r json.RawMessage, exists bool) {
	v := m.status_history
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusHistory returns the old "status_history" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldStatusHistory(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusHistory: %w", err)
	}
	return oldValue.StatusHistory, nil
}

// AppendStatusHistory adds jm to the "status_history" field.
func (m *ApplicationMutation) AppendStatusHistory(jm json.RawMessage) {
	m.appendstatus_history = append(m.appendstatus_history, jm...)
}

// AppendedStatusHistory returns the list of values that were appended to the "status_history" field in this mutation.
func (m *ApplicationMutation) AppendedStatusHistory() (json.RawMessage, bool) {
	if len(m.appendstatus_history) == 0 {
		return nil, false
	}
	return m.appendstatus_history, true
}

// ClearStatusHistory clears the value of the "status_history" field.
func (m *ApplicationMutation) ClearStatusHistory() {
	m.status_history = nil
	m.appendstatus_history = nil
	m.clearedFields[application.FieldStatusHistory] = struct{}{}
}

// StatusHistoryCleared returns if the "status_history" field was cleared in this mutation.
func (m *ApplicationMutation) StatusHistoryCleared() bool {
	_, ok := m.clearedFields[application.FieldStatusHistory]
	return ok
}

// ResetStatusHistory resets all changes to the "status_history" field.
func (m *ApplicationMutation) ResetStatusHistory() {
	m.status_history = nil
	m.appendstatus_history = nil
	delete(m.clearedFields, application.FieldStatusHistory)
}

// SetCreatedAt sets the "created_at" field.
func (m *ApplicationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApplicationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApplicationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ApplicationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ApplicationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ApplicationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearFarmer clears the "farmer" edge to the Farmer entity.
func (m *ApplicationMutation) ClearFarmer() {
	m.clearedfarmer = true
	m.clearedFields[application.FieldFarmerID] = struct{}{}
}

// FarmerCleared reports if the "farmer" edge to the Farmer entity was cleared.
func (m *ApplicationMutation) FarmerCleared() bool {
	return m.clearedfarmer
}

// FarmerIDs returns the "farmer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FarmerID instead. It exists only for internal usage by the builders.
func (m *ApplicationMutation) FarmerIDs() (ids []uuid.UUID) {
	if id := m.farmer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFarmer resets all changes to the "farmer" edge.
func (m *ApplicationMutation) ResetFarmer() {
	m.farmer = nil
	m.clearedfarmer = false
}

// ClearScheme clears the "scheme" edge to the Scheme entity.
func (m *ApplicationMutation) ClearScheme() {
	m.clearedscheme = true
	m.clearedFields[application.FieldSchemeID] = struct{}{}
}

// SchemeCleared reports if the "scheme" edge to the Scheme entity was cleared.
func (m *ApplicationMutation) SchemeCleared() bool {
	return m.clearedscheme
}

// SchemeIDs returns the "scheme" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SchemeID instead. It exists only for internal usage by the builders.
func (m *ApplicationMutation) SchemeIDs() (ids []uuid.UUID) {
	if id := m.scheme; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetScheme resets all changes to the "scheme" edge.
func (m *ApplicationMutation) ResetScheme() {
	m.scheme = nil
	m.clearedscheme = false
}

// Where appends a list predicates to the ApplicationMutation builder.
func (m *ApplicationMutation) Where(ps ...predicate.Application) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApplicationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApplicationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Application, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApplicationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApplicationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Application).
func (m *ApplicationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApplicationMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.application_id != nil {
		fields = append(fields, application.FieldApplicationID)
	}
	if m.farmer != nil {
		fields = append(fields, application.FieldFarmerID)
	}
	if m.scheme != nil {
		fields = append(fields, application.FieldSchemeID)
	}
	if m.status != nil {
		fields = append(fields, application.FieldStatus)
	}
	if m.source != nil {
		fields = append(fields, application.FieldSource)
	}
	if m.applied_amount != nil {
		fields = append(fields, application.FieldAppliedAmount)
	}
	if m.approved_amount != nil {
		fields = append(fields, application.FieldApprovedAmount)
	}
	if m.eligibility != nil {
		fields = append(fields, application.FieldEligibility)
	}
	if m.status_history != nil {
		fields = append(fields, application.FieldStatusHistory)
	}
	if m.created_at != nil {
		fields = append(fields, application.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, application.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApplicationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case application.FieldApplicationID:
		return m.ApplicationID()
	case application.FieldFarmerID:
		return m.FarmerID()
	case application.FieldSchemeID:
		return m.SchemeID()
	case application.FieldStatus:
		return m.Status()
	case application.FieldSource:
		return m.Source()
	case application.FieldAppliedAmount:
		return m.AppliedAmount()
	case application.FieldApprovedAmount:
		return m.ApprovedAmount()
	case application.FieldEligibility:
		return m.Eligibility()
	case application.FieldStatusHistory:
		return m.StatusHistory()
	case application.FieldCreatedAt:
		return m.CreatedAt()
	case application.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApplicationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case application.FieldApplicationID:
		return m.OldApplicationID(ctx)
	case application.FieldFarmerID:
		return m.OldFarmerID(ctx)
	case application.FieldSchemeID:
		return m.OldSchemeID(ctx)
	case application.FieldStatus:
		return m.OldStatus(ctx)
	case application.FieldSource:
		return m.OldSource(ctx)
	case application.FieldAppliedAmount:
		return m.OldAppliedAmount(ctx)
	case application.FieldApprovedAmount:
		return m.OldApprovedAmount(ctx)
	case application.FieldEligibility:
		return m.OldEligibility(ctx)
	case application.FieldStatusHistory:
		return m.OldStatusHistory(ctx)
	case application.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case application.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Application field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case application.FieldApplicationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationID(v)
		return nil
	case application.FieldFarmerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFarmerID(v)
		return nil
	case application.FieldSchemeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchemeID(v)
		return nil
	case application.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case application.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case application.FieldAppliedAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppliedAmount(v)
		return nil
	case application.FieldApprovedAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedAmount(v)
		return nil
	case application.FieldEligibility:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEligibility(v)
		return nil
	case application.FieldStatusHistory:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusHistory(v)
		return nil
	case application.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case application.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Application field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApplicationMutation) AddedFields() []string {
	var fields []string
	if m.addapplied_amount != nil {
		fields = append(fields, application.FieldAppliedAmount)
	}
	if m.addapproved_amount != nil {
		fields = append(fields, application.FieldApprovedAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApplicationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case application.FieldAppliedAmount:
		return m.AddedAppliedAmount()
	case application.FieldApprovedAmount:
		return m.AddedApprovedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case application.FieldAppliedAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAppliedAmount(v)
		return nil
	case application.FieldApprovedAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddApprovedAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Application numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApplicationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(application.FieldAppliedAmount) {
		fields = append(fields, application.FieldAppliedAmount)
	}
	if m.FieldCleared(application.FieldApprovedAmount) {
		fields = append(fields, application.FieldApprovedAmount)
	}
	if m.FieldCleared(application.FieldEligibility) {
		fields = append(fields, application.FieldEligibility)
	}
	if m.FieldCleared(application.FieldStatusHistory) {
		fields = append(fields, application.FieldStatusHistory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApplicationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApplicationMutation) ClearField(name string) error {
	switch name {
	case application.FieldAppliedAmount:
		m.ClearAppliedAmount()
		return nil
	case application.FieldApprovedAmount:
		m.ClearApprovedAmount()
		return nil
	case application.FieldEligibility:
		m.ClearEligibility()
		return nil
	case application.FieldStatusHistory:
		m.ClearStatusHistory()
		return nil
	}
	return fmt.Errorf("unknown Application nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApplicationMutation) ResetField(name string) error {
	switch name {
	case application.FieldApplicationID:
		m.ResetApplicationID()
		return nil
	case application.FieldFarmerID:
		m.ResetFarmerID()
		return nil
	case application.FieldSchemeID:
		m.ResetSchemeID()
		return nil
	case application.FieldStatus:
		m.ResetStatus()
		return nil
	case application.FieldSource:
		m.ResetSource()
		return nil
	case application.FieldAppliedAmount:
		m.ResetAppliedAmount()
		return nil
	case application.FieldApprovedAmount:
		m.ResetApprovedAmount()
		return nil
	case application.FieldEligibility:
		m.ResetEligibility()
		return nil
	case application.FieldStatusHistory:
		m.ResetStatusHistory()
		return nil
	case application.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case application.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Application field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApplicationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.farmer != nil {
		edges = append(edges, application.EdgeFarmer)
	}
	if m.scheme != nil {
		edges = append(edges, application.EdgeScheme)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApplicationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case application.EdgeFarmer:
		if id := m.farmer; id != nil {
			return []ent.Value{*id}
		}
	case application.EdgeScheme:
		if id := m.scheme; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApplicationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApplicationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApplicationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfarmer {
		edges = append(edges, application.EdgeFarmer)
	}
	if m.clearedscheme {
		edges = append(edges, application.EdgeScheme)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApplicationMutation) EdgeCleared(name string) bool {
	switch name {
	case application.EdgeFarmer:
		return m.clearedfarmer
	case application.EdgeScheme:
		return m.clearedscheme
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApplicationMutation) ClearEdge(name string) error {
	switch name {
	case application.EdgeFarmer:
		m.ClearFarmer()
		return nil
	case application.EdgeScheme:
		m.ClearScheme()
		return nil
	}
	return fmt.Errorf("unknown Application unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApplicationMutation) ResetEdge(name string) error {
	switch name {
	case application.EdgeFarmer:
		m.ResetFarmer()
		return nil
	case application.EdgeScheme:
		m.ResetScheme()
		return nil
	}
	return fmt.Errorf("unknown Application edge %s", name)
}

// FarmerMutation represents an operation that mutates the Farmer nodes in the graph.
type FarmerMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	farmer_code          *string
	name                 *string
	phone                *string
	village              *string
	district             *string
	auto_apply           *bool
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	documents            map[uuid.UUID]struct{}
	removeddocuments     map[uuid.UUID]struct{}
	cleareddocuments     bool
	applications         map[uuid.UUID]struct{}
	removedapplications  map[uuid.UUID]struct{}
	clearedapplications  bool
	notifications        map[uuid.UUID]struct{}
	removednotifications map[uuid.UUID]struct{}
	clearednotifications bool
	done                 bool
	oldValue             func(context.Context) (*Farmer, error)
	predicates           []predicate.Farmer
}

var _ ent.Mutation = (*FarmerMutation)(nil)

// farmerOption allows management of the mutation configuration using functional options.
type farmerOption func(*FarmerMutation)

// newFarmerMutation creates new mutation for the Farmer entity.
func newFarmerMutation(c config, op Op, opts ...farmerOption) *FarmerMutation {
	m := &FarmerMutation{
		config:        c,
		op:            op,
		typ:           TypeFarmer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFarmerID sets the ID field of the mutation.
func withFarmerID(id uuid.UUID) farmerOption {
	return func(m *FarmerMutation) {
		var (
			err   error
			once  sync.Once
			value *Farmer
		)
		m.oldValue = func(ctx context.Context) (*Farmer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Farmer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFarmer sets the old Farmer of the mutation.
func withFarmer(node *Farmer) farmerOption {
	return func(m *FarmerMutation) {
		m.oldValue = func(context.Context) (*Farmer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FarmerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FarmerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Farmer entities.
func (m *FarmerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FarmerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FarmerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Farmer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFarmerCode sets the "farmer_code" field.
func (m *FarmerMutation) SetFarmerCode(s string) {
	m.farmer_code = &s
}

// FarmerCode returns the value of the "farmer_code" field in the mutation.
func (m *FarmerMutation) FarmerCode() (r string, exists bool) {
	v := m.farmer_code
	if v == nil {
		return
	}
	return *v, true
}

// OldFarmerCode returns the old "farmer_code" field's value of the Farmer entity.
// If the Farmer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FarmerMutation) OldFarmerCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFarmerCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFarmerCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFarmerCode: %w", err)
	}
	return oldValue.FarmerCode, nil
}

// ResetFarmerCode resets all changes to the "farmer_code" field.
func (m *FarmerMutation) ResetFarmerCode() {
	m.farmer_code = nil
}

// SetName sets the "name" field.
func (m *FarmerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FarmerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Farmer entity.
// If the Farmer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FarmerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *FarmerMutation) ResetName() {
	m.name = nil
}

// SetPhone sets the "phone" field.
func (m *FarmerMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *FarmerMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Farmer entity.
// If the Farmer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FarmerMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *FarmerMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[farmer.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *FarmerMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[farmer.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *FarmerMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, farmer.FieldPhone)
}

// SetVillage sets the "village" field.
func (m *FarmerMutation) SetVillage(s string) {
	m.village = &s
}

// Village returns the value of the "village" field in the mutation.
func (m *FarmerMutation) Village() (r string, exists bool) {
	v := m.village
	if v == nil {
		return
	}
	return *v, true
}

// OldVillage returns the old "village" field's value of the Farmer entity.
// If the Farmer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FarmerMutation) OldVillage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVillage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVillage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVillage: %w", err)
	}
	return oldValue.Village, nil
}

// ClearVillage clears the value of the "village" field.
func (m *FarmerMutation) ClearVillage() {
	m.village = nil
	m.clearedFields[farmer.FieldVillage] = struct{}{}
}

// VillageCleared returns if the "village" field was cleared in this mutation.
func (m *FarmerMutation) VillageCleared() bool {
	_, ok := m.clearedFields[farmer.FieldVillage]
	return ok
}

// ResetVillage resets all changes to the "village" field.
func (m *FarmerMutation) ResetVillage() {
	m.village = nil
	delete(m.clearedFields, farmer.FieldVillage)
}

// SetDistrict sets the "district" field.
func (m *FarmerMutation) SetDistrict(s string) {
	m.district = &s
}

// District returns the value of the "district" field in the mutation.
func (m *FarmerMutation) District() (r string, exists bool) {
	v := m.district
	if v == nil {
		return
	}
	return *v, true
}

// OldDistrict returns the old "district" field's value of the Farmer entity.
// If the Farmer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FarmerMutation) OldDistrict(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistrict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistrict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistrict: %w", err)
	}
	return oldValue.District, nil
}

// ClearDistrict clears the value of the "district" field.
func (m *FarmerMutation) ClearDistrict() {
	m.district = nil
	m.clearedFields[farmer.FieldDistrict] = struct{}{}
}

// DistrictCleared returns if the "district" field was cleared in this mutation.
func (m *FarmerMutation) DistrictCleared() bool {
	_, ok := m.clearedFields[farmer.FieldDistrict]
	return ok
}

// ResetDistrict resets all changes to the "district" field.
func (m *FarmerMutation) ResetDistrict() {
	m.district = nil
	delete(m.clearedFields, farmer.FieldDistrict)
}

// SetAutoApply sets the "auto_apply" field.
func (m *FarmerMutation) SetAutoApply(b bool) {
	m.auto_apply = &b
}

// AutoApply returns the value of the "auto_apply" field in the mutation.
func (m *FarmerMutation) AutoApply() (r bool, exists bool) {
	v := m.auto_apply
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoApply returns the old "auto_apply" field's value of the Farmer entity.
// If the Farmer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FarmerMutation) OldAutoApply(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoApply is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoApply requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoApply: %w", err)
	}
	return oldValue.AutoApply, nil
}

// ResetAutoApply resets all changes to the "auto_apply" field.
func (m *FarmerMutation) ResetAutoApply() {
	m.auto_apply = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FarmerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FarmerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Farmer entity.
// If the Farmer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FarmerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FarmerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FarmerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FarmerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Farmer entity.
// If the Farmer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FarmerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FarmerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddDocumentIDs adds the "documents" edge to the FarmerDocument entity by ids.
func (m *FarmerMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the FarmerDocument entity.
func (m *FarmerMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the FarmerDocument entity was cleared.
func (m *FarmerMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the FarmerDocument entity by IDs.
func (m *FarmerMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the FarmerDocument entity.
func (m *FarmerMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *FarmerMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *FarmerMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// AddApplicationIDs adds the "applications" edge to the Application entity by ids.
func (m *FarmerMutation) AddApplicationIDs(ids ...uuid.UUID) {
	if m.applications == nil {
		m.applications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.applications[ids[i]] = struct{}{}
	}
}

// ClearApplications clears the "applications" edge to the Application entity.
func (m *FarmerMutation) ClearApplications() {
	m.clearedapplications = true
}

// ApplicationsCleared reports if the "applications" edge to the Application entity was cleared.
func (m *FarmerMutation) ApplicationsCleared() bool {
	return m.clearedapplications
}

// RemoveApplicationIDs removes the "applications" edge to the Application entity by IDs.
func (m *FarmerMutation) RemoveApplicationIDs(ids ...uuid.UUID) {
	if m.removedapplications == nil {
		m.removedapplications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.applications, ids[i])
		m.removedapplications[ids[i]] = struct{}{}
	}
}

// RemovedApplications returns the removed IDs of the "applications" edge to the Application entity.
func (m *FarmerMutation) RemovedApplicationsIDs() (ids []uuid.UUID) {
	for id := range m.removedapplications {
		ids = append(ids, id)
	}
	return
}

// ApplicationsIDs returns the "applications" edge IDs in the mutation.
func (m *FarmerMutation) ApplicationsIDs() (ids []uuid.UUID) {
	for id := range m.applications {
		ids = append(ids, id)
	}
	return
}

// ResetApplications resets all changes to the "applications" edge.
func (m *FarmerMutation) ResetApplications() {
	m.applications = nil
	m.clearedapplications = false
	m.removedapplications = nil
}

// AddNotificationIDs adds the "notifications" edge to the Notification entity by ids.
func (m *FarmerMutation) AddNotificationIDs(ids ...uuid.UUID) {
	if m.notifications == nil {
		m.notifications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.notifications[ids[i]] = struct{}{}
	}
}

// ClearNotifications clears the "notifications" edge to the Notification entity.
func (m *FarmerMutation) ClearNotifications() {
	m.clearednotifications = true
}

// NotificationsCleared reports if the "notifications" edge to the Notification entity was cleared.
func (m *FarmerMutation) NotificationsCleared() bool {
	return m.clearednotifications
}

// RemoveNotificationIDs removes the "notifications" edge to the Notification entity by IDs.
func (m *FarmerMutation) RemoveNotificationIDs(ids ...uuid.UUID) {
	if m.removednotifications == nil {
		m.removednotifications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.notifications, ids[i])
		m.removednotifications[ids[i]] = struct{}{}
	}
}

// RemovedNotifications returns the removed IDs of the "notifications" edge to the Notification entity.
func (m *FarmerMutation) RemovedNotificationsIDs() (ids []uuid.UUID) {
	for id := range m.removednotifications {
		ids = append(ids, id)
	}
	return
}

// NotificationsIDs returns the "notifications" edge IDs in the mutation.
func (m *FarmerMutation) NotificationsIDs() (ids []uuid.UUID) {
	for id := range m.notifications {
		ids = append(ids, id)
	}
	return
}

// ResetNotifications resets all changes to the "notifications" edge.
func (m *FarmerMutation) ResetNotifications() {
	m.notifications = nil
	m.clearednotifications = false
	m.removednotifications = nil
}

// Where appends a list predicates to the FarmerMutation builder.
func (m *FarmerMutation) Where(ps ...predicate.Farmer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FarmerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FarmerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Farmer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FarmerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FarmerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Farmer).
func (m *FarmerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FarmerMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.farmer_code != nil {
		fields = append(fields, farmer.FieldFarmerCode)
	}
	if m.name != nil {
		fields = append(fields, farmer.FieldName)
	}
	if m.phone != nil {
		fields = append(fields, farmer.FieldPhone)
	}
	if m.village != nil {
		fields = append(fields, farmer.FieldVillage)
	}
	if m.district != nil {
		fields = append(fields, farmer.FieldDistrict)
	}
	if m.auto_apply != nil {
		fields = append(fields, farmer.FieldAutoApply)
	}
	if m.created_at != nil {
		fields = append(fields, farmer.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, farmer.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FarmerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case farmer.FieldFarmerCode:
		return m.FarmerCode()
	case farmer.FieldName:
		return m.Name()
	case farmer.FieldPhone:
		return m.Phone()
	case farmer.FieldVillage:
		return m.Village()
	case farmer.FieldDistrict:
		return m.District()
	case farmer.FieldAutoApply:
		return m.AutoApply()
	case farmer.FieldCreatedAt:
		return m.CreatedAt()
	case farmer.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FarmerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case farmer.FieldFarmerCode:
		return m.OldFarmerCode(ctx)
	case farmer.FieldName:
		return m.OldName(ctx)
	case farmer.FieldPhone:
		return m.OldPhone(ctx)
	case farmer.FieldVillage:
		return m.OldVillage(ctx)
	case farmer.FieldDistrict:
		return m.OldDistrict(ctx)
	case farmer.FieldAutoApply:
		return m.OldAutoApply(ctx)
	case farmer.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case farmer.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Farmer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FarmerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case farmer.FieldFarmerCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFarmerCode(v)
		return nil
	case farmer.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case farmer.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case farmer.FieldVillage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVillage(v)
		return nil
	case farmer.FieldDistrict:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistrict(v)
		return nil
	case farmer.FieldAutoApply:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoApply(v)
		return nil
	case farmer.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case farmer.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Farmer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FarmerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FarmerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FarmerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Farmer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FarmerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(farmer.FieldPhone) {
		fields = append(fields, farmer.FieldPhone)
	}
	if m.FieldCleared(farmer.FieldVillage) {
		fields = append(fields, farmer.FieldVillage)
	}
	if m.FieldCleared(farmer.FieldDistrict) {
		fields = append(fields, farmer.FieldDistrict)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FarmerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FarmerMutation) ClearField(name string) error {
	switch name {
	case farmer.FieldPhone:
		m.ClearPhone()
		return nil
	case farmer.FieldVillage:
		m.ClearVillage()
		return nil
	case farmer.FieldDistrict:
		m.ClearDistrict()
		return nil
	}
	return fmt.Errorf("unknown Farmer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FarmerMutation) ResetField(name string) error {
	switch name {
	case farmer.FieldFarmerCode:
		m.ResetFarmerCode()
		return nil
	case farmer.FieldName:
		m.ResetName()
		return nil
	case farmer.FieldPhone:
		m.ResetPhone()
		return nil
	case farmer.FieldVillage:
		m.ResetVillage()
		return nil
	case farmer.FieldDistrict:
		m.ResetDistrict()
		return nil
	case farmer.FieldAutoApply:
		m.ResetAutoApply()
		return nil
	case farmer.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case farmer.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Farmer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FarmerMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.documents != nil {
		edges = append(edges, farmer.EdgeDocuments)
	}
	if m.applications != nil {
		edges = append(edges, farmer.EdgeApplications)
	}
	if m.notifications != nil {
		edges = append(edges, farmer.EdgeNotifications)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FarmerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case farmer.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	case farmer.EdgeApplications:
		ids := make([]ent.Value, 0, len(m.applications))
		for id := range m.applications {
			ids = append(ids, id)
		}
		return ids
	case farmer.EdgeNotifications:
		ids := make([]ent.Value, 0, len(m.notifications))
		for id := range m.notifications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FarmerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeddocuments != nil {
		edges = append(edges, farmer.EdgeDocuments)
	}
	if m.removedapplications != nil {
		edges = append(edges, farmer.EdgeApplications)
	}
	if m.removednotifications != nil {
		edges = append(edges, farmer.EdgeNotifications)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FarmerMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case farmer.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	case farmer.EdgeApplications:
		ids := make([]ent.Value, 0, len(m.removedapplications))
		for id := range m.removedapplications {
			ids = append(ids, id)
		}
		return ids
	case farmer.EdgeNotifications:
		ids := make([]ent.Value, 0, len(m.removednotifications))
		for id := range m.removednotifications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FarmerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareddocuments {
		edges = append(edges, farmer.EdgeDocuments)
	}
	if m.clearedapplications {
		edges = append(edges, farmer.EdgeApplications)
	}
	if m.clearednotifications {
		edges = append(edges, farmer.EdgeNotifications)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FarmerMutation) EdgeCleared(name string) bool {
	switch name {
	case farmer.EdgeDocuments:
		return m.cleareddocuments
	case farmer.EdgeApplications:
		return m.clearedapplications
	case farmer.EdgeNotifications:
		return m.clearednotifications
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FarmerMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Farmer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FarmerMutation) ResetEdge(name string) error {
	switch name {
	case farmer.EdgeDocuments:
		m.ResetDocuments()
		return nil
	case farmer.EdgeApplications:
		m.ResetApplications()
		return nil
	case farmer.EdgeNotifications:
		m.ResetNotifications()
		return nil
	}
	return fmt.Errorf("unknown Farmer edge %s", name)
}

// FarmerDocumentMutation represents an operation that mutates the FarmerDocument nodes in the graph.
type FarmerDocumentMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	doc_type                 *string
	fields                   *json.RawMessage
	appendfields             json.RawMessage
	extraction_confidence    *float32
	addextraction_confidence *float32
	raw_text                 *string
	uploaded_at              *time.Time
	clearedFields            map[string]struct{}
	farmer                   *uuid.UUID
	clearedfarmer            bool
	done                     bool
	oldValue                 func(context.Context) (*FarmerDocument, error)
	predicates               []predicate.FarmerDocument
}

var _ ent.Mutation = (*FarmerDocumentMutation)(nil)

// farmerdocumentOption allows management of the mutation configuration using functional options.
type farmerdocumentOption func(*FarmerDocumentMutation)

// newFarmerDocumentMutation creates new mutation for the FarmerDocument entity.
func newFarmerDocumentMutation(c config, op Op, opts ...farmerdocumentOption) *FarmerDocumentMutation {
	m := &FarmerDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeFarmerDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFarmerDocumentID sets the ID field of the mutation.
func withFarmerDocumentID(id uuid.UUID) farmerdocumentOption {
	return func(m *FarmerDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *FarmerDocument
		)
		m.oldValue = func(ctx context.Context) (*FarmerDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FarmerDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFarmerDocument sets the old FarmerDocument of the mutation.
func withFarmerDocument(node *FarmerDocument) farmerdocumentOption {
	return func(m *FarmerDocumentMutation) {
		m.oldValue = func(context.Context) (*FarmerDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FarmerDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FarmerDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FarmerDocument entities.
func (m *FarmerDocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FarmerDocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FarmerDocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FarmerDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFarmerID sets the "farmer_id" field.
func (m *FarmerDocumentMutation) SetFarmerID(u uuid.UUID) {
	m.farmer = &u
}

// FarmerID returns the value of the "farmer_id" field in the mutation.
func (m *FarmerDocumentMutation) FarmerID() (r uuid.UUID, exists bool) {
	v := m.farmer
	if v == nil {
		return
	}
	return *v, true
}

// OldFarmerID returns the old "farmer_id" field's value of the FarmerDocument entity.
// If the FarmerDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FarmerDocumentMutation) OldFarmerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFarmerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFarmerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFarmerID: %w", err)
	}
	return oldValue.FarmerID, nil
}

// ResetFarmerID resets all changes to the "farmer_id" field.
func (m *FarmerDocumentMutation) ResetFarmerID() {
	m.farmer = nil
}

// SetDocType sets the "doc_type" field.
func (m *FarmerDocumentMutation) SetDocType(s string) {
	m.doc_type = &s
}

// DocType returns the value of the "doc_type" field in the mutation.
func (m *FarmerDocumentMutation) DocType() (r string, exists bool) {
	v := m.doc_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocType returns the old "doc_type" field's value of the FarmerDocument entity.
// If the FarmerDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FarmerDocumentMutation) OldDocType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocType: %w", err)
	}
	return oldValue.DocType, nil
}

// ResetDocType resets all changes to the "doc_type" field.
func (m *FarmerDocumentMutation) ResetDocType() {
	m.doc_type = nil
}

// SetFields sets the "fields" field.
func (m *FarmerDocumentMutation) SetFields(jm json.RawMessage) {
	m.fields = &jm
	m.appendfields = nil
}

// GetFields returns the value of the "fields" field in the mutation.
func (m *FarmerDocumentMutation) GetFields() (r json.RawMessage, exists bool) {
	v := m.fields
	if v == nil {
		return
	}
	return *v, true
}

// OldFields returns the old "fields" field's value of the FarmerDocument entity.
// If the FarmerDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FarmerDocumentMutation) OldFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFields: %w", err)
	}
	return oldValue.Fields, nil
}

// AppendFields adds jm to the "fields" field.
func (m *FarmerDocumentMutation) AppendFields(jm json.RawMessage) {
	m.appendfields = append(m.appendfields, jm...)
}

// AppendedFields returns the list of values that were appended to the "fields" field in this mutation.
func (m *FarmerDocumentMutation) AppendedFields() (json.RawMessage, bool) {
	if len(m.appendfields) == 0 {
		return nil, false
	}
	return m.appendfields, true
}

// ClearFields clears the value of the "fields" field.
func (m *FarmerDocumentMutation) ClearFields() {
	m.fields = nil
	m.appendfields = nil
	m.clearedFields[farmerdocument.FieldFields] = struct{}{}
}

// FieldsCleared returns if the "fields" field was cleared in this mutation.
func (m *FarmerDocumentMutation) FieldsCleared() bool {
	_, ok := m.clearedFields[farmerdocument.FieldFields]
	return ok
}

// ResetFields resets all changes to the "fields" field.
func (m *FarmerDocumentMutation) ResetFields() {
	m.fields = nil
	m.appendfields = nil
	delete(m.clearedFields, farmerdocument.FieldFields)
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (m *FarmerDocumentMutation) SetExtractionConfidence(f float32) {
	m.extraction_confidence = &f
	m.addextraction_confidence = nil
}

// ExtractionConfidence returns the value of the "extraction_confidence" field in the mutation.
func (m *FarmerDocumentMutation) ExtractionConfidence() (r float32, exists bool) {
	v := m.extraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionConfidence returns the old "extraction_confidence" field's value of the FarmerDocument entity.
// If the FarmerDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FarmerDocumentMutation) OldExtractionConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionConfidence: %w", err)
	}
	return oldValue.ExtractionConfidence, nil
}

// AddExtractionConfidence adds f to the "extraction_confidence" field.
func (m *FarmerDocumentMutation) AddExtractionConfidence(f float32) {
	if m.addextraction_confidence != nil {
		*m.addextraction_confidence += f
	} else {
		m.addextraction_confidence = &f
	}
}

// AddedExtractionConfidence returns the value that was added to the "extraction_confidence" field in this mutation.
func (m *FarmerDocumentMutation) AddedExtractionConfidence() (r float32, exists bool) {
	v := m.addextraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (m *FarmerDocumentMutation) ClearExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	m.clearedFields[farmerdocument.FieldExtractionConfidence] = struct{}{}
}

// ExtractionConfidenceCleared returns if the "extraction_confidence" field was cleared in this mutation.
func (m *FarmerDocumentMutation) ExtractionConfidenceCleared() bool {
	_, ok := m.clearedFields[farmerdocument.FieldExtractionConfidence]
	return ok
}

// ResetExtractionConfidence resets all changes to the "extraction_confidence" field.
func (m *FarmerDocumentMutation) ResetExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	delete(m.clearedFields, farmerdocument.FieldExtractionConfidence)
}

// SetRawText sets the "raw_text" field.
func (m *FarmerDocumentMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *FarmerDocumentMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the FarmerDocument entity.
// If the FarmerDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FarmerDocumentMutation) OldRawText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *FarmerDocumentMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[farmerdocument.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *FarmerDocumentMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[farmerdocument.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *FarmerDocumentMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, farmerdocument.FieldRawText)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *FarmerDocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *FarmerDocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the FarmerDocument entity.
// If the FarmerDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FarmerDocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *FarmerDocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearFarmer clears the "farmer" edge to the Farmer entity.
func (m *FarmerDocumentMutation) ClearFarmer() {
	m.clearedfarmer = true
	m.clearedFields[farmerdocument.FieldFarmerID] = struct{}{}
}

// FarmerCleared reports if the "farmer" edge to the Farmer entity was cleared.
func (m *FarmerDocumentMutation) FarmerCleared() bool {
	return m.clearedfarmer
}

// FarmerIDs returns the "farmer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FarmerID instead. It exists only for internal usage by the builders.
func (m *FarmerDocumentMutation) FarmerIDs() (ids []uuid.UUID) {
	if id := m.farmer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFarmer resets all changes to the "farmer" edge.
func (m *FarmerDocumentMutation) ResetFarmer() {
	m.farmer = nil
	m.clearedfarmer = false
}

// Where appends a list predicates to the FarmerDocumentMutation builder.
func (m *FarmerDocumentMutation) Where(ps ...predicate.FarmerDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FarmerDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FarmerDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FarmerDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FarmerDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FarmerDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FarmerDocument).
func (m *FarmerDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FarmerDocumentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.farmer != nil {
		fields = append(fields, farmerdocument.FieldFarmerID)
	}
	if m.doc_type != nil {
		fields = append(fields, farmerdocument.FieldDocType)
	}
	if m.fields != nil {
		fields = append(fields, farmerdocument.FieldFields)
	}
	if m.extraction_confidence != nil {
		fields = append(fields, farmerdocument.FieldExtractionConfidence)
	}
	if m.raw_text != nil {
		fields = append(fields, farmerdocument.FieldRawText)
	}
	if m.uploaded_at != nil {
		fields = append(fields, farmerdocument.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FarmerDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case farmerdocument.FieldFarmerID:
		return m.FarmerID()
	case farmerdocument.FieldDocType:
		return m.DocType()
	case farmerdocument.FieldFields:
		return m.GetFields()
	case farmerdocument.FieldExtractionConfidence:
		return m.ExtractionConfidence()
	case farmerdocument.FieldRawText:
		return m.RawText()
	case farmerdocument.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FarmerDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case farmerdocument.FieldFarmerID:
		return m.OldFarmerID(ctx)
	case farmerdocument.FieldDocType:
		return m.OldDocType(ctx)
	case farmerdocument.FieldFields:
		return m.OldFields(ctx)
	case farmerdocument.FieldExtractionConfidence:
		return m.OldExtractionConfidence(ctx)
	case farmerdocument.FieldRawText:
		return m.OldRawText(ctx)
	case farmerdocument.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FarmerDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FarmerDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case farmerdocument.FieldFarmerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFarmerID(v)
		return nil
	case farmerdocument.FieldDocType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocType(v)
		return nil
	case farmerdocument.FieldFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFields(v)
		return nil
	case farmerdocument.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionConfidence(v)
		return nil
	case farmerdocument.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case farmerdocument.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FarmerDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FarmerDocumentMutation) AddedFields() []string {
	var fields []string
	if m.addextraction_confidence != nil {
		fields = append(fields, farmerdocument.FieldExtractionConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FarmerDocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case farmerdocument.FieldExtractionConfidence:
		return m.AddedExtractionConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FarmerDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case farmerdocument.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractionConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown FarmerDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FarmerDocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(farmerdocument.FieldFields) {
		fields = append(fields, farmerdocument.FieldFields)
	}
	if m.FieldCleared(farmerdocument.FieldExtractionConfidence) {
		fields = append(fields, farmerdocument.FieldExtractionConfidence)
	}
	if m.FieldCleared(farmerdocument.FieldRawText) {
		fields = append(fields, farmerdocument.FieldRawText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FarmerDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FarmerDocumentMutation) ClearField(name string) error {
	switch name {
	case farmerdocument.FieldFields:
		m.ClearFields()
		return nil
	case farmerdocument.FieldExtractionConfidence:
		m.ClearExtractionConfidence()
		return nil
	case farmerdocument.FieldRawText:
		m.ClearRawText()
		return nil
	}
	return fmt.Errorf("unknown FarmerDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FarmerDocumentMutation) ResetField(name string) error {
	switch name {
	case farmerdocument.FieldFarmerID:
		m.ResetFarmerID()
		return nil
	case farmerdocument.FieldDocType:
		m.ResetDocType()
		return nil
	case farmerdocument.FieldFields:
		m.ResetFields()
		return nil
	case farmerdocument.FieldExtractionConfidence:
		m.ResetExtractionConfidence()
		return nil
	case farmerdocument.FieldRawText:
		m.ResetRawText()
		return nil
	case farmerdocument.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown FarmerDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FarmerDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.farmer != nil {
		edges = append(edges, farmerdocument.EdgeFarmer)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FarmerDocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case farmerdocument.EdgeFarmer:
		if id := m.farmer; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FarmerDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FarmerDocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FarmerDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfarmer {
		edges = append(edges, farmerdocument.EdgeFarmer)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FarmerDocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case farmerdocument.EdgeFarmer:
		return m.clearedfarmer
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FarmerDocumentMutation) ClearEdge(name string) error {
	switch name {
	case farmerdocument.EdgeFarmer:
		m.ClearFarmer()
		return nil
	}
	return fmt.Errorf("unknown FarmerDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FarmerDocumentMutation) ResetEdge(name string) error {
	switch name {
	case farmerdocument.EdgeFarmer:
		m.ResetFarmer()
		return nil
	}
	return fmt.Errorf("unknown FarmerDocument edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	title             *string
	message           *string
	notification_type *string
	read              *bool
	created_at        *time.Time
	clearedFields     map[string]struct{}
	farmer            *uuid.UUID
	clearedfarmer     bool
	done              bool
	oldValue          func(context.Context) (*Notification, error)
	predicates        []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id uuid.UUID) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notification entities.
func (m *NotificationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFarmerID sets the "farmer_id" field.
func (m *NotificationMutation) SetFarmerID(u uuid.UUID) {
	m.farmer = &u
}

// FarmerID returns the value of the "farmer_id" field in the mutation.
func (m *NotificationMutation) FarmerID() (r uuid.UUID, exists bool) {
	v := m.farmer
	if v == nil {
		return
	}
	return *v, true
}

// OldFarmerID returns the old "farmer_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldFarmerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFarmerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFarmerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFarmerID: %w", err)
	}
	return oldValue.FarmerID, nil
}

// ResetFarmerID resets all changes to the "farmer_id" field.
func (m *NotificationMutation) ResetFarmerID() {
	m.farmer = nil
}

// SetTitle sets the "title" field.
func (m *NotificationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *NotificationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *NotificationMutation) ResetTitle() {
	m.title = nil
}

// SetMessage sets the "message" field.
func (m *NotificationMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *NotificationMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *NotificationMutation) ResetMessage() {
	m.message = nil
}

// SetNotificationType sets the "notification_type" field.
func (m *NotificationMutation) SetNotificationType(s string) {
	m.notification_type = &s
}

// NotificationType returns the value of the "notification_type" field in the mutation.
func (m *NotificationMutation) NotificationType() (r string, exists bool) {
	v := m.notification_type
	if v == nil {
		return
	}
	return *v, true
}

// OldNotificationType returns the old "notification_type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldNotificationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotificationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotificationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotificationType: %w", err)
	}
	return oldValue.NotificationType, nil
}

// ResetNotificationType resets all changes to the "notification_type" field.
func (m *NotificationMutation) ResetNotificationType() {
	m.notification_type = nil
}

// SetRead sets the "read" field.
func (m *NotificationMutation) SetRead(b bool) {
	m.read = &b
}

// Read returns the value of the "read" field in the mutation.
func (m *NotificationMutation) Read() (r bool, exists bool) {
	v := m.read
	if v == nil {
		return
	}
	return *v, true
}

// OldRead returns the old "read" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRead: %w", err)
	}
	return oldValue.Read, nil
}

// ResetRead resets all changes to the "read" field.
func (m *NotificationMutation) ResetRead() {
	m.read = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearFarmer clears the "farmer" edge to the Farmer entity.
func (m *NotificationMutation) ClearFarmer() {
	m.clearedfarmer = true
	m.clearedFields[notification.FieldFarmerID] = struct{}{}
}

// FarmerCleared reports if the "farmer" edge to the Farmer entity was cleared.
func (m *NotificationMutation) FarmerCleared() bool {
	return m.clearedfarmer
}

// FarmerIDs returns the "farmer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FarmerID instead. It exists only for internal usage by the builders.
func (m *NotificationMutation) FarmerIDs() (ids []uuid.UUID) {
	if id := m.farmer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFarmer resets all changes to the "farmer" edge.
func (m *NotificationMutation) ResetFarmer() {
	m.farmer = nil
	m.clearedfarmer = false
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.farmer != nil {
		fields = append(fields, notification.FieldFarmerID)
	}
	if m.title != nil {
		fields = append(fields, notification.FieldTitle)
	}
	if m.message != nil {
		fields = append(fields, notification.FieldMessage)
	}
	if m.notification_type != nil {
		fields = append(fields, notification.FieldNotificationType)
	}
	if m.read != nil {
		fields = append(fields, notification.FieldRead)
	}
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldFarmerID:
		return m.FarmerID()
	case notification.FieldTitle:
		return m.Title()
	case notification.FieldMessage:
		return m.Message()
	case notification.FieldNotificationType:
		return m.NotificationType()
	case notification.FieldRead:
		return m.Read()
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldFarmerID:
		return m.OldFarmerID(ctx)
	case notification.FieldTitle:
		return m.OldTitle(ctx)
	case notification.FieldMessage:
		return m.OldMessage(ctx)
	case notification.FieldNotificationType:
		return m.OldNotificationType(ctx)
	case notification.FieldRead:
		return m.OldRead(ctx)
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldFarmerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFarmerID(v)
		return nil
	case notification.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case notification.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case notification.FieldNotificationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotificationType(v)
		return nil
	case notification.FieldRead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRead(v)
		return nil
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldFarmerID:
		m.ResetFarmerID()
		return nil
	case notification.FieldTitle:
		m.ResetTitle()
		return nil
	case notification.FieldMessage:
		m.ResetMessage()
		return nil
	case notification.FieldNotificationType:
		m.ResetNotificationType()
		return nil
	case notification.FieldRead:
		m.ResetRead()
		return nil
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.farmer != nil {
		edges = append(edges, notification.EdgeFarmer)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case notification.EdgeFarmer:
		if id := m.farmer; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfarmer {
		edges = append(edges, notification.EdgeFarmer)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	switch name {
	case notification.EdgeFarmer:
		return m.clearedfarmer
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	switch name {
	case notification.EdgeFarmer:
		m.ClearFarmer()
		return nil
	}
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	switch name {
	case notification.EdgeFarmer:
		m.ResetFarmer()
		return nil
	}
	return fmt.Errorf("unknown Notification edge %s", name)
}

// SchemeMutation represents an operation that mutates the Scheme nodes in the graph.
type SchemeMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	name                     *string
	description              *string
	benefit_amount           *float64
	addbenefit_amount        *float64
	criteria                 *json.RawMessage
	appendcriteria           json.RawMessage
	required_documents       *[]string
	appendrequired_documents []string
	active                   *bool
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	applications             map[uuid.UUID]struct{}
	removedapplications      map[uuid.UUID]struct{}
	clearedapplications      bool
	done                     bool
	oldValue                 func(context.Context) (*Scheme, error)
	predicates               []predicate.Scheme
}

var _ ent.Mutation = (*SchemeMutation)(nil)

// schemeOption allows management of the mutation configuration using functional options.
type schemeOption func(*SchemeMutation)

// newSchemeMutation creates new mutation for the Scheme entity.
func newSchemeMutation(c config, op Op, opts ...schemeOption) *SchemeMutation {
	m := &SchemeMutation{
		config:        c,
		op:            op,
		typ:           TypeScheme,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSchemeID sets the ID field of the mutation.
func withSchemeID(id uuid.UUID) schemeOption {
	return func(m *SchemeMutation) {
		var (
			err   error
			once  sync.Once
			value *Scheme
		)
		m.oldValue = func(ctx context.Context) (*Scheme, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Scheme.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheme sets the old Scheme of the mutation.
func withScheme(node *Scheme) schemeOption {
	return func(m *SchemeMutation) {
		m.oldValue = func(context.Context) (*Scheme, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SchemeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SchemeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Scheme entities.
func (m *SchemeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SchemeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SchemeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Scheme.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SchemeMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SchemeMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Scheme entity.
// If the Scheme object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemeMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SchemeMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *SchemeMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SchemeMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Scheme entity.
// If the Scheme object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemeMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SchemeMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[scheme.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SchemeMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[scheme.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SchemeMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, scheme.FieldDescription)
}

// SetBenefitAmount sets the "benefit_amount" field.
func (m *SchemeMutation) SetBenefitAmount(f float64) {
	m.benefit_amount = &f
	m.addbenefit_amount = nil
}

// BenefitAmount returns the value of the "benefit_amount" field in the mutation.
func (m *SchemeMutation) BenefitAmount() (r float64, exists bool) {
	v := m.benefit_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldBenefitAmount returns the old "benefit_amount" field's value of the Scheme entity.
// If the Scheme object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemeMutation) OldBenefitAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBenefitAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBenefitAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBenefitAmount: %w", err)
	}
	return oldValue.BenefitAmount, nil
}

// AddBenefitAmount adds f to the "benefit_amount" field.
func (m *SchemeMutation) AddBenefitAmount(f float64) {
	if m.addbenefit_amount != nil {
		*m.addbenefit_amount += f
	} else {
		m.addbenefit_amount = &f
	}
}

// AddedBenefitAmount returns the value that was added to the "benefit_amount" field in this mutation.
func (m *SchemeMutation) AddedBenefitAmount() (r float64, exists bool) {
	v := m.addbenefit_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetBenefitAmount resets all changes to the "benefit_amount" field.
func (m *SchemeMutation) ResetBenefitAmount() {
	m.benefit_amount = nil
	m.addbenefit_amount = nil
}

// SetCriteria sets the "criteria" field.
func (m *SchemeMutation) SetCriteria(jm json.RawMessage) {
	m.criteria = &jm
	m.appendcriteria = nil
}

// Criteria returns the value of the "criteria" field in the mutation.
func (m *SchemeMutation) Criteria() (r json.RawMessage, exists bool) {
	v := m.criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldCriteria returns the old "criteria" field's value of the Scheme entity.
// If the Scheme object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemeMutation) OldCriteria(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriteria: %w", err)
	}
	return oldValue.Criteria, nil
}

// AppendCriteria adds jm to the "criteria" field.
func (m *SchemeMutation) AppendCriteria(jm json.RawMessage) {
	m.appendcriteria = append(m.appendcriteria, jm...)
}

// AppendedCriteria returns the list of values that were appended to the "criteria" field in this mutation.
func (m *SchemeMutation) AppendedCriteria() (json.RawMessage, bool) {
	if len(m.appendcriteria) == 0 {
		return nil, false
	}
	return m.appendcriteria, true
}

// ClearCriteria clears the value of the "criteria" field.
func (m *SchemeMutation) ClearCriteria() {
	m.criteria = nil
	m.appendcriteria = nil
	m.clearedFields[scheme.FieldCriteria] = struct{}{}
}

// CriteriaCleared returns if the "criteria" field was cleared in this mutation.
func (m *SchemeMutation) CriteriaCleared() bool {
	_, ok := m.clearedFields[scheme.FieldCriteria]
	return ok
}

// ResetCriteria resets all changes to the "criteria" field.
func (m *SchemeMutation) ResetCriteria() {
	m.criteria = nil
	m.appendcriteria = nil
	delete(m.clearedFields, scheme.FieldCriteria)
}

// SetRequiredDocuments sets the "required_documents" field.
func (m *SchemeMutation) SetRequiredDocuments(s []string) {
	m.required_documents = &s
	m.appendrequired_documents = nil
}

// RequiredDocuments returns the value of the "required_documents" field in the mutation.
func (m *SchemeMutation) RequiredDocuments() (r []string, exists bool) {
	v := m.required_documents
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredDocuments returns the old "required_documents" field's value of the Scheme entity.
// If the Scheme object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemeMutation) OldRequiredDocuments(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredDocuments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredDocuments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredDocuments: %w", err)
	}
	return oldValue.RequiredDocuments, nil
}

// AppendRequiredDocuments adds s to the "required_documents" field.
func (m *SchemeMutation) AppendRequiredDocuments(s []string) {
	m.appendrequired_documents = append(m.appendrequired_documents, s...)
}

// AppendedRequiredDocuments returns the list of values that were appended to the "required_documents" field in this mutation.
func (m *SchemeMutation) AppendedRequiredDocuments() ([]string, bool) {
	if len(m.appendrequired_documents) == 0 {
		return nil, false
	}
	return m.appendrequired_documents, true
}

// ClearRequiredDocuments clears the value of the "required_documents" field.
func (m *SchemeMutation) ClearRequiredDocuments() {
	m.required_documents = nil
	m.appendrequired_documents = nil
	m.clearedFields[scheme.FieldRequiredDocuments] = struct{}{}
}

// RequiredDocumentsCleared returns if the "required_documents" field was cleared in this mutation.
func (m *SchemeMutation) RequiredDocumentsCleared() bool {
	_, ok := m.clearedFields[scheme.FieldRequiredDocuments]
	return ok
}

// ResetRequiredDocuments resets all changes to the "required_documents" field.
func (m *SchemeMutation) ResetRequiredDocuments() {
	m.required_documents = nil
	m.appendrequired_documents = nil
	delete(m.clearedFields, scheme.FieldRequiredDocuments)
}

// SetActive sets the "active" field.
func (m *SchemeMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *SchemeMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Scheme entity.
// If the Scheme object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemeMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *SchemeMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SchemeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SchemeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Scheme entity.
// If the Scheme object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SchemeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SchemeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SchemeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Scheme entity.
// If the Scheme object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SchemeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddApplicationIDs adds the "applications" edge to the Application entity by ids.
func (m *SchemeMutation) AddApplicationIDs(ids ...uuid.UUID) {
	if m.applications == nil {
		m.applications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.applications[ids[i]] = struct{}{}
	}
}

// ClearApplications clears the "applications" edge to the Application entity.
func (m *SchemeMutation) ClearApplications() {
	m.clearedapplications = true
}

// ApplicationsCleared reports if the "applications" edge to the Application entity was cleared.
func (m *SchemeMutation) ApplicationsCleared() bool {
	return m.clearedapplications
}

// RemoveApplicationIDs removes the "applications" edge to the Application entity by IDs.
func (m *SchemeMutation) RemoveApplicationIDs(ids ...uuid.UUID) {
	if m.removedapplications == nil {
		m.removedapplications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.applications, ids[i])
		m.removedapplications[ids[i]] = struct{}{}
	}
}

// RemovedApplications returns the removed IDs of the "applications" edge to the Application entity.
func (m *SchemeMutation) RemovedApplicationsIDs() (ids []uuid.UUID) {
	for id := range m.removedapplications {
		ids = append(ids, id)
	}
	return
}

// ApplicationsIDs returns the "applications" edge IDs in the mutation.
func (m *SchemeMutation) ApplicationsIDs() (ids []uuid.UUID) {
	for id := range m.applications {
		ids = append(ids, id)
	}
	return
}

// ResetApplications resets all changes to the "applications" edge.
func (m *SchemeMutation) ResetApplications() {
	m.applications = nil
	m.clearedapplications = false
	m.removedapplications = nil
}

// Where appends a list predicates to the SchemeMutation builder.
func (m *SchemeMutation) Where(ps ...predicate.Scheme) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SchemeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SchemeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Scheme, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SchemeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SchemeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Scheme).
func (m *SchemeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SchemeMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, scheme.FieldName)
	}
	if m.description != nil {
		fields = append(fields, scheme.FieldDescription)
	}
	if m.benefit_amount != nil {
		fields = append(fields, scheme.FieldBenefitAmount)
	}
	if m.criteria != nil {
		fields = append(fields, scheme.FieldCriteria)
	}
	if m.required_documents != nil {
		fields = append(fields, scheme.FieldRequiredDocuments)
	}
	if m.active != nil {
		fields = append(fields, scheme.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, scheme.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, scheme.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SchemeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scheme.FieldName:
		return m.Name()
	case scheme.FieldDescription:
		return m.Description()
	case scheme.FieldBenefitAmount:
		return m.BenefitAmount()
	case scheme.FieldCriteria:
		return m.Criteria()
	case scheme.FieldRequiredDocuments:
		return m.RequiredDocuments()
	case scheme.FieldActive:
		return m.Active()
	case scheme.FieldCreatedAt:
		return m.CreatedAt()
	case scheme.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SchemeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scheme.FieldName:
		return m.OldName(ctx)
	case scheme.FieldDescription:
		return m.OldDescription(ctx)
	case scheme.FieldBenefitAmount:
		return m.OldBenefitAmount(ctx)
	case scheme.FieldCriteria:
		return m.OldCriteria(ctx)
	case scheme.FieldRequiredDocuments:
		return m.OldRequiredDocuments(ctx)
	case scheme.FieldActive:
		return m.OldActive(ctx)
	case scheme.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case scheme.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Scheme field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchemeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scheme.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case scheme.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case scheme.FieldBenefitAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBenefitAmount(v)
		return nil
	case scheme.FieldCriteria:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriteria(v)
		return nil
	case scheme.FieldRequiredDocuments:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredDocuments(v)
		return nil
	case scheme.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case scheme.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case scheme.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Scheme field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SchemeMutation) AddedFields() []string {
	var fields []string
	if m.addbenefit_amount != nil {
		fields = append(fields, scheme.FieldBenefitAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SchemeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scheme.FieldBenefitAmount:
		return m.AddedBenefitAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchemeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scheme.FieldBenefitAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBenefitAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Scheme numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SchemeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scheme.FieldDescription) {
		fields = append(fields, scheme.FieldDescription)
	}
	if m.FieldCleared(scheme.FieldCriteria) {
		fields = append(fields, scheme.FieldCriteria)
	}
	if m.FieldCleared(scheme.FieldRequiredDocuments) {
		fields = append(fields, scheme.FieldRequiredDocuments)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SchemeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SchemeMutation) ClearField(name string) error {
	switch name {
	case scheme.FieldDescription:
		m.ClearDescription()
		return nil
	case scheme.FieldCriteria:
		m.ClearCriteria()
		return nil
	case scheme.FieldRequiredDocuments:
		m.ClearRequiredDocuments()
		return nil
	}
	return fmt.Errorf("unknown Scheme nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SchemeMutation) ResetField(name string) error {
	switch name {
	case scheme.FieldName:
		m.ResetName()
		return nil
	case scheme.FieldDescription:
		m.ResetDescription()
		return nil
	case scheme.FieldBenefitAmount:
		m.ResetBenefitAmount()
		return nil
	case scheme.FieldCriteria:
		m.ResetCriteria()
		return nil
	case scheme.FieldRequiredDocuments:
		m.ResetRequiredDocuments()
		return nil
	case scheme.FieldActive:
		m.ResetActive()
		return nil
	case scheme.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case scheme.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Scheme field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SchemeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.applications != nil {
		edges = append(edges, scheme.EdgeApplications)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SchemeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scheme.EdgeApplications:
		ids := make([]ent.Value, 0, len(m.applications))
		for id := range m.applications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SchemeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedapplications != nil {
		edges = append(edges, scheme.EdgeApplications)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SchemeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case scheme.EdgeApplications:
		ids := make([]ent.Value, 0, len(m.removedapplications))
		for id := range m.removedapplications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SchemeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapplications {
		edges = append(edges, scheme.EdgeApplications)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SchemeMutation) EdgeCleared(name string) bool {
	switch name {
	case scheme.EdgeApplications:
		return m.clearedapplications
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SchemeMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Scheme unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SchemeMutation) ResetEdge(name string) error {
	switch name {
	case scheme.EdgeApplications:
		m.ResetApplications()
		return nil
	}
	return fmt.Errorf("unknown Scheme edge %s", name)
}
