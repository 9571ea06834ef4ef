// Code generated by ent, DO NOT EDIT.

package application

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/chandrashekharddev/agroscheme/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldID, id))
}

// ApplicationID applies equality check predicate on the "application_id" field. It's identical to ApplicationIDEQ.
func ApplicationID(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldApplicationID, v))
}

// FarmerID applies equality check predicate on the "farmer_id" field. It's identical to FarmerIDEQ.
func FarmerID(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldFarmerID, v))
}

// SchemeID applies equality check predicate on the "scheme_id" field. It's identical to SchemeIDEQ.
func SchemeID(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldSchemeID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldStatus, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldSource, v))
}

// AppliedAmount applies equality check predicate on the "applied_amount" field. It's identical to AppliedAmountEQ.
func AppliedAmount(v float64) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldAppliedAmount, v))
}

// ApprovedAmount applies equality check predicate on the "approved_amount" field. It's identical to ApprovedAmountEQ.
func ApprovedAmount(v float64) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldApprovedAmount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUpdatedAt, v))
}

// ApplicationIDEQ applies the EQ predicate on the "application_id" field.
func ApplicationIDEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldApplicationID, v))
}

// ApplicationIDNEQ applies the NEQ predicate on the "application_id" field.
func ApplicationIDNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldApplicationID, v))
}

// ApplicationIDIn applies the In predicate on the "application_id" field.
func ApplicationIDIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldApplicationID, vs...))
}

// ApplicationIDNotIn applies the NotIn predicate on the "application_id" field.
func ApplicationIDNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldApplicationID, vs...))
}

// ApplicationIDGT applies the GT predicate on the "application_id" field.
func ApplicationIDGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldApplicationID, v))
}

// ApplicationIDGTE applies the GTE predicate on the "application_id" field.
func ApplicationIDGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldApplicationID, v))
}

// ApplicationIDLT applies the LT predicate on the "application_id" field.
func ApplicationIDLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldApplicationID, v))
}

// ApplicationIDLTE applies the LTE predicate on the "application_id" field.
func ApplicationIDLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldApplicationID, v))
}

// ApplicationIDContains applies the Contains predicate on the "application_id" field.
func ApplicationIDContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldApplicationID, v))
}

// ApplicationIDHasPrefix applies the HasPrefix predicate on the "application_id" field.
func ApplicationIDHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldApplicationID, v))
}

// ApplicationIDHasSuffix applies the HasSuffix predicate on the "application_id" field.
func ApplicationIDHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldApplicationID, v))
}

// ApplicationIDEqualFold applies the EqualFold predicate on the "application_id" field.
func ApplicationIDEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldApplicationID, v))
}

// ApplicationIDContainsFold applies the ContainsFold predicate on the "application_id" field.
func ApplicationIDContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldApplicationID, v))
}

// FarmerIDEQ applies the EQ predicate on the "farmer_id" field.
func FarmerIDEQ(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldFarmerID, v))
}

// FarmerIDNEQ applies the NEQ predicate on the "farmer_id" field.
func FarmerIDNEQ(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldFarmerID, v))
}

// FarmerIDIn applies the In predicate on the "farmer_id" field.
func FarmerIDIn(vs ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldFarmerID, vs...))
}

// FarmerIDNotIn applies the NotIn predicate on the "farmer_id" field.
func FarmerIDNotIn(vs ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldFarmerID, vs...))
}

// SchemeIDEQ applies the EQ predicate on the "scheme_id" field.
func SchemeIDEQ(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldSchemeID, v))
}

// SchemeIDNEQ applies the NEQ predicate on the "scheme_id" field.
func SchemeIDNEQ(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldSchemeID, v))
}

// SchemeIDIn applies the In predicate on the "scheme_id" field.
func SchemeIDIn(vs ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldSchemeID, vs...))
}

// SchemeIDNotIn applies the NotIn predicate on the "scheme_id" field.
func SchemeIDNotIn(vs ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldSchemeID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldStatus, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldSource, v))
}

// AppliedAmountEQ applies the EQ predicate on the "applied_amount" field.
func AppliedAmountEQ(v float64) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldAppliedAmount, v))
}

// AppliedAmountNEQ applies the NEQ predicate on the "applied_amount" field.
func AppliedAmountNEQ(v float64) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldAppliedAmount, v))
}

// AppliedAmountIn applies the In predicate on the "applied_amount" field.
func AppliedAmountIn(vs ...float64) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldAppliedAmount, vs...))
}

// AppliedAmountNotIn applies the NotIn predicate on the "applied_amount" field.
func AppliedAmountNotIn(vs ...float64) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldAppliedAmount, vs...))
}

// AppliedAmountGT applies the GT predicate on the "applied_amount" field.
func AppliedAmountGT(v float64) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldAppliedAmount, v))
}

// AppliedAmountGTE applies the GTE predicate on the "applied_amount" field.
func AppliedAmountGTE(v float64) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldAppliedAmount, v))
}

// AppliedAmountLT applies the LT predicate on the "applied_amount" field.
func AppliedAmountLT(v float64) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldAppliedAmount, v))
}

// AppliedAmountLTE applies the LTE predicate on the "applied_amount" field.
func AppliedAmountLTE(v float64) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldAppliedAmount, v))
}

// AppliedAmountIsNil applies the IsNil predicate on the "applied_amount" field.
func AppliedAmountIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldAppliedAmount))
}

// AppliedAmountNotNil applies the NotNil predicate on the "applied_amount" field.
func AppliedAmountNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldAppliedAmount))
}

// ApprovedAmountEQ applies the EQ predicate on the "approved_amount" field.
func ApprovedAmountEQ(v float64) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldApprovedAmount, v))
}

// ApprovedAmountNEQ applies the NEQ predicate on the "approved_amount" field.
func ApprovedAmountNEQ(v float64) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldApprovedAmount, v))
}

// ApprovedAmountIn applies the In predicate on the "approved_amount" field.
func ApprovedAmountIn(vs ...float64) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldApprovedAmount, vs...))
}

// ApprovedAmountNotIn applies the NotIn predicate on the "approved_amount" field.
func ApprovedAmountNotIn(vs ...float64) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldApprovedAmount, vs...))
}

// ApprovedAmountGT applies the GT predicate on the "approved_amount" field.
func ApprovedAmountGT(v float64) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldApprovedAmount, v))
}

// ApprovedAmountGTE applies the GTE predicate on the "approved_amount" field.
func ApprovedAmountGTE(v float64) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldApprovedAmount, v))
}

// ApprovedAmountLT applies the LT predicate on the "approved_amount" field.
func ApprovedAmountLT(v float64) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldApprovedAmount, v))
}

// ApprovedAmountLTE applies the LTE predicate on the "approved_amount" field.
func ApprovedAmountLTE(v float64) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldApprovedAmount, v))
}

// ApprovedAmountIsNil applies the IsNil predicate on the "approved_amount" field.
func ApprovedAmountIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldApprovedAmount))
}

// ApprovedAmountNotNil applies the NotNil predicate on the "approved_amount" field.
func ApprovedAmountNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldApprovedAmount))
}

// EligibilityIsNil applies the IsNil predicate on the "eligibility" field.
func EligibilityIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldEligibility))
}

// EligibilityNotNil applies the NotNil predicate on the "eligibility" field.
func EligibilityNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldEligibility))
}

// StatusHistoryIsNil applies the IsNil predicate on the "status_history" field.
func StatusHistoryIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldStatusHistory))
}

// StatusHistoryNotNil applies the NotNil predicate on the "status_history" field.
func StatusHistoryNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldStatusHistory))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasFarmer applies the HasEdge predicate on the "farmer" edge.
func HasFarmer() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FarmerTable, FarmerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFarmerWith applies the HasEdge predicate on the "farmer" edge with a given conditions (other predicates).
func HasFarmerWith(preds ...predicate.Farmer) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newFarmerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasScheme applies the HasEdge predicate on the "scheme" edge.
func HasScheme() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SchemeTable, SchemeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSchemeWith applies the HasEdge predicate on the "scheme" edge with a given conditions (other predicates).
func HasSchemeWith(preds ...predicate.Scheme) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newSchemeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Application) predicate.Application {
	return predicate.Application(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Application) predicate.Application {
	return predicate.Application(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Application) predicate.Application {
	return predicate.Application(sql.NotPredicates(p))
}
