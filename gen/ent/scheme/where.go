// Code generated by ent, DO NOT EDIT.

package scheme

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/chandrashekharddev/agroscheme/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Scheme {
	return predicate.Scheme(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Scheme {
	return predicate.Scheme(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Scheme {
	return predicate.Scheme(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Scheme {
	return predicate.Scheme(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Scheme {
	return predicate.Scheme(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Scheme {
	return predicate.Scheme(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Scheme {
	return predicate.Scheme(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Scheme {
	return predicate.Scheme(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Scheme {
	return predicate.Scheme(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Scheme {
	return predicate.Scheme(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Scheme {
	return predicate.Scheme(sql.FieldEQ(FieldDescription, v))
}

// BenefitAmount applies equality check predicate on the "benefit_amount" field. It's identical to BenefitAmountEQ.
func BenefitAmount(v float64) predicate.Scheme {
	return predicate.Scheme(sql.FieldEQ(FieldBenefitAmount, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Scheme {
	return predicate.Scheme(sql.FieldEQ(FieldActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Scheme {
	return predicate.Scheme(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Scheme {
	return predicate.Scheme(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Scheme {
	return predicate.Scheme(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Scheme {
	return predicate.Scheme(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Scheme {
	return predicate.Scheme(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Scheme {
	return predicate.Scheme(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Scheme {
	return predicate.Scheme(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Scheme {
	return predicate.Scheme(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Scheme {
	return predicate.Scheme(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Scheme {
	return predicate.Scheme(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Scheme {
	return predicate.Scheme(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Scheme {
	return predicate.Scheme(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Scheme {
	return predicate.Scheme(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Scheme {
	return predicate.Scheme(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Scheme {
	return predicate.Scheme(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Scheme {
	return predicate.Scheme(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Scheme {
	return predicate.Scheme(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Scheme {
	return predicate.Scheme(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Scheme {
	return predicate.Scheme(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Scheme {
	return predicate.Scheme(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Scheme {
	return predicate.Scheme(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Scheme {
	return predicate.Scheme(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Scheme {
	return predicate.Scheme(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Scheme {
	return predicate.Scheme(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Scheme {
	return predicate.Scheme(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Scheme {
	return predicate.Scheme(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Scheme {
	return predicate.Scheme(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Scheme {
	return predicate.Scheme(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Scheme {
	return predicate.Scheme(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Scheme {
	return predicate.Scheme(sql.FieldContainsFold(FieldDescription, v))
}

// BenefitAmountEQ applies the EQ predicate on the "benefit_amount" field.
func BenefitAmountEQ(v float64) predicate.Scheme {
	return predicate.Scheme(sql.FieldEQ(FieldBenefitAmount, v))
}

// BenefitAmountNEQ applies the NEQ predicate on the "benefit_amount" field.
func BenefitAmountNEQ(v float64) predicate.Scheme {
	return predicate.Scheme(sql.FieldNEQ(FieldBenefitAmount, v))
}

// BenefitAmountIn applies the In predicate on the "benefit_amount" field.
func BenefitAmountIn(vs ...float64) predicate.Scheme {
	return predicate.Scheme(sql.FieldIn(FieldBenefitAmount, vs...))
}

// BenefitAmountNotIn applies the NotIn predicate on the "benefit_amount" field.
func BenefitAmountNotIn(vs ...float64) predicate.Scheme {
	return predicate.Scheme(sql.FieldNotIn(FieldBenefitAmount, vs...))
}

// BenefitAmountGT applies the GT predicate on the "benefit_amount" field.
func BenefitAmountGT(v float64) predicate.Scheme {
	return predicate.Scheme(sql.FieldGT(FieldBenefitAmount, v))
}

// BenefitAmountGTE applies the GTE predicate on the "benefit_amount" field.
func BenefitAmountGTE(v float64) predicate.Scheme {
	return predicate.Scheme(sql.FieldGTE(FieldBenefitAmount, v))
}

// BenefitAmountLT applies the LT predicate on the "benefit_amount" field.
func BenefitAmountLT(v float64) predicate.Scheme {
	return predicate.Scheme(sql.FieldLT(FieldBenefitAmount, v))
}

// BenefitAmountLTE applies the LTE predicate on the "benefit_amount" field.
func BenefitAmountLTE(v float64) predicate.Scheme {
	return predicate.Scheme(sql.FieldLTE(FieldBenefitAmount, v))
}

// CriteriaIsNil applies the IsNil predicate on the "criteria" field.
func CriteriaIsNil() predicate.Scheme {
	return predicate.Scheme(sql.FieldIsNull(FieldCriteria))
}

// CriteriaNotNil applies the NotNil predicate on the "criteria" field.
func CriteriaNotNil() predicate.Scheme {
	return predicate.Scheme(sql.FieldNotNull(FieldCriteria))
}

// RequiredDocumentsIsNil applies the IsNil predicate on the "required_documents" field.
func RequiredDocumentsIsNil() predicate.Scheme {
	return predicate.Scheme(sql.FieldIsNull(FieldRequiredDocuments))
}

// RequiredDocumentsNotNil applies the NotNil predicate on the "required_documents" field.
func RequiredDocumentsNotNil() predicate.Scheme {
	return predicate.Scheme(sql.FieldNotNull(FieldRequiredDocuments))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Scheme {
	return predicate.Scheme(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Scheme {
	return predicate.Scheme(sql.FieldNEQ(FieldActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Scheme {
	return predicate.Scheme(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Scheme {
	return predicate.Scheme(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Scheme {
	return predicate.Scheme(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Scheme {
	return predicate.Scheme(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Scheme {
	return predicate.Scheme(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Scheme {
	return predicate.Scheme(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Scheme {
	return predicate.Scheme(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Scheme {
	return predicate.Scheme(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Scheme {
	return predicate.Scheme(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Scheme {
	return predicate.Scheme(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Scheme {
	return predicate.Scheme(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Scheme {
	return predicate.Scheme(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Scheme {
	return predicate.Scheme(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Scheme {
	return predicate.Scheme(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Scheme {
	return predicate.Scheme(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Scheme {
	return predicate.Scheme(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasApplications applies the HasEdge predicate on the "applications" edge.
func HasApplications() predicate.Scheme {
	return predicate.Scheme(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ApplicationsTable, ApplicationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApplicationsWith applies the HasEdge predicate on the "applications" edge with a given conditions (other predicates).
func HasApplicationsWith(preds ...predicate.Application) predicate.Scheme {
	return predicate.Scheme(func(s *sql.Selector) {
		step := newApplicationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Scheme) predicate.Scheme {
	return predicate.Scheme(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Scheme) predicate.Scheme {
	return predicate.Scheme(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Scheme) predicate.Scheme {
	return predicate.Scheme(sql.NotPredicates(p))
}
