// Code generated by ent, DO NOT EDIT.

package farmer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/chandrashekharddev/agroscheme/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Farmer {
	return predicate.Farmer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Farmer {
	return predicate.Farmer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Farmer {
	return predicate.Farmer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Farmer {
	return predicate.Farmer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Farmer {
	return predicate.Farmer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Farmer {
	return predicate.Farmer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Farmer {
	return predicate.Farmer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Farmer {
	return predicate.Farmer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Farmer {
	return predicate.Farmer(sql.FieldLTE(FieldID, id))
}

// FarmerCode applies equality check predicate on the "farmer_code" field. It's identical to FarmerCodeEQ.
func FarmerCode(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldEQ(FieldFarmerCode, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldEQ(FieldName, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldEQ(FieldPhone, v))
}

// Village applies equality check predicate on the "village" field. It's identical to VillageEQ.
func Village(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldEQ(FieldVillage, v))
}

// District applies equality check predicate on the "district" field. It's identical to DistrictEQ.
func District(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldEQ(FieldDistrict, v))
}

// AutoApply applies equality check predicate on the "auto_apply" field. It's identical to AutoApplyEQ.
func AutoApply(v bool) predicate.Farmer {
	return predicate.Farmer(sql.FieldEQ(FieldAutoApply, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Farmer {
	return predicate.Farmer(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Farmer {
	return predicate.Farmer(sql.FieldEQ(FieldUpdatedAt, v))
}

// FarmerCodeEQ applies the EQ predicate on the "farmer_code" field.
func FarmerCodeEQ(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldEQ(FieldFarmerCode, v))
}

// FarmerCodeNEQ applies the NEQ predicate on the "farmer_code" field.
func FarmerCodeNEQ(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldNEQ(FieldFarmerCode, v))
}

// FarmerCodeIn applies the In predicate on the "farmer_code" field.
func FarmerCodeIn(vs ...string) predicate.Farmer {
	return predicate.Farmer(sql.FieldIn(FieldFarmerCode, vs...))
}

// FarmerCodeNotIn applies the NotIn predicate on the "farmer_code" field.
func FarmerCodeNotIn(vs ...string) predicate.Farmer {
	return predicate.Farmer(sql.FieldNotIn(FieldFarmerCode, vs...))
}

// FarmerCodeGT applies the GT predicate on the "farmer_code" field.
func FarmerCodeGT(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldGT(FieldFarmerCode, v))
}

// FarmerCodeGTE applies the GTE predicate on the "farmer_code" field.
func FarmerCodeGTE(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldGTE(FieldFarmerCode, v))
}

// FarmerCodeLT applies the LT predicate on the "farmer_code" field.
func FarmerCodeLT(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldLT(FieldFarmerCode, v))
}

// FarmerCodeLTE applies the LTE predicate on the "farmer_code" field.
func FarmerCodeLTE(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldLTE(FieldFarmerCode, v))
}

// FarmerCodeContains applies the Contains predicate on the "farmer_code" field.
func FarmerCodeContains(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldContains(FieldFarmerCode, v))
}

// FarmerCodeHasPrefix applies the HasPrefix predicate on the "farmer_code" field.
func FarmerCodeHasPrefix(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldHasPrefix(FieldFarmerCode, v))
}

// FarmerCodeHasSuffix applies the HasSuffix predicate on the "farmer_code" field.
func FarmerCodeHasSuffix(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldHasSuffix(FieldFarmerCode, v))
}

// FarmerCodeEqualFold applies the EqualFold predicate on the "farmer_code" field.
func FarmerCodeEqualFold(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldEqualFold(FieldFarmerCode, v))
}

// FarmerCodeContainsFold applies the ContainsFold predicate on the "farmer_code" field.
func FarmerCodeContainsFold(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldContainsFold(FieldFarmerCode, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Farmer {
	return predicate.Farmer(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Farmer {
	return predicate.Farmer(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldContainsFold(FieldName, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Farmer {
	return predicate.Farmer(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Farmer {
	return predicate.Farmer(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Farmer {
	return predicate.Farmer(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Farmer {
	return predicate.Farmer(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldContainsFold(FieldPhone, v))
}

// VillageEQ applies the EQ predicate on the "village" field.
func VillageEQ(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldEQ(FieldVillage, v))
}

// VillageNEQ applies the NEQ predicate on the "village" field.
func VillageNEQ(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldNEQ(FieldVillage, v))
}

// VillageIn applies the In predicate on the "village" field.
func VillageIn(vs ...string) predicate.Farmer {
	return predicate.Farmer(sql.FieldIn(FieldVillage, vs...))
}

// VillageNotIn applies the NotIn predicate on the "village" field.
func VillageNotIn(vs ...string) predicate.Farmer {
	return predicate.Farmer(sql.FieldNotIn(FieldVillage, vs...))
}

// VillageGT applies the GT predicate on the "village" field.
func VillageGT(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldGT(FieldVillage, v))
}

// VillageGTE applies the GTE predicate on the "village" field.
func VillageGTE(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldGTE(FieldVillage, v))
}

// VillageLT applies the LT predicate on the "village" field.
func VillageLT(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldLT(FieldVillage, v))
}

// VillageLTE applies the LTE predicate on the "village" field.
func VillageLTE(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldLTE(FieldVillage, v))
}

// VillageContains applies the Contains predicate on the "village" field.
func VillageContains(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldContains(FieldVillage, v))
}

// VillageHasPrefix applies the HasPrefix predicate on the "village" field.
func VillageHasPrefix(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldHasPrefix(FieldVillage, v))
}

// VillageHasSuffix applies the HasSuffix predicate on the "village" field.
func VillageHasSuffix(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldHasSuffix(FieldVillage, v))
}

// VillageIsNil applies the IsNil predicate on the "village" field.
func VillageIsNil() predicate.Farmer {
	return predicate.Farmer(sql.FieldIsNull(FieldVillage))
}

// VillageNotNil applies the NotNil predicate on the "village" field.
func VillageNotNil() predicate.Farmer {
	return predicate.Farmer(sql.FieldNotNull(FieldVillage))
}

// VillageEqualFold applies the EqualFold predicate on the "village" field.
func VillageEqualFold(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldEqualFold(FieldVillage, v))
}

// VillageContainsFold applies the ContainsFold predicate on the "village" field.
func VillageContainsFold(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldContainsFold(FieldVillage, v))
}

// DistrictEQ applies the EQ predicate on the "district" field.
func DistrictEQ(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldEQ(FieldDistrict, v))
}

// DistrictNEQ applies the NEQ predicate on the "district" field.
func DistrictNEQ(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldNEQ(FieldDistrict, v))
}

// DistrictIn applies the In predicate on the "district" field.
func DistrictIn(vs ...string) predicate.Farmer {
	return predicate.Farmer(sql.FieldIn(FieldDistrict, vs...))
}

// DistrictNotIn applies the NotIn predicate on the "district" field.
func DistrictNotIn(vs ...string) predicate.Farmer {
	return predicate.Farmer(sql.FieldNotIn(FieldDistrict, vs...))
}

// DistrictGT applies the GT predicate on the "district" field.
func DistrictGT(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldGT(FieldDistrict, v))
}

// DistrictGTE applies the GTE predicate on the "district" field.
func DistrictGTE(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldGTE(FieldDistrict, v))
}

// DistrictLT applies the LT predicate on the "district" field.
func DistrictLT(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldLT(FieldDistrict, v))
}

// DistrictLTE applies the LTE predicate on the "district" field.
func DistrictLTE(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldLTE(FieldDistrict, v))
}

// DistrictContains applies the Contains predicate on the "district" field.
func DistrictContains(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldContains(FieldDistrict, v))
}

// DistrictHasPrefix applies the HasPrefix predicate on the "district" field.
func DistrictHasPrefix(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldHasPrefix(FieldDistrict, v))
}

// DistrictHasSuffix applies the HasSuffix predicate on the "district" field.
func DistrictHasSuffix(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldHasSuffix(FieldDistrict, v))
}

// DistrictIsNil applies the IsNil predicate on the "district" field.
func DistrictIsNil() predicate.Farmer {
	return predicate.Farmer(sql.FieldIsNull(FieldDistrict))
}

// DistrictNotNil applies the NotNil predicate on the "district" field.
func DistrictNotNil() predicate.Farmer {
	return predicate.Farmer(sql.FieldNotNull(FieldDistrict))
}

// DistrictEqualFold applies the EqualFold predicate on the "district" field.
func DistrictEqualFold(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldEqualFold(FieldDistrict, v))
}

// DistrictContainsFold applies the ContainsFold predicate on the "district" field.
func DistrictContainsFold(v string) predicate.Farmer {
	return predicate.Farmer(sql.FieldContainsFold(FieldDistrict, v))
}

// AutoApplyEQ applies the EQ predicate on the "auto_apply" field.
func AutoApplyEQ(v bool) predicate.Farmer {
	return predicate.Farmer(sql.FieldEQ(FieldAutoApply, v))
}

// AutoApplyNEQ applies the NEQ predicate on the "auto_apply" field.
func AutoApplyNEQ(v bool) predicate.Farmer {
	return predicate.Farmer(sql.FieldNEQ(FieldAutoApply, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Farmer {
	return predicate.Farmer(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Farmer {
	return predicate.Farmer(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Farmer {
	return predicate.Farmer(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Farmer {
	return predicate.Farmer(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Farmer {
	return predicate.Farmer(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Farmer {
	return predicate.Farmer(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Farmer {
	return predicate.Farmer(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Farmer {
	return predicate.Farmer(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Farmer {
	return predicate.Farmer(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Farmer {
	return predicate.Farmer(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Farmer {
	return predicate.Farmer(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Farmer {
	return predicate.Farmer(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Farmer {
	return predicate.Farmer(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Farmer {
	return predicate.Farmer(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Farmer {
	return predicate.Farmer(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Farmer {
	return predicate.Farmer(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.Farmer {
	return predicate.Farmer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.FarmerDocument) predicate.Farmer {
	return predicate.Farmer(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasApplications applies the HasEdge predicate on the "applications" edge.
func HasApplications() predicate.Farmer {
	return predicate.Farmer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ApplicationsTable, ApplicationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApplicationsWith applies the HasEdge predicate on the "applications" edge with a given conditions (other predicates).
func HasApplicationsWith(preds ...predicate.Application) predicate.Farmer {
	return predicate.Farmer(func(s *sql.Selector) {
		step := newApplicationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasNotifications applies the HasEdge predicate on the "notifications" edge.
func HasNotifications() predicate.Farmer {
	return predicate.Farmer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, NotificationsTable, NotificationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNotificationsWith applies the HasEdge predicate on the "notifications" edge with a given conditions (other predicates).
func HasNotificationsWith(preds ...predicate.Notification) predicate.Farmer {
	return predicate.Farmer(func(s *sql.Selector) {
		step := newNotificationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Farmer) predicate.Farmer {
	return predicate.Farmer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Farmer) predicate.Farmer {
	return predicate.Farmer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Farmer) predicate.Farmer {
	return predicate.Farmer(sql.NotPredicates(p))
}
