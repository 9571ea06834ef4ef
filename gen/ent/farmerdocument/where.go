// Code generated by ent, DO NOT EDIT.

package farmerdocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/chandrashekharddev/agroscheme/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldLTE(FieldID, id))
}

// FarmerID applies equality check predicate on the "farmer_id" field. It's identical to FarmerIDEQ.
func FarmerID(v uuid.UUID) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldEQ(FieldFarmerID, v))
}

// DocType applies equality check predicate on the "doc_type" field. It's identical to DocTypeEQ.
func DocType(v string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldEQ(FieldDocType, v))
}

// ExtractionConfidence applies equality check predicate on the "extraction_confidence" field. It's identical to ExtractionConfidenceEQ.
func ExtractionConfidence(v float32) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldEQ(FieldExtractionConfidence, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldEQ(FieldRawText, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldEQ(FieldUploadedAt, v))
}

// FarmerIDEQ applies the EQ predicate on the "farmer_id" field.
func FarmerIDEQ(v uuid.UUID) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldEQ(FieldFarmerID, v))
}

// FarmerIDNEQ applies the NEQ predicate on the "farmer_id" field.
func FarmerIDNEQ(v uuid.UUID) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldNEQ(FieldFarmerID, v))
}

// FarmerIDIn applies the In predicate on the "farmer_id" field.
func FarmerIDIn(vs ...uuid.UUID) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldIn(FieldFarmerID, vs...))
}

// FarmerIDNotIn applies the NotIn predicate on the "farmer_id" field.
func FarmerIDNotIn(vs ...uuid.UUID) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldNotIn(FieldFarmerID, vs...))
}

// DocTypeEQ applies the EQ predicate on the "doc_type" field.
func DocTypeEQ(v string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldEQ(FieldDocType, v))
}

// DocTypeNEQ applies the NEQ predicate on the "doc_type" field.
func DocTypeNEQ(v string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldNEQ(FieldDocType, v))
}

// DocTypeIn applies the In predicate on the "doc_type" field.
func DocTypeIn(vs ...string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldIn(FieldDocType, vs...))
}

// DocTypeNotIn applies the NotIn predicate on the "doc_type" field.
func DocTypeNotIn(vs ...string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldNotIn(FieldDocType, vs...))
}

// DocTypeGT applies the GT predicate on the "doc_type" field.
func DocTypeGT(v string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldGT(FieldDocType, v))
}

// DocTypeGTE applies the GTE predicate on the "doc_type" field.
func DocTypeGTE(v string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldGTE(FieldDocType, v))
}

// DocTypeLT applies the LT predicate on the "doc_type" field.
func DocTypeLT(v string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldLT(FieldDocType, v))
}

// DocTypeLTE applies the LTE predicate on the "doc_type" field.
func DocTypeLTE(v string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldLTE(FieldDocType, v))
}

// DocTypeContains applies the Contains predicate on the "doc_type" field.
func DocTypeContains(v string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldContains(FieldDocType, v))
}

// DocTypeHasPrefix applies the HasPrefix predicate on the "doc_type" field.
func DocTypeHasPrefix(v string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldHasPrefix(FieldDocType, v))
}

// DocTypeHasSuffix applies the HasSuffix predicate on the "doc_type" field.
func DocTypeHasSuffix(v string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldHasSuffix(FieldDocType, v))
}

// DocTypeEqualFold applies the EqualFold predicate on the "doc_type" field.
func DocTypeEqualFold(v string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldEqualFold(FieldDocType, v))
}

// DocTypeContainsFold applies the ContainsFold predicate on the "doc_type" field.
func DocTypeContainsFold(v string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldContainsFold(FieldDocType, v))
}

// FieldsIsNil applies the IsNil predicate on the "fields" field.
func FieldsIsNil() predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldIsNull(FieldFields))
}

// FieldsNotNil applies the NotNil predicate on the "fields" field.
func FieldsNotNil() predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldNotNull(FieldFields))
}

// ExtractionConfidenceEQ applies the EQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceEQ(v float32) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceNEQ applies the NEQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceNEQ(v float32) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldNEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceIn applies the In predicate on the "extraction_confidence" field.
func ExtractionConfidenceIn(vs ...float32) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceNotIn applies the NotIn predicate on the "extraction_confidence" field.
func ExtractionConfidenceNotIn(vs ...float32) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldNotIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceGT applies the GT predicate on the "extraction_confidence" field.
func ExtractionConfidenceGT(v float32) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldGT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceGTE applies the GTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceGTE(v float32) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldGTE(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLT applies the LT predicate on the "extraction_confidence" field.
func ExtractionConfidenceLT(v float32) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldLT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLTE applies the LTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceLTE(v float32) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldLTE(FieldExtractionConfidence, v))
}

// ExtractionConfidenceIsNil applies the IsNil predicate on the "extraction_confidence" field.
func ExtractionConfidenceIsNil() predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldIsNull(FieldExtractionConfidence))
}

// ExtractionConfidenceNotNil applies the NotNil predicate on the "extraction_confidence" field.
func ExtractionConfidenceNotNil() predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldNotNull(FieldExtractionConfidence))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextIsNil applies the IsNil predicate on the "raw_text" field.
func RawTextIsNil() predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldIsNull(FieldRawText))
}

// RawTextNotNil applies the NotNil predicate on the "raw_text" field.
func RawTextNotNil() predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldNotNull(FieldRawText))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldContainsFold(FieldRawText, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.FieldLTE(FieldUploadedAt, v))
}

// HasFarmer applies the HasEdge predicate on the "farmer" edge.
func HasFarmer() predicate.FarmerDocument {
	return predicate.FarmerDocument(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FarmerTable, FarmerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFarmerWith applies the HasEdge predicate on the "farmer" edge with a given conditions (other predicates).
func HasFarmerWith(preds ...predicate.Farmer) predicate.FarmerDocument {
	return predicate.FarmerDocument(func(s *sql.Selector) {
		step := newFarmerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FarmerDocument) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FarmerDocument) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FarmerDocument) predicate.FarmerDocument {
	return predicate.FarmerDocument(sql.NotPredicates(p))
}
