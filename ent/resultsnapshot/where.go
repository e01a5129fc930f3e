// Code generated by ent, DO NOT EDIT.

package resultsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mirit/psyche/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldLTE(FieldID, id))
}

// ResultID applies equality check predicate on the "result_id" field. It's identical to ResultIDEQ.
func ResultID(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldEQ(FieldResultID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldEQ(FieldSessionID, v))
}

// AssessmentID applies equality check predicate on the "assessment_id" field. It's identical to AssessmentIDEQ.
func AssessmentID(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldEQ(FieldAssessmentID, v))
}

// TypeCode applies equality check predicate on the "type_code" field. It's identical to TypeCodeEQ.
func TypeCode(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldEQ(FieldTypeCode, v))
}

// Flagged applies equality check predicate on the "flagged" field. It's identical to FlaggedEQ.
func Flagged(v bool) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldEQ(FieldFlagged, v))
}

// TakenAt applies equality check predicate on the "taken_at" field. It's identical to TakenAtEQ.
func TakenAt(v time.Time) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldEQ(FieldTakenAt, v))
}

// ResultIDEQ applies the EQ predicate on the "result_id" field.
func ResultIDEQ(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldEQ(FieldResultID, v))
}

// ResultIDNEQ applies the NEQ predicate on the "result_id" field.
func ResultIDNEQ(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldNEQ(FieldResultID, v))
}

// ResultIDIn applies the In predicate on the "result_id" field.
func ResultIDIn(vs ...string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldIn(FieldResultID, vs...))
}

// ResultIDNotIn applies the NotIn predicate on the "result_id" field.
func ResultIDNotIn(vs ...string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldNotIn(FieldResultID, vs...))
}

// ResultIDGT applies the GT predicate on the "result_id" field.
func ResultIDGT(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldGT(FieldResultID, v))
}

// ResultIDGTE applies the GTE predicate on the "result_id" field.
func ResultIDGTE(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldGTE(FieldResultID, v))
}

// ResultIDLT applies the LT predicate on the "result_id" field.
func ResultIDLT(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldLT(FieldResultID, v))
}

// ResultIDLTE applies the LTE predicate on the "result_id" field.
func ResultIDLTE(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldLTE(FieldResultID, v))
}

// ResultIDContains applies the Contains predicate on the "result_id" field.
func ResultIDContains(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldContains(FieldResultID, v))
}

// ResultIDHasPrefix applies the HasPrefix predicate on the "result_id" field.
func ResultIDHasPrefix(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldHasPrefix(FieldResultID, v))
}

// ResultIDHasSuffix applies the HasSuffix predicate on the "result_id" field.
func ResultIDHasSuffix(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldHasSuffix(FieldResultID, v))
}

// ResultIDEqualFold applies the EqualFold predicate on the "result_id" field.
func ResultIDEqualFold(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldEqualFold(FieldResultID, v))
}

// ResultIDContainsFold applies the ContainsFold predicate on the "result_id" field.
func ResultIDContainsFold(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldContainsFold(FieldResultID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldContainsFold(FieldSessionID, v))
}

// AssessmentIDEQ applies the EQ predicate on the "assessment_id" field.
func AssessmentIDEQ(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldEQ(FieldAssessmentID, v))
}

// AssessmentIDNEQ applies the NEQ predicate on the "assessment_id" field.
func AssessmentIDNEQ(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldNEQ(FieldAssessmentID, v))
}

// AssessmentIDIn applies the In predicate on the "assessment_id" field.
func AssessmentIDIn(vs ...string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldIn(FieldAssessmentID, vs...))
}

// AssessmentIDNotIn applies the NotIn predicate on the "assessment_id" field.
func AssessmentIDNotIn(vs ...string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldNotIn(FieldAssessmentID, vs...))
}

// AssessmentIDGT applies the GT predicate on the "assessment_id" field.
func AssessmentIDGT(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldGT(FieldAssessmentID, v))
}

// AssessmentIDGTE applies the GTE predicate on the "assessment_id" field.
func AssessmentIDGTE(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldGTE(FieldAssessmentID, v))
}

// AssessmentIDLT applies the LT predicate on the "assessment_id" field.
func AssessmentIDLT(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldLT(FieldAssessmentID, v))
}

// AssessmentIDLTE applies the LTE predicate on the "assessment_id" field.
func AssessmentIDLTE(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldLTE(FieldAssessmentID, v))
}

// AssessmentIDContains applies the Contains predicate on the "assessment_id" field.
func AssessmentIDContains(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldContains(FieldAssessmentID, v))
}

// AssessmentIDHasPrefix applies the HasPrefix predicate on the "assessment_id" field.
func AssessmentIDHasPrefix(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldHasPrefix(FieldAssessmentID, v))
}

// AssessmentIDHasSuffix applies the HasSuffix predicate on the "assessment_id" field.
func AssessmentIDHasSuffix(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldHasSuffix(FieldAssessmentID, v))
}

// AssessmentIDEqualFold applies the EqualFold predicate on the "assessment_id" field.
func AssessmentIDEqualFold(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldEqualFold(FieldAssessmentID, v))
}

// AssessmentIDContainsFold applies the ContainsFold predicate on the "assessment_id" field.
func AssessmentIDContainsFold(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldContainsFold(FieldAssessmentID, v))
}

// TypeCodeEQ applies the EQ predicate on the "type_code" field.
func TypeCodeEQ(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldEQ(FieldTypeCode, v))
}

// TypeCodeNEQ applies the NEQ predicate on the "type_code" field.
func TypeCodeNEQ(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldNEQ(FieldTypeCode, v))
}

// TypeCodeIn applies the In predicate on the "type_code" field.
func TypeCodeIn(vs ...string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldIn(FieldTypeCode, vs...))
}

// TypeCodeNotIn applies the NotIn predicate on the "type_code" field.
func TypeCodeNotIn(vs ...string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldNotIn(FieldTypeCode, vs...))
}

// TypeCodeGT applies the GT predicate on the "type_code" field.
func TypeCodeGT(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldGT(FieldTypeCode, v))
}

// TypeCodeGTE applies the GTE predicate on the "type_code" field.
func TypeCodeGTE(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldGTE(FieldTypeCode, v))
}

// TypeCodeLT applies the LT predicate on the "type_code" field.
func TypeCodeLT(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldLT(FieldTypeCode, v))
}

// TypeCodeLTE applies the LTE predicate on the "type_code" field.
func TypeCodeLTE(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldLTE(FieldTypeCode, v))
}

// TypeCodeContains applies the Contains predicate on the "type_code" field.
func TypeCodeContains(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldContains(FieldTypeCode, v))
}

// TypeCodeHasPrefix applies the HasPrefix predicate on the "type_code" field.
func TypeCodeHasPrefix(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldHasPrefix(FieldTypeCode, v))
}

// TypeCodeHasSuffix applies the HasSuffix predicate on the "type_code" field.
func TypeCodeHasSuffix(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldHasSuffix(FieldTypeCode, v))
}

// TypeCodeEqualFold applies the EqualFold predicate on the "type_code" field.
func TypeCodeEqualFold(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldEqualFold(FieldTypeCode, v))
}

// TypeCodeContainsFold applies the ContainsFold predicate on the "type_code" field.
func TypeCodeContainsFold(v string) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldContainsFold(FieldTypeCode, v))
}

// FlaggedEQ applies the EQ predicate on the "flagged" field.
func FlaggedEQ(v bool) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldEQ(FieldFlagged, v))
}

// FlaggedNEQ applies the NEQ predicate on the "flagged" field.
func FlaggedNEQ(v bool) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldNEQ(FieldFlagged, v))
}

// TakenAtEQ applies the EQ predicate on the "taken_at" field.
func TakenAtEQ(v time.Time) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldEQ(FieldTakenAt, v))
}

// TakenAtNEQ applies the NEQ predicate on the "taken_at" field.
func TakenAtNEQ(v time.Time) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldNEQ(FieldTakenAt, v))
}

// TakenAtIn applies the In predicate on the "taken_at" field.
func TakenAtIn(vs ...time.Time) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldIn(FieldTakenAt, vs...))
}

// TakenAtNotIn applies the NotIn predicate on the "taken_at" field.
func TakenAtNotIn(vs ...time.Time) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldNotIn(FieldTakenAt, vs...))
}

// TakenAtGT applies the GT predicate on the "taken_at" field.
func TakenAtGT(v time.Time) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldGT(FieldTakenAt, v))
}

// TakenAtGTE applies the GTE predicate on the "taken_at" field.
func TakenAtGTE(v time.Time) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldGTE(FieldTakenAt, v))
}

// TakenAtLT applies the LT predicate on the "taken_at" field.
func TakenAtLT(v time.Time) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldLT(FieldTakenAt, v))
}

// TakenAtLTE applies the LTE predicate on the "taken_at" field.
func TakenAtLTE(v time.Time) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.FieldLTE(FieldTakenAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResultSnapshot) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResultSnapshot) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResultSnapshot) predicate.ResultSnapshot {
	return predicate.ResultSnapshot(sql.NotPredicates(p))
}
