// Code generated by ent, DO NOT EDIT.

package verdictevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kelsic/dialogia/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldRunID, v))
}

// Accept applies equality check predicate on the "accept" field. It's identical to AcceptEQ.
func Accept(v bool) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldAccept, v))
}

// HardStop applies equality check predicate on the "hard_stop" field. It's identical to HardStopEQ.
func HardStop(v bool) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldHardStop, v))
}

// Rationale applies equality check predicate on the "rationale" field. It's identical to RationaleEQ.
func Rationale(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldRationale, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldContainsFold(FieldRunID, v))
}

// AcceptEQ applies the EQ predicate on the "accept" field.
func AcceptEQ(v bool) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldAccept, v))
}

// AcceptNEQ applies the NEQ predicate on the "accept" field.
func AcceptNEQ(v bool) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNEQ(FieldAccept, v))
}

// HardStopEQ applies the EQ predicate on the "hard_stop" field.
func HardStopEQ(v bool) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldHardStop, v))
}

// HardStopNEQ applies the NEQ predicate on the "hard_stop" field.
func HardStopNEQ(v bool) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNEQ(FieldHardStop, v))
}

// DimensionsIsNil applies the IsNil predicate on the "dimensions" field.
func DimensionsIsNil() predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldIsNull(FieldDimensions))
}

// DimensionsNotNil applies the NotNil predicate on the "dimensions" field.
func DimensionsNotNil() predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNotNull(FieldDimensions))
}

// RationaleEQ applies the EQ predicate on the "rationale" field.
func RationaleEQ(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldRationale, v))
}

// RationaleNEQ applies the NEQ predicate on the "rationale" field.
func RationaleNEQ(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNEQ(FieldRationale, v))
}

// RationaleIn applies the In predicate on the "rationale" field.
func RationaleIn(vs ...string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldIn(FieldRationale, vs...))
}

// RationaleNotIn applies the NotIn predicate on the "rationale" field.
func RationaleNotIn(vs ...string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNotIn(FieldRationale, vs...))
}

// RationaleGT applies the GT predicate on the "rationale" field.
func RationaleGT(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGT(FieldRationale, v))
}

// RationaleGTE applies the GTE predicate on the "rationale" field.
func RationaleGTE(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGTE(FieldRationale, v))
}

// RationaleLT applies the LT predicate on the "rationale" field.
func RationaleLT(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLT(FieldRationale, v))
}

// RationaleLTE applies the LTE predicate on the "rationale" field.
func RationaleLTE(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLTE(FieldRationale, v))
}

// RationaleContains applies the Contains predicate on the "rationale" field.
func RationaleContains(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldContains(FieldRationale, v))
}

// RationaleHasPrefix applies the HasPrefix predicate on the "rationale" field.
func RationaleHasPrefix(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldHasPrefix(FieldRationale, v))
}

// RationaleHasSuffix applies the HasSuffix predicate on the "rationale" field.
func RationaleHasSuffix(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldHasSuffix(FieldRationale, v))
}

// RationaleEqualFold applies the EqualFold predicate on the "rationale" field.
func RationaleEqualFold(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEqualFold(FieldRationale, v))
}

// RationaleContainsFold applies the ContainsFold predicate on the "rationale" field.
func RationaleContainsFold(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldContainsFold(FieldRationale, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VerdictEvent) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VerdictEvent) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VerdictEvent) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.NotPredicates(p))
}
