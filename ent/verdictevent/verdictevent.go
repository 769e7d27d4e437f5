// Code generated by ent, DO NOT EDIT.

package verdictevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the verdictevent type in the database.
	Label = "verdict_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldAccept holds the string denoting the accept field in the database.
	FieldAccept = "accept"
	// FieldHardStop holds the string denoting the hard_stop field in the database.
	FieldHardStop = "hard_stop"
	// FieldDimensions holds the string denoting the dimensions field in the database.
	FieldDimensions = "dimensions"
	// FieldRationale holds the string denoting the rationale field in the database.
	FieldRationale = "rationale"
	// Table holds the table name of the verdictevent in the database.
	Table = "verdict_events"
)

// Columns holds all SQL columns for verdictevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldRunID,
	FieldAccept,
	FieldHardStop,
	FieldDimensions,
	FieldRationale,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	RunIDValidator func(string) error
	// DefaultHardStop holds the default value on creation for the "hard_stop" field.
	DefaultHardStop bool
	// DefaultRationale holds the default value on creation for the "rationale" field.
	DefaultRationale string
)

// OrderOption defines the ordering options for the VerdictEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByAccept orders the results by the accept field.
func ByAccept(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccept, opts...).ToFunc()
}

// ByHardStop orders the results by the hard_stop field.
func ByHardStop(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHardStop, opts...).ToFunc()
}

// ByRationale orders the results by the rationale field.
func ByRationale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRationale, opts...).ToFunc()
}
