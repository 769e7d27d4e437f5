// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kelsic/dialogia/ent/schema"
	"github.com/kelsic/dialogia/ent/verdictevent"
)

// VerdictEvent is the model entity for the VerdictEvent schema.
type VerdictEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the scored run
	RunID string `json:"run_id,omitempty"`
	// Final accept/reject decision
	Accept bool `json:"accept,omitempty"`
	// A hard-stop boundary was flagged
	HardStop bool `json:"hard_stop,omitempty"`
	// Per-dimension rubric scores
	Dimensions []schema.DimensionScore `json:"dimensions,omitempty"`
	// Free-text decision rationale
	Rationale    string `json:"rationale,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VerdictEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verdictevent.FieldDimensions:
			values[i] = new([]byte)
		case verdictevent.FieldAccept, verdictevent.FieldHardStop:
			values[i] = new(sql.NullBool)
		case verdictevent.FieldID, verdictevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case verdictevent.FieldRunID, verdictevent.FieldRationale:
			values[i] = new(sql.NullString)
		case verdictevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VerdictEvent fields.
func (_m *VerdictEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verdictevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case verdictevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case verdictevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case verdictevent.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case verdictevent.FieldAccept:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field accept", values[i])
			} else if value.Valid {
				_m.Accept = value.Bool
			}
		case verdictevent.FieldHardStop:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field hard_stop", values[i])
			} else if value.Valid {
				_m.HardStop = value.Bool
			}
		case verdictevent.FieldDimensions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dimensions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Dimensions); err != nil {
					return fmt.Errorf("unmarshal field dimensions: %w", err)
				}
			}
		case verdictevent.FieldRationale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rationale", values[i])
			} else if value.Valid {
				_m.Rationale = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VerdictEvent.
// This includes values selected through modifiers, order, etc.
func (_m *VerdictEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this VerdictEvent.
// Note that you need to call VerdictEvent.Unwrap() before calling this method if this VerdictEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VerdictEvent) Update() *VerdictEventUpdateOne {
	return NewVerdictEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VerdictEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VerdictEvent) Unwrap() *VerdictEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VerdictEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VerdictEvent) String() string {
	var builder strings.Builder
	builder.WriteString("VerdictEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("accept=")
	builder.WriteString(fmt.Sprintf("%v", _m.Accept))
	builder.WriteString(", ")
	builder.WriteString("hard_stop=")
	builder.WriteString(fmt.Sprintf("%v", _m.HardStop))
	builder.WriteString(", ")
	builder.WriteString("dimensions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dimensions))
	builder.WriteString(", ")
	builder.WriteString("rationale=")
	builder.WriteString(_m.Rationale)
	builder.WriteByte(')')
	return builder.String()
}

// VerdictEvents is a parsable slice of VerdictEvent.
type VerdictEvents []*VerdictEvent
