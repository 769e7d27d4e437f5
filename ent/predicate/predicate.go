// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// OracleRequestEvent is the predicate function for oraclerequestevent builders.
type OracleRequestEvent func(*sql.Selector)

// RunEvent is the predicate function for runevent builders.
type RunEvent func(*sql.Selector)

// VerdictEvent is the predicate function for verdictevent builders.
type VerdictEvent func(*sql.Selector)
