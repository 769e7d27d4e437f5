// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// OracleRequestEventsColumns holds the columns for the "oracle_request_events" table.
	OracleRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeString, Default: ""},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// OracleRequestEventsTable holds the schema information for the "oracle_request_events" table.
	OracleRequestEventsTable = &schema.Table{
		Name:       "oracle_request_events",
		Columns:    OracleRequestEventsColumns,
		PrimaryKey: []*schema.Column{OracleRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "oraclerequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[1]},
			},
			{
				Name:    "oraclerequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[2]},
			},
			{
				Name:    "oraclerequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[3]},
			},
			{
				Name:    "oraclerequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[5]},
			},
			{
				Name:    "oraclerequestevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[6]},
			},
			{
				Name:    "oraclerequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[10]},
			},
		},
	}
	// RunEventsColumns holds the columns for the "run_events" table.
	RunEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "scenario_id", Type: field.TypeString, Default: ""},
		{Name: "student_name", Type: field.TypeString, Default: ""},
		{Name: "outcome", Type: field.TypeString, Default: ""},
		{Name: "exchanges", Type: field.TypeInt, Default: 0},
		{Name: "student_exchanges", Type: field.TypeInt, Default: 0},
		{Name: "pushback_rate", Type: field.TypeFloat64, Default: 0},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// RunEventsTable holds the schema information for the "run_events" table.
	RunEventsTable = &schema.Table{
		Name:       "run_events",
		Columns:    RunEventsColumns,
		PrimaryKey: []*schema.Column{RunEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "runevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[1]},
			},
			{
				Name:    "runevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[2]},
			},
			{
				Name:    "runevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[3]},
			},
			{
				Name:    "runevent_action",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[4]},
			},
			{
				Name:    "runevent_outcome",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[7]},
			},
		},
	}
	// VerdictEventsColumns holds the columns for the "verdict_events" table.
	VerdictEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "accept", Type: field.TypeBool},
		{Name: "hard_stop", Type: field.TypeBool, Default: false},
		{Name: "dimensions", Type: field.TypeJSON, Nullable: true},
		{Name: "rationale", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// VerdictEventsTable holds the schema information for the "verdict_events" table.
	VerdictEventsTable = &schema.Table{
		Name:       "verdict_events",
		Columns:    VerdictEventsColumns,
		PrimaryKey: []*schema.Column{VerdictEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "verdictevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{VerdictEventsColumns[1]},
			},
			{
				Name:    "verdictevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{VerdictEventsColumns[2]},
			},
			{
				Name:    "verdictevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{VerdictEventsColumns[3]},
			},
			{
				Name:    "verdictevent_accept",
				Unique:  false,
				Columns: []*schema.Column{VerdictEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		OracleRequestEventsTable,
		RunEventsTable,
		VerdictEventsTable,
	}
)

func init() {
}
