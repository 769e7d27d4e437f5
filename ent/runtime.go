// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/kelsic/dialogia/ent/oraclerequestevent"
	"github.com/kelsic/dialogia/ent/runevent"
	"github.com/kelsic/dialogia/ent/schema"
	"github.com/kelsic/dialogia/ent/verdictevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	oraclerequesteventMixin := schema.OracleRequestEvent{}.Mixin()
	oraclerequesteventMixinFields0 := oraclerequesteventMixin[0].Fields()
	_ = oraclerequesteventMixinFields0
	oraclerequesteventFields := schema.OracleRequestEvent{}.Fields()
	_ = oraclerequesteventFields
	// oraclerequesteventDescTimestamp is the schema descriptor for timestamp field.
	oraclerequesteventDescTimestamp := oraclerequesteventMixinFields0[1].Descriptor()
	// oraclerequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	oraclerequestevent.DefaultTimestamp = oraclerequesteventDescTimestamp.Default.(func() time.Time)
	// oraclerequesteventDescRunID is the schema descriptor for run_id field.
	oraclerequesteventDescRunID := oraclerequesteventFields[3].Descriptor()
	// oraclerequestevent.DefaultRunID holds the default value on creation for the run_id field.
	oraclerequestevent.DefaultRunID = oraclerequesteventDescRunID.Default.(string)
	// oraclerequesteventDescInputTokens is the schema descriptor for input_tokens field.
	oraclerequesteventDescInputTokens := oraclerequesteventFields[4].Descriptor()
	// oraclerequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	oraclerequestevent.DefaultInputTokens = oraclerequesteventDescInputTokens.Default.(int)
	// oraclerequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	oraclerequesteventDescOutputTokens := oraclerequesteventFields[5].Descriptor()
	// oraclerequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	oraclerequestevent.DefaultOutputTokens = oraclerequesteventDescOutputTokens.Default.(int)
	// oraclerequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	oraclerequesteventDescLatencyMs := oraclerequesteventFields[6].Descriptor()
	// oraclerequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	oraclerequestevent.DefaultLatencyMs = oraclerequesteventDescLatencyMs.Default.(int64)
	// oraclerequesteventDescErrorMessage is the schema descriptor for error_message field.
	oraclerequesteventDescErrorMessage := oraclerequesteventFields[8].Descriptor()
	// oraclerequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	oraclerequestevent.DefaultErrorMessage = oraclerequesteventDescErrorMessage.Default.(string)
	// oraclerequesteventDescRequestBody is the schema descriptor for request_body field.
	oraclerequesteventDescRequestBody := oraclerequesteventFields[9].Descriptor()
	// oraclerequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	oraclerequestevent.DefaultRequestBody = oraclerequesteventDescRequestBody.Default.(string)
	// oraclerequesteventDescResponseBody is the schema descriptor for response_body field.
	oraclerequesteventDescResponseBody := oraclerequesteventFields[10].Descriptor()
	// oraclerequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	oraclerequestevent.DefaultResponseBody = oraclerequesteventDescResponseBody.Default.(string)
	runeventMixin := schema.RunEvent{}.Mixin()
	runeventMixinFields0 := runeventMixin[0].Fields()
	_ = runeventMixinFields0
	runeventFields := schema.RunEvent{}.Fields()
	_ = runeventFields
	// runeventDescTimestamp is the schema descriptor for timestamp field.
	runeventDescTimestamp := runeventMixinFields0[1].Descriptor()
	// runevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	runevent.DefaultTimestamp = runeventDescTimestamp.Default.(func() time.Time)
	// runeventDescRunID is the schema descriptor for run_id field.
	runeventDescRunID := runeventFields[0].Descriptor()
	// runevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	runevent.RunIDValidator = runeventDescRunID.Validators[0].(func(string) error)
	// runeventDescAction is the schema descriptor for action field.
	runeventDescAction := runeventFields[1].Descriptor()
	// runevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	runevent.ActionValidator = runeventDescAction.Validators[0].(func(string) error)
	// runeventDescScenarioID is the schema descriptor for scenario_id field.
	runeventDescScenarioID := runeventFields[2].Descriptor()
	// runevent.DefaultScenarioID holds the default value on creation for the scenario_id field.
	runevent.DefaultScenarioID = runeventDescScenarioID.Default.(string)
	// runeventDescStudentName is the schema descriptor for student_name field.
	runeventDescStudentName := runeventFields[3].Descriptor()
	// runevent.DefaultStudentName holds the default value on creation for the student_name field.
	runevent.DefaultStudentName = runeventDescStudentName.Default.(string)
	// runeventDescOutcome is the schema descriptor for outcome field.
	runeventDescOutcome := runeventFields[4].Descriptor()
	// runevent.DefaultOutcome holds the default value on creation for the outcome field.
	runevent.DefaultOutcome = runeventDescOutcome.Default.(string)
	// runeventDescExchanges is the schema descriptor for exchanges field.
	runeventDescExchanges := runeventFields[5].Descriptor()
	// runevent.DefaultExchanges holds the default value on creation for the exchanges field.
	runevent.DefaultExchanges = runeventDescExchanges.Default.(int)
	// runeventDescStudentExchanges is the schema descriptor for student_exchanges field.
	runeventDescStudentExchanges := runeventFields[6].Descriptor()
	// runevent.DefaultStudentExchanges holds the default value on creation for the student_exchanges field.
	runevent.DefaultStudentExchanges = runeventDescStudentExchanges.Default.(int)
	// runeventDescPushbackRate is the schema descriptor for pushback_rate field.
	runeventDescPushbackRate := runeventFields[7].Descriptor()
	// runevent.DefaultPushbackRate holds the default value on creation for the pushback_rate field.
	runevent.DefaultPushbackRate = runeventDescPushbackRate.Default.(float64)
	// runeventDescErrorMessage is the schema descriptor for error_message field.
	runeventDescErrorMessage := runeventFields[8].Descriptor()
	// runevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	runevent.DefaultErrorMessage = runeventDescErrorMessage.Default.(string)
	verdicteventMixin := schema.VerdictEvent{}.Mixin()
	verdicteventMixinFields0 := verdicteventMixin[0].Fields()
	_ = verdicteventMixinFields0
	verdicteventFields := schema.VerdictEvent{}.Fields()
	_ = verdicteventFields
	// verdicteventDescTimestamp is the schema descriptor for timestamp field.
	verdicteventDescTimestamp := verdicteventMixinFields0[1].Descriptor()
	// verdictevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	verdictevent.DefaultTimestamp = verdicteventDescTimestamp.Default.(func() time.Time)
	// verdicteventDescRunID is the schema descriptor for run_id field.
	verdicteventDescRunID := verdicteventFields[0].Descriptor()
	// verdictevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	verdictevent.RunIDValidator = verdicteventDescRunID.Validators[0].(func(string) error)
	// verdicteventDescHardStop is the schema descriptor for hard_stop field.
	verdicteventDescHardStop := verdicteventFields[2].Descriptor()
	// verdictevent.DefaultHardStop holds the default value on creation for the hard_stop field.
	verdictevent.DefaultHardStop = verdicteventDescHardStop.Default.(bool)
	// verdicteventDescRationale is the schema descriptor for rationale field.
	verdicteventDescRationale := verdicteventFields[4].Descriptor()
	// verdictevent.DefaultRationale holds the default value on creation for the rationale field.
	verdictevent.DefaultRationale = verdicteventDescRationale.Default.(string)
}
