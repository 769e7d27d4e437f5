package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunEvent records dialogue run lifecycle events (start/finish).
// A failed run and a completed-but-rejected run are different outcomes
// and are recorded distinctly.
type RunEvent struct {
	ent.Schema
}

func (RunEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RunEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("UUID grouping events in a run"),
		field.String("action").
			NotEmpty().
			Comment("start or finish"),
		field.String("scenario_id").
			Default("").
			Comment("Scenario used for the run"),
		field.String("student_name").
			Default("").
			Comment("Student profile config name"),
		field.String("outcome").
			Default("").
			Comment("accepted, rejected, or failed (on finish only)"),
		field.Int("exchanges").
			Default(0).
			Comment("Total exchanges in the transcript (on finish only)"),
		field.Int("student_exchanges").
			Default(0).
			Comment("Student exchanges in the transcript (on finish only)"),
		field.Float("pushback_rate").
			Default(0).
			Comment("Pushback rate over student exchanges (on finish only)"),
		field.String("error_message").
			Default("").
			Comment("Failure reason when outcome is failed"),
	}
}

func (RunEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("action"),
		index.Fields("outcome"),
	}
}
