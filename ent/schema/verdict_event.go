package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// VerdictEvent records the facilitator verdict for a completed run.
type VerdictEvent struct {
	ent.Schema
}

func (VerdictEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// DimensionScore is the serialized form of one rubric dimension.
type DimensionScore struct {
	Name          string  `json:"name"`
	Score         float64 `json:"score"`
	NotApplicable bool    `json:"not_applicable"`
	Rationale     string  `json:"rationale"`
}

func (VerdictEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("UUID of the scored run"),
		field.Bool("accept").
			Comment("Final accept/reject decision"),
		field.Bool("hard_stop").
			Default(false).
			Comment("A hard-stop boundary was flagged"),
		field.JSON("dimensions", []DimensionScore{}).
			Optional().
			Comment("Per-dimension rubric scores"),
		field.Text("rationale").
			Default("").
			Comment("Free-text decision rationale"),
	}
}

func (VerdictEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("accept"),
	}
}
